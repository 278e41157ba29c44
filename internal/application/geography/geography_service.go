package geography

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/geography"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GeographyService serves the cascading province, district and ward
// selectors on the checkout address form
type GeographyService struct {
	directory geography.Directory
}

// NewGeographyService creates a new GeographyService
func NewGeographyService(directory geography.Directory) *GeographyService {
	return &GeographyService{directory: directory}
}

// Provinces lists all provinces
func (s *GeographyService) Provinces(ctx context.Context) ([]geography.Province, error) {
	return s.directory.Provinces(ctx)
}

// Districts lists the districts of a province
func (s *GeographyService) Districts(ctx context.Context, provinceCode string) ([]geography.District, error) {
	if provinceCode == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Province code is required")
	}
	return s.directory.Districts(ctx, provinceCode)
}

// Wards lists the wards of a district
func (s *GeographyService) Wards(ctx context.Context, districtCode string) ([]geography.Ward, error) {
	if districtCode == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "District code is required")
	}
	return s.directory.Wards(ctx, districtCode)
}
