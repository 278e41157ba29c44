package geography

import (
	"context"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// ErrUpstreamUnavailable indicates the administrative-geography API
// could not be reached or answered with an error
var ErrUpstreamUnavailable = shared.NewDomainError("GEOGRAPHY_UPSTREAM_UNAVAILABLE", "administrative geography service is unavailable")

// Province is a first-level administrative unit
type Province struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// District is a second-level administrative unit
type District struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	ProvinceCode string `json:"province_code"`
}

// Ward is a third-level administrative unit
type Ward struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	DistrictCode string `json:"district_code"`
}

// Directory resolves the administrative-unit hierarchy used by
// shipping addresses. Implementations may proxy an external API
// or serve cached copies.
type Directory interface {
	Provinces(ctx context.Context) ([]Province, error)
	Districts(ctx context.Context, provinceCode string) ([]District, error)
	Wards(ctx context.Context, districtCode string) ([]Ward, error)
}
