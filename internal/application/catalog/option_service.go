package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
)

// OptionService manages the size and crust option lists
type OptionService struct {
	sizeRepo  catalog.SizeRepository
	crustRepo catalog.CrustRepository
}

// NewOptionService creates a new OptionService
func NewOptionService(sizeRepo catalog.SizeRepository, crustRepo catalog.CrustRepository) *OptionService {
	return &OptionService{
		sizeRepo:  sizeRepo,
		crustRepo: crustRepo,
	}
}

// ListSizes lists all sizes in display order
func (s *OptionService) ListSizes(ctx context.Context) ([]OptionResponse, error) {
	sizes, err := s.sizeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]OptionResponse, len(sizes))
	for i, size := range sizes {
		responses[i] = OptionResponse{ID: size.ID, Name: size.Name, Position: size.Position}
	}
	return responses, nil
}

// ListCrusts lists all crusts in display order
func (s *OptionService) ListCrusts(ctx context.Context) ([]OptionResponse, error) {
	crusts, err := s.crustRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]OptionResponse, len(crusts))
	for i, crust := range crusts {
		responses[i] = OptionResponse{ID: crust.ID, Name: crust.Name, Position: crust.Position}
	}
	return responses, nil
}

// CreateSize adds a size option
func (s *OptionService) CreateSize(ctx context.Context, name string, position int) (*OptionResponse, error) {
	size, err := catalog.NewSize(name, position)
	if err != nil {
		return nil, err
	}
	if err := s.sizeRepo.Save(ctx, size); err != nil {
		return nil, err
	}
	return &OptionResponse{ID: size.ID, Name: size.Name, Position: size.Position}, nil
}

// CreateCrust adds a crust option
func (s *OptionService) CreateCrust(ctx context.Context, name string, position int) (*OptionResponse, error) {
	crust, err := catalog.NewCrust(name, position)
	if err != nil {
		return nil, err
	}
	if err := s.crustRepo.Save(ctx, crust); err != nil {
		return nil, err
	}
	return &OptionResponse{ID: crust.ID, Name: crust.Name, Position: crust.Position}, nil
}

// DeleteSize removes a size option
func (s *OptionService) DeleteSize(ctx context.Context, id uuid.UUID) error {
	return s.sizeRepo.Delete(ctx, id)
}

// DeleteCrust removes a crust option
func (s *OptionService) DeleteCrust(ctx context.Context, id uuid.UUID) error {
	return s.crustRepo.Delete(ctx, id)
}
