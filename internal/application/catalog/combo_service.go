package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// ComboService handles combo bundles and their active windows
type ComboService struct {
	comboRepo   catalog.ComboRepository
	productRepo catalog.ProductRepository
}

// NewComboService creates a new ComboService
func NewComboService(comboRepo catalog.ComboRepository, productRepo catalog.ProductRepository) *ComboService {
	return &ComboService{
		comboRepo:   comboRepo,
		productRepo: productRepo,
	}
}

// Create creates a combo with its pinned variant lines
func (s *ComboService) Create(ctx context.Context, req CreateComboRequest) (*ComboResponse, error) {
	combo, err := catalog.NewCombo(req.Name, req.Description, req.ImagePath,
		valueobject.NewMoneyVND(req.Price), req.StartsAt, req.EndsAt)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if _, err := s.productRepo.FindVariant(ctx, item.VariantID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_VARIANT", "Combo item references an unknown variant")
			}
			return nil, err
		}
		if err := combo.AddItem(item.VariantID, item.Quantity); err != nil {
			return nil, err
		}
	}

	if _, err := s.comboRepo.FindBySlug(ctx, combo.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Combo with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.comboRepo.Save(ctx, combo); err != nil {
		return nil, err
	}
	resp := ToComboResponse(combo)
	return &resp, nil
}

// Deactivate pulls a combo from sale
func (s *ComboService) Deactivate(ctx context.Context, id uuid.UUID) error {
	combo, err := s.comboRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	combo.Deactivate()
	return s.comboRepo.Save(ctx, combo)
}

// Delete removes a combo
func (s *ComboService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.comboRepo.Delete(ctx, id)
}

// GetBySlug retrieves a combo for the storefront detail page
func (s *ComboService) GetBySlug(ctx context.Context, slug string) (*ComboResponse, error) {
	combo, err := s.comboRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToComboResponse(combo)
	return &resp, nil
}

// ListActive lists the combos currently on sale
func (s *ComboService) ListActive(ctx context.Context) ([]ComboResponse, error) {
	combos, err := s.comboRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	responses := make([]ComboResponse, 0, len(combos))
	for i := range combos {
		if combos[i].IsActiveAt(now) {
			responses = append(responses, ToComboResponse(&combos[i]))
		}
	}
	return responses, nil
}

// ListAll lists combos for the back office
func (s *ComboService) ListAll(ctx context.Context, filter shared.Filter) ([]ComboResponse, error) {
	combos, err := s.comboRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]ComboResponse, len(combos))
	for i := range combos {
		responses[i] = ToComboResponse(&combos[i])
	}
	return responses, nil
}
