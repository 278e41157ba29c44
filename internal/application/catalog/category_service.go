package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// CategoryService handles category management and the storefront
// category strip
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name, req.Slug, req.BannerImage, req.Position)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindBySlug(ctx, category.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this slug already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Update applies a partial update to a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.BannerImage != nil {
		category.SetBanner(*req.BannerImage)
	}
	if req.Position != nil {
		category.Position = *req.Position
		category.Touch()
	}
	if req.Active != nil {
		if *req.Active {
			category.Activate()
		} else {
			category.Deactivate()
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// Delete removes a category
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}

// GetByID retrieves a category
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategoryResponse(category)
	return &resp, nil
}

// ListActive lists the active categories in strip order
func (s *CategoryService) ListActive(ctx context.Context) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, nil
}

// ListAll lists categories for the back office
func (s *CategoryService) ListAll(ctx context.Context, filter shared.Filter) ([]CategoryResponse, error) {
	categories, err := s.categoryRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses, nil
}
