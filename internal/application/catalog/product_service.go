package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

// ProductService handles the product catalog: storefront listings and
// back-office management including variant configuration
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	sizeRepo     catalog.SizeRepository
	crustRepo    catalog.CrustRepository
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	sizeRepo catalog.SizeRepository,
	crustRepo catalog.CrustRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sizeRepo:     sizeRepo,
		crustRepo:    crustRepo,
	}
}

// Create creates a product with its initial variants
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	product, err := catalog.NewProduct(req.CategoryID, req.Name, req.Description, req.ImagePath)
	if err != nil {
		return nil, err
	}
	if req.Featured {
		product.SetFeatured(true)
	}

	for _, v := range req.Variants {
		if _, err := product.AddVariant(v.SizeID, v.CrustID, valueobject.NewMoneyVND(v.Price), v.SKU); err != nil {
			return nil, err
		}
	}

	if _, err := s.productRepo.FindBySlug(ctx, product.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		if err := product.MoveToCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	name := product.Name
	description := product.Description
	imagePath := product.ImagePath
	if req.Name != nil {
		name = *req.Name
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.ImagePath != nil {
		imagePath = *req.ImagePath
	}
	if req.Name != nil || req.Description != nil || req.ImagePath != nil {
		if err := product.Update(name, description, imagePath); err != nil {
			return nil, err
		}
	}

	if req.Featured != nil {
		product.SetFeatured(*req.Featured)
	}
	if req.Active != nil {
		if *req.Active {
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product and its variants
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.productRepo.Delete(ctx, id)
}

// AddVariant appends a sellable configuration to an existing product
func (s *ProductService) AddVariant(ctx context.Context, productID uuid.UUID, req CreateVariantRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if _, err := product.AddVariant(req.SizeID, req.CrustID, valueobject.NewMoneyVND(req.Price), req.SKU); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdateVariantPrice changes the price of one variant
func (s *ProductService) UpdateVariantPrice(ctx context.Context, productID, variantID uuid.UUID, price valueobject.Money) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := product.UpdateVariantPrice(variantID, price); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// RemoveVariant drops a variant from a product
func (s *ProductService) RemoveVariant(ctx context.Context, productID, variantID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if err := product.RemoveVariant(variantID); err != nil {
		return err
	}
	return s.productRepo.Save(ctx, product)
}

// GetByID retrieves a product with its variants
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// GetBySlug retrieves a product for the storefront detail page
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Options computes the size and crust selectors for a product. Sizes
// appear in variant display order; each size maps to the crusts
// actually offered for it.
func (s *ProductService) Options(ctx context.Context, productID uuid.UUID) (*ProductOptionsResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := &ProductOptionsResponse{
		HasOptions:   product.HasOptions(),
		Sizes:        make([]OptionResponse, 0),
		CrustsBySize: make(map[uuid.UUID][]OptionResponse),
	}
	if !resp.HasOptions {
		return resp, nil
	}

	sizes, err := s.sizeRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	crusts, err := s.crustRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, err
	}
	sizeByID := make(map[uuid.UUID]*catalog.Size, len(sizes))
	for i := range sizes {
		sizeByID[sizes[i].ID] = &sizes[i]
	}
	crustByID := make(map[uuid.UUID]*catalog.Crust, len(crusts))
	for i := range crusts {
		crustByID[crusts[i].ID] = &crusts[i]
	}

	for _, sizeID := range product.AvailableSizes() {
		size, ok := sizeByID[sizeID]
		if !ok {
			continue
		}
		resp.Sizes = append(resp.Sizes, OptionResponse{ID: size.ID, Name: size.Name, Position: size.Position})

		options := make([]OptionResponse, 0)
		for _, crustID := range product.CrustsForSize(sizeID) {
			if crust, ok := crustByID[crustID]; ok {
				options = append(options, OptionResponse{ID: crust.ID, Name: crust.Name, Position: crust.Position})
			}
		}
		resp.CrustsBySize[sizeID] = options
	}
	return resp, nil
}

// ListByCategory lists active products of a category, paginated
func (s *ProductService) ListByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	page, err := s.productRepo.FindByCategory(ctx, categoryID, filter)
	if err != nil {
		return nil, err
	}
	return mapProductPage(page), nil
}

// Search searches products by name, paginated
func (s *ProductService) Search(ctx context.Context, filter shared.Filter) (*shared.Paginated[ProductResponse], error) {
	page, err := s.productRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapProductPage(page), nil
}

// Featured lists the featured products for the home page
func (s *ProductService) Featured(ctx context.Context, limit int) ([]ProductResponse, error) {
	products, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses, nil
}

func mapProductPage(page *shared.Paginated[catalog.Product]) *shared.Paginated[ProductResponse] {
	items := make([]ProductResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToProductResponse(&page.Items[i])
	}
	return &shared.Paginated[ProductResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
