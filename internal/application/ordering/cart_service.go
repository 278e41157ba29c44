package ordering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// CartService manages the server-side cart, one per customer
type CartService struct {
	cartRepo    ordering.CartRepository
	productRepo catalog.ProductRepository
	comboRepo   catalog.ComboRepository
}

// NewCartService creates a new CartService
func NewCartService(cartRepo ordering.CartRepository, productRepo catalog.ProductRepository, comboRepo catalog.ComboRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		comboRepo:   comboRepo,
	}
}

// Get returns the customer's cart, creating an empty one on first use
func (s *CartService) Get(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	cart, err := s.loadOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

// AddVariant resolves the selected size and crust against the product's
// variants and adds the matching one to the cart. Lines for the same
// variant merge.
func (s *CartService) AddVariant(ctx context.Context, customerID uuid.UUID, req AddVariantRequest) (*CartResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, shared.NewDomainError("PRODUCT_UNAVAILABLE", "Product is not available")
	}
	variant, err := product.ResolveVariant(req.SizeID, req.CrustID)
	if err != nil {
		return nil, err
	}

	cart, err := s.loadOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddVariantLine(variant.ID, product.Name, variantOptions(variant), product.ImagePath, variant.Price, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

// AddCombo adds a combo to the cart as a single line
func (s *CartService) AddCombo(ctx context.Context, customerID uuid.UUID, req AddComboRequest) (*CartResponse, error) {
	combo, err := s.comboRepo.FindByID(ctx, req.ComboID)
	if err != nil {
		return nil, err
	}
	if !combo.IsActiveAt(time.Now()) {
		return nil, shared.NewDomainError("COMBO_UNAVAILABLE", "Combo is not on sale")
	}

	cart, err := s.loadOrCreate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.AddComboLine(combo.ID, combo.Name, combo.ImagePath, combo.Price, req.Quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

// UpdateQuantity sets the quantity of a cart line, clamping to one
func (s *CartService) UpdateQuantity(ctx context.Context, customerID, itemID uuid.UUID, quantity int) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.UpdateItemQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if err := cart.RemoveItem(itemID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, customerID uuid.UUID) (*CartResponse, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return s.Get(ctx, customerID)
		}
		return nil, err
	}
	cart.Clear()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	resp := ToCartResponse(cart)
	return &resp, nil
}

func (s *CartService) loadOrCreate(ctx context.Context, customerID uuid.UUID) (*ordering.Cart, error) {
	cart, err := s.cartRepo.FindByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	cart, err = ordering.NewCart(customerID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// variantOptions renders the size and crust names for the cart line label
func variantOptions(v *catalog.Variant) string {
	var parts []string
	if v.Size != nil {
		parts = append(parts, v.Size.Name)
	}
	if v.Crust != nil {
		parts = append(parts, v.Crust.Name)
	}
	return strings.Join(parts, ", ")
}
