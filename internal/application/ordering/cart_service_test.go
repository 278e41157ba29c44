package ordering

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of the catalog
// ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, entity *catalog.Product) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, categoryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindFeatured(ctx context.Context, limit int) ([]catalog.Product, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Search(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) FindVariant(ctx context.Context, variantID uuid.UUID) (*catalog.Variant, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Variant), args.Error(1)
}

// MockComboRepository is a mock implementation of the catalog
// ComboRepository
type MockComboRepository struct {
	mock.Mock
}

func (m *MockComboRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Combo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Combo), args.Error(1)
}

func (m *MockComboRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Combo, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Combo), args.Error(1)
}

func (m *MockComboRepository) Save(ctx context.Context, entity *catalog.Combo) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockComboRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockComboRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockComboRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Combo, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Combo), args.Error(1)
}

func (m *MockComboRepository) FindActive(ctx context.Context) ([]catalog.Combo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Combo), args.Error(1)
}

type cartFixture struct {
	cartRepo    *MockCartRepository
	productRepo *MockProductRepository
	comboRepo   *MockComboRepository
	service     *CartService
}

func newCartFixture() *cartFixture {
	f := &cartFixture{
		cartRepo:    new(MockCartRepository),
		productRepo: new(MockProductRepository),
		comboRepo:   new(MockComboRepository),
	}
	f.service = NewCartService(f.cartRepo, f.productRepo, f.comboRepo)
	return f
}

func buildPizza(t *testing.T) (*catalog.Product, *catalog.Size, *catalog.Crust) {
	t.Helper()
	size, err := catalog.NewSize("Medium", 0)
	require.NoError(t, err)
	crust, err := catalog.NewCrust("Thin", 0)
	require.NoError(t, err)
	product, err := catalog.NewProduct(uuid.New(), "Pizza Hai San", "", "/img/haisan.jpg")
	require.NoError(t, err)
	variant, err := product.AddVariant(&size.ID, &crust.ID, vnd(150000), "")
	require.NoError(t, err)
	variant.Size = size
	variant.Crust = crust
	return product, size, crust
}

func TestCartService_AddVariant(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	t.Run("resolves exact size and crust match", func(t *testing.T) {
		product, size, crust := buildPizza(t)
		cart, err := ordering.NewCart(customerID)
		require.NoError(t, err)

		f := newCartFixture()
		f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)

		resp, err := f.service.AddVariant(ctx, customerID, AddVariantRequest{
			ProductID: product.ID,
			SizeID:    &size.ID,
			CrustID:   &crust.ID,
			Quantity:  2,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Pizza Hai San", resp.Items[0].Name)
		assert.Equal(t, "Medium, Thin", resp.Items[0].Options)
		assert.Equal(t, 2, resp.Items[0].Quantity)
		assert.True(t, resp.Subtotal.Equals(vnd(300000)))
	})

	t.Run("rejects unmatched selection", func(t *testing.T) {
		product, size, _ := buildPizza(t)
		otherCrust := uuid.New()

		f := newCartFixture()
		f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := f.service.AddVariant(ctx, customerID, AddVariantRequest{
			ProductID: product.ID,
			SizeID:    &size.ID,
			CrustID:   &otherCrust,
		})

		require.Error(t, err)
		assert.Equal(t, "VARIANT_NOT_FOUND", domainCode(t, err))
		f.cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("variant-less product ignores selection", func(t *testing.T) {
		drink, err := catalog.NewProduct(uuid.New(), "Coca Cola", "", "")
		require.NoError(t, err)
		_, err = drink.AddVariant(nil, nil, vnd(20000), "")
		require.NoError(t, err)
		cart, err := ordering.NewCart(customerID)
		require.NoError(t, err)

		f := newCartFixture()
		f.productRepo.On("FindByID", ctx, drink.ID).Return(drink, nil)
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)

		stray := uuid.New()
		resp, err := f.service.AddVariant(ctx, customerID, AddVariantRequest{
			ProductID: drink.ID,
			SizeID:    &stray,
			Quantity:  1,
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Empty(t, resp.Items[0].Options)
		assert.True(t, resp.Subtotal.Equals(vnd(20000)))
	})

	t.Run("rejects inactive product", func(t *testing.T) {
		product, size, crust := buildPizza(t)
		product.Deactivate()

		f := newCartFixture()
		f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

		_, err := f.service.AddVariant(ctx, customerID, AddVariantRequest{
			ProductID: product.ID,
			SizeID:    &size.ID,
			CrustID:   &crust.ID,
		})

		require.Error(t, err)
		assert.Equal(t, "PRODUCT_UNAVAILABLE", domainCode(t, err))
	})

	t.Run("creates cart on first add", func(t *testing.T) {
		product, size, crust := buildPizza(t)

		f := newCartFixture()
		f.productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(nil, shared.ErrNotFound)
		f.cartRepo.On("Save", ctx, mock.AnythingOfType("*ordering.Cart")).Return(nil)

		resp, err := f.service.AddVariant(ctx, customerID, AddVariantRequest{
			ProductID: product.ID,
			SizeID:    &size.ID,
			CrustID:   &crust.ID,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.ItemCount)
	})
}

func TestCartService_AddCombo(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	now := time.Now()

	t.Run("adds combo as a single line", func(t *testing.T) {
		combo, err := catalog.NewCombo("Combo Gia Dinh", "", "", vnd(350000),
			now.Add(-time.Hour), now.Add(24*time.Hour))
		require.NoError(t, err)
		cart, err := ordering.NewCart(customerID)
		require.NoError(t, err)

		f := newCartFixture()
		f.comboRepo.On("FindByID", ctx, combo.ID).Return(combo, nil)
		f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
		f.cartRepo.On("Save", ctx, cart).Return(nil)

		resp, err := f.service.AddCombo(ctx, customerID, AddComboRequest{ComboID: combo.ID, Quantity: 1})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, ordering.CartItemCombo, resp.Items[0].ItemType)
		assert.True(t, resp.Subtotal.Equals(vnd(350000)))
	})

	t.Run("rejects combo outside its window", func(t *testing.T) {
		combo, err := catalog.NewCombo("Combo Cu", "", "", vnd(200000),
			now.Add(-48*time.Hour), now.Add(-24*time.Hour))
		require.NoError(t, err)

		f := newCartFixture()
		f.comboRepo.On("FindByID", ctx, combo.ID).Return(combo, nil)

		_, addErr := f.service.AddCombo(ctx, customerID, AddComboRequest{ComboID: combo.ID})

		require.Error(t, addErr)
		assert.Equal(t, "COMBO_UNAVAILABLE", domainCode(t, addErr))
		f.cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)
	itemID := cart.Items[0].ID

	f := newCartFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.cartRepo.On("Save", ctx, cart).Return(nil)

	// zero clamps to one
	resp, err := f.service.UpdateQuantity(ctx, customerID, itemID, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.True(t, resp.Subtotal.Equals(vnd(150000)))
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	cart := buildCart(t, customerID)
	itemID := cart.Items[0].ID

	f := newCartFixture()
	f.cartRepo.On("FindByCustomer", ctx, customerID).Return(cart, nil)
	f.cartRepo.On("Save", ctx, cart).Return(nil)

	resp, err := f.service.RemoveItem(ctx, customerID, itemID)

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Subtotal.IsZero())
}
