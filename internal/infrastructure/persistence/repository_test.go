package persistence

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/identity"
	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/promotion"
	"github.com/pizzeria/backend/internal/domain/shared"
	"github.com/pizzeria/backend/internal/domain/shared/valueobject"
)

func timeMustParse(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed
}

func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewSQLiteDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.DB.AutoMigrate(
		&catalog.Category{},
		&catalog.Size{},
		&catalog.Crust{},
		&catalog.Product{},
		&catalog.Variant{},
		&ordering.Cart{},
		&ordering.CartItem{},
		&ordering.Order{},
		&ordering.OrderItem{},
		&promotion.Coupon{},
		&identity.User{},
	))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGormProductRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormProductRepository(db.DB)

	product, err := catalog.NewProduct(uuid.New(), "Pizza Hai San", "Seafood", "/img/haisan.jpg")
	require.NoError(t, err)
	sizeS, sizeL := uuid.New(), uuid.New()
	_, err = product.AddVariant(&sizeS, nil, valueobject.NewMoneyVNDFromInt(150000), "HS-S")
	require.NoError(t, err)
	_, err = product.AddVariant(&sizeL, nil, valueobject.NewMoneyVNDFromInt(220000), "HS-L")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, product))

	loaded, err := repo.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pizza Hai San", loaded.Name)
	require.Len(t, loaded.Variants, 2)
	assert.True(t, loaded.Variants[0].Price.Equals(valueobject.NewMoneyVNDFromInt(150000)))

	bySlug, err := repo.FindBySlug(ctx, "pizza-hai-san")
	require.NoError(t, err)
	assert.Equal(t, product.ID, bySlug.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormCartRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormCartRepository(db.DB)

	customerID := uuid.New()
	cart, err := ordering.NewCart(customerID)
	require.NoError(t, err)
	require.NoError(t, cart.AddVariantLine(uuid.New(), "Pizza", "L", "", valueobject.NewMoneyVNDFromInt(150000), 2))
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.True(t, loaded.Subtotal.Equals(valueobject.NewMoneyVNDFromInt(300000)))

	// Removing a line persists as a deletion.
	require.NoError(t, loaded.RemoveItem(loaded.Items[0].ID))
	require.NoError(t, repo.Save(ctx, loaded))

	reloaded, err := repo.FindByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Items)
	assert.True(t, reloaded.Subtotal.IsZero())
}

func TestGormOrderRepository_OptimisticLock(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormOrderRepository(db.DB)

	addr := valueobject.NewShippingAddress(
		valueobject.AdminUnit{Code: "79", Name: "Ho Chi Minh"},
		valueobject.AdminUnit{Code: "760", Name: "Quan 1"},
		valueobject.AdminUnit{Code: "26734", Name: "Phuong Ben Nghe"},
		"12 Le Loi",
	)
	order, err := ordering.NewOrder(uuid.New(), "Nguyen Van A", "0901234567", addr, "",
		ordering.PaymentMethodCOD, "",
		valueobject.NewMoneyVNDFromInt(300000), valueobject.ZeroVND(), valueobject.NewMoneyVNDFromInt(300000))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	first, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)

	require.NoError(t, first.TransitionTo(ordering.StatusConfirmed))
	require.NoError(t, repo.Save(ctx, first))

	require.NoError(t, second.TransitionTo(ordering.StatusConfirmed))
	err = repo.Save(ctx, second)
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestGormCouponRepository_FindByCode(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormCouponRepository(db.DB)

	coupon, err := promotion.NewCoupon("summer10", "", 10,
		valueobject.ZeroVND(), valueobject.ZeroVND(), valueobject.ZeroVND(),
		timeMustParse(t, "2026-01-01"), timeMustParse(t, "2026-12-31"), 0)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, coupon))

	// Lookup normalizes case and whitespace.
	found, err := repo.FindByCode(ctx, "  Summer10 ")
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", found.Code)

	_, err = repo.FindByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewGormUserRepository(db.DB)

	user, err := identity.NewUser("An@Example.com", "password123", "Nguyen Van An", "", identity.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByEmail(ctx, "an@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	count, err := repo.CountByRole(ctx, identity.RoleCustomer)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
