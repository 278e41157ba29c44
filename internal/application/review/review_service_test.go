package review

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/review"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(ctx context.Context, filter shared.Filter) ([]review.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]review.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, entity *review.Review) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[review.Review], error) {
	args := m.Called(ctx, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[review.Review]), args.Error(1)
}

func (m *MockReviewRepository) FindByCustomerAndProduct(ctx context.Context, customerID, productID uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, customerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockReviewRepository) Summarize(ctx context.Context, productID uuid.UUID) (*review.Summary, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Summary), args.Error(1)
}

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

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	return de.Code
}

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()

	product, err := catalog.NewProduct(uuid.New(), "Pizza Hai San", "", "")
	require.NoError(t, err)

	t.Run("records a rating", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := NewReviewService(reviewRepo, productRepo)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("FindByCustomerAndProduct", ctx, customerID, product.ID).Return(nil, shared.ErrNotFound)
		reviewRepo.On("Save", ctx, mock.AnythingOfType("*review.Review")).Return(nil)

		resp, err := service.Submit(ctx, customerID, SubmitReviewRequest{
			ProductID: product.ID,
			Rating:    5,
			Comment:   "Ngon!",
		})

		require.NoError(t, err)
		assert.Equal(t, 5, resp.Rating)
		assert.True(t, resp.Visible)
	})

	t.Run("rejects a second review for the same product", func(t *testing.T) {
		existing, err := review.NewReview(product.ID, customerID, 4, "")
		require.NoError(t, err)

		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := NewReviewService(reviewRepo, productRepo)

		productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
		reviewRepo.On("FindByCustomerAndProduct", ctx, customerID, product.ID).Return(existing, nil)

		_, submitErr := service.Submit(ctx, customerID, SubmitReviewRequest{ProductID: product.ID, Rating: 3})

		require.Error(t, submitErr)
		assert.Equal(t, "ALREADY_REVIEWED", domainCode(t, submitErr))
		reviewRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unknown product", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		service := NewReviewService(reviewRepo, productRepo)

		missing := uuid.New()
		productRepo.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, submitErr := service.Submit(ctx, customerID, SubmitReviewRequest{ProductID: missing, Rating: 4})

		require.ErrorIs(t, submitErr, shared.ErrNotFound)
	})
}

func TestReviewService_SetVisible(t *testing.T) {
	ctx := context.Background()

	r, err := review.NewReview(uuid.New(), uuid.New(), 1, "Nguoi!")
	require.NoError(t, err)

	reviewRepo := new(MockReviewRepository)
	service := NewReviewService(reviewRepo, new(MockProductRepository))
	reviewRepo.On("FindByID", ctx, r.ID).Return(r, nil)
	reviewRepo.On("Save", ctx, r).Return(nil)

	resp, err := service.SetVisible(ctx, r.ID, false)

	require.NoError(t, err)
	assert.False(t, resp.Visible)
}
