package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// MockComboRepository is a mock implementation of ComboRepository
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

func TestComboService_Create(t *testing.T) {
	ctx := context.Background()
	variantID := uuid.New()
	req := CreateComboRequest{
		Name:     "Combo Gia Dinh",
		Price:    vnd(350000).Amount(),
		StartsAt: time.Now().Add(-time.Hour),
		EndsAt:   time.Now().Add(24 * time.Hour),
		Items:    []ComboItemRequest{{VariantID: variantID, Quantity: 2}},
	}

	t.Run("creates combo with pinned lines", func(t *testing.T) {
		comboRepo := new(MockComboRepository)
		productRepo := new(MockProductRepository)
		service := NewComboService(comboRepo, productRepo)

		productRepo.On("FindVariant", ctx, variantID).Return(&catalog.Variant{}, nil)
		comboRepo.On("FindBySlug", ctx, "combo-gia-dinh").Return(nil, shared.ErrNotFound)
		comboRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Combo")).Return(nil)

		resp, err := service.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "combo-gia-dinh", resp.Slug)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, variantID, resp.Items[0].VariantID)
		assert.Equal(t, 2, resp.Items[0].Quantity)
		comboRepo.AssertExpectations(t)
	})

	t.Run("rejects unknown variant", func(t *testing.T) {
		comboRepo := new(MockComboRepository)
		productRepo := new(MockProductRepository)
		service := NewComboService(comboRepo, productRepo)

		productRepo.On("FindVariant", ctx, variantID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, req)

		require.Error(t, err)
		assert.Equal(t, "INVALID_VARIANT", domainCode(t, err))
		comboRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestComboService_ListActive(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	current, err := catalog.NewCombo("Combo Trua", "", "", vnd(200000), now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	expired, err := catalog.NewCombo("Combo Cu", "", "", vnd(180000), now.Add(-48*time.Hour), now.Add(-24*time.Hour))
	require.NoError(t, err)

	comboRepo := new(MockComboRepository)
	service := NewComboService(comboRepo, new(MockProductRepository))

	comboRepo.On("FindActive", ctx).Return([]catalog.Combo{*current, *expired}, nil)

	responses, err := service.ListActive(ctx)

	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, "combo-trua", responses[0].Slug)
}
