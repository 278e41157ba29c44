package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/shared"
)

func TestCategoryService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		categoryRepo.On("FindBySlug", ctx, "pizza").Return(nil, shared.ErrNotFound)
		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := service.Create(ctx, CreateCategoryRequest{Name: "Pizza", Position: 1})

		require.NoError(t, err)
		assert.Equal(t, "pizza", resp.Slug)
		assert.Equal(t, 1, resp.Position)
		assert.True(t, resp.Active)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		service := NewCategoryService(categoryRepo)

		existing, err := catalog.NewCategory("Pizza", "", "", 0)
		require.NoError(t, err)
		categoryRepo.On("FindBySlug", ctx, "pizza").Return(existing, nil)

		_, createErr := service.Create(ctx, CreateCategoryRequest{Name: "Pizza"})

		require.Error(t, createErr)
		assert.Equal(t, "ALREADY_EXISTS", domainCode(t, createErr))
		categoryRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestCategoryService_Update(t *testing.T) {
	ctx := context.Background()

	category, err := catalog.NewCategory("Pizza", "", "", 1)
	require.NoError(t, err)

	categoryRepo := new(MockCategoryRepository)
	service := NewCategoryService(categoryRepo)

	categoryRepo.On("FindByID", ctx, category.ID).Return(category, nil)
	categoryRepo.On("Save", ctx, category).Return(nil)

	position := 5
	active := false
	resp, err := service.Update(ctx, category.ID, UpdateCategoryRequest{Position: &position, Active: &active})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Position)
	assert.False(t, resp.Active)
	categoryRepo.AssertExpectations(t)
}
