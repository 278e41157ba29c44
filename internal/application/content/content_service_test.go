package content

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pizzeria/backend/internal/domain/content"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// MockBannerRepository is a mock implementation of BannerRepository
type MockBannerRepository struct {
	mock.Mock
}

func (m *MockBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Banner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Banner), args.Error(1)
}

func (m *MockBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Banner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Banner), args.Error(1)
}

func (m *MockBannerRepository) Save(ctx context.Context, entity *content.Banner) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBannerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBannerRepository) FindActive(ctx context.Context) ([]content.Banner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.Banner), args.Error(1)
}

// MockNewsRepository is a mock implementation of NewsRepository
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.News, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.News), args.Error(1)
}

func (m *MockNewsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.News, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.News), args.Error(1)
}

func (m *MockNewsRepository) Save(ctx context.Context, entity *content.News) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNewsRepository) FindBySlug(ctx context.Context, slug string) (*content.News, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.News), args.Error(1)
}

func (m *MockNewsRepository) FindPublished(ctx context.Context, filter shared.Filter) (*shared.Paginated[content.News], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[content.News]), args.Error(1)
}

// MockFAQRepository is a mock implementation of FAQRepository
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.FAQ), args.Error(1)
}

func (m *MockFAQRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.FAQ, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.FAQ), args.Error(1)
}

func (m *MockFAQRepository) Save(ctx context.Context, entity *content.FAQ) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockFAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFAQRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFAQRepository) FindPublished(ctx context.Context) ([]content.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.FAQ), args.Error(1)
}

func (m *MockFAQRepository) FindUnanswered(ctx context.Context, filter shared.Filter) (*shared.Paginated[content.FAQ], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[content.FAQ]), args.Error(1)
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var de *shared.DomainError
	require.True(t, errors.As(err, &de))
	return de.Code
}

func TestFAQService_Answer(t *testing.T) {
	ctx := context.Background()

	t.Run("answering flips status to answered", func(t *testing.T) {
		faq, err := content.NewFAQ(nil, "Do you deliver to district 7?")
		require.NoError(t, err)

		faqRepo := new(MockFAQRepository)
		service := NewFAQService(faqRepo)
		faqRepo.On("FindByID", ctx, faq.ID).Return(faq, nil)
		faqRepo.On("Save", ctx, faq).Return(nil)

		resp, err := service.Answer(ctx, faq.ID, AnswerRequest{Answer: "Yes, city-wide.", Publish: true})

		require.NoError(t, err)
		assert.Equal(t, content.FAQAnswered, resp.Status)
		assert.True(t, resp.Published)
	})

	t.Run("publishing an unanswered question fails", func(t *testing.T) {
		faq, err := content.NewFAQ(nil, "Do you deliver to district 7?")
		require.NoError(t, err)

		faqRepo := new(MockFAQRepository)
		service := NewFAQService(faqRepo)
		faqRepo.On("FindByID", ctx, faq.ID).Return(faq, nil)

		_, pubErr := service.SetPublished(ctx, faq.ID, true)

		require.Error(t, pubErr)
		assert.Equal(t, "FAQ_UNANSWERED", domainCode(t, pubErr))
		faqRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestNewsService_GetBySlug(t *testing.T) {
	ctx := context.Background()

	article, err := content.NewNews("Grand Opening", "", "", "We are open!", "")
	require.NoError(t, err)

	t.Run("drafts are hidden", func(t *testing.T) {
		newsRepo := new(MockNewsRepository)
		service := NewNewsService(newsRepo)
		newsRepo.On("FindBySlug", ctx, "grand-opening").Return(article, nil)

		_, getErr := service.GetBySlug(ctx, "grand-opening")

		require.ErrorIs(t, getErr, shared.ErrNotFound)
	})

	t.Run("published articles are served", func(t *testing.T) {
		article.Publish(time.Now().Add(-time.Minute))

		newsRepo := new(MockNewsRepository)
		service := NewNewsService(newsRepo)
		newsRepo.On("FindBySlug", ctx, "grand-opening").Return(article, nil)

		resp, getErr := service.GetBySlug(ctx, "grand-opening")

		require.NoError(t, getErr)
		assert.Equal(t, "Grand Opening", resp.Title)
	})
}

func TestBannerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a slide", func(t *testing.T) {
		bannerRepo := new(MockBannerRepository)
		service := NewBannerService(bannerRepo)
		bannerRepo.On("Save", ctx, mock.AnythingOfType("*content.Banner")).Return(nil)

		resp, err := service.Create(ctx, CreateBannerRequest{ImagePath: "/img/tet.jpg", Position: 1})

		require.NoError(t, err)
		assert.True(t, resp.Active)
	})

	t.Run("rejects a slide without image", func(t *testing.T) {
		bannerRepo := new(MockBannerRepository)
		service := NewBannerService(bannerRepo)

		_, err := service.Create(ctx, CreateBannerRequest{Title: "Tet sale"})

		require.Error(t, err)
		assert.Equal(t, "INVALID_IMAGE", domainCode(t, err))
	})
}
