package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pizzeria/backend/internal/domain/content"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// GormBannerRepository implements content.BannerRepository using GORM
type GormBannerRepository struct {
	db *gorm.DB
}

// NewGormBannerRepository creates a new GormBannerRepository
func NewGormBannerRepository(db *gorm.DB) *GormBannerRepository {
	return &GormBannerRepository{db: db}
}

// FindByID finds a banner by its ID
func (r *GormBannerRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.Banner, error) {
	var banner content.Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &banner, nil
}

// FindAll finds banners matching the filter
func (r *GormBannerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.Banner, error) {
	var banners []content.Banner
	query := applySort(r.db.WithContext(ctx).Model(&content.Banner{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// FindActive finds active banners in carousel order
func (r *GormBannerRepository) FindActive(ctx context.Context) ([]content.Banner, error) {
	var banners []content.Banner
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("position ASC").
		Find(&banners).Error; err != nil {
		return nil, err
	}
	return banners, nil
}

// Save creates or updates a banner
func (r *GormBannerRepository) Save(ctx context.Context, banner *content.Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

// Delete deletes a banner
func (r *GormBannerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.Banner{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts banners
func (r *GormBannerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&content.Banner{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormNewsRepository implements content.NewsRepository using GORM
type GormNewsRepository struct {
	db *gorm.DB
}

// NewGormNewsRepository creates a new GormNewsRepository
func NewGormNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

// FindByID finds an article by its ID
func (r *GormNewsRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.News, error) {
	var article content.News
	if err := r.db.WithContext(ctx).First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindBySlug finds an article by its slug
func (r *GormNewsRepository) FindBySlug(ctx context.Context, slug string) (*content.News, error) {
	var article content.News
	if err := r.db.WithContext(ctx).First(&article, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// FindAll finds articles matching the filter, drafts included
func (r *GormNewsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.News, error) {
	var articles []content.News
	query := r.db.WithContext(ctx).Model(&content.News{})
	if filter.Search != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Search+"%")
	}
	query = applySort(query, filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindPublished finds published articles, newest first
func (r *GormNewsRepository) FindPublished(ctx context.Context, filter shared.Filter) (*shared.Paginated[content.News], error) {
	query := r.db.WithContext(ctx).Model(&content.News{}).
		Where("published_at IS NOT NULL AND published_at <= ?", time.Now())
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var articles []content.News
	if err := applyPagination(query.Order("published_at DESC"), filter).Find(&articles).Error; err != nil {
		return nil, err
	}
	result := shared.NewPaginated(articles, total, filter.Page, filter.Limit())
	return &result, nil
}

// Save creates or updates an article
func (r *GormNewsRepository) Save(ctx context.Context, article *content.News) error {
	return r.db.WithContext(ctx).Save(article).Error
}

// Delete deletes an article
func (r *GormNewsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.News{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts articles
func (r *GormNewsRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&content.News{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormFAQRepository implements content.FAQRepository using GORM
type GormFAQRepository struct {
	db *gorm.DB
}

// NewGormFAQRepository creates a new GormFAQRepository
func NewGormFAQRepository(db *gorm.DB) *GormFAQRepository {
	return &GormFAQRepository{db: db}
}

// FindByID finds a question by its ID
func (r *GormFAQRepository) FindByID(ctx context.Context, id uuid.UUID) (*content.FAQ, error) {
	var faq content.FAQ
	if err := r.db.WithContext(ctx).First(&faq, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &faq, nil
}

// FindAll finds questions matching the filter
func (r *GormFAQRepository) FindAll(ctx context.Context, filter shared.Filter) ([]content.FAQ, error) {
	var faqs []content.FAQ
	query := applySort(r.db.WithContext(ctx).Model(&content.FAQ{}), filter, CommonSortFields, "created_at")
	if err := applyPagination(query, filter).Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// FindPublished finds published questions for the public FAQ page
func (r *GormFAQRepository) FindPublished(ctx context.Context) ([]content.FAQ, error) {
	var faqs []content.FAQ
	if err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("updated_at DESC").
		Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// FindUnanswered finds questions without an answer, oldest first.
// Pending status is derived from the answer column.
func (r *GormFAQRepository) FindUnanswered(ctx context.Context, filter shared.Filter) (*shared.Paginated[content.FAQ], error) {
	query := r.db.WithContext(ctx).Model(&content.FAQ{}).
		Where("answer IS NULL OR TRIM(answer) = ''")
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}
	var faqs []content.FAQ
	if err := applyPagination(query.Order("created_at ASC"), filter).Find(&faqs).Error; err != nil {
		return nil, err
	}
	result := shared.NewPaginated(faqs, total, filter.Page, filter.Limit())
	return &result, nil
}

// Save creates or updates a question
func (r *GormFAQRepository) Save(ctx context.Context, faq *content.FAQ) error {
	return r.db.WithContext(ctx).Save(faq).Error
}

// Delete deletes a question
func (r *GormFAQRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&content.FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts questions
func (r *GormFAQRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&content.FAQ{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
