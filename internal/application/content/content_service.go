package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/content"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// BannerService manages the home-page carousel
type BannerService struct {
	bannerRepo content.BannerRepository
}

// NewBannerService creates a new BannerService
func NewBannerService(bannerRepo content.BannerRepository) *BannerService {
	return &BannerService{bannerRepo: bannerRepo}
}

// Create adds a carousel slide
func (s *BannerService) Create(ctx context.Context, req CreateBannerRequest) (*BannerResponse, error) {
	banner, err := content.NewBanner(req.Title, req.ImagePath, req.LinkURL, req.Position)
	if err != nil {
		return nil, err
	}
	if err := s.bannerRepo.Save(ctx, banner); err != nil {
		return nil, err
	}
	resp := ToBannerResponse(banner)
	return &resp, nil
}

// Deactivate pulls a slide from the carousel
func (s *BannerService) Deactivate(ctx context.Context, id uuid.UUID) error {
	banner, err := s.bannerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	banner.Deactivate()
	return s.bannerRepo.Save(ctx, banner)
}

// Delete removes a slide
func (s *BannerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.bannerRepo.Delete(ctx, id)
}

// ListActive lists the slides shown on the storefront, in position order
func (s *BannerService) ListActive(ctx context.Context) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]BannerResponse, len(banners))
	for i := range banners {
		responses[i] = ToBannerResponse(&banners[i])
	}
	return responses, nil
}

// ListAll lists slides for the back office
func (s *BannerService) ListAll(ctx context.Context, filter shared.Filter) ([]BannerResponse, error) {
	banners, err := s.bannerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]BannerResponse, len(banners))
	for i := range banners {
		responses[i] = ToBannerResponse(&banners[i])
	}
	return responses, nil
}

// NewsService manages storefront articles
type NewsService struct {
	newsRepo content.NewsRepository
}

// NewNewsService creates a new NewsService
func NewNewsService(newsRepo content.NewsRepository) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

// Create drafts an article, publishing it immediately when requested
func (s *NewsService) Create(ctx context.Context, req CreateNewsRequest) (*NewsResponse, error) {
	article, err := content.NewNews(req.Title, req.Slug, req.Summary, req.Body, req.CoverImage)
	if err != nil {
		return nil, err
	}
	if _, err := s.newsRepo.FindBySlug(ctx, article.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Article with this slug already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if req.Publish {
		article.Publish(time.Now())
	}
	if err := s.newsRepo.Save(ctx, article); err != nil {
		return nil, err
	}
	resp := ToNewsResponse(article)
	return &resp, nil
}

// Publish makes an article visible from now on
func (s *NewsService) Publish(ctx context.Context, id uuid.UUID) (*NewsResponse, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish pulls an article back to draft
func (s *NewsService) Unpublish(ctx context.Context, id uuid.UUID) (*NewsResponse, error) {
	return s.setPublished(ctx, id, false)
}

func (s *NewsService) setPublished(ctx context.Context, id uuid.UUID, published bool) (*NewsResponse, error) {
	article, err := s.newsRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if published {
		article.Publish(time.Now())
	} else {
		article.Unpublish()
	}
	if err := s.newsRepo.Save(ctx, article); err != nil {
		return nil, err
	}
	resp := ToNewsResponse(article)
	return &resp, nil
}

// Delete removes an article
func (s *NewsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.newsRepo.Delete(ctx, id)
}

// GetBySlug retrieves a published article for the storefront. Drafts
// come back as not found.
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*NewsResponse, error) {
	article, err := s.newsRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished(time.Now()) {
		return nil, shared.ErrNotFound
	}
	resp := ToNewsResponse(article)
	return &resp, nil
}

// ListPublished lists published articles for the storefront, paginated
func (s *NewsService) ListPublished(ctx context.Context, filter shared.Filter) (*shared.Paginated[NewsResponse], error) {
	page, err := s.newsRepo.FindPublished(ctx, filter)
	if err != nil {
		return nil, err
	}
	return mapNewsPage(page), nil
}

// ListAll lists every article for the back office
func (s *NewsService) ListAll(ctx context.Context, filter shared.Filter) ([]NewsResponse, error) {
	articles, err := s.newsRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]NewsResponse, len(articles))
	for i := range articles {
		responses[i] = ToNewsResponse(&articles[i])
	}
	return responses, nil
}

func mapNewsPage(page *shared.Paginated[content.News]) *shared.Paginated[NewsResponse] {
	items := make([]NewsResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToNewsResponse(&page.Items[i])
	}
	return &shared.Paginated[NewsResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

// FAQService manages customer questions and staff answers
type FAQService struct {
	faqRepo content.FAQRepository
}

// NewFAQService creates a new FAQService
func NewFAQService(faqRepo content.FAQRepository) *FAQService {
	return &FAQService{faqRepo: faqRepo}
}

// Submit records a customer question. The customer id is optional so
// anonymous visitors can ask too.
func (s *FAQService) Submit(ctx context.Context, customerID *uuid.UUID, req SubmitQuestionRequest) (*FAQResponse, error) {
	faq, err := content.NewFAQ(customerID, req.Question)
	if err != nil {
		return nil, err
	}
	if err := s.faqRepo.Save(ctx, faq); err != nil {
		return nil, err
	}
	resp := ToFAQResponse(faq)
	return &resp, nil
}

// Answer records the staff answer, optionally publishing in the same step
func (s *FAQService) Answer(ctx context.Context, id uuid.UUID, req AnswerRequest) (*FAQResponse, error) {
	faq, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := faq.Respond(req.Answer); err != nil {
		return nil, err
	}
	if req.Publish {
		if err := faq.SetPublished(true); err != nil {
			return nil, err
		}
	}
	if err := s.faqRepo.Save(ctx, faq); err != nil {
		return nil, err
	}
	resp := ToFAQResponse(faq)
	return &resp, nil
}

// SetPublished toggles visibility on the public FAQ page
func (s *FAQService) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*FAQResponse, error) {
	faq, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := faq.SetPublished(published); err != nil {
		return nil, err
	}
	if err := s.faqRepo.Save(ctx, faq); err != nil {
		return nil, err
	}
	resp := ToFAQResponse(faq)
	return &resp, nil
}

// Delete removes a question
func (s *FAQService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.faqRepo.Delete(ctx, id)
}

// ListPublished lists the public FAQ page entries
func (s *FAQService) ListPublished(ctx context.Context) ([]FAQResponse, error) {
	faqs, err := s.faqRepo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]FAQResponse, len(faqs))
	for i := range faqs {
		responses[i] = ToFAQResponse(&faqs[i])
	}
	return responses, nil
}

// ListUnanswered lists the pending queue for the back office
func (s *FAQService) ListUnanswered(ctx context.Context, filter shared.Filter) (*shared.Paginated[FAQResponse], error) {
	page, err := s.faqRepo.FindUnanswered(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]FAQResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToFAQResponse(&page.Items[i])
	}
	return &shared.Paginated[FAQResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// ListAll lists every question for the back office
func (s *FAQService) ListAll(ctx context.Context, filter shared.Filter) ([]FAQResponse, error) {
	faqs, err := s.faqRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]FAQResponse, len(faqs))
	for i := range faqs {
		responses[i] = ToFAQResponse(&faqs[i])
	}
	return responses, nil
}
