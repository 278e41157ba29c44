package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/catalog"
	"github.com/pizzeria/backend/internal/domain/review"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// SubmitReviewRequest rates a product
type SubmitReviewRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=1000"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	ProductID  uuid.UUID `json:"product_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	Visible    bool      `json:"visible"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToReviewResponse maps a review to its response shape
func ToReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		ProductID:  r.ProductID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		Visible:    r.Visible,
		CreatedAt:  r.CreatedAt,
	}
}

// ReviewService handles product ratings, one per customer and product
type ReviewService struct {
	reviewRepo  review.ReviewRepository
	productRepo catalog.ProductRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo review.ReviewRepository, productRepo catalog.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Submit records a rating. A customer may review each product once.
func (s *ReviewService) Submit(ctx context.Context, customerID uuid.UUID, req SubmitReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	if _, err := s.reviewRepo.FindByCustomerAndProduct(ctx, customerID, req.ProductID); err == nil {
		return nil, shared.NewDomainError("ALREADY_REVIEWED", "You have already reviewed this product")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	r, err := review.NewReview(req.ProductID, customerID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}
	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToReviewResponse(r)
	return &resp, nil
}

// ListByProduct lists the visible reviews on a product page, paginated
func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[ReviewResponse], error) {
	page, err := s.reviewRepo.FindByProduct(ctx, productID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]ReviewResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToReviewResponse(&page.Items[i])
	}
	return &shared.Paginated[ReviewResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// Summary returns the rating count and average for a product page header
func (s *ReviewService) Summary(ctx context.Context, productID uuid.UUID) (*review.Summary, error) {
	return s.reviewRepo.Summarize(ctx, productID)
}

// SetVisible hides or restores a review. Moderation only.
func (s *ReviewService) SetVisible(ctx context.Context, id uuid.UUID, visible bool) (*ReviewResponse, error) {
	r, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if visible {
		r.Show()
	} else {
		r.Hide()
	}
	if err := s.reviewRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	resp := ToReviewResponse(r)
	return &resp, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reviewRepo.Delete(ctx, id)
}
