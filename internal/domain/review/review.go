package review

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// Review is a customer rating for a product, one to five stars with an
// optional comment.
type Review struct {
	shared.BaseAggregateRoot
	ProductID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:varchar(1000)"`
	Visible    bool      `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a review, rejecting ratings outside 1..5
func NewReview(productID, customerID uuid.UUID, rating int, comment string) (*Review, error) {
	if productID == uuid.Nil || customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Review must reference a product and a customer")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return &Review{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		CustomerID:        customerID,
		Rating:            rating,
		Comment:           strings.TrimSpace(comment),
		Visible:           true,
	}, nil
}

// Hide removes the review from the product page without deleting it
func (r *Review) Hide() {
	r.Visible = false
	r.Touch()
}

// Show restores a hidden review
func (r *Review) Show() {
	r.Visible = true
	r.Touch()
}
