package content

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// FAQStatus is derived from the answer field, never stored
type FAQStatus string

const (
	FAQPending  FAQStatus = "pending"
	FAQAnswered FAQStatus = "answered"
)

// FAQ is a customer-submitted question. Its status is not a column: a
// question with a non-empty answer is answered, otherwise pending.
type FAQ struct {
	shared.BaseAggregateRoot
	CustomerID *uuid.UUID `gorm:"type:uuid;index"`
	Question   string     `gorm:"type:varchar(500);not null"`
	Answer     string     `gorm:"type:text"`
	Published  bool       `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (FAQ) TableName() string {
	return "faqs"
}

// NewFAQ records a submitted question
func NewFAQ(customerID *uuid.UUID, question string) (*FAQ, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Question cannot be empty")
	}
	return &FAQ{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Question:          question,
	}, nil
}

// Status derives the state from the answer
func (f *FAQ) Status() FAQStatus {
	if strings.TrimSpace(f.Answer) != "" {
		return FAQAnswered
	}
	return FAQPending
}

// Respond records or replaces the staff answer
func (f *FAQ) Respond(answer string) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return shared.NewDomainError("INVALID_ANSWER", "Answer cannot be empty")
	}
	f.Answer = answer
	f.Touch()
	return nil
}

// ClearAnswer drops the answer, returning the question to pending
func (f *FAQ) ClearAnswer() {
	f.Answer = ""
	f.Published = false
	f.Touch()
}

// SetPublished toggles visibility on the public FAQ page. Only answered
// questions can be published.
func (f *FAQ) SetPublished(published bool) error {
	if published && f.Status() != FAQAnswered {
		return shared.NewDomainError("FAQ_UNANSWERED", "Only answered questions can be published")
	}
	f.Published = published
	f.Touch()
	return nil
}
