package usecase

import (
	"context"
	"time"

	"quoteapi/internal/domain/entity"
)

// LatestQuotesLimit is how many quotes the front page lists.
const LatestQuotesLimit = 5

// QuoteContent is the user-editable part of a quote.
type QuoteContent struct {
	Content  string
	WhoSaid  string
	WhenSaid time.Time
}

// CreateQuoteInput saves a quote owned by the authenticated caller.
type CreateQuoteInput struct {
	UserID int64
	QuoteContent
}

// UpdateQuoteInput replaces the content of a quote. Token is the caller's
// raw bearer token, checked against the quote's owner.
type UpdateQuoteInput struct {
	Token   string
	QuoteID int64
	QuoteContent
}

// DeleteQuoteInput removes a quote on behalf of the bearer of Token.
type DeleteQuoteInput struct {
	Token   string
	QuoteID int64
}

// QuoteUsecase defines the interface for quote operations.
// Reads are public; mutations of existing quotes are restricted to their owner.
type QuoteUsecase interface {
	ListLatest(ctx context.Context) ([]*entity.Quote, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Quote, error)
	GetByUser(ctx context.Context, userID, quoteID int64) (*entity.Quote, error)
	Search(ctx context.Context, filter entity.QuoteFilter) ([]*entity.Quote, error)
	Create(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error)
	Update(ctx context.Context, input *UpdateQuoteInput) error
	Delete(ctx context.Context, input *DeleteQuoteInput) error
}
