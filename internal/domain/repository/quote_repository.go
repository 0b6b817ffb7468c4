package repository

import (
	"context"
	"errors"

	"quoteapi/internal/domain/entity"
)

// ErrQuoteNotFound is returned when a quote does not exist.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteRepository defines persistence operations for quotes.
// Every read populates Quote.User with the owning account.
type QuoteRepository interface {
	// FindByID retrieves a quote by its ID regardless of owner.
	FindByID(ctx context.Context, id int64) (*entity.Quote, error)

	// FindByUserAndID retrieves a quote only if it belongs to userID.
	FindByUserAndID(ctx context.Context, userID, id int64) (*entity.Quote, error)

	// FindByUserID lists all quotes owned by userID.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Quote, error)

	// FindLatest lists the most recently created quotes, newest first.
	FindLatest(ctx context.Context, limit int) ([]*entity.Quote, error)

	// Search lists quotes matching every non-zero field of the filter.
	Search(ctx context.Context, filter entity.QuoteFilter) ([]*entity.Quote, error)

	// Create persists a new quote and fills in its generated ID.
	Create(ctx context.Context, quote *entity.Quote) error

	// Update modifies the content, attribution and date of an existing quote.
	Update(ctx context.Context, quote *entity.Quote) error

	// Delete removes a single quote.
	Delete(ctx context.Context, id int64) error

	// DeleteByUserID removes every quote owned by userID.
	DeleteByUserID(ctx context.Context, userID int64) error
}
