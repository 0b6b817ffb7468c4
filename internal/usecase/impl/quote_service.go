package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "quoteapi/internal/delivery/context"
	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/repository"
	"quoteapi/internal/domain/service"
	"quoteapi/internal/usecase"
)

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	txManager repository.TransactionManager
	quoteRepo repository.QuoteRepository
	userRepo  repository.UserRepository
	guard     service.OwnershipGuard
	now       func() time.Time
	logger    *slog.Logger
}

// QuoteServiceParams holds dependencies for QuoteService, injected by Fx.
type QuoteServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QuoteRepo repository.QuoteRepository
	UserRepo  repository.UserRepository
	Guard     service.OwnershipGuard
	Logger    *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(params QuoteServiceParams) usecase.QuoteUsecase {
	return &quoteService{
		txManager: params.TxManager,
		quoteRepo: params.QuoteRepo,
		userRepo:  params.UserRepo,
		guard:     params.Guard,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *quoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *quoteService) ListLatest(ctx context.Context) ([]*entity.Quote, error) {
	quotes, err := srv.quoteRepo.FindLatest(ctx, usecase.LatestQuotesLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest quotes")
	}

	return quotes, nil
}

func (srv *quoteService) ListByUser(ctx context.Context, userID int64) ([]*entity.Quote, error) {
	quotes, err := srv.quoteRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotes of user")
	}

	return quotes, nil
}

func (srv *quoteService) GetByUser(ctx context.Context, userID, quoteID int64) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindByUserAndID(ctx, userID, quoteID)
	if err != nil {
		return nil, mapQuoteNotFound(err, "failed to load quote")
	}

	return quote, nil
}

func (srv *quoteService) Search(ctx context.Context, filter entity.QuoteFilter) ([]*entity.Quote, error) {
	filter.Content = strings.TrimSpace(filter.Content)
	filter.WhoSaid = strings.TrimSpace(filter.WhoSaid)
	filter.Username = strings.TrimSpace(filter.Username)
	filter.DisplayedName = strings.TrimSpace(filter.DisplayedName)

	quotes, err := srv.quoteRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search quotes")
	}

	return quotes, nil
}

// Create saves a quote owned by the caller and returns it with author details.
func (srv *quoteService) Create(ctx context.Context, input *usecase.CreateQuoteInput) (*entity.Quote, error) {
	owner, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Authenticated user does not exist",
				slog.Int64("userID", input.UserID),
				slog.Any("error", domainerrors.ErrPreconditionViolation),
			)

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "authenticated user does not exist")
		}

		return nil, errors.Wrap(err, "failed to load quote owner")
	}

	quote := &entity.Quote{
		Content:   strings.TrimSpace(input.Content),
		WhoSaid:   strings.TrimSpace(input.WhoSaid),
		WhenSaid:  input.WhenSaid,
		UserID:    owner.ID,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.quoteRepo.Create(ctx, quote); err != nil {
		return nil, errors.Wrap(err, "failed to create quote")
	}
	quote.User = owner
	srv.log(ctx).Debug("Quote created", slog.Int64("userID", owner.ID), slog.Int64("quoteID", quote.ID))

	return quote, nil
}

// Update replaces a quote's content if the token's bearer owns it.
func (srv *quoteService) Update(ctx context.Context, input *usecase.UpdateQuoteInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.QuoteRepo()

		quote, err := srv.authorizedQuote(ctx, quoteRepo, input.Token, input.QuoteID)
		if err != nil {
			return err
		}

		quote.Content = strings.TrimSpace(input.Content)
		quote.WhoSaid = strings.TrimSpace(input.WhoSaid)
		quote.WhenSaid = input.WhenSaid

		return mapQuoteNotFound(quoteRepo.Update(ctx, quote), "failed to update quote")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute quote update transaction")
	}

	return nil
}

// Delete removes a quote if the token's bearer owns it.
func (srv *quoteService) Delete(ctx context.Context, input *usecase.DeleteQuoteInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.QuoteRepo()

		if _, err := srv.authorizedQuote(ctx, quoteRepo, input.Token, input.QuoteID); err != nil {
			return err
		}

		return mapQuoteNotFound(quoteRepo.Delete(ctx, input.QuoteID), "failed to delete quote")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute quote delete transaction")
	}

	return nil
}

// authorizedQuote loads the quote and asks the guard whether the token's
// bearer may mutate it. The stored owner is the only input to that decision.
func (srv *quoteService) authorizedQuote(ctx context.Context, quoteRepo repository.QuoteRepository, token string, quoteID int64) (*entity.Quote, error) {
	quote, err := quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, mapQuoteNotFound(err, "failed to load quote")
	}

	decision := srv.guard.AuthorizeMutation(token, quote.UserID)
	if !decision.Allowed() {
		srv.log(ctx).Warn("Quote mutation denied",
			slog.Int64("quoteID", quoteID),
			slog.Int64("userID", decision.UserID),
			slog.String("reason", string(decision.Reason)),
		)

		return nil, decision.Err()
	}

	return quote, nil
}

func mapQuoteNotFound(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrQuoteNotFound) {
		return errors.Wrap(domainerrors.ErrQuoteNotFound, msg)
	}

	return errors.Wrap(err, msg)
}
