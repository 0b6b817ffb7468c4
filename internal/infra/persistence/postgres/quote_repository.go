package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/repository"
	"quoteapi/internal/infra/persistence/model"
)

// quoteRepository implements the domain.QuoteRepository interface using GORM.
// Reads join the owning user so listings can show author details.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

func (repo *quoteRepository) withUser(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Joins("User")
}

func (repo *quoteRepository) FindByID(ctx context.Context, id int64) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.withUser(ctx).
		Where("quotes.id = ?", id).
		First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by id")
	}

	return toQuoteDomain(&quoteM), nil
}

func (repo *quoteRepository) FindByUserAndID(ctx context.Context, userID, id int64) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	err := repo.withUser(ctx).
		Where("quotes.id = ? AND quotes.user_id = ?", id, userID).
		First(&quoteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by user and id")
	}

	return toQuoteDomain(&quoteM), nil
}

func (repo *quoteRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Quote, error) {
	var quoteMs []*model.QuoteModel
	err := repo.withUser(ctx).
		Where("quotes.user_id = ?", userID).
		Order("quotes.id").
		Find(&quoteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list quotes by user")
	}

	return toQuoteDomainList(quoteMs), nil
}

// FindLatest returns up to limit quotes ordered by creation time, newest first.
func (repo *quoteRepository) FindLatest(ctx context.Context, limit int) ([]*entity.Quote, error) {
	var quoteMs []*model.QuoteModel
	err := repo.withUser(ctx).
		Order("quotes.creation_date DESC").
		Order("quotes.id DESC").
		Limit(limit).
		Find(&quoteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list latest quotes")
	}

	return toQuoteDomainList(quoteMs), nil
}

// Search applies every non-zero filter field. Text filters are
// case-insensitive substring matches, date bounds are inclusive.
func (repo *quoteRepository) Search(ctx context.Context, filter entity.QuoteFilter) ([]*entity.Quote, error) {
	query := repo.withUser(ctx)

	if filter.Content != "" {
		query = query.Where("quotes.quote_content ILIKE ?", containsPattern(filter.Content))
	}
	if filter.WhoSaid != "" {
		query = query.Where("quotes.who_said ILIKE ?", containsPattern(filter.WhoSaid))
	}
	if filter.SaidFrom != nil {
		query = query.Where("quotes.when_was_said >= ?", *filter.SaidFrom)
	}
	if filter.SaidTo != nil {
		query = query.Where("quotes.when_was_said <= ?", *filter.SaidTo)
	}
	if filter.Username != "" {
		query = query.Where(`"User".username ILIKE ?`, containsPattern(filter.Username))
	}
	if filter.DisplayedName != "" {
		query = query.Where(`"User".displayed_name ILIKE ?`, containsPattern(filter.DisplayedName))
	}
	if filter.CreatedFrom != nil {
		query = query.Where("quotes.creation_date >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("quotes.creation_date <= ?", *filter.CreatedTo)
	}

	var quoteMs []*model.QuoteModel
	if err := query.Order("quotes.id").Find(&quoteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search quotes")
	}

	return toQuoteDomainList(quoteMs), nil
}

func (repo *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Omit("User").Create(quoteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrQuoteSaveFailed.WrapMessage("quote owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrQuoteSaveFailed.WrapMessage("missing required quote information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote")
	}

	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreationDate

	return nil
}

// Update writes content, attribution and date. Owner and creation time never change.
func (repo *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{ID: quote.ID}).
		Updates(map[string]any{
			"quote_content": quote.Content,
			"who_said":      quote.WhoSaid,
			"when_was_said": quote.WhenSaid,
		})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update quote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

func (repo *quoteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.QuoteModel{})
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete quote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

func (repo *quoteRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.QuoteModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete quotes of user")
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern that matches term literally anywhere.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:        data.ID,
		Content:   data.QuoteContent,
		WhoSaid:   data.WhoSaid,
		WhenSaid:  data.WhenWasSaid,
		UserID:    data.UserID,
		User:      toUserDomain(data.User),
		CreatedAt: data.CreationDate,
	}
}

func toQuoteDomainList(data []*model.QuoteModel) []*entity.Quote {
	quotes := make([]*entity.Quote, 0, len(data))
	for _, quoteM := range data {
		quotes = append(quotes, toQuoteDomain(quoteM))
	}

	return quotes
}

func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	return &model.QuoteModel{
		ID:           data.ID,
		QuoteContent: data.Content,
		WhoSaid:      data.WhoSaid,
		WhenWasSaid:  data.WhenSaid,
		UserID:       data.UserID,
		CreationDate: data.CreatedAt,
	}
}
