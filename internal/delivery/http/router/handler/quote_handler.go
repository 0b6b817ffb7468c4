package handler

import (
	"net/http"
	"strings"
	"time"

	deliverycontext "quoteapi/internal/delivery/context"
	"quoteapi/internal/delivery/http/response"
	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// QuoteHandler serves the quote endpoints.
type QuoteHandler struct {
	uc usecase.QuoteUsecase
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// ListLatest returns the most recently created quotes.
func (h *QuoteHandler) ListLatest(c echo.Context) error {
	quotes, err := h.uc.ListLatest(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQuoteResponses(quotes), "")
}

// ListByUser returns every quote saved by the user in the path.
func (h *QuoteHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}

	quotes, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQuoteResponses(quotes), "")
}

// GetByUser returns one quote of the user in the path.
func (h *QuoteHandler) GetByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return err
	}
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	quote, err := h.uc.GetByUser(c.Request().Context(), userID, quoteID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQuoteResponse(quote), "")
}

// Search filters quotes by the query string.
func (h *QuoteHandler) Search(c echo.Context) error {
	var req SearchQuotesRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid query string"))
	}

	filter, err := req.toFilter()
	if err != nil {
		return err
	}

	quotes, err := h.uc.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newQuoteResponses(quotes), "")
}

// Create saves a quote owned by the caller.
func (h *QuoteHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	content, err := bindQuoteContent(c)
	if err != nil {
		return err
	}

	quote, err := h.uc.Create(c.Request().Context(), &usecase.CreateQuoteInput{
		UserID:       userID,
		QuoteContent: content,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newQuoteResponse(quote), "Quote created successfully")
}

// Update replaces a quote the caller owns.
func (h *QuoteHandler) Update(c echo.Context) error {
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	content, err := bindQuoteContent(c)
	if err != nil {
		return err
	}

	if err := h.uc.Update(c.Request().Context(), &usecase.UpdateQuoteInput{
		Token:        deliverycontext.GetToken(c),
		QuoteID:      quoteID,
		QuoteContent: content,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// Delete removes a quote the caller owns.
func (h *QuoteHandler) Delete(c echo.Context) error {
	quoteID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), &usecase.DeleteQuoteInput{
		Token:   deliverycontext.GetToken(c),
		QuoteID: quoteID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func bindQuoteContent(c echo.Context) (usecase.QuoteContent, error) {
	var req QuoteRequest
	if err := bindBody(c, &req, func(r *QuoteRequest) {
		r.Quote = strings.TrimSpace(r.Quote)
		r.SaidBy = strings.TrimSpace(r.SaidBy)
		r.When = strings.TrimSpace(r.When)
	}); err != nil {
		return usecase.QuoteContent{}, err
	}

	// The validator already checked the layout.
	when, _ := time.Parse(entity.DateLayout, req.When)

	return usecase.QuoteContent{
		Content:  req.Quote,
		WhoSaid:  req.SaidBy,
		WhenSaid: when,
	}, nil
}
