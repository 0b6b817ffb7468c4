package handler

import (
	"strconv"
	"strings"
	"time"

	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	Username      string `json:"username" validate:"required,max=32,alphanum"`
	DisplayedName string `json:"displayedName" validate:"required,max=50"`
	Password      string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangeInfoRequest is the body of PUT /users/change_info.
type ChangeInfoRequest struct {
	DisplayedName string `json:"displayedName" validate:"required,max=50"`
}

// ChangePasswordRequest is the body of PUT /users/change_password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// QuoteRequest is the body of POST /quotes and PUT /quotes/:id.
type QuoteRequest struct {
	Quote  string `json:"quote" validate:"required"`
	SaidBy string `json:"saidBy" validate:"required,max=255"`
	When   string `json:"when" validate:"required,datetime=2006-01-02"`
}

// SearchQuotesRequest holds the query string of GET /quotes/search.
// Every parameter is optional.
type SearchQuotesRequest struct {
	Content           string `query:"content"`
	WhoSaid           string `query:"who_said"`
	StartSaidDate     string `query:"start_said_date"`
	EndSaidDate       string `query:"end_said_date"`
	Username          string `query:"username"`
	DisplayedName     string `query:"displayed_name"`
	StartCreationDate string `query:"start_creation_date"`
	EndCreationDate   string `query:"end_creation_date"`
}

// bindBody decodes the JSON body into req and runs the struct validator.
// normalize, when set, runs between the two.
func bindBody[T any](c echo.Context, req *T, normalize func(*T)) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("request body must be a JSON object"))
	}
	if normalize != nil {
		normalize(req)
	}

	return errors.WithStack(c.Validate(req))
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer"))
	}

	return id, nil
}

// toFilter converts the query string into a search filter. Malformed dates are rejected.
func (r *SearchQuotesRequest) toFilter() (entity.QuoteFilter, error) {
	filter := entity.QuoteFilter{
		Content:       strings.TrimSpace(r.Content),
		WhoSaid:       strings.TrimSpace(r.WhoSaid),
		Username:      strings.TrimSpace(r.Username),
		DisplayedName: strings.TrimSpace(r.DisplayedName),
	}

	var err error
	if filter.SaidFrom, err = parseDay("start_said_date", r.StartSaidDate); err != nil {
		return filter, err
	}
	if filter.SaidTo, err = parseDay("end_said_date", r.EndSaidDate); err != nil {
		return filter, err
	}
	if filter.CreatedFrom, err = parseCreationBound("start_creation_date", r.StartCreationDate, false); err != nil {
		return filter, err
	}
	if filter.CreatedTo, err = parseCreationBound("end_creation_date", r.EndCreationDate, true); err != nil {
		return filter, err
	}

	return filter, nil
}

func parseDay(name, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	day, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a date formatted as YYYY-MM-DD"))
	}

	return &day, nil
}

// parseCreationBound accepts "YYYY-MM-DD HH:mm" or "YYYY-MM-DD". An end bound
// covers the whole minute or day it names.
func parseCreationBound(name, value string, end bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	layouts := []struct {
		layout string
		span   time.Duration
	}{
		{entity.DateTimeLayout, time.Minute},
		{entity.DateLayout, 24 * time.Hour},
	}
	for _, l := range layouts {
		t, err := time.Parse(l.layout, value)
		if err != nil {
			continue
		}
		if end {
			t = t.Add(l.span - time.Nanosecond)
		}

		return &t, nil
	}

	return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be formatted as YYYY-MM-DD or YYYY-MM-DD HH:mm"))
}
