package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"quoteapi/internal/delivery/http/response"
	domainerrors "quoteapi/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.Response, *bytes.Buffer) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))
	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	m.HandleHTTPError(err, echo.New().NewContext(req, rec))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, &logs
}

func TestHandleHTTPError(t *testing.T) {
	t.Run("app error keeps 4xx details", func(t *testing.T) {
		rec, body, logs := handle(t, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("when is required"), "bind"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, body.Success)
		require.NotNil(t, body.Error)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "when is required", body.Error.Details)
		assert.Zero(t, logs.Len())
	})

	t.Run("app 5xx is logged", func(t *testing.T) {
		rec, body, logs := handle(t, domainerrors.ErrPreconditionViolation.WithDetails("stored password hash: bad version"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, body.Error.Details)
		assert.Contains(t, logs.String(), "bad version")
	})

	t.Run("echo error with string message", func(t *testing.T) {
		rec, body, _ := handle(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "Request Entity Too Large", body.Message)
	})

	t.Run("echo error with non string message", func(t *testing.T) {
		rec, body, _ := handle(t, echo.NewHTTPError(http.StatusNotFound, map[string]string{"x": "y"}))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	})

	t.Run("unknown errors are generic", func(t *testing.T) {
		rec, body, logs := handle(t, errors.New("dial tcp 10.0.0.5:5432"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
		assert.NotContains(t, rec.Body.String(), "10.0.0.5")
		assert.Contains(t, logs.String(), "10.0.0.5")
	})
}
