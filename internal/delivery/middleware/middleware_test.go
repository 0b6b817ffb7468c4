package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quoteapi/config"
	deliverycontext "quoteapi/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "keeps client id", incoming: "req-123", keep: true},
		{name: "generates when missing"},
		{name: "replaces ids with spaces", incoming: "bad id"},
		{name: "replaces oversized ids", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewRequestIDMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := m.Process(func(c echo.Context) error {
				ctx := c.Request().Context()
				seen = deliverycontext.RequestIDFromContext(ctx)
				deliverycontext.GetLogger(ctx).Info("inside")

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))

			var line map[string]any
			require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
			assert.Equal(t, seen, line["request_id"])
		})
	}
}

func TestLoggerMiddlewareLogsFinalStatus(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	m := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	req := httptest.NewRequest(http.MethodPost, "/users/register?debug=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetIdentity(c, 9, "token")

	err := m.Handle(func(echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "taken")
	})(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, float64(http.StatusConflict), line["status"])
	assert.Equal(t, float64(9), line["user_id"])
	assert.NotContains(t, line, "query", "query strings are only logged in debug mode")
	assert.NotContains(t, logs.String(), "token")
}
