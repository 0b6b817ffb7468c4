package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quoteapi/internal/delivery/http/middleware"
	"quoteapi/internal/delivery/http/router/handler"
	"quoteapi/internal/delivery/http/validator"
	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/service"
	mockservice "quoteapi/internal/mocks/service"
	mockusecase "quoteapi/internal/mocks/usecase"
	"quoteapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	validToken   = "valid.token.value"
	expiredToken = "expired.token.value"
)

type testServer struct {
	echo   *echo.Echo
	users  *mockusecase.MockUserUsecase
	quotes *mockusecase.MockQuoteUsecase
	tokens *mockservice.MockTokenService
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &testServer{
		echo:   echo.New(),
		users:  mockusecase.NewMockUserUsecase(t),
		quotes: mockusecase.NewMockQuoteUsecase(t),
		tokens: mockservice.NewMockTokenService(t),
	}
	s.echo.Validator = validator.New()
	s.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(s.users, logger),
		QuoteHandler:   handler.NewQuoteHandler(s.quotes),
		AuthMiddleware: middleware.NewAuthMiddleware(s.tokens, logger),
	}).RegisterRoutes(s.echo)

	s.tokens.EXPECT().ValidateToken(validToken).Return(&service.Claims{UserID: 1}, nil).Maybe()
	s.tokens.EXPECT().ValidateToken(expiredToken).
		Return(nil, &service.TokenError{Kind: service.TokenExpired}).Maybe()

	return s
}

func (s *testServer) do(t *testing.T, method, target, body, authorization string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}

	return rec, env
}

func sampleQuote() *entity.Quote {
	return &entity.Quote{
		ID:        3,
		Content:   "The secret of getting ahead is getting started.",
		WhoSaid:   "Mark Twain",
		WhenSaid:  time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		UserID:    7,
		User:      &entity.User{ID: 7, Username: "alice", DisplayedName: "Alice"},
		CreatedAt: time.Date(2024, 3, 1, 9, 5, 42, 0, time.UTC),
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestRegister(t *testing.T) {
	t.Run("trims fields and returns a token", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Username:      "alice",
			DisplayedName: "Alice Liddell",
			Password:      "Valid123!",
		}).Return(&usecase.AuthOutput{Token: "issued"}, nil)

		rec, env := s.do(t, http.MethodPost, "/users/register",
			`{"username":"  alice ","displayedName":" Alice Liddell ","password":"Valid123!"}`, "")

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"token":"issued"}`, string(env.Data))
	})

	t.Run("rejects non alphanumeric usernames", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, "/users/register",
			`{"username":"al ice","displayedName":"Alice","password":"Valid123!"}`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "username must contain only letters and digits", env.Error.Details)
	})

	t.Run("rejects long displayed names", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, "/users/register",
			`{"username":"alice","displayedName":"`+strings.Repeat("x", 51)+`","password":"Valid123!"}`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "displayedName must be at most 50 characters long", env.Error.Details)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, "/users/register", `{"username":`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})

	t.Run("surfaces password policy failures", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrPasswordStrength.WithDetails("password must contain at least one number"), "register"))

		rec, env := s.do(t, http.MethodPost, "/users/register",
			`{"username":"alice","displayedName":"Alice","password":"NoDigits!"}`, "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "PASSWORD_STRENGTH", env.Error.Code)
		assert.Equal(t, "password must contain at least one number", env.Error.Details)
	})

	t.Run("duplicate username is a conflict", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "username is taken"))

		rec, env := s.do(t, http.MethodPost, "/users/register",
			`{"username":"alice","displayedName":"Alice","password":"Valid123!"}`, "")

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "Valid123!"}).
			Return(&usecase.AuthOutput{Token: "issued"}, nil)

		rec, env := s.do(t, http.MethodPost, "/users/login", `{"username":" alice","password":"Valid123!"}`, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"issued"}`, string(env.Data))
	})

	t.Run("bad credentials", func(t *testing.T) {
		s := newTestServer(t)
		s.users.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec, env := s.do(t, http.MethodPost, "/users/login", `{"username":"alice","password":"wrong"}`, "")

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	})
}

func TestAuthenticatedRoutesRejectBadTokens(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{name: "missing header"},
		{name: "wrong scheme", authorization: "Basic " + validToken},
		{name: "empty bearer", authorization: "Bearer "},
		{name: "expired token", authorization: "Bearer " + expiredToken},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			rec, env := s.do(t, http.MethodGet, "/users/info", "", tt.authorization)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
			messages = append(messages, env.Message)
		})
	}

	for _, msg := range messages {
		assert.Equal(t, messages[0], msg, "every token failure must look the same")
	}
}

func TestUserInfo(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().GetInfo(mock.Anything, int64(1)).
		Return(&entity.UserInfo{ID: 1, Username: "alice", DisplayedName: "Alice"}, nil)

	rec, env := s.do(t, http.MethodGet, "/users/info", "", "bearer "+validToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice","displayedName":"Alice"}`, string(env.Data))
}

func TestChangeInfoAndPassword(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().ChangeInfo(mock.Anything, &usecase.ChangeInfoInput{UserID: 1, DisplayedName: "Alice L."}).Return(nil)
	s.users.EXPECT().ChangePassword(mock.Anything, &usecase.ChangePasswordInput{
		UserID:          1,
		CurrentPassword: "Valid123!",
		NewPassword:     "Better456?",
	}).Return(nil)

	rec, _ := s.do(t, http.MethodPut, "/users/change_info", `{"displayedName":" Alice L. "}`, "Bearer "+validToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = s.do(t, http.MethodPut, "/users/change_password",
		`{"currentPassword":"Valid123!","password":"Better456?"}`, "Bearer "+validToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteAccount(t *testing.T) {
	s := newTestServer(t)
	s.users.EXPECT().DeleteAccount(mock.Anything, int64(1)).Return(nil)

	rec, _ := s.do(t, http.MethodDelete, "/users", "", "Bearer "+validToken)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestListLatestQuotes(t *testing.T) {
	s := newTestServer(t)
	s.quotes.EXPECT().ListLatest(mock.Anything).Return([]*entity.Quote{sampleQuote()}, nil)

	rec, env := s.do(t, http.MethodGet, "/quotes", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": 3,
		"quote": "The secret of getting ahead is getting started.",
		"saidBy": "Mark Twain",
		"when": "2024-02-29",
		"user": {"id": 7, "username": "alice", "displayedName": "Alice"},
		"createdOn": "2024-03-01 09:05"
	}]`, string(env.Data))
}

func TestQuotesOfUser(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		s := newTestServer(t)
		s.quotes.EXPECT().ListByUser(mock.Anything, int64(7)).Return([]*entity.Quote{}, nil)

		rec, env := s.do(t, http.MethodGet, "/quotes/7", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
	})

	t.Run("non numeric user id", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodGet, "/quotes/abc", "", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "userId must be a positive integer", env.Error.Details)
	})

	t.Run("quote of another user is not found", func(t *testing.T) {
		s := newTestServer(t)
		s.quotes.EXPECT().GetByUser(mock.Anything, int64(7), int64(3)).
			Return(nil, errors.Wrap(domainerrors.ErrQuoteNotFound, "find quote"))

		rec, env := s.do(t, http.MethodGet, "/quotes/7/3", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "QUOTE_NOT_FOUND", env.Error.Code)
	})
}

func TestSearchQuotes(t *testing.T) {
	t.Run("builds the filter", func(t *testing.T) {
		s := newTestServer(t)
		saidFrom := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		createdTo := time.Date(2024, 3, 1, 23, 59, 59, 999999999, time.UTC)
		s.quotes.EXPECT().Search(mock.Anything, entity.QuoteFilter{
			WhoSaid:   "twain",
			SaidFrom:  &saidFrom,
			Username:  "alice",
			CreatedTo: &createdTo,
		}).Return([]*entity.Quote{sampleQuote()}, nil)

		rec, _ := s.do(t, http.MethodGet,
			"/quotes/search?who_said=twain&start_said_date=2020-01-01&username=alice&end_creation_date=2024-03-01", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodGet, "/quotes/search?end_said_date=01-02-2024", "", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "end_said_date must be a date formatted as YYYY-MM-DD", env.Error.Details)
	})
}

func TestCreateQuote(t *testing.T) {
	t.Run("owner is the caller", func(t *testing.T) {
		s := newTestServer(t)
		created := sampleQuote()
		s.quotes.EXPECT().Create(mock.Anything, &usecase.CreateQuoteInput{
			UserID: 1,
			QuoteContent: usecase.QuoteContent{
				Content:  "Stay hungry.",
				WhoSaid:  "Steve Jobs",
				WhenSaid: time.Date(2005, 6, 12, 0, 0, 0, 0, time.UTC),
			},
		}).Return(created, nil)

		rec, _ := s.do(t, http.MethodPost, "/quotes",
			`{"quote":"Stay hungry.","saidBy":"Steve Jobs","when":"2005-06-12"}`, "Bearer "+validToken)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("requires a token", func(t *testing.T) {
		s := newTestServer(t)

		rec, _ := s.do(t, http.MethodPost, "/quotes",
			`{"quote":"Stay hungry.","saidBy":"Steve Jobs","when":"2005-06-12"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid date", func(t *testing.T) {
		s := newTestServer(t)

		rec, env := s.do(t, http.MethodPost, "/quotes",
			`{"quote":"Stay hungry.","saidBy":"Steve Jobs","when":"2005-13-12"}`, "Bearer "+validToken)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "when must be a date formatted as YYYY-MM-DD", env.Error.Details)
	})
}

func TestUpdateQuote(t *testing.T) {
	t.Run("forwards the raw token", func(t *testing.T) {
		s := newTestServer(t)
		s.quotes.EXPECT().Update(mock.Anything, mock.MatchedBy(func(in *usecase.UpdateQuoteInput) bool {
			return in.Token == validToken && in.QuoteID == 3 && in.Content == "Edited"
		})).Return(nil)

		rec, _ := s.do(t, http.MethodPut, "/quotes/3",
			`{"quote":"Edited","saidBy":"Someone","when":"2001-01-01"}`, "Bearer "+validToken)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("someone else's quote is forbidden", func(t *testing.T) {
		s := newTestServer(t)
		s.quotes.EXPECT().Update(mock.Anything, mock.Anything).
			Return(errors.Wrap(domainerrors.ErrForbidden, "update quote"))

		rec, env := s.do(t, http.MethodPut, "/quotes/3",
			`{"quote":"Edited","saidBy":"Someone","when":"2001-01-01"}`, "Bearer "+validToken)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "You can only modify your own quotes", env.Message)
	})
}

func TestDeleteQuote(t *testing.T) {
	s := newTestServer(t)
	s.quotes.EXPECT().Delete(mock.Anything, &usecase.DeleteQuoteInput{Token: validToken, QuoteID: 3}).Return(nil)

	rec, _ := s.do(t, http.MethodDelete, "/quotes/3", "", "Bearer "+validToken)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{name: "plain error", err: errors.New("pq: connection refused"), code: "INTERNAL_ERROR"},
		{
			name: "precondition violation",
			err:  domainerrors.ErrPreconditionViolation.WithDetails("stored password hash: bad salt"),
			code: "PRECONDITION_VIOLATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.quotes.EXPECT().ListLatest(mock.Anything).Return(nil, tt.err)

			rec, env := s.do(t, http.MethodGet, "/quotes", "", "")

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.Empty(t, env.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection refused")
			assert.NotContains(t, rec.Body.String(), "salt")
		})
	}
}
