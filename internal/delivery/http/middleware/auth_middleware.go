package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "quoteapi/internal/delivery/context"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates requests carrying a bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer token and records the caller's identity.
// Every failure answers with the same 401 so clients cannot tell why a token was refused.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		claims, err := m.tokenSvc.ValidateToken(token)
		if err != nil {
			ctx := c.Request().Context()
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).DebugContext(ctx, "Rejected bearer token",
				slog.String("reason", tokenFailureKind(err)),
			)

			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		deliverycontext.SetIdentity(c, claims.UserID, token)

		return next(c)
	}
}

// bearerToken strips the scheme from an Authorization header value.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])

	return token, token != ""
}

func tokenFailureKind(err error) string {
	var tokenErr *service.TokenError
	if errors.As(err, &tokenErr) {
		return tokenErr.Kind.String()
	}

	return "unknown"
}
