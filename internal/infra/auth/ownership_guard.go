package auth

import (
	"log/slog"

	"github.com/pkg/errors"

	"quoteapi/internal/domain/service"
)

// ownershipGuard allows a mutation only when the token's userId equals the resource owner.
type ownershipGuard struct {
	tokens service.TokenService
	logger *slog.Logger
}

// NewOwnershipGuard is the constructor for ownershipGuard.
func NewOwnershipGuard(tokens service.TokenService, logger *slog.Logger) service.OwnershipGuard {
	return &ownershipGuard{
		tokens: tokens,
		logger: logger,
	}
}

func (g *ownershipGuard) AuthorizeMutation(tokenString string, resourceOwnerID int64) service.Decision {
	claims, err := g.tokens.ValidateToken(tokenString)
	if err != nil {
		var tokenErr *service.TokenError
		if errors.As(err, &tokenErr) {
			g.logger.Debug("Mutation denied: invalid token", slog.String("kind", tokenErr.Kind.String()))
		}

		return service.Deny(0, service.DenyUnauthenticated)
	}

	if claims.UserID != resourceOwnerID {
		g.logger.Debug("Mutation denied: not the owner",
			slog.Int64("user_id", claims.UserID),
			slog.Int64("owner_id", resourceOwnerID),
		)

		return service.Deny(claims.UserID, service.DenyForbidden)
	}

	return service.Allow(claims.UserID)
}
