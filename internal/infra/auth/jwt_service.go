package auth

import (
	"encoding/base64"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"quoteapi/config"
	"quoteapi/internal/domain/service"
)

// signingKeySize is the HS512 block-sized key. Shorter secrets are
// right-padded with zero bytes so tokens signed by earlier deployments verify.
const signingKeySize = 64

const defaultTokenTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS512 JWTs.
type jwtService struct {
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTService is the constructor for jwtService.
// The secret is read once from configuration and never changes afterwards.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	ttl := defaultTokenTTL
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return newJWTService(cfg.SecretKey.Access, ttl, time.Now)
}

func newJWTService(secret string, ttl time.Duration, now func() time.Time) (*jwtService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		key: signingKey(secret),
		ttl: ttl,
		now: now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
			jwt.WithTimeFunc(now),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

func signingKey(secret string) []byte {
	key := []byte(secret)
	if len(key) < signingKeySize {
		padded := make([]byte, signingKeySize)
		copy(padded, key)
		key = padded
	}

	return key
}

// IssueToken creates a token valid from now until now+ttl.
func (s *jwtService) IssueToken(userID int64) (string, error) {
	if userID <= 0 {
		return "", errors.Errorf("cannot issue token for user id %d", userID)
	}

	now := s.now()
	claims := service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken verifies the MAC over the raw segments before any claim is
// decoded, then lets the parser check the header algorithm and time window.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, &service.TokenError{Kind: service.TokenMalformed, Err: errors.New("token must have three segments")}
	}

	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return nil, &service.TokenError{Kind: service.TokenBadSignature, Err: errors.Wrap(err, "undecodable signature")}
	}
	if err := jwt.SigningMethodHS512.Verify(parts[0]+"."+parts[1], signature, s.key); err != nil {
		return nil, &service.TokenError{Kind: service.TokenBadSignature, Err: err}
	}

	claims := new(service.Claims)
	if _, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}); err != nil {
		return nil, &service.TokenError{Kind: classifyParseError(err), Err: err}
	}

	if claims.UserID <= 0 {
		return nil, &service.TokenError{Kind: service.TokenMissingClaim, Err: errors.New("userId claim is absent")}
	}

	return claims, nil
}

func classifyParseError(err error) service.TokenErrorKind {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.TokenBadSignature
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return service.TokenExpired
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return service.TokenMissingClaim
	default:
		return service.TokenMalformed
	}
}
