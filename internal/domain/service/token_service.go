package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an access token: the identity claim plus the
// registered nbf/iat/exp timestamps.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenErrorKind classifies why a token was rejected.
type TokenErrorKind int

const (
	// TokenMalformed means the input is not a decodable three-segment token.
	TokenMalformed TokenErrorKind = iota + 1
	// TokenBadSignature means the MAC did not verify or the declared algorithm is not accepted.
	TokenBadSignature
	// TokenExpired means the current time is outside [nbf, exp].
	TokenExpired
	// TokenMissingClaim means the signature verified but the identity claim is absent.
	TokenMissingClaim
)

// String returns the kind as a short log-friendly label.
func (k TokenErrorKind) String() string {
	switch k {
	case TokenMalformed:
		return "malformed"
	case TokenBadSignature:
		return "bad_signature"
	case TokenExpired:
		return "expired"
	case TokenMissingClaim:
		return "missing_claim"
	default:
		return "unknown"
	}
}

// TokenError is the typed failure returned by TokenService.ValidateToken.
type TokenError struct {
	Kind TokenErrorKind
	Err  error
}

func (e *TokenError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("token rejected: %s", e.Kind)
	}

	return fmt.Sprintf("token rejected: %s: %v", e.Kind, e.Err)
}

func (e *TokenError) Unwrap() error {
	return e.Err
}

// TokenService defines the interface for issuing and validating signed bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed token carrying the userId claim.
	IssueToken(userID int64) (string, error)

	// ValidateToken verifies the signature and validity window of a raw token
	// (without the "Bearer " prefix). Failures are always *TokenError.
	ValidateToken(tokenString string) (*Claims, error)
}
