package service

import (
	domainerrors "quoteapi/internal/domain/errors"
)

// DenyReason explains a refused mutation.
type DenyReason string

const (
	// DenyUnauthenticated means the token was missing, malformed, forged or expired.
	DenyUnauthenticated DenyReason = "unauthenticated"
	// DenyForbidden means the caller is authenticated but does not own the resource.
	DenyForbidden DenyReason = "forbidden"
)

// Decision is the outcome of an ownership check. The zero Reason means allowed.
type Decision struct {
	UserID int64 // Caller identity, zero when unauthenticated.
	Reason DenyReason
}

// Allow returns an allowing decision for userID.
func Allow(userID int64) Decision {
	return Decision{UserID: userID}
}

// Deny returns a refusing decision.
func Deny(userID int64, reason DenyReason) Decision {
	return Decision{UserID: userID, Reason: reason}
}

// Allowed reports whether the mutation may proceed.
func (d Decision) Allowed() bool {
	return d.Reason == ""
}

// Err converts a refusal into the matching domain error, nil when allowed.
func (d Decision) Err() error {
	switch d.Reason {
	case "":
		return nil
	case DenyForbidden:
		return domainerrors.ErrForbidden
	default:
		return domainerrors.ErrUnauthenticated
	}
}

// OwnershipGuard decides whether the bearer of a token may mutate a resource.
// Ownership is the entire authorization model: there are no roles or overrides.
type OwnershipGuard interface {
	AuthorizeMutation(tokenString string, resourceOwnerID int64) Decision
}
