// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quoteapi/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username      string
	DisplayedName string
	Password      string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangeInfoInput carries the new public profile of the caller.
type ChangeInfoInput struct {
	UserID        int64
	DisplayedName string
}

// ChangePasswordInput carries the caller's current and desired passwords.
type ChangePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput returns the bearer token issued on registration or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetInfo(ctx context.Context, userID int64) (*entity.UserInfo, error)
	ChangeInfo(ctx context.Context, input *ChangeInfoInput) error
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID int64) error
}
