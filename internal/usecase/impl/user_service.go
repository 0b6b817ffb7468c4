// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "quoteapi/internal/delivery/context"
	"quoteapi/internal/domain/entity"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/domain/repository"
	"quoteapi/internal/domain/service"
	"quoteapi/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the password, stores a new account and signs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	displayedName := strings.TrimSpace(input.DisplayedName)
	srv.log(ctx).Info("Starting registration", slog.String("username", username))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	_, err := srv.userRepo.FindByUsername(ctx, username)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "username is taken")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	// Hash before opening any transaction: argon2 is slow and memory-bound.
	hashedPassword, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Username:      username,
		DisplayedName: displayedName,
		PasswordHash:  hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	token, err := srv.tokenService.IssueToken(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after registration")
	}
	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", newUser.ID))

	return &usecase.AuthOutput{Token: token, User: newUser}, nil
}

// Login checks the credentials and issues a fresh token.
// Unknown usernames and wrong passwords fail identically.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	srv.log(ctx).Debug("Starting user login", slog.String("username", username))

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", username), slog.String("reason", "unknown user"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if err := srv.verifyPassword(ctx, user, input.Password); err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	token, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GetInfo returns the public profile of the authenticated caller.
func (srv *userService) GetInfo(ctx context.Context, userID int64) (*entity.UserInfo, error) {
	user, err := srv.loadAuthenticatedUser(ctx, srv.userRepo, userID)
	if err != nil {
		return nil, err
	}

	return user.Info(), nil
}

// ChangeInfo updates the caller's displayed name.
func (srv *userService) ChangeInfo(ctx context.Context, input *usecase.ChangeInfoInput) error {
	user, err := srv.loadAuthenticatedUser(ctx, srv.userRepo, input.UserID)
	if err != nil {
		return err
	}

	user.DisplayedName = strings.TrimSpace(input.DisplayedName)
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user info")
	}
	srv.log(ctx).Debug("User info updated", slog.Int64("userID", user.ID))

	return nil
}

// ChangePassword replaces the caller's password after re-checking the current one.
func (srv *userService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	user, err := srv.loadAuthenticatedUser(ctx, srv.userRepo, input.UserID)
	if err != nil {
		return err
	}

	if err := srv.verifyPassword(ctx, user, input.CurrentPassword); err != nil {
		return errors.Wrap(err, "current password rejected")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return errors.Wrap(err, "new password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(ctx, input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Int64("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash new password")
	}

	user.PasswordHash = hashedPassword
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store new password")
	}
	srv.log(ctx).Info("Password changed", slog.Int64("userID", user.ID))

	return nil
}

// DeleteAccount removes the caller's quotes and then the account, atomically.
func (srv *userService) DeleteAccount(ctx context.Context, userID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := srv.loadAuthenticatedUser(ctx, userRepo, userID); err != nil {
			return err
		}

		if err := repoFactory.QuoteRepo().DeleteByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete quotes of user")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete account", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute account deletion transaction")
	}
	srv.log(ctx).Info("Account deleted", slog.Int64("userID", userID))

	return nil
}

// verifyPassword returns ErrInvalidCredentials on mismatch. A stored hash
// that cannot be decoded is a data error and is logged as such.
func (srv *userService) verifyPassword(ctx context.Context, user *entity.User, password string) error {
	ok, err := srv.hasher.Check(ctx, password, user.PasswordHash)
	if err != nil {
		if errors.Is(err, domainerrors.ErrPreconditionViolation) {
			srv.log(ctx).Error("Stored password hash is malformed", slog.Int64("userID", user.ID), slog.Any("error", err))
		}

		return err
	}
	if !ok {
		srv.log(ctx).Warn("Password mismatch", slog.Int64("userID", user.ID))

		return domainerrors.ErrInvalidCredentials
	}

	return nil
}

// loadAuthenticatedUser loads the account behind a verified token.
// A missing row means the account was deleted after the token was issued.
func (srv *userService) loadAuthenticatedUser(ctx context.Context, userRepo repository.UserRepository, userID int64) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Error("Authenticated user does not exist",
				slog.Int64("userID", userID),
				slog.Any("error", domainerrors.ErrPreconditionViolation),
			)

			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "authenticated user does not exist")
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}
