// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "quoteapi/internal/delivery/context"
	"quoteapi/internal/delivery/http/response"
	domainerrors "quoteapi/internal/domain/errors"
	"quoteapi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register creates an account and answers with a bearer token.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindBody(c, &req, func(r *RegisterRequest) {
		r.Username = strings.TrimSpace(r.Username)
		r.DisplayedName = strings.TrimSpace(r.DisplayedName)
	}); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:      req.Username,
		DisplayedName: req.DisplayedName,
		Password:      req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, TokenResponse{Token: output.Token}, "User registered successfully")
}

// Login exchanges credentials for a bearer token.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindBody(c, &req, func(r *LoginRequest) {
		r.Username = strings.TrimSpace(r.Username)
	}); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, TokenResponse{Token: output.Token}, "Login successful")
}

// GetInfo returns the caller's public profile.
func (h *UserHandler) GetInfo(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	info, err := h.uc.GetInfo(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserInfoResponse(info), "")
}

// ChangeInfo updates the caller's displayed name.
func (h *UserHandler) ChangeInfo(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangeInfoRequest
	if err := bindBody(c, &req, func(r *ChangeInfoRequest) {
		r.DisplayedName = strings.TrimSpace(r.DisplayedName)
	}); err != nil {
		return err
	}

	if err := h.uc.ChangeInfo(c.Request().Context(), &usecase.ChangeInfoInput{
		UserID:        userID,
		DisplayedName: req.DisplayedName,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ChangePassword replaces the caller's password after checking the current one.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bindBody(c, &req, nil); err != nil {
		return err
	}

	if err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.Password,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// DeleteAccount removes the caller together with all of their quotes.
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Account deleted", slog.Int64("userID", userID))

	return response.NoContent(c)
}

// callerID reads the identity recorded by the auth middleware.
func callerID(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return userID, nil
}
