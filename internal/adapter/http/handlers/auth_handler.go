package handlers

import (
	"errors"
	"net/http"

	request "webux_bd/internal/adapter/http/dto/request"
	response "webux_bd/internal/adapter/http/dto/response"
	"webux_bd/internal/adapter/http/middleware"
	"webux_bd/internal/usecase"
	"webux_bd/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
)

// AuthHandler handles account registration and session management.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.Register(c.Request.Context(), payload.Email, payload.Password, payload.Name)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAuth(user, token))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuth(user, token))
}

// Logout revokes the current session token. Runs behind RequireAuth, so the
// token is always present here.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context(), middleware.CurrentToken(c)); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "No active session", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuthInput), errors.Is(err, usecase.ErrWeakPassword):
		return pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailInUse):
		return pkg.NewDomainErrorSimple("EMAIL_IN_USE", "An account with this email already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid or expired session", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
