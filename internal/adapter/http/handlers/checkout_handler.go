package handlers

import (
	"context"
	"errors"
	"net/http"

	request "webux_bd/internal/adapter/http/dto/request"
	response "webux_bd/internal/adapter/http/dto/response"
	"webux_bd/internal/adapter/http/middleware"
	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase"
	"webux_bd/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler drives the stepwise order-creation flow. Every route runs
// behind RequireAuth; sessions belong to the caller that opened them.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

func (h *CheckoutHandler) Start(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.CheckoutStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.Start(c.Request.Context(), caller, payload.ResolvePlanID())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) SetDetails(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.CheckoutDetailsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SetDetails(c.Request.Context(), caller, c.Param("id"),
		payload.DomainName, payload.Requirements, payload.PaymentMethod)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func (h *CheckoutHandler) Review(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	review, err := h.usecase.Review(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutReview(review))
}

func (h *CheckoutHandler) Submit(c *gin.Context) {
	h.advanceSession(c, h.usecase.Submit)
}

func (h *CheckoutHandler) Retry(c *gin.Context) {
	h.advanceSession(c, h.usecase.Retry)
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	h.advanceSession(c, h.usecase.Get)
}

func (h *CheckoutHandler) advanceSession(
	c *gin.Context,
	step func(ctx context.Context, caller entities.User, sessionID string) (usecase.CheckoutSession, error),
) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	session, err := step(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownPlan), errors.Is(err, usecase.ErrMissingDomainName):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotSessionOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not your checkout session", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidCheckoutStep), errors.Is(err, usecase.ErrSubmitInFlight):
		return pkg.NewDomainErrorSimple("INVALID_STEP", "The checkout session does not allow this action", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
