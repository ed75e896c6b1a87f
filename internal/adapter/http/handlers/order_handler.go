package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "webux_bd/internal/adapter/http/dto/request"
	response "webux_bd/internal/adapter/http/dto/response"
	"webux_bd/internal/adapter/http/middleware"
	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase"
	"webux_bd/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errNoSession           = pkg.NewDomainErrorSimple("UNAUTHORIZED", "No active session", http.StatusUnauthorized)
)

// OrderHandler exposes the order lifecycle.
//
// Listing branches once on the caller's role: admins get the console
// projection (search, status filter, pagination), customers get their own
// orders with progress messages.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) List(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	if caller.IsAdmin {
		h.listConsole(c, caller)
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), caller.ID, false)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.CustomerOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, response.FromOrderForCustomer(o))
	}
	c.JSON(http.StatusOK, out)
}

// listConsole rebuilds the console view-model for this request from the
// q/status/page query params.
func (h *OrderHandler) listConsole(c *gin.Context, admin entities.User) {
	console := usecase.NewAdminConsole(h.usecase, admin)
	if err := console.Refresh(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	console.Search(c.Query("q"))
	if status := c.Query("status"); status != "" {
		console.SetStatusFilter(status)
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		console.SetPage(page)
	}

	state := console.State()
	page := state.PageOrders()
	out := make([]response.OrderResponse, 0, len(page))
	for _, o := range page {
		out = append(out, response.FromOrder(o))
	}

	c.JSON(http.StatusOK, response.ConsoleResponse{
		Orders:       out,
		Query:        state.Query,
		StatusFilter: state.StatusFilter,
		Page:         state.Page,
		PageCount:    state.PageCount(),
		PageSize:     state.PageSize,
		TotalMatches: len(state.Filtered()),
		SelectedIDs:  state.SelectedIDs(),
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	order, err := h.usecase.GetForCaller(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if caller.IsAdmin {
		c.JSON(http.StatusOK, response.FromOrder(order))
		return
	}
	c.JSON(http.StatusOK, response.FromOrderForCustomer(order))
}

func (h *OrderHandler) Approve(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.Approve)
}

func (h *OrderHandler) StartWork(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.StartWork)
}

func (h *OrderHandler) Deliver(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.Deliver)
}

func (h *OrderHandler) Complete(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.Complete)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.Cancel)
}

func (h *OrderHandler) CollectPayment(c *gin.Context) {
	h.patchOrderStatus(c, h.usecase.CollectPayment)
}

func (h *OrderHandler) PayDue(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	order, err := h.usecase.PayDue(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderForCustomer(order))
}

// Bulk applies one workflow action to a batch of orders through the console
// view-model. Partial failure is reported, not rolled back.
func (h *OrderHandler) Bulk(c *gin.Context) {
	caller, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	var payload request.BulkTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	target, err := payload.ResolveAction()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown order action", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	ids := payload.ResolveOrderIDs()
	if len(ids) == 0 {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	console := usecase.NewAdminConsole(h.usecase, caller)
	if err := console.Refresh(c.Request.Context()); err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	console.SetSelection(ids)

	failed, err := console.BulkTransition(c.Request.Context(), target)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BulkTransitionResponse{
		Requested: len(ids),
		Failed:    failed,
	})
}

func (h *OrderHandler) patchOrderStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Order, error),
) {
	order, err := updater(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderData):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotOrderOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Not your order", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrOutstandingDue),
		errors.Is(err, usecase.ErrNothingDue), errors.Is(err, usecase.ErrPaymentNotDue):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "The order state does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownConsoleAction):
		return pkg.NewDomainErrorSimple("UNKNOWN_ACTION", "Unknown order action", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
