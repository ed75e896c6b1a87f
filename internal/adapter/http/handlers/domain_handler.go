package handlers

import (
	"errors"
	"net/http"

	request "webux_bd/internal/adapter/http/dto/request"
	response "webux_bd/internal/adapter/http/dto/response"
	"webux_bd/internal/usecase"
	"webux_bd/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDomainPayload = pkg.NewDomainErrorSimple("INVALID_DOMAIN_INPUT", "Invalid domain payload", http.StatusBadRequest)
)

type DomainHandler struct {
	usecase usecase.IDomainUseCase
}

func NewDomainHandler(uc usecase.IDomainUseCase) *DomainHandler {
	return &DomainHandler{usecase: uc}
}

// CheckDomain returns availability for the queried name plus alternatives.
// Provider outages degrade to the fallback suggestion set, never a 5xx.
func (h *DomainHandler) CheckDomain(c *gin.Context) {
	var payload request.DomainCheckRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDomainPayload.HTTPStatus, errInvalidDomainPayload.ToHTTPError())
		return
	}

	results, err := h.usecase.CheckAvailability(c.Request.Context(), payload.ResolveDomainName())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDomainResults(results))
}

func mapDomainError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDomainQuery):
		return pkg.NewDomainErrorSimple("INVALID_DOMAIN_INPUT", "Invalid domain payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
