package handlers

import (
	"net/http"

	response "webux_bd/internal/adapter/http/dto/response"
	"webux_bd/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static plan catalog.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPricingTiers(entities.DefaultCatalog))
}
