package routes

import (
	"webux_bd/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
	PathDomains = "/domains"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, domainHandler *handlers.DomainHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/plans", catalogHandler.ListPlans)
	}

	domainsGroup := rg.Group(PathDomains)
	{
		domainsGroup.POST("/check", domainHandler.CheckDomain)
	}
}
