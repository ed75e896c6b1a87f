package routes

import (
	"webux_bd/internal/adapter/http/handlers"
	"webux_bd/internal/adapter/http/middleware"
	"webux_bd/internal/usecase"

	"github.com/gin-gonic/gin"
)

const PathAuth = "/auth"

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	group := rg.Group(PathAuth)
	{
		group.POST("/register", authHandler.Register)
		group.POST("/login", authHandler.Login)
		group.POST("/logout", middleware.RequireAuth(auth), authHandler.Logout)
		group.GET("/me", middleware.RequireAuth(auth), authHandler.Me)
	}
}
