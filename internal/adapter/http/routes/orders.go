package routes

import (
	"webux_bd/internal/adapter/http/handlers"
	"webux_bd/internal/adapter/http/middleware"
	"webux_bd/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders   = "/orders"
	PathCheckout = "/checkout"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, checkoutHandler *handlers.CheckoutHandler, auth usecase.IAuthUseCase) {
	orders := rg.Group(PathOrders, middleware.RequireAuth(auth))
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("/:id/pay-due", orderHandler.PayDue)

		admin := orders.Group("", middleware.RequireAdmin())
		{
			admin.PATCH("/:id/approve", orderHandler.Approve)
			admin.PATCH("/:id/start", orderHandler.StartWork)
			admin.PATCH("/:id/deliver", orderHandler.Deliver)
			admin.PATCH("/:id/complete", orderHandler.Complete)
			admin.PATCH("/:id/cancel", orderHandler.Cancel)
			admin.POST("/:id/collect-payment", orderHandler.CollectPayment)
			admin.POST("/bulk", orderHandler.Bulk)
		}
	}

	checkout := rg.Group(PathCheckout, middleware.RequireAuth(auth))
	{
		checkout.POST("", checkoutHandler.Start)
		checkout.GET("/:id", checkoutHandler.Get)
		checkout.PUT("/:id/details", checkoutHandler.SetDetails)
		checkout.GET("/:id/review", checkoutHandler.Review)
		checkout.POST("/:id/submit", checkoutHandler.Submit)
		checkout.POST("/:id/retry", checkoutHandler.Retry)
	}
}
