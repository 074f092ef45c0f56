package routes

import (
	"casamento_pe/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathGifts         = "/gifts"
	PathCheckout      = "/checkout"
	PathPayments      = "/payments"
	PathWebhooks      = "/webhooks"
	PathContributions = "/contributions"
	PathAdmin         = "/admin"
)

func addRegistryRoutes(
	rg *gin.RouterGroup,
	giftHandler *handlers.GiftHandler,
	checkoutHandler *handlers.CheckoutHandler,
	webhookHandler *handlers.WebhookHandler,
	contributionHandler *handlers.ContributionHandler,
) {
	gifts := rg.Group(PathGifts)
	{
		gifts.GET("", giftHandler.List)
		gifts.GET("/:id", giftHandler.GetByID)
		gifts.POST("", giftHandler.Create)
		gifts.PATCH("/:id", giftHandler.Update)
		gifts.DELETE("/:id", giftHandler.Delete)
	}

	rg.POST(PathCheckout, checkoutHandler.CreateCheckout)

	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix", checkoutHandler.CreatePixCharge)
		payments.POST("/card", checkoutHandler.CreateCardCharge)
		payments.POST("/boleto", checkoutHandler.CreateBoletoCharge)
		payments.GET("/:id/status", checkoutHandler.GetPaymentStatus)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/mercadopago", webhookHandler.HandleNotification)
		webhooks.GET("/mercadopago", webhookHandler.Verify)
	}

	rg.GET(PathContributions, contributionHandler.List)
	rg.GET(PathAdmin+"/stats", contributionHandler.Stats)
}
