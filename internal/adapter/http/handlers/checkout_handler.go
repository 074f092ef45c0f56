package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "casamento_pe/internal/adapter/http/dto/request"
	response "casamento_pe/internal/adapter/http/dto/response"
	"casamento_pe/internal/infrastructure/metrics"
	"casamento_pe/internal/usecase"
	"casamento_pe/internal/usecase/interfaces"
	"casamento_pe/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles charge creation: the hosted-checkout preference
// plus the direct pix, card and boleto flows.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout creates a hosted-checkout preference and returns the
// redirect URL.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreatePreference(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPreference(res))
}

func (h *CheckoutHandler) CreatePixCharge(c *gin.Context) {
	var payload request.PixChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreatePixCharge(c.Request.Context(), payload.ToInput(), payload.Payer.ToPayer())
	h.respondCharge(c, "pix", res, err)
}

func (h *CheckoutHandler) CreateCardCharge(c *gin.Context) {
	var payload request.CardChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateCardCharge(c.Request.Context(), payload.ToCardInput())
	h.respondCharge(c, "card", res, err)
}

func (h *CheckoutHandler) CreateBoletoCharge(c *gin.Context) {
	var payload request.BoletoChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.CreateBoletoCharge(c.Request.Context(), payload.ToInput(), payload.Payer.ToPayer())
	h.respondCharge(c, "boleto", res, err)
}

// GetPaymentStatus proxies an authoritative status read for the
// confirmation page polling loop.
func (h *CheckoutHandler) GetPaymentStatus(c *gin.Context) {
	details, err := h.usecase.GetPaymentStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentDetails(details))
}

func (h *CheckoutHandler) respondCharge(c *gin.Context, method string, res interfaces.ChargeResult, err error) {
	if err != nil {
		metrics.ChargesCreatedTotal.WithLabelValues(method, "error").Inc()
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	metrics.ChargesCreatedTotal.WithLabelValues(method, string(res.Status)).Inc()
	c.JSON(http.StatusCreated, response.FromCharge(res))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGiftID),
		errors.Is(err, usecase.ErrInvalidGuest),
		errors.Is(err, usecase.ErrInvalidCardData),
		errors.Is(err, usecase.ErrMissingPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAmountBelowMinimum):
		return pkg.NewDomainErrorSimple("AMOUNT_BELOW_MINIMUM", "Contribution amount below minimum", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGiftNotFound):
		return pkg.NewDomainErrorSimple("GIFT_NOT_FOUND", "Gift not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGiftUnavailable):
		return pkg.NewDomainErrorSimple("GIFT_UNAVAILABLE", "Gift is fully funded", http.StatusConflict)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	case isGatewayUnauthorized(err):
		return pkg.NewDomainError("GATEWAY_UNAUTHORIZED", "Payment gateway rejected credentials", err, http.StatusBadGateway)
	case isGatewayBadRequest(err):
		return pkg.NewDomainError("GATEWAY_REJECTED", "Payment gateway rejected the request", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// The provider SDK surfaces HTTP failures as plain errors carrying the
// status code in the message.
func isGatewayBadRequest(err error) bool {
	return err != nil && strings.Contains(err.Error(), "400")
}

func isGatewayUnauthorized(err error) bool {
	return err != nil && strings.Contains(err.Error(), "401")
}
