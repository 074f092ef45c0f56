package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
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
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_INPUT", "Invalid webhook payload", http.StatusBadRequest)
	errInvalidSignature      = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
)

// WebhookHandler receives Mercado Pago payment notifications and feeds them
// to the reconciliation engine. The response code is the redelivery
// contract: 2xx acknowledges, 5xx asks the provider to retry.

type WebhookHandler struct {
	usecase usecase.IReconciliationUseCase

	// secret enables x-signature validation when non-empty.
	secret string
}

func NewWebhookHandler(uc usecase.IReconciliationUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{usecase: uc, secret: secret}
}

// HandleNotification processes a payment event. Non-payment event types are
// acknowledged without side effects so the provider stops redelivering them.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	var payload request.WebhookNotification
	if err := c.ShouldBindJSON(&payload); err != nil {
		metrics.WebhookNotificationsTotal.WithLabelValues("malformed").Inc()
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	if h.secret != "" && !h.validSignature(c, string(payload.Data.ID)) {
		metrics.WebhookNotificationsTotal.WithLabelValues("bad_signature").Inc()
		log.Printf("[webhook][handler] signature rejected payment_id=%s", payload.Data.ID)
		c.JSON(errInvalidSignature.HTTPStatus, errInvalidSignature.ToHTTPError())
		return
	}

	if payload.Type != "payment" {
		metrics.WebhookNotificationsTotal.WithLabelValues("ignored").Inc()
		log.Printf("[webhook][handler] ignoring event type=%s", payload.Type)
		c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
		return
	}

	result, err := h.usecase.ProcessPaymentNotification(c.Request.Context(), string(payload.Data.ID))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingPaymentID):
			metrics.WebhookNotificationsTotal.WithLabelValues("malformed").Inc()
			c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		case errors.Is(err, interfaces.ErrGatewayUnavailable):
			metrics.WebhookNotificationsTotal.WithLabelValues("fetch_failed").Inc()
			appErr := pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			metrics.WebhookNotificationsTotal.WithLabelValues("persist_failed").Inc()
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	metrics.WebhookNotificationsTotal.WithLabelValues(string(result.Outcome)).Inc()
	if result.FundingApplied > 0 {
		metrics.FundingAppliedTotal.Add(result.FundingApplied)
	}
	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true, Outcome: string(result.Outcome)})
}

// Verify answers the provider's endpoint validation request.
func (h *WebhookHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validSignature checks the x-signature header: "ts=<ts>,v1=<hmac>", where
// the hmac is SHA-256 over "id:<data.id>;request-id:<x-request-id>;ts:<ts>;".
func (h *WebhookHandler) validSignature(c *gin.Context, dataID string) bool {
	ts, v1 := parseSignatureHeader(c.GetHeader("x-signature"))
	if ts == "" || v1 == "" {
		return false
	}

	manifest := fmt.Sprintf("id:%s;request-id:%s;ts:%s;", strings.ToLower(dataID), c.GetHeader("x-request-id"), ts)
	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(manifest))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(v1))
}

func parseSignatureHeader(header string) (ts, v1 string) {
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	return ts, v1
}
