package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciliation outcomes, labeled by what the engine did with the
// notification: created, approved_transition, duplicate, touched, ignored,
// fetch_failed, persist_failed.
var WebhookNotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "registry_webhook_notifications_total",
	Help: "Mercado Pago notifications processed, by outcome.",
}, []string{"outcome"})

// Charges created through the checkout surface, labeled by method.
var ChargesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "registry_charges_created_total",
	Help: "Charges created at the payment gateway, by method and status.",
}, []string{"method", "status"})

// Funding applied to gifts, in BRL.
var FundingAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "registry_funding_applied_brl_total",
	Help: "Total contribution amount applied to gifts.",
})
