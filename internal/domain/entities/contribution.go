package entities

import "time"

// PaymentStatus is the domain vocabulary for a contribution's payment state.
//
// Gateway statuses are translated into these four values by the payments
// adapter; the reconciliation engine never sees raw provider strings.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
	PaymentStatusCanceled PaymentStatus = "cancelled"
)

// PaymentMethod is how the guest chose to pay.

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

// MinContributionAmount is the smallest accepted pledge, in BRL.
const MinContributionAmount = 10.0

// Contribution is one pledge/payment attempt toward a gift.
//
// Storage model (DynamoDB):
//   - PK: payment_id (the Mercado Pago payment id; doubles as the
//     idempotency key, so one row exists per provider payment)
//   - GSI1 (gift_id-index): gift_id
//
// Amount is fixed at creation time. Later notifications for the same
// payment id never change it; the funding increment applied to the gift on
// a pending->approved transition uses this stored amount.

type Contribution struct {
	ID            string        `json:"id"`
	GiftID        string        `json:"gift_id"`
	GuestName     string        `json:"guest_name"`
	GuestEmail    string        `json:"guest_email"`
	Amount        float64       `json:"amount"`
	Message       string        `json:"message,omitempty"`
	PaymentID     string        `json:"payment_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
