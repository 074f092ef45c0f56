package payments

import "casamento_pe/internal/domain/entities"

// MapStatus translates a Mercado Pago payment status into the domain
// vocabulary. It is total: unknown strings fall back to pending so a new
// provider status is held open rather than silently dropped.
func MapStatus(mpStatus string) entities.PaymentStatus {
	switch mpStatus {
	case "approved":
		return entities.PaymentStatusApproved
	case "pending", "in_process", "authorized":
		return entities.PaymentStatusPending
	case "rejected", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	case "cancelled":
		return entities.PaymentStatusCanceled
	default:
		return entities.PaymentStatusPending
	}
}

// ResolveMethod picks the raw id to classify a payment's method from.
// The family (payment_type_id, "credit_card"/"debit_card"/"ticket") is
// preferred over the concrete method id: card payments carry the brand
// ("visa", "master") in payment_method_id, which MapMethod cannot place.
func ResolveMethod(typeID, methodID string) entities.PaymentMethod {
	if typeID != "" {
		return MapMethod(typeID)
	}
	return MapMethod(methodID)
}

// MapMethod translates a Mercado Pago payment type/method id. Unknown ids
// fall back to pix, the registry's dominant method.
func MapMethod(mpMethod string) entities.PaymentMethod {
	switch mpMethod {
	case "pix":
		return entities.PaymentMethodPix
	case "credit_card":
		return entities.PaymentMethodCreditCard
	case "debit_card":
		return entities.PaymentMethodDebitCard
	case "bolbradesco", "boleto":
		return entities.PaymentMethodBoleto
	default:
		return entities.PaymentMethodPix
	}
}
