package payments

import (
	"testing"

	"casamento_pe/internal/domain/entities"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want entities.PaymentStatus
	}{
		{"approved", entities.PaymentStatusApproved},
		{"pending", entities.PaymentStatusPending},
		{"in_process", entities.PaymentStatusPending},
		{"authorized", entities.PaymentStatusPending},
		{"rejected", entities.PaymentStatusRejected},
		{"refunded", entities.PaymentStatusRejected},
		{"charged_back", entities.PaymentStatusRejected},
		{"cancelled", entities.PaymentStatusCanceled},
		{"", entities.PaymentStatusPending},
		{"some_future_status", entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		if got := MapStatus(tc.raw); got != tc.want {
			t.Fatalf("MapStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestMapMethod(t *testing.T) {
	cases := []struct {
		raw  string
		want entities.PaymentMethod
	}{
		{"pix", entities.PaymentMethodPix},
		{"credit_card", entities.PaymentMethodCreditCard},
		{"debit_card", entities.PaymentMethodDebitCard},
		{"bolbradesco", entities.PaymentMethodBoleto},
		{"boleto", entities.PaymentMethodBoleto},
		{"", entities.PaymentMethodPix},
		{"account_money", entities.PaymentMethodPix},
	}

	for _, tc := range cases {
		if got := MapMethod(tc.raw); got != tc.want {
			t.Fatalf("MapMethod(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestResolveMethod(t *testing.T) {
	cases := []struct {
		name     string
		typeID   string
		methodID string
		want     entities.PaymentMethod
	}{
		{"card brand resolves by family", "credit_card", "visa", entities.PaymentMethodCreditCard},
		{"debit brand resolves by family", "debit_card", "master", entities.PaymentMethodDebitCard},
		{"empty family falls back to method id", "", "bolbradesco", entities.PaymentMethodBoleto},
		{"pix family", "bank_transfer", "pix", entities.PaymentMethodPix},
		{"both empty defaults to pix", "", "", entities.PaymentMethodPix},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveMethod(tc.typeID, tc.methodID); got != tc.want {
				t.Fatalf("ResolveMethod(%q, %q) = %q, want %q", tc.typeID, tc.methodID, got, tc.want)
			}
		})
	}
}
