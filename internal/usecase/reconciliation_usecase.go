package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"casamento_pe/internal/domain/entities"
	"casamento_pe/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPaymentID = errors.New("missing payment id")
)

// ReconcileOutcome tells the caller what a notification did.

type ReconcileOutcome string

const (
	// OutcomeCreated: first sight of this payment id, row created.
	OutcomeCreated ReconcileOutcome = "created"
	// OutcomeApprovedTransition: existing row flipped to approved, funding applied.
	OutcomeApprovedTransition ReconcileOutcome = "approved_transition"
	// OutcomeStatusUpdated: existing row moved to a non-funding status.
	OutcomeStatusUpdated ReconcileOutcome = "status_updated"
	// OutcomeDuplicate: replay; bookkeeping touch only, funding unchanged.
	OutcomeDuplicate ReconcileOutcome = "duplicate"
)

// ReconcileResult reports the applied effect of one notification.

type ReconcileResult struct {
	Contribution   entities.Contribution
	Outcome        ReconcileOutcome
	FundingApplied float64
}

// IReconciliationUseCase consumes payment notifications and converges the
// ledger and the catalog with the provider's state.

type IReconciliationUseCase interface {
	ProcessPaymentNotification(ctx context.Context, paymentID string) (ReconcileResult, error)
}

// ReconciliationUseCase is the heart of the registry. It never trusts a
// webhook body: the payment id is the only input, everything else is
// re-fetched from the provider before any write. Both local mutations that
// can add funding (first-sight create, pending->approved flip) are
// conditional repository operations, so duplicate and concurrent deliveries
// of the same notification apply the gift increment at most once.
//
// Funding is monotonic: no path decrements amount_received, including
// refunded/charged_back notifications (recorded as rejected, never
// reflected back into the gift).

type ReconciliationUseCase struct {
	contributions interfaces.IContributionRepository
	gifts         interfaces.IGiftRepository
	gateway       interfaces.IPaymentGateway
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(contributions interfaces.IContributionRepository, gifts interfaces.IGiftRepository, gateway interfaces.IPaymentGateway) *ReconciliationUseCase {
	return &ReconciliationUseCase{contributions: contributions, gifts: gifts, gateway: gateway}
}

func (u *ReconciliationUseCase) ProcessPaymentNotification(ctx context.Context, paymentID string) (ReconcileResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return ReconcileResult{}, ErrMissingPaymentID
	}
	log.Printf("[reconcile][usecase] start payment_id=%s", paymentID)

	// Authoritative fetch before any write. On failure nothing was mutated,
	// so the webhook sender may redeliver wholesale.
	details, err := u.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[reconcile][usecase] fetch failed payment_id=%s err=%v", paymentID, err)
		return ReconcileResult{}, err
	}

	ref := entities.ParseGiftReference(details.ExternalReference)
	if ref.GiftID == "" && details.ExternalReference != "" {
		log.Printf("[reconcile][usecase] unparseable external_reference payment_id=%s", paymentID)
	}

	existing, err := u.contributions.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("loading contribution: %w", err)
	}

	if existing.PaymentID == "" {
		res, err := u.applyFirstSight(ctx, paymentID, details, ref)
		if !errors.Is(err, interfaces.ErrContributionExists) {
			return res, err
		}
		// Lost the creation race against a concurrent delivery; fall through
		// to the existing-row path with a fresh read.
		existing, err = u.contributions.GetByPaymentID(ctx, paymentID)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("reloading contribution: %w", err)
		}
	}

	return u.applyStatusChange(ctx, paymentID, existing, details.Status)
}

func (u *ReconciliationUseCase) applyFirstSight(ctx context.Context, paymentID string, details interfaces.PaymentDetails, ref entities.GiftReference) (ReconcileResult, error) {
	now := time.Now().UTC()
	c := entities.Contribution{
		ID:            uuid.NewString(),
		GiftID:        ref.GiftID,
		GuestName:     ref.GuestName,
		GuestEmail:    ref.GuestEmail,
		Amount:        details.Amount,
		Message:       ref.Message,
		PaymentID:     paymentID,
		PaymentStatus: details.Status,
		PaymentMethod: details.Method,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.contributions.Create(ctx, c)
	if err != nil {
		if errors.Is(err, interfaces.ErrContributionExists) {
			return ReconcileResult{}, err
		}
		return ReconcileResult{}, fmt.Errorf("creating contribution: %w", err)
	}
	log.Printf("[reconcile][usecase] contribution created payment_id=%s gift_id=%s status=%s amount=%.2f",
		paymentID, created.GiftID, created.PaymentStatus, created.Amount)

	result := ReconcileResult{Contribution: created, Outcome: OutcomeCreated}

	if created.PaymentStatus == entities.PaymentStatusApproved && created.GiftID != "" {
		if err := u.applyFunding(ctx, created.GiftID, created.Amount, paymentID); err != nil {
			return ReconcileResult{}, err
		}
		result.FundingApplied = created.Amount
	}
	return result, nil
}

func (u *ReconciliationUseCase) applyStatusChange(ctx context.Context, paymentID string, existing entities.Contribution, newStatus entities.PaymentStatus) (ReconcileResult, error) {
	if existing.PaymentStatus == newStatus {
		touched, err := u.contributions.UpdateStatus(ctx, paymentID, newStatus)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("touching contribution: %w", err)
		}
		log.Printf("[reconcile][usecase] duplicate delivery payment_id=%s status=%s", paymentID, newStatus)
		return ReconcileResult{Contribution: touched, Outcome: OutcomeDuplicate}, nil
	}

	if newStatus == entities.PaymentStatusApproved {
		updated, applied, err := u.contributions.MarkApproved(ctx, paymentID)
		if err != nil {
			return ReconcileResult{}, fmt.Errorf("approving contribution: %w", err)
		}
		if !applied {
			// A concurrent delivery won the transition; its increment covers
			// this notification.
			log.Printf("[reconcile][usecase] approval already applied payment_id=%s", paymentID)
			return ReconcileResult{Contribution: updated, Outcome: OutcomeDuplicate}, nil
		}

		result := ReconcileResult{Contribution: updated, Outcome: OutcomeApprovedTransition}
		if existing.GiftID != "" {
			// The amount captured at creation time funds the gift, never the
			// amount reported by this notification.
			if err := u.applyFunding(ctx, existing.GiftID, existing.Amount, paymentID); err != nil {
				return ReconcileResult{}, err
			}
			result.FundingApplied = existing.Amount
		}
		return result, nil
	}

	// Everything else, including the abnormal approved->non-approved, only
	// moves the status; funding is never decremented here.
	updated, err := u.contributions.UpdateStatus(ctx, paymentID, newStatus)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("updating contribution status: %w", err)
	}
	log.Printf("[reconcile][usecase] status updated payment_id=%s %s->%s", paymentID, existing.PaymentStatus, newStatus)
	return ReconcileResult{Contribution: updated, Outcome: OutcomeStatusUpdated}, nil
}

func (u *ReconciliationUseCase) applyFunding(ctx context.Context, giftID string, amount float64, paymentID string) error {
	gift, err := u.gifts.IncrementAmountReceived(ctx, giftID, amount)
	if err != nil {
		if errors.Is(err, interfaces.ErrGiftNotFound) {
			// The reference pointed at a gift that no longer exists (admin
			// deletion). The contribution stays recorded; there is nothing
			// to fund.
			log.Printf("[reconcile][usecase] gift missing for funding gift_id=%s payment_id=%s", giftID, paymentID)
			return nil
		}
		return fmt.Errorf("applying funding: %w", err)
	}
	log.Printf("[reconcile][usecase] funding applied gift_id=%s payment_id=%s amount=%.2f total=%.2f available=%t",
		giftID, paymentID, amount, gift.AmountReceived, gift.IsAvailable)
	return nil
}
