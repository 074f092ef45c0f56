package interfaces

import (
	"context"
	"errors"

	"casamento_pe/internal/domain/entities"
)

var (
	// ErrContributionExists is returned by Create when a row for the same
	// payment id already exists (the unique-key check lost a race or the
	// notification is a replay).
	ErrContributionExists = errors.New("contribution already exists for payment id")

	// ErrContributionNotFound is returned by mutations targeting a missing row.
	ErrContributionNotFound = errors.New("contribution not found")
)

// IContributionRepository abstracts persistence for Contribution.
//
// The payment id is the idempotency key. Create and MarkApproved are the
// two check-and-apply steps the reconciliation engine relies on; each must
// be atomic so that concurrent deliveries of the same notification cannot
// both create a row or both win the approved transition.

type IContributionRepository interface {
	// Create inserts a new contribution, failing with ErrContributionExists
	// when the payment id is already recorded.
	Create(ctx context.Context, c entities.Contribution) (entities.Contribution, error)

	// GetByPaymentID resolves the unique row for a payment id. A zero-value
	// contribution (empty PaymentID) means not found.
	GetByPaymentID(ctx context.Context, paymentID string) (entities.Contribution, error)

	// MarkApproved flips payment_status to approved only if it is not
	// already approved. The second return reports whether this call applied
	// the transition; false means another delivery already did.
	MarkApproved(ctx context.Context, paymentID string) (entities.Contribution, bool, error)

	// UpdateStatus overwrites payment_status and touches updated_at. It is
	// used for non-funding transitions (and for bookkeeping touches when
	// the status did not change).
	UpdateStatus(ctx context.Context, paymentID string, status entities.PaymentStatus) (entities.Contribution, error)

	List(ctx context.Context) ([]entities.Contribution, error)
	ListByGiftID(ctx context.Context, giftID string) ([]entities.Contribution, error)
}
