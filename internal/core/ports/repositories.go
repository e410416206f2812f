package ports

import (
	"context"
	"time"

	"lightning-voucher-service/internal/core/domain"

	"github.com/google/uuid"
)

// VoucherRepository defines persistence operations for vouchers.
// TryClaim and Cancel are atomic conditional state transitions: there is no
// read-then-write gap, so exactly one of any number of concurrent claimants
// can win.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Voucher, error)

	// TryClaim transitions ACTIVE -> CLAIMED for the voucher with the given
	// id and amount, provided it has not expired at `now`. When the
	// transition does not happen, the outcome distinguishes why, and the
	// returned voucher reflects the stored record (nil for NOT_FOUND).
	TryClaim(ctx context.Context, id uuid.UUID, amountSats int64, now time.Time) (domain.ClaimOutcome, *domain.Voucher, error)

	// Cancel transitions ACTIVE -> CANCELLED using the same conditional
	// update pattern. Terminal records are never touched.
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.CancelOutcome, *domain.Voucher, error)

	// List returns all vouchers, newest first. Status derivation, filtering
	// and ordering for display are the listing service's concern.
	List(ctx context.Context) ([]domain.Voucher, error)
}

// PayoutFailureRepository persists claim-consumed-but-transfer-failed
// records for manual reconciliation.
type PayoutFailureRepository interface {
	Create(ctx context.Context, failure *domain.PayoutFailure) error
	List(ctx context.Context) ([]domain.PayoutFailure, error)
}
