package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutFailure records the fatal inconsistency where a voucher claim
// succeeded in the store but the subsequent transfer to the claimant failed.
// These are kept for manual reconciliation; an automatic "un-claim" could
// double-pay if the transfer partially completed.
type PayoutFailure struct {
	ID          uuid.UUID `json:"id"`
	VoucherID   uuid.UUID `json:"voucher_id"`
	AmountSats  int64     `json:"amount_sats"`
	Destination string    `json:"destination"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
}
