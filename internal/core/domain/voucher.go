package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletCurrency identifies the wallet denomination backing a voucher.
type WalletCurrency string

const (
	WalletCurrencyBTC WalletCurrency = "BTC"
	WalletCurrencyUSD WalletCurrency = "USD"
)

// VoucherStatus represents the lifecycle state of a voucher.
// EXPIRED is never stored: it is derived at read time for ACTIVE records
// whose expiry has passed.
type VoucherStatus string

const (
	VoucherStatusActive    VoucherStatus = "ACTIVE"
	VoucherStatusClaimed   VoucherStatus = "CLAIMED"
	VoucherStatusCancelled VoucherStatus = "CANCELLED"
	VoucherStatusExpired   VoucherStatus = "EXPIRED"
)

// ExpiringSoonWindow is the remaining-lifetime threshold below which an
// active voucher counts as "expiring".
const ExpiringSoonWindow = 24 * time.Hour

// Voucher is a pre-funded, single-use redemption entitlement for a fixed
// amount of sats, exposed to claimants via an LNURL-withdraw reference.
type Voucher struct {
	ID              uuid.UUID       `json:"id"`
	AmountSats      int64           `json:"amount_sats"`
	DisplayAmount   decimal.Decimal `json:"display_amount"`
	DisplayCurrency string          `json:"display_currency"`
	WalletCurrency  WalletCurrency  `json:"wallet_currency"`
	// UsdAmountCents is populated only when the backing wallet is
	// fiat-denominated.
	UsdAmountCents    *int64           `json:"usd_amount_cents,omitempty"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	Status            VoucherStatus    `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
	ClaimedAt         *time.Time       `json:"claimed_at,omitempty"`
	CancelledAt       *time.Time       `json:"cancelled_at,omitempty"`
}

// ShortID returns the truncated display form of the id. Display only,
// not collision-safe.
func (v *Voucher) ShortID() string {
	return v.ID.String()[:8]
}

// IsTerminal returns true if the stored status is final.
func (v *Voucher) IsTerminal() bool {
	return v.Status == VoucherStatusClaimed || v.Status == VoucherStatusCancelled
}

// EffectiveStatus derives the read-time status: an ACTIVE voucher past its
// expiry reports EXPIRED, while a stored terminal status always wins even
// past the expiry timestamp.
func (v *Voucher) EffectiveStatus(now time.Time) VoucherStatus {
	if v.Status == VoucherStatusActive && v.expired(now) {
		return VoucherStatusExpired
	}
	return v.Status
}

// TimeRemaining reports the remaining lifetime of an ACTIVE voucher,
// computed at read time. Nil for terminal/expired vouchers and for
// vouchers without an expiry.
func (v *Voucher) TimeRemaining(now time.Time) *time.Duration {
	if v.EffectiveStatus(now) != VoucherStatusActive || v.ExpiresAt == nil {
		return nil
	}
	d := v.ExpiresAt.Sub(now)
	return &d
}

// IsExpiringSoon reports whether an active voucher has less than the
// ExpiringSoonWindow left.
func (v *Voucher) IsExpiringSoon(now time.Time) bool {
	remaining := v.TimeRemaining(now)
	return remaining != nil && *remaining < ExpiringSoonWindow
}

// ActivityTime is the timestamp a voucher last resolved: claimedAt for
// CLAIMED, cancelledAt for CANCELLED, expiresAt for derived-EXPIRED.
// Nil while the voucher is still ACTIVE.
func (v *Voucher) ActivityTime(now time.Time) *time.Time {
	switch v.EffectiveStatus(now) {
	case VoucherStatusClaimed:
		return v.ClaimedAt
	case VoucherStatusCancelled:
		return v.CancelledAt
	case VoucherStatusExpired:
		return v.ExpiresAt
	default:
		return nil
	}
}

func (v *Voucher) expired(now time.Time) bool {
	return v.ExpiresAt != nil && !v.ExpiresAt.After(now)
}

// ClaimOutcome is the result of an atomic claim attempt.
type ClaimOutcome string

const (
	ClaimOutcomeClaimed        ClaimOutcome = "CLAIMED"
	ClaimOutcomeAlreadyClaimed ClaimOutcome = "ALREADY_CLAIMED"
	ClaimOutcomeCancelled      ClaimOutcome = "CANCELLED"
	ClaimOutcomeExpired        ClaimOutcome = "EXPIRED"
	ClaimOutcomeNotFound       ClaimOutcome = "NOT_FOUND"
	// ClaimOutcomeAmountMismatch means the voucher is claimable but the
	// requested amount does not match the stored amount. The claim is not
	// consumed.
	ClaimOutcomeAmountMismatch ClaimOutcome = "AMOUNT_MISMATCH"
)

// CancelOutcome is the result of an atomic cancel attempt.
type CancelOutcome string

const (
	CancelOutcomeCancelled       CancelOutcome = "CANCELLED"
	CancelOutcomeAlreadyTerminal CancelOutcome = "ALREADY_TERMINAL"
	CancelOutcomeExpired         CancelOutcome = "EXPIRED"
	CancelOutcomeNotFound        CancelOutcome = "NOT_FOUND"
)
