package dto

import (
	"time"

	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"

	"github.com/shopspring/decimal"
)

// CreateVoucherRequest is the request body for voucher issuance.
type CreateVoucherRequest struct {
	AmountSats        int64            `json:"amount_sats" binding:"required,gt=0"`
	DisplayAmount     decimal.Decimal  `json:"display_amount" binding:"required"`
	DisplayCurrency   string           `json:"display_currency" binding:"required,max=10,safe_id"`
	WalletCurrency    string           `json:"wallet_currency" binding:"required,oneof=BTC USD"`
	UsdAmountCents    *int64           `json:"usd_amount_cents,omitempty" binding:"omitempty,gt=0"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	ExpiresAt         *time.Time       `json:"expires_at,omitempty"`
}

// RedeemRequest is the request body for a claim attempt.
type RedeemRequest struct {
	Lnurl         string `json:"lnurl" binding:"required,max=2000"`
	PaymentTarget string `json:"payment_target" binding:"required,max=2000"`
}

// VoucherResponse is the JSON shape for a single voucher.
type VoucherResponse struct {
	ID                string           `json:"id"`
	ShortID           string           `json:"short_id"`
	AmountSats        int64            `json:"amount_sats"`
	DisplayAmount     decimal.Decimal  `json:"display_amount"`
	DisplayCurrency   string           `json:"display_currency"`
	WalletCurrency    string           `json:"wallet_currency"`
	UsdAmountCents    *int64           `json:"usd_amount_cents,omitempty"`
	CommissionPercent *decimal.Decimal `json:"commission_percent,omitempty"`
	Status            string           `json:"status"`
	CreatedAt         string           `json:"created_at"`
	ExpiresAt         *string          `json:"expires_at,omitempty"`
	ClaimedAt         *string          `json:"claimed_at,omitempty"`
	CancelledAt       *string          `json:"cancelled_at,omitempty"`
	SecondsRemaining  *int64           `json:"seconds_remaining,omitempty"`
	ExpiringSoon      bool             `json:"expiring_soon"`
}

// IssuedVoucherResponse is the response body for voucher creation.
type IssuedVoucherResponse struct {
	Voucher     VoucherResponse `json:"voucher"`
	WithdrawURL string          `json:"withdraw_url"`
	Lnurl       string          `json:"lnurl"`
	QRPNGBase64 string          `json:"qr_png,omitempty"`
}

// VoucherListResponse wraps the filtered listing plus the aggregate
// statistics over all vouchers.
type VoucherListResponse struct {
	Items []VoucherResponse  `json:"items"`
	Stats ports.VoucherStats `json:"stats"`
}

// PayoutFailureResponse is the JSON shape for a payout failure record.
type PayoutFailureResponse struct {
	ID          string `json:"id"`
	VoucherID   string `json:"voucher_id"`
	AmountSats  int64  `json:"amount_sats"`
	Destination string `json:"destination"`
	Reason      string `json:"reason"`
	OccurredAt  string `json:"occurred_at"`
}

// WalletBalanceResponse is the response for the issuing wallet balance.
type WalletBalanceResponse struct {
	BalanceSats int64 `json:"balance_sats"`
}

// ReissuedVoucherResponse is the response body for artifact reissue.
type ReissuedVoucherResponse struct {
	Voucher        VoucherResponse `json:"voucher"`
	Lnurl          string          `json:"lnurl"`
	QRPNGBase64    string          `json:"qr_png"`
	DocumentBase64 string          `json:"document,omitempty"`
}

// VoucherStatusResponse is the poll/await response.
type VoucherStatusResponse struct {
	Claimed bool `json:"claimed"`
}

// LnurlError is the LNURL protocol error envelope. Wallets expect this
// exact shape, not the API error envelope.
type LnurlError struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// LnurlOK is the LNURL protocol success envelope.
type LnurlOK struct {
	Status string `json:"status"`
}

// ToVoucherResponse converts a domain voucher into its JSON shape. The
// status field carries the derived status at `now`.
func ToVoucherResponse(v *domain.Voucher, now time.Time) VoucherResponse {
	resp := VoucherResponse{
		ID:                v.ID.String(),
		ShortID:           v.ShortID(),
		AmountSats:        v.AmountSats,
		DisplayAmount:     v.DisplayAmount,
		DisplayCurrency:   v.DisplayCurrency,
		WalletCurrency:    string(v.WalletCurrency),
		UsdAmountCents:    v.UsdAmountCents,
		CommissionPercent: v.CommissionPercent,
		Status:            string(v.EffectiveStatus(now)),
		CreatedAt:         v.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt:         formatTimePtr(v.ExpiresAt),
		ClaimedAt:         formatTimePtr(v.ClaimedAt),
		CancelledAt:       formatTimePtr(v.CancelledAt),
		ExpiringSoon:      v.IsExpiringSoon(now),
	}
	if rem := v.TimeRemaining(now); rem != nil {
		secs := int64(rem.Seconds())
		resp.SecondsRemaining = &secs
	}
	return resp
}

// ToPayoutFailureResponse converts a payout failure record.
func ToPayoutFailureResponse(f *domain.PayoutFailure) PayoutFailureResponse {
	return PayoutFailureResponse{
		ID:          f.ID.String(),
		VoucherID:   f.VoucherID.String(),
		AmountSats:  f.AmountSats,
		Destination: f.Destination,
		Reason:      f.Reason,
		OccurredAt:  f.OccurredAt.UTC().Format(time.RFC3339),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
