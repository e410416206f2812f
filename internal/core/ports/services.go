package ports

import (
	"context"
	"errors"
	"time"

	"lightning-voucher-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentBackend is the external wallet service that actually moves sats.
// It is invoked only after an atomic claim succeeded.
type PaymentBackend interface {
	// Transfer pays amountSats to the claimant-supplied destination
	// (a BOLT11 invoice or address, opaque to this service).
	Transfer(ctx context.Context, amountSats int64, destination string) error
	// WalletBalance reports the issuing wallet's spendable balance.
	WalletBalance(ctx context.Context) (int64, error)
}

// DocumentGenerator is the external service assembling printable voucher
// documents. Its output is opaque binary (typically PDF).
type DocumentGenerator interface {
	Generate(ctx context.Context, req DocumentRequest) ([]byte, error)
}

// DocumentRequest carries everything the document service needs.
type DocumentRequest struct {
	VoucherID       uuid.UUID
	ShortID         string
	AmountSats      int64
	DisplayAmount   decimal.Decimal
	DisplayCurrency string
	ExpiresAt       *time.Time
	QRPNG           []byte
	// BrandingPNG is optional; absent branding degrades gracefully.
	BrandingPNG []byte
}

// ErrRendererNotReady signals a transiently unavailable rendering surface.
// Callers retry a bounded number of times before giving up.
var ErrRendererNotReady = errors.New("renderer not ready")

// ArtifactRenderer rasterizes a scannable code into a fixed-size bitmap.
type ArtifactRenderer interface {
	RenderPNG(content string, size int) ([]byte, error)
}

// ClaimNotifier is the out-of-band success channel: a successful redemption
// is published so that watchers can learn about it without polling.
type ClaimNotifier interface {
	PublishClaimed(ctx context.Context, voucherID uuid.UUID) error
	// SubscribeClaimed returns a channel that receives the voucher id when
	// its claim is announced, plus a cancel function releasing the
	// subscription. The channel is closed on cancellation.
	SubscribeClaimed(ctx context.Context, voucherID uuid.UUID) (<-chan uuid.UUID, func(), error)
}

// TokenService validates bearer tokens minted by the wallet backend.
type TokenService interface {
	Generate(walletID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	WalletID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// CreateVoucherRequest holds validated input for voucher issuance.
type CreateVoucherRequest struct {
	AmountSats        int64
	DisplayAmount     decimal.Decimal
	DisplayCurrency   string
	WalletCurrency    domain.WalletCurrency
	UsdAmountCents    *int64
	CommissionPercent *decimal.Decimal
	ExpiresAt         *time.Time
}

// IssuedVoucher is the issuance result handed to the caller: the record
// plus the client artifact.
type IssuedVoucher struct {
	Voucher     domain.Voucher
	WithdrawURL string
	Lnurl       string
	// QRPNG may be nil when rendering was unavailable; issuance itself
	// never fails on a rendering problem.
	QRPNG []byte
}

// VoucherService defines issuance and lifecycle business logic.
type VoucherService interface {
	Create(ctx context.Context, req CreateVoucherRequest) (*IssuedVoucher, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Voucher, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Voucher, error)
}

// RedeemRequest is a claim attempt: an encoded LNURL plus the payment
// target the claimant wants the funds sent to.
type RedeemRequest struct {
	Lnurl         string
	PaymentTarget string
}

// WithdrawParams is the LNURL-withdraw first-step response served to
// claimant wallets resolving a withdraw URL.
type WithdrawParams struct {
	Tag                 string `json:"tag"`
	Callback            string `json:"callback"`
	K1                  string `json:"k1"`
	MinWithdrawableMsat int64  `json:"minWithdrawable"`
	MaxWithdrawableMsat int64  `json:"maxWithdrawable"`
	DefaultDescription  string `json:"defaultDescription"`
}

// RedemptionService turns claim attempts into exactly one successful
// transfer per voucher.
type RedemptionService interface {
	// Redeem decodes, claims atomically, and executes the payout. The
	// returned voucher is the claimed record on success.
	Redeem(ctx context.Context, req RedeemRequest) (*domain.Voucher, error)
	// RedeemWithdraw is the same claim flow addressed by voucher id, as
	// used by the LNURL-withdraw callback.
	RedeemWithdraw(ctx context.Context, voucherID uuid.UUID, amountSats int64, paymentTarget string) (*domain.Voucher, error)
	// WithdrawParams serves the LNURL-withdraw description for a voucher
	// withdraw URL, without claiming anything.
	WithdrawParams(ctx context.Context, voucherID uuid.UUID, amountSats int64) (*WithdrawParams, error)
}

// VoucherListFilter selects a subset of vouchers for display. Both
// dimensions compose independently; empty strings mean "all".
type VoucherListFilter struct {
	Currency string // "", "BTC", "USD"
	Status   string // "", "active", "expiring", "claimed", "cancelled", "expired"
}

// VoucherStats aggregates over the full, unfiltered collection.
type VoucherStats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Claimed      int64 `json:"claimed"`
	Cancelled    int64 `json:"cancelled"`
	Expired      int64 `json:"expired"`
	ExpiringSoon int64 `json:"expiring_soon"`
}

// VoucherListing is a filtered, deterministically sorted view plus
// filter-independent statistics.
type VoucherListing struct {
	Vouchers []domain.Voucher
	Stats    VoucherStats
}

// ListingService defines filtering, sorting and aggregate statistics over
// the voucher collection.
type ListingService interface {
	List(ctx context.Context, filter VoucherListFilter) (*VoucherListing, error)
}

// ReissuedArtifact is the result of regenerating a redemption artifact.
type ReissuedArtifact struct {
	Voucher  domain.Voucher
	Lnurl    string
	QRPNG    []byte
	Document []byte
}

// ReissueService regenerates the printable artifact for a still-active
// voucher without touching its identity or amount.
type ReissueService interface {
	Reissue(ctx context.Context, id uuid.UUID) (*ReissuedArtifact, error)
}

// StatusService reconciles redemption success across the poll and push
// channels.
type StatusService interface {
	// Claimed is the cheap poll query.
	Claimed(ctx context.Context, id uuid.UUID) (bool, error)
	// AwaitClaim blocks until the voucher is observed CLAIMED by either
	// the poller or the push subscription, or until ctx is done. It
	// reports success at most once per call; late duplicate observations
	// are absorbed.
	AwaitClaim(ctx context.Context, id uuid.UUID) (bool, error)
}
