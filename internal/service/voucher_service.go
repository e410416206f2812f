package service

import (
	"context"
	"fmt"
	"time"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/lnurl"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// VoucherServiceImpl implements ports.VoucherService.
type VoucherServiceImpl struct {
	repo     ports.VoucherRepository
	renderer ports.ArtifactRenderer
	cfg      config.LnurlConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewVoucherService creates a new VoucherServiceImpl.
func NewVoucherService(
	repo ports.VoucherRepository,
	renderer ports.ArtifactRenderer,
	cfg config.LnurlConfig,
	log zerolog.Logger,
) *VoucherServiceImpl {
	return &VoucherServiceImpl{
		repo:     repo,
		renderer: renderer,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Create issues a new single-use voucher and returns it together with its
// withdraw artifact. A rendering problem never fails issuance: the voucher
// is already durable and the artifact can be reissued later.
func (s *VoucherServiceImpl) Create(ctx context.Context, req ports.CreateVoucherRequest) (*ports.IssuedVoucher, error) {
	if req.AmountSats <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	now := s.now().UTC()
	if req.ExpiresAt != nil && !req.ExpiresAt.After(now) {
		return nil, apperror.ErrInvalidExpiry()
	}
	if req.WalletCurrency != domain.WalletCurrencyBTC && req.WalletCurrency != domain.WalletCurrencyUSD {
		return nil, apperror.Validation("wallet_currency must be BTC or USD")
	}
	usdCents := req.UsdAmountCents
	if req.WalletCurrency != domain.WalletCurrencyUSD {
		// A settlement amount in cents only means something for USD wallets.
		usdCents = nil
	}

	v := &domain.Voucher{
		ID:                uuid.New(),
		AmountSats:        req.AmountSats,
		DisplayAmount:     req.DisplayAmount,
		DisplayCurrency:   req.DisplayCurrency,
		WalletCurrency:    req.WalletCurrency,
		UsdAmountCents:    usdCents,
		CommissionPercent: req.CommissionPercent,
		Status:            domain.VoucherStatusActive,
		CreatedAt:         now,
		ExpiresAt:         req.ExpiresAt,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create voucher: %w", err))
	}

	withdrawURL := lnurl.WithdrawURL(s.cfg.BaseURL, v.ID, v.AmountSats)
	encoded, err := lnurl.Encode(withdrawURL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode lnurl: %w", err))
	}

	issued := &ports.IssuedVoucher{
		Voucher:     *v,
		WithdrawURL: withdrawURL,
		Lnurl:       encoded,
	}

	qr, err := s.renderer.RenderPNG(encoded, s.cfg.QRSize)
	if err != nil {
		s.log.Warn().Err(err).Str("voucher_id", v.ID.String()).Msg("qr render failed, issuing without artifact")
	} else {
		issued.QRPNG = qr
	}

	s.log.Info().
		Str("voucher_id", v.ID.String()).
		Int64("amount_sats", v.AmountSats).
		Str("wallet_currency", string(v.WalletCurrency)).
		Msg("voucher issued")

	return issued, nil
}

// Get returns a voucher by id.
func (s *VoucherServiceImpl) Get(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get voucher: %w", err))
	}
	if v == nil {
		return nil, apperror.ErrVoucherNotFound()
	}
	return v, nil
}

// Cancel voids an active voucher. Terminal and expired records are refused.
func (s *VoucherServiceImpl) Cancel(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	outcome, v, err := s.repo.Cancel(ctx, id, s.now().UTC())
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("cancel voucher: %w", err))
	}

	switch outcome {
	case domain.CancelOutcomeCancelled:
		s.log.Info().Str("voucher_id", id.String()).Msg("voucher cancelled")
		return v, nil
	case domain.CancelOutcomeNotFound:
		return nil, apperror.ErrVoucherNotFound()
	case domain.CancelOutcomeExpired:
		return nil, apperror.ErrVoucherExpired()
	case domain.CancelOutcomeAlreadyTerminal:
		if v != nil && v.Status == domain.VoucherStatusClaimed {
			return nil, apperror.ErrAlreadyClaimed()
		}
		return nil, apperror.ErrVoucherCancelled()
	default:
		return nil, apperror.InternalError(fmt.Errorf("unexpected cancel outcome %q", outcome))
	}
}
