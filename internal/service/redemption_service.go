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

// RedemptionServiceImpl implements ports.RedemptionService.
type RedemptionServiceImpl struct {
	vouchers ports.VoucherRepository
	failures ports.PayoutFailureRepository
	backend  ports.PaymentBackend
	notifier ports.ClaimNotifier
	cfg      config.LnurlConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewRedemptionService creates a new RedemptionServiceImpl.
func NewRedemptionService(
	vouchers ports.VoucherRepository,
	failures ports.PayoutFailureRepository,
	backend ports.PaymentBackend,
	notifier ports.ClaimNotifier,
	cfg config.LnurlConfig,
	log zerolog.Logger,
) *RedemptionServiceImpl {
	return &RedemptionServiceImpl{
		vouchers: vouchers,
		failures: failures,
		backend:  backend,
		notifier: notifier,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// Redeem claims a voucher and pays out to the requested destination. The
// claim itself is a single atomic transition, so concurrent redemptions of
// the same voucher produce exactly one payout. A payout that fails after
// the claim was consumed is recorded for manual reconciliation and is never
// retried here: retrying would risk paying twice.
func (s *RedemptionServiceImpl) Redeem(ctx context.Context, req ports.RedeemRequest) (*domain.Voucher, error) {
	withdrawURL, err := lnurl.Decode(req.Lnurl)
	if err != nil {
		return nil, apperror.ErrMalformedLnurl()
	}
	voucherID, amountSats, err := lnurl.ParseWithdrawURL(withdrawURL)
	if err != nil {
		return nil, apperror.ErrMalformedLnurl()
	}
	return s.RedeemWithdraw(ctx, voucherID, amountSats, req.PaymentTarget)
}

// RedeemWithdraw is the claim core shared by the API redeem operation and
// the LNURL-withdraw callback, which addresses the voucher directly.
func (s *RedemptionServiceImpl) RedeemWithdraw(ctx context.Context, voucherID uuid.UUID, amountSats int64, paymentTarget string) (*domain.Voucher, error) {
	if paymentTarget == "" {
		return nil, apperror.Validation("payment_target is required")
	}

	now := s.now().UTC()
	outcome, v, err := s.vouchers.TryClaim(ctx, voucherID, amountSats, now)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("claim voucher: %w", err))
	}

	switch outcome {
	case domain.ClaimOutcomeClaimed:
		// fallthrough to payout below
	case domain.ClaimOutcomeNotFound:
		return nil, apperror.ErrVoucherNotFound()
	case domain.ClaimOutcomeAlreadyClaimed:
		return nil, apperror.ErrAlreadyClaimed()
	case domain.ClaimOutcomeCancelled:
		return nil, apperror.ErrVoucherCancelled()
	case domain.ClaimOutcomeExpired:
		return nil, apperror.ErrVoucherExpired()
	case domain.ClaimOutcomeAmountMismatch:
		return nil, apperror.ErrMalformedLnurl()
	default:
		return nil, apperror.InternalError(fmt.Errorf("unexpected claim outcome %q", outcome))
	}

	if err := s.backend.Transfer(ctx, v.AmountSats, paymentTarget); err != nil {
		s.log.Error().Err(err).
			Str("voucher_id", v.ID.String()).
			Int64("amount_sats", v.AmountSats).
			Msg("payout failed after claim was consumed")
		s.recordPayoutFailure(ctx, v, paymentTarget, err)
		return nil, apperror.ErrPayoutFailedAfterClaim(err)
	}

	if err := s.notifier.PublishClaimed(ctx, v.ID); err != nil {
		// Watchers fall back to polling; the redemption itself succeeded.
		s.log.Warn().Err(err).Str("voucher_id", v.ID.String()).Msg("claim announcement failed")
	}

	s.log.Info().
		Str("voucher_id", v.ID.String()).
		Int64("amount_sats", v.AmountSats).
		Msg("voucher redeemed")

	return v, nil
}

func (s *RedemptionServiceImpl) recordPayoutFailure(ctx context.Context, v *domain.Voucher, destination string, cause error) {
	f := &domain.PayoutFailure{
		ID:          uuid.New(),
		VoucherID:   v.ID,
		AmountSats:  v.AmountSats,
		Destination: destination,
		Reason:      cause.Error(),
		OccurredAt:  s.now().UTC(),
	}
	if err := s.failures.Create(ctx, f); err != nil {
		// Worst case: the claim is consumed and the failure is only in the
		// logs. Keep enough detail here to reconcile by hand.
		s.log.Error().Err(err).
			Str("voucher_id", v.ID.String()).
			Int64("amount_sats", v.AmountSats).
			Str("destination", destination).
			Str("payout_error", cause.Error()).
			Msg("failed to persist payout failure")
	}
}

// WithdrawParams serves the LNURL-withdraw description for a voucher. It
// claims nothing; wallets call it to learn the withdrawable range and the
// callback to hit.
func (s *RedemptionServiceImpl) WithdrawParams(ctx context.Context, voucherID uuid.UUID, amountSats int64) (*ports.WithdrawParams, error) {
	v, err := s.vouchers.GetByID(ctx, voucherID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get voucher: %w", err))
	}
	if v == nil {
		return nil, apperror.ErrVoucherNotFound()
	}
	if v.AmountSats != amountSats {
		return nil, apperror.ErrMalformedLnurl()
	}

	switch v.EffectiveStatus(s.now().UTC()) {
	case domain.VoucherStatusActive:
	case domain.VoucherStatusClaimed:
		return nil, apperror.ErrAlreadyClaimed()
	case domain.VoucherStatusCancelled:
		return nil, apperror.ErrVoucherCancelled()
	case domain.VoucherStatusExpired:
		return nil, apperror.ErrVoucherExpired()
	}

	msat := v.AmountSats * 1000
	return &ports.WithdrawParams{
		Tag:                 "withdrawRequest",
		Callback:            lnurl.WithdrawURL(s.cfg.BaseURL, v.ID, v.AmountSats) + "/cb",
		K1:                  v.ID.String(),
		MinWithdrawableMsat: msat,
		MaxWithdrawableMsat: msat,
		DefaultDescription:  fmt.Sprintf("Voucher %s", v.ShortID()),
	}, nil
}
