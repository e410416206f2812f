package service

import (
	"context"
	"fmt"
	"time"

	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const claimPollInterval = 2 * time.Second

// StatusServiceImpl implements ports.StatusService. It watches for a
// voucher's claim through two channels at once: a periodic database poll
// and the pub/sub announcement published at redemption time. A gate ensures
// that a claim observed by both channels is still reported exactly once.
type StatusServiceImpl struct {
	repo     ports.VoucherRepository
	notifier ports.ClaimNotifier
	log      zerolog.Logger
	poll     time.Duration
}

// NewStatusService creates a new StatusServiceImpl.
func NewStatusService(repo ports.VoucherRepository, notifier ports.ClaimNotifier, log zerolog.Logger) *StatusServiceImpl {
	return &StatusServiceImpl{
		repo:     repo,
		notifier: notifier,
		log:      log,
		poll:     claimPollInterval,
	}
}

// Claimed is the one-shot poll query.
func (s *StatusServiceImpl) Claimed(ctx context.Context, id uuid.UUID) (bool, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("get voucher: %w", err))
	}
	if v == nil {
		return false, apperror.ErrVoucherNotFound()
	}
	return v.Status == domain.VoucherStatusClaimed, nil
}

// AwaitClaim blocks until the voucher is observed claimed or ctx is done.
// It returns (false, nil) on a clean timeout so callers can re-arm.
func (s *StatusServiceImpl) AwaitClaim(ctx context.Context, id uuid.UUID) (bool, error) {
	// Check before waiting: the claim may already have happened.
	claimed, err := s.Claimed(ctx, id)
	if err != nil {
		return false, err
	}
	gate := &successGate{}
	if claimed {
		gate.TryFire()
		return true, nil
	}

	push, cancel, err := s.notifier.SubscribeClaimed(ctx, id)
	if err != nil {
		// Degrade to poll-only.
		s.log.Warn().Err(err).Str("voucher_id", id.String()).Msg("claim subscription unavailable, polling only")
		push = nil
	} else {
		defer cancel()
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return false, nil
			}
			return false, ctx.Err()

		case _, ok := <-push:
			if !ok {
				push = nil
				continue
			}
			if gate.TryFire() {
				return true, nil
			}

		case <-ticker.C:
			claimed, err := s.Claimed(ctx, id)
			if err != nil {
				// The deadline can land while a poll query is in
				// flight; that is still a clean timeout, not a failure.
				if ctx.Err() == context.DeadlineExceeded {
					return false, nil
				}
				return false, err
			}
			if claimed && gate.TryFire() {
				return true, nil
			}
		}
	}
}
