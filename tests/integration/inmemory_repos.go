package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"lightning-voucher-service/internal/core/domain"

	"github.com/google/uuid"
)

// --- In-Memory Voucher Repo ---

// inMemoryVoucherRepo mirrors the conditional-update semantics of the
// Postgres repository: TryClaim and Cancel hold the lock across the whole
// check-and-transition, so concurrent claimants see exactly one winner.
type inMemoryVoucherRepo struct {
	mu       sync.RWMutex
	vouchers map[uuid.UUID]*domain.Voucher
}

func newInMemoryVoucherRepo() *inMemoryVoucherRepo {
	return &inMemoryVoucherRepo{vouchers: make(map[uuid.UUID]*domain.Voucher)}
}

func (r *inMemoryVoucherRepo) Create(ctx context.Context, v *domain.Voucher) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vouchers[v.ID] = &cp
	return nil
}

func (r *inMemoryVoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.vouchers[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *inMemoryVoucherRepo) TryClaim(ctx context.Context, id uuid.UUID, amountSats int64, now time.Time) (domain.ClaimOutcome, *domain.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vouchers[id]
	if !ok {
		return domain.ClaimOutcomeNotFound, nil, nil
	}
	cp := *v

	switch v.Status {
	case domain.VoucherStatusClaimed:
		return domain.ClaimOutcomeAlreadyClaimed, &cp, nil
	case domain.VoucherStatusCancelled:
		return domain.ClaimOutcomeCancelled, &cp, nil
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.After(now) {
		return domain.ClaimOutcomeExpired, &cp, nil
	}
	if v.AmountSats != amountSats {
		return domain.ClaimOutcomeAmountMismatch, &cp, nil
	}

	v.Status = domain.VoucherStatusClaimed
	claimedAt := now
	v.ClaimedAt = &claimedAt
	cp = *v
	return domain.ClaimOutcomeClaimed, &cp, nil
}

func (r *inMemoryVoucherRepo) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.CancelOutcome, *domain.Voucher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vouchers[id]
	if !ok {
		return domain.CancelOutcomeNotFound, nil, nil
	}
	cp := *v

	if v.Status == domain.VoucherStatusClaimed || v.Status == domain.VoucherStatusCancelled {
		return domain.CancelOutcomeAlreadyTerminal, &cp, nil
	}
	if v.ExpiresAt != nil && !v.ExpiresAt.After(now) {
		return domain.CancelOutcomeExpired, &cp, nil
	}

	v.Status = domain.VoucherStatusCancelled
	cancelledAt := now
	v.CancelledAt = &cancelledAt
	cp = *v
	return domain.CancelOutcomeCancelled, &cp, nil
}

func (r *inMemoryVoucherRepo) List(ctx context.Context) ([]domain.Voucher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Voucher, 0, len(r.vouchers))
	for _, v := range r.vouchers {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// --- In-Memory Payout Failure Repo ---

type inMemoryPayoutFailureRepo struct {
	mu       sync.RWMutex
	failures []domain.PayoutFailure
}

func newInMemoryPayoutFailureRepo() *inMemoryPayoutFailureRepo {
	return &inMemoryPayoutFailureRepo{}
}

func (r *inMemoryPayoutFailureRepo) Create(ctx context.Context, f *domain.PayoutFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = append(r.failures, *f)
	return nil
}

func (r *inMemoryPayoutFailureRepo) List(ctx context.Context) ([]domain.PayoutFailure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.PayoutFailure, len(r.failures))
	copy(out, r.failures)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out, nil
}

// --- Stub Payment Backend ---

// stubBackend counts transfers and optionally fails them.
type stubBackend struct {
	mu        sync.Mutex
	transfers int
	failWith  error
	balance   int64
}

func (b *stubBackend) Transfer(ctx context.Context, amountSats int64, destination string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failWith != nil {
		return b.failWith
	}
	b.transfers++
	return nil
}

func (b *stubBackend) WalletBalance(ctx context.Context) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balance, nil
}

func (b *stubBackend) transferCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.transfers
}
