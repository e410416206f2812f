package postgres

import (
	"context"
	"fmt"

	"lightning-voucher-service/internal/core/domain"
)

// PayoutFailureRepo implements ports.PayoutFailureRepository.
type PayoutFailureRepo struct {
	pool Pool
}

// NewPayoutFailureRepo creates a new PayoutFailureRepo.
func NewPayoutFailureRepo(pool Pool) *PayoutFailureRepo {
	return &PayoutFailureRepo{pool: pool}
}

// Create records a claim whose payout did not execute. These rows are the
// input to manual reconciliation and are never retried automatically.
func (r *PayoutFailureRepo) Create(ctx context.Context, f *domain.PayoutFailure) error {
	query := `INSERT INTO payout_failures (id, voucher_id, amount_sats, destination, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		f.ID, f.VoucherID, f.AmountSats, f.Destination, f.Reason, f.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout failure: %w", err)
	}
	return nil
}

// List returns all payout failures, newest first.
func (r *PayoutFailureRepo) List(ctx context.Context) ([]domain.PayoutFailure, error) {
	query := `SELECT id, voucher_id, amount_sats, destination, reason, occurred_at
		FROM payout_failures ORDER BY occurred_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payout failures: %w", err)
	}
	defer rows.Close()

	var failures []domain.PayoutFailure
	for rows.Next() {
		var f domain.PayoutFailure
		if err := rows.Scan(&f.ID, &f.VoucherID, &f.AmountSats, &f.Destination, &f.Reason, &f.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan payout failure row: %w", err)
		}
		failures = append(failures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payout failure rows: %w", err)
	}
	return failures, nil
}
