package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lightning-voucher-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const voucherColumns = `id, amount_sats, display_amount, display_currency, wallet_currency,
	usd_amount_cents, commission_percent, status, created_at, expires_at, claimed_at, cancelled_at`

// VoucherRepo implements ports.VoucherRepository.
type VoucherRepo struct {
	pool Pool
}

// NewVoucherRepo creates a new VoucherRepo.
func NewVoucherRepo(pool Pool) *VoucherRepo {
	return &VoucherRepo{pool: pool}
}

// Create inserts a new voucher into the database.
func (r *VoucherRepo) Create(ctx context.Context, v *domain.Voucher) error {
	query := `INSERT INTO vouchers (id, amount_sats, display_amount, display_currency, wallet_currency,
		usd_amount_cents, commission_percent, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.AmountSats, v.DisplayAmount, v.DisplayCurrency, v.WalletCurrency,
		v.UsdAmountCents, v.CommissionPercent, v.Status, v.CreatedAt, v.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert voucher: %w", err)
	}
	return nil
}

// GetByID fetches a voucher by its UUID.
func (r *VoucherRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE id = $1`

	v, err := scanVoucher(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voucher by id: %w", err)
	}
	return v, nil
}

// TryClaim performs the ACTIVE -> CLAIMED transition as a single conditional
// update. The amount predicate means a request carrying a wrong amount never
// consumes the claim. When no row transitions, a follow-up read classifies
// the reason.
func (r *VoucherRepo) TryClaim(ctx context.Context, id uuid.UUID, amountSats int64, now time.Time) (domain.ClaimOutcome, *domain.Voucher, error) {
	query := `UPDATE vouchers SET status = $1, claimed_at = $2
		WHERE id = $3 AND amount_sats = $4 AND status = $5
			AND (expires_at IS NULL OR expires_at > $2)
		RETURNING ` + voucherColumns

	v, err := scanVoucher(r.pool.QueryRow(ctx, query,
		domain.VoucherStatusClaimed, now, id, amountSats, domain.VoucherStatusActive,
	))
	if err == nil {
		return domain.ClaimOutcomeClaimed, v, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", nil, fmt.Errorf("claim voucher: %w", err)
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	switch {
	case stored == nil:
		return domain.ClaimOutcomeNotFound, nil, nil
	case stored.Status == domain.VoucherStatusClaimed:
		return domain.ClaimOutcomeAlreadyClaimed, stored, nil
	case stored.Status == domain.VoucherStatusCancelled:
		return domain.ClaimOutcomeCancelled, stored, nil
	case stored.EffectiveStatus(now) == domain.VoucherStatusExpired:
		return domain.ClaimOutcomeExpired, stored, nil
	default:
		return domain.ClaimOutcomeAmountMismatch, stored, nil
	}
}

// Cancel performs the ACTIVE -> CANCELLED transition with the same
// conditional update pattern. Expired records are refused rather than
// cancelled so the derived EXPIRED view stays truthful.
func (r *VoucherRepo) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (domain.CancelOutcome, *domain.Voucher, error) {
	query := `UPDATE vouchers SET status = $1, cancelled_at = $2
		WHERE id = $3 AND status = $4
			AND (expires_at IS NULL OR expires_at > $2)
		RETURNING ` + voucherColumns

	v, err := scanVoucher(r.pool.QueryRow(ctx, query,
		domain.VoucherStatusCancelled, now, id, domain.VoucherStatusActive,
	))
	if err == nil {
		return domain.CancelOutcomeCancelled, v, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", nil, fmt.Errorf("cancel voucher: %w", err)
	}

	stored, err := r.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	switch {
	case stored == nil:
		return domain.CancelOutcomeNotFound, nil, nil
	case stored.IsTerminal():
		return domain.CancelOutcomeAlreadyTerminal, stored, nil
	default:
		return domain.CancelOutcomeExpired, stored, nil
	}
}

// List returns all vouchers, newest first.
func (r *VoucherRepo) List(ctx context.Context) ([]domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vouchers: %w", err)
	}
	defer rows.Close()

	var vouchers []domain.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voucher row: %w", err)
		}
		vouchers = append(vouchers, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate voucher rows: %w", err)
	}
	return vouchers, nil
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	v := &domain.Voucher{}
	err := row.Scan(
		&v.ID, &v.AmountSats, &v.DisplayAmount, &v.DisplayCurrency, &v.WalletCurrency,
		&v.UsdAmountCents, &v.CommissionPercent, &v.Status, &v.CreatedAt,
		&v.ExpiresAt, &v.ClaimedAt, &v.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}
