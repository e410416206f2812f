package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// StatusFilterExpiring selects active vouchers inside the expiring-soon
// window. The other status filter values match derived statuses directly.
const StatusFilterExpiring = "expiring"

// ListingServiceImpl implements ports.ListingService.
type ListingServiceImpl struct {
	repo ports.VoucherRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewListingService creates a new ListingServiceImpl.
func NewListingService(repo ports.VoucherRepository, log zerolog.Logger) *ListingServiceImpl {
	return &ListingServiceImpl{
		repo: repo,
		now:  time.Now,
		log:  log,
	}
}

// List returns the filtered, sorted voucher view plus statistics. Stats are
// always computed over the whole collection so the dashboard counters do
// not shift as filters change.
func (s *ListingServiceImpl) List(ctx context.Context, filter ports.VoucherListFilter) (*ports.VoucherListing, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list vouchers: %w", err))
	}
	now := s.now().UTC()

	listing := &ports.VoucherListing{
		Vouchers: make([]domain.Voucher, 0, len(all)),
		Stats:    computeStats(all, now),
	}
	for _, v := range all {
		if matchesCurrency(&v, filter.Currency) && matchesStatus(&v, filter.Status, now) {
			listing.Vouchers = append(listing.Vouchers, v)
		}
	}
	sortForDisplay(listing.Vouchers, now)
	return listing, nil
}

func matchesCurrency(v *domain.Voucher, currency string) bool {
	if currency == "" {
		return true
	}
	return strings.EqualFold(string(v.WalletCurrency), currency)
}

func matchesStatus(v *domain.Voucher, status string, now time.Time) bool {
	if status == "" {
		return true
	}
	if strings.EqualFold(status, StatusFilterExpiring) {
		return v.EffectiveStatus(now) == domain.VoucherStatusActive && v.IsExpiringSoon(now)
	}
	return strings.EqualFold(string(v.EffectiveStatus(now)), status)
}

func computeStats(vouchers []domain.Voucher, now time.Time) ports.VoucherStats {
	stats := ports.VoucherStats{Total: int64(len(vouchers))}
	for _, v := range vouchers {
		switch v.EffectiveStatus(now) {
		case domain.VoucherStatusActive:
			stats.Active++
			if v.IsExpiringSoon(now) {
				stats.ExpiringSoon++
			}
		case domain.VoucherStatusClaimed:
			stats.Claimed++
		case domain.VoucherStatusCancelled:
			stats.Cancelled++
		case domain.VoucherStatusExpired:
			stats.Expired++
		}
	}
	return stats
}

// sortForDisplay orders vouchers so the most recently touched come first:
// records with activity (claim, cancel, expiry in the past) sort by that
// time descending, then still-pending actives sort by soonest expiry with
// open-ended ones last. Voucher id breaks remaining ties so the order is
// stable across calls.
func sortForDisplay(vouchers []domain.Voucher, now time.Time) {
	sort.SliceStable(vouchers, func(i, j int) bool {
		a, b := &vouchers[i], &vouchers[j]
		at, bt := a.ActivityTime(now), b.ActivityTime(now)

		switch {
		case at != nil && bt != nil:
			if !at.Equal(*bt) {
				return at.After(*bt)
			}
		case at != nil:
			return true
		case bt != nil:
			return false
		default:
			ae, be := a.ExpiresAt, b.ExpiresAt
			switch {
			case ae != nil && be != nil:
				if !ae.Equal(*be) {
					return ae.Before(*be)
				}
			case ae != nil:
				return true
			case be != nil:
				return false
			}
		}
		return a.ID.String() < b.ID.String()
	})
}
