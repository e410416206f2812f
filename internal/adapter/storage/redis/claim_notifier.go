package redis

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ClaimNotifier broadcasts successful redemptions over Redis pub/sub so
// that status watchers hear about a claim without waiting for their next
// poll tick.
type ClaimNotifier struct {
	client *goredis.Client
	prefix string
}

// NewClaimNotifier creates a new Redis-backed claim notifier.
func NewClaimNotifier(client *goredis.Client) *ClaimNotifier {
	return &ClaimNotifier{
		client: client,
		prefix: "voucher:claimed:",
	}
}

func (n *ClaimNotifier) channel(voucherID uuid.UUID) string {
	return n.prefix + voucherID.String()
}

// PublishClaimed announces that the voucher has been claimed. Delivery is
// best effort; the poll channel covers missed announcements.
func (n *ClaimNotifier) PublishClaimed(ctx context.Context, voucherID uuid.UUID) error {
	if err := n.client.Publish(ctx, n.channel(voucherID), voucherID.String()).Err(); err != nil {
		return fmt.Errorf("publish claim: %w", err)
	}
	return nil
}

// SubscribeClaimed subscribes to claim announcements for a single voucher.
// The returned channel is closed once the subscription is cancelled.
func (n *ClaimNotifier) SubscribeClaimed(ctx context.Context, voucherID uuid.UUID) (<-chan uuid.UUID, func(), error) {
	sub := n.client.Subscribe(ctx, n.channel(voucherID))

	// Force the subscription onto the wire before returning so callers
	// cannot miss an announcement published right after this call.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe claim: %w", err)
	}

	out := make(chan uuid.UUID, 1)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			id, err := uuid.Parse(msg.Payload)
			if err != nil {
				continue
			}
			select {
			case out <- id:
			default:
			}
		}
	}()

	cancel := func() { _ = sub.Close() }
	return out, cancel, nil
}
