package walletpush

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/domain/program"
)

const dispatchTimeout = 10 * time.Second

// Notifier pushes loyalty state to the customer's wallet pass on detached
// goroutines. A stamp is already earned by the time this runs, so failures
// are logged and swallowed; the earn response never waits on the vendor.
type Notifier struct {
	client *Client
}

func NewNotifier(client *Client) *Notifier {
	return &Notifier{client: client}
}

// SyncEarn updates Points and Status after a successful earn. When the
// reward unlocks it also raises a Last_Message alert on the lock screen.
func (n *Notifier) SyncEarn(p *program.Program, serial string, newBalance, threshold int) {
	creds := p.WalletPush()
	if creds == nil || serial == "" {
		return
	}

	unlocked := newBalance >= threshold
	status := fmt.Sprintf("%d / %d stamps", newBalance, threshold)
	if msg := membership.Proximity(newBalance, threshold, p.RewardDescription()); msg != nil {
		status = *msg
	}

	n.dispatch("earn", serial, func(ctx context.Context) error {
		if err := n.client.UpdatePassField(ctx, creds, serial, "Points", fmt.Sprintf("%d", newBalance), false); err != nil {
			return err
		}
		if err := n.client.UpdatePassField(ctx, creds, serial, "Status", status, false); err != nil {
			return err
		}
		if unlocked {
			alert := fmt.Sprintf("Your %s is ready to redeem!", p.RewardDescription())
			return n.client.UpdatePassField(ctx, creds, serial, "Last_Message", alert, true)
		}
		return nil
	})
}

// SyncConsume refreshes the pass after a reward is redeemed.
func (n *Notifier) SyncConsume(p *program.Program, serial string, newBalance, threshold int) {
	creds := p.WalletPush()
	if creds == nil || serial == "" {
		return
	}

	status := fmt.Sprintf("%d / %d stamps", newBalance, threshold)
	if msg := membership.Proximity(newBalance, threshold, p.RewardDescription()); msg != nil {
		status = *msg
	}

	n.dispatch("consume", serial, func(ctx context.Context) error {
		if err := n.client.UpdatePassField(ctx, creds, serial, "Points", fmt.Sprintf("%d", newBalance), false); err != nil {
			return err
		}
		return n.client.UpdatePassField(ctx, creds, serial, "Status", status, false)
	})
}

func (n *Notifier) dispatch(kind, serial string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("wallet sync panicked", "kind", kind, "serial", serial, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			slog.Error("wallet sync failed", "kind", kind, "serial", serial, "error", err)
		}
	}()
}
