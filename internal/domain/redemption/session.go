package redemption

import (
	"time"

	"github.com/google/uuid"
)

// HoldDuration is how long the customer must keep the reveal control
// pressed before a consume call may be made. Deliberate friction: a
// consumed reward cannot be un-redeemed.
const HoldDuration = 2 * time.Second

type State string

const (
	StateHolding   State = "holding"
	StateConsuming State = "consuming"
	StateLive      State = "live"
	StateExpired   State = "expired"
	StateError     State = "error"
)

// Session is one reveal-to-redeem cycle. Expiry is logical: the stored
// deadline is compared against the wall clock on every evaluation, so the
// window survives client reloads and process restarts.
type Session struct {
	id                uuid.UUID
	membershipID      uuid.UUID
	walletPassID      string
	rewardDescription string
	consumedAt        time.Time
	displayExpiresAt  time.Time
}

func Reconstruct(
	id, membershipID uuid.UUID,
	walletPassID, rewardDescription string,
	consumedAt, displayExpiresAt time.Time,
) *Session {
	return &Session{
		id:                id,
		membershipID:      membershipID,
		walletPassID:      walletPassID,
		rewardDescription: rewardDescription,
		consumedAt:        consumedAt,
		displayExpiresAt:  displayExpiresAt,
	}
}

// StateAt derives the client-visible state of a consumed session from the
// wall clock. No timer is involved; the deadline is the source of truth.
func (s *Session) StateAt(now time.Time) State {
	if now.Before(s.displayExpiresAt) {
		return StateLive
	}
	return StateExpired
}

// Remaining is the countdown shown on the live proof screen, clamped at
// zero once the window has closed.
func (s *Session) Remaining(now time.Time) time.Duration {
	if !now.Before(s.displayExpiresAt) {
		return 0
	}
	return s.displayExpiresAt.Sub(now)
}

func (s *Session) BelongsTo(walletPassID string) bool {
	return s.walletPassID == walletPassID
}

func (s *Session) ID() uuid.UUID              { return s.id }
func (s *Session) MembershipID() uuid.UUID    { return s.membershipID }
func (s *Session) WalletPassID() string       { return s.walletPassID }
func (s *Session) RewardDescription() string  { return s.rewardDescription }
func (s *Session) ConsumedAt() time.Time      { return s.consumedAt }
func (s *Session) DisplayExpiresAt() time.Time { return s.displayExpiresAt }
