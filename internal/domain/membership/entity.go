package membership

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeBalance = errors.New("stamps balance cannot be negative")
)

// Membership is a customer's progress state within one program. The
// balance only changes through ApplyEarn (earn) or the redemption
// consume path; everything else treats it as read-only.
type Membership struct {
	id               uuid.UUID
	programID        uuid.UUID
	walletPassID     string
	stampsBalance    int
	totalEarned      int
	lastEarnedAt     *time.Time
	earnedTodayCount int
	earnedTodayDate  string
	walletPushSerial *string
	lastActiveAt     time.Time
}

func Reconstruct(
	id, programID uuid.UUID,
	walletPassID string,
	stampsBalance, totalEarned int,
	lastEarnedAt *time.Time,
	earnedTodayCount int,
	earnedTodayDate string,
	walletPushSerial *string,
	lastActiveAt time.Time,
) (*Membership, error) {
	if stampsBalance < 0 {
		return nil, ErrNegativeBalance
	}

	return &Membership{
		id:               id,
		programID:        programID,
		walletPassID:     walletPassID,
		stampsBalance:    stampsBalance,
		totalEarned:      totalEarned,
		lastEarnedAt:     lastEarnedAt,
		earnedTodayCount: earnedTodayCount,
		earnedTodayDate:  earnedTodayDate,
		walletPushSerial: walletPushSerial,
		lastActiveAt:     lastActiveAt,
	}, nil
}

// CanEarnAt enforces the inter-earn cooldown. When rejected, the returned
// time is when the membership becomes eligible again.
func (m *Membership) CanEarnAt(now time.Time, minGap time.Duration) (bool, time.Time) {
	if m.lastEarnedAt == nil || minGap <= 0 {
		return true, now
	}

	nextEligible := m.lastEarnedAt.Add(minGap)
	if now.Before(nextEligible) {
		return false, nextEligible
	}
	return true, now
}

// WithinDailyCap layers an optional max-per-day ceiling on top of the
// cooldown. maxPerDay <= 0 disables the check.
func (m *Membership) WithinDailyCap(localDate string, maxPerDay int) bool {
	if maxPerDay <= 0 {
		return true
	}
	if m.earnedTodayDate != localDate {
		// Counter rolls over with the merchant-local date
		return true
	}
	return m.earnedTodayCount < maxPerDay
}

// ApplyEarn credits exactly one stamp. The daily counter resets to 1 the
// moment the merchant-local date differs from the stored one, otherwise
// it increments.
func (m *Membership) ApplyEarn(now time.Time, localDate string) {
	if m.earnedTodayDate == localDate {
		m.earnedTodayCount++
	} else {
		m.earnedTodayCount = 1
		m.earnedTodayDate = localDate
	}

	m.stampsBalance++
	m.totalEarned++
	earnedAt := now
	m.lastEarnedAt = &earnedAt
	m.lastActiveAt = now
}

func (m *Membership) RewardUnlocked(threshold int) bool {
	return m.stampsBalance >= threshold
}

// ProximityMessage is the human-readable nudge shown while the reward is
// still locked; it is nil exactly when the reward is unlocked.
func (m *Membership) ProximityMessage(threshold int, rewardDescription string) *string {
	return Proximity(m.stampsBalance, threshold, rewardDescription)
}

// Proximity formats the locked-reward nudge for a raw balance. Read-side
// views use this directly without reconstructing the entity.
func Proximity(balance, threshold int, rewardDescription string) *string {
	remaining := threshold - balance
	if remaining <= 0 {
		return nil
	}

	unit := "stamps"
	if remaining == 1 {
		unit = "stamp"
	}
	msg := fmt.Sprintf("%d more %s to your %s!", remaining, unit, rewardDescription)
	return &msg
}

func (m *Membership) ID() uuid.UUID            { return m.id }
func (m *Membership) ProgramID() uuid.UUID     { return m.programID }
func (m *Membership) WalletPassID() string     { return m.walletPassID }
func (m *Membership) StampsBalance() int       { return m.stampsBalance }
func (m *Membership) TotalEarned() int         { return m.totalEarned }
func (m *Membership) LastEarnedAt() *time.Time { return m.lastEarnedAt }
func (m *Membership) EarnedTodayCount() int    { return m.earnedTodayCount }
func (m *Membership) EarnedTodayDate() string  { return m.earnedTodayDate }
func (m *Membership) WalletPushSerial() *string {
	return m.walletPushSerial
}
func (m *Membership) LastActiveAt() time.Time { return m.lastActiveAt }
