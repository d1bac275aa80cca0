package queries

import (
	"context"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/pkg/clock"

	"github.com/google/uuid"
)

// MembershipCardRecord is the raw joined row the read store hands back;
// presentational fields are derived here, not in SQL.
type MembershipCardRecord struct {
	MembershipID      uuid.UUID
	WalletPassID      string
	StampsBalance     int32
	TotalEarned       int32
	LastEarnedAt      *time.Time
	ProgramID         uuid.UUID
	PublicID          string
	RewardThreshold   int32
	RewardDescription string
	MinGapMinutes     int32
	Status            string
}

type MembershipQueries interface {
	GetCard(ctx context.Context, publicID, city, walletPassID string) (*MembershipCardView, error)
}

type MembershipCardStore interface {
	FindCard(ctx context.Context, publicID, city, walletPassID string) (*MembershipCardRecord, error)
}

type membershipQueriesImpl struct {
	store MembershipCardStore
	clock clock.Clock
}

func NewMembershipQueries(store MembershipCardStore, clk clock.Clock) MembershipQueries {
	return &membershipQueriesImpl{store: store, clock: clk}
}

func (q *membershipQueriesImpl) GetCard(ctx context.Context, publicID, city, walletPassID string) (*MembershipCardView, error) {
	rec, err := q.store.FindCard(ctx, publicID, city, walletPassID)
	if err != nil {
		return nil, err
	}

	view := &MembershipCardView{
		MembershipID:      rec.MembershipID,
		WalletPassID:      rec.WalletPassID,
		StampsBalance:     rec.StampsBalance,
		TotalEarned:       rec.TotalEarned,
		RewardThreshold:   rec.RewardThreshold,
		RewardDescription: rec.RewardDescription,
		RewardUnlocked:    rec.StampsBalance >= rec.RewardThreshold,
		ProximityMessage:  membership.Proximity(int(rec.StampsBalance), int(rec.RewardThreshold), rec.RewardDescription),
	}

	if rec.LastEarnedAt != nil && rec.MinGapMinutes > 0 {
		next := rec.LastEarnedAt.Add(time.Duration(rec.MinGapMinutes) * time.Minute)
		if q.clock.Now().Before(next) {
			view.NextEligibleAt = &next
		}
	}

	return view, nil
}
