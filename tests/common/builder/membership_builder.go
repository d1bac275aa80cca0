//go:build unit || e2e

package builder

import (
	"time"

	"qwikker-loyalty/internal/domain/membership"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipBuilder struct {
	ID               uuid.UUID
	ProgramID        uuid.UUID
	WalletPassID     string
	StampsBalance    int
	TotalEarned      int
	LastEarnedAt     *time.Time
	EarnedTodayCount int
	EarnedTodayDate  string
	WalletPushSerial *string
	LastActiveAt     time.Time
}

func NewMembershipBuilder() *MembershipBuilder {
	return &MembershipBuilder{
		ID:               uuid.New(),
		ProgramID:        uuid.New(),
		WalletPassID:     "pass-1234",
		StampsBalance:    3,
		TotalEarned:      3,
		LastEarnedAt:     nil,
		EarnedTodayCount: 0,
		EarnedTodayDate:  "",
		WalletPushSerial: nil,
		LastActiveAt:     time.Now(),
	}
}

func (b *MembershipBuilder) With(mutate func(*MembershipBuilder)) *MembershipBuilder {
	mutate(b)
	return b
}

func (b *MembershipBuilder) BuildDomain() (*membership.Membership, error) {
	return membership.Reconstruct(
		b.ID,
		b.ProgramID,
		b.WalletPassID,
		b.StampsBalance,
		b.TotalEarned,
		b.LastEarnedAt,
		b.EarnedTodayCount,
		b.EarnedTodayDate,
		b.WalletPushSerial,
		b.LastActiveAt,
	)
}

func (b *MembershipBuilder) BuildRow() sqlc.LoyaltyMemberships {
	row := sqlc.LoyaltyMemberships{
		ID:               b.ID,
		ProgramID:        b.ProgramID,
		UserWalletPassID: b.WalletPassID,
		StampsBalance:    int32(b.StampsBalance),
		TotalEarned:      int32(b.TotalEarned),
		EarnedTodayCount: int32(b.EarnedTodayCount),
		LastActiveAt:     pgconv.TimeToPgtype(b.LastActiveAt),
		CreatedAt:        pgconv.TimeToPgtype(b.LastActiveAt),
		UpdatedAt:        pgconv.TimeToPgtype(b.LastActiveAt),
	}
	if b.LastEarnedAt != nil {
		row.LastEarnedAt = pgconv.TimeToPgtype(*b.LastEarnedAt)
	}
	if b.EarnedTodayDate != "" {
		row.EarnedTodayDate = pgconv.StringToPgtype(b.EarnedTodayDate)
	}
	row.WalletpushSerial = pgconv.StringPtrToPgtype(b.WalletPushSerial)
	return row
}
