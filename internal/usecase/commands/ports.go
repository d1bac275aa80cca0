package commands

import (
	"context"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/domain/program"
	"qwikker-loyalty/internal/domain/redemption"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

// MethodCounterQR is the only earn channel today; the column exists so
// future channels (NFC, staff tablet) share one audit log.
const MethodCounterQR = "counter_qr"

// EarnEventRecord is the write-side snapshot appended to the audit log.
// MembershipID is nil when a request is rejected before the membership
// was resolved.
type EarnEventRecord struct {
	MembershipID    *uuid.UUID
	BusinessID      uuid.UUID
	WalletPassID    string
	Method          string
	IPHash          string
	Valid           bool
	ReasonIfInvalid *string
	EarnedAt        time.Time
}

type ProgramRepository interface {
	FindByPublicID(ctx context.Context, publicID, city string) (*program.Program, error)
	FindByID(ctx context.Context, id uuid.UUID) (*program.Program, error)
}

type MembershipRepository interface {
	FindOrCreate(ctx context.Context, programID uuid.UUID, walletPassID string) (*membership.Membership, error)
	FindByID(ctx context.Context, id uuid.UUID) (*membership.Membership, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*membership.Membership, error)
	UpdateEarn(ctx context.Context, tx sqlc.DBTX, m *membership.Membership, prevEarnedAt *time.Time) (*membership.Membership, error)
}

type EarnEventRepository interface {
	Insert(ctx context.Context, tx sqlc.DBTX, rec EarnEventRecord) error
	CountUserSince(ctx context.Context, walletPassID string, businessID uuid.UUID, since time.Time) (int64, error)
	CountIPSince(ctx context.Context, ipHash string, since time.Time) (int64, error)
	CountDistinctPassesSince(ctx context.Context, ipHash string, businessID uuid.UUID, since time.Time, requesterPassID string) (int64, error)
}

type RedemptionRepository interface {
	ConsumeReward(ctx context.Context, tx sqlc.DBTX, membershipID uuid.UUID, walletPassID string, threshold int32, now time.Time) (*membership.Membership, error)
	CreateSession(ctx context.Context, tx sqlc.DBTX, membershipID uuid.UUID, walletPassID, rewardDescription string, consumedAt, displayExpiresAt time.Time) (*redemption.Session, error)
	FindActiveByMembership(ctx context.Context, db sqlc.DBTX, membershipID uuid.UUID, now time.Time) (*redemption.Session, error)
}

// WalletNotifier is fire-and-forget: implementations dispatch on detached
// goroutines and never surface errors to the caller.
type WalletNotifier interface {
	SyncEarn(p *program.Program, serial string, newBalance, threshold int)
	SyncConsume(p *program.Program, serial string, newBalance, threshold int)
}
