package repository

import (
	"context"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/domain/redemption"
	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RedemptionWriteQueries interface {
	ConsumeReward(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeRewardParams) (sqlc.LoyaltyMemberships, error)
	InsertRedemptionSession(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRedemptionSessionParams) (sqlc.RedemptionSessions, error)
	GetRedemptionSession(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RedemptionSessions, error)
	GetActiveRedemptionSession(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveRedemptionSessionParams) (sqlc.RedemptionSessions, error)
}

type RedemptionRepository struct {
	queries RedemptionWriteQueries
	db      sqlc.DBTX
}

func NewRedemptionRepository(queries RedemptionWriteQueries, db sqlc.DBTX) *RedemptionRepository {
	return &RedemptionRepository{
		queries: queries,
		db:      db,
	}
}

// ConsumeReward decrements the balance by the reward threshold in a single
// conditional update. The guard covers balance sufficiency and the absence of
// another live session, so at most one caller wins under concurrency.
func (r *RedemptionRepository) ConsumeReward(ctx context.Context, tx sqlc.DBTX, membershipID uuid.UUID, walletPassID string, threshold int32, now time.Time) (*membership.Membership, error) {
	row, err := r.queries.ConsumeReward(ctx, tx, sqlc.ConsumeRewardParams{
		Threshold:    threshold,
		NowAt:        pgconv.TimeToPgtype(now),
		ID:           membershipID,
		WalletPassID: walletPassID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward not consumable", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to consume reward", err)
	}

	return toMembershipFromRow(row)
}

func (r *RedemptionRepository) CreateSession(ctx context.Context, tx sqlc.DBTX, membershipID uuid.UUID, walletPassID, rewardDescription string, consumedAt, displayExpiresAt time.Time) (*redemption.Session, error) {
	row, err := r.queries.InsertRedemptionSession(ctx, tx, sqlc.InsertRedemptionSessionParams{
		MembershipID:      membershipID,
		WalletPassID:      walletPassID,
		RewardDescription: rewardDescription,
		ConsumedAt:        pgconv.TimeToPgtype(consumedAt),
		DisplayExpiresAt:  pgconv.TimeToPgtype(displayExpiresAt),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create redemption session", err)
	}

	return toSessionFromRow(row), nil
}

func (r *RedemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*redemption.Session, error) {
	row, err := r.queries.GetRedemptionSession(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get redemption session", err)
	}

	return toSessionFromRow(row), nil
}

// FindActiveByMembership reads the newest still-live session. Callers
// inside a consume transaction pass their tx so the read runs after the
// membership row lock and sees concurrently committed sessions.
func (r *RedemptionRepository) FindActiveByMembership(ctx context.Context, db sqlc.DBTX, membershipID uuid.UUID, now time.Time) (*redemption.Session, error) {
	row, err := r.queries.GetActiveRedemptionSession(ctx, db, sqlc.GetActiveRedemptionSessionParams{
		MembershipID:     membershipID,
		DisplayExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no active redemption session", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get active redemption session", err)
	}

	return toSessionFromRow(row), nil
}

func toSessionFromRow(row sqlc.RedemptionSessions) *redemption.Session {
	return redemption.Reconstruct(
		row.ID,
		row.MembershipID,
		row.WalletPassID,
		row.RewardDescription,
		pgconv.TimeFromPgtype(row.ConsumedAt),
		pgconv.TimeFromPgtype(row.DisplayExpiresAt),
	)
}
