package repository

import (
	"context"
	"time"

	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"
	"qwikker-loyalty/internal/usecase/commands"

	"github.com/google/uuid"
)

type EarnEventWriteQueries interface {
	InsertEarnEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertEarnEventParams) error
	CountUserEarnEventsSince(ctx context.Context, db sqlc.DBTX, arg sqlc.CountUserEarnEventsSinceParams) (int64, error)
	CountIPEarnEventsSince(ctx context.Context, db sqlc.DBTX, arg sqlc.CountIPEarnEventsSinceParams) (int64, error)
	CountDistinctPassesByIPSince(ctx context.Context, db sqlc.DBTX, arg sqlc.CountDistinctPassesByIPSinceParams) (int64, error)
}

type EarnEventRepository struct {
	queries EarnEventWriteQueries
	db      sqlc.DBTX
}

func NewEarnEventRepository(queries EarnEventWriteQueries, db sqlc.DBTX) *EarnEventRepository {
	return &EarnEventRepository{
		queries: queries,
		db:      db,
	}
}

// Insert appends to the audit log; rows are never mutated afterwards.
func (r *EarnEventRepository) Insert(ctx context.Context, tx sqlc.DBTX, rec commands.EarnEventRecord) error {
	err := r.queries.InsertEarnEvent(ctx, tx, sqlc.InsertEarnEventParams{
		MembershipID:     pgconv.UUIDPtrToPgtype(rec.MembershipID),
		BusinessID:       rec.BusinessID,
		UserWalletPassID: rec.WalletPassID,
		Method:           rec.Method,
		IpHash:           rec.IPHash,
		Valid:            rec.Valid,
		ReasonIfInvalid:  pgconv.StringPtrToPgtype(rec.ReasonIfInvalid),
		EarnedAt:         pgconv.TimeToPgtype(rec.EarnedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert earn event", err)
	}

	return nil
}

func (r *EarnEventRepository) CountUserSince(ctx context.Context, walletPassID string, businessID uuid.UUID, since time.Time) (int64, error) {
	count, err := r.queries.CountUserEarnEventsSince(ctx, r.db, sqlc.CountUserEarnEventsSinceParams{
		UserWalletPassID: walletPassID,
		BusinessID:       businessID,
		EarnedAt:         pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count user earn events", err)
	}
	return count, nil
}

func (r *EarnEventRepository) CountIPSince(ctx context.Context, ipHash string, since time.Time) (int64, error) {
	count, err := r.queries.CountIPEarnEventsSince(ctx, r.db, sqlc.CountIPEarnEventsSinceParams{
		IpHash:   ipHash,
		EarnedAt: pgconv.TimeToPgtype(since),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count ip earn events", err)
	}
	return count, nil
}

// CountDistinctPassesSince excludes the requester so the velocity policy
// can reason about "other identities plus me" explicitly.
func (r *EarnEventRepository) CountDistinctPassesSince(ctx context.Context, ipHash string, businessID uuid.UUID, since time.Time, requesterPassID string) (int64, error) {
	count, err := r.queries.CountDistinctPassesByIPSince(ctx, r.db, sqlc.CountDistinctPassesByIPSinceParams{
		IpHash:          ipHash,
		BusinessID:      businessID,
		EarnedAt:        pgconv.TimeToPgtype(since),
		RequesterPassID: requesterPassID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count distinct passes by ip", err)
	}
	return count, nil
}
