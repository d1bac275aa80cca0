package repository

import (
	"context"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type MembershipWriteQueries interface {
	TryInsertMembership(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertMembershipParams) error
	GetMembershipByProgramAndPass(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMembershipByProgramAndPassParams) (sqlc.LoyaltyMemberships, error)
	GetMembershipByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LoyaltyMemberships, error)
	LockMembership(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LoyaltyMemberships, error)
	UpdateMembershipEarn(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMembershipEarnParams) (sqlc.LoyaltyMemberships, error)
}

type MembershipRepository struct {
	queries MembershipWriteQueries
	db      sqlc.DBTX
}

func NewMembershipRepository(queries MembershipWriteQueries, db sqlc.DBTX) *MembershipRepository {
	return &MembershipRepository{
		queries: queries,
		db:      db,
	}
}

// FindOrCreate is idempotent under races: the insert swallows the unique
// conflict and the follow-up read returns whichever row won, so two
// concurrent first-earns for a brand-new customer resolve to one
// membership without a check-then-insert window.
func (r *MembershipRepository) FindOrCreate(ctx context.Context, programID uuid.UUID, walletPassID string) (*membership.Membership, error) {
	err := r.queries.TryInsertMembership(ctx, r.db, sqlc.TryInsertMembershipParams{
		ProgramID:        programID,
		UserWalletPassID: walletPassID,
		// The customer scanned from their pass, so the rendered pass
		// instance is known at creation time.
		WalletpushSerial: pgconv.StringToPgtype(walletPassID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert membership", err)
	}

	row, err := r.queries.GetMembershipByProgramAndPass(ctx, r.db, sqlc.GetMembershipByProgramAndPassParams{
		ProgramID:        programID,
		UserWalletPassID: walletPassID,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read membership after insert", err)
	}

	return toMembershipFromRow(row)
}

func (r *MembershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Membership, error) {
	row, err := r.queries.GetMembershipByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find membership by ID", err)
	}

	return toMembershipFromRow(row)
}

// FindByIDForUpdate reads the membership under a row lock. Within a
// transaction this serializes concurrent consumes on the same card: the
// loser blocks here until the winner commits and then observes the
// winner's session in any later statement of the same transaction.
func (r *MembershipRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*membership.Membership, error) {
	row, err := r.queries.LockMembership(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock membership", err)
	}

	return toMembershipFromRow(row)
}

// UpdateEarn persists an ApplyEarn mutation conditionally on the
// membership's previous lastEarnedAt. When a concurrent earn commits
// first the condition no longer holds and KindConflict is returned;
// the caller treats the loser as a cooldown rejection.
func (r *MembershipRepository) UpdateEarn(ctx context.Context, tx sqlc.DBTX, m *membership.Membership, prevEarnedAt *time.Time) (*membership.Membership, error) {
	earnedAt := m.LastEarnedAt()
	if earnedAt == nil {
		return nil, infra.WrapRepoErr("membership has no pending earn to persist", nil)
	}

	row, err := r.queries.UpdateMembershipEarn(ctx, tx, sqlc.UpdateMembershipEarnParams{
		StampsBalance:    int32(m.StampsBalance()),
		TotalEarned:      int32(m.TotalEarned()),
		EarnedTodayCount: int32(m.EarnedTodayCount()),
		EarnedTodayDate:  pgconv.StringToPgtype(m.EarnedTodayDate()),
		EarnedAt:         pgconv.TimeToPgtype(*earnedAt),
		ID:               m.ID(),
		PrevEarnedAt:     pgconv.TimePtrToPgtype(prevEarnedAt),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("concurrent earn already recorded", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to update membership earn", err)
	}

	return toMembershipFromRow(row)
}

func toMembershipFromRow(row sqlc.LoyaltyMemberships) (*membership.Membership, error) {
	earnedTodayDate := ""
	if row.EarnedTodayDate.Valid {
		earnedTodayDate = row.EarnedTodayDate.String
	}

	m, err := membership.Reconstruct(
		row.ID,
		row.ProgramID,
		row.UserWalletPassID,
		int(row.StampsBalance),
		int(row.TotalEarned),
		pgconv.TimePtrFromPgtype(row.LastEarnedAt),
		int(row.EarnedTodayCount),
		earnedTodayDate,
		pgconv.StringPtrFromPgtype(row.WalletpushSerial),
		pgconv.TimeFromPgtype(row.LastActiveAt),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert membership row", err)
	}
	return m, nil
}
