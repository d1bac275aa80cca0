package readstore

import (
	"context"

	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"
	"qwikker-loyalty/internal/usecase/queries"
)

type MembershipViewQueries interface {
	GetMembershipCard(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMembershipCardParams) (sqlc.GetMembershipCardRow, error)
}

type MembershipReadStore struct {
	queries MembershipViewQueries
	db      sqlc.DBTX
}

func NewMembershipReadStore(queries MembershipViewQueries, db sqlc.DBTX) *MembershipReadStore {
	return &MembershipReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MembershipReadStore) FindCard(ctx context.Context, publicID, city, walletPassID string) (*queries.MembershipCardRecord, error) {
	row, err := r.queries.GetMembershipCard(ctx, r.db, sqlc.GetMembershipCardParams{
		PublicID:         publicID,
		City:             city,
		UserWalletPassID: walletPassID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("membership card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find membership card", err)
	}

	return rowToMembershipCardRecord(row), nil
}

func rowToMembershipCardRecord(row sqlc.GetMembershipCardRow) *queries.MembershipCardRecord {
	return &queries.MembershipCardRecord{
		MembershipID:      row.MembershipID,
		WalletPassID:      row.UserWalletPassID,
		StampsBalance:     row.StampsBalance,
		TotalEarned:       row.TotalEarned,
		LastEarnedAt:      pgconv.TimePtrFromPgtype(row.LastEarnedAt),
		ProgramID:         row.ProgramID,
		PublicID:          row.PublicID,
		RewardThreshold:   row.RewardThreshold,
		RewardDescription: row.RewardDescription,
		MinGapMinutes:     row.MinGapMinutes,
		Status:            row.Status,
	}
}
