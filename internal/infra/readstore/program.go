package readstore

import (
	"context"

	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"
	"qwikker-loyalty/internal/usecase/queries"
)

type ProgramViewQueries interface {
	GetProgramByPublicID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProgramByPublicIDParams) (sqlc.LoyaltyPrograms, error)
}

type ProgramReadStore struct {
	queries ProgramViewQueries
	db      sqlc.DBTX
}

func NewProgramReadStore(queries ProgramViewQueries, db sqlc.DBTX) *ProgramReadStore {
	return &ProgramReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProgramReadStore) FindCardByPublicID(ctx context.Context, publicID, city string) (*queries.ProgramCardRecord, error) {
	row, err := r.queries.GetProgramByPublicID(ctx, r.db, sqlc.GetProgramByPublicIDParams{
		PublicID: publicID,
		City:     city,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find program card", err)
	}

	return &queries.ProgramCardRecord{
		PublicID:          row.PublicID,
		City:              row.City,
		RewardThreshold:   row.RewardThreshold,
		RewardDescription: row.RewardDescription,
		Status:            row.Status,
	}, nil
}
