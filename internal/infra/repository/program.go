package repository

import (
	"context"

	"qwikker-loyalty/internal/domain/program"
	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProgramWriteQueries interface {
	GetProgramByPublicID(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProgramByPublicIDParams) (sqlc.LoyaltyPrograms, error)
	GetProgramByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.LoyaltyPrograms, error)
}

type ProgramRepository struct {
	queries ProgramWriteQueries
	db      sqlc.DBTX
}

func NewProgramRepository(queries ProgramWriteQueries, db sqlc.DBTX) *ProgramRepository {
	return &ProgramRepository{
		queries: queries,
		db:      db,
	}
}

// FindByPublicID is city-scoped: a program enrolled in one tenant city
// must never resolve for a request scoped to another.
func (r *ProgramRepository) FindByPublicID(ctx context.Context, publicID, city string) (*program.Program, error) {
	row, err := r.queries.GetProgramByPublicID(ctx, r.db, sqlc.GetProgramByPublicIDParams{
		PublicID: publicID,
		City:     city,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find program by public ID", err)
	}

	return toProgramFromRow(row)
}

func (r *ProgramRepository) FindByID(ctx context.Context, id uuid.UUID) (*program.Program, error) {
	row, err := r.queries.GetProgramByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("program not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find program by ID", err)
	}

	return toProgramFromRow(row)
}

func toProgramFromRow(row sqlc.LoyaltyPrograms) (*program.Program, error) {
	var creds *program.WalletPushCredentials
	if row.WalletpushApiKey.Valid && row.WalletpushTemplateID.Valid {
		creds = &program.WalletPushCredentials{
			APIKey:     row.WalletpushApiKey.String,
			TemplateID: row.WalletpushTemplateID.String,
		}
	}

	p, err := program.NewProgram(
		row.ID,
		row.PublicID,
		row.BusinessID,
		row.City,
		int(row.RewardThreshold),
		row.RewardDescription,
		int(row.MinGapMinutes),
		row.Timezone,
		row.Status,
		row.ScanToken,
		creds,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert program row", err)
	}
	return p, nil
}
