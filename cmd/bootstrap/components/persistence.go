package components

import (
	"qwikker-loyalty/internal/infra/qrcode"
	"qwikker-loyalty/internal/infra/readstore"
	"qwikker-loyalty/internal/infra/repository"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/infra/walletpush"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		// Write side
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.ProgramWriteQueries)),
		),
		fx.Annotate(
			repository.NewProgramRepository,
			fx.As(new(commands.ProgramRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.MembershipWriteQueries)),
		),
		fx.Annotate(
			repository.NewMembershipRepository,
			fx.As(new(commands.MembershipRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.EarnEventWriteQueries)),
		),
		fx.Annotate(
			repository.NewEarnEventRepository,
			fx.As(new(commands.EarnEventRepository)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.RedemptionWriteQueries)),
		),
		fx.Annotate(
			repository.NewRedemptionRepository,
			fx.As(new(commands.RedemptionRepository)),
			fx.As(new(queries.RedemptionSessionStore)),
		),
		// Read side
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MembershipViewQueries)),
		),
		fx.Annotate(
			readstore.NewMembershipReadStore,
			fx.As(new(queries.MembershipCardStore)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProgramViewQueries)),
		),
		fx.Annotate(
			readstore.NewProgramReadStore,
			fx.As(new(queries.ProgramViewStore)),
		),
		// Outbound adapters
		walletpush.NewClient,
		fx.Annotate(
			walletpush.NewNotifier,
			fx.As(new(commands.WalletNotifier)),
		),
		qrcode.NewGenerator,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
