package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"qwikker-loyalty/internal/domain/redemption"
	"qwikker-loyalty/internal/infra"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/clock"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/errs"
	"qwikker-loyalty/internal/pkg/ptr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// Ownership mismatches collapse into not-found so membership IDs leak
	// nothing about other customers.
	ErrMembershipNotFound = errs.New("membership not found")
	ErrRewardNotEligible  = errs.New("reward not eligible or already consumed")
)

type ConsumeResult struct {
	SessionID         uuid.UUID
	RewardDescription string
	DisplayExpiresAt  time.Time
}

type RedemptionCommands interface {
	Consume(ctx context.Context, membershipID uuid.UUID, walletPassID string) (*ConsumeResult, error)
}

type redemptionUseCaseImpl struct {
	membershipRepo MembershipRepository
	programRepo    ProgramRepository
	redemptionRepo RedemptionRepository
	notifier       WalletNotifier
	db             *pgxpool.Pool
	clock          clock.Clock
	policy         config.LoyaltyConfig
}

func NewRedemptionUseCase(
	membershipRepo MembershipRepository,
	programRepo ProgramRepository,
	redemptionRepo RedemptionRepository,
	notifier WalletNotifier,
	db *pgxpool.Pool,
	clk clock.Clock,
	policy config.LoyaltyConfig,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		membershipRepo: membershipRepo,
		programRepo:    programRepo,
		redemptionRepo: redemptionRepo,
		notifier:       notifier,
		db:             db,
		clock:          clk,
		policy:         policy,
	}
}

// Consume is the server half of the reveal protocol. The client's view of
// the balance is never trusted: the membership row is locked first, so
// concurrent consumes for the same card serialize, and the loser's
// active-session read runs on a fresh snapshot that sees the winner's
// committed session. Without the lock the conditional update alone is not
// enough: under READ COMMITTED a blocked UPDATE re-evaluates its WHERE
// against the new row version while the NOT EXISTS subquery still reads
// the original snapshot, letting a card holding two rewards open two live
// sessions at once.
func (u *redemptionUseCaseImpl) Consume(ctx context.Context, membershipID uuid.UUID, walletPassID string) (*ConsumeResult, error) {
	now := u.clock.Now()

	memb, err := u.membershipRepo.FindByID(ctx, membershipID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if memb.WalletPassID() != walletPassID {
		return nil, ErrMembershipNotFound
	}

	prog, err := u.programRepo.FindByID(ctx, memb.ProgramID())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	threshold := prog.RewardThreshold()
	if !memb.RewardUnlocked(threshold) {
		// A depleted balance is either a plain ineligible card or a retry
		// after a dropped response; a still-live session settles which.
		return u.resumeActiveSession(ctx, u.db, membershipID, walletPassID, now)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	locked, err := u.membershipRepo.FindByIDForUpdate(ctx, tx, membershipID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMembershipNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Runs after the row lock is held, so a session committed by a
	// concurrent consume is visible here.
	active, err := u.redemptionRepo.FindActiveByMembership(ctx, tx, membershipID, now)
	if err == nil {
		if !active.BelongsTo(walletPassID) {
			return nil, ErrRewardNotEligible
		}
		return consumeResultFromSession(active), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !locked.RewardUnlocked(threshold) {
		return nil, ErrRewardNotEligible
	}

	updated, err := u.redemptionRepo.ConsumeReward(ctx, tx, membershipID, walletPassID, int32(threshold), now)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrRewardNotEligible
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	session, err := u.redemptionRepo.CreateSession(ctx, tx, membershipID, walletPassID, prog.RewardDescription(), now, now.Add(u.policy.DisplayWindow()))
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.notifier.SyncConsume(prog, ptr.Deref(updated.WalletPushSerial(), ""), updated.StampsBalance(), threshold)

	return consumeResultFromSession(session), nil
}

// resumeActiveSession hands back the customer's own live session, so a
// retry after a dropped response stays idempotent; anyone else sees the
// same rejection as an ineligible card.
func (u *redemptionUseCaseImpl) resumeActiveSession(ctx context.Context, db sqlc.DBTX, membershipID uuid.UUID, walletPassID string, now time.Time) (*ConsumeResult, error) {
	session, err := u.redemptionRepo.FindActiveByMembership(ctx, db, membershipID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRewardNotEligible
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !session.BelongsTo(walletPassID) {
		return nil, ErrRewardNotEligible
	}

	return consumeResultFromSession(session), nil
}

func consumeResultFromSession(session *redemption.Session) *ConsumeResult {
	return &ConsumeResult{
		SessionID:         session.ID(),
		RewardDescription: session.RewardDescription(),
		DisplayExpiresAt:  session.DisplayExpiresAt(),
	}
}
