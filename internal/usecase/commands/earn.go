package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"qwikker-loyalty/internal/domain/fraud"
	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/domain/program"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/pkg/clock"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/errs"
	"qwikker-loyalty/internal/pkg/ptr"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProgramNotFound         = errs.New("program not found")
	ErrProgramInactive         = errs.New("program not active")
	ErrInvalidToken            = errs.New("invalid scan token")
	ErrRateLimitUser           = errs.New("user rate limit exceeded")
	ErrRateLimitIP             = errs.New("ip rate limit exceeded")
	ErrIPVelocity              = errs.New("ip velocity threshold exceeded")
	ErrDailyCapReached         = errs.New("daily earn cap reached")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type EarnParams struct {
	PublicID     string
	Token        string
	WalletPassID string
	City         string
	RawIP        string
}

// EarnResult is returned for both granted stamps and cooldown rejections;
// the cooldown shape keeps Success false and reports current state plus
// when the membership becomes eligible again.
type EarnResult struct {
	Success          bool
	NewBalance       int
	Threshold        int
	RewardUnlocked   bool
	ProximityMessage *string
	NextEligibleAt   *time.Time
	Reason           *string
}

type EarnCommands interface {
	Earn(ctx context.Context, params EarnParams) (*EarnResult, error)
}

type earnUseCaseImpl struct {
	programRepo    ProgramRepository
	membershipRepo MembershipRepository
	eventRepo      EarnEventRepository
	notifier       WalletNotifier
	db             *pgxpool.Pool
	clock          clock.Clock
	policy         config.LoyaltyConfig
}

func NewEarnUseCase(
	programRepo ProgramRepository,
	membershipRepo MembershipRepository,
	eventRepo EarnEventRepository,
	notifier WalletNotifier,
	db *pgxpool.Pool,
	clk clock.Clock,
	policy config.LoyaltyConfig,
) EarnCommands {
	return &earnUseCaseImpl{
		programRepo:    programRepo,
		membershipRepo: membershipRepo,
		eventRepo:      eventRepo,
		notifier:       notifier,
		db:             db,
		clock:          clk,
		policy:         policy,
	}
}

func (u *earnUseCaseImpl) Earn(ctx context.Context, params EarnParams) (*EarnResult, error) {
	now := u.clock.Now()

	prog, err := u.programRepo.FindByPublicID(ctx, params.PublicID, params.City)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !prog.IsActive() {
		return nil, ErrProgramInactive
	}
	if !prog.VerifyToken(params.Token) {
		// No event recorded: a failed token never proved physical presence
		return nil, ErrInvalidToken
	}

	ipHash := fraud.HashIP([]byte(u.policy.IPHashKey), params.RawIP)

	if err := u.checkRates(ctx, prog, params.WalletPassID, ipHash, now); err != nil {
		return nil, err
	}

	if err := u.checkVelocity(ctx, prog, params.WalletPassID, ipHash, now); err != nil {
		return nil, err
	}

	memb, err := u.membershipRepo.FindOrCreate(ctx, prog.ID(), params.WalletPassID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if ok, nextEligible := memb.CanEarnAt(now, prog.MinGap()); !ok {
		return cooldownResult(memb, prog, nextEligible), nil
	}

	localDate := prog.LocalDate(now)
	if !memb.WithinDailyCap(localDate, u.policy.MaxEarnsPerDay) {
		return nil, ErrDailyCapReached
	}

	prevEarnedAt := memb.LastEarnedAt()
	memb.ApplyEarn(now, localDate)

	updated, err := u.recordEarn(ctx, prog, memb, prevEarnedAt, ipHash, now)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// A concurrent request recorded the earn first; answer with the
		// state that request produced.
		fresh, ferr := u.membershipRepo.FindByID(ctx, memb.ID())
		if ferr != nil {
			return nil, errs.Mark(ferr, ErrDatabaseOperationFailed)
		}
		_, nextEligible := fresh.CanEarnAt(now, prog.MinGap())
		return cooldownResult(fresh, prog, nextEligible), nil
	}

	u.notifier.SyncEarn(prog, ptr.Deref(updated.WalletPushSerial(), ""), updated.StampsBalance(), prog.RewardThreshold())

	result := &EarnResult{
		Success:          true,
		NewBalance:       updated.StampsBalance(),
		Threshold:        prog.RewardThreshold(),
		RewardUnlocked:   updated.RewardUnlocked(prog.RewardThreshold()),
		ProximityMessage: updated.ProximityMessage(prog.RewardThreshold(), prog.RewardDescription()),
	}
	if gap := prog.MinGap(); gap > 0 {
		next := now.Add(gap)
		result.NextEligibleAt = &next
	}
	return result, nil
}

func (u *earnUseCaseImpl) checkRates(ctx context.Context, prog *program.Program, walletPassID, ipHash string, now time.Time) error {
	hourAgo := now.Add(-time.Hour)

	userCount, err := u.eventRepo.CountUserSince(ctx, walletPassID, prog.BusinessID(), hourAgo)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if fraud.ExceedsUserRate(userCount, u.policy.UserRatePerHour) {
		return ErrRateLimitUser
	}

	ipCount, err := u.eventRepo.CountIPSince(ctx, ipHash, hourAgo)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if fraud.ExceedsIPRate(ipCount, u.policy.IPRatePerHour) {
		return ErrRateLimitIP
	}
	return nil
}

func (u *earnUseCaseImpl) checkVelocity(ctx context.Context, prog *program.Program, walletPassID, ipHash string, now time.Time) error {
	windowStart := now.Add(-u.policy.VelocityWindow())
	others, err := u.eventRepo.CountDistinctPassesSince(ctx, ipHash, prog.BusinessID(), windowStart, walletPassID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !fraud.ExceedsIPVelocity(others, u.policy.VelocityThreshold) {
		return nil
	}

	// The rejection itself is evidence; keep it for forensic trend analysis.
	rec := EarnEventRecord{
		BusinessID:      prog.BusinessID(),
		WalletPassID:    walletPassID,
		Method:          MethodCounterQR,
		IPHash:          ipHash,
		Valid:           false,
		ReasonIfInvalid: ptr.To(string(fraud.ReasonIPVelocity)),
		EarnedAt:        now,
	}
	if insErr := u.eventRepo.Insert(ctx, u.db, rec); insErr != nil {
		slog.Error("failed to record velocity rejection", "error", insErr)
	}
	return ErrIPVelocity
}

// recordEarn persists the stamp and its audit event in one transaction.
// The membership update is conditional on the previous last_earned_at, so
// of two concurrent earns exactly one commits; the loser returns (nil, nil).
func (u *earnUseCaseImpl) recordEarn(
	ctx context.Context,
	prog *program.Program,
	memb *membership.Membership,
	prevEarnedAt *time.Time,
	ipHash string,
	now time.Time,
) (*membership.Membership, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	updated, err := u.membershipRepo.UpdateEarn(ctx, tx, memb, prevEarnedAt)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	membershipID := updated.ID()
	rec := EarnEventRecord{
		MembershipID: &membershipID,
		BusinessID:   prog.BusinessID(),
		WalletPassID: updated.WalletPassID(),
		Method:       MethodCounterQR,
		IPHash:       ipHash,
		Valid:        true,
		EarnedAt:     now,
	}
	if err := u.eventRepo.Insert(ctx, tx, rec); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return updated, nil
}

func cooldownResult(memb *membership.Membership, prog *program.Program, nextEligibleAt time.Time) *EarnResult {
	return &EarnResult{
		Success:          false,
		NewBalance:       memb.StampsBalance(),
		Threshold:        prog.RewardThreshold(),
		RewardUnlocked:   memb.RewardUnlocked(prog.RewardThreshold()),
		ProximityMessage: memb.ProximityMessage(prog.RewardThreshold(), prog.RewardDescription()),
		NextEligibleAt:   &nextEligibleAt,
		Reason:           ptr.To(string(fraud.ReasonCooldown)),
	}
}
