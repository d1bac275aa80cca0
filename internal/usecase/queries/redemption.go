package queries

import (
	"context"
	"time"

	"qwikker-loyalty/internal/domain/redemption"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/pkg/clock"
	"qwikker-loyalty/internal/pkg/errs"

	"github.com/google/uuid"
)

// Ownership failures collapse into not-found so a session ID alone leaks
// nothing about other customers' redemptions.
var ErrSessionNotFound = errs.New("redemption session not found")

type RedemptionQueries interface {
	GetSession(ctx context.Context, sessionID uuid.UUID, walletPassID string) (*RedemptionSessionView, error)
}

type RedemptionSessionStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*redemption.Session, error)
}

type redemptionQueriesImpl struct {
	store RedemptionSessionStore
	clock clock.Clock
}

func NewRedemptionQueries(store RedemptionSessionStore, clk clock.Clock) RedemptionQueries {
	return &redemptionQueriesImpl{store: store, clock: clk}
}

func (q *redemptionQueriesImpl) GetSession(ctx context.Context, sessionID uuid.UUID, walletPassID string) (*RedemptionSessionView, error) {
	session, err := q.store.FindByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !session.BelongsTo(walletPassID) {
		return nil, ErrSessionNotFound
	}

	now := q.clock.Now()
	remaining := session.Remaining(now)

	return &RedemptionSessionView{
		ID:                session.ID(),
		State:             string(session.StateAt(now)),
		RewardDescription: session.RewardDescription(),
		ConsumedAt:        session.ConsumedAt(),
		DisplayExpiresAt:  session.DisplayExpiresAt(),
		RemainingSeconds:  int64((remaining + time.Second - 1) / time.Second),
	}, nil
}
