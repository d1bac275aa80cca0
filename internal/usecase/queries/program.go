package queries

import (
	"context"

	"qwikker-loyalty/internal/domain/program"
)

type ProgramCardRecord struct {
	PublicID          string
	City              string
	RewardThreshold   int32
	RewardDescription string
	Status            string
}

type ProgramQueries interface {
	GetByPublicID(ctx context.Context, publicID, city string) (*ProgramCardView, error)
}

type ProgramViewStore interface {
	FindCardByPublicID(ctx context.Context, publicID, city string) (*ProgramCardRecord, error)
}

type programQueriesImpl struct {
	store ProgramViewStore
}

func NewProgramQueries(store ProgramViewStore) ProgramQueries {
	return &programQueriesImpl{store: store}
}

func (q *programQueriesImpl) GetByPublicID(ctx context.Context, publicID, city string) (*ProgramCardView, error) {
	rec, err := q.store.FindCardByPublicID(ctx, publicID, city)
	if err != nil {
		return nil, err
	}

	return &ProgramCardView{
		PublicID:          rec.PublicID,
		City:              rec.City,
		RewardThreshold:   rec.RewardThreshold,
		RewardDescription: rec.RewardDescription,
		Active:            rec.Status == string(program.StatusActive),
	}, nil
}
