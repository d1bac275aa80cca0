//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/infra/repository"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/internal/pkg/pgconv"
	"qwikker-loyalty/internal/pkg/ptr"
	"qwikker-loyalty/internal/usecase/commands"
	repositorymock "qwikker-loyalty/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEarnEventRepository_Insert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	membershipID := uuid.New()
	businessID := uuid.New()

	t.Run("success: valid earn event persisted with membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockEarnEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertEarnEvent(ctx, mockDB, sqlc.InsertEarnEventParams{
			MembershipID:     pgconv.UUIDPtrToPgtype(&membershipID),
			BusinessID:       businessID,
			UserWalletPassID: "pass-1234",
			Method:           commands.MethodCounterQR,
			IpHash:           "abc123",
			Valid:            true,
			EarnedAt:         pgconv.TimeToPgtype(now),
		}).Return(nil)

		repo := repository.NewEarnEventRepository(mockQueries, mockDB)
		err := repo.Insert(ctx, mockDB, commands.EarnEventRecord{
			MembershipID: &membershipID,
			BusinessID:   businessID,
			WalletPassID: "pass-1234",
			Method:       commands.MethodCounterQR,
			IPHash:       "abc123",
			Valid:        true,
			EarnedAt:     now,
		})

		require.NoError(t, err)
	})

	t.Run("success: rejection event carries reason and no membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockEarnEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertEarnEvent(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.InsertEarnEventParams) error {
				assert.False(t, arg.MembershipID.Valid)
				assert.False(t, arg.Valid)
				assert.True(t, arg.ReasonIfInvalid.Valid)
				assert.Equal(t, "ip_velocity", arg.ReasonIfInvalid.String)
				return nil
			})

		repo := repository.NewEarnEventRepository(mockQueries, mockDB)
		err := repo.Insert(ctx, mockDB, commands.EarnEventRecord{
			BusinessID:      businessID,
			WalletPassID:    "pass-1234",
			Method:          commands.MethodCounterQR,
			IPHash:          "abc123",
			Valid:           false,
			ReasonIfInvalid: ptr.To("ip_velocity"),
			EarnedAt:        now,
		})

		require.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockEarnEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().InsertEarnEvent(ctx, mockDB, gomock.Any()).
			Return(errors.New("database connection error"))

		repo := repository.NewEarnEventRepository(mockQueries, mockDB)
		err := repo.Insert(ctx, mockDB, commands.EarnEventRecord{
			BusinessID:   businessID,
			WalletPassID: "pass-1234",
			Method:       commands.MethodCounterQR,
			IPHash:       "abc123",
			Valid:        true,
			EarnedAt:     now,
		})

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestEarnEventRepository_Counts(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2025, 6, 15, 11, 0, 0, 0, time.UTC)
	businessID := uuid.New()

	t.Run("success: distinct pass count excludes the requester", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockEarnEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CountDistinctPassesByIPSince(ctx, mockDB, sqlc.CountDistinctPassesByIPSinceParams{
			IpHash:          "abc123",
			BusinessID:      businessID,
			EarnedAt:        pgconv.TimeToPgtype(since),
			RequesterPassID: "pass-1234",
		}).Return(int64(2), nil)

		repo := repository.NewEarnEventRepository(mockQueries, mockDB)
		count, err := repo.CountDistinctPassesSince(ctx, "abc123", businessID, since, "pass-1234")

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("error: count query fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockEarnEventWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CountUserEarnEventsSince(ctx, mockDB, gomock.Any()).
			Return(int64(0), errors.New("database connection error"))

		repo := repository.NewEarnEventRepository(mockQueries, mockDB)
		count, err := repo.CountUserSince(ctx, "pass-1234", businessID, since)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, count)
	})
}
