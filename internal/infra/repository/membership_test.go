//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/infra/repository"
	sqlc "qwikker-loyalty/internal/infra/sqlc/generated"
	"qwikker-loyalty/tests/common/builder"
	repositorymock "qwikker-loyalty/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// FindOrCreate Tests
// =============================================================================

func TestMembershipRepository_FindOrCreate(t *testing.T) {
	ctx := context.Background()
	programID := uuid.New()
	walletPassID := "pass-1234"

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockMembershipWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: membership created or resolved",
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, db sqlc.DBTX) {
				row := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
					b.ProgramID = programID
					b.WalletPassID = walletPassID
				}).BuildRow()
				mock.EXPECT().TryInsertMembership(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().GetMembershipByProgramAndPass(ctx, db, sqlc.GetMembershipByProgramAndPassParams{
					ProgramID:        programID,
					UserWalletPassID: walletPassID,
				}).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: insert fails",
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().TryInsertMembership(ctx, db, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: read after insert fails",
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().TryInsertMembership(ctx, db, gomock.Any()).Return(nil)
				mock.EXPECT().GetMembershipByProgramAndPass(ctx, db, gomock.Any()).
					Return(sqlc.LoyaltyMemberships{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMembershipRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			memb, actualError := repo.FindOrCreate(ctx, programID, walletPassID)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, memb)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, programID, memb.ProgramID())
				assert.Equal(t, walletPassID, memb.WalletPassID())
			}
		})
	}
}

// =============================================================================
// FindByIDForUpdate Tests
// =============================================================================

func TestMembershipRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	membershipID := uuid.New()

	t.Run("success: membership read under row lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		row := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
			b.ID = membershipID
			b.StampsBalance = 6
		}).BuildRow()

		mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().LockMembership(ctx, mockDB, membershipID).Return(row, nil)

		repo := repository.NewMembershipRepository(mockQueries, mockDB)
		memb, err := repo.FindByIDForUpdate(ctx, mockDB, membershipID)

		require.NoError(t, err)
		assert.Equal(t, membershipID, memb.ID())
		assert.Equal(t, 6, memb.StampsBalance())
	})

	t.Run("error: membership missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().LockMembership(ctx, mockDB, membershipID).
			Return(sqlc.LoyaltyMemberships{}, pgx.ErrNoRows)

		repo := repository.NewMembershipRepository(mockQueries, mockDB)
		memb, err := repo.FindByIDForUpdate(ctx, mockDB, membershipID)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, memb)
	})
}

// =============================================================================
// UpdateEarn Tests
// =============================================================================

func TestMembershipRepository_UpdateEarn(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	pendingEarn := func() *membership.Membership {
		m, err := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
			b.LastEarnedAt = &now
			b.StampsBalance = 4
			b.TotalEarned = 4
		}).BuildDomain()
		require.NoError(t, err)
		return m
	}

	testCases := []struct {
		name          string
		memb          func() *membership.Membership
		setupMock     func(*repositorymock.MockMembershipWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: conditional update wins",
			memb: pendingEarn,
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, tx sqlc.DBTX) {
				row := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
					b.LastEarnedAt = &now
					b.StampsBalance = 4
					b.TotalEarned = 4
				}).BuildRow()
				mock.EXPECT().UpdateMembershipEarn(ctx, tx, gomock.Any()).Return(row, nil)
			},
			expectedError: false,
		},
		{
			name: "error: concurrent earn already recorded",
			memb: pendingEarn,
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateMembershipEarn(ctx, tx, gomock.Any()).
					Return(sqlc.LoyaltyMemberships{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindConflict,
		},
		{
			name: "error: database error occurs",
			memb: pendingEarn,
			setupMock: func(mock *repositorymock.MockMembershipWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateMembershipEarn(ctx, tx, gomock.Any()).
					Return(sqlc.LoyaltyMemberships{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: membership without pending earn",
			memb: func() *membership.Membership {
				m, err := builder.NewMembershipBuilder().BuildDomain()
				require.NoError(t, err)
				return m
			},
			setupMock:     func(mock *repositorymock.MockMembershipWriteQueries, tx sqlc.DBTX) {},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockMembershipWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewMembershipRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			memb := tc.memb()
			prev := memb.LastEarnedAt()
			updated, actualError := repo.UpdateEarn(ctx, mockDB, memb, prev)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				assert.Nil(t, updated)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, 4, updated.StampsBalance())
			}
		})
	}
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
