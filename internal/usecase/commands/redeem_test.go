//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"qwikker-loyalty/internal/domain/redemption"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/pkg/clock"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/tests/common/builder"
	commandsmock "qwikker-loyalty/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type redeemMocks struct {
	membershipRepo *commandsmock.MockMembershipRepository
	programRepo    *commandsmock.MockProgramRepository
	redemptionRepo *commandsmock.MockRedemptionRepository
	notifier       *commandsmock.MockWalletNotifier
}

func newRedemptionUseCase(t *testing.T, now time.Time) (commands.RedemptionCommands, *redeemMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &redeemMocks{
		membershipRepo: commandsmock.NewMockMembershipRepository(ctrl),
		programRepo:    commandsmock.NewMockProgramRepository(ctrl),
		redemptionRepo: commandsmock.NewMockRedemptionRepository(ctrl),
		notifier:       commandsmock.NewMockWalletNotifier(ctrl),
	}
	uc := commands.NewRedemptionUseCase(m.membershipRepo, m.programRepo, m.redemptionRepo, m.notifier, nil, clock.NewMockClock(now), config.NewTestConfig().Loyalty)
	return uc, m
}

func TestConsume_Rejections(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	membershipID := uuid.New()
	walletPassID := "pass-1234"

	testCases := []struct {
		name      string
		setupMock func(*redeemMocks)
		expectErr error
	}{
		{
			name: "error: unknown membership id",
			setupMock: func(m *redeemMocks) {
				m.membershipRepo.EXPECT().FindByID(ctx, membershipID).
					Return(nil, infra.WrapRepoErr("membership not found", nil, infra.KindNotFound))
			},
			expectErr: commands.ErrMembershipNotFound,
		},
		{
			name: "error: foreign wallet pass collapses into not found",
			setupMock: func(m *redeemMocks) {
				memb, err := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
					b.ID = membershipID
					b.WalletPassID = "someone-elses-pass"
					b.StampsBalance = 10
				}).BuildDomain()
				require.NoError(t, err)
				m.membershipRepo.EXPECT().FindByID(ctx, membershipID).Return(memb, nil)
			},
			expectErr: commands.ErrMembershipNotFound,
		},
		{
			name: "error: balance below threshold with no live session is not eligible",
			setupMock: func(m *redeemMocks) {
				memb, err := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
					b.ID = membershipID
					b.WalletPassID = walletPassID
					b.StampsBalance = 9
				}).BuildDomain()
				require.NoError(t, err)
				prog, err := builder.NewProgramBuilder().With(func(b *builder.ProgramBuilder) {
					b.ID = memb.ProgramID()
					b.RewardThreshold = 10
				}).BuildDomain()
				require.NoError(t, err)

				m.membershipRepo.EXPECT().FindByID(ctx, membershipID).Return(memb, nil)
				m.programRepo.EXPECT().FindByID(ctx, memb.ProgramID()).Return(prog, nil)
				m.redemptionRepo.EXPECT().FindActiveByMembership(ctx, gomock.Any(), membershipID, now).
					Return(nil, infra.WrapRepoErr("no active redemption session", nil, infra.KindNotFound))
			},
			expectErr: commands.ErrRewardNotEligible,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newRedemptionUseCase(t, now)
			tc.setupMock(m)

			result, err := uc.Consume(ctx, membershipID, walletPassID)

			require.ErrorIs(t, err, tc.expectErr)
			assert.Nil(t, result)
		})
	}
}

func TestConsume_ResumesOwnLiveSession(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	membershipID := uuid.New()
	walletPassID := "pass-1234"
	sessionID := uuid.New()

	uc, m := newRedemptionUseCase(t, now)

	memb, err := builder.NewMembershipBuilder().With(func(b *builder.MembershipBuilder) {
		b.ID = membershipID
		b.WalletPassID = walletPassID
		b.StampsBalance = 0
	}).BuildDomain()
	require.NoError(t, err)
	prog, err := builder.NewProgramBuilder().With(func(b *builder.ProgramBuilder) {
		b.ID = memb.ProgramID()
		b.RewardThreshold = 10
	}).BuildDomain()
	require.NoError(t, err)
	live := redemption.Reconstruct(
		sessionID, membershipID, walletPassID, "free coffee",
		now.Add(-2*time.Minute), now.Add(8*time.Minute),
	)

	m.membershipRepo.EXPECT().FindByID(ctx, membershipID).Return(memb, nil)
	m.programRepo.EXPECT().FindByID(ctx, memb.ProgramID()).Return(prog, nil)
	m.redemptionRepo.EXPECT().FindActiveByMembership(ctx, gomock.Any(), membershipID, now).Return(live, nil)

	result, err := uc.Consume(ctx, membershipID, walletPassID)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, sessionID, result.SessionID)
	assert.Equal(t, "free coffee", result.RewardDescription)
	assert.Equal(t, now.Add(8*time.Minute), result.DisplayExpiresAt)
}
