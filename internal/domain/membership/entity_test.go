//go:build unit

package membership_test

import (
	"testing"
	"time"

	"qwikker-loyalty/internal/domain/membership"
	"qwikker-loyalty/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembership_CanEarnAt(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	minGap := 60 * time.Minute

	t.Run("first earn is always allowed", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.LastEarnedAt = nil
		})

		ok, _ := m.CanEarnAt(now, minGap)
		assert.True(t, ok)
	})

	t.Run("earn within cooldown is rejected with next eligible time", func(t *testing.T) {
		last := now.Add(-30 * time.Second)
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.LastEarnedAt = &last
		})

		ok, nextEligible := m.CanEarnAt(now, minGap)
		assert.False(t, ok)
		assert.Equal(t, last.Add(minGap), nextEligible)
		assert.Equal(t, 59*time.Minute+30*time.Second, nextEligible.Sub(now))
	})

	t.Run("earn exactly at the gap boundary is allowed", func(t *testing.T) {
		last := now.Add(-minGap)
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.LastEarnedAt = &last
		})

		ok, _ := m.CanEarnAt(now, minGap)
		assert.True(t, ok)
	})

	t.Run("zero gap disables the cooldown", func(t *testing.T) {
		last := now.Add(-time.Second)
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.LastEarnedAt = &last
		})

		ok, _ := m.CanEarnAt(now, 0)
		assert.True(t, ok)
	})
}

func TestMembership_ApplyEarn(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("same local date increments the daily counter", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.StampsBalance = 3
			b.TotalEarned = 7
			b.EarnedTodayCount = 2
			b.EarnedTodayDate = "2026-03-14"
		})

		m.ApplyEarn(now, "2026-03-14")

		assert.Equal(t, 4, m.StampsBalance())
		assert.Equal(t, 8, m.TotalEarned())
		assert.Equal(t, 3, m.EarnedTodayCount())
		assert.Equal(t, "2026-03-14", m.EarnedTodayDate())
		require.NotNil(t, m.LastEarnedAt())
		assert.Equal(t, now, *m.LastEarnedAt())
	})

	t.Run("new local date resets the daily counter to one", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.EarnedTodayCount = 5
			b.EarnedTodayDate = "2026-03-13"
		})

		m.ApplyEarn(now, "2026-03-14")

		assert.Equal(t, 1, m.EarnedTodayCount())
		assert.Equal(t, "2026-03-14", m.EarnedTodayDate())
	})

	t.Run("first ever earn starts the daily counter", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.StampsBalance = 0
			b.TotalEarned = 0
			b.EarnedTodayCount = 0
			b.EarnedTodayDate = ""
		})

		m.ApplyEarn(now, "2026-03-14")

		assert.Equal(t, 1, m.StampsBalance())
		assert.Equal(t, 1, m.TotalEarned())
		assert.Equal(t, 1, m.EarnedTodayCount())
	})
}

func TestMembership_WithinDailyCap(t *testing.T) {
	t.Run("disabled cap always passes", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.EarnedTodayCount = 99
			b.EarnedTodayDate = "2026-03-14"
		})

		assert.True(t, m.WithinDailyCap("2026-03-14", 0))
	})

	t.Run("cap reached on the same local date", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.EarnedTodayCount = 3
			b.EarnedTodayDate = "2026-03-14"
		})

		assert.False(t, m.WithinDailyCap("2026-03-14", 3))
		assert.True(t, m.WithinDailyCap("2026-03-14", 4))
	})

	t.Run("date rollover clears the cap", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.EarnedTodayCount = 3
			b.EarnedTodayDate = "2026-03-13"
		})

		assert.True(t, m.WithinDailyCap("2026-03-14", 3))
	})
}

func TestMembership_RewardProgress(t *testing.T) {
	t.Run("reward unlocks exactly at the threshold", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.StampsBalance = 10
		})

		assert.True(t, m.RewardUnlocked(10))
		assert.False(t, m.RewardUnlocked(11))
	})

	t.Run("proximity message is nil exactly when unlocked", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.StampsBalance = 10
		})

		assert.Nil(t, m.ProximityMessage(10, "free coffee"))

		msg := m.ProximityMessage(12, "free coffee")
		require.NotNil(t, msg)
		assert.Equal(t, "2 more stamps to your free coffee!", *msg)
	})

	t.Run("singular stamp wording", func(t *testing.T) {
		m := buildMembership(t, func(b *builder.MembershipBuilder) {
			b.StampsBalance = 9
		})

		msg := m.ProximityMessage(10, "free coffee")
		require.NotNil(t, msg)
		assert.Equal(t, "1 more stamp to your free coffee!", *msg)
	})
}

func TestMembership_Reconstruct(t *testing.T) {
	t.Run("negative balance is rejected", func(t *testing.T) {
		_, err := builder.NewMembershipBuilder().
			With(func(b *builder.MembershipBuilder) { b.StampsBalance = -1 }).
			BuildDomain()
		assert.ErrorIs(t, err, membership.ErrNegativeBalance)
	})
}

func buildMembership(t *testing.T, mutate func(*builder.MembershipBuilder)) *membership.Membership {
	t.Helper()

	m, err := builder.NewMembershipBuilder().With(mutate).BuildDomain()
	require.NoError(t, err)
	return m
}
