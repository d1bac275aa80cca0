//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ProgramFixture describes one loyalty program row for tests. Zero values
// fall back to a coffee-shop shaped default.
type ProgramFixture struct {
	PublicID        string
	City            string
	RewardThreshold int
	MinGapMinutes   int
	Status          string
	ScanToken       string
}

func CreateTestProgram(t *testing.T, db DBLike, f ProgramFixture) uuid.UUID {
	t.Helper()

	if f.PublicID == "" {
		f.PublicID = "beach-espresso"
	}
	if f.City == "" {
		f.City = "bournemouth"
	}
	if f.RewardThreshold == 0 {
		f.RewardThreshold = 3
	}
	if f.Status == "" {
		f.Status = "active"
	}
	if f.ScanToken == "" {
		f.ScanToken = "till-token-1"
	}

	programID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO loyalty_programs (id, public_id, business_id, city, reward_threshold, reward_description, min_gap_minutes, timezone, status, scan_token)
		VALUES ($1, $2, gen_random_uuid(), $3, $4, 'free coffee', $5, 'Europe/London', $6, $7)
		ON CONFLICT (public_id, city) DO NOTHING`,
		programID, f.PublicID, f.City, f.RewardThreshold, f.MinGapMinutes, f.Status, f.ScanToken)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM loyalty_programs WHERE public_id = $1 AND city = $2", f.PublicID, f.City).Scan(&programID)
		require.NoError(t, err)
	}

	return programID
}

func CreateTestMembership(t *testing.T, db DBLike, programID uuid.UUID, walletPassID string, balance, totalEarned int) uuid.UUID {
	t.Helper()

	membershipID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO loyalty_memberships (id, program_id, user_wallet_pass_id, stamps_balance, total_earned, walletpush_serial)
		VALUES ($1, $2, $3, $4, $5, $3)`,
		membershipID, programID, walletPassID, balance, totalEarned)
	require.NoError(t, err)

	return membershipID
}

func CountEarnEvents(t *testing.T, db DBLike, valid bool) int64 {
	t.Helper()

	var count int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM loyalty_earn_events WHERE valid = $1", valid).Scan(&count)
	require.NoError(t, err)
	return count
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO loyalty_programs (public_id, business_id, city, reward_threshold, reward_description, min_gap_minutes, timezone, status, scan_token)
		VALUES ('beach-espresso', gen_random_uuid(), 'bournemouth', 3, 'free coffee', 0, 'Europe/London', 'active', 'till-token-1')
		ON CONFLICT (public_id, city) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
