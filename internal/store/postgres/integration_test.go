//go:build integration
// +build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/maloquacious/childsec/internal/logger"
	"github.com/maloquacious/childsec/internal/schema"
	"github.com/maloquacious/childsec/internal/store"
)

// setupTestDB starts a PostgreSQL container and returns its connection string.
func setupTestDB(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("childsec"),
		tcpostgres.WithUsername("childsec"),
		tcpostgres.WithPassword("childsec"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("Failed to start PostgreSQL container: %v", err)
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("Failed to get connection string: %v", err)
	}
	return connStr
}

func insertID(t *testing.T, db *sql.DB, query string, args ...any) int64 {
	t.Helper()
	var id int64
	require.NoError(t, db.QueryRow(query+" RETURNING id", args...).Scan(&id), query)
	return id
}

func TestIntegration_Bootstrap(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t), logger.Discard)
	require.NoError(t, s.Open(ctx))
	defer s.Close()

	for i := 0; i < 2; i++ {
		require.NoError(t, s.EnsureSchema(ctx))
		require.NoError(t, s.EnsureIndexes(ctx))
		require.NoError(t, s.SeedDefaults(ctx))
	}

	report, err := s.Verify(ctx)
	require.NoError(t, err)
	assert.True(t, report.Ready(), "%+v", report)
	assert.Equal(t, 5, report.Categories)

	state, err := s.CheckState(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.StateReady, state)

	var names []string
	rows, err := s.DB().QueryContext(ctx, `SELECT name FROM education_categories ORDER BY sort_order`)
	require.NoError(t, err)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Close())
	assert.Equal(t, []string{
		"Sécurité Internet",
		"Prévention des Dangers",
		"Communication",
		"Premiers Secours",
		"Éducation Émotionnelle",
	}, names)
}

func TestIntegration_Constraints(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t), logger.Discard)
	require.NoError(t, s.Open(ctx))
	defer s.Close()
	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureIndexes(ctx))
	db := s.DB()

	const insertUser = `INSERT INTO users (name, email, join_date) VALUES ($1, $2, CURRENT_TIMESTAMP)`
	owner := insertID(t, db, insertUser, "Owner", "owner@example.com")
	other := insertID(t, db, insertUser, "Other", "other@example.com")

	_, err := db.Exec(insertUser, "Dup", "owner@example.com")
	assert.Error(t, err, "duplicate email")

	_, err = db.Exec(`INSERT INTO ratings (user_id, target_id, target_type, rating) VALUES ($1, $2, 'user', 6)`, owner, other)
	assert.Error(t, err, "rating above range")

	const connect = `INSERT INTO parent_connections (user1_id, user2_id, connection_date) VALUES ($1, $2, CURRENT_TIMESTAMP)`
	lo, hi := schema.CanonicalPair(other, owner)
	_, err = db.Exec(connect, lo, hi)
	require.NoError(t, err)
	_, err = db.Exec(connect, hi, lo)
	assert.Error(t, err, "reversed pair")

	alert := insertID(t, db, `INSERT INTO community_alerts (user_id, title, description, alert_type, latitude, longitude, resolved_by) VALUES ($1, 'b', 'd', 'danger', 48.85, 2.35, $2)`, other, owner)
	insertID(t, db, `INSERT INTO notifications (user_id, title, message, type, data) VALUES ($1, 't', 'm', 'alert', '{"alert_id": 1}')`, owner)

	_, err = db.Exec(`DELETE FROM users WHERE id = $1`, owner)
	require.NoError(t, err)

	var resolvedBy sql.NullInt64
	require.NoError(t, db.QueryRow(`SELECT resolved_by FROM community_alerts WHERE id = $1`, alert).Scan(&resolvedBy))
	assert.False(t, resolvedBy.Valid)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notifications`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM parent_connections`).Scan(&n))
	assert.Zero(t, n)
}

func TestIntegration_ClosedStore(t *testing.T) {
	ctx := context.Background()
	s := New(setupTestDB(t), logger.Discard)
	require.NoError(t, s.Open(ctx))
	require.NoError(t, s.Close())

	err := s.SeedDefaults(ctx)
	assert.True(t, errors.Is(err, store.ErrConnectionUnavailable), "got %v", err)
}
