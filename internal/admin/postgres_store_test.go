package admin

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresStore(sqlx.NewDb(db, "sqlmock")), mock
}

func lookupResource(t *testing.T, name string) Resource {
	t.Helper()

	res, ok := NewRegistry().Lookup(name)
	require.True(t, ok)

	return res
}

func TestPostgresStoreListWithSearchAndFilter(t *testing.T) {
	store, mock := newMockStore(t)
	res := lookupResource(t, "players")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM players WHERE (first_name ILIKE $1 OR last_name ILIKE $2) AND team_id = $3",
	)).
		WithArgs("%Novák%", "%Novák%", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM players WHERE (first_name ILIKE $1 OR last_name ILIKE $2) AND team_id = $3 ORDER BY jersey_number ASC LIMIT 25",
	)).
		WithArgs("%Novák%", "%Novák%", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name"}).
			AddRow(int64(4), "Jan", "Novák"))

	rows, total, err := store.List(context.Background(), res, ListQuery{
		Search:  "Novák",
		Filters: map[string]any{"team_id": int64(1)},
		Page:    1,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Novák", rows[0]["last_name"])
}

func TestPostgresStoreCreateReturnsID(t *testing.T) {
	store, mock := newMockStore(t)
	res := lookupResource(t, "leagues")

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO leagues (description, name, season) VALUES ($1, $2, $3) RETURNING id",
	)).
		WithArgs("", "Okresní přebor", "2025/2026").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := store.Create(context.Background(), res, Row{
		"name":        "Okresní přebor",
		"season":      "2025/2026",
		"description": "",
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, int64(7), id)
}

func TestPostgresStoreUpsertSingleton(t *testing.T) {
	store, mock := newMockStore(t)
	res := lookupResource(t, "main-page")

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO main_page_config (singleton_key, featured_news_ids) VALUES ($1, $2) "+
			"ON CONFLICT (singleton_key) DO UPDATE SET featured_news_ids = EXCLUDED.featured_news_ids",
	)).
		WithArgs(true, pq.Int64Array{3, 1}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpsertSingleton(context.Background(), res, Row{
		"featured_news_ids": []int64{3, 1},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreClearBool(t *testing.T) {
	store, mock := newMockStore(t)
	res := lookupResource(t, "teams")

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE teams SET is_club_team = $1 WHERE is_club_team = $2 AND id <> $3",
	)).
		WithArgs(false, true, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.ClearBool(context.Background(), res, "is_club_team", 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStoreDeleteReportsMissingRow(t *testing.T) {
	store, mock := newMockStore(t)
	res := lookupResource(t, "events")

	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM events WHERE id = $1",
	)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := store.Delete(context.Background(), res, 9)
	require.NoError(t, err)
	assert.False(t, deleted)
}
