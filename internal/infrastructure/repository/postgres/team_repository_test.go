package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTeamRepositoryClubTeam(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM teams WHERE is_club_team = $1 ORDER BY id LIMIT 1",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "league_id", "name", "city", "founded_year", "flag", "is_club_team"}).
			AddRow(int64(10), int64(1), "TJ Hlavnice", "Hlavnice", 1932, "teams/hlavnice.png", true))

	club, exists, err := repo.ClubTeam(context.Background())
	require.NoError(t, err)
	require.True(t, exists)

	assert.Equal(t, int64(10), club.ID)
	assert.Equal(t, "TJ Hlavnice", club.Name)
	require.NotNil(t, club.FoundedYear)
	assert.Equal(t, 1932, *club.FoundedYear)
	assert.True(t, club.IsClubTeam)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryClubTeamMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM teams WHERE is_club_team = $1 ORDER BY id LIMIT 1",
	)).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "league_id", "name", "city", "founded_year", "flag", "is_club_team"}))

	_, exists, err := repo.ClubTeam(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamRepositoryListByLeague(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTeamRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT * FROM teams WHERE league_id = $1 ORDER BY name",
	)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "league_id", "name", "city", "founded_year", "flag", "is_club_team"}).
			AddRow(int64(11), int64(2), "Sokol Březová", "Březová", nil, "", false).
			AddRow(int64(12), int64(2), "TJ Hlavnice", "Hlavnice", 1932, "teams/hlavnice.png", true))

	teams, err := repo.ListByLeague(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, teams, 2)

	assert.Equal(t, "Sokol Březová", teams[0].Name)
	assert.Nil(t, teams[0].FoundedYear)
	require.NotNil(t, teams[1].LeagueID)
	assert.Equal(t, int64(2), *teams[1].LeagueID)

	require.NoError(t, mock.ExpectationsWereMet())
}
