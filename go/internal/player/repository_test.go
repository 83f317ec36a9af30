package player

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/player/db"
)

var playerCols = []string{
	"id", "player_uk", "player_name", "e_player_name", "nickname", "join_yyyy", "position", "back_no",
	"nation", "birth_date", "solar", "height", "weight", "team_uk",
}

func playerRow(id int64, uk, name, teamUK any) []driver.Value {
	return []driver.Value{id, uk, name, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil, teamUK}
}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewRepository(db.New(database), database), mock
}

func TestRepositoryCreatePlayer(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
		WithArgs("2000001", "김태호", nil, nil, nil, "DF", nil, nil, nil, nil, nil, nil, "K01").
		WillReturnRows(sqlmock.NewRows(playerCols).AddRow(playerRow(1, "2000001", "김태호", "K01")...))

	got, err := repo.CreatePlayer(context.Background(), models.Player{
		PlayerUK:   models.StringPtr("2000001"),
		PlayerName: models.StringPtr("김태호"),
		Position:   models.StringPtr("DF"),
		TeamUK:     models.StringPtr("K01"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Nil(t, got.Nickname)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreatePlayersAtomic(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
			WillReturnRows(sqlmock.NewRows(playerCols).AddRow(playerRow(1, "2000001", nil, nil)...))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
			WillReturnRows(sqlmock.NewRows(playerCols).AddRow(playerRow(2, "2000002", nil, nil)...))
		mock.ExpectCommit()

		got, err := repo.CreatePlayers(context.Background(), []models.Player{
			{PlayerUK: models.StringPtr("2000001")},
			{PlayerUK: models.StringPtr("2000002")},
		})
		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		repo, mock := newMockRepository(t)
		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO players")).
			WillReturnError(errors.New("connection reset by peer"))
		mock.ExpectRollback()

		_, err := repo.CreatePlayers(context.Background(), []models.Player{{PlayerUK: models.StringPtr("2000001")}})
		require.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepositoryGetPlayer(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(playerCols).AddRow(playerRow(1, "2000001", "김태호", "K01")...))
	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnError(sql.ErrNoRows)

	got, err := repo.GetPlayer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "김태호", *got.PlayerName)

	_, err = repo.GetPlayer(context.Background(), 2)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListAllPlayersEmpty(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM players")).
		WillReturnRows(sqlmock.NewRows(playerCols))

	got, err := repo.ListAllPlayers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdatePlayerMissingRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE players SET")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdatePlayer(context.Background(), models.Player{ID: 9})
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
