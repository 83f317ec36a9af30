package stadium

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/stadium/db"
)

var stadiumCols = []string{"id", "stadium_uk", "stadium_name", "hometeam_uk", "seat_count", "address", "ddd", "tel"}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewRepository(db.New(database), database), mock
}

func TestRepositoryCreateStadium(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stadiums")).
		WithArgs("C02", "부산아시아드경기장", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(stadiumCols).
			AddRow(int64(4), "C02", "부산아시아드경기장", nil, nil, nil, nil, nil))

	got, err := repo.CreateStadium(context.Background(), models.Stadium{
		StadiumUK:   models.StringPtr("C02"),
		StadiumName: models.StringPtr("부산아시아드경기장"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
	assert.Equal(t, "C02", *got.StadiumUK)
	assert.Nil(t, got.Address)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetStadiumNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stadiums")).
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetStadium(context.Background(), 8)
	assert.ErrorIs(t, err, models.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetStadiumByUK(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE stadium_uk = $1")).
		WithArgs("C02").
		WillReturnRows(sqlmock.NewRows(stadiumCols).
			AddRow(int64(4), "C02", "부산아시아드경기장", "K03", "30000", nil, "051", nil))

	got, err := repo.GetStadiumByUK(context.Background(), "C02")
	require.NoError(t, err)
	assert.Equal(t, "K03", *got.HomeTeamUK)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListAllStadiums(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stadiums")).
		WillReturnRows(sqlmock.NewRows(stadiumCols).
			AddRow(int64(1), "A01", nil, nil, nil, nil, nil, nil).
			AddRow(int64(2), "A02", nil, nil, nil, nil, nil, nil))

	got, err := repo.ListAllStadiums(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "A02", *got[1].StadiumUK)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateStadiumsCommits(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stadiums")).
		WillReturnRows(sqlmock.NewRows(stadiumCols).AddRow(int64(1), "A01", nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stadiums")).
		WillReturnRows(sqlmock.NewRows(stadiumCols).AddRow(int64(2), "A02", nil, nil, nil, nil, nil, nil))
	mock.ExpectCommit()

	got, err := repo.CreateStadiums(context.Background(), []models.Stadium{
		{StadiumUK: models.StringPtr("A01")},
		{StadiumUK: models.StringPtr("A02")},
	})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreateStadiumsRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stadiums")).
		WillReturnRows(sqlmock.NewRows(stadiumCols).AddRow(int64(1), "A01", nil, nil, nil, nil, nil, nil))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO stadiums")).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	_, err := repo.CreateStadiums(context.Background(), []models.Stadium{
		{StadiumUK: models.StringPtr("A01")},
		{StadiumUK: models.StringPtr("A01")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate key")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateAndDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE stadiums SET")).
		WithArgs(int64(3), "A03", "새 경기장", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(stadiumCols).AddRow(int64(3), "A03", "새 경기장", nil, nil, nil, nil, nil))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stadiums")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.UpdateStadium(context.Background(), models.Stadium{
		ID:          3,
		StadiumUK:   models.StringPtr("A03"),
		StadiumName: models.StringPtr("새 경기장"),
	})
	require.NoError(t, err)
	assert.Equal(t, "새 경기장", *got.StadiumName)

	require.NoError(t, repo.DeleteStadium(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}
