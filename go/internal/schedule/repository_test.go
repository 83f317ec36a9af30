package schedule

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
	"github.com/labzang/soccer/go/internal/schedule/db"
)

var scheduleCols = []string{"id", "sche_date", "stadium_uk", "gubun", "hometeam_uk", "awayteam_uk", "home_score", "away_score"}

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewRepository(db.New(database), database), mock
}

func TestRepositoryCreateScheduleNullScores(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).
		WithArgs("20120501", "C05", "Y", "K06", "K10", nil, nil).
		WillReturnRows(sqlmock.NewRows(scheduleCols).
			AddRow(int64(1), "20120501", "C05", "Y", "K06", "K10", nil, nil))

	got, err := repo.CreateSchedule(context.Background(), models.Schedule{
		ScheDate:   models.StringPtr("20120501"),
		StadiumUK:  models.StringPtr("C05"),
		Gubun:      models.StringPtr("Y"),
		HomeTeamUK: models.StringPtr("K06"),
		AwayTeamUK: models.StringPtr("K10"),
	})
	require.NoError(t, err)
	assert.Nil(t, got.HomeScore)
	assert.Nil(t, got.AwayScore)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryUpdateScheduleScores(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE schedules SET")).
		WithArgs(int64(1), "20120501", nil, nil, nil, nil, int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows(scheduleCols).
			AddRow(int64(1), "20120501", nil, nil, nil, nil, int64(3), int64(1)))

	got, err := repo.UpdateSchedule(context.Background(), models.Schedule{
		ID:        1,
		ScheDate:  models.StringPtr("20120501"),
		HomeScore: models.IntPtr(3),
		AwayScore: models.IntPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, *got.HomeScore)
	assert.Equal(t, 1, *got.AwayScore)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetScheduleNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM schedules")).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetSchedule(context.Background(), 5)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRepositoryCreateSchedulesRollsBack(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedules")).
		WillReturnError(errors.New("canceling statement due to statement timeout"))
	mock.ExpectRollback()

	_, err := repo.CreateSchedules(context.Background(), []models.Schedule{{ScheDate: models.StringPtr("20120501")}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryListAndDelete(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(scheduleCols).
			AddRow(int64(1), "20120501", nil, nil, nil, nil, nil, nil).
			AddRow(int64(2), "20120502", nil, nil, nil, nil, int64(0), int64(0)))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schedules")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.ListAllSchedules(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, *got[1].HomeScore)

	require.NoError(t, repo.DeleteSchedule(context.Background(), 2))
	require.NoError(t, mock.ExpectationsWereMet())
}
