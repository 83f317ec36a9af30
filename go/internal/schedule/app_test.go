package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/store/memory"
)

func seededApp(t *testing.T) *App {
	t.Helper()
	ctx := context.Background()

	stadiums := memory.NewStadiumStore()
	_, err := stadiums.CreateStadiums(ctx, []models.Stadium{
		{StadiumUK: models.StringPtr("C05"), StadiumName: models.StringPtr("창원종합운동장")},
		{StadiumUK: models.StringPtr("B01"), StadiumName: models.StringPtr("인천월드컵경기장")},
	})
	require.NoError(t, err)

	teams := memory.NewTeamStore()
	_, err = teams.CreateTeams(ctx, []models.Team{
		{TeamUK: models.StringPtr("K06"), TeamName: models.StringPtr("아이파크")},
		{TeamUK: models.StringPtr("K10"), TeamName: models.StringPtr("시티즌")},
		{TeamUK: models.StringPtr("K04"), TeamName: models.StringPtr("유나이티드")},
	})
	require.NoError(t, err)

	return NewApp(memory.NewScheduleStore(), stadiums, teams, nil)
}

func match(date, stadiumUK, gubun, home, away string) models.Schedule {
	return models.Schedule{
		ScheDate:   models.StringPtr(date),
		StadiumUK:  models.StringPtr(stadiumUK),
		Gubun:      models.StringPtr(gubun),
		HomeTeamUK: models.StringPtr(home),
		AwayTeamUK: models.StringPtr(away),
	}
}

func TestCreateScheduleResolvesAllLinks(t *testing.T) {
	app := seededApp(t)

	s, err := app.CreateSchedule(context.Background(), match("20120501", "C05", "Y", "K06", "K10"))
	require.NoError(t, err)
	require.NotNil(t, s.Stadium)
	require.NotNil(t, s.HomeTeam)
	require.NotNil(t, s.AwayTeam)
	assert.Equal(t, "창원종합운동장", *s.Stadium.StadiumName)
	assert.Equal(t, "아이파크", *s.HomeTeam.TeamName)
	assert.Equal(t, "시티즌", *s.AwayTeam.TeamName)
	assert.Nil(t, s.HomeScore)
}

func TestCreateScheduleUnknownKeys(t *testing.T) {
	app := seededApp(t)

	s, err := app.CreateSchedule(context.Background(), match("20120501", "Z01", "Y", "K06", "K99"))
	require.NoError(t, err)
	assert.Nil(t, s.Stadium)
	assert.NotNil(t, s.HomeTeam)
	assert.Nil(t, s.AwayTeam)
	assert.Equal(t, "K99", *s.AwayTeamUK)
}

func TestUpdateScheduleScores(t *testing.T) {
	ctx := context.Background()
	app := seededApp(t)

	created, err := app.CreateSchedule(ctx, match("20120501", "C05", "Y", "K06", "K10"))
	require.NoError(t, err)

	updated, err := app.UpdateSchedule(ctx, created.ID, models.Schedule{
		HomeScore: models.IntPtr(2),
		AwayScore: models.IntPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, *updated.HomeScore)
	assert.Equal(t, 0, *updated.AwayScore)
	assert.Equal(t, "20120501", *updated.ScheDate)
	assert.Equal(t, "아이파크", *updated.HomeTeam.TeamName, "links are kept when no key is supplied")

	updated, err = app.UpdateSchedule(ctx, created.ID, models.Schedule{AwayTeamUK: models.StringPtr("K04")})
	require.NoError(t, err)
	assert.Equal(t, 2, *updated.HomeScore)
	assert.Equal(t, "유나이티드", *updated.AwayTeam.TeamName)
}

func TestUpdateScheduleMissing(t *testing.T) {
	app := seededApp(t)

	_, err := app.UpdateSchedule(context.Background(), 5, models.Schedule{Gubun: models.StringPtr("N")})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestSearchSchedules(t *testing.T) {
	ctx := context.Background()
	app := seededApp(t)

	_, err := app.CreateSchedules(ctx, []models.Schedule{
		match("20120501", "C05", "Y", "K06", "K10"),
		match("20120317", "B01", "n", "K04", "K06"),
		match("20120707", "C05", "Y", "K10", "K04"),
	})
	require.NoError(t, err)

	cases := []struct {
		keyword string
		want    int
	}{
		{"201205", 1},
		{"K06", 2},
		{"k06", 0},
		{"N", 1},
		{"y", 2},
		{"2012", 3},
	}
	for _, tc := range cases {
		t.Run(tc.keyword, func(t *testing.T) {
			got, err := app.SearchSchedules(ctx, tc.keyword)
			require.NoError(t, err)
			assert.Len(t, got, tc.want)
		})
	}
}

func TestDeleteSchedule(t *testing.T) {
	ctx := context.Background()
	app := seededApp(t)

	created, err := app.CreateSchedule(ctx, match("20120501", "C05", "Y", "K06", "K10"))
	require.NoError(t, err)

	require.NoError(t, app.DeleteSchedule(ctx, created.ID))
	all, err := app.ListAllSchedules(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.ErrorIs(t, app.DeleteSchedule(ctx, created.ID), models.ErrNotFound)
}
