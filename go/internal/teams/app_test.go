package teams

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
	"github.com/labzang/soccer/go/internal/store/memory"
)

type fixture struct {
	app      *App
	stadiums *memory.StadiumStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	stadiums := memory.NewStadiumStore()
	_, err := stadiums.CreateStadiums(context.Background(), []models.Stadium{
		{StadiumUK: models.StringPtr("B02"), StadiumName: models.StringPtr("성남종합운동장")},
		{StadiumUK: models.StringPtr("C06"), StadiumName: models.StringPtr("포항스틸야드")},
	})
	require.NoError(t, err)

	return fixture{
		app:      NewApp(memory.NewTeamStore(), stadiums, nil),
		stadiums: stadiums,
	}
}

func sampleTeam() models.Team {
	return models.Team{
		TeamUK:     models.StringPtr("K05"),
		RegionName: models.StringPtr("전북"),
		TeamName:   models.StringPtr("현대모터스"),
		ETeamName:  models.StringPtr("CHUNBUK HYUNDAI MOTORS FC"),
		OrigYYYY:   models.StringPtr("1995"),
		Owner:      models.StringPtr("현대자동차"),
		StadiumUK:  models.StringPtr("B02"),
	}
}

func TestCreateTeamResolvesStadium(t *testing.T) {
	f := newFixture(t)

	team, err := f.app.CreateTeam(context.Background(), sampleTeam())
	require.NoError(t, err)
	require.NotNil(t, team.Stadium)
	assert.Equal(t, "성남종합운동장", *team.Stadium.StadiumName)

	stored, err := f.app.GetTeam(context.Background(), team.ID)
	require.NoError(t, err)
	assert.Equal(t, "B02", *stored.StadiumUK)
}

func TestCreateTeamWithUnknownStadiumKeepsKey(t *testing.T) {
	f := newFixture(t)
	req := sampleTeam()
	req.StadiumUK = models.StringPtr("Z99")

	team, err := f.app.CreateTeam(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, team.Stadium)
	assert.Equal(t, "Z99", *team.StadiumUK)
}

func TestUpdateTeamMerge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.app.CreateTeam(ctx, sampleTeam())
	require.NoError(t, err)

	updated, err := f.app.UpdateTeam(ctx, created.ID, models.Team{Homepage: models.StringPtr("http://www.hyundai-motorsfc.com")})
	require.NoError(t, err)

	assert.Equal(t, "http://www.hyundai-motorsfc.com", *updated.Homepage)
	assert.Equal(t, *created.TeamName, *updated.TeamName)
	assert.Equal(t, *created.Owner, *updated.Owner)
	assert.Equal(t, "B02", *updated.StadiumUK)
	require.NotNil(t, updated.Stadium, "existing link is retained when no key is supplied")
	assert.Equal(t, "B02", *updated.Stadium.StadiumUK)
}

func TestUpdateTeamRelinksStadium(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.app.CreateTeam(ctx, sampleTeam())
	require.NoError(t, err)

	moved, err := f.app.UpdateTeam(ctx, created.ID, models.Team{StadiumUK: models.StringPtr("C06")})
	require.NoError(t, err)
	assert.Equal(t, "포항스틸야드", *moved.Stadium.StadiumName)

	unknown, err := f.app.UpdateTeam(ctx, created.ID, models.Team{StadiumUK: models.StringPtr("Z99")})
	require.NoError(t, err)
	assert.Equal(t, "Z99", *unknown.StadiumUK)
	require.NotNil(t, unknown.Stadium)
	assert.Equal(t, "C06", *unknown.Stadium.StadiumUK, "unresolved key falls back to the previous link")
}

func TestUpdateAndDeleteMissingTeam(t *testing.T) {
	f := newFixture(t)

	_, err := f.app.UpdateTeam(context.Background(), 11, models.Team{})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, f.app.DeleteTeam(context.Background(), 11), models.ErrNotFound)
}

type failingStadiums struct{}

func (failingStadiums) GetStadiumByUK(context.Context, string) (*models.Stadium, error) {
	return nil, errors.New("connection refused")
}

func TestCreateTeamPropagatesLookupFailure(t *testing.T) {
	app := NewApp(memory.NewTeamStore(), failingStadiums{}, nil)

	_, err := app.CreateTeam(context.Background(), sampleTeam())
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrNotFound)

	all, err := app.ListAllTeams(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateTeamsAndSearch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	second := models.Team{
		TeamUK:     models.StringPtr("K03"),
		RegionName: models.StringPtr("포항"),
		TeamName:   models.StringPtr("스틸러스"),
		ETeamName:  models.StringPtr("FC POHANG STEELERS"),
		Owner:      models.StringPtr("포스코"),
		StadiumUK:  models.StringPtr("C06"),
	}
	created, err := f.app.CreateTeams(ctx, []models.Team{sampleTeam(), second})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "포항스틸야드", *created[1].Stadium.StadiumName)

	got, err := f.app.SearchTeams(ctx, "steelers")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "K03", *got[0].TeamUK)

	got, err = f.app.SearchTeams(ctx, "현대")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "K05", *got[0].TeamUK)

	got, err = f.app.SearchTeams(ctx, "서울")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetTeamByUK(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.app.CreateTeam(ctx, sampleTeam())
	require.NoError(t, err)

	team, err := f.app.GetTeamByUK(ctx, "K05")
	require.NoError(t, err)
	assert.Equal(t, "현대모터스", *team.TeamName)

	_, err = f.app.GetTeamByUK(ctx, "K00")
	assert.ErrorIs(t, err, models.ErrNotFound)
}
