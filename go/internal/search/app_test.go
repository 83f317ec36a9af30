package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
)

type fakePlayers struct {
	players []models.Player
	err     error
	calls   int
}

func (f *fakePlayers) SearchPlayers(context.Context, string) ([]models.Player, error) {
	f.calls++
	return f.players, f.err
}

type fakeTeams struct{ teams []models.Team }

func (f fakeTeams) SearchTeams(context.Context, string) ([]models.Team, error) {
	return f.teams, nil
}

func TestSearchRejectsBlankKeyword(t *testing.T) {
	players := &fakePlayers{}
	app := NewApp(players, nil, nil, nil)

	for _, kw := range []string{"", "   ", "\t\n"} {
		_, err := app.Search(context.Background(), DomainPlayer, kw)
		assert.ErrorIs(t, err, ErrEmptyKeyword)
	}
	_, err := app.Search(context.Background(), "foo", " ")
	assert.ErrorIs(t, err, ErrEmptyKeyword, "keyword is checked before the domain")
	assert.Zero(t, players.calls)
}

func TestSearchUnsupportedDomain(t *testing.T) {
	app := NewApp(&fakePlayers{}, nil, nil, nil)

	_, err := app.Search(context.Background(), "foo", "Kim")
	var unsupported *UnsupportedDomainError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "foo", unsupported.Domain)

	_, err = app.Search(context.Background(), DomainTeam, "Kim")
	require.ErrorAs(t, err, &unsupported, "domains without a searcher are unsupported")
}

func TestSearchDefaultsToPlayers(t *testing.T) {
	players := &fakePlayers{players: []models.Player{{ID: 1}}}
	app := NewApp(players, nil, nil, nil)

	for _, domain := range []string{DomainPlayer, DomainDefault, ""} {
		res, err := app.Search(context.Background(), domain, "Kim")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Count)
	}
	assert.Equal(t, 3, players.calls)
}

func TestSearchNilResultIsEmptySlice(t *testing.T) {
	app := NewApp(&fakePlayers{}, fakeTeams{}, nil, nil)

	res, err := app.Search(context.Background(), DomainTeam, "zz")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count)
	assert.Equal(t, []models.Team{}, res.Items)
}

func TestSearchWrapsBackendError(t *testing.T) {
	boom := errors.New("connection refused")
	app := NewApp(&fakePlayers{err: boom}, nil, nil, nil)

	_, err := app.Search(context.Background(), DomainPlayer, "Kim")
	assert.ErrorIs(t, err, boom)
}
