package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labzang/soccer/go/internal/models"
)

func TestTeamStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewTeamStore()

	created, err := store.CreateTeam(ctx, models.Team{
		TeamUK:   models.StringPtr("K01"),
		TeamName: models.StringPtr("울산현대"),
		Stadium:  &models.Stadium{ID: 99},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Stadium)

	byKey, err := store.GetTeamByUK(ctx, "K01")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byKey.ID)

	_, err = store.GetTeamByUK(ctx, "K99")
	assert.ErrorIs(t, err, models.ErrNotFound)

	created.TeamName = models.StringPtr("울산 HD")
	updated, err := store.UpdateTeam(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "울산 HD", *updated.TeamName)

	require.NoError(t, store.DeleteTeam(ctx, created.ID))
	_, err = store.GetTeam(ctx, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = store.UpdateTeam(ctx, *created)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListIsOrderedByID(t *testing.T) {
	ctx := context.Background()
	store := NewPlayerStore()

	created, err := store.CreatePlayers(ctx, []models.Player{
		{PlayerName: models.StringPtr("a")},
		{PlayerName: models.StringPtr("b")},
		{PlayerName: models.StringPtr("c")},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	all, err := store.ListAllPlayers(ctx)
	require.NoError(t, err)
	ids := make([]int64, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}

func TestConcurrentInsertsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewScheduleStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.CreateSchedule(ctx, models.Schedule{})
		}()
	}
	wg.Wait()

	all, err := store.ListAllSchedules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, int64(50), all[len(all)-1].ID)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStadiumStore().ListAllStadiums(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
