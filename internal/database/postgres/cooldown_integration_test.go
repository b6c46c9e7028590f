package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MobMissions_Go/internal/cooldown"
)

func TestCooldownService_Lifecycle_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	c, _ := seedCharacter(t)
	characterID := c.ID.String()
	action := "mission:collect-debt"
	svc := cooldown.NewPostgresService(testPool, cooldown.Config{})

	onCooldown, _, err := svc.CheckCooldown(ctx, characterID, action, time.Minute)
	require.NoError(t, err)
	assert.False(t, onCooldown)

	require.NoError(t, svc.RecordUse(ctx, characterID, action, time.Now()))

	onCooldown, remaining, err := svc.CheckCooldown(ctx, characterID, action, time.Minute)
	require.NoError(t, err)
	assert.True(t, onCooldown)
	assert.Greater(t, remaining, 50*time.Second)

	require.NoError(t, svc.ResetCooldown(ctx, characterID, action))
	lastUsed, err := svc.GetLastUsed(ctx, characterID, action)
	require.NoError(t, err)
	assert.Nil(t, lastUsed)

	dev := cooldown.NewPostgresService(testPool, cooldown.Config{DevMode: true})
	require.NoError(t, dev.RecordUse(ctx, characterID, action, time.Now()))
	onCooldown, _, err = dev.CheckCooldown(ctx, characterID, action, time.Hour)
	require.NoError(t, err)
	assert.False(t, onCooldown, "dev mode bypasses cooldowns")
}

func TestCooldownService_ConcurrentRecordKeepsLatest_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	c, _ := seedCharacter(t)
	characterID := c.ID.String()
	action := "mission:warehouse-heist"
	svc := cooldown.NewPostgresService(testPool, cooldown.Config{})

	base := time.Now().UTC().Truncate(time.Second)
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			assert.NoError(t, svc.RecordUse(ctx, characterID, action, base.Add(time.Duration(offset)*time.Second)))
		}(i)
	}
	wg.Wait()

	lastUsed, err := svc.GetLastUsed(ctx, characterID, action)
	require.NoError(t, err)
	require.NotNil(t, lastUsed)
	assert.True(t, lastUsed.Equal(base.Add(9*time.Second)), "got %s", lastUsed)
}
