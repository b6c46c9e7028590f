package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MobMissions_Go/internal/cooldown"
	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/mission"
	"github.com/osse101/MobMissions_Go/internal/random"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

func TestMissionRepository_CreateAndQuery_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, crew := seedCharacter(t)
	m := testMission(c.ID)

	inserted, err := repo.CreateMissions(ctx, []domain.Mission{m})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	dup := testMission(c.ID)
	inserted, err = repo.CreateMissions(ctx, []domain.Mission{dup})
	require.NoError(t, err)
	assert.Zero(t, inserted, "mission keys are unique per character")

	got, err := repo.GetMission(ctx, c.ID, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.Key, got.Key)
	assert.Equal(t, domain.MissionStatusAvailable, got.Status)
	assert.Equal(t, m.Rewards, got.Rewards)

	_, err = repo.GetMission(ctx, uuid.New(), m.ID)
	assert.True(t, errors.Is(err, domain.ErrMissionNotFound))

	list, err := repo.ListMissions(ctx, c.ID, domain.MissionFilter{Type: domain.MissionTypeCombat})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = repo.ListMissions(ctx, c.ID, domain.MissionFilter{Status: domain.MissionStatusInProgress})
	require.NoError(t, err)
	assert.Empty(t, list)

	character, err := repo.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, character.Stats.Strength)
	assert.Equal(t, 4, character.EquipmentBonus(domain.StatStrength))

	members, err := repo.GetCrewMembers(ctx, c.ID, []uuid.UUID{crew.ID, uuid.New()})
	require.NoError(t, err)
	require.Len(t, members, 1, "unknown ids are simply absent")
	assert.Equal(t, crew.Name, members[0].Name)

	_, err = repo.GetCharacter(ctx, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrCharacterNotFound))
}

func TestMissionRepository_CompareAndSet_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, _ := seedCharacter(t)
	m := testMission(c.ID)
	_, err := repo.CreateMissions(ctx, []domain.Mission{m})
	require.NoError(t, err)

	tx, err := repo.BeginMissionTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	locked, err := tx.GetMissionForUpdate(ctx, m.ID)
	require.NoError(t, err)
	locked.Status = domain.MissionStatusInProgress
	locked.Progress = &domain.MissionProgress{StartedAt: time.Now(), Deadline: time.Now().Add(time.Hour)}

	rows, err := tx.UpdateMissionIfStatus(ctx, locked, domain.MissionStatusCompleted)
	require.NoError(t, err)
	assert.Zero(t, rows, "expected status does not match")

	rows, err = tx.UpdateMissionIfStatus(ctx, locked, domain.MissionStatusAvailable)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	require.NoError(t, tx.Commit(ctx))

	inProgress, err := repo.GetInProgressMissions(ctx)
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(inProgress))
	for _, ip := range inProgress {
		ids = append(ids, ip.ID)
	}
	assert.Contains(t, ids, m.ID)
}

func TestMissionRepository_CharacterWrites_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, crew := seedCharacter(t)

	tx, err := repo.BeginMissionTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.ApplyCharacterDelta(ctx, c.ID, domain.CharacterDelta{
		Money:      -500,
		StreetCred: -30,
		Experience: 50,
		Stats:      map[string]int{domain.StatLuck: 2},
	}))
	require.NoError(t, tx.SetCharacterHealth(ctx, c.ID, 1))
	require.NoError(t, tx.AddInventoryItems(ctx, c.ID, []string{"stolen-ledger"}))
	require.NoError(t, tx.IncrementCompletedMissions(ctx, c.ID, "enforcement"))
	require.NoError(t, tx.IncrementCompletedMissions(ctx, c.ID, "enforcement"))
	require.NoError(t, tx.AddCrewExperience(ctx, []uuid.UUID{crew.ID}, 15))
	require.NoError(t, tx.AddTerritoryInfluence(ctx, "harbor", 7))
	require.NoError(t, tx.GrantTerritoryControl(ctx, c.ID, "harbor", 10))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Money, "money floors at zero")
	assert.Equal(t, 70, got.StreetCred)
	assert.Equal(t, 50, got.Experience)
	assert.Equal(t, 4, got.Stats.Luck)
	assert.Equal(t, 1, got.Health)
	assert.True(t, got.HasItem("stolen-ledger"))
	assert.Equal(t, 2, got.CompletedMissions["enforcement"])
	assert.True(t, got.ControlsTerritory("harbor"))

	members, err := repo.GetCrewMembers(ctx, c.ID, []uuid.UUID{crew.ID})
	require.NoError(t, err)
	assert.Equal(t, 15, members[0].Experience)

	territory, err := getTerritory(ctx, testPool, "harbor")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, territory.Influence, 7)
}

func TestMissionRepository_NegativeEnergyRejected_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)
	c, _ := seedCharacter(t)

	tx, err := repo.BeginMissionTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	err = tx.ApplyCharacterDelta(ctx, c.ID, domain.CharacterDelta{Energy: -1000})
	assert.True(t, errors.Is(err, domain.ErrRequirementsNotMet))
}

func TestMissionRepository_CorruptMissionRejected_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, _ := seedCharacter(t)
	m := testMission(c.ID)
	_, err := repo.CreateMissions(ctx, []domain.Mission{m})
	require.NoError(t, err)

	_, err = testPool.Exec(ctx, `UPDATE character_missions SET data = jsonb_set(data, '{type}', '"arson"') WHERE mission_id = $1`, m.ID)
	require.NoError(t, err)

	_, err = repo.GetMission(ctx, c.ID, m.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidMission))
}

func TestMissionLifecycle_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, crew := seedCharacter(t)
	template := testMission(uuid.Nil)
	catalog := &mission.Catalog{Version: "test", Missions: []domain.Mission{template}}
	svc := mission.NewService(repo, nil, cooldown.NewPostgresService(testPool, cooldown.Config{}), catalog,
		func() random.Roller { return random.NewSequence(1) })

	inserted, err := svc.ProvisionMissions(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), inserted)

	views, err := svc.ListMissions(ctx, c.ID, domain.MissionFilter{}, []uuid.UUID{crew.ID})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, 64.0, views[0].SuccessChance, "30 base + 10 strength + 22 crew + 2 equipment")
	missionID := views[0].Mission.ID

	_, err = svc.StartMission(ctx, c.ID, missionID, []uuid.UUID{crew.ID})
	require.NoError(t, err)

	outcome, err := svc.CompleteMission(ctx, missionID)
	require.NoError(t, err)
	require.True(t, outcome.Success)

	result, err := svc.CollectRewards(ctx, c.ID, missionID)
	require.NoError(t, err)
	assert.Equal(t, 1000, result.Rewards.Money)

	character, err := repo.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1100, character.Money)
	assert.Equal(t, 90, character.Energy)
	assert.Equal(t, 15, character.Nerve)
	assert.Equal(t, 1, character.CompletedMissions["enforcement"])
	assert.True(t, character.HasItem("stolen-ledger"))
	assert.True(t, character.ControlsTerritory("downtown"))

	members, err := repo.GetCrewMembers(ctx, c.ID, []uuid.UUID{crew.ID})
	require.NoError(t, err)
	assert.Equal(t, 30, members[0].Experience)

	_, err = svc.CollectRewards(ctx, c.ID, missionID)
	assert.True(t, errors.Is(err, domain.ErrAlreadyCollected))
}

func TestCollectRewards_ConcurrentCallsGrantOnce_Integration(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := NewMissionRepository(testPool)

	c, crew := seedCharacter(t)
	catalog := &mission.Catalog{Version: "test", Missions: []domain.Mission{testMission(uuid.Nil)}}
	svc := mission.NewService(repo, nil, nil, catalog, func() random.Roller { return random.NewSequence(1) })

	_, err := svc.ProvisionMissions(ctx, c.ID)
	require.NoError(t, err)
	views, err := svc.ListMissions(ctx, c.ID, domain.MissionFilter{}, nil)
	require.NoError(t, err)
	missionID := views[0].Mission.ID

	_, err = svc.StartMission(ctx, c.ID, missionID, []uuid.UUID{crew.ID})
	require.NoError(t, err)
	_, err = svc.CompleteMission(ctx, missionID)
	require.NoError(t, err)

	const callers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.CollectRewards(ctx, c.ID, missionID)
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.True(t, errors.Is(err, domain.ErrAlreadyCollected), "unexpected error: %v", err)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	character, err := repo.GetCharacter(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 1100, character.Money)
}
