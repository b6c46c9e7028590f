package mission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// fakeStore is the in-memory state behind FakeRepository
type fakeStore struct {
	Characters  map[uuid.UUID]*domain.Character
	Crew        map[uuid.UUID]*domain.CrewMember
	Missions    map[uuid.UUID]*domain.Mission
	Territories map[string]*domain.Territory
}

func (s *fakeStore) clone() *fakeStore {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	var out fakeStore
	if err := json.Unmarshal(data, &out); err != nil {
		panic(err)
	}
	return &out
}

// FakeRepository is a stateful fake of repository.Mission. Transactions work on a
// copy of the store and swap it in on commit.
type FakeRepository struct {
	mu    sync.Mutex
	store *fakeStore
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{store: &fakeStore{
		Characters:  make(map[uuid.UUID]*domain.Character),
		Crew:        make(map[uuid.UUID]*domain.CrewMember),
		Missions:    make(map[uuid.UUID]*domain.Mission),
		Territories: make(map[string]*domain.Territory),
	}}
}

func (f *FakeRepository) AddCharacter(c *domain.Character) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Characters[c.ID] = c
}

func (f *FakeRepository) AddCrew(members ...domain.CrewMember) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range members {
		member := members[i]
		f.store.Crew[member.ID] = &member
	}
}

func (f *FakeRepository) AddMission(m *domain.Mission) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.store.Missions[m.ID] = m
}

// Snapshot returns a copy of the committed state for assertions
func (f *FakeRepository) Snapshot() *fakeStore {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.clone()
}

func (f *FakeRepository) GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	return f.Snapshot().character(characterID)
}

func (f *FakeRepository) GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	return f.Snapshot().crewMembers(characterID, crewIDs), nil
}

func (f *FakeRepository) GetMission(ctx context.Context, characterID, missionID uuid.UUID) (*domain.Mission, error) {
	m, err := f.Snapshot().mission(missionID)
	if err != nil {
		return nil, err
	}
	if m.CharacterID != characterID {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, missionID)
	}
	return m, nil
}

func (f *FakeRepository) ListMissions(ctx context.Context, characterID uuid.UUID, filter domain.MissionFilter) ([]domain.Mission, error) {
	var out []domain.Mission
	for _, m := range f.Snapshot().Missions {
		if m.CharacterID != characterID {
			continue
		}
		if filter.Status != "" && m.Status != filter.Status {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, *m)
	}
	slices.SortFunc(out, func(a, b domain.Mission) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func (f *FakeRepository) GetInProgressMissions(ctx context.Context) ([]domain.Mission, error) {
	var out []domain.Mission
	for _, m := range f.Snapshot().Missions {
		if m.Status == domain.MissionStatusInProgress {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *FakeRepository) CreateMissions(ctx context.Context, missions []domain.Mission) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var inserted int64
	for i := range missions {
		m := missions[i]
		exists := false
		for _, existing := range f.store.Missions {
			if existing.CharacterID == m.CharacterID && existing.Key == m.Key {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		f.store.Missions[m.ID] = &m
		inserted++
	}
	return inserted, nil
}

func (f *FakeRepository) BeginMissionTx(ctx context.Context) (repository.MissionTx, error) {
	return &fakeTx{repo: f, work: f.Snapshot()}, nil
}

type fakeTx struct {
	repo *FakeRepository
	work *fakeStore
	done bool
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	tx.repo.mu.Lock()
	tx.repo.store = tx.work
	tx.repo.mu.Unlock()
	tx.done = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if tx.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	tx.done = true
	return nil
}

func (tx *fakeTx) GetCharacterForUpdate(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	return tx.work.clone().character(characterID)
}

func (tx *fakeTx) GetMissionForUpdate(ctx context.Context, missionID uuid.UUID) (*domain.Mission, error) {
	return tx.work.clone().mission(missionID)
}

func (tx *fakeTx) GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	return tx.work.clone().crewMembers(characterID, crewIDs), nil
}

func (tx *fakeTx) UpdateMissionIfStatus(ctx context.Context, m *domain.Mission, expected domain.MissionStatus) (int64, error) {
	stored, ok := tx.work.Missions[m.ID]
	if !ok || stored.Status != expected {
		return 0, nil
	}
	updated := *m
	tx.work.Missions[m.ID] = &updated
	return 1, nil
}

func (tx *fakeTx) ApplyCharacterDelta(ctx context.Context, characterID uuid.UUID, delta domain.CharacterDelta) error {
	c, ok := tx.work.Characters[characterID]
	if !ok {
		return domain.ErrCharacterNotFound
	}
	c.Energy += delta.Energy
	c.Nerve += delta.Nerve
	c.Money = max(0, c.Money+delta.Money)
	c.Experience += delta.Experience
	c.StreetCred = max(0, c.StreetCred+delta.StreetCred)
	for stat, v := range delta.Stats {
		c.Stats = c.Stats.Add(stat, v)
	}
	return nil
}

func (tx *fakeTx) SetCharacterHealth(ctx context.Context, characterID uuid.UUID, health int) error {
	c, ok := tx.work.Characters[characterID]
	if !ok {
		return domain.ErrCharacterNotFound
	}
	c.Health = health
	return nil
}

func (tx *fakeTx) AddInventoryItems(ctx context.Context, characterID uuid.UUID, itemIDs []string) error {
	c := tx.work.Characters[characterID]
	for _, id := range itemIDs {
		c.Inventory = append(c.Inventory, domain.Item{ID: id, Name: id})
	}
	return nil
}

func (tx *fakeTx) IncrementCompletedMissions(ctx context.Context, characterID uuid.UUID, category string) error {
	c := tx.work.Characters[characterID]
	if c.CompletedMissions == nil {
		c.CompletedMissions = make(map[string]int)
	}
	c.CompletedMissions[category]++
	return nil
}

func (tx *fakeTx) AddCrewExperience(ctx context.Context, crewIDs []uuid.UUID, amount int) error {
	for _, id := range crewIDs {
		if member, ok := tx.work.Crew[id]; ok {
			member.Experience += amount
		}
	}
	return nil
}

func (tx *fakeTx) AddTerritoryInfluence(ctx context.Context, territoryID string, amount int) error {
	territory, ok := tx.work.Territories[territoryID]
	if !ok {
		territory = &domain.Territory{ID: territoryID, Name: territoryID}
		tx.work.Territories[territoryID] = territory
	}
	territory.Influence += amount
	return nil
}

func (tx *fakeTx) GrantTerritoryControl(ctx context.Context, characterID uuid.UUID, territoryID string, amount int) error {
	c := tx.work.Characters[characterID]
	if !c.ControlsTerritory(territoryID) {
		c.Territories = append(c.Territories, territoryID)
	}
	return nil
}

func (s *fakeStore) character(id uuid.UUID) (*domain.Character, error) {
	c, ok := s.Characters[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, id)
	}
	return c, nil
}

func (s *fakeStore) mission(id uuid.UUID) (*domain.Mission, error) {
	m, ok := s.Missions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, id)
	}
	return m, nil
}

func (s *fakeStore) crewMembers(characterID uuid.UUID, ids []uuid.UUID) []domain.CrewMember {
	var out []domain.CrewMember
	for _, id := range ids {
		if member, ok := s.Crew[id]; ok && member.CharacterID == characterID {
			out = append(out, *member)
		}
	}
	return out
}
