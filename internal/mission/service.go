package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/random"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// Service defines the interface for mission operations
type Service interface {
	ProvisionMissions(ctx context.Context, characterID uuid.UUID) (int64, error)
	ListMissions(ctx context.Context, characterID uuid.UUID, filter domain.MissionFilter, crewIDs []uuid.UUID) ([]domain.MissionView, error)
	GetMission(ctx context.Context, characterID, missionID uuid.UUID) (*domain.Mission, error)
	PreviewChance(ctx context.Context, characterID, missionID uuid.UUID, crewIDs []uuid.UUID) (*domain.ChancePreview, error)
	StartMission(ctx context.Context, characterID, missionID uuid.UUID, crewIDs []uuid.UUID) (*domain.Mission, error)
	CompleteMission(ctx context.Context, missionID uuid.UUID) (*domain.MissionOutcome, error)
	CollectRewards(ctx context.Context, characterID, missionID uuid.UUID) (*domain.RewardResult, error)
	GetInProgress(ctx context.Context) ([]domain.Mission, error)
	CacheStats() CacheStats
}

// CooldownService defines the interface for repeat cooldown operations
type CooldownService interface {
	CheckCooldown(ctx context.Context, characterID, action string, window time.Duration) (bool, time.Duration, error)
	RecordUse(ctx context.Context, characterID, action string, at time.Time) error
}

// RollerFactory builds a fresh roller for each resolution
type RollerFactory func() random.Roller

type service struct {
	repo        repository.Mission
	eventBus    event.Bus
	cooldownSvc CooldownService
	catalog     *Catalog
	cache       *characterCache
	newRoller   RollerFactory
}

// NewService creates a new mission service. A nil newRoller seeds a
// pseudo-random roller per resolution from crypto/rand.
func NewService(
	repo repository.Mission,
	eventBus event.Bus,
	cooldownSvc CooldownService,
	catalog *Catalog,
	newRoller RollerFactory,
) Service {
	if newRoller == nil {
		newRoller = seededRoller
	}
	return &service{
		repo:        repo,
		eventBus:    eventBus,
		cooldownSvc: cooldownSvc,
		catalog:     catalog,
		cache:       newCharacterCache(DefaultCharacterCacheSize, DefaultCharacterCacheTTL),
		newRoller:   newRoller,
	}
}

func seededRoller() random.Roller {
	seed, err := random.NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return random.NewPercentRoller(seed)
}

// loadCharacter reads a character through the snapshot cache
func (s *service) loadCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error) {
	if c, ok := s.cache.Get(characterID); ok {
		return c, nil
	}
	c, err := s.repo.GetCharacter(ctx, characterID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(c)
	return c, nil
}

// crewLoader is satisfied by both the repository and a mission transaction
type crewLoader interface {
	GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error)
}

// loadCrew fetches the requested crew members and fails if any of them is not
// employed by the character. Duplicate ids count once.
func loadCrew(ctx context.Context, repo crewLoader, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	ids := uniqueIDs(crewIDs)
	if len(ids) == 0 {
		return nil, nil
	}
	crew, err := repo.GetCrewMembers(ctx, characterID, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get crew members: %w", err)
	}
	if len(crew) != len(ids) {
		return nil, fmt.Errorf("%w: %d of %d crew members found", domain.ErrCrewNotFound, len(crew), len(ids))
	}
	return crew, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// publish sends an event and logs rather than fails on error; the state change
// it describes is already committed
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToPublishEvent, "type", evt.Type, "error", err)
	}
}

// CacheStats reports the character snapshot cache occupancy
func (s *service) CacheStats() CacheStats {
	return s.cache.Stats()
}

func cooldownAction(m *domain.Mission) string {
	return CooldownActionPrefix + m.Key
}

// categoryOf groups missions for category bonuses; uncategorized missions group by type
func categoryOf(m *domain.Mission) string {
	if m.Category != "" {
		return m.Category
	}
	return string(m.Type)
}
