package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/logger"
)

// ProvisionMissions copies the catalog onto the character's mission board.
// Missions the character already has are left untouched.
func (s *service) ProvisionMissions(ctx context.Context, characterID uuid.UUID) (int64, error) {
	if _, err := s.repo.GetCharacter(ctx, characterID); err != nil {
		return 0, err
	}

	now := time.Now()
	missions := make([]domain.Mission, 0, len(s.catalog.Missions))
	for i := range s.catalog.Missions {
		missions = append(missions, instantiate(&s.catalog.Missions[i], characterID, now))
	}

	inserted, err := s.repo.CreateMissions(ctx, missions)
	if err != nil {
		return 0, fmt.Errorf("failed to create missions: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgMissionsProvisioned,
		"characterID", characterID,
		"inserted", inserted,
		"catalogVersion", s.catalog.Version)

	return inserted, nil
}

// instantiate builds a character's copy of a catalog template
func instantiate(template *domain.Mission, characterID uuid.UUID, now time.Time) domain.Mission {
	m := *template
	m.ID = uuid.New()
	m.CharacterID = characterID
	m.Rewards = template.Rewards.Clone()
	m.Status = domain.MissionStatusAvailable
	m.Progress = nil
	m.LastAttempt = nil
	m.PendingRewards = nil
	m.Collected = false
	m.CreatedAt = now
	m.UpdatedAt = now
	return m
}
