package mission

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// CollectRewards applies the pending rewards of a completed mission exactly once
func (s *service) CollectRewards(ctx context.Context, characterID, missionID uuid.UUID) (*domain.RewardResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginMissionTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	m, err := tx.GetMissionForUpdate(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m.CharacterID != characterID {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, missionID)
	}
	if err := checkCollectable(m); err != nil {
		return nil, err
	}

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}

	result := *m.PendingRewards
	bonusApplied := false
	if bonus, ok := s.catalog.Bonus(categoryOf(m)); ok {
		result, bonusApplied = ApplyCategoryBonus(result, bonus, character.CompletedMissions[bonus.Category])
	}

	if err := applyRewards(ctx, tx, m, &result); err != nil {
		return nil, err
	}
	if err := tx.IncrementCompletedMissions(ctx, characterID, categoryOf(m)); err != nil {
		return nil, fmt.Errorf("failed to record completed mission: %w", err)
	}

	now := time.Now()
	m.Collected = true
	m.UpdatedAt = now
	if m.Repeatable {
		if err := Transition(m, domain.MissionStatusAvailable, now); err != nil {
			return nil, err
		}
		log.Info(LogMsgMissionReset, "missionID", missionID)
	}

	rows, err := tx.UpdateMissionIfStatus(ctx, m, domain.MissionStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionStateChanged, missionID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.cache.Invalidate(characterID)

	log.Info(LogMsgRewardsCollected,
		"missionID", missionID,
		"money", result.Rewards.Money,
		"experience", result.Rewards.Experience,
		"categoryBonus", bonusApplied)

	s.publish(ctx, event.NewMissionRewardsCollectedEvent(m, &result, bonusApplied))

	return &result, nil
}

// checkCollectable reports why a mission has nothing to collect. A repeatable
// mission back on the board with a recorded attempt has already been settled.
func checkCollectable(m *domain.Mission) error {
	switch {
	case m.Status == domain.MissionStatusInProgress:
		return fmt.Errorf("%w: %s", domain.ErrMissionNotReady, m.ID)
	case m.Collected:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCollected, m.ID)
	case m.Status == domain.MissionStatusAvailable && m.LastAttempt != nil:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyCollected, m.ID)
	case m.Status != domain.MissionStatusCompleted:
		return fmt.Errorf("%w: no rewards to collect from a mission that is %s", domain.ErrInvalidTransition, m.Status)
	case m.PendingRewards == nil:
		return fmt.Errorf("%w: completed mission %s has no pending rewards", domain.ErrInvalidMission, m.ID)
	}
	return nil
}

// ApplyCategoryBonus multiplies money and experience once the character has completed
// enough missions in the bonus category. Zero multipliers read as 1.
func ApplyCategoryBonus(result domain.RewardResult, bonus domain.CategoryBonus, completed int) (domain.RewardResult, bool) {
	if completed < bonus.RequiredMissions {
		return result, false
	}
	out := result
	out.Rewards = result.Rewards.Clone()
	out.Rewards.Money = int(math.Floor(float64(out.Rewards.Money) * orDefault(bonus.MoneyMultiplier, 1)))
	out.Rewards.Experience = int(math.Floor(float64(out.Rewards.Experience) * orDefault(bonus.XPMultiplier, 1)))
	return out, true
}

// applyRewards writes a reward result to the character, crew and territory inside tx
func applyRewards(ctx context.Context, tx repository.MissionTx, m *domain.Mission, result *domain.RewardResult) error {
	r := result.Rewards

	if err := tx.ApplyCharacterDelta(ctx, m.CharacterID, domain.CharacterDelta{
		Money:      r.Money,
		Experience: r.Experience,
		StreetCred: r.StreetCred + r.Reputation,
		Stats:      r.StatBonuses,
	}); err != nil {
		return fmt.Errorf("failed to apply rewards: %w", err)
	}

	if len(r.Items) > 0 {
		if err := tx.AddInventoryItems(ctx, m.CharacterID, r.Items); err != nil {
			return fmt.Errorf("failed to add reward items: %w", err)
		}
	}

	if r.TerritoryControl != nil && r.TerritoryControl.TerritoryID != "" {
		if err := tx.GrantTerritoryControl(ctx, m.CharacterID, r.TerritoryControl.TerritoryID, r.TerritoryControl.Amount); err != nil {
			return fmt.Errorf("failed to grant territory control: %w", err)
		}
	}

	if result.TerritoryInfluence != 0 && m.TerritoryID != "" {
		if err := tx.AddTerritoryInfluence(ctx, m.TerritoryID, result.TerritoryInfluence); err != nil {
			return fmt.Errorf("failed to add territory influence: %w", err)
		}
	}

	if result.CrewExperienceShare > 0 && m.LastAttempt != nil && len(m.LastAttempt.CrewUsed) > 0 {
		if err := tx.AddCrewExperience(ctx, m.LastAttempt.CrewUsed, result.CrewExperienceShare); err != nil {
			return fmt.Errorf("failed to add crew experience: %w", err)
		}
	}

	return nil
}
