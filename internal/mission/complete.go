package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// CompleteMission resolves an in-progress mission whose deadline has passed.
// Successful attempts wait for CollectRewards; failed attempts settle immediately.
func (s *service) CompleteMission(ctx context.Context, missionID uuid.UUID) (*domain.MissionOutcome, error) {
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
	if m.Status != domain.MissionStatusInProgress {
		log.Info(LogMsgMissionAlreadyResolved, "missionID", missionID, "status", m.Status)
		return nil, fmt.Errorf("%w: cannot complete a mission that is %s", domain.ErrInvalidTransition, m.Status)
	}

	now := time.Now()
	if m.Progress == nil || now.Before(m.Progress.Deadline) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotReady, missionID)
	}

	character, err := tx.GetCharacterForUpdate(ctx, m.CharacterID)
	if err != nil {
		return nil, err
	}
	// Dismissed crew no longer contribute
	crew, err := tx.GetCrewMembers(ctx, m.CharacterID, m.Progress.CrewIDs())
	if err != nil {
		return nil, fmt.Errorf("failed to get crew members: %w", err)
	}

	outcome := NewEngine(s.newRoller()).ResolveOutcome(m, character, crew)

	if err := Transition(m, OutcomeStatus(outcome.Success), now); err != nil {
		return nil, err
	}
	m.Progress.Current = m.Progress.Total
	m.LastAttempt = newAttempt(outcome, character, crew, now)
	result := outcome.Result
	m.PendingRewards = &result

	if result.HealthPenalty > 0 {
		health := ApplyHealthPenalty(character.Health, result.HealthPenalty)
		if err := tx.SetCharacterHealth(ctx, character.ID, health); err != nil {
			return nil, fmt.Errorf("failed to apply health penalty: %w", err)
		}
	}

	if !outcome.Success {
		if err := applyRewards(ctx, tx, m, &result); err != nil {
			return nil, err
		}
		m.Collected = true
		if m.Repeatable {
			if err := Transition(m, domain.MissionStatusAvailable, now); err != nil {
				return nil, err
			}
			log.Info(LogMsgMissionReset, "missionID", missionID)
		}
	}

	rows, err := tx.UpdateMissionIfStatus(ctx, m, domain.MissionStatusInProgress)
	if err != nil {
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionStateChanged, missionID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.cache.Invalidate(m.CharacterID)

	log.Info(LogMsgMissionResolved,
		"missionID", missionID,
		"key", m.Key,
		"success", outcome.Success,
		"chance", outcome.SuccessChance,
		"roll", outcome.Roll)

	if m.Repeatable && s.cooldownSvc != nil {
		if err := s.cooldownSvc.RecordUse(ctx, m.CharacterID.String(), cooldownAction(m), now); err != nil {
			log.Error(LogMsgFailedToRecordCooldown, "missionID", missionID, "error", err)
		}
	}

	s.publish(ctx, event.NewMissionResolvedEvent(m, outcome))
	if outcome.SpecialEvent != nil {
		s.publish(ctx, event.NewMissionSpecialEventEvent(m, outcome.SpecialEvent))
	}

	return outcome, nil
}

func newAttempt(outcome *domain.MissionOutcome, c *domain.Character, crew []domain.CrewMember, now time.Time) *domain.MissionAttempt {
	crewUsed := make([]uuid.UUID, 0, len(crew))
	for _, member := range crew {
		crewUsed = append(crewUsed, member.ID)
	}
	attempt := &domain.MissionAttempt{
		Success:       outcome.Success,
		Timestamp:     now,
		StatsUsed:     c.Stats.AsMap(),
		CrewUsed:      crewUsed,
		SuccessChance: outcome.SuccessChance,
		Roll:          outcome.Roll,
	}
	if outcome.SpecialEvent != nil {
		attempt.SpecialEvent = outcome.SpecialEvent.Name
	}
	return attempt
}
