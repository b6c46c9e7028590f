package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/cooldown"
	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/event"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/repository"
)

// StartMission checks requirements, deducts costs and puts the mission in progress
func (s *service) StartMission(ctx context.Context, characterID, missionID uuid.UUID, crewIDs []uuid.UUID) (*domain.Mission, error) {
	log := logger.FromContext(ctx)

	// Cheap unlocked reads first
	current, err := s.repo.GetMission(ctx, characterID, missionID)
	if err != nil {
		return nil, err
	}
	if err := s.checkRepeatCooldown(ctx, current); err != nil {
		return nil, err
	}

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
	if !CanTransition(m, domain.MissionStatusInProgress) {
		return nil, fmt.Errorf("%w: cannot start a mission that is %s", domain.ErrInvalidTransition, m.Status)
	}

	character, err := tx.GetCharacterForUpdate(ctx, characterID)
	if err != nil {
		return nil, err
	}
	crew, err := loadCrew(ctx, tx, characterID, crewIDs)
	if err != nil {
		return nil, err
	}

	if rejection := CheckRequirements(m, character, crew); rejection != nil {
		log.Info(LogMsgRequirementsRejected, "missionID", missionID, "reason", rejection.Reason, "detail", rejection.Detail)
		return nil, &RequirementError{Rejection: *rejection}
	}

	if err := tx.ApplyCharacterDelta(ctx, characterID, domain.CharacterDelta{
		Energy: -m.EnergyCost,
		Nerve:  -m.NerveCost,
	}); err != nil {
		return nil, fmt.Errorf("failed to deduct mission costs: %w", err)
	}

	now := time.Now()
	if err := Transition(m, domain.MissionStatusInProgress, now); err != nil {
		return nil, err
	}
	m.Progress = newProgress(m, crew, now)

	rows, err := tx.UpdateMissionIfStatus(ctx, m, domain.MissionStatusAvailable)
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

	log.Info(LogMsgMissionStarted, "missionID", missionID, "key", m.Key, "characterID", characterID, "crew", len(crew), "deadline", m.Progress.Deadline)

	s.publish(ctx, event.NewMissionStartedEvent(m))

	return m, nil
}

// checkRepeatCooldown rejects a repeatable mission whose last attempt is too recent
func (s *service) checkRepeatCooldown(ctx context.Context, m *domain.Mission) error {
	if s.cooldownSvc == nil || !m.Repeatable || m.RepeatInterval == 0 {
		return nil
	}
	onCooldown, remaining, err := s.cooldownSvc.CheckCooldown(ctx, m.CharacterID.String(), cooldownAction(m), m.RepeatCooldown())
	if err != nil {
		return fmt.Errorf("failed to check cooldown: %w", err)
	}
	if onCooldown {
		return cooldown.ErrOnCooldown{Action: m.Title, Remaining: remaining.Truncate(time.Second)}
	}
	return nil
}

func newProgress(m *domain.Mission, crew []domain.CrewMember, now time.Time) *domain.MissionProgress {
	assignments := make([]domain.CrewAssignment, 0, len(crew))
	for _, member := range crew {
		assignments = append(assignments, domain.CrewAssignment{
			CrewMemberID: member.ID,
			Name:         member.Name,
			Role:         member.Role,
			Contribution: Contribution(member, m),
		})
	}
	return &domain.MissionProgress{
		Current:   0,
		Total:     m.Duration,
		StartedAt: now,
		Deadline:  now.Add(time.Duration(m.Duration) * time.Second),
		Crew:      assignments,
	}
}
