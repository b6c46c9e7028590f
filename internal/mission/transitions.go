package mission

import (
	"fmt"
	"time"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// CanTransition reports whether a mission may move from one status to another.
// Resolved missions only return to Available when they are repeatable, and a
// completed mission must have its rewards collected first.
func CanTransition(m *domain.Mission, to domain.MissionStatus) bool {
	switch m.Status {
	case domain.MissionStatusAvailable:
		return to == domain.MissionStatusInProgress
	case domain.MissionStatusInProgress:
		return to == domain.MissionStatusCompleted || to == domain.MissionStatusFailed
	case domain.MissionStatusCompleted:
		return to == domain.MissionStatusAvailable && m.Repeatable && m.Collected
	case domain.MissionStatusFailed:
		return to == domain.MissionStatusAvailable && m.Repeatable
	default:
		return false
	}
}

// Transition validates and applies a status change in memory
func Transition(m *domain.Mission, to domain.MissionStatus, now time.Time) error {
	if !CanTransition(m, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, m.Status, to)
	}
	m.Status = to
	m.UpdatedAt = now
	if to == domain.MissionStatusAvailable {
		m.Progress = nil
		m.PendingRewards = nil
		m.Collected = false
	}
	return nil
}

// OutcomeStatus maps an attempt result to its terminal status
func OutcomeStatus(success bool) domain.MissionStatus {
	if success {
		return domain.MissionStatusCompleted
	}
	return domain.MissionStatusFailed
}
