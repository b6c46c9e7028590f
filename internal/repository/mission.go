package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// Mission defines the interface for mission data access
type Mission interface {
	GetCharacter(ctx context.Context, characterID uuid.UUID) (*domain.Character, error)
	GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error)

	GetMission(ctx context.Context, characterID, missionID uuid.UUID) (*domain.Mission, error)
	ListMissions(ctx context.Context, characterID uuid.UUID, filter domain.MissionFilter) ([]domain.Mission, error)
	GetInProgressMissions(ctx context.Context) ([]domain.Mission, error)

	// CreateMissions inserts missions, skipping keys the character already has.
	// Returns the number of rows inserted.
	CreateMissions(ctx context.Context, missions []domain.Mission) (int64, error)

	// Transaction support
	BeginMissionTx(ctx context.Context) (MissionTx, error)
}

// MissionTx extends Tx with mission-specific transactional operations.
// Reads ending in ForUpdate take a row lock held until commit.
type MissionTx interface {
	Tx // Commit, Rollback

	GetCharacterForUpdate(ctx context.Context, characterID uuid.UUID) (*domain.Character, error)
	GetMissionForUpdate(ctx context.Context, missionID uuid.UUID) (*domain.Mission, error)
	GetCrewMembers(ctx context.Context, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error)

	// UpdateMissionIfStatus writes the mutable mission state only when the stored
	// status still equals expected. Returns rows affected.
	UpdateMissionIfStatus(ctx context.Context, m *domain.Mission, expected domain.MissionStatus) (int64, error)

	ApplyCharacterDelta(ctx context.Context, characterID uuid.UUID, delta domain.CharacterDelta) error
	SetCharacterHealth(ctx context.Context, characterID uuid.UUID, health int) error
	AddInventoryItems(ctx context.Context, characterID uuid.UUID, itemIDs []string) error
	IncrementCompletedMissions(ctx context.Context, characterID uuid.UUID, category string) error

	AddCrewExperience(ctx context.Context, crewIDs []uuid.UUID, amount int) error
	AddTerritoryInfluence(ctx context.Context, territoryID string, amount int) error
	GrantTerritoryControl(ctx context.Context, characterID uuid.UUID, territoryID string, amount int) error
}
