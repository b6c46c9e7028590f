package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var (
		c                                     domain.Character
		equipment, inventory, completedByKind []byte
	)
	err := row.Scan(
		&c.ID, &c.Name, &c.Level, &c.Experience,
		&c.Stats.Strength, &c.Stats.Agility, &c.Stats.Intelligence,
		&c.Stats.Charisma, &c.Stats.Endurance, &c.Stats.Luck,
		&c.Energy, &c.MaxEnergy, &c.Nerve, &c.MaxNerve, &c.Health, &c.MaxHealth,
		&c.Money, &c.StreetCred, &equipment, &inventory, &completedByKind,
		&c.Territories, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := decodeJSONB(equipment, &c.Equipment, "equipment"); err != nil {
		return nil, err
	}
	if err := decodeJSONB(inventory, &c.Inventory, "inventory"); err != nil {
		return nil, err
	}
	if err := decodeJSONB(completedByKind, &c.CompletedMissions, "completed_missions"); err != nil {
		return nil, err
	}
	return &c, nil
}

func getCharacter(ctx context.Context, q querier, characterID uuid.UUID, forUpdate bool) (*domain.Character, error) {
	query := sqlGetCharacter
	if forUpdate {
		query = sqlGetCharacterForUpdate
	}
	c, err := scanCharacter(q.QueryRow(ctx, query, characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
		}
		return nil, wrapDB(ErrMsgFailedToGetCharacter, err)
	}
	return c, nil
}

func applyCharacterDelta(ctx context.Context, q querier, characterID uuid.UUID, delta domain.CharacterDelta) error {
	tag, err := q.Exec(ctx, sqlApplyCharacterDelta,
		characterID,
		delta.Energy, delta.Nerve, delta.Money, delta.Experience, delta.StreetCred,
		delta.Stats[domain.StatStrength],
		delta.Stats[domain.StatAgility],
		delta.Stats[domain.StatIntelligence],
		delta.Stats[domain.StatCharisma],
		delta.Stats[domain.StatEndurance],
		delta.Stats[domain.StatLuck],
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: energy or nerve would go negative", domain.ErrRequirementsNotMet)
		}
		return fmt.Errorf("failed to apply character delta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCharacterNotFound, characterID)
	}
	return nil
}

func setCharacterHealth(ctx context.Context, q querier, characterID uuid.UUID, health int) error {
	if _, err := q.Exec(ctx, sqlSetCharacterHealth, characterID, health); err != nil {
		return fmt.Errorf("failed to set health: %w", err)
	}
	return nil
}

func addInventoryItems(ctx context.Context, q querier, characterID uuid.UUID, itemIDs []string) error {
	items := make([]domain.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		items = append(items, domain.Item{ID: id, Name: id})
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}
	if _, err := q.Exec(ctx, sqlAddInventoryItems, characterID, data); err != nil {
		return fmt.Errorf("failed to add inventory items: %w", err)
	}
	return nil
}

func incrementCompletedMissions(ctx context.Context, q querier, characterID uuid.UUID, category string) error {
	if _, err := q.Exec(ctx, sqlIncrementCompletedMissions, characterID, category); err != nil {
		return fmt.Errorf("failed to increment completed missions: %w", err)
	}
	return nil
}

func getCrewMembers(ctx context.Context, q querier, characterID uuid.UUID, crewIDs []uuid.UUID) ([]domain.CrewMember, error) {
	if len(crewIDs) == 0 {
		return nil, nil
	}
	rows, err := q.Query(ctx, sqlGetCrewMembers, characterID, crewIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query crew members: %w", err)
	}
	defer rows.Close()

	var crew []domain.CrewMember
	for rows.Next() {
		var m domain.CrewMember
		if err := rows.Scan(&m.ID, &m.CharacterID, &m.Name, &m.Role, &m.Specialization, &m.Level, &m.Experience, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan crew member: %w", err)
		}
		crew = append(crew, m)
	}
	return crew, rows.Err()
}

func addCrewExperience(ctx context.Context, q querier, crewIDs []uuid.UUID, amount int) error {
	if len(crewIDs) == 0 || amount == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, sqlAddCrewExperience, crewIDs, amount); err != nil {
		return fmt.Errorf("failed to add crew experience: %w", err)
	}
	return nil
}

func addTerritoryInfluence(ctx context.Context, q querier, territoryID string, amount int) error {
	if _, err := q.Exec(ctx, sqlAddTerritoryInfluence, territoryID, amount); err != nil {
		return fmt.Errorf("failed to add territory influence: %w", err)
	}
	return nil
}

func grantTerritoryControl(ctx context.Context, q querier, characterID uuid.UUID, territoryID string, amount int) error {
	if _, err := q.Exec(ctx, sqlEnsureTerritory, territoryID); err != nil {
		return fmt.Errorf("failed to ensure territory: %w", err)
	}
	if _, err := q.Exec(ctx, sqlGrantTerritoryControl, characterID, territoryID, amount); err != nil {
		return fmt.Errorf("failed to grant territory control: %w", err)
	}
	return nil
}
