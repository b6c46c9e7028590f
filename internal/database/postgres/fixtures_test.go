package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// insertCharacter stores a new character along with the territories it controls
func insertCharacter(ctx context.Context, q querier, c *domain.Character) error {
	equipment, err := json.Marshal(orEmptyMap(c.Equipment))
	if err != nil {
		return fmt.Errorf("failed to encode equipment: %w", err)
	}
	inventory, err := json.Marshal(orEmptySlice(c.Inventory))
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	completed, err := json.Marshal(orEmptyMap(c.CompletedMissions))
	if err != nil {
		return fmt.Errorf("failed to encode completed missions: %w", err)
	}

	_, err = q.Exec(ctx, sqlInsertCharacter,
		c.ID, c.Name, c.Level, c.Experience,
		c.Stats.Strength, c.Stats.Agility, c.Stats.Intelligence,
		c.Stats.Charisma, c.Stats.Endurance, c.Stats.Luck,
		c.Energy, c.MaxEnergy, c.Nerve, c.MaxNerve, c.Health, c.MaxHealth,
		c.Money, c.StreetCred, equipment, inventory, completed,
	)
	if err != nil {
		return fmt.Errorf("failed to insert character: %w", err)
	}

	for _, territoryID := range c.Territories {
		if err := grantTerritoryControl(ctx, q, c.ID, territoryID, 0); err != nil {
			return err
		}
	}
	return nil
}

func insertCrewMember(ctx context.Context, q querier, m domain.CrewMember) error {
	_, err := q.Exec(ctx, sqlInsertCrewMember, m.ID, m.CharacterID, m.Name, m.Role, m.Specialization, m.Level, m.Experience)
	if err != nil {
		return fmt.Errorf("failed to insert crew member: %w", err)
	}
	return nil
}

func getTerritory(ctx context.Context, q querier, territoryID string) (*domain.Territory, error) {
	var t domain.Territory
	if err := q.QueryRow(ctx, sqlGetTerritory, territoryID).Scan(&t.ID, &t.Name, &t.Influence); err != nil {
		return nil, notFound(err, domain.ErrInvalidInput, territoryID)
	}
	return &t, nil
}

func orEmptyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}

func orEmptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// notFound maps pgx.ErrNoRows onto a domain sentinel
func notFound(err error, sentinel error, id any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %v", sentinel, id)
	}
	return err
}
