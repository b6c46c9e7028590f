package mission

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/validation"
)

// Catalog is the set of mission templates every character is provisioned from
type Catalog struct {
	Version         string                 `json:"version"`
	CategoryBonuses []domain.CategoryBonus `json:"category_bonuses"`
	Missions        []domain.Mission       `json:"missions"`
}

// LoadCatalog loads and validates the mission catalog from a JSON file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog validates raw catalog JSON against the catalog schema, decodes it and
// checks every mission template
func ParseCatalog(data []byte) (*Catalog, error) {
	schema, err := validation.NewMissionCatalogValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog schema: %w", err)
	}
	if err := schema.ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("invalid mission catalog: %w", err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse mission catalog: %w", err)
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid mission catalog: %w", err)
	}

	return &catalog, nil
}

func validateCatalog(c *Catalog) error {
	if len(c.Missions) == 0 {
		return fmt.Errorf("no missions defined")
	}

	seen := make(map[string]bool, len(c.Missions))
	for i := range c.Missions {
		m := &c.Missions[i]
		if seen[m.Key] {
			return fmt.Errorf("duplicate mission key %q", m.Key)
		}
		seen[m.Key] = true

		if err := Validate(m); err != nil {
			return fmt.Errorf("mission %q: %w", m.Key, err)
		}
		if m.Repeatable && m.RepeatInterval == 0 {
			return fmt.Errorf("mission %q is repeatable but has no repeat_interval", m.Key)
		}
	}

	categories := make(map[string]bool, len(c.CategoryBonuses))
	for _, b := range c.CategoryBonuses {
		if categories[b.Category] {
			return fmt.Errorf("duplicate category bonus %q", b.Category)
		}
		categories[b.Category] = true
	}

	return nil
}

// Bonus returns the category bonus for a category, if one is defined
func (c *Catalog) Bonus(category string) (domain.CategoryBonus, bool) {
	for _, b := range c.CategoryBonuses {
		if b.Category == category {
			return b, true
		}
	}
	return domain.CategoryBonus{}, false
}

