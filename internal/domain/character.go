package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Stat names as used in mission requirements and item bonuses
const (
	StatStrength     = "strength"
	StatAgility      = "agility"
	StatIntelligence = "intelligence"
	StatCharisma     = "charisma"
	StatEndurance    = "endurance"
	StatLuck         = "luck"
)

// StatNames lists every valid stat in display order
var StatNames = []string{StatStrength, StatAgility, StatIntelligence, StatCharisma, StatEndurance, StatLuck}

// IsStat reports whether name is a known stat
func IsStat(name string) bool {
	return slices.Contains(StatNames, name)
}

// Stats holds a character's attributes
type Stats struct {
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Charisma     int `json:"charisma"`
	Endurance    int `json:"endurance"`
	Luck         int `json:"luck"`
}

// Value returns the named stat. Unknown names read as 0.
func (s Stats) Value(name string) int {
	switch name {
	case StatStrength:
		return s.Strength
	case StatAgility:
		return s.Agility
	case StatIntelligence:
		return s.Intelligence
	case StatCharisma:
		return s.Charisma
	case StatEndurance:
		return s.Endurance
	case StatLuck:
		return s.Luck
	default:
		return 0
	}
}

// Add returns a copy with delta added to the named stat
func (s Stats) Add(name string, delta int) Stats {
	switch name {
	case StatStrength:
		s.Strength += delta
	case StatAgility:
		s.Agility += delta
	case StatIntelligence:
		s.Intelligence += delta
	case StatCharisma:
		s.Charisma += delta
	case StatEndurance:
		s.Endurance += delta
	case StatLuck:
		s.Luck += delta
	}
	return s
}

// AsMap is used to snapshot stats into a mission attempt
func (s Stats) AsMap() map[string]int {
	out := make(map[string]int, len(StatNames))
	for _, name := range StatNames {
		out[name] = s.Value(name)
	}
	return out
}

// Item is an inventory or equipped item
type Item struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Type  string         `json:"type,omitempty"`
	Stats map[string]int `json:"stats,omitempty"`
}

// Character is the acting entity of a mission
type Character struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Level             int             `json:"level"`
	Experience        int             `json:"experience"`
	Stats             Stats           `json:"stats"`
	Energy            int             `json:"energy"`
	MaxEnergy         int             `json:"max_energy"`
	Nerve             int             `json:"nerve"`
	MaxNerve          int             `json:"max_nerve"`
	Health            int             `json:"health"`
	MaxHealth         int             `json:"max_health"`
	Money             int             `json:"money"`
	StreetCred        int             `json:"street_cred"`
	Equipment         map[string]Item `json:"equipment,omitempty"`
	Inventory         []Item          `json:"inventory,omitempty"`
	Territories       []string        `json:"territories,omitempty"`
	CompletedMissions map[string]int  `json:"completed_missions,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ControlsTerritory reports whether the character controls the territory
func (c *Character) ControlsTerritory(territoryID string) bool {
	return territoryID != "" && slices.Contains(c.Territories, territoryID)
}

// HasItem reports whether the inventory holds an item with the given id
func (c *Character) HasItem(itemID string) bool {
	return slices.ContainsFunc(c.Inventory, func(it Item) bool { return it.ID == itemID })
}

// EquipmentBonus sums the bonus every equipped item grants to the stat
func (c *Character) EquipmentBonus(stat string) int {
	total := 0
	for _, item := range c.Equipment {
		total += item.Stats[stat]
	}
	return total
}

// CharacterDelta is the set of changes applied to a character in one write
type CharacterDelta struct {
	Energy     int
	Nerve      int
	Money      int
	Experience int
	StreetCred int
	Stats      map[string]int
}

// Territory is a district characters fight over
type Territory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Influence int    `json:"influence"`
}
