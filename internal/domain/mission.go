package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// MissionType is the category a mission belongs to. Crew roles share the same vocabulary.
type MissionType string

const (
	MissionTypeCombat       MissionType = "combat"
	MissionTypeStealth      MissionType = "stealth"
	MissionTypeDiplomacy    MissionType = "diplomacy"
	MissionTypeIntelligence MissionType = "intelligence"
	MissionTypeBusiness     MissionType = "business"
	MissionTypeTerritory    MissionType = "territory"
)

// MissionDifficulty is the tier shown to players
type MissionDifficulty string

const (
	DifficultyEasy   MissionDifficulty = "Easy"
	DifficultyMedium MissionDifficulty = "Medium"
	DifficultyHard   MissionDifficulty = "Hard"
	DifficultyElite  MissionDifficulty = "Elite"
)

// RiskLevel discounts the accumulated success chance. Empty reads as Low.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// MissionStatus represents the lifecycle state of a character's mission
type MissionStatus string

const (
	MissionStatusAvailable  MissionStatus = "Available"
	MissionStatusInProgress MissionStatus = "In Progress"
	MissionStatusCompleted  MissionStatus = "Completed"
	MissionStatusFailed     MissionStatus = "Failed"
)

// Requirements are checked before a mission may start
type Requirements struct {
	Level      int            `json:"level,omitempty" validate:"gte=0"`
	Stats      map[string]int `json:"stats,omitempty" validate:"omitempty,dive,keys,stat,endkeys,gte=0"`
	Items      []string       `json:"items,omitempty"`
	CrewSize   int            `json:"crew_size,omitempty" validate:"gte=0"`
	Territory  string         `json:"territory,omitempty"`
	Reputation int            `json:"reputation,omitempty" validate:"gte=0"`
}

// SuccessChanceParams tunes the success chance calculation.
// Zero values for the bonus multipliers mean "use the default".
type SuccessChanceParams struct {
	Base              float64 `json:"base" validate:"gte=0,lte=100"`
	Attribute         string  `json:"attribute,omitempty" validate:"omitempty,stat"`
	BonusPerAttribute float64 `json:"bonus_per_attribute,omitempty" validate:"gte=0"`
	TerritoryBonus    float64 `json:"territory_bonus,omitempty" validate:"gte=0"`
	CrewBonus         float64 `json:"crew_bonus,omitempty" validate:"gte=0"`
	EquipmentBonus    float64 `json:"equipment_bonus,omitempty" validate:"gte=0"`
}

// TerritoryControl grants control points over a territory
type TerritoryControl struct {
	TerritoryID string `json:"id" validate:"required"`
	Amount      int    `json:"amount"`
}

// RewardSet is a bag of resource deltas. It is used both for a mission's base
// reward and for the deltas carried by special events.
type RewardSet struct {
	Money              int               `json:"money"`
	Experience         int               `json:"experience"`
	StreetCred         int               `json:"street_cred"`
	Reputation         int               `json:"reputation,omitempty"`
	TerritoryInfluence int               `json:"territory_influence,omitempty"`
	BusinessIncome     int               `json:"business_income,omitempty"`
	CrewExperience     int               `json:"crew_experience,omitempty" validate:"gte=0"`
	StatBonuses        map[string]int    `json:"stat_bonuses,omitempty" validate:"omitempty,dive,keys,stat,endkeys"`
	TerritoryControl   *TerritoryControl `json:"territory_control,omitempty"`
	Items              []string          `json:"items,omitempty"`
}

// Clone returns a deep copy so callers can mutate the result freely
func (r RewardSet) Clone() RewardSet {
	out := r
	out.StatBonuses = maps.Clone(r.StatBonuses)
	out.Items = slices.Clone(r.Items)
	if r.TerritoryControl != nil {
		tc := *r.TerritoryControl
		out.TerritoryControl = &tc
	}
	return out
}

// Plus adds every numeric field of delta onto r. Stat bonuses are summed per stat
// and items are appended; territory control stays as defined on r.
func (r RewardSet) Plus(delta RewardSet) RewardSet {
	out := r.Clone()
	out.Money += delta.Money
	out.Experience += delta.Experience
	out.StreetCred += delta.StreetCred
	out.Reputation += delta.Reputation
	out.TerritoryInfluence += delta.TerritoryInfluence
	out.BusinessIncome += delta.BusinessIncome
	out.CrewExperience += delta.CrewExperience
	if len(delta.StatBonuses) > 0 {
		if out.StatBonuses == nil {
			out.StatBonuses = make(map[string]int, len(delta.StatBonuses))
		}
		for stat, v := range delta.StatBonuses {
			out.StatBonuses[stat] += v
		}
	}
	out.Items = append(out.Items, delta.Items...)
	return out
}

// Penalties are subtracted from a failed attempt's rewards.
// Health is applied to the character directly and never folded into rewards.
type Penalties struct {
	Money      int `json:"money,omitempty" validate:"gte=0"`
	Health     int `json:"health,omitempty" validate:"gte=0"`
	Reputation int `json:"reputation,omitempty" validate:"gte=0"`
}

// SpecialEvent is an independently rolled complication or bonus
type SpecialEvent struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Effect      string     `json:"effect,omitempty"`
	Chance      float64    `json:"chance" validate:"gte=0,lte=100"`
	Duration    int        `json:"duration,omitempty" validate:"gte=0"`
	Rewards     *RewardSet `json:"rewards,omitempty"`
	Penalties   *Penalties `json:"penalties,omitempty"`
}

// CrewAssignment is the crew snapshot stored when a mission starts
type CrewAssignment struct {
	CrewMemberID uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Contribution int       `json:"contribution"`
}

// MissionProgress tracks a running mission
type MissionProgress struct {
	Current   int              `json:"current"`
	Total     int              `json:"total"`
	StartedAt time.Time        `json:"started_at"`
	Deadline  time.Time        `json:"deadline"`
	Crew      []CrewAssignment `json:"crew"`
}

// At returns the elapsed progress at the given time, capped at Total
func (p MissionProgress) At(now time.Time) int {
	elapsed := int(now.Sub(p.StartedAt).Seconds())
	if elapsed < 0 {
		return 0
	}
	return min(elapsed, p.Total)
}

// CrewIDs returns the ids of the assigned crew in assignment order
func (p MissionProgress) CrewIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Crew))
	for _, c := range p.Crew {
		ids = append(ids, c.CrewMemberID)
	}
	return ids
}

// MissionAttempt records the most recent resolution of a mission
type MissionAttempt struct {
	Success       bool           `json:"success"`
	Timestamp     time.Time      `json:"timestamp"`
	StatsUsed     map[string]int `json:"stats_used"`
	CrewUsed      []uuid.UUID    `json:"crew_used"`
	SpecialEvent  string         `json:"special_event,omitempty"`
	SuccessChance float64        `json:"success_chance"`
	Roll          float64        `json:"roll"`
}

// Mission is a per-character instance of a catalog mission
type Mission struct {
	ID             uuid.UUID           `json:"id"`
	CharacterID    uuid.UUID           `json:"character_id"`
	Key            string              `json:"key" validate:"required"`
	Title          string              `json:"title" validate:"required"`
	Description    string              `json:"description,omitempty"`
	Category       string              `json:"category,omitempty"`
	Type           MissionType         `json:"type" validate:"required,mission_type"`
	Difficulty     MissionDifficulty   `json:"difficulty" validate:"required,oneof=Easy Medium Hard Elite"`
	RiskLevel      RiskLevel           `json:"risk_level,omitempty" validate:"omitempty,oneof=Low Medium High"`
	EnergyCost     int                 `json:"energy_cost" validate:"gte=0"`
	NerveCost      int                 `json:"nerve_cost" validate:"gte=0"`
	Duration       int                 `json:"duration" validate:"gte=0"`
	Location       string              `json:"location,omitempty"`
	Faction        string              `json:"faction,omitempty"`
	TerritoryID    string              `json:"territory,omitempty"`
	Requirements   Requirements        `json:"requirements"`
	SuccessChance  SuccessChanceParams `json:"success_chance"`
	Rewards        RewardSet           `json:"rewards"`
	SpecialEvents  []SpecialEvent      `json:"special_events,omitempty" validate:"dive"`
	Repeatable     bool                `json:"repeatable"`
	RepeatInterval int                 `json:"repeat_interval,omitempty" validate:"gte=0"`
	Status         MissionStatus       `json:"status"`
	Progress       *MissionProgress    `json:"progress,omitempty"`
	LastAttempt    *MissionAttempt     `json:"last_attempt,omitempty"`
	PendingRewards *RewardResult       `json:"pending_rewards,omitempty"`
	Collected      bool                `json:"collected"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// RepeatCooldown is how long a repeatable mission stays locked after an attempt
func (m *Mission) RepeatCooldown() time.Duration {
	return time.Duration(m.RepeatInterval) * time.Second
}

// RewardResult is the outcome of the reward calculation for one attempt
type RewardResult struct {
	Rewards             RewardSet `json:"rewards"`
	CrewExperienceShare int       `json:"crew_experience_share"`
	TerritoryInfluence  int       `json:"territory_influence"`
	HealthPenalty       int       `json:"health_penalty"`
}

// MissionOutcome is the full result of resolving one attempt
type MissionOutcome struct {
	Success       bool          `json:"success"`
	SpecialEvent  *SpecialEvent `json:"special_event,omitempty"`
	SuccessChance float64       `json:"success_chance"`
	Roll          float64       `json:"roll"`
	Result        RewardResult  `json:"result"`
}

// MissionFilter narrows mission listings
type MissionFilter struct {
	Status MissionStatus
	Type   MissionType
}

// MissionView pairs a mission with the chance preview for the requested crew
type MissionView struct {
	Mission       Mission `json:"mission"`
	SuccessChance float64 `json:"success_chance"`
	Progress      int     `json:"progress"`
}

// ChancePreview breaks down a success chance for display
type ChancePreview struct {
	MissionID     uuid.UUID      `json:"mission_id"`
	SuccessChance float64        `json:"success_chance"`
	RawChance     float64        `json:"raw_chance"`
	Contributions map[string]int `json:"contributions"`
}

// CategoryBonus multiplies collected rewards once enough missions in a category are done
type CategoryBonus struct {
	Category         string  `json:"category" validate:"required"`
	RequiredMissions int     `json:"required_missions" validate:"gte=0"`
	MoneyMultiplier  float64 `json:"money_multiplier" validate:"gte=0"`
	XPMultiplier     float64 `json:"xp_multiplier" validate:"gte=0"`
	Description      string  `json:"description,omitempty"`
}
