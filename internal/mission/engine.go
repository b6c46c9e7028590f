package mission

import (
	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/random"
)

// Contribution scores how much a crew member helps on a mission, capped at 25
func Contribution(member domain.CrewMember, m *domain.Mission) int {
	score := baseContribution
	if member.Role == string(m.Type) {
		score += roleMatchBonus
	}
	score += member.Level / 2
	if member.Specialization != "" {
		if _, ok := m.Requirements.Stats[member.Specialization]; ok {
			score += specializationBonus
		}
	}
	return max(0, min(score, maxContribution))
}

// RiskMultiplier returns the attenuation applied to the accumulated chance
func RiskMultiplier(risk domain.RiskLevel) float64 {
	switch risk {
	case domain.RiskHigh:
		return highRiskMultiplier
	case domain.RiskMedium:
		return mediumRiskMultiplier
	default:
		return 1.0
	}
}

// RawSuccessChance is the success chance after the risk multiplier but before clamping.
// A nil character yields 0.
func RawSuccessChance(m *domain.Mission, c *domain.Character, crew []domain.CrewMember) float64 {
	if c == nil {
		return 0
	}
	params := m.SuccessChance

	chance := params.Base
	if params.Attribute != "" {
		chance += float64(c.Stats.Value(params.Attribute)) * params.BonusPerAttribute
	}

	crewSum := 0
	for _, member := range crew {
		crewSum += Contribution(member, m)
	}
	chance += float64(crewSum) * orDefault(params.CrewBonus, defaultCrewBonus)

	if len(c.Equipment) > 0 && params.Attribute != "" {
		chance += float64(c.EquipmentBonus(params.Attribute)) * orDefault(params.EquipmentBonus, defaultEquipmentBonus)
	}

	if m.TerritoryID != "" && c.ControlsTerritory(m.TerritoryID) {
		chance += orDefault(params.TerritoryBonus, defaultTerritoryBonus)
	}

	return chance * RiskMultiplier(m.RiskLevel)
}

// SuccessChance returns the clamped [5, 95] percentage chance of success.
// A nil character yields 0.
func SuccessChance(m *domain.Mission, c *domain.Character, crew []domain.CrewMember) float64 {
	if c == nil {
		return 0
	}
	return clamp(RawSuccessChance(m, c, crew), minSuccessChance, maxSuccessChance)
}

// Engine resolves mission attempts. It is pure apart from its roller and
// must not be shared between goroutines.
type Engine struct {
	roller random.Roller
}

// NewEngine creates an engine drawing from roller
func NewEngine(roller random.Roller) *Engine {
	return &Engine{roller: roller}
}

// NewSeededEngine creates an engine with its own pseudo-random source
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(random.NewPercentRoller(seed))
}

// ResolveOutcome rolls one attempt. The outcome roll and each special event roll are
// separate draws; the first event whose roll lands at or under its chance fires.
func (e *Engine) ResolveOutcome(m *domain.Mission, c *domain.Character, crew []domain.CrewMember) *domain.MissionOutcome {
	chance := SuccessChance(m, c, crew)
	roll := e.roller.Roll()
	success := roll <= chance

	var fired *domain.SpecialEvent
	for i := range m.SpecialEvents {
		if e.roller.Roll() <= m.SpecialEvents[i].Chance {
			ev := m.SpecialEvents[i]
			fired = &ev
			break
		}
	}

	return &domain.MissionOutcome{
		Success:       success,
		SpecialEvent:  fired,
		SuccessChance: chance,
		Roll:          roll,
		Result:        ComputeRewards(m, success, fired, crew),
	}
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
