package mission

import (
	"math"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// ComputeRewards derives the reward set for an attempt along with the values the
// caller writes elsewhere: the per-member crew experience share, the territory
// influence delta and the health penalty. It never mutates its inputs.
func ComputeRewards(m *domain.Mission, success bool, event *domain.SpecialEvent, crew []domain.CrewMember) domain.RewardResult {
	var result domain.RewardResult

	if success {
		rewards := m.Rewards.Clone()
		if event != nil && event.Rewards != nil {
			rewards = rewards.Plus(*event.Rewards)
		}
		result.Rewards = rewards

		if rewards.CrewExperience > 0 && len(crew) > 0 {
			result.CrewExperienceShare = rewards.CrewExperience / len(crew)
		}
		if rewards.TerritoryInfluence != 0 && m.TerritoryID != "" {
			result.TerritoryInfluence = rewards.TerritoryInfluence
		}
	} else {
		rewards := domain.RewardSet{
			Money:      floorRate(m.Rewards.Money, failureMoneyRate),
			Experience: floorRate(m.Rewards.Experience, failureExperienceRate),
			StreetCred: -floorRate(m.Rewards.StreetCred, failureStreetCredRate),
		}
		if event != nil && event.Penalties != nil {
			rewards.Money -= event.Penalties.Money
			rewards.Reputation -= event.Penalties.Reputation
		}
		result.Rewards = rewards
	}

	if event != nil && event.Penalties != nil {
		result.HealthPenalty = event.Penalties.Health
	}

	return result
}

// ApplyHealthPenalty returns the health left after a penalty. A mission never takes
// a character below 1 health.
func ApplyHealthPenalty(health, penalty int) int {
	if penalty <= 0 {
		return health
	}
	return max(minHealthAfterMission, health-penalty)
}

func floorRate(v int, rate float64) int {
	return int(math.Floor(float64(v) * rate))
}
