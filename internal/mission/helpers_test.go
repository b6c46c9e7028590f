package mission

import (
	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

func testMission() *domain.Mission {
	return &domain.Mission{
		ID:          uuid.New(),
		Key:         "collect-debt",
		Title:       "Collect a Debt",
		Category:    "enforcement",
		Type:        domain.MissionTypeCombat,
		Difficulty:  domain.DifficultyMedium,
		RiskLevel:   domain.RiskLow,
		EnergyCost:  10,
		NerveCost:   5,
		TerritoryID: "downtown",
		Requirements: domain.Requirements{
			Level:    2,
			CrewSize: 1,
			Stats:    map[string]int{domain.StatStrength: 5},
		},
		SuccessChance: domain.SuccessChanceParams{
			Base:              30,
			Attribute:         domain.StatStrength,
			BonusPerAttribute: 1,
		},
		Rewards: domain.RewardSet{
			Money:              1000,
			Experience:         500,
			StreetCred:         40,
			CrewExperience:     30,
			TerritoryInfluence: 5,
		},
		Status: domain.MissionStatusAvailable,
	}
}

func testCharacter() *domain.Character {
	return &domain.Character{
		ID:    uuid.New(),
		Name:  "Vinnie",
		Level: 5,
		Stats: domain.Stats{
			Strength:     10,
			Agility:      6,
			Intelligence: 4,
			Charisma:     3,
			Endurance:    8,
			Luck:         2,
		},
		Energy:     100,
		MaxEnergy:  100,
		Nerve:      20,
		MaxNerve:   20,
		Health:     50,
		MaxHealth:  100,
		Money:      100,
		StreetCred: 100,
	}
}

// testCrewMember scores 5 base + 10 role + 2 level + 5 specialization = 22 on testMission
func testCrewMember(characterID uuid.UUID) domain.CrewMember {
	return domain.CrewMember{
		ID:             uuid.New(),
		CharacterID:    characterID,
		Name:           "Knuckles",
		Role:           string(domain.MissionTypeCombat),
		Specialization: domain.StatStrength,
		Level:          4,
	}
}
