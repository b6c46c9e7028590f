package validation

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

var (
	structValidator *validator.Validate
	structOnce      sync.Once
)

// RegisterDomainValidations adds the game-specific tags ("stat", "mission_type") to v
func RegisterDomainValidations(v *validator.Validate) {
	_ = v.RegisterValidation("stat", func(fl validator.FieldLevel) bool {
		return domain.IsStat(fl.Field().String())
	})
	_ = v.RegisterValidation("mission_type", func(fl validator.FieldLevel) bool {
		switch domain.MissionType(fl.Field().String()) {
		case domain.MissionTypeCombat, domain.MissionTypeStealth, domain.MissionTypeDiplomacy,
			domain.MissionTypeIntelligence, domain.MissionTypeBusiness, domain.MissionTypeTerritory:
			return true
		}
		return false
	})
}

// Struct validates s against its validate tags
func Struct(s interface{}) error {
	structOnce.Do(func() {
		structValidator = validator.New()
		RegisterDomainValidations(structValidator)
	})
	return structValidator.Struct(s)
}
