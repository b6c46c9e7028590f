package mission

import (
	"fmt"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/validation"
)

// Validate checks a mission record once at the data-access boundary.
// Engine functions assume their input already passed.
func Validate(m *domain.Mission) error {
	if err := validation.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidMission, err)
	}
	return nil
}
