package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// Service manages repeat cooldowns for character actions.
// The window is supplied per call because every mission carries its own repeat interval.
type Service interface {
	// CheckCooldown checks if a character's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, characterID, action string, window time.Duration) (bool, time.Duration, error)

	// RecordUse stamps the action as used at the given time
	RecordUse(ctx context.Context, characterID, action string, at time.Time) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, characterID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, characterID, action string) (*time.Time, error)
}

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is matches any ErrOnCooldown as well as domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
