package cooldown

// =============================================================================
// Hash Constants
// =============================================================================

const (
	// HashSeparator is the separator used when combining characterID and action for advisory lock hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 is the bit mask to ensure advisory lock keys are positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// SQL Query Constants
// =============================================================================

const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectLastUsed retrieves the last used timestamp for a character action
	SQLSelectLastUsed = `
		SELECT last_used_at
		FROM character_cooldowns
		WHERE character_id = $1 AND action_name = $2
	`

	// SQLDeleteCooldown removes a cooldown record for a character action
	SQLDeleteCooldown = `DELETE FROM character_cooldowns WHERE character_id = $1 AND action_name = $2`

	// SQLUpsertCooldown inserts or moves a cooldown timestamp forward
	SQLUpsertCooldown = `
		INSERT INTO character_cooldowns (character_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (character_id, action_name) DO UPDATE
		SET last_used_at = GREATEST(character_cooldowns.last_used_at, EXCLUDED.last_used_at)
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown checks
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown check"

	// LogMsgCooldownRecorded is logged when a cooldown timestamp is written
	LogMsgCooldownRecorded = "Cooldown recorded"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownWithMinutes formats cooldown error with minutes and seconds
	ErrFmtCooldownWithMinutes = "%s available again in %dm %ds"

	// ErrFmtCooldownSecondsOnly formats cooldown error with seconds only
	ErrFmtCooldownSecondsOnly = "%s available again in %ds"
)

const (
	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)
