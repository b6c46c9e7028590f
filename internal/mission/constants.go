package mission

import "time"

// Crew contribution scoring
const (
	baseContribution    = 5
	roleMatchBonus      = 10
	specializationBonus = 5
	maxContribution     = 25
)

// Success chance tuning
const (
	defaultCrewBonus      = 1.0
	defaultEquipmentBonus = 0.5
	defaultTerritoryBonus = 10.0

	minSuccessChance = 5.0
	maxSuccessChance = 95.0

	highRiskMultiplier   = 0.7
	mediumRiskMultiplier = 0.85
)

// Failure reward rates
const (
	failureMoneyRate      = 0.2
	failureExperienceRate = 0.1
	failureStreetCredRate = 0.5
)

// Minimum health a mission can leave a character with
const minHealthAfterMission = 1

// Cache settings
const (
	DefaultCharacterCacheSize = 1000
	DefaultCharacterCacheTTL  = 30 * time.Second
)

// CooldownActionPrefix namespaces repeat cooldowns in the cooldown store
const CooldownActionPrefix = "mission:"

// Log messages
const (
	LogMsgMissionStarted          = "Mission started"
	LogMsgMissionResolved         = "Mission resolved"
	LogMsgMissionAlreadyResolved  = "Mission state already changed, skipping completion"
	LogMsgRewardsCollected        = "Mission rewards collected"
	LogMsgMissionReset            = "Repeatable mission reset"
	LogMsgFailedToRecordCooldown  = "Failed to record mission cooldown"
	LogMsgFailedToPublishEvent    = "Failed to publish mission event"
	LogMsgMissionsProvisioned     = "Missions provisioned"
	LogMsgRequirementsRejected    = "Mission requirements not met"
	LogMsgFailedToCompleteMission = "Failed to complete mission"
)
