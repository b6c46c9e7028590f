package handler

// Generic HTTP error messages for client responses.
// These do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgInvalidCharacterID = "Invalid character ID"
	ErrMsgInvalidMissionID   = "Invalid mission ID"
	ErrMsgInvalidCrewID      = "Invalid crew ID '%s'"
	ErrMsgInvalidStatus      = "Invalid status '%s'. Valid options: Available, In Progress, Completed, Failed"
	ErrMsgInvalidType        = "Invalid mission type '%s'"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgCharacterNotFoundError = "Character not found"
	ErrMsgCrewNotFoundError      = "One or more crew members do not work for you"
	ErrMsgMissionNotFoundError   = "Mission not found"

	ErrMsgInvalidTransitionError = "That mission cannot do that right now"
	ErrMsgMissionNotReadyError   = "Mission is still in progress"
	ErrMsgAlreadyCollectedError  = "Rewards already collected"
	ErrMsgStateChangedError      = "Mission changed while processing. Please try again."
	ErrMsgRequirementsError      = "Mission requirements not met"
	ErrMsgOnCooldownError        = "Mission is on cooldown. Try again later"
)

// Success messages for API responses
const (
	MsgMissionsProvisioned = "Missions provisioned"
	MsgMissionStarted      = "Mission started"
	MsgMissionSucceeded    = "Mission succeeded"
	MsgMissionFailed       = "Mission failed"
	MsgRewardsCollected    = "Rewards collected"
)

// Log messages
const (
	LogMsgServiceError = "Service call failed"
)
