package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgCrewNotFound      = "crew member not found"

	// Mission errors
	ErrMsgMissionNotFound     = "mission not found"
	ErrMsgInvalidTransition   = "invalid mission state transition"
	ErrMsgMissionNotReady     = "mission is still in progress"
	ErrMsgAlreadyCollected    = "mission rewards already collected"
	ErrMsgRequirementsNotMet  = "mission requirements not met"
	ErrMsgMissionStateChanged = "mission state changed concurrently"
	ErrMsgInvalidMission      = "invalid mission definition"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)
	ErrCrewNotFound      = errors.New(ErrMsgCrewNotFound)

	// Mission errors
	ErrMissionNotFound     = errors.New(ErrMsgMissionNotFound)
	ErrInvalidTransition   = errors.New(ErrMsgInvalidTransition)
	ErrMissionNotReady     = errors.New(ErrMsgMissionNotReady)
	ErrAlreadyCollected    = errors.New(ErrMsgAlreadyCollected)
	ErrRequirementsNotMet  = errors.New(ErrMsgRequirementsNotMet)
	ErrMissionStateChanged = errors.New(ErrMsgMissionStateChanged)
	ErrInvalidMission      = errors.New(ErrMsgInvalidMission)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
