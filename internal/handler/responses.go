package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/osse101/MobMissions_Go/internal/cooldown"
	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/mission"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// RejectionResponse is returned when a mission's requirements are not met
type RejectionResponse struct {
	Error     string            `json:"error"`
	Rejection mission.Rejection `json:"rejection"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response.
// Unmet requirements carry the rejection; cooldowns set Retry-After.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, msg := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Info(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}

	var reqErr *mission.RequirementError
	if errors.As(err, &reqErr) {
		respondJSON(w, status, RejectionResponse{Error: msg, Rejection: reqErr.Rejection})
		return
	}

	var cdErr cooldown.ErrOnCooldown
	if errors.As(err, &cdErr) {
		w.Header().Set("Retry-After", strconv.Itoa(max(1, int(cdErr.Remaining.Seconds()))))
		respondError(w, status, cdErr.Error())
		return
	}

	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and user-facing messages
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrCrewNotFound):
		return http.StatusBadRequest, ErrMsgCrewNotFoundError
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, ErrMsgCharacterNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransitionError
	case errors.Is(err, domain.ErrMissionNotReady):
		return http.StatusConflict, ErrMsgMissionNotReadyError
	case errors.Is(err, domain.ErrAlreadyCollected):
		return http.StatusConflict, ErrMsgAlreadyCollectedError
	case errors.Is(err, domain.ErrMissionStateChanged):
		return http.StatusConflict, ErrMsgStateChangedError
	case errors.Is(err, domain.ErrRequirementsNotMet):
		return http.StatusUnprocessableEntity, ErrMsgRequirementsError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
