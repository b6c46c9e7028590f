package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/logger"
)

// Query parameter names
const (
	QueryParamCrew   = "crew"
	QueryParamStatus = "status"
	QueryParamType   = "type"
)

// MaxCrewPerRequest bounds the crew ids accepted in one request
const MaxCrewPerRequest = 10

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error the response has already been written and the handler should return.
//
// Example usage:
//
//	var req StartMissionRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Start mission"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back to defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// pathUUID parses a UUID route parameter. On failure it writes a 400 and returns false.
func pathUUID(w http.ResponseWriter, r *http.Request, name, errMsg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondError(w, http.StatusBadRequest, errMsg)
		return uuid.Nil, false
	}
	return id, true
}

// crewQuery parses the comma separated crew ids of the crew query parameter
func crewQuery(w http.ResponseWriter, r *http.Request) ([]uuid.UUID, bool) {
	raw := GetOptionalQueryParam(r, QueryParamCrew, "")
	if raw == "" {
		return nil, true
	}
	parts := strings.Split(raw, ",")
	if len(parts) > MaxCrewPerRequest {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: map[string]string{QueryParamCrew: fmt.Sprintf("Must have at most %d entries", MaxCrewPerRequest)},
		})
		return nil, false
	}
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidCrewID, part))
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// missionFilterQuery reads the optional status and type filters
func missionFilterQuery(w http.ResponseWriter, r *http.Request) (domain.MissionFilter, bool) {
	filter := domain.MissionFilter{
		Status: domain.MissionStatus(GetOptionalQueryParam(r, QueryParamStatus, "")),
		Type:   domain.MissionType(GetOptionalQueryParam(r, QueryParamType, "")),
	}

	switch filter.Status {
	case "", domain.MissionStatusAvailable, domain.MissionStatusInProgress,
		domain.MissionStatusCompleted, domain.MissionStatusFailed:
	default:
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidStatus, filter.Status))
		return filter, false
	}

	if filter.Type != "" {
		if err := GetValidator().ValidateVar(string(filter.Type), "mission_type"); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidType, filter.Type))
			return filter, false
		}
	}

	return filter, true
}
