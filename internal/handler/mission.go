package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MobMissions_Go/internal/domain"
	"github.com/osse101/MobMissions_Go/internal/logger"
	"github.com/osse101/MobMissions_Go/internal/mission"
)

// Route parameter names
const (
	URLParamCharacterID = "characterID"
	URLParamMissionID   = "missionID"
)

// MissionHandler serves the mission endpoints of one character
type MissionHandler struct {
	service mission.Service
}

// NewMissionHandler creates a mission handler
func NewMissionHandler(service mission.Service) *MissionHandler {
	return &MissionHandler{service: service}
}

// StartMissionRequest represents a mission start request
type StartMissionRequest struct {
	CrewIDs []string `json:"crew_ids" validate:"max=10,unique,dive,uuid"`
}

// ProvisionResponse reports how many catalog missions were added
type ProvisionResponse struct {
	Message  string `json:"message"`
	Inserted int64  `json:"inserted"`
}

// MissionListResponse wraps a mission listing
type MissionListResponse struct {
	Missions []domain.MissionView `json:"missions"`
}

// StartMissionResponse is returned when a mission goes in progress
type StartMissionResponse struct {
	Message  string          `json:"message"`
	Mission  *domain.Mission `json:"mission"`
	Deadline time.Time       `json:"deadline"`
}

// CompleteMissionResponse describes a resolved attempt
type CompleteMissionResponse struct {
	Message string                 `json:"message"`
	Outcome *domain.MissionOutcome `json:"outcome"`
}

// CollectRewardsResponse describes what was granted
type CollectRewardsResponse struct {
	Message string               `json:"message"`
	Result  *domain.RewardResult `json:"result"`
}

// characterID reads the character route parameter and tags the request logger with it
func (h *MissionHandler) characterID(w http.ResponseWriter, r *http.Request) (uuid.UUID, *http.Request, bool) {
	id, ok := pathUUID(w, r, URLParamCharacterID, ErrMsgInvalidCharacterID)
	if !ok {
		return uuid.Nil, r, false
	}
	return id, r.WithContext(logger.WithCharacterID(r.Context(), id.String())), true
}

// HandleProvision adds catalog missions the character does not have yet
func (h *MissionHandler) HandleProvision(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}

	inserted, err := h.service.ProvisionMissions(r.Context(), characterID)
	if err != nil {
		respondServiceError(w, r, "Provision missions", err)
		return
	}

	respondJSON(w, http.StatusCreated, ProvisionResponse{Message: MsgMissionsProvisioned, Inserted: inserted})
}

// HandleList lists the character's missions with chance previews for the crew query
func (h *MissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	filter, ok := missionFilterQuery(w, r)
	if !ok {
		return
	}
	crewIDs, ok := crewQuery(w, r)
	if !ok {
		return
	}

	views, err := h.service.ListMissions(r.Context(), characterID, filter, crewIDs)
	if err != nil {
		respondServiceError(w, r, "List missions", err)
		return
	}

	respondJSON(w, http.StatusOK, MissionListResponse{Missions: views})
}

// HandleGet returns a single mission
func (h *MissionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	missionID, ok := pathUUID(w, r, URLParamMissionID, ErrMsgInvalidMissionID)
	if !ok {
		return
	}

	m, err := h.service.GetMission(r.Context(), characterID, missionID)
	if err != nil {
		respondServiceError(w, r, "Get mission", err)
		return
	}

	respondJSON(w, http.StatusOK, m)
}

// HandlePreview breaks down the success chance for the crew query
func (h *MissionHandler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	missionID, ok := pathUUID(w, r, URLParamMissionID, ErrMsgInvalidMissionID)
	if !ok {
		return
	}
	crewIDs, ok := crewQuery(w, r)
	if !ok {
		return
	}

	preview, err := h.service.PreviewChance(r.Context(), characterID, missionID, crewIDs)
	if err != nil {
		respondServiceError(w, r, "Preview chance", err)
		return
	}

	respondJSON(w, http.StatusOK, preview)
}

// HandleStart puts a mission in progress with the requested crew
func (h *MissionHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	missionID, ok := pathUUID(w, r, URLParamMissionID, ErrMsgInvalidMissionID)
	if !ok {
		return
	}

	var req StartMissionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start mission"); err != nil {
		return
	}
	crewIDs := make([]uuid.UUID, 0, len(req.CrewIDs))
	for _, raw := range req.CrewIDs {
		// Already validated as uuids
		crewIDs = append(crewIDs, uuid.MustParse(raw))
	}

	m, err := h.service.StartMission(r.Context(), characterID, missionID, crewIDs)
	if err != nil {
		respondServiceError(w, r, "Start mission", err)
		return
	}

	response := StartMissionResponse{Message: MsgMissionStarted, Mission: m}
	if m.Progress != nil {
		response.Deadline = m.Progress.Deadline
	}
	respondJSON(w, http.StatusOK, response)
}

// HandleComplete resolves a mission whose deadline has passed. The worker
// normally does this; the endpoint lets clients settle without waiting for it.
func (h *MissionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	missionID, ok := pathUUID(w, r, URLParamMissionID, ErrMsgInvalidMissionID)
	if !ok {
		return
	}

	// Ownership check; CompleteMission itself is keyed by mission only
	if _, err := h.service.GetMission(r.Context(), characterID, missionID); err != nil {
		respondServiceError(w, r, "Complete mission", err)
		return
	}

	outcome, err := h.service.CompleteMission(r.Context(), missionID)
	if err != nil {
		respondServiceError(w, r, "Complete mission", err)
		return
	}

	msg := MsgMissionFailed
	if outcome.Success {
		msg = MsgMissionSucceeded
	}
	respondJSON(w, http.StatusOK, CompleteMissionResponse{Message: msg, Outcome: outcome})
}

// HandleCollect grants the pending rewards of a completed mission
func (h *MissionHandler) HandleCollect(w http.ResponseWriter, r *http.Request) {
	characterID, r, ok := h.characterID(w, r)
	if !ok {
		return
	}
	missionID, ok := pathUUID(w, r, URLParamMissionID, ErrMsgInvalidMissionID)
	if !ok {
		return
	}

	result, err := h.service.CollectRewards(r.Context(), characterID, missionID)
	if err != nil {
		respondServiceError(w, r, "Collect rewards", err)
		return
	}

	respondJSON(w, http.StatusOK, CollectRewardsResponse{Message: MsgRewardsCollected, Result: result})
}

// HandleCacheStats reports the character snapshot cache occupancy
func (h *MissionHandler) HandleCacheStats(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}
