package mission

import (
	"fmt"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/MobMissions_Go/internal/domain"
)

// RejectionReason names the first requirement a character failed
type RejectionReason string

const (
	RejectionNoCharacter RejectionReason = "no_character"
	RejectionEnergy      RejectionReason = "insufficient_energy"
	RejectionNerve       RejectionReason = "insufficient_nerve"
	RejectionLevel       RejectionReason = "level_too_low"
	RejectionCrewSize    RejectionReason = "crew_too_small"
	RejectionMissingItem RejectionReason = "missing_item"
	RejectionStatTooLow  RejectionReason = "stat_too_low"
	RejectionTerritory   RejectionReason = "territory_not_controlled"
	RejectionReputation  RejectionReason = "reputation_too_low"
)

// Rejection describes why a mission cannot start. A nil *Rejection means it can.
type Rejection struct {
	Reason  RejectionReason `json:"reason"`
	Detail  string          `json:"detail,omitempty"`
	Message string          `json:"message"`
}

// RequirementError carries a rejection through the error path of the service
type RequirementError struct {
	Rejection Rejection
}

func (e *RequirementError) Error() string {
	return fmt.Sprintf("%s: %s", domain.ErrMsgRequirementsNotMet, e.Rejection.Message)
}

// Is allows errors.Is(err, domain.ErrRequirementsNotMet)
func (e *RequirementError) Is(target error) bool {
	return target == domain.ErrRequirementsNotMet
}

// CheckRequirements runs the start preconditions in a fixed order and reports the first failure
func CheckRequirements(m *domain.Mission, c *domain.Character, crew []domain.CrewMember) *Rejection {
	if c == nil {
		return &Rejection{Reason: RejectionNoCharacter, Message: "No character selected"}
	}
	if c.Energy < m.EnergyCost {
		return &Rejection{Reason: RejectionEnergy, Message: "Not enough energy"}
	}
	if c.Nerve < m.NerveCost {
		return &Rejection{Reason: RejectionNerve, Message: "Not enough nerve"}
	}

	req := m.Requirements
	if c.Level < req.Level {
		return &Rejection{
			Reason:  RejectionLevel,
			Detail:  fmt.Sprint(req.Level),
			Message: fmt.Sprintf("Requires level %d", req.Level),
		}
	}
	if len(crew) < req.CrewSize {
		return &Rejection{
			Reason:  RejectionCrewSize,
			Detail:  fmt.Sprint(req.CrewSize),
			Message: fmt.Sprintf("Requires %d crew members", req.CrewSize),
		}
	}
	for _, itemID := range req.Items {
		if !c.HasItem(itemID) {
			return &Rejection{Reason: RejectionMissingItem, Detail: itemID, Message: "Missing required items"}
		}
	}

	stats := make([]string, 0, len(req.Stats))
	for stat := range req.Stats {
		stats = append(stats, stat)
	}
	slices.Sort(stats)
	for _, stat := range stats {
		if c.Stats.Value(stat) < req.Stats[stat] {
			return &Rejection{
				Reason:  RejectionStatTooLow,
				Detail:  stat,
				Message: fmt.Sprintf("%s stat too low", cases.Title(language.English).String(stat)),
			}
		}
	}

	if req.Territory != "" && !c.ControlsTerritory(req.Territory) {
		return &Rejection{Reason: RejectionTerritory, Detail: req.Territory, Message: "You do not control the required territory"}
	}
	if c.StreetCred < req.Reputation {
		return &Rejection{Reason: RejectionReputation, Message: "Not enough street cred"}
	}

	return nil
}
