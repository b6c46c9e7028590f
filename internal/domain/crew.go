package domain

import (
	"time"

	"github.com/google/uuid"
)

// CrewMember works for a character and can be assigned to missions
type CrewMember struct {
	ID             uuid.UUID `json:"id"`
	CharacterID    uuid.UUID `json:"character_id"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization,omitempty"`
	Level          int       `json:"level"`
	Experience     int       `json:"experience"`
	CreatedAt      time.Time `json:"created_at"`
}
