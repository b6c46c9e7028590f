package handler

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_StartMissionRequest(t *testing.T) {
	InitValidator()
	v := GetValidator()

	id := uuid.NewString()
	tooMany := make([]string, 0, MaxCrewPerRequest+1)
	for i := 0; i <= MaxCrewPerRequest; i++ {
		tooMany = append(tooMany, uuid.NewString())
	}

	tests := []struct {
		name    string
		crew    []string
		wantErr bool
	}{
		{"no crew", nil, false},
		{"one crew member", []string{id}, false},
		{"max crew", tooMany[:MaxCrewPerRequest], false},
		{"too many crew", tooMany, true},
		{"duplicate crew", []string{id, id}, true},
		{"not a uuid", []string{"knuckles"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(StartMissionRequest{CrewIDs: tt.crew})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_DomainTags(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateVar("combat", "mission_type"))
	assert.Error(t, v.ValidateVar("arson", "mission_type"))
	assert.NoError(t, v.ValidateVar("luck", "stat"))
	assert.Error(t, v.ValidateVar("charm", "stat"))
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", errs["error"])
	})

	t.Run("field errors use lowercase names", func(t *testing.T) {
		err := GetValidator().ValidateStruct(StartMissionRequest{CrewIDs: []string{"x"}})
		require.Error(t, err)

		errs := FormatValidationError(err)
		assert.Equal(t, "Must be a valid UUID", errs["crewids[0]"])
	})
}
