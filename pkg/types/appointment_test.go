package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled stays scheduled", StatusScheduled, StatusScheduled, true},
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"completed stays completed", StatusCompleted, StatusCompleted, true},
		{"completed back to scheduled", StatusCompleted, StatusScheduled, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled stays cancelled", StatusCancelled, StatusCancelled, true},
		{"cancelled back to scheduled", StatusCancelled, StatusScheduled, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusScheduled))
	assert.True(t, ValidStatus(StatusCompleted))
	assert.True(t, ValidStatus(StatusCancelled))
	assert.False(t, ValidStatus("PENDING"))
	assert.False(t, ValidStatus(""))
}
