package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"scheduled", "completed", "cancelled"} {
		got, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, s := range []string{"", "Scheduled", "canceled", "noshow"} {
		_, err := ParseStatus(s)
		assert.True(t, httperr.IsBusiness(err, CodeInvalidStatus), s)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		wantCode string
	}{
		{StatusScheduled, StatusCompleted, ""},
		{StatusScheduled, StatusCancelled, ""},
		{StatusScheduled, StatusScheduled, CodeInvalidTransition},
		{StatusCompleted, StatusScheduled, CodeInvalidTransition},
		{StatusCompleted, StatusCancelled, CodeInvalidTransition},
		{StatusCancelled, StatusScheduled, CodeInvalidTransition},
		{StatusCancelled, StatusCompleted, CodeInvalidTransition},
		{StatusScheduled, "archived", CodeInvalidStatus},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.wantCode == "" {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
			continue
		}
		assert.True(t, httperr.IsBusiness(err, tt.wantCode), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsActive(t *testing.T) {
	assert.True(t, StatusScheduled.IsActive())
	assert.True(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCancelAndComplete(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	assert.NoError(t, Cancel(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Error(t, Complete(ap))
	assert.Equal(t, string(StatusCancelled), ap.Status)

	ap = &models.Appointment{Status: string(StatusScheduled)}
	assert.NoError(t, Complete(ap))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}

func TestCanonicalTimeSlot(t *testing.T) {
	tests := map[string]string{
		"9:00 AM":   "9:00 AM",
		"09:00 AM":  "9:00 AM",
		" 2:30 PM ": "2:30 PM",
		"12:00 PM":  "12:00 PM",
		"noon":      "noon",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalTimeSlot(in), in)
	}

	assert.Equal(t,
		NewSlotKey(1, "2025-03-10", "9:00 AM"),
		AvailabilityInput{DoctorID: 1, Date: "2025-03-10", Time: "09:00 AM"}.Key(),
	)
}

func TestTransitionDelegatesToActions(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusScheduled)}
	assert.True(t, httperr.IsBusiness(Transition(ap, StatusScheduled), CodeInvalidTransition))
	assert.True(t, httperr.IsBusiness(Transition(ap, "archived"), CodeInvalidStatus))
	assert.Equal(t, string(StatusScheduled), ap.Status)

	assert.NoError(t, Transition(ap, StatusCompleted))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.True(t, httperr.IsBusiness(Transition(ap, StatusCancelled), CodeInvalidTransition))
	assert.Equal(t, string(StatusCompleted), ap.Status)
}
