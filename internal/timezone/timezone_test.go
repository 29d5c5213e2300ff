package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("").String())
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))
}

func TestClockUsesLocation(t *testing.T) {
	now := Clock("UTC")()
	assert.Equal(t, time.UTC.String(), now.Location().String())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
