package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/doctor-booking/internal/infra/repository"
)

func TestLoadAssignsSequentialIDs(t *testing.T) {
	store := repository.NewMemoryStore()

	doctors, err := Load(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, doctors, 5)

	for i, d := range doctors {
		assert.Equal(t, uint(i+1), d.ID)
	}
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	assert.Equal(t, 15000, doctors[0].ConsultationFee)
	assert.Equal(t, 49, doctors[0].Rating)
	assert.Contains(t, doctors[0].AvailableTimeSlots, "9:00 AM")
}

func TestDoctorsHaveUsableCatalogFields(t *testing.T) {
	for _, d := range Doctors() {
		require.NotNil(t, d.Rating, d.Name)
		assert.GreaterOrEqual(t, *d.Rating, 0, d.Name)
		assert.LessOrEqual(t, *d.Rating, 50, d.Name)
		assert.GreaterOrEqual(t, d.ConsultationFee, 0, d.Name)
		assert.NotEmpty(t, d.AvailableDays, d.Name)
		assert.NotEmpty(t, d.AvailableTimeSlots, d.Name)
	}
}
