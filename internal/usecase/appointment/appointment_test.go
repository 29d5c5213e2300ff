package appointment

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/doctor-booking/internal/audit"
	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
	"github.com/BruksfildServices01/doctor-booking/internal/infra/repository"
	"github.com/BruksfildServices01/doctor-booking/internal/seed"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []audit.Event
}

func (d *recordingDispatcher) Dispatch(ev audit.Event) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, ev)
	return true
}

func (d *recordingDispatcher) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.events))
	for _, ev := range d.events {
		out = append(out, ev.Action)
	}
	return out
}

func newStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	_, err := seed.Load(context.Background(), store)
	require.NoError(t, err)
	return store
}

func input() CreateAppointmentInput {
	return CreateAppointmentInput{
		RequestID:          "req-1",
		DoctorID:           1,
		PatientFirstName:   "Ana",
		PatientLastName:    "Souza",
		PatientEmail:       "ana@example.com",
		PatientPhone:       "5551234567",
		PatientDateOfBirth: "1990-05-01",
		AppointmentDate:    "2025-03-10",
		AppointmentTime:    "9:00 AM",
	}
}

func TestCreateAppointmentBooksAndAudits(t *testing.T) {
	store := newStore(t)
	events := &recordingDispatcher{}
	uc := NewCreateAppointment(store, events)

	ap, err := uc.Execute(context.Background(), input())
	require.NoError(t, err)
	assert.Equal(t, "scheduled", ap.Status)
	assert.Nil(t, ap.ReasonForVisit)

	_, err = uc.Execute(context.Background(), input())
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	assert.Equal(t, []string{
		audit.ActionAppointmentCreated,
		audit.ActionAppointmentConflict,
	}, events.actions())
	assert.Equal(t, "req-1", events.events[0].RequestID)
	assert.Equal(t, ap.ID, *events.events[0].EntityID)
}

func TestCreateAppointmentRejectsNonScheduledStatus(t *testing.T) {
	store := newStore(t)
	uc := NewCreateAppointment(store, &recordingDispatcher{})

	in := input()
	in.Status = "completed"
	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, domain.CodeInitialStatus))

	in.Status = "scheduled"
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateAppointmentUnknownDoctor(t *testing.T) {
	events := &recordingDispatcher{}
	uc := NewCreateAppointment(newStore(t), events)

	in := input()
	in.DoctorID = 404
	_, err := uc.Execute(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDoctorNotFound)
	assert.Empty(t, events.actions())
}

func TestUpdateStatusThenRebook(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	events := &recordingDispatcher{}
	create := NewCreateAppointment(store, events)
	update := NewUpdateAppointmentStatus(store, events)
	check := NewCheckAvailability(store)
	slot := domain.AvailabilityInput{DoctorID: 1, Date: "2025-03-10", Time: "9:00 AM"}

	ap, err := create.Execute(ctx, input())
	require.NoError(t, err)

	avail, err := check.Execute(ctx, slot)
	require.NoError(t, err)
	assert.False(t, avail.Available)

	updated, err := update.Execute(ctx, "req-2", ap.ID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "cancelled", updated.Status)

	avail, _ = check.Execute(ctx, slot)
	assert.True(t, avail.Available)

	_, err = create.Execute(ctx, input())
	require.NoError(t, err)

	assert.Contains(t, events.actions(), audit.ActionAppointmentStatusChanged)
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	update := NewUpdateAppointmentStatus(store, &recordingDispatcher{})

	_, err := update.Execute(ctx, "", 1, "cancelled")
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	_, err = update.Execute(ctx, "", 1, "done")
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidStatus))

	ap, err := NewCreateAppointment(store, &recordingDispatcher{}).Execute(ctx, input())
	require.NoError(t, err)
	_, err = update.Execute(ctx, "", ap.ID, "completed")
	require.NoError(t, err)

	_, err = update.Execute(ctx, "", ap.ID, "scheduled")
	assert.True(t, httperr.IsBusiness(err, domain.CodeInvalidTransition))
}

func TestListAppointmentsByPatientLogsOrphans(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	orphan := domain.NewAppointment{
		DoctorID:        99,
		PatientEmail:    "ana@example.com",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "9:00 AM",
	}
	_, err := store.CreateAppointment(ctx, orphan)
	require.NoError(t, err)

	var buf bytes.Buffer
	uc := NewListAppointmentsByPatient(store, zerolog.New(&buf))

	rows, err := uc.Execute(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Doctor)
	assert.Contains(t, buf.String(), "appointment references missing doctor")
}

func TestListAppointmentsByDoctor(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	_, err := NewCreateAppointment(store, &recordingDispatcher{}).Execute(ctx, input())
	require.NoError(t, err)

	rows, err := NewListAppointmentsByDoctor(store).Execute(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = NewListAppointmentsByDoctor(store).Execute(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
