package appointment

import (
	"context"

	"github.com/BruksfildServices01/doctor-booking/internal/audit"
	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit EventDispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit EventDispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	requestID string,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	next, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.UpdateAppointmentStatus(ctx, appointmentID, next)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		RequestID: requestID,
		Action:    audit.ActionAppointmentStatusChanged,
		Entity:    audit.EntityAppointment,
		EntityID:  &ap.ID,
		Metadata:  map[string]any{"status": ap.Status},
	})

	return ap, nil
}
