package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/doctor-booking/internal/audit"
	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	RequestID string

	DoctorID uint

	PatientFirstName   string
	PatientLastName    string
	PatientEmail       string
	PatientPhone       string
	PatientDateOfBirth string
	ReasonForVisit     *string

	AppointmentDate string
	AppointmentTime string

	Status string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit EventDispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit EventDispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute reserva o horário. Checagem e insert acontecem numa única
// operação do store; reserva concorrente recebe domain.ErrSlotUnavailable.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Status inicial
	// --------------------------------------------------
	if in.Status != "" && domain.Status(in.Status) != domain.InitialStatus() {
		return nil, httperr.ErrBusiness(domain.CodeInitialStatus)
	}

	// --------------------------------------------------
	// 2️⃣ Reserva
	// --------------------------------------------------
	ap, err := uc.repo.BookAppointment(ctx, domain.NewAppointment{
		DoctorID:           in.DoctorID,
		PatientFirstName:   in.PatientFirstName,
		PatientLastName:    in.PatientLastName,
		PatientEmail:       in.PatientEmail,
		PatientPhone:       in.PatientPhone,
		PatientDateOfBirth: in.PatientDateOfBirth,
		ReasonForVisit:     in.ReasonForVisit,
		AppointmentDate:    in.AppointmentDate,
		AppointmentTime:    in.AppointmentTime,
		Status:             domain.InitialStatus(),
	})

	if errors.Is(err, domain.ErrSlotUnavailable) {
		uc.audit.Dispatch(audit.Event{
			RequestID: in.RequestID,
			Action:    audit.ActionAppointmentConflict,
			Entity:    audit.EntityAppointment,
			Metadata: map[string]any{
				"doctorId":        in.DoctorID,
				"appointmentDate": in.AppointmentDate,
				"appointmentTime": in.AppointmentTime,
			},
		})
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		RequestID: in.RequestID,
		Action:    audit.ActionAppointmentCreated,
		Entity:    audit.EntityAppointment,
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"doctorId":        ap.DoctorID,
			"appointmentDate": ap.AppointmentDate,
			"appointmentTime": ap.AppointmentTime,
		},
	})

	return ap, nil
}
