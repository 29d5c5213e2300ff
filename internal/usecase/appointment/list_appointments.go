package appointment

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

type ListAppointmentsByDoctor struct {
	repo domain.Repository
}

func NewListAppointmentsByDoctor(repo domain.Repository) *ListAppointmentsByDoctor {
	return &ListAppointmentsByDoctor{repo: repo}
}

func (uc *ListAppointmentsByDoctor) Execute(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsByDoctor(ctx, doctorID)
}

type ListAppointmentsByPatient struct {
	repo domain.Repository
	log  zerolog.Logger
}

func NewListAppointmentsByPatient(
	repo domain.Repository,
	log zerolog.Logger,
) *ListAppointmentsByPatient {
	return &ListAppointmentsByPatient{
		repo: repo,
		log:  log,
	}
}

// Execute devolve o histórico do paciente. Linhas sem médico resolvido
// ficam no resultado com doctor nil e geram log de aviso.
func (uc *ListAppointmentsByPatient) Execute(
	ctx context.Context,
	email string,
) ([]models.AppointmentWithDoctor, error) {

	rows, err := uc.repo.ListAppointmentsByPatient(ctx, email)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		if row.Doctor == nil {
			uc.log.Warn().
				Uint("appointment_id", row.ID).
				Uint("doctor_id", row.DoctorID).
				Msg("appointment references missing doctor")
		}
	}

	return rows, nil
}
