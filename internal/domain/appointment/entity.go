package appointment

import (
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status pedida via PATCH.
func Transition(ap *models.Appointment, next Status) error {
	switch next {
	case StatusCancelled:
		return Cancel(ap)
	case StatusCompleted:
		return Complete(ap)
	default:
		return CanTransition(Status(ap.Status), next)
	}
}

// Cancel libera o horário do agendamento.
func Cancel(ap *models.Appointment) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCancelled)
	return nil
}

// Complete marca o atendimento como realizado; o horário segue ocupado.
func Complete(ap *models.Appointment) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}
	ap.Status = string(StatusCompleted)
	return nil
}

