package appointment

import "github.com/BruksfildServices01/doctor-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsActive indica se o agendamento ainda ocupa o horário.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus rejeita status fora do conjunto fechado.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", httperr.Businessf(CodeInvalidStatus, "unknown status %q", raw)
	}
	return s, nil
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.Businessf(CodeInvalidTransition, "cannot cancel %s appointment", current)
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.Businessf(CodeInvalidTransition, "cannot complete %s appointment", current)
	}
	return nil
}

// CanTransition valida qualquer mudança de status: só agendamentos
// scheduled mudam, e só para completed ou cancelled.
func CanTransition(current, next Status) error {
	if !next.Valid() {
		return httperr.ErrBusiness(CodeInvalidStatus)
	}
	switch next {
	case StatusCancelled:
		return CanCancel(current)
	case StatusCompleted:
		return CanComplete(current)
	default:
		return httperr.Businessf(CodeInvalidTransition, "%s -> %s", current, next)
	}
}

func InitialStatus() Status {
	return StatusScheduled
}
