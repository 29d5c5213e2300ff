package appointment

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotUnavailable     = errors.New("time slot unavailable")
)

// Códigos de erro de negócio enviados ao cliente.
const (
	CodeInvalidStatus     = "invalid_status"
	CodeInvalidTransition = "invalid_status_transition"
	CodeDoctorNotFound    = "doctor_not_found"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeInitialStatus     = "invalid_initial_status"
)

var ErrInvalidDoctor = errors.New("invalid doctor")

const (
	DefaultRating = 50
	MaxRating     = 50
)
