package appointment

import (
	"context"

	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

// NewAppointment traz os campos do agendamento. Status vazio vira
// scheduled; ReasonForVisit nil continua nil.
type NewAppointment struct {
	DoctorID uint

	PatientFirstName   string
	PatientLastName    string
	PatientEmail       string
	PatientPhone       string
	PatientDateOfBirth string
	ReasonForVisit     *string

	AppointmentDate string
	AppointmentTime string

	Status Status
}

func (n NewAppointment) Slot() SlotKey {
	return NewSlotKey(n.DoctorID, n.AppointmentDate, n.AppointmentTime)
}

// NewDoctor traz os campos do seed. Rating nil usa DefaultRating.
type NewDoctor struct {
	Name       string
	Specialty  string
	Education  string
	Location   string
	Experience string

	Rating          *int
	ImageURL        string
	ConsultationFee int

	AvailableDays      []string
	AvailableTimeSlots []string
}

type DoctorRepository interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)

	GetDoctor(ctx context.Context, id uint) (*models.Doctor, error)

	SearchDoctors(ctx context.Context, specialty, location string) ([]models.Doctor, error)

	ListDoctorsBySpecialty(ctx context.Context, specialty string) ([]models.Doctor, error)

	CreateDoctor(ctx context.Context, in NewDoctor) (*models.Doctor, error)
}

type Repository interface {
	DoctorRepository

	// -------- Appointment (read) --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)

	ListAppointmentsByDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error)

	ListAppointmentsByPatient(ctx context.Context, email string) ([]models.AppointmentWithDoctor, error)

	// -------- Availability --------
	CheckSlotAvailability(ctx context.Context, slot SlotKey) (bool, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment insere sem checar o horário.
	CreateAppointment(ctx context.Context, in NewAppointment) (*models.Appointment, error)

	// BookAppointment checa o horário e insere na mesma seção crítica.
	BookAppointment(ctx context.Context, in NewAppointment) (*models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointmentStatus(ctx context.Context, id uint, status Status) (*models.Appointment, error)
}
