package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
	"github.com/BruksfildServices01/doctor-booking/internal/timezone"
)

// SpecialtyPlaceholder is the unselected value of the search form's
// specialty picker; it never filters.
const SpecialtyPlaceholder = "Select specialty..."

// MemoryStore owns every doctor and appointment record. All reads hand out
// copies. One RWMutex guards the maps, the insertion order and both id
// counters.
type MemoryStore struct {
	mu sync.RWMutex

	doctors     map[uint]models.Doctor
	doctorOrder []uint

	appointments     map[uint]models.Appointment
	appointmentOrder []uint

	doctorSeq      uint
	appointmentSeq uint

	now func() time.Time
}

type Option func(*MemoryStore)

// WithClock sets the source of createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		s.now = now
	}
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		doctors:      make(map[uint]models.Doctor),
		appointments: make(map[uint]models.Appointment),
		now:          timezone.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

func (s *MemoryStore) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.filterDoctors(func(models.Doctor) bool { return true }), nil
}

func (s *MemoryStore) GetDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	out := d.Clone()
	return &out, nil
}

func (s *MemoryStore) SearchDoctors(
	ctx context.Context,
	specialty string,
	location string,
) ([]models.Doctor, error) {

	filterSpecialty := specialty != "" && specialty != SpecialtyPlaceholder
	sq := strings.ToLower(specialty)
	lq := strings.ToLower(location)

	return s.filterDoctors(func(d models.Doctor) bool {
		if filterSpecialty && !strings.Contains(strings.ToLower(d.Specialty), sq) {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(d.Location), lq) {
			return false
		}
		return true
	}), nil
}

func (s *MemoryStore) ListDoctorsBySpecialty(
	ctx context.Context,
	specialty string,
) ([]models.Doctor, error) {

	q := strings.ToLower(specialty)
	return s.filterDoctors(func(d models.Doctor) bool {
		return strings.Contains(strings.ToLower(d.Specialty), q)
	}), nil
}

func (s *MemoryStore) CreateDoctor(
	ctx context.Context,
	in domain.NewDoctor,
) (*models.Doctor, error) {

	rating := domain.DefaultRating
	if in.Rating != nil {
		rating = *in.Rating
	}

	switch {
	case rating < 0 || rating > domain.MaxRating:
		return nil, fmt.Errorf("%w: rating %d out of range", domain.ErrInvalidDoctor, rating)
	case in.ConsultationFee < 0:
		return nil, fmt.Errorf("%w: negative consultation fee", domain.ErrInvalidDoctor)
	case len(in.AvailableDays) == 0:
		return nil, fmt.Errorf("%w: no available days", domain.ErrInvalidDoctor)
	case len(in.AvailableTimeSlots) == 0:
		return nil, fmt.Errorf("%w: no available time slots", domain.ErrInvalidDoctor)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doctorSeq++
	d := models.Doctor{
		ID:              s.doctorSeq,
		Name:            in.Name,
		Specialty:       in.Specialty,
		Education:       in.Education,
		Location:        in.Location,
		Experience:      in.Experience,
		Rating:          rating,
		ImageURL:        in.ImageURL,
		ConsultationFee: in.ConsultationFee,
	}
	d.AvailableDays = append([]string(nil), in.AvailableDays...)
	d.AvailableTimeSlots = append([]string(nil), in.AvailableTimeSlots...)

	s.doctors[d.ID] = d
	s.doctorOrder = append(s.doctorOrder, d.ID)

	out := d.Clone()
	return &out, nil
}

func (s *MemoryStore) filterDoctors(keep func(models.Doctor) bool) []models.Doctor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Doctor, 0, len(s.doctorOrder))
	for _, id := range s.doctorOrder {
		d := s.doctors[id]
		if keep(d) {
			out = append(out, d.Clone())
		}
	}
	return out
}

// --------------------------------------------------
// Appointments (read)
// --------------------------------------------------

func (s *MemoryStore) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.filterAppointments(func(models.Appointment) bool { return true }), nil
}

func (s *MemoryStore) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	out := ap.Clone()
	return &out, nil
}

func (s *MemoryStore) ListAppointmentsByDoctor(
	ctx context.Context,
	doctorID uint,
) ([]models.Appointment, error) {

	return s.filterAppointments(func(ap models.Appointment) bool {
		return ap.DoctorID == doctorID
	}), nil
}

// ListAppointmentsByPatient matches email exactly. An appointment whose
// doctor is missing is kept with a nil Doctor.
func (s *MemoryStore) ListAppointmentsByPatient(
	ctx context.Context,
	email string,
) ([]models.AppointmentWithDoctor, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AppointmentWithDoctor, 0)
	for _, id := range s.appointmentOrder {
		ap := s.appointments[id]
		if ap.PatientEmail != email {
			continue
		}

		row := models.AppointmentWithDoctor{Appointment: ap.Clone()}
		if d, ok := s.doctors[ap.DoctorID]; ok {
			doc := d.Clone()
			row.Doctor = &doc
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *MemoryStore) filterAppointments(keep func(models.Appointment) bool) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, id := range s.appointmentOrder {
		ap := s.appointments[id]
		if keep(ap) {
			out = append(out, ap.Clone())
		}
	}
	return out
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (s *MemoryStore) CheckSlotAvailability(
	ctx context.Context,
	slot domain.SlotKey,
) (bool, error) {

	slot = domain.NewSlotKey(slot.DoctorID, slot.Date, slot.Time)

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.slotFreeLocked(slot), nil
}

func (s *MemoryStore) slotFreeLocked(slot domain.SlotKey) bool {
	for _, ap := range s.appointments {
		if ap.DoctorID == slot.DoctorID &&
			ap.AppointmentDate == slot.Date &&
			ap.AppointmentTime == slot.Time &&
			domain.Status(ap.Status).IsActive() {
			return false
		}
	}
	return true
}

// --------------------------------------------------
// Appointments (create / conflict)
// --------------------------------------------------

func (s *MemoryStore) CreateAppointment(
	ctx context.Context,
	in domain.NewAppointment,
) (*models.Appointment, error) {

	status, err := initialStatus(in.Status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(in, status), nil
}

func (s *MemoryStore) BookAppointment(
	ctx context.Context,
	in domain.NewAppointment,
) (*models.Appointment, error) {

	status, err := initialStatus(in.Status)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.doctors[in.DoctorID]; !ok {
		return nil, domain.ErrDoctorNotFound
	}

	if status.IsActive() && !s.slotFreeLocked(in.Slot()) {
		return nil, domain.ErrSlotUnavailable
	}

	return s.insertLocked(in, status), nil
}

func (s *MemoryStore) insertLocked(
	in domain.NewAppointment,
	status domain.Status,
) *models.Appointment {

	slot := in.Slot()

	s.appointmentSeq++
	ap := models.Appointment{
		ID:                 s.appointmentSeq,
		DoctorID:           in.DoctorID,
		PatientFirstName:   in.PatientFirstName,
		PatientLastName:    in.PatientLastName,
		PatientEmail:       in.PatientEmail,
		PatientPhone:       in.PatientPhone,
		PatientDateOfBirth: in.PatientDateOfBirth,
		ReasonForVisit:     in.ReasonForVisit,
		AppointmentDate:    slot.Date,
		AppointmentTime:    slot.Time,
		Status:             string(status),
		CreatedAt:          s.now(),
	}
	ap = ap.Clone()

	s.appointments[ap.ID] = ap
	s.appointmentOrder = append(s.appointmentOrder, ap.ID)

	out := ap.Clone()
	return &out
}

func initialStatus(s domain.Status) (domain.Status, error) {
	if s == "" {
		return domain.InitialStatus(), nil
	}
	return domain.ParseStatus(string(s))
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

// UpdateAppointmentStatus applies a lifecycle transition atomically.
func (s *MemoryStore) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) (*models.Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}

	if err := domain.Transition(&ap, status); err != nil {
		return nil, err
	}

	s.appointments[id] = ap

	out := ap.Clone()
	return &out, nil
}

// Compile-time check
var _ domain.Repository = (*MemoryStore)(nil)
