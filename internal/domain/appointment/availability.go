package appointment

import (
	"strings"
	"time"
)

// TimeSlotLayout é o formato dos rótulos de horário, ex. "9:00 AM".
const TimeSlotLayout = "3:04 PM"

// CanonicalTimeSlot normaliza o rótulo ("09:00 AM" -> "9:00 AM").
// Rótulos que não fazem parse voltam sem alteração.
func CanonicalTimeSlot(label string) string {
	t, err := time.Parse(TimeSlotLayout, strings.TrimSpace(label))
	if err != nil {
		return label
	}
	return t.Format(TimeSlotLayout)
}

// SlotKey identifica o horário ocupado por um agendamento ativo.
type SlotKey struct {
	DoctorID uint
	Date     string
	Time     string
}

func NewSlotKey(doctorID uint, date, label string) SlotKey {
	return SlotKey{DoctorID: doctorID, Date: date, Time: CanonicalTimeSlot(label)}
}

type AvailabilityInput struct {
	DoctorID uint
	Date     string
	Time     string
}

func (in AvailabilityInput) Key() SlotKey {
	return NewSlotKey(in.DoctorID, in.Date, in.Time)
}

type Availability struct {
	Available bool `json:"available"`
}
