package models

import "time"

type Appointment struct {
	ID uint `json:"id"`

	DoctorID uint `json:"doctorId"`

	PatientFirstName   string  `json:"patientFirstName"`
	PatientLastName    string  `json:"patientLastName"`
	PatientEmail       string  `json:"patientEmail"`
	PatientPhone       string  `json:"patientPhone"`
	PatientDateOfBirth string  `json:"patientDateOfBirth"`
	ReasonForVisit     *string `json:"reasonForVisit"`

	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`

	Status string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a copy that does not alias the reason pointer.
func (a Appointment) Clone() Appointment {
	out := a
	if a.ReasonForVisit != nil {
		r := *a.ReasonForVisit
		out.ReasonForVisit = &r
	}
	return out
}

// AppointmentWithDoctor is an appointment joined with the doctor it
// references. Doctor is nil when the reference cannot be resolved.
type AppointmentWithDoctor struct {
	Appointment
	Doctor *Doctor `json:"doctor"`
}
