package models

// Doctor is a bookable provider. Rating is stored ×10 (49 means 4.9) and
// ConsultationFee in cents; both travel over the wire in that form.
type Doctor struct {
	ID uint `json:"id"`

	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	Experience string `json:"experience"`

	Rating          int    `json:"rating"`
	ImageURL        string `json:"imageUrl"`
	ConsultationFee int    `json:"consultationFee"`

	AvailableDays      []string `json:"availableDays"`
	AvailableTimeSlots []string `json:"availableTimeSlots"`
}

// Clone returns a copy that shares no slices with d.
func (d Doctor) Clone() Doctor {
	out := d
	out.AvailableDays = append([]string(nil), d.AvailableDays...)
	out.AvailableTimeSlots = append([]string(nil), d.AvailableTimeSlots...)
	return out
}
