package seed

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/models"
)

func rating(r int) *int { return &r }

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// Doctors is the sample catalog loaded at startup.
func Doctors() []domain.NewDoctor {
	return []domain.NewDoctor{
		{
			Name:            "Dr. Sarah Johnson",
			Specialty:       "Cardiologist",
			Education:       "Harvard Medical School",
			Location:        "Downtown Medical Center",
			Experience:      "15+ years experience",
			Rating:          rating(49),
			ImageURL:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ConsultationFee: 15000,
			AvailableDays:   append([]string(nil), weekdays...),
			AvailableTimeSlots: []string{
				"9:00 AM", "10:30 AM", "11:00 AM", "2:30 PM", "3:00 PM", "4:30 PM",
			},
		},
		{
			Name:            "Dr. Michael Chen",
			Specialty:       "Pediatrician",
			Education:       "Johns Hopkins University",
			Location:        "Children's Healthcare Center",
			Experience:      "12+ years experience",
			Rating:          rating(48),
			ImageURL:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ConsultationFee: 12000,
			AvailableDays:   append([]string(nil), weekdays...),
			AvailableTimeSlots: []string{
				"8:00 AM", "9:30 AM", "10:00 AM", "11:30 AM", "2:00 PM", "3:30 PM",
			},
		},
		{
			Name:            "Dr. Emily Rodriguez",
			Specialty:       "Dermatologist",
			Education:       "Stanford Medical School",
			Location:        "Advanced Skin Care Clinic",
			Experience:      "10+ years experience",
			Rating:          rating(49),
			ImageURL:        "https://images.unsplash.com/photo-1594824720693-b9aca4e8b57b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ConsultationFee: 18000,
			AvailableDays:   []string{"tuesday", "wednesday", "thursday", "friday", "saturday"},
			AvailableTimeSlots: []string{
				"9:00 AM", "10:00 AM", "11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM",
			},
		},
		{
			Name:            "Dr. James Wilson",
			Specialty:       "General Practice",
			Education:       "UCLA Medical School",
			Location:        "Community Health Center",
			Experience:      "8+ years experience",
			Rating:          rating(46),
			ImageURL:        "https://images.unsplash.com/photo-1582750433449-648ed127bb54?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ConsultationFee: 10000,
			AvailableDays:   append([]string(nil), weekdays...),
			AvailableTimeSlots: []string{
				"8:30 AM", "9:30 AM", "10:30 AM", "1:30 PM", "2:30 PM", "3:30 PM",
			},
		},
		{
			Name:               "Dr. Lisa Anderson",
			Specialty:          "Orthopedics",
			Education:          "Mayo Clinic Medical School",
			Location:           "Sports Medicine Institute",
			Experience:         "18+ years experience",
			Rating:             rating(50),
			ImageURL:           "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			ConsultationFee:    20000,
			AvailableDays:      []string{"monday", "wednesday", "thursday", "friday"},
			AvailableTimeSlots: []string{"9:00 AM", "10:30 AM", "2:00 PM", "3:30 PM"},
		},
	}
}

// Load inserts every sample doctor through repo, in order.
func Load(ctx context.Context, repo domain.DoctorRepository) ([]models.Doctor, error) {
	list := Doctors()
	out := make([]models.Doctor, 0, len(list))
	for _, d := range list {
		created, err := repo.CreateDoctor(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", d.Name, err)
		}
		out = append(out, *created)
	}
	return out, nil
}
