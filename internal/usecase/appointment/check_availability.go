package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
)

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute é apenas consultivo; a reserva checa de novo dentro do store.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.Availability, error) {

	free, err := uc.repo.CheckSlotAvailability(ctx, in.Key())
	if err != nil {
		return domain.Availability{}, err
	}
	return domain.Availability{Available: free}, nil
}
