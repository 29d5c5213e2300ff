package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
)

// writeError maps domain and business errors to responses. Anything it
// does not recognise is attached to the context for the request logger and
// answered with a bare 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrDoctorNotFound):
		httperr.NotFound(c, domain.CodeDoctorNotFound, "Doctor not found.")
		return
	case errors.Is(err, domain.ErrAppointmentNotFound):
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	case errors.Is(err, domain.ErrSlotUnavailable):
		httperr.Conflict(c, domain.CodeSlotUnavailable, "The selected time slot is no longer available.")
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		switch code {
		case domain.CodeInvalidStatus:
			httperr.BadRequest(c, code, "Status must be one of scheduled, completed, cancelled.")
			return
		case domain.CodeInitialStatus:
			httperr.BadRequest(c, code, "New appointments must be scheduled.")
			return
		case domain.CodeInvalidTransition:
			httperr.Conflict(c, code, "Only scheduled appointments can be completed or cancelled.")
			return
		}
	}

	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Something went wrong.")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(id), true
}

