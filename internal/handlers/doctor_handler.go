package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
	"github.com/BruksfildServices01/doctor-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/doctor-booking/internal/usecase/appointment"
)

type DoctorHandler struct {
	doctors          domain.DoctorRepository
	listAppointments *ucAppointment.ListAppointmentsByDoctor
	availability     *ucAppointment.CheckAvailability
}

func NewDoctorHandler(
	doctors domain.DoctorRepository,
	listAppointments *ucAppointment.ListAppointmentsByDoctor,
	availability *ucAppointment.CheckAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		doctors:          doctors,
		listAppointments: listAppointments,
		availability:     availability,
	}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Search(c *gin.Context) {
	doctors, err := h.doctors.SearchDoctors(
		c.Request.Context(),
		c.Query("specialty"),
		c.Query("location"),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doctor, err := h.doctors.GetDoctor(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, doctor)
}

func (h *DoctorHandler) ListAppointments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	appointments, err := h.listAppointments.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, appointments)
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	date := c.Query("date")
	slot := c.Query("time")
	if date == "" || slot == "" {
		httperr.BadRequest(c, "missing_params", "Date and time are required.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		DoctorID: id,
		Date:     date,
		Time:     slot,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}
