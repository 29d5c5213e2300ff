package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/doctor-booking/internal/httperr"
	"github.com/BruksfildServices01/doctor-booking/internal/httpresp"
	"github.com/BruksfildServices01/doctor-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/doctor-booking/internal/usecase/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateAppointmentStatus
	listByEmail  *ucAppointment.ListAppointmentsByPatient
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateAppointmentStatus,
	listByEmail *ucAppointment.ListAppointmentsByPatient,
) *AppointmentHandler {
	validators.Register()

	return &AppointmentHandler{
		create:       create,
		updateStatus: updateStatus,
		listByEmail:  listByEmail,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	DoctorID           uint    `json:"doctorId" binding:"required"`
	PatientFirstName   string  `json:"patientFirstName" binding:"required"`
	PatientLastName    string  `json:"patientLastName" binding:"required"`
	PatientEmail       string  `json:"patientEmail" binding:"required,email"`
	PatientPhone       string  `json:"patientPhone" binding:"required,min=10"`
	PatientDateOfBirth string  `json:"patientDateOfBirth" binding:"required,datetime=2006-01-02"`
	ReasonForVisit     *string `json:"reasonForVisit"`
	AppointmentDate    string  `json:"appointmentDate" binding:"required,datetime=2006-01-02"`
	AppointmentTime    string  `json:"appointmentTime" binding:"required,timeslot"`
	Status             string  `json:"status" binding:"omitempty,oneof=scheduled"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Invalid appointment data.", validators.FieldErrors(err))
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		RequestID:          middleware.GetRequestID(c),
		DoctorID:           req.DoctorID,
		PatientFirstName:   req.PatientFirstName,
		PatientLastName:    req.PatientLastName,
		PatientEmail:       req.PatientEmail,
		PatientPhone:       req.PatientPhone,
		PatientDateOfBirth: req.PatientDateOfBirth,
		ReasonForVisit:     req.ReasonForVisit,
		AppointmentDate:    req.AppointmentDate,
		AppointmentTime:    req.AppointmentTime,
		Status:             req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByPatient(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email parameter is required.")
		return
	}

	rows, err := h.listByEmail.Execute(c.Request.Context(), email)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, rows)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Status is required.", validators.FieldErrors(err))
		return
	}

	ap, err := h.updateStatus.Execute(
		c.Request.Context(),
		middleware.GetRequestID(c),
		id,
		req.Status,
	)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
