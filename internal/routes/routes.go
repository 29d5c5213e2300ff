package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/doctor-booking/internal/config"
	domain "github.com/BruksfildServices01/doctor-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/doctor-booking/internal/handlers"
	"github.com/BruksfildServices01/doctor-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/doctor-booking/internal/usecase/appointment"
)

type Deps struct {
	Config *config.Config
	Repo   domain.Repository
	Audit  ucAppointment.EventDispatcher
	Logger zerolog.Logger
}

// NewRouter builds the engine with the global middleware chain, the
// health probe and the API routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()

	var origins []string
	if deps.Config != nil {
		origins = deps.Config.CORSOrigins
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORSMiddleware(origins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(deps.Repo, deps.Audit)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(deps.Repo, deps.Audit)
	listByPatientUC := ucAppointment.NewListAppointmentsByPatient(deps.Repo, deps.Logger)
	listByDoctorUC := ucAppointment.NewListAppointmentsByDoctor(deps.Repo)
	availabilityUC := ucAppointment.NewCheckAvailability(deps.Repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	doctorHandler := handlers.NewDoctorHandler(deps.Repo, listByDoctorUC, availabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateStatusUC,
		listByPatientUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		doctors := api.Group("/doctors")
		{
			doctors.GET("", doctorHandler.List)
			doctors.GET("/search", doctorHandler.Search)
			doctors.GET("/:id", doctorHandler.Get)
			doctors.GET("/:id/appointments", doctorHandler.ListAppointments)
			doctors.GET("/:id/availability", doctorHandler.Availability)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentHandler.Create)
			appointments.GET("", appointmentHandler.ListByPatient)
			appointments.PATCH("/:id", appointmentHandler.UpdateStatus)
		}
	}
}
