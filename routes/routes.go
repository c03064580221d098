package routes

import (
	"net/http"
	"time"

	"caregrid/handlers"
	"caregrid/middleware"
	"caregrid/models"
	"caregrid/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers the handlers the router wires up.
type HandlerBundle struct {
	Schedule    *handlers.ScheduleHandler
	Appointment *handlers.AppointmentHandler
	Patient     *handlers.PatientHandler
}

// RegisterScheduleRoutes registers doctor schedule and availability endpoints.
func RegisterScheduleRoutes(api *gin.RouterGroup, hb *HandlerBundle) {
	doctors := api.Group("/doctors")
	{
		staff := models.StaffRoles()
		doctors.PUT("/:doctorId/schedule",
			middleware.RequireRoles(models.RoleDoctor, models.RoleAdmin), hb.Schedule.UpsertScheduleHandler)
		doctors.GET("/:doctorId/schedule",
			middleware.RequireRoles(staff...), hb.Schedule.GetScheduleHandler)
		doctors.GET("/:doctorId/availability",
			middleware.RequireRoles(staff...), hb.Schedule.GetAvailabilityHandler)
	}
}

// RegisterPatientRoutes registers patient registration, record, and
// appointment endpoints.
func RegisterPatientRoutes(api *gin.RouterGroup, hb *HandlerBundle) {
	api.POST("/register",
		middleware.RequireRoles(models.RoleClerk), hb.Patient.RegisterPatientHandler)

	records := api.Group("/records")
	{
		staff := models.StaffRoles()
		careTeam := []string{models.RoleDoctor, models.RoleNurse, models.RoleParamedic}

		records.GET("",
			middleware.RequireRoles(careTeam...), hb.Patient.GetPatientRecordsHandler)
		records.GET("/:id",
			middleware.RequireRoles(careTeam...), hb.Patient.GetPatientRecordHandler)

		records.POST("/:id/appointments",
			middleware.RequireRoles(models.RoleClerk), hb.Appointment.BookAppointmentHandler)
		records.GET("/:id/appointments",
			middleware.RequireRoles(staff...), hb.Appointment.ListPatientAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires up CORS, authentication, and every endpoint group.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.NoRoute(func(c *gin.Context) {
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	RegisterHealthRoute(r)

	api := r.Group("/api/patients")
	api.Use(middleware.JWTAuthMiddleware())

	RegisterScheduleRoutes(api, hb)
	RegisterPatientRoutes(api, hb)
}
