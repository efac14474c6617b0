package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openclinic/hms/internal/config"
	v1 "github.com/openclinic/hms/internal/handler/v1"
	"github.com/openclinic/hms/internal/service"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/auth"
	"github.com/openclinic/hms/pkg/metrics"
	"go.uber.org/zap"
)

type Services struct {
	Auth          *service.AuthService
	Patients      *service.PatientService
	Appointments  *service.AppointmentService
	Records       *service.MedicalRecordService
	Prescriptions *service.PrescriptionService
	Staff         *service.StaffService
	Tasks         *service.TaskService
}

// NewRouter wires middleware and every API route. The store is passed for
// the read-only activity-log surface.
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	collector *metrics.Collector,
	jwtManager *auth.JWTManager,
	st *store.Store,
	svcs Services,
) *gin.Engine {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))
	r.Use(Metrics(collector))
	r.Use(CORS(cfg.CORS))
	r.Use(RateLimit(cfg.RateLimit))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": cfg.App.Version})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	authHandler := v1.NewAuthHandler(svcs.Auth)
	patientHandler := v1.NewPatientHandler(svcs.Patients)
	appointmentHandler := v1.NewAppointmentHandler(svcs.Appointments)
	recordHandler := v1.NewMedicalRecordHandler(svcs.Records)
	prescriptionHandler := v1.NewPrescriptionHandler(svcs.Prescriptions)
	staffHandler := v1.NewStaffHandler(svcs.Staff)
	taskHandler := v1.NewTaskHandler(svcs.Tasks)
	activityHandler := v1.NewActivityHandler(st)

	api := r.Group("/api")

	// Credential endpoints sit outside the session gate.
	authGroup := api.Group("/auth")
	authGroup.Use(AuthRateLimit(cfg.RateLimit))
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)

	protected := api.Group("")
	protected.Use(Authenticated(jwtManager))

	protected.GET("/auth/me", authHandler.Me)
	protected.POST("/auth/logout", authHandler.Logout)
	protected.POST("/auth/change-password", authHandler.ChangePassword)

	protected.GET("/users", staffHandler.ListUsers)
	protected.GET("/users/:id", staffHandler.GetUser)
	protected.GET("/users/username/:username", staffHandler.GetUserByUsername)
	protected.PATCH("/users/:id", staffHandler.UpdateUser)

	protected.GET("/patients", patientHandler.List)
	protected.GET("/patients/:id", patientHandler.Get)
	protected.GET("/patients/lookup/:patientId", patientHandler.Lookup)
	protected.POST("/patients", patientHandler.Create)
	protected.PATCH("/patients/:id", patientHandler.Update)

	protected.GET("/appointments", appointmentHandler.List)
	protected.GET("/appointments/:id", appointmentHandler.Get)
	protected.POST("/appointments", appointmentHandler.Create)
	protected.PATCH("/appointments/:id", appointmentHandler.Update)
	protected.GET("/appointments/doctor/:doctorId", appointmentHandler.ListByDoctor)
	protected.GET("/appointments/patient/:patientId", appointmentHandler.ListByPatient)

	protected.GET("/medical-records", recordHandler.List)
	protected.GET("/medical-records/:id", recordHandler.Get)
	protected.POST("/medical-records", recordHandler.Create)
	protected.PATCH("/medical-records/:id", recordHandler.Update)
	protected.GET("/medical-records/patient/:patientId", recordHandler.ListByPatient)

	protected.GET("/prescriptions", prescriptionHandler.List)
	protected.GET("/prescriptions/:id", prescriptionHandler.Get)
	protected.POST("/prescriptions", prescriptionHandler.Create)
	protected.PATCH("/prescriptions/:id", prescriptionHandler.Update)
	protected.GET("/prescriptions/patient/:patientId", prescriptionHandler.ListByPatient)

	protected.GET("/departments", staffHandler.ListDepartments)
	protected.GET("/departments/:id", staffHandler.GetDepartment)
	protected.POST("/departments", staffHandler.CreateDepartment)
	protected.PATCH("/departments/:id", staffHandler.UpdateDepartment)

	protected.GET("/tasks", taskHandler.List)
	protected.GET("/tasks/:id", taskHandler.Get)
	protected.POST("/tasks", taskHandler.Create)
	protected.PATCH("/tasks/:id", taskHandler.Update)
	protected.GET("/tasks/user/:userId", taskHandler.ListByUser)

	protected.GET("/activity-logs", activityHandler.List)
	protected.POST("/activity-logs", activityHandler.Create)
	protected.GET("/activity-logs/recent", activityHandler.Recent)
	protected.GET("/activity-logs/:id", activityHandler.Get)

	return r
}
