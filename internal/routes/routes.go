package routes

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/config"
	"github.com/vital110/doctor-portal-backend/internal/handler"
	"github.com/vital110/doctor-portal-backend/internal/middleware"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/internal/storage"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Services bundles the application services shared by the HTTP layer and
// the background cleanup
type Services struct {
	Auth           *service.AuthService
	Doctors        *service.DoctorService
	Appointments   *service.AppointmentService
	Registry       *service.RegistryService
	Staff          *service.StaffService
	Payments       *service.PaymentService
	MedicalRecords *service.MedicalRecordService
	Settings       *service.SettingsService
	Cleanup        *service.CleanupService
}

// NewServices wires repositories into services
func NewServices(db *gorm.DB, cfg *config.Config, store storage.FileStore, logger zerolog.Logger) *Services {
	clock := utils.NewClock(cfg.Clinic.Location)

	// Initialize repositories
	adminRepo := repository.NewAdminRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	leaveRepo := repository.NewLeaveRepo(db)
	holidayRepo := repository.NewHolidayRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)
	recordRepo := repository.NewMedicalRecordRepo(db)
	salaryRepo := repository.NewSalaryRepo(db)
	settingRepo := repository.NewSettingRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	doctors := service.NewDoctorService(doctorRepo, auditRepo)

	return &Services{
		Auth:           service.NewAuthService(adminRepo, patientRepo, auditRepo),
		Doctors:        doctors,
		Appointments:   service.NewAppointmentService(appointmentRepo, patientRepo, leaveRepo, doctors, auditRepo, clock),
		Registry:       service.NewRegistryService(holidayRepo, leaveRepo, doctors, auditRepo, clock),
		Staff:          service.NewStaffService(salaryRepo, auditRepo),
		Payments:       service.NewPaymentService(paymentRepo, patientRepo, appointmentRepo, auditRepo),
		MedicalRecords: service.NewMedicalRecordService(recordRepo, patientRepo, auditRepo, store, cfg.Storage.MaxUploadBytes, logger),
		Settings:       service.NewSettingsService(settingRepo, auditRepo),
		Cleanup:        service.NewCleanupService(appointmentRepo, clock, cfg.Cleanup.Interval, logger),
	}
}

// Setup builds the gin engine. ctx bounds background helpers such as the
// rate limiter's visitor eviction.
func Setup(ctx context.Context, cfg *config.Config, svc *Services, logger zerolog.Logger) *gin.Engine {
	utils.InitValidator()

	r := gin.New()
	r.MaxMultipartMemory = cfg.Storage.MaxUploadBytes

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimit(middleware.NewIPRateLimiter(ctx, rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)))

	// Register handlers
	authHandler := handler.NewAuthHandler(svc.Auth)
	doctorHandler := handler.NewDoctorHandler(svc.Doctors)
	appointmentHandler := handler.NewAppointmentHandler(svc.Appointments)
	registryHandler := handler.NewRegistryHandler(svc.Registry)
	staffHandler := handler.NewStaffHandler(svc.Staff)
	paymentHandler := handler.NewPaymentHandler(svc.Payments)
	recordHandler := handler.NewMedicalRecordHandler(svc.MedicalRecords)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)

	// Health check endpoints
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "doctor-portal-backend",
		})
	})
	r.GET("/", func(c *gin.Context) {
		utils.MessageResponse(c, "Clinic Management API is running")
	})

	api := r.Group("/api/auth")
	{
		// Accounts
		api.POST("/register-admin", authHandler.RegisterAdmin)
		api.POST("/login-admin", authHandler.LoginAdmin)
		api.POST("/register-patient", authHandler.RegisterPatient)
		api.POST("/login-patient", authHandler.LoginPatient)
		api.GET("/admin-list", authHandler.AdminList)
		api.GET("/admin-count", authHandler.AdminCount)
		api.GET("/all-patients", authHandler.AllPatients)

		// Doctors
		api.GET("/doctors", doctorHandler.ListDoctors)
		api.POST("/doctors", doctorHandler.CreateDoctor)
		api.DELETE("/doctors/:id", doctorHandler.RemoveDoctor)

		// Appointments
		api.POST("/book-appointment", appointmentHandler.BookAppointment)
		api.PUT("/update-appointment/:id", appointmentHandler.UpdateAppointment)
		api.GET("/patient-appointments/:patientId", appointmentHandler.PatientAppointments)
		api.GET("/today-appointments", appointmentHandler.TodayAppointments)
		api.GET("/admin-appointments-by-date", appointmentHandler.PreviousAppointments)
		api.GET("/all-appointments", appointmentHandler.AllAppointments)
		api.GET("/appointments-by-date", appointmentHandler.AppointmentCount)

		// Holidays and leaves
		api.GET("/holidays", registryHandler.ListHolidays)
		api.POST("/holidays", registryHandler.AddHoliday)
		api.DELETE("/holidays/:id", registryHandler.RemoveHoliday)
		api.GET("/check-holiday", registryHandler.CheckHoliday)
		api.GET("/doctor-leaves", registryHandler.ListDoctorLeaves)
		api.POST("/doctor-leaves", registryHandler.AddDoctorLeave)
		api.DELETE("/doctor-leaves/:id", registryHandler.RemoveDoctorLeave)
		api.GET("/check-doctor-leave", registryHandler.CheckDoctorLeave)
		api.GET("/admin-leaves", registryHandler.ListAdminLeaves)
		api.POST("/admin-leaves", registryHandler.AddAdminLeave)
		api.PUT("/admin-leaves/:id/status", registryHandler.ReviewAdminLeave)
		api.DELETE("/admin-leaves/:id", registryHandler.RemoveAdminLeave)

		// Salaries
		api.GET("/admin-salaries", staffHandler.ListSalaries)
		api.POST("/admin-salaries", staffHandler.AddSalary)
		api.DELETE("/admin-salaries/:id", staffHandler.RemoveSalary)

		// Payments
		api.POST("/payments", paymentHandler.RecordPayment)
		api.GET("/payments/:id", paymentHandler.GetPayment)
		api.PUT("/payments/:id/status", paymentHandler.UpdatePaymentStatus)
		api.GET("/patient-payments/:patientId", paymentHandler.PatientPayments)
		api.GET("/all-payments", paymentHandler.AllPayments)

		// Medical records
		api.POST("/upload-medical-record", recordHandler.UploadMedicalRecord)
		api.GET("/patient-medical-records/:patientId", recordHandler.PatientMedicalRecords)
		api.GET("/download-medical-record/:recordId", recordHandler.DownloadMedicalRecord)

		// Clinic settings
		api.GET("/clinic-settings", settingsHandler.GetSettings)
		api.POST("/clinic-settings", settingsHandler.UpdateWorkingHours)
		api.PUT("/clinic-settings/:key", settingsHandler.UpdateSetting)
	}

	return r
}
