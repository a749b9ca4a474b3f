package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/config"
	"github.com/vital110/doctor-portal-backend/internal/database"
	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/internal/storage"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow is "now" for every service under test: 15 June 2030, 10:00 UTC.
var fixedNow = time.Date(2030, time.June, 15, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db           *gorm.DB
	clock        utils.Clock
	store        *storage.LocalStore
	auditRepo    *repository.AuditRepository
	auth         *AuthService
	doctors      *DoctorService
	appointments *AppointmentService
	registry     *RegistryService
	staff        *StaffService
	payments     *PaymentService
	records      *MedicalRecordService
	settings     *SettingsService
	cleanup      *CleanupService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := database.Open(config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name),
	}, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	clock := utils.Clock{Location: time.UTC, Now: func() time.Time { return fixedNow }}
	store := storage.NewLocalStore(t.TempDir())
	log := zerolog.Nop()

	adminRepo := repository.NewAdminRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	appointmentRepo := repository.NewAppointmentRepo(db)
	leaveRepo := repository.NewLeaveRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	doctors := NewDoctorService(doctorRepo, auditRepo)
	payments := NewPaymentService(repository.NewPaymentRepo(db), patientRepo, appointmentRepo, auditRepo)
	payments.now = func() time.Time { return fixedNow }

	return &fixture{
		db:           db,
		clock:        clock,
		store:        store,
		auditRepo:    auditRepo,
		auth:         NewAuthService(adminRepo, patientRepo, auditRepo).WithHashCost(bcrypt.MinCost),
		doctors:      doctors,
		appointments: NewAppointmentService(appointmentRepo, patientRepo, leaveRepo, doctors, auditRepo, clock),
		registry:     NewRegistryService(repository.NewHolidayRepo(db), leaveRepo, doctors, auditRepo, clock),
		staff:        NewStaffService(repository.NewSalaryRepo(db), auditRepo),
		payments:     payments,
		records:      NewMedicalRecordService(repository.NewMedicalRecordRepo(db), patientRepo, auditRepo, store, 1<<20, log),
		settings:     NewSettingsService(repository.NewSettingRepo(db), auditRepo),
		cleanup:      NewCleanupService(appointmentRepo, clock, time.Hour, log),
	}
}

func (f *fixture) patient(t *testing.T, email string) *models.Patient {
	t.Helper()
	p, err := f.auth.RegisterPatient(context.Background(), "Pat "+email, email, "secret1")
	if err != nil {
		t.Fatalf("register patient: %v", err)
	}
	return p
}

func (f *fixture) doctor(t *testing.T, name string) *models.Doctor {
	t.Helper()
	d, err := f.doctors.CreateDoctor(context.Background(), name, "General")
	if err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return d
}

// seedAppointment inserts a row directly, bypassing the booking rules
func (f *fixture) seedAppointment(t *testing.T, patientID uint, doctor *models.Doctor, date, at string) *models.Appointment {
	t.Helper()
	day, err := utils.ParseDate(date)
	if err != nil {
		t.Fatal(err)
	}
	a := &models.Appointment{
		PatientID:       patientID,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.FullName,
		AppointmentDate: datatypes.Date(day),
		AppointmentTime: at,
		Reason:          "Routine checkup",
		Status:          models.AppointmentPending,
	}
	if err := f.db.Create(a).Error; err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return a
}

func (f *fixture) countAppointments(t *testing.T) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&models.Appointment{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func dateOf(d datatypes.Date) string {
	return utils.FormatDate(time.Time(d))
}
