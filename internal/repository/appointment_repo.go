package repository

import (
	"context"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// AppointmentFilter narrows appointment listings. From/To bound
// appointment_date as a half-open range; Before excludes that date and
// everything after it. Zero values mean no bound.
type AppointmentFilter struct {
	From   time.Time
	To     time.Time
	Before time.Time
}

func (f AppointmentFilter) apply(q *gorm.DB) *gorm.DB {
	if !f.From.IsZero() {
		q = q.Where("appointment_date >= ?", datatypes.Date(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where("appointment_date < ?", datatypes.Date(f.To))
	}
	if !f.Before.IsZero() {
		q = q.Where("appointment_date < ?", datatypes.Date(f.Before))
	}
	return q
}

// Create inserts a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// UpdateStatus overwrites the status of an appointment
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ListByPatient retrieves a patient's appointments, newest first
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Order("id DESC").
		Find(&appointments).Error
	return appointments, err
}

// ListForDay retrieves the appointments of one calendar day in time order,
// with the patient preloaded
func (r *AppointmentRepository) ListForDay(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	q := AppointmentFilter{From: day, To: day.AddDate(0, 0, 1)}.apply(r.db.WithContext(ctx))
	err := q.Preload("Patient").
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

// List retrieves appointments matching the filter, newest date first and
// time ascending within a day, with the patient preloaded
func (r *AppointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	var appointments []models.Appointment
	q := filter.apply(r.db.WithContext(ctx))
	err := q.Preload("Patient").
		Order("appointment_date DESC").
		Order("appointment_time ASC").
		Find(&appointments).Error
	return appointments, err
}

// Count returns the number of appointments matching the filter
func (r *AppointmentRepository) Count(ctx context.Context, filter AppointmentFilter) (int64, error) {
	var count int64
	q := filter.apply(r.db.WithContext(ctx).Model(&models.Appointment{}))
	err := q.Count(&count).Error
	return count, err
}

// DeleteBefore removes every appointment dated before cutoff. Payments that
// referenced them are detached first so the payment history survives on
// databases without ON DELETE SET NULL enforcement.
func (r *AppointmentRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale := tx.Model(&models.Appointment{}).
			Select("id").
			Where("appointment_date < ?", datatypes.Date(cutoff))

		if err := tx.Model(&models.Payment{}).
			Where("appointment_id IN (?)", stale).
			Update("appointment_id", nil).Error; err != nil {
			return err
		}

		res := tx.Where("appointment_date < ?", datatypes.Date(cutoff)).Delete(&models.Appointment{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}
