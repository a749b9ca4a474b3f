package repository

import (
	"context"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LeaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepo(db *gorm.DB) *LeaveRepository {
	return &LeaveRepository{db: db}
}

// CreateDoctorLeave inserts a new doctor leave
func (r *LeaveRepository) CreateDoctorLeave(ctx context.Context, leave *models.DoctorLeave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

// FindActiveDoctorLeave returns the active leave of a doctor on a date
func (r *LeaveRepository) FindActiveDoctorLeave(ctx context.Context, doctorID uint, date time.Time) (*models.DoctorLeave, error) {
	var leave models.DoctorLeave
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND leave_date = ? AND is_active = ?", doctorID, datatypes.Date(date), true).
		First(&leave).Error
	if err != nil {
		return nil, translate(err)
	}
	return &leave, nil
}

// ListActiveDoctorLeaves retrieves all active doctor leaves by date
func (r *LeaveRepository) ListActiveDoctorLeaves(ctx context.Context) ([]models.DoctorLeave, error) {
	var leaves []models.DoctorLeave
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("leave_date ASC").
		Find(&leaves).Error
	return leaves, err
}

// GetDoctorLeaveByID retrieves a doctor leave regardless of state
func (r *LeaveRepository) GetDoctorLeaveByID(ctx context.Context, id uint) (*models.DoctorLeave, error) {
	var leave models.DoctorLeave
	if err := r.db.WithContext(ctx).First(&leave, id).Error; err != nil {
		return nil, translate(err)
	}
	return &leave, nil
}

// DeactivateDoctorLeave soft deletes a doctor leave
func (r *LeaveRepository) DeactivateDoctorLeave(ctx context.Context, id uint) error {
	return deactivate(ctx, r.db, &models.DoctorLeave{}, id)
}

// CreateAdminLeave inserts a new admin leave
func (r *LeaveRepository) CreateAdminLeave(ctx context.Context, leave *models.AdminLeave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

// ListActiveAdminLeaves retrieves all active admin leaves by date
func (r *LeaveRepository) ListActiveAdminLeaves(ctx context.Context) ([]models.AdminLeave, error) {
	var leaves []models.AdminLeave
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("leave_date ASC").
		Find(&leaves).Error
	return leaves, err
}

// GetActiveAdminLeave retrieves an active admin leave by ID
func (r *LeaveRepository) GetActiveAdminLeave(ctx context.Context, id uint) (*models.AdminLeave, error) {
	var leave models.AdminLeave
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&leave).Error
	if err != nil {
		return nil, translate(err)
	}
	return &leave, nil
}

// UpdateAdminLeaveStatus sets the review status of an admin leave
func (r *LeaveRepository) UpdateAdminLeaveStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Model(&models.AdminLeave{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// DeactivateAdminLeave soft deletes an admin leave
func (r *LeaveRepository) DeactivateAdminLeave(ctx context.Context, id uint) error {
	return deactivate(ctx, r.db, &models.AdminLeave{}, id)
}

type HolidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepo(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

// Create inserts a new holiday
func (r *HolidayRepository) Create(ctx context.Context, holiday *models.Holiday) error {
	return r.db.WithContext(ctx).Create(holiday).Error
}

// ListActive retrieves all active holidays by date
func (r *HolidayRepository) ListActive(ctx context.Context) ([]models.Holiday, error) {
	var holidays []models.Holiday
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("date ASC").
		Find(&holidays).Error
	return holidays, err
}

// FindActiveOn returns the active holiday on a date
func (r *HolidayRepository) FindActiveOn(ctx context.Context, date time.Time) (*models.Holiday, error) {
	var holiday models.Holiday
	err := r.db.WithContext(ctx).
		Where("date = ? AND is_active = ?", datatypes.Date(date), true).
		First(&holiday).Error
	if err != nil {
		return nil, translate(err)
	}
	return &holiday, nil
}

// GetByID retrieves a holiday regardless of state
func (r *HolidayRepository) GetByID(ctx context.Context, id uint) (*models.Holiday, error) {
	var holiday models.Holiday
	if err := r.db.WithContext(ctx).First(&holiday, id).Error; err != nil {
		return nil, translate(err)
	}
	return &holiday, nil
}

// Deactivate soft deletes a holiday
func (r *HolidayRepository) Deactivate(ctx context.Context, id uint) error {
	return deactivate(ctx, r.db, &models.Holiday{}, id)
}
