package repository

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetActiveByID retrieves an active doctor by ID
func (r *DoctorRepository) GetActiveByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&doctor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// GetActiveByName retrieves an active doctor by exact name
func (r *DoctorRepository) GetActiveByName(ctx context.Context, name string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.WithContext(ctx).Where("full_name = ? AND is_active = ?", name, true).First(&doctor).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// GetByName retrieves a doctor by name regardless of state
func (r *DoctorRepository) GetByName(ctx context.Context, name string) (*models.Doctor, error) {
	var doctor models.Doctor
	if err := r.db.WithContext(ctx).Where("full_name = ?", name).First(&doctor).Error; err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// Create creates a new doctor
func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	return translate(r.db.WithContext(ctx).Create(doctor).Error)
}

// Reactivate marks a previously removed doctor active again
func (r *DoctorRepository) Reactivate(ctx context.Context, doctor *models.Doctor) error {
	doctor.IsActive = true
	return r.db.WithContext(ctx).Model(doctor).Updates(map[string]interface{}{
		"is_active":      true,
		"specialization": doctor.Specialization,
	}).Error
}

// ListActive retrieves all active doctors ordered by name
func (r *DoctorRepository) ListActive(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.WithContext(ctx).Where("is_active = ?", true).
		Order("full_name ASC").
		Find(&doctors).Error
	return doctors, err
}

// SoftDelete soft deletes a doctor by setting is_active to false
func (r *DoctorRepository) SoftDelete(ctx context.Context, id uint) error {
	return deactivate(ctx, r.db, &models.Doctor{}, id)
}
