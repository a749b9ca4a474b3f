package repository

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/gorm"
)

type MedicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepo(db *gorm.DB) *MedicalRecordRepository {
	return &MedicalRecordRepository{db: db}
}

// Create inserts medical record metadata
func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID retrieves a medical record by ID
func (r *MedicalRecordRepository) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, translate(err)
	}
	return &record, nil
}

// ListByPatient retrieves a patient's records, newest first
func (r *MedicalRecordRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}

// Count returns the number of stored medical records
func (r *MedicalRecordRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MedicalRecord{}).Count(&count).Error
	return count, err
}
