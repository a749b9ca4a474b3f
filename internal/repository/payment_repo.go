package repository

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create inserts a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// GetByID retrieves a payment by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

// ListByPatient retrieves a patient's payments, newest first
func (r *PaymentRepository) ListByPatient(ctx context.Context, patientID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).Where("patient_id = ?", patientID).
		Order("payment_date DESC").
		Order("id DESC").
		Find(&payments).Error
	return payments, err
}

// ListAll retrieves every payment, newest first
func (r *PaymentRepository) ListAll(ctx context.Context) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.WithContext(ctx).
		Order("payment_date DESC").
		Order("id DESC").
		Find(&payments).Error
	return payments, err
}

// UpdateOutcome applies the given column updates to a payment
func (r *PaymentRepository) UpdateOutcome(ctx context.Context, id uint, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("id = ?", id).
		Updates(updates).Error
}
