package repository

import (
	"context"

	"github.com/vital110/doctor-portal-backend/internal/models"

	"gorm.io/gorm"
)

type SalaryRepository struct {
	db *gorm.DB
}

func NewSalaryRepo(db *gorm.DB) *SalaryRepository {
	return &SalaryRepository{db: db}
}

// Create inserts a salary record
func (r *SalaryRepository) Create(ctx context.Context, salary *models.AdminSalary) error {
	return r.db.WithContext(ctx).Create(salary).Error
}

// ListActive retrieves active salary records, optionally for a year and
// month, most recent period first
func (r *SalaryRepository) ListActive(ctx context.Context, year, month int) ([]models.AdminSalary, error) {
	var salaries []models.AdminSalary
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if year > 0 {
		q = q.Where("year = ?", year)
	}
	if month > 0 {
		q = q.Where("month = ?", month)
	}
	err := q.Order("year DESC").
		Order("month DESC").
		Order("admin_name ASC").
		Find(&salaries).Error
	return salaries, err
}

// Deactivate soft deletes a salary record
func (r *SalaryRepository) Deactivate(ctx context.Context, id uint) error {
	return deactivate(ctx, r.db, &models.AdminSalary{}, id)
}
