package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"

	"github.com/shopspring/decimal"
)

type StaffService struct {
	salaryRepo *repository.SalaryRepository
	auditRepo  *repository.AuditRepository
}

func NewStaffService(salaryRepo *repository.SalaryRepository, auditRepo *repository.AuditRepository) *StaffService {
	return &StaffService{
		salaryRepo: salaryRepo,
		auditRepo:  auditRepo,
	}
}

// SalaryInput is a monthly salary entry for an admin
type SalaryInput struct {
	AdminName   string
	Amount      decimal.Decimal
	Month       int
	Year        int
	SubmittedBy string
}

// AddSalary records a salary payment
func (s *StaffService) AddSalary(ctx context.Context, in SalaryInput) (*models.AdminSalary, error) {
	if strings.TrimSpace(in.AdminName) == "" {
		return nil, invalid("adminName is required")
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("amount must be positive")
	}
	if in.Month < 1 || in.Month > 12 {
		return nil, invalid("month must be between 1 and 12")
	}
	if in.Year < 2000 || in.Year > 2100 {
		return nil, invalid("year must be between 2000 and 2100")
	}
	if strings.TrimSpace(in.SubmittedBy) == "" {
		return nil, invalid("submittedBy is required")
	}

	salary := &models.AdminSalary{
		AdminName:   strings.TrimSpace(in.AdminName),
		Amount:      in.Amount.Round(2),
		Month:       in.Month,
		Year:        in.Year,
		SubmittedBy: strings.TrimSpace(in.SubmittedBy),
		IsActive:    true,
	}
	if err := s.salaryRepo.Create(ctx, salary); err != nil {
		return nil, fmt.Errorf("failed to add salary: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "salary_create",
		fmt.Sprintf("Salary %s for %s %02d/%d submitted by %s", salary.Amount.StringFixed(2), salary.AdminName, salary.Month, salary.Year, salary.SubmittedBy))
	return salary, nil
}

// ListSalaries returns active salary records. Zero year or month means no
// filter on that field.
func (s *StaffService) ListSalaries(ctx context.Context, year, month int) ([]models.AdminSalary, error) {
	if month < 0 || month > 12 {
		return nil, invalid("month must be between 1 and 12")
	}
	return s.salaryRepo.ListActive(ctx, year, month)
}

// RemoveSalary tombstones a salary record
func (s *StaffService) RemoveSalary(ctx context.Context, id uint) error {
	if err := s.salaryRepo.Deactivate(ctx, id); err != nil {
		return lookup(err, "Salary record")
	}
	_ = s.auditRepo.CreateAuditLog(ctx, "salary_remove", fmt.Sprintf("Removed salary ID: %d", id))
	return nil
}
