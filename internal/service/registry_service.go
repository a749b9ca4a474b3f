package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"gorm.io/datatypes"
)

// RegistryService keeps the holiday calendar and the doctor and admin leave
// records. Removal tombstones a row; it stays in storage with isActive
// false and drops out of every listing and check.
type RegistryService struct {
	holidayRepo *repository.HolidayRepository
	leaveRepo   *repository.LeaveRepository
	doctors     *DoctorService
	auditRepo   *repository.AuditRepository
	clock       utils.Clock
}

func NewRegistryService(
	holidayRepo *repository.HolidayRepository,
	leaveRepo *repository.LeaveRepository,
	doctors *DoctorService,
	auditRepo *repository.AuditRepository,
	clock utils.Clock,
) *RegistryService {
	return &RegistryService{
		holidayRepo: holidayRepo,
		leaveRepo:   leaveRepo,
		doctors:     doctors,
		auditRepo:   auditRepo,
		clock:       clock,
	}
}

// AddHoliday registers an active holiday
func (s *RegistryService) AddHoliday(ctx context.Context, date, reason string) (*models.Holiday, error) {
	day, err := utils.ParseDate(date)
	if err != nil {
		return nil, invalid("date must be a valid date (YYYY-MM-DD)")
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		return nil, invalid("reason is required")
	}

	holiday := &models.Holiday{
		Date:     datatypes.Date(day),
		Reason:   reason,
		IsActive: true,
	}
	if err := s.holidayRepo.Create(ctx, holiday); err != nil {
		return nil, fmt.Errorf("failed to add holiday: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "holiday_create", fmt.Sprintf("Holiday on %s: %s", utils.FormatDate(day), reason))
	return holiday, nil
}

// ListHolidays returns the active holidays by date
func (s *RegistryService) ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	return s.holidayRepo.ListActive(ctx)
}

// RemoveHoliday tombstones a holiday
func (s *RegistryService) RemoveHoliday(ctx context.Context, id uint) error {
	if err := s.holidayRepo.Deactivate(ctx, id); err != nil {
		return lookup(err, "Holiday")
	}
	_ = s.auditRepo.CreateAuditLog(ctx, "holiday_remove", fmt.Sprintf("Removed holiday ID: %d", id))
	return nil
}

// CheckHoliday returns today's active holiday, or nil when today is a
// working day
func (s *RegistryService) CheckHoliday(ctx context.Context) (*models.Holiday, error) {
	holiday, err := s.holidayRepo.FindActiveOn(ctx, s.clock.Today())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return holiday, err
}

// DoctorLeaveInput names the doctor by DoctorID or, when that is zero, by
// DoctorName.
type DoctorLeaveInput struct {
	DoctorID   uint
	DoctorName string
	LeaveDate  string
	Reason     string
}

// AddDoctorLeave registers an active leave for a doctor
func (s *RegistryService) AddDoctorLeave(ctx context.Context, in DoctorLeaveInput) (*models.DoctorLeave, error) {
	day, err := utils.ParseDate(in.LeaveDate)
	if err != nil {
		return nil, invalid("leaveDate must be a valid date (YYYY-MM-DD)")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, invalid("reason is required")
	}

	doctor, err := s.doctors.Resolve(ctx, in.DoctorID, in.DoctorName)
	if err != nil {
		return nil, err
	}

	leave := &models.DoctorLeave{
		DoctorID:   doctor.ID,
		DoctorName: doctor.FullName,
		LeaveDate:  datatypes.Date(day),
		Reason:     reason,
		IsActive:   true,
	}
	if err := s.leaveRepo.CreateDoctorLeave(ctx, leave); err != nil {
		return nil, fmt.Errorf("failed to add doctor leave: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "doctor_leave_create",
		fmt.Sprintf("Dr. %s on leave %s: %s", doctor.FullName, utils.FormatDate(day), reason))
	return leave, nil
}

// ListDoctorLeaves returns the active doctor leaves by date
func (s *RegistryService) ListDoctorLeaves(ctx context.Context) ([]models.DoctorLeave, error) {
	return s.leaveRepo.ListActiveDoctorLeaves(ctx)
}

// RemoveDoctorLeave tombstones a doctor leave
func (s *RegistryService) RemoveDoctorLeave(ctx context.Context, id uint) error {
	if err := s.leaveRepo.DeactivateDoctorLeave(ctx, id); err != nil {
		return lookup(err, "Doctor leave")
	}
	_ = s.auditRepo.CreateAuditLog(ctx, "doctor_leave_remove", fmt.Sprintf("Removed doctor leave ID: %d", id))
	return nil
}

// CheckDoctorLeave returns the doctor's active leave on date (today when
// empty), or nil. An unknown doctor is simply not on leave.
func (s *RegistryService) CheckDoctorLeave(ctx context.Context, doctorID uint, doctorName, date string) (*models.DoctorLeave, error) {
	day := s.clock.Today()
	if strings.TrimSpace(date) != "" {
		parsed, err := utils.ParseDate(date)
		if err != nil {
			return nil, invalid("date must be a valid date (YYYY-MM-DD)")
		}
		day = parsed
	}

	doctor, err := s.doctors.Resolve(ctx, doctorID, doctorName)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			return nil, nil
		}
		return nil, err
	}

	leave, err := s.leaveRepo.FindActiveDoctorLeave(ctx, doctor.ID, day)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return leave, err
}

// AddAdminLeave files a pending leave request for an admin
func (s *RegistryService) AddAdminLeave(ctx context.Context, adminName, leaveDate, reason string) (*models.AdminLeave, error) {
	if adminName = strings.TrimSpace(adminName); adminName == "" {
		return nil, invalid("adminName is required")
	}
	day, err := utils.ParseDate(leaveDate)
	if err != nil {
		return nil, invalid("leaveDate must be a valid date (YYYY-MM-DD)")
	}
	if reason = strings.TrimSpace(reason); reason == "" {
		return nil, invalid("reason is required")
	}

	leave := &models.AdminLeave{
		AdminName: adminName,
		LeaveDate: datatypes.Date(day),
		Reason:    reason,
		Status:    models.LeavePending,
		IsActive:  true,
	}
	if err := s.leaveRepo.CreateAdminLeave(ctx, leave); err != nil {
		return nil, fmt.Errorf("failed to add admin leave: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "admin_leave_create",
		fmt.Sprintf("Admin %s requested leave on %s", adminName, utils.FormatDate(day)))
	return leave, nil
}

// ListAdminLeaves returns the active admin leaves by date
func (s *RegistryService) ListAdminLeaves(ctx context.Context) ([]models.AdminLeave, error) {
	return s.leaveRepo.ListActiveAdminLeaves(ctx)
}

// ReviewAdminLeave sets the status of an active admin leave
func (s *RegistryService) ReviewAdminLeave(ctx context.Context, id uint, status string) (*models.AdminLeave, error) {
	switch status {
	case models.LeavePending, models.LeaveApproved, models.LeaveRejected:
	default:
		return nil, invalid("status must be one of: %s, %s, %s",
			models.LeavePending, models.LeaveApproved, models.LeaveRejected)
	}

	leave, err := s.leaveRepo.GetActiveAdminLeave(ctx, id)
	if err != nil {
		return nil, lookup(err, "Admin leave")
	}
	if err := s.leaveRepo.UpdateAdminLeaveStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("failed to update admin leave: %w", err)
	}
	leave.Status = status

	_ = s.auditRepo.CreateAuditLog(ctx, "admin_leave_review", fmt.Sprintf("Admin leave %d set to %s", id, status))
	return leave, nil
}

// RemoveAdminLeave tombstones an admin leave
func (s *RegistryService) RemoveAdminLeave(ctx context.Context, id uint) error {
	if err := s.leaveRepo.DeactivateAdminLeave(ctx, id); err != nil {
		return lookup(err, "Admin leave")
	}
	_ = s.auditRepo.CreateAuditLog(ctx, "admin_leave_remove", fmt.Sprintf("Removed admin leave ID: %d", id))
	return nil
}
