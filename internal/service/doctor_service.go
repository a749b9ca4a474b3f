package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
)

const doctorExistsMessage = "Doctor with this name already exists"

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
	auditRepo  *repository.AuditRepository
}

func NewDoctorService(doctorRepo *repository.DoctorRepository, auditRepo *repository.AuditRepository) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		auditRepo:  auditRepo,
	}
}

// CreateDoctor adds a doctor to the registry. A previously removed doctor
// with the same name is reactivated instead of duplicated.
func (s *DoctorService) CreateDoctor(ctx context.Context, fullName, specialization string) (*models.Doctor, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, invalid("fullName is required")
	}

	existing, err := s.doctorRepo.GetByName(ctx, fullName)
	switch {
	case err == nil && existing.IsActive:
		return nil, &DuplicateError{Message: doctorExistsMessage}
	case err == nil:
		existing.Specialization = specialization
		if err := s.doctorRepo.Reactivate(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate doctor: %w", err)
		}
		_ = s.auditRepo.CreateAuditLog(ctx, "doctor_reactivate", fmt.Sprintf("Reactivated doctor %s (ID: %d)", existing.FullName, existing.ID))
		return existing, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}

	doctor := &models.Doctor{
		FullName:       fullName,
		Specialization: specialization,
		IsActive:       true,
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &DuplicateError{Message: doctorExistsMessage}
		}
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "doctor_create", fmt.Sprintf("Created doctor %s (ID: %d)", doctor.FullName, doctor.ID))

	return doctor, nil
}

// ListDoctors returns the active doctors ordered by name
func (s *DoctorService) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return s.doctorRepo.ListActive(ctx)
}

// RemoveDoctor tombstones a doctor. Existing appointments and leaves keep
// pointing at the row.
func (s *DoctorService) RemoveDoctor(ctx context.Context, id uint) error {
	if err := s.doctorRepo.SoftDelete(ctx, id); err != nil {
		return lookup(err, "Doctor")
	}
	_ = s.auditRepo.CreateAuditLog(ctx, "doctor_remove", fmt.Sprintf("Removed doctor ID: %d", id))
	return nil
}

// Resolve finds the active doctor named by id, or by exact name when id is
// zero.
func (s *DoctorService) Resolve(ctx context.Context, id uint, name string) (*models.Doctor, error) {
	var (
		doctor *models.Doctor
		err    error
	)
	switch name = strings.TrimSpace(name); {
	case id > 0:
		doctor, err = s.doctorRepo.GetActiveByID(ctx, id)
	case name != "":
		doctor, err = s.doctorRepo.GetActiveByName(ctx, name)
	default:
		return nil, invalid("doctorId or doctorName is required")
	}
	if err != nil {
		return nil, lookup(err, "Doctor")
	}
	return doctor, nil
}
