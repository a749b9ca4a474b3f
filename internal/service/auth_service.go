package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

const (
	adminExistsMessage   = "Admin with this email already exists"
	patientExistsMessage = "Patient with this email already exists"
)

type AuthService struct {
	adminRepo   *repository.AdminRepository
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
	hashCost    int
}

func NewAuthService(
	adminRepo *repository.AdminRepository,
	patientRepo *repository.PatientRepository,
	auditRepo *repository.AuditRepository,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
		hashCost:    12,
	}
}

// WithHashCost overrides the bcrypt cost used for new passwords
func (s *AuthService) WithHashCost(cost int) *AuthService {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		s.hashCost = cost
	}
	return s
}

// RegisterAdmin creates a new admin account
func (s *AuthService) RegisterAdmin(ctx context.Context, fullName, email, password, role string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if !models.ValidAdminRole(role) {
		return nil, invalid("role must be one of: %s, %s, %s, %s",
			models.RoleAdmin, models.RoleSuperAdmin, models.RoleManager, models.RoleSupervisor)
	}

	// Check if email already exists
	if _, err := s.adminRepo.FindByEmail(ctx, email); err == nil {
		return nil, &DuplicateError{Message: adminExistsMessage}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	passwordHash, err := utils.HashPasswordCost(password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &DuplicateError{Message: adminExistsMessage}
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "admin_registration", fmt.Sprintf("Admin %s registered with role %s", email, role))

	return admin, nil
}

// LoginAdmin verifies admin credentials. No session is issued.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*models.Admin, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, credentialsError(err)
	}
	if !utils.ComparePassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// RegisterPatient creates a new patient account
func (s *AuthService) RegisterPatient(ctx context.Context, fullName, email, password string) (*models.Patient, error) {
	email = normalizeEmail(email)

	if _, err := s.patientRepo.FindByEmail(ctx, email); err == nil {
		return nil, &DuplicateError{Message: patientExistsMessage}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up patient: %w", err)
	}

	passwordHash, err := utils.HashPasswordCost(password, s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	patient := &models.Patient{
		FullName:     strings.TrimSpace(fullName),
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &DuplicateError{Message: patientExistsMessage}
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "patient_registration", fmt.Sprintf("Patient %s registered", email))

	return patient, nil
}

// LoginPatient verifies patient credentials. No session is issued.
func (s *AuthService) LoginPatient(ctx context.Context, email, password string) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, credentialsError(err)
	}
	if !utils.ComparePassword(patient.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return patient, nil
}

// ListAdmins returns every admin, newest first
func (s *AuthService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.adminRepo.List(ctx)
}

// CountAdmins returns the number of registered admins
func (s *AuthService) CountAdmins(ctx context.Context) (int64, error) {
	return s.adminRepo.Count(ctx)
}

// ListPatients returns every patient ordered by name
func (s *AuthService) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return s.patientRepo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// credentialsError hides whether the account exists.
func credentialsError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("failed to look up account: %w", err)
}
