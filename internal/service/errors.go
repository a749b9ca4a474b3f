package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/repository"
)

// ErrInvalidCredentials is returned by both logins for an unknown email and
// for a wrong password alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports a request that failed a business rule.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing row or file.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// notFound builds the "<Resource> not found" error, e.g. "Patient not found".
func notFound(resource string) error {
	return &NotFoundError{Message: resource + " not found"}
}

// DuplicateError reports a unique value that is already taken.
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// LeaveConflictError rejects a booking for a doctor on leave that day.
type LeaveConflictError struct {
	DoctorName string
	Date       string
	Reason     string
}

func (e *LeaveConflictError) Error() string {
	return fmt.Sprintf("Dr. %s is on leave on %s. Reason: %s", e.DoctorName, e.Date, e.Reason)
}

// lookup maps repository.ErrNotFound to a NotFoundError and wraps
// everything else.
func lookup(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound(resource)
	}
	return fmt.Errorf("failed to load %s: %w", strings.ToLower(resource), err)
}

