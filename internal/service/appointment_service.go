package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"gorm.io/datatypes"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	patientRepo     *repository.PatientRepository
	leaveRepo       *repository.LeaveRepository
	doctors         *DoctorService
	auditRepo       *repository.AuditRepository
	clock           utils.Clock
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	patientRepo *repository.PatientRepository,
	leaveRepo *repository.LeaveRepository,
	doctors *DoctorService,
	auditRepo *repository.AuditRepository,
	clock utils.Clock,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		leaveRepo:       leaveRepo,
		doctors:         doctors,
		auditRepo:       auditRepo,
		clock:           clock,
	}
}

// BookingInput carries a booking request. The doctor is named by DoctorID
// or, when that is zero, by DoctorName.
type BookingInput struct {
	PatientID       uint
	DoctorID        uint
	DoctorName      string
	AppointmentDate string
	AppointmentTime string
	Reason          string
}

// Book creates a pending appointment unless the doctor has an active leave
// on the requested day. The leave lookup and the insert are separate
// statements, and identical requests create separate rows.
func (s *AppointmentService) Book(ctx context.Context, in BookingInput) (*models.Appointment, error) {
	if in.PatientID == 0 {
		return nil, invalid("patientId must be positive")
	}
	date, err := utils.ParseDate(in.AppointmentDate)
	if err != nil {
		return nil, invalid("Please provide a valid appointment date")
	}
	if date.Before(s.clock.Today()) {
		return nil, invalid("Appointment date cannot be in the past")
	}
	if strings.TrimSpace(in.AppointmentTime) == "" {
		return nil, invalid("appointmentTime is required")
	}
	reason := strings.TrimSpace(in.Reason)
	if n := len([]rune(reason)); n < 5 || n > 500 {
		return nil, invalid("reason must be between 5 and 500 characters long")
	}

	if _, err := s.patientRepo.FindByID(ctx, in.PatientID); err != nil {
		return nil, lookup(err, "Patient")
	}

	doctor, err := s.doctors.Resolve(ctx, in.DoctorID, in.DoctorName)
	if err != nil {
		return nil, err
	}

	// Check if doctor is on leave on the appointment date
	leave, err := s.leaveRepo.FindActiveDoctorLeave(ctx, doctor.ID, date)
	switch {
	case err == nil:
		return nil, &LeaveConflictError{
			DoctorName: doctor.FullName,
			Date:       utils.FormatDate(date),
			Reason:     leave.Reason,
		}
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("failed to check doctor leave: %w", err)
	}

	appointment := &models.Appointment{
		PatientID:       in.PatientID,
		DoctorID:        doctor.ID,
		DoctorName:      doctor.FullName,
		AppointmentDate: datatypes.Date(date),
		AppointmentTime: strings.TrimSpace(in.AppointmentTime),
		Reason:          reason,
		Status:          models.AppointmentPending,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return appointment, nil
}

// UpdateStatus overwrites the status of an appointment. Any transition
// between known statuses is accepted.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uint, status string) error {
	if !models.ValidAppointmentStatus(status) {
		return invalid("status must be one of: %s, %s, %s",
			models.AppointmentPending, models.AppointmentConfirmed, models.AppointmentCancelled)
	}
	if _, err := s.appointmentRepo.GetByID(ctx, id); err != nil {
		return lookup(err, "Appointment")
	}
	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "appointment_status", fmt.Sprintf("Appointment %d set to %s", id, status))
	return nil
}

// ListByPatient returns a patient's appointments, newest first
func (s *AppointmentService) ListByPatient(ctx context.Context, patientID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.ListByPatient(ctx, patientID)
}

// ListToday returns today's appointments in time order along with the day
// they were computed for
func (s *AppointmentService) ListToday(ctx context.Context) (time.Time, []models.Appointment, error) {
	today := s.clock.Today()
	appointments, err := s.appointmentRepo.ListForDay(ctx, today)
	return today, appointments, err
}

// ListAll returns every appointment, newest date first
func (s *AppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	return s.appointmentRepo.List(ctx, repository.AppointmentFilter{})
}

// DateQuery selects a year, a month or a single day. Zero fields are
// absent; Month needs Year and Day needs Month.
type DateQuery struct {
	Year  int
	Month int
	Day   int
}

func (q DateQuery) rangeOf() (utils.DateRange, bool, error) {
	switch {
	case q.Year == 0 && (q.Month != 0 || q.Day != 0):
		return utils.DateRange{}, false, invalid("year is required when month or date is given")
	case q.Month == 0 && q.Day != 0:
		return utils.DateRange{}, false, invalid("month is required when date is given")
	case q.Day != 0:
		r, err := utils.DayRange(q.Year, q.Month, q.Day)
		if err != nil {
			return r, false, invalid("Invalid date filter")
		}
		return r, true, nil
	case q.Month != 0:
		r, err := utils.MonthRange(q.Year, q.Month)
		if err != nil {
			return r, false, invalid("Invalid date filter")
		}
		return r, true, nil
	case q.Year != 0:
		return utils.YearRange(q.Year), true, nil
	}
	return utils.DateRange{}, false, nil
}

func (q DateQuery) describe() string {
	switch {
	case q.Day != 0:
		return fmt.Sprintf("%d/%d/%d", q.Day, q.Month, q.Year)
	case q.Month != 0:
		return fmt.Sprintf("%s %d", time.Month(q.Month), q.Year)
	case q.Year != 0:
		return fmt.Sprintf("%d", q.Year)
	}
	return ""
}

// PreviousAppointments is the result of ListPrevious
type PreviousAppointments struct {
	Appointments []models.Appointment
	Filter       string
}

// ListPrevious browses appointments dated before today. Today and later
// days never appear; asking for today explicitly yields an empty list with
// a note in the filter text.
func (s *AppointmentService) ListPrevious(ctx context.Context, q DateQuery) (*PreviousAppointments, error) {
	r, bounded, err := q.rangeOf()
	if err != nil {
		return nil, err
	}

	today := s.clock.Today()
	filter := repository.AppointmentFilter{Before: today}
	if bounded {
		filter.From, filter.To = r.From, r.To
	}

	result := &PreviousAppointments{
		Appointments: []models.Appointment{},
		Filter:       q.describe(),
	}
	if q.Day != 0 && r.Contains(today) {
		result.Filter += " (Today's appointments are not shown in previous appointments)"
		return result, nil
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	result.Appointments = appointments
	return result, nil
}

// CountByDate counts appointments in the selected year, month or day,
// today included. An empty query counts everything.
func (s *AppointmentService) CountByDate(ctx context.Context, q DateQuery) (int64, error) {
	r, bounded, err := q.rangeOf()
	if err != nil {
		return 0, err
	}
	var filter repository.AppointmentFilter
	if bounded {
		filter.From, filter.To = r.From, r.To
	}
	return s.appointmentRepo.Count(ctx, filter)
}
