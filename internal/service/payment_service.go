package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"

	"github.com/shopspring/decimal"
)

// PaymentService records payment attempts and their outcomes. Gateway
// confirmation happens outside this service and is reported back through
// UpdateStatus.
type PaymentService struct {
	paymentRepo     *repository.PaymentRepository
	patientRepo     *repository.PatientRepository
	appointmentRepo *repository.AppointmentRepository
	auditRepo       *repository.AuditRepository
	now             func() time.Time
}

func NewPaymentService(
	paymentRepo *repository.PaymentRepository,
	patientRepo *repository.PatientRepository,
	appointmentRepo *repository.AppointmentRepository,
	auditRepo *repository.AuditRepository,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		auditRepo:       auditRepo,
		now:             time.Now,
	}
}

// PaymentInput is one payment attempt. Method specific fields are only
// kept for the method that uses them.
type PaymentInput struct {
	PatientID     uint
	AppointmentID *uint
	DoctorName    string
	Amount        decimal.Decimal
	PaymentMethod string
	Status        string
	TransactionID string

	PayerEmail         string
	PayerName          string
	PayPalOrderID      string
	TransactionDetails string

	UPIID       string
	PhoneNumber string
}

// RecordPayment validates and stores a payment attempt
func (s *PaymentService) RecordPayment(ctx context.Context, in PaymentInput) (*models.Payment, error) {
	if in.PatientID == 0 {
		return nil, invalid("patientId must be positive")
	}
	if strings.TrimSpace(in.DoctorName) == "" {
		return nil, invalid("doctorName is required")
	}
	if !in.Amount.IsPositive() {
		return nil, invalid("amount must be positive")
	}

	method := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if method == "" {
		method = models.PaymentMethodCard
	}
	status := in.Status
	if status == "" {
		status = models.PaymentPending
	}
	if !models.ValidPaymentStatus(status) {
		return nil, invalid("status must be one of: %s, %s, %s",
			models.PaymentPending, models.PaymentCompleted, models.PaymentFailed)
	}

	payment := &models.Payment{
		PatientID:     in.PatientID,
		AppointmentID: in.AppointmentID,
		DoctorName:    strings.TrimSpace(in.DoctorName),
		Amount:        in.Amount.Round(2),
		PaymentMethod: method,
		Status:        status,
		TransactionID: in.TransactionID,
		PaymentDate:   s.now().UTC(),
	}

	switch method {
	case models.PaymentMethodCard:
		payment.PayerEmail = in.PayerEmail
		payment.PayerName = in.PayerName
		payment.TransactionDetails = in.TransactionDetails
	case models.PaymentMethodPayPal:
		if strings.TrimSpace(in.PayPalOrderID) == "" {
			return nil, invalid("paypalOrderId is required for PayPal payments")
		}
		payment.PayPalOrderID = in.PayPalOrderID
		payment.PayerEmail = in.PayerEmail
		payment.PayerName = in.PayerName
		payment.TransactionDetails = in.TransactionDetails
	case models.PaymentMethodUPI:
		if strings.TrimSpace(in.UPIID) == "" && strings.TrimSpace(in.PhoneNumber) == "" {
			return nil, invalid("upiId or phoneNumber is required for UPI payments")
		}
		payment.UPIID = in.UPIID
		payment.PhoneNumber = in.PhoneNumber
		payment.TransactionDetails = in.TransactionDetails
	default:
		return nil, invalid("paymentMethod must be one of: %s, %s, %s",
			models.PaymentMethodCard, models.PaymentMethodPayPal, models.PaymentMethodUPI)
	}

	if _, err := s.patientRepo.FindByID(ctx, in.PatientID); err != nil {
		return nil, lookup(err, "Patient")
	}
	if in.AppointmentID != nil {
		appointment, err := s.appointmentRepo.GetByID(ctx, *in.AppointmentID)
		if err != nil {
			return nil, lookup(err, "Appointment")
		}
		if appointment.PatientID != in.PatientID {
			return nil, invalid("Appointment does not belong to this patient")
		}
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "payment_create",
		fmt.Sprintf("Payment %d of %s via %s for patient %d (%s)", payment.ID, payment.Amount.StringFixed(2), method, payment.PatientID, status))
	return payment, nil
}

// GetPayment returns a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "Payment")
	}
	return payment, nil
}

// ListByPatient returns a patient's payments, newest first
func (s *PaymentService) ListByPatient(ctx context.Context, patientID uint) ([]models.Payment, error) {
	return s.paymentRepo.ListByPatient(ctx, patientID)
}

// ListAll returns every payment, newest first
func (s *PaymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	return s.paymentRepo.ListAll(ctx)
}

// PaymentOutcome reports the result of an out of band confirmation
type PaymentOutcome struct {
	Status             string
	TransactionID      string
	TransactionDetails string
}

// UpdateStatus records the outcome of a payment. Empty transaction fields
// leave the stored values untouched.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uint, out PaymentOutcome) (*models.Payment, error) {
	if !models.ValidPaymentStatus(out.Status) {
		return nil, invalid("status must be one of: %s, %s, %s",
			models.PaymentPending, models.PaymentCompleted, models.PaymentFailed)
	}
	if _, err := s.paymentRepo.GetByID(ctx, id); err != nil {
		return nil, lookup(err, "Payment")
	}

	updates := map[string]interface{}{"status": out.Status}
	if out.TransactionID != "" {
		updates["transaction_id"] = out.TransactionID
	}
	if out.TransactionDetails != "" {
		updates["transaction_details"] = out.TransactionDetails
	}
	if err := s.paymentRepo.UpdateOutcome(ctx, id, updates); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "payment_status", fmt.Sprintf("Payment %d set to %s", id, out.Status))
	return s.paymentRepo.GetByID(ctx, id)
}
