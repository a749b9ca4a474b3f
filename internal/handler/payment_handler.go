package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
}

func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type PaymentRequest struct {
	PatientID     int64           `json:"patientId" binding:"required,gt=0"`
	AppointmentID *uint           `json:"appointmentId"`
	DoctorName    string          `json:"doctorName" binding:"required,min=2,max=100"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=card paypal upi"`
	Status        string          `json:"status" binding:"omitempty,oneof=pending completed failed"`
	TransactionID string          `json:"transactionId" binding:"max=255"`

	PayerEmail         string `json:"payerEmail" binding:"omitempty,email"`
	PayerName          string `json:"payerName" binding:"max=255"`
	PayPalOrderID      string `json:"paypalOrderId" binding:"max=255"`
	TransactionDetails string `json:"transactionDetails"`

	UPIID       string `json:"upiId" binding:"max=255"`
	PhoneNumber string `json:"phoneNumber" binding:"max=20"`
}

type PaymentStatusRequest struct {
	Status             string `json:"status" binding:"required,oneof=pending completed failed"`
	TransactionID      string `json:"transactionId" binding:"max=255"`
	TransactionDetails string `json:"transactionDetails"`
}

// RecordPayment stores a payment attempt
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), service.PaymentInput{
		PatientID:          uint(req.PatientID),
		AppointmentID:      req.AppointmentID,
		DoctorName:         req.DoctorName,
		Amount:             req.Amount,
		PaymentMethod:      req.PaymentMethod,
		Status:             req.Status,
		TransactionID:      req.TransactionID,
		PayerEmail:         req.PayerEmail,
		PayerName:          req.PayerName,
		PayPalOrderID:      req.PayPalOrderID,
		TransactionDetails: req.TransactionDetails,
		UPIID:              req.UPIID,
		PhoneNumber:        req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err, "Error recording payment")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// GetPayment returns a single payment
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := parseID(c, "id", "payment ID")
	if !ok {
		return
	}
	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error fetching payment")
		return
	}
	utils.SuccessResponse(c, gin.H{"payment": payment})
}

// PatientPayments lists a patient's payments
func (h *PaymentHandler) PatientPayments(c *gin.Context) {
	patientID, ok := parseID(c, "patientId", "patient ID")
	if !ok {
		return
	}
	payments, err := h.paymentService.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err, "Error fetching payments")
		return
	}
	utils.SuccessResponse(c, gin.H{"payments": payments})
}

// AllPayments lists every payment
func (h *PaymentHandler) AllPayments(c *gin.Context) {
	payments, err := h.paymentService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching payments")
		return
	}
	utils.SuccessResponse(c, gin.H{"payments": payments})
}

// UpdatePaymentStatus records the confirmed outcome of a payment
func (h *PaymentHandler) UpdatePaymentStatus(c *gin.Context) {
	id, ok := parseID(c, "id", "payment ID")
	if !ok {
		return
	}
	var req PaymentStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	payment, err := h.paymentService.UpdateStatus(c.Request.Context(), id, service.PaymentOutcome{
		Status:             req.Status,
		TransactionID:      req.TransactionID,
		TransactionDetails: req.TransactionDetails,
	})
	if err != nil {
		respondError(c, err, "Error updating payment")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": "Payment status updated",
		"payment": payment,
	})
}
