package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods
const (
	PaymentMethodCard   = "card"
	PaymentMethodPayPal = "paypal"
	PaymentMethodUPI    = "upi"
)

// Payment statuses
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment represents the payments table. Method specific fields stay
// empty for the methods that do not use them.
type Payment struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PatientID     uint            `gorm:"not null;index" json:"patientId"`
	AppointmentID *uint           `gorm:"index" json:"appointmentId"`
	DoctorName    string          `gorm:"size:100;not null" json:"doctorName"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"size:20;not null;default:card" json:"paymentMethod"`
	Status        string          `gorm:"size:20;not null;default:pending;index" json:"status"`
	TransactionID string          `gorm:"size:255" json:"transactionId,omitempty"`
	PaymentDate   time.Time       `gorm:"not null" json:"paymentDate"`

	// Card / PayPal
	PayerEmail         string `gorm:"size:255" json:"payerEmail,omitempty"`
	PayerName          string `gorm:"size:255" json:"payerName,omitempty"`
	PayPalOrderID      string `gorm:"column:paypal_order_id;size:255" json:"paypalOrderId,omitempty"`
	TransactionDetails string `gorm:"type:text" json:"transactionDetails,omitempty"`

	// UPI
	UPIID       string `gorm:"column:upi_id;size:255" json:"upiId,omitempty"`
	PhoneNumber string `gorm:"size:20" json:"phoneNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}

// ValidPaymentStatus reports whether s is one of the known statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed:
		return true
	}
	return false
}
