package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type BookAppointmentRequest struct {
	PatientID       int64  `json:"patientId" binding:"required,gt=0"`
	DoctorID        uint   `json:"doctorId"`
	DoctorName      string `json:"doctorName" binding:"required_without=DoctorID,max=50"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
	Reason          string `json:"reason" binding:"required,min=5,max=500"`
}

type UpdateAppointmentRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type DateQueryRequest struct {
	Year  int `form:"year" binding:"omitempty,gte=1900,lte=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Date  int `form:"date" binding:"omitempty,min=1,max=31"`
}

func (r DateQueryRequest) query() service.DateQuery {
	return service.DateQuery{Year: r.Year, Month: r.Month, Day: r.Date}
}

// BookAppointment books a pending appointment unless the doctor is on leave
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	appointment, err := h.appointmentService.Book(c.Request.Context(), service.BookingInput{
		PatientID:       uint(req.PatientID),
		DoctorID:        req.DoctorID,
		DoctorName:      req.DoctorName,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	})
	if err != nil {
		respondError(c, err, "Server error during booking")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": appointment,
	})
}

// UpdateAppointment overwrites an appointment's status
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, ok := parseID(c, "id", "appointment ID")
	if !ok {
		return
	}
	var req UpdateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.appointmentService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err, "Error updating appointment")
		return
	}
	utils.MessageResponse(c, "Appointment status updated")
}

// PatientAppointments lists a patient's appointments, newest first
func (h *AppointmentHandler) PatientAppointments(c *gin.Context) {
	patientID, ok := parseID(c, "patientId", "patient ID")
	if !ok {
		return
	}
	appointments, err := h.appointmentService.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	utils.SuccessResponse(c, gin.H{"appointments": appointments})
}

// TodayAppointments lists today's appointments in time order
func (h *AppointmentHandler) TodayAppointments(c *gin.Context) {
	today, appointments, err := h.appointmentService.ListToday(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"date":         utils.FormatDate(today),
	})
}

// PreviousAppointments browses appointments before today by year, month
// or day
func (h *AppointmentHandler) PreviousAppointments(c *gin.Context) {
	var req DateQueryRequest
	if !bindQuery(c, &req) {
		return
	}

	result, err := h.appointmentService.ListPrevious(c.Request.Context(), req.query())
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"appointments": result.Appointments,
		"filter":       result.Filter,
		"count":        len(result.Appointments),
	})
}

// AllAppointments lists every appointment
func (h *AppointmentHandler) AllAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	utils.SuccessResponse(c, gin.H{"appointments": appointments})
}

// AppointmentCount counts appointments by year, month or day, today
// included
func (h *AppointmentHandler) AppointmentCount(c *gin.Context) {
	var req DateQueryRequest
	if !bindQuery(c, &req) {
		return
	}

	count, err := h.appointmentService.CountByDate(c.Request.Context(), req.query())
	if err != nil {
		respondError(c, err, "Error fetching appointments")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"count": count,
		"filter": gin.H{
			"year":  req.Year,
			"month": req.Month,
			"date":  req.Date,
		},
	})
}
