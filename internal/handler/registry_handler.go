package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	registryService *service.RegistryService
}

func NewRegistryHandler(registryService *service.RegistryService) *RegistryHandler {
	return &RegistryHandler{
		registryService: registryService,
	}
}

type HolidayRequest struct {
	Date   string `json:"date" binding:"required"`
	Reason string `json:"reason" binding:"required,max=255"`
}

type DoctorLeaveRequest struct {
	DoctorID   uint   `json:"doctorId"`
	DoctorName string `json:"doctorName" binding:"required_without=DoctorID,max=50"`
	LeaveDate  string `json:"leaveDate" binding:"required"`
	Reason     string `json:"reason" binding:"required,max=255"`
}

type CheckDoctorLeaveQuery struct {
	DoctorID   uint   `form:"doctorId"`
	DoctorName string `form:"doctorName"`
	Date       string `form:"date"`
}

type AdminLeaveRequest struct {
	AdminName string `json:"adminName" binding:"required,min=2,max=100"`
	LeaveDate string `json:"leaveDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type AdminLeaveStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ListHolidays returns the active holidays
func (h *RegistryHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.registryService.ListHolidays(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching holidays")
		return
	}
	utils.SuccessResponse(c, gin.H{"holidays": holidays})
}

// AddHoliday registers a holiday
func (h *RegistryHandler) AddHoliday(c *gin.Context) {
	var req HolidayRequest
	if !bindJSON(c, &req) {
		return
	}

	holiday, err := h.registryService.AddHoliday(c.Request.Context(), req.Date, req.Reason)
	if err != nil {
		respondError(c, err, "Error adding holiday")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Holiday added successfully",
		"holiday": holiday,
	})
}

// RemoveHoliday tombstones a holiday
func (h *RegistryHandler) RemoveHoliday(c *gin.Context) {
	id, ok := parseID(c, "id", "holiday ID")
	if !ok {
		return
	}
	if err := h.registryService.RemoveHoliday(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error removing holiday")
		return
	}
	utils.MessageResponse(c, "Holiday removed successfully")
}

// CheckHoliday reports whether today is a holiday
func (h *RegistryHandler) CheckHoliday(c *gin.Context) {
	holiday, err := h.registryService.CheckHoliday(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error checking holiday")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"isHoliday": holiday != nil,
		"holiday":   holiday,
	})
}

// ListDoctorLeaves returns the active doctor leaves
func (h *RegistryHandler) ListDoctorLeaves(c *gin.Context) {
	leaves, err := h.registryService.ListDoctorLeaves(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching doctor leaves")
		return
	}
	utils.SuccessResponse(c, gin.H{"leaves": leaves})
}

// AddDoctorLeave registers a doctor leave
func (h *RegistryHandler) AddDoctorLeave(c *gin.Context) {
	var req DoctorLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	leave, err := h.registryService.AddDoctorLeave(c.Request.Context(), service.DoctorLeaveInput{
		DoctorID:   req.DoctorID,
		DoctorName: req.DoctorName,
		LeaveDate:  req.LeaveDate,
		Reason:     req.Reason,
	})
	if err != nil {
		respondError(c, err, "Error adding doctor leave")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Doctor leave added successfully",
		"leave":   leave,
	})
}

// RemoveDoctorLeave tombstones a doctor leave
func (h *RegistryHandler) RemoveDoctorLeave(c *gin.Context) {
	id, ok := parseID(c, "id", "leave ID")
	if !ok {
		return
	}
	if err := h.registryService.RemoveDoctorLeave(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error removing doctor leave")
		return
	}
	utils.MessageResponse(c, "Doctor leave removed successfully")
}

// CheckDoctorLeave reports whether a doctor is on leave on a date
func (h *RegistryHandler) CheckDoctorLeave(c *gin.Context) {
	var req CheckDoctorLeaveQuery
	if !bindQuery(c, &req) {
		return
	}

	leave, err := h.registryService.CheckDoctorLeave(c.Request.Context(), req.DoctorID, req.DoctorName, req.Date)
	if err != nil {
		respondError(c, err, "Error checking doctor leave")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"isOnLeave": leave != nil,
		"leave":     leave,
	})
}

// ListAdminLeaves returns the active admin leaves
func (h *RegistryHandler) ListAdminLeaves(c *gin.Context) {
	leaves, err := h.registryService.ListAdminLeaves(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching admin leaves")
		return
	}
	utils.SuccessResponse(c, gin.H{"leaves": leaves})
}

// AddAdminLeave files an admin leave request
func (h *RegistryHandler) AddAdminLeave(c *gin.Context) {
	var req AdminLeaveRequest
	if !bindJSON(c, &req) {
		return
	}

	leave, err := h.registryService.AddAdminLeave(c.Request.Context(), req.AdminName, req.LeaveDate, req.Reason)
	if err != nil {
		respondError(c, err, "Error adding admin leave")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Admin leave added successfully",
		"leave":   leave,
	})
}

// ReviewAdminLeave approves or rejects an admin leave
func (h *RegistryHandler) ReviewAdminLeave(c *gin.Context) {
	id, ok := parseID(c, "id", "leave ID")
	if !ok {
		return
	}
	var req AdminLeaveStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	leave, err := h.registryService.ReviewAdminLeave(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err, "Error updating admin leave")
		return
	}
	utils.SuccessResponse(c, gin.H{
		"message": "Admin leave status updated",
		"leave":   leave,
	})
}

// RemoveAdminLeave tombstones an admin leave
func (h *RegistryHandler) RemoveAdminLeave(c *gin.Context) {
	id, ok := parseID(c, "id", "leave ID")
	if !ok {
		return
	}
	if err := h.registryService.RemoveAdminLeave(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error removing admin leave")
		return
	}
	utils.MessageResponse(c, "Admin leave removed successfully")
}
