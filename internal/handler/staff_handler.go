package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

type SalaryRequest struct {
	AdminName   string          `json:"adminName" binding:"required,min=2,max=100"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required,gte=2000,lte=2100"`
	SubmittedBy string          `json:"submittedBy" binding:"required,max=100"`
}

type SalaryQuery struct {
	Year  int `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// AddSalary records an admin salary
func (h *StaffHandler) AddSalary(c *gin.Context) {
	var req SalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	salary, err := h.staffService.AddSalary(c.Request.Context(), service.SalaryInput{
		AdminName:   req.AdminName,
		Amount:      req.Amount,
		Month:       req.Month,
		Year:        req.Year,
		SubmittedBy: req.SubmittedBy,
	})
	if err != nil {
		respondError(c, err, "Error adding salary")
		return
	}
	utils.CreatedResponse(c, gin.H{
		"message": "Salary added successfully",
		"salary":  salary,
	})
}

// ListSalaries returns active salaries, optionally for a year and month
func (h *StaffHandler) ListSalaries(c *gin.Context) {
	var req SalaryQuery
	if !bindQuery(c, &req) {
		return
	}

	salaries, err := h.staffService.ListSalaries(c.Request.Context(), req.Year, req.Month)
	if err != nil {
		respondError(c, err, "Error fetching salaries")
		return
	}
	utils.SuccessResponse(c, gin.H{"salaries": salaries})
}

// RemoveSalary tombstones a salary record
func (h *StaffHandler) RemoveSalary(c *gin.Context) {
	id, ok := parseID(c, "id", "salary ID")
	if !ok {
		return
	}
	if err := h.staffService.RemoveSalary(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error removing salary")
		return
	}
	utils.MessageResponse(c, "Salary removed successfully")
}
