package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

type CreateDoctorRequest struct {
	FullName       string `json:"fullName" binding:"required,min=2,max=50"`
	Specialization string `json:"specialization" binding:"max=100"`
}

// CreateDoctor adds a doctor to the registry
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !bindJSON(c, &req) {
		return
	}

	doctor, err := h.doctorService.CreateDoctor(c.Request.Context(), req.FullName, req.Specialization)
	if err != nil {
		respondError(c, err, "Error adding doctor")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Doctor added successfully",
		"doctor":  doctor,
	})
}

// ListDoctors returns the active doctors
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching doctors")
		return
	}
	utils.SuccessResponse(c, gin.H{"doctors": doctors})
}

// RemoveDoctor tombstones a doctor
func (h *DoctorHandler) RemoveDoctor(c *gin.Context) {
	id, ok := parseID(c, "id", "doctor ID")
	if !ok {
		return
	}
	if err := h.doctorService.RemoveDoctor(c.Request.Context(), id); err != nil {
		respondError(c, err, "Error removing doctor")
		return
	}
	utils.MessageResponse(c, "Doctor removed successfully")
}
