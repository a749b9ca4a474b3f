package handler

import (
	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type RegisterAdminRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=admin super_admin manager supervisor"`
}

type RegisterPatientRequest struct {
	FullName string `json:"fullName" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdmin handles admin registration
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.authService.RegisterAdmin(c.Request.Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err, "Server error during registration")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Admin registered successfully",
		"admin":   admin,
	})
}

// LoginAdmin checks admin credentials
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	admin, err := h.authService.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Server error during login")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Login successful",
		"admin":   admin,
	})
}

// RegisterPatient handles patient registration
func (h *AuthHandler) RegisterPatient(c *gin.Context) {
	var req RegisterPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	patient, err := h.authService.RegisterPatient(c.Request.Context(), req.FullName, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Server error during registration")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Patient registered successfully",
		"patient": patient,
	})
}

// LoginPatient checks patient credentials
func (h *AuthHandler) LoginPatient(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	patient, err := h.authService.LoginPatient(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Server error during login")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Login successful",
		"patient": patient,
	})
}

// AdminList returns every admin without password hashes
func (h *AuthHandler) AdminList(c *gin.Context) {
	admins, err := h.authService.ListAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching admin list")
		return
	}
	utils.SuccessResponse(c, gin.H{"admins": admins})
}

// AdminCount returns the number of admins
func (h *AuthHandler) AdminCount(c *gin.Context) {
	count, err := h.authService.CountAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching admin count")
		return
	}
	utils.SuccessResponse(c, gin.H{"count": count})
}

// AllPatients returns every patient ordered by name
func (h *AuthHandler) AllPatients(c *gin.Context) {
	patients, err := h.authService.ListPatients(c.Request.Context())
	if err != nil {
		respondError(c, err, "Error fetching patients")
		return
	}
	utils.SuccessResponse(c, gin.H{"patients": patients})
}
