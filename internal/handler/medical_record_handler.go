package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/service"
	"github.com/vital110/doctor-portal-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the form fields and part headers on top
// of the file size limit
const multipartOverhead = 1 << 20

type MedicalRecordHandler struct {
	recordService *service.MedicalRecordService
}

func NewMedicalRecordHandler(recordService *service.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordService: recordService,
	}
}

// UploadMedicalRecord accepts one PDF in the medicalFile field
func (h *MedicalRecordHandler) UploadMedicalRecord(c *gin.Context) {
	maxBytes := h.recordService.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	in := service.UploadInput{}
	fileHeader, err := c.FormFile("medicalFile")
	switch {
	case err == nil:
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, err, "Error uploading medical record")
			return
		}
		defer file.Close()
		in.File = file
		in.FileName = fileHeader.Filename
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.ErrorResponse(c, http.StatusBadRequest, fmt.Sprintf("File size cannot exceed %dMB", maxBytes/(1024*1024)))
			return
		}
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	patientID, _ := strconv.ParseUint(strings.TrimSpace(c.PostForm("patientId")), 10, 32)
	in.PatientID = uint(patientID)
	in.RecordType = strings.TrimSpace(c.PostForm("recordType"))
	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.UploadedBy = c.PostForm("uploadedBy")

	record, err := h.recordService.Upload(c.Request.Context(), in)
	if err != nil {
		respondError(c, err, "Error uploading medical record")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": "Medical record uploaded successfully",
		"record": gin.H{
			"id":         record.ID,
			"title":      record.Title,
			"recordType": record.RecordType,
			"fileName":   record.FileName,
			"fileSize":   record.FileSize,
			"uploadedAt": record.CreatedAt,
		},
	})
}

// PatientMedicalRecords lists a patient's records
func (h *MedicalRecordHandler) PatientMedicalRecords(c *gin.Context) {
	patientID, ok := parseID(c, "patientId", "patient ID")
	if !ok {
		return
	}
	records, err := h.recordService.ListByPatient(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err, "Error fetching medical records")
		return
	}
	utils.SuccessResponse(c, gin.H{"records": records})
}

// DownloadMedicalRecord streams the stored PDF as an attachment
func (h *MedicalRecordHandler) DownloadMedicalRecord(c *gin.Context) {
	id, ok := parseID(c, "recordId", "record ID")
	if !ok {
		return
	}

	download, err := h.recordService.Open(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Error downloading medical record")
		return
	}
	defer download.Content.Close()

	c.DataFromReader(http.StatusOK, download.Size, "application/pdf", download.Content, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, attachmentName(download.Record.FileName)),
	})
}

// attachmentName strips characters that would break the quoted header value
func attachmentName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '\r', '\n':
			return -1
		}
		return r
	}, name)
}
