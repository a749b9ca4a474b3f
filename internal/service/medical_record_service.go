package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/repository"
	"github.com/vital110/doctor-portal-backend/internal/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

const (
	pdfMIME          = "application/pdf"
	uploadFieldName  = "medicalFile"
	missingFileMsg   = "Please select a PDF file to upload"
	pdfOnlyMsg       = "Only PDF files are allowed"
	missingFieldsMsg = "Patient ID, record type, title, and uploader name are required"
)

type MedicalRecordService struct {
	recordRepo  *repository.MedicalRecordRepository
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
	store       storage.FileStore
	maxBytes    int64
	logger      zerolog.Logger
}

func NewMedicalRecordService(
	recordRepo *repository.MedicalRecordRepository,
	patientRepo *repository.PatientRepository,
	auditRepo *repository.AuditRepository,
	store storage.FileStore,
	maxBytes int64,
	logger zerolog.Logger,
) *MedicalRecordService {
	return &MedicalRecordService{
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
		store:       store,
		maxBytes:    maxBytes,
		logger:      logger,
	}
}

// MaxBytes is the largest accepted upload
func (s *MedicalRecordService) MaxBytes() int64 {
	return s.maxBytes
}

// UploadInput is one uploaded document with its metadata. File is nil when
// the request carried no file.
type UploadInput struct {
	PatientID   uint
	RecordType  string
	Title       string
	Description string
	UploadedBy  string
	FileName    string
	File        io.Reader
}

// Upload validates the document, stores it and records its metadata.
// Nothing is stored for a rejected upload, and the file is removed again
// when the metadata insert fails.
func (s *MedicalRecordService) Upload(ctx context.Context, in UploadInput) (*models.MedicalRecord, error) {
	if in.File == nil {
		return nil, invalid(missingFileMsg)
	}

	// Read one byte past the limit to detect oversized files
	data, err := io.ReadAll(io.LimitReader(in.File, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, invalid(missingFileMsg)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, invalid("File size cannot exceed %dMB", s.maxBytes/(1024*1024))
	}
	if !mimetype.Detect(data).Is(pdfMIME) {
		return nil, invalid(pdfOnlyMsg)
	}

	title := strings.TrimSpace(in.Title)
	uploadedBy := strings.TrimSpace(in.UploadedBy)
	if in.PatientID == 0 || in.RecordType == "" || title == "" || uploadedBy == "" {
		return nil, invalid(missingFieldsMsg)
	}
	switch in.RecordType {
	case models.RecordPrescription, models.RecordTestReport, models.RecordDiagnosis, models.RecordOther:
	default:
		return nil, invalid("recordType must be one of: %s, %s, %s, %s",
			models.RecordPrescription, models.RecordTestReport, models.RecordDiagnosis, models.RecordOther)
	}

	if _, err := s.patientRepo.FindByID(ctx, in.PatientID); err != nil {
		return nil, lookup(err, "Patient")
	}

	path, size, err := s.store.Save(ctx, uploadFieldName, ".pdf", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	fileName := in.FileName
	if fileName == "" {
		fileName = "document.pdf"
	}
	record := &models.MedicalRecord{
		PatientID:   in.PatientID,
		RecordType:  in.RecordType,
		Title:       title,
		Description: in.Description,
		FileName:    fileName,
		FilePath:    path,
		FileSize:    size,
		UploadedBy:  uploadedBy,
	}
	if err := s.recordRepo.Create(ctx, record); err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			s.logger.Error().Err(rmErr).Str("path", path).Msg("failed to remove orphaned upload")
		}
		return nil, fmt.Errorf("failed to create medical record: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(ctx, "medical_record_upload",
		fmt.Sprintf("Record %d (%s) uploaded for patient %d by %s", record.ID, record.RecordType, record.PatientID, uploadedBy))
	return record, nil
}

// ListByPatient returns a patient's records, newest first
func (s *MedicalRecordService) ListByPatient(ctx context.Context, patientID uint) ([]models.MedicalRecord, error) {
	return s.recordRepo.ListByPatient(ctx, patientID)
}

// Download is an open stored document. The caller closes Content.
type Download struct {
	Record  *models.MedicalRecord
	Content io.ReadCloser
	Size    int64
}

// Open looks up a record and opens its file. A missing row and a missing
// file are both reported as not found.
func (s *MedicalRecordService) Open(ctx context.Context, id uint) (*Download, error) {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return nil, lookup(err, "Medical record")
	}

	content, size, err := s.store.Open(record.FilePath)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			s.logger.Warn().Uint("record_id", record.ID).Str("path", record.FilePath).Msg("medical record file missing")
			return nil, &NotFoundError{Message: "File not found on server"}
		}
		return nil, fmt.Errorf("failed to open medical record file: %w", err)
	}
	return &Download{Record: record, Content: content, Size: size}, nil
}
