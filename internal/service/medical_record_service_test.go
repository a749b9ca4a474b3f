package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/vital110/doctor-portal-backend/internal/models"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

func storedFiles(t *testing.T, f *fixture) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(f.store.Dir())
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	return entries
}

func countRecords(t *testing.T, f *fixture) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&models.MedicalRecord{}).Count(&n).Error; err != nil {
		t.Fatal(err)
	}
	return n
}

func TestUpload_StoresPDF(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.patient(t, "p@x.com")

	record, err := f.records.Upload(ctx, UploadInput{
		PatientID:  patient.ID,
		RecordType: models.RecordTestReport,
		Title:      " Blood test ",
		UploadedBy: "Dr. Alice",
		FileName:   "blood.pdf",
		File:       bytes.NewReader(samplePDF),
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if record.Title != "Blood test" || record.FileName != "blood.pdf" || record.FileSize != int64(len(samplePDF)) {
		t.Errorf("record = %+v", record)
	}
	if !strings.HasPrefix(record.FilePath, f.store.Dir()) || !strings.HasSuffix(record.FilePath, ".pdf") {
		t.Errorf("FilePath = %q", record.FilePath)
	}

	download, err := f.records.Open(ctx, record.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer download.Content.Close()
	body, _ := io.ReadAll(download.Content)
	if !bytes.Equal(body, samplePDF) || download.Size != int64(len(samplePDF)) {
		t.Errorf("downloaded %d bytes, want %d", len(body), len(samplePDF))
	}

	list, err := f.records.ListByPatient(ctx, patient.ID)
	if err != nil || len(list) != 1 {
		t.Errorf("ListByPatient = %d, %v", len(list), err)
	}
}

func TestUpload_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.patient(t, "p@x.com")

	valid := UploadInput{
		PatientID:  patient.ID,
		RecordType: models.RecordPrescription,
		Title:      "Prescription",
		UploadedBy: "Dr. Alice",
		FileName:   "rx.pdf",
	}

	tests := []struct {
		name    string
		file    io.Reader
		mutate  func(*UploadInput)
		wantErr string
		missing bool
	}{
		{name: "no file", wantErr: "Please select a PDF file to upload"},
		{name: "empty file", file: bytes.NewReader(nil), wantErr: "Please select a PDF file to upload"},
		{name: "not a pdf", file: strings.NewReader("just some text pretending to be a pdf"), wantErr: "Only PDF files are allowed"},
		{name: "too large", file: bytes.NewReader(append(append([]byte{}, samplePDF...), make([]byte, 1<<20)...)), wantErr: "File size cannot exceed 1MB"},
		{name: "missing title", file: bytes.NewReader(samplePDF), mutate: func(in *UploadInput) { in.Title = " " },
			wantErr: "Patient ID, record type, title, and uploader name are required"},
		{name: "bad record type", file: bytes.NewReader(samplePDF), mutate: func(in *UploadInput) { in.RecordType = "xray" },
			wantErr: "recordType must be one of: prescription, test_report, diagnosis, other"},
		{name: "unknown patient", file: bytes.NewReader(samplePDF), mutate: func(in *UploadInput) { in.PatientID = 999 }, missing: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			in.File = tt.file
			if tt.mutate != nil {
				tt.mutate(&in)
			}
			_, err := f.records.Upload(ctx, in)
			if tt.missing {
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("err = %v, want NotFoundError", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Message != tt.wantErr {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}

	if n := countRecords(t, f); n != 0 {
		t.Errorf("records = %d, want 0", n)
	}
	if files := storedFiles(t, f); len(files) != 0 {
		t.Errorf("rejected uploads left %d files behind", len(files))
	}
}

func TestOpen_MissingFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	patient := f.patient(t, "p@x.com")

	record, err := f.records.Upload(ctx, UploadInput{
		PatientID:  patient.ID,
		RecordType: models.RecordDiagnosis,
		Title:      "Diagnosis",
		UploadedBy: "Dr. Alice",
		File:       bytes.NewReader(samplePDF),
	})
	if err != nil {
		t.Fatal(err)
	}
	if record.FileName != "document.pdf" {
		t.Errorf("FileName = %q, want document.pdf", record.FileName)
	}
	if err := os.Remove(record.FilePath); err != nil {
		t.Fatal(err)
	}

	_, err = f.records.Open(ctx, record.ID)
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Message != "File not found on server" {
		t.Errorf("err = %v, want file not found", err)
	}

	_, err = f.records.Open(ctx, 999)
	if !errors.As(err, &nf) || nf.Message != "Medical record not found" {
		t.Errorf("err = %v, want record not found", err)
	}
}
