package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/vital110/doctor-portal-backend/internal/config"
	"github.com/vital110/doctor-portal-backend/internal/database"
	"github.com/vital110/doctor-portal-backend/internal/models"
	"github.com/vital110/doctor-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", strings.ReplaceAll(t.Name(), "/", "_")),
		},
		Server:    config.ServerConfig{GinMode: gin.TestMode},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Clinic:    config.ClinicConfig{Location: time.UTC},
		Storage:   config.StorageConfig{UploadDir: t.TempDir(), MaxUploadBytes: 1 << 20},
		Cleanup:   config.CleanupConfig{Interval: time.Hour},
		RateLimit: config.RateLimitConfig{RPS: 1000, Burst: 1000},
	}

	db, err := database.Open(cfg.Database, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	svc := NewServices(db, cfg, storage.NewLocalStore(cfg.Storage.UploadDir), zerolog.Nop())
	svc.Auth.WithHashCost(bcrypt.MinCost)

	return &testServer{router: Setup(ctx, cfg, svc, zerolog.Nop()), db: db}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	return s.serve(t, req)
}

func (s *testServer) serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode %s: %v", rec.Body.String(), err)
		}
	}
	return rec, out
}

func (s *testServer) registerPatient(t *testing.T, email string) uint {
	t.Helper()
	rec, body := s.do(t, http.MethodPost, "/api/auth/register-patient", gin.H{
		"fullName": "Test Patient",
		"email":    email,
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register patient: %d %s", rec.Code, rec.Body.String())
	}
	return uint(body["patient"].(map[string]interface{})["id"].(float64))
}

func uploadRequest(t *testing.T, fields map[string]string, fileName string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if content != nil {
		part, err := w.CreateFormFile("medicalFile", fileName)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(content)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/upload-medical-record", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec, body := s.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK || body["status"] != "healthy" || body["success"] != true {
		t.Fatalf("health: %d %v", rec.Code, body)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestPatientRegistrationAndLogin(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/auth/register-patient", gin.H{
		"fullName": "A Patient",
		"email":    "a@x.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusCreated || body["success"] != true {
		t.Fatalf("register: %d %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("response leaks password: %s", rec.Body.String())
	}
	patient := body["patient"].(map[string]interface{})
	if patient["email"] != "a@x.com" || patient["fullName"] != "A Patient" {
		t.Errorf("patient = %v", patient)
	}

	rec, body = s.do(t, http.MethodPost, "/api/auth/register-patient", gin.H{
		"fullName": "A Patient",
		"email":    "a@x.com",
		"password": "secret1",
	})
	if rec.Code != http.StatusBadRequest || !strings.Contains(body["message"].(string), "already exists") {
		t.Errorf("duplicate register: %d %v", rec.Code, body)
	}

	for _, creds := range []gin.H{
		{"email": "a@x.com", "password": "wrong-password"},
		{"email": "missing@x.com", "password": "secret1"},
	} {
		rec, body = s.do(t, http.MethodPost, "/api/auth/login-patient", creds)
		if rec.Code != http.StatusUnauthorized || body["message"] != "Invalid email or password" {
			t.Errorf("login %v: %d %v", creds["email"], rec.Code, body)
		}
	}

	rec, body = s.do(t, http.MethodPost, "/api/auth/login-patient", gin.H{"email": "a@x.com", "password": "secret1"})
	if rec.Code != http.StatusOK || body["message"] != "Login successful" {
		t.Errorf("login: %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodPost, "/api/auth/register-patient", gin.H{"email": "b@x.com", "password": "secret1"})
	if rec.Code != http.StatusBadRequest || body["success"] != false {
		t.Errorf("missing fullName: %d %v", rec.Code, body)
	}
}

func TestAdminRegistration(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/auth/register-admin", gin.H{
		"fullName": "Boss",
		"email":    "boss@x.com",
		"password": "secret1",
		"role":     "manager",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register admin: %d %v", rec.Code, body)
	}

	rec, _ = s.do(t, http.MethodPost, "/api/auth/register-admin", gin.H{
		"fullName": "Boss",
		"email":    "other@x.com",
		"password": "secret1",
		"role":     "root",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad role: %d", rec.Code)
	}

	rec, body = s.do(t, http.MethodGet, "/api/auth/admin-count", nil)
	if rec.Code != http.StatusOK || body["count"] != float64(1) {
		t.Errorf("admin count: %d %v", rec.Code, body)
	}
}

func TestBookingAgainstDoctorLeave(t *testing.T) {
	s := newTestServer(t)
	patientID := s.registerPatient(t, "p@x.com")
	leaveDay := time.Now().UTC().AddDate(0, 0, 30).Format("2006-01-02")
	freeDay := time.Now().UTC().AddDate(0, 0, 31).Format("2006-01-02")

	rec, _ := s.do(t, http.MethodPost, "/api/auth/doctors", gin.H{"fullName": "Alice Smith", "specialization": "General"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create doctor: %d %s", rec.Code, rec.Body.String())
	}
	rec, body := s.do(t, http.MethodPost, "/api/auth/doctor-leaves", gin.H{
		"doctorName": "Alice Smith",
		"leaveDate":  leaveDay,
		"reason":     "Conference",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add leave: %d %v", rec.Code, body)
	}
	leaveID := uint(body["leave"].(map[string]interface{})["id"].(float64))

	booking := gin.H{
		"patientId":       patientID,
		"doctorName":      "Alice Smith",
		"appointmentDate": leaveDay,
		"appointmentTime": "10:00",
		"reason":          "Annual checkup",
	}
	rec, body = s.do(t, http.MethodPost, "/api/auth/book-appointment", booking)
	if rec.Code != http.StatusBadRequest || body["isOnLeave"] != true {
		t.Fatalf("booking on leave day: %d %v", rec.Code, body)
	}
	want := fmt.Sprintf("Dr. Alice Smith is on leave on %s. Reason: Conference", leaveDay)
	if body["message"] != want {
		t.Errorf("message = %q, want %q", body["message"], want)
	}

	var count int64
	s.db.Model(&models.Appointment{}).Count(&count)
	if count != 0 {
		t.Fatalf("appointments = %d after rejected booking", count)
	}

	rec, body = s.do(t, http.MethodGet, "/api/auth/check-doctor-leave?doctorName=Alice%20Smith&date="+leaveDay, nil)
	if rec.Code != http.StatusOK || body["isOnLeave"] != true {
		t.Errorf("check leave: %d %v", rec.Code, body)
	}

	booking["appointmentDate"] = freeDay
	rec, body = s.do(t, http.MethodPost, "/api/auth/book-appointment", booking)
	if rec.Code != http.StatusCreated {
		t.Fatalf("booking on free day: %d %v", rec.Code, body)
	}
	if status := body["appointment"].(map[string]interface{})["status"]; status != "pending" {
		t.Errorf("status = %v", status)
	}

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/auth/doctor-leaves/%d", leaveID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove leave: %d", rec.Code)
	}
	booking["appointmentDate"] = leaveDay
	rec, body = s.do(t, http.MethodPost, "/api/auth/book-appointment", booking)
	if rec.Code != http.StatusCreated {
		t.Errorf("booking after leave removal: %d %v", rec.Code, body)
	}

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/auth/doctor-leaves/%d", 9999), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("remove unknown leave: %d", rec.Code)
	}
}

func TestMedicalRecordUploadAndDownload(t *testing.T) {
	s := newTestServer(t)
	patientID := s.registerPatient(t, "p@x.com")
	fields := map[string]string{
		"patientId":  fmt.Sprint(patientID),
		"recordType": "test_report",
		"title":      "Blood test",
		"uploadedBy": "Dr. Alice",
	}

	rec, body := s.serve(t, uploadRequest(t, fields, "notes.txt", []byte("plain text, not a document")))
	if rec.Code != http.StatusBadRequest || body["message"] != "Only PDF files are allowed" {
		t.Errorf("non-pdf upload: %d %v", rec.Code, body)
	}
	rec, body = s.serve(t, uploadRequest(t, fields, "", nil))
	if rec.Code != http.StatusBadRequest || body["message"] != "Please select a PDF file to upload" {
		t.Errorf("upload without file: %d %v", rec.Code, body)
	}
	var count int64
	s.db.Model(&models.MedicalRecord{}).Count(&count)
	if count != 0 {
		t.Fatalf("records = %d after rejected uploads", count)
	}

	rec, body = s.serve(t, uploadRequest(t, fields, "blood.pdf", samplePDF))
	if rec.Code != http.StatusCreated {
		t.Fatalf("upload: %d %v", rec.Code, body)
	}
	recordID := uint(body["record"].(map[string]interface{})["id"].(float64))

	rec, _ = s.do(t, http.MethodGet, fmt.Sprintf("/api/auth/download-medical-record/%d", recordID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("download: %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="blood.pdf"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !bytes.Equal(rec.Body.Bytes(), samplePDF) {
		t.Error("downloaded bytes differ from upload")
	}

	var record models.MedicalRecord
	if err := s.db.First(&record, recordID).Error; err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(record.FilePath); err != nil {
		t.Fatal(err)
	}
	rec, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/auth/download-medical-record/%d", recordID), nil)
	if rec.Code != http.StatusNotFound || body["message"] != "File not found on server" {
		t.Errorf("download of missing file: %d %v", rec.Code, body)
	}

	rec, _ = s.do(t, http.MethodGet, "/api/auth/download-medical-record/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad record id: %d", rec.Code)
	}
}

func TestHolidayLifecycle(t *testing.T) {
	s := newTestServer(t)
	today := time.Now().UTC().Format("2006-01-02")

	rec, body := s.do(t, http.MethodPost, "/api/auth/holidays", gin.H{"date": today, "reason": "Clinic anniversary"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add holiday: %d %v", rec.Code, body)
	}
	id := uint(body["holiday"].(map[string]interface{})["id"].(float64))

	rec, body = s.do(t, http.MethodGet, "/api/auth/check-holiday", nil)
	if rec.Code != http.StatusOK || body["isHoliday"] != true {
		t.Errorf("check holiday: %d %v", rec.Code, body)
	}

	rec, _ = s.do(t, http.MethodDelete, fmt.Sprintf("/api/auth/holidays/%d", id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("remove holiday: %d", rec.Code)
	}

	rec, body = s.do(t, http.MethodGet, "/api/auth/holidays", nil)
	if list, _ := body["holidays"].([]interface{}); rec.Code != http.StatusOK || len(list) != 0 {
		t.Errorf("holidays after removal: %d %v", rec.Code, body)
	}
	rec, body = s.do(t, http.MethodGet, "/api/auth/check-holiday", nil)
	if rec.Code != http.StatusOK || body["isHoliday"] != false {
		t.Errorf("check holiday after removal: %d %v", rec.Code, body)
	}

	var stored models.Holiday
	if err := s.db.First(&stored, id).Error; err != nil || stored.IsActive {
		t.Errorf("holiday row = %+v, %v; want kept and inactive", stored, err)
	}
}

func TestClinicSettings(t *testing.T) {
	s := newTestServer(t)

	rec, body := s.do(t, http.MethodPost, "/api/auth/clinic-settings", gin.H{
		"workingHours": gin.H{"monday": gin.H{"open": "09:00", "close": "17:00"}},
	})
	if rec.Code != http.StatusOK || body["message"] != "Settings updated successfully" {
		t.Fatalf("update working hours: %d %v", rec.Code, body)
	}

	rec, body = s.do(t, http.MethodGet, "/api/auth/clinic-settings", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get settings: %d", rec.Code)
	}
	settings := body["settings"].(map[string]interface{})
	if !strings.Contains(settings["working_hours"].(string), `"open":"09:00"`) {
		t.Errorf("settings = %v", settings)
	}
}
