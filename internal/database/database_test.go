package database

import (
	"fmt"
	"testing"

	"github.com/vital110/doctor-portal-backend/internal/config"

	"gorm.io/gorm/logger"
)

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name()),
	}
	db, err := Open(cfg, logger.Default.LogMode(logger.Silent))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	for _, table := range []string{"admins", "patients", "doctors", "appointments", "payments",
		"medical_records", "doctor_leaves", "holidays", "admin_leaves", "admin_salaries",
		"clinic_settings", "audit_logs"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s was not created", table)
		}
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, logger.Default.LogMode(logger.Silent))
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
