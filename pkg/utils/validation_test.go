package utils

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type signupProbe struct {
	FullName string `json:"fullName" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,oneof=admin super_admin"`
	Age      int    `json:"age" binding:"omitempty,gt=0"`
}

type bookingProbe struct {
	DoctorID   uint   `json:"doctorId"`
	DoctorName string `json:"doctorName" binding:"required_without=DoctorID"`
}

func TestValidationMessage(t *testing.T) {
	InitValidator()

	tests := []struct {
		name  string
		probe signupProbe
		want  string
	}{
		{
			name:  "missing name",
			probe: signupProbe{Email: "a@x.com", Role: "admin"},
			want:  "fullName is required",
		},
		{
			name:  "short name",
			probe: signupProbe{FullName: "A", Email: "a@x.com", Role: "admin"},
			want:  "fullName must be at least 2 characters long",
		},
		{
			name:  "bad email",
			probe: signupProbe{FullName: "Ann", Email: "nope", Role: "admin"},
			want:  "email must be a valid email address",
		},
		{
			name:  "bad role",
			probe: signupProbe{FullName: "Ann", Email: "a@x.com", Role: "root"},
			want:  "role must be one of: admin, super_admin",
		},
		{
			name:  "negative number",
			probe: signupProbe{FullName: "Ann", Email: "a@x.com", Role: "admin", Age: -1},
			want:  "age must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.probe)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if got := ValidationMessage(err); got != tt.want {
				t.Errorf("ValidationMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationMessage_RequiredWithout(t *testing.T) {
	InitValidator()

	err := binding.Validator.ValidateStruct(bookingProbe{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := ValidationMessage(err); got != "doctorName is required" {
		t.Errorf("ValidationMessage() = %q", got)
	}
	if err := binding.Validator.ValidateStruct(bookingProbe{DoctorID: 3}); err != nil {
		t.Errorf("doctorId alone should pass: %v", err)
	}
}

func TestValidationMessage_DecodeErrors(t *testing.T) {
	var probe signupProbe
	err := json.Unmarshal([]byte(`{"fullName": 12}`), &probe)
	if got := ValidationMessage(err); got != "fullName has an invalid type, expected string" {
		t.Errorf("type error message = %q", got)
	}

	err = json.Unmarshal([]byte(`{"fullName":`), &probe)
	if got := ValidationMessage(err); got != "Invalid request body" {
		t.Errorf("syntax error message = %q", got)
	}

	_, err = strconv.Atoi("abc")
	if got := ValidationMessage(err); got != `Invalid number "abc"` {
		t.Errorf("number error message = %q", got)
	}
}
