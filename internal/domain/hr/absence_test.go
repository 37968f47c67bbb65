package hr

import (
	"errors"
	"testing"
	"time"
)

func TestNewAbsenceRequest_Validation(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 3)

	if _, err := NewAbsenceRequest(1, 2, time.Time{}, to, "vacaciones"); err == nil {
		t.Error("expected error for missing from date")
	}
	if _, err := NewAbsenceRequest(1, 2, to, from, "vacaciones"); err == nil {
		t.Error("expected error when to is before from")
	}

	req, err := NewAbsenceRequest(1, 2, from, from, "cita medica")
	if err != nil {
		t.Fatalf("single-day absence should be allowed: %v", err)
	}
	if req.Status() != AbsencePending {
		t.Errorf("status = %v, want %v", req.Status(), AbsencePending)
	}
}

func TestAbsenceRequest_Decide(t *testing.T) {
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	req, err := NewAbsenceRequest(1, 2, from, from.AddDate(0, 0, 3), "vacaciones")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := req.Decide(true, 9, "aprobado"); err != nil {
		t.Fatalf("Decide() unexpected error: %v", err)
	}
	if req.Status() != AbsenceApproved {
		t.Errorf("status = %v, want %v", req.Status(), AbsenceApproved)
	}

	if err := req.Decide(false, 10, ""); !errors.Is(err, ErrAbsenceDecided) {
		t.Errorf("second Decide() error = %v, want %v", err, ErrAbsenceDecided)
	}
}

func TestAttendance_ClockOut(t *testing.T) {
	att, err := NewAttendance(1, 2, "turno de noche")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !att.IsOpen() {
		t.Fatal("new attendance record should be open")
	}

	if err := att.ClockOut(); err != nil {
		t.Fatalf("ClockOut() unexpected error: %v", err)
	}
	if att.IsOpen() {
		t.Error("record should be closed after clock-out")
	}
	if err := att.ClockOut(); !errors.Is(err, ErrNotClockedIn) {
		t.Errorf("second ClockOut() error = %v, want %v", err, ErrNotClockedIn)
	}
}
