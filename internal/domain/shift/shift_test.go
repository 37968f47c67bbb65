package shift

import (
	"errors"
	"testing"
	"time"
)

func TestNewShift_Validation(t *testing.T) {
	start := time.Now().Add(time.Hour)
	end := start.Add(8 * time.Hour)

	if _, err := NewShift(0, 3, start, end, "porton principal", ""); err == nil {
		t.Error("expected error for missing condominium")
	}
	if _, err := NewShift(1, 0, start, end, "porton principal", ""); err == nil {
		t.Error("expected error for missing guard")
	}
	if _, err := NewShift(1, 3, start, start, "porton principal", ""); err == nil {
		t.Error("expected error when end is not after start")
	}

	s, err := NewShift(1, 3, start, end, "porton principal", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Status() != StatusActive {
		t.Errorf("status = %v, want %v", s.Status(), StatusActive)
	}
}

func TestShift_Cancel(t *testing.T) {
	start := time.Now().Add(time.Hour)
	s, err := NewShift(1, 3, start, start.Add(8*time.Hour), "porton principal", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Cancel(); err != nil {
		t.Fatalf("Cancel() unexpected error: %v", err)
	}
	if s.Status() != StatusCancelled {
		t.Errorf("status = %v, want %v", s.Status(), StatusCancelled)
	}
	if s.CancelledAt() == nil {
		t.Error("cancelled time should be recorded")
	}

	if err := s.Cancel(); !errors.Is(err, ErrAlreadyCancelled) {
		t.Errorf("second Cancel() error = %v, want %v", err, ErrAlreadyCancelled)
	}
}
