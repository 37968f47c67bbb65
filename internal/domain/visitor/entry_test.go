package visitor

import (
	"errors"
	"testing"
	"time"
)

func TestNewEntry_TypeFollowsAuthorization(t *testing.T) {
	authID := uint(9)

	pre, err := NewEntry(1, 3, &authID, "Juan Perez", "ID-123", "", "Torre A", true, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pre.Type() != EntryPreauthorized {
		t.Errorf("entry type = %v, want %v", pre.Type(), EntryPreauthorized)
	}
	if pre.Status() != EntryInside {
		t.Errorf("entry status = %v, want %v", pre.Status(), EntryInside)
	}

	manual, err := NewEntry(1, 3, nil, "Desconocido", "", "", "", false, "sin autorizacion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manual.Type() != EntryManual {
		t.Errorf("entry type = %v, want %v", manual.Type(), EntryManual)
	}
	if manual.IsAuthorized() {
		t.Error("manual entry should not be flagged authorized")
	}
}

func TestNewEntry_RequiredFields(t *testing.T) {
	if _, err := NewEntry(0, 3, nil, "Juan", "", "", "", false, ""); err == nil {
		t.Error("expected error for missing condominium")
	}
	if _, err := NewEntry(1, 0, nil, "Juan", "", "", "", false, ""); err == nil {
		t.Error("expected error for missing guard")
	}
	if _, err := NewEntry(1, 3, nil, "", "", "", "", false, ""); err == nil {
		t.Error("expected error for missing visitor name")
	}
}

func TestEntry_CheckOut(t *testing.T) {
	entry, err := NewEntry(1, 3, nil, "Juan Perez", "", "", "", false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exitAt := time.Date(2026, 4, 1, 18, 30, 0, 0, time.UTC)
	if err := entry.CheckOut(exitAt, "salio por porton norte"); err != nil {
		t.Fatalf("CheckOut() unexpected error: %v", err)
	}
	if entry.Status() != EntryExited {
		t.Errorf("entry status = %v, want %v", entry.Status(), EntryExited)
	}
	if entry.ExitAt() == nil || !entry.ExitAt().Equal(exitAt) {
		t.Errorf("exit time = %v, want the supplied instant %v", entry.ExitAt(), exitAt)
	}
	if entry.Notes() != "salio por porton norte" {
		t.Errorf("notes = %q, want checkout notes", entry.Notes())
	}

	if err := entry.CheckOut(exitAt, ""); !errors.Is(err, ErrAlreadyExited) {
		t.Errorf("second CheckOut() error = %v, want %v", err, ErrAlreadyExited)
	}
}
