package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/visitor"
	"genturix/internal/shared/errors"
)

func insideEntry(t *testing.T, condominiumID uint) *visitor.Entry {
	t.Helper()
	entry, err := visitor.NewEntry(condominiumID, 3, nil, "Juan Perez", "ID-123", "", "Torre A", false, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entry.SetID(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return entry
}

func TestCheckOut_ViewMatchesStoredExitTime(t *testing.T) {
	entry := insideEntry(t, 1)

	var storedExitAt time.Time
	entryRepo := &mockEntryRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Entry, error) {
			return entry, nil
		},
		CheckOutFunc: func(ctx context.Context, id uint, exitAt time.Time, notes string) error {
			storedExitAt = exitAt
			return nil
		},
	}

	uc := NewCheckOutUseCase(entryRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CheckOutCommand{
		EntryUUID:     entry.UUID(),
		CondominiumID: 1,
		Notes:         "salio por porton norte",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Entry.ExitAt == nil || !result.Entry.ExitAt.Equal(storedExitAt) {
		t.Errorf("view exit time = %v, want the persisted instant %v", result.Entry.ExitAt, storedExitAt)
	}
	if result.Entry.Status != visitor.EntryExited {
		t.Errorf("view status = %q, want %q", result.Entry.Status, visitor.EntryExited)
	}
}

func TestCheckOut_OtherTenantIsNotFound(t *testing.T) {
	entry := insideEntry(t, 4)

	checkedOut := false
	entryRepo := &mockEntryRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Entry, error) {
			return entry, nil
		},
		CheckOutFunc: func(ctx context.Context, id uint, exitAt time.Time, notes string) error {
			checkedOut = true
			return nil
		},
	}

	uc := NewCheckOutUseCase(entryRepo, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), CheckOutCommand{
		EntryUUID:     entry.UUID(),
		CondominiumID: 1,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
	if checkedOut {
		t.Error("an entry from another tenant must not be checked out")
	}
}

func TestCheckOut_RaceWithAnotherGuardIsNotFound(t *testing.T) {
	entry := insideEntry(t, 1)

	entryRepo := &mockEntryRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Entry, error) {
			return entry, nil
		},
		CheckOutFunc: func(ctx context.Context, id uint, exitAt time.Time, notes string) error {
			return visitor.ErrEntryNotFound
		},
	}

	uc := NewCheckOutUseCase(entryRepo, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), CheckOutCommand{
		EntryUUID:     entry.UUID(),
		CondominiumID: 1,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
}
