package usecases

import (
	"context"
	"testing"

	"genturix/internal/domain/panicalert"
	"genturix/internal/shared/errors"
)

func activeEvent(t *testing.T, condominiumID uint) *panicalert.Event {
	t.Helper()
	event, err := panicalert.NewEvent(condominiumID, 9, "intrusion", "torre B", nil, nil, "")
	if err != nil {
		t.Fatalf("NewEvent() unexpected error: %v", err)
	}
	return event
}

func TestResolvePanic_Success(t *testing.T) {
	event := activeEvent(t, 1)

	updated := false
	panicRepo := &mockPanicRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*panicalert.Event, error) {
			return event, nil
		},
		UpdateFunc: func(ctx context.Context, e *panicalert.Event) error {
			updated = true
			return nil
		},
	}

	uc := NewResolvePanicUseCase(panicRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), ResolvePanicCommand{
		EventUUID:     event.UUID(),
		CondominiumID: 1,
		ResolvedBy:    11,
		Notes:         "falsa alarma",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Event.Status != panicalert.StatusResolved {
		t.Errorf("status = %v, want %v", result.Event.Status, panicalert.StatusResolved)
	}
	if !updated {
		t.Error("event should have been persisted")
	}
}

func TestResolvePanic_OtherTenantIsNotFound(t *testing.T) {
	event := activeEvent(t, 2)

	panicRepo := &mockPanicRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*panicalert.Event, error) {
			return event, nil
		},
	}

	uc := NewResolvePanicUseCase(panicRepo, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), ResolvePanicCommand{
		EventUUID:     event.UUID(),
		CondominiumID: 1,
		ResolvedBy:    11,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
}

func TestResolvePanic_AlreadyResolvedIsConflict(t *testing.T) {
	event := activeEvent(t, 1)
	if err := event.Resolve(11, ""); err != nil {
		t.Fatalf("Resolve() unexpected error: %v", err)
	}

	panicRepo := &mockPanicRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*panicalert.Event, error) {
			return event, nil
		},
	}

	uc := NewResolvePanicUseCase(panicRepo, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), ResolvePanicCommand{
		EventUUID:     event.UUID(),
		CondominiumID: 1,
		ResolvedBy:    11,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeConflict)
	}
}
