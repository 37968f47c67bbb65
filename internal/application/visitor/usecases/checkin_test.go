package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/visitor"
)

func testAuthorization(t *testing.T, condominiumID uint, validTo time.Time) *visitor.Authorization {
	t.Helper()
	auth, err := visitor.ReconstructAuthorization(
		42, "auth-uuid", condominiumID, 7, "Juan Perez", "ID-123", "ABC-123",
		visitor.AuthorizationTemporary,
		time.Now().Add(-time.Hour), validTo, true, "",
		time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return auth
}

func TestCheckIn_WithValidAuthorization(t *testing.T) {
	auth := testAuthorization(t, 1, time.Now().Add(time.Hour))

	var created *visitor.Entry
	authRepo := &mockAuthorizationRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Authorization, error) {
			return auth, nil
		},
	}
	entryRepo := &mockEntryRepository{
		CreateFunc: func(ctx context.Context, e *visitor.Entry) error {
			e.SetID(1)
			created = e
			return nil
		},
	}

	uc := NewCheckInUseCase(authRepo, entryRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CheckInCommand{
		CondominiumID:     1,
		GuardID:           3,
		AuthorizationUUID: "auth-uuid",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	if !result.Entry.IsAuthorized {
		t.Error("entry should be flagged authorized")
	}
	if result.Entry.Type != visitor.EntryPreauthorized {
		t.Errorf("entry type = %q, want %q", result.Entry.Type, visitor.EntryPreauthorized)
	}
	// Identity fields come from the authorization when the guard left them blank.
	if created.VisitorName() != "Juan Perez" {
		t.Errorf("visitor name = %q, want backfill from authorization", created.VisitorName())
	}
	if created.VehiclePlate() != "ABC-123" {
		t.Errorf("vehicle plate = %q, want backfill from authorization", created.VehiclePlate())
	}
}

func TestCheckIn_ExpiredAuthorizationStillSucceeds(t *testing.T) {
	auth := testAuthorization(t, 1, time.Now().Add(-time.Minute))

	authRepo := &mockAuthorizationRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Authorization, error) {
			return auth, nil
		},
	}
	entryRepo := &mockEntryRepository{
		CreateFunc: func(ctx context.Context, e *visitor.Entry) error {
			return e.SetID(1)
		},
	}

	uc := NewCheckInUseCase(authRepo, entryRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CheckInCommand{
		CondominiumID:     1,
		GuardID:           3,
		AuthorizationUUID: "auth-uuid",
	})
	if err != nil {
		t.Fatalf("an expired authorization must not block a check-in: %v", err)
	}
	if result.Entry.IsAuthorized {
		t.Error("entry against an expired authorization should be flagged unauthorized")
	}
	if result.Entry.Type != visitor.EntryPreauthorized {
		t.Errorf("entry type = %q, want %q", result.Entry.Type, visitor.EntryPreauthorized)
	}
}

func TestCheckIn_UnknownAuthorizationFallsBackToManual(t *testing.T) {
	authRepo := &mockAuthorizationRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Authorization, error) {
			return nil, nil
		},
	}
	entryRepo := &mockEntryRepository{
		CreateFunc: func(ctx context.Context, e *visitor.Entry) error {
			return e.SetID(1)
		},
	}

	uc := NewCheckInUseCase(authRepo, entryRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CheckInCommand{
		CondominiumID:     1,
		GuardID:           3,
		AuthorizationUUID: "no-such-uuid",
		VisitorName:       "Desconocido",
	})
	if err != nil {
		t.Fatalf("an unknown authorization must not block a check-in: %v", err)
	}
	if result.Entry.IsAuthorized {
		t.Error("entry should be flagged unauthorized")
	}
	if result.Entry.Type != visitor.EntryManual {
		t.Errorf("entry type = %q, want %q", result.Entry.Type, visitor.EntryManual)
	}
}

func TestCheckIn_OtherTenantAuthorizationIsIgnored(t *testing.T) {
	auth := testAuthorization(t, 99, time.Now().Add(time.Hour))

	authRepo := &mockAuthorizationRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*visitor.Authorization, error) {
			return auth, nil
		},
	}
	entryRepo := &mockEntryRepository{
		CreateFunc: func(ctx context.Context, e *visitor.Entry) error {
			return e.SetID(1)
		},
	}

	uc := NewCheckInUseCase(authRepo, entryRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), CheckInCommand{
		CondominiumID:     1,
		GuardID:           3,
		AuthorizationUUID: "auth-uuid",
		VisitorName:       "Juan Perez",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Entry.IsAuthorized {
		t.Error("an authorization from another tenant must not grant authorized status")
	}
	if result.Entry.Type != visitor.EntryManual {
		t.Errorf("entry type = %q, want %q", result.Entry.Type, visitor.EntryManual)
	}
}

func TestCheckIn_MissingVisitorName(t *testing.T) {
	uc := NewCheckInUseCase(&mockAuthorizationRepository{}, &mockEntryRepository{}, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), CheckInCommand{
		CondominiumID: 1,
		GuardID:       3,
	})
	if err == nil {
		t.Error("expected error for manual check-in without a visitor name")
	}
}
