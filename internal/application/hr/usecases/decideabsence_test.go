package usecases

import (
	"context"
	"testing"
	"time"

	"genturix/internal/domain/hr"
	"genturix/internal/shared/errors"
)

func pendingAbsence(t *testing.T, condominiumID uint) *hr.AbsenceRequest {
	t.Helper()
	from := time.Now().AddDate(0, 0, 7)
	request, err := hr.NewAbsenceRequest(condominiumID, 9, from, from.AddDate(0, 0, 2), "vacaciones")
	if err != nil {
		t.Fatalf("NewAbsenceRequest() unexpected error: %v", err)
	}
	return request
}

func TestDecideAbsence_Approve(t *testing.T) {
	request := pendingAbsence(t, 1)

	updated := false
	absenceRepo := &mockAbsenceRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*hr.AbsenceRequest, error) {
			return request, nil
		},
		UpdateFunc: func(ctx context.Context, r *hr.AbsenceRequest) error {
			updated = true
			return nil
		},
	}

	uc := NewDecideAbsenceUseCase(absenceRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), DecideAbsenceCommand{
		AbsenceUUID:   request.UUID(),
		CondominiumID: 1,
		DecidedBy:     5,
		Approved:      true,
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Absence.Status != hr.AbsenceApproved {
		t.Errorf("status = %v, want %v", result.Absence.Status, hr.AbsenceApproved)
	}
	if !updated {
		t.Error("decision should have been persisted")
	}
}

func TestDecideAbsence_OtherTenantIsNotFound(t *testing.T) {
	request := pendingAbsence(t, 2)

	absenceRepo := &mockAbsenceRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*hr.AbsenceRequest, error) {
			return request, nil
		},
	}

	uc := NewDecideAbsenceUseCase(absenceRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), DecideAbsenceCommand{
		AbsenceUUID:   request.UUID(),
		CondominiumID: 1,
		DecidedBy:     5,
		Approved:      true,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
}

func TestDecideAbsence_AlreadyDecidedIsConflict(t *testing.T) {
	request := pendingAbsence(t, 1)
	if err := request.Decide(false, 5, "sin cobertura"); err != nil {
		t.Fatalf("Decide() unexpected error: %v", err)
	}

	absenceRepo := &mockAbsenceRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*hr.AbsenceRequest, error) {
			return request, nil
		},
	}

	uc := NewDecideAbsenceUseCase(absenceRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), DecideAbsenceCommand{
		AbsenceUUID:   request.UUID(),
		CondominiumID: 1,
		DecidedBy:     5,
		Approved:      true,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeConflict)
	}
}
