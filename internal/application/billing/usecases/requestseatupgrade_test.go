package usecases

import (
	"context"
	"testing"

	"genturix/internal/domain/billing"
	"genturix/internal/shared/errors"
)

func TestRequestSeatUpgrade_Success(t *testing.T) {
	var created *billing.SeatUpgradeRequest
	upgradeRepo := &mockUpgradeRepository{
		CreateFunc: func(ctx context.Context, r *billing.SeatUpgradeRequest) error {
			created = r
			return nil
		},
	}

	uc := NewRequestSeatUpgradeUseCase(upgradeRepo, noopLogger{})

	result, err := uc.Execute(context.Background(), RequestSeatUpgradeCommand{
		CondominiumID:  1,
		RequestedBy:    7,
		RequestedSeats: 25,
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("request should have been persisted")
	}
	if result.Request.Status != billing.UpgradePending {
		t.Errorf("status = %v, want %v", result.Request.Status, billing.UpgradePending)
	}
	if result.Request.RequestedSeats != 25 {
		t.Errorf("requested seats = %d, want 25", result.Request.RequestedSeats)
	}
}

func TestRequestSeatUpgrade_InvalidSeats(t *testing.T) {
	uc := NewRequestSeatUpgradeUseCase(&mockUpgradeRepository{}, noopLogger{})

	_, err := uc.Execute(context.Background(), RequestSeatUpgradeCommand{
		CondominiumID:  1,
		RequestedBy:    7,
		RequestedSeats: 0,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeValidation)
	}
}

func TestRequestSeatUpgrade_PendingExistsIsConflict(t *testing.T) {
	upgradeRepo := &mockUpgradeRepository{
		CreateFunc: func(ctx context.Context, r *billing.SeatUpgradeRequest) error {
			return billing.ErrPendingExists
		},
	}

	uc := NewRequestSeatUpgradeUseCase(upgradeRepo, noopLogger{})

	_, err := uc.Execute(context.Background(), RequestSeatUpgradeCommand{
		CondominiumID:  1,
		RequestedBy:    7,
		RequestedSeats: 25,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeConflict {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeConflict)
	}
}
