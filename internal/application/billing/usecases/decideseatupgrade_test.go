package usecases

import (
	"context"
	"testing"

	"genturix/internal/domain/billing"
	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
)

func pendingUpgrade(t *testing.T, condominiumID uint, seats int) *billing.SeatUpgradeRequest {
	t.Helper()
	request, err := billing.NewSeatUpgradeRequest(condominiumID, 7, seats)
	if err != nil {
		t.Fatalf("NewSeatUpgradeRequest() unexpected error: %v", err)
	}
	return request
}

func TestDecideSeatUpgrade_ApprovalRaisesSeatCount(t *testing.T) {
	condo := testCondominium(t, 1, nil)
	request := pendingUpgrade(t, 1, 25)

	var updatedCondo *condominium.Condominium
	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
		UpdateFunc: func(ctx context.Context, c *condominium.Condominium) error {
			updatedCondo = c
			return nil
		},
	}
	upgradeRepo := &mockUpgradeRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
			return request, nil
		},
	}

	var appended *billing.Transaction
	ledgerRepo := &mockLedgerRepository{
		AppendFunc: func(ctx context.Context, tx *billing.Transaction) error {
			appended = tx
			return nil
		},
	}

	uc := NewDecideSeatUpgradeUseCase(upgradeRepo, condoRepo, ledgerRepo, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), DecideSeatUpgradeCommand{
		RequestUUID: request.UUID(),
		DecidedBy:   3,
		Approved:    true,
		Notes:       "growth",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Request.Status != billing.UpgradeApproved {
		t.Errorf("status = %v, want %v", result.Request.Status, billing.UpgradeApproved)
	}
	if result.SeatCount != 25 {
		t.Errorf("SeatCount = %d, want 25", result.SeatCount)
	}
	if updatedCondo == nil {
		t.Fatal("condominium should have been persisted")
	}
	if appended == nil {
		t.Fatal("a ledger entry should have been appended")
	}
	if appended.Type != billing.TransactionSeatChange {
		t.Errorf("ledger entry type = %v, want %v", appended.Type, billing.TransactionSeatChange)
	}
}

func TestDecideSeatUpgrade_RejectionLeavesSeatCount(t *testing.T) {
	condo := testCondominium(t, 1, nil)
	request := pendingUpgrade(t, 1, 25)

	updateCalled := false
	condoRepo := &mockCondominiumRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*condominium.Condominium, error) {
			return condo, nil
		},
		UpdateFunc: func(ctx context.Context, c *condominium.Condominium) error {
			updateCalled = true
			return nil
		},
	}
	upgradeRepo := &mockUpgradeRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
			return request, nil
		},
	}

	uc := NewDecideSeatUpgradeUseCase(upgradeRepo, condoRepo, &mockLedgerRepository{}, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), DecideSeatUpgradeCommand{
		RequestUUID: request.UUID(),
		DecidedBy:   3,
		Approved:    false,
		Notes:       "not budgeted",
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.Request.Status != billing.UpgradeRejected {
		t.Errorf("status = %v, want %v", result.Request.Status, billing.UpgradeRejected)
	}
	if result.SeatCount != 10 {
		t.Errorf("SeatCount = %d, want the unchanged 10", result.SeatCount)
	}
	if updateCalled {
		t.Error("a rejection must not touch the condominium")
	}
}

func TestDecideSeatUpgrade_MissingOrDecidedIsNotFound(t *testing.T) {
	decided := pendingUpgrade(t, 1, 25)
	if err := decided.Decide(true, 3, ""); err != nil {
		t.Fatalf("Decide() unexpected error: %v", err)
	}

	tests := []struct {
		name        string
		upgradeRepo *mockUpgradeRepository
	}{
		{
			name: "unknown request",
			upgradeRepo: &mockUpgradeRepository{
				GetByUUIDFunc: func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
					return nil, nil
				},
			},
		},
		{
			name: "already decided",
			upgradeRepo: &mockUpgradeRepository{
				GetByUUIDFunc: func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
					return decided, nil
				},
			},
		},
		{
			name: "lost the conditional update",
			upgradeRepo: &mockUpgradeRepository{
				GetByUUIDFunc: func(ctx context.Context, uid string) (*billing.SeatUpgradeRequest, error) {
					return pendingUpgrade(t, 1, 25), nil
				},
				UpdateDecisionFunc: func(ctx context.Context, r *billing.SeatUpgradeRequest) error {
					return billing.ErrRequestDecided
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewDecideSeatUpgradeUseCase(tt.upgradeRepo, &mockCondominiumRepository{}, &mockLedgerRepository{}, newTestRecorder(), noopLogger{})

			_, err := uc.Execute(context.Background(), DecideSeatUpgradeCommand{
				RequestUUID: "request-uuid",
				DecidedBy:   3,
				Approved:    true,
			})

			appErr, ok := err.(*errors.AppError)
			if !ok {
				t.Fatalf("error type = %T, want *errors.AppError", err)
			}
			if appErr.Type != errors.ErrorTypeNotFound {
				t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
			}
		})
	}
}
