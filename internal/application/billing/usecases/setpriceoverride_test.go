package usecases

import (
	"context"
	"testing"

	"genturix/internal/domain/condominium"
	"genturix/internal/shared/errors"
)

func TestSetPriceOverride_NegativePriceIsRejected(t *testing.T) {
	uc := NewSetPriceOverrideUseCase(&mockCondominiumRepository{}, &mockPricingRepository{}, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), SetPriceOverrideCommand{
		CondominiumUUID: "condo-uuid",
		SeatPriceCents:  -100,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeValidation {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeValidation)
	}
}

func TestSetPriceOverride_SetsOverride(t *testing.T) {
	condo := testCondominium(t, 1, nil)

	var updated *condominium.Condominium
	condoRepo := &mockCondominiumRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*condominium.Condominium, error) {
			return condo, nil
		},
		UpdateFunc: func(ctx context.Context, c *condominium.Condominium) error {
			updated = c
			return nil
		},
	}

	uc := NewSetPriceOverrideUseCase(condoRepo, &mockPricingRepository{}, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), SetPriceOverrideCommand{
		CondominiumUUID: "condo-uuid",
		SeatPriceCents:  750,
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.EffectivePriceCents != 750 {
		t.Errorf("EffectivePriceCents = %d, want 750", result.EffectivePriceCents)
	}
	if !result.OverrideApplied {
		t.Error("OverrideApplied should be true")
	}
	if updated == nil {
		t.Fatal("condominium should have been persisted")
	}
	if o := updated.SeatPriceOverride(); o == nil || *o != 750 {
		t.Errorf("persisted override = %v, want 750", o)
	}
}

func TestSetPriceOverride_ZeroClearsOverride(t *testing.T) {
	override := int64(900)
	condo := testCondominium(t, 1, &override)

	condoRepo := &mockCondominiumRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*condominium.Condominium, error) {
			return condo, nil
		},
	}

	uc := NewSetPriceOverrideUseCase(condoRepo, &mockPricingRepository{}, newTestRecorder(), noopLogger{})

	result, err := uc.Execute(context.Background(), SetPriceOverrideCommand{
		CondominiumUUID: "condo-uuid",
		SeatPriceCents:  0,
	})
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if result.EffectivePriceCents != 500 {
		t.Errorf("EffectivePriceCents = %d, want the global 500", result.EffectivePriceCents)
	}
	if result.OverrideApplied {
		t.Error("OverrideApplied should be false after clearing")
	}
	if condo.SeatPriceOverride() != nil {
		t.Error("override should have been cleared")
	}
}

func TestSetPriceOverride_UnknownCondominium(t *testing.T) {
	condoRepo := &mockCondominiumRepository{
		GetByUUIDFunc: func(ctx context.Context, uid string) (*condominium.Condominium, error) {
			return nil, nil
		},
	}

	uc := NewSetPriceOverrideUseCase(condoRepo, &mockPricingRepository{}, newTestRecorder(), noopLogger{})

	_, err := uc.Execute(context.Background(), SetPriceOverrideCommand{
		CondominiumUUID: "missing",
		SeatPriceCents:  750,
	})

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Type != errors.ErrorTypeNotFound {
		t.Errorf("error type = %v, want %v", appErr.Type, errors.ErrorTypeNotFound)
	}
}
