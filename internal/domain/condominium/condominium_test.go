package condominium

import (
	"testing"
	"time"
)

func TestNewCondominium_EnablesAllModules(t *testing.T) {
	condo, err := NewCondominium("Residencial Las Palmas", 10, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, m := range KnownModules() {
		if !condo.IsModuleEnabled(m) {
			t.Errorf("module %s should be enabled for a new condominium", m)
		}
	}
	if condo.BillingStatus() != BillingActive {
		t.Errorf("billing status = %v, want %v", condo.BillingStatus(), BillingActive)
	}
}

func TestNewCondominium_Validation(t *testing.T) {
	if _, err := NewCondominium("", 10, "USD"); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewCondominium("Las Palmas", 0, "USD"); err == nil {
		t.Error("expected error for zero seats")
	}
}

func TestCondominium_SetModule(t *testing.T) {
	condo, err := NewCondominium("Las Palmas", 10, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := condo.SetModule(ModuleSecurity, false); err != nil {
		t.Fatalf("SetModule() unexpected error: %v", err)
	}
	if condo.IsModuleEnabled(ModuleSecurity) {
		t.Error("security module should be disabled")
	}
	if !condo.IsModuleEnabled(ModuleVisitors) {
		t.Error("other modules should stay enabled")
	}

	if err := condo.SetModule("parking", true); err == nil {
		t.Error("expected error for unknown module")
	}
}

func TestCondominium_IsModuleEnabled_AbsentDefaultsToEnabled(t *testing.T) {
	condo, err := Reconstruct(
		1, "uuid-1", "Las Palmas", BillingActive, 10, "USD",
		map[ModuleName]bool{ModuleHR: false}, nil,
		time.Now(), time.Now(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if condo.IsModuleEnabled(ModuleHR) {
		t.Error("hr module should be disabled")
	}
	if !condo.IsModuleEnabled(ModuleSecurity) {
		t.Error("a module absent from the map should count as enabled")
	}
}

func TestCondominium_SetPriceOverride(t *testing.T) {
	condo, err := NewCondominium("Las Palmas", 10, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := condo.SetPriceOverride(-1); err == nil {
		t.Error("expected error for negative override")
	}

	if err := condo.SetPriceOverride(750); err != nil {
		t.Fatalf("SetPriceOverride() unexpected error: %v", err)
	}
	override := condo.SeatPriceOverride()
	if override == nil || *override != 750 {
		t.Errorf("override = %v, want 750", override)
	}

	// Zero clears the override so the global price applies again.
	if err := condo.SetPriceOverride(0); err != nil {
		t.Fatalf("SetPriceOverride(0) unexpected error: %v", err)
	}
	if condo.SeatPriceOverride() != nil {
		t.Error("override should be cleared by zero")
	}
}

func TestCondominium_SetSeatCount(t *testing.T) {
	condo, err := NewCondominium("Las Palmas", 10, "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := condo.SetSeatCount(0); err == nil {
		t.Error("expected error for zero seats")
	}
	if err := condo.SetSeatCount(25); err != nil {
		t.Fatalf("SetSeatCount() unexpected error: %v", err)
	}
	if condo.SeatCount() != 25 {
		t.Errorf("seat count = %d, want 25", condo.SeatCount())
	}
}
