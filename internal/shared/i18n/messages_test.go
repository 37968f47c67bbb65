package i18n

import (
	"strings"
	"testing"
)

func TestDefault_IsSpanish(t *testing.T) {
	tests := []struct {
		key     string
		keyword string
	}{
		{MsgApartmentRequired, "apartamento"},
		{MsgBadgeRequired, "placa"},
		{MsgPlateInvalid, "placa"},
		{MsgVisitorInside, "dentro"},
		{MsgInvalidCredentials, "credenciales"},
		{MsgModuleDisabled, "deshabilitado"},
		{MsgPendingUpgradeExists, "pendiente"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := Default(tt.key)
			if !strings.Contains(got, tt.keyword) {
				t.Errorf("Default(%q) = %q, want it to contain %q", tt.key, got, tt.keyword)
			}
		})
	}
}

func TestT_LanguageSelection(t *testing.T) {
	if got := T("en", MsgVisitorInside); !strings.Contains(got, "inside") {
		t.Errorf("T(en) = %q, want the English message", got)
	}
	if got := T("es", MsgVisitorInside); !strings.Contains(got, "dentro") {
		t.Errorf("T(es) = %q, want the Spanish message", got)
	}
	// Unknown preferences fall back to Spanish, the default tenant language.
	if got := T("fr", MsgVisitorInside); !strings.Contains(got, "dentro") {
		t.Errorf("T(fr) = %q, want the Spanish fallback", got)
	}
	if got := T("", MsgVisitorInside); !strings.Contains(got, "dentro") {
		t.Errorf("T() = %q, want the Spanish fallback", got)
	}
}
