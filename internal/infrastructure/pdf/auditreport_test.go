package pdf

import (
	"bytes"
	"testing"
	"time"

	"genturix/internal/domain/audit"
)

func TestBuild_ProducesPDF(t *testing.T) {
	entries := []*audit.Entry{
		{
			EventType: audit.EventLogin,
			UserUUID:  "user-uuid",
			Resource:  "auth",
			Details:   "successful login",
			IPAddress: "203.0.113.7",
			CreatedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
		},
	}

	out, err := NewAuditReportBuilder().Build("condominium/las-palmas", entries, time.Now())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
}

func TestBuild_EmptyReport(t *testing.T) {
	out, err := NewAuditReportBuilder().Build("all", nil, time.Now())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if len(out) == 0 {
		t.Error("an empty report should still render")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a very long detail string", 10); len(got) != 10 {
		t.Errorf("truncated length = %d, want 10", len(got))
	}
}
