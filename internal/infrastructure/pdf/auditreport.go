// Package pdf renders audit log exports.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"genturix/internal/domain/audit"
)

// AuditReportBuilder renders audit entries into a paginated PDF table.
type AuditReportBuilder struct{}

func NewAuditReportBuilder() *AuditReportBuilder {
	return &AuditReportBuilder{}
}

// Build renders the report and returns the PDF bytes. scope describes whose
// entries are included and lands in the report header.
func (b *AuditReportBuilder) Build(scope string, entries []*audit.Entry, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetTitle("Audit Report", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "Audit Report")
	doc.Ln(8)

	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 6, fmt.Sprintf("Scope: %s", scope))
	doc.Ln(5)
	doc.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.UTC().Format(time.RFC3339)))
	doc.Ln(5)
	doc.Cell(0, 6, fmt.Sprintf("Entries: %d", len(entries)))
	doc.Ln(10)

	b.writeHeader(doc)
	doc.SetFont("Helvetica", "", 8)
	for _, e := range entries {
		if doc.GetY() > 185 {
			doc.AddPage()
			b.writeHeader(doc)
			doc.SetFont("Helvetica", "", 8)
		}
		b.writeRow(doc, e)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render audit report: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *AuditReportBuilder) writeHeader(doc *fpdf.Fpdf) {
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(35, 7, "Timestamp", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, 7, "Event", "1", 0, "L", true, 0, "")
	doc.CellFormat(55, 7, "User", "1", 0, "L", true, 0, "")
	doc.CellFormat(50, 7, "Resource", "1", 0, "L", true, 0, "")
	doc.CellFormat(65, 7, "Details", "1", 0, "L", true, 0, "")
	doc.CellFormat(30, 7, "IP", "1", 1, "L", true, 0, "")
}

func (b *AuditReportBuilder) writeRow(doc *fpdf.Fpdf, e *audit.Entry) {
	doc.CellFormat(35, 6, e.CreatedAt.UTC().Format("2006-01-02 15:04:05"), "1", 0, "L", false, 0, "")
	doc.CellFormat(40, 6, truncate(string(e.EventType), 28), "1", 0, "L", false, 0, "")
	doc.CellFormat(55, 6, truncate(e.UserUUID, 38), "1", 0, "L", false, 0, "")
	doc.CellFormat(50, 6, truncate(e.Resource, 34), "1", 0, "L", false, 0, "")
	doc.CellFormat(65, 6, truncate(e.Details, 46), "1", 0, "L", false, 0, "")
	doc.CellFormat(30, 6, e.IPAddress, "1", 1, "L", false, 0, "")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
