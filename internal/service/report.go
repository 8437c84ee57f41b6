package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

// ReportService renders the flattened dashboard view as a PDF
type ReportService struct {
	ledger LedgerServiceInterface
}

// Ensure ReportService implements ReportServiceInterface
var _ ReportServiceInterface = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(ledger LedgerServiceInterface) *ReportService {
	return &ReportService{ledger: ledger}
}

// reportColumn describes one table column of a report section
type reportColumn struct {
	header string
	width  float64
	value  func(row *RequestRow) string
}

// sectionTitles maps row statuses to report section headings
var sectionTitles = map[RowStatus]string{
	RowStatusPending:   "Pending Requests",
	RowStatusOwned:     "Assigned Owned Assets",
	RowStatusPurchase:  "Open Purchases",
	RowStatusRental:    "Active Rentals",
	RowStatusCompleted: "Completed Requests",
}

// GenerateReport builds the PDF report. With a nil status it renders the
// unified report with one section per in-flight status; otherwise only the
// section for the given status. Returns the document bytes and a filename.
func (s *ReportService) GenerateReport(status *RowStatus) ([]byte, string, error) {
	view, err := s.ledger.ListRows(ListRowsFilters{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to collect report rows: %w", err)
	}

	sections := []RowStatus{RowStatusPending, RowStatusOwned, RowStatusPurchase, RowStatusRental}
	filename := "equipment-report.pdf"
	if status != nil {
		sections = []RowStatus{*status}
		filename = fmt.Sprintf("equipment-report-%s.pdf", strings.ToLower(string(*status)))
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Equipment Request Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Equipment Request Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, section := range sections {
		rows := filterByStatus(view.Rows, section)
		if len(rows) == 0 && status == nil {
			continue
		}
		s.renderSection(pdf, section, rows)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), filename, nil
}

// renderSection renders one status section grouped by operative unit
func (s *ReportService) renderSection(pdf *fpdf.Fpdf, status RowStatus, rows []RequestRow) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 8, sectionTitles[status], "", 1, "L", true, 0, "")
	pdf.Ln(2)

	if len(rows) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, "No entries", "", 1, "L", false, 0, "")
		pdf.Ln(4)
		return
	}

	columns := sectionColumns(status)

	for _, unit := range unitNames(rows) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, unit, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 8)
		for _, col := range columns {
			pdf.CellFormat(col.width, 6, col.header, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for i := range rows {
			row := &rows[i]
			if row.OperativeUnit != unit {
				continue
			}
			for _, col := range columns {
				pdf.CellFormat(col.width, 6, truncate(col.value(row), 60), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(3)
	}
	pdf.Ln(3)
}

// sectionColumns returns the table layout for a status section. The shared
// request columns come first, channel-specific columns follow.
func sectionColumns(status RowStatus) []reportColumn {
	columns := []reportColumn{
		{"Date", 22, func(r *RequestRow) string { return r.RequestDate }},
		{"Category", 35, func(r *RequestRow) string { return r.Category }},
		{"Description", 60, func(r *RequestRow) string { return r.Description }},
		{"Capacity", 28, func(r *RequestRow) string { return r.Capacity }},
		{"Qty", 12, func(r *RequestRow) string { return fmt.Sprintf("%d", r.Quantity) }},
		{"Need Date", 22, func(r *RequestRow) string { return r.NeedDate }},
	}

	switch status {
	case RowStatusOwned:
		columns = append(columns,
			reportColumn{"Asset", 25, func(r *RequestRow) string { return r.AssetInternalID }},
			reportColumn{"Brand / Model", 40, func(r *RequestRow) string {
				return strings.TrimSpace(r.AssetBrand + " " + r.AssetModel)
			}},
			reportColumn{"Available", 22, func(r *RequestRow) string { return r.AvailabilityDate }},
		)
	case RowStatusRental:
		columns = append(columns,
			reportColumn{"Months", 16, func(r *RequestRow) string {
				if r.RentalMonths == nil {
					return ""
				}
				return fmt.Sprintf("%d", *r.RentalMonths)
			}},
		)
	case RowStatusPurchase:
		columns = append(columns,
			reportColumn{"Vendor", 35, func(r *RequestRow) string { return r.Vendor }},
			reportColumn{"Delivery", 22, func(r *RequestRow) string { return r.DeliveryDate }},
		)
	default:
		columns = append(columns,
			reportColumn{"Comments", 50, func(r *RequestRow) string { return r.Comments }},
		)
	}

	return columns
}

// filterByStatus selects the rows of one section
func filterByStatus(rows []RequestRow, status RowStatus) []RequestRow {
	out := make([]RequestRow, 0, len(rows))
	for _, row := range rows {
		if row.Status == status {
			out = append(out, row)
		}
	}
	return out
}

// unitNames returns the distinct operative unit names of the rows, sorted
func unitNames(rows []RequestRow) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, row := range rows {
		if !seen[row.OperativeUnit] {
			seen[row.OperativeUnit] = true
			names = append(names, row.OperativeUnit)
		}
	}
	sort.Strings(names)
	return names
}

// truncate shortens long cell text so rows keep a single line
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
