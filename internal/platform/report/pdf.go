package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Hospital is the static identity block printed on receipts and reports.
type Hospital struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// ReceiptData is the single billing record a receipt is rendered from.
type ReceiptData struct {
	BillID     int64
	Patient    string
	NationalID string
	BillDate   string
	Status     string
	Details    string
	Amount     decimal.Decimal
	Currency   string
	Hospital   Hospital
}

const cellTextLimit = 60

// Truncate shortens free-text cell values the way the console tables do.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Filename composes the suggested download name
// <Kind>_<Entity>_<Identifier>.pdf, with spaces made filesystem-safe.
func Filename(kind, entity, identifier string) string {
	clean := func(s string) string { return strings.ReplaceAll(s, " ", "_") }
	return fmt.Sprintf("%s_%s_%s.pdf", clean(kind), clean(entity), clean(identifier))
}

func newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()
	return pdf
}

// TabularReport renders a titled table, one row per record. meta lines are
// printed under the title (patient info, generation timestamp). Zero rows
// produce a "no records" notice, never an error.
func TabularReport(title string, meta []string, headers []string, rows [][]string) ([]byte, error) {
	pdf := newDoc()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(30, 136, 229)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, line := range meta {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	if len(meta) > 0 {
		pdf.Ln(6)
	}

	if len(rows) == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.CellFormat(0, 10, "No records found.", "", 1, "L", false, 0, "")
	} else {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colW := (pageW - left - right) / float64(len(headers))

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(30, 136, 229)
		pdf.SetTextColor(255, 255, 255)
		for _, h := range headers {
			pdf.CellFormat(colW, 9, h, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFillColor(240, 248, 255)
		for _, row := range rows {
			for i := 0; i < len(headers); i++ {
				var cell string
				if i < len(row) {
					cell = Truncate(row[i], cellTextLimit)
				}
				pdf.CellFormat(colW, 8, cell, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	pdf.Ln(12)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 5, "This report is confidential and for medical use only.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, "Generated by Hospital Management System", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render tabular report: %w", err)
	}
	return buf.Bytes(), nil
}

// Receipt renders a billing receipt: hospital header, key/value table with
// the amount as currency to two decimals, and a static footer.
func Receipt(d ReceiptData) ([]byte, error) {
	pdf := newDoc()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(30, 136, 229)
	pdf.CellFormat(0, 12, d.Hospital.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 6, d.Hospital.Address, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Phone: %s | Email: %s", d.Hospital.Phone, d.Hospital.Email), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(46, 125, 50)
	pdf.CellFormat(0, 10, "BILLING RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	details := d.Details
	if details == "" {
		details = "General Consultation"
	}
	currency := d.Currency
	if currency == "" {
		currency = "$"
	}
	lines := [][2]string{
		{"Bill ID", fmt.Sprintf("#%d", d.BillID)},
		{"Patient Name", d.Patient},
		{"National ID", d.NationalID},
		{"Bill Date", d.BillDate},
		{"Status", d.Status},
		{"Details", Truncate(details, cellTextLimit)},
		{"Amount", currency + d.Amount.StringFixed(2)},
	}

	const labelW, valueW = 50.0, 130.0
	pdf.SetTextColor(0, 0, 0)
	for i, kv := range lines {
		last := i == len(lines)-1
		if last {
			pdf.SetFont("Arial", "B", 13)
			pdf.SetFillColor(232, 245, 232)
		} else {
			pdf.SetFont("Arial", "", 11)
			pdf.SetFillColor(240, 248, 255)
		}
		pdf.CellFormat(labelW, 9, kv[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(valueW, 9, kv[1], "1", 1, "L", true, 0, "")
	}

	pdf.Ln(14)
	pdf.SetFont("Arial", "I", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 5, fmt.Sprintf("Thank you for choosing %s", d.Hospital.Name), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "This is a computer-generated receipt.", "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, "Issued "+time.Now().Format("January 2, 2006"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
