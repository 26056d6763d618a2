package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ContentType is the MIME type of every rendered payslip.
const ContentType = "application/pdf"

// WeekLine is one row of the weekly earnings table.
type WeekLine struct {
	WeekNumber     int
	DateRange      string
	RegularMinutes int
	LateMinutes    int
	WeeklySalary   decimal.Decimal
}

// Data carries everything printed on a payslip. Monetary amounts are
// expected pre-rounded to two decimal places.
type Data struct {
	EmployeeNumber  int
	EmployeeName    string
	PeriodLabel     string
	HourlyRate      decimal.Decimal
	Weeks           []WeekLine
	GrossSalary     decimal.Decimal
	SSS             decimal.Decimal
	PhilHealth      decimal.Decimal
	PagIbig         decimal.Decimal
	WithholdingTax  decimal.Decimal
	TotalDeductions decimal.Decimal
	MonthlyBenefits decimal.Decimal
	NetPay          decimal.Decimal
}

// Renderer produces payslip PDFs. Safe for concurrent use; each render
// builds its own document.
type Renderer struct {
	companyName string
}

func NewRenderer(companyName string) *Renderer {
	return &Renderer{companyName: companyName}
}

// Render lays out a single-page A4 payslip and returns the PDF bytes.
func (r *Renderer) Render(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, r.companyName)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Payslip - %s", data.PeriodLabel))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s (#%d)", data.EmployeeName, data.EmployeeNumber))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Hourly Rate: %s", data.HourlyRate.StringFixed(2)))
	pdf.Ln(10)

	r.weeklyTable(pdf, data.Weeks)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	r.amountLine(pdf, "Gross Salary", data.GrossSalary)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	r.amountLine(pdf, "SSS", data.SSS)
	r.amountLine(pdf, "PhilHealth", data.PhilHealth)
	r.amountLine(pdf, "Pag-IBIG", data.PagIbig)
	r.amountLine(pdf, "Withholding Tax", data.WithholdingTax)
	r.amountLine(pdf, "Total Deductions", data.TotalDeductions)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Benefits")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	r.amountLine(pdf, "Monthly Benefits", data.MonthlyBenefits)

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	r.amountLine(pdf, "Net Pay", data.NetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) weeklyTable(pdf *gofpdf.Fpdf, weeks []WeekLine) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(18, 7, "Week", "1", 0, "C", false, 0, "")
	pdf.CellFormat(62, 7, "Period", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 7, "Regular Min", "1", 0, "C", false, 0, "")
	pdf.CellFormat(25, 7, "Late Min", "1", 0, "C", false, 0, "")
	pdf.CellFormat(35, 7, "Weekly Salary", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, week := range weeks {
		pdf.CellFormat(18, 7, fmt.Sprintf("%d", week.WeekNumber), "1", 0, "C", false, 0, "")
		pdf.CellFormat(62, 7, week.DateRange, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", week.RegularMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", week.LateMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, week.WeeklySalary.StringFixed(2), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) amountLine(pdf *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	pdf.CellFormat(80, 7, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(50, 7, amount.StringFixed(2), "", 1, "R", false, 0, "")
}
