package payroll

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/motorph/payroll-engine-go/internal/domain/attendance"
	"github.com/motorph/payroll-engine-go/internal/domain/employee"
	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
	"github.com/motorph/payroll-engine-go/internal/pkg/email"
	"github.com/motorph/payroll-engine-go/internal/pkg/payslip"
	"github.com/motorph/payroll-engine-go/internal/pkg/storage"
	"github.com/motorph/payroll-engine-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	policy         payroll.Policy
	periods        []payroll.PayPeriod
	renderer       *payslip.Renderer
	archive        storage.FileStorage
	emailService   email.EmailService
}

// NewPayrollService creates a new payroll service instance. The pay periods
// are derived from the policy once and reused for every computation.
func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	policy payroll.Policy,
	renderer *payslip.Renderer,
	archive storage.FileStorage,
	emailService email.EmailService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		policy:         policy,
		periods:        generatePeriods(policy),
		renderer:       renderer,
		archive:        archive,
		emailService:   emailService,
	}
}

// ========== MONTHLY PAYROLL ==========

func (s *PayrollServiceImpl) ComputeMonthly(ctx context.Context, req payroll.ComputeRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, result, err := s.compute(ctx, req)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return mapToPayrollResponse(emp, result), nil
}

// compute runs the full pipeline for one employee and month: resolve the
// employee, select the month's pay periods, fold the attendance into weekly
// totals, then derive deductions, benefits, and net pay.
func (s *PayrollServiceImpl) compute(ctx context.Context, req payroll.ComputeRequest) (employee.Employee, payroll.PayrollResult, error) {
	// Validate has already vetted the month name.
	month, _ := validator.ParseMonth(req.Month)

	emp, err := s.employeeRepo.GetByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return employee.Employee{}, payroll.PayrollResult{}, err
	}
	if !emp.HasValidRate() {
		return employee.Employee{}, payroll.PayrollResult{}, employee.ErrInvalidHourlyRate
	}

	monthPeriods := periodsForMonth(s.periods, month)
	if len(monthPeriods) == 0 {
		return employee.Employee{}, payroll.PayrollResult{}, payroll.ErrMonthNotComputable
	}

	from := monthPeriods[0].Start
	to := monthPeriods[len(monthPeriods)-1].End
	records, err := s.attendanceRepo.ListForEmployee(ctx, req.EmployeeNumber, from, to)
	if err != nil {
		return employee.Employee{}, payroll.PayrollResult{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	weeks, grossSalary := computeMonth(s.policy, req.EmployeeNumber, emp.HourlyRate, monthPeriods, records)

	deductions, err := computeDeductions(grossSalary)
	if err != nil {
		return employee.Employee{}, payroll.PayrollResult{}, err
	}

	monthlyBenefits := emp.MonthlyBenefits()
	netPay := grossSalary.Sub(deductions.Total).Add(monthlyBenefits)

	return emp, payroll.PayrollResult{
		EmployeeNumber:  emp.EmployeeNumber,
		Month:           month,
		Year:            monthPeriods[0].Start.Year(),
		Weeks:           weeks,
		GrossSalary:     grossSalary,
		Deductions:      deductions,
		MonthlyBenefits: monthlyBenefits,
		NetPay:          netPay,
	}, nil
}

// ========== PAYSLIP ==========

func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.PayslipFile, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipFile{}, err
	}

	emp, result, err := s.compute(ctx, req)
	if err != nil {
		return payroll.PayslipFile{}, err
	}

	content, err := s.renderer.Render(mapToPayslipData(emp, result))
	if err != nil {
		return payroll.PayslipFile{}, fmt.Errorf("failed to render payslip: %w", err)
	}

	fileName := payslipFileName(emp.EmployeeNumber, result.Month, result.Year)

	// Archival is best-effort: the caller still gets the rendered file.
	archivePath := ""
	if s.archive != nil {
		path := payslipArchivePath(emp.EmployeeNumber, fileName)
		stored, err := s.archive.Upload(ctx, bytes.NewReader(content), path, payslip.ContentType)
		if err != nil {
			slog.Error("Failed to archive payslip", "employee_number", emp.EmployeeNumber, "path", path, "error", err)
		} else {
			archivePath = stored
		}
	}

	return payroll.PayslipFile{
		FileName:    fileName,
		ContentType: payslip.ContentType,
		Content:     content,
		ArchivePath: archivePath,
	}, nil
}

func (s *PayrollServiceImpl) ArchivedPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.PayslipFile, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipFile{}, err
	}
	if s.archive == nil {
		return payroll.PayslipFile{}, payroll.ErrArchiveNotConfigured
	}

	emp, err := s.employeeRepo.GetByNumber(ctx, req.EmployeeNumber)
	if err != nil {
		return payroll.PayslipFile{}, err
	}

	month, _ := validator.ParseMonth(req.Month)
	monthPeriods := periodsForMonth(s.periods, month)
	if len(monthPeriods) == 0 {
		return payroll.PayslipFile{}, payroll.ErrMonthNotComputable
	}

	fileName := payslipFileName(emp.EmployeeNumber, month, monthPeriods[0].Start.Year())
	path := payslipArchivePath(emp.EmployeeNumber, fileName)

	exists, err := s.archive.Exists(ctx, path)
	if err != nil {
		return payroll.PayslipFile{}, fmt.Errorf("failed to check payslip archive: %w", err)
	}
	if !exists {
		return payroll.PayslipFile{}, payroll.ErrPayslipNotArchived
	}

	file, err := s.archive.Download(ctx, path)
	if err != nil {
		return payroll.PayslipFile{}, fmt.Errorf("failed to download archived payslip: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return payroll.PayslipFile{}, fmt.Errorf("failed to read archived payslip: %w", err)
	}

	return payroll.PayslipFile{
		FileName:    fileName,
		ContentType: payslip.ContentType,
		Content:     content,
		ArchivePath: path,
	}, nil
}

func (s *PayrollServiceImpl) EmailPayslip(ctx context.Context, req payroll.ComputeRequest) (payroll.SendPayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SendPayslipResponse{}, err
	}

	emp, result, err := s.compute(ctx, req)
	if err != nil {
		return payroll.SendPayslipResponse{}, err
	}

	if emp.Email == nil || *emp.Email == "" {
		return payroll.SendPayslipResponse{}, employee.ErrNoEmailOnFile
	}

	periodLabel := fmt.Sprintf("%s %d", monthLabel(result.Month), result.Year)
	err = s.emailService.SendPayslip(
		*emp.Email,
		emp.DisplayName(),
		periodLabel,
		result.GrossSalary.StringFixed(2),
		result.Deductions.Total.StringFixed(2),
		result.NetPay.StringFixed(2),
	)
	if err != nil {
		return payroll.SendPayslipResponse{}, fmt.Errorf("failed to send payslip email: %w", err)
	}

	return payroll.SendPayslipResponse{
		EmployeeNumber: emp.EmployeeNumber,
		Month:          monthLabel(result.Month),
		SentTo:         *emp.Email,
	}, nil
}

// ========== HELPERS ==========

func monthLabel(month time.Month) string {
	return strings.ToUpper(month.String())
}

func payslipFileName(employeeNumber int, month time.Month, year int) string {
	return fmt.Sprintf("payslip-%d-%s-%d.pdf", employeeNumber, monthLabel(month), year)
}

func payslipArchivePath(employeeNumber int, fileName string) string {
	return fmt.Sprintf("%d/%s", employeeNumber, fileName)
}

func mapToPayrollResponse(emp employee.Employee, result payroll.PayrollResult) payroll.PayrollResponse {
	weeks := make([]payroll.WeeklyTotalsResponse, 0, len(result.Weeks))
	for _, week := range result.Weeks {
		weeks = append(weeks, payroll.WeeklyTotalsResponse{
			WeekNumber:     week.Period.WeekNumber,
			StartDate:      week.Period.Start.Format("2006-01-02"),
			EndDate:        week.Period.End.Format("2006-01-02"),
			RegularMinutes: week.RegularMinutes,
			LateMinutes:    week.LateMinutes,
			RegularPay:     week.RegularPay.Round(2),
			OvertimePay:    week.OvertimePay.Round(2),
			WeeklySalary:   week.WeeklySalary.Round(2),
		})
	}

	return payroll.PayrollResponse{
		EmployeeNumber: result.EmployeeNumber,
		EmployeeName:   emp.DisplayName(),
		Birthday:       emp.Birthday.Format("2006-01-02"),
		HourlyRate:     emp.HourlyRate,
		Month:          monthLabel(result.Month),
		Year:           result.Year,
		Weeks:          weeks,
		GrossSalary:    result.GrossSalary.Round(2),
		Deductions: payroll.DeductionsResponse{
			SSS:            result.Deductions.SSS.Round(2),
			PhilHealth:     result.Deductions.PhilHealth.Round(2),
			PagIbig:        result.Deductions.PagIbig.Round(2),
			WithholdingTax: result.Deductions.WithholdingTax.Round(2),
			TaxableIncome:  result.Deductions.TaxableIncome.Round(2),
			Total:          result.Deductions.Total.Round(2),
		},
		MonthlyBenefits: result.MonthlyBenefits.Round(2),
		NetPay:          result.NetPay.Round(2),
	}
}

func mapToPayslipData(emp employee.Employee, result payroll.PayrollResult) payslip.Data {
	weeks := make([]payslip.WeekLine, 0, len(result.Weeks))
	for _, week := range result.Weeks {
		weeks = append(weeks, payslip.WeekLine{
			WeekNumber:     week.Period.WeekNumber,
			DateRange:      fmt.Sprintf("%s - %s", week.Period.Start.Format("2006-01-02"), week.Period.End.Format("2006-01-02")),
			RegularMinutes: week.RegularMinutes,
			LateMinutes:    week.LateMinutes,
			WeeklySalary:   week.WeeklySalary.Round(2),
		})
	}

	return payslip.Data{
		EmployeeNumber:  emp.EmployeeNumber,
		EmployeeName:    emp.DisplayName(),
		PeriodLabel:     fmt.Sprintf("%s %d", monthLabel(result.Month), result.Year),
		HourlyRate:      emp.HourlyRate,
		Weeks:           weeks,
		GrossSalary:     result.GrossSalary.Round(2),
		SSS:             result.Deductions.SSS.Round(2),
		PhilHealth:      result.Deductions.PhilHealth.Round(2),
		PagIbig:         result.Deductions.PagIbig.Round(2),
		WithholdingTax:  result.Deductions.WithholdingTax.Round(2),
		TotalDeductions: result.Deductions.Total.Round(2),
		MonthlyBenefits: result.MonthlyBenefits.Round(2),
		NetPay:          result.NetPay.Round(2),
	}
}
