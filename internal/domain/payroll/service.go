package payroll

import "context"

// PayrollService computes pay statements from attendance. Computation is
// side-effect free: the same attendance data always yields the same
// statement, and nothing is persisted between calls.
type PayrollService interface {
	// ComputeMonthly builds the full statement for one employee and month:
	// weekly breakdown, monthly gross, statutory deductions, and net pay.
	ComputeMonthly(ctx context.Context, req ComputeRequest) (PayrollResponse, error)

	// RenderPayslip computes the statement and renders it as a PDF. The
	// rendered file is also archived when an archive backend is configured;
	// archive failures are logged, never fatal.
	RenderPayslip(ctx context.Context, req ComputeRequest) (PayslipFile, error)

	// ArchivedPayslip fetches the previously archived PDF for the month.
	// Returns ErrPayslipNotArchived when nothing has been archived yet.
	ArchivedPayslip(ctx context.Context, req ComputeRequest) (PayslipFile, error)

	// EmailPayslip computes the statement and emails a summary to the
	// employee's address on file.
	EmailPayslip(ctx context.Context, req ComputeRequest) (SendPayslipResponse, error)
}
