package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/motorph/payroll-engine-go/internal/domain/payroll"
)

// ========== SSS ==========

// sssTier maps a bracket ceiling to the employee contribution owed by every
// salary at or below it (and above the previous ceiling).
type sssTier struct {
	ceiling      decimal.Decimal
	contribution decimal.Decimal
}

const sssTierCount = 44

var (
	sssFirstCeiling      = decimal.NewFromInt(3250)
	sssCeilingStep       = decimal.NewFromInt(500)
	sssFirstContribution = decimal.RequireFromString("135.00")
	sssContributionStep  = decimal.RequireFromString("22.50")

	// Built once at startup; read-only afterwards.
	sssTable = buildSSSTable()
)

// buildSSSTable expands the 2024 SSS contribution schedule: 44 brackets of
// 500 pesos starting at a 3,250 ceiling, with the employee share rising by
// 22.50 per bracket from 135.00 to the 1,102.50 ceiling.
func buildSSSTable() []sssTier {
	table := make([]sssTier, 0, sssTierCount)
	ceiling := sssFirstCeiling
	contribution := sssFirstContribution
	for i := 0; i < sssTierCount; i++ {
		table = append(table, sssTier{ceiling: ceiling, contribution: contribution})
		ceiling = ceiling.Add(sssCeilingStep)
		contribution = contribution.Add(sssContributionStep)
	}
	return table
}

// calculateSSS looks up the employee share for a monthly gross salary. The
// first tier whose ceiling is at or above the salary wins; salaries below
// the lowest ceiling pay the minimum and salaries above the highest pay the
// maximum.
func calculateSSS(monthlySalary decimal.Decimal) decimal.Decimal {
	for _, tier := range sssTable {
		if monthlySalary.LessThanOrEqual(tier.ceiling) {
			return tier.contribution
		}
	}
	return sssTable[len(sssTable)-1].contribution
}

// ========== PHILHEALTH ==========

var (
	philHealthFloorSalary  = decimal.NewFromInt(10000)
	philHealthFloorPremium = decimal.RequireFromString("300.00")
	philHealthCapSalary    = decimal.NewFromInt(60000)
	philHealthCapPremium   = decimal.RequireFromString("1800.00")
	philHealthRate         = decimal.RequireFromString("0.03")
	premiumShares          = decimal.NewFromInt(2)
)

// calculatePhilHealth returns the employee half of the monthly premium: a
// fixed 300 at or below the 10,000 salary floor, 3% of salary below the
// 60,000 ceiling, a fixed 1,800 from the ceiling up.
func calculatePhilHealth(monthlySalary decimal.Decimal) decimal.Decimal {
	var premium decimal.Decimal
	switch {
	case monthlySalary.LessThanOrEqual(philHealthFloorSalary):
		premium = philHealthFloorPremium
	case monthlySalary.LessThan(philHealthCapSalary):
		premium = monthlySalary.Mul(philHealthRate)
	default:
		premium = philHealthCapPremium
	}
	return premium.Div(premiumShares)
}

// ========== PAG-IBIG ==========

var (
	pagIbigBandFloor = decimal.NewFromInt(1000)
	pagIbigBandCap   = decimal.NewFromInt(1500)
	pagIbigLowRate   = decimal.RequireFromString("0.01")
	pagIbigHighRate  = decimal.RequireFromString("0.02")
	pagIbigMax       = decimal.RequireFromString("100.00")
)

// calculatePagIbig applies the two-band schedule: 1% of salary between
// 1,000 and 1,500 inclusive, 2% above 1,500 capped at 100. Salaries under
// 1,000 contribute nothing.
func calculatePagIbig(monthlySalary decimal.Decimal) decimal.Decimal {
	switch {
	case monthlySalary.GreaterThanOrEqual(pagIbigBandFloor) && monthlySalary.LessThanOrEqual(pagIbigBandCap):
		return monthlySalary.Mul(pagIbigLowRate)
	case monthlySalary.GreaterThan(pagIbigBandCap):
		contribution := monthlySalary.Mul(pagIbigHighRate)
		if contribution.GreaterThan(pagIbigMax) {
			return pagIbigMax
		}
		return contribution
	default:
		return decimal.Zero
	}
}

// ========== WITHHOLDING TAX ==========

var (
	taxExemptCap  = decimal.NewFromInt(20832)
	taxTier1Floor = decimal.NewFromInt(20833)
	taxTier1Cap   = decimal.NewFromInt(33333)
	taxTier1Rate  = decimal.RequireFromString("0.20")
	taxTier2Cap   = decimal.NewFromInt(66667)
	taxTier2Base  = decimal.NewFromInt(2500)
	taxTier2Rate  = decimal.RequireFromString("0.25")
	taxTier3Cap   = decimal.NewFromInt(166667)
	taxTier3Base  = decimal.NewFromInt(10833)
	taxTier3Rate  = decimal.RequireFromString("0.30")
	taxTier4Cap   = decimal.NewFromInt(666667)
	taxTier4Base  = decimal.RequireFromString("40833.33")
	taxTier4Rate  = decimal.RequireFromString("0.32")
	taxTier5Base  = decimal.RequireFromString("200833.33")
	taxTier5Rate  = decimal.RequireFromString("0.35")
)

// calculateWithholdingTax applies the monthly bracket ladder to taxable
// income. Each taxed bracket owes the base amount of everything below it
// plus its marginal rate on the excess over the bracket floor.
//
// Income above the 20,832 exemption cap but at or below the 20,833 first
// bracket floor matches no bracket and owes nothing, mirroring the
// published table boundaries.
func calculateWithholdingTax(taxableIncome decimal.Decimal) decimal.Decimal {
	switch {
	case taxableIncome.LessThanOrEqual(taxExemptCap):
		return decimal.Zero
	case taxableIncome.GreaterThan(taxTier1Floor) && taxableIncome.LessThanOrEqual(taxTier1Cap):
		return taxableIncome.Sub(taxTier1Floor).Mul(taxTier1Rate)
	case taxableIncome.GreaterThan(taxTier1Cap) && taxableIncome.LessThanOrEqual(taxTier2Cap):
		return taxTier2Base.Add(taxableIncome.Sub(taxTier1Cap).Mul(taxTier2Rate))
	case taxableIncome.GreaterThan(taxTier2Cap) && taxableIncome.LessThanOrEqual(taxTier3Cap):
		return taxTier3Base.Add(taxableIncome.Sub(taxTier2Cap).Mul(taxTier3Rate))
	case taxableIncome.GreaterThan(taxTier3Cap) && taxableIncome.LessThanOrEqual(taxTier4Cap):
		return taxTier4Base.Add(taxableIncome.Sub(taxTier3Cap).Mul(taxTier4Rate))
	case taxableIncome.GreaterThan(taxTier4Cap):
		return taxTier5Base.Add(taxableIncome.Sub(taxTier4Cap).Mul(taxTier5Rate))
	default:
		return decimal.Zero
	}
}

// ========== COMPOSITION ==========

// computeDeductions derives the full statutory deduction set from a monthly
// gross salary. A non-positive gross cannot be assessed: every contribution
// is reported zero alongside ErrNonPositiveGross so callers can surface the
// data problem instead of aborting unrelated work.
func computeDeductions(grossSalary decimal.Decimal) (payroll.Deductions, error) {
	if !grossSalary.IsPositive() {
		return payroll.Deductions{
			SSS:            decimal.Zero,
			PhilHealth:     decimal.Zero,
			PagIbig:        decimal.Zero,
			WithholdingTax: decimal.Zero,
			TaxableIncome:  decimal.Zero,
			Total:          decimal.Zero,
		}, payroll.ErrNonPositiveGross
	}

	sss := calculateSSS(grossSalary)
	philHealth := calculatePhilHealth(grossSalary)
	pagIbig := calculatePagIbig(grossSalary)
	taxableIncome := grossSalary.Sub(sss).Sub(philHealth).Sub(pagIbig)
	withholdingTax := calculateWithholdingTax(taxableIncome)

	return payroll.Deductions{
		SSS:            sss,
		PhilHealth:     philHealth,
		PagIbig:        pagIbig,
		WithholdingTax: withholdingTax,
		TaxableIncome:  taxableIncome,
		Total:          sss.Add(philHealth).Add(pagIbig).Add(withholdingTax),
	}, nil
}
