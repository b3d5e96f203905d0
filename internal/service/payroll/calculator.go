package payroll

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

type SalaryCalculator struct {
}

func NewSalaryCalculator() *SalaryCalculator {
	return &SalaryCalculator{}
}

// Calculate applies cfg to a monthly wage. Amounts derived from a
// percentage are rounded to whole currency units, half away from zero.
// When the earning components exceed the wage the fixed allowance is
// clamped to zero and a warning is attached instead of failing.
func (c *SalaryCalculator) Calculate(monthlyWage float64, cfg payroll.SalaryConfig) (payroll.Breakdown, error) {
	if monthlyWage < 0 {
		return payroll.Breakdown{}, payroll.ErrNegativeWage
	}

	wage := decimal.NewFromFloat(monthlyWage)

	basic := percentOf(wage, cfg.BasicPercent)
	hra := percentOf(basic, cfg.HRAPercentOfBasic)
	standardAllowance := decimal.NewFromFloat(cfg.StandardAllowance)
	bonus := percentOf(wage, cfg.PerformanceBonusPercent)
	lta := percentOf(wage, cfg.LTAPercent)

	components := basic.Add(hra).Add(standardAllowance).Add(bonus).Add(lta)
	fixedAllowance := wage.Sub(components)

	var warnings []string
	if fixedAllowance.IsNegative() {
		slog.Warn("Salary components exceed monthly wage",
			"monthly_wage", wage.String(),
			"components", components.String(),
		)
		warnings = append(warnings, payroll.ErrComponentsExceedWage.Error())
		fixedAllowance = decimal.Zero
	}

	pf := percentOf(basic, cfg.PFRate)
	professionalTax := decimal.NewFromFloat(cfg.ProfessionalTax)
	deductions := pf.Add(professionalTax)

	return payroll.Breakdown{
		MonthlyWage:       wage,
		YearlyWage:        wage.Mul(monthsInYear),
		Basic:             basic,
		HRA:               hra,
		StandardAllowance: standardAllowance,
		PerformanceBonus:  bonus,
		LTA:               lta,
		FixedAllowance:    fixedAllowance,
		PFEmployee:        pf,
		PFEmployer:        pf,
		ProfessionalTax:   professionalTax,
		TotalDeductions:   deductions,
		NetSalary:         wage.Sub(deductions),
		Warnings:          warnings,
	}, nil
}

// CalculateDetails recomputes the breakdown of stored salary details,
// ignoring whatever was cached in details.Computed.
func (c *SalaryCalculator) CalculateDetails(details payroll.SalaryDetails) (payroll.SalaryView, error) {
	breakdown, err := c.Calculate(details.MonthlyWage, details.Config)
	if err != nil {
		return payroll.SalaryView{}, err
	}
	return payroll.SalaryView{
		MonthlyWage: details.MonthlyWage,
		Config:      details.Config,
		Computed:    breakdown.ToResponse(),
	}, nil
}

func percentOf(base decimal.Decimal, percent float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(percent)).Div(hundred).Round(0)
}
