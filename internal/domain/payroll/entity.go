package payroll

import (
	"github.com/shopspring/decimal"
)

// SalaryConfig is the percentage table applied to a monthly wage.
// Percentages are expressed as 0-100.
type SalaryConfig struct {
	BasicPercent            float64 `json:"basicPercent"`
	HRAPercentOfBasic       float64 `json:"hraPercentOfBasic"`
	StandardAllowance       float64 `json:"standardAllowance"`
	PerformanceBonusPercent float64 `json:"performanceBonusPercent"`
	LTAPercent              float64 `json:"ltaPercent"`
	PFRate                  float64 `json:"pfRate"`
	ProfessionalTax         float64 `json:"professionalTax"`
}

// DefaultSalaryConfig returns the company-wide defaults used when an
// employee has no explicit configuration.
func DefaultSalaryConfig() SalaryConfig {
	return SalaryConfig{
		BasicPercent:            50,
		HRAPercentOfBasic:       50,
		StandardAllowance:       4167,
		PerformanceBonusPercent: 8.33,
		LTAPercent:              8.33,
		PFRate:                  12,
		ProfessionalTax:         200,
	}
}

// SalaryDetails is persisted as JSON on the employee record. Computed is a
// cache of the last breakdown and is never trusted on read.
type SalaryDetails struct {
	MonthlyWage float64          `json:"monthlyWage"`
	Config      SalaryConfig     `json:"config"`
	Computed    *SalaryBreakdown `json:"computed,omitempty"`
}

// Breakdown is the result of applying a SalaryConfig to a wage.
type Breakdown struct {
	MonthlyWage       decimal.Decimal
	YearlyWage        decimal.Decimal
	Basic             decimal.Decimal
	HRA               decimal.Decimal
	StandardAllowance decimal.Decimal
	PerformanceBonus  decimal.Decimal
	LTA               decimal.Decimal
	FixedAllowance    decimal.Decimal
	PFEmployee        decimal.Decimal
	PFEmployer        decimal.Decimal
	ProfessionalTax   decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetSalary         decimal.Decimal
	Warnings          []string
}
