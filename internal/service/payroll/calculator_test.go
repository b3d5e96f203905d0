package payroll

import (
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalaryCalculator_Calculate_DefaultConfig(t *testing.T) {
	calc := NewSalaryCalculator()

	b, err := calc.Calculate(50000, payroll.DefaultSalaryConfig())
	require.NoError(t, err)

	assert.Equal(t, "25000", b.Basic.String())
	assert.Equal(t, "12500", b.HRA.String())
	assert.Equal(t, "4167", b.StandardAllowance.String())
	assert.Equal(t, "4165", b.PerformanceBonus.String())
	assert.Equal(t, "4165", b.LTA.String())
	// 50000 - (25000 + 12500 + 4167 + 4165 + 4165)
	assert.Equal(t, "3", b.FixedAllowance.String())
	assert.Equal(t, "3000", b.PFEmployee.String())
	assert.Equal(t, "200", b.ProfessionalTax.String())
	assert.Equal(t, "46800", b.NetSalary.String())
	assert.Equal(t, "600000", b.YearlyWage.String())
	assert.Empty(t, b.Warnings)
}

func TestSalaryCalculator_Calculate_NetIsWageMinusDeductions(t *testing.T) {
	calc := NewSalaryCalculator()
	wages := []float64{0, 1, 999.99, 12345, 50000, 87654.5, 1000000}
	configs := []payroll.SalaryConfig{
		payroll.DefaultSalaryConfig(),
		{BasicPercent: 40, HRAPercentOfBasic: 40, PFRate: 10, ProfessionalTax: 150},
		{BasicPercent: 100, HRAPercentOfBasic: 100, StandardAllowance: 10000, PFRate: 12.5, ProfessionalTax: 0},
	}

	for _, cfg := range configs {
		for _, wage := range wages {
			b, err := calc.Calculate(wage, cfg)
			require.NoError(t, err)
			expected := b.MonthlyWage.Sub(b.PFEmployee).Sub(b.ProfessionalTax)
			assert.True(t, expected.Equal(b.NetSalary), "wage %v: net %s, expected %s", wage, b.NetSalary, expected)
			assert.False(t, b.FixedAllowance.IsNegative())
		}
	}
}

func TestSalaryCalculator_Calculate_ComponentsExceedWage(t *testing.T) {
	calc := NewSalaryCalculator()
	cfg := payroll.SalaryConfig{BasicPercent: 80, HRAPercentOfBasic: 50, StandardAllowance: 4167}

	b, err := calc.Calculate(10000, cfg)
	require.NoError(t, err)

	assert.True(t, b.FixedAllowance.IsZero())
	assert.Equal(t, []string{payroll.ErrComponentsExceedWage.Error()}, b.Warnings)
}

func TestSalaryCalculator_Calculate_RoundsHalfAwayFromZero(t *testing.T) {
	calc := NewSalaryCalculator()
	cfg := payroll.SalaryConfig{BasicPercent: 50}

	b, err := calc.Calculate(25001, cfg)
	require.NoError(t, err)

	assert.Equal(t, "12501", b.Basic.String())
}

func TestSalaryCalculator_Calculate_NegativeWage(t *testing.T) {
	calc := NewSalaryCalculator()

	_, err := calc.Calculate(-1, payroll.DefaultSalaryConfig())
	assert.ErrorIs(t, err, payroll.ErrNegativeWage)
}

func TestSalaryCalculator_CalculateDetails_IgnoresCachedBreakdown(t *testing.T) {
	calc := NewSalaryCalculator()
	details := payroll.SalaryDetails{
		MonthlyWage: 50000,
		Config:      payroll.DefaultSalaryConfig(),
		Computed:    &payroll.SalaryBreakdown{NetSalary: 1},
	}

	view, err := calc.CalculateDetails(details)
	require.NoError(t, err)
	assert.Equal(t, float64(46800), view.Computed.NetSalary)
	assert.Equal(t, float64(600000), view.Computed.YearlyWage)
}
