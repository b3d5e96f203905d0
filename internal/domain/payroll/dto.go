package payroll

// SalaryBreakdown is the JSON form of a Breakdown.
type SalaryBreakdown struct {
	MonthlyWage       float64  `json:"monthlyWage"`
	YearlyWage        float64  `json:"yearlyWage"`
	BasicSalary       float64  `json:"basicSalary"`
	HRA               float64  `json:"hra"`
	StandardAllowance float64  `json:"standardAllowance"`
	PerformanceBonus  float64  `json:"performanceBonus"`
	LTA               float64  `json:"lta"`
	FixedAllowance    float64  `json:"fixedAllowance"`
	PFEmployee        float64  `json:"pfEmployee"`
	PFEmployer        float64  `json:"pfEmployer"`
	ProfessionalTax   float64  `json:"professionalTax"`
	TotalDeductions   float64  `json:"totalDeductions"`
	NetSalary         float64  `json:"netSalary"`
	Warnings          []string `json:"warnings,omitempty"`
}

func (b Breakdown) ToResponse() SalaryBreakdown {
	return SalaryBreakdown{
		MonthlyWage:       b.MonthlyWage.InexactFloat64(),
		YearlyWage:        b.YearlyWage.InexactFloat64(),
		BasicSalary:       b.Basic.InexactFloat64(),
		HRA:               b.HRA.InexactFloat64(),
		StandardAllowance: b.StandardAllowance.InexactFloat64(),
		PerformanceBonus:  b.PerformanceBonus.InexactFloat64(),
		LTA:               b.LTA.InexactFloat64(),
		FixedAllowance:    b.FixedAllowance.InexactFloat64(),
		PFEmployee:        b.PFEmployee.InexactFloat64(),
		PFEmployer:        b.PFEmployer.InexactFloat64(),
		ProfessionalTax:   b.ProfessionalTax.InexactFloat64(),
		TotalDeductions:   b.TotalDeductions.InexactFloat64(),
		NetSalary:         b.NetSalary.InexactFloat64(),
		Warnings:          b.Warnings,
	}
}

// SalaryView is what a privileged viewer or the owner sees on a profile.
type SalaryView struct {
	MonthlyWage float64         `json:"monthlyWage"`
	Config      SalaryConfig    `json:"config"`
	Computed    SalaryBreakdown `json:"computed"`
}

// UpdateSalaryRequest carries an Admin edit of the wage and, optionally,
// the percentage table. Omitted config fields keep their current values.
type UpdateSalaryRequest struct {
	MonthlyWage *float64            `json:"monthlyWage" validate:"omitempty,gte=0"`
	Config      *SalaryConfigUpdate `json:"config"`
}

type SalaryConfigUpdate struct {
	BasicPercent            *float64 `json:"basicPercent" validate:"omitempty,gte=0,lte=100"`
	HRAPercentOfBasic       *float64 `json:"hraPercentOfBasic" validate:"omitempty,gte=0,lte=100"`
	StandardAllowance       *float64 `json:"standardAllowance" validate:"omitempty,gte=0"`
	PerformanceBonusPercent *float64 `json:"performanceBonusPercent" validate:"omitempty,gte=0,lte=100"`
	LTAPercent              *float64 `json:"ltaPercent" validate:"omitempty,gte=0,lte=100"`
	PFRate                  *float64 `json:"pfRate" validate:"omitempty,gte=0,lte=100"`
	ProfessionalTax         *float64 `json:"professionalTax" validate:"omitempty,gte=0"`
}

// Apply merges the update onto current and returns the new details.
func (r *UpdateSalaryRequest) Apply(current SalaryDetails) SalaryDetails {
	next := current
	if r.MonthlyWage != nil {
		next.MonthlyWage = *r.MonthlyWage
	}
	if r.Config == nil {
		return next
	}
	c := r.Config
	if c.BasicPercent != nil {
		next.Config.BasicPercent = *c.BasicPercent
	}
	if c.HRAPercentOfBasic != nil {
		next.Config.HRAPercentOfBasic = *c.HRAPercentOfBasic
	}
	if c.StandardAllowance != nil {
		next.Config.StandardAllowance = *c.StandardAllowance
	}
	if c.PerformanceBonusPercent != nil {
		next.Config.PerformanceBonusPercent = *c.PerformanceBonusPercent
	}
	if c.LTAPercent != nil {
		next.Config.LTAPercent = *c.LTAPercent
	}
	if c.PFRate != nil {
		next.Config.PFRate = *c.PFRate
	}
	if c.ProfessionalTax != nil {
		next.Config.ProfessionalTax = *c.ProfessionalTax
	}
	return next
}
