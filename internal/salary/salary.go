package salary

// Statement is the monthly compensation breakdown shown on the salary page.
// Amounts are rupees; deductions are negative.
type Statement struct {
	BaseSalary       int64 `json:"base_salary"`
	HRA              int64 `json:"hra"`
	SpecialAllowance int64 `json:"special_allowance"`
	ProvidentFund    int64 `json:"provident_fund"`
	ProfessionalTax  int64 `json:"professional_tax"`

	TotalEarnings   int64 `json:"total_earnings"`
	TotalDeductions int64 `json:"total_deductions"`
	NetSalary       int64 `json:"net_salary"`
}

// DefaultStatement mirrors the portal's static compensation display. HR
// integration is a follow-up; for now every employee sees the same figures.
func DefaultStatement() Statement {
	s := Statement{
		BaseSalary:       50000,
		HRA:              20000,
		SpecialAllowance: 10000,
		ProvidentFund:    -6000,
		ProfessionalTax:  -200,
	}
	s.TotalEarnings = s.BaseSalary + s.HRA + s.SpecialAllowance
	s.TotalDeductions = s.ProvidentFund + s.ProfessionalTax
	s.NetSalary = s.TotalEarnings + s.TotalDeductions
	return s
}
