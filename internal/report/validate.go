package report

import (
	"fmt"

	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
)

// Validate runs the structural checks over an assembled report. Errors block
// export; warnings are surfaced alongside but do not.
func Validate(r *model.ReportData) common.ValidationResult {
	var result common.ValidationResult

	validateProfile(&r.Profile, &result)

	validateSection("personal donations", &r.Donations, &result)
	validateSection("business income", &r.BusinessIncome, &result)
	validateSection("loans", &r.LoanIncome, &result)
	validateSection("branch grants income", &r.BranchGrantIncome, &result)
	validateSection("other income", &r.OtherIncome, &result)

	validateSection("personnel expenses", &r.Expenses.Personnel, &result)
	validateSection("utility expenses", &r.Expenses.Utility, &result)
	validateSection("supplies expenses", &r.Expenses.Supplies, &result)
	validateSection("office expenses", &r.Expenses.Office, &result)
	validateSection("branch grants expense", &r.Expenses.BranchGrant, &result)

	families := r.Expenses.PoliticalActivity()
	for i, family := range families {
		name := string(model.PoliticalActivityCategories[i])
		for j := range family {
			label := fmt.Sprintf("%s[%s]", name, family[j].ItemName)
			validateSection(label, &family[j], &result)
		}
	}

	return result
}

func validateProfile(p *model.Profile, result *common.ValidationResult) {
	requireField := func(value, field string) {
		if value == "" {
			result.Add(common.ValidationIssue{
				Severity: common.SeverityError,
				Section:  "profile",
				Message:  field + " is required",
			})
		}
	}

	requireField(p.OrganizationID, "organization id")
	requireField(p.Name, "organization name")
	requireField(p.RepresentativeName, "representative name")
	requireField(p.TreasurerName, "treasurer name")

	if p.FinancialYear <= 0 {
		result.Add(common.ValidationIssue{
			Severity: common.SeverityError,
			Section:  "profile",
			Message:  fmt.Sprintf("financial year %d is not a valid year", p.FinancialYear),
		})
	}

	if p.ContactPhone == "" {
		result.Add(common.ValidationIssue{
			Severity: common.SeverityWarning,
			Section:  "profile",
			Message:  "contact phone is empty",
		})
	}
}

func validateSection(name string, s *model.Section, result *common.ValidationResult) {
	if s.TotalAmount < 0 {
		result.Add(common.ValidationIssue{
			Severity: common.SeverityError,
			Section:  name,
			Message:  fmt.Sprintf("total amount %d is negative", s.TotalAmount),
		})
	}
	if s.UnderThreshold != nil && *s.UnderThreshold < 0 {
		result.Add(common.ValidationIssue{
			Severity: common.SeverityError,
			Section:  name,
			Message:  fmt.Sprintf("under-threshold amount %d is negative", *s.UnderThreshold),
		})
	}

	var rowSum int64
	for i, row := range s.Rows {
		if row.No != i+1 {
			result.Add(common.ValidationIssue{
				Severity: common.SeverityError,
				Section:  name,
				Message:  fmt.Sprintf("row %d carries number %d; numbering must be contiguous", i+1, row.No),
			})
		}
		if row.Amount < 0 {
			result.Add(common.ValidationIssue{
				Severity: common.SeverityError,
				Section:  name,
				Message:  fmt.Sprintf("row %d amount %d is negative", row.No, row.Amount),
			})
		}
		if row.PartyName == "" {
			result.Add(common.ValidationIssue{
				Severity: common.SeverityWarning,
				Section:  name,
				Message:  fmt.Sprintf("row %d has no counterpart name", row.No),
			})
		}
		rowSum += row.Amount
	}

	var under int64
	if s.UnderThreshold != nil {
		under = *s.UnderThreshold
	}
	if s.TotalAmount != rowSum+under {
		result.Add(common.ValidationIssue{
			Severity: common.SeverityError,
			Section:  name,
			Message: fmt.Sprintf("total %d does not equal itemized %d plus folded %d",
				s.TotalAmount, rowSum, under),
		})
	}
}
