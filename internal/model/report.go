package model

// PresenceFlagLength is the mandated width of the form-presence flag block.
// Both the flag derivation and the serializer size against this one value.
const PresenceFlagLength = 51

// ExpenseBundle groups every expense-side section of the report.
type ExpenseBundle struct {
	Personnel Section
	Utility   Section
	Supplies  Section
	Office    Section

	// The nine political-activity families, each array-valued (one element
	// per cost item within the form).
	Organization  SectionList
	Election      SectionList
	Publication   SectionList
	Advertising   SectionList
	Party         SectionList
	OtherBusiness SectionList
	Research      SectionList
	DonationGrant SectionList
	OtherPolitic  SectionList

	BranchGrant Section
}

// PoliticalActivity returns the nine families in their legally numbered
// order, matching PoliticalActivityCategories.
func (e *ExpenseBundle) PoliticalActivity() []SectionList {
	return []SectionList{
		e.Organization,
		e.Election,
		e.Publication,
		e.Advertising,
		e.Party,
		e.OtherBusiness,
		e.Research,
		e.DonationGrant,
		e.OtherPolitic,
	}
}

// PoliticalActivityTotal sums all nine families across every cost-item
// element.
func (e *ExpenseBundle) PoliticalActivityTotal() int64 {
	var total int64
	for _, family := range e.PoliticalActivity() {
		total += family.Total()
	}
	return total
}

// HasExpenseBreakdown reports whether any expense-item breakdown sheet exists
// at all: personnel, a regular-expense sheet, or any political-activity sheet.
func (e *ExpenseBundle) HasExpenseBreakdown() bool {
	if e.Personnel.ShouldOutput() || e.Utility.ShouldOutput() ||
		e.Supplies.ShouldOutput() || e.Office.ShouldOutput() {
		return true
	}
	for _, family := range e.PoliticalActivity() {
		if family.ShouldOutput() {
			return true
		}
	}
	return false
}

// ReportData is the assembled report for one (organization, financial year)
// pair: immutable after assembly, discarded after serialization.
type ReportData struct {
	Profile Profile

	Donations         Section // personal donations
	BusinessIncome    Section
	LoanIncome        Section
	BranchGrantIncome Section
	OtherIncome       Section

	Expenses ExpenseBundle
}
