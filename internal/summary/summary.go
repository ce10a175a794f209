package summary

import "github.com/ysakura/shuushi/internal/model"

// Compute derives the totals-and-carryover sheet from an assembled report
// and the prior year's closing balance. Donor categories outside this
// system's scope contribute nothing to the subtotals and are left nil so the
// serializer renders them as "not applicable" rather than zero.
func Compute(r *model.ReportData, priorYearCarryover int64) model.SummaryData {
	s := model.SummaryData{
		PersonalDonations:  r.Donations.TotalAmount,
		BusinessIncome:     r.BusinessIncome.TotalAmount,
		LoanIncome:         r.LoanIncome.TotalAmount,
		BranchGrantIncome:  r.BranchGrantIncome.TotalAmount,
		OtherIncome:        r.OtherIncome.TotalAmount,
		PriorYearCarryover: priorYearCarryover,

		Personnel: r.Expenses.Personnel.TotalAmount,
		Utility:   r.Expenses.Utility.TotalAmount,
		Supplies:  r.Expenses.Supplies.TotalAmount,
		Office:    r.Expenses.Office.TotalAmount,

		Organization:  r.Expenses.Organization.Total(),
		Election:      r.Expenses.Election.Total(),
		Publication:   r.Expenses.Publication.Total(),
		Advertising:   r.Expenses.Advertising.Total(),
		Party:         r.Expenses.Party.Total(),
		OtherBusiness: r.Expenses.OtherBusiness.Total(),
		Research:      r.Expenses.Research.Total(),
		DonationGrant: r.Expenses.DonationGrant.Total(),
		OtherPolitic:  r.Expenses.OtherPolitic.Total(),

		BranchGrantExpense: r.Expenses.BranchGrant.TotalAmount,
	}

	s.DonationSubtotal = s.PersonalDonations
	s.DonationTotal = s.DonationSubtotal
	s.CurrentYearIncome = s.DonationTotal + s.BusinessIncome + s.LoanIncome +
		s.BranchGrantIncome + s.OtherIncome
	s.TotalIncome = s.PriorYearCarryover + s.CurrentYearIncome

	// Personnel counts toward the breakdown flag but not this subtotal.
	s.RegularExpenseTotal = s.Utility + s.Supplies + s.Office
	s.PoliticalActivityTotal = r.Expenses.PoliticalActivityTotal()
	s.TotalExpense = s.RegularExpenseTotal + s.PoliticalActivityTotal
	s.NextYearCarryover = s.TotalIncome - s.TotalExpense

	return s
}
