// Package summary derives the totals sheet and the form-presence flag from
// an assembled report.
package summary

import "github.com/ysakura/shuushi/internal/model"

// FlagLength is the fixed width of the presence flag string. The receiving
// system validates by position, so the table below is kept explicit and
// ordered rather than spread across inline conditionals.
const FlagLength = model.PresenceFlagLength

type flagEntry struct {
	present  func(r *model.ReportData) bool
	position int // 1-indexed form number
}

func always(*model.ReportData) bool { return true }

// flagTable maps form positions to their presence predicates. Positions not
// listed belong to forms this system never emits (corporate and
// political-organization donations, brokered donations, fundraising-party
// proceeds, asset sections, disclosure statements) and stay '0'.
var flagTable = []flagEntry{
	{position: 1, present: always}, // profile
	{position: 2, present: always}, // summary
	{position: 3, present: func(r *model.ReportData) bool { return r.BusinessIncome.ShouldOutput() }},
	{position: 4, present: func(r *model.ReportData) bool { return r.LoanIncome.ShouldOutput() }},
	{position: 5, present: func(r *model.ReportData) bool { return r.BranchGrantIncome.ShouldOutput() }},
	{position: 6, present: func(r *model.ReportData) bool { return r.OtherIncome.ShouldOutput() }},
	{position: 7, present: func(r *model.ReportData) bool { return r.Donations.HasContent() }},
	{position: 21, present: func(r *model.ReportData) bool { return r.Expenses.HasExpenseBreakdown() }},
	{position: 22, present: func(r *model.ReportData) bool { return r.Expenses.Utility.ShouldOutput() }},
	{position: 23, present: func(r *model.ReportData) bool { return r.Expenses.Supplies.ShouldOutput() }},
	{position: 24, present: func(r *model.ReportData) bool { return r.Expenses.Office.ShouldOutput() }},
	{position: 25, present: func(r *model.ReportData) bool { return r.Expenses.Organization.ShouldOutput() }},
	{position: 26, present: func(r *model.ReportData) bool { return r.Expenses.Election.ShouldOutput() }},
	{position: 27, present: func(r *model.ReportData) bool { return r.Expenses.Publication.ShouldOutput() }},
	{position: 28, present: func(r *model.ReportData) bool { return r.Expenses.Advertising.ShouldOutput() }},
	{position: 29, present: func(r *model.ReportData) bool { return r.Expenses.Party.ShouldOutput() }},
	{position: 30, present: func(r *model.ReportData) bool { return r.Expenses.OtherBusiness.ShouldOutput() }},
	{position: 31, present: func(r *model.ReportData) bool { return r.Expenses.Research.ShouldOutput() }},
	{position: 32, present: func(r *model.ReportData) bool { return r.Expenses.DonationGrant.ShouldOutput() }},
	{position: 33, present: func(r *model.ReportData) bool { return r.Expenses.OtherPolitic.ShouldOutput() }},
	{position: 34, present: func(r *model.ReportData) bool { return r.Expenses.BranchGrant.ShouldOutput() }},
}

// BuildPresenceFlag derives the 51-character '0'/'1' string telling the
// receiving system which forms carry reportable content.
func BuildPresenceFlag(r *model.ReportData) string {
	flags := make([]byte, FlagLength)
	for i := range flags {
		flags[i] = '0'
	}
	for _, entry := range flagTable {
		if entry.present(r) {
			flags[entry.position-1] = '1'
		}
	}
	return string(flags)
}
