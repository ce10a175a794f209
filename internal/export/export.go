// Package export turns assembled reports into deliverable files: the
// document text, its Shift_JIS bytes, and the mandated filename.
package export

import (
	"fmt"

	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/summary"
	"github.com/ysakura/shuushi/internal/xmlgen"
)

// Result is one deliverable export.
type Result struct {
	Text     string // document text before transcoding
	Bytes    []byte // Shift_JIS encoded file content
	Filename string
}

// Labels the regular-expense sheets carry on the expense breakdown form.
const (
	itemPersonnel = "人件費"
	itemUtility   = "光熱水費"
	itemSupplies  = "備品・消耗品費"
	itemOffice    = "事務所費"
)

// BreakdownSheet names one labeled sheet of the expense breakdown form. The
// four regular-expense sheets share the form code, so a standalone export is
// identified by its item label and its own flag position, not by the code.
type BreakdownSheet int

// The regular-expense sheets, in form order.
const (
	SheetPersonnel BreakdownSheet = iota
	SheetUtility
	SheetSupplies
	SheetOffice
)

var breakdownSheets = map[BreakdownSheet]struct {
	label    string
	position int // the sheet's own flag position; personnel has none
}{
	SheetPersonnel: {label: itemPersonnel},
	SheetUtility:   {label: itemUtility, position: 22},
	SheetSupplies:  {label: itemSupplies, position: 23},
	SheetOffice:    {label: itemOffice, position: 24},
}

// formPosition maps each form code to its presence-flag position, for
// single-sheet exports.
var formPosition = map[xmlgen.FormCode]int{
	xmlgen.FormBusinessIncome:     3,
	xmlgen.FormLoan:               4,
	xmlgen.FormBranchGrantIncome:  5,
	xmlgen.FormOtherIncome:        6,
	xmlgen.FormDonation:           7,
	xmlgen.FormExpenseBreakdown:   21,
	xmlgen.FormBranchGrantExpense: 34,
}

func init() {
	for i := 1; i <= 9; i++ {
		formPosition[xmlgen.PoliticalActivityForm(i)] = 24 + i
	}
}

// Report serializes a full assembled report. The caller is responsible for
// having run validation first; this function assumes the data is exportable.
func Report(r *model.ReportData, priorYearCarryover int64) (*Result, error) {
	s := summary.Compute(r, priorYearCarryover)
	flag := summary.BuildPresenceFlag(r)

	sections := []xmlgen.Element{
		xmlgen.ProfileElement(&r.Profile),
		xmlgen.SummaryElement(&s),
	}
	sections = append(sections, incomeFragments(r)...)
	sections = append(sections, expenseFragments(&r.Expenses)...)

	return finish(flag, sections, xmlgen.FormReport, r.Profile.OrganizationID, r.Profile.FinancialYear)
}

// Section serializes one sheet on its own, for regenerating a single legal
// form without re-submitting the whole report. Expense-breakdown sheets go
// through Breakdown instead, which carries their item label.
func Section(s *model.Section, form xmlgen.FormCode, layout xmlgen.RowLayout, orgID string, year int) (*Result, error) {
	flag := singleSheetFlag(formPosition[form])
	fragment := xmlgen.SectionElement(form, layout, s)
	return finish(flag, []xmlgen.Element{fragment}, form, orgID, year)
}

// Breakdown serializes one regular-expense sheet of the expense breakdown
// form on its own, with the same item label the full report gives it and the
// sheet's own presence-flag position set alongside the breakdown position.
func Breakdown(s *model.Section, sheet BreakdownSheet, orgID string, year int) (*Result, error) {
	info, ok := breakdownSheets[sheet]
	if !ok {
		return nil, fmt.Errorf("unknown breakdown sheet %d", sheet)
	}

	labeled := *s
	labeled.ItemName = info.label

	flag := singleSheetFlag(formPosition[xmlgen.FormExpenseBreakdown], info.position)
	fragment := xmlgen.SectionElement(xmlgen.FormExpenseBreakdown, xmlgen.LayoutExpense, &labeled)
	return finish(flag, []xmlgen.Element{fragment}, xmlgen.FormExpenseBreakdown, orgID, year)
}

// Family serializes an array-valued political-activity form: every cost-item
// sheet of the family goes into one file.
func Family(list model.SectionList, form xmlgen.FormCode, orgID string, year int) (*Result, error) {
	flag := singleSheetFlag(formPosition[form])
	return finish(flag, xmlgen.FamilyElements(form, list), form, orgID, year)
}

// Filename renders the fixed delivery naming pattern.
func Filename(form xmlgen.FormCode, orgID string, year int) string {
	return fmt.Sprintf("%s_%s_%d.xml", form, orgID, year)
}

func finish(flag string, sections []xmlgen.Element, form xmlgen.FormCode, orgID string, year int) (*Result, error) {
	text, err := xmlgen.BuildDocument(flag, sections)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}

	encoded, err := xmlgen.EncodeShiftJIS(text)
	if err != nil {
		return nil, err
	}

	return &Result{
		Text:     text,
		Bytes:    encoded,
		Filename: Filename(form, orgID, year),
	}, nil
}

// incomeFragments emits the income-side sheets that carry content, in form
// order.
func incomeFragments(r *model.ReportData) []xmlgen.Element {
	var fragments []xmlgen.Element

	if r.Donations.HasContent() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormDonation, xmlgen.LayoutDonation, &r.Donations))
	}
	if r.BusinessIncome.ShouldOutput() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormBusinessIncome, xmlgen.LayoutIncome, &r.BusinessIncome))
	}
	if r.LoanIncome.ShouldOutput() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormLoan, xmlgen.LayoutIncome, &r.LoanIncome))
	}
	if r.BranchGrantIncome.ShouldOutput() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormBranchGrantIncome, xmlgen.LayoutIncome, &r.BranchGrantIncome))
	}
	if r.OtherIncome.ShouldOutput() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormOtherIncome, xmlgen.LayoutIncome, &r.OtherIncome))
	}

	return fragments
}

// expenseFragments emits the expense breakdown: the labeled regular-expense
// sheets on the breakdown form, then each political-activity family, then
// branch grants.
func expenseFragments(e *model.ExpenseBundle) []xmlgen.Element {
	var fragments []xmlgen.Element

	breakdown := func(section model.Section, label string) {
		if !section.ShouldOutput() {
			return
		}
		section.ItemName = label
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormExpenseBreakdown, xmlgen.LayoutExpense, &section))
	}

	breakdown(e.Personnel, itemPersonnel)
	breakdown(e.Utility, itemUtility)
	breakdown(e.Supplies, itemSupplies)
	breakdown(e.Office, itemOffice)

	for i, family := range e.PoliticalActivity() {
		form := xmlgen.PoliticalActivityForm(i + 1)
		for j := range family {
			if !family[j].ShouldOutput() {
				continue
			}
			fragments = append(fragments,
				xmlgen.SectionElement(form, xmlgen.LayoutExpense, &family[j]))
		}
	}

	if e.BranchGrant.ShouldOutput() {
		fragments = append(fragments,
			xmlgen.SectionElement(xmlgen.FormBranchGrantExpense, xmlgen.LayoutExpense, &e.BranchGrant))
	}

	return fragments
}

// singleSheetFlag marks profile, summary, and the given positions. A zero
// position means the sheet has no position of its own and is skipped.
func singleSheetFlag(positions ...int) string {
	flags := make([]byte, xmlgen.FlagLength)
	for i := range flags {
		flags[i] = '0'
	}
	flags[0] = '1'
	flags[1] = '1'
	for _, pos := range positions {
		if pos > 0 {
			flags[pos-1] = '1'
		}
	}
	return string(flags)
}
