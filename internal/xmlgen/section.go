package xmlgen

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ysakura/shuushi/internal/model"
)

// FormCode names one legal sheet of the report in the filing format.
type FormCode string

// Form codes of the sheets this system emits.
const (
	FormReport             FormCode = "SYUUSHI07"
	FormDonation           FormCode = "SYUUSHI07_03"
	FormBusinessIncome     FormCode = "SYUUSHI07_06"
	FormLoan               FormCode = "SYUUSHI07_07"
	FormBranchGrantIncome  FormCode = "SYUUSHI07_08"
	FormOtherIncome        FormCode = "SYUUSHI07_09"
	FormExpenseBreakdown   FormCode = "SYUUSHI07_14"
	FormBranchGrantExpense FormCode = "SYUUSHI07_16"
)

// PoliticalActivityForm returns the form code for the n-th (1-based)
// political-activity family, SYUUSHI07_15_01 through SYUUSHI07_15_09.
func PoliticalActivityForm(n int) FormCode {
	return FormCode(fmt.Sprintf("SYUUSHI07_15_%02d", n))
}

// RowLayout selects the fixed column order a family's rows serialize with.
type RowLayout int

// Row layouts.
const (
	LayoutIncome RowLayout = iota
	LayoutDonation
	LayoutExpense
)

// SectionElement serializes one section into its form fragment: the outer
// form-code element holding a single SHEET with total, under-threshold and
// detail rows in fixed order. A nil under-threshold renders as an empty
// element, never as "0" and never omitted.
func SectionElement(form FormCode, layout RowLayout, s *model.Section) Element {
	sheet := Element{Name: "SHEET"}

	if s.ItemName != "" {
		sheet.Children = append(sheet.Children, Text("KOUMOKU", s.ItemName))
	}

	sheet.Children = append(sheet.Children, Text("GOUKEI", formatAmount(s.TotalAmount)))

	under := ""
	if s.UnderThreshold != nil {
		under = formatAmount(*s.UnderThreshold)
	}
	sheet.Children = append(sheet.Children, Text("SONOTA_GOUKEI", under))

	for i := range s.Rows {
		sheet.Children = append(sheet.Children, rowElement(layout, &s.Rows[i]))
	}

	return Nested(string(form), sheet)
}

// FamilyElements serializes an array-valued family: one form fragment per
// cost-item sheet, all under the same form code.
func FamilyElements(form FormCode, list model.SectionList) []Element {
	elements := make([]Element, 0, len(list))
	for i := range list {
		elements = append(elements, SectionElement(form, LayoutExpense, &list[i]))
	}
	return elements
}

func rowElement(layout RowLayout, row *model.Row) Element {
	e := Element{Name: "ROW"}
	add := func(name, value string) {
		e.Children = append(e.Children, Text(name, value))
	}

	add("ICHIREN_NO", strconv.Itoa(row.No))
	add("KINGAKU", formatAmount(row.Amount))

	switch layout {
	case LayoutDonation:
		add("NAME", row.PartyName)
		add("JUUSHO", row.PartyAddress)
		add("SHOKUGYOU", row.Occupation)
	case LayoutExpense:
		add("MOKUTEKI", row.Purpose)
		add("NAME", row.PartyName)
	default:
		add("NAME", row.PartyName)
		add("JUUSHO", row.PartyAddress)
	}

	add("DT", formatDate(row.Date))
	add("BIKOU", row.Remarks)

	return e
}

// formatAmount renders yen as a plain decimal string: no separators, no
// currency symbol.
func formatAmount(amount int64) string {
	return strconv.FormatInt(amount, 10)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("20060102")
}
