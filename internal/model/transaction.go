// Package model defines the core domain types shared across the application.
package model

import "time"

// TransactionType distinguishes the journal entry kinds the report engine
// understands.
type TransactionType string

// Journal entry kinds.
const (
	TypeIncome        TransactionType = "income"
	TypeExpense       TransactionType = "expense"
	TypeOffsetIncome  TransactionType = "offset_income"
	TypeOffsetExpense TransactionType = "offset_expense"
	TypeNonCash       TransactionType = "non_cash_journal"
)

// CategoryKey identifies the report section a transaction belongs to.
// Keys are stable machine identifiers; each maps to exactly one legal form.
type CategoryKey string

// Income-side categories.
const (
	CatDonationPersonal  CategoryKey = "donation_personal"
	CatIncomeBusiness    CategoryKey = "income_business"
	CatIncomeLoan        CategoryKey = "income_loan"
	CatIncomeBranchGrant CategoryKey = "income_branch_grant"
	CatIncomeOther       CategoryKey = "income_other"
)

// Expense-side categories. The nine political-activity kinds are legally
// distinct families; the rest are regular operating expenses.
const (
	CatExpensePersonnel     CategoryKey = "expense_personnel"
	CatExpenseUtility       CategoryKey = "expense_utility"
	CatExpenseSupplies      CategoryKey = "expense_supplies"
	CatExpenseOffice        CategoryKey = "expense_office"
	CatExpenseOrganization  CategoryKey = "expense_organization"
	CatExpenseElection      CategoryKey = "expense_election"
	CatExpensePublication   CategoryKey = "expense_publication"
	CatExpenseAdvertising   CategoryKey = "expense_advertising"
	CatExpenseParty         CategoryKey = "expense_party"
	CatExpenseOtherBusiness CategoryKey = "expense_other_business"
	CatExpenseResearch      CategoryKey = "expense_research"
	CatExpenseDonation      CategoryKey = "expense_donation"
	CatExpenseOtherPolitic  CategoryKey = "expense_other_political"
	CatExpenseBranchGrant   CategoryKey = "expense_branch_grant"
)

// PoliticalActivityCategories lists the nine political-activity expense
// families in their legally numbered order. The order is significant: it is
// the order the presence flag and the summary walk them.
var PoliticalActivityCategories = []CategoryKey{
	CatExpenseOrganization,
	CatExpenseElection,
	CatExpensePublication,
	CatExpenseAdvertising,
	CatExpenseParty,
	CatExpenseOtherBusiness,
	CatExpenseResearch,
	CatExpenseDonation,
	CatExpenseOtherPolitic,
}

// Transaction is one double-entry journal row. The engine treats it as
// read-only input: it is produced by the import path or an upstream system
// and never mutated during report assembly.
type Transaction struct {
	Date           time.Time
	ID             int64
	OrganizationID string
	FinancialYear  int
	Type           TransactionType
	Category       CategoryKey
	DebitAccount   string
	CreditAccount  string
	DebitAmount    float64
	CreditAmount   float64
	Label          string // Display name of the row (donor, payee, item)
	Description    string // Counterpart address or purpose, family-dependent
	Memo           string
	Occupation     string // donor occupation, personal donations only
	CostItem       string // 費目 grouping for political-activity expenses
	JournalLineNo  int    // Originating line number in the source journal
}

// IsIncome reports whether the transaction contributes to an income section.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome || t.Type == TypeOffsetIncome
}

// IsExpense reports whether the transaction contributes to an expense section.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense || t.Type == TypeOffsetExpense
}
