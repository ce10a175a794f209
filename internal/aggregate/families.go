package aggregate

import (
	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/normalize"
)

// creditFirst resolves income-perspective rows: the credit side carries the
// amount, falling back to debit when the credit side is missing.
func creditFirst(t *model.Transaction) float64 {
	return normalize.ResolveAmount(t.DebitAmount, t.CreditAmount)
}

// debitFirst resolves expense-perspective rows.
func debitFirst(t *model.Transaction) float64 {
	return normalize.ResolveAmount(t.CreditAmount, t.DebitAmount)
}

func incomeRow(t *model.Transaction) model.Row {
	return model.Row{
		PartyName:    normalize.SanitizeText(t.Label, 0),
		PartyAddress: normalize.SanitizeText(t.Description, 0),
	}
}

func expenseRow(t *model.Transaction) model.Row {
	return model.Row{
		PartyName: normalize.SanitizeText(t.Label, 0),
		Purpose:   normalize.SanitizeText(t.Description, 0),
	}
}

// DonationConfig covers personal donations. No folding threshold: every
// donation is itemized, and the sheet is emitted whenever any row or amount
// exists.
func DonationConfig() Config {
	return Config{
		Name:       "personal donations",
		Categories: []model.CategoryKey{model.CatDonationPersonal},
		Threshold:  0,
		Amount:     creditFirst,
		MapRow: func(t *model.Transaction) model.Row {
			return model.Row{
				PartyName:    normalize.SanitizeText(t.Label, 0),
				PartyAddress: normalize.SanitizeText(t.Description, 0),
				Occupation:   normalize.SanitizeText(t.Occupation, 0),
			}
		},
	}
}

// BusinessIncomeConfig covers business income (機関紙誌発行その他の事業収入).
func BusinessIncomeConfig() Config {
	return Config{
		Name:       "business income",
		Categories: []model.CategoryKey{model.CatIncomeBusiness},
		Threshold:  ThresholdIncome,
		Amount:     creditFirst,
		MapRow:     incomeRow,
	}
}

// LoanIncomeConfig covers borrowings.
func LoanIncomeConfig() Config {
	return Config{
		Name:       "loans",
		Categories: []model.CategoryKey{model.CatIncomeLoan},
		Threshold:  ThresholdIncome,
		Amount:     creditFirst,
		MapRow:     incomeRow,
	}
}

// BranchGrantIncomeConfig covers grants received from the head office or
// other branches.
func BranchGrantIncomeConfig() Config {
	return Config{
		Name:       "branch grants income",
		Categories: []model.CategoryKey{model.CatIncomeBranchGrant},
		Threshold:  ThresholdIncome,
		Amount:     creditFirst,
		MapRow:     incomeRow,
	}
}

// OtherIncomeConfig covers income that fits no other sheet.
func OtherIncomeConfig() Config {
	return Config{
		Name:       "other income",
		Categories: []model.CategoryKey{model.CatIncomeOther},
		Threshold:  ThresholdIncome,
		Amount:     creditFirst,
		MapRow:     incomeRow,
	}
}

// PersonnelConfig covers personnel costs. The total feeds the expense
// breakdown flag but stays out of the regular-expense subtotal.
func PersonnelConfig() Config {
	return Config{
		Name:       "personnel expenses",
		Categories: []model.CategoryKey{model.CatExpensePersonnel},
		Threshold:  ThresholdRegularExpense,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}

// UtilityConfig covers light, heat and water costs.
func UtilityConfig() Config {
	return Config{
		Name:       "utility expenses",
		Categories: []model.CategoryKey{model.CatExpenseUtility},
		Threshold:  ThresholdRegularExpense,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}

// SuppliesConfig covers equipment and consumables.
func SuppliesConfig() Config {
	return Config{
		Name:       "supplies expenses",
		Categories: []model.CategoryKey{model.CatExpenseSupplies},
		Threshold:  ThresholdRegularExpense,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}

// OfficeConfig covers office costs.
func OfficeConfig() Config {
	return Config{
		Name:       "office expenses",
		Categories: []model.CategoryKey{model.CatExpenseOffice},
		Threshold:  ThresholdRegularExpense,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}

// BranchGrantExpenseConfig covers grants paid out to branches.
func BranchGrantExpenseConfig() Config {
	return Config{
		Name:       "branch grants expense",
		Categories: []model.CategoryKey{model.CatExpenseBranchGrant},
		Threshold:  ThresholdRegularExpense,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}

// PoliticalActivityConfig builds the config for one of the nine
// political-activity families. They share the lower ¥50,000 threshold and
// the expense row shape; only the category differs.
func PoliticalActivityConfig(category model.CategoryKey) Config {
	return Config{
		Name:       "political activity expenses (" + string(category) + ")",
		Categories: []model.CategoryKey{category},
		Threshold:  ThresholdPoliticalActivity,
		Amount:     debitFirst,
		MapRow:     expenseRow,
	}
}
