// Package aggregate folds flat transaction lists into report sections.
//
// Every section family shares the same fold: resolve the monetary side of
// each journal row, round it, and either itemize it as a detail row or sum
// it into the under-threshold bucket. Families differ only in threshold,
// declared category set, and how a transaction projects into a row, so the
// fold is written once and parameterized by a Config.
package aggregate

import (
	"fmt"

	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/normalize"
)

// RemarksMaxLen caps the remarks column of every detail row.
const RemarksMaxLen = 200

// Section thresholds in yen. A resolved amount >= the threshold is itemized;
// below it, it is folded into the under-threshold bucket.
const (
	ThresholdIncome            = 100_000
	ThresholdRegularExpense    = 100_000
	ThresholdPoliticalActivity = 50_000
)

// Config parameterizes the section fold for one family.
type Config struct {
	// Name identifies the family in contract-violation messages.
	Name string
	// Categories is the declared category set; a transaction outside it is
	// an upstream filtering bug and aborts the fold.
	Categories []model.CategoryKey
	// Threshold folds amounts below it; zero disables folding entirely.
	Threshold int64
	// Amount picks the economically meaningful side of the journal row.
	Amount func(t *model.Transaction) float64
	// MapRow projects one transaction into the family's row columns.
	// Amount, No and Remarks are filled by the fold afterwards.
	MapRow func(t *model.Transaction) model.Row
}

// Aggregate runs the section fold over a pre-filtered, pre-sorted
// transaction slice. Callers must sort by date ascending with a stable id
// tiebreak before calling; row numbering preserves input order.
func Aggregate(txns []model.Transaction, cfg Config) (model.Section, error) {
	section := model.Section{}

	var underTotal int64
	folded := false

	for i := range txns {
		t := &txns[i]
		if err := cfg.checkCategory(t); err != nil {
			return model.Section{}, err
		}

		amount := normalize.RoundAmount(cfg.Amount(t))
		section.TotalAmount += amount

		if cfg.Threshold > 0 && amount < cfg.Threshold {
			underTotal += amount
			folded = true
			continue
		}

		row := cfg.MapRow(t)
		row.No = len(section.Rows) + 1
		row.Amount = amount
		row.Date = t.Date
		row.Remarks = BuildRemarks(t.Memo, t.JournalLineNo)
		section.Rows = append(section.Rows, row)
	}

	if folded {
		section.UnderThreshold = &underTotal
	}

	return section, nil
}

// BuildRemarks composes a row's remarks column: the sanitized memo followed
// by the fixed journal line suffix, capped at RemarksMaxLen characters.
func BuildRemarks(memo string, journalLineNo int) string {
	suffix := fmt.Sprintf("元帳行番号:%d", journalLineNo)
	memo = normalize.SanitizeText(memo, 0)
	if memo == "" {
		return normalize.SanitizeText(suffix, RemarksMaxLen)
	}
	return normalize.SanitizeText(memo+" "+suffix, RemarksMaxLen)
}

func (c Config) checkCategory(t *model.Transaction) error {
	for _, key := range c.Categories {
		if t.Category == key {
			return nil
		}
	}
	return common.NewContractViolation(c.Name,
		"transaction %d carries category %q outside the declared set", t.ID, t.Category)
}
