package aggregate

import (
	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/normalize"
)

// DefaultCostItem names the bucket for political-activity rows that carry no
// explicit 費目 label.
const DefaultCostItem = "その他"

// AggregateByCostItem folds one political-activity family into its
// array-valued form: one Section element per cost item (費目), in
// first-appearance order of the input. Row numbering restarts at 1 within
// each cost-item sheet.
func AggregateByCostItem(txns []model.Transaction, cfg Config) (model.SectionList, error) {
	var order []string
	groups := make(map[string][]model.Transaction)

	for i := range txns {
		t := &txns[i]
		if err := cfg.checkCategory(t); err != nil {
			return nil, err
		}

		item := normalize.SanitizeText(t.CostItem, 0)
		if item == "" {
			item = DefaultCostItem
		}
		if _, seen := groups[item]; !seen {
			order = append(order, item)
		}
		groups[item] = append(groups[item], *t)
	}

	var list model.SectionList
	for _, item := range order {
		section, err := Aggregate(groups[item], cfg)
		if err != nil {
			return nil, err
		}
		section.ItemName = item
		list = append(list, section)
	}

	return list, nil
}
