// Package report assembles all sections of one (organization, financial
// year) report and validates the result before it may be serialized.
package report

import (
	"sync"

	"github.com/ysakura/shuushi/internal/aggregate"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
)

// knownCategories is the full dispatch set. A category key outside it cannot
// be routed to any aggregator and aborts assembly as an upstream bug.
var knownCategories = map[model.CategoryKey]struct{}{
	model.CatDonationPersonal:  {},
	model.CatIncomeBusiness:    {},
	model.CatIncomeLoan:        {},
	model.CatIncomeBranchGrant: {},
	model.CatIncomeOther:       {},

	model.CatExpensePersonnel:     {},
	model.CatExpenseUtility:       {},
	model.CatExpenseSupplies:      {},
	model.CatExpenseOffice:        {},
	model.CatExpenseOrganization:  {},
	model.CatExpenseElection:      {},
	model.CatExpensePublication:   {},
	model.CatExpenseAdvertising:   {},
	model.CatExpenseParty:         {},
	model.CatExpenseOtherBusiness: {},
	model.CatExpenseResearch:      {},
	model.CatExpenseDonation:      {},
	model.CatExpenseOtherPolitic:  {},
	model.CatExpenseBranchGrant:   {},
}

// Assemble runs every section aggregator over its pre-filtered transaction
// slice and bundles the results with the profile. Slices must arrive sorted
// by date ascending with a stable id tiebreak; aggregators do not re-sort.
//
// Aggregation is a pure function of its inputs, so the independent families
// fan out in parallel and join before validation. A non-nil error is a
// contract violation; validation findings come back in the result instead.
func Assemble(profile model.Profile, byCategory map[model.CategoryKey][]model.Transaction) (*model.ReportData, *common.ValidationResult, error) {
	for key := range byCategory {
		if _, ok := knownCategories[key]; !ok {
			return nil, nil, common.NewContractViolation("report assembly",
				"no aggregator accepts category %q", key)
		}
	}

	r := &model.ReportData{Profile: profile}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	section := func(dst *model.Section, key model.CategoryKey, cfg aggregate.Config) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := aggregate.Aggregate(byCategory[key], cfg)
			if err != nil {
				fail(err)
				return
			}
			*dst = s
		}()
	}

	family := func(dst *model.SectionList, key model.CategoryKey) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			list, err := aggregate.AggregateByCostItem(byCategory[key], aggregate.PoliticalActivityConfig(key))
			if err != nil {
				fail(err)
				return
			}
			*dst = list
		}()
	}

	section(&r.Donations, model.CatDonationPersonal, aggregate.DonationConfig())
	section(&r.BusinessIncome, model.CatIncomeBusiness, aggregate.BusinessIncomeConfig())
	section(&r.LoanIncome, model.CatIncomeLoan, aggregate.LoanIncomeConfig())
	section(&r.BranchGrantIncome, model.CatIncomeBranchGrant, aggregate.BranchGrantIncomeConfig())
	section(&r.OtherIncome, model.CatIncomeOther, aggregate.OtherIncomeConfig())

	section(&r.Expenses.Personnel, model.CatExpensePersonnel, aggregate.PersonnelConfig())
	section(&r.Expenses.Utility, model.CatExpenseUtility, aggregate.UtilityConfig())
	section(&r.Expenses.Supplies, model.CatExpenseSupplies, aggregate.SuppliesConfig())
	section(&r.Expenses.Office, model.CatExpenseOffice, aggregate.OfficeConfig())
	section(&r.Expenses.BranchGrant, model.CatExpenseBranchGrant, aggregate.BranchGrantExpenseConfig())

	family(&r.Expenses.Organization, model.CatExpenseOrganization)
	family(&r.Expenses.Election, model.CatExpenseElection)
	family(&r.Expenses.Publication, model.CatExpensePublication)
	family(&r.Expenses.Advertising, model.CatExpenseAdvertising)
	family(&r.Expenses.Party, model.CatExpenseParty)
	family(&r.Expenses.OtherBusiness, model.CatExpenseOtherBusiness)
	family(&r.Expenses.Research, model.CatExpenseResearch)
	family(&r.Expenses.DonationGrant, model.CatExpenseDonation)
	family(&r.Expenses.OtherPolitic, model.CatExpenseOtherPolitic)

	wg.Wait()

	if firstErr != nil {
		return nil, nil, firstErr
	}

	result := Validate(r)
	return r, &result, nil
}
