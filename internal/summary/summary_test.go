package summary

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakura/shuushi/internal/model"
)

func TestComputeEmptyReport(t *testing.T) {
	s := Compute(&model.ReportData{}, 123456)

	assert.Equal(t, int64(123456), s.PriorYearCarryover)
	assert.Equal(t, int64(0), s.CurrentYearIncome)
	assert.Equal(t, int64(123456), s.TotalIncome)
	assert.Equal(t, int64(0), s.TotalExpense)
	assert.Equal(t, int64(123456), s.NextYearCarryover)
}

func TestComputeIncomeChain(t *testing.T) {
	r := &model.ReportData{
		Donations:         model.Section{TotalAmount: 500000},
		BusinessIncome:    model.Section{TotalAmount: 200000},
		LoanIncome:        model.Section{TotalAmount: 1000000},
		BranchGrantIncome: model.Section{TotalAmount: 300000},
		OtherIncome:       model.Section{TotalAmount: 70000},
	}

	s := Compute(r, 100000)

	assert.Equal(t, int64(500000), s.PersonalDonations)
	assert.Equal(t, int64(500000), s.DonationSubtotal)
	assert.Equal(t, int64(500000), s.DonationTotal)
	assert.Equal(t, int64(2070000), s.CurrentYearIncome)
	assert.Equal(t, int64(2170000), s.TotalIncome)
}

func TestComputeOutOfScopeDonorFieldsStayNil(t *testing.T) {
	s := Compute(&model.ReportData{
		Donations: model.Section{TotalAmount: 99999},
	}, 0)

	assert.Nil(t, s.SpecificDonations)
	assert.Nil(t, s.CorporateDonations)
	assert.Nil(t, s.PoliticalOrgDonations)
	assert.Nil(t, s.BrokeredDonations)
	assert.Nil(t, s.AnonymousParty)
}

func TestComputeExpenseChain(t *testing.T) {
	r := &model.ReportData{
		Expenses: model.ExpenseBundle{
			Personnel: model.Section{TotalAmount: 400000},
			Utility:   model.Section{TotalAmount: 50000},
			Supplies:  model.Section{TotalAmount: 30000},
			Office:    model.Section{TotalAmount: 120000},
			Organization: model.SectionList{
				{TotalAmount: 100000},
				{TotalAmount: 50000},
			},
			Research: model.SectionList{{TotalAmount: 25000}},
		},
	}

	s := Compute(r, 0)

	// Personnel is excluded from the regular-expense subtotal.
	assert.Equal(t, int64(200000), s.RegularExpenseTotal)
	assert.Equal(t, int64(400000), s.Personnel)
	assert.Equal(t, int64(150000), s.Organization)
	assert.Equal(t, int64(175000), s.PoliticalActivityTotal)
	assert.Equal(t, int64(375000), s.TotalExpense)
	assert.Equal(t, int64(-375000), s.NextYearCarryover)
}

func TestComputeCarryoverRoundTrip(t *testing.T) {
	// nextYearCarryover == totalIncome - totalExpense must hold exactly for
	// arbitrary section totals, including negative carryover scenarios.
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		r := &model.ReportData{
			Donations:         model.Section{TotalAmount: rng.Int63n(10_000_000)},
			BusinessIncome:    model.Section{TotalAmount: rng.Int63n(10_000_000)},
			LoanIncome:        model.Section{TotalAmount: rng.Int63n(10_000_000)},
			BranchGrantIncome: model.Section{TotalAmount: rng.Int63n(10_000_000)},
			OtherIncome:       model.Section{TotalAmount: rng.Int63n(10_000_000)},
			Expenses: model.ExpenseBundle{
				Utility:      model.Section{TotalAmount: rng.Int63n(10_000_000)},
				Supplies:     model.Section{TotalAmount: rng.Int63n(10_000_000)},
				Office:       model.Section{TotalAmount: rng.Int63n(50_000_000)},
				Organization: model.SectionList{{TotalAmount: rng.Int63n(10_000_000)}},
				Election:     model.SectionList{{TotalAmount: rng.Int63n(10_000_000)}},
				OtherPolitic: model.SectionList{{TotalAmount: rng.Int63n(10_000_000)}},
			},
		}
		carryover := rng.Int63n(20_000_000) - 10_000_000

		s := Compute(r, carryover)

		require.Equal(t, s.TotalIncome-s.TotalExpense, s.NextYearCarryover)
		require.Equal(t, s.PriorYearCarryover+s.CurrentYearIncome, s.TotalIncome)
		require.Equal(t, s.RegularExpenseTotal+s.PoliticalActivityTotal, s.TotalExpense)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	r := &model.ReportData{
		OtherIncome: model.Section{TotalAmount: 150000},
		Expenses: model.ExpenseBundle{
			Office: model.Section{TotalAmount: 120000},
		},
	}

	first := Compute(r, 42)
	second := Compute(r, 42)
	assert.Equal(t, first, second)
}
