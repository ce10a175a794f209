package aggregate

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
)

func incomeTxn(id int64, amount float64) model.Transaction {
	return model.Transaction{
		ID:            id,
		Date:          time.Date(2025, time.March, int(id%28)+1, 0, 0, 0, 0, time.UTC),
		Type:          model.TypeIncome,
		Category:      model.CatIncomeOther,
		CreditAmount:  amount,
		Label:         fmt.Sprintf("取引先%d", id),
		Description:   "東京都千代田区1-1",
		JournalLineNo: int(id),
	}
}

func TestAggregateSingleDetailRow(t *testing.T) {
	txns := []model.Transaction{incomeTxn(1, 150000)}

	section, err := Aggregate(txns, OtherIncomeConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(150000), section.TotalAmount)
	assert.Nil(t, section.UnderThreshold)
	require.Len(t, section.Rows, 1)
	assert.Equal(t, 1, section.Rows[0].No)
	assert.Equal(t, int64(150000), section.Rows[0].Amount)
	assert.Equal(t, "取引先1", section.Rows[0].PartyName)
}

func TestAggregateFoldsBelowThreshold(t *testing.T) {
	txns := []model.Transaction{
		incomeTxn(1, 30000),
		incomeTxn(2, 40000),
	}

	section, err := Aggregate(txns, OtherIncomeConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(70000), section.TotalAmount)
	require.NotNil(t, section.UnderThreshold)
	assert.Equal(t, int64(70000), *section.UnderThreshold)
	assert.Empty(t, section.Rows)
}

func TestAggregateThresholdBoundary(t *testing.T) {
	// Exactly the threshold is a detail row; one yen under is folded.
	txns := []model.Transaction{
		incomeTxn(1, 100000),
		incomeTxn(2, 99999),
	}

	section, err := Aggregate(txns, OtherIncomeConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(199999), section.TotalAmount)
	require.Len(t, section.Rows, 1)
	assert.Equal(t, int64(100000), section.Rows[0].Amount)
	require.NotNil(t, section.UnderThreshold)
	assert.Equal(t, int64(99999), *section.UnderThreshold)
}

func TestAggregateConservation(t *testing.T) {
	amounts := []float64{5000, 100000, 250, 99999.4, 100000.5, 0, 123456}
	txns := make([]model.Transaction, 0, len(amounts))
	for i, amount := range amounts {
		txns = append(txns, incomeTxn(int64(i+1), amount))
	}

	section, err := Aggregate(txns, OtherIncomeConfig())
	require.NoError(t, err)

	var rowSum int64
	for _, row := range section.Rows {
		rowSum += row.Amount
	}
	var under int64
	if section.UnderThreshold != nil {
		under = *section.UnderThreshold
	}
	assert.Equal(t, section.TotalAmount, rowSum+under)
}

func TestAggregateEmptyInput(t *testing.T) {
	section, err := Aggregate(nil, OtherIncomeConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(0), section.TotalAmount)
	assert.Nil(t, section.UnderThreshold)
	assert.Empty(t, section.Rows)
	assert.False(t, section.ShouldOutput())
}

func TestAggregateRowNumberingPreservesOrder(t *testing.T) {
	txns := []model.Transaction{
		incomeTxn(3, 500000),
		incomeTxn(1, 200000), // caller's order wins, not amount or id
		incomeTxn(8, 300000),
	}

	section, err := Aggregate(txns, OtherIncomeConfig())
	require.NoError(t, err)

	require.Len(t, section.Rows, 3)
	for i, row := range section.Rows {
		assert.Equal(t, i+1, row.No)
	}
	assert.Equal(t, "取引先3", section.Rows[0].PartyName)
	assert.Equal(t, "取引先1", section.Rows[1].PartyName)
	assert.Equal(t, "取引先8", section.Rows[2].PartyName)
}

func TestAggregateRejectsForeignCategory(t *testing.T) {
	txn := incomeTxn(1, 150000)
	txn.Category = model.CatExpenseOffice

	_, err := Aggregate([]model.Transaction{txn}, OtherIncomeConfig())
	require.Error(t, err)

	var violation *common.ContractViolationError
	assert.ErrorAs(t, err, &violation)
}

func TestAggregateExpensePerspectiveReadsDebit(t *testing.T) {
	txn := model.Transaction{
		ID:          1,
		Type:        model.TypeExpense,
		Category:    model.CatExpenseOffice,
		DebitAmount: 120000,
		// Credit side carries the cash account, which must not win.
		CreditAmount: 0,
		Label:        "不動産管理株式会社",
		Description:  "事務所家賃",
	}

	section, err := Aggregate([]model.Transaction{txn}, OfficeConfig())
	require.NoError(t, err)

	require.Len(t, section.Rows, 1)
	assert.Equal(t, int64(120000), section.Rows[0].Amount)
	assert.Equal(t, "事務所家賃", section.Rows[0].Purpose)
}

func TestDonationConfigNeverFolds(t *testing.T) {
	txns := []model.Transaction{
		{ID: 1, Type: model.TypeIncome, Category: model.CatDonationPersonal,
			CreditAmount: 1000, Label: "山田太郎", Description: "東京都港区", Occupation: "会社員"},
		{ID: 2, Type: model.TypeIncome, Category: model.CatDonationPersonal,
			CreditAmount: 300, Label: "佐藤花子"},
	}

	section, err := Aggregate(txns, DonationConfig())
	require.NoError(t, err)

	assert.Equal(t, int64(1300), section.TotalAmount)
	assert.Nil(t, section.UnderThreshold)
	require.Len(t, section.Rows, 2)
	assert.Equal(t, "会社員", section.Rows[0].Occupation)
	assert.True(t, section.HasContent())
}

func TestBuildRemarks(t *testing.T) {
	tests := []struct {
		name   string
		memo   string
		lineNo int
		want   string
	}{
		{
			name:   "memo plus suffix",
			memo:   "四半期分",
			lineNo: 12,
			want:   "四半期分 元帳行番号:12",
		},
		{
			name:   "empty memo yields bare suffix",
			memo:   "",
			lineNo: 7,
			want:   "元帳行番号:7",
		},
		{
			name:   "whitespace memo collapses",
			memo:   "  a \t b  ",
			lineNo: 3,
			want:   "a b 元帳行番号:3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildRemarks(tt.memo, tt.lineNo))
		})
	}
}

func TestBuildRemarksTruncates(t *testing.T) {
	memo := strings.Repeat("あ", 300)
	got := BuildRemarks(memo, 1)
	assert.Len(t, []rune(got), RemarksMaxLen)
}
