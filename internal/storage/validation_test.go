package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysakura/shuushi/internal/model"
)

func TestSaveTransactionsRejectsInvalidRows(t *testing.T) {
	base := model.Transaction{
		Date:           time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		ID:             1,
		OrganizationID: "org-1",
		FinancialYear:  2024,
		Type:           model.TypeIncome,
		Category:       model.CatDonationPersonal,
		CreditAmount:   10000,
	}

	tests := []struct {
		mutate  func(*model.Transaction)
		name    string
		wantErr error
	}{
		{
			name:    "missing id",
			mutate:  func(txn *model.Transaction) { txn.ID = 0 },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing date",
			mutate:  func(txn *model.Transaction) { txn.Date = time.Time{} },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing organization",
			mutate:  func(txn *model.Transaction) { txn.OrganizationID = "" },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing year",
			mutate:  func(txn *model.Transaction) { txn.FinancialYear = 0 },
			wantErr: ErrInvalidTransaction,
		},
		{
			name:    "missing category",
			mutate:  func(txn *model.Transaction) { txn.Category = "" },
			wantErr: ErrInvalidTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testStorage(t)
			txn := base
			tt.mutate(&txn)

			err := store.SaveTransactions(context.Background(), []model.Transaction{txn})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSaveTransactionsAcceptsValidRow(t *testing.T) {
	store := testStorage(t)

	txn := model.Transaction{
		Date:           time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		ID:             1,
		OrganizationID: "org-1",
		FinancialYear:  2024,
		Type:           model.TypeIncome,
		Category:       model.CatDonationPersonal,
		CreditAmount:   10000,
	}
	require.NoError(t, store.SaveTransactions(context.Background(), []model.Transaction{txn}))
}

func TestSaveProfileRejectsInvalidProfile(t *testing.T) {
	store := testStorage(t)
	ctx := context.Background()

	err := store.SaveProfile(ctx, nil)
	assert.ErrorIs(t, err, ErrNilParameter)

	err = store.SaveProfile(ctx, &model.Profile{FinancialYear: 2024})
	assert.ErrorIs(t, err, ErrEmptyString)

	err = store.SaveProfile(ctx, &model.Profile{OrganizationID: "org-1"})
	assert.ErrorIs(t, err, ErrInvalidYear)
}
