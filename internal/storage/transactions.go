package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/ysakura/shuushi/internal/model"
)

// SaveTransactions inserts or replaces journal rows in one transaction.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	return s.execTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO transactions
			(id, org_id, year, date, type, category,
			 debit_account, credit_account, debit_amount, credit_amount,
			 label, description, memo, occupation, cost_item, journal_line_no)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for i := range transactions {
			t := &transactions[i]
			if _, err := stmt.ExecContext(ctx,
				t.ID, t.OrganizationID, t.FinancialYear, t.Date, string(t.Type), string(t.Category),
				t.DebitAccount, t.CreditAccount, t.DebitAmount, t.CreditAmount,
				t.Label, t.Description, t.Memo, t.Occupation, t.CostItem, t.JournalLineNo,
			); err != nil {
				return fmt.Errorf("failed to insert transaction %d: %w", t.ID, err)
			}
		}
		return nil
	})
}

// GetTransactionsByCategory loads the journal rows feeding one report,
// grouped by category. Each slice comes back sorted by date ascending with
// an id tiebreak, the exact order the aggregators number rows in.
func (s *SQLiteStorage) GetTransactionsByCategory(ctx context.Context, orgID string, year int, categories []model.CategoryKey) (map[model.CategoryKey][]model.Transaction, error) {
	result := make(map[model.CategoryKey][]model.Transaction)
	if len(categories) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(categories))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, 0, len(categories)+2)
	args = append(args, orgID, year)
	for _, c := range categories {
		args = append(args, string(c))
	}

	query := fmt.Sprintf(`SELECT id, org_id, year, date, type, category,
			debit_account, credit_account, debit_amount, credit_amount,
			label, description, memo, occupation, cost_item, journal_line_no
		FROM transactions
		WHERE org_id = ? AND year = ? AND category IN (%s)
		ORDER BY date ASC, id ASC`, placeholders)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var t model.Transaction
		var txnType, category string
		if err := rows.Scan(
			&t.ID, &t.OrganizationID, &t.FinancialYear, &t.Date, &txnType, &category,
			&t.DebitAccount, &t.CreditAccount, &t.DebitAmount, &t.CreditAmount,
			&t.Label, &t.Description, &t.Memo, &t.Occupation, &t.CostItem, &t.JournalLineNo,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Type = model.TransactionType(txnType)
		t.Category = model.CategoryKey(category)
		result[t.Category] = append(result[t.Category], t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return result, nil
}
