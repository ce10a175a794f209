// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/ysakura/shuushi/internal/model"
)

// Storage defines the contract for our persistence layer. The report engine
// only reads; the write paths serve the import command.
type Storage interface {
	// Read paths consumed by report assembly. Transactions come back
	// grouped by category, each slice sorted by date ascending with an id
	// tiebreak, exactly the order the aggregators number rows in.
	GetProfile(ctx context.Context, orgID string, year int) (*model.Profile, error)
	GetTransactionsByCategory(ctx context.Context, orgID string, year int, categories []model.CategoryKey) (map[model.CategoryKey][]model.Transaction, error)
	GetPriorYearCarryover(ctx context.Context, orgID string, year int) (int64, error)

	// Write paths.
	SaveProfile(ctx context.Context, profile *model.Profile) error
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	SetPriorYearCarryover(ctx context.Context, orgID string, year int, amount int64) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}
