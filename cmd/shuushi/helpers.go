package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ysakura/shuushi/internal/cli"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/storage"
)

// allCategories is every category key the report dispatches on.
func allCategories() []model.CategoryKey {
	keys := []model.CategoryKey{
		model.CatDonationPersonal,
		model.CatIncomeBusiness,
		model.CatIncomeLoan,
		model.CatIncomeBranchGrant,
		model.CatIncomeOther,
		model.CatExpensePersonnel,
		model.CatExpenseUtility,
		model.CatExpenseSupplies,
		model.CatExpenseOffice,
		model.CatExpenseBranchGrant,
	}
	return append(keys, model.PoliticalActivityCategories...)
}

func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func printIssues(result *common.ValidationResult) {
	for _, issue := range result.Errors {
		fmt.Println(cli.FormatError(issue.String()))
	}
	for _, issue := range result.Warnings {
		fmt.Println(cli.FormatWarning(issue.String()))
	}
}

func logIssueCounts(result *common.ValidationResult) {
	common.LogInfo("Validation finished", common.Fields{
		"errors":   len(result.Errors),
		"warnings": len(result.Warnings),
	})
}
