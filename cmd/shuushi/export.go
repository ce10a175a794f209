package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ysakura/shuushi/internal/cli"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/export"
	"github.com/ysakura/shuushi/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Assemble and export the full report as Shift_JIS XML",
		Long: `Assembles every section of the income/expenditure report for one
organization and financial year, validates it, and writes the XML file for
the government filing system.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("org", "o", "", "organization id")
	cmd.Flags().IntP("year", "y", 0, "financial year")
	cmd.Flags().String("out", ".", "output directory")

	_ = viper.BindPFlag("export.org", cmd.Flags().Lookup("org"))
	_ = viper.BindPFlag("export.year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag("export.out", cmd.Flags().Lookup("out"))

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	orgID := viper.GetString("export.org")
	year := viper.GetInt("export.year")
	outDir := viper.GetString("export.out")

	if orgID == "" || year == 0 {
		return fmt.Errorf("--org and --year are required: %w", common.ErrMissingConfig)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	profile, err := store.GetProfile(ctx, orgID, year)
	if err != nil {
		return err
	}

	byCategory, err := store.GetTransactionsByCategory(ctx, orgID, year, allCategories())
	if err != nil {
		return err
	}

	carryover, err := store.GetPriorYearCarryover(ctx, orgID, year)
	if err != nil {
		return err
	}

	r, result, err := report.Assemble(*profile, byCategory)
	if err != nil {
		return err
	}

	printIssues(result)
	logIssueCounts(result)
	if !result.IsValid() {
		common.LogError(common.ErrExportBlocked, "Validation failed", common.Fields{
			"org":    orgID,
			"year":   year,
			"errors": len(result.Errors),
		})
		return common.ErrExportBlocked
	}

	exported, err := export.Report(r, carryover)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, exported.Filename)
	if err := os.WriteFile(path, exported.Bytes, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("Report exported",
		"org", orgID,
		"year", year,
		"file", path,
		"bytes", len(exported.Bytes))
	fmt.Println(cli.FormatSuccess("wrote " + path))

	return nil
}
