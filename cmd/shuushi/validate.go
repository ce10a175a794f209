package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ysakura/shuushi/internal/cli"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/report"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Assemble the report and list validation findings",
		Long: `Runs the full assembly and validation pass without writing any file.
Errors would block an export; warnings would not.`,
		RunE: runValidate,
	}

	cmd.Flags().StringP("org", "o", "", "organization id")
	cmd.Flags().IntP("year", "y", 0, "financial year")

	_ = viper.BindPFlag("validate.org", cmd.Flags().Lookup("org"))
	_ = viper.BindPFlag("validate.year", cmd.Flags().Lookup("year"))

	return cmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	orgID := viper.GetString("validate.org")
	year := viper.GetInt("validate.year")

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

	_, result, err := report.Assemble(*profile, byCategory)
	if err != nil {
		return err
	}

	printIssues(result)
	logIssueCounts(result)

	if !result.IsValid() {
		return fmt.Errorf("report has %d blocking error(s)", len(result.Errors))
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("report for %s/%d is exportable", orgID, year)))
	return nil
}
