package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ysakura/shuushi/internal/aggregate"
	"github.com/ysakura/shuushi/internal/cli"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/export"
	"github.com/ysakura/shuushi/internal/model"
	"github.com/ysakura/shuushi/internal/xmlgen"
)

// sheetSpec wires one exportable legal form to its category, aggregation
// config and row layout.
type sheetSpec struct {
	config    func() aggregate.Config
	form      xmlgen.FormCode
	layout    xmlgen.RowLayout
	category  model.CategoryKey
	family    bool // array-valued: one file holding all cost-item sheets
	breakdown bool // labeled sheet of the shared expense breakdown form
	sheet     export.BreakdownSheet
}

var sheetSpecs = map[string]sheetSpec{
	"donation": {form: xmlgen.FormDonation, layout: xmlgen.LayoutDonation,
		category: model.CatDonationPersonal, config: aggregate.DonationConfig},
	"business-income": {form: xmlgen.FormBusinessIncome, layout: xmlgen.LayoutIncome,
		category: model.CatIncomeBusiness, config: aggregate.BusinessIncomeConfig},
	"loan": {form: xmlgen.FormLoan, layout: xmlgen.LayoutIncome,
		category: model.CatIncomeLoan, config: aggregate.LoanIncomeConfig},
	"branch-grant-income": {form: xmlgen.FormBranchGrantIncome, layout: xmlgen.LayoutIncome,
		category: model.CatIncomeBranchGrant, config: aggregate.BranchGrantIncomeConfig},
	"other-income": {form: xmlgen.FormOtherIncome, layout: xmlgen.LayoutIncome,
		category: model.CatIncomeOther, config: aggregate.OtherIncomeConfig},
	"personnel": {form: xmlgen.FormExpenseBreakdown, layout: xmlgen.LayoutExpense,
		category: model.CatExpensePersonnel, config: aggregate.PersonnelConfig,
		breakdown: true, sheet: export.SheetPersonnel},
	"utility": {form: xmlgen.FormExpenseBreakdown, layout: xmlgen.LayoutExpense,
		category: model.CatExpenseUtility, config: aggregate.UtilityConfig,
		breakdown: true, sheet: export.SheetUtility},
	"supplies": {form: xmlgen.FormExpenseBreakdown, layout: xmlgen.LayoutExpense,
		category: model.CatExpenseSupplies, config: aggregate.SuppliesConfig,
		breakdown: true, sheet: export.SheetSupplies},
	"office": {form: xmlgen.FormExpenseBreakdown, layout: xmlgen.LayoutExpense,
		category: model.CatExpenseOffice, config: aggregate.OfficeConfig,
		breakdown: true, sheet: export.SheetOffice},
	"branch-grant-expense": {form: xmlgen.FormBranchGrantExpense, layout: xmlgen.LayoutExpense,
		category: model.CatExpenseBranchGrant, config: aggregate.BranchGrantExpenseConfig},
}

func init() {
	names := []string{
		"organization", "election", "publication", "advertising", "party",
		"other-business", "research", "donation-grant", "other-political",
	}
	for i, name := range names {
		category := model.PoliticalActivityCategories[i]
		sheetSpecs[name] = sheetSpec{
			form:     xmlgen.PoliticalActivityForm(i + 1),
			layout:   xmlgen.LayoutExpense,
			category: category,
			config:   func() aggregate.Config { return aggregate.PoliticalActivityConfig(category) },
			family:   true,
		}
	}
}

func sheetNames() string {
	names := make([]string, 0, len(sheetSpecs))
	for name := range sheetSpecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func sheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Export a single legal form",
		Long: `Regenerates one sheet of the report without re-submitting the whole
document, for ad-hoc corrections.`,
		RunE: runSheet,
	}

	cmd.Flags().StringP("org", "o", "", "organization id")
	cmd.Flags().IntP("year", "y", 0, "financial year")
	cmd.Flags().StringP("form", "f", "", "form to export ("+sheetNames()+")")
	cmd.Flags().String("out", ".", "output directory")

	_ = viper.BindPFlag("sheet.org", cmd.Flags().Lookup("org"))
	_ = viper.BindPFlag("sheet.year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag("sheet.form", cmd.Flags().Lookup("form"))
	_ = viper.BindPFlag("sheet.out", cmd.Flags().Lookup("out"))

	return cmd
}

func runSheet(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	orgID := viper.GetString("sheet.org")
	year := viper.GetInt("sheet.year")
	formName := viper.GetString("sheet.form")
	outDir := viper.GetString("sheet.out")

	if orgID == "" || year == 0 || formName == "" {
		return fmt.Errorf("--org, --year and --form are required: %w", common.ErrMissingConfig)
	}

	spec, ok := sheetSpecs[formName]
	if !ok {
		return fmt.Errorf("unknown form %q (choose one of: %s)", formName, sheetNames())
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	byCategory, err := store.GetTransactionsByCategory(ctx, orgID, year,
		[]model.CategoryKey{spec.category})
	if err != nil {
		return err
	}
	txns := byCategory[spec.category]

	var exported *export.Result
	if spec.family {
		list, aggErr := aggregate.AggregateByCostItem(txns, spec.config())
		if aggErr != nil {
			return aggErr
		}
		exported, err = export.Family(list, spec.form, orgID, year)
	} else {
		section, aggErr := aggregate.Aggregate(txns, spec.config())
		if aggErr != nil {
			return aggErr
		}
		if spec.breakdown {
			exported, err = export.Breakdown(&section, spec.sheet, orgID, year)
		} else {
			exported, err = export.Section(&section, spec.form, spec.layout, orgID, year)
		}
	}
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, exported.Filename)
	if err := os.WriteFile(path, exported.Bytes, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	slog.Info("Sheet exported",
		"form", formName,
		"org", orgID,
		"year", year,
		"file", path)
	fmt.Println(cli.FormatSuccess("wrote " + path))

	return nil
}
