package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ysakura/shuushi/internal/cli"
	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
)

// Column order for the journal CSV. A header row with these names is
// required; it keeps hand-edited files honest.
var csvColumns = []string{
	"id", "date", "type", "category",
	"debit_account", "credit_account", "debit", "credit",
	"label", "description", "memo", "occupation", "cost_item", "line_no",
}

const csvDateLayout = "2006-01-02"

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load journal rows from a CSV file",
		Long: `Imports double-entry journal rows exported from the bookkeeping system
into the local database. Rows are keyed by id, so re-importing a corrected
file replaces the earlier rows.`,
		RunE: runImport,
	}

	cmd.Flags().StringP("org", "o", "", "organization id")
	cmd.Flags().IntP("year", "y", 0, "financial year")
	cmd.Flags().StringP("file", "f", "", "journal CSV file")
	cmd.Flags().Int64("carryover", -1, "prior-year carryover amount in yen")

	cmd.Flags().String("name", "", "organization name (updates the profile)")
	cmd.Flags().String("kana", "", "organization name reading")
	cmd.Flags().String("address", "", "organization address")
	cmd.Flags().String("representative", "", "representative name")
	cmd.Flags().String("treasurer", "", "treasurer name")
	cmd.Flags().String("contact", "", "contact person name")
	cmd.Flags().String("phone", "", "contact phone number")

	_ = viper.BindPFlag("import.org", cmd.Flags().Lookup("org"))
	_ = viper.BindPFlag("import.year", cmd.Flags().Lookup("year"))
	_ = viper.BindPFlag("import.file", cmd.Flags().Lookup("file"))

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	orgID := viper.GetString("import.org")
	year := viper.GetInt("import.year")
	file := viper.GetString("import.file")

	if orgID == "" || year == 0 {
		return fmt.Errorf("--org and --year are required: %w", common.ErrMissingConfig)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		profile := model.Profile{
			OrganizationID: orgID,
			FinancialYear:  year,
			Name:           name,
		}
		profile.NameKana, _ = cmd.Flags().GetString("kana")
		profile.Address, _ = cmd.Flags().GetString("address")
		profile.RepresentativeName, _ = cmd.Flags().GetString("representative")
		profile.TreasurerName, _ = cmd.Flags().GetString("treasurer")
		profile.ContactName, _ = cmd.Flags().GetString("contact")
		profile.ContactPhone, _ = cmd.Flags().GetString("phone")

		if err := store.SaveProfile(ctx, &profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		slog.Info("Profile saved", "org", orgID, "year", year)
	}

	if carryover, _ := cmd.Flags().GetInt64("carryover"); carryover >= 0 {
		if err := store.SetPriorYearCarryover(ctx, orgID, year, carryover); err != nil {
			return fmt.Errorf("failed to save carryover: %w", err)
		}
		slog.Info("Carryover saved", "org", orgID, "year", year, "amount", carryover)
	}

	if file == "" {
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer func() { _ = f.Close() }()

	txns, err := readJournalCSV(f, orgID, year)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	if err := store.SaveTransactions(ctx, txns); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	slog.Info("Journal imported", "org", orgID, "year", year, "rows", len(txns))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("imported %d journal rows", len(txns))))

	return nil
}

func readJournalCSV(r io.Reader, orgID string, year int) ([]model.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvColumns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("missing header row: %w", err)
	}
	for i, want := range csvColumns {
		if header[i] != want {
			return nil, fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}

	var txns []model.Transaction
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		txn, err := parseJournalRecord(record, orgID, year)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

func parseJournalRecord(record []string, orgID string, year int) (model.Transaction, error) {
	var txn model.Transaction

	id, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return txn, fmt.Errorf("invalid id %q: %w", record[0], err)
	}

	date, err := time.Parse(csvDateLayout, record[1])
	if err != nil {
		return txn, fmt.Errorf("invalid date %q: %w", record[1], err)
	}

	debit, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return txn, fmt.Errorf("invalid debit amount %q: %w", record[6], err)
	}

	credit, err := strconv.ParseFloat(record[7], 64)
	if err != nil {
		return txn, fmt.Errorf("invalid credit amount %q: %w", record[7], err)
	}

	lineNo, err := strconv.Atoi(record[13])
	if err != nil {
		return txn, fmt.Errorf("invalid line number %q: %w", record[13], err)
	}

	txn = model.Transaction{
		Date:           date,
		ID:             id,
		OrganizationID: orgID,
		FinancialYear:  year,
		Type:           model.TransactionType(record[2]),
		Category:       model.CategoryKey(record[3]),
		DebitAccount:   record[4],
		CreditAccount:  record[5],
		DebitAmount:    debit,
		CreditAmount:   credit,
		Label:          record[8],
		Description:    record[9],
		Memo:           record[10],
		Occupation:     record[11],
		CostItem:       record[12],
		JournalLineNo:  lineNo,
	}
	return txn, nil
}
