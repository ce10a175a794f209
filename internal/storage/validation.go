package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ysakura/shuushi/internal/model"
)

// Validation errors for the storage write paths.
var (
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidYear        = errors.New("financial year must be positive")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateYear(year int) error {
	if year <= 0 {
		return ErrInvalidYear
	}
	return nil
}

// validateTransactions rejects journal rows the report engine could never
// process, so corrupt rows never reach the database.
func validateTransactions(transactions []model.Transaction) error {
	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn.ID <= 0 {
		return fmt.Errorf("%w: missing id", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.OrganizationID == "" {
		return fmt.Errorf("%w: missing organization id", ErrInvalidTransaction)
	}
	if txn.FinancialYear <= 0 {
		return fmt.Errorf("%w: missing financial year", ErrInvalidTransaction)
	}
	if txn.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	return nil
}

func validateProfile(profile *model.Profile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile", ErrNilParameter)
	}
	if err := validateString(profile.OrganizationID, "organization id"); err != nil {
		return err
	}
	return validateYear(profile.FinancialYear)
}
