package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ysakura/shuushi/internal/common"
	"github.com/ysakura/shuushi/internal/model"
)

// SaveProfile inserts or replaces the organization record for one year.
func (s *SQLiteStorage) SaveProfile(ctx context.Context, profile *model.Profile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO organizations
		(org_id, year, name, name_kana, address,
		 representative_name, treasurer_name, contact_name, contact_phone)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		profile.OrganizationID, profile.FinancialYear, profile.Name, profile.NameKana,
		profile.Address, profile.RepresentativeName, profile.TreasurerName,
		profile.ContactName, profile.ContactPhone)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile loads the organization record for one year.
func (s *SQLiteStorage) GetProfile(ctx context.Context, orgID string, year int) (*model.Profile, error) {
	p := model.Profile{OrganizationID: orgID, FinancialYear: year}

	err := s.db.QueryRowContext(ctx, `SELECT name, name_kana, address,
			representative_name, treasurer_name, contact_name, contact_phone
		FROM organizations WHERE org_id = ? AND year = ?`, orgID, year).Scan(
		&p.Name, &p.NameKana, &p.Address,
		&p.RepresentativeName, &p.TreasurerName, &p.ContactName, &p.ContactPhone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile for %s/%d: %w", orgID, year, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &p, nil
}

// SetPriorYearCarryover records the balance carried into the given year.
func (s *SQLiteStorage) SetPriorYearCarryover(ctx context.Context, orgID string, year int, amount int64) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO carryovers (org_id, year, amount)
		VALUES (?, ?, ?)`, orgID, year, amount)
	if err != nil {
		return fmt.Errorf("failed to save carryover: %w", err)
	}
	return nil
}

// GetPriorYearCarryover returns the balance carried into the given year, or
// zero when none has been recorded.
func (s *SQLiteStorage) GetPriorYearCarryover(ctx context.Context, orgID string, year int) (int64, error) {
	var amount int64
	err := s.db.QueryRowContext(ctx,
		`SELECT amount FROM carryovers WHERE org_id = ? AND year = ?`, orgID, year).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load carryover: %w", err)
	}
	return amount, nil
}
