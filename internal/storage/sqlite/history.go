package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/models"
	"github.com/mmynk/naijatax/internal/storage"
)

const historyColumns = `id, user_id, created_at,
	monthly_gross_income, other_monthly_income, employment_type,
	monthly_pension, monthly_nhf, monthly_other_deductions, year,
	monthly_gross, monthly_tax, monthly_net`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateHistoryRecord persists a saved calculation.
func (s *SQLiteStore) CreateHistoryRecord(ctx context.Context, record *models.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().UnixMilli()
	}

	in := record.Inputs
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO history (`+historyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.UserID, record.CreatedAt,
		in.MonthlyGrossIncome, in.OtherMonthlyIncome, string(in.EmploymentType),
		in.MonthlyPensionContribution, in.MonthlyNHFContribution, in.MonthlyOtherDeductions, in.Year,
		record.Summary.MonthlyGross, record.Summary.MonthlyTax, record.Summary.MonthlyNet,
	)
	if err != nil {
		return fmt.Errorf("failed to insert history record: %w", err)
	}
	return nil
}

// ListHistory returns the user's records, newest first.
// A non-positive limit returns all of them.
func (s *SQLiteStore) ListHistory(ctx context.Context, userID string, limit int) ([]*models.HistoryRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+historyColumns+` FROM history
		 WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var records []*models.HistoryRecord
	for rows.Next() {
		record, err := scanHistoryRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}

	return records, nil
}

// GetHistoryRecord retrieves one of the user's records.
func (s *SQLiteStore) GetHistoryRecord(ctx context.Context, userID, recordID string) (*models.HistoryRecord, error) {
	record, err := scanHistoryRecord(s.db.QueryRowContext(ctx,
		`SELECT `+historyColumns+` FROM history WHERE id = ? AND user_id = ?`,
		recordID, userID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("history record %s: %w", recordID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}
	return record, nil
}

// DeleteHistoryRecord removes one of the user's records.
func (s *SQLiteStore) DeleteHistoryRecord(ctx context.Context, userID, recordID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM history WHERE id = ? AND user_id = ?",
		recordID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("history record %s: %w", recordID, storage.ErrNotFound)
	}
	return nil
}

// ClearHistory removes all of the user's records.
func (s *SQLiteStore) ClearHistory(ctx context.Context, userID string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM history WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check deleted rows: %w", err)
	}
	return n, nil
}

func scanHistoryRecord(row rowScanner) (*models.HistoryRecord, error) {
	var (
		record         models.HistoryRecord
		employmentType string
	)
	in := &record.Inputs
	err := row.Scan(
		&record.ID, &record.UserID, &record.CreatedAt,
		&in.MonthlyGrossIncome, &in.OtherMonthlyIncome, &employmentType,
		&in.MonthlyPensionContribution, &in.MonthlyNHFContribution, &in.MonthlyOtherDeductions, &in.Year,
		&record.Summary.MonthlyGross, &record.Summary.MonthlyTax, &record.Summary.MonthlyNet,
	)
	if err != nil {
		return nil, err
	}
	in.EmploymentType = calculator.EmploymentType(employmentType)
	return &record, nil
}
