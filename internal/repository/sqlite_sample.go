package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// SQLiteSampleRepo implements SampleRepo using a SQLite database.
type SQLiteSampleRepo struct {
	db db.DBTX
}

// NewSQLiteSampleRepo creates a new SQLiteSampleRepo.
func NewSQLiteSampleRepo(conn db.DBTX) *SQLiteSampleRepo {
	return &SQLiteSampleRepo{db: conn}
}

func (r *SQLiteSampleRepo) Create(ctx context.Context, s *domain.SampleDevelopmentStage) error {
	query := `INSERT INTO sample_developments (id, tna_id, sample_complete_date, actual_sample_complete_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TnaID,
		nullableTimeToString(s.SampleCompleteDate, dateLayout),
		nullableTimeToString(s.ActualSampleCompleteDate, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting sample stage: %w", err)
	}
	return nil
}

func (r *SQLiteSampleRepo) GetByPlan(ctx context.Context, tnaID string) (*domain.SampleDevelopmentStage, error) {
	query := `SELECT id, tna_id, sample_complete_date, actual_sample_complete_date, created_at, updated_at
		FROM sample_developments WHERE tna_id = ?`
	row := r.db.QueryRowContext(ctx, query, tnaID)

	var s domain.SampleDevelopmentStage
	var plannedStr, actualStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.TnaID, &plannedStr, &actualStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("sample stage: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning sample stage: %w", err)
	}

	s.SampleCompleteDate = parseNullableTime(plannedStr, dateLayout)
	s.ActualSampleCompleteDate = parseNullableTime(actualStr, dateLayout)
	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &s, nil
}

func (r *SQLiteSampleRepo) SetPlannedDate(ctx context.Context, id string, d time.Time) error {
	query := `UPDATE sample_developments SET sample_complete_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, d.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting sample planned date: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("sample stage: %w", ErrNotFound)
	}
	return nil
}

// Complete sets actual_sample_complete_date exactly once.
func (r *SQLiteSampleRepo) Complete(ctx context.Context, id string, actual time.Time) error {
	query := `UPDATE sample_developments SET actual_sample_complete_date = ?, updated_at = ?
		WHERE id = ? AND actual_sample_complete_date IS NULL`
	res, err := r.db.ExecContext(ctx, query, actual.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("completing sample stage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing sample stage: %w", err)
	}
	if n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM sample_developments WHERE id = ?`, id).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return fmt.Errorf("sample stage: %w", ErrNotFound)
			}
			return fmt.Errorf("checking sample stage: %w", err)
		}
		return fmt.Errorf("sample stage: %w", ErrAlreadyComplete)
	}
	return nil
}
