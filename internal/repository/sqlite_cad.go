package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// SQLiteCadRepo implements CadRepo using a SQLite database.
type SQLiteCadRepo struct {
	db db.DBTX
}

// NewSQLiteCadRepo creates a new SQLiteCadRepo.
func NewSQLiteCadRepo(conn db.DBTX) *SQLiteCadRepo {
	return &SQLiteCadRepo{db: conn}
}

func (r *SQLiteCadRepo) Create(ctx context.Context, s *domain.CadStage) error {
	query := `INSERT INTO cad_designs (id, tna_id, complete_date, final_complete_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TnaID,
		nullableTimeToString(s.CompleteDate, dateLayout),
		nullableTimeToString(s.FinalCompleteDate, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cad stage: %w", err)
	}
	return nil
}

func (r *SQLiteCadRepo) GetByPlan(ctx context.Context, tnaID string) (*domain.CadStage, error) {
	query := `SELECT id, tna_id, complete_date, final_complete_date, created_at, updated_at
		FROM cad_designs WHERE tna_id = ?`
	row := r.db.QueryRowContext(ctx, query, tnaID)

	var s domain.CadStage
	var completeStr, finalStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.TnaID, &completeStr, &finalStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("cad stage: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning cad stage: %w", err)
	}

	s.CompleteDate = parseNullableTime(completeStr, dateLayout)
	s.FinalCompleteDate = parseNullableTime(finalStr, dateLayout)
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

func (r *SQLiteCadRepo) SetPlannedDate(ctx context.Context, id string, d time.Time) error {
	query := `UPDATE cad_designs SET complete_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, d.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting cad planned date: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cad stage: %w", ErrNotFound)
	}
	return nil
}

// Complete sets final_complete_date exactly once. The IS NULL guard makes the
// write-once rule a property of the update itself rather than of a prior read.
func (r *SQLiteCadRepo) Complete(ctx context.Context, id string, actual time.Time) error {
	query := `UPDATE cad_designs SET final_complete_date = ?, updated_at = ?
		WHERE id = ? AND final_complete_date IS NULL`
	res, err := r.db.ExecContext(ctx, query, actual.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("completing cad stage: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing cad stage: %w", err)
	}
	if n == 0 {
		var exists int
		if err := r.db.QueryRowContext(ctx, `SELECT 1 FROM cad_designs WHERE id = ?`, id).Scan(&exists); err != nil {
			if err == sql.ErrNoRows {
				return fmt.Errorf("cad stage: %w", ErrNotFound)
			}
			return fmt.Errorf("checking cad stage: %w", err)
		}
		return fmt.Errorf("cad stage: %w", ErrAlreadyComplete)
	}
	return nil
}
