package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

// SQLiteTrackingRepo implements TrackingRepo using a SQLite database.
// Rows are only inserted through the gated create in the plan service;
// the UNIQUE constraint on tna_id keeps the stage single-instance.
type SQLiteTrackingRepo struct {
	db db.DBTX
}

// NewSQLiteTrackingRepo creates a new SQLiteTrackingRepo.
func NewSQLiteTrackingRepo(conn db.DBTX) *SQLiteTrackingRepo {
	return &SQLiteTrackingRepo{db: conn}
}

func (r *SQLiteTrackingRepo) Create(ctx context.Context, s *domain.DHLTrackingStage) error {
	query := `INSERT INTO dhl_trackings (id, tna_id, date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.TnaID,
		nullableTimeToString(s.Date, dateLayout),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tracking stage: %w", err)
	}
	return nil
}

func (r *SQLiteTrackingRepo) GetByPlan(ctx context.Context, tnaID string) (*domain.DHLTrackingStage, error) {
	query := `SELECT id, tna_id, date, created_at, updated_at FROM dhl_trackings WHERE tna_id = ?`
	row := r.db.QueryRowContext(ctx, query, tnaID)

	var s domain.DHLTrackingStage
	var dateStr sql.NullString
	var createdAtStr, updatedAtStr string
	err := row.Scan(&s.ID, &s.TnaID, &dateStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tracking stage: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tracking stage: %w", err)
	}

	s.Date = parseNullableTime(dateStr, dateLayout)
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
