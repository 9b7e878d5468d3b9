package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

const planColumns = `id, style_name, merchandiser_id, sample_sending_date, created_at, updated_at`

// SQLitePlanRepo implements PlanRepo using a SQLite database. It reads and
// writes the plan row only; stage records live in their own repositories and
// are assembled into the aggregate by the service layer.
type SQLitePlanRepo struct {
	db db.DBTX
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.TimeAndActionPlan) error {
	query := `INSERT INTO tna_plans (id, style_name, merchandiser_id, sample_sending_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.StyleName,
		p.MerchandiserID,
		p.SampleSendingDate.Format(dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting tna plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.TimeAndActionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM tna_plans WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.TimeAndActionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM tna_plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tna plans: %w", err)
	}
	defer rows.Close()
	return r.scanPlans(rows)
}

func (r *SQLitePlanRepo) ListByMerchandiser(ctx context.Context, merchandiserID string) ([]*domain.TimeAndActionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM tna_plans WHERE merchandiser_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, merchandiserID)
	if err != nil {
		return nil, fmt.Errorf("listing tna plans by merchandiser: %w", err)
	}
	defer rows.Close()
	return r.scanPlans(rows)
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.TimeAndActionPlan) error {
	query := `UPDATE tna_plans SET style_name = ?, merchandiser_id = ?, sample_sending_date = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		p.StyleName,
		p.MerchandiserID,
		p.SampleSendingDate.Format(dateLayout),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating tna plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.TimeAndActionPlan, error) {
	var p domain.TimeAndActionPlan
	var sendingStr, createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.StyleName, &p.MerchandiserID, &sendingStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("tna plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning tna plan: %w", err)
	}

	return r.populatePlan(&p, sendingStr, createdAtStr, updatedAtStr)
}

func (r *SQLitePlanRepo) scanPlans(rows *sql.Rows) ([]*domain.TimeAndActionPlan, error) {
	var plans []*domain.TimeAndActionPlan
	for rows.Next() {
		var p domain.TimeAndActionPlan
		var sendingStr, createdAtStr, updatedAtStr string
		if err := rows.Scan(&p.ID, &p.StyleName, &p.MerchandiserID, &sendingStr, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning tna plan row: %w", err)
		}
		plan, err := r.populatePlan(&p, sendingStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tna plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) populatePlan(p *domain.TimeAndActionPlan, sendingStr, createdAtStr, updatedAtStr string) (*domain.TimeAndActionPlan, error) {
	var parseErr error
	p.SampleSendingDate, parseErr = time.Parse(dateLayout, sendingStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing sample_sending_date: %w", parseErr)
	}
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
