package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Hacnine/BestaTechnology-sub001/internal/db"
	"github.com/Hacnine/BestaTechnology-sub001/internal/domain"
)

const bookingColumns = `id, tna_id, style_name, complete_date, actual_complete_date, receive_date,
		owner_id, claimed_at, created_at, updated_at`

// SQLiteBookingRepo implements BookingRepo using a SQLite database. Claim and
// Complete are single conditional updates; the mutual exclusion over the
// booking pool lives entirely in those statements, never in read-then-write
// application logic.
type SQLiteBookingRepo struct {
	db db.DBTX
}

// NewSQLiteBookingRepo creates a new SQLiteBookingRepo.
func NewSQLiteBookingRepo(conn db.DBTX) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: conn}
}

func (r *SQLiteBookingRepo) Create(ctx context.Context, b *domain.FabricBookingStage) error {
	query := `INSERT INTO fabric_bookings (id, tna_id, style_name, complete_date, actual_complete_date,
		receive_date, owner_id, claimed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.TnaID,
		b.StyleName,
		nullableTimeToString(b.CompleteDate, dateLayout),
		nullableTimeToString(b.ActualCompleteDate, dateLayout),
		nullableTimeToString(b.ReceiveDate, dateLayout),
		nullableString(b.OwnerID),
		nullableTimeToString(b.ClaimedAt, time.RFC3339),
		b.CreatedAt.Format(time.RFC3339),
		b.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting fabric booking: %w", err)
	}
	return nil
}

func (r *SQLiteBookingRepo) GetByID(ctx context.Context, id string) (*domain.FabricBookingStage, error) {
	query := `SELECT ` + bookingColumns + ` FROM fabric_bookings WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanBooking(row)
}

func (r *SQLiteBookingRepo) GetByPlan(ctx context.Context, tnaID string) (*domain.FabricBookingStage, error) {
	query := `SELECT ` + bookingColumns + ` FROM fabric_bookings WHERE tna_id = ?`
	row := r.db.QueryRowContext(ctx, query, tnaID)
	return r.scanBooking(row)
}

func (r *SQLiteBookingRepo) SetPlannedDate(ctx context.Context, id string, d time.Time) error {
	query := `UPDATE fabric_bookings SET complete_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, d.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting booking planned date: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("fabric booking: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteBookingRepo) SetReceiveDate(ctx context.Context, id string, d time.Time) error {
	query := `UPDATE fabric_bookings SET receive_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, d.Format(dateLayout), time.Now().UTC().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("setting booking receive date: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("fabric booking: %w", ErrNotFound)
	}
	return nil
}

// Claim atomically takes ownership of an unclaimed booking. The WHERE clause
// accepts an existing claim by the same actor, which makes a repeated accept
// idempotent without a second round trip; COALESCE keeps the original
// claimed_at on that path. Two concurrent claims by distinct actors resolve
// to exactly one winner inside SQLite.
func (r *SQLiteBookingRepo) Claim(ctx context.Context, id, actorID string, claimedAt time.Time) error {
	query := `UPDATE fabric_bookings
		SET owner_id = ?, claimed_at = COALESCE(claimed_at, ?), updated_at = ?
		WHERE id = ? AND (owner_id IS NULL OR owner_id = ?)`
	res, err := r.db.ExecContext(ctx, query,
		actorID,
		claimedAt.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		id,
		actorID,
	)
	if err != nil {
		return fmt.Errorf("claiming fabric booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("claiming fabric booking: %w", err)
	}
	if n == 0 {
		// Diagnosis only; the atomic guard above already decided the outcome.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("fabric booking %s: %w", id, ErrClaimConflict)
	}
	return nil
}

// Complete sets the write-once actual complete date, requiring that the
// caller owns the booking.
func (r *SQLiteBookingRepo) Complete(ctx context.Context, id, actorID string, actual time.Time) error {
	query := `UPDATE fabric_bookings SET actual_complete_date = ?, updated_at = ?
		WHERE id = ? AND owner_id = ? AND actual_complete_date IS NULL`
	res, err := r.db.ExecContext(ctx, query,
		actual.Format(dateLayout),
		time.Now().UTC().Format(time.RFC3339),
		id,
		actorID,
	)
	if err != nil {
		return fmt.Errorf("completing fabric booking: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("completing fabric booking: %w", err)
	}
	if n == 0 {
		b, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !b.ClaimedBy(actorID) {
			return fmt.Errorf("fabric booking %s: %w", id, ErrNotOwner)
		}
		return fmt.Errorf("fabric booking %s: %w", id, ErrAlreadyComplete)
	}
	return nil
}

func (r *SQLiteBookingRepo) ListMine(ctx context.Context, actorID string, f BookingFilter) ([]*domain.FabricBookingStage, error) {
	return r.list(ctx, `owner_id = ?`, []any{actorID}, f)
}

func (r *SQLiteBookingRepo) ListUnclaimed(ctx context.Context, f BookingFilter) ([]*domain.FabricBookingStage, error) {
	return r.list(ctx, `owner_id IS NULL`, nil, f)
}

func (r *SQLiteBookingRepo) list(ctx context.Context, ownerCond string, args []any, f BookingFilter) ([]*domain.FabricBookingStage, error) {
	query := `SELECT ` + bookingColumns + ` FROM fabric_bookings WHERE ` + ownerCond

	if f.Search != "" {
		query += ` AND style_name LIKE '%' || ? || '%' COLLATE NOCASE`
		args = append(args, f.Search)
	}
	if f.PlannedFrom != nil {
		query += ` AND complete_date >= ?`
		args = append(args, f.PlannedFrom.Format(dateLayout))
	}
	if f.PlannedTo != nil {
		query += ` AND complete_date <= ?`
		args = append(args, f.PlannedTo.Format(dateLayout))
	}

	query += ` ORDER BY created_at, id`

	limit := f.Limit
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query += ` LIMIT ? OFFSET ?`
	args = append(args, limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing fabric bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*domain.FabricBookingStage
	for rows.Next() {
		b, err := r.scanBookingFromRows(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fabric bookings: %w", err)
	}
	return bookings, nil
}

func (r *SQLiteBookingRepo) scanBooking(row *sql.Row) (*domain.FabricBookingStage, error) {
	var b domain.FabricBookingStage
	var completeStr, actualStr, receiveStr, ownerStr, claimedStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&b.ID, &b.TnaID, &b.StyleName, &completeStr, &actualStr, &receiveStr,
		&ownerStr, &claimedStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fabric booking: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning fabric booking: %w", err)
	}

	return r.populateBooking(&b, completeStr, actualStr, receiveStr, ownerStr, claimedStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteBookingRepo) scanBookingFromRows(rows *sql.Rows) (*domain.FabricBookingStage, error) {
	var b domain.FabricBookingStage
	var completeStr, actualStr, receiveStr, ownerStr, claimedStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&b.ID, &b.TnaID, &b.StyleName, &completeStr, &actualStr, &receiveStr,
		&ownerStr, &claimedStr, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning fabric booking row: %w", err)
	}

	return r.populateBooking(&b, completeStr, actualStr, receiveStr, ownerStr, claimedStr, createdAtStr, updatedAtStr)
}

func (r *SQLiteBookingRepo) populateBooking(
	b *domain.FabricBookingStage,
	completeStr, actualStr, receiveStr, ownerStr, claimedStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.FabricBookingStage, error) {
	b.CompleteDate = parseNullableTime(completeStr, dateLayout)
	b.ActualCompleteDate = parseNullableTime(actualStr, dateLayout)
	b.ReceiveDate = parseNullableTime(receiveStr, dateLayout)
	b.OwnerID = parseNullableString(ownerStr)
	b.ClaimedAt = parseNullableTime(claimedStr, time.RFC3339)

	var parseErr error
	b.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	b.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return b, nil
}
