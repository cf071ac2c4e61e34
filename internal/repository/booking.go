package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `id, member_id, course_id, status, created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.MemberID, &b.CourseID, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) CountActive(ctx context.Context, courseID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE course_id = $1 AND status = ANY($2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, courseID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan count: %w", err)
	}

	return n, nil
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE member_id = $1
              ORDER BY created_at DESC`

	return r.list(ctx, "list bookings by member", query, memberID)
}

func (r *BookingRepository) ListByCourse(ctx context.Context, courseID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE course_id = $1
              ORDER BY created_at DESC`

	return r.list(ctx, "list bookings by course", query, courseID)
}

func (r *BookingRepository) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE status = $1
              ORDER BY created_at DESC`

	return r.list(ctx, "list pending bookings", query, domain.BookingStatusPending)
}

// ListStalePending returns pending bookings of courses that started at or before now.
func (r *BookingRepository) ListStalePending(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `SELECT b.id, b.member_id, b.course_id, b.status, b.created_at, b.updated_at
              FROM bookings b
              JOIN courses c ON c.id = b.course_id
              WHERE b.status = $1 AND c.starts_at <= $2
              ORDER BY c.starts_at, b.created_at`

	return r.list(ctx, "list stale bookings", query, domain.BookingStatusPending, now)
}

func (r *BookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}
