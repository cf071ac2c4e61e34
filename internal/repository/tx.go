package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
	"github.com/wb-go/wbf/dbpg"
)

const uniqueViolation = "23505"

// TxManager opens one transaction per course scope. The course row is locked
// FOR UPDATE first, which serializes every scope of the same course.
type TxManager struct {
	db *dbpg.DB
}

func NewTxManager(db *dbpg.DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) WithinCourse(
	ctx context.Context,
	courseID string,
	fn func(ctx context.Context, scope ports.CourseScope) error,
) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT ` + courseColumns + `
			  FROM courses
			  WHERE id = $1
			  FOR UPDATE`
	course, err := scanCourse(tx.QueryRowContext(ctx, query, courseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return fmt.Errorf("lock course: %w", err)
	}

	if err = fn(ctx, &courseScope{q: tx, course: course}); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type courseScope struct {
	q      querier
	course *domain.Course
}

func (s *courseScope) Course() *domain.Course {
	return s.course
}

func (s *courseScope) Member(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + `
			  FROM members
			  WHERE id = $1
			  FOR SHARE`

	m, err := scanMember(s.q.QueryRowContext(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, fmt.Errorf("get member: %w", err)
	}

	return m, nil
}

func (s *courseScope) HasValidCard(ctx context.Context, memberID string, day time.Time) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM membership_cards
				WHERE member_id = $1 AND status = $2 AND end_date >= $3
			  )`

	var ok bool
	err := s.q.QueryRowContext(ctx, query, memberID, domain.CardStatusActive, domain.DateOf(day)).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check card: %w", err)
	}

	return ok, nil
}

func (s *courseScope) HasActiveBooking(ctx context.Context, memberID string) (bool, error) {
	query := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE course_id = $1 AND member_id = $2 AND status = ANY($3)
			  )`

	var ok bool
	err := s.q.QueryRowContext(ctx, query, s.course.ID, memberID, pq.Array(domain.ActiveStatuses)).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check active booking: %w", err)
	}

	return ok, nil
}

func (s *courseScope) CountActive(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
			  WHERE course_id = $1 AND status = ANY($2)`

	var n int
	if err := s.q.QueryRowContext(ctx, query, s.course.ID, pq.Array(domain.ActiveStatuses)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return n, nil
}

func (s *courseScope) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1 AND course_id = $2
			  FOR UPDATE`

	b, err := scanBooking(s.q.QueryRowContext(ctx, query, bookingID, s.course.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	return b, nil
}

func (s *courseScope) InsertBooking(ctx context.Context, b *domain.Booking) error {
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: booking status %q", domain.ErrValidation, b.Status)
	}

	query := `INSERT INTO bookings (` + bookingColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.q.ExecContext(ctx, query, b.ID, b.MemberID, b.CourseID, b.Status, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateBooking
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

// UpdateStatus is a compare-and-set on the current status.
func (s *courseScope) UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus, at time.Time) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: booking status %q", domain.ErrValidation, to)
	}

	query := `UPDATE bookings
			  SET status = $4, updated_at = $5
			  WHERE id = $1 AND course_id = $2 AND status = $3`
	res, err := s.q.ExecContext(ctx, query, bookingID, s.course.ID, from, to, at)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: booking %s is no longer %s", domain.ErrInvalidTransition, bookingID, from)
	}

	return nil
}
