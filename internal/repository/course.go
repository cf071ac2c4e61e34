package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const courseColumns = `id, title, instructor_id, starts_at, max_capacity, created_at, updated_at`

type CourseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCourseRepo(db *dbpg.DB) *CourseRepository {
	return &CourseRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	if err := row.Scan(
		&c.ID, &c.Title, &c.InstructorID, &c.StartsAt,
		&c.MaxCapacity, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Title, c.InstructorID, c.StartsAt,
		c.MaxCapacity, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert course: %w", err)
	}

	return nil
}

func (r *CourseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses
			  WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}

	c, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("scan course: %w", err)
	}

	return c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + `
			  FROM courses
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CourseRepository) GetDetails(ctx context.Context, courseID string) (*domain.CourseDetails, error) {
	query := `
		SELECT
            c.id, c.title, c.instructor_id, c.starts_at,
            c.max_capacity, c.created_at, c.updated_at,
            GREATEST(c.max_capacity - COUNT(b.id), 0) AS available_slots
        FROM courses c
        LEFT JOIN bookings b
            ON b.course_id = c.id
            AND b.status = ANY($2)
        WHERE c.id = $1
        GROUP BY c.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, courseID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("get details: %w", err)
	}

	var d domain.CourseDetails
	err = row.Scan(
		&d.Course.ID, &d.Course.Title, &d.Course.InstructorID, &d.Course.StartsAt,
		&d.Course.MaxCapacity, &d.Course.CreatedAt, &d.Course.UpdatedAt,
		&d.AvailableSlots,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("get course details: %w", err)
	}

	return &d, nil
}
