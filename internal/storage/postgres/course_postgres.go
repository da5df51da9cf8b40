package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/karla-codes/rest-api/internal/app_errors"
	"github.com/karla-codes/rest-api/internal/models"
)

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

func (r *CoursePostgres) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	query := `
		INSERT INTO courses (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query, course.Title, course.Description, course.OwnerID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert course: %w", err)
	}
	course.ID = id
	return id, nil
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id int64) (*models.Course, error) {
	const query = `
		SELECT c.id, c.title, c.description, c.user_id,
		       a.id, a.first_name, a.last_name, a.email_address
		FROM courses c
		JOIN accounts a ON a.id = c.user_id
		WHERE c.id = $1
	`

	course := &models.Course{}
	row := r.db.QueryRow(ctx, query, id)
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.OwnerID,
		&course.Owner.ID,
		&course.Owner.FirstName,
		&course.Owner.LastName,
		&course.Owner.EmailAddress,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}

	return course, nil
}

func (r *CoursePostgres) Courses(ctx context.Context) ([]models.Course, error) {
	const query = `
		SELECT c.id, c.title, c.description, c.user_id,
		       a.id, a.first_name, a.last_name, a.email_address
		FROM courses c
		JOIN accounts a ON a.id = c.user_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		err := rows.Scan(
			&course.ID,
			&course.Title,
			&course.Description,
			&course.OwnerID,
			&course.Owner.ID,
			&course.Owner.FirstName,
			&course.Owner.LastName,
			&course.Owner.EmailAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *CoursePostgres) UpdateCourse(ctx context.Context, id int64, title, description string) error {
	const query = `
		UPDATE courses
		   SET title       = $2,
		       description = $3,
		       updated_at  = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, id, title, description)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

func (r *CoursePostgres) DeleteCourse(ctx context.Context, id int64) error {
	const query = `DELETE FROM courses WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}
