package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devcraft/portfolio-api/internal/entity"
)

// SubmissionsRepository describes persistence operations for contact submissions.
// Submissions are append-only: there is no update or delete.
type SubmissionsRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) (*entity.ContactSubmission, error)
	List(ctx context.Context) ([]entity.ContactSubmission, error)
}

// pgxPool is the subset of pgxpool.Pool the repository relies on. Narrowing
// the dependency keeps the implementation testable without a live server.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// PGXSubmissionsRepository implements SubmissionsRepository using pgx.
type PGXSubmissionsRepository struct {
	pool pgxPool
}

// NewPGXSubmissionsRepository wires a pgx backed repository.
func NewPGXSubmissionsRepository(pool *pgxpool.Pool) *PGXSubmissionsRepository {
	return &PGXSubmissionsRepository{pool: pool}
}

// Create persists a submission as a single atomic insert. The database assigns
// both the identifier and the creation timestamp; the returned record carries
// them populated.
func (r *PGXSubmissionsRepository) Create(ctx context.Context, submission *entity.ContactSubmission) (*entity.ContactSubmission, error) {
	if submission == nil {
		return nil, fmt.Errorf("submission payload is nil")
	}

	row := r.pool.QueryRow(ctx, `
        INSERT INTO contact_submissions (name, email, phone, project_type, budget, message)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.ProjectType,
		submission.Budget,
		submission.Message,
	)

	stored := *submission
	if err := row.Scan(&stored.ID, &stored.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}

	return &stored, nil
}

// List returns every stored submission in insertion order.
func (r *PGXSubmissionsRepository) List(ctx context.Context) ([]entity.ContactSubmission, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, email, phone, project_type, budget, message, created_at
        FROM contact_submissions
        ORDER BY created_at ASC, id ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

func scanSubmissions(rows pgx.Rows) ([]entity.ContactSubmission, error) {
	var submissions []entity.ContactSubmission
	for rows.Next() {
		var s entity.ContactSubmission
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Phone,
			&s.ProjectType,
			&s.Budget,
			&s.Message,
			&s.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}
	return submissions, nil
}
