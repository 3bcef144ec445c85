package repository

import (
	"context"

	"resume-match/internal/database"
	"resume-match/internal/domain/job"
)

type JobRepository interface {
	// ListAll returns the full materialized corpus; scoring is an
	// in-memory fold over it, so there is no pagination here.
	ListAll(ctx context.Context) ([]job.Job, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''),
		        COALESCE(description, ''), COALESCE(url, ''), posted_at,
		        required_skills, embedding, created_at
		 FROM jobs
		 ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.Company, &j.Location,
			&j.Description, &j.URL, &j.PostedAt,
			&j.RequiredSkills, &j.Embedding, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
