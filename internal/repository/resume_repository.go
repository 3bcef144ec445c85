package repository

import (
	"context"
	"errors"

	"resume-match/internal/database"
	"resume-match/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, skills, embedding, summary, uploaded_at
		 FROM resumes
		 WHERE id = $1`,
		id,
	)
	return scanResume(row)
}

func scanResume(row database.Row) (resume.Resume, error) {
	var res resume.Resume
	err := row.Scan(&res.ID, &res.Skills, &res.Embedding, &res.Summary, &res.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, err
	}
	return res, nil
}
