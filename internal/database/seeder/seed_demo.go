package seeder

import (
	"context"
	"fmt"
	"time"

	"resume-match/internal/database"

	"github.com/google/uuid"
)

// DemoSeeder loads a sample resume and a handful of jobs so the matching
// endpoints can be exercised on a fresh database. Fixed UUIDs keep reruns
// idempotent. Never part of Defaults(); opt in via the seed command.
type DemoSeeder struct{}

func (DemoSeeder) Name() string { return "demo" }

var (
	demoResumeID = uuid.MustParse("7f0c2a9e-1b6d-4e3a-9c4f-0d8b2e5a7c11")

	demoJobIDs = []uuid.UUID{
		uuid.MustParse("a1e4c2b8-3f5d-4a69-8e01-6b9d7c3f2a10"),
		uuid.MustParse("b2f5d3c9-4a6e-4b70-9f12-7c0e8d4a3b21"),
		uuid.MustParse("c3a6e4d0-5b7f-4c81-a023-8d1f9e5b4c32"),
	}
)

func (DemoSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "resumes", "id", "skills", "embedding", "summary"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "title", "required_skills", "embedding", "posted_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx,
		`INSERT INTO resumes (id, skills, embedding, summary)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO NOTHING`,
		demoResumeID,
		[]string{"python", "sql"},
		[]float64{0.9, 0.1, 0.2},
		"Data analyst with Python and SQL experience",
	); err != nil {
		return err
	}

	now := time.Now().UTC()
	recent := now.Add(-48 * time.Hour)
	stale := now.Add(-75 * 24 * time.Hour)

	jobs := []struct {
		ID       uuid.UUID
		Title    string
		Company  string
		Skills   []string
		Emb      []float64
		PostedAt *time.Time
	}{
		{demoJobIDs[0], "Data Engineer", "Northwind", []string{"python", "sql", "aws"}, []float64{0.85, 0.15, 0.25}, &recent},
		{demoJobIDs[1], "ML Engineer", "Contoso", []string{"python", "machine learning"}, []float64{0.6, 0.5, 0.3}, &stale},
		{demoJobIDs[2], "Backend Developer", "Fabrikam", []string{"java", "sql"}, []float64{0.2, 0.8, 0.1}, nil},
	}

	for _, j := range jobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, company, required_skills, embedding, posted_at)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (id) DO NOTHING`,
			j.ID, j.Title, j.Company, j.Skills, j.Emb, j.PostedAt,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
