package seeder

import (
	"context"
	"fmt"

	"resume-match/internal/database"
)

// CoursesSeeder loads the advisory skill-to-course catalog. The catalog is
// deliberately small and static: recommendations are a placeholder layer
// until a real course provider is integrated.
type CoursesSeeder struct{}

func (CoursesSeeder) Name() string { return "courses" }

func (CoursesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "courses", "id", "skill", "course_name"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Skill  string
		Course string
	}{
		{Skill: "python", Course: "Coursera: Python for Everybody"},
		{Skill: "sql", Course: "Coursera: SQL for Data Science"},
		{Skill: "machine learning", Course: "Coursera: Machine Learning (Andrew Ng)"},
		{Skill: "deep learning", Course: "Coursera: Deep Learning Specialization"},
		{Skill: "aws", Course: "Coursera: AWS Fundamentals"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO courses (skill, course_name) VALUES ($1, $2) ON CONFLICT (skill, course_name) DO NOTHING`,
			it.Skill,
			it.Course,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
