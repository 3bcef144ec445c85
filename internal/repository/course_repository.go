package repository

import (
	"context"

	"resume-match/internal/database"
	"resume-match/internal/domain/matching"
)

type CourseRepository interface {
	// Catalog loads the whole advisory skill-to-course mapping. The table
	// is tiny and read-mostly; callers load it once per request.
	Catalog(ctx context.Context) (matching.Catalog, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) Catalog(ctx context.Context) (matching.Catalog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill, course_name FROM courses ORDER BY skill, course_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	catalog := make(matching.Catalog)
	for rows.Next() {
		var skill, course string
		if err := rows.Scan(&skill, &course); err != nil {
			return nil, err
		}
		catalog[skill] = append(catalog[skill], course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return catalog, nil
}
