package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"mentor-booking-service/internal/models"
	"mentor-booking-service/pkg/response"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

const mentorColumns = `id, name, title, company, expertise, experience, rating,
	review_count, availability, location, languages, bio, achievements, image, industry`

func (s *Storage) ListMentors(ctx context.Context, filters *models.MentorFilters) ([]*models.Mentor, error) {
	const op = "storage.postgres.ListMentors"

	query := fmt.Sprintf(`SELECT %s FROM mentors`, mentorColumns)

	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters != nil {
		if filters.Search != "" {
			p := arg("%" + filters.Search + "%")
			conds = append(conds, fmt.Sprintf(
				`(name ILIKE %[1]s OR title ILIKE %[1]s OR company ILIKE %[1]s
					OR EXISTS (SELECT 1 FROM unnest(expertise) e WHERE e ILIKE %[1]s))`, p))
		}
		if len(filters.Expertise) > 0 {
			conds = append(conds, fmt.Sprintf("expertise && %s", arg(pq.Array(filters.Expertise))))
		}
		if len(filters.Experience) > 0 {
			conds = append(conds, fmt.Sprintf("experience = ANY(%s)", arg(pq.Array(filters.Experience))))
		}
		if len(filters.Availability) > 0 {
			conds = append(conds, fmt.Sprintf("availability = ANY(%s)", arg(pq.Array(filters.Availability))))
		}
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY rating DESC, review_count DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var mentors []*models.Mentor
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return mentors, nil
}

func (s *Storage) GetMentor(ctx context.Context, id string) (*models.Mentor, error) {
	const op = "storage.postgres.GetMentor"

	query := fmt.Sprintf(`SELECT %s FROM mentors WHERE id = $1`, mentorColumns)

	m, err := scanMentor(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func (s *Storage) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	const op = "storage.postgres.FilterOptions"

	opts := &models.FilterOptions{}

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT unnest(expertise) FROM mentors ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		opts.Expertise = append(opts.Expertise, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if opts.Experience, err = s.distinct(ctx, "experience"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if opts.Availability, err = s.distinct(ctx, "availability"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return opts, nil
}

func (s *Storage) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT DISTINCT %s FROM mentors ORDER BY 1`, column))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMentor(row rowScanner) (*models.Mentor, error) {
	var m models.Mentor
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Title,
		&m.Company,
		pq.Array(&m.Expertise),
		&m.Experience,
		&m.Rating,
		&m.ReviewCount,
		&m.Availability,
		&m.Location,
		pq.Array(&m.Languages),
		&m.Bio,
		pq.Array(&m.Achievements),
		&m.Image,
		&m.Industry,
	)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
