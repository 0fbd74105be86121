package postgres

import (
	"context"
	"errors"

	"emplynix-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

// jobColumns is the read projection shared by Fetch and GetByID. The
// application count is derived from the live candidate rows, there is no
// stored counter to drift out of sync.
const jobColumns = `
	j.id, j.title, j.company, j.location, j.type, j.salary, j.experience,
	j.description, j.requirements, j.benefits, j.status, j.posted_by,
	u.name, u.email, j.created_at,
	(SELECT COUNT(*) FROM candidates c WHERE c.job_id = j.id) AS application_count`

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary,
		&job.Experience, &job.Description, &job.Requirements, &job.Benefits,
		&job.Status, &job.PostedBy, &job.PostedByName, &job.PostedByEmail,
		&job.CreatedAt, &job.ApplicationCount,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, company, location, type, salary, experience, description, requirements, benefits, status, posted_by, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Company, job.Location, job.Type, job.Salary, job.Experience,
		job.Description, job.Requirements, job.Benefits, job.Status, job.PostedBy,
		job.CreatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j
		JOIN users u ON j.posted_by = u.id
		WHERE j.id = $1`

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Fetch(ctx context.Context) ([]domain.Job, error) {
	query := `SELECT ` + jobColumns + `
		FROM jobs j
		JOIN users u ON j.posted_by = u.id
		ORDER BY j.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		company = $3,
		location = $4,
		type = $5,
		salary = $6,
		experience = $7,
		description = $8,
		requirements = $9,
		benefits = $10,
		status = $11
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Type, job.Salary,
		job.Experience, job.Description, job.Requirements, job.Benefits, job.Status,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	// Referencing candidates go with the job (ON DELETE CASCADE).
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
