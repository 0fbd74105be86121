package postgres

import (
	"context"
	"errors"

	"emplynix-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateRepo struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepo{db: db}
}

const candidateColumns = `
	c.id, c.name, c.email, c.contact, c.notice_period, c.experience,
	c.current_ctc, c.expected_ctc, c.qualification, c.resume_url,
	c.resume_file_name, c.job_id, j.title, j.company, c.status, c.applied_date`

func scanCandidate(row pgx.Row) (*domain.Candidate, error) {
	var cand domain.Candidate
	err := row.Scan(
		&cand.ID, &cand.Name, &cand.Email, &cand.Contact, &cand.NoticePeriod,
		&cand.Experience, &cand.CurrentCTC, &cand.ExpectedCTC, &cand.Qualification,
		&cand.ResumeURL, &cand.ResumeFileName, &cand.JobID, &cand.JobTitle,
		&cand.JobCompany, &cand.Status, &cand.AppliedDate,
	)
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `INSERT INTO candidates (name, email, contact, notice_period, experience, current_ctc, expected_ctc, qualification, resume_url, resume_file_name, job_id, status, applied_date)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRow(ctx, query,
		candidate.Name, candidate.Email, candidate.Contact, candidate.NoticePeriod,
		candidate.Experience, candidate.CurrentCTC, candidate.ExpectedCTC,
		candidate.Qualification, candidate.ResumeURL, candidate.ResumeFileName,
		candidate.JobID, candidate.Status, candidate.AppliedDate,
	).Scan(&candidate.ID)
}

func (r *candidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
		FROM candidates c
		JOIN jobs j ON c.job_id = j.id
		WHERE c.id = $1`

	cand, err := scanCandidate(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cand, nil
}

func (r *candidateRepo) Fetch(ctx context.Context, jobID int64) ([]domain.Candidate, error) {
	query := `SELECT ` + candidateColumns + `
		FROM candidates c
		JOIN jobs j ON c.job_id = j.id
		WHERE ($1 = 0 OR c.job_id = $1)
		ORDER BY c.applied_date DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := []domain.Candidate{}
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *cand)
	}
	return candidates, rows.Err()
}

func (r *candidateRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE candidates SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *candidateRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM candidates WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
