package repository

import (
	"context"
	"fmt"

	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) ListJobs(ctx context.Context, ownerID uuid.UUID, limit, offset int, search string) ([]model.JobListItem, int, error) {
	pattern := searchPattern(search)

	const countQ = `SELECT COUNT(1) FROM jobs WHERE owner_id = $1 AND (title ILIKE $2 OR domain ILIKE $2)`
	const q = `
SELECT j.job_id, j.title, j.slug, j.domain, j.job_level, j.openings,
	(SELECT COUNT(1) FROM rounds r WHERE r.job_id = j.job_id) AS rounds,
	(SELECT COUNT(1) FROM interviews i WHERE i.job_id = j.job_id) AS interviews,
	j.created_at
FROM jobs j
WHERE j.owner_id = $1 AND (j.title ILIKE $2 OR j.domain ILIKE $2)
ORDER BY j.created_at DESC
LIMIT $3 OFFSET $4
`
	return listPage(ctx, r.db, "jobs",
		countQ, []any{ownerID, pattern},
		q, []any{ownerID, pattern, limit, offset},
		func(row pgx.CollectableRow) (model.JobListItem, error) {
			var j model.JobListItem
			err := row.Scan(&j.JobID, &j.Title, &j.Slug, &j.Domain, &j.JobLevel, &j.Openings,
				&j.Rounds, &j.Interviews, &j.CreatedAt)
			return j, err
		})
}

func (r *Repository) GetJob(ctx context.Context, ownerID, jobID uuid.UUID) (*model.Job, error) {
	const q = `
SELECT job_id, owner_id, title, slug, domain, job_level, user_type, min_experience,
	max_experience, description, openings, skills, created_at
FROM jobs WHERE job_id = $1 AND owner_id = $2
`
	var j model.Job
	err := r.db.QueryRow(ctx, q, jobID, ownerID).Scan(
		&j.JobID, &j.OwnerID, &j.Title, &j.Slug, &j.Domain, &j.JobLevel, &j.UserType, &j.MinExperience,
		&j.MaxExperience, &j.Description, &j.Openings, &j.Skills, &j.CreatedAt,
	)
	if err != nil {
		return nil, notFound(err, "job")
	}
	return &j, nil
}

func (r *Repository) ListRounds(ctx context.Context, ownerID, jobID uuid.UUID) ([]model.Round, error) {
	const q = `
SELECT r.round_id, r.job_id, r.name, r.round_type, r.objective, r.skills, r.created_at
FROM rounds r
JOIN jobs j ON j.job_id = r.job_id
WHERE r.job_id = $1 AND j.owner_id = $2
ORDER BY r.created_at ASC
`
	rows, err := r.db.Query(ctx, q, jobID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	out := []model.Round{}
	for rows.Next() {
		var rd model.Round
		if err := rows.Scan(&rd.RoundID, &rd.JobID, &rd.Name, &rd.RoundType, &rd.Objective, &rd.Skills, &rd.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, rd)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func insertJob(ctx context.Context, tx pgx.Tx, j *model.Job) error {
	const q = `
INSERT INTO jobs (owner_id, title, slug, domain, job_level, user_type, min_experience,
	max_experience, description, openings, skills)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING job_id, created_at
`
	err := tx.QueryRow(ctx, q, j.OwnerID, j.Title, j.Slug, j.Domain, j.JobLevel, j.UserType,
		j.MinExperience, j.MaxExperience, j.Description, j.Openings, j.Skills,
	).Scan(&j.JobID, &j.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func insertRound(ctx context.Context, tx pgx.Tx, rd *model.Round) error {
	const q = `
INSERT INTO rounds (job_id, name, round_type, objective, skills)
VALUES ($1, $2, $3, $4, $5)
RETURNING round_id, created_at
`
	err := tx.QueryRow(ctx, q, rd.JobID, rd.Name, rd.RoundType, rd.Objective, rd.Skills).
		Scan(&rd.RoundID, &rd.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert round: %w", err)
	}
	return nil
}

// roundBelongsToJob checks an existing-job selection before it is used.
func roundBelongsToJob(ctx context.Context, tx pgx.Tx, ownerID, jobID, roundID uuid.UUID) error {
	const q = `
SELECT COUNT(1) FROM rounds r JOIN jobs j ON j.job_id = r.job_id
WHERE r.round_id = $1 AND r.job_id = $2 AND j.owner_id = $3
`
	var n int
	if err := tx.QueryRow(ctx, q, roundID, jobID, ownerID).Scan(&n); err != nil {
		return fmt.Errorf("check round: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("round %s of job %s: %w", roundID, jobID, ErrNotFound)
	}
	return nil
}
