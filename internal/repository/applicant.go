package repository

import (
	"context"

	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ListApplicants pages through applicants of the owner's jobs, optionally
// narrowed to one job.
func (r *Repository) ListApplicants(ctx context.Context, ownerID uuid.UUID, jobID *uuid.UUID, limit, offset int, search string) ([]model.Applicant, int, error) {
	pattern := searchPattern(search)
	const where = `
WHERE j.owner_id = $1 AND ($2::uuid IS NULL OR a.job_id = $2) AND (a.name ILIKE $3 OR a.email ILIKE $3)
`

	countQ := `SELECT COUNT(1) FROM applicants a JOIN jobs j ON j.job_id = a.job_id` + where
	q := `
SELECT a.applicant_id, a.job_id, j.title, a.interview_id, a.name, a.email, a.status, a.score, a.created_at
FROM applicants a JOIN jobs j ON j.job_id = a.job_id` + where + `
ORDER BY a.created_at DESC
LIMIT $4 OFFSET $5`

	return listPage(ctx, r.db, "applicants",
		countQ, []any{ownerID, jobID, pattern},
		q, []any{ownerID, jobID, pattern, limit, offset},
		func(row pgx.CollectableRow) (model.Applicant, error) {
			var a model.Applicant
			err := row.Scan(&a.ApplicantID, &a.JobID, &a.JobTitle, &a.InterviewID, &a.Name, &a.Email,
				&a.Status, &a.Score, &a.CreatedAt)
			return a, err
		})
}
