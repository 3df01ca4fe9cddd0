package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhishek622/hirewizard/internal/wizard"
	"github.com/abhishek622/hirewizard/pkg"
	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func parseUUID(field, v string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", ErrInvalidRecord, field)
	}
	return id, nil
}

func parseCount(field, v string, min int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < min {
		return 0, fmt.Errorf("%w: %s must be a whole number >= %d", ErrInvalidRecord, field, min)
	}
	return n, nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// DraftFromRecord converts a finished wizard record into typed columns. It
// fails with ErrInvalidRecord when a field cannot be converted.
func DraftFromRecord(ownerID uuid.UUID, rec wizard.Record) (*model.InterviewDraft, error) {
	d := &model.InterviewDraft{
		OwnerID:         ownerID,
		Language:        rec.Language,
		QuestionsMode:   string(rec.QuestionsMode),
		AIQuestionCount: rec.AIQuestionCount,
		Instructions:    rec.Instructions,
		SendReminder:    rec.SendReminder,
		InterviewLink:   optional(rec.InterviewLink),
	}
	if rec.SendReminder {
		d.ReminderTime = optional(rec.ReminderTime)
	}
	if rec.QuestionsMode == wizard.QuestionsHybrid {
		d.CustomQuestions = append([]string(nil), rec.CustomQuestions...)
	}

	var err error
	if d.InterviewerID, err = parseUUID("interviewerId", rec.InterviewerID); err != nil {
		return nil, err
	}
	if d.DurationMinutes, err = parseCount("duration", rec.Duration, 1); err != nil {
		return nil, err
	}

	if rec.Source == wizard.SourceExistingJob {
		if d.JobID, err = parseUUID("jobId", rec.JobID); err != nil {
			return nil, err
		}
		if d.RoundID, err = parseUUID("roundId", rec.RoundID); err != nil {
			return nil, err
		}
		return d, nil
	}

	job := &model.Job{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(rec.JobTitle),
		Slug:        pkg.GenerateSlug(rec.JobTitle),
		Domain:      rec.Domain,
		JobLevel:    rec.JobLevel,
		UserType:    rec.UserType,
		Description: rec.Description,
		Skills:      append([]string{}, rec.Skills...),
	}
	if job.MinExperience, err = parseCount("minExperience", rec.MinExperience, 0); err != nil {
		return nil, err
	}
	if job.MaxExperience, err = parseCount("maxExperience", rec.MaxExperience, 0); err != nil {
		return nil, err
	}
	if job.MaxExperience < job.MinExperience {
		return nil, fmt.Errorf("%w: maxExperience is below minExperience", ErrInvalidRecord)
	}
	if job.Openings, err = parseCount("openings", rec.Openings, 1); err != nil {
		return nil, err
	}
	d.NewJob = job
	d.NewRound = &model.Round{
		Name:      rec.RoundName,
		RoundType: rec.RoundType,
		Objective: rec.Objective,
		Skills:    append([]string{}, rec.RoundSkills...),
	}
	return d, nil
}

// CreateInterview stores a draft in one transaction: the new job and round
// when the draft carries them, the interview row and its custom questions.
func (r *Repository) CreateInterview(ctx context.Context, d *model.InterviewDraft) (uuid.UUID, error) {
	var interviewID uuid.UUID
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		jobID, roundID := d.JobID, d.RoundID
		if d.NewJob != nil {
			if err := insertJob(ctx, tx, d.NewJob); err != nil {
				return err
			}
			d.NewRound.JobID = d.NewJob.JobID
			if err := insertRound(ctx, tx, d.NewRound); err != nil {
				return err
			}
			jobID, roundID = d.NewJob.JobID, d.NewRound.RoundID
		} else if err := roundBelongsToJob(ctx, tx, d.OwnerID, jobID, roundID); err != nil {
			return err
		}

		const q = `
INSERT INTO interviews (
	owner_id, job_id, round_id, interviewer_id, duration_minutes, language, questions_mode,
	ai_question_count, instructions, send_reminder, reminder_time, interview_link, process_status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING interview_id
`
		err := tx.QueryRow(ctx, q,
			d.OwnerID, jobID, roundID, d.InterviewerID, d.DurationMinutes, d.Language, d.QuestionsMode,
			d.AIQuestionCount, d.Instructions, d.SendReminder, d.ReminderTime, d.InterviewLink, model.ProcessStatusQueued,
		).Scan(&interviewID)
		if err != nil {
			return fmt.Errorf("insert interview: %w", err)
		}

		questions := make([]model.Question, len(d.CustomQuestions))
		for i, text := range d.CustomQuestions {
			questions[i] = model.Question{InterviewID: interviewID, Question: strings.TrimSpace(text), Type: model.QuestionTypeCustom, Position: i}
		}
		return insertQuestions(ctx, tx, questions)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return interviewID, nil
}

func (r *Repository) UpdateInterview(ctx context.Context, interviewID uuid.UUID, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"process_status": true, "process_error": true, "interview_link": true,
	}

	query := "UPDATE interviews SET updated_at = now()"
	args := []interface{}{}
	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		args = append(args, val)
		query += fmt.Sprintf(", %s = $%d", col, len(args))
	}

	args = append(args, interviewID)
	query += fmt.Sprintf(" WHERE interview_id = $%d", len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("interview %s: %w", interviewID, ErrNotFound)
	}
	return nil
}

func (r *Repository) GetInterview(ctx context.Context, ownerID, interviewID uuid.UUID) (*model.Interview, error) {
	const q = `
SELECT interview_id, owner_id, job_id, round_id, interviewer_id, duration_minutes, language,
	questions_mode, ai_question_count, instructions, send_reminder, reminder_time, interview_link,
	process_status, process_error, created_at, updated_at
FROM interviews WHERE interview_id = $1 AND owner_id = $2
`
	var i model.Interview
	err := r.db.QueryRow(ctx, q, interviewID, ownerID).Scan(
		&i.InterviewID, &i.OwnerID, &i.JobID, &i.RoundID, &i.InterviewerID, &i.DurationMinutes, &i.Language,
		&i.QuestionsMode, &i.AIQuestionCount, &i.Instructions, &i.SendReminder, &i.ReminderTime, &i.InterviewLink,
		&i.ProcessStatus, &i.ProcessError, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err, "interview")
	}
	return &i, nil
}

func (r *Repository) ListInterviews(ctx context.Context, ownerID uuid.UUID, limit, offset int, search string) ([]model.InterviewListItem, int, error) {
	pattern := searchPattern(search)

	const countQ = `
SELECT COUNT(1) FROM interviews i
JOIN jobs j ON j.job_id = i.job_id
WHERE i.owner_id = $1 AND j.title ILIKE $2
`
	const q = `
SELECT i.interview_id, i.job_id, j.title, rd.name, u.name, i.duration_minutes,
	i.process_status, i.interview_link, i.created_at
FROM interviews i
JOIN jobs j ON j.job_id = i.job_id
JOIN rounds rd ON rd.round_id = i.round_id
JOIN users u ON u.user_id = i.interviewer_id
WHERE i.owner_id = $1 AND j.title ILIKE $2
ORDER BY i.created_at DESC
LIMIT $3 OFFSET $4
`
	return listPage(ctx, r.db, "interviews",
		countQ, []any{ownerID, pattern},
		q, []any{ownerID, pattern, limit, offset},
		func(row pgx.CollectableRow) (model.InterviewListItem, error) {
			var it model.InterviewListItem
			err := row.Scan(&it.InterviewID, &it.JobID, &it.JobTitle, &it.RoundName, &it.InterviewerName,
				&it.DurationMinutes, &it.ProcessStatus, &it.InterviewLink, &it.CreatedAt)
			return it, err
		})
}

// UpdateInterviewStatus records a question-generation transition. errMsg is
// stored only for the failed status.
func (r *Repository) UpdateInterviewStatus(ctx context.Context, interviewID uuid.UUID, status model.ProcessStatus, errMsg string) error {
	updates := map[string]interface{}{"process_status": status, "process_error": nil}
	if status == model.ProcessStatusFailed {
		updates["process_error"] = errMsg
	}
	return r.UpdateInterview(ctx, interviewID, updates)
}
