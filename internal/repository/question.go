package repository

import (
	"context"
	"fmt"

	"github.com/abhishek622/hirewizard/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func insertQuestions(ctx context.Context, tx pgx.Tx, questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	const q = `INSERT INTO questions (interview_id, question, "type", position) VALUES ($1, $2, $3, $4)`
	for _, question := range questions {
		batch.Queue(q, question.InterviewID, question.Question, question.Type, question.Position)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < len(questions); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("batch insert question %d: %w", i, err)
		}
	}
	return nil
}

// CreateQuestions appends questions after the ones the interview already has.
func (r *Repository) CreateQuestions(ctx context.Context, interviewID uuid.UUID, texts []string, qType string) error {
	if len(texts) == 0 {
		return nil
	}
	return r.execTx(ctx, func(tx pgx.Tx) error {
		var next int
		const posQ = `SELECT COALESCE(MAX(position) + 1, 0) FROM questions WHERE interview_id = $1`
		if err := tx.QueryRow(ctx, posQ, interviewID).Scan(&next); err != nil {
			return fmt.Errorf("next question position: %w", err)
		}
		qs := make([]model.Question, len(texts))
		for i, text := range texts {
			qs[i] = model.Question{InterviewID: interviewID, Question: text, Type: qType, Position: next + i}
		}
		return insertQuestions(ctx, tx, qs)
	})
}

func (r *Repository) ListQuestions(ctx context.Context, interviewID uuid.UUID) ([]model.Question, error) {
	const q = `
SELECT q_id, interview_id, question, type, position, created_at
FROM questions
WHERE interview_id = $1
ORDER BY position ASC
`
	rows, err := r.db.Query(ctx, q, interviewID)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	out := []model.Question{}
	for rows.Next() {
		var qs model.Question
		if err := rows.Scan(&qs.QID, &qs.InterviewID, &qs.Question, &qs.Type, &qs.Position, &qs.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, qs)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
