package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeCustom = "custom"
	QuestionTypeAI     = "ai"
)

type Question struct {
	QID         int64     `json:"q_id" db:"q_id"`
	InterviewID uuid.UUID `json:"interview_id" db:"interview_id"`
	Question    string    `json:"question" db:"question"`
	Type        string    `json:"type" db:"type"`
	Position    int       `json:"position" db:"position"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
