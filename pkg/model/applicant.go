package model

import (
	"time"

	"github.com/google/uuid"
)

type Applicant struct {
	ApplicantID uuid.UUID  `json:"applicant_id"`
	JobID       uuid.UUID  `json:"job_id"`
	JobTitle    string     `json:"job_title"`
	InterviewID *uuid.UUID `json:"interview_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	Score       *float64   `json:"score"`
	CreatedAt   time.Time  `json:"created_at"`
}
