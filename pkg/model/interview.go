package model

import (
	"time"

	"github.com/google/uuid"
)

type ProcessStatus string

const (
	ProcessStatusQueued     ProcessStatus = "queued"
	ProcessStatusProcessing ProcessStatus = "processing"
	ProcessStatusCompleted  ProcessStatus = "completed"
	ProcessStatusFailed     ProcessStatus = "failed"
)

type Interview struct {
	InterviewID     uuid.UUID     `json:"interview_id"`
	OwnerID         uuid.UUID     `json:"owner_id"`
	JobID           uuid.UUID     `json:"job_id"`
	RoundID         uuid.UUID     `json:"round_id"`
	InterviewerID   uuid.UUID     `json:"interviewer_id"`
	DurationMinutes int           `json:"duration_minutes"`
	Language        string        `json:"language"`
	QuestionsMode   string        `json:"questions_mode"`
	AIQuestionCount int           `json:"ai_question_count"`
	Instructions    string        `json:"instructions"`
	SendReminder    bool          `json:"send_reminder"`
	ReminderTime    *string       `json:"reminder_time"`
	InterviewLink   *string       `json:"interview_link"`
	ProcessStatus   ProcessStatus `json:"process_status"`
	ProcessError    *string       `json:"process_error"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type InterviewListItem struct {
	InterviewID     uuid.UUID     `json:"interview_id"`
	JobID           uuid.UUID     `json:"job_id"`
	JobTitle        string        `json:"job_title"`
	RoundName       string        `json:"round_name"`
	InterviewerName string        `json:"interviewer_name"`
	DurationMinutes int           `json:"duration_minutes"`
	ProcessStatus   ProcessStatus `json:"process_status"`
	InterviewLink   *string       `json:"interview_link"`
	CreatedAt       time.Time     `json:"created_at"`
}

// InterviewDraft is a finished wizard record converted to typed columns.
type InterviewDraft struct {
	OwnerID  uuid.UUID
	NewJob   *Job
	NewRound *Round

	JobID           uuid.UUID
	RoundID         uuid.UUID
	InterviewerID   uuid.UUID
	DurationMinutes int
	Language        string
	QuestionsMode   string
	AIQuestionCount int
	CustomQuestions []string
	Instructions    string
	SendReminder    bool
	ReminderTime    *string
	InterviewLink   *string
}
