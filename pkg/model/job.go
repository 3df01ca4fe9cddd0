package model

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	JobID         uuid.UUID `json:"job_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Domain        string    `json:"domain"`
	JobLevel      string    `json:"job_level"`
	UserType      string    `json:"user_type"`
	MinExperience int       `json:"min_experience"`
	MaxExperience int       `json:"max_experience"`
	Description   string    `json:"description"`
	Openings      int       `json:"openings"`
	Skills        []string  `json:"skills"`
	CreatedAt     time.Time `json:"created_at"`
}

type Round struct {
	RoundID   uuid.UUID `json:"round_id"`
	JobID     uuid.UUID `json:"job_id"`
	Name      string    `json:"name"`
	RoundType string    `json:"round_type"`
	Objective string    `json:"objective"`
	Skills    []string  `json:"skills"`
	CreatedAt time.Time `json:"created_at"`
}

type JobListItem struct {
	JobID      uuid.UUID `json:"job_id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Domain     string    `json:"domain"`
	JobLevel   string    `json:"job_level"`
	Openings   int       `json:"openings"`
	Rounds     int       `json:"rounds"`
	Interviews int       `json:"interviews"`
	CreatedAt  time.Time `json:"created_at"`
}

type ImportJobReq struct {
	URL string `json:"url" binding:"required,url"`
}

type JobPosting struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
