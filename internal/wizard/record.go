// Package wizard implements the interview-creation wizard: the collected
// record, per-step validation, step navigation with source-dependent jumps
// and the orchestrator that submits the finished record.
//
// Step graph:
//
//	new_job:      1 ──► 2 (job details) ──► 3 (round details) ──► 4 (questions) ──► 5
//	existing_job: 1 ──► 2 (job select)  ──► 3 (share) ─────────────────────────► 5
//
// Step 5 is terminal; its confirm action submits the record.
package wizard

import "fmt"

// Source selects whether the interview is attached to an existing job or
// creates a new one.
type Source string

const (
	SourceExistingJob Source = "existing_job"
	SourceNewJob      Source = "new_job"
)

// ParseSource converts a raw string to a Source. Matching is case-sensitive.
func ParseSource(s string) (Source, error) {
	src := Source(s)
	switch src {
	case SourceExistingJob, SourceNewJob:
		return src, nil
	}
	return "", fmt.Errorf("unknown source %q", s)
}

// QuestionsMode selects how interview questions are produced.
type QuestionsMode string

const (
	QuestionsAIGenerated QuestionsMode = "ai_generated"
	QuestionsHybrid      QuestionsMode = "hybrid"
)

func ParseQuestionsMode(s string) (QuestionsMode, error) {
	m := QuestionsMode(s)
	switch m {
	case QuestionsAIGenerated, QuestionsHybrid:
		return m, nil
	}
	return "", fmt.Errorf("unknown questions mode %q", s)
}

// Record holds every field collectible across all steps. Fields that belong
// to a step skipped by the current source may stay empty.
type Record struct {
	Source Source `json:"source"`

	// step 2, existing job
	JobID   string `json:"jobId"`
	RoundID string `json:"roundId"`

	// step 2, new job
	JobTitle      string   `json:"jobTitle"`
	Domain        string   `json:"domain"`
	JobLevel      string   `json:"jobLevel"`
	UserType      string   `json:"userType"`
	MinExperience string   `json:"minExperience"`
	MaxExperience string   `json:"maxExperience"`
	Description   string   `json:"description"`
	Openings      string   `json:"openings"`
	Skills        []string `json:"skills"`

	// step 3
	RoundName     string   `json:"roundName"`
	RoundType     string   `json:"roundType"`
	Objective     string   `json:"objective"`
	Duration      string   `json:"duration"`
	Language      string   `json:"language"`
	InterviewerID string   `json:"interviewerId"`
	RoundSkills   []string `json:"roundSkills"`

	// step 4
	QuestionsMode   QuestionsMode `json:"questionsMode"`
	AIQuestionCount int           `json:"aiQuestionCount"`
	CustomQuestions []string      `json:"customQuestions"`

	// step 5
	Instructions string `json:"instructions"`
	SendReminder bool   `json:"sendReminder"`
	ReminderTime string `json:"reminderTime"`

	InterviewLink string `json:"interviewLink,omitempty"`
}

// DefaultRecord returns the record a freshly opened wizard starts from.
func DefaultRecord() Record {
	return Record{
		Source:          SourceExistingJob,
		QuestionsMode:   QuestionsAIGenerated,
		Skills:          []string{},
		RoundSkills:     []string{},
		CustomQuestions: []string{},
	}
}

// CustomQuestionCount is derived from the list; there is no separate counter.
func (r Record) CustomQuestionCount() int {
	return len(r.CustomQuestions)
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	out := r
	out.Skills = cloneStrings(r.Skills)
	out.RoundSkills = cloneStrings(r.RoundSkills)
	out.CustomQuestions = cloneStrings(r.CustomQuestions)
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Resize returns a copy of list with exactly n entries: the existing prefix is
// kept, missing entries are padded with "" and extra entries are dropped.
// n is clamped to [0, MaxQuestionCount].
func Resize(list []string, n int) []string {
	n = max(0, min(n, MaxQuestionCount))
	out := make([]string, n)
	copy(out, list)
	return out
}
