package wizard

import "strings"

// filled treats whitespace-only input as empty on every step, not only for
// custom questions.
func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// ValidateStep reports whether the record holds enough data to leave step.
// Only the fields the step owns for the record's source are inspected.
func ValidateStep(step Step, r Record) bool {
	switch step {
	case StepSource:
		return true
	case StepJob:
		if r.Source == SourceExistingJob {
			return filled(r.JobID, r.RoundID)
		}
		return filled(r.JobTitle, r.Domain, r.JobLevel, r.UserType,
			r.MinExperience, r.MaxExperience, r.Description, r.Openings) &&
			len(r.Skills) > 0
	case StepRound:
		if r.Source == SourceExistingJob {
			return filled(r.Duration, r.Language, r.InterviewerID)
		}
		return filled(r.RoundName, r.RoundType, r.Objective,
			r.Duration, r.Language, r.InterviewerID) &&
			len(r.RoundSkills) > 0
	case StepQuestions:
		if r.AIQuestionCount <= 0 {
			return false
		}
		if r.QuestionsMode != QuestionsHybrid {
			return true
		}
		if len(r.CustomQuestions) == 0 {
			return false
		}
		for _, q := range r.CustomQuestions {
			if strings.TrimSpace(q) == "" {
				return false
			}
		}
		return true
	case StepInstructions:
		return filled(r.Instructions) && (!r.SendReminder || filled(r.ReminderTime))
	}
	return false
}
