package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhishek622/hirewizard/internal/wizard"
)

func minimalNewJob() wizard.Record {
	r := wizard.DefaultRecord()
	r.Source = wizard.SourceNewJob
	r.JobTitle = "QA"
	r.Domain = "engineering"
	r.JobLevel = "mid"
	r.UserType = "fulltime"
	r.MinExperience = "1"
	r.MaxExperience = "3"
	r.Description = "x"
	r.Openings = "1"
	r.Skills = []string{"x"}
	r.RoundName = "r"
	r.RoundType = "t"
	r.Objective = "o"
	r.Duration = "30"
	r.Language = "en"
	r.InterviewerID = "i"
	r.RoundSkills = []string{"y"}
	r.AIQuestionCount = 1
	r.Instructions = "go"
	return r
}

func minimalExistingJob() wizard.Record {
	r := wizard.DefaultRecord()
	r.JobID = "j"
	r.RoundID = "r"
	r.Duration = "30"
	r.Language = "en"
	r.InterviewerID = "i"
	r.AIQuestionCount = 1
	r.Instructions = "go"
	return r
}

func TestValidateStep_SourceAlwaysValid(t *testing.T) {
	assert.True(t, wizard.ValidateStep(wizard.StepSource, wizard.DefaultRecord()))
	assert.True(t, wizard.ValidateStep(wizard.StepSource, wizard.Record{}))
}

func TestValidateStep_MinimalRecordsPass(t *testing.T) {
	for _, step := range []wizard.Step{1, 2, 3, 4, 5} {
		assert.True(t, wizard.ValidateStep(step, minimalNewJob()), "new_job step %d", step)
		assert.True(t, wizard.ValidateStep(step, minimalExistingJob()), "existing_job step %d", step)
	}
}

func TestValidateStep_EachMandatoryFieldBlocks(t *testing.T) {
	cases := []struct {
		name  string
		step  wizard.Step
		base  func() wizard.Record
		clear func(r *wizard.Record)
	}{
		{"existing jobId", 2, minimalExistingJob, func(r *wizard.Record) { r.JobID = "" }},
		{"existing roundId", 2, minimalExistingJob, func(r *wizard.Record) { r.RoundID = " " }},
		{"new jobTitle", 2, minimalNewJob, func(r *wizard.Record) { r.JobTitle = "" }},
		{"new domain", 2, minimalNewJob, func(r *wizard.Record) { r.Domain = "" }},
		{"new jobLevel", 2, minimalNewJob, func(r *wizard.Record) { r.JobLevel = "" }},
		{"new userType", 2, minimalNewJob, func(r *wizard.Record) { r.UserType = "" }},
		{"new minExperience", 2, minimalNewJob, func(r *wizard.Record) { r.MinExperience = "" }},
		{"new maxExperience", 2, minimalNewJob, func(r *wizard.Record) { r.MaxExperience = "" }},
		{"new description", 2, minimalNewJob, func(r *wizard.Record) { r.Description = "\t" }},
		{"new openings", 2, minimalNewJob, func(r *wizard.Record) { r.Openings = "" }},
		{"new skills", 2, minimalNewJob, func(r *wizard.Record) { r.Skills = nil }},
		{"existing duration", 3, minimalExistingJob, func(r *wizard.Record) { r.Duration = "" }},
		{"existing language", 3, minimalExistingJob, func(r *wizard.Record) { r.Language = "" }},
		{"existing interviewer", 3, minimalExistingJob, func(r *wizard.Record) { r.InterviewerID = "" }},
		{"new roundName", 3, minimalNewJob, func(r *wizard.Record) { r.RoundName = "" }},
		{"new roundType", 3, minimalNewJob, func(r *wizard.Record) { r.RoundType = "" }},
		{"new objective", 3, minimalNewJob, func(r *wizard.Record) { r.Objective = "" }},
		{"new duration", 3, minimalNewJob, func(r *wizard.Record) { r.Duration = "" }},
		{"new language", 3, minimalNewJob, func(r *wizard.Record) { r.Language = "" }},
		{"new interviewer", 3, minimalNewJob, func(r *wizard.Record) { r.InterviewerID = "" }},
		{"new roundSkills", 3, minimalNewJob, func(r *wizard.Record) { r.RoundSkills = []string{} }},
		{"ai count", 4, minimalNewJob, func(r *wizard.Record) { r.AIQuestionCount = 0 }},
		{"instructions", 5, minimalNewJob, func(r *wizard.Record) { r.Instructions = "" }},
		{"reminder time", 5, minimalNewJob, func(r *wizard.Record) { r.SendReminder = true }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := c.base()
			c.clear(&r)
			assert.False(t, wizard.ValidateStep(c.step, r))
		})
	}
}

func TestValidateStep_ExistingRoundIgnoresRoundDetails(t *testing.T) {
	r := minimalExistingJob()
	r.RoundName, r.RoundType, r.Objective = "", "", ""
	r.RoundSkills = nil
	assert.True(t, wizard.ValidateStep(wizard.StepRound, r))
}

func TestValidateStep_Hybrid(t *testing.T) {
	r := minimalNewJob()
	r.QuestionsMode = wizard.QuestionsHybrid
	assert.False(t, wizard.ValidateStep(wizard.StepQuestions, r), "hybrid needs custom questions")

	r.CustomQuestions = []string{"a", "  "}
	assert.False(t, wizard.ValidateStep(wizard.StepQuestions, r), "blank custom question")

	r.CustomQuestions = []string{"a", "b"}
	assert.True(t, wizard.ValidateStep(wizard.StepQuestions, r))

	r.AIQuestionCount = 0
	assert.False(t, wizard.ValidateStep(wizard.StepQuestions, r))
}

func TestValidateStep_ReminderWithTime(t *testing.T) {
	r := minimalNewJob()
	r.SendReminder = true
	r.ReminderTime = "09:00"
	assert.True(t, wizard.ValidateStep(wizard.StepInstructions, r))
}

func TestValidateStep_OutOfRange(t *testing.T) {
	assert.False(t, wizard.ValidateStep(0, minimalNewJob()))
	assert.False(t, wizard.ValidateStep(6, minimalNewJob()))
}
