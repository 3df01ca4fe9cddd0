package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhishek622/hirewizard/internal/wizard"
)

func TestNavigator_NewJobVisitsEveryStep(t *testing.T) {
	n := wizard.NewNavigator()
	var seen []wizard.Step
	for i := 0; i < 6; i++ {
		seen = append(seen, n.Next(wizard.SourceNewJob))
	}
	assert.Equal(t, []wizard.Step{2, 3, 4, 5, 5, 5}, seen)
}

func TestNavigator_ExistingJobSkipsQuestions(t *testing.T) {
	n := wizard.NewNavigator()
	assert.Equal(t, wizard.Step(2), n.Next(wizard.SourceExistingJob))
	assert.Equal(t, wizard.Step(3), n.Next(wizard.SourceExistingJob))
	assert.Equal(t, wizard.Step(5), n.Next(wizard.SourceExistingJob))
	assert.Equal(t, wizard.Step(3), n.Previous(wizard.SourceExistingJob))
	assert.Equal(t, wizard.Step(2), n.Previous(wizard.SourceExistingJob))
}

func TestNavigator_StaysInBounds(t *testing.T) {
	for _, src := range []wizard.Source{wizard.SourceExistingJob, wizard.SourceNewJob} {
		n := wizard.NewNavigator()
		for i := 0; i < 20; i++ {
			s := n.Previous(src)
			assert.GreaterOrEqual(t, int(s), 1)
		}
		for i := 0; i < 20; i++ {
			s := n.Next(src)
			assert.LessOrEqual(t, int(s), wizard.TotalSteps)
			assert.True(t, wizard.Reachable(s, src))
		}
		for i := 0; i < 20; i++ {
			s := n.Previous(src)
			assert.GreaterOrEqual(t, int(s), 1)
			assert.True(t, wizard.Reachable(s, src))
		}
	}
}

func TestNavigator_NormalizeAfterSourceChange(t *testing.T) {
	n := wizard.NewNavigator()
	n.Set(wizard.StepQuestions)
	assert.Equal(t, wizard.StepRound, n.Normalize(wizard.SourceExistingJob))
	assert.Equal(t, wizard.StepRound, n.Normalize(wizard.SourceNewJob))
}

func TestNavigator_Reset(t *testing.T) {
	n := wizard.NewNavigator()
	n.Next(wizard.SourceNewJob)
	n.Next(wizard.SourceNewJob)
	n.Reset()
	assert.Equal(t, wizard.StepSource, n.Current())
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, wizard.StateJobSelect, wizard.StateFor(2, wizard.SourceExistingJob))
	assert.Equal(t, wizard.StateJobDetails, wizard.StateFor(2, wizard.SourceNewJob))
	assert.Equal(t, wizard.StateShare, wizard.StateFor(3, wizard.SourceExistingJob))
	assert.Equal(t, wizard.StateRoundDetails, wizard.StateFor(3, wizard.SourceNewJob))
	assert.Equal(t, wizard.State(""), wizard.StateFor(4, wizard.SourceExistingJob))
	assert.False(t, wizard.StateShare.FooterVisible())
	assert.Equal(t, wizard.ActionSubmit, wizard.StateInstructions.PrimaryAction())
}

func TestHeadings(t *testing.T) {
	for _, step := range []wizard.Step{1, 5} {
		assert.Equal(t,
			wizard.Title(step, wizard.SourceExistingJob),
			wizard.Title(step, wizard.SourceNewJob))
		assert.Equal(t,
			wizard.Description(step, wizard.SourceExistingJob),
			wizard.Description(step, wizard.SourceNewJob))
	}
	for _, step := range []wizard.Step{2, 3, 4} {
		assert.NotEqual(t,
			wizard.Title(step, wizard.SourceExistingJob),
			wizard.Title(step, wizard.SourceNewJob))
		assert.NotEmpty(t, wizard.Description(step, wizard.SourceNewJob))
	}
	assert.Empty(t, wizard.Title(9, wizard.SourceNewJob))
}
