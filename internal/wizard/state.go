package wizard

// State names the screen shown for a (step, source) pair.
type State string

const (
	StateSource       State = "source"
	StateJobSelect    State = "job_select"
	StateJobDetails   State = "job_details"
	StateRoundDetails State = "round_details"
	StateShare        State = "share"
	StateQuestions    State = "questions"
	StateInstructions State = "instructions"
)

// Action is the primary control offered on a screen.
type Action string

const (
	ActionNext   Action = "next"
	ActionShare  Action = "share"
	ActionSubmit Action = "submit"
)

var states = map[jumpKey]State{
	{StepSource, SourceExistingJob}:       StateSource,
	{StepSource, SourceNewJob}:            StateSource,
	{StepJob, SourceExistingJob}:          StateJobSelect,
	{StepJob, SourceNewJob}:               StateJobDetails,
	{StepRound, SourceExistingJob}:        StateShare,
	{StepRound, SourceNewJob}:             StateRoundDetails,
	{StepQuestions, SourceNewJob}:         StateQuestions,
	{StepInstructions, SourceExistingJob}: StateInstructions,
	{StepInstructions, SourceNewJob}:      StateInstructions,
}

// StateFor returns the screen for step under src, or "" when the step has no
// body for that source.
func StateFor(step Step, src Source) State {
	return states[jumpKey{step, src}]
}

// FooterVisible reports whether Back/Next are shown. The share screen has
// its own terminal action.
func (s State) FooterVisible() bool {
	return s != StateShare
}

func (s State) PrimaryAction() Action {
	switch s {
	case StateShare:
		return ActionShare
	case StateInstructions:
		return ActionSubmit
	}
	return ActionNext
}
