package wizard

// Step is a 1-based wizard step index.
type Step int

const (
	StepSource Step = iota + 1
	StepJob
	StepRound
	StepQuestions
	StepInstructions
)

const TotalSteps = int(StepInstructions)

type jumpKey struct {
	from Step
	src  Source
}

// forwardJumps and backwardJumps override the default ±1 move.
var forwardJumps = map[jumpKey]Step{
	{StepRound, SourceExistingJob}: StepInstructions,
}

var backwardJumps = map[jumpKey]Step{
	{StepInstructions, SourceExistingJob}: StepRound,
}

// skipped lists steps that carry no body for a source.
var skipped = map[jumpKey]bool{
	{StepQuestions, SourceExistingJob}: true,
}

// Reachable reports whether step exists for src.
func Reachable(step Step, src Source) bool {
	if step < 1 || int(step) > TotalSteps {
		return false
	}
	return !skipped[jumpKey{step, src}]
}

func clamp(s Step) Step {
	if s < 1 {
		return 1
	}
	if int(s) > TotalSteps {
		return Step(TotalSteps)
	}
	return s
}

// Navigator holds the current step.
type Navigator struct {
	step Step
}

func NewNavigator() *Navigator {
	return &Navigator{step: StepSource}
}

func (n *Navigator) Current() Step { return n.step }

// Next moves forward one step, or to the jump target when the current step
// and source have one.
func (n *Navigator) Next(src Source) Step {
	candidate := n.step + 1
	if to, ok := forwardJumps[jumpKey{n.step, src}]; ok {
		candidate = to
	}
	n.step = clamp(candidate)
	return n.step
}

func (n *Navigator) Previous(src Source) Step {
	candidate := n.step - 1
	if to, ok := backwardJumps[jumpKey{n.step, src}]; ok {
		candidate = to
	}
	n.step = clamp(candidate)
	return n.step
}

// Normalize walks back to the nearest reachable step after a source change.
func (n *Navigator) Normalize(src Source) Step {
	for n.step > 1 && !Reachable(n.step, src) {
		n.step--
	}
	return n.step
}

// Set jumps to step, clamped. Used when restoring a session.
func (n *Navigator) Set(step Step) {
	n.step = clamp(step)
}

func (n *Navigator) Reset() {
	n.step = StepSource
}
