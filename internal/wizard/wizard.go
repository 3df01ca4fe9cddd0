package wizard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrStepInvalid  = errors.New("step is incomplete")
	ErrFooterHidden = errors.New("navigation is not available on this screen")
	ErrNotSharable  = errors.New("share is only available on the share screen")
	ErrNotFinalStep = errors.New("submit is only available on the final step")
)

// Creator persists a finished record and returns the new interview id.
type Creator interface {
	CreateInterview(ctx context.Context, r Record) (string, error)
}

// CreatorFunc adapts a function to Creator.
type CreatorFunc func(ctx context.Context, r Record) (string, error)

func (f CreatorFunc) CreateInterview(ctx context.Context, r Record) (string, error) {
	return f(ctx, r)
}

// View is what a client renders for the current screen.
type View struct {
	Step          Step                     `json:"step"`
	TotalSteps    int                      `json:"totalSteps"`
	State         State                    `json:"state"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	CanProceed    bool                     `json:"canProceed"`
	FooterVisible bool                     `json:"footerVisible"`
	PrimaryAction Action                   `json:"primaryAction"`
	Record        Record                   `json:"record"`
	SkillInputs   map[SkillListName]string `json:"skillInputs"`
}

// Snapshot is the serialisable state of a wizard session.
type Snapshot struct {
	Record      Record                   `json:"record"`
	Step        Step                     `json:"step"`
	SkillInputs map[SkillListName]string `json:"skillInputs,omitempty"`
}

// Submission is returned by a successful Submit.
type Submission struct {
	InterviewID string `json:"interviewId"`
	Record      Record `json:"record"`
}

type Option func(*Wizard)

func WithLogger(l *zap.Logger) Option {
	return func(w *Wizard) { w.log = l }
}

// Wizard composes the store, navigator, validators and headings, and hands
// the finished record to a Creator. It is not safe for concurrent use.
type Wizard struct {
	store   *Store
	nav     *Navigator
	links   *LinkGenerator
	creator Creator
	inputs  map[SkillListName]string
	log     *zap.Logger
}

func New(links *LinkGenerator, creator Creator, opts ...Option) *Wizard {
	w := &Wizard{
		store:   NewStore(),
		nav:     NewNavigator(),
		links:   links,
		creator: creator,
		inputs:  map[SkillListName]string{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Wizard) Record() Record { return w.store.Get() }
func (w *Wizard) Step() Step     { return w.nav.Current() }

func (w *Wizard) State() State {
	return StateFor(w.nav.Current(), w.store.rec.Source)
}

func (w *Wizard) View() View {
	step, src := w.nav.Current(), w.store.rec.Source
	state := StateFor(step, src)
	inputs := make(map[SkillListName]string, len(w.inputs))
	for k, v := range w.inputs {
		inputs[k] = v
	}
	return View{
		Step:          step,
		TotalSteps:    TotalSteps,
		State:         state,
		Title:         Title(step, src),
		Description:   Description(step, src),
		CanProceed:    ValidateStep(step, w.store.rec),
		FooterVisible: state.FooterVisible(),
		PrimaryAction: state.PrimaryAction(),
		Record:        w.store.Get(),
		SkillInputs:   inputs,
	}
}

func (w *Wizard) SetField(key Field, value any) error {
	if err := w.store.SetField(key, value); err != nil {
		return err
	}
	if key == FieldSource {
		w.nav.Normalize(w.store.rec.Source)
		w.enter()
	}
	return nil
}

func (w *Wizard) SetCustomQuestionCount(n int) error {
	return w.store.SetField(FieldCustomQuestionCount, n)
}

func (w *Wizard) SetCustomQuestion(i int, text string) error {
	return w.store.SetCustomQuestion(i, text)
}

func (w *Wizard) skillList(name SkillListName) *SkillList {
	var current []string
	if name == ListRoundSkills {
		current = w.store.rec.RoundSkills
	} else {
		current = w.store.rec.Skills
	}
	l := NewSkillList(current, func(next []string) {
		// list fields accept []string, this cannot fail
		_ = w.store.SetField(name.field(), next)
	})
	l.SetInput(w.inputs[name])
	return l
}

func (w *Wizard) SetSkillInput(name SkillListName, text string) {
	w.inputs[name] = text
}

// AddSkill commits the pending input of the named list.
func (w *Wizard) AddSkill(name SkillListName) bool {
	l := w.skillList(name)
	added := l.Add()
	w.inputs[name] = l.Input()
	return added
}

func (w *Wizard) RemoveSkill(name SkillListName, skill string) {
	w.skillList(name).Remove(skill)
}

// KeyDown forwards a key press from the tag input of the named list.
func (w *Wizard) KeyDown(name SkillListName, key string) bool {
	l := w.skillList(name)
	prevent := l.HandleKey(key)
	w.inputs[name] = l.Input()
	return prevent
}

// Next advances when the current step validates.
func (w *Wizard) Next() (View, error) {
	if !w.State().FooterVisible() {
		return w.View(), ErrFooterHidden
	}
	if !ValidateStep(w.nav.Current(), w.store.rec) {
		return w.View(), ErrStepInvalid
	}
	w.nav.Next(w.store.rec.Source)
	w.enter()
	return w.View(), nil
}

func (w *Wizard) Back() (View, error) {
	if !w.State().FooterVisible() {
		return w.View(), ErrFooterHidden
	}
	w.nav.Previous(w.store.rec.Source)
	return w.View(), nil
}

// Share confirms the share screen and returns the link to hand to the share
// dialog. The wizard then continues with the instructions step.
func (w *Wizard) Share() (string, View, error) {
	if w.State() != StateShare {
		return "", w.View(), ErrNotSharable
	}
	if !ValidateStep(w.nav.Current(), w.store.rec) {
		return "", w.View(), ErrStepInvalid
	}
	link := w.store.rec.InterviewLink
	w.nav.Next(w.store.rec.Source)
	return link, w.View(), nil
}

// Submit hands the record to the creator. On success the wizard is reset; on
// failure every field is kept so the user stays on the final screen.
func (w *Wizard) Submit(ctx context.Context) (*Submission, error) {
	if w.nav.Current() != StepInstructions {
		return nil, ErrNotFinalStep
	}
	rec := w.store.Get()
	if !ValidateStep(StepInstructions, rec) {
		return nil, ErrStepInvalid
	}
	id, err := w.creator.CreateInterview(ctx, rec)
	if err != nil {
		w.log.Warn("wizard: create interview failed", zap.String("source", string(rec.Source)), zap.Error(err))
		return nil, fmt.Errorf("create interview: %w", err)
	}
	w.log.Info("wizard: interview created", zap.String("interview_id", id), zap.String("source", string(rec.Source)))
	w.Close()
	return &Submission{InterviewID: id, Record: rec}, nil
}

// Close discards all input.
func (w *Wizard) Close() {
	w.store.Reset()
	w.nav.Reset()
	w.inputs = map[SkillListName]string{}
}

func (w *Wizard) Snapshot() Snapshot {
	inputs := make(map[SkillListName]string, len(w.inputs))
	for k, v := range w.inputs {
		if v != "" {
			inputs[k] = v
		}
	}
	return Snapshot{Record: w.store.Get(), Step: w.nav.Current(), SkillInputs: inputs}
}

func (w *Wizard) Restore(s Snapshot) {
	rec := s.Record
	if rec.Source == "" {
		rec.Source = SourceExistingJob
	}
	if rec.QuestionsMode == "" {
		rec.QuestionsMode = QuestionsAIGenerated
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.RoundSkills == nil {
		rec.RoundSkills = []string{}
	}
	if rec.CustomQuestions == nil {
		rec.CustomQuestions = []string{}
	}
	w.store.Load(rec)
	w.nav.Set(s.Step)
	w.nav.Normalize(rec.Source)
	w.inputs = map[SkillListName]string{}
	for k, v := range s.SkillInputs {
		w.inputs[k] = v
	}
}

// enter runs the on-mount hook of the current screen.
func (w *Wizard) enter() {
	if w.State() == StateShare && w.links != nil {
		w.links.EnsureLink(&w.store.rec)
	}
}
