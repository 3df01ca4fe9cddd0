package wizard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrFieldType    = errors.New("invalid value type for field")
	ErrIndex        = errors.New("index out of range")
)

// MaxQuestionCount bounds both the AI question count and the custom
// question list.
const MaxQuestionCount = 50

// Field names a single Record field. Names match the JSON tags.
type Field string

const (
	FieldSource              Field = "source"
	FieldJobID               Field = "jobId"
	FieldRoundID             Field = "roundId"
	FieldJobTitle            Field = "jobTitle"
	FieldDomain              Field = "domain"
	FieldJobLevel            Field = "jobLevel"
	FieldUserType            Field = "userType"
	FieldMinExperience       Field = "minExperience"
	FieldMaxExperience       Field = "maxExperience"
	FieldDescription         Field = "description"
	FieldOpenings            Field = "openings"
	FieldSkills              Field = "skills"
	FieldRoundName           Field = "roundName"
	FieldRoundType           Field = "roundType"
	FieldObjective           Field = "objective"
	FieldDuration            Field = "duration"
	FieldLanguage            Field = "language"
	FieldInterviewerID       Field = "interviewerId"
	FieldRoundSkills         Field = "roundSkills"
	FieldQuestionsMode       Field = "questionsMode"
	FieldAIQuestionCount     Field = "aiQuestionCount"
	FieldCustomQuestions     Field = "customQuestions"
	FieldCustomQuestionCount Field = "customQuestionCount"
	FieldInstructions        Field = "instructions"
	FieldSendReminder        Field = "sendReminder"
	FieldReminderTime        Field = "reminderTime"
)

type setter func(r *Record, v any) error

func stringField(dst func(*Record) *string) setter {
	return func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		*dst(r) = s
		return nil
	}
}

func listField(dst func(*Record) *[]string) setter {
	return func(r *Record, v any) error {
		l, err := asStrings(v)
		if err != nil {
			return err
		}
		*dst(r) = l
		return nil
	}
}

var setters = map[Field]setter{
	FieldSource: func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		src, err := ParseSource(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFieldType, err)
		}
		r.Source = src
		return nil
	},
	FieldJobID:         stringField(func(r *Record) *string { return &r.JobID }),
	FieldRoundID:       stringField(func(r *Record) *string { return &r.RoundID }),
	FieldJobTitle:      stringField(func(r *Record) *string { return &r.JobTitle }),
	FieldDomain:        stringField(func(r *Record) *string { return &r.Domain }),
	FieldJobLevel:      stringField(func(r *Record) *string { return &r.JobLevel }),
	FieldUserType:      stringField(func(r *Record) *string { return &r.UserType }),
	FieldMinExperience: stringField(func(r *Record) *string { return &r.MinExperience }),
	FieldMaxExperience: stringField(func(r *Record) *string { return &r.MaxExperience }),
	FieldDescription:   stringField(func(r *Record) *string { return &r.Description }),
	FieldOpenings:      stringField(func(r *Record) *string { return &r.Openings }),
	FieldSkills:        listField(func(r *Record) *[]string { return &r.Skills }),
	FieldRoundName:     stringField(func(r *Record) *string { return &r.RoundName }),
	FieldRoundType:     stringField(func(r *Record) *string { return &r.RoundType }),
	FieldObjective:     stringField(func(r *Record) *string { return &r.Objective }),
	FieldDuration:      stringField(func(r *Record) *string { return &r.Duration }),
	FieldLanguage:      stringField(func(r *Record) *string { return &r.Language }),
	FieldInterviewerID: stringField(func(r *Record) *string { return &r.InterviewerID }),
	FieldRoundSkills:   listField(func(r *Record) *[]string { return &r.RoundSkills }),
	FieldQuestionsMode: func(r *Record, v any) error {
		s, err := asString(v)
		if err != nil {
			return err
		}
		m, err := ParseQuestionsMode(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFieldType, err)
		}
		r.QuestionsMode = m
		return nil
	},
	FieldAIQuestionCount: func(r *Record, v any) error {
		n, err := asCount(v)
		if err != nil {
			return err
		}
		r.AIQuestionCount = n
		return nil
	},
	FieldCustomQuestions: func(r *Record, v any) error {
		l, err := asStrings(v)
		if err != nil {
			return err
		}
		if len(l) > MaxQuestionCount {
			return fmt.Errorf("%w: at most %d custom questions", ErrFieldType, MaxQuestionCount)
		}
		r.CustomQuestions = l
		return nil
	},
	FieldCustomQuestionCount: func(r *Record, v any) error {
		n, err := asCount(v)
		if err != nil {
			return err
		}
		r.CustomQuestions = Resize(r.CustomQuestions, n)
		return nil
	},
	FieldInstructions: stringField(func(r *Record) *string { return &r.Instructions }),
	FieldSendReminder: func(r *Record, v any) error {
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("%w: want bool, got %T", ErrFieldType, v)
		}
		r.SendReminder = b
		return nil
	},
	FieldReminderTime: stringField(func(r *Record) *string { return &r.ReminderTime }),
}

// Store is a plain merge container for the wizard record. It performs no
// domain validation; callers gate progress with ValidateStep.
type Store struct {
	rec Record
}

func NewStore() *Store {
	return &Store{rec: DefaultRecord()}
}

// Get returns a copy of the current record.
func (s *Store) Get() Record {
	return s.rec.Clone()
}

// SetField merges one field into the record, leaving all others untouched.
func (s *Store) SetField(key Field, value any) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	if err := set(&s.rec, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SetCustomQuestion edits a single custom question in place.
func (s *Store) SetCustomQuestion(i int, text string) error {
	if i < 0 || i >= len(s.rec.CustomQuestions) {
		return fmt.Errorf("custom question %d: %w", i, ErrIndex)
	}
	qs := cloneStrings(s.rec.CustomQuestions)
	qs[i] = text
	s.rec.CustomQuestions = qs
	return nil
}

// Load replaces the whole record.
func (s *Store) Load(r Record) {
	s.rec = r.Clone()
}

func (s *Store) Reset() {
	s.rec = DefaultRecord()
}

func asString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<53 {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("%w: want string, got %T", ErrFieldType, v)
}

func asInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case int64:
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("%w: %v is not an integer", ErrFieldType, t)
		}
		if t < math.MinInt32 || t > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %v is out of range", ErrFieldType, t)
		}
		return int(t), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrFieldType, t)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%w: want integer, got %T", ErrFieldType, v)
}

// asCount parses a question count. Negative values pass through so step
// validation can reject them; values above MaxQuestionCount are refused.
func asCount(v any) (int, error) {
	n, err := asInt(v)
	if err != nil {
		return 0, err
	}
	if n > MaxQuestionCount {
		return 0, fmt.Errorf("%w: %d exceeds the maximum of %d", ErrFieldType, n, MaxQuestionCount)
	}
	return n, nil
}

func asStrings(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return cloneStrings(t), nil
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list element %T is not a string", ErrFieldType, e)
			}
			out = append(out, s)
		}
		return out, nil
	case nil:
		return []string{}, nil
	}
	return nil, fmt.Errorf("%w: want list of strings, got %T", ErrFieldType, v)
}
