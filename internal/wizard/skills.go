package wizard

import (
	"fmt"
	"slices"
	"strings"
)

// SkillListName identifies which tag list of the record a SkillList edits.
type SkillListName string

const (
	ListSkills      SkillListName = "skills"
	ListRoundSkills SkillListName = "roundSkills"
)

func ParseSkillListName(s string) (SkillListName, error) {
	n := SkillListName(s)
	switch n {
	case ListSkills, ListRoundSkills:
		return n, nil
	}
	return "", fmt.Errorf("unknown skill list %q", s)
}

func (n SkillListName) field() Field {
	if n == ListRoundSkills {
		return FieldRoundSkills
	}
	return FieldSkills
}

// KeyEnter commits the pending input.
const KeyEnter = "Enter"

// SkillList manages an ordered, duplicate-free list of tags plus the text
// currently being typed. Equality is exact and case-sensitive.
type SkillList struct {
	list     []string
	input    string
	onUpdate func([]string)
}

func NewSkillList(list []string, onUpdate func([]string)) *SkillList {
	return &SkillList{list: cloneStrings(list), onUpdate: onUpdate}
}

func (s *SkillList) SetInput(text string) { s.input = text }
func (s *SkillList) Input() string        { return s.input }
func (s *SkillList) List() []string       { return cloneStrings(s.list) }

// Add appends the trimmed pending input. Empty or duplicate input is ignored
// and the pending text is left as typed.
func (s *SkillList) Add() bool {
	skill := strings.TrimSpace(s.input)
	if skill == "" || slices.Contains(s.list, skill) {
		return false
	}
	next := make([]string, len(s.list), len(s.list)+1)
	copy(next, s.list)
	s.list = append(next, skill)
	s.input = ""
	s.notify()
	return true
}

func (s *SkillList) Remove(skill string) {
	next := make([]string, 0, len(s.list))
	for _, v := range s.list {
		if v != skill {
			next = append(next, v)
		}
	}
	s.list = next
	s.notify()
}

// HandleKey reacts to a key press in the tag input. It reports whether the
// default action (form submission) must be suppressed.
func (s *SkillList) HandleKey(key string) bool {
	if key != KeyEnter {
		return false
	}
	s.Add()
	return true
}

func (s *SkillList) notify() {
	if s.onUpdate != nil {
		s.onUpdate(cloneStrings(s.list))
	}
}
