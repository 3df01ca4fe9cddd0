package wizard

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed copy.yaml
var copyYAML []byte

type stepCopy struct {
	Step        Step   `yaml:"step"`
	Source      Source `yaml:"source"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

var headings = mustLoadCopy(copyYAML)

func loadCopy(b []byte) (map[jumpKey]stepCopy, error) {
	var doc struct {
		Steps []stepCopy `yaml:"steps"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse step copy: %w", err)
	}
	out := make(map[jumpKey]stepCopy, len(doc.Steps)*2)
	for _, c := range doc.Steps {
		if c.Step < 1 || int(c.Step) > TotalSteps {
			return nil, fmt.Errorf("step copy: step %d out of range", c.Step)
		}
		if c.Source == "" {
			out[jumpKey{c.Step, SourceExistingJob}] = c
			out[jumpKey{c.Step, SourceNewJob}] = c
			continue
		}
		if _, err := ParseSource(string(c.Source)); err != nil {
			return nil, fmt.Errorf("step copy: %w", err)
		}
		out[jumpKey{c.Step, c.Source}] = c
	}
	return out, nil
}

func mustLoadCopy(b []byte) map[jumpKey]stepCopy {
	m, err := loadCopy(b)
	if err != nil {
		panic(err)
	}
	return m
}

// Title returns the heading shown for step under src.
func Title(step Step, src Source) string {
	return headings[jumpKey{step, src}].Title
}

func Description(step Step, src Source) string {
	return headings[jumpKey{step, src}].Description
}
