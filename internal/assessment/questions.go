package assessment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dosha is a constitution label assigned by the prakriti assessment.
type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas is the fixed enumeration order of labels. Classification
// tie-breaks resolve to the first label in this order, so the order is
// part of the engine's contract, not a presentation detail.
var Doshas = []Dosha{Vata, Pitta, Kapha}

// Option is one selectable answer for a question, tagged with the
// dosha it counts toward.
type Option struct {
	Text  string `yaml:"text"`
	Dosha Dosha  `yaml:"dosha"`
	Icon  string `yaml:"icon,omitempty"`
}

// Question matches the YAML questionnaire structure.
type Question struct {
	ID       int      `yaml:"id"`
	Question string   `yaml:"question"`
	Options  []Option `yaml:"options"`
}

// Questionnaire holds the fixed, ordered question set.
type Questionnaire struct {
	Questions []Question `yaml:"questions"`
}

// LoadQuestionnaire reads and parses the questions YAML file.
func LoadQuestionnaire(path string) (*Questionnaire, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read questionnaire file: %w", err)
	}

	var q Questionnaire
	if err := yaml.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questionnaire YAML: %w", err)
	}

	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("questionnaire %q contains no questions", path)
	}
	for _, question := range q.Questions {
		for _, opt := range question.Options {
			if !validDosha(opt.Dosha) {
				return nil, fmt.Errorf("question %d: unknown dosha %q", question.ID, opt.Dosha)
			}
		}
	}

	return &q, nil
}

func validDosha(d Dosha) bool {
	for _, known := range Doshas {
		if d == known {
			return true
		}
	}
	return false
}
