package config

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// Question is one interactive text prompt.
type Question struct {
	Name     string
	Message  string
	Default  string
	Validate func(string) error
}

// Prompter asks a batch of questions and returns the answers keyed by
// question name. Implementations re-ask a question until its validator
// passes.
type Prompter interface {
	Ask(questions []Question) (map[string]string, error)
}

// SurveyPrompter asks questions on the terminal.
type SurveyPrompter struct {
	Options []survey.AskOpt
}

// Ask implements Prompter.
func (p SurveyPrompter) Ask(questions []Question) (map[string]string, error) {
	qs := make([]*survey.Question, 0, len(questions))
	for _, q := range questions {
		qs = append(qs, &survey.Question{
			Name: q.Name,
			Prompt: &survey.Input{
				Message: q.Message,
				Default: q.Default,
			},
			Validate: surveyValidator(q.Validate),
		})
	}

	raw := map[string]interface{}{}
	if err := survey.Ask(qs, &raw, p.Options...); err != nil {
		return nil, err
	}

	answers := make(map[string]string, len(raw))
	for name, val := range raw {
		answers[name] = fmt.Sprint(val)
	}
	return answers, nil
}

func surveyValidator(fn func(string) error) survey.Validator {
	if fn == nil {
		return nil
	}
	return func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return fmt.Errorf("unexpected answer type %T", ans)
		}
		return fn(s)
	}
}
