// Package config gathers everything the deleter needs before it starts:
// environment settings, API credentials and the cutoff date.
package config

import (
	"fmt"
	"os"
	"time"
)

// Environment variables consulted before prompting.
const (
	EnvAPIKey            = "API_KEY"
	EnvAPIKeySecret      = "API_KEY_SECRET"
	EnvAccessToken       = "ACCESS_TOKEN"
	EnvAccessTokenSecret = "ACCESS_TOKEN_SECRET"
)

// Question names, used as keys in the prompter's answers.
const (
	QuestionCutoff            = "inputDate"
	QuestionAPIKey            = "consumerKey"
	QuestionAPIKeySecret      = "consumerSecret"
	QuestionAccessToken       = "accessTokenKey"
	QuestionAccessTokenSecret = "accessTokenSecret"
)

// Credentials are the four OAuth 1.0a secrets for the user's app.
type Credentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// Settings is the resolved input for a run.
type Settings struct {
	Credentials Credentials

	// Cutoff is midnight, local time, at the start of the entered day.
	// Tweets created after it are kept.
	Cutoff time.Time
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// OSLookup reads the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

type secret struct {
	env      string
	question string
	message  string
	dst      func(*Credentials) *string
}

var secrets = []secret{
	{EnvAPIKey, QuestionAPIKey, `Enter your "API Key" value:`,
		func(c *Credentials) *string { return &c.APIKey }},
	{EnvAPIKeySecret, QuestionAPIKeySecret, `Enter your "API Secret Key" value:`,
		func(c *Credentials) *string { return &c.APISecret }},
	{EnvAccessToken, QuestionAccessToken, `Enter your "Access Token" value:`,
		func(c *Credentials) *string { return &c.AccessToken }},
	{EnvAccessTokenSecret, QuestionAccessTokenSecret, `Enter your "Access Token Secret" value:`,
		func(c *Credentials) *string { return &c.AccessSecret }},
}

// Resolve builds the run settings. Each secret is taken from its environment
// variable when set and non-empty; the rest are asked for, together with the
// cutoff date, in a single prompt batch.
func Resolve(lookup LookupFunc, p Prompter, now time.Time) (*Settings, error) {
	var creds Credentials

	questions := []Question{{
		Name:     QuestionCutoff,
		Message:  "Delete tweets starting from what date?",
		Default:  now.Format(DateLayout),
		Validate: ValidateDate,
	}}

	for _, s := range secrets {
		if val, ok := lookup(s.env); ok && val != "" {
			*s.dst(&creds) = val
			continue
		}
		questions = append(questions, Question{
			Name:     s.question,
			Message:  s.message,
			Validate: ValidateRequired,
		})
	}

	answers, err := p.Ask(questions)
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}

	for _, s := range secrets {
		dst := s.dst(&creds)
		if *dst != "" {
			continue
		}
		*dst = answers[s.question]
		if err := ValidateRequired(*dst); err != nil {
			return nil, fmt.Errorf("%s: %w", s.question, err)
		}
	}

	cutoff, err := ParseDate(answers[QuestionCutoff], now.Location())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", QuestionCutoff, err)
	}

	return &Settings{Credentials: creds, Cutoff: cutoff}, nil
}
