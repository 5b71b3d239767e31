// Package archive reads the tweets.js file found in a Twitter data export.
package archive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultPath is where the loader expects the export's tweets file.
	DefaultPath = "tweets.js"

	// assignmentPrefix is the JavaScript global the export wraps its JSON in.
	assignmentPrefix = "window.YTD.tweets.part0 = "

	// createdAtLayout is the layout Twitter uses for created_at.
	createdAtLayout = time.RubyDate
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tweet is a single tweet from the archive.
type Tweet struct {
	ID              string          `json:"id"`
	IDStr           string          `json:"id_str"`
	FullText        string          `json:"full_text"`
	CreatedAt       string          `json:"created_at"`
	RetweetStatus   json.RawMessage `json:"retweet_status,omitempty"`
	RetweetedStatus json.RawMessage `json:"retweeted_status,omitempty"`

	// Created is CreatedAt parsed by the loader.
	Created time.Time `json:"-"`
}

// IsRetweet reports whether the tweet shares another user's tweet, either by
// the "RT" text prefix or by carrying a retweet status.
func (t Tweet) IsRetweet() bool {
	return strings.HasPrefix(t.FullText, "RT") ||
		present(t.RetweetStatus) ||
		present(t.RetweetedStatus)
}

// present mirrors JavaScript truthiness for a raw JSON value.
func present(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	}
	return true
}

type wrapper struct {
	Tweet *Tweet `json:"tweet"`
}

// Load reads and parses the archive at path. Tweets are returned in archive
// order.
func Load(path string) ([]Tweet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	tweets, err := Parse(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return tweets, nil
}

// Parse decodes archive content, with or without the assignment prefix.
func Parse(data []byte) ([]Tweet, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.TrimPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte(assignmentPrefix))

	var wrappers []wrapper
	if err := json.Unmarshal(data, &wrappers); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	tweets := make([]Tweet, 0, len(wrappers))
	for i, w := range wrappers {
		if w.Tweet == nil {
			return nil, fmt.Errorf("entry %d: missing tweet object", i)
		}
		t := *w.Tweet
		if t.ID == "" {
			t.ID = t.IDStr
		}
		if t.ID == "" {
			return nil, fmt.Errorf("entry %d: missing id", i)
		}

		created, err := parseCreatedAt(t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("tweet %s: %w", t.ID, err)
		}
		t.Created = created
		tweets = append(tweets, t)
	}

	return tweets, nil
}

func parseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("missing created_at")
	}
	if t, err := time.Parse(createdAtLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", s, err)
	}
	return t, nil
}
