package twitter

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Data       string `json:"data"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("twitter api error (status %d): %s", e.StatusCode, e.Data)
}

// Serialize renders err as JSON for log lines. API errors keep their status
// and body; anything else becomes {"message": ...}.
func Serialize(err error) string {
	if err == nil {
		return "null"
	}

	var v any = struct {
		Message string `json:"message"`
	}{err.Error()}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		v = apiErr
	}

	b, mErr := json.Marshal(v)
	if mErr != nil {
		return fmt.Sprintf("%q", err.Error())
	}
	return string(b)
}
