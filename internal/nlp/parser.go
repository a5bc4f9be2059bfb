package nlp

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrNoJSON        = errors.New("model response contains no JSON object")
	ErrMissingFields = errors.New("parsed command is missing action, item or type")
)

// ExtractCommand pulls the brace-delimited JSON object out of the
// model's response text (first "{" through last "}", tolerating prose
// or markdown fences around it) and validates the required fields.
// Any failure here aborts the whole request; there is no fallback
// interpretation of a command the model could not parse.
func ExtractCommand(response string) (*Command, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSON
	}

	var cmd Command
	if err := json.Unmarshal([]byte(response[start:end+1]), &cmd); err != nil {
		return nil, errors.Join(ErrNoJSON, err)
	}

	if cmd.Action == "" || cmd.Item == "" || cmd.Type == "" {
		return nil, ErrMissingFields
	}

	return &cmd, nil
}
