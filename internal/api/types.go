package api

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// BugSummary is the subset of /api/bug/{id}.json the form copies from a
// blocking bug. Missing and null fields both decode to nil.
type BugSummary struct {
	Product   *string `json:"product"`
	Component *string `json:"component"`
	Version   *string `json:"version"`
}

// BugDraft is the payload of a new bug submitted from the form.
type BugDraft struct {
	Summary     string   `json:"summary"`
	Description string   `json:"description,omitempty"`
	Product     string   `json:"product,omitempty"`
	Component   string   `json:"component,omitempty"`
	Version     string   `json:"version,omitempty"`
	Blocks      []string `json:"blocks,omitempty"`
}

// BugID accepts both numeric and string identifiers from the server.
type BugID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *BugID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = BugID(s)
		return nil
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil {
		return fmt.Errorf("bug id: unexpected %s", raw)
	}
	*id = BugID(raw)
	return nil
}

// CreatedBug is the server's reply to a create.
type CreatedBug struct {
	ID  BugID  `json:"id"`
	URL string `json:"url,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
