package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// JSON export of one request/response pair. Single file, human-readable.
// Nothing reads it back at runtime; it is for the user.

const defaultFileName = "smarthire-results.json"

// Export is the file layout written by Save.
type Export struct {
	Action   string          `json:"action"`
	BaseURL  string          `json:"base_url,omitempty"`
	SavedAt  time.Time       `json:"saved_at"`
	Request  json.RawMessage `json:"request"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// NewExport captures req and either resp or reqErr.
func NewExport(action, baseURL string, req, resp any, reqErr error) (Export, error) {
	e := Export{Action: action, BaseURL: baseURL, SavedAt: time.Now().UTC()}
	b, err := json.Marshal(req)
	if err != nil {
		return Export{}, fmt.Errorf("json marshal request: %w", err)
	}
	e.Request = b
	if reqErr != nil {
		e.Error = reqErr.Error()
		return e, nil
	}
	if b, err = json.Marshal(resp); err != nil {
		return Export{}, fmt.Errorf("json marshal response: %w", err)
	}
	e.Response = b
	return e, nil
}

func dataPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, defaultFileName), nil
}

// Save writes e to path ("" means ./smarthire-results.json) and returns the
// path used.
func Save(path string, e Export) (string, error) {
	p, err := dataPath(path)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("mkdir: %w", err)
		}
	}
	b, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return p, nil
}

func Load(path string) (Export, error) {
	p, err := dataPath(path)
	if err != nil {
		return Export{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Export{}, fmt.Errorf("read file: %w", err)
	}
	var e Export
	if err := json.Unmarshal(b, &e); err != nil {
		return Export{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return e, nil
}
