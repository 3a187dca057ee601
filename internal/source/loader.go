// Package source fetches raw exercise records for a topic and level, either
// from a local data directory or over HTTP from the site that hosts the
// quiz data. The payload is schema-checked before normalization; a bad
// payload is a load error for the whole file, never a crash.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// LoadError wraps any failure to fetch or decode an exercise file. It marks
// the whole source as unusable; no session is built from a partial read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Key derives the score-store key for a topic and level.
func Key(topic, level string) string {
	return strings.ToLower(topic) + "_" + strings.ToLower(level)
}

// Path returns the relative data path for a topic and level.
func Path(topic, level string) string {
	return path.Join(strings.ToLower(topic), strings.ToLower(level)+".json")
}

// Loader reads one JSON array of raw records per topic/level pair.
type Loader struct {
	fsys    fs.FS
	baseURL string
	client  *http.Client
}

// NewFS creates a Loader over a local data tree (the directory that holds
// <topic>/<level>.json files).
func NewFS(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// NewHTTP creates a Loader that fetches from baseURL + "/<topic>/<level>.json".
// A nil client falls back to http.DefaultClient.
func NewHTTP(baseURL string, client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Records loads and validates the raw records for a topic and level.
// All failures come back as *LoadError.
func (l *Loader) Records(ctx context.Context, topic, level string) ([]map[string]any, error) {
	rel := Path(topic, level)

	var data []byte
	var err error
	if l.fsys != nil {
		data, err = fs.ReadFile(l.fsys, rel)
	} else {
		data, err = l.fetch(ctx, rel)
	}
	if err != nil {
		return nil, &LoadError{Path: rel, Err: err}
	}

	records, err := Decode(data)
	if err != nil {
		return nil, &LoadError{Path: rel, Err: err}
	}
	return records, nil
}

func (l *Loader) fetch(ctx context.Context, rel string) ([]byte, error) {
	url := l.baseURL + "/" + rel
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Decode parses a raw payload into records, enforcing the source schema
// (a JSON array of objects).
func Decode(data []byte) ([]map[string]any, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := validateRecords(parsed); err != nil {
		return nil, err
	}

	items := parsed.([]any)
	records := make([]map[string]any, 0, len(items))
	for _, item := range items {
		records = append(records, item.(map[string]any))
	}
	return records, nil
}
