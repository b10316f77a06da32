// Package snapshot writes the JSON documents the static site reads. Each
// document wraps the repository payload in an envelope with provenance
// metadata so the site can show when and how the data was produced.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aitrends/gh-aitrends/internal/github"
)

// File names of the snapshots the update pipeline produces.
const (
	PopularFile    = "popular.json"
	TrendingFile   = "trending.json"
	NewReposFile   = "new.json"
	CategoriesFile = "categories.json"
)

const (
	sourceName   = "GitHub API"
	searchAPIURL = "https://api.github.com/search/repositories"
)

// Files lists every snapshot the pipeline writes, in the order they are
// produced.
func Files() []string {
	return []string{PopularFile, TrendingFile, NewReposFile, CategoriesFile}
}

// Metadata describes the provenance of a snapshot. Count is always
// recomputed from the payload at write time.
type Metadata struct {
	UpdatedAt   string   `json:"updated_at"`
	Source      string   `json:"source"`
	APIURL      string   `json:"api_url"`
	Description string   `json:"description,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Count       int      `json:"count"`
}

// DefaultMetadata returns metadata naming the search API as the source.
// UpdatedAt and Count are stamped when the snapshot is written.
func DefaultMetadata() *Metadata {
	return &Metadata{
		Source: sourceName,
		APIURL: searchAPIURL,
	}
}

// envelope is the on-disk document shape.
type envelope struct {
	Metadata Metadata `json:"metadata"`
	// Repositories is either a []github.Repo or a map[string][]github.Repo.
	Repositories any `json:"repositories"`
}

// WriteList writes a snapshot whose payload is a flat repository list. A nil
// list is written as an empty array, never as null.
func WriteList(path string, repos []github.Repo, meta *Metadata) error {
	if repos == nil {
		repos = []github.Repo{}
	}
	return write(path, repos, meta, len(repos))
}

// WriteGrouped writes a snapshot whose payload maps group labels to
// repository lists. Labels with no results keep an empty array so the site
// can render every group.
func WriteGrouped(path string, groups map[string][]github.Repo, meta *Metadata) error {
	normalized := make(map[string][]github.Repo, len(groups))
	count := 0
	for label, repos := range groups {
		if repos == nil {
			repos = []github.Repo{}
		}
		normalized[label] = repos
		count += len(repos)
	}
	return write(path, normalized, meta, count)
}

func write(path string, repositories any, meta *Metadata, count int) error {
	m := Metadata{}
	if meta != nil {
		m = *meta
	}
	if m.UpdatedAt == "" {
		m.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if m.Source == "" {
		m.Source = sourceName
	}
	if m.APIURL == "" {
		m.APIURL = searchAPIURL
	}
	m.Count = count

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// The site serves these files verbatim; keep URLs and Japanese labels
	// readable instead of \u-escaping them.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(envelope{Metadata: m, Repositories: repositories}); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}
