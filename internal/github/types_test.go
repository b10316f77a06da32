package github

import (
	"encoding/json"
	"strings"
	"testing"

	gh "github.com/google/go-github/v68/github"
)

func TestFormatRepo(t *testing.T) {
	raw := makeRepository("acme/llm-kit", 12000)
	rec := FormatRepo(raw, "")

	if rec.Name != "acme/llm-kit" {
		t.Errorf("Name = %q, want %q", rec.Name, "acme/llm-kit")
	}
	if rec.HTMLURL != "https://github.com/acme/llm-kit" {
		t.Errorf("HTMLURL = %q", rec.HTMLURL)
	}
	if rec.Description != "description of acme/llm-kit" {
		t.Errorf("Description = %q", rec.Description)
	}
	if rec.StargazersCount != 12000 {
		t.Errorf("StargazersCount = %d, want 12000", rec.StargazersCount)
	}
	if rec.ForksCount != 1200 {
		t.Errorf("ForksCount = %d, want 1200", rec.ForksCount)
	}
	if rec.Language != "Python" {
		t.Errorf("Language = %q, want Python", rec.Language)
	}
	if rec.UpdatedAt != "2024-03-10T08:30:00Z" {
		t.Errorf("UpdatedAt = %q", rec.UpdatedAt)
	}
	if rec.CreatedAt != "2023-06-01T12:00:00Z" {
		t.Errorf("CreatedAt = %q", rec.CreatedAt)
	}
	if len(rec.Topics) != 2 || rec.Topics[0] != "machine-learning" {
		t.Errorf("Topics = %v", rec.Topics)
	}
	if rec.AffiliateLink != "" {
		t.Errorf("AffiliateLink = %q, want empty", rec.AffiliateLink)
	}
}

func TestFormatRepo_MissingFields(t *testing.T) {
	rec := FormatRepo(&gh.Repository{}, "")

	if rec.Name != "" || rec.HTMLURL != "" || rec.Description != "" || rec.Language != "" {
		t.Errorf("string fields not empty: %+v", rec)
	}
	if rec.StargazersCount != 0 || rec.ForksCount != 0 {
		t.Errorf("counts not zero: %+v", rec)
	}
	if rec.UpdatedAt != "" || rec.CreatedAt != "" {
		t.Errorf("timestamps not empty: %+v", rec)
	}
	if rec.Topics == nil {
		t.Fatal("Topics is nil, want empty slice")
	}
	if len(rec.Topics) != 0 {
		t.Errorf("Topics = %v, want empty", rec.Topics)
	}
}

func TestFormatRepo_NilRepository(t *testing.T) {
	rec := FormatRepo(nil, "https://example.test/ref")
	if rec.Name != "" {
		t.Errorf("Name = %q, want empty", rec.Name)
	}
	if rec.Topics == nil {
		t.Error("Topics is nil, want empty slice")
	}
	if rec.AffiliateLink != "https://example.test/ref" {
		t.Errorf("AffiliateLink = %q", rec.AffiliateLink)
	}
}

func TestFormatRepo_AffiliateLink(t *testing.T) {
	rec := FormatRepo(makeRepository("acme/llm-kit", 100), "https://example.test/ref?id=42")
	if rec.AffiliateLink != "https://example.test/ref?id=42" {
		t.Errorf("AffiliateLink = %q", rec.AffiliateLink)
	}
}

func TestRepoJSON_TopicsNeverNull(t *testing.T) {
	rec := FormatRepo(&gh.Repository{}, "")
	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), `"topics":null`) {
		t.Errorf("topics serialized as null: %s", data)
	}
	if !strings.Contains(string(data), `"topics":[]`) {
		t.Errorf("topics missing or not empty array: %s", data)
	}
}

func TestRepoJSON_Keys(t *testing.T) {
	base := []string{
		"name", "html_url", "description", "stargazers_count", "forks_count",
		"language", "updated_at", "created_at", "topics",
	}

	check := func(t *testing.T, rec Repo, want []string) {
		t.Helper()
		data, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(m) != len(want) {
			t.Errorf("got %d keys, want %d: %s", len(m), len(want), data)
		}
		for _, k := range want {
			if _, ok := m[k]; !ok {
				t.Errorf("missing key %q in %s", k, data)
			}
		}
	}

	t.Run("without affiliate link", func(t *testing.T) {
		check(t, FormatRepo(makeRepository("a/b", 1), ""), base)
	})
	t.Run("with affiliate link", func(t *testing.T) {
		check(t, FormatRepo(makeRepository("a/b", 1), "https://example.test/ref"),
			append(base, "affiliate_link"))
	})
}
