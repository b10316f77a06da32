package github

import (
	"encoding/gob"
	"time"

	gh "github.com/google/go-github/v68/github"
)

func init() {
	gob.Register([]Repo{})
}

// Repo is the fixed projection of a search result that ends up in snapshot
// files. Keys mirror the raw API response so downstream consumers see the
// field names they already know.
type Repo struct {
	Name            string   `json:"name"`
	HTMLURL         string   `json:"html_url"`
	Description     string   `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	ForksCount      int      `json:"forks_count"`
	Language        string   `json:"language"`
	UpdatedAt       string   `json:"updated_at"`
	CreatedAt       string   `json:"created_at"`
	Topics          []string `json:"topics"`
	AffiliateLink   string   `json:"affiliate_link,omitempty"`
}

// FormatRepo projects a raw API repository onto a Repo. Every source field
// is treated as optional: absent values become empty strings, zero counts,
// or an empty (never null) topic list. The affiliate link is included only
// when non-empty; it is omitted from JSON otherwise.
func FormatRepo(r *gh.Repository, affiliateLink string) Repo {
	rec := Repo{Topics: []string{}, AffiliateLink: affiliateLink}
	if r == nil {
		return rec
	}
	rec.Name = r.GetFullName()
	rec.HTMLURL = r.GetHTMLURL()
	rec.Description = r.GetDescription()
	rec.StargazersCount = r.GetStargazersCount()
	rec.ForksCount = r.GetForksCount()
	rec.Language = r.GetLanguage()
	if r.UpdatedAt != nil {
		rec.UpdatedAt = r.UpdatedAt.Format(time.RFC3339)
	}
	if r.CreatedAt != nil {
		rec.CreatedAt = r.CreatedAt.Format(time.RFC3339)
	}
	if len(r.Topics) > 0 {
		rec.Topics = append(rec.Topics, r.Topics...)
	}
	return rec
}
