package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
)

// mockClient implements Client for testing.
type mockClient struct {
	searchRepositoriesFn func(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
	rateLimitsFn         func(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
}

func (m *mockClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	return m.searchRepositoriesFn(ctx, query, opts)
}

func (m *mockClient) RateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error) {
	return m.rateLimitsFn(ctx)
}

// okResponse returns a *gh.Response with plenty of rate limit remaining.
func okResponse() *gh.Response {
	return &gh.Response{
		Response: &http.Response{StatusCode: http.StatusOK},
		Rate:     gh.Rate{Limit: 30, Remaining: 28},
	}
}

// makeRepository builds a raw search item with the fields the formatter
// projects.
func makeRepository(fullName string, stars int) *gh.Repository {
	created := gh.Timestamp{Time: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
	updated := gh.Timestamp{Time: time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)}
	return &gh.Repository{
		FullName:        gh.Ptr(fullName),
		HTMLURL:         gh.Ptr("https://github.com/" + fullName),
		Description:     gh.Ptr("description of " + fullName),
		StargazersCount: gh.Ptr(stars),
		ForksCount:      gh.Ptr(stars / 10),
		Language:        gh.Ptr("Python"),
		CreatedAt:       &created,
		UpdatedAt:       &updated,
		Topics:          []string{"machine-learning", "ai"},
	}
}

// searchResult wraps repositories the way the API returns them.
func searchResult(repos ...*gh.Repository) *gh.RepositoriesSearchResult {
	return &gh.RepositoriesSearchResult{
		Total:        gh.Ptr(len(repos)),
		Repositories: repos,
	}
}
