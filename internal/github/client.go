package github

import (
	"context"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Client defines the GitHub API methods used by this application.
type Client interface {
	SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error)
	RateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
}

// realClient wraps the go-github client to implement Client.
type realClient struct {
	inner *gh.Client
}

// NewClient creates a GitHub API client. A non-empty token authenticates
// requests through an oauth2 static token source; an empty token leaves them
// anonymous, subject to the much stricter unauthenticated rate limits. The
// timeout applies to every request regardless of auth mode.
func NewClient(token string, timeout time.Duration) Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Timeout = timeout
	return &realClient{inner: gh.NewClient(httpClient)}
}

func (c *realClient) SearchRepositories(ctx context.Context, query string, opts *gh.SearchOptions) (*gh.RepositoriesSearchResult, *gh.Response, error) {
	return c.inner.Search.Repositories(ctx, query, opts)
}

func (c *realClient) RateLimits(ctx context.Context) (*gh.RateLimits, *gh.Response, error) {
	return c.inner.RateLimit.Get(ctx)
}
