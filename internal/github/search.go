package github

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	gh "github.com/google/go-github/v68/github"
	"golang.org/x/time/rate"

	"github.com/aitrends/gh-aitrends/internal/cache"
)

// ErrRateLimited marks a search refused because the GitHub rate limit was
// exhausted (HTTP 403). Callers check it with errors.Is and abort instead of
// mistaking the failure for an empty result set.
var ErrRateLimited = errors.New("github: rate limited")

// lowRateRemaining is the remaining-call count below which a warning is
// logged after each request.
const lowRateRemaining = 10

// Searcher issues repository searches with request spacing, failure
// classification, and a query-keyed result cache.
type Searcher struct {
	client  Client
	cache   *cache.Cache
	limiter *rate.Limiter
	noCache bool
	debug   bool
}

// SearcherOptions configures a Searcher.
type SearcherOptions struct {
	// Delay is the minimum spacing between consecutive API requests.
	Delay   time.Duration
	NoCache bool
	Debug   bool
}

// NewSearcher creates a Searcher on top of the given client and cache.
func NewSearcher(client Client, c *cache.Cache, opts SearcherOptions) *Searcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Delay > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Delay), 1)
	}
	return &Searcher{
		client:  client,
		cache:   c,
		limiter: limiter,
		noCache: opts.NoCache,
		debug:   opts.Debug,
	}
}

// Search runs one repository search (first page only) and returns the
// formatted records. An empty slice with a nil error is a legitimately empty
// result; a non-nil error is either ErrRateLimited or a transient failure.
func (s *Searcher) Search(ctx context.Context, query, sort string, perPage int) ([]Repo, error) {
	cacheKey := fmt.Sprintf("search:%s:%s:%d", query, sort, perPage)
	if !s.noCache {
		if val, found := s.cache.Get(cacheKey); found {
			if s.debug {
				log.Printf("Cache hit for key: %s", cacheKey)
			}
			// Callers may decorate the returned records, so hand out a
			// copy and keep the cached ones clean.
			if repos, ok := val.([]Repo); ok {
				return append([]Repo(nil), repos...), nil
			}
		}
		if s.debug {
			log.Printf("Cache miss for key: %s", cacheKey)
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	opts := &gh.SearchOptions{
		Sort:        sort,
		Order:       "desc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	result, resp, err := s.client.SearchRepositories(ctx, query, opts)
	if resp != nil && resp.Rate.Limit > 0 && resp.Rate.Remaining < lowRateRemaining {
		log.Printf("WARNING: only %d API calls remaining until %s",
			resp.Rate.Remaining, resp.Rate.Reset.Format(time.RFC3339))
	}
	if err != nil {
		return nil, classifySearchError(err)
	}

	repos := make([]Repo, 0, len(result.Repositories))
	for _, r := range result.Repositories {
		repos = append(repos, FormatRepo(r, ""))
	}

	if !s.noCache {
		s.cache.Set(cacheKey, append([]Repo(nil), repos...))
	}
	return repos, nil
}

// classifySearchError maps go-github errors onto the fetcher's taxonomy:
// anything the API refused with 403 becomes ErrRateLimited, everything else
// stays a transient failure.
func classifySearchError(err error) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: %s (resets %s)", ErrRateLimited,
			rateErr.Message, rateErr.Rate.Reset.Format(time.RFC3339))
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("%w: %s", ErrRateLimited, abuseErr.Message)
	}
	var apiErr *gh.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil && apiErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	}
	return fmt.Errorf("searching repositories: %w", err)
}

// RateLimitStatus returns the account-wide core rate limit. Purely
// observational; the update pipeline prints it before fetching anything.
func (s *Searcher) RateLimitStatus(ctx context.Context) (*gh.Rate, error) {
	limits, _, err := s.client.RateLimits(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking rate limit: %w", err)
	}
	core := limits.GetCore()
	if core == nil {
		return nil, errors.New("checking rate limit: response missing core quota")
	}
	return core, nil
}
