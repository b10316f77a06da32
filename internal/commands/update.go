package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"

	ghub "github.com/aitrends/gh-aitrends/internal/github"
	"github.com/aitrends/gh-aitrends/internal/snapshot"
)

// Page sizes per snapshot. The site shows a fixed number of entries per
// section, so one search page is enough for each.
const (
	popularPerPage  = 50
	trendingPerPage = 50
	newRepoPerPage  = 50
	categoryPerPage = 20

	sortByStars = "stars"
)

func (a *App) newUpdateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Fetch repository data and write the snapshot files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.RunUpdate(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

// RunUpdate fetches every report and writes the snapshot files the site
// serves. A transient fetch failure degrades that report to an empty
// snapshot so the site never sees a missing file; a rate-limited response
// or a canceled run aborts, leaving already-written snapshots in place.
// A failed write also aborts: continuing would publish a partial data set.
func (a *App) RunUpdate(ctx context.Context, w io.Writer) error {
	s := a.ensureSearcher()
	now := time.Now().UTC()
	// One timestamp for the whole run; all four snapshots report the same
	// updated_at.
	updatedAt := now.Format(time.RFC3339)

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "GitHub AI Trends Update")
	fmt.Fprintf(w, "Timestamp: %s\n", now.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if a.Config.GitHubToken == "" {
		fmt.Fprintln(w, "Warning: GITHUB_TOKEN is not set; searches run against the unauthenticated rate limit")
	}

	if core, err := s.RateLimitStatus(ctx); err != nil {
		log.Printf("rate limit check failed: %v", err)
	} else {
		fmt.Fprintf(w, "Rate limit: %d/%d remaining (resets %s)\n",
			core.Remaining, core.Limit, core.Reset.Format(time.RFC3339))
	}

	fmt.Fprintln(w, "\nFetching popular repositories (LLM/AI/ML/NLP focus)...")
	popularCount, err := a.writeListSnapshot(ctx, s, w, snapshot.PopularFile,
		ghub.PopularQuery(), popularPerPage,
		"Popular repositories with LLM/AI/ML/NLP focus", updatedAt)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFetching trending repositories (last 7 days)...")
	trendingCount, err := a.writeListSnapshot(ctx, s, w, snapshot.TrendingFile,
		ghub.TrendingQuery(now), trendingPerPage,
		"Trending repositories in the last 7 days", updatedAt)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFetching new repositories (last 30 days, AI/ML focus)...")
	newCount, err := a.writeListSnapshot(ctx, s, w, snapshot.NewReposFile,
		ghub.NewReposQuery(now), newRepoPerPage,
		"Recently created repositories (last 30 days)", updatedAt)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFetching repositories by category...")
	categoryCount, err := a.writeCategoriesSnapshot(ctx, s, w, updatedAt)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "Update completed")
	fmt.Fprintf(w, "  Popular:    %d\n", popularCount)
	fmt.Fprintf(w, "  Trending:   %d\n", trendingCount)
	fmt.Fprintf(w, "  New:        %d\n", newCount)
	fmt.Fprintf(w, "  Categories: %d repositories in %d groups\n", categoryCount, len(a.Config.Categories))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	return nil
}

// writeListSnapshot runs one search and writes the resulting list snapshot.
// Transient search failures are logged and produce an empty snapshot; rate
// limiting or a canceled run aborts, as does a failed write.
func (a *App) writeListSnapshot(ctx context.Context, s *ghub.Searcher, w io.Writer, file, query string, perPage int, description, updatedAt string) (int, error) {
	repos, err := s.Search(ctx, query, sortByStars, perPage)
	if err != nil {
		if errors.Is(err, ghub.ErrRateLimited) || ctx.Err() != nil {
			return 0, fmt.Errorf("update aborted: %w", err)
		}
		log.Printf("fetch for %s failed, writing empty snapshot: %v", file, err)
		repos = []ghub.Repo{}
	}
	a.attachAffiliateLinks(repos)

	meta := snapshot.DefaultMetadata()
	meta.UpdatedAt = updatedAt
	meta.Description = description
	path := a.Config.SnapshotPath(file)
	if err := snapshot.WriteList(path, repos, meta); err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "Saved: %s (%d repositories)\n", path, len(repos))
	return len(repos), nil
}

// writeCategoriesSnapshot searches the first keyword of every configured
// category and writes the grouped snapshot. Every label ends up in the
// document, with an empty list when its search failed or found nothing.
func (a *App) writeCategoriesSnapshot(ctx context.Context, s *ghub.Searcher, w io.Writer, updatedAt string) (int, error) {
	groups := make(map[string][]ghub.Repo, len(a.Config.Categories))
	labels := make([]string, 0, len(a.Config.Categories))
	total := 0

	for _, cat := range a.Config.Categories {
		labels = append(labels, cat.Label)
		fmt.Fprintf(w, "  - %s\n", cat.Label)

		var repos []ghub.Repo
		if len(cat.Keywords) > 0 {
			var err error
			repos, err = s.Search(ctx, ghub.CategoryQuery(cat.Keywords[0]), sortByStars, categoryPerPage)
			if err != nil {
				if errors.Is(err, ghub.ErrRateLimited) || ctx.Err() != nil {
					return 0, fmt.Errorf("update aborted: %w", err)
				}
				log.Printf("fetch for category %q failed, keeping it empty: %v", cat.Label, err)
				repos = nil
			}
		}
		a.attachAffiliateLinks(repos)
		groups[cat.Label] = repos
		total += len(repos)
	}

	meta := snapshot.DefaultMetadata()
	meta.UpdatedAt = updatedAt
	meta.Description = "Repositories organized by AI/ML categories"
	meta.Categories = labels
	path := a.Config.SnapshotPath(snapshot.CategoriesFile)
	if err := snapshot.WriteGrouped(path, groups, meta); err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "Saved: %s (%d repositories)\n", path, total)
	return total, nil
}

// attachAffiliateLinks decorates repositories that have a configured
// affiliate link. Everything else is left untouched.
func (a *App) attachAffiliateLinks(repos []ghub.Repo) {
	if len(a.AffiliateLinks) == 0 {
		return
	}
	for i := range repos {
		if link, ok := a.AffiliateLinks[repos[i].Name]; ok {
			repos[i].AffiliateLink = link
		}
	}
}
