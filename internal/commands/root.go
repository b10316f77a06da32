package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aitrends/gh-aitrends/internal/cache"
	"github.com/aitrends/gh-aitrends/internal/config"
	ghub "github.com/aitrends/gh-aitrends/internal/github"
)

// App holds shared application state.
type App struct {
	Config         config.Config
	Cache          *cache.Cache
	GHClient       ghub.Client
	Searcher       *ghub.Searcher
	AffiliateLinks map[string]string
	GitSHA         string
	GitDirty       string
}

// NewApp creates a new App from the given configuration.
func NewApp(cfg config.Config, affiliateLinks map[string]string, gitSHA, gitDirty string) (*App, error) {
	c, err := cache.LoadFromFile(cfg.CacheFile)
	if err != nil {
		return nil, fmt.Errorf("loading cache: %w", err)
	}

	return &App{
		Config:         cfg,
		Cache:          c,
		AffiliateLinks: affiliateLinks,
		GitSHA:         gitSHA,
		GitDirty:       gitDirty,
	}, nil
}

// ensureSearcher builds the searcher on first use. An empty token is
// allowed; searches then run against the far smaller unauthenticated quota.
func (a *App) ensureSearcher() *ghub.Searcher {
	if a.Searcher != nil {
		return a.Searcher
	}
	if a.GHClient == nil {
		a.GHClient = ghub.NewClient(a.Config.GitHubToken, a.Config.RequestTimeout)
	}
	a.Searcher = ghub.NewSearcher(a.GHClient, a.Cache, ghub.SearcherOptions{
		Delay:   a.Config.FetchDelay,
		NoCache: a.Config.NoCache,
		Debug:   a.Config.DebugMode,
	})
	return a.Searcher
}

// SaveCache saves the cache to disk if caching is enabled.
func (a *App) SaveCache() error {
	if !a.Config.NoCache {
		return a.Cache.SaveToFile(a.Config.CacheFile)
	}
	return nil
}

// NewRootCommand creates the root cobra command with all subcommands.
func (a *App) NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   os.Args[0],
		Short: "Collect AI/ML repository trends from GitHub into JSON snapshots.",
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVar(&a.Config.NoCache, "no-cache", false, "Disable caching")

	rootCmd.AddCommand(a.newUpdateCommand())
	rootCmd.AddCommand(a.newWatchCommand())
	rootCmd.AddCommand(a.newRateLimitCommand())
	rootCmd.AddCommand(a.newVersionCommand())
	rootCmd.AddCommand(a.newClearCacheCommand())

	return rootCmd
}
