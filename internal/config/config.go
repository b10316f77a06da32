// Package config loads runtime configuration from the environment. A .env
// file is honored when present; explicit environment variables win.
package config

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	GitHubToken    string
	OutputDir      string
	RequestTimeout time.Duration
	FetchDelay     time.Duration
	CacheFile      string
	NoCache        bool
	DebugMode      bool
	Categories     []Category
}

// Category pairs a display label with the search keywords used to find
// repositories for it. Only the first keyword is queried; the rest document
// the category's intended scope.
type Category struct {
	Label    string
	Keywords []string
}

// Load reads environment variables (after an optional .env preload) and
// returns a Config populated with defaults for anything unset.
func Load() Config {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("OUTPUT_DIR", "assets")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("FETCH_DELAY", "500ms")
	viper.SetDefault("CACHE_FILE", "/tmp/gh-aitrends-cache.gob")

	cfg := Config{
		GitHubToken:    viper.GetString("GITHUB_TOKEN"),
		OutputDir:      viper.GetString("OUTPUT_DIR"),
		RequestTimeout: viper.GetDuration("REQUEST_TIMEOUT"),
		FetchDelay:     viper.GetDuration("FETCH_DELAY"),
		CacheFile:      viper.GetString("CACHE_FILE"),
		DebugMode:      viper.GetBool("DEBUG"),
		Categories:     DefaultCategories(),
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.FetchDelay < 0 {
		cfg.FetchDelay = 0
	}
	return cfg
}

// SnapshotPath returns the full path for a snapshot file name under the
// configured output directory.
func (c Config) SnapshotPath(name string) string {
	return filepath.Join(c.OutputDir, name)
}

// DefaultCategories returns the category table the orchestrator iterates.
// Labels are the Japanese headings the downstream site keys on; they must be
// written to the snapshot verbatim.
func DefaultCategories() []Category {
	return []Category{
		{Label: "LLM & 生成AI", Keywords: []string{"llm", "large language model", "gpt", "chatbot", "generative-ai"}},
		{Label: "機械学習", Keywords: []string{"machine learning", "deep learning", "tensorflow", "pytorch"}},
		{Label: "自然言語処理", Keywords: []string{"nlp", "natural language processing", "transformers", "bert"}},
		{Label: "AIツール", Keywords: []string{"ai tools", "copilot", "ai assistant", "ai agent"}},
		{Label: "データサイエンス", Keywords: []string{"data science", "jupyter", "pandas", "data analysis"}},
		{Label: "コンピュータビジョン", Keywords: []string{"computer vision", "opencv", "image recognition", "yolo"}},
		{Label: "MLOps", Keywords: []string{"mlops", "ml infrastructure", "model deployment", "mlflow"}},
	}
}
