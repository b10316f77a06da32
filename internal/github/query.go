package github

import (
	"fmt"
	"time"
)

// Thresholds and windows the report queries have always used; changing them
// changes which repositories the generated pages surface.
const (
	popularMinStars  = 5000
	trendingMinStars = 1000
	newRepoMinStars  = 50
	categoryMinStars = 1000

	popularTopic  = "machine-learning"
	trendingTopic = "ai"

	trendingWindowDays = 7
	newRepoWindowDays  = 30

	// GitHub search qualifiers take dates without a time component.
	queryDateFormat = "2006-01-02"
)

// PopularQuery matches heavily starred machine-learning repositories.
func PopularQuery() string {
	return fmt.Sprintf("stars:>%d topic:%s", popularMinStars, popularTopic)
}

// TrendingQuery matches AI repositories pushed within the last week that
// already have a substantial star count.
func TrendingQuery(now time.Time) string {
	since := now.AddDate(0, 0, -trendingWindowDays).Format(queryDateFormat)
	return fmt.Sprintf("pushed:>%s stars:>%d topic:%s", since, trendingMinStars, trendingTopic)
}

// NewReposQuery matches repositories created within the last month with a
// low star floor, so genuinely new projects can surface.
func NewReposQuery(now time.Time) string {
	since := now.AddDate(0, 0, -newRepoWindowDays).Format(queryDateFormat)
	return fmt.Sprintf("created:>%s stars:>%d", since, newRepoMinStars)
}

// CategoryQuery matches repositories for one category keyword.
func CategoryQuery(keyword string) string {
	return fmt.Sprintf("%s stars:>%d", keyword, categoryMinStars)
}
