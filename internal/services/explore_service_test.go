package services

import (
	"testing"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExploreService(t *testing.T) (*ExploreService, *ProfileService) {
	t.Helper()
	profile := newTestProfileService(t, newMemoryStore())
	return NewExploreService(profile), profile
}

func TestExplorePage(t *testing.T) {
	explore, profile := newTestExploreService(t)
	_, err := profile.StarRepo("vercel/next.js")
	require.NoError(t, err)
	_, err = profile.FollowUser("gaearon")
	require.NoError(t, err)

	page, err := explore.ExplorePage(models.TrendingWeekly, models.DefaultTopicSelection())
	require.NoError(t, err)

	assert.Len(t, page.Hero, 3)
	assert.Len(t, page.Categories, 12)
	assert.Len(t, page.Trending, 4)
	assert.Len(t, page.Spotlight, 3)
	assert.Len(t, page.TrendingTopics, 5)
	assert.Len(t, page.Suggestions, 3)
	assert.Equal(t, "1 topic selected", page.TopicSummary)

	assert.True(t, page.Hero[1].Starred)
	assert.False(t, page.Hero[0].Starred)
	assert.Equal(t, "vercel/next.js", page.Trending[1].Name)
	assert.True(t, page.Trending[1].Starred)
	assert.True(t, page.Spotlight[1].Following)
	assert.False(t, page.Spotlight[0].Following)
}

func TestTrendingPerPeriod(t *testing.T) {
	explore, _ := newTestExploreService(t)

	daily, err := explore.Trending(models.TrendingDaily)
	require.NoError(t, err)
	assert.Equal(t, "microsoft/copilot", daily[0].Name)

	monthly, err := explore.Trending(models.TrendingMonthly)
	require.NoError(t, err)
	assert.Equal(t, "+12,345 stars this month", monthly[0].Trend)

	_, err = explore.Trending("yearly")
	assert.ErrorIs(t, err, models.ErrUnknownTrendingPeriod)
}

func TestValidateTopic(t *testing.T) {
	explore, _ := newTestExploreService(t)

	key, err := explore.ValidateTopic("Game Dev")
	require.NoError(t, err)
	assert.Equal(t, "game dev", key)

	_, err = explore.ValidateTopic("cooking")
	assert.ErrorIs(t, err, models.ErrUnknownTopic)
}

func TestRepositoryFallsBackToDefault(t *testing.T) {
	explore, profile := newTestExploreService(t)
	_, err := profile.StarRepo("someone/unknown")
	require.NoError(t, err)

	page := explore.Repository("someone/unknown", models.RepositoryTabCode)
	assert.Equal(t, "someone/unknown", page.Name)
	assert.Equal(t, "microsoft/vscode", page.Detail.Name)
	assert.True(t, page.Starred)
	assert.Len(t, page.Detail.Features, 5)
}

func TestRepositoryLabels(t *testing.T) {
	explore, _ := newTestExploreService(t)

	page := explore.Repository("microsoft/vscode", models.RepositoryTabIssues)
	assert.Equal(t, "162k stars", page.StarsLabel)
	assert.Equal(t, "28.5k forks", page.ForksLabel)
	assert.Equal(t, "3.2k watching", page.WatchersLabel)
	assert.Equal(t, models.RepositoryTabIssues, page.Tab)

	require.Len(t, page.Tabs, 4)
	assert.Equal(t, "Issues (5234)", page.Tabs[1].Label)
	assert.Equal(t, "Pull requests (234)", page.Tabs[2].Label)
	assert.Nil(t, page.Tabs[0].Count)
}

func TestRepositoryDetailIsCopied(t *testing.T) {
	explore, _ := newTestExploreService(t)

	page := explore.Repository("openai/whisper", models.RepositoryTabCode)
	page.Detail.Topics[0] = "changed"
	assert.Equal(t, "ai", explore.Repository("openai/whisper", models.RepositoryTabCode).Detail.Topics[0])
}

func TestProfileTabs(t *testing.T) {
	explore, profile := newTestExploreService(t)
	_, err := profile.StarRepo("microsoft/vscode")
	require.NoError(t, err)

	tabs := explore.ProfileTabs()
	require.Len(t, tabs, 5)
	assert.Nil(t, tabs[0].Count)
	assert.Equal(t, 42, *tabs[1].Count)
	assert.Equal(t, 8, *tabs[2].Count)
	assert.Equal(t, 3, *tabs[3].Count)
	assert.Equal(t, 1, *tabs[4].Count)
}

func TestProfileRepositories(t *testing.T) {
	explore, _ := newTestExploreService(t)

	repos := explore.ProfileRepositories()
	require.Len(t, repos, 4)
	assert.True(t, repos[2].Private)
}

func TestNotifications(t *testing.T) {
	explore, _ := newTestExploreService(t)

	first := explore.Notifications()
	require.Len(t, first, 2)
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Equal(t, first, explore.Notifications())
}

func TestSearch(t *testing.T) {
	explore, _ := newTestExploreService(t)

	results, err := explore.Search("  REACT ")
	require.NoError(t, err)
	assert.Equal(t, "REACT", results.Query)

	names := make([]string, 0, len(results.Repositories))
	for _, r := range results.Repositories {
		names = append(names, r.Name)
	}
	assert.Contains(t, names, "facebook/react")
	assert.Contains(t, names, "vercel/next.js")
	assert.Equal(t, 1, countOf(names, "vercel/next.js"))
	assert.Contains(t, results.Topics, "react")

	results, err = explore.Search("torv")
	require.NoError(t, err)
	require.Len(t, results.Users, 1)
	assert.Equal(t, "torvalds", results.Users[0].Handle)

	results, err = explore.Search("zzz-nothing")
	require.NoError(t, err)
	assert.Empty(t, results.Repositories)
	assert.Empty(t, results.Users)
	assert.Empty(t, results.Topics)

	_, err = explore.Search("   ")
	assert.ErrorIs(t, err, ErrEmptySearchQuery)
}

func countOf(values []string, target string) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}
