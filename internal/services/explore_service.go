package services

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alimgiray/gexplore/internal/models"
)

var ErrEmptySearchQuery = errors.New("search query is empty")

// ProfileLookup answers whether the user stars a repository or follows a developer.
type ProfileLookup interface {
	Profile() models.Profile
	IsStarred(repoName string) bool
	IsFollowing(handle string) bool
}

type RecommendationView struct {
	models.Recommendation
	Starred bool `json:"starred"`
}

type TrendingView struct {
	models.TrendingRepository
	Starred bool `json:"starred"`
}

type DeveloperView struct {
	models.Developer
	Following bool `json:"following"`
}

type SuggestionView struct {
	models.FollowSuggestion
	Following bool `json:"following"`
}

// ExplorePage is everything shown on the explore page.
type ExplorePage struct {
	Hero           []RecommendationView   `json:"hero"`
	Categories     []string               `json:"categories"`
	Topics         models.TopicSelection  `json:"selected_topics"`
	TopicSummary   string                 `json:"topic_summary"`
	TrendingPeriod models.TrendingPeriod  `json:"trending_period"`
	Trending       []TrendingView         `json:"trending"`
	Spotlight      []DeveloperView        `json:"spotlight"`
	TrendingTopics []models.TrendingTopic `json:"trending_topics"`
	Suggestions    []SuggestionView       `json:"suggestions"`
}

// RepositoryPage is a repository's detail page. Name is the requested repository,
// which may differ from Detail.Name when the detail fell back to the default.
type RepositoryPage struct {
	Name          string                  `json:"name"`
	Detail        models.RepositoryDetail `json:"detail"`
	Starred       bool                    `json:"starred"`
	Tab           models.RepositoryTab    `json:"tab"`
	Tabs          []models.TabCount       `json:"tabs"`
	StarsLabel    string                  `json:"stars_label"`
	ForksLabel    string                  `json:"forks_label"`
	WatchersLabel string                  `json:"watchers_label"`
}

type SearchUser struct {
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	Following bool   `json:"following"`
}

type SearchResults struct {
	Query        string         `json:"query"`
	Repositories []TrendingView `json:"repositories"`
	Users        []SearchUser   `json:"users"`
	Topics       []string       `json:"topics"`
}

// ExploreService serves the static explore catalog annotated with the user's
// stars and follows.
type ExploreService struct {
	profile ProfileLookup
}

func NewExploreService(profile ProfileLookup) *ExploreService {
	return &ExploreService{profile: profile}
}

func (s *ExploreService) Categories() []string {
	return slices.Clone(categories)
}

// ValidateTopic returns the key of a known category
func (s *ExploreService) ValidateTopic(topic string) (string, error) {
	key := models.TopicKey(topic)
	for _, category := range categories {
		if models.TopicKey(category) == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownTopic, topic)
}

func (s *ExploreService) Hero() []RecommendationView {
	views := make([]RecommendationView, 0, len(recommendations))
	for _, r := range recommendations {
		views = append(views, RecommendationView{Recommendation: r, Starred: s.profile.IsStarred(r.Name)})
	}
	return views
}

func (s *ExploreService) Trending(period models.TrendingPeriod) ([]TrendingView, error) {
	repos, ok := trendingRepositories[period]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownTrendingPeriod, period)
	}
	views := make([]TrendingView, 0, len(repos))
	for _, r := range repos {
		views = append(views, TrendingView{TrendingRepository: r, Starred: s.profile.IsStarred(r.Name)})
	}
	return views, nil
}

func (s *ExploreService) Spotlight() []DeveloperView {
	views := make([]DeveloperView, 0, len(developers))
	for _, d := range developers {
		views = append(views, DeveloperView{Developer: d, Following: s.profile.IsFollowing(d.Handle)})
	}
	return views
}

func (s *ExploreService) TrendingTopics() []models.TrendingTopic {
	return slices.Clone(trendingTopics)
}

func (s *ExploreService) Suggestions() []SuggestionView {
	views := make([]SuggestionView, 0, len(followSuggestions))
	for _, f := range followSuggestions {
		views = append(views, SuggestionView{FollowSuggestion: f, Following: s.profile.IsFollowing(f.Handle)})
	}
	return views
}

func (s *ExploreService) Notifications() []models.Notification {
	return slices.Clone(notifications)
}

// ExplorePage assembles the explore page for the session's period and topics
func (s *ExploreService) ExplorePage(period models.TrendingPeriod, topics models.TopicSelection) (*ExplorePage, error) {
	trending, err := s.Trending(period)
	if err != nil {
		return nil, err
	}

	if topics == nil {
		topics = models.TopicSelection{}
	}

	return &ExplorePage{
		Hero:           s.Hero(),
		Categories:     s.Categories(),
		Topics:         topics,
		TopicSummary:   topics.Summary(),
		TrendingPeriod: period,
		Trending:       trending,
		Spotlight:      s.Spotlight(),
		TrendingTopics: s.TrendingTopics(),
		Suggestions:    s.Suggestions(),
	}, nil
}

// Repository returns the page of name. Unknown repositories show the default
// repository's detail.
func (s *ExploreService) Repository(name string, tab models.RepositoryTab) RepositoryPage {
	detail, ok := repositoryDetails[name]
	if !ok {
		detail = repositoryDetails[defaultRepositoryName]
	}
	detail.Languages = slices.Clone(detail.Languages)
	detail.Topics = slices.Clone(detail.Topics)
	detail.Features = slices.Clone(repositoryFeatures)

	return RepositoryPage{
		Name:          name,
		Detail:        detail,
		Starred:       s.profile.IsStarred(name),
		Tab:           tab,
		Tabs:          repositoryTabs(detail),
		StarsLabel:    FormatThousands(detail.Stars, 0) + " stars",
		ForksLabel:    FormatThousands(detail.Forks, 1) + " forks",
		WatchersLabel: FormatThousands(detail.Watchers, 1) + " watching",
	}
}

func repositoryTabs(detail models.RepositoryDetail) []models.TabCount {
	issues, pulls := detail.Issues, detail.PullRequests
	return []models.TabCount{
		{ID: string(models.RepositoryTabCode), Label: "Code"},
		{ID: string(models.RepositoryTabIssues), Label: fmt.Sprintf("Issues (%d)", issues), Count: &issues},
		{ID: string(models.RepositoryTabPulls), Label: fmt.Sprintf("Pull requests (%d)", pulls), Count: &pulls},
		{ID: string(models.RepositoryTabWiki), Label: "Wiki"},
	}
}

// FormatThousands renders n in thousands with the given decimals, e.g. 28500 -> "28.5k"
func FormatThousands(n int, decimals int) string {
	return fmt.Sprintf("%.*fk", decimals, float64(n)/1000)
}

func (s *ExploreService) ProfileRepositories() []models.ProfileRepository {
	return slices.Clone(profileRepositories)
}

// ProfileTabs lists the profile modal tabs with their badge counts
func (s *ExploreService) ProfileTabs() []models.TabCount {
	profile := s.profile.Profile()
	repos := profile.PublicRepos
	projects := profileProjectsCount
	packages := profilePackagesCount
	stars := len(profile.StarredRepos)

	return []models.TabCount{
		{ID: string(models.ProfileTabOverview), Label: "Overview"},
		{ID: string(models.ProfileTabRepositories), Label: "Repositories", Count: &repos},
		{ID: string(models.ProfileTabProjects), Label: "Projects", Count: &projects},
		{ID: string(models.ProfileTabPackages), Label: "Packages", Count: &packages},
		{ID: string(models.ProfileTabStars), Label: "Stars", Count: &stars},
	}
}

// Search matches query case-insensitively against repository names and
// descriptions, developer names and handles, and topics
func (s *ExploreService) Search(query string) (*SearchResults, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, ErrEmptySearchQuery
	}

	results := &SearchResults{
		Query:        strings.TrimSpace(query),
		Repositories: []TrendingView{},
		Users:        []SearchUser{},
		Topics:       []string{},
	}

	seenRepos := make(map[string]bool)
	addRepo := func(r models.TrendingRepository) {
		if seenRepos[r.Name] || !(matches(r.Name, needle) || matches(r.Description, needle)) {
			return
		}
		seenRepos[r.Name] = true
		results.Repositories = append(results.Repositories, TrendingView{TrendingRepository: r, Starred: s.profile.IsStarred(r.Name)})
	}
	for _, r := range recommendations {
		addRepo(models.TrendingRepository{Name: r.Name, Description: r.Description, Stars: r.Stars, Language: r.Language})
	}
	for _, period := range models.TrendingPeriods {
		for _, r := range trendingRepositories[period] {
			addRepo(r)
		}
	}

	seenUsers := make(map[string]bool)
	addUser := func(name, handle string) {
		if seenUsers[handle] || !(matches(name, needle) || matches(handle, needle)) {
			return
		}
		seenUsers[handle] = true
		results.Users = append(results.Users, SearchUser{Name: name, Handle: handle, Following: s.profile.IsFollowing(handle)})
	}
	for _, d := range developers {
		addUser(d.Name, d.Handle)
	}
	for _, f := range followSuggestions {
		addUser(f.Name, f.Handle)
	}

	for _, t := range trendingTopics {
		if matches(t.Name, needle) {
			results.Topics = append(results.Topics, t.Name)
		}
	}
	for _, c := range categories {
		key := models.TopicKey(c)
		if matches(key, needle) && !slices.Contains(results.Topics, key) {
			results.Topics = append(results.Topics, key)
		}
	}

	return results, nil
}

func matches(value, needle string) bool {
	return strings.Contains(strings.ToLower(value), needle)
}
