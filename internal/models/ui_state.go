package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrUnknownTrendingPeriod = errors.New("unknown trending period")
	ErrUnknownProfileTab     = errors.New("unknown profile tab")
	ErrUnknownRepositoryTab  = errors.New("unknown repository tab")
	ErrUnknownTopic          = errors.New("unknown topic")
)

// View is the page currently shown.
type View string

const (
	ViewExplore    View = "explore"
	ViewRepository View = "repository"
)

// Navigation is the two-state view switch between explore and a repository page.
type Navigation struct {
	View         View   `json:"view"`
	SelectedRepo string `json:"selected_repo,omitempty"`
}

func DefaultNavigation() Navigation {
	return Navigation{View: ViewExplore}
}

// OpenRepository moves to the repository page of name
func (n Navigation) OpenRepository(name string) Navigation {
	return Navigation{View: ViewRepository, SelectedRepo: name}
}

// BackToExplore moves to the explore page and drops the selection
func (n Navigation) BackToExplore() Navigation {
	return DefaultNavigation()
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// TrendingPeriod selects which trending list is shown.
type TrendingPeriod string

const (
	TrendingDaily   TrendingPeriod = "daily"
	TrendingWeekly  TrendingPeriod = "weekly"
	TrendingMonthly TrendingPeriod = "monthly"
)

// TrendingPeriods lists the periods in display order
var TrendingPeriods = []TrendingPeriod{TrendingDaily, TrendingWeekly, TrendingMonthly}

func ParseTrendingPeriod(s string) (TrendingPeriod, error) {
	period := TrendingPeriod(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(TrendingPeriods, period) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTrendingPeriod, s)
	}
	return period, nil
}

// Label is the title-cased period name
func (p TrendingPeriod) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// TopicSelection is the set of selected category keys, kept in selection order.
type TopicSelection []string

// DefaultTopicSelection starts with the AI category selected
func DefaultTopicSelection() TopicSelection {
	return TopicSelection{"ai"}
}

// TopicKey is the lowercase key of a category
func TopicKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func (s TopicSelection) Contains(category string) bool {
	return slices.Contains(s, TopicKey(category))
}

// Toggle selects an unselected category or deselects a selected one
func (s TopicSelection) Toggle(category string) TopicSelection {
	key := TopicKey(category)
	if s.Contains(key) {
		return slices.DeleteFunc(slices.Clone(s), func(c string) bool { return c == key })
	}
	return append(slices.Clone(s), key)
}

func (s TopicSelection) Clear() TopicSelection {
	return TopicSelection{}
}

// SelectAll selects every category
func (s TopicSelection) SelectAll(categories []string) TopicSelection {
	selected := make(TopicSelection, 0, len(categories))
	for _, category := range categories {
		selected = append(selected, TopicKey(category))
	}
	return selected
}

func (s TopicSelection) Count() int {
	return len(s)
}

// Summary describes the selection, empty when nothing is selected
func (s TopicSelection) Summary() string {
	switch len(s) {
	case 0:
		return ""
	case 1:
		return "1 topic selected"
	default:
		return fmt.Sprintf("%d topics selected", len(s))
	}
}

// ProfileTab is a tab of the profile modal.
type ProfileTab string

const (
	ProfileTabOverview     ProfileTab = "overview"
	ProfileTabRepositories ProfileTab = "repositories"
	ProfileTabProjects     ProfileTab = "projects"
	ProfileTabPackages     ProfileTab = "packages"
	ProfileTabStars        ProfileTab = "stars"
)

var ProfileTabs = []ProfileTab{
	ProfileTabOverview,
	ProfileTabRepositories,
	ProfileTabProjects,
	ProfileTabPackages,
	ProfileTabStars,
}

func ParseProfileTab(s string) (ProfileTab, error) {
	tab := ProfileTab(strings.ToLower(s))
	if !slices.Contains(ProfileTabs, tab) {
		return "", fmt.Errorf("%w: %q", ErrUnknownProfileTab, s)
	}
	return tab, nil
}

// ProfileModal is the open/closed state of the profile modal and its active tab.
type ProfileModal struct {
	Open bool       `json:"open"`
	Tab  ProfileTab `json:"tab"`
}

func DefaultProfileModal() ProfileModal {
	return ProfileModal{Open: false, Tab: ProfileTabOverview}
}

func (m ProfileModal) Show() ProfileModal {
	m.Open = true
	return m
}

// Close hides the modal. The active tab is remembered.
func (m ProfileModal) Close() ProfileModal {
	m.Open = false
	return m
}

func (m ProfileModal) SelectTab(tab ProfileTab) ProfileModal {
	m.Tab = tab
	return m
}

// RepositoryTab is a tab of the repository page.
type RepositoryTab string

const (
	RepositoryTabCode   RepositoryTab = "code"
	RepositoryTabIssues RepositoryTab = "issues"
	RepositoryTabPulls  RepositoryTab = "pulls"
	RepositoryTabWiki   RepositoryTab = "wiki"
)

var RepositoryTabs = []RepositoryTab{
	RepositoryTabCode,
	RepositoryTabIssues,
	RepositoryTabPulls,
	RepositoryTabWiki,
}

// ParseRepositoryTab defaults to the code tab when s is empty
func ParseRepositoryTab(s string) (RepositoryTab, error) {
	if s == "" {
		return RepositoryTabCode, nil
	}
	tab := RepositoryTab(strings.ToLower(s))
	if !slices.Contains(RepositoryTabs, tab) {
		return "", fmt.Errorf("%w: %q", ErrUnknownRepositoryTab, s)
	}
	return tab, nil
}

// UIState is everything the browser session remembers between requests.
type UIState struct {
	Navigation     Navigation     `json:"navigation"`
	Theme          Theme          `json:"theme"`
	TrendingPeriod TrendingPeriod `json:"trending_period"`
	Topics         TopicSelection `json:"topics"`
	ProfileModal   ProfileModal   `json:"profile_modal"`
}

func DefaultUIState() UIState {
	return UIState{
		Navigation:     DefaultNavigation(),
		Theme:          ThemeLight,
		TrendingPeriod: TrendingDaily,
		Topics:         DefaultTopicSelection(),
		ProfileModal:   DefaultProfileModal(),
	}
}
