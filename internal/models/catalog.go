package models

// Recommendation is a repository featured in the explore hero.
type Recommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	Tags        []string `json:"tags"`
}

// TrendingRepository is an entry of a trending list.
type TrendingRepository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language"`
	Trend       string `json:"trend"`
}

// Developer is a spotlighted developer.
type Developer struct {
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	Avatar    string `json:"avatar"`
	Location  string `json:"location"`
	Followers string `json:"followers"`
	Bio       string `json:"bio"`
}

// FollowSuggestion is a sidebar "who to follow" entry.
type FollowSuggestion struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Avatar string `json:"avatar"`
	Reason string `json:"reason"`
}

type TrendingTopic struct {
	Name  string `json:"name"`
	Repos string `json:"repos"`
}

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Age     string `json:"age"`
}

// LanguageShare is a language's percentage of a repository.
type LanguageShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

// RepositoryDetail is everything shown on a repository page.
type RepositoryDetail struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	FullDescription string          `json:"full_description"`
	Stars           int             `json:"stars"`
	Forks           int             `json:"forks"`
	Watchers        int             `json:"watchers"`
	Language        string          `json:"language"`
	Languages       []LanguageShare `json:"languages"`
	License         string          `json:"license"`
	LastUpdated     string          `json:"last_updated"`
	Size            string          `json:"size"`
	Topics          []string        `json:"topics"`
	Contributors    int             `json:"contributors"`
	Releases        int             `json:"releases"`
	Issues          int             `json:"issues"`
	PullRequests    int             `json:"pull_requests"`
	Features        []string        `json:"features"`
}

// ProfileRepository is a repository listed on the profile.
type ProfileRepository struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Updated     string `json:"updated"`
	Private     bool   `json:"private"`
}

// TabCount is a tab label with an optional badge count.
type TabCount struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count *int   `json:"count"`
}
