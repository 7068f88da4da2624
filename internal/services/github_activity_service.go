package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/repositories"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var ErrGitHubNotConfigured = errors.New("github import is not configured")

// SyncResult describes one completed import. StoredTotal sums the whole
// contribution log afterwards.
type SyncResult struct {
	From         time.Time       `json:"from"`
	Through      time.Time       `json:"through"`
	Repositories int             `json:"repositories"`
	Commits      int             `json:"commits"`
	ActiveDays   int             `json:"active_days"`
	Coverage     models.Coverage `json:"coverage"`
	StoredTotal  int             `json:"stored_total"`
}

// NewGitHubClient creates a GitHub client authenticated with token
func NewGitHubClient(token string) *github.Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return github.NewClient(tc)
}

// GitHubActivityService imports a user's commit activity from GitHub into the
// contribution log.
type GitHubActivityService struct {
	client           *github.Client
	username         string
	repositories     []string
	contributionRepo *repositories.ContributionRepository
	store            KeyValueStore
	location         *time.Location

	mu sync.Mutex
}

func NewGitHubActivityService(
	client *github.Client,
	username string,
	repos []string,
	contributionRepo *repositories.ContributionRepository,
	store KeyValueStore,
	location *time.Location,
) *GitHubActivityService {
	if location == nil {
		location = time.Local
	}
	return &GitHubActivityService{
		client:           client,
		username:         username,
		repositories:     repos,
		contributionRepo: contributionRepo,
		store:            store,
		location:         location,
	}
}

// Sync imports the calendar window ending on today
func (s *GitHubActivityService) Sync(ctx context.Context, today time.Time) (*SyncResult, error) {
	from, through := CalendarWindow(today.In(s.location))
	return s.Import(ctx, from, through)
}

// Import replaces the stored counts for [from, through] with the user's commits
// in every configured repository. Nothing is stored unless every repository
// was read completely.
func (s *GitHubActivityService) Import(ctx context.Context, from, through time.Time) (*SyncResult, error) {
	if s.client == nil || s.username == "" || len(s.repositories) == 0 {
		return nil, ErrGitHubNotConfigured
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from = models.StartOfDay(from.In(s.location))
	through = models.StartOfDay(through.In(s.location))
	if through.Before(from) {
		return nil, fmt.Errorf("import range ends before it starts: %s..%s", models.DayKey(from), models.DayKey(through))
	}

	counts := make(map[string]int)
	commits := 0
	for _, fullName := range s.repositories {
		n, err := s.countCommits(ctx, fullName, from, through, counts)
		if err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", fullName, err)
		}
		commits += n
	}

	if err := s.contributionRepo.ReplaceRange(from, through, counts); err != nil {
		return nil, fmt.Errorf("failed to store contributions: %w", err)
	}

	coverage := models.Coverage{From: from, Through: through}
	previous, err := LoadCoverage(s.store)
	if err != nil {
		logger.WithError(err).Warn("Discarding unreadable contribution coverage")
	} else if previous != nil {
		coverage = previous.Merge(coverage)
	}
	if err := SaveCoverage(s.store, coverage); err != nil {
		return nil, fmt.Errorf("failed to record coverage: %w", err)
	}

	storedTotal, err := s.contributionRepo.Total()
	if err != nil {
		return nil, fmt.Errorf("failed to total contributions: %w", err)
	}

	result := &SyncResult{
		From:         from,
		Through:      through,
		Repositories: len(s.repositories),
		Commits:      commits,
		ActiveDays:   len(counts),
		Coverage:     coverage,
		StoredTotal:  storedTotal,
	}

	logger.WithFields(logrus.Fields{
		"user":         s.username,
		"repositories": result.Repositories,
		"commits":      result.Commits,
		"active_days":  result.ActiveDays,
		"stored_total": result.StoredTotal,
		"from":         models.DayKey(from),
		"to":           models.DayKey(through),
	}).Info("Imported GitHub activity")

	return result, nil
}

// countCommits adds the user's commits in one repository to counts, keyed by
// local calendar day
func (s *GitHubActivityService) countCommits(ctx context.Context, fullName string, from, through time.Time, counts map[string]int) (int, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return 0, fmt.Errorf("repository must be owner/name")
	}

	opts := &github.CommitsListOptions{
		Author:      s.username,
		Since:       from,
		Until:       models.StartOfDay(models.AddDays(through, 1)),
		ListOptions: github.ListOptions{PerPage: 100},
	}

	fromKey, throughKey := models.DayKey(from), models.DayKey(through)
	total := 0
	for {
		commits, resp, err := s.client.Repositories.ListCommits(ctx, owner, name, opts)
		if err != nil {
			return 0, err
		}

		for _, c := range commits {
			date := c.GetCommit().GetAuthor().GetDate()
			if date.IsZero() {
				continue
			}
			day := models.DayKey(date.In(s.location))
			if day < fromKey || day > throughKey {
				continue
			}
			counts[day]++
			total++
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return total, nil
}
