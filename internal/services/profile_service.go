package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/pkg/logger"
)

const (
	profileKey  = "userProfile"
	settingsKey = "userSettings"

	maxBioLength = 160
)

var (
	ErrInvalidProfile  = errors.New("invalid profile")
	ErrInvalidSettings = errors.New("invalid settings")
)

// KeyValueStore persists opaque values across restarts.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// ProfileService holds the profile and settings in memory. They are loaded
// once at startup and written back on every change.
type ProfileService struct {
	store    KeyValueStore
	mu       sync.RWMutex
	profile  models.Profile
	settings models.Settings
}

func NewProfileService(store KeyValueStore) (*ProfileService, error) {
	s := &ProfileService{store: store}

	rawProfile, ok, err := store.Get(profileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	s.profile = models.DefaultProfile()
	if ok {
		s.profile = parseProfile(rawProfile)
	}

	rawSettings, ok, err := store.Get(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s.settings = models.DefaultSettings()
	if ok {
		s.settings = parseSettings(rawSettings)
	}

	return s, nil
}

// parseProfile merges a saved profile over the defaults. Malformed JSON yields
// the defaults and list fields that are not arrays become empty lists.
func parseProfile(raw string) models.Profile {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		logger.WithError(err).Error("Error parsing saved profile")
		return models.DefaultProfile()
	}

	for _, key := range []string{"followedUsers", "starredRepos"} {
		if value, ok := fields[key]; ok && !isJSONArray(value) {
			delete(fields, key)
		}
	}

	normalized, err := json.Marshal(fields)
	if err != nil {
		logger.WithError(err).Error("Error normalizing saved profile")
		return models.DefaultProfile()
	}

	profile := models.DefaultProfile()
	if err := json.Unmarshal(normalized, &profile); err != nil {
		logger.WithError(err).Error("Error parsing saved profile")
		return models.DefaultProfile()
	}

	return profile.Clone()
}

func parseSettings(raw string) models.Settings {
	settings := models.DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		logger.WithError(err).Error("Error parsing saved settings")
		return models.DefaultSettings()
	}

	if settings.ProfileVisibility != models.VisibilityPublic && settings.ProfileVisibility != models.VisibilityPrivate {
		settings.ProfileVisibility = models.VisibilityPublic
	}

	return settings
}

func isJSONArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func (s *ProfileService) Profile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

func (s *ProfileService) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateProfile applies a partial edit and saves it
func (s *ProfileService) UpdateProfile(update models.ProfileUpdate) (models.Profile, error) {
	return s.changeProfile(func(p models.Profile) (models.Profile, error) {
		next := update.Apply(p)
		if err := validateProfile(next); err != nil {
			return p, err
		}
		return next, nil
	})
}

// UpdateSettings applies a partial edit and saves it
func (s *ProfileService) UpdateSettings(update models.SettingsUpdate) (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := update.Apply(s.settings)
	if next.ProfileVisibility != models.VisibilityPublic && next.ProfileVisibility != models.VisibilityPrivate {
		return models.Settings{}, fmt.Errorf("%w: visibility must be public or private", ErrInvalidSettings)
	}
	if strings.TrimSpace(next.Language) == "" || strings.TrimSpace(next.Timezone) == "" {
		return models.Settings{}, fmt.Errorf("%w: language and timezone are required", ErrInvalidSettings)
	}

	if err := s.save(settingsKey, next); err != nil {
		return models.Settings{}, err
	}
	s.settings = next
	return next, nil
}

func validateProfile(p models.Profile) error {
	if strings.TrimSpace(p.Username) == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidProfile)
	}
	if utf8.RuneCountInString(p.Bio) > maxBioLength {
		return fmt.Errorf("%w: bio must be at most %d characters", ErrInvalidProfile, maxBioLength)
	}
	return nil
}

// FollowUser adds handle to the followed users. Following twice is a no-op.
func (s *ProfileService) FollowUser(handle string) (models.Profile, error) {
	return s.changeProfile(func(p models.Profile) (models.Profile, error) {
		if handle == "" {
			return p, fmt.Errorf("%w: handle is required", ErrInvalidProfile)
		}
		if p.IsFollowing(handle) {
			return p, nil
		}
		p.FollowedUsers = append(p.FollowedUsers, handle)
		p.Following++
		return p, nil
	})
}

// UnfollowUser removes handle from the followed users. The following counter
// never drops below zero.
func (s *ProfileService) UnfollowUser(handle string) (models.Profile, error) {
	return s.changeProfile(func(p models.Profile) (models.Profile, error) {
		if !p.IsFollowing(handle) {
			return p, nil
		}
		p.FollowedUsers = removeString(p.FollowedUsers, handle)
		p.Following = max(0, p.Following-1)
		return p, nil
	})
}

// ToggleFollow follows or unfollows handle and reports whether it is now followed
func (s *ProfileService) ToggleFollow(handle string) (bool, error) {
	if s.IsFollowing(handle) {
		_, err := s.UnfollowUser(handle)
		return false, err
	}
	_, err := s.FollowUser(handle)
	return err == nil, err
}

func (s *ProfileService) IsFollowing(handle string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.IsFollowing(handle)
}

// StarRepo adds repoName to the starred repositories. Starring twice is a no-op.
func (s *ProfileService) StarRepo(repoName string) (models.Profile, error) {
	return s.changeProfile(func(p models.Profile) (models.Profile, error) {
		if repoName == "" {
			return p, fmt.Errorf("%w: repository name is required", ErrInvalidProfile)
		}
		if p.IsStarred(repoName) {
			return p, nil
		}
		p.StarredRepos = append(p.StarredRepos, repoName)
		return p, nil
	})
}

func (s *ProfileService) UnstarRepo(repoName string) (models.Profile, error) {
	return s.changeProfile(func(p models.Profile) (models.Profile, error) {
		p.StarredRepos = removeString(p.StarredRepos, repoName)
		return p, nil
	})
}

// ToggleStar stars or unstars repoName and reports whether it is now starred
func (s *ProfileService) ToggleStar(repoName string) (bool, error) {
	if s.IsStarred(repoName) {
		_, err := s.UnstarRepo(repoName)
		return false, err
	}
	_, err := s.StarRepo(repoName)
	return err == nil, err
}

func (s *ProfileService) IsStarred(repoName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.IsStarred(repoName)
}

// RegenerateAvatar returns a new random avatar URL. It is not saved.
func (s *ProfileService) RegenerateAvatar() string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		rand.IntN(1000000), rand.IntN(1000000))
}

// changeProfile runs change on a copy and keeps the result only once it is saved
func (s *ProfileService) changeProfile(change func(models.Profile) (models.Profile, error)) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := change(s.profile.Clone())
	if err != nil {
		return models.Profile{}, err
	}

	if err := s.save(profileKey, next); err != nil {
		return models.Profile{}, err
	}
	s.profile = next
	return next.Clone(), nil
}

func (s *ProfileService) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.store.Set(key, string(data)); err != nil {
		logger.WithError(err).WithField("key", key).Error("Failed to save")
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func removeString(values []string, target string) []string {
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if value != target {
			kept = append(kept, value)
		}
	}
	return kept
}
