package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()

	assert.Equal(t, "johndoe", profile.Username)
	assert.Equal(t, 42, profile.PublicRepos)
	assert.Equal(t, 156, profile.Followers)
	assert.Equal(t, 89, profile.Following)
	assert.NotNil(t, profile.FollowedUsers)
	assert.NotNil(t, profile.StarredRepos)
}

func TestProfileCloneIsIndependent(t *testing.T) {
	profile := DefaultProfile()
	profile.StarredRepos = append(profile.StarredRepos, "facebook/react")

	clone := profile.Clone()
	clone.StarredRepos[0] = "vitejs/vite"

	assert.Equal(t, "facebook/react", profile.StarredRepos[0])
	assert.True(t, profile.IsStarred("facebook/react"))
	assert.False(t, profile.IsFollowing("torvalds"))

	var empty Profile
	assert.NotNil(t, empty.Clone().FollowedUsers)
}

func TestProfileUpdateApply(t *testing.T) {
	name := "Jane Doe"
	bio := ""
	update := ProfileUpdate{Name: &name, Bio: &bio}

	updated := update.Apply(DefaultProfile())

	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Empty(t, updated.Bio)
	assert.Equal(t, "johndoe", updated.Username)
	assert.Equal(t, "Tech Corp", updated.Company)
}

func TestSettingsUpdateApply(t *testing.T) {
	push := true
	visibility := VisibilityPrivate
	update := SettingsUpdate{PushNotifications: &push, ProfileVisibility: &visibility}

	updated := update.Apply(DefaultSettings())

	assert.True(t, updated.PushNotifications)
	assert.Equal(t, VisibilityPrivate, updated.ProfileVisibility)
	assert.True(t, updated.EmailNotifications)
	assert.Equal(t, "English", updated.Language)
}
