package models

import "slices"

// Profile is the signed-in user's editable profile.
type Profile struct {
	Name          string   `json:"name"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Bio           string   `json:"bio"`
	Location      string   `json:"location"`
	Website       string   `json:"website"`
	Avatar        string   `json:"avatar"`
	Company       string   `json:"company"`
	PublicRepos   int      `json:"publicRepos"`
	Followers     int      `json:"followers"`
	Following     int      `json:"following"`
	FollowedUsers []string `json:"followedUsers"`
	StarredRepos  []string `json:"starredRepos"`
}

// DefaultProfile returns the profile used before anything is saved
func DefaultProfile() Profile {
	return Profile{
		Name:          "John Doe",
		Username:      "johndoe",
		Email:         "john.doe@example.com",
		Bio:           "Full-stack developer passionate about open source",
		Location:      "San Francisco, CA",
		Website:       "https://johndoe.dev",
		Avatar:        "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=150&h=150&fit=crop",
		Company:       "Tech Corp",
		PublicRepos:   42,
		Followers:     156,
		Following:     89,
		FollowedUsers: []string{},
		StarredRepos:  []string{},
	}
}

// Clone copies the profile so its slices can be changed independently
func (p Profile) Clone() Profile {
	p.FollowedUsers = slices.Clone(p.FollowedUsers)
	p.StarredRepos = slices.Clone(p.StarredRepos)
	if p.FollowedUsers == nil {
		p.FollowedUsers = []string{}
	}
	if p.StarredRepos == nil {
		p.StarredRepos = []string{}
	}
	return p
}

func (p Profile) IsFollowing(handle string) bool {
	return slices.Contains(p.FollowedUsers, handle)
}

func (p Profile) IsStarred(repoName string) bool {
	return slices.Contains(p.StarredRepos, repoName)
}

// ProfileUpdate carries the fields of a partial profile edit. Nil fields are kept.
type ProfileUpdate struct {
	Name     *string `json:"name"`
	Username *string `json:"username" binding:"omitempty,min=1,max=39"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Website  *string `json:"website" binding:"omitempty,url"`
	Avatar   *string `json:"avatar" binding:"omitempty,url"`
	Company  *string `json:"company"`
}

// Apply returns a copy of p with the update's fields set
func (u ProfileUpdate) Apply(p Profile) Profile {
	p = p.Clone()
	setString(&p.Name, u.Name)
	setString(&p.Username, u.Username)
	setString(&p.Email, u.Email)
	setString(&p.Bio, u.Bio)
	setString(&p.Location, u.Location)
	setString(&p.Website, u.Website)
	setString(&p.Avatar, u.Avatar)
	setString(&p.Company, u.Company)
	return p
}

type ProfileVisibility string

const (
	VisibilityPublic  ProfileVisibility = "public"
	VisibilityPrivate ProfileVisibility = "private"
)

// Settings are the user's account preferences.
type Settings struct {
	EmailNotifications bool              `json:"emailNotifications"`
	PushNotifications  bool              `json:"pushNotifications"`
	ProfileVisibility  ProfileVisibility `json:"profileVisibility"`
	ShowEmail          bool              `json:"showEmail"`
	ShowLocation       bool              `json:"showLocation"`
	TwoFactorAuth      bool              `json:"twoFactorAuth"`
	Language           string            `json:"language"`
	Timezone           string            `json:"timezone"`
}

func DefaultSettings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  false,
		ProfileVisibility:  VisibilityPublic,
		ShowEmail:          false,
		ShowLocation:       true,
		TwoFactorAuth:      false,
		Language:           "English",
		Timezone:           "UTC-8 (Pacific Time)",
	}
}

// SettingsUpdate carries the fields of a partial settings edit. Nil fields are kept.
type SettingsUpdate struct {
	EmailNotifications *bool              `json:"emailNotifications"`
	PushNotifications  *bool              `json:"pushNotifications"`
	ProfileVisibility  *ProfileVisibility `json:"profileVisibility" binding:"omitempty,oneof=public private"`
	ShowEmail          *bool              `json:"showEmail"`
	ShowLocation       *bool              `json:"showLocation"`
	TwoFactorAuth      *bool              `json:"twoFactorAuth"`
	Language           *string            `json:"language" binding:"omitempty,min=1"`
	Timezone           *string            `json:"timezone" binding:"omitempty,min=1"`
}

func (u SettingsUpdate) Apply(s Settings) Settings {
	setBool(&s.EmailNotifications, u.EmailNotifications)
	setBool(&s.PushNotifications, u.PushNotifications)
	if u.ProfileVisibility != nil {
		s.ProfileVisibility = *u.ProfileVisibility
	}
	setBool(&s.ShowEmail, u.ShowEmail)
	setBool(&s.ShowLocation, u.ShowLocation)
	setBool(&s.TwoFactorAuth, u.TwoFactorAuth)
	setString(&s.Language, u.Language)
	setString(&s.Timezone, u.Timezone)
	return s
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
