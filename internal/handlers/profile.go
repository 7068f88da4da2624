package handlers

import (
	"net/http"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.Profile())
}

// UpdateProfile applies a partial profile edit
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(update)
	if err != nil {
		respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.profileService.Settings())
}

// UpdateSettings applies a partial settings edit
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	var update models.SettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, err.Error())
		return
	}

	settings, err := h.profileService.UpdateSettings(update)
	if err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ProfileHandler) StarRepository(c *gin.Context) {
	name := repositoryName(c)
	if _, err := h.profileService.StarRepo(name); err != nil {
		respondError(c, err, "Failed to star repository")
		return
	}
	c.JSON(http.StatusOK, gin.H{"repository": name, "starred": true})
}

func (h *ProfileHandler) UnstarRepository(c *gin.Context) {
	name := repositoryName(c)
	if _, err := h.profileService.UnstarRepo(name); err != nil {
		respondError(c, err, "Failed to unstar repository")
		return
	}
	c.JSON(http.StatusOK, gin.H{"repository": name, "starred": false})
}

func (h *ProfileHandler) FollowUser(c *gin.Context) {
	handle := c.Param("handle")
	profile, err := h.profileService.FollowUser(handle)
	if err != nil {
		respondError(c, err, "Failed to follow user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"handle": handle, "following": true, "following_count": profile.Following})
}

func (h *ProfileHandler) UnfollowUser(c *gin.Context) {
	handle := c.Param("handle")
	profile, err := h.profileService.UnfollowUser(handle)
	if err != nil {
		respondError(c, err, "Failed to unfollow user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"handle": handle, "following": false, "following_count": profile.Following})
}

// RegenerateAvatar returns a new avatar URL without saving it
func (h *ProfileHandler) RegenerateAvatar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"avatar": h.profileService.RegenerateAvatar()})
}
