package handlers

import (
	"net/http"

	"github.com/alimgiray/gexplore/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler the router serves.
type Handlers struct {
	UIState      *UIStateHandler
	Explore      *ExploreHandler
	Profile      *ProfileHandler
	Contribution *ContributionHandler
	Health       *HealthHandler
	NotFound     *NotFoundHandler

	// SyncEnabled gates the manual GitHub import route
	SyncEnabled bool
}

// SetupRoutes registers the JSON API on router
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/state", h.UIState.State)
		api.POST("/state/reset", h.UIState.Reset)
		api.POST("/theme/toggle", h.UIState.ToggleTheme)
		api.POST("/view/explore", h.UIState.BackToExplore)

		api.GET("/explore", h.Explore.Explore)
		api.GET("/trending", h.Explore.Trending)
		api.GET("/search", h.Explore.Search)
		api.GET("/notifications", h.Explore.Notifications)

		topics := api.Group("/topics")
		{
			topics.POST("/clear", h.UIState.ClearTopics)
			topics.POST("/select-all", h.UIState.SelectAllTopics)
			topics.POST("/:topic/toggle", h.UIState.ToggleTopic)
		}

		repos := api.Group("/repositories/:owner/:name")
		{
			repos.GET("", h.Explore.Repository)
			repos.POST("/star", h.Profile.StarRepository)
			repos.DELETE("/star", h.Profile.UnstarRepository)
		}

		api.POST("/users/:handle/follow", h.Profile.FollowUser)
		api.DELETE("/users/:handle/follow", h.Profile.UnfollowUser)

		api.GET("/settings", h.Profile.GetSettings)
		api.PATCH("/settings", h.Profile.UpdateSettings)

		profile := api.Group("/profile")
		{
			profile.GET("", h.Profile.GetProfile)
			profile.PATCH("", h.Profile.UpdateProfile)
			profile.POST("/avatar", h.Profile.RegenerateAvatar)
			profile.POST("/open", h.UIState.OpenProfile)
			profile.POST("/close", h.UIState.CloseProfile)
			profile.GET("/tabs", h.Explore.ProfileTabs)
			profile.POST("/tabs/:tab", h.UIState.SelectProfileTab)
			profile.GET("/repositories", h.Explore.ProfileRepositories)
			profile.GET("/contributions", h.Contribution.Calendar)
			profile.GET("/contributions/export", h.Contribution.Export)
		}

		api.POST("/contributions/sync",
			middleware.Require(h.SyncEnabled, http.StatusConflict, "GitHub import is not configured"),
			h.Contribution.Sync)
	}

	router.NoRoute(h.NotFound.NotFound)
}
