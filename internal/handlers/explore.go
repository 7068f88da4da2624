package handlers

import (
	"net/http"

	"github.com/alimgiray/gexplore/internal/middleware"
	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/gin-gonic/gin"
)

type ExploreHandler struct {
	exploreService *services.ExploreService
}

func NewExploreHandler(exploreService *services.ExploreService) *ExploreHandler {
	return &ExploreHandler{
		exploreService: exploreService,
	}
}

// Explore returns the explore page for the session's trending period and topics
func (h *ExploreHandler) Explore(c *gin.Context) {
	state := middleware.GetState(c)

	page, err := h.exploreService.ExplorePage(state.TrendingPeriod, state.Topics)
	if err != nil {
		respondError(c, err, "Failed to load explore page")
		return
	}

	c.JSON(http.StatusOK, page)
}

// Trending returns a trending list. A period in the query becomes the
// session's period.
func (h *ExploreHandler) Trending(c *gin.Context) {
	state := middleware.GetState(c)

	if raw, ok := c.GetQuery("period"); ok {
		period, err := models.ParseTrendingPeriod(raw)
		if err != nil {
			respondError(c, err, "Failed to load trending repositories")
			return
		}
		if period != state.TrendingPeriod {
			state.TrendingPeriod = period
			if !saveState(c, state) {
				return
			}
		}
	}

	repos, err := h.exploreService.Trending(state.TrendingPeriod)
	if err != nil {
		respondError(c, err, "Failed to load trending repositories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":       state.TrendingPeriod,
		"label":        state.TrendingPeriod.Label(),
		"repositories": repos,
	})
}

func (h *ExploreHandler) Search(c *gin.Context) {
	results, err := h.exploreService.Search(c.Query("q"))
	if err != nil {
		respondError(c, err, "Failed to search")
		return
	}

	c.JSON(http.StatusOK, results)
}

func (h *ExploreHandler) Notifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.exploreService.Notifications()})
}

// Repository returns a repository page and makes it the session's current view
func (h *ExploreHandler) Repository(c *gin.Context) {
	name := repositoryName(c)

	tab, err := models.ParseRepositoryTab(c.Query("tab"))
	if err != nil {
		respondError(c, err, "Failed to load repository")
		return
	}

	state := middleware.GetState(c)
	if state.Navigation.View != models.ViewRepository || state.Navigation.SelectedRepo != name {
		state.Navigation = state.Navigation.OpenRepository(name)
		if !saveState(c, state) {
			return
		}
	}

	c.JSON(http.StatusOK, h.exploreService.Repository(name, tab))
}

func (h *ExploreHandler) ProfileTabs(c *gin.Context) {
	state := middleware.GetState(c)
	c.JSON(http.StatusOK, gin.H{
		"active": state.ProfileModal.Tab,
		"tabs":   h.exploreService.ProfileTabs(),
	})
}

func (h *ExploreHandler) ProfileRepositories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"repositories": h.exploreService.ProfileRepositories()})
}

// repositoryName joins the owner and name path parameters
func repositoryName(c *gin.Context) string {
	return c.Param("owner") + "/" + c.Param("name")
}
