package handlers

import (
	"net/http"

	"github.com/alimgiray/gexplore/internal/middleware"
	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/gin-gonic/gin"
)

// UIStateHandler applies the session's UI transitions.
type UIStateHandler struct {
	exploreService *services.ExploreService
}

func NewUIStateHandler(exploreService *services.ExploreService) *UIStateHandler {
	return &UIStateHandler{
		exploreService: exploreService,
	}
}

// State returns the current session UI state
func (h *UIStateHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.GetState(c))
}

// Reset drops the session cookie and returns the default state
func (h *UIStateHandler) Reset(c *gin.Context) {
	middleware.ClearSession(c)
	c.JSON(http.StatusOK, middleware.GetState(c))
}

// transition applies change to the session state, saves it and responds with it
func (h *UIStateHandler) transition(c *gin.Context, change func(models.UIState) models.UIState) {
	state := change(middleware.GetState(c))
	if !saveState(c, state) {
		return
	}
	c.JSON(http.StatusOK, state)
}

func saveState(c *gin.Context, state models.UIState) bool {
	if err := middleware.SaveState(c, state); err != nil {
		respondError(c, err, "Failed to save session")
		return false
	}
	return true
}

func (h *UIStateHandler) ToggleTheme(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.Theme = s.Theme.Toggle()
		return s
	})
}

func (h *UIStateHandler) ToggleTopic(c *gin.Context) {
	topic, err := h.exploreService.ValidateTopic(c.Param("topic"))
	if err != nil {
		respondError(c, err, "Failed to toggle topic")
		return
	}

	h.transition(c, func(s models.UIState) models.UIState {
		s.Topics = s.Topics.Toggle(topic)
		return s
	})
}

func (h *UIStateHandler) ClearTopics(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.Topics = s.Topics.Clear()
		return s
	})
}

func (h *UIStateHandler) SelectAllTopics(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.Topics = s.Topics.SelectAll(h.exploreService.Categories())
		return s
	})
}

func (h *UIStateHandler) BackToExplore(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.Navigation = s.Navigation.BackToExplore()
		return s
	})
}

func (h *UIStateHandler) OpenProfile(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.ProfileModal = s.ProfileModal.Show()
		return s
	})
}

func (h *UIStateHandler) CloseProfile(c *gin.Context) {
	h.transition(c, func(s models.UIState) models.UIState {
		s.ProfileModal = s.ProfileModal.Close()
		return s
	})
}

func (h *UIStateHandler) SelectProfileTab(c *gin.Context) {
	tab, err := models.ParseProfileTab(c.Param("tab"))
	if err != nil {
		respondError(c, err, "Failed to select tab")
		return
	}

	h.transition(c, func(s models.UIState) models.UIState {
		s.ProfileModal = s.ProfileModal.SelectTab(tab)
		return s
	})
}
