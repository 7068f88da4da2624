package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/services"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// ActivitySyncer imports contribution activity for the window ending on today.
type ActivitySyncer interface {
	Sync(ctx context.Context, today time.Time) (*services.SyncResult, error)
}

type ContributionHandler struct {
	contributionService *services.ContributionService
	syncer              ActivitySyncer
	location            *time.Location
	now                 func() time.Time
}

// NewContributionHandler serves calendars in location. syncer may be nil when
// no import is configured.
func NewContributionHandler(contributionService *services.ContributionService, syncer ActivitySyncer, location *time.Location) *ContributionHandler {
	if location == nil {
		location = time.Local
	}
	return &ContributionHandler{
		contributionService: contributionService,
		syncer:              syncer,
		location:            location,
		now:                 time.Now,
	}
}

type calendarDay struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Weekday int    `json:"weekday"`
	Tier    string `json:"tier"`
}

type calendarResponse struct {
	From    string              `json:"from"`
	Through string              `json:"through"`
	Total   int                 `json:"total"`
	Summary string              `json:"summary"`
	Months  []models.MonthLabel `json:"months"`
	Weeks   [][]*calendarDay    `json:"weeks"`
}

func newCalendarResponse(calendar *models.ContributionCalendar) calendarResponse {
	weeks := make([][]*calendarDay, 0, len(calendar.Weeks))
	for _, week := range calendar.Weeks {
		slots := make([]*calendarDay, models.DaysPerWeek)
		for i, day := range week {
			if day == nil {
				continue
			}
			slots[i] = &calendarDay{
				Date:    models.DayKey(day.Date),
				Count:   day.Count,
				Weekday: day.Weekday,
				Tier:    day.Tier().String(),
			}
		}
		weeks = append(weeks, slots)
	}

	return calendarResponse{
		From:    models.DayKey(calendar.From),
		Through: models.DayKey(calendar.Through),
		Total:   calendar.Total,
		Summary: services.ContributionSummary(calendar.Total, language.English),
		Months:  calendar.MonthLabels,
		Weeks:   weeks,
	}
}

// referenceDay reads the optional date query parameter, today when absent
func (h *ContributionHandler) referenceDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return h.now().In(h.location), true
	}

	day, err := models.ParseDay(raw, h.location)
	if err != nil {
		badRequest(c, fmt.Sprintf("date must be formatted as %s", models.DayLayout))
		return time.Time{}, false
	}
	return day, true
}

// Calendar returns the contribution calendar for the year ending on the reference day
func (h *ContributionHandler) Calendar(c *gin.Context) {
	today, ok := h.referenceDay(c)
	if !ok {
		return
	}

	calendar, err := h.contributionService.BuildCalendar(c.Request.Context(), today)
	if err != nil {
		respondError(c, err, "Failed to build contribution calendar")
		return
	}

	c.JSON(http.StatusOK, newCalendarResponse(calendar))
}

// Export returns the contribution calendar as a spreadsheet
func (h *ContributionHandler) Export(c *gin.Context) {
	today, ok := h.referenceDay(c)
	if !ok {
		return
	}

	calendar, err := h.contributionService.BuildCalendar(c.Request.Context(), today)
	if err != nil {
		respondError(c, err, "Failed to build contribution calendar")
		return
	}

	buf, err := services.ExportCalendar(calendar)
	if err != nil {
		respondError(c, err, "Failed to export contribution calendar")
		return
	}

	filename := fmt.Sprintf("contributions-%s.xlsx", models.DayKey(calendar.Through))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// Sync runs a GitHub import now
func (h *ContributionHandler) Sync(c *gin.Context) {
	if h.syncer == nil {
		respondError(c, services.ErrGitHubNotConfigured, "GitHub import is not configured")
		return
	}

	result, err := h.syncer.Sync(c.Request.Context(), h.now().In(h.location))
	if err != nil {
		respondError(c, err, "Failed to import GitHub activity")
		return
	}

	c.JSON(http.StatusOK, result)
}
