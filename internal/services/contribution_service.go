package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/pkg/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrIncompleteActivityLog     = errors.New("activity log does not cover the calendar window")
	ErrNegativeContributionCount = errors.New("negative contribution count")
)

// ActivitySource supplies the contribution log for a window of days.
type ActivitySource interface {
	ActivityLog(ctx context.Context, from, through time.Time) (*models.ActivityLog, error)
}

type ContributionService struct {
	source ActivitySource
}

func NewContributionService(source ActivitySource) *ContributionService {
	return &ContributionService{
		source: source,
	}
}

// BuildCalendar builds the contribution calendar for the year ending on today.
// Nothing is cached; every call reads the source again.
func (s *ContributionService) BuildCalendar(ctx context.Context, today time.Time) (*models.ContributionCalendar, error) {
	from, through := CalendarWindow(today)

	log, err := s.source.ActivityLog(ctx, from, through)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}

	days, err := GenerateActivityDays(today, log)
	if err != nil {
		return nil, err
	}

	calendar := &models.ContributionCalendar{
		From:        from,
		Through:     through,
		Days:        days,
		Weeks:       GroupIntoWeeks(days),
		MonthLabels: MonthLabels(today),
		Total:       TotalContributions(days),
	}

	logger.WithFields(logrus.Fields{
		"from":  models.DayKey(from),
		"to":    models.DayKey(through),
		"weeks": len(calendar.Weeks),
		"total": calendar.Total,
	}).Debug("Built contribution calendar")

	return calendar, nil
}

// CalendarWindow returns the first and last day of the 365-day window ending on today
func CalendarWindow(today time.Time) (from, through time.Time) {
	through = models.CivilDay(today)
	from = models.AddDays(through, -(models.CalendarDays - 1))
	return from, through
}

// GenerateActivityDays lays the log out as 365 consecutive days, oldest first.
// Days the log has no entry for count as zero. A log that does not cover the
// whole window is rejected.
func GenerateActivityDays(today time.Time, log *models.ActivityLog) ([]models.ActivityDay, error) {
	from, through := CalendarWindow(today)

	if log == nil {
		return nil, fmt.Errorf("%w: no log", ErrIncompleteActivityLog)
	}
	if !log.Covers(from, through) {
		return nil, fmt.Errorf("%w: log covers %s..%s, need %s..%s", ErrIncompleteActivityLog,
			models.DayKey(log.From), models.DayKey(log.Through), models.DayKey(from), models.DayKey(through))
	}

	days := make([]models.ActivityDay, 0, models.CalendarDays)
	for i := 0; i < models.CalendarDays; i++ {
		date := models.AddDays(from, i)
		count := log.CountOn(date)
		if count < 0 {
			return nil, fmt.Errorf("%w: %d on %s", ErrNegativeContributionCount, count, models.DayKey(date))
		}
		days = append(days, models.NewActivityDay(date, count))
	}

	return days, nil
}

// GroupIntoWeeks partitions consecutive days into Sunday-aligned weeks. A week
// closes on every Saturday and at the end of the sequence. The first week is
// padded in front and the last week at the back.
func GroupIntoWeeks(days []models.ActivityDay) []models.ActivityWeek {
	var weeks []models.ActivityWeek
	var current []*models.ActivityDay

	for i := range days {
		day := days[i]
		current = append(current, &day)

		if day.Weekday != int(time.Saturday) && i != len(days)-1 {
			continue
		}

		var week models.ActivityWeek
		offset := 0
		if len(weeks) == 0 {
			offset = current[0].Weekday
		}
		copy(week[offset:], current)

		weeks = append(weeks, week)
		current = current[:0]
	}

	return weeks
}

// MonthLabels names the 12 months ending with today's month, oldest first
func MonthLabels(today time.Time) []models.MonthLabel {
	labels := make([]models.MonthLabel, 0, models.CalendarMonths)
	for i := models.CalendarMonths - 1; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, today.Location())
		labels = append(labels, models.MonthLabel{
			Name:  first.Month().String()[:3],
			Index: models.CalendarMonths - 1 - i,
		})
	}
	return labels
}

func TotalContributions(days []models.ActivityDay) int {
	total := 0
	for _, day := range days {
		total += day.Count
	}
	return total
}

// ContributionSummary renders the total with the locale's digit grouping
func ContributionSummary(total int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	if total == 1 {
		return p.Sprintf("%d contribution in the last year", total)
	}
	return p.Sprintf("%d contributions in the last year", total)
}
