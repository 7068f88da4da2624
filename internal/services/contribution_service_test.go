package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/alimgiray/gexplore/internal/repositories"
	"github.com/alimgiray/gexplore/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// fullLog covers the whole window ending on today with the given counts
func fullLog(today time.Time, counts map[string]int) *models.ActivityLog {
	from, through := CalendarWindow(today)
	if counts == nil {
		counts = map[string]int{}
	}
	return &models.ActivityLog{From: from, Through: through, Counts: counts}
}

type staticSource struct {
	log *models.ActivityLog
	err error
}

func (s staticSource) ActivityLog(ctx context.Context, from, through time.Time) (*models.ActivityLog, error) {
	return s.log, s.err
}

func loadLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestGenerateActivityDaysSpansTrailingYear(t *testing.T) {
	newYork := loadLocation(t, "America/New_York")
	// both zones start DST by skipping midnight
	santiago := loadLocation(t, "America/Santiago")
	saoPaulo := loadLocation(t, "America/Sao_Paulo")

	references := []time.Time{
		date(2026, time.October, 14),
		date(2024, time.February, 29),
		date(2028, time.March, 1),
		date(2026, time.January, 1),
		time.Date(2026, time.March, 8, 15, 30, 0, 0, newYork),
		time.Date(2026, time.November, 1, 23, 59, 0, 0, newYork),
		time.Date(2024, time.September, 8, 12, 0, 0, 0, santiago),
		time.Date(2024, time.September, 9, 0, 30, 0, 0, santiago),
		time.Date(2010, time.March, 1, 9, 0, 0, 0, saoPaulo),
		time.Date(2009, time.October, 18, 1, 0, 0, 0, saoPaulo),
	}

	for _, today := range references {
		t.Run(today.Format(time.RFC3339), func(t *testing.T) {
			days, err := GenerateActivityDays(today, fullLog(today, nil))
			require.NoError(t, err)
			require.Len(t, days, models.CalendarDays)

			assert.Equal(t, models.DayKey(today.AddDate(0, 0, -364)), models.DayKey(days[0].Date))
			assert.Equal(t, models.DayKey(today), models.DayKey(days[len(days)-1].Date))

			seen := make(map[string]bool, len(days))
			for i, day := range days {
				seen[models.DayKey(day.Date)] = true
				assert.Equal(t, int(day.Date.Weekday()), day.Weekday)
				if i > 0 {
					assert.Equal(t, models.DayKey(days[i-1].Date.AddDate(0, 0, 1)), models.DayKey(day.Date))
					assert.Equal(t, (days[i-1].Weekday+1)%models.DaysPerWeek, day.Weekday)
				}
			}
			assert.Len(t, seen, models.CalendarDays)
		})
	}
}

func TestGenerateActivityDaysRejectsShortLog(t *testing.T) {
	today := date(2026, time.October, 14)
	from, through := CalendarWindow(today)

	_, err := GenerateActivityDays(today, &models.ActivityLog{From: from.AddDate(0, 0, 1), Through: through})
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)

	_, err = GenerateActivityDays(today, &models.ActivityLog{From: from, Through: through.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)

	_, err = GenerateActivityDays(today, nil)
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)
}

func TestGenerateActivityDaysFillsGapsWithZero(t *testing.T) {
	today := date(2026, time.October, 14)
	days, err := GenerateActivityDays(today, fullLog(today, map[string]int{"2026-10-01": 2}))
	require.NoError(t, err)

	for _, day := range days {
		if models.DayKey(day.Date) == "2026-10-01" {
			assert.Equal(t, 2, day.Count)
		} else {
			assert.Zero(t, day.Count)
		}
	}
}

func TestGenerateActivityDaysRejectsNegativeCounts(t *testing.T) {
	today := date(2026, time.October, 14)
	_, err := GenerateActivityDays(today, fullLog(today, map[string]int{"2026-09-30": -1}))
	assert.ErrorIs(t, err, ErrNegativeContributionCount)
}

func TestGroupIntoWeeksShape(t *testing.T) {
	bases := []time.Time{
		date(2026, time.October, 14),
		time.Date(2024, time.September, 5, 12, 0, 0, 0, loadLocation(t, "America/Santiago")),
		time.Date(2010, time.February, 26, 12, 0, 0, 0, loadLocation(t, "America/Sao_Paulo")),
	}

	for _, base := range bases {
		for offset := 0; offset < 7; offset++ {
			today := base.AddDate(0, 0, offset)
			t.Run(base.Location().String()+"/"+today.Weekday().String(), func(t *testing.T) {
				assertWeekShape(t, today)
			})
		}
	}
}

func assertWeekShape(t *testing.T, today time.Time) {
	days, err := GenerateActivityDays(today, fullLog(today, nil))
	require.NoError(t, err)

	weeks := GroupIntoWeeks(days)
	require.Len(t, weeks, 53)

	realDays := 0
	for _, week := range weeks {
		realDays += week.RealDays()
		for slot, day := range week {
			if day != nil {
				assert.Equal(t, slot, day.Weekday)
			}
		}
	}
	assert.Equal(t, models.CalendarDays, realDays)

	assert.Equal(t, days[0].Weekday, weeks[0].LeadingPlaceholders())
	assert.Equal(t, 6-days[len(days)-1].Weekday, weeks[len(weeks)-1].TrailingPlaceholders())

	for _, week := range weeks[1 : len(weeks)-1] {
		assert.Equal(t, models.DaysPerWeek, week.RealDays())
	}
}

func TestGroupIntoWeeksThursdayReference(t *testing.T) {
	today := date(2026, time.October, 15)
	days, err := GenerateActivityDays(today, fullLog(today, nil))
	require.NoError(t, err)
	require.Equal(t, time.Thursday, days[0].Date.Weekday())
	require.Equal(t, "2025-10-16", models.DayKey(days[0].Date))

	weeks := GroupIntoWeeks(days)
	first := weeks[0]
	for slot := 0; slot < 4; slot++ {
		assert.Nil(t, first[slot])
	}
	assert.Equal(t, "2025-10-16", models.DayKey(first[4].Date))
	assert.Equal(t, "2025-10-17", models.DayKey(first[5].Date))
	assert.Equal(t, "2025-10-18", models.DayKey(first[6].Date))

	last := weeks[len(weeks)-1]
	assert.Equal(t, 5, last.RealDays())
	assert.Equal(t, 2, last.TrailingPlaceholders())
}

func TestGroupIntoWeeksTuesdayEnd(t *testing.T) {
	today := date(2026, time.October, 13)
	days, err := GenerateActivityDays(today, fullLog(today, nil))
	require.NoError(t, err)
	require.Equal(t, time.Tuesday, today.Weekday())

	weeks := GroupIntoWeeks(days)
	last := weeks[len(weeks)-1]

	assert.Equal(t, "2026-10-11", models.DayKey(last[0].Date))
	assert.Equal(t, "2026-10-12", models.DayKey(last[1].Date))
	assert.Equal(t, "2026-10-13", models.DayKey(last[2].Date))
	for slot := 3; slot < models.DaysPerWeek; slot++ {
		assert.Nil(t, last[slot])
	}
	assert.Equal(t, 2, weeks[0].LeadingPlaceholders())
}

func TestGroupIntoWeeksCopiesDays(t *testing.T) {
	today := date(2026, time.October, 14)
	days, err := GenerateActivityDays(today, fullLog(today, nil))
	require.NoError(t, err)

	weeks := GroupIntoWeeks(days)
	days[len(days)-1].Count = 99
	last := weeks[len(weeks)-1]
	assert.Zero(t, last[int(time.Wednesday)].Count)
}

func TestGroupIntoWeeksEmpty(t *testing.T) {
	assert.Empty(t, GroupIntoWeeks(nil))
}

func TestTierForCountMonotonicAndSaturating(t *testing.T) {
	assert.Equal(t, models.TierNone, models.TierForCount(0))
	assert.Equal(t, models.TierNone, models.TierForCount(-3))
	assert.Equal(t, models.Tier4, models.TierForCount(4))
	assert.Equal(t, models.Tier4, models.TierForCount(1000))

	for count := 0; count < 20; count++ {
		assert.LessOrEqual(t, int(models.TierForCount(count)), int(models.TierForCount(count+1)))
	}
}

func TestTotalContributions(t *testing.T) {
	today := date(2026, time.October, 14)
	days, err := GenerateActivityDays(today, fullLog(today, map[string]int{"2026-05-05": 3}))
	require.NoError(t, err)
	assert.Equal(t, 3, TotalContributions(days))

	days, err = GenerateActivityDays(today, fullLog(today, nil))
	require.NoError(t, err)
	assert.Zero(t, TotalContributions(days))
}

func TestMonthLabels(t *testing.T) {
	labels := MonthLabels(date(2026, time.October, 14))
	require.Len(t, labels, models.CalendarMonths)
	assert.Equal(t, models.MonthLabel{Name: "Nov", Index: 0}, labels[0])
	assert.Equal(t, models.MonthLabel{Name: "Oct", Index: 11}, labels[11])

	labels = MonthLabels(date(2026, time.March, 31))
	assert.Equal(t, "Apr", labels[0].Name)
	assert.Equal(t, "Feb", labels[10].Name)
	assert.Equal(t, "Mar", labels[11].Name)

	labels = MonthLabels(date(2026, time.January, 15))
	assert.Equal(t, "Feb", labels[0].Name)
	assert.Equal(t, "Dec", labels[10].Name)
	assert.Equal(t, "Jan", labels[11].Name)
}

func TestContributionSummary(t *testing.T) {
	assert.Equal(t, "1,234 contributions in the last year", ContributionSummary(1234, language.English))
	assert.Equal(t, "1 contribution in the last year", ContributionSummary(1, language.English))
	assert.Equal(t, "0 contributions in the last year", ContributionSummary(0, language.English))
}

func TestBuildCalendar(t *testing.T) {
	service := NewContributionService(NewRandomActivitySource(4, 42))
	today := date(2026, time.October, 14)

	calendar, err := service.BuildCalendar(context.Background(), today)
	require.NoError(t, err)

	assert.Len(t, calendar.Days, models.CalendarDays)
	assert.Len(t, calendar.Weeks, 53)
	assert.Len(t, calendar.MonthLabels, models.CalendarMonths)
	assert.Equal(t, TotalContributions(calendar.Days), calendar.Total)
	for _, day := range calendar.Days {
		assert.GreaterOrEqual(t, day.Count, 0)
		assert.LessOrEqual(t, day.Count, 4)
	}
}

func TestBuildCalendarSeededSourceIsDeterministic(t *testing.T) {
	today := date(2026, time.October, 14)

	first, err := NewContributionService(NewRandomActivitySource(4, 7)).BuildCalendar(context.Background(), today)
	require.NoError(t, err)
	second, err := NewContributionService(NewRandomActivitySource(4, 7)).BuildCalendar(context.Background(), today)
	require.NoError(t, err)

	assert.Equal(t, first.Days, second.Days)
}

func TestBuildCalendarAcrossSkippedMidnight(t *testing.T) {
	saoPaulo := loadLocation(t, "America/Sao_Paulo")
	service := NewContributionService(NewRandomActivitySource(4, 3))

	calendar, err := service.BuildCalendar(context.Background(), time.Date(2010, time.March, 1, 8, 0, 0, 0, saoPaulo))
	require.NoError(t, err)

	require.Len(t, calendar.Days, models.CalendarDays)
	assert.Equal(t, "2009-03-02", models.DayKey(calendar.From))
	assert.Equal(t, "2010-03-01", models.DayKey(calendar.Through))
	assert.Len(t, calendar.Weeks, 53)

	keys := make(map[string]bool, len(calendar.Days))
	for _, day := range calendar.Days {
		keys[models.DayKey(day.Date)] = true
	}
	assert.Len(t, keys, models.CalendarDays)
	assert.True(t, keys["2009-10-18"])
}

func TestBuildCalendarPropagatesSourceErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewContributionService(staticSource{err: boom}).BuildCalendar(context.Background(), date(2026, time.October, 14))
	assert.ErrorIs(t, err, boom)

	today := date(2026, time.October, 14)
	from, through := CalendarWindow(today)
	short := &models.ActivityLog{From: from.AddDate(0, 0, 30), Through: through}
	_, err = NewContributionService(staticSource{log: short}).BuildCalendar(context.Background(), today)
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)
}

func TestBuildCalendarConcurrent(t *testing.T) {
	service := NewContributionService(NewRandomActivitySource(4, 0))
	today := date(2026, time.October, 14)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.BuildCalendar(context.Background(), today)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestRandomActivitySourceHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	from, through := CalendarWindow(date(2026, time.October, 14))
	_, err := NewRandomActivitySource(4, 1).ActivityLog(ctx, from, through)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStoredActivitySource(t *testing.T) {
	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	contributionRepo := repositories.NewContributionRepository(db)
	store := repositories.NewKeyValueRepository(db)
	service := NewContributionService(NewStoredActivitySource(contributionRepo, store))
	today := date(2026, time.October, 14)

	_, err = service.BuildCalendar(context.Background(), today)
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)

	from, through := CalendarWindow(today)
	require.NoError(t, contributionRepo.ReplaceRange(from, through, map[string]int{"2026-10-14": 5, "2026-01-02": 1}))
	require.NoError(t, SaveCoverage(store, models.Coverage{From: from, Through: through}))

	calendar, err := service.BuildCalendar(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, 6, calendar.Total)
	assert.Equal(t, models.Tier4, calendar.Days[len(calendar.Days)-1].Tier())

	// a day later the stored log no longer reaches today
	_, err = service.BuildCalendar(context.Background(), today.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, ErrIncompleteActivityLog)
}
