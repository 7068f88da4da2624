package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTierForCount(t *testing.T) {
	testCases := []struct {
		count int
		tier  IntensityTier
	}{
		{-3, TierNone},
		{0, TierNone},
		{1, Tier1},
		{2, Tier2},
		{3, Tier3},
		{4, Tier4},
		{17, Tier4},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.tier, TierForCount(tc.count), "count %d", tc.count)
	}
}

func TestTierIsMonotonicAndSaturates(t *testing.T) {
	for count := 0; count < 50; count++ {
		assert.LessOrEqual(t, TierForCount(count), TierForCount(count+1), "count %d", count)
	}
	assert.Equal(t, TierForCount(4), TierForCount(1000))
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "none", TierNone.String())
	assert.Equal(t, "3", Tier3.String())
}

func TestNewActivityDayWeekday(t *testing.T) {
	// 2026-10-14 is a Wednesday
	day := NewActivityDay(date(2026, time.October, 14), 2)
	assert.Equal(t, 3, day.Weekday)
	assert.Equal(t, Tier2, day.Tier())
}

func TestActivityWeekPlaceholders(t *testing.T) {
	thu := NewActivityDay(date(2025, time.October, 16), 1)
	fri := NewActivityDay(date(2025, time.October, 17), 0)
	sat := NewActivityDay(date(2025, time.October, 18), 3)

	week := ActivityWeek{nil, nil, nil, nil, &thu, &fri, &sat}
	assert.Equal(t, 4, week.LeadingPlaceholders())
	assert.Equal(t, 0, week.TrailingPlaceholders())
	assert.Equal(t, 3, week.RealDays())
	assert.Equal(t, 4, week.Total())

	var empty ActivityWeek
	assert.Equal(t, DaysPerWeek, empty.LeadingPlaceholders())
	assert.Equal(t, DaysPerWeek, empty.TrailingPlaceholders())
	assert.Equal(t, 0, empty.RealDays())
}

func TestActivityLogCovers(t *testing.T) {
	log := &ActivityLog{
		From:    date(2025, time.October, 1),
		Through: date(2026, time.October, 14),
		Counts:  map[string]int{"2026-01-05": 3},
	}

	assert.True(t, log.Covers(date(2025, time.October, 15), date(2026, time.October, 14)))
	assert.False(t, log.Covers(date(2025, time.September, 30), date(2026, time.October, 14)))
	assert.False(t, log.Covers(date(2025, time.October, 15), date(2026, time.October, 15)))
	assert.Equal(t, 3, log.CountOn(date(2026, time.January, 5)))
	assert.Equal(t, 0, log.CountOn(date(2026, time.January, 6)))

	var missing *ActivityLog
	assert.False(t, missing.Covers(date(2026, time.January, 1), date(2026, time.January, 1)))
	assert.Equal(t, 0, missing.CountOn(date(2026, time.January, 1)))
}

func TestCoverageMerge(t *testing.T) {
	base := Coverage{From: date(2026, time.January, 1), Through: date(2026, time.January, 31)}

	t.Run("Overlapping", func(t *testing.T) {
		merged := base.Merge(Coverage{From: date(2026, time.January, 20), Through: date(2026, time.February, 10)})
		assert.Equal(t, "2026-01-01", DayKey(merged.From))
		assert.Equal(t, "2026-02-10", DayKey(merged.Through))
	})

	t.Run("Adjacent", func(t *testing.T) {
		merged := base.Merge(Coverage{From: date(2026, time.February, 1), Through: date(2026, time.February, 5)})
		assert.Equal(t, "2026-01-01", DayKey(merged.From))
		assert.Equal(t, "2026-02-05", DayKey(merged.Through))
	})

	t.Run("Contained", func(t *testing.T) {
		merged := base.Merge(Coverage{From: date(2026, time.January, 5), Through: date(2026, time.January, 6)})
		assert.Equal(t, base, merged)
	})

	t.Run("Disjoint", func(t *testing.T) {
		next := Coverage{From: date(2026, time.March, 1), Through: date(2026, time.March, 5)}
		assert.Equal(t, next, base.Merge(next))
	})
}

func TestStartOfDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*60*60)
	start := StartOfDay(time.Date(2026, time.October, 14, 23, 59, 0, 0, loc))
	assert.Equal(t, "2026-10-14", DayKey(start))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, loc, start.Location())
}

func TestStartOfDayWhenMidnightIsSkipped(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	start := StartOfDay(time.Date(2024, time.September, 8, 15, 0, 0, 0, santiago))
	assert.Equal(t, "2024-09-08", DayKey(start))
	assert.Equal(t, 1, start.Hour())
	assert.Equal(t, 7, start.Add(-time.Minute).Day())
}

func TestCivilDayArithmetic(t *testing.T) {
	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	day := CivilDay(time.Date(2009, time.October, 17, 23, 30, 0, 0, saoPaulo))
	assert.Equal(t, "2009-10-17", DayKey(day))
	assert.Equal(t, "2009-10-18", DayKey(AddDays(day, 1)))
	assert.Equal(t, "2009-10-19", DayKey(AddDays(day, 2)))
	assert.Equal(t, "2008-10-18", DayKey(AddDays(day, -364)))
	assert.Equal(t, saoPaulo, AddDays(day, 1).Location())
}

func TestParseDay(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	day, err := ParseDay("2024-09-08", santiago)
	require.NoError(t, err)
	assert.Equal(t, "2024-09-08", DayKey(day))
	assert.Equal(t, santiago, day.Location())

	_, err = ParseDay("2024-02-30", santiago)
	assert.Error(t, err)
}

func TestCoverageMergeTouchingAcrossSkippedMidnight(t *testing.T) {
	santiago, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)

	base := Coverage{
		From:    StartOfDay(time.Date(2024, time.September, 1, 12, 0, 0, 0, santiago)),
		Through: StartOfDay(time.Date(2024, time.September, 7, 12, 0, 0, 0, santiago)),
	}
	next := Coverage{
		From:    StartOfDay(time.Date(2024, time.September, 8, 12, 0, 0, 0, santiago)),
		Through: StartOfDay(time.Date(2024, time.September, 10, 12, 0, 0, 0, santiago)),
	}

	merged := base.Merge(next)
	assert.Equal(t, "2024-09-01", DayKey(merged.From))
	assert.Equal(t, "2024-09-10", DayKey(merged.Through))
}
