package models

import (
	"strconv"
	"time"
)

const (
	// DaysPerWeek is the number of slots in a calendar row, Sunday first.
	DaysPerWeek = 7
	// CalendarDays is the length of the contribution window, today included.
	CalendarDays = 365
	// CalendarMonths is the number of month labels on the axis.
	CalendarMonths = 12
	// DayLayout is the key format for a calendar day.
	DayLayout = "2006-01-02"
)

// ActivityDay is one calendar day's contribution count.
type ActivityDay struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"count"`
	Weekday int       `json:"weekday"`
}

// NewActivityDay derives the weekday index (Sunday=0) from the date.
func NewActivityDay(date time.Time, count int) ActivityDay {
	return ActivityDay{
		Date:    date,
		Count:   count,
		Weekday: int(date.Weekday()),
	}
}

// Tier returns the intensity bucket for the day's count
func (d ActivityDay) Tier() IntensityTier {
	return TierForCount(d.Count)
}

// ActivityWeek is a Sunday-aligned row. Nil slots are placeholders.
type ActivityWeek [DaysPerWeek]*ActivityDay

// RealDays counts the non-placeholder slots
func (w ActivityWeek) RealDays() int {
	n := 0
	for _, day := range w {
		if day != nil {
			n++
		}
	}
	return n
}

// LeadingPlaceholders counts placeholders before the first real day
func (w ActivityWeek) LeadingPlaceholders() int {
	for i, day := range w {
		if day != nil {
			return i
		}
	}
	return DaysPerWeek
}

// TrailingPlaceholders counts placeholders after the last real day
func (w ActivityWeek) TrailingPlaceholders() int {
	for i := DaysPerWeek - 1; i >= 0; i-- {
		if w[i] != nil {
			return DaysPerWeek - 1 - i
		}
	}
	return DaysPerWeek
}

// Total sums the counts of the real days in the week
func (w ActivityWeek) Total() int {
	total := 0
	for _, day := range w {
		if day != nil {
			total += day.Count
		}
	}
	return total
}

// MonthLabel anchors a short month name to its position on the axis.
type MonthLabel struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}

// IntensityTier is the colour bucket of a day.
type IntensityTier int

const (
	TierNone IntensityTier = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

// TierForCount maps a count onto the five ordered tiers, saturating at Tier4.
func TierForCount(count int) IntensityTier {
	switch {
	case count <= 0:
		return TierNone
	case count >= int(Tier4):
		return Tier4
	default:
		return IntensityTier(count)
	}
}

func (t IntensityTier) String() string {
	if t == TierNone {
		return "none"
	}
	return strconv.Itoa(int(t))
}

// ContributionCalendar is everything a grid renderer needs.
type ContributionCalendar struct {
	From        time.Time
	Through     time.Time
	Days        []ActivityDay
	Weeks       []ActivityWeek
	MonthLabels []MonthLabel
	Total       int
}

// ActivityLog is a sparse record of daily counts over the range it covers.
// Days inside the range without an entry had no contributions.
type ActivityLog struct {
	From    time.Time
	Through time.Time
	Counts  map[string]int
}

// Covers reports whether the log spans every day of [from, through]
func (l *ActivityLog) Covers(from, through time.Time) bool {
	if l == nil {
		return false
	}
	return DayKey(l.From) <= DayKey(from) && DayKey(l.Through) >= DayKey(through)
}

// CountOn returns the count recorded for the day, zero when absent
func (l *ActivityLog) CountOn(day time.Time) int {
	if l == nil {
		return 0
	}
	return l.Counts[DayKey(day)]
}

// Coverage is the date range an imported activity log is known to be complete for.
type Coverage struct {
	From    time.Time `json:"from"`
	Through time.Time `json:"through"`
}

// Merge joins two coverages that overlap or touch. Disjoint ranges cannot
// be joined, so the newer one wins.
func (c Coverage) Merge(next Coverage) Coverage {
	touches := DayKey(AddDays(c.Through, 1)) >= DayKey(next.From) &&
		DayKey(AddDays(next.Through, 1)) >= DayKey(c.From)
	if !touches {
		return next
	}

	merged := c
	if DayKey(next.From) < DayKey(merged.From) {
		merged.From = next.From
	}
	if DayKey(next.Through) > DayKey(merged.Through) {
		merged.Through = next.Through
	}
	return merged
}

// DayKey formats a time as its calendar day in its own location
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// civilHour anchors calendar days. Midnight is skipped by some DST
// transitions, noon never is.
const civilHour = 12

// CivilDay returns t's calendar day anchored at noon in t's location
func CivilDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, civilHour, 0, 0, 0, t.Location())
}

// AddDays moves n calendar days from t's day, anchored at noon
func AddDays(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day+n, civilHour, 0, 0, 0, t.Location())
}

// ParseDay reads a YYYY-MM-DD value as that calendar day in loc
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(DayLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), civilHour, 0, 0, 0, loc), nil
}

// StartOfDay returns the first instant of t's calendar day in its location.
// When the clock skips midnight that is the first hour after the gap.
func StartOfDay(t time.Time) time.Time {
	want := DayKey(t)
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	for DayKey(start) < want {
		start = start.Add(time.Hour)
	}
	return start
}
