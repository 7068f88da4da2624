package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

const (
	CalendarSheet = "Calendar"
	DaysSheet     = "Days"

	// XLSXContentType is the media type of the exported workbook
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// tierColors are the cell fills of the calendar grid, lightest first
var tierColors = map[models.IntensityTier]string{
	models.TierNone: "#EBEDF0",
	models.Tier1:    "#9BE9A8",
	models.Tier2:    "#40C463",
	models.Tier3:    "#30A14E",
	models.Tier4:    "#216E39",
}

// ExportCalendar writes the calendar as a workbook with a grid sheet laid out
// weekday by week and a sheet listing every day
func ExportCalendar(calendar *models.ContributionCalendar) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CalendarSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(DaysSheet); err != nil {
		return nil, err
	}

	if err := writeCalendarSheet(f, calendar); err != nil {
		return nil, fmt.Errorf("failed to write calendar sheet: %w", err)
	}
	if err := writeDaysSheet(f, calendar); err != nil {
		return nil, fmt.Errorf("failed to write days sheet: %w", err)
	}

	return f.WriteToBuffer()
}

func writeCalendarSheet(f *excelize.File, calendar *models.ContributionCalendar) error {
	styles := make(map[models.IntensityTier]int, len(tierColors))
	for tier, color := range tierColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		styles[tier] = style
	}

	for weekday := 0; weekday < models.DaysPerWeek; weekday++ {
		if err := setCell(f, CalendarSheet, 1, weekday+2, time.Weekday(weekday).String()[:3]); err != nil {
			return err
		}
	}

	for w, week := range calendar.Weeks {
		col := w + 2
		for _, day := range week {
			if day != nil {
				if err := setCell(f, CalendarSheet, col, 1, day.Date.Format("Jan 2")); err != nil {
					return err
				}
				break
			}
		}

		for weekday, day := range week {
			if day == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col, weekday+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(CalendarSheet, cell, day.Count); err != nil {
				return err
			}
			if err := f.SetCellStyle(CalendarSheet, cell, cell, styles[day.Tier()]); err != nil {
				return err
			}
		}
	}

	summaryRow := models.DaysPerWeek + 3
	return setCell(f, CalendarSheet, 1, summaryRow, ContributionSummary(calendar.Total, language.English))
}

func writeDaysSheet(f *excelize.File, calendar *models.ContributionCalendar) error {
	for i, header := range []string{"Date", "Weekday", "Count", "Tier"} {
		if err := setCell(f, DaysSheet, i+1, 1, header); err != nil {
			return err
		}
	}

	for i, day := range calendar.Days {
		row := i + 2
		values := []interface{}{
			models.DayKey(day.Date),
			time.Weekday(day.Weekday).String(),
			day.Count,
			day.Tier().String(),
		}
		for col, value := range values {
			if err := setCell(f, DaysSheet, col+1, row, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
