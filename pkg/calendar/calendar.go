// Package calendar derives per-day decorations from the journal and renders
// month views. Everything here is a pure function of its inputs.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"healthjournal/pkg/journal"
)

// Decoration is the marker a calendar day carries when a journal entry
// exists for it.
type Decoration struct {
	Mood journal.Mood
}

// DecorationFor returns the decoration for the local calendar day of date,
// if any entry in the collection falls on it. Safe to call once per visible
// cell per render.
func DecorationFor(date time.Time, entries []*journal.Entry) (Decoration, bool) {
	for _, e := range entries {
		if e.Date.SameDay(date) {
			return Decoration{Mood: e.Mood}, true
		}
	}
	return Decoration{}, false
}

// Day describes a single day rendered in the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	Mood       journal.Mood
	IsToday    bool
	IsSelected bool
}

// MonthDays builds the render metadata for every day of the month containing
// month, decorating days from the given entries.
func MonthDays(month time.Time, entries []*journal.Entry, today, selected time.Time) []Day {
	days := make([]Day, 0, DaysIn(month))
	for d := 1; d <= DaysIn(month); d++ {
		date := time.Date(month.Year(), month.Month(), d, 0, 0, 0, 0, time.Local)
		day := Day{
			Day:        d,
			IsToday:    sameDay(date, today),
			IsSelected: sameDay(date, selected),
		}
		if deco, ok := DecorationFor(date, entries); ok {
			day.HasEntry = true
			day.Mood = deco.Mood
		}
		days = append(days, day)
	}
	return days
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	MoodStyles    map[journal.Mood]lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cellIdx := row*7 + col
			day := cellIdx - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if info.HasEntry {
		if s, ok := opts.MoodStyles[info.Mood]; ok {
			style = s
		}
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}

func StartDay(month time.Time) time.Weekday {
	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location()).Weekday()
}

func sameDay(a, b time.Time) bool {
	return a.Local().Year() == b.Local().Year() &&
		a.Local().Month() == b.Local().Month() &&
		a.Local().Day() == b.Local().Day()
}
