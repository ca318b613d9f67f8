package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"healthjournal/pkg/calendar"
	"healthjournal/pkg/journal"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints one month with each journaled day highlighted in its mood
// color.
func (pp *PrettyPrint) Month(then time.Time, entries []*journal.Entry) {
	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month().String(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(color.Output, "%s%s\n", strings.Repeat(" ", mid), m)

	days := calendar.MonthDays(then, entries, time.Now(), time.Time{})

	d := calendar.StartDay(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(color.Output, "   ")
	}

	faint := color.New(color.Faint, color.FgWhite)

	for _, day := range days {
		printer := faint
		if day.HasEntry {
			printer = moodColor(day.Mood).Add(color.Bold)
		} else if day.IsToday {
			printer = color.New(color.Bold, color.FgHiWhite)
		}
		_, _ = printer.Fprintf(color.Output, "%2d ", day.Day)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(color.Output, "\n")
		}
	}
	_, _ = fmt.Fprint(color.Output, "\n\n")
}
