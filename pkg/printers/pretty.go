package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"healthjournal/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
}

const layoutUS = "Monday, January 2, 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Entry prints one journal entry in full.
func (pp *PrettyPrint) Entry(e *journal.Entry) {
	if e == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New(color.Bold, color.Underline)
	m := moodColor(e.Mood)
	p := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	_, _ = t.Println(e.Date.Local().Format(layoutUS))
	if pp.ShowID {
		_, _ = y.Println(e.ID)
	}
	_, _ = m.Printf("%s %s", e.Mood.Glyph().Symbol, e.Title)
	_, _ = p.Printf("\n%s\n\n", e.Content)
}

// Table prints a dated listing of many entries.
func (pp *PrettyPrint) Table(entries []*journal.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("Date"), bold.Sprint("ID"), " ", bold.Sprint("Title"))
	} else {
		tbl.AddRow(bold.Sprint("Date"), " ", bold.Sprint("Title"))
	}
	for _, e := range entries {
		date, symbol, title := e.Row()
		if pp.ShowID {
			tbl.AddRow(date, e.ID, moodColor(e.Mood).Sprint(symbol), title)
		} else {
			tbl.AddRow(date, moodColor(e.Mood).Sprint(symbol), title)
		}
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func moodColor(m journal.Mood) *color.Color {
	switch m {
	case journal.Sad:
		return color.New(color.FgHiBlue)
	case journal.Angry:
		return color.New(color.FgHiRed)
	default:
		return color.New(color.FgHiGreen)
	}
}

// Moods prints the mood legend.
func (pp *PrettyPrint) Moods() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), " ", bold.Sprint("Meaning"), bold.Sprint("Aliases"))
	for i, g := range journal.DefaultMoods() {
		tbl.AddRow(g.Noun, moodColor(journal.Mood(i)).Sprint(g.Symbol), g.Meaning, strings.Join(g.Aliases, ", "))
	}

	_, _ = fmt.Fprintln(color.Output, "")
	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}
