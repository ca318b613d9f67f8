package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"healthjournal/pkg/journal"
	"healthjournal/pkg/store"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.Local)
}

func TestDecorationMatchesRepositoryLookup(t *testing.T) {
	repo := journal.NewRepository(store.NewMemory(), zerolog.Nop())
	if _, err := repo.Upsert(day(5), "Entry", "Content", journal.Angry); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	entries := repo.All()

	for d := 1; d <= 31; d++ {
		deco, ok := DecorationFor(day(d), entries)
		found := repo.FindByDate(day(d)) != nil
		if ok != found {
			t.Fatalf("day %d: decoration presence %v disagrees with lookup %v", d, ok, found)
		}
		if ok && deco.Mood != journal.Angry {
			t.Fatalf("day %d: wrong mood %v", d, deco.Mood)
		}
	}
}

func TestDecorationForIsIdempotent(t *testing.T) {
	entries := []*journal.Entry{journal.New(day(10), "Entry", "Content", journal.Sad)}

	first, ok1 := DecorationFor(day(10), entries)
	second, ok2 := DecorationFor(day(10), entries)
	if !ok1 || !ok2 || first != second {
		t.Fatalf("repeated projection differs: %v/%v %v/%v", first, ok1, second, ok2)
	}
}

func TestMonthDays(t *testing.T) {
	entries := []*journal.Entry{
		journal.New(day(1), "First", "Content", journal.Happy),
		journal.New(day(15), "Mid", "Content", journal.Sad),
	}

	days := MonthDays(day(1), entries, day(15), day(2))
	if len(days) != 31 {
		t.Fatalf("march has 31 days, got %d", len(days))
	}

	if !days[0].HasEntry || days[0].Mood != journal.Happy {
		t.Fatalf("day 1 should carry a happy marker: %+v", days[0])
	}
	if !days[14].HasEntry || days[14].Mood != journal.Sad {
		t.Fatalf("day 15 should carry a sad marker: %+v", days[14])
	}
	if days[2].HasEntry {
		t.Fatalf("day 3 should be unmarked: %+v", days[2])
	}
	if !days[14].IsToday {
		t.Fatal("day 15 should be flagged as today")
	}
	if !days[1].IsSelected {
		t.Fatal("day 2 should be flagged as selected")
	}
}

func TestRenderRowCount(t *testing.T) {
	// March 2024 starts on a Friday and needs six week rows.
	month := day(1)
	out := Render(month, MonthDays(month, nil, time.Time{}, time.Time{}), Options{ShowHeader: true})

	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus six week rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("missing weekday header: %q", lines[0])
	}
	if !strings.Contains(out, "31") {
		t.Fatal("last day of the month missing from render")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)); got != 29 {
		t.Fatalf("february 2024 has 29 days, got %d", got)
	}
	if got := DaysIn(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.Local)); got != 28 {
		t.Fatalf("february 2023 has 28 days, got %d", got)
	}
}
