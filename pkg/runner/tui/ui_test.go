package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/rs/zerolog"

	"healthjournal/pkg/editor"
	"healthjournal/pkg/journal"
	"healthjournal/pkg/store"
)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T) (Model, *journal.Repository, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	repo := journal.NewRepository(mem, zerolog.Nop())
	return New(repo), repo, mem
}

func press(m Model, key string) Model {
	msg := tea.KeyPressMsg{Text: key, Code: rune(key[0])}
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewStartsOnTodayInCreateMode(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.focus != focusCalendar {
		t.Fatalf("expected calendar focus at startup, got %v", m.focus)
	}
	now := time.Now()
	if m.selected.Year() != now.Year() || m.selected.YearDay() != now.YearDay() {
		t.Fatalf("expected today selected, got %v", m.selected)
	}
	if m.ed.State().Mode != editor.Create {
		t.Fatalf("empty journal should start in Create, got %v", m.ed.State().Mode)
	}
}

func TestCalendarNavigationMovesSelection(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.selectDate(day(15))

	m = press(m, "l")
	if m.selected.Day() != 16 {
		t.Fatalf("expected day 16 after 'l', got %d", m.selected.Day())
	}
	m = press(m, "j")
	if m.selected.Day() != 23 {
		t.Fatalf("expected day 23 after 'j', got %d", m.selected.Day())
	}
	m = press(m, "h")
	m = press(m, "k")
	if m.selected.Day() != 15 {
		t.Fatalf("expected to return to day 15, got %d", m.selected.Day())
	}

	m = press(m, "]")
	if m.month.Month() != time.April {
		t.Fatalf("expected April after ']', got %v", m.month.Month())
	}
}

func TestSelectingJournaledDayLoadsForm(t *testing.T) {
	m, repo, _ := newTestModel(t)
	if _, err := repo.Upsert(day(10), "Stored", "Stored content", journal.Sad); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	m.selectDate(day(10))
	if m.ed.State().Mode != editor.Edit {
		t.Fatalf("expected Edit mode, got %v", m.ed.State().Mode)
	}
	if m.title.Value() != "Stored" || m.content.Value() != "Stored content" {
		t.Fatalf("form widgets not mirrored: %q / %q", m.title.Value(), m.content.Value())
	}
	if m.mood != journal.Sad {
		t.Fatalf("mood not mirrored: %v", m.mood)
	}
}

func TestSubmitSavesAndReturnsToCalendar(t *testing.T) {
	m, repo, _ := newTestModel(t)
	m.selectDate(day(12))
	m.focusPane(focusTitle)

	m.title.SetValue("Felt fine")
	m.content.SetValue("No symptoms today")
	m.mood = journal.Happy
	m.submit()

	saved := repo.FindByDate(day(12))
	if saved == nil || saved.Title != "Felt fine" {
		t.Fatalf("entry not saved: %+v", saved)
	}
	if m.focus != focusCalendar {
		t.Fatalf("expected calendar focus after save, got %v", m.focus)
	}
	if m.ed.State().Mode != editor.Edit {
		t.Fatalf("expected the form to rebind in Edit mode, got %v", m.ed.State().Mode)
	}
	if m.status.text == "" {
		t.Fatal("expected a status notification after save")
	}
}

func TestSubmitValidationKeepsFormOpen(t *testing.T) {
	m, repo, _ := newTestModel(t)
	m.selectDate(day(12))
	m.focusPane(focusContent)

	m.title.SetValue("")
	m.content.SetValue("only content")
	m.submit()

	if repo.FindByDate(day(12)) != nil {
		t.Fatal("invalid form must not persist")
	}
	if m.focus == focusCalendar {
		t.Fatal("validation failure should keep the form focused")
	}
	if m.status.text == "" {
		t.Fatal("expected a validation notification")
	}
}

func TestDeleteFromCalendar(t *testing.T) {
	m, repo, _ := newTestModel(t)
	if _, err := repo.Upsert(day(8), "Doomed", "Content", journal.Angry); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	m.selectDate(day(8))
	m = press(m, "d")

	if repo.FindByDate(day(8)) != nil {
		t.Fatal("entry should be deleted")
	}
	if m.ed.State().Mode != editor.Create {
		t.Fatalf("expected Create mode after delete, got %v", m.ed.State().Mode)
	}
}

func TestCancelDiscardsEdits(t *testing.T) {
	m, repo, _ := newTestModel(t)
	if _, err := repo.Upsert(day(9), "Original", "Original content", journal.Happy); err != nil {
		t.Fatalf("seed entry: %v", err)
	}

	m.selectDate(day(9))
	m.focusPane(focusTitle)
	m.title.SetValue("Half-typed rewrite")
	m.cancel()

	if m.title.Value() != "Original" {
		t.Fatalf("cancel did not restore the stored title: %q", m.title.Value())
	}
	if m.focus != focusCalendar {
		t.Fatalf("expected calendar focus after cancel, got %v", m.focus)
	}
}

func TestStoreChangedReloadsJournal(t *testing.T) {
	m, _, mem := newTestModel(t)
	m.selectDate(day(20))

	// Another process writes an entry for the selected day.
	other := journal.NewRepository(mem, zerolog.Nop())
	if _, err := other.Upsert(day(20), "External", "Written elsewhere", journal.Sad); err != nil {
		t.Fatalf("external write: %v", err)
	}

	next, _ := m.Update(storeChangedMsg{})
	m = next.(Model)

	if m.ed.State().Mode != editor.Edit {
		t.Fatalf("expected reload to surface the external entry, got %v", m.ed.State().Mode)
	}
	if m.title.Value() != "External" {
		t.Fatalf("form not refreshed from external write: %q", m.title.Value())
	}
}
