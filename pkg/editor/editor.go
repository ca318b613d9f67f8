// Package editor drives the create/edit lifecycle of the journal form. It is
// a synchronous state machine: every operation completes before returning.
package editor

import (
	"errors"
	"time"

	"healthjournal/pkg/journal"
	"healthjournal/pkg/notify"
)

type Mode int

const (
	// Idle means no date is selected yet. Not reachable once a default
	// date is set at startup.
	Idle Mode = iota
	// Create means the selected day has no entry; the form starts blank.
	Create
	// Edit means the selected day has an entry; the form mirrors it.
	Edit
)

// State is the ephemeral form state. It is rebuilt whenever the selected
// date changes and never persisted.
type State struct {
	Date    time.Time
	Title   string
	Content string
	Mood    journal.Mood
	Mode    Mode
	// EntryID binds the form to an existing entry, set only in Edit mode.
	EntryID string
}

// Editor owns the form state and mediates between user intent and the
// repository. All outcomes the user should see go through the notifier.
type Editor struct {
	repo     *journal.Repository
	notifier notify.Notifier
	state    State
}

func New(repo *journal.Repository, notifier notify.Notifier) *Editor {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Editor{repo: repo, notifier: notifier}
}

func (ed *Editor) State() State {
	return ed.state
}

// SelectDate rebuilds the form for the given day: Edit with the stored
// values when an entry exists, otherwise a blank Create form.
func (ed *Editor) SelectDate(date time.Time) {
	if e := ed.repo.FindByDate(date); e != nil {
		ed.state = State{
			Date:    date,
			Title:   e.Title,
			Content: e.Content,
			Mood:    e.Mood,
			Mode:    Edit,
			EntryID: e.ID,
		}
		return
	}
	ed.state = State{
		Date: date,
		Mood: journal.Happy,
		Mode: Create,
	}
}

func (ed *Editor) EditTitle(title string)     { ed.state.Title = title }
func (ed *Editor) EditContent(content string) { ed.state.Content = content }
func (ed *Editor) EditMood(mood journal.Mood) { ed.state.Mood = mood }

// Submit validates and saves the form. Validation failures notify the user
// and leave the form untouched. On success the selection is re-run so the
// form binds to the saved entry in Edit mode.
func (ed *Editor) Submit() error {
	if ed.state.Mode == Idle {
		return errors.New("no date selected")
	}
	updating := ed.state.Mode == Edit

	_, err := ed.repo.Upsert(ed.state.Date, ed.state.Title, ed.state.Content, ed.state.Mood)
	if err != nil {
		if errors.Is(err, journal.ErrValidation) {
			ed.notifier.Notify("Error", "Please fill in all fields", notify.Error)
		} else {
			ed.notifier.Notify("Error", "Could not save entry", notify.Error)
		}
		return err
	}

	if updating {
		ed.notifier.Notify("Entry Updated", "Your journal entry has been updated.", notify.Success)
	} else {
		ed.notifier.Notify("Entry Saved", "Your journal entry has been saved.", notify.Success)
	}
	ed.SelectDate(ed.state.Date)
	return nil
}

// DeleteCurrent removes the entry the form is bound to. Only valid in Edit
// mode. The form resets to a blank Create state for the same day.
func (ed *Editor) DeleteCurrent() error {
	if ed.state.Mode != Edit {
		return errors.New("no entry selected")
	}
	ok, err := ed.repo.Remove(ed.state.EntryID)
	if err != nil {
		ed.notifier.Notify("Error", "Could not delete entry", notify.Error)
		return err
	}
	if ok {
		ed.notifier.Notify("Entry Deleted", "Your journal entry has been deleted.", notify.Success)
	}
	ed.SelectDate(ed.state.Date)
	return nil
}

// Cancel discards unsaved form edits by re-running the date selection,
// restoring the persisted values (or a blank Create form).
func (ed *Editor) Cancel() {
	if ed.state.Mode == Idle {
		return
	}
	ed.SelectDate(ed.state.Date)
}
