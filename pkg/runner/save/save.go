package save

import (
	"context"
	"errors"
	"time"

	"healthjournal/pkg/editor"
	"healthjournal/pkg/journal"
	"healthjournal/pkg/notify"
	"healthjournal/pkg/printers"
)

// Save writes the journal entry for a day, creating or updating it.
type Save struct {
	On      *time.Time
	Title   string
	Content string
	Mood    journal.Mood
	ShowID  bool

	Repository *journal.Repository
	Notifier   notify.Notifier
}

func (n *Save) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not save, no repository")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}

	ed := editor.New(n.Repository, n.Notifier)
	ed.SelectDate(on)
	ed.EditTitle(n.Title)
	ed.EditContent(n.Content)
	ed.EditMood(n.Mood)
	if err := ed.Submit(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Entry(n.Repository.FindByDate(on))

	return nil
}
