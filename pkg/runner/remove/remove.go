package remove

import (
	"context"
	"errors"
	"time"

	"healthjournal/pkg/editor"
	"healthjournal/pkg/journal"
	"healthjournal/pkg/notify"
)

// Remove deletes the journal entry for a day, if one exists.
type Remove struct {
	On *time.Time

	Repository *journal.Repository
	Notifier   notify.Notifier
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not delete, no repository")
	}

	on := time.Now()
	if n.On != nil {
		on = *n.On
	}

	ed := editor.New(n.Repository, n.Notifier)
	ed.SelectDate(on)
	if ed.State().Mode != editor.Edit {
		if n.Notifier != nil {
			n.Notifier.Notify("Nothing To Delete", "No entry exists for that day.", notify.Info)
		}
		return nil
	}
	return ed.DeleteCurrent()
}
