package show

import (
	"context"
	"errors"
	"time"

	"healthjournal/pkg/journal"
	"healthjournal/pkg/printers"
)

// Show prints one day's entry, a month calendar, or the whole journal.
type Show struct {
	On     *time.Time
	Month  *time.Time
	All    bool
	ShowID bool

	Repository *journal.Repository
}

func (n *Show) Do(ctx context.Context) error {
	if n.Repository == nil {
		return errors.New("can not show, no repository")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()

	switch {
	case n.All:
		pp.Title("Health Journal")
		pp.NewLine()
		pp.Table(n.Repository.All())
	case n.Month != nil:
		pp.Month(*n.Month, n.Repository.All())
	default:
		on := time.Now()
		if n.On != nil {
			on = *n.On
		}
		pp.Entry(n.Repository.FindByDate(on))
	}

	return nil
}
