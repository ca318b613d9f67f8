// Package tui runs the interactive journal over the repository.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea/v2"

	"healthjournal/pkg/journal"
	"healthjournal/pkg/store"
)

// UI opens the terminal journal. When Disk is set, external writes to the
// store refresh the running view.
type UI struct {
	Repository *journal.Repository
	Disk       *store.Disk
}

func (u *UI) Do(ctx context.Context) error {
	if u.Repository == nil {
		return errors.New("can not open ui, no repository")
	}

	p := tea.NewProgram(New(u.Repository), tea.WithAltScreen())

	if u.Disk != nil {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		events, err := u.Disk.Watch(ctx)
		if err != nil {
			return err
		}
		go func() {
			for range events {
				p.Send(storeChangedMsg{})
			}
		}()
	}

	_, err := p.Run()
	return err
}
