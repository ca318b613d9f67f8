package commands

import (
	"os"

	"github.com/rs/zerolog"

	"healthjournal/pkg/journal"
	"healthjournal/pkg/store"
)

// loadRepository opens the configured store and loads the journal.
func loadRepository() (*journal.Repository, *store.Disk, error) {
	disk, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	return journal.NewRepository(disk, logger()), disk, nil
}

func logger() zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
