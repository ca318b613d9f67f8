// Package moods provides the CLI helper that displays the mood legend.
package moods

import (
	"context"

	"healthjournal/pkg/printers"
)

// Moods prints the mood legend to stdout.
type Moods struct{}

func (k *Moods) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Moods()
	return nil
}
