package options

import (
	"github.com/spf13/cobra"

	"healthjournal/pkg/journal"
)

// MoodOptions captures the mood flag.
type MoodOptions struct {
	MoodString string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.MoodString, "mood", "m", "happy",
		`How you are feeling. One of "happy", "sad", or "angry".`)
}

func (o *MoodOptions) GetMood() (journal.Mood, error) {
	if o.MoodString == "" {
		return journal.Happy, nil
	}
	return journal.MoodForAlias(o.MoodString)
}
