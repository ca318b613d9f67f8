package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"healthjournal/pkg/commands/options"
	"healthjournal/pkg/notify"
	"healthjournal/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	mo := &options.MoodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "save <title> -- <content...>",
		Short: "Save the journal entry for a day",
		Long: "Save the journal entry for a day, creating it or updating the " +
			"existing one. A day holds at most one entry.",
		Example: `
healthjournal save "Slept well" -- Eight hours, no headaches.
healthjournal save --on 2024-03-01 --mood sad "Rough day" -- Migraine was back.
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			if cmd.ArgsLenAtDash() > 1 {
				return errors.New("too many arguments before --, quote the title")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			mood, err := mo.GetMood()
			if err != nil {
				return err
			}

			title := args[0]
			content := strings.Join(args[1:], " ")

			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := save.Save{
				On:         on,
				Title:      title,
				Content:    content,
				Mood:       mood,
				ShowID:     io.ShowID,
				Repository: repo,
				Notifier:   notify.Pretty{},
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddMoodArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
