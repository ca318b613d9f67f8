package commands

import (
	"context"

	"github.com/spf13/cobra"

	"healthjournal/pkg/commands/options"
	"healthjournal/pkg/notify"
	"healthjournal/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the journal entry for a day",
		Example: `
healthjournal delete --on 2024-03-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			r := remove.Remove{
				On:         on,
				Repository: repo,
				Notifier:   notify.Pretty{},
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
