package commands

import (
	"context"

	"github.com/spf13/cobra"

	"healthjournal/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive journal",
		Example: `
healthjournal ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, disk, err := loadRepository()
			if err != nil {
				return err
			}
			i := tui.UI{Repository: repo, Disk: disk}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
