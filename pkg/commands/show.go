package commands

import (
	"context"

	"github.com/spf13/cobra"

	"healthjournal/pkg/commands/options"
	"healthjournal/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	mo := &options.MonthOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show journal entries",
		Example: `
healthjournal show
healthjournal show --on 2024-03-01
healthjournal show --month 2024-03
healthjournal show --all
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			month, err := mo.GetMonth()
			if err != nil {
				return err
			}

			repo, _, err := loadRepository()
			if err != nil {
				return err
			}
			s := show.Show{
				On:         on,
				Month:      month,
				All:        mo.All,
				ShowID:     io.ShowID,
				Repository: repo,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddMonthArgs(cmd, mo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
