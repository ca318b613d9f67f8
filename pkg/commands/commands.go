// Package commands wires the cobra command tree for the health journal.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"healthjournal/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
	debug  bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "healthjournal",
		Short: base.Wrap80("A daily health journal: how you felt, one entry per day."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable diagnostic logging.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSave(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addMoods(topLevel)
	addVersion(topLevel)
}
