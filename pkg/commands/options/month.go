package options

import (
	"time"

	"github.com/spf13/cobra"
)

const layoutMonth = "2006-1"

// MonthOptions selects a calendar month view.
type MonthOptions struct {
	MonthString string
	All         bool
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Show a month calendar, example: --month="2024-03" or --month=now.`)
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Show every journal entry.")
}

func (o *MonthOptions) GetMonth() (*time.Time, error) {
	if o.MonthString == "" {
		return nil, nil
	}
	if o.MonthString == "now" {
		t := time.Now()
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
