package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/app"
	"github.com/dongho-jung/droidset/internal/settings"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [NAME | namespace/setting]",
		Short: "Show previously written values",
		Long: `Show the values written with put or the settings screen, most recent
first. With a key, only its distinct values are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New()
			if err != nil {
				return err
			}
			hist := application.History()
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				key, err := resolveKey(settings.DefaultCatalog(), args[0])
				if err != nil {
					return err
				}
				values, err := hist.Values(key)
				if err != nil {
					return err
				}
				for _, v := range values {
					fmt.Fprintln(out, v)
				}
				return nil
			}

			entries, err := hist.Load()
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", e.Timestamp.Local().Format(time.DateTime), e.Key, e.Type, e.Value)
			}
			return nil
		},
	}
}
