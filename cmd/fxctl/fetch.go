package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func fetchCmd(ctx context.Context) *cobra.Command {
	var (
		snapshotName string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "fetch [CODE...]",
		Short: "Query exchange rates and print every quote found in the reply",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			currencies, err := normalizeCodes(args)
			if err != nil {
				return err
			}

			data, err := loadRates(ctx, out, snapshotName, save, currencies)
			if err != nil {
				return err
			}

			parser, err := newParser()
			if err != nil {
				return err
			}

			table := parser.ParseAll(data)
			fmt.Fprintln(out, "All exchange rates from the service:")
			for _, code := range table.Codes() {
				rate, _ := table.Rate(code)
				fmt.Fprintf(out, "%s-%s = %.6f\n", parser.Base(), code, rate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotName, "snapshot", "", `Saved reply to parse instead of querying ("latest" picks the newest)`)
	cmd.Flags().BoolVar(&save, "save", false, "Save the reply for later --snapshot runs")

	return cmd
}
