package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func rateCmd(ctx context.Context) *cobra.Command {
	var (
		snapshotName string
		save         bool
	)

	cmd := &cobra.Command{
		Use:   "rate CODE [CODE...]",
		Short: "Look up single quotes from one reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			codes, err := normalizeCodes(args)
			if err != nil {
				return err
			}

			data, err := loadRates(ctx, out, snapshotName, save, codes)
			if err != nil {
				return err
			}

			parser, err := newParser()
			if err != nil {
				return err
			}

			for _, code := range codes {
				rate := parser.ParseOne(code, data)
				if rate == 0 {
					fmt.Fprintf(out, "%s = not found\n", code)
					continue
				}
				fmt.Fprintf(out, "%s = %v\n", code, rate)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotName, "snapshot", "", `Saved reply to parse instead of querying ("latest" picks the newest)`)
	cmd.Flags().BoolVar(&save, "save", false, "Save the reply for later --snapshot runs")

	return cmd
}
