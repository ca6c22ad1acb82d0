package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"service-fxrates/internal/rates"
)

func convertCmd(ctx context.Context) *cobra.Command {
	var snapshotName string

	cmd := &cobra.Command{
		Use:   "convert FROM TO AMOUNT",
		Short: "Convert an amount between two currencies through the quoted table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			from, err := rates.NormalizeCode(args[0])
			if err != nil {
				return err
			}
			to, err := rates.NormalizeCode(args[1])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("amount %q is not a number", args[2])
			}

			parser, err := newParser()
			if err != nil {
				return err
			}

			// The base never appears as its own quote, so ask only for
			// the other legs of the conversion.
			currencies := make([]string, 0, 2)
			for _, code := range []string{from, to} {
				if code != parser.Base() {
					currencies = append(currencies, code)
				}
			}

			data, err := loadRates(ctx, out, snapshotName, false, currencies)
			if err != nil {
				return err
			}

			rate, err := parser.ParseAll(data).Cross(parser.Base(), from, to)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%.2f %s = %.2f %s (rate %.6f)\n", amount, from, amount*rate, to, rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotName, "snapshot", "", `Saved reply to parse instead of querying ("latest" picks the newest)`)

	return cmd
}
