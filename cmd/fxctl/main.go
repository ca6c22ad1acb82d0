// fxctl walks through one exchange-rate query by hand: call the
// currencylayer live endpoint (or replay a saved reply), scan the raw
// text for quote pairs and print what came out. It shares the parser and
// client with the fxrates daemon but needs no database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"service-fxrates/internal/clients/currencylayer"
	"service-fxrates/internal/rates"
	"service-fxrates/internal/repository/snapshots"
)

var (
	rootCmd = &cobra.Command{
		Use:          "fxctl",
		Short:        "Query the currencylayer web service, parse the reply, convert amounts",
		Version:      "v1.0.0",
		SilenceUsage: true,
	}
	configFile string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := execute(ctx); err != nil {
		os.Exit(1)
	}
}

func execute(ctx context.Context) error {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./fxctl.yml", "Path to config file")
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(fetchCmd(ctx), rateCmd(ctx), convertCmd(ctx))

	return rootCmd.Execute()
}

func initConfig() {
	absolutePath, _ := filepath.Abs(configFile)

	viper.SetConfigFile(absolutePath)
	viper.SetEnvPrefix("CURRENCYLAYER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("source", rates.DefaultBase)
	viper.SetDefault("snapshot-dir", ".")

	// The config file is optional, environment variables alone are fine.
	_ = viper.ReadInConfig()
}

func newClient() (*currencylayer.Client, error) {
	apiKey := strings.TrimSpace(viper.GetString("api-key"))
	if apiKey == "" {
		return nil, fmt.Errorf(
			"access key is not configured: set api-key in %s or export CURRENCYLAYER_API_KEY (sign up at https://currencylayer.com)",
			configFile)
	}

	client := currencylayer.New(apiKey)
	if u := viper.GetString("base-url"); u != "" {
		client.BaseURL = u
	}
	if src := viper.GetString("source"); src != rates.DefaultBase {
		client.Source = src
	}
	return client, nil
}

func newParser() (*rates.Parser, error) {
	return rates.NewParser(viper.GetString("source"))
}

func normalizeCodes(args []string) ([]string, error) {
	codes := make([]string, 0, len(args))
	for _, arg := range args {
		code, err := rates.NormalizeCode(arg)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// loadRates hands back one raw reply body: a saved one when snapshotName
// is set, a live query otherwise. Saving a live reply is best effort; a
// write failure never fails the command that fetched good data.
func loadRates(ctx context.Context, out io.Writer, snapshotName string, save bool, currencies []string) (string, error) {
	store := snapshots.New(viper.GetString("snapshot-dir"))

	if snapshotName != "" {
		if snapshotName == "latest" {
			data, name, err := store.Latest()
			if err != nil {
				return "", err
			}
			fmt.Fprintf(out, "Using saved query result in file %s\n", name)
			return data, nil
		}

		data, err := store.Load(snapshotName)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(out, "Using saved query result in file %s\n", snapshotName)
		return data, nil
	}

	client, err := newClient()
	if err != nil {
		return "", err
	}

	fmt.Fprintln(out, "Calling web service for exchange rates")
	data, err := client.Live(ctx, currencies)
	if err != nil {
		return "", err
	}

	if save {
		if name, err := store.Save(data); err != nil {
			fmt.Fprintf(os.Stderr, "could not save query result: %v\n", err)
		} else {
			fmt.Fprintf(out, "Saved query result to %s\n", name)
		}
	}
	return data, nil
}
