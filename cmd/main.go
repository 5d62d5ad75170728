package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/CoreumFoundation/coreum-tools/pkg/run"
	"github.com/CoreumFoundation/xrpl-tx-examples/client"
	"github.com/CoreumFoundation/xrpl-tx-examples/cmd/cli"
	"github.com/CoreumFoundation/xrpl-tx-examples/runner"
)

func main() {
	run.Tool("xrpl-tx-examples", func(ctx context.Context) error {
		rootCmd := RootCmd(ctx)
		if err := rootCmd.Execute(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		return nil
	})
}

// RootCmd returns the root cmd.
//
//nolint:contextcheck // the context is passed in the command
func RootCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xrpl-tx-examples",
		Short: "XRPL transaction examples and Batch outcome inspector.",
	}
	cmd.SetContext(ctx)

	cmd.AddCommand(cli.InitCmd())
	cmd.AddCommand(cli.StartCmd(runnerProvider))
	cmd.AddCommand(cli.TxCmd(ledgerClientProvider))
	cmd.AddCommand(cli.QueryCmd(ledgerClientProvider))
	cmd.AddCommand(cli.VersionCmd())

	return cmd
}

func ledgerClientProvider(components runner.Components) (cli.LedgerClient, error) {
	return client.NewLedgerClient(
		components.Log,
		components.XRPLRPCClient,
		components.BatchResolver,
		components.BatchChecker,
	), nil
}

func runnerProvider(cmd *cobra.Command) (cli.Runner, error) {
	rnr, err := cli.NewRunnerFromHome(cmd)
	if err != nil {
		return nil, err
	}

	return rnr, nil
}
