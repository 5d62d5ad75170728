package cli

import (
	"cmp"
	"context"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/xrpl-tx-examples/client"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/runner"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

const sampleAddress = "rwPpi6BnAxvvEu75m8GtGtFRDFvMAUuiG3"

// TxCmd returns aggregated XRPL transaction commands.
func TxCmd(lcp LedgerClientProvider) *cobra.Command {
	txCmd := &cobra.Command{
		Use:   TxCLIUse,
		Short: "XRPL transactions.",
	}
	txCmd.AddCommand(PaymentCmd(lcp))
	txCmd.AddCommand(TrustSetCmd(lcp))
	txCmd.AddCommand(SetAccountFlagCmd(lcp))
	txCmd.AddCommand(ClearAccountFlagCmd(lcp))
	txCmd.AddCommand(CreateTicketsCmd(lcp))
	txCmd.AddCommand(SetSignerListCmd(lcp))
	txCmd.AddCommand(SubmitJSONCmd(lcp))

	AddSeedFlags(txCmd)
	AddHomeFlag(txCmd)

	return txCmd
}

// QueryCmd returns aggregated XRPL query commands.
func QueryCmd(lcp LedgerClientProvider) *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   QueryCLIUse,
		Short: "XRPL queries.",
	}
	queryCmd.AddCommand(XRPLBalancesCmd(lcp))
	queryCmd.AddCommand(TxStatusCmd(lcp))
	queryCmd.AddCommand(BatchStatusCmd(lcp))

	AddHomeFlag(queryCmd)

	return queryCmd
}

// ********** TX **********

// PaymentCmd sends XRP or issued token payment.
func PaymentCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "payment [recipient] [amount] [issuer] [currency]",
		Short: "Send XRP or issued token payment.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Send XRP or issued token payment. The XRP amount is set in drops.
Example:
$ payment %s 1000000 %s %s --%s sender-seed
`,
				sampleAddress,
				xrpl.XRPTokenIssuer.String(),
				xrpl.ConvertCurrencyToString(xrpl.XRPTokenCurrency),
				FlagSeed,
			),
		),
		Args: cobra.ExactArgs(4),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				recipient, err := rippledata.NewAccountFromAddress(args[0])
				if err != nil {
					return errors.Wrapf(err, "failed to convert recipient string to rippledata.Account: %s", args[0])
				}
				amount, err := parseAmount(args[1], args[2], args[3])
				if err != nil {
					return err
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.SendPayment(cmd.Context(), sender, *recipient, amount)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// TrustSetCmd sends the XRPL TrustSet transaction.
func TrustSetCmd(lcp LedgerClientProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trust-set [amount] [issuer] [currency]",
		Short: "Send XRPL trust set transaction to allow the sender receive the token.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Send XRPL trust set transaction to allow the sender receive the token.
Example:
$ trust-set 1e80 %s USD --%s sender-seed
`, sampleAddress, FlagSeed),
		),
		Args: cobra.ExactArgs(3),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				limitAmount, err := parseAmount(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				noRipple, err := cmd.Flags().GetBool(FlagNoRipple)
				if err != nil {
					return errors.Wrapf(err, "failed to get flag %s", FlagNoRipple)
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.SetTrustLine(cmd.Context(), sender, limitAmount, noRipple)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
	cmd.Flags().Bool(FlagNoRipple, false, "Disable rippling on the trust line")

	return cmd
}

// SetAccountFlagCmd enables the account flag.
func SetAccountFlagCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "set-account-flag [flag]",
		Short: "Enable the account flag with the AccountSet transaction.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Enable the account flag with the AccountSet transaction. The flag is a name or a number.
Names: %s
Example:
$ set-account-flag defaultRipple --%s sender-seed
`, strings.Join(accountSetFlagNames(), ", "), FlagSeed),
		),
		Args: cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				flag, err := parseAccountSetFlag(args[0])
				if err != nil {
					return err
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.SetAccountFlag(cmd.Context(), sender, flag)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// ClearAccountFlagCmd disables the account flag.
func ClearAccountFlagCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-account-flag [flag]",
		Short: "Disable the account flag with the AccountSet transaction.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Disable the account flag with the AccountSet transaction. The flag is a name or a number.
Example:
$ clear-account-flag requireDest --%s sender-seed
`, FlagSeed),
		),
		Args: cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				flag, err := parseAccountSetFlag(args[0])
				if err != nil {
					return err
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.ClearAccountFlag(cmd.Context(), sender, flag)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// CreateTicketsCmd allocates tickets.
func CreateTicketsCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "create-tickets [count]",
		Short: "Allocate tickets with the TicketCreate transaction.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Allocate tickets with the TicketCreate transaction.
Example:
$ create-tickets 10 --%s sender-seed
`, FlagSeed),
		),
		Args: cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				count, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return errors.Wrapf(err, "invalid tickets count: %s", args[0])
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.CreateTickets(cmd.Context(), sender, uint32(count))
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// SetSignerListCmd replaces the signer list of the account.
func SetSignerListCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "set-signer-list [quorum] [account:weight]...",
		Short: "Replace the signer list of the sender account. The list is removed if no signers are provided.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Replace the signer list of the sender account with the SignerListSet transaction.
Example:
$ set-signer-list 2 %s:1 rhFXgxqXMChyath7CkCHc2J8jJxPu8JftS:1 --%s sender-seed
`, sampleAddress, FlagSeed),
		),
		Args: cobra.MinimumNArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				quorum, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return errors.Wrapf(err, "invalid quorum: %s", args[0])
				}
				entries := make([]client.SignerEntry, 0, len(args)-1)
				for _, arg := range args[1:] {
					entry, err := parseSignerEntry(arg)
					if err != nil {
						return err
					}
					entries = append(entries, entry)
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.SetSignerList(cmd.Context(), sender, uint32(quorum), entries)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// SubmitJSONCmd submits the transaction from the JSON file.
func SubmitJSONCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "submit-json [file-path]",
		Short: "Submit any transaction supported by the codec from the JSON file.",
		Long: strings.TrimSpace(
			fmt.Sprintf(`Submit any transaction supported by the codec from the JSON file.
The fee, account and sequence are filled in automatically.
Example:
$ submit-json offer-create.json --%s sender-seed
`, FlagSeed),
		),
		Args: cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				txJSON, err := os.ReadFile(args[0])
				if err != nil {
					return errors.Wrapf(err, "failed to read transaction file, path:%s", args[0])
				}
				sender, err := getTxSigner(cmd)
				if err != nil {
					return err
				}

				txRes, err := ledgerClient.SubmitJSON(cmd.Context(), sender, txJSON)
				return logTxResult(cmd.Context(), components.Log, txRes, err)
			}),
	}
}

// ********** Query **********

// XRPLBalancesCmd prints XRPL balances.
func XRPLBalancesCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "balances [address]",
		Short: "Print XRPL balances of the provided address.",
		Args:  cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				ctx := cmd.Context()

				acc, err := rippledata.NewAccountFromAddress(args[0])
				if err != nil {
					return errors.Wrapf(err, "failed to convert address to rippledata.Address, address:%s", args[0])
				}
				balances, err := ledgerClient.GetXRPLBalances(ctx, *acc)
				if err != nil {
					return err
				}

				balancesFormatted := lo.Map(balances, func(amount rippledata.Amount, index int) string {
					return fmt.Sprintf(
						"%s/%s %s",
						amount.Issuer.String(),
						xrpl.ConvertCurrencyToString(amount.Currency),
						amount.Value.String(),
					)
				})

				components.Log.Info(ctx, "Got balances: [issuer/currency amount]", zap.Any("balances", balancesFormatted))
				return nil
			}),
	}
}

// TxStatusCmd prints the statuses of the transactions.
func TxStatusCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "tx-status [hash]...",
		Short: "Print the ledger result of each transaction.",
		Args:  cobra.MinimumNArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				ctx := cmd.Context()
				for _, status := range ledgerClient.GetTxStatuses(ctx, args) {
					components.Log.Info(
						ctx,
						"Transaction status",
						zap.String("hash", status.Hash),
						zap.Bool("successful", status.Successful),
						zap.String("status", status.Status),
					)
				}
				return nil
			}),
	}
}

// BatchStatusCmd prints the report of the batch transaction.
func BatchStatusCmd(lcp LedgerClientProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "batch-status [hash]",
		Short: "Print the outcome of the batch transaction and each of its inner transactions.",
		Long: strings.TrimSpace(`Print the outcome of the batch transaction and each of its inner transactions.
The outer batch transaction is reported as successful even if the inner transactions fail, so the inner
transactions are looked up one by one.
Example:
$ batch-status 7E0A2B6D5C3B6E6B9C1E2F4A8D0F3E5C7B9A1D2E3F4A5B6C7D8E9F0A1B2C3D4E
`),
		Args: cobra.ExactArgs(1),
		RunE: runLedgerCmd(lcp,
			func(cmd *cobra.Command, args []string, components runner.Components, ledgerClient LedgerClient) error {
				ctx := cmd.Context()
				report, err := ledgerClient.CheckBatch(ctx, args[0])
				if err != nil {
					return err
				}

				components.Log.Info(
					ctx,
					"Batch status",
					zap.String("hash", report.BatchHash),
					zap.String("mode", string(report.Mode)),
					zap.String("outerResult", report.OuterResult),
					zap.String("outcome", report.Outcome()),
				)
				for _, status := range report.Inner {
					components.Log.Info(
						ctx,
						"Inner transaction status",
						zap.Int("index", status.Index),
						zap.String("hash", status.Hash),
						zap.Bool("successful", status.Successful),
						zap.String("status", status.Status),
					)
				}
				return nil
			}),
	}
}

func logTxResult(ctx context.Context, log logger.Logger, txRes xrpl.RawTxResult, err error) error {
	if err != nil {
		return err
	}
	log.Info(
		ctx,
		"Transaction is validated",
		zap.String("hash", txRes.Hash),
		zap.String("type", txRes.TransactionType),
		zap.String("result", txRes.ResultCode()),
		zap.Uint32("ledger", txRes.LedgerIndex),
	)

	return nil
}

func parseAmount(valueString, issuerString, currencyString string) (rippledata.Amount, error) {
	issuer, err := rippledata.NewAccountFromAddress(issuerString)
	if err != nil {
		return rippledata.Amount{}, errors.Wrapf(
			err, "failed to convert issuer string to rippledata.Account: %s", issuerString,
		)
	}
	currency, err := xrpl.ParseCurrency(currencyString)
	if err != nil {
		return rippledata.Amount{}, err
	}

	isNative := currency == xrpl.XRPTokenCurrency && *issuer == xrpl.XRPTokenIssuer
	value, err := rippledata.NewValue(valueString, isNative)
	if err != nil {
		return rippledata.Amount{}, errors.Wrapf(err, "failed to amount to rippledata.Value: %s", valueString)
	}

	return rippledata.Amount{
		Value:    value,
		Currency: currency,
		Issuer:   *issuer,
	}, nil
}

func parseAccountSetFlag(flag string) (uint32, error) {
	if value, ok := xrpl.AccountSetFlags[flag]; ok {
		return value, nil
	}
	value, err := strconv.ParseUint(flag, 10, 32)
	if err != nil {
		return 0, errors.Errorf("unknown account set flag: %q", flag)
	}

	return uint32(value), nil
}

func accountSetFlagNames() []string {
	names := lo.Keys(xrpl.AccountSetFlags)
	slices.SortFunc(names, func(a, b string) int {
		return cmp.Compare(xrpl.AccountSetFlags[a], xrpl.AccountSetFlags[b])
	})

	return names
}

func parseSignerEntry(entry string) (client.SignerEntry, error) {
	address, weightString, ok := strings.Cut(entry, ":")
	if !ok {
		return client.SignerEntry{}, errors.Errorf("invalid signer entry, expected account:weight, got:%s", entry)
	}
	acc, err := rippledata.NewAccountFromAddress(address)
	if err != nil {
		return client.SignerEntry{}, errors.Wrapf(err, "invalid signer account: %s", address)
	}
	weight, err := strconv.ParseUint(weightString, 10, 16)
	if err != nil {
		return client.SignerEntry{}, errors.Wrapf(err, "invalid signer weight: %s", weightString)
	}

	return client.SignerEntry{
		Account: *acc,
		Weight:  uint16(weight),
	}, nil
}
