package client

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/xrpl-tx-examples/batch"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

//go:generate mockgen -destination=client_mocks_test.go -package=client_test . XRPLRPCClient,XRPLTxSigner,XRPLTxMultiSigner,BatchResolver,BatchChecker

// XRPLRPCClient is XRPL RPC client interface.
type XRPLRPCClient interface {
	AutoFillTx(ctx context.Context, tx rippledata.Transaction, sender rippledata.Account, signatureCount uint32) error
	SubmitAndAwaitValidation(ctx context.Context, tx rippledata.Transaction) (xrpl.RawTxResult, error)
	GetXRPLBalances(ctx context.Context, acc rippledata.Account) ([]rippledata.Amount, error)
}

// XRPLTxSigner is XRPL transaction signer.
type XRPLTxSigner interface {
	Account() rippledata.Account
	Sign(tx rippledata.Transaction) error
}

// XRPLTxMultiSigner is XRPL transaction signer of the multi-signed transactions.
type XRPLTxMultiSigner interface {
	Account() rippledata.Account
	MultiSign(tx rippledata.MultiSignable) (rippledata.Signer, error)
}

// BatchResolver resolves statuses of the transactions.
type BatchResolver interface {
	ResolveStatuses(ctx context.Context, hashes []batch.InnerTxHash) []batch.InnerTxStatus
}

// BatchChecker checks batch transactions.
type BatchChecker interface {
	Check(ctx context.Context, batchHash string) (batch.Report, error)
}

// SignerEntry is a weighted signer of the multi-signing account.
type SignerEntry struct {
	Account rippledata.Account
	Weight  uint16
}

// LedgerClient builds, signs and submits XRPL transactions and inspects their results.
type LedgerClient struct {
	log           logger.Logger
	xrplRPCClient XRPLRPCClient
	batchResolver BatchResolver
	batchChecker  BatchChecker
}

// NewLedgerClient returns a new instance of the LedgerClient.
func NewLedgerClient(
	log logger.Logger,
	xrplRPCClient XRPLRPCClient,
	batchResolver BatchResolver,
	batchChecker BatchChecker,
) *LedgerClient {
	return &LedgerClient{
		log:           log,
		xrplRPCClient: xrplRPCClient,
		batchResolver: batchResolver,
		batchChecker:  batchChecker,
	}
}

// SendPayment sends XRP or issued token payment.
func (c *LedgerClient) SendPayment(
	ctx context.Context,
	sender XRPLTxSigner,
	recipient rippledata.Account,
	amount rippledata.Amount,
) (xrpl.RawTxResult, error) {
	if amount.Value == nil || amount.IsZero() || amount.IsNegative() {
		return xrpl.RawTxResult{}, errors.Errorf("payment amount must be positive, amount:%s", amount.String())
	}
	c.log.Info(
		ctx,
		"Sending XRPL payment",
		zap.String("sender", sender.Account().String()),
		zap.String("recipient", recipient.String()),
		zap.String("amount", amount.String()),
	)
	paymentTx := rippledata.Payment{
		Destination: recipient,
		Amount:      amount,
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.PAYMENT,
		},
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &paymentTx)
}

// SetTrustLine sends XRPL TrustSet transaction.
func (c *LedgerClient) SetTrustLine(
	ctx context.Context,
	sender XRPLTxSigner,
	limitAmount rippledata.Amount,
	noRipple bool,
) (xrpl.RawTxResult, error) {
	if limitAmount.Value == nil || limitAmount.IsNative() {
		return xrpl.RawTxResult{}, errors.New("trust line limit must be an issued token amount")
	}
	c.log.Info(
		ctx,
		"Sending XRPL TrustSet",
		zap.String("sender", sender.Account().String()),
		zap.String("limitAmount", limitAmount.String()),
	)
	trustSetTx := rippledata.TrustSet{
		LimitAmount: limitAmount,
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.TRUST_SET,
		},
	}
	if noRipple {
		trustSetTx.Flags = lo.ToPtr(rippledata.TxSetNoRipple)
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &trustSetTx)
}

// SetAccountFlag enables the account flag with the AccountSet transaction.
func (c *LedgerClient) SetAccountFlag(
	ctx context.Context,
	sender XRPLTxSigner,
	flag uint32,
) (xrpl.RawTxResult, error) {
	c.log.Info(ctx, "Setting XRPL account flag", zap.String("sender", sender.Account().String()), zap.Uint32("flag", flag))
	accountSetTx := rippledata.AccountSet{
		SetFlag: lo.ToPtr(flag),
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.ACCOUNT_SET,
		},
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &accountSetTx)
}

// ClearAccountFlag disables the account flag with the AccountSet transaction.
func (c *LedgerClient) ClearAccountFlag(
	ctx context.Context,
	sender XRPLTxSigner,
	flag uint32,
) (xrpl.RawTxResult, error) {
	c.log.Info(
		ctx, "Clearing XRPL account flag", zap.String("sender", sender.Account().String()), zap.Uint32("flag", flag),
	)
	accountSetTx := rippledata.AccountSet{
		ClearFlag: lo.ToPtr(flag),
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.ACCOUNT_SET,
		},
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &accountSetTx)
}

// CreateTickets allocates tickets with the TicketCreate transaction.
func (c *LedgerClient) CreateTickets(
	ctx context.Context,
	sender XRPLTxSigner,
	count uint32,
) (xrpl.RawTxResult, error) {
	if count == 0 || count > xrpl.MaxTicketsToAllocate {
		return xrpl.RawTxResult{}, errors.Errorf(
			"invalid tickets count, must be in range [1,%d], got:%d", xrpl.MaxTicketsToAllocate, count,
		)
	}
	c.log.Info(ctx, "Creating XRPL tickets", zap.String("sender", sender.Account().String()), zap.Uint32("count", count))
	ticketCreateTx := rippledata.TicketCreate{
		TicketCount: lo.ToPtr(count),
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.TICKET_CREATE,
		},
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &ticketCreateTx)
}

// SetSignerList replaces the signer list of the sender account with the SignerListSet transaction.
func (c *LedgerClient) SetSignerList(
	ctx context.Context,
	sender XRPLTxSigner,
	quorum uint32,
	entries []SignerEntry,
) (xrpl.RawTxResult, error) {
	if len(entries) > int(xrpl.MaxAllowedXRPLSigners) {
		return xrpl.RawTxResult{}, errors.Errorf(
			"too many signers, max:%d, got:%d", xrpl.MaxAllowedXRPLSigners, len(entries),
		)
	}
	totalWeight := lo.SumBy(entries, func(e SignerEntry) uint32 { return uint32(e.Weight) })
	if len(entries) > 0 && (quorum == 0 || quorum > totalWeight) {
		return xrpl.RawTxResult{}, errors.Errorf(
			"invalid signer quorum, must be in range [1,%d], got:%d", totalWeight, quorum,
		)
	}
	c.log.Info(
		ctx,
		"Setting XRPL signer list",
		zap.String("sender", sender.Account().String()),
		zap.Uint32("quorum", quorum),
		zap.Int("signers", len(entries)),
	)
	signerListSetTx := rippledata.SignerListSet{
		SignerQuorum: quorum,
		SignerEntries: lo.Map(entries, func(e SignerEntry, _ int) rippledata.SignerEntry {
			return rippledata.SignerEntry{
				SignerEntry: rippledata.SignerEntryItem{
					Account:      lo.ToPtr(e.Account),
					SignerWeight: lo.ToPtr(e.Weight),
				},
			}
		}),
		TxBase: rippledata.TxBase{
			TransactionType: rippledata.SIGNER_LIST_SET,
		},
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, &signerListSetTx)
}

// SubmitJSON decodes the JSON transaction and submits it. Any transaction supported by the codec can be used.
func (c *LedgerClient) SubmitJSON(
	ctx context.Context,
	sender XRPLTxSigner,
	txJSON json.RawMessage,
) (xrpl.RawTxResult, error) {
	tx, err := xrpl.DecodeTx(txJSON)
	if err != nil {
		return xrpl.RawTxResult{}, err
	}
	base := tx.GetBase()
	if base.Account != (rippledata.Account{}) && base.Account != sender.Account() {
		return xrpl.RawTxResult{}, errors.Errorf(
			"transaction account doesn't match the signer, account:%s, signer:%s",
			base.Account.String(), sender.Account().String(),
		)
	}

	return c.AutoFillSignAndSubmitTx(ctx, sender, tx)
}

// AutoFillSignAndSubmitTx fills the fee, account and sequence of the transaction, signs it, submits and waits
// for the validation.
func (c *LedgerClient) AutoFillSignAndSubmitTx(
	ctx context.Context,
	sender XRPLTxSigner,
	tx rippledata.Transaction,
) (xrpl.RawTxResult, error) {
	if err := c.xrplRPCClient.AutoFillTx(ctx, tx, sender.Account(), 0); err != nil {
		return xrpl.RawTxResult{}, err
	}
	if err := sender.Sign(tx); err != nil {
		return xrpl.RawTxResult{}, err
	}

	return c.submit(ctx, tx)
}

// MultiSignAndSubmitTx submits the transaction of the multi-signing account signed by all the provided signers.
// The buildTx must return the same unsigned transaction on each call, the copy is signed by each signer.
func (c *LedgerClient) MultiSignAndSubmitTx(
	ctx context.Context,
	account rippledata.Account,
	buildTx func() rippledata.Transaction,
	signers []XRPLTxMultiSigner,
) (xrpl.RawTxResult, error) {
	if len(signers) == 0 {
		return xrpl.RawTxResult{}, errors.New("at least one signer is required")
	}
	tx, err := asMultiSignable(buildTx())
	if err != nil {
		return xrpl.RawTxResult{}, err
	}
	if err := c.xrplRPCClient.AutoFillTx(ctx, tx, account, uint32(len(signers))); err != nil {
		return xrpl.RawTxResult{}, err
	}
	// the multi-signed transaction must have an empty signing public key
	tx.GetBase().SigningPubKey = &rippledata.PublicKey{}
	filledBase := *tx.GetBase()

	txSigners := make([]rippledata.Signer, 0, len(signers))
	for _, signer := range signers {
		signerTx, err := asMultiSignable(buildTx())
		if err != nil {
			return xrpl.RawTxResult{}, err
		}
		*signerTx.GetBase() = filledBase
		// the signing key is written by the signer, so each copy owns its pointer
		signerTx.GetBase().SigningPubKey = &rippledata.PublicKey{}
		txSigner, err := signer.MultiSign(signerTx)
		if err != nil {
			return xrpl.RawTxResult{}, err
		}
		txSigners = append(txSigners, txSigner)
	}
	if err := rippledata.SetSigners(tx, txSigners...); err != nil {
		return xrpl.RawTxResult{}, errors.Wrap(err, "failed to set transaction signers")
	}

	return c.submit(ctx, tx)
}

// GetXRPLBalances returns XRPL account balances.
func (c *LedgerClient) GetXRPLBalances(ctx context.Context, acc rippledata.Account) ([]rippledata.Amount, error) {
	return c.xrplRPCClient.GetXRPLBalances(ctx, acc)
}

// GetTxStatuses resolves the statuses of the transactions. The indexes of the result follow the order of hashes
// starting from one.
func (c *LedgerClient) GetTxStatuses(ctx context.Context, hashes []string) []batch.InnerTxStatus {
	return c.batchResolver.ResolveStatuses(ctx, lo.Map(hashes, func(hash string, i int) batch.InnerTxHash {
		return batch.InnerTxHash{
			Hash:  hash,
			Index: i + 1,
		}
	}))
}

// CheckBatch returns the Report of the batch transaction.
func (c *LedgerClient) CheckBatch(ctx context.Context, batchHash string) (batch.Report, error) {
	return c.batchChecker.Check(ctx, batchHash)
}

func (c *LedgerClient) submit(ctx context.Context, tx rippledata.Transaction) (xrpl.RawTxResult, error) {
	txRes, err := c.xrplRPCClient.SubmitAndAwaitValidation(ctx, tx)
	if err != nil {
		return txRes, err
	}
	c.log.Info(ctx, "Successfully submitted transaction", zap.String("txHash", txRes.Hash))

	return txRes, nil
}

type multiSignableTx interface {
	rippledata.Transaction
	rippledata.MultiSignable
}

func asMultiSignable(tx rippledata.Transaction) (multiSignableTx, error) {
	multiSignable, ok := tx.(multiSignableTx)
	if !ok {
		return nil, errors.Errorf("transaction %s doesn't support multi-signing", tx.GetTransactionType())
	}

	return multiSignable, nil
}
