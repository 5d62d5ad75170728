//nolint:tagliatelle // XRPL JSON field names
package xrpl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
	"go.uber.org/zap"

	"github.com/CoreumFoundation/coreum-tools/pkg/retry"
	"github.com/CoreumFoundation/xrpl-tx-examples/logger"
	"github.com/CoreumFoundation/xrpl-tx-examples/tracing"
)

//go:generate mockgen -destination=rpc_mocks_test.go -package=xrpl_test . HTTPClient,RPCMetricRegistry

// TxNotFoundErrorName is the RPC error name returned when the transaction is not found.
const TxNotFoundErrorName = "txnNotFound"

// ******************** RPC command request objects ********************

// RPCError is RPC error result.
type RPCError struct {
	Name      string `json:"error"`
	Code      int    `json:"error_code"`
	Message   string `json:"error_message"`
	Exception string `json:"error_exception"`
}

// Error returns error string for the RPCError.
func (e *RPCError) Error() string {
	return fmt.Sprintf("failed to call RPC, error:%s, error code:%d, error message:%s, error exception:%s",
		e.Name, e.Code, e.Message, e.Exception)
}

// IsNotFoundError returns true if the error is RPC error indicating that the transaction is not found.
func IsNotFoundError(err error) bool {
	var rpcErr *RPCError
	if !errors.As(err, &rpcErr) {
		return false
	}

	return rpcErr.Name == TxNotFoundErrorName
}

// AccountDataWithSigners is account data with the signers list.
type AccountDataWithSigners struct {
	rippledata.AccountRoot
	SignerList []rippledata.SignerList `json:"signer_lists"`
}

// AccountInfoRequest is `account_info` method request.
type AccountInfoRequest struct {
	Account     rippledata.Account `json:"account"`
	SignerLists bool               `json:"signer_lists"`
}

// AccountInfoResult is `account_info` method result.
type AccountInfoResult struct {
	LedgerSequence uint32                 `json:"ledger_current_index"`
	AccountData    AccountDataWithSigners `json:"account_data"`
}

// AccountLinesRequest is `account_lines` method request.
type AccountLinesRequest struct {
	Account     rippledata.Account  `json:"account"`
	Limit       uint32              `json:"limit"`
	LedgerIndex any                 `json:"ledger_index,omitempty"`
	Marker      *rippledata.Hash256 `json:"marker,omitempty"`
}

// AccountLinesResult is `account_lines` method result.
type AccountLinesResult struct {
	LedgerSequence *uint32                     `json:"ledger_index"`
	Account        rippledata.Account          `json:"account"`
	Marker         *rippledata.Hash256         `json:"marker"`
	Lines          rippledata.AccountLineSlice `json:"lines"`
}

// SubmitRequest is `submit` method request.
type SubmitRequest struct {
	TxBlob string `json:"tx_blob"`
}

// SubmitResult is `submit` method result. The engine result is kept as string since the node might return the
// result codes which are unknown by the codec.
type SubmitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultCode    int    `json:"engine_result_code"`
	EngineResultMessage string `json:"engine_result_message"`
	TxBlob              string `json:"tx_blob"`
	Tx                  any    `json:"tx_json"`
}

// TxRequest is `tx` method request.
type TxRequest struct {
	Transaction string `json:"transaction"`
	Binary      bool   `json:"binary"`
}

// LedgerCurrentResult is `ledger_current` method result.
type LedgerCurrentResult struct {
	LedgerCurrentIndex int64  `json:"ledger_current_index"`
	Status             string `json:"status"`
}

// AccountTxRequest is `account_tx` method request.
type AccountTxRequest struct {
	Account   rippledata.Account `json:"account"`
	MinLedger int64              `json:"ledger_index_min"`
	MaxLedger int64              `json:"ledger_index_max"`
	Binary    bool               `json:"binary,omitempty"`
	Forward   bool               `json:"forward,omitempty"`
	Limit     uint32             `json:"limit,omitempty"`
	Marker    map[string]any     `json:"marker,omitempty"`
}

// AccountTxWithRawTxsResult is `account_tx` method result with not decoded transactions.
type AccountTxWithRawTxsResult struct {
	Marker       map[string]any    `json:"marker,omitempty"`
	Transactions []json.RawMessage `json:"transactions,omitempty"`
	Validated    bool              `json:"validated"`
}

// AccountTxResult is `account_tx` method result.
type AccountTxResult struct {
	Marker       map[string]any
	Transactions []RawTxResult
	Validated    bool
}

// ******************** RPC transport objects ********************

// RPCRequest is the JSON-RPC request.
type RPCRequest struct {
	Method string `json:"method"`
	Params []any  `json:"params,omitempty"`
}

// RPCResponse is the JSON-RPC response.
type RPCResponse struct {
	Result any `json:"result"`
}

// ******************** XRPL RPC Client ********************

// HTTPClient is HTTP client interface.
type HTTPClient interface {
	DoJSON(ctx context.Context, method, url string, reqBody any, resDecoder func([]byte) error) error
}

// RPCMetricRegistry is the metric registry used by the RPCClient.
type RPCMetricRegistry interface {
	IncrementXRPLRPCDecodingErrorCounter()
}

// RPCClientConfig defines the config for the RPCClient.
type RPCClientConfig struct {
	URL       string
	PageLimit uint32
	// SubmitAwaitTimeout is max time to wait for the submitted transaction to be validated.
	SubmitAwaitTimeout time.Duration
	// SubmitPollInterval is delay between the transaction validation checks.
	SubmitPollInterval time.Duration
	// SubmitPollRequestTimeout is timeout of a single validation check.
	SubmitPollRequestTimeout time.Duration
}

// DefaultRPCClientConfig returns default RPCClientConfig.
func DefaultRPCClientConfig(url string) RPCClientConfig {
	return RPCClientConfig{
		URL:                      url,
		PageLimit:                100,
		SubmitAwaitTimeout:       time.Minute,
		SubmitPollInterval:       250 * time.Millisecond,
		SubmitPollRequestTimeout: 3 * time.Second,
	}
}

// RPCClient implement the XRPL RPC client.
type RPCClient struct {
	cfg            RPCClientConfig
	log            logger.Logger
	httpClient     HTTPClient
	metricRegistry RPCMetricRegistry
}

// NewRPCClient returns new instance of the RPCClient.
func NewRPCClient(
	cfg RPCClientConfig,
	log logger.Logger,
	httpClient HTTPClient,
	metricRegistry RPCMetricRegistry,
) *RPCClient {
	return &RPCClient{
		cfg:            cfg,
		log:            log,
		httpClient:     httpClient,
		metricRegistry: metricRegistry,
	}
}

// AccountInfo returns the account information for the given account.
func (c *RPCClient) AccountInfo(ctx context.Context, acc rippledata.Account) (AccountInfoResult, error) {
	params := AccountInfoRequest{
		Account:     acc,
		SignerLists: true,
	}
	var result AccountInfoResult
	if err := c.callRPC(ctx, "account_info", params, &result); err != nil {
		return AccountInfoResult{}, err
	}

	return result, nil
}

// AccountLines returns the account lines for a given account.
func (c *RPCClient) AccountLines(
	ctx context.Context,
	account rippledata.Account,
	ledgerIndex any,
	marker *rippledata.Hash256,
) (AccountLinesResult, error) {
	params := AccountLinesRequest{
		Account:     account,
		Limit:       c.cfg.PageLimit,
		Marker:      marker,
		LedgerIndex: ledgerIndex,
	}
	var result AccountLinesResult
	if err := c.callRPC(ctx, "account_lines", params, &result); err != nil {
		return AccountLinesResult{}, err
	}

	return result, nil
}

// GetXRPLBalances returns the XRP balance and the trust line balances of the account.
func (c *RPCClient) GetXRPLBalances(ctx context.Context, acc rippledata.Account) ([]rippledata.Amount, error) {
	balances := make([]rippledata.Amount, 0)
	accInfo, err := c.AccountInfo(ctx, acc)
	if err != nil {
		return nil, err
	}
	if accInfo.AccountData.Balance != nil {
		balances = append(balances, rippledata.Amount{
			Value:    accInfo.AccountData.Balance,
			Currency: XRPTokenCurrency,
			Issuer:   XRPTokenIssuer,
		})
	}

	var marker *rippledata.Hash256
	for {
		accLines, err := c.AccountLines(ctx, acc, "validated", marker)
		if err != nil {
			return nil, err
		}
		for _, line := range accLines.Lines {
			balances = append(balances, rippledata.Amount{
				Value:    line.Balance.Value.Clone(),
				Currency: line.Currency,
				Issuer:   line.Account,
			})
		}
		if accLines.Marker == nil {
			break
		}
		marker = accLines.Marker
	}

	return balances, nil
}

// Submit submits a transaction to the RPC server.
func (c *RPCClient) Submit(ctx context.Context, tx rippledata.Transaction) (SubmitResult, error) {
	_, raw, err := rippledata.Raw(tx)
	if err != nil {
		return SubmitResult{}, errors.Wrapf(err, "failed to convert transaction to raw data")
	}
	params := SubmitRequest{
		TxBlob: fmt.Sprintf("%X", raw),
	}
	var result SubmitResult
	if err := c.callRPC(ctx, "submit", params, &result); err != nil {
		return SubmitResult{}, err
	}

	return result, nil
}

// Tx retrieves information about a transaction.
func (c *RPCClient) Tx(ctx context.Context, hash string) (RawTxResult, error) {
	params := TxRequest{
		Transaction: hash,
		Binary:      false,
	}
	var result RawTxResult
	if err := c.callRPC(ctx, "tx", params, &result); err != nil {
		return RawTxResult{}, err
	}

	return result, nil
}

// LedgerCurrent returns information about current ledger.
func (c *RPCClient) LedgerCurrent(ctx context.Context) (LedgerCurrentResult, error) {
	var result LedgerCurrentResult
	if err := c.callRPC(ctx, "ledger_current", struct{}{}, &result); err != nil {
		return LedgerCurrentResult{}, err
	}

	return result, nil
}

// AccountTx returns paginated account transactions. The transactions which can't be decoded are skipped.
// Use minLedger -1 for the earliest ledger available.
// Use maxLedger -1 for the most recent validated ledger.
func (c *RPCClient) AccountTx(
	ctx context.Context,
	account rippledata.Account,
	minLedger, maxLedger int64,
	marker map[string]any,
) (AccountTxResult, error) {
	params := AccountTxRequest{
		Account:   account,
		MinLedger: minLedger,
		MaxLedger: maxLedger,
		Binary:    false,
		Forward:   true,
		Limit:     c.cfg.PageLimit,
		Marker:    marker,
	}
	var rawResult AccountTxWithRawTxsResult
	if err := c.callRPC(ctx, "account_tx", params, &rawResult); err != nil {
		return AccountTxResult{}, err
	}

	txs := make([]RawTxResult, 0, len(rawResult.Transactions))
	for _, rawTx := range rawResult.Transactions {
		var tx RawTxResult
		if err := json.Unmarshal(rawTx, &tx); err != nil {
			c.metricRegistry.IncrementXRPLRPCDecodingErrorCounter()
			c.log.Error(
				ctx,
				"Failed to decode XRPL account transaction",
				zap.String("account", account.String()),
				zap.String("tx", string(rawTx)),
				zap.Error(err),
			)
			continue
		}
		txs = append(txs, tx)
	}

	return AccountTxResult{
		Marker:       rawResult.Marker,
		Transactions: txs,
		Validated:    rawResult.Validated,
	}, nil
}

// AutoFillTx sets the fee, account and sequence of the transaction.
func (c *RPCClient) AutoFillTx(
	ctx context.Context,
	tx rippledata.Transaction,
	sender rippledata.Account,
	signatureCount uint32,
) error {
	accInfo, err := c.AccountInfo(ctx, sender)
	if err != nil {
		return err
	}
	if accInfo.AccountData.Sequence == nil {
		return errors.Errorf("account sequence is missing in the account info, account:%s", sender.String())
	}
	fee, err := GetTxFee(signatureCount)
	if err != nil {
		return err
	}
	base := tx.GetBase()
	base.Fee = fee
	base.Account = sender
	base.Sequence = *accInfo.AccountData.Sequence

	return nil
}

// SubmitAndAwaitValidation submits the signed tx and waits for it to be validated. The validated transaction is
// returned, and if the result of the transaction is not success the TxResultError is returned as well.
func (c *RPCClient) SubmitAndAwaitValidation(ctx context.Context, tx rippledata.Transaction) (RawTxResult, error) {
	txHash := strings.ToUpper(tx.GetHash().String())
	ctx = tracing.WithTracingXRPLTxHash(ctx, txHash)
	c.log.Info(ctx, "Submitting transaction", zap.String("txType", tx.GetTransactionType().String()))
	res, err := c.Submit(ctx, tx)
	if err != nil {
		return RawTxResult{}, err
	}
	if !isAcceptedForInclusion(res.EngineResult) {
		return RawTxResult{}, &TxResultError{
			TxHash: txHash,
			Code:   res.EngineResult,
		}
	}

	c.log.Info(
		ctx,
		"Transaction is submitted, waiting for the validation",
		zap.String("engineResult", res.EngineResult),
	)
	retryCtx, retryCtxCancel := context.WithTimeout(ctx, c.cfg.SubmitAwaitTimeout)
	defer retryCtxCancel()
	var txRes RawTxResult
	if err := retry.Do(retryCtx, c.cfg.SubmitPollInterval, func() error {
		reqCtx, reqCtxCancel := context.WithTimeout(ctx, c.cfg.SubmitPollRequestTimeout)
		defer reqCtxCancel()
		txRes, err = c.Tx(reqCtx, txHash)
		if err != nil {
			return retry.Retryable(err)
		}
		if !txRes.Validated {
			return retry.Retryable(errors.Errorf("transaction is not validated"))
		}
		return nil
	}); err != nil {
		return RawTxResult{}, errors.Wrapf(err, "failed to await transaction validation, hash:%s", txHash)
	}

	code := txRes.ResultCode()
	c.log.Info(ctx, "Transaction is validated", zap.String("result", code), zap.Uint32("ledger", txRes.LedgerIndex))
	if !IsSuccessTxResult(code) {
		return txRes, &TxResultError{
			TxHash: txHash,
			Code:   code,
		}
	}

	return txRes, nil
}

func (c *RPCClient) callRPC(ctx context.Context, method string, params, result any) error {
	request := RPCRequest{
		Method: method,
		Params: []any{
			params,
		},
	}
	c.log.Debug(ctx, "Executing XRPL RPC request", zap.Any("request", request))

	err := c.httpClient.DoJSON(ctx, http.MethodPost, c.cfg.URL, request, func(resBytes []byte) error {
		c.log.Debug(ctx, "Received XRPL RPC result", zap.String("result", string(resBytes)))
		errResponse := RPCResponse{
			Result: &RPCError{},
		}
		if err := json.Unmarshal(resBytes, &errResponse); err != nil {
			return errors.Wrapf(err, "failed to decode http result to error result, raw http result:%s", string(resBytes))
		}
		errResult, ok := errResponse.Result.(*RPCError)
		if !ok {
			panic("failed to cast result to RPCError")
		}
		if errResult.Code != 0 || strings.TrimSpace(errResult.Name) != "" {
			return errResult
		}
		response := RPCResponse{
			Result: result,
		}
		if err := json.Unmarshal(resBytes, &response); err != nil {
			c.metricRegistry.IncrementXRPLRPCDecodingErrorCounter()
			return errors.Wrapf(err, "failed decode http result to expected struct, raw http result:%s", string(resBytes))
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to call RPC, method:%s", method)
	}

	return nil
}

// isAcceptedForInclusion returns true if the submitted transaction might be included to the ledger.
// The tec results are included with the fee claimed only.
func isAcceptedForInclusion(engineResult string) bool {
	switch {
	case engineResult == TesSuccessTxResult, engineResult == TerQueuedTxResult:
		return true
	case TxResultClass(engineResult) == TecTxResultPrefix:
		return true
	default:
		return false
	}
}
