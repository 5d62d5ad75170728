//nolint:tagliatelle // XRPL JSON field names
package xrpl

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// RawTxResult is the transaction with metadata decoded without binding to the codec transaction types, so the
// transactions unknown by the codec can be inspected as well.
type RawTxResult struct {
	Hash            string
	LedgerIndex     uint32
	Validated       bool
	TransactionType string
	Account         string
	Flags           uint32
	// Tx is the JSON transaction object as it is recorded by the ledger.
	Tx   json.RawMessage
	Meta TxMeta
}

type rawTxResultJSON struct {
	Hash        string          `json:"hash"`
	LedgerIndex uint32          `json:"ledger_index,omitempty"`
	Validated   bool            `json:"validated"`
	Tx          json.RawMessage `json:"tx_json"`
	Meta        *rawTxMetaJSON  `json:"meta,omitempty"`
}

type rawTxMetaJSON struct {
	TransactionResult string `json:"TransactionResult"`
	TransactionIndex  uint32 `json:"TransactionIndex"`
}

// UnmarshalJSON decodes the `tx` and `account_tx` items of both API versions: the transaction fields might be
// located in the root object (v1 `tx`), in the `tx` object (v1 `account_tx`) or in the `tx_json` object (v2).
func (r *RawTxResult) UnmarshalJSON(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errors.Errorf("invalid transaction json: %s", string(b))
	}
	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return errors.Errorf("transaction json is not an object: %s", string(b))
	}

	tx := root
	for _, path := range []string{"tx_json", "tx"} {
		if nested := root.Get(path); nested.IsObject() {
			tx = nested
			break
		}
	}
	txType := tx.Get("TransactionType").String()
	if txType == "" {
		return errors.Errorf("transaction type is missing in the transaction json: %s", string(b))
	}

	meta := root.Get("meta")
	if !meta.Exists() {
		meta = root.Get("metaData")
	}

	*r = RawTxResult{
		Hash:            strings.ToUpper(firstExisting(root, tx, "hash").String()),
		LedgerIndex:     uint32(firstExisting(root, tx, "ledger_index").Uint()),
		Validated:       root.Get("validated").Bool(),
		TransactionType: txType,
		Account:         tx.Get("Account").String(),
		Flags:           uint32(tx.Get("Flags").Uint()),
		Tx:              json.RawMessage(tx.Raw),
		Meta:            parseTxMeta(meta),
	}

	return nil
}

// MarshalJSON encodes the record in the API v2 shape.
func (r RawTxResult) MarshalJSON() ([]byte, error) {
	res := rawTxResultJSON{
		Hash:        r.Hash,
		LedgerIndex: r.LedgerIndex,
		Validated:   r.Validated,
		Tx:          r.Tx,
	}
	if len(res.Tx) == 0 {
		res.Tx = json.RawMessage("{}")
	}
	if m, ok := r.Meta.(TxMetaResult); ok {
		res.Meta = &rawTxMetaJSON{
			TransactionResult: m.TransactionResult,
			TransactionIndex:  m.TransactionIndex,
		}
	}

	return json.Marshal(res)
}

// ResultCode returns the transaction result code, the result is empty if the metadata doesn't hold it.
func (r RawTxResult) ResultCode() string {
	return TxResultCode(r.Meta)
}

// IsBatch returns true if the transaction is the Batch transaction.
func (r RawTxResult) IsBatch() bool {
	return r.TransactionType == BatchTxType
}

// RawInnerTransactions returns the inner transactions of the Batch transaction in the order recorded by the ledger.
func (r RawTxResult) RawInnerTransactions() []json.RawMessage {
	items := gjson.GetBytes(r.Tx, "RawTransactions").Array()
	return lo.Map(items, func(item gjson.Result, _ int) json.RawMessage {
		return json.RawMessage(item.Get("RawTransaction").Raw)
	})
}

func firstExisting(primary, secondary gjson.Result, path string) gjson.Result {
	if v := primary.Get(path); v.Exists() {
		return v
	}

	return secondary.Get(path)
}
