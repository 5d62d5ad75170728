package xrpl

import (
	"github.com/tidwall/gjson"
)

// TxMeta is the transaction metadata recorded by the ledger. It is implemented by TxMetaResult and TxMetaMissing only.
type TxMeta interface {
	isTxMeta()
}

// TxMetaResult is the metadata which holds the transaction result code.
type TxMetaResult struct {
	TransactionResult string
	TransactionIndex  uint32
}

func (TxMetaResult) isTxMeta() {}

// TxMetaMissing is the metadata which is absent, is not decoded or doesn't hold the transaction result code.
type TxMetaMissing struct{}

func (TxMetaMissing) isTxMeta() {}

// TxResultCode returns the transaction result code from the metadata, the result is empty for the TxMetaMissing.
func TxResultCode(meta TxMeta) string {
	switch m := meta.(type) {
	case TxMetaResult:
		return m.TransactionResult
	default:
		return ""
	}
}

func parseTxMeta(meta gjson.Result) TxMeta {
	if !meta.IsObject() {
		return TxMetaMissing{}
	}
	result := meta.Get("TransactionResult")
	if result.Type != gjson.String || result.Str == "" {
		return TxMetaMissing{}
	}

	return TxMetaResult{
		TransactionResult: result.Str,
		TransactionIndex:  uint32(meta.Get("TransactionIndex").Uint()),
	}
}
