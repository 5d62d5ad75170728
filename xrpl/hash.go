package xrpl

import (
	"encoding/json"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
)

// DecodeTx decodes the JSON transaction to the codec transaction.
func DecodeTx(txJSON json.RawMessage) (rippledata.Transaction, error) {
	if len(txJSON) == 0 {
		return nil, errors.New("transaction json is empty")
	}
	var txWithMeta rippledata.TransactionWithMetaData
	if err := json.Unmarshal(txJSON, &txWithMeta); err != nil {
		return nil, errors.Wrapf(err, "failed to decode transaction json, json:%s", string(txJSON))
	}
	if txWithMeta.Transaction == nil {
		return nil, errors.Errorf("failed to decode transaction json, transaction is empty, json:%s", string(txJSON))
	}

	return txWithMeta.Transaction, nil
}

// HashRawTx computes the hash of the JSON transaction taken from the ledger. The hash is SHA512Half of the
// transaction hash prefix and the canonical binary encoding of the transaction, so it must be computed from the
// form recorded by the ledger and not from the transaction object before the submission.
func HashRawTx(txJSON json.RawMessage) (rippledata.Hash256, error) {
	tx, err := DecodeTx(txJSON)
	if err != nil {
		return rippledata.Hash256{}, err
	}

	return HashTx(tx)
}

// HashTx computes the hash of the codec transaction.
func HashTx(tx rippledata.Transaction) (rippledata.Hash256, error) {
	hash, _, err := rippledata.Raw(tx)
	if err != nil {
		return rippledata.Hash256{}, errors.Wrapf(err, "failed to encode transaction, type:%s", tx.GetTransactionType())
	}

	return hash, nil
}
