package testutils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

// BuildInnerPaymentTx builds the XRP payment in the form the ledger records the inner transactions of the batch:
// zero fee, empty signing key and the inner batch flag.
func BuildInnerPaymentTx(t *testing.T, sender rippledata.Account, sequence uint32) *rippledata.Payment {
	t.Helper()

	xrpAmount, err := rippledata.NewAmount("100000")
	require.NoError(t, err)
	zeroFee, err := rippledata.NewNativeValue(0)
	require.NoError(t, err)

	return &rippledata.Payment{
		Destination: GenXRPLAccount(),
		Amount:      *xrpAmount,
		TxBase: rippledata.TxBase{
			Account:         sender,
			Sequence:        sequence,
			Fee:             *zeroFee,
			TransactionType: rippledata.PAYMENT,
			Flags:           lo.ToPtr(rippledata.TransactionFlag(xrpl.TfInnerBatchTxn)),
			SigningPubKey:   &rippledata.PublicKey{},
		},
	}
}

// InnerTxVector is the ledger-recorded inner transaction and its hash computed from the canonical binary
// encoding independently of the codec.
type InnerTxVector struct {
	TxJSON json.RawMessage
	Hash   string
}

// LedgerRecordedInnerPayments returns the XRP payments of rwPpi6BnAxvvEu75m8GtGtFRDFvMAUuiG3 recorded as the batch
// inner transactions with the sequences 5 and 6. The blob with the sequence 5 is
// 120000224000000024000000056140000000000F42406840000000000000007300811466E3D54A6B74AFE1908B7BD6C9E9C58CB361556D
// 831429E58BA2C80D9A750F1A91FE1B30EDE65BD3C4E3.
func LedgerRecordedInnerPayments() []InnerTxVector {
	return []InnerTxVector{
		{
			TxJSON: ledgerRecordedInnerPaymentJSON(5),
			Hash:   "D77C830C6566D4C9930BF2F8D76954EA325D8F2F887A07593CA78FA2742954BA",
		},
		{
			TxJSON: ledgerRecordedInnerPaymentJSON(6),
			Hash:   "8F36F7B50A70A73F27A776F929F44563711F3F07C65080E60839242CB95A96C1",
		},
	}
}

func ledgerRecordedInnerPaymentJSON(sequence uint32) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"TransactionType": "Payment",
		"Account": "rwPpi6BnAxvvEu75m8GtGtFRDFvMAUuiG3",
		"Destination": "rhFXgxqXMChyath7CkCHc2J8jJxPu8JftS",
		"Amount": "1000000",
		"Fee": "0",
		"Flags": 1073741824,
		"Sequence": %d,
		"SigningPubKey": ""
	}`, sequence))
}

// MarshalTx encodes the transaction to the JSON returned by the node.
func MarshalTx(t *testing.T, tx rippledata.Transaction) json.RawMessage {
	t.Helper()

	txJSON, err := json.Marshal(rippledata.TransactionWithMetaData{
		Transaction: tx,
	})
	require.NoError(t, err)
	return txJSON
}

// TxHash returns the hex hash of the transaction.
func TxHash(t *testing.T, tx rippledata.Transaction) string {
	t.Helper()

	hash, err := xrpl.HashTx(tx)
	require.NoError(t, err)
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// BuildBatchTx builds the validated Batch transaction record with the provided inner transactions.
func BuildBatchTx(
	t *testing.T,
	hash string,
	flags uint32,
	result string,
	innerTxs ...rippledata.Transaction,
) xrpl.RawTxResult {
	t.Helper()

	type rawTransaction struct {
		RawTransaction json.RawMessage `json:"RawTransaction"`
	}
	txJSON, err := json.Marshal(map[string]any{
		"TransactionType": xrpl.BatchTxType,
		"Flags":           flags,
		"RawTransactions": lo.Map(innerTxs, func(tx rippledata.Transaction, _ int) rawTransaction {
			return rawTransaction{
				RawTransaction: MarshalTx(t, tx),
			}
		}),
	})
	require.NoError(t, err)

	return xrpl.RawTxResult{
		Hash:            hash,
		LedgerIndex:     1,
		Validated:       true,
		TransactionType: xrpl.BatchTxType,
		Flags:           flags,
		Tx:              txJSON,
		Meta: xrpl.TxMetaResult{
			TransactionResult: result,
		},
	}
}
