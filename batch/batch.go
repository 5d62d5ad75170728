// Package batch inspects the outcomes of the XRPL Batch transactions.
//
// The ledger reports the outer Batch transaction as successful even if the inner transactions fail, so the
// inner transaction hashes are recomputed from the raw transactions recorded by the ledger and the result of
// each inner transaction is looked up separately.
//
//nolint:tagliatelle // json naming
package batch

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/CoreumFoundation/xrpl-tx-examples/xrpl"
)

// Inner transaction statuses which are not the ledger result codes.
const (
	// StatusUnknown is set when the transaction metadata doesn't hold the result code.
	StatusUnknown = "unknown"
	// StatusNotValidated is set when the transaction lookup is failed.
	StatusNotValidated = "not validated"
)

// Mode is the batch execution mode.
type Mode string

// Batch modes.
const (
	ModeAllOrNothing Mode = "all-or-nothing"
	ModeOnlyOne      Mode = "only-one"
	ModeUntilFailure Mode = "until-failure"
	ModeIndependent  Mode = "independent"
	ModeUnknown      Mode = "unknown"
)

var modeFlags = []struct {
	mode Mode
	flag uint32
}{
	{mode: ModeAllOrNothing, flag: xrpl.TfAllOrNothing},
	{mode: ModeOnlyOne, flag: xrpl.TfOnlyOne},
	{mode: ModeUntilFailure, flag: xrpl.TfUntilFailure},
	{mode: ModeIndependent, flag: xrpl.TfIndependent},
}

// ModeFromFlags returns the batch mode set in the batch transaction flags. Exactly one mode flag must be set,
// otherwise the ModeUnknown is returned.
func ModeFromFlags(flags uint32) Mode {
	found := ModeUnknown
	for _, mf := range modeFlags {
		if flags&mf.flag == 0 {
			continue
		}
		if found != ModeUnknown {
			return ModeUnknown
		}
		found = mf.mode
	}

	return found
}

// ParseMode converts the mode name to Mode.
func ParseMode(mode string) (Mode, error) {
	for _, mf := range modeFlags {
		if string(mf.mode) == mode {
			return mf.mode, nil
		}
	}

	return ModeUnknown, errors.Errorf("unknown batch mode: %q", mode)
}

// Flag returns the transaction flag of the mode.
func (m Mode) Flag() uint32 {
	for _, mf := range modeFlags {
		if mf.mode == m {
			return mf.flag
		}
	}

	return 0
}

// InnerTxHash is identifier of the inner transaction and its 1-based position in the batch.
type InnerTxHash struct {
	Hash  string `json:"hash"`
	Index int    `json:"index"`
}

// InnerTxStatus is the ledger outcome of the inner transaction.
type InnerTxStatus struct {
	Hash       string `json:"hash"`
	Index      int    `json:"index"`
	Successful bool   `json:"successful"`
	// Status is the result code, StatusUnknown or StatusNotValidated.
	Status string `json:"status"`
}

// ComputeInnerTxHashes computes the hashes of the inner transactions recorded by the ledger in the
// RawTransactions of the batch.
func ComputeInnerTxHashes(rawTxs []json.RawMessage) ([]InnerTxHash, error) {
	hashes := make([]InnerTxHash, 0, len(rawTxs))
	for i, rawTx := range rawTxs {
		index := i + 1
		hash, err := xrpl.HashRawTx(rawTx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to compute inner transaction hash, index:%d", index)
		}
		hashes = append(hashes, InnerTxHash{
			Hash:  strings.ToUpper(hex.EncodeToString(hash[:])),
			Index: index,
		})
	}

	return hashes, nil
}
