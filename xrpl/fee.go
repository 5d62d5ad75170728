package xrpl

import (
	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
)

const baseFeeDrops = int64(10)

// GetTxFee returns the fee required for the transaction. According to https://xrpl.org/transaction-cost.html the
// single signed transaction costs the base fee and the multi-signed transaction requires
// base fee * (1 + number of signatures provided).
func GetTxFee(signatureCount uint32) (rippledata.Value, error) {
	fee, err := rippledata.NewNativeValue((1 + int64(signatureCount)) * baseFeeDrops)
	if err != nil {
		return rippledata.Value{}, errors.Wrapf(err, "failed to compute fee")
	}
	return *fee, nil
}
