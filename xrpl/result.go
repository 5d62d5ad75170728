package xrpl

import (
	"fmt"

	"github.com/pkg/errors"
)

// TxResultError is returned when the transaction is rejected or included to the ledger with a not success result.
type TxResultError struct {
	TxHash string
	Code   string
}

// Error returns the error string for the TxResultError.
func (e *TxResultError) Error() string {
	return fmt.Sprintf("transaction failed, hash:%s, result:%s", e.TxHash, e.Code)
}

// Class returns the class of the result code, one of the tes, tec, tef, tel, tem or ter.
func (e *TxResultError) Class() string {
	return TxResultClass(e.Code)
}

// Final returns true if the transaction can't succeed in the future. The tec results are final since the fee is
// claimed, the tef and tem results are final since the transaction can't be applied.
func (e *TxResultError) Final() bool {
	switch e.Class() {
	case TecTxResultPrefix, TefTxResultPrefix, TemTxResultPrefix:
		return true
	default:
		return false
	}
}

// TxResultClass returns the class of the result code.
func TxResultClass(code string) string {
	if len(code) < len(TesTxResultPrefix) {
		return ""
	}

	return code[:len(TesTxResultPrefix)]
}

// IsTxResultCode returns true if the error is TxResultError with the provided result code.
func IsTxResultCode(err error, code string) bool {
	var resErr *TxResultError
	if !errors.As(err, &resErr) {
		return false
	}

	return resErr.Code == code
}

// IsSuccessTxResult returns true if result code is success.
func IsSuccessTxResult(code string) bool {
	return code == TesSuccessTxResult
}
