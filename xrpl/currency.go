package xrpl

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	rippledata "github.com/rubblelabs/ripple/data"
)

const (
	standardCurrencyLength = 3
	hexCurrencyLength      = 40
)

// ParseCurrency parses the currency code. The code is either the standard three-letter code, the 40 characters hex
// code or a longer name (up to 20 bytes) which is converted to the hex code.
func ParseCurrency(currencyString string) (rippledata.Currency, error) {
	if len(currencyString) == standardCurrencyLength || len(currencyString) == hexCurrencyLength {
		currency, err := rippledata.NewCurrency(currencyString)
		if err != nil {
			return rippledata.Currency{}, errors.Wrapf(err, "failed to parse currency, currency:%s", currencyString)
		}
		return currency, nil
	}

	return StringToHexXRPLCurrency(currencyString)
}

// StringToHexXRPLCurrency encodes the string currency to the hex XRPL currency.
func StringToHexXRPLCurrency(currencyString string) (rippledata.Currency, error) {
	var currency rippledata.Currency
	if len(currencyString) > len(currency) {
		return rippledata.Currency{}, errors.Errorf(
			"failed to convert currency string to Currency, max length is %d bytes, currency:%s",
			len(currency), currencyString,
		)
	}
	copy(currency[:], currencyString)

	return currency, nil
}

// ConvertCurrencyToString returns the currency code representation which can be parsed back.
func ConvertCurrencyToString(currency rippledata.Currency) string {
	currencyString := currency.String()
	if len(currencyString) == standardCurrencyLength {
		return currencyString
	}

	return strings.ToLower(hex.EncodeToString(currency[:]))
}
