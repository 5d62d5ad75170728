package testutils

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	rippledata "github.com/rubblelabs/ripple/data"
)

// GenXRPLAccount generates random XRPL account.
func GenXRPLAccount() rippledata.Account {
	var acc rippledata.Account
	readRandom(acc[:])
	return acc
}

// GenXRPLTxHash generates random XRPL transaction hash.
func GenXRPLTxHash() string {
	var hash rippledata.Hash256
	readRandom(hash[:])
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

func readRandom(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
}
