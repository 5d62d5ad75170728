package xrpl

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	ripplecrypto "github.com/rubblelabs/ripple/crypto"
	rippledata "github.com/rubblelabs/ripple/data"
	"github.com/samber/lo"
)

var zeroSeq = lo.ToPtr(uint32(0))

// Supported key types.
const (
	Secp256k1KeyType = "secp256k1"
	Ed25519KeyType   = "ed25519"
)

// ParseKeyType converts the key type name to the codec key type.
func ParseKeyType(keyType string) (rippledata.KeyType, error) {
	switch strings.ToLower(keyType) {
	case Secp256k1KeyType, "":
		return rippledata.ECDSA, nil
	case Ed25519KeyType:
		return rippledata.Ed25519, nil
	default:
		return 0, errors.Errorf("unknown key type: %q", keyType)
	}
}

// SeedTxSigner is XRPL signer with the key derived from the family seed.
type SeedTxSigner struct {
	key     ripplecrypto.Key
	keySeq  *uint32
	account rippledata.Account
}

// NewSeedTxSigner returns new instance of the SeedTxSigner.
func NewSeedTxSigner(seed string, keyType rippledata.KeyType) (*SeedTxSigner, error) {
	xrplSeed, err := rippledata.NewSeedFromAddress(seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode XRPL family seed")
	}

	keySeq := keySequence(keyType)
	return &SeedTxSigner{
		key:     xrplSeed.Key(keyType),
		keySeq:  keySeq,
		account: xrplSeed.AccountId(keyType, keySeq),
	}, nil
}

// GenSeedTxSigner returns new instance of the SeedTxSigner with the random seed.
func GenSeedTxSigner() *SeedTxSigner {
	familySeed, err := ripplecrypto.GenerateFamilySeed(uuid.NewString())
	if err != nil {
		panic(errors.Wrap(err, "failed to generate XRPL family seed"))
	}
	signer, err := NewSeedTxSigner(familySeed.String(), rippledata.ECDSA)
	if err != nil {
		panic(err)
	}

	return signer
}

// Sign signs the transaction.
func (s *SeedTxSigner) Sign(tx rippledata.Transaction) error {
	if err := rippledata.Sign(tx, s.key, s.keySeq); err != nil {
		return errors.Wrapf(err, "failed to sign XRPL transaction, account:%s", s.account.String())
	}

	return nil
}

// MultiSign signs the transaction for the multi-signing.
func (s *SeedTxSigner) MultiSign(tx rippledata.MultiSignable) (rippledata.Signer, error) {
	if err := rippledata.MultiSign(tx, s.key, s.keySeq, s.account); err != nil {
		return rippledata.Signer{}, errors.Wrapf(err, "failed to multi-sign XRPL transaction, account:%s", s.account)
	}

	pubKey := s.PubKey()
	signature := append(rippledata.VariableLength(nil), *tx.GetSignature()...)
	return rippledata.Signer{
		Signer: rippledata.SignerItem{
			Account:       s.account,
			TxnSignature:  &signature,
			SigningPubKey: &pubKey,
		},
	}, nil
}

// Account returns account of the signer.
func (s *SeedTxSigner) Account() rippledata.Account {
	return s.account
}

// PubKey returns public key of the signer.
func (s *SeedTxSigner) PubKey() rippledata.PublicKey {
	var pubKey rippledata.PublicKey
	copy(pubKey[:], s.key.Public(s.keySeq))
	return pubKey
}

// keySequence returns the account family sequence of the key, ed25519 keys have no families.
func keySequence(keyType rippledata.KeyType) *uint32 {
	if keyType == rippledata.Ed25519 {
		return nil
	}

	return zeroSeq
}
