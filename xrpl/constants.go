package xrpl

import (
	rippledata "github.com/rubblelabs/ripple/data"
)

// Transaction result codes.
const (
	// TesSuccessTxResult defines the only success result of the transaction.
	TesSuccessTxResult = "tesSUCCESS"
	// TecUnfundedPaymentTxResult defines that the sender doesn't hold enough to pay the amount.
	TecUnfundedPaymentTxResult = "tecUNFUNDED_PAYMENT"
	// TecPathDryTxResult defines that the payment path had no liquidity, for example no trust line to the issuer.
	TecPathDryTxResult = "tecPATH_DRY"
	// TecNoDstInsufXRPTxResult defines that the destination doesn't exist and the amount is less than the reserve.
	TecNoDstInsufXRPTxResult = "tecNO_DST_INSUF_XRP"
	// TecNoLineTxResult defines that the trust line required for the operation doesn't exist.
	TecNoLineTxResult = "tecNO_LINE"
	// TecInsufficientReserveTxResult defines the insufficient reserve to complete requested operation.
	TecInsufficientReserveTxResult = "tecINSUFFICIENT_RESERVE"
	// TecBatchFailureTxResult defines that one of the inner transactions of the batch failed.
	TecBatchFailureTxResult = "tecBATCH_FAILURE"
	// TefNOTicketTxResult defines the usage of the already used or not created ticket.
	TefNOTicketTxResult = "tefNO_TICKET"
	// TefPastSeqTxResult defines the usage of the sequence in the past.
	TefPastSeqTxResult = "tefPAST_SEQ"
	// TefMaxLedgerTxResult defines that ledger sequence too high.
	TefMaxLedgerTxResult = "tefMAX_LEDGER"
	// TerPreSeqTxResult defines the usage of the sequence in the future.
	TerPreSeqTxResult = "terPRE_SEQ"
	// TerQueuedTxResult defines that the transaction is put to the queue and will be applied later.
	TerQueuedTxResult = "terQUEUED"
	// TelInsufFeeP defines that fee from the transaction is not high enough to meet the server's current transaction
	//	cost requirement.
	TelInsufFeeP = "telINSUF_FEE_P"
)

// Transaction result classes, the first three letters of the result code.
const (
	TesTxResultPrefix = "tes"
	TecTxResultPrefix = "tec"
	TefTxResultPrefix = "tef"
	TelTxResultPrefix = "tel"
	TemTxResultPrefix = "tem"
	TerTxResultPrefix = "ter"
)

// Transaction types which are not known by the codec.
const (
	BatchTxType = "Batch"
)

// Batch transaction flags.
const (
	TfAllOrNothing  = uint32(0x00010000)
	TfOnlyOne       = uint32(0x00020000)
	TfUntilFailure  = uint32(0x00040000)
	TfIndependent   = uint32(0x00080000)
	TfInnerBatchTxn = uint32(0x40000000)
)

// AccountSet flags.
const (
	AsfRequireDest               = uint32(1)
	AsfRequireAuth               = uint32(2)
	AsfDisallowXRP               = uint32(3)
	AsfDisableMaster             = uint32(4)
	AsfAccountTxnID              = uint32(5)
	AsfNoFreeze                  = uint32(6)
	AsfGlobalFreeze              = uint32(7)
	AsfDefaultRipple             = uint32(8)
	AsfDepositAuth               = uint32(9)
	AsfAuthorizedNFTokenMinter   = uint32(10)
	AsfDisallowIncomingTrustline = uint32(15)
	AsfAllowTrustLineClawback    = uint32(16)
)

// AccountSetFlags maps the account set flag names to values.
var AccountSetFlags = map[string]uint32{
	"requireDest":               AsfRequireDest,
	"requireAuth":               AsfRequireAuth,
	"disallowXRP":               AsfDisallowXRP,
	"disableMaster":             AsfDisableMaster,
	"accountTxnID":              AsfAccountTxnID,
	"noFreeze":                  AsfNoFreeze,
	"globalFreeze":              AsfGlobalFreeze,
	"defaultRipple":             AsfDefaultRipple,
	"depositAuth":               AsfDepositAuth,
	"authorizedNFTokenMinter":   AsfAuthorizedNFTokenMinter,
	"disallowIncomingTrustline": AsfDisallowIncomingTrustline,
	"allowTrustLineClawback":    AsfAllowTrustLineClawback,
}

// Reserves.
var (
	ReserveToActivateAccount = float64(10)
	// ReservePerItem defines reserves of objects that count towards their owner's reserve requirement include:
	//	Checks, Deposit Preauthorizations, Escrows, NFT Offers, NFT Pages, Offers, Payment Channels, Signer Lists,
	//	Tickets, and Trust Lines.
	ReservePerItem = float64(2)
)

const (
	// MaxTicketsToAllocate is the max supported tickets count to allocate by one transaction.
	MaxTicketsToAllocate = uint32(250)
	// MaxAllowedXRPLSigners max signers for the signers set.
	MaxAllowedXRPLSigners = uint32(32)
)

// XRP token constants.
var (
	XRPTokenIssuer   = rippledata.Account{}
	XRPTokenCurrency = rippledata.Currency{}
)
