// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package dryrun

import "fmt"

var xcmErrors = []string{
	"Overflow",
	"Unimplemented",
	"UntrustedReserveLocation",
	"UntrustedTeleportLocation",
	"LocationFull",
	"LocationNotInvertible",
	"BadOrigin",
	"InvalidLocation",
	"AssetNotFound",
	"FailedToTransactAsset",
	"NotWithdrawable",
	"LocationCannotHold",
	"ExceedsMaxMessageSize",
	"DestinationUnsupported",
	"Transport",
	"Unroutable",
	"UnknownClaim",
	"FailedToDecode",
	"MaxWeightInvalid",
	"NotHoldingFees",
	"TooExpensive",
	"Trap",
	"ExpectationFalse",
	"PalletNotFound",
	"NameMismatch",
	"VersionIncompatible",
	"HoldingWouldOverflow",
	"ExportError",
	"ReanchorFailed",
	"NoDeal",
	"FeesNotMet",
	"LockError",
	"NoPermission",
	"Unanchored",
	"NotDepositable",
	"TooManyAssets",
	"UnhandledXcmVersion",
	"WeightLimitReached",
	"Barrier",
	"WeightNotComputable",
	"ExceedsStackLimit",
}

const (
	xcmErrorTrap               = 21
	xcmErrorWeightLimitReached = 37
)

var dispatchErrors = []string{
	"Other",
	"CannotLookup",
	"BadOrigin",
	"Module",
	"ConsumerRemaining",
	"NoProviders",
	"TooManyConsumers",
	"Token",
	"Arithmetic",
	"Transactional",
	"Exhausted",
	"Corruption",
	"Unavailable",
	"RootNotAllowed",
	"Trie",
}

const (
	dispatchErrorModule = 3
	// Token, Arithmetic, Transactional and Trie carry a single byte sub error.
	dispatchErrorToken         = 7
	dispatchErrorArithmetic    = 8
	dispatchErrorTransactional = 9
	dispatchErrorTrie          = 14
)

var invalidTransactions = []string{
	"Call",
	"Payment",
	"Future",
	"Stale",
	"BadProof",
	"AncientBirthBlock",
	"ExhaustsResources",
	"Custom",
	"BadMandatory",
	"MandatoryValidation",
	"BadSigner",
	"IndeterminateImplicit",
	"UnknownOrigin",
}

const invalidTransactionCustom = 7

var unknownTransactions = []string{
	"CannotLookup",
	"NoUnsignedValidator",
	"Custom",
}

const unknownTransactionCustom = 2

func lookup(names []string, index byte) string {
	if int(index) < len(names) {
		return names[index]
	}
	return fmt.Sprintf("Unknown(%d)", index)
}
