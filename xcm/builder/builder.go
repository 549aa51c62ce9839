// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/holiman/uint256"
)

type Scenario string

const (
	LocalExecute    Scenario = "localExecute"
	ReserveToParent Scenario = "reserveToParent"
	SubAccountSelf  Scenario = "subAccountSelf"
	MultiHop        Scenario = "multiHop"
	Remark          Scenario = "remark"
)

func ParseScenario(s string) (Scenario, error) {
	for _, scenario := range []Scenario{LocalExecute, ReserveToParent, SubAccountSelf, MultiHop, Remark} {
		if strings.EqualFold(s, string(scenario)) {
			return scenario, nil
		}
	}
	return "", fmt.Errorf("unknown scenario %s", s)
}

// EntryPoint is the precompile operation that consumes a built program.
type EntryPoint string

const (
	ExecuteEntryPoint EntryPoint = "execute"
	SendEntryPoint    EntryPoint = "send"
)

// DepositFilterKind selects the wildcard used by the final DepositAsset.
type DepositFilterKind string

const (
	DepositAllCounted DepositFilterKind = "allCounted"
	DepositAllOf      DepositFilterKind = "allOf"
)

// TransferType selects how a multi hop transfer moves assets to its destination.
type TransferType string

const (
	TeleportTransfer        TransferType = "teleport"
	ReserveDepositTransfer  TransferType = "reserveDeposit"
	ReserveWithdrawTransfer TransferType = "reserveWithdraw"
)

// remarkWeight is the fallback weight attached to the remark Transact.
var remarkWeight = xcm.Weight{RefTime: 1000000000, ProofSize: 10000}

// Intent describes a single transfer to build.
type Intent struct {
	Scenario    Scenario
	Amount      uint256.Int
	Beneficiary [32]byte
	Asset       xcm.Location

	// Fee is carved out of Amount. Zero selects the scenario default.
	Fee uint256.Int
	// Origin is the sub-account descended into by SubAccountSelf.
	Origin *[32]byte
	// DestinationParaID is the target of a MultiHop transfer.
	DestinationParaID *uint32
	// Destination overrides the send destination, the parent chain by default.
	Destination   *xcm.Location
	DepositFilter DepositFilterKind
	TransferType  TransferType
	// Call is the encoded runtime call dispatched by the Remark scenario.
	Call []byte
}

// EntryPointFor reports which precompile operation the scenario goes through.
func EntryPointFor(s Scenario) EntryPoint {
	switch s {
	case ReserveToParent, SubAccountSelf:
		return SendEntryPoint
	default:
		return ExecuteEntryPoint
	}
}

// Destination returns the location a send scenario is forwarded to.
func Destination(intent Intent) xcm.Location {
	if intent.Destination != nil {
		return *intent.Destination
	}
	return xcm.Parent()
}

// FeeAmount applies the fee policy: fees are carved out of the principal and never withdrawn on top of it.
func FeeAmount(intent Intent) (uint256.Int, error) {
	fee := intent.Fee
	if fee.IsZero() {
		switch intent.Scenario {
		case MultiHop:
			fee = *new(uint256.Int).Div(&intent.Amount, uint256.NewInt(10))
		default:
			fee = intent.Amount
		}
	}
	if fee.IsZero() {
		return uint256.Int{}, &xcm.EncodingError{Op: "fee", Err: fmt.Errorf("fee rounds to zero for principal %s", intent.Amount.ToBig())}
	}
	if fee.Gt(&intent.Amount) {
		return uint256.Int{}, &xcm.EncodingError{Op: "fee", Err: fmt.Errorf("fee %s exceeds principal %s", fee.ToBig(), intent.Amount.ToBig())}
	}
	return fee, nil
}

// Build assembles the program for intent. It is pure: equal intents produce equal programs.
func Build(intent Intent) (xcm.VersionedXcm, error) {
	if intent.Scenario == Remark {
		return buildRemark(intent)
	}
	if intent.Amount.IsZero() {
		return xcm.VersionedXcm{}, &xcm.EncodingError{Op: "intent", Err: errors.New("principal must be greater than zero")}
	}
	if err := intent.Asset.Validate(); err != nil {
		return xcm.VersionedXcm{}, err
	}
	fee, err := FeeAmount(intent)
	if err != nil {
		return xcm.VersionedXcm{}, err
	}

	principal := xcm.Assets{xcm.NewFungible(intent.Asset, intent.Amount)}
	fees := xcm.NewFungible(intent.Asset, fee)
	deposit, err := depositFilter(intent)
	if err != nil {
		return xcm.VersionedXcm{}, err
	}
	beneficiary := xcm.AccountLocation(intent.Beneficiary)

	var program xcm.VersionedXcm
	switch intent.Scenario {
	case LocalExecute:
		program = xcm.NewVersionedXcm(
			xcm.WithdrawAsset{Assets: principal},
			xcm.BuyExecution{Fees: fees, WeightLimit: xcm.Unlimited()},
			xcm.DepositAsset{Assets: deposit, Beneficiary: beneficiary},
		)
	case ReserveToParent:
		program = xcm.NewVersionedXcm(
			xcm.ReserveAssetDeposited{Assets: principal},
			xcm.ClearOrigin{},
			xcm.BuyExecution{Fees: fees, WeightLimit: xcm.Unlimited()},
			xcm.DepositAsset{Assets: deposit, Beneficiary: beneficiary},
		)
	case SubAccountSelf:
		if intent.Origin == nil {
			return xcm.VersionedXcm{}, &xcm.EncodingError{Op: "intent", Err: errors.New("sub-account transfer requires an origin")}
		}
		program = xcm.NewVersionedXcm(
			xcm.DescendOrigin{Interior: xcm.Junctions{xcm.AccountId32{ID: *intent.Origin}}},
			xcm.WithdrawAsset{Assets: principal},
			xcm.BuyExecution{Fees: fees, WeightLimit: xcm.Unlimited()},
			xcm.DepositAsset{Assets: deposit, Beneficiary: beneficiary},
		)
	case MultiHop:
		program, err = buildMultiHop(intent, principal, fees, beneficiary)
		if err != nil {
			return xcm.VersionedXcm{}, err
		}
	default:
		return xcm.VersionedXcm{}, &xcm.EncodingError{Op: "intent", Err: fmt.Errorf("unknown scenario %q", intent.Scenario)}
	}

	if err := CheckAssetConsistency(program); err != nil {
		return xcm.VersionedXcm{}, err
	}
	return program, nil
}

func buildMultiHop(intent Intent, principal xcm.Assets, fees xcm.Asset, beneficiary xcm.Location) (xcm.VersionedXcm, error) {
	if intent.DestinationParaID == nil {
		return xcm.VersionedXcm{}, &xcm.EncodingError{Op: "intent", Err: errors.New("multi-hop transfer requires a destination parachain")}
	}
	remoteFees, err := transferFilter(intent.TransferType, xcm.Definite{Assets: xcm.Assets{fees}})
	if err != nil {
		return xcm.VersionedXcm{}, err
	}
	assets, err := transferFilter(intent.TransferType, xcm.Wild{Asset: xcm.AllCounted{Count: 1}})
	if err != nil {
		return xcm.VersionedXcm{}, err
	}

	return xcm.NewVersionedXcm(
		xcm.WithdrawAsset{Assets: principal},
		xcm.PayFees{Asset: fees},
		xcm.InitiateTransfer{
			Destination:    xcm.ParachainLocation(*intent.DestinationParaID),
			RemoteFees:     remoteFees,
			PreserveOrigin: false,
			Assets:         []xcm.AssetTransferFilter{assets},
			RemoteXcm: []xcm.Instruction{
				xcm.DepositAsset{
					Assets:      xcm.Wild{Asset: xcm.AllCounted{Count: 1}},
					Beneficiary: beneficiary,
				},
			},
		},
	), nil
}

func buildRemark(intent Intent) (xcm.VersionedXcm, error) {
	if len(intent.Call) == 0 {
		return xcm.VersionedXcm{}, &xcm.EncodingError{Op: "intent", Err: errors.New("remark requires an encoded call")}
	}
	call := make([]byte, len(intent.Call))
	copy(call, intent.Call)
	return xcm.NewVersionedXcm(
		xcm.Transact{
			OriginKind:          xcm.OriginSovereignAccount,
			RequireWeightAtMost: remarkWeight,
			Call:                call,
		},
	), nil
}

func depositFilter(intent Intent) (xcm.AssetFilter, error) {
	switch intent.DepositFilter {
	case "", DepositAllCounted:
		return xcm.Wild{Asset: xcm.AllCounted{Count: 1}}, nil
	case DepositAllOf:
		return xcm.Wild{Asset: xcm.AllOf{ID: intent.Asset, Fun: xcm.WildFungible}}, nil
	}
	return nil, &xcm.EncodingError{Op: "intent", Err: fmt.Errorf("unknown deposit filter %q", intent.DepositFilter)}
}

func transferFilter(t TransferType, filter xcm.AssetFilter) (xcm.AssetTransferFilter, error) {
	switch t {
	case "", TeleportTransfer:
		return xcm.Teleport{Assets: filter}, nil
	case ReserveDepositTransfer:
		return xcm.ReserveDeposit{Assets: filter}, nil
	case ReserveWithdrawTransfer:
		return xcm.ReserveWithdraw{Assets: filter}, nil
	}
	return nil, &xcm.EncodingError{Op: "intent", Err: fmt.Errorf("unknown transfer type %q", t)}
}
