// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Instruction indices of the version 5 instruction set.
const (
	withdrawAssetIndex          byte = 0
	reserveAssetDepositedIndex  byte = 1
	receiveTeleportedAssetIndex byte = 2
	transactIndex               byte = 6
	clearOriginIndex            byte = 10
	descendOriginIndex          byte = 11
	depositAssetIndex           byte = 13
	buyExecutionIndex           byte = 19
	payFeesIndex                byte = 48
	initiateTransferIndex       byte = 49
)

// Instruction is a single step of an XCM program.
type Instruction interface {
	scale.Encodeable
	Name() string
	isInstruction()
}

type WithdrawAsset struct {
	Assets Assets
}

type ReserveAssetDeposited struct {
	Assets Assets
}

type ReceiveTeleportedAsset struct {
	Assets Assets
}

type ClearOrigin struct{}

type DescendOrigin struct {
	Interior Junctions
}

type BuyExecution struct {
	Fees        Asset
	WeightLimit WeightLimit
}

type PayFees struct {
	Asset Asset
}

type DepositAsset struct {
	Assets      AssetFilter
	Beneficiary Location
}

type InitiateTransfer struct {
	Destination    Location
	RemoteFees     AssetTransferFilter
	PreserveOrigin bool
	Assets         []AssetTransferFilter
	RemoteXcm      []Instruction
}

// OriginKind is the origin a Transact call is dispatched with.
type OriginKind uint8

const (
	OriginNative OriginKind = iota
	OriginSovereignAccount
	OriginSuperuser
	OriginXcm
)

// Transact dispatches an encoded runtime call. A zero RequireWeightAtMost encodes as no fallback weight.
type Transact struct {
	OriginKind          OriginKind
	RequireWeightAtMost Weight
	Call                []byte
}

func (WithdrawAsset) isInstruction()          {}
func (ReserveAssetDeposited) isInstruction()  {}
func (ReceiveTeleportedAsset) isInstruction() {}
func (ClearOrigin) isInstruction()            {}
func (DescendOrigin) isInstruction()          {}
func (BuyExecution) isInstruction()           {}
func (PayFees) isInstruction()                {}
func (DepositAsset) isInstruction()           {}
func (InitiateTransfer) isInstruction()       {}
func (Transact) isInstruction()               {}

func (WithdrawAsset) Name() string          { return "WithdrawAsset" }
func (ReserveAssetDeposited) Name() string  { return "ReserveAssetDeposited" }
func (ReceiveTeleportedAsset) Name() string { return "ReceiveTeleportedAsset" }
func (ClearOrigin) Name() string            { return "ClearOrigin" }
func (DescendOrigin) Name() string          { return "DescendOrigin" }
func (BuyExecution) Name() string           { return "BuyExecution" }
func (PayFees) Name() string                { return "PayFees" }
func (DepositAsset) Name() string           { return "DepositAsset" }
func (InitiateTransfer) Name() string       { return "InitiateTransfer" }
func (Transact) Name() string               { return "Transact" }

func pushIndex(encoder scale.Encoder, index byte, body scale.Encodeable) error {
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	if body == nil {
		return nil
	}
	return body.Encode(encoder)
}

func (i WithdrawAsset) Encode(encoder scale.Encoder) error {
	return pushIndex(encoder, withdrawAssetIndex, i.Assets)
}

func (i ReserveAssetDeposited) Encode(encoder scale.Encoder) error {
	return pushIndex(encoder, reserveAssetDepositedIndex, i.Assets)
}

func (i ReceiveTeleportedAsset) Encode(encoder scale.Encoder) error {
	return pushIndex(encoder, receiveTeleportedAssetIndex, i.Assets)
}

func (ClearOrigin) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(clearOriginIndex)
}

func (i DescendOrigin) Encode(encoder scale.Encoder) error {
	return pushIndex(encoder, descendOriginIndex, i.Interior)
}

func (i BuyExecution) Encode(encoder scale.Encoder) error {
	if err := pushIndex(encoder, buyExecutionIndex, i.Fees); err != nil {
		return err
	}
	return i.WeightLimit.Encode(encoder)
}

func (i PayFees) Encode(encoder scale.Encoder) error {
	return pushIndex(encoder, payFeesIndex, i.Asset)
}

func (i DepositAsset) Encode(encoder scale.Encoder) error {
	if i.Assets == nil {
		return fmt.Errorf("DepositAsset without asset filter")
	}
	if err := pushIndex(encoder, depositAssetIndex, i.Assets); err != nil {
		return err
	}
	return i.Beneficiary.Encode(encoder)
}

func (i InitiateTransfer) Encode(encoder scale.Encoder) error {
	if err := pushIndex(encoder, initiateTransferIndex, i.Destination); err != nil {
		return err
	}
	if err := encoder.EncodeOption(i.RemoteFees != nil, i.RemoteFees); err != nil {
		return err
	}
	if err := encodeBool(encoder, i.PreserveOrigin); err != nil {
		return err
	}
	if err := encodeVec(encoder, i.Assets); err != nil {
		return err
	}
	return encodeVec(encoder, i.RemoteXcm)
}

func (i Transact) Encode(encoder scale.Encoder) error {
	if i.OriginKind > OriginXcm {
		return fmt.Errorf("unknown origin kind %d", i.OriginKind)
	}
	if err := encoder.PushByte(transactIndex); err != nil {
		return err
	}
	if err := encoder.PushByte(uint8(i.OriginKind)); err != nil {
		return err
	}
	if err := encoder.EncodeOption(!i.RequireWeightAtMost.IsZero(), i.RequireWeightAtMost); err != nil {
		return err
	}
	if err := encodeCompact(encoder, uint64(len(i.Call))); err != nil {
		return err
	}
	return encoder.Write(i.Call)
}

func decodeAssets(decoder scale.Decoder) (Assets, error) {
	var assets Assets
	err := assets.Decode(decoder)
	return assets, err
}

func decodeInstruction(decoder scale.Decoder) (Instruction, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case withdrawAssetIndex:
		assets, err := decodeAssets(decoder)
		return WithdrawAsset{Assets: assets}, err
	case reserveAssetDepositedIndex:
		assets, err := decodeAssets(decoder)
		return ReserveAssetDeposited{Assets: assets}, err
	case receiveTeleportedAssetIndex:
		assets, err := decodeAssets(decoder)
		return ReceiveTeleportedAsset{Assets: assets}, err
	case transactIndex:
		return decodeTransact(decoder)
	case clearOriginIndex:
		return ClearOrigin{}, nil
	case descendOriginIndex:
		var i DescendOrigin
		err := i.Interior.Decode(decoder)
		return i, err
	case depositAssetIndex:
		var i DepositAsset
		i.Assets, err = decodeAssetFilter(decoder)
		if err != nil {
			return nil, err
		}
		err = i.Beneficiary.Decode(decoder)
		return i, err
	case buyExecutionIndex:
		var i BuyExecution
		if err := i.Fees.Decode(decoder); err != nil {
			return nil, err
		}
		err := i.WeightLimit.Decode(decoder)
		return i, err
	case payFeesIndex:
		var i PayFees
		err := i.Asset.Decode(decoder)
		return i, err
	case initiateTransferIndex:
		return decodeInitiateTransfer(decoder)
	}
	return nil, fmt.Errorf("unsupported instruction %d", b)
}

func decodeTransact(decoder scale.Decoder) (Instruction, error) {
	var i Transact
	kind, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}
	if OriginKind(kind) > OriginXcm {
		return nil, fmt.Errorf("unknown origin kind %d", kind)
	}
	i.OriginKind = OriginKind(kind)

	hasWeight, err := decodeBool(decoder)
	if err != nil {
		return nil, err
	}
	if hasWeight {
		if err := i.RequireWeightAtMost.Decode(decoder); err != nil {
			return nil, err
		}
	}

	n, err := decodeCompact(decoder, 32)
	if err != nil {
		return nil, err
	}
	if n > maxVecLen {
		return nil, fmt.Errorf("call length %d exceeds limit", n)
	}
	i.Call = make([]byte, n)
	if err := decoder.Read(i.Call); err != nil {
		return nil, err
	}
	return i, nil
}

func decodeInitiateTransfer(decoder scale.Decoder) (Instruction, error) {
	var i InitiateTransfer
	if err := i.Destination.Decode(decoder); err != nil {
		return nil, err
	}

	hasFees, err := decodeBool(decoder)
	if err != nil {
		return nil, err
	}
	if hasFees {
		i.RemoteFees, err = decodeAssetTransferFilter(decoder)
		if err != nil {
			return nil, err
		}
	}

	i.PreserveOrigin, err = decodeBool(decoder)
	if err != nil {
		return nil, err
	}

	i.Assets, err = decodeVec(decoder, decodeAssetTransferFilter)
	if err != nil {
		return nil, err
	}

	i.RemoteXcm, err = decodeVec(decoder, decodeInstruction)
	if err != nil {
		return nil, err
	}
	return i, nil
}
