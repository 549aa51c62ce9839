// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"
	"reflect"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// NativeAsset is the relay chain token as seen from a system parachain.
func NativeAsset() Location {
	return Parent()
}

// RegistryAsset addresses asset index on the given assets pallet of the local chain.
func RegistryAsset(pallet uint8, index uint64) Location {
	return NewLocation(0, PalletInstance(pallet), NewGeneralIndex(index))
}

// Fungibility says whether an asset is amount based or a unique instance.
type Fungibility interface {
	scale.Encodeable
	isFungibility()
}

type Fungible struct {
	Amount uint256.Int
}

type NonFungible struct {
	Instance AssetInstance
}

func (Fungible) isFungibility()    {}
func (NonFungible) isFungibility() {}

func (f Fungible) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(0); err != nil {
		return err
	}
	return encodeCompact128(encoder, f.Amount)
}

func (f NonFungible) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return f.Instance.Encode(encoder)
}

func decodeFungibility(decoder scale.Decoder) (Fungibility, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0:
		amount, err := decodeCompact128(decoder)
		if err != nil {
			return nil, err
		}
		return Fungible{Amount: amount}, nil
	case 1:
		var f NonFungible
		if err := f.Instance.Decode(decoder); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unknown fungibility variant %d", b)
}

// AssetInstance identifies a non fungible instance. A nil Index is Undefined.
type AssetInstance struct {
	Index *uint256.Int
}

func (a AssetInstance) Encode(encoder scale.Encoder) error {
	if a.Index == nil {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return encodeCompact128(encoder, *a.Index)
}

func (a *AssetInstance) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		a.Index = nil
		return nil
	case 1:
		index, err := decodeCompact128(decoder)
		if err != nil {
			return err
		}
		a.Index = &index
		return nil
	}
	return fmt.Errorf("unsupported asset instance variant %d", b)
}

// Asset is an amount (or instance) of the asset identified by ID.
type Asset struct {
	ID  Location
	Fun Fungibility
}

// NewFungible builds a fungible asset of amount units of id.
func NewFungible(id Location, amount uint256.Int) Asset {
	return Asset{ID: id, Fun: Fungible{Amount: amount}}
}

// Amount returns the fungible amount of the asset, or false for non fungible assets.
func (a Asset) Amount() (uint256.Int, bool) {
	f, ok := a.Fun.(Fungible)
	if !ok {
		return uint256.Int{}, false
	}
	return f.Amount, true
}

func (a Asset) Equal(other Asset) bool {
	return a.ID.Equal(other.ID) && reflect.DeepEqual(a.Fun, other.Fun)
}

func (a Asset) String() string {
	if amount, ok := a.Amount(); ok {
		return fmt.Sprintf("%s of %s", amount.ToBig(), a.ID)
	}
	return fmt.Sprintf("instance of %s", a.ID)
}

// Validate checks the id and that fungible amounts are positive and fit into 128 bits.
func (a Asset) Validate() error {
	if err := a.ID.Validate(); err != nil {
		return err
	}
	switch f := a.Fun.(type) {
	case Fungible:
		if f.Amount.IsZero() {
			return encodingErr("asset", "zero amount of %s", a.ID)
		}
		if f.Amount.Gt(maxU128) {
			return encodingErr("asset", "amount of %s exceeds 128 bits", a.ID)
		}
	case NonFungible:
	default:
		return encodingErr("asset", "missing fungibility for %s", a.ID)
	}
	return nil
}

func (a Asset) Encode(encoder scale.Encoder) error {
	if a.Fun == nil {
		return fmt.Errorf("missing fungibility for %s", a.ID)
	}
	if err := a.ID.Encode(encoder); err != nil {
		return err
	}
	return a.Fun.Encode(encoder)
}

func (a *Asset) Decode(decoder scale.Decoder) error {
	if err := a.ID.Decode(decoder); err != nil {
		return err
	}
	fun, err := decodeFungibility(decoder)
	if err != nil {
		return err
	}
	a.Fun = fun
	return nil
}

func decodeAsset(decoder scale.Decoder) (Asset, error) {
	var a Asset
	err := a.Decode(decoder)
	return a, err
}

// Assets is an ordered sequence of assets.
type Assets []Asset

func (a Assets) Encode(encoder scale.Encoder) error {
	return encodeVec(encoder, a)
}

func (a *Assets) Decode(decoder scale.Decoder) error {
	assets, err := decodeVec(decoder, decodeAsset)
	if err != nil {
		return err
	}
	*a = assets
	return nil
}

func (a Assets) Validate() error {
	if len(a) == 0 {
		return encodingErr("assets", "empty asset list")
	}
	for _, asset := range a {
		if err := asset.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// WildFungibility is the fungibility kind matched by an AllOf filter.
type WildFungibility uint8

const (
	WildFungible WildFungibility = iota
	WildNonFungible
)

// WildAsset matches assets in holding without naming amounts.
type WildAsset interface {
	scale.Encodeable
	isWildAsset()
}

type All struct{}

type AllCounted struct {
	Count uint32
}

type AllOf struct {
	ID  Location
	Fun WildFungibility
}

func (All) isWildAsset()        {}
func (AllCounted) isWildAsset() {}
func (AllOf) isWildAsset()      {}

func (All) Encode(encoder scale.Encoder) error { return encoder.PushByte(0) }

func (w AllOf) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	if err := w.ID.Encode(encoder); err != nil {
		return err
	}
	if w.Fun > WildNonFungible {
		return fmt.Errorf("unknown wild fungibility %d", w.Fun)
	}
	return encoder.PushByte(uint8(w.Fun))
}

func (w AllCounted) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(2); err != nil {
		return err
	}
	return encodeCompact(encoder, uint64(w.Count))
}

func decodeWildAsset(decoder scale.Decoder) (WildAsset, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0:
		return All{}, nil
	case 1:
		var w AllOf
		if err := w.ID.Decode(decoder); err != nil {
			return nil, err
		}
		fun, err := decoder.ReadOneByte()
		if err != nil {
			return nil, err
		}
		if WildFungibility(fun) > WildNonFungible {
			return nil, fmt.Errorf("unknown wild fungibility %d", fun)
		}
		w.Fun = WildFungibility(fun)
		return w, nil
	case 2:
		count, err := decodeCompact(decoder, 32)
		if err != nil {
			return nil, err
		}
		return AllCounted{Count: uint32(count)}, nil
	}
	return nil, fmt.Errorf("unsupported wild asset variant %d", b)
}

// AssetFilter selects assets from holding, either by listing them or by a wildcard.
type AssetFilter interface {
	scale.Encodeable
	isAssetFilter()
}

type Definite struct {
	Assets Assets
}

type Wild struct {
	Asset WildAsset
}

func (Definite) isAssetFilter() {}
func (Wild) isAssetFilter()     {}

func (f Definite) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(0); err != nil {
		return err
	}
	return f.Assets.Encode(encoder)
}

func (f Wild) Encode(encoder scale.Encoder) error {
	if f.Asset == nil {
		return fmt.Errorf("wild filter without wildcard")
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return f.Asset.Encode(encoder)
}

func decodeAssetFilter(decoder scale.Decoder) (AssetFilter, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}
	switch b {
	case 0:
		var f Definite
		if err := f.Assets.Decode(decoder); err != nil {
			return nil, err
		}
		return f, nil
	case 1:
		wild, err := decodeWildAsset(decoder)
		if err != nil {
			return nil, err
		}
		return Wild{Asset: wild}, nil
	}
	return nil, fmt.Errorf("unknown asset filter variant %d", b)
}

// AssetTransferFilter pairs an AssetFilter with the transfer mechanism used for it.
type AssetTransferFilter interface {
	scale.Encodeable
	Filter() AssetFilter
	isAssetTransferFilter()
}

type Teleport struct {
	Assets AssetFilter
}

type ReserveDeposit struct {
	Assets AssetFilter
}

type ReserveWithdraw struct {
	Assets AssetFilter
}

func (Teleport) isAssetTransferFilter()        {}
func (ReserveDeposit) isAssetTransferFilter()  {}
func (ReserveWithdraw) isAssetTransferFilter() {}

func (t Teleport) Filter() AssetFilter        { return t.Assets }
func (t ReserveDeposit) Filter() AssetFilter  { return t.Assets }
func (t ReserveWithdraw) Filter() AssetFilter { return t.Assets }

func encodeTransferFilter(encoder scale.Encoder, index byte, filter AssetFilter) error {
	if filter == nil {
		return fmt.Errorf("transfer filter without assets")
	}
	if err := encoder.PushByte(index); err != nil {
		return err
	}
	return filter.Encode(encoder)
}

func (t Teleport) Encode(encoder scale.Encoder) error {
	return encodeTransferFilter(encoder, 0, t.Assets)
}

func (t ReserveDeposit) Encode(encoder scale.Encoder) error {
	return encodeTransferFilter(encoder, 1, t.Assets)
}

func (t ReserveWithdraw) Encode(encoder scale.Encoder) error {
	return encodeTransferFilter(encoder, 2, t.Assets)
}

func decodeAssetTransferFilter(decoder scale.Decoder) (AssetTransferFilter, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}
	if b > 2 {
		return nil, fmt.Errorf("unknown asset transfer filter variant %d", b)
	}
	filter, err := decodeAssetFilter(decoder)
	if err != nil {
		return nil, err
	}
	switch b {
	case 0:
		return Teleport{Assets: filter}, nil
	case 1:
		return ReserveDeposit{Assets: filter}, nil
	default:
		return ReserveWithdraw{Assets: filter}, nil
	}
}
