// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package balance

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

type StorageReader interface {
	ReadStorage(ctx context.Context, module, method string, target interface{}, args ...[]byte) (bool, error)
}

type ClassKind uint8

const (
	NativeKind ClassKind = iota
	AssetKind
	ForeignKind
)

// Class is one kind of balance an account can hold on the chain.
type Class struct {
	Kind     ClassKind
	AssetID  uint32
	Location xcm.Location
}

func NativeClass() Class {
	return Class{Kind: NativeKind}
}

// AssetClass is a balance held in the Assets pallet under id.
func AssetClass(id uint32) Class {
	return Class{Kind: AssetKind, AssetID: id}
}

// ForeignClass is a balance held in the ForeignAssets pallet under location.
func ForeignClass(location xcm.Location) Class {
	return Class{Kind: ForeignKind, Location: location}
}

func (c Class) Label() string {
	switch c.Kind {
	case AssetKind:
		return fmt.Sprintf("asset:%d", c.AssetID)
	case ForeignKind:
		return "foreign:" + c.Location.String()
	default:
		return "native"
	}
}

type assetAccount struct {
	Balance types.U128
}

// read returns the free balance of account. A missing storage entry is a confirmed zero.
func (c Class) read(ctx context.Context, reader StorageReader, account [32]byte) (*big.Int, error) {
	switch c.Kind {
	case NativeKind:
		var info types.AccountInfo
		exists, err := reader.ReadStorage(ctx, "System", "Account", &info, account[:])
		if err != nil || !exists {
			return big.NewInt(0), err
		}
		return orZero(info.Data.Free), nil
	case AssetKind:
		id := make([]byte, 4)
		binary.LittleEndian.PutUint32(id, c.AssetID)
		var acc assetAccount
		exists, err := reader.ReadStorage(ctx, "Assets", "Account", &acc, id, account[:])
		if err != nil || !exists {
			return big.NewInt(0), err
		}
		return orZero(acc.Balance), nil
	case ForeignKind:
		location, err := xcm.EncodeRawLocation(c.Location)
		if err != nil {
			return nil, err
		}
		var acc assetAccount
		exists, err := reader.ReadStorage(ctx, "ForeignAssets", "Account", &acc, location, account[:])
		if err != nil || !exists {
			return big.NewInt(0), err
		}
		return orZero(acc.Balance), nil
	}
	return nil, fmt.Errorf("unknown balance class %d", c.Kind)
}

func orZero(v types.U128) *big.Int {
	if v.Int == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(v.Int)
}
