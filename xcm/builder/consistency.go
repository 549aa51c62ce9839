// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package builder

import (
	"github.com/ChainSafe/xcm-transfer/xcm"
)

// CheckAssetConsistency verifies that every asset a program withdraws, pays fees with or
// filters by AllOf refers to one asset id.
func CheckAssetConsistency(program xcm.VersionedXcm) error {
	var id *xcm.Location
	return checkInstructions(program.Instructions, &id)
}

func checkInstructions(instructions []xcm.Instruction, id **xcm.Location) error {
	for _, instruction := range instructions {
		var err error
		switch in := instruction.(type) {
		case xcm.WithdrawAsset:
			err = checkAssets(in.Assets, id)
		case xcm.ReserveAssetDeposited:
			err = checkAssets(in.Assets, id)
		case xcm.ReceiveTeleportedAsset:
			err = checkAssets(in.Assets, id)
		case xcm.BuyExecution:
			err = checkID(in.Fees.ID, id)
		case xcm.PayFees:
			err = checkID(in.Asset.ID, id)
		case xcm.DepositAsset:
			err = checkFilter(in.Assets, id)
		case xcm.InitiateTransfer:
			if in.RemoteFees != nil {
				err = checkFilter(in.RemoteFees.Filter(), id)
			}
			for _, filter := range in.Assets {
				if err != nil {
					break
				}
				err = checkFilter(filter.Filter(), id)
			}
			if err == nil {
				err = checkInstructions(in.RemoteXcm, id)
			}
		case xcm.ClearOrigin, xcm.DescendOrigin, xcm.Transact:
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkAssets(assets xcm.Assets, id **xcm.Location) error {
	for _, asset := range assets {
		if err := checkID(asset.ID, id); err != nil {
			return err
		}
	}
	return nil
}

func checkFilter(filter xcm.AssetFilter, id **xcm.Location) error {
	switch f := filter.(type) {
	case xcm.Definite:
		return checkAssets(f.Assets, id)
	case xcm.Wild:
		if allOf, ok := f.Asset.(xcm.AllOf); ok {
			return checkID(allOf.ID, id)
		}
	}
	return nil
}

func checkID(candidate xcm.Location, id **xcm.Location) error {
	if *id == nil {
		*id = &candidate
		return nil
	}
	if !(*id).Equal(candidate) {
		return &xcm.EncodingError{
			Op:  "asset consistency",
			Err: assetMismatch{expected: **id, got: candidate},
		}
	}
	return nil
}

type assetMismatch struct {
	expected xcm.Location
	got      xcm.Location
}

func (e assetMismatch) Error() string {
	return "asset " + e.got.String() + " does not match " + e.expected.String()
}
