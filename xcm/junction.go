// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"encoding/hex"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

// NetworkID identifies a global consensus system. A nil NetworkID encodes as None.
type NetworkID interface {
	scale.Encodeable
	fmt.Stringer
	isNetworkID()
}

type ByGenesis [32]byte

type Polkadot struct{}

type Kusama struct{}

type Ethereum struct {
	ChainID uint64
}

type BitcoinCore struct{}

type BitcoinCash struct{}

type PolkadotBulletin struct{}

func (ByGenesis) isNetworkID()        {}
func (Polkadot) isNetworkID()         {}
func (Kusama) isNetworkID()           {}
func (Ethereum) isNetworkID()         {}
func (BitcoinCore) isNetworkID()      {}
func (BitcoinCash) isNetworkID()      {}
func (PolkadotBulletin) isNetworkID() {}

func (n ByGenesis) String() string      { return "ByGenesis(0x" + hex.EncodeToString(n[:]) + ")" }
func (Polkadot) String() string         { return "Polkadot" }
func (Kusama) String() string           { return "Kusama" }
func (n Ethereum) String() string       { return fmt.Sprintf("Ethereum(%d)", n.ChainID) }
func (BitcoinCore) String() string      { return "BitcoinCore" }
func (BitcoinCash) String() string      { return "BitcoinCash" }
func (PolkadotBulletin) String() string { return "PolkadotBulletin" }

func (n ByGenesis) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(0); err != nil {
		return err
	}
	return encoder.Write(n[:])
}

func (Polkadot) Encode(encoder scale.Encoder) error { return encoder.PushByte(2) }
func (Kusama) Encode(encoder scale.Encoder) error   { return encoder.PushByte(3) }

func (n Ethereum) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(7); err != nil {
		return err
	}
	return encodeCompact(encoder, n.ChainID)
}

func (BitcoinCore) Encode(encoder scale.Encoder) error      { return encoder.PushByte(8) }
func (BitcoinCash) Encode(encoder scale.Encoder) error      { return encoder.PushByte(9) }
func (PolkadotBulletin) Encode(encoder scale.Encoder) error { return encoder.PushByte(10) }

func decodeNetworkID(decoder scale.Decoder) (NetworkID, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case 0:
		var genesis ByGenesis
		if err := decoder.Read(genesis[:]); err != nil {
			return nil, err
		}
		return genesis, nil
	case 2:
		return Polkadot{}, nil
	case 3:
		return Kusama{}, nil
	case 7:
		chainID, err := decodeCompact(decoder, 64)
		if err != nil {
			return nil, err
		}
		return Ethereum{ChainID: chainID}, nil
	case 8:
		return BitcoinCore{}, nil
	case 9:
		return BitcoinCash{}, nil
	case 10:
		return PolkadotBulletin{}, nil
	}
	return nil, fmt.Errorf("unsupported network id variant %d", b)
}

// Junction is one segment of a Location path.
type Junction interface {
	scale.Encodeable
	fmt.Stringer
	isJunction()
}

type Parachain uint32

type AccountId32 struct {
	Network NetworkID
	ID      [32]byte
}

type PalletInstance uint8

type GeneralIndex struct {
	Index uint256.Int
}

func NewGeneralIndex(index uint64) GeneralIndex {
	return GeneralIndex{Index: *uint256.NewInt(index)}
}

func (Parachain) isJunction()      {}
func (AccountId32) isJunction()    {}
func (PalletInstance) isJunction() {}
func (GeneralIndex) isJunction()   {}

func (j Parachain) String() string { return fmt.Sprintf("Parachain(%d)", uint32(j)) }

func (j AccountId32) String() string {
	network := "None"
	if j.Network != nil {
		network = j.Network.String()
	}
	return fmt.Sprintf("AccountId32(%s,0x%s)", network, hex.EncodeToString(j.ID[:]))
}

func (j PalletInstance) String() string { return fmt.Sprintf("PalletInstance(%d)", uint8(j)) }

func (j GeneralIndex) String() string { return fmt.Sprintf("GeneralIndex(%s)", j.Index.ToBig()) }

func (j Parachain) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(0); err != nil {
		return err
	}
	return encodeCompact(encoder, uint64(j))
}

func (j AccountId32) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	if err := encoder.EncodeOption(j.Network != nil, j.Network); err != nil {
		return err
	}
	return encoder.Write(j.ID[:])
}

func (j PalletInstance) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(4); err != nil {
		return err
	}
	return encoder.PushByte(uint8(j))
}

func (j GeneralIndex) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(5); err != nil {
		return err
	}
	return encodeCompact128(encoder, j.Index)
}

func decodeJunction(decoder scale.Decoder) (Junction, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	switch b {
	case 0:
		id, err := decodeCompact(decoder, 32)
		if err != nil {
			return nil, err
		}
		return Parachain(id), nil
	case 1:
		var j AccountId32
		hasNetwork, err := decodeBool(decoder)
		if err != nil {
			return nil, err
		}
		if hasNetwork {
			j.Network, err = decodeNetworkID(decoder)
			if err != nil {
				return nil, err
			}
		}
		if err := decoder.Read(j.ID[:]); err != nil {
			return nil, err
		}
		return j, nil
	case 4:
		index, err := decoder.ReadOneByte()
		if err != nil {
			return nil, err
		}
		return PalletInstance(index), nil
	case 5:
		index, err := decodeCompact128(decoder)
		if err != nil {
			return nil, err
		}
		return GeneralIndex{Index: index}, nil
	}
	return nil, fmt.Errorf("unsupported junction variant %d", b)
}
