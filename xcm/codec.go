// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/holiman/uint256"
)

const maxVecLen = 1 << 16

var maxU128 = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))

func encodeCompact(encoder scale.Encoder, v uint64) error {
	return encoder.EncodeUintCompact(*new(big.Int).SetUint64(v))
}

func decodeCompact(decoder scale.Decoder, bits int) (uint64, error) {
	v, err := decoder.DecodeUintCompact()
	if err != nil {
		return 0, err
	}
	if v.BitLen() > bits {
		return 0, fmt.Errorf("compact value %s exceeds %d bits", v, bits)
	}
	return v.Uint64(), nil
}

func encodeCompact128(encoder scale.Encoder, v uint256.Int) error {
	if v.Gt(maxU128) {
		return fmt.Errorf("value %s exceeds 128 bits", v.ToBig())
	}
	return encoder.EncodeUintCompact(*v.ToBig())
}

func decodeCompact128(decoder scale.Decoder) (uint256.Int, error) {
	b, err := decoder.DecodeUintCompact()
	if err != nil {
		return uint256.Int{}, err
	}
	if b.BitLen() > 128 {
		return uint256.Int{}, fmt.Errorf("compact value %s exceeds 128 bits", b)
	}
	v, _ := uint256.FromBig(b)
	return *v, nil
}

func encodeVec[T scale.Encodeable](encoder scale.Encoder, items []T) error {
	if err := encodeCompact(encoder, uint64(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if any(item) == nil {
			return fmt.Errorf("nil element in sequence")
		}
		if err := item.Encode(encoder); err != nil {
			return err
		}
	}
	return nil
}

func decodeVec[T any](decoder scale.Decoder, decodeOne func(scale.Decoder) (T, error)) ([]T, error) {
	n, err := decodeCompact(decoder, 32)
	if err != nil {
		return nil, err
	}
	if n > maxVecLen {
		return nil, fmt.Errorf("sequence length %d exceeds limit", n)
	}
	if n == 0 {
		return nil, nil
	}
	items := make([]T, 0, n)
	for i := uint64(0); i < n; i++ {
		item, err := decodeOne(decoder)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeBool(encoder scale.Encoder, v bool) error {
	if v {
		return encoder.PushByte(1)
	}
	return encoder.PushByte(0)
}

func decodeBool(decoder scale.Decoder) (bool, error) {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("invalid bool byte %d", b)
}

// encodeToBytes SCALE-encodes value, wrapping any failure in an EncodingError.
func encodeToBytes(op string, value scale.Encodeable) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	encoder := scale.NewEncoder(buf)
	if err := value.Encode(*encoder); err != nil {
		return nil, &EncodingError{Op: op, Err: err}
	}
	return buf.Bytes(), nil
}

// decodeFromBytes decodes bz into target and rejects trailing bytes.
func decodeFromBytes(op string, bz []byte, target scale.Decodeable) error {
	if len(bz) == 0 {
		return encodingErr(op, "empty input")
	}
	reader := bytes.NewReader(bz)
	decoder := scale.NewDecoder(reader)
	if err := target.Decode(*decoder); err != nil {
		return &EncodingError{Op: op, Err: err}
	}
	if reader.Len() != 0 {
		return encodingErr(op, "%d trailing bytes", reader.Len())
	}
	return nil
}
