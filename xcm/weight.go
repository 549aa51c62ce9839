// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Weight is a two dimensional execution budget: computation time proxy and proof size proxy.
type Weight struct {
	RefTime   uint64
	ProofSize uint64
}

func (w Weight) IsZero() bool {
	return w.RefTime == 0 && w.ProofSize == 0
}

// Complete reports whether both components are set. A weight missing either cannot be
// used as an execution limit.
func (w Weight) Complete() bool {
	return w.RefTime > 0 && w.ProofSize > 0
}

func (w Weight) String() string {
	return fmt.Sprintf("{refTime: %d, proofSize: %d}", w.RefTime, w.ProofSize)
}

func (w Weight) Encode(encoder scale.Encoder) error {
	if err := encodeCompact(encoder, w.RefTime); err != nil {
		return err
	}
	return encodeCompact(encoder, w.ProofSize)
}

func (w *Weight) Decode(decoder scale.Decoder) error {
	refTime, err := decodeCompact(decoder, 64)
	if err != nil {
		return err
	}
	proofSize, err := decodeCompact(decoder, 64)
	if err != nil {
		return err
	}
	w.RefTime = refTime
	w.ProofSize = proofSize
	return nil
}

// WeightLimit bounds the weight BuyExecution may purchase. A nil Limit means Unlimited.
type WeightLimit struct {
	Limit *Weight
}

func Unlimited() WeightLimit {
	return WeightLimit{}
}

func Limited(w Weight) WeightLimit {
	return WeightLimit{Limit: &w}
}

func (l WeightLimit) Encode(encoder scale.Encoder) error {
	if l.Limit == nil {
		return encoder.PushByte(0)
	}
	if err := encoder.PushByte(1); err != nil {
		return err
	}
	return l.Limit.Encode(encoder)
}

func (l *WeightLimit) Decode(decoder scale.Decoder) error {
	b, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		l.Limit = nil
		return nil
	case 1:
		var w Weight
		if err := w.Decode(decoder); err != nil {
			return err
		}
		l.Limit = &w
		return nil
	}
	return fmt.Errorf("unknown weight limit variant %d", b)
}
