// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// VersionedXcm is an ordered instruction program tagged with its protocol version.
// Instruction order is the execution order on the target chain.
type VersionedXcm struct {
	Version      uint8
	Instructions []Instruction
}

func NewVersionedXcm(instructions ...Instruction) VersionedXcm {
	program := make([]Instruction, len(instructions))
	copy(program, instructions)
	return VersionedXcm{Version: Version, Instructions: program}
}

// Names returns the instruction names in program order.
func (v VersionedXcm) Names() []string {
	names := make([]string, len(v.Instructions))
	for i, instruction := range v.Instructions {
		names[i] = instruction.Name()
	}
	return names
}

func (v VersionedXcm) String() string {
	return fmt.Sprintf("V%d[%s]", v.Version, strings.Join(v.Names(), ","))
}

// Equal compares programs by their wire form, so an empty sequence equals a nil one.
// Programs that cannot be encoded fall back to a deep comparison.
func (v VersionedXcm) Equal(other VersionedXcm) bool {
	a, errA := EncodeXcm(v)
	b, errB := EncodeXcm(other)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(v, other)
	}
	return bytes.Equal(a, b)
}

func (v VersionedXcm) Encode(encoder scale.Encoder) error {
	if v.Version != Version {
		return fmt.Errorf("unsupported xcm version %d", v.Version)
	}
	if err := encoder.PushByte(v.Version); err != nil {
		return err
	}
	return encodeVec(encoder, v.Instructions)
}

func (v *VersionedXcm) Decode(decoder scale.Decoder) error {
	version, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if version != Version {
		return fmt.Errorf("unsupported xcm version %d", version)
	}
	instructions, err := decodeVec(decoder, decodeInstruction)
	if err != nil {
		return err
	}
	v.Version = version
	v.Instructions = instructions
	return nil
}

// EncodeXcm SCALE-encodes a program after validating every asset and location in it.
func EncodeXcm(v VersionedXcm) ([]byte, error) {
	if len(v.Instructions) == 0 {
		return nil, encodingErr("versioned xcm", "empty program")
	}
	if err := validateProgram(v.Instructions); err != nil {
		return nil, err
	}
	return encodeToBytes("versioned xcm", v)
}

// DecodeXcm decodes a versioned program. Unknown variants and trailing bytes are EncodingErrors.
func DecodeXcm(bz []byte) (VersionedXcm, error) {
	var v VersionedXcm
	if err := decodeFromBytes("versioned xcm", bz, &v); err != nil {
		return VersionedXcm{}, err
	}
	return v, nil
}

func validateProgram(instructions []Instruction) error {
	for i, instruction := range instructions {
		var err error
		switch in := instruction.(type) {
		case WithdrawAsset:
			err = in.Assets.Validate()
		case ReserveAssetDeposited:
			err = in.Assets.Validate()
		case ReceiveTeleportedAsset:
			err = in.Assets.Validate()
		case ClearOrigin:
		case DescendOrigin:
			err = Location{Interior: in.Interior}.Validate()
		case BuyExecution:
			err = in.Fees.Validate()
		case PayFees:
			err = in.Asset.Validate()
		case DepositAsset:
			if in.Assets == nil {
				err = encodingErr("DepositAsset", "missing asset filter")
			} else {
				err = in.Beneficiary.Validate()
			}
		case InitiateTransfer:
			err = in.Destination.Validate()
			if err == nil {
				err = validateProgram(in.RemoteXcm)
			}
		case Transact:
			if len(in.Call) == 0 {
				err = encodingErr("Transact", "empty call")
			}
		case nil:
			err = encodingErr("versioned xcm", "nil instruction")
		default:
			err = encodingErr("versioned xcm", "unsupported instruction %T", in)
		}
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return nil
}
