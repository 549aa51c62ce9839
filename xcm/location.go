// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

const (
	MaxJunctions = 8
	// Version is the only XCM version this package encodes.
	Version uint8 = 5
)

// Junctions is the interior path of a Location. An empty path is Here.
type Junctions []Junction

func (j Junctions) IsHere() bool {
	return len(j) == 0
}

func (j Junctions) String() string {
	if j.IsHere() {
		return "Here"
	}
	parts := make([]string, len(j))
	for i, junction := range j {
		parts[i] = junction.String()
	}
	return fmt.Sprintf("X%d(%s)", len(j), strings.Join(parts, ","))
}

func (j Junctions) Encode(encoder scale.Encoder) error {
	if len(j) > MaxJunctions {
		return fmt.Errorf("%d junctions exceed the maximum of %d", len(j), MaxJunctions)
	}
	if err := encoder.PushByte(uint8(len(j))); err != nil {
		return err
	}
	for _, junction := range j {
		if junction == nil {
			return fmt.Errorf("nil junction")
		}
		if err := junction.Encode(encoder); err != nil {
			return err
		}
	}
	return nil
}

func (j *Junctions) Decode(decoder scale.Decoder) error {
	n, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if n > MaxJunctions {
		return fmt.Errorf("unsupported junctions variant %d", n)
	}
	if n == 0 {
		*j = nil
		return nil
	}
	junctions := make(Junctions, 0, n)
	for i := uint8(0); i < n; i++ {
		junction, err := decodeJunction(decoder)
		if err != nil {
			return err
		}
		junctions = append(junctions, junction)
	}
	*j = junctions
	return nil
}

// Location is a chain relative address: a number of parent hops followed by an interior path.
type Location struct {
	Parents  uint8
	Interior Junctions
}

func NewLocation(parents uint8, junctions ...Junction) Location {
	if len(junctions) == 0 {
		return Location{Parents: parents}
	}
	interior := make(Junctions, len(junctions))
	copy(interior, junctions)
	return Location{Parents: parents, Interior: interior}
}

// Here is the location of the current consensus system.
func Here() Location {
	return Location{}
}

// Parent is the location of the relay chain as seen from a parachain.
func Parent() Location {
	return Location{Parents: 1}
}

// ParachainLocation is a sibling parachain as seen from another parachain.
func ParachainLocation(id uint32) Location {
	return NewLocation(1, Parachain(id))
}

// AccountLocation is a local 32 byte account with no network qualifier.
func AccountLocation(id [32]byte) Location {
	return NewLocation(0, AccountId32{ID: id})
}

func (l Location) Equal(other Location) bool {
	if l.Parents != other.Parents || len(l.Interior) != len(other.Interior) {
		return false
	}
	for i := range l.Interior {
		if !reflect.DeepEqual(l.Interior[i], other.Interior[i]) {
			return false
		}
	}
	return true
}

// Validate checks the structural rules of a location: at most eight junctions, and asset registry
// junctions (PalletInstance, GeneralIndex) never addressing an account.
func (l Location) Validate() error {
	if len(l.Interior) > MaxJunctions {
		return encodingErr("location", "%d junctions exceed the maximum of %d", len(l.Interior), MaxJunctions)
	}
	registry := false
	for _, junction := range l.Interior {
		switch junction.(type) {
		case PalletInstance, GeneralIndex:
			registry = true
		case AccountId32:
			if registry {
				return encodingErr("location", "account junction after asset registry junction in %s", l)
			}
		case Parachain:
		case nil:
			return encodingErr("location", "nil junction in %s", l)
		}
	}
	return nil
}

func (l Location) String() string {
	return fmt.Sprintf("{%d,%s}", l.Parents, l.Interior)
}

func (l Location) Encode(encoder scale.Encoder) error {
	if err := encoder.PushByte(l.Parents); err != nil {
		return err
	}
	return l.Interior.Encode(encoder)
}

func (l *Location) Decode(decoder scale.Decoder) error {
	parents, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	l.Parents = parents
	return l.Interior.Decode(decoder)
}

// VersionedLocation tags a Location with its XCM version.
type VersionedLocation struct {
	Version  uint8
	Location Location
}

func NewVersionedLocation(l Location) VersionedLocation {
	return VersionedLocation{Version: Version, Location: l}
}

func (v VersionedLocation) Encode(encoder scale.Encoder) error {
	if v.Version != Version {
		return fmt.Errorf("unsupported location version %d", v.Version)
	}
	if err := encoder.PushByte(v.Version); err != nil {
		return err
	}
	return v.Location.Encode(encoder)
}

func (v *VersionedLocation) Decode(decoder scale.Decoder) error {
	version, err := decoder.ReadOneByte()
	if err != nil {
		return err
	}
	if version != Version {
		return fmt.Errorf("unsupported location version %d", version)
	}
	v.Version = version
	return v.Location.Decode(decoder)
}

// EncodeLocation encodes l as a versioned location, the form expected by the send entry point.
func EncodeLocation(l Location) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return encodeToBytes("versioned location", NewVersionedLocation(l))
}

// EncodeRawLocation encodes l without a version tag, as used in storage keys.
func EncodeRawLocation(l Location) ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return encodeToBytes("location", l)
}

func DecodeVersionedLocation(bz []byte) (Location, error) {
	var v VersionedLocation
	if err := decodeFromBytes("versioned location", bz, &v); err != nil {
		return Location{}, err
	}
	return v.Location, nil
}
