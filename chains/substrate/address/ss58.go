// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package address

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const maxPrefix = 16383

var checksumPreimage = []byte("SS58PRE")

// Encode formats a 32 byte account id as an SS58 address for the network prefix.
func Encode(id [32]byte, prefix uint16) (string, error) {
	if prefix > maxPrefix {
		return "", fmt.Errorf("ss58 prefix %d out of range", prefix)
	}

	var payload []byte
	if prefix < 64 {
		payload = append(payload, byte(prefix))
	} else {
		payload = append(payload,
			byte((prefix&0xfc)>>2)|0x40,
			byte(prefix>>8)|byte((prefix&0x03)<<6),
		)
	}
	payload = append(payload, id[:]...)

	sum := checksum(payload)
	return base58.Encode(append(payload, sum[:2]...)), nil
}

// Decode parses an SS58 address into its account id and network prefix.
func Decode(address string) ([32]byte, uint16, error) {
	var id [32]byte

	raw, err := base58.Decode(address)
	if err != nil {
		return id, 0, fmt.Errorf("invalid ss58 address %s: %w", address, err)
	}
	if len(raw) == 0 {
		return id, 0, fmt.Errorf("invalid ss58 address %s", address)
	}

	var prefix uint16
	prefixLen := 1
	switch {
	case raw[0] < 64:
		prefix = uint16(raw[0])
	case raw[0] < 128:
		if len(raw) < 2 {
			return id, 0, fmt.Errorf("invalid ss58 address %s", address)
		}
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0x3f
		prefix = uint16(lower) | uint16(upper)<<8
		prefixLen = 2
	default:
		return id, 0, fmt.Errorf("unsupported ss58 address type in %s", address)
	}

	if len(raw) != prefixLen+32+2 {
		return id, 0, fmt.Errorf("ss58 address %s does not hold a 32 byte account", address)
	}

	body := raw[:prefixLen+32]
	sum := checksum(body)
	if !bytes.Equal(sum[:2], raw[prefixLen+32:]) {
		return id, 0, fmt.Errorf("invalid ss58 checksum for %s", address)
	}

	copy(id[:], raw[prefixLen:prefixLen+32])
	return id, prefix, nil
}

// DecodeAccount accepts either an SS58 address or a 0x prefixed hex account id.
func DecodeAccount(account string) ([32]byte, error) {
	if strings.HasPrefix(account, "0x") {
		var id [32]byte
		raw, err := hex.DecodeString(account[2:])
		if err != nil {
			return id, fmt.Errorf("invalid hex account %s: %w", account, err)
		}
		if len(raw) != 32 {
			return id, fmt.Errorf("hex account %s is not 32 bytes", account)
		}
		copy(id[:], raw)
		return id, nil
	}

	id, _, err := Decode(account)
	return id, err
}

func checksum(body []byte) [64]byte {
	return blake2b.Sum512(append(append([]byte{}, checksumPreimage...), body...))
}
