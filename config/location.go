// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// parseLocation accepts "here", "parent", "native", "parachain:<id>",
// "registry:<pallet>:<index>" or the hex encoding of a versioned location.
func parseLocation(s string) (xcm.Location, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") {
		bz, err := hexutil.Decode(s)
		if err != nil {
			return xcm.Location{}, fmt.Errorf("invalid location %s: %w", s, err)
		}
		return xcm.DecodeVersionedLocation(bz)
	}

	parts := strings.Split(strings.ToLower(s), ":")
	switch {
	case parts[0] == "here" && len(parts) == 1:
		return xcm.Here(), nil
	case parts[0] == "parent" && len(parts) == 1:
		return xcm.Parent(), nil
	case parts[0] == "native" && len(parts) == 1:
		return xcm.NativeAsset(), nil
	case parts[0] == "parachain" && len(parts) == 2:
		id, err := strconv.ParseUint(parts[1], 10, 32)
		if err != nil {
			return xcm.Location{}, fmt.Errorf("invalid parachain id %s: %w", parts[1], err)
		}
		return xcm.ParachainLocation(uint32(id)), nil
	case parts[0] == "registry" && len(parts) == 3:
		pallet, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return xcm.Location{}, fmt.Errorf("invalid pallet instance %s: %w", parts[1], err)
		}
		index, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return xcm.Location{}, fmt.Errorf("invalid general index %s: %w", parts[2], err)
		}
		return xcm.RegistryAsset(uint8(pallet), index), nil
	}
	return xcm.Location{}, fmt.Errorf("unknown location %s", s)
}
