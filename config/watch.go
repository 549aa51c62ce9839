// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/address"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type RawWatchConfig struct {
	// Accounts maps a display name to an SS58 or hex account.
	Accounts map[string]string `mapstructure:"Accounts" json:"accounts"`
	Assets   []uint32          `mapstructure:"Assets" json:"assets" default:"[1984,0]"`
	Foreign  []string          `mapstructure:"Foreign" json:"foreign" default:"[\"parent\"]"`
}

type WatchConfig struct {
	Accounts []balance.Account
	Classes  []balance.Class
}

// NewWatchConfig resolves the watched accounts and the balance classes read for each of them.
// The native class is always watched.
func NewWatchConfig(raw RawWatchConfig) (WatchConfig, error) {
	names := maps.Keys(raw.Accounts)
	slices.Sort(names)

	accounts := make([]balance.Account, 0, len(names))
	for _, name := range names {
		id, err := address.DecodeAccount(raw.Accounts[name])
		if err != nil {
			return WatchConfig{}, fmt.Errorf("invalid watched account %s: %w", name, err)
		}
		accounts = append(accounts, balance.Account{Name: name, ID: id})
	}

	classes := []balance.Class{balance.NativeClass()}
	for _, id := range raw.Assets {
		classes = append(classes, balance.AssetClass(id))
	}
	for _, f := range raw.Foreign {
		location, err := parseLocation(f)
		if err != nil {
			return WatchConfig{}, fmt.Errorf("invalid foreign asset: %w", err)
		}
		classes = append(classes, balance.ForeignClass(location))
	}

	return WatchConfig{Accounts: accounts, Classes: classes}, nil
}
