// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/xcm-transfer/chains/substrate/address"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

type RawScenario struct {
	Scenario          string  `mapstructure:"Scenario" json:"scenario"`
	Amount            string  `mapstructure:"Amount" json:"amount"`
	Beneficiary       string  `mapstructure:"Beneficiary" json:"beneficiary"`
	Asset             string  `mapstructure:"Asset" json:"asset" default:"native"`
	Fee               string  `mapstructure:"Fee" json:"fee"`
	Origin            string  `mapstructure:"Origin" json:"origin"`
	DestinationParaID *uint32 `mapstructure:"DestinationParaID" json:"destinationParaID"`
	Destination       string  `mapstructure:"Destination" json:"destination"`
	DepositFilter     string  `mapstructure:"DepositFilter" json:"depositFilter"`
	TransferType      string  `mapstructure:"TransferType" json:"transferType"`
	Call              string  `mapstructure:"Call" json:"call"`
}

func (c *RawScenario) Validate() error {
	if c.Scenario == "" {
		return fmt.Errorf("required field scenario.Scenario empty")
	}
	if strings.EqualFold(c.Scenario, string(builder.Remark)) {
		if c.Call == "" {
			return fmt.Errorf("required field scenario.Call empty for %s", c.Scenario)
		}
		return nil
	}
	if c.Amount == "" {
		return fmt.Errorf("required field scenario.Amount empty for %s", c.Scenario)
	}
	if c.Beneficiary == "" {
		return fmt.Errorf("required field scenario.Beneficiary empty for %s", c.Scenario)
	}
	return nil
}

// NewIntent parses a configured scenario into the intent the builder consumes.
func NewIntent(raw RawScenario) (builder.Intent, error) {
	if err := raw.Validate(); err != nil {
		return builder.Intent{}, err
	}

	scenario, err := builder.ParseScenario(raw.Scenario)
	if err != nil {
		return builder.Intent{}, err
	}
	asset, err := parseLocation(raw.Asset)
	if err != nil {
		return builder.Intent{}, err
	}

	intent := builder.Intent{
		Scenario:          scenario,
		Asset:             asset,
		DestinationParaID: raw.DestinationParaID,
		DepositFilter:     builder.DepositFilterKind(raw.DepositFilter),
		TransferType:      builder.TransferType(raw.TransferType),
	}
	if raw.Amount != "" {
		amount, err := uint256.FromDecimal(raw.Amount)
		if err != nil {
			return builder.Intent{}, fmt.Errorf("invalid amount %s: %w", raw.Amount, err)
		}
		intent.Amount = *amount
	}
	if raw.Beneficiary != "" {
		beneficiary, err := address.DecodeAccount(raw.Beneficiary)
		if err != nil {
			return builder.Intent{}, fmt.Errorf("invalid beneficiary: %w", err)
		}
		intent.Beneficiary = beneficiary
	}
	if raw.Fee != "" {
		fee, err := uint256.FromDecimal(raw.Fee)
		if err != nil {
			return builder.Intent{}, fmt.Errorf("invalid fee %s: %w", raw.Fee, err)
		}
		intent.Fee = *fee
	}
	if raw.Origin != "" {
		origin, err := address.DecodeAccount(raw.Origin)
		if err != nil {
			return builder.Intent{}, fmt.Errorf("invalid origin: %w", err)
		}
		intent.Origin = &origin
	}
	if raw.Destination != "" {
		destination, err := parseLocation(raw.Destination)
		if err != nil {
			return builder.Intent{}, err
		}
		intent.Destination = &destination
	}
	if raw.Call != "" {
		call, err := hexutil.Decode(raw.Call)
		if err != nil {
			return builder.Intent{}, fmt.Errorf("invalid call %s: %w", raw.Call, err)
		}
		intent.Call = call
	}
	return intent, nil
}
