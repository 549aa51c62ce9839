// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/xcm-transfer/chains"
)

const defaultSS58Prefix = 42

type RawSubstrateConfig struct {
	chains.GeneralChainConfig `mapstructure:",squash"`
	SS58Prefix                *uint16 `mapstructure:"ss58Prefix"`
	DryRunOrigin              string  `mapstructure:"dryRunOrigin"`
	Tip                       uint64  `mapstructure:"tip"`
	Decimals                  uint8   `mapstructure:"decimals" default:"10"`
	Symbol                    string  `mapstructure:"symbol" default:"UNIT"`
}

type SubstrateConfig struct {
	GeneralChainConfig chains.GeneralChainConfig
	SS58Prefix         uint16
	// DryRunOrigin is the SS58 account the execute dry run originates from.
	// Empty means the signing key account.
	DryRunOrigin string
	Tip          uint64
	Decimals     uint8
	Symbol       string
}

func (c *RawSubstrateConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Key == "" {
		return fmt.Errorf("required field chain.Key empty for chain %s", c.Name)
	}
	return nil
}

// NewSubstrateConfig decodes and validates an instance of an SubstrateConfig from
// raw chain config
func NewSubstrateConfig(chainConfig map[string]interface{}) (*SubstrateConfig, error) {
	var c RawSubstrateConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	prefix := uint16(defaultSS58Prefix)
	if c.SS58Prefix != nil {
		prefix = *c.SS58Prefix
	}
	config := &SubstrateConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		SS58Prefix:         prefix,
		DryRunOrigin:       c.DryRunOrigin,
		Tip:                c.Tip,
		Decimals:           c.Decimals,
		Symbol:             c.Symbol,
	}

	return config, nil
}
