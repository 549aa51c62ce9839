// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/xcm-transfer/chains"
	"github.com/ChainSafe/xcm-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/xcm-transfer/chains/evm/client"
)

type EVMConfig struct {
	GeneralChainConfig chains.GeneralChainConfig
	PrecompileAddress  common.Address
	MaxGasPrice        *big.Int
	GasMultiplier      float64
	GasLimit           uint64
	BlockConfirmations uint64
	PollInterval       time.Duration
	InclusionTimeout   time.Duration
}

type RawEVMConfig struct {
	chains.GeneralChainConfig `mapstructure:",squash"`
	PrecompileAddress         string  `mapstructure:"precompileAddress"`
	MaxGasPrice               int64   `mapstructure:"maxGasPrice" default:"500000000000"`
	GasMultiplier             float64 `mapstructure:"gasMultiplier" default:"1"`
	GasLimit                  int64   `mapstructure:"gasLimit" default:"2000000"`
	BlockConfirmations        int64   `mapstructure:"blockConfirmations" default:"1"`
	PollInterval              uint64  `mapstructure:"pollInterval" default:"2"`
	InclusionTimeout          uint64  `mapstructure:"inclusionTimeout" default:"120"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.Key == "" {
		return fmt.Errorf("required field chain.Key empty for chain %s", c.Name)
	}
	if c.PrecompileAddress != "" && !common.IsHexAddress(c.PrecompileAddress) {
		return fmt.Errorf("invalid precompile address %s", c.PrecompileAddress)
	}
	if c.BlockConfirmations < 0 {
		return fmt.Errorf("blockConfirmations has to be >=0")
	}
	if c.GasMultiplier < 0 {
		return fmt.Errorf("gasMultiplier has to be >0")
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
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

	if c.PrecompileAddress == "" {
		c.PrecompileAddress = consts.XcmPrecompileAddress
	}
	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
		PrecompileAddress:  common.HexToAddress(c.PrecompileAddress),
		MaxGasPrice:        big.NewInt(c.MaxGasPrice),
		GasMultiplier:      c.GasMultiplier,
		GasLimit:           uint64(c.GasLimit),
		BlockConfirmations: uint64(c.BlockConfirmations),
		PollInterval:       time.Duration(c.PollInterval) * time.Second,
		InclusionTimeout:   time.Duration(c.InclusionTimeout) * time.Second,
	}

	return config, nil
}

// ClientOptions returns the transaction parameters the EVM client signs with.
func (c *EVMConfig) ClientOptions() client.Options {
	return client.Options{
		GasLimit:           c.GasLimit,
		GasMultiplier:      c.GasMultiplier,
		MaxGasPrice:        c.MaxGasPrice,
		BlockConfirmations: c.BlockConfirmations,
		PollInterval:       c.PollInterval,
	}
}
