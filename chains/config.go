// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"fmt"
)

const (
	EVMChainType       = "evm"
	SubstrateChainType = "substrate"
)

// GeneralChainConfig holds the fields shared by every configured chain.
type GeneralChainConfig struct {
	Name     string `mapstructure:"name"`
	Type     string `mapstructure:"type"`
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("required field chain.Type empty for chain %s", c.Name)
	}
	if c.Type != EVMChainType && c.Type != SubstrateChainType {
		return fmt.Errorf("unsupported chain type %s", c.Type)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %s", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty")
	}
	return nil
}
