// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"

	"github.com/ChainSafe/xcm-transfer/chains/evm/client"
	"github.com/ChainSafe/xcm-transfer/chains/evm/precompile"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/rs/zerolog/log"
)

// EVMChain aggregates the client and the xcm precompile of the chain transfers are submitted to.
type EVMChain struct {
	client     *client.EVMClient
	precompile *precompile.XcmPrecompile
	config     *EVMConfig
}

// SetupEVMChain connects to the chain described by rawConfig. Transaction statuses are
// recorded in txStorer.
func SetupEVMChain(ctx context.Context, rawConfig map[string]interface{}, policy retry.Policy, txStorer precompile.TxStorer) (*EVMChain, error) {
	config, err := NewEVMConfig(rawConfig)
	if err != nil {
		return nil, err
	}

	c, err := retry.Do(ctx, policy, "connect evm", func(ctx context.Context) (*client.EVMClient, error) {
		return client.NewEVMClient(ctx, config.GeneralChainConfig.Endpoint, config.GeneralChainConfig.Key, config.ClientOptions())
	})
	if err != nil {
		return nil, err
	}

	p := precompile.NewXcmPrecompile(c, config.PrecompileAddress, policy, config.InclusionTimeout)
	if txStorer != nil {
		p.WithTxStorer(txStorer)
	}

	log.Info().Str("chain", config.GeneralChainConfig.Name).Str("signer", c.From().Hex()).Msg("Connected evm chain")
	return NewEVMChain(c, p, config), nil
}

func NewEVMChain(client *client.EVMClient, precompile *precompile.XcmPrecompile, config *EVMConfig) *EVMChain {
	return &EVMChain{client: client, precompile: precompile, config: config}
}

func (c *EVMChain) Client() *client.EVMClient {
	return c.client
}

func (c *EVMChain) Precompile() *precompile.XcmPrecompile {
	return c.precompile
}

func (c *EVMChain) Config() *EVMConfig {
	return c.config
}

// Signer is the address every transaction of the chain is sent from.
func (c *EVMChain) Signer() string {
	return c.client.From().Hex()
}

func (c *EVMChain) Close() {
	c.client.Close()
	log.Debug().Str("chain", c.config.GeneralChainConfig.Name).Msg("Closed evm client")
}
