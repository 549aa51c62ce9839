// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"context"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/address"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/client"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/connection"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/dryrun"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/rs/zerolog/log"
)

// SubstrateChain aggregates the runtime facing side of a chain: storage reads, dry runs
// and extrinsic signing.
type SubstrateChain struct {
	conn      *connection.Connection
	client    *client.SubstrateClient
	validator *dryrun.Validator
	config    *SubstrateConfig
}

func SetupSubstrateChain(ctx context.Context, rawConfig map[string]interface{}, policy retry.Policy) (*SubstrateChain, error) {
	config, err := NewSubstrateConfig(rawConfig)
	if err != nil {
		return nil, err
	}

	keyPair, err := signature.KeyringPairFromSecret(config.GeneralChainConfig.Key, config.SS58Prefix)
	if err != nil {
		return nil, err
	}

	conn, err := retry.Do(ctx, policy, "connect substrate", func(ctx context.Context) (*connection.Connection, error) {
		return connection.NewSubstrateConnection(config.GeneralChainConfig.Endpoint)
	})
	if err != nil {
		return nil, err
	}

	substrateClient := client.NewSubstrateClient(conn, &keyPair, config.Tip)
	validator := dryrun.NewValidator(conn, substrateClient, policy)

	log.Info().Str("chain", config.GeneralChainConfig.Name).Str("signer", keyPair.Address).Msg("Connected substrate chain")
	return NewSubstrateChain(conn, substrateClient, validator, config), nil
}

func NewSubstrateChain(conn *connection.Connection, client *client.SubstrateClient, validator *dryrun.Validator, config *SubstrateConfig) *SubstrateChain {
	return &SubstrateChain{conn: conn, client: client, validator: validator, config: config}
}

func (c *SubstrateChain) Validator() *dryrun.Validator {
	return c.validator
}

func (c *SubstrateChain) Config() *SubstrateConfig {
	return c.config
}

// Comparator watches classes through the storage of the chain.
func (c *SubstrateChain) Comparator(classes []balance.Class, policy retry.Policy) *balance.Comparator {
	return balance.NewComparator(c.conn, classes, policy)
}

// Account is the signing account, watched when no accounts are configured.
func (c *SubstrateChain) Account() balance.Account {
	return balance.Account{Name: "signer", ID: c.client.AccountID()}
}

// DryRunOrigin is the location execute dry runs are dispatched from: the configured account,
// or the signing account when none is configured.
func (c *SubstrateChain) DryRunOrigin() (xcm.Location, error) {
	if c.config.DryRunOrigin == "" {
		return xcm.AccountLocation(c.client.AccountID()), nil
	}
	id, err := address.DecodeAccount(c.config.DryRunOrigin)
	if err != nil {
		return xcm.Location{}, err
	}
	return xcm.AccountLocation(id), nil
}

func (c *SubstrateChain) Close() {
	c.conn.Close()
}
