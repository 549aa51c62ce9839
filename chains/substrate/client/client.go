// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/rs/zerolog/log"
)

type Connection interface {
	GetMetadata() types.Metadata
	GetGenesisHash() types.Hash
	GetRuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error)
	ReadStorage(ctx context.Context, module, method string, target interface{}, args ...[]byte) (bool, error)
}

// SubstrateClient signs extrinsics for a single keyring pair. It never submits them.
type SubstrateClient struct {
	conn      Connection
	key       *signature.KeyringPair // Keyring used for signing
	tip       uint64
	nonceLock sync.Mutex // Locks nonce for updates
	nonce     types.U32  // Latest account nonce
}

func NewSubstrateClient(conn Connection, key *signature.KeyringPair, tip uint64) *SubstrateClient {
	return &SubstrateClient{
		conn: conn,
		key:  key,
		tip:  tip,
	}
}

// AccountID returns the public key of the signing account.
func (c *SubstrateClient) AccountID() [32]byte {
	var id [32]byte
	copy(id[:], c.key.PublicKey)
	return id
}

// SignedExtrinsic constructs and signs an extrinsic calling method with the given arguments
// and returns its SCALE encoding. All args are passed directly into GSRPC.
func (c *SubstrateClient) SignedExtrinsic(ctx context.Context, method string, args ...interface{}) ([]byte, error) {
	log.Debug().Msgf("Signing substrate call... method %s, sender %s", method, c.key.Address)

	meta := c.conn.GetMetadata()
	call, err := types.NewCall(
		&meta,
		method,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to construct call: %w", err)
	}

	ext := types.NewExtrinsic(call)
	rv, err := c.conn.GetRuntimeVersion(ctx)
	if err != nil {
		return nil, err
	}

	c.nonceLock.Lock()
	defer c.nonceLock.Unlock()

	nonce, err := c.nextNonce(ctx)
	if err != nil {
		return nil, err
	}

	genesis := c.conn.GetGenesisHash()
	o := types.SignatureOptions{
		BlockHash:          genesis,
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        genesis,
		Nonce:              types.NewUCompactFromUInt(uint64(nonce)),
		SpecVersion:        rv.SpecVersion,
		Tip:                types.NewUCompactFromUInt(c.tip),
		TransactionVersion: rv.TransactionVersion,
	}
	err = ext.Sign(*c.key, o)
	if err != nil {
		return nil, fmt.Errorf("signing of extrinsic failed: %w", err)
	}

	return encodeExtrinsic(ext)
}

// nextNonce returns the larger of the on-chain nonce and the locally tracked one.
// Dry runs do not consume nonces so the local value is not advanced.
func (c *SubstrateClient) nextNonce(ctx context.Context) (types.U32, error) {
	var acct types.AccountInfo
	exists, err := c.conn.ReadStorage(ctx, "System", "Account", &acct, c.key.PublicKey)
	if err != nil {
		return 0, err
	}

	var latestNonce types.U32
	if exists {
		latestNonce = acct.Nonce
	}

	if latestNonce < c.nonce {
		return c.nonce, nil
	}
	c.nonce = latestNonce
	return latestNonce, nil
}

func encodeExtrinsic(ext types.Extrinsic) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	encoder := scale.NewEncoder(buf)
	err := ext.Encode(*encoder)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
