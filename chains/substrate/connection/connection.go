// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"context"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/rpc"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog/log"
)

type Connection struct {
	*rpc.RPC
	client      client.Client
	meta        types.Metadata // Latest chain metadata
	metaLock    sync.RWMutex   // Lock metadata for updates, allows concurrent reads
	GenesisHash types.Hash     // Chain genesis hash
}

func NewSubstrateConnection(url string) (*Connection, error) {
	c := &Connection{}
	client, err := client.Connect(url)
	if err != nil {
		return nil, err
	}
	rpc, err := rpc.NewRPC(client)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.client = client
	c.RPC = rpc

	// Fetch metadata
	meta, err := c.RPC.State.GetMetadataLatest()
	if err != nil {
		client.Close()
		return nil, err
	}
	c.meta = *meta
	// Fetch genesis hash
	genesisHash, err := c.RPC.Chain.GetBlockHash(0)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.GenesisHash = genesisHash
	return c, nil
}

// Use opens a connection, runs fn with it and always closes it.
func Use(ctx context.Context, url string, fn func(c *Connection) error) error {
	c, err := withContext(ctx, func() (*Connection, error) {
		return NewSubstrateConnection(url)
	})
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

func (c *Connection) Close() {
	c.client.Close()
	log.Debug().Str("url", c.client.URL()).Msg("Closed substrate connection")
}

func (c *Connection) GetMetadata() (meta types.Metadata) {
	c.metaLock.RLock()
	meta = c.meta
	c.metaLock.RUnlock()
	return meta
}

func (c *Connection) UpdateMetatdata() error {
	c.metaLock.Lock()
	meta, err := c.RPC.State.GetMetadataLatest()
	if err != nil {
		c.metaLock.Unlock()
		return err
	}
	c.meta = *meta
	c.metaLock.Unlock()
	return nil
}

func (c *Connection) GetFinalizedHead(ctx context.Context) (types.Hash, error) {
	return withContext(ctx, c.RPC.Chain.GetFinalizedHead)
}

func (c *Connection) GetRuntimeVersion(ctx context.Context) (*types.RuntimeVersion, error) {
	return withContext(ctx, c.RPC.State.GetRuntimeVersionLatest)
}

// ReadStorage decodes the latest value under module.method keyed by args into target.
// It reports false without an error when the entry does not exist.
func (c *Connection) ReadStorage(ctx context.Context, module, method string, target interface{}, args ...[]byte) (bool, error) {
	meta := c.GetMetadata()
	key, err := types.CreateStorageKey(&meta, module, method, args...)
	if err != nil {
		return false, err
	}

	return withContext(ctx, func() (bool, error) {
		return c.RPC.State.GetStorageLatest(key, target)
	})
}

// StateCall invokes a runtime API method with SCALE encoded args at block at, or at the
// best block when at is nil.
func (c *Connection) StateCall(ctx context.Context, method string, args []byte, at *types.Hash) ([]byte, error) {
	params := []interface{}{method, hexutil.Encode(args)}
	if at != nil {
		params = append(params, at.Hex())
	}
	return c.callHex(ctx, "state_call", params...)
}

// DryRunExtrinsic runs system_dryRun for a signed extrinsic and returns the encoded
// ApplyExtrinsicResult.
func (c *Connection) DryRunExtrinsic(ctx context.Context, extrinsic []byte, at types.Hash) ([]byte, error) {
	return c.callHex(ctx, "system_dryRun", hexutil.Encode(extrinsic), at.Hex())
}

func (c *Connection) callHex(ctx context.Context, method string, params ...interface{}) ([]byte, error) {
	res, err := withContext(ctx, func() (string, error) {
		var res string
		err := c.client.Call(&res, method, params...)
		return res, err
	})
	if err != nil {
		return nil, err
	}
	return hexutil.Decode(res)
}

// withContext bounds a blocking RPC call by ctx. The call keeps running in the background
// after ctx is done but its result is dropped.
func withContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value, err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (c *Connection) GetGenesisHash() types.Hash {
	return c.GenesisHash
}
