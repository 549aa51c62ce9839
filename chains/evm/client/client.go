// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type Options struct {
	GasLimit           uint64
	GasMultiplier      float64
	MaxGasPrice        *big.Int
	BlockConfirmations uint64
	PollInterval       time.Duration
}

// EVMClient signs and submits dynamic fee transactions from a single account and
// waits for their receipts.
type EVMClient struct {
	*ethclient.Client
	key       *ecdsa.PrivateKey
	from      common.Address
	signer    types.Signer
	chainID   *big.Int
	opts      Options
	limiter   *rate.Limiter
	nonce     *uint64
	nonceLock sync.Mutex
}

// NewEVMClient dials url and prepares a signer for the hex encoded private key.
func NewEVMClient(ctx context.Context, url string, privateKey string, opts Options) (*EVMClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid evm private key: %w", err)
	}

	c, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		c.Close()
		return nil, err
	}

	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	}
	if opts.GasMultiplier == 0 {
		opts.GasMultiplier = 1
	}

	return &EVMClient{
		Client:  c,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		signer:  types.LatestSignerForChainID(chainID),
		chainID: chainID,
		opts:    opts,
		limiter: rate.NewLimiter(rate.Every(opts.PollInterval), 1),
	}, nil
}

// Use opens a client, runs fn with it and always closes it.
func Use(ctx context.Context, url string, privateKey string, opts Options, fn func(c *EVMClient) error) error {
	c, err := NewEVMClient(ctx, url, privateKey, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	return fn(c)
}

func (c *EVMClient) From() common.Address {
	return c.from
}

// SignTransaction builds and signs a dynamic fee transaction calling to with data.
// The transaction is not submitted.
func (c *EVMClient) SignTransaction(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error) {
	c.nonceLock.Lock()
	defer c.nonceLock.Unlock()

	nonce, err := c.unsafeNonce(ctx)
	if err != nil {
		return nil, err
	}

	gas, err := c.EstimateGas(ctx, ethereum.CallMsg{From: c.from, To: &to, Data: data})
	if err != nil {
		return nil, err
	}
	gas = uint64(float64(gas) * c.opts.GasMultiplier)
	if c.opts.GasLimit != 0 && gas > c.opts.GasLimit {
		gas = c.opts.GasLimit
	}

	tip, feeCap, err := c.fees(ctx)
	if err != nil {
		return nil, err
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &to,
		Data:      data,
	})
	return types.SignTx(tx, c.signer, c.key)
}

// SubmitTransaction broadcasts a signed transaction. Resubmitting a transaction the node
// already holds is not an error.
func (c *EVMClient) SubmitTransaction(ctx context.Context, tx *types.Transaction) error {
	c.nonceLock.Lock()
	defer c.nonceLock.Unlock()

	err := c.SendTransaction(ctx, tx)
	if err != nil && !isAlreadyKnown(err) {
		c.nonce = nil
		return err
	}

	next := tx.Nonce() + 1
	c.nonce = &next
	log.Debug().Str("txHash", tx.Hash().Hex()).Uint64("nonce", tx.Nonce()).Msg("Transaction submitted")
	return nil
}

// WaitForReceipt polls until the transaction is included. The wait is bounded by ctx and
// ends at the first transport error.
func (c *EVMClient) WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		receipt, err := c.TransactionReceipt(ctx, txHash)
		if errors.Is(err, ethereum.NotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return receipt, nil
	}
}

// WaitForConfirmations polls until the block of receipt is buried under the configured
// number of confirmations.
func (c *EVMClient) WaitForConfirmations(ctx context.Context, receipt *types.Receipt) error {
	target := receipt.BlockNumber.Uint64() + c.opts.BlockConfirmations
	for {
		head, err := c.BlockNumber(ctx)
		if err != nil {
			return err
		}
		if head >= target {
			return nil
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
}

func (c *EVMClient) unsafeNonce(ctx context.Context) (uint64, error) {
	if c.nonce != nil {
		return *c.nonce, nil
	}
	nonce, err := c.PendingNonceAt(ctx, c.from)
	if err != nil {
		return 0, err
	}
	c.nonce = &nonce
	return nonce, nil
}

func (c *EVMClient) fees(ctx context.Context) (*big.Int, *big.Int, error) {
	tip, err := c.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, err
	}
	head, err := c.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, err
	}

	baseFee := head.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}
	feeCap := new(big.Int).Add(tip, new(big.Int).Mul(baseFee, big.NewInt(2)))
	if c.opts.MaxGasPrice != nil && feeCap.Cmp(c.opts.MaxGasPrice) > 0 {
		feeCap = new(big.Int).Set(c.opts.MaxGasPrice)
		if tip.Cmp(feeCap) > 0 {
			tip = new(big.Int).Set(feeCap)
		}
	}
	return tip, feeCap, nil
}

func isAlreadyKnown(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already known") || strings.Contains(msg, "already imported")
}
