// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package precompile

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ChainSafe/xcm-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/store"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
)

type ChainClient interface {
	From() common.Address
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	SignTransaction(ctx context.Context, to common.Address, data []byte) (*types.Transaction, error)
	SubmitTransaction(ctx context.Context, tx *types.Transaction) error
	WaitForReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	WaitForConfirmations(ctx context.Context, receipt *types.Receipt) error
}

type TxStorer interface {
	StoreTxStatus(txHash common.Hash, status store.TxStatus) error
}

// Receipt is the terminal view of an included transaction.
type Receipt struct {
	TxHash      common.Hash
	Status      store.TxStatus
	BlockNumber uint64
	GasUsed     uint64
}

type weight struct {
	RefTime   uint64 `json:"refTime"`
	ProofSize uint64 `json:"proofSize"`
}

// XcmPrecompile calls the XCM precompile contract of the connected chain.
type XcmPrecompile struct {
	client           ChainClient
	abi              abi.ABI
	address          common.Address
	policy           retry.Policy
	inclusionTimeout time.Duration
	txStorer         TxStorer
}

func NewXcmPrecompile(
	client ChainClient,
	address common.Address,
	policy retry.Policy,
	inclusionTimeout time.Duration,
) *XcmPrecompile {
	a, _ := abi.JSON(strings.NewReader(consts.XcmABI))
	return &XcmPrecompile{
		client:           client,
		abi:              a,
		address:          address,
		policy:           policy,
		inclusionTimeout: inclusionTimeout,
	}
}

// WithTxStorer records the status of every submitted transaction in s.
func (p *XcmPrecompile) WithTxStorer(s TxStorer) *XcmPrecompile {
	p.txStorer = s
	return p
}

func (p *XcmPrecompile) Address() common.Address {
	return p.address
}

// WeighMessage asks the chain how much weight executing message requires.
// It never returns a weight with a zero component without an error.
func (p *XcmPrecompile) WeighMessage(ctx context.Context, message []byte) (xcm.Weight, error) {
	if len(message) == 0 {
		return xcm.Weight{}, &xcm.WeighingError{Err: errors.New("empty message")}
	}

	input, err := p.abi.Pack("weighMessage", message)
	if err != nil {
		return xcm.Weight{}, &xcm.WeighingError{Err: err}
	}

	out, err := p.client.CallContract(ctx, ethereum.CallMsg{From: p.client.From(), To: &p.address, Data: input}, nil)
	if err != nil {
		return xcm.Weight{}, &xcm.WeighingError{Err: err, Transient: !IsRevert(err)}
	}

	res, err := p.abi.Unpack("weighMessage", out)
	if err != nil {
		return xcm.Weight{}, &xcm.WeighingError{Err: fmt.Errorf("undecodable weight: %w", err)}
	}
	if len(res) != 1 {
		return xcm.Weight{}, &xcm.WeighingError{Err: fmt.Errorf("unexpected weighMessage output length %d", len(res))}
	}
	w := *abi.ConvertType(res[0], new(weight)).(*weight)

	result := xcm.Weight{RefTime: w.RefTime, ProofSize: w.ProofSize}
	if !result.Complete() {
		return xcm.Weight{}, &xcm.WeighingError{Err: fmt.Errorf("chain returned incomplete weight %s", result)}
	}
	return result, nil
}

// Execute runs message locally with the signer as origin, paying at most weight.
func (p *XcmPrecompile) Execute(ctx context.Context, message []byte, w xcm.Weight) (*Receipt, error) {
	input, err := p.abi.Pack("execute", message, weight{RefTime: w.RefTime, ProofSize: w.ProofSize})
	if err != nil {
		return nil, &xcm.SubmissionError{Err: err}
	}
	return p.transact(ctx, "execute", input)
}

// Send forwards message to the versioned location encoded in destination.
func (p *XcmPrecompile) Send(ctx context.Context, destination []byte, message []byte) (*Receipt, error) {
	input, err := p.abi.Pack("send", destination, message)
	if err != nil {
		return nil, &xcm.SubmissionError{Err: err}
	}
	return p.transact(ctx, "send", input)
}

func (p *XcmPrecompile) transact(ctx context.Context, method string, input []byte) (*Receipt, error) {
	tx, err := retry.Do(ctx, p.policy, "sign "+method, func(ctx context.Context) (*types.Transaction, error) {
		tx, err := p.client.SignTransaction(ctx, p.address, input)
		if err != nil && IsRevert(err) {
			return nil, retry.Permanent(err)
		}
		return tx, err
	})
	if err != nil {
		return nil, &xcm.SubmissionError{Err: err}
	}

	_, err = retry.Do(ctx, p.policy, "submit "+method, func(ctx context.Context) (struct{}, error) {
		err := p.client.SubmitTransaction(ctx, tx)
		if err != nil && IsRejection(err) {
			return struct{}{}, retry.Permanent(err)
		}
		return struct{}{}, err
	})
	if err != nil {
		return nil, &xcm.SubmissionError{Err: err}
	}
	log.Info().Str("method", method).Str("txHash", tx.Hash().Hex()).Msg("Submitted xcm precompile transaction")
	p.storeStatus(tx.Hash(), store.PendingTx)

	waitCtx, cancel := context.WithTimeout(ctx, p.inclusionTimeout)
	defer cancel()
	// Each poll runs until the inclusion deadline, only transport failures are retried.
	pollPolicy := p.policy
	pollPolicy.Timeout = 0
	receipt, err := retry.Do(waitCtx, pollPolicy, "await "+method, func(ctx context.Context) (*types.Receipt, error) {
		receipt, err := p.client.WaitForReceipt(ctx, tx.Hash())
		if err != nil && isDeadline(ctx, err) {
			return nil, retry.Permanent(err)
		}
		return receipt, err
	})
	if err != nil {
		p.storeStatus(tx.Hash(), store.TimedOutTx)
		return nil, &xcm.InclusionTimeout{TxHash: tx.Hash(), Err: err}
	}

	result := &Receipt{
		TxHash:      tx.Hash(),
		Status:      store.ConfirmedTx,
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = store.RevertedTx
	}

	_, err = retry.Do(waitCtx, pollPolicy, "confirm "+method, func(ctx context.Context) (struct{}, error) {
		err := p.client.WaitForConfirmations(ctx, receipt)
		if err != nil && isDeadline(ctx, err) {
			return struct{}{}, retry.Permanent(err)
		}
		return struct{}{}, err
	})
	if err != nil {
		// Included but not buried deep enough yet. The receipt is kept and resolve settles the status later.
		p.storeStatus(tx.Hash(), store.TimedOutTx)
		return result, &xcm.InclusionTimeout{TxHash: tx.Hash(), Err: fmt.Errorf("awaiting confirmations of block %d: %w", result.BlockNumber, err)}
	}
	p.storeStatus(tx.Hash(), result.Status)
	if result.Status == store.RevertedTx {
		return result, &xcm.ExecutionRevert{TxHash: tx.Hash(), Receipt: receipt}
	}
	return result, nil
}

func (p *XcmPrecompile) storeStatus(txHash common.Hash, status store.TxStatus) {
	if p.txStorer == nil {
		return
	}
	if err := p.txStorer.StoreTxStatus(txHash, status); err != nil {
		log.Err(err).Str("txHash", txHash.Hex()).Msgf("Failed storing transaction status %s", status)
	}
}

func isDeadline(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsRevert reports whether err is the chain refusing the call rather than a transport failure.
func IsRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

// IsRejection reports whether the node refused a transaction for a reason a resubmission cannot fix.
func IsRejection(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, reason := range []string{"nonce too low", "insufficient funds", "intrinsic gas too low", "exceeds block gas limit", "invalid sender"} {
		if strings.Contains(msg, reason) {
			return true
		}
	}
	return IsRevert(err)
}
