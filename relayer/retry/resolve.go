// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package retry

import (
	"context"
	"errors"

	"github.com/ChainSafe/xcm-transfer/store"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

type TxStorer interface {
	StoreTxStatus(txHash common.Hash, status store.TxStatus) error
	UnresolvedTxs() ([]common.Hash, error)
}

type ReceiptFetcher interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// ResolvePending re-checks transactions whose inclusion was never observed and records
// the final status of the ones that have since been included.
func ResolvePending(
	ctx context.Context,
	policy Policy,
	txStorer TxStorer,
	fetcher ReceiptFetcher,
) (map[common.Hash]store.TxStatus, error) {
	hashes, err := txStorer.UnresolvedTxs()
	if err != nil {
		return nil, err
	}

	resolved := make(map[common.Hash]store.TxStatus)
	for _, hash := range hashes {
		receipt, err := Do(ctx, policy, "transactionReceipt", func(ctx context.Context) (*types.Receipt, error) {
			receipt, err := fetcher.TransactionReceipt(ctx, hash)
			if errors.Is(err, ethereum.NotFound) {
				return nil, Permanent(err)
			}
			return receipt, err
		})
		if errors.Is(err, ethereum.NotFound) {
			log.Debug().Str("txHash", hash.Hex()).Msg("Transaction still not included")
			continue
		}
		if err != nil {
			log.Err(err).Str("txHash", hash.Hex()).Msg("Failed fetching transaction receipt")
			continue
		}

		status := store.ConfirmedTx
		if receipt.Status != types.ReceiptStatusSuccessful {
			status = store.RevertedTx
		}
		err = txStorer.StoreTxStatus(hash, status)
		if err != nil {
			log.Err(err).Str("txHash", hash.Hex()).Msgf("Failed storing transaction status %s", status)
			continue
		}
		resolved[hash] = status
	}
	return resolved, nil
}
