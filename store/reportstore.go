// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
)

type TxStatus string

var (
	KEY_PREFIX           = "tx:"
	KEY                  = KEY_PREFIX + "%s"
	MissingTx   TxStatus = "missing"
	PendingTx   TxStatus = "pending"
	ConfirmedTx TxStatus = "confirmed"
	RevertedTx  TxStatus = "reverted"
	TimedOutTx  TxStatus = "timedOut"
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
	ScanPrefix(prefix []byte) (map[string][]byte, error)
}

type ReportStore struct {
	db KeyValueReaderWriter
}

func NewReportStore(db KeyValueReaderWriter) *ReportStore {
	return &ReportStore{
		db: db,
	}
}

// StoreTxStatus stores the last known status of a submitted transaction
func (rs *ReportStore) StoreTxStatus(txHash common.Hash, status TxStatus) error {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, txHash.Hex())
	key.WriteString(keyS)

	return rs.db.SetByKey(key.Bytes(), []byte(status))
}

func (rs *ReportStore) TxStatus(txHash common.Hash) (TxStatus, error) {
	key := bytes.Buffer{}
	keyS := fmt.Sprintf(KEY, txHash.Hex())
	key.WriteString(keyS)

	v, err := rs.db.GetByKey(key.Bytes())
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return MissingTx, nil
		}
		return MissingTx, err
	}

	return TxStatus(string(v)), nil
}

// UnresolvedTxs returns transactions whose inclusion was never observed.
func (rs *ReportStore) UnresolvedTxs() ([]common.Hash, error) {
	values, err := rs.db.ScanPrefix([]byte(KEY_PREFIX))
	if err != nil {
		return nil, err
	}

	hashes := make([]common.Hash, 0)
	for key, value := range values {
		status := TxStatus(string(value))
		if status != PendingTx && status != TimedOutTx {
			continue
		}
		hashes = append(hashes, common.HexToHash(strings.TrimPrefix(key, KEY_PREFIX)))
	}
	return hashes, nil
}
