// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	"github.com/stretchr/testify/suite"
)

type KeyedMutexTestSuite struct {
	suite.Suite
}

func TestRunKeyedMutexTestSuite(t *testing.T) {
	suite.Run(t, new(KeyedMutexTestSuite))
}

func (s *KeyedMutexTestSuite) Test_SameKeyIsSerialised() {
	locks := transfer.NewKeyedMutex()
	unlock := locks.Lock("alice")

	acquired := make(chan struct{})
	go func() {
		defer close(acquired)
		locks.Lock("alice")()
	}()

	select {
	case <-acquired:
		s.Fail("lock acquired while held")
	case <-time.After(50 * time.Millisecond):
	}
	unlock()
	<-acquired
}

func (s *KeyedMutexTestSuite) Test_DifferentKeysRunInParallel() {
	locks := transfer.NewKeyedMutex()
	unlock := locks.Lock("alice")
	defer unlock()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		locks.Lock("bob")()
	}()
	wg.Wait()
}
