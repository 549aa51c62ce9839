// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package lvldb_test

import (
	"testing"

	"github.com/ChainSafe/xcm-transfer/lvldb"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"
)

type LvlDBTestSuite struct {
	suite.Suite
	db *lvldb.LVLDB
}

func TestRunLvlDBTestSuite(t *testing.T) {
	suite.Run(t, new(LvlDBTestSuite))
}

func (s *LvlDBTestSuite) SetupTest() {
	db, err := lvldb.NewLvlDB(s.T().TempDir())
	s.Nil(err)
	s.db = db
}

func (s *LvlDBTestSuite) TearDownTest() {
	s.Nil(s.db.Close())
}

func (s *LvlDBTestSuite) TestSetAndGet() {
	err := s.db.SetByKey([]byte("key"), []byte("value"))
	s.Nil(err)

	value, err := s.db.GetByKey([]byte("key"))

	s.Nil(err)
	s.Equal([]byte("value"), value)
}

func (s *LvlDBTestSuite) TestGetMissingKey() {
	_, err := s.db.GetByKey([]byte("missing"))

	s.ErrorIs(err, leveldb.ErrNotFound)
}

func (s *LvlDBTestSuite) TestScanPrefix() {
	s.Nil(s.db.SetByKey([]byte("tx:1"), []byte("pending")))
	s.Nil(s.db.SetByKey([]byte("tx:2"), []byte("confirmed")))
	s.Nil(s.db.SetByKey([]byte("other:1"), []byte("x")))

	values, err := s.db.ScanPrefix([]byte("tx:"))

	s.Nil(err)
	s.Equal(map[string][]byte{
		"tx:1": []byte("pending"),
		"tx:2": []byte("confirmed"),
	}, values)
}
