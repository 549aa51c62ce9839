// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"encoding/hex"
	"testing"

	"github.com/ChainSafe/xcm-transfer/chains/substrate/client"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/stretchr/testify/suite"
)

type SubstrateChainTestSuite struct {
	suite.Suite
	client *client.SubstrateClient
}

func TestRunSubstrateChainTestSuite(t *testing.T) {
	suite.Run(t, new(SubstrateChainTestSuite))
}

func (s *SubstrateChainTestSuite) SetupTest() {
	s.client = client.NewSubstrateClient(nil, &signature.TestKeyringPairAlice, 0)
}

func (s *SubstrateChainTestSuite) Test_DryRunOrigin_DefaultsToSigner() {
	chain := NewSubstrateChain(nil, s.client, nil, &SubstrateConfig{})

	origin, err := chain.DryRunOrigin()

	s.Nil(err)
	s.Equal(xcm.AccountLocation(s.client.AccountID()), origin)
}

func (s *SubstrateChainTestSuite) Test_DryRunOrigin_Configured() {
	chain := NewSubstrateChain(nil, s.client, nil, &SubstrateConfig{
		DryRunOrigin: "5FHneW46xGXgs5mUiveU4sbTyGBzmstUspZC92UhjJM694ty",
	})

	origin, err := chain.DryRunOrigin()

	s.Nil(err)
	var bob [32]byte
	raw, _ := hex.DecodeString("8eaf04151687736326c9fea17e25fc5287613693c912909cb226aa4794f26a48")
	copy(bob[:], raw)
	s.Equal(xcm.AccountLocation(bob), origin)
}

func (s *SubstrateChainTestSuite) Test_DryRunOrigin_Invalid() {
	chain := NewSubstrateChain(nil, s.client, nil, &SubstrateConfig{DryRunOrigin: "not-an-account"})

	_, err := chain.DryRunOrigin()

	s.NotNil(err)
}

func (s *SubstrateChainTestSuite) Test_Account() {
	chain := NewSubstrateChain(nil, s.client, nil, &SubstrateConfig{})

	account := chain.Account()

	s.Equal("signer", account.Name)
	s.Equal(s.client.AccountID(), account.ID)
}
