// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"testing"

	"github.com/ChainSafe/xcm-transfer/chains"
	"github.com/stretchr/testify/suite"
)

type NewSubstrateConfigTestSuite struct {
	suite.Suite
}

func TestRunNewSubstrateConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewSubstrateConfigTestSuite))
}

func (s *NewSubstrateConfigTestSuite) SetupSuite()    {}
func (s *NewSubstrateConfigTestSuite) TearDownSuite() {}
func (s *NewSubstrateConfigTestSuite) SetupTest()     {}
func (s *NewSubstrateConfigTestSuite) TearDownTest()  {}

func (s *NewSubstrateConfigTestSuite) Test_FailedDecode() {
	_, err := NewSubstrateConfig(map[string]interface{}{
		"tip": "invalid",
	})

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := NewSubstrateConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_MissingKey() {
	_, err := NewSubstrateConfig(map[string]interface{}{
		"name":     "assethub",
		"type":     "substrate",
		"endpoint": "ws://localhost:9944",
	})

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"name":     "assethub",
		"type":     "substrate",
		"endpoint": "ws://localhost:9944",
		"key":      "//Alice",
	}

	actualConfig, err := NewSubstrateConfig(rawConfig)

	s.Nil(err)
	s.Equal(SubstrateConfig{
		GeneralChainConfig: chains.GeneralChainConfig{
			Name:     "assethub",
			Type:     "substrate",
			Endpoint: "ws://localhost:9944",
			Key:      "//Alice",
		},
		SS58Prefix: 42,
		Decimals:   10,
		Symbol:     "UNIT",
	}, *actualConfig)
}

func (s *NewSubstrateConfigTestSuite) Test_ValidConfigWithCustomParams() {
	rawConfig := map[string]interface{}{
		"name":         "assethub",
		"type":         "substrate",
		"endpoint":     "ws://localhost:9944",
		"key":          "//Alice",
		"ss58Prefix":   0,
		"dryRunOrigin": "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		"tip":          10,
		"decimals":     12,
		"symbol":       "DOT",
	}

	actualConfig, err := NewSubstrateConfig(rawConfig)

	s.Nil(err)
	s.Equal(SubstrateConfig{
		GeneralChainConfig: chains.GeneralChainConfig{
			Name:     "assethub",
			Type:     "substrate",
			Endpoint: "ws://localhost:9944",
			Key:      "//Alice",
		},
		SS58Prefix:   0,
		DryRunOrigin: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		Tip:          10,
		Decimals:     12,
		Symbol:       "DOT",
	}, *actualConfig)
}
