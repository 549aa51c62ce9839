// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"math/big"
	"testing"
	"time"

	"github.com/ChainSafe/xcm-transfer/chains"
	"github.com/ChainSafe/xcm-transfer/chains/evm"
	"github.com/ChainSafe/xcm-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/xcm-transfer/chains/evm/client"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type NewEVMConfigTestSuite struct {
	suite.Suite
}

func TestRunNewEVMConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMConfigTestSuite))
}

func (s *NewEVMConfigTestSuite) Test_FailedDecode() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"gasLimit": "invalid",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := evm.NewEVMConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_MissingKey() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"name":     "assethub-evm",
		"type":     "evm",
		"endpoint": "http://localhost:8545",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_InvalidPrecompileAddress() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"name":              "assethub-evm",
		"type":              "evm",
		"endpoint":          "http://localhost:8545",
		"key":               "5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133",
		"precompileAddress": "not-an-address",
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_InvalidBlockConfirmation() {
	_, err := evm.NewEVMConfig(map[string]interface{}{
		"name":               "assethub-evm",
		"type":               "evm",
		"endpoint":           "http://localhost:8545",
		"key":                "5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133",
		"blockConfirmations": -1,
	})

	s.NotNil(err)
	s.Equal(err.Error(), "blockConfirmations has to be >=0")
}

func (s *NewEVMConfigTestSuite) Test_ValidConfig() {
	rawConfig := map[string]interface{}{
		"name":     "assethub-evm",
		"type":     "evm",
		"endpoint": "http://localhost:8545",
		"key":      "5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133",
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	s.Nil(err)
	s.Equal(evm.EVMConfig{
		GeneralChainConfig: chains.GeneralChainConfig{
			Name:     "assethub-evm",
			Type:     "evm",
			Endpoint: "http://localhost:8545",
			Key:      "5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133",
		},
		PrecompileAddress:  common.HexToAddress(consts.XcmPrecompileAddress),
		MaxGasPrice:        big.NewInt(500000000000),
		GasMultiplier:      1,
		GasLimit:           2000000,
		BlockConfirmations: 1,
		PollInterval:       2 * time.Second,
		InclusionTimeout:   120 * time.Second,
	}, *actualConfig)
}

func (s *NewEVMConfigTestSuite) Test_ValidConfigWithCustomTxParams() {
	rawConfig := map[string]interface{}{
		"name":               "assethub-evm",
		"type":               "evm",
		"endpoint":           "http://localhost:8545",
		"key":                "5fb92d6e98884f76de468fa3f6278f8807c48bebc13595d45af5bdc4da702133",
		"precompileAddress":  "0x0000000000000000000000000000000000000801",
		"maxGasPrice":        1000,
		"gasMultiplier":      1.5,
		"gasLimit":           1000,
		"blockConfirmations": 3,
		"pollInterval":       1,
		"inclusionTimeout":   30,
	}

	actualConfig, err := evm.NewEVMConfig(rawConfig)

	s.Nil(err)
	s.Equal(common.HexToAddress("0x0000000000000000000000000000000000000801"), actualConfig.PrecompileAddress)
	s.Equal(client.Options{
		GasLimit:           1000,
		GasMultiplier:      1.5,
		MaxGasPrice:        big.NewInt(1000),
		BlockConfirmations: 3,
		PollInterval:       time.Second,
	}, actualConfig.ClientOptions())
	s.Equal(30*time.Second, actualConfig.InclusionTimeout)
}
