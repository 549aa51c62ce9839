// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/config"
	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

const alice = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	path := filepath.Join(s.T().TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
  "runner": {"logLevel": "debug", "dryRunPolicy": "enforce"},
  "chains": [
    {"name": "asset-hub", "type": "substrate", "endpoint": "ws://localhost:9944", "key": "//Alice"},
    {"name": "asset-hub-evm", "type": "evm", "endpoint": "http://localhost:8545", "key": "0x01"}
  ],
  "watch": {"accounts": {"alice": "`+alice+`"}, "assets": [1984]},
  "scenarios": [
    {"scenario": "reserveToParent", "amount": "100000000000", "beneficiary": "`+alice+`"}
  ]
}`), 0600)
	s.Nil(err)

	cnf, err := config.GetConfigFromFile(path, &config.Config{})

	s.Nil(err)
	s.Equal(zerolog.DebugLevel, cnf.RunnerConfig.LogLevel)
	s.Equal(transfer.EnforceDryRun, cnf.RunnerConfig.DryRunPolicy)
	s.Len(cnf.ChainConfigs, 2)
	s.Equal([]balance.Class{
		balance.NativeClass(),
		balance.AssetClass(1984),
		balance.ForeignClass(xcm.Parent()),
	}, cnf.Watch.Classes)
	s.Len(cnf.Watch.Accounts, 1)
	s.Equal("alice", cnf.Watch.Accounts[0].Name)
	s.Len(cnf.Scenarios, 1)
	s.Equal(builder.ReserveToParent, cnf.Scenarios[0].Scenario)
	s.Equal(*uint256.NewInt(100000000000), cnf.Scenarios[0].Amount)
	s.Equal(xcm.NativeAsset(), cnf.Scenarios[0].Asset)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("XCM_CHAIN_1", `{"name":"asset-hub","type":"substrate","endpoint":"ws://localhost:9944"}`)
	_ = os.Setenv("XCM_RUNNER_LOGLEVEL", "warn")
	_ = os.Setenv("XCM_SCENARIO_1", `{"scenario":"remark","call":"0x0000"}`)

	cnf, err := config.GetConfigFromENV(&config.Config{ChainConfigs: []map[string]interface{}{{
		"key":      "//Alice",
		"endpoint": "ws://ignored:9944",
	}}})

	s.Nil(err)
	s.Equal(zerolog.WarnLevel, cnf.RunnerConfig.LogLevel)
	s.Equal([]map[string]interface{}{{
		"name":     "asset-hub",
		"type":     "substrate",
		"endpoint": "ws://localhost:9944",
		"key":      "//Alice",
	}}, cnf.ChainConfigs)
	s.Equal(builder.Remark, cnf.Scenarios[0].Scenario)
	s.Equal([]byte{0, 0}, cnf.Scenarios[0].Call)
	s.Len(cnf.Watch.Classes, 4)
}

func (s *GetConfigTestSuite) Test_ChainWithoutType() {
	_ = os.Setenv("XCM_CHAIN_1", `{"name":"asset-hub"}`)

	_, err := config.GetConfigFromENV(&config.Config{})

	s.EqualError(err, "chain 'type' must be provided for every configured chain")
}

func (s *GetConfigTestSuite) Test_InvalidScenario() {
	_ = os.Setenv("XCM_SCENARIO_1", `{"scenario":"teleportEverything","amount":"1","beneficiary":"`+alice+`"}`)

	_, err := config.GetConfigFromENV(&config.Config{})

	s.NotNil(err)
}
