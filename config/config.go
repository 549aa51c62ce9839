// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/xcm-transfer/config/runner"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
)

type Config struct {
	RunnerConfig runner.RunnerConfig
	ChainConfigs []map[string]interface{}
	Watch        WatchConfig
	Scenarios    []builder.Intent
}

type RawConfig struct {
	RunnerConfig runner.RawRunnerConfig   `mapstructure:"runner" json:"runner"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains" json:"chains"`
	Watch        RawWatchConfig           `mapstructure:"watch" json:"watch"`
	Scenarios    []RawScenario            `mapstructure:"scenarios" json:"scenarios"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of RunnerConfig and the watch section are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with XCM.
//
// For example, if you want to set Config.RunnerConfig.Retry.MaxRetries this would
// translate to Env variable named XCM_RUNNER_RETRY_MAXRETRIES. Chains and scenarios are
// JSON documents in XCM_CHAIN_<n> and XCM_SCENARIO_<n>, numbered from 1.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from a JSON or YAML file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	runnerConfig, err := runner.NewRunnerConfig(rawConfig.RunnerConfig)
	if err != nil {
		return config, err
	}

	chainConfigs := make([]map[string]interface{}, 0)
	for i, chain := range rawConfig.ChainConfigs {
		if i < len(config.ChainConfigs) {
			err := mergo.Merge(&chain, config.ChainConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if chain["type"] == "" || chain["type"] == nil {
			return config, fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
		chainConfigs = append(chainConfigs, chain)
	}

	watch, err := NewWatchConfig(rawConfig.Watch)
	if err != nil {
		return config, err
	}

	scenarios := make([]builder.Intent, 0, len(rawConfig.Scenarios))
	for i, s := range rawConfig.Scenarios {
		intent, err := NewIntent(s)
		if err != nil {
			return config, fmt.Errorf("scenario %d: %w", i+1, err)
		}
		scenarios = append(scenarios, intent)
	}

	config.ChainConfigs = chainConfigs
	config.RunnerConfig = runnerConfig
	config.Watch = watch
	config.Scenarios = scenarios
	return config, nil
}
