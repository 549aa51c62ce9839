// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package runner

import (
	"fmt"
	"time"

	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	"github.com/rs/zerolog"
)

type RunnerConfig struct {
	OpenTelemetryCollectorURL string
	Env                       string
	LogLevel                  zerolog.Level
	LogFile                   string
	ReportStorePath           string
	DryRunPolicy              transfer.DryRunPolicy
	Retry                     retry.Policy
	// BreakerFailures is the number of consecutive endpoint failures opening the circuit
	// breaker. Zero disables it.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

type RawRunnerConfig struct {
	OpenTelemetryCollectorURL string         `mapstructure:"OpenTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	Env                       string         `mapstructure:"Env" json:"env" default:"local"`
	LogLevel                  string         `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string         `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	ReportStorePath           string         `mapstructure:"ReportStorePath" json:"reportStorePath" default:"./lvldbdata"`
	DryRunPolicy              string         `mapstructure:"DryRunPolicy" json:"dryRunPolicy" default:"advisory"`
	Retry                     RawRetryConfig `mapstructure:"Retry" json:"retry"`
}

type RawRetryConfig struct {
	Timeout         string `mapstructure:"Timeout" json:"timeout" default:"30s"`
	MaxRetries      uint64 `mapstructure:"MaxRetries" json:"maxRetries" default:"3"`
	InitialInterval string `mapstructure:"InitialInterval" json:"initialInterval" default:"500ms"`
	MaxElapsedTime  string `mapstructure:"MaxElapsedTime" json:"maxElapsedTime" default:"2m"`
	BreakerFailures uint32 `mapstructure:"BreakerFailures" json:"breakerFailures" default:"5"`
	BreakerTimeout  string `mapstructure:"BreakerTimeout" json:"breakerTimeout" default:"30s"`
}

func (c *RawRunnerConfig) Validate() error {
	if c.ReportStorePath == "" {
		return fmt.Errorf("required field runner.ReportStorePath empty")
	}
	return nil
}

// NewRunnerConfig parses RawRunnerConfig into RunnerConfig
func NewRunnerConfig(rawConfig RawRunnerConfig) (RunnerConfig, error) {
	config := RunnerConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	dryRunPolicy, err := transfer.ParseDryRunPolicy(rawConfig.DryRunPolicy)
	if err != nil {
		return config, err
	}
	config.DryRunPolicy = dryRunPolicy

	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.ReportStorePath = rawConfig.ReportStorePath

	timeout, err := time.ParseDuration(rawConfig.Retry.Timeout)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("unable to parse retry timeout: %w", err)
	}
	initialInterval, err := time.ParseDuration(rawConfig.Retry.InitialInterval)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("unable to parse retry initial interval: %w", err)
	}
	maxElapsedTime, err := time.ParseDuration(rawConfig.Retry.MaxElapsedTime)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("unable to parse retry max elapsed time: %w", err)
	}
	breakerTimeout, err := time.ParseDuration(rawConfig.Retry.BreakerTimeout)
	if err != nil {
		return RunnerConfig{}, fmt.Errorf("unable to parse breaker timeout: %w", err)
	}

	config.Retry = retry.Policy{
		Timeout:         timeout,
		MaxRetries:      rawConfig.Retry.MaxRetries,
		InitialInterval: initialInterval,
		MaxElapsedTime:  maxElapsedTime,
	}
	config.BreakerFailures = rawConfig.Retry.BreakerFailures
	config.BreakerTimeout = breakerTimeout

	return config, nil
}

// Policy returns the retry policy for calls to the endpoint called name, guarded by its
// own circuit breaker when one is configured.
func (c RunnerConfig) Policy(name string) retry.Policy {
	if c.BreakerFailures == 0 {
		return c.Retry
	}
	return c.Retry.WithBreaker(retry.NewBreaker(name, c.BreakerFailures, c.BreakerTimeout))
}
