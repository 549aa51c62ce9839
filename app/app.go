// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ChainSafe/xcm-transfer/chains"
	"github.com/ChainSafe/xcm-transfer/chains/evm"
	"github.com/ChainSafe/xcm-transfer/chains/evm/client"
	"github.com/ChainSafe/xcm-transfer/chains/substrate"
	"github.com/ChainSafe/xcm-transfer/config"
	"github.com/ChainSafe/xcm-transfer/flags"
	"github.com/ChainSafe/xcm-transfer/jobs"
	"github.com/ChainSafe/xcm-transfer/logger"
	"github.com/ChainSafe/xcm-transfer/lvldb"
	"github.com/ChainSafe/xcm-transfer/metrics"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	"github.com/ChainSafe/xcm-transfer/store"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Run executes the configured scenarios and prints their outcomes and balance deltas.
func Run() error {
	configuration, err := loadConfig()
	if err != nil {
		return err
	}

	closeLog, err := logger.ConfigureFileLogger(configuration.RunnerConfig.LogLevel, os.Stdout, configuration.RunnerConfig.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Info().Msg("Successfully loaded configuration")

	intents, err := selectScenarios(configuration.Scenarios, viper.GetInt(flags.ScenarioFlagName))
	if err != nil {
		return err
	}

	db, err := lvldb.NewLvlDB(reportStorePath(configuration))
	if err != nil {
		return err
	}
	defer db.Close()
	reportStore := store.NewReportStore(db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	evmConfig, substrateConfig, err := chainConfigs(configuration.ChainConfigs)
	if err != nil {
		return err
	}
	evmChain, err := evm.SetupEVMChain(ctx, evmConfig, configuration.RunnerConfig.Policy("evm"), reportStore)
	if err != nil {
		return err
	}
	defer evmChain.Close()
	substratePolicy := configuration.RunnerConfig.Policy("substrate")
	substrateChain, err := substrate.SetupSubstrateChain(ctx, substrateConfig, substratePolicy)
	if err != nil {
		return err
	}
	defer substrateChain.Close()

	meter, shutdown, err := metrics.DefaultMeter(ctx, configuration.RunnerConfig.OpenTelemetryCollectorURL, configuration.RunnerConfig.Env)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed shutting down meter provider")
		}
	}()
	transferMetrics, err := metrics.NewTransferMetrics(meter, evmChain.Signer())
	if err != nil {
		return err
	}

	origin, err := substrateChain.DryRunOrigin()
	if err != nil {
		return err
	}
	watched := configuration.Watch.Accounts
	if len(watched) == 0 {
		watched = append(watched, substrateChain.Account())
	}

	pipeline := transfer.NewPipeline(
		evmChain.Precompile(),
		substrateChain.Validator(),
		evmChain.Precompile(),
		substrateChain.Comparator(configuration.Watch.Classes, substratePolicy),
		transferMetrics,
		transfer.NewKeyedMutex(),
		transfer.Config{
			Signer:       evmChain.Signer(),
			Origin:       origin,
			DryRunPolicy: configuration.RunnerConfig.DryRunPolicy,
			Retry:        configuration.RunnerConfig.Retry,
			Watched:      watched,
		},
	)

	outcomes := pipeline.RunAll(ctx, intents)
	failed := PrintOutcomes(os.Stdout, outcomes, int32(substrateChain.Config().Decimals), substrateChain.Config().Symbol)
	if failed > 0 {
		return fmt.Errorf("%d of %d transfers failed", failed, len(outcomes))
	}
	return nil
}

// Build prints the encoded program of every configured scenario without connecting to any chain.
func Build() error {
	configuration, err := loadConfig()
	if err != nil {
		return err
	}
	logger.ConfigureLogger(configuration.RunnerConfig.LogLevel, os.Stderr)

	intents, err := selectScenarios(configuration.Scenarios, viper.GetInt(flags.ScenarioFlagName))
	if err != nil {
		return err
	}
	return PrintPrograms(os.Stdout, intents)
}

// Resolve re-checks every transaction of the report store whose inclusion was never observed.
func Resolve() error {
	configuration, err := loadConfig()
	if err != nil {
		return err
	}
	logger.ConfigureLogger(configuration.RunnerConfig.LogLevel, os.Stdout)

	db, err := lvldb.NewLvlDB(reportStorePath(configuration))
	if err != nil {
		return err
	}
	defer db.Close()
	reportStore := store.NewReportStore(db)

	rawEVMConfig, _, err := chainConfigs(configuration.ChainConfigs)
	if err != nil {
		return err
	}
	evmConfig, err := evm.NewEVMConfig(rawEVMConfig)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	resolve := func(ctx context.Context) error {
		return client.Use(ctx, evmConfig.GeneralChainConfig.Endpoint, evmConfig.GeneralChainConfig.Key, evmConfig.ClientOptions(), func(c *client.EVMClient) error {
			resolved, err := retry.ResolvePending(ctx, configuration.RunnerConfig.Policy("evm"), reportStore, c)
			if err != nil {
				return err
			}
			for hash, status := range resolved {
				fmt.Fprintf(os.Stdout, "%s: %s\n", hash.Hex(), status)
			}
			log.Info().Int("resolved", len(resolved)).Msg("Resolved pending transactions")
			return nil
		})
	}
	if err := resolve(ctx); err != nil {
		return err
	}

	if interval := viper.GetDuration(flags.WatchFlagName); interval > 0 {
		log.Info().Msgf("Watching pending transactions every %s", interval)
		jobs.StartPendingResolutionJob(ctx, interval, resolve)
	}
	return nil
}

func loadConfig() (*config.Config, error) {
	configFlag := viper.GetString(flags.ConfigFlagName)
	configuration := &config.Config{}
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(configuration)
	}
	return config.GetConfigFromFile(configFlag, configuration)
}

func reportStorePath(configuration *config.Config) string {
	if path := viper.GetString(flags.ReportStoreFlagName); path != "" {
		return path
	}
	return configuration.RunnerConfig.ReportStorePath
}

// chainConfigs returns the first configured evm and substrate chain.
func chainConfigs(configs []map[string]interface{}) (map[string]interface{}, map[string]interface{}, error) {
	var evmConfig, substrateConfig map[string]interface{}
	for _, chainConfig := range configs {
		switch chainConfig["type"] {
		case chains.EVMChainType:
			if evmConfig == nil {
				evmConfig = chainConfig
			}
		case chains.SubstrateChainType:
			if substrateConfig == nil {
				substrateConfig = chainConfig
			}
		default:
			return nil, nil, fmt.Errorf("type '%s' not recognized", chainConfig["type"])
		}
	}
	if evmConfig == nil || substrateConfig == nil {
		return nil, nil, fmt.Errorf("an evm and a substrate chain must be configured")
	}
	return evmConfig, substrateConfig, nil
}

// selectScenarios returns every intent, or only the one at the 1 based index when it is set.
func selectScenarios(intents []builder.Intent, index int) ([]builder.Intent, error) {
	if index == 0 {
		if len(intents) == 0 {
			return nil, fmt.Errorf("no scenarios configured")
		}
		return intents, nil
	}
	if index < 0 || index > len(intents) {
		return nil, fmt.Errorf("scenario %d not configured, %d available", index, len(intents))
	}
	return intents[index-1 : index], nil
}
