// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName      = "config"
	ReportStoreFlagName = "report-store"
	ScenarioFlagName    = "scenario"
	WatchFlagName       = "watch"
)

// BindFlags registers the persistent flags shared by every command and binds them to viper.
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "env", "Path to JSON or YAML configuration file, or env to read XCM_ variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ReportStoreFlagName, "", "Overrides the report store path of the configuration")
	_ = viper.BindPFlag(ReportStoreFlagName, rootCMD.PersistentFlags().Lookup(ReportStoreFlagName))

	rootCMD.PersistentFlags().Int(ScenarioFlagName, 0, "Runs only the configured scenario with this 1 based index")
	_ = viper.BindPFlag(ScenarioFlagName, rootCMD.PersistentFlags().Lookup(ScenarioFlagName))
}

// BindResolveFlags registers the flags of the resolve command.
func BindResolveFlags(resolveCMD *cobra.Command) {
	resolveCMD.Flags().Duration(WatchFlagName, 0, "Keeps resolving pending transactions at this interval until interrupted")
	_ = viper.BindPFlag(WatchFlagName, resolveCMD.Flags().Lookup(WatchFlagName))
}
