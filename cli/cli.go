// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/xcm-transfer/cli/utils"
	"github.com/ChainSafe/xcm-transfer/flags"
)

var (
	rootCMD = &cobra.Command{
		Use:   "xcm-transfer",
		Short: "Submits XCM programs through the EVM precompile of a parachain",
	}
)

func init() {
	flags.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(runCMD, buildCMD, resolveCMD, utils.UtilsCLI)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
