// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/ChainSafe/xcm-transfer/app"
	"github.com/spf13/cobra"
)

var (
	buildCMD = &cobra.Command{
		Use:   "build",
		Short: "Print encoded scenario programs",
		Long:  "Prints the SCALE encoded program of every configured scenario without connecting to a chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Build()
		},
	}
)
