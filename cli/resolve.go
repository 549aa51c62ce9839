// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/ChainSafe/xcm-transfer/app"
	"github.com/ChainSafe/xcm-transfer/flags"
	"github.com/spf13/cobra"
)

var (
	resolveCMD = &cobra.Command{
		Use:   "resolve",
		Short: "Resolve pending transactions",
		Long:  "Looks up the receipt of every transaction still pending in the report store and records its final status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Resolve()
		},
	}
)

func init() {
	flags.BindResolveFlags(resolveCMD)
}
