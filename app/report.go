// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"fmt"
	"io"
	"sort"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
)

// PrintOutcomes writes a summary of every outcome followed by the balance deltas of each
// watched account. It returns the number of failed transfers.
func PrintOutcomes(w io.Writer, outcomes []*transfer.Outcome, decimals int32, symbol string) int {
	failed := 0
	for i, outcome := range outcomes {
		fmt.Fprintf(w, "[%d] %s %s: %s", i+1, outcome.Scenario, outcome.ID, outcome.Stage)
		if outcome.Receipt != nil {
			fmt.Fprintf(w, " tx %s in block %d (%s)", outcome.Receipt.TxHash.Hex(), outcome.Receipt.BlockNumber, outcome.Receipt.Status)
		}
		fmt.Fprintln(w)

		if outcome.DryRunErr != nil {
			fmt.Fprintf(w, "    warning: submitted without dry run: %s\n", outcome.DryRunErr)
		}
		if outcome.ValidationFailure != nil {
			fmt.Fprintf(w, "    warning: %s\n", outcome.ValidationFailure)
		}
		if outcome.Err != nil {
			failed++
			fmt.Fprintf(w, "    error: %s\n", outcome.Err)
			if !outcome.Stage.Touched() {
				fmt.Fprintln(w, "    nothing was submitted")
			}
		}

		accounts := make([]balance.Account, 0, len(outcome.Deltas))
		for account := range outcome.Deltas {
			accounts = append(accounts, account)
		}
		sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
		for _, account := range accounts {
			lines := outcome.Deltas[account].Lines(decimals, symbol)
			if len(lines) == 0 {
				fmt.Fprintf(w, "    %s: no change\n", account.Name)
				continue
			}
			for _, line := range lines {
				fmt.Fprintf(w, "    %s %s\n", account.Name, line)
			}
		}
	}
	return failed
}

// PrintPrograms writes the encoded program of every intent, and the encoded destination of
// the ones forwarded with send.
func PrintPrograms(w io.Writer, intents []builder.Intent) error {
	for i, intent := range intents {
		built, err := transfer.Build(intent)
		if err != nil {
			return fmt.Errorf("scenario %d: %w", i+1, err)
		}

		fmt.Fprintf(w, "[%d] %s via %s: %s\n", i+1, intent.Scenario, built.EntryPoint(), built.Message())
		fmt.Fprintf(w, "    message: 0x%x\n", built.Encoded())
		if built.EntryPoint() == builder.SendEntryPoint {
			destination, err := xcm.EncodeLocation(builder.Destination(intent))
			if err != nil {
				return fmt.Errorf("scenario %d: %w", i+1, err)
			}
			fmt.Fprintf(w, "    destination: 0x%x\n", destination)
		}
	}
	return nil
}
