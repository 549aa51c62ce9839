// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package balance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Format renders a known delta with an explicit sign, shifted by decimals into whole units.
func (d Delta) Format(decimals int32) string {
	if !d.Known() {
		return fmt.Sprintf("unknown (%s)", d.Cause)
	}

	s := decimal.NewFromBigInt(d.Value, -decimals).String()
	if d.Value.Sign() > 0 {
		s = "+" + s
	}
	return s
}

// Lines renders every changed or unknown class of the diff in label order. The native
// class is shown in whole tokens of symbol, other classes in raw units.
func (d Diff) Lines(nativeDecimals int32, symbol string) []string {
	var lines []string
	for _, label := range d.Labels() {
		delta := d[label]
		if delta.Known() && delta.Value.Sign() == 0 {
			continue
		}

		if label == NativeClass().Label() {
			line := fmt.Sprintf("%s: %s", label, delta.Format(nativeDecimals))
			if delta.Known() {
				line += " " + symbol
			}
			lines = append(lines, line)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, delta.Format(0)))
	}
	return lines
}
