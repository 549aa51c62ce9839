// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
)

// Stage is the last pipeline step a transfer reached.
type Stage string

const (
	BuildStage     Stage = "build"
	WeighStage     Stage = "weigh"
	ValidateStage  Stage = "validate"
	SubmitStage    Stage = "submit"
	InclusionStage Stage = "inclusion"
	ExecutionStage Stage = "execution"
	DoneStage      Stage = "done"
)

// Touched reports whether a transfer that stopped at s may have changed chain state.
func (s Stage) Touched() bool {
	switch s {
	case InclusionStage, ExecutionStage, DoneStage:
		return true
	default:
		return false
	}
}

// Built is an encoded program ready to be weighed.
type Built struct {
	intent  builder.Intent
	message xcm.VersionedXcm
	encoded []byte
}

func (b Built) Intent() builder.Intent {
	return b.intent
}

func (b Built) Message() xcm.VersionedXcm {
	return b.message
}

func (b Built) Encoded() []byte {
	return b.encoded
}

func (b Built) EntryPoint() builder.EntryPoint {
	return builder.EntryPointFor(b.intent.Scenario)
}

// Weighed is a built program with the weight the chain reported for it.
type Weighed struct {
	Built
	weight xcm.Weight
}

func (w Weighed) Weight() xcm.Weight {
	return w.weight
}

// Validated is a weighed program that went through the dry run gate. Failure is set
// when the dry run rejected it and the gate let it through. DryRunErr is set when the
// dry run could not be performed at all.
type Validated struct {
	Weighed
	failure   *xcm.ValidationFailure
	dryRunErr error
}

func (v Validated) Failure() *xcm.ValidationFailure {
	return v.failure
}

func (v Validated) DryRunErr() error {
	return v.dryRunErr
}

// Build assembles and encodes the program for intent.
func Build(intent builder.Intent) (Built, error) {
	msg, err := builder.Build(intent)
	if err != nil {
		return Built{}, err
	}
	encoded, err := xcm.EncodeXcm(msg)
	if err != nil {
		return Built{}, err
	}
	return Built{intent: intent, message: msg, encoded: encoded}, nil
}
