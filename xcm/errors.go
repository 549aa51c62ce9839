// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package xcm

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EncodingError is returned for malformed locations, assets or instruction sequences.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("xcm encoding failed at %s: %s", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func encodingErr(op string, format string, args ...interface{}) error {
	return &EncodingError{Op: op, Err: fmt.Errorf(format, args...)}
}

// WeighingError is returned when the weight of a message could not be obtained.
// Transient errors come from the transport and may succeed when retried.
type WeighingError struct {
	Err       error
	Transient bool
}

func (e *WeighingError) Error() string {
	return fmt.Sprintf("failed weighing message: %s", e.Err)
}

func (e *WeighingError) Unwrap() error { return e.Err }

// ValidationFailure is returned when a dry run signals the message would be rejected.
// It is advisory unless the dry run gate is set to enforce.
type ValidationFailure struct {
	Entrypoint string
	Diagnostic string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("dry run of %s failed: %s", e.Entrypoint, e.Diagnostic)
}

// SubmissionError means the transaction was rejected before inclusion. Nothing happened on chain.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission rejected: %s", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// InclusionTimeout means the transaction was submitted but not seen in a block within the bounded wait.
type InclusionTimeout struct {
	TxHash common.Hash
	Err    error
}

func (e *InclusionTimeout) Error() string {
	return fmt.Sprintf("transaction %s not included: %s", e.TxHash.Hex(), e.Err)
}

func (e *InclusionTimeout) Unwrap() error { return e.Err }

// ExecutionRevert means the transaction was included but the program failed on chain.
type ExecutionRevert struct {
	TxHash  common.Hash
	Receipt *types.Receipt
}

func (e *ExecutionRevert) Error() string {
	var block uint64
	if e.Receipt != nil && e.Receipt.BlockNumber != nil {
		block = e.Receipt.BlockNumber.Uint64()
	}
	return fmt.Sprintf("transaction %s reverted in block %d", e.TxHash.Hex(), block)
}
