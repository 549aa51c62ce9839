// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package dryrun

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/rs/zerolog/log"
)

const (
	DryRunXcmMethod = "DryRunApi_dry_run_xcm"
	SendCallMethod  = "PolkadotXcm.send"
)

var ErrDryRunUnimplemented = errors.New("runtime does not implement the xcm dry run api")

type Connection interface {
	StateCall(ctx context.Context, method string, args []byte, at *types.Hash) ([]byte, error)
	DryRunExtrinsic(ctx context.Context, extrinsic []byte, at types.Hash) ([]byte, error)
	GetFinalizedHead(ctx context.Context) (types.Hash, error)
}

type ExtrinsicSigner interface {
	SignedExtrinsic(ctx context.Context, method string, args ...interface{}) ([]byte, error)
}

// Result is the verdict of a dry run. A failed verdict is not an error.
type Result struct {
	Passed     bool
	Diagnostic string
}

// Validator asks the chain whether a message would be accepted without changing state.
type Validator struct {
	conn   Connection
	signer ExtrinsicSigner
	policy retry.Policy
}

func NewValidator(conn Connection, signer ExtrinsicSigner, policy retry.Policy) *Validator {
	return &Validator{
		conn:   conn,
		signer: signer,
		policy: policy,
	}
}

// ValidateExecute dry runs local execution of msg as if dispatched by origin.
func (v *Validator) ValidateExecute(ctx context.Context, origin xcm.Location, msg xcm.VersionedXcm) (Result, error) {
	originBytes, err := xcm.EncodeLocation(origin)
	if err != nil {
		return Result{}, err
	}
	msgBytes, err := xcm.EncodeXcm(msg)
	if err != nil {
		return Result{}, err
	}
	args := append(originBytes, msgBytes...)

	raw, err := retry.Do(ctx, v.policy, "dry run execute", func(ctx context.Context) ([]byte, error) {
		return v.conn.StateCall(ctx, DryRunXcmMethod, args, nil)
	})
	if err != nil {
		return Result{}, err
	}

	res, err := decodeXcmDryRun(raw)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("origin", origin.String()).Bool("passed", res.Passed).Msgf("Dry run of execute: %s", res.Diagnostic)
	return res, nil
}

// ValidateSend signs a send extrinsic carrying msg to dest and dry runs it at the
// finalized head. The extrinsic is never submitted.
func (v *Validator) ValidateSend(ctx context.Context, dest xcm.Location, msg xcm.VersionedXcm) (Result, error) {
	ext, err := v.signer.SignedExtrinsic(ctx, SendCallMethod, xcm.NewVersionedLocation(dest), msg)
	if err != nil {
		return Result{}, fmt.Errorf("failed signing send extrinsic: %w", err)
	}

	raw, err := retry.Do(ctx, v.policy, "dry run send", func(ctx context.Context) ([]byte, error) {
		head, err := v.conn.GetFinalizedHead(ctx)
		if err != nil {
			return nil, err
		}
		return v.conn.DryRunExtrinsic(ctx, ext, head)
	})
	if err != nil {
		return Result{}, err
	}

	res, err := decodeApplyExtrinsicResult(raw)
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("destination", dest.String()).Bool("passed", res.Passed).Msgf("Dry run of send: %s", res.Diagnostic)
	return res, nil
}

// decodeXcmDryRun reads the execution outcome from Result<XcmDryRunEffects, XcmDryRunApiError>.
// Emitted events and forwarded messages after the outcome are ignored.
func decodeXcmDryRun(raw []byte) (Result, error) {
	decoder := scale.NewDecoder(bytes.NewReader(raw))
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return Result{}, fmt.Errorf("undecodable dry run result: %w", err)
	}

	switch tag {
	case 0:
		outcome, err := decoder.ReadOneByte()
		if err != nil {
			return Result{}, fmt.Errorf("undecodable dry run outcome: %w", err)
		}
		switch outcome {
		case 0:
			var used xcm.Weight
			if err := used.Decode(*decoder); err != nil {
				return Result{}, fmt.Errorf("undecodable dry run weight: %w", err)
			}
			return Result{Passed: true, Diagnostic: fmt.Sprintf("Complete, used %s", used)}, nil
		case 1:
			var used xcm.Weight
			if err := used.Decode(*decoder); err != nil {
				return Result{}, fmt.Errorf("undecodable dry run weight: %w", err)
			}
			instructionErr, err := decodeInstructionError(decoder)
			if err != nil {
				return Result{}, err
			}
			return Result{Diagnostic: fmt.Sprintf("Incomplete, %s, used %s", instructionErr, used)}, nil
		case 2:
			instructionErr, err := decodeInstructionError(decoder)
			if err != nil {
				return Result{}, err
			}
			return Result{Diagnostic: fmt.Sprintf("Error, %s", instructionErr)}, nil
		}
		return Result{}, fmt.Errorf("unknown dry run outcome %d", outcome)
	case 1:
		apiErr, err := decoder.ReadOneByte()
		if err != nil {
			return Result{}, fmt.Errorf("undecodable dry run api error: %w", err)
		}
		switch apiErr {
		case 0:
			return Result{}, ErrDryRunUnimplemented
		case 1:
			return Result{Diagnostic: "VersionedConversionFailed"}, nil
		}
		return Result{}, fmt.Errorf("unknown dry run api error %d", apiErr)
	}
	return Result{}, fmt.Errorf("unknown dry run result tag %d", tag)
}

func decodeInstructionError(decoder *scale.Decoder) (string, error) {
	index, err := decoder.ReadOneByte()
	if err != nil {
		return "", fmt.Errorf("undecodable instruction index: %w", err)
	}
	code, err := decoder.ReadOneByte()
	if err != nil {
		return "", fmt.Errorf("undecodable xcm error: %w", err)
	}

	name := lookup(xcmErrors, code)
	switch code {
	case xcmErrorTrap:
		buf := make([]byte, 8)
		if err := decoder.Read(buf); err != nil {
			return "", fmt.Errorf("undecodable trap code: %w", err)
		}
		name = fmt.Sprintf("Trap(%d)", binary.LittleEndian.Uint64(buf))
	case xcmErrorWeightLimitReached:
		var w xcm.Weight
		if err := w.Decode(*decoder); err != nil {
			return "", fmt.Errorf("undecodable weight limit: %w", err)
		}
		name = fmt.Sprintf("WeightLimitReached(%s)", w)
	}
	return fmt.Sprintf("instruction %d failed with %s", index, name), nil
}

// decodeApplyExtrinsicResult reads Result<Result<(), DispatchError>, TransactionValidityError>.
func decodeApplyExtrinsicResult(raw []byte) (Result, error) {
	decoder := scale.NewDecoder(bytes.NewReader(raw))
	tag, err := decoder.ReadOneByte()
	if err != nil {
		return Result{}, fmt.Errorf("undecodable apply extrinsic result: %w", err)
	}

	switch tag {
	case 0:
		outcome, err := decoder.ReadOneByte()
		if err != nil {
			return Result{}, fmt.Errorf("undecodable dispatch outcome: %w", err)
		}
		switch outcome {
		case 0:
			return Result{Passed: true, Diagnostic: "Ok"}, nil
		case 1:
			dispatchErr, err := decodeDispatchError(decoder)
			if err != nil {
				return Result{}, err
			}
			return Result{Diagnostic: "DispatchError::" + dispatchErr}, nil
		}
		return Result{}, fmt.Errorf("unknown dispatch outcome %d", outcome)
	case 1:
		validity, err := decoder.ReadOneByte()
		if err != nil {
			return Result{}, fmt.Errorf("undecodable validity error: %w", err)
		}
		code, err := decoder.ReadOneByte()
		if err != nil {
			return Result{}, fmt.Errorf("undecodable validity error: %w", err)
		}
		switch validity {
		case 0:
			name := lookup(invalidTransactions, code)
			if code == invalidTransactionCustom {
				name, err = customCode(decoder)
			}
			return Result{Diagnostic: "InvalidTransaction::" + name}, err
		case 1:
			name := lookup(unknownTransactions, code)
			if code == unknownTransactionCustom {
				name, err = customCode(decoder)
			}
			return Result{Diagnostic: "UnknownTransaction::" + name}, err
		}
		return Result{}, fmt.Errorf("unknown transaction validity error %d", validity)
	}
	return Result{}, fmt.Errorf("unknown apply extrinsic result tag %d", tag)
}

func decodeDispatchError(decoder *scale.Decoder) (string, error) {
	code, err := decoder.ReadOneByte()
	if err != nil {
		return "", fmt.Errorf("undecodable dispatch error: %w", err)
	}

	name := lookup(dispatchErrors, code)
	switch code {
	case dispatchErrorModule:
		buf := make([]byte, 5)
		if err := decoder.Read(buf); err != nil {
			return "", fmt.Errorf("undecodable module error: %w", err)
		}
		return fmt.Sprintf("Module{index: %d, error: %d}", buf[0], buf[1]), nil
	case dispatchErrorToken, dispatchErrorArithmetic, dispatchErrorTransactional, dispatchErrorTrie:
		sub, err := decoder.ReadOneByte()
		if err != nil {
			return "", fmt.Errorf("undecodable %s error: %w", name, err)
		}
		return fmt.Sprintf("%s(%d)", name, sub), nil
	}
	return name, nil
}

func customCode(decoder *scale.Decoder) (string, error) {
	code, err := decoder.ReadOneByte()
	if err != nil {
		return "", fmt.Errorf("undecodable custom code: %w", err)
	}
	return fmt.Sprintf("Custom(%d)", code), nil
}
