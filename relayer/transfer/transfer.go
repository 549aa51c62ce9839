// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/chains/evm/precompile"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/dryrun"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// DryRunPolicy decides what a failed dry run does to a transfer.
type DryRunPolicy string

const (
	// AdvisoryDryRun logs a failed dry run, attaches it to the outcome and submits anyway.
	AdvisoryDryRun DryRunPolicy = "advisory"
	// EnforceDryRun aborts the transfer before submission.
	EnforceDryRun DryRunPolicy = "enforce"
)

func ParseDryRunPolicy(s string) (DryRunPolicy, error) {
	switch DryRunPolicy(strings.ToLower(s)) {
	case "", AdvisoryDryRun:
		return AdvisoryDryRun, nil
	case EnforceDryRun:
		return EnforceDryRun, nil
	default:
		return "", fmt.Errorf("unknown dry run policy %s", s)
	}
}

type Weigher interface {
	WeighMessage(ctx context.Context, message []byte) (xcm.Weight, error)
}

type Validator interface {
	ValidateExecute(ctx context.Context, origin xcm.Location, msg xcm.VersionedXcm) (dryrun.Result, error)
	ValidateSend(ctx context.Context, dest xcm.Location, msg xcm.VersionedXcm) (dryrun.Result, error)
}

type Executor interface {
	Execute(ctx context.Context, message []byte, weight xcm.Weight) (*precompile.Receipt, error)
	Send(ctx context.Context, destination []byte, message []byte) (*precompile.Receipt, error)
}

type BalanceComparator interface {
	CompareAround(ctx context.Context, accounts []balance.Account, operation func(ctx context.Context) error) (map[balance.Account]balance.Diff, error)
}

type Metrics interface {
	TrackTransfer(scenario string, stage string, duration time.Duration)
	TrackDryRun(entryPoint string, passed bool)
}

// Outcome is the result of one transfer. Stage tells whether the chain could have been
// touched when Err is set.
type Outcome struct {
	ID                uuid.UUID
	Scenario          builder.Scenario
	Stage             Stage
	Message           xcm.VersionedXcm
	Weight            xcm.Weight
	ValidationFailure *xcm.ValidationFailure
	// DryRunErr is set when the advisory gate submitted without a dry run.
	DryRunErr error
	Receipt   *precompile.Receipt
	Deltas    map[balance.Account]balance.Diff
	Err       error
}

type Config struct {
	// Signer keys the per account lock. Transfers of the same signer never overlap.
	Signer string
	// Origin is the location execute dry runs are dispatched from.
	Origin       xcm.Location
	DryRunPolicy DryRunPolicy
	Retry        retry.Policy
	Watched      []balance.Account
}

// Pipeline drives a transfer through build, weigh, dry run and submission while the
// watched balances are compared around the submission.
type Pipeline struct {
	weigher    Weigher
	validator  Validator
	executor   Executor
	comparator BalanceComparator
	metrics    Metrics
	locks      *KeyedMutex
	config     Config
}

func NewPipeline(
	weigher Weigher,
	validator Validator,
	executor Executor,
	comparator BalanceComparator,
	metrics Metrics,
	locks *KeyedMutex,
	config Config,
) *Pipeline {
	return &Pipeline{
		weigher:    weigher,
		validator:  validator,
		executor:   executor,
		comparator: comparator,
		metrics:    metrics,
		locks:      locks,
		config:     config,
	}
}

// RunAll runs every intent and returns the outcomes in intent order.
func (p *Pipeline) RunAll(ctx context.Context, intents []builder.Intent) []*Outcome {
	outcomes := make([]*Outcome, len(intents))
	wp := pool.New()
	for i, intent := range intents {
		i, intent := i, intent
		wp.Go(func() {
			outcomes[i] = p.Run(ctx, intent)
		})
	}
	wp.Wait()
	return outcomes
}

// Run executes a single transfer.
func (p *Pipeline) Run(ctx context.Context, intent builder.Intent) *Outcome {
	outcome := &Outcome{
		ID:       uuid.New(),
		Scenario: intent.Scenario,
		Stage:    BuildStage,
	}
	logger := log.With().Str("id", outcome.ID.String()).Str("scenario", string(intent.Scenario)).Logger()

	unlock := p.locks.Lock(p.config.Signer)
	defer unlock()

	start := time.Now()
	defer func() {
		p.metrics.TrackTransfer(string(intent.Scenario), string(outcome.Stage), time.Since(start))
	}()

	built, err := Build(intent)
	if err != nil {
		outcome.Err = err
		logger.Err(err).Msg("Failed building message")
		return outcome
	}
	outcome.Message = built.Message()
	logger.Debug().Str("stage", string(BuildStage)).Msgf("Built message %s: 0x%x", built.Message(), built.Encoded())

	outcome.Stage = WeighStage
	weighed, err := p.Weigh(ctx, built)
	if err != nil {
		outcome.Err = err
		logger.Err(err).Msg("Failed weighing message")
		return outcome
	}
	outcome.Weight = weighed.Weight()

	outcome.Stage = ValidateStage
	validated, err := p.validate(ctx, weighed, logger)
	if err != nil {
		outcome.Err = err
		logger.Err(err).Msg("Dry run blocked transfer")
		return outcome
	}
	outcome.ValidationFailure = validated.Failure()
	outcome.DryRunErr = validated.DryRunErr()

	outcome.Stage = SubmitStage
	deltas, err := p.comparator.CompareAround(ctx, p.config.Watched, func(ctx context.Context) error {
		receipt, err := p.Submit(ctx, validated)
		outcome.Receipt = receipt
		return err
	})
	outcome.Deltas = deltas
	outcome.Stage = stageOf(err)
	outcome.Err = err
	if err != nil {
		logger.Err(err).Str("stage", string(outcome.Stage)).Msg("Transfer failed")
		return outcome
	}

	logger.Info().Str("txHash", outcome.Receipt.TxHash.Hex()).Uint64("block", outcome.Receipt.BlockNumber).Msg("Transfer included")
	return outcome
}

// Weigh asks the chain for the weight of a built program. Only transport failures are retried.
func (p *Pipeline) Weigh(ctx context.Context, built Built) (Weighed, error) {
	weight, err := retry.Do(ctx, p.config.Retry, "weigh message", func(ctx context.Context) (xcm.Weight, error) {
		weight, err := p.weigher.WeighMessage(ctx, built.Encoded())
		var weighingErr *xcm.WeighingError
		if errors.As(err, &weighingErr) && !weighingErr.Transient {
			return weight, retry.Permanent(err)
		}
		return weight, err
	})
	if err != nil {
		return Weighed{}, err
	}
	return Weighed{Built: built, weight: weight}, nil
}

// Validate dry runs the program through the entry point it is going to be submitted to.
func (p *Pipeline) Validate(ctx context.Context, weighed Weighed) (Validated, error) {
	return p.validate(ctx, weighed, log.Logger)
}

func (p *Pipeline) validate(ctx context.Context, weighed Weighed, logger zerolog.Logger) (Validated, error) {
	entryPoint := weighed.EntryPoint()

	var res dryrun.Result
	var err error
	switch entryPoint {
	case builder.SendEntryPoint:
		res, err = p.validator.ValidateSend(ctx, builder.Destination(weighed.Intent()), weighed.Message())
	default:
		res, err = p.validator.ValidateExecute(ctx, p.config.Origin, weighed.Message())
	}
	if err != nil {
		if p.config.DryRunPolicy == EnforceDryRun {
			return Validated{}, fmt.Errorf("dry run of %s unavailable: %w", entryPoint, err)
		}
		logger.Warn().Err(err).Msgf("Skipping dry run of %s", entryPoint)
		return Validated{Weighed: weighed, dryRunErr: fmt.Errorf("dry run of %s unavailable: %w", entryPoint, err)}, nil
	}
	p.metrics.TrackDryRun(string(entryPoint), res.Passed)

	if res.Passed {
		logger.Info().Str("stage", string(ValidateStage)).Msgf("Dry run of %s passed: %s", entryPoint, res.Diagnostic)
		return Validated{Weighed: weighed}, nil
	}

	failure := &xcm.ValidationFailure{Entrypoint: string(entryPoint), Diagnostic: res.Diagnostic}
	if p.config.DryRunPolicy == EnforceDryRun {
		return Validated{}, failure
	}
	logger.Warn().Str("stage", string(ValidateStage)).Msg(failure.Error())
	return Validated{Weighed: weighed, failure: failure}, nil
}

// Submit hands the program to the precompile entry point and waits for its receipt.
func (p *Pipeline) Submit(ctx context.Context, validated Validated) (*precompile.Receipt, error) {
	switch validated.EntryPoint() {
	case builder.SendEntryPoint:
		destination, err := xcm.EncodeLocation(builder.Destination(validated.Intent()))
		if err != nil {
			return nil, &xcm.SubmissionError{Err: err}
		}
		return p.executor.Send(ctx, destination, validated.Encoded())
	default:
		return p.executor.Execute(ctx, validated.Encoded(), validated.Weight())
	}
}

func stageOf(err error) Stage {
	var timeout *xcm.InclusionTimeout
	var revert *xcm.ExecutionRevert
	switch {
	case err == nil:
		return DoneStage
	case errors.As(err, &revert):
		return ExecutionStage
	case errors.As(err, &timeout):
		return InclusionStage
	default:
		return SubmitStage
	}
}
