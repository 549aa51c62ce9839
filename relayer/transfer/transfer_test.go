// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ChainSafe/xcm-transfer/balance"
	"github.com/ChainSafe/xcm-transfer/chains/evm/precompile"
	"github.com/ChainSafe/xcm-transfer/chains/substrate/dryrun"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/relayer/transfer"
	mock_transfer "github.com/ChainSafe/xcm-transfer/relayer/transfer/mock"
	"github.com/ChainSafe/xcm-transfer/store"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ChainSafe/xcm-transfer/xcm/builder"
	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/suite"
)

var (
	alice   = balance.Account{Name: "alice", ID: [32]byte{1}}
	weight  = xcm.Weight{RefTime: 1500000, ProofSize: 3600}
	receipt = &precompile.Receipt{TxHash: common.HexToHash("0xabc"), Status: store.ConfirmedTx, BlockNumber: 10}
)

func reserveToParent() builder.Intent {
	return builder.Intent{
		Scenario:    builder.ReserveToParent,
		Amount:      *uint256.NewInt(100000000000),
		Beneficiary: alice.ID,
		Asset:       xcm.NativeAsset(),
	}
}

func localExecute() builder.Intent {
	return builder.Intent{
		Scenario:    builder.LocalExecute,
		Amount:      *uint256.NewInt(1000),
		Beneficiary: alice.ID,
		Asset:       xcm.NativeAsset(),
	}
}

type PipelineTestSuite struct {
	suite.Suite
	mockWeigher    *mock_transfer.MockWeigher
	mockValidator  *mock_transfer.MockValidator
	mockExecutor   *mock_transfer.MockExecutor
	mockComparator *mock_transfer.MockBalanceComparator
	mockMetrics    *mock_transfer.MockMetrics
	config         transfer.Config
	diff           map[balance.Account]balance.Diff
}

func TestRunPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockWeigher = mock_transfer.NewMockWeigher(ctrl)
	s.mockValidator = mock_transfer.NewMockValidator(ctrl)
	s.mockExecutor = mock_transfer.NewMockExecutor(ctrl)
	s.mockComparator = mock_transfer.NewMockBalanceComparator(ctrl)
	s.mockMetrics = mock_transfer.NewMockMetrics(ctrl)
	s.mockMetrics.EXPECT().TrackTransfer(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.mockMetrics.EXPECT().TrackDryRun(gomock.Any(), gomock.Any()).AnyTimes()
	s.config = transfer.Config{
		Signer:       "0xf24FF3a9CF04c71Dbc94D0b566f7A27B94566cac",
		Origin:       xcm.AccountLocation(alice.ID),
		DryRunPolicy: transfer.AdvisoryDryRun,
		Retry:        retry.Policy{Timeout: time.Second, MaxRetries: 2, InitialInterval: time.Millisecond},
		Watched:      []balance.Account{alice},
	}
	s.diff = map[balance.Account]balance.Diff{
		alice: {"native": balance.Delta{Value: big.NewInt(-100000000000)}},
	}
}

func (s *PipelineTestSuite) pipeline() *transfer.Pipeline {
	return transfer.NewPipeline(
		s.mockWeigher,
		s.mockValidator,
		s.mockExecutor,
		s.mockComparator,
		s.mockMetrics,
		transfer.NewKeyedMutex(),
		s.config,
	)
}

func (s *PipelineTestSuite) expectCompareAround() {
	s.mockComparator.EXPECT().CompareAround(gomock.Any(), s.config.Watched, gomock.Any()).DoAndReturn(
		func(ctx context.Context, accounts []balance.Account, operation func(context.Context) error) (map[balance.Account]balance.Diff, error) {
			return s.diff, operation(ctx)
		})
}

func (s *PipelineTestSuite) Test_Run_ReserveToParent_DryRunsOnceBeforeSend() {
	intent := reserveToParent()
	built, err := transfer.Build(intent)
	s.Nil(err)
	destination, _ := xcm.EncodeLocation(xcm.Parent())
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), built.Encoded()).Return(weight, nil)
	s.expectCompareAround()
	gomock.InOrder(
		s.mockValidator.EXPECT().ValidateSend(gomock.Any(), xcm.Parent(), built.Message()).Return(dryrun.Result{Passed: true, Diagnostic: "Ok"}, nil).Times(1),
		s.mockExecutor.EXPECT().Send(gomock.Any(), destination, built.Encoded()).Return(receipt, nil).Times(1),
	)

	outcome := s.pipeline().Run(context.Background(), intent)

	s.Nil(outcome.Err)
	s.NotEqual(uuid.Nil, outcome.ID)
	s.Equal(transfer.DoneStage, outcome.Stage)
	s.Equal(receipt, outcome.Receipt)
	s.Equal(weight, outcome.Weight)
	s.Nil(outcome.ValidationFailure)
	s.Equal(s.diff, outcome.Deltas)
}

func (s *PipelineTestSuite) Test_Run_LocalExecute_UsesOriginAndWeight() {
	intent := localExecute()
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil)
	s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), s.config.Origin, gomock.Any()).Return(dryrun.Result{Passed: true}, nil)
	s.expectCompareAround()
	s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(receipt, nil)

	outcome := s.pipeline().Run(context.Background(), intent)

	s.Nil(outcome.Err)
	s.Equal(transfer.DoneStage, outcome.Stage)
}

func (s *PipelineTestSuite) Test_Run_BuildFailureTouchesNothing() {
	intent := localExecute()
	intent.Amount = uint256.Int{}

	outcome := s.pipeline().Run(context.Background(), intent)

	var encodingErr *xcm.EncodingError
	s.True(errors.As(outcome.Err, &encodingErr))
	s.Equal(transfer.BuildStage, outcome.Stage)
	s.False(outcome.Stage.Touched())
}

func (s *PipelineTestSuite) Test_Run_WeighRetriesTransientErrors() {
	gomock.InOrder(
		s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(xcm.Weight{}, &xcm.WeighingError{Err: errors.New("eof"), Transient: true}),
		s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil),
	)
	s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Passed: true}, nil)
	s.expectCompareAround()
	s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(receipt, nil)

	outcome := s.pipeline().Run(context.Background(), localExecute())

	s.Nil(outcome.Err)
}

func (s *PipelineTestSuite) Test_Run_WeighDoesNotRetryPermanentErrors() {
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(xcm.Weight{}, &xcm.WeighingError{Err: errors.New("zero weight")}).Times(1)

	outcome := s.pipeline().Run(context.Background(), localExecute())

	var weighingErr *xcm.WeighingError
	s.True(errors.As(outcome.Err, &weighingErr))
	s.Equal(transfer.WeighStage, outcome.Stage)
}

func (s *PipelineTestSuite) Test_Run_AdvisoryDryRunFailureStillSubmits() {
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil)
	s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Diagnostic: "Error, instruction 0 failed with BadOrigin"}, nil)
	s.expectCompareAround()
	s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(receipt, nil)

	outcome := s.pipeline().Run(context.Background(), localExecute())

	s.Nil(outcome.Err)
	s.Nil(outcome.DryRunErr)
	s.Equal(&xcm.ValidationFailure{Entrypoint: "execute", Diagnostic: "Error, instruction 0 failed with BadOrigin"}, outcome.ValidationFailure)
}

func (s *PipelineTestSuite) Test_Run_EnforcedDryRunFailureAborts() {
	s.config.DryRunPolicy = transfer.EnforceDryRun
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil)
	s.mockValidator.EXPECT().ValidateSend(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Diagnostic: "InvalidTransaction::Payment"}, nil)

	outcome := s.pipeline().Run(context.Background(), reserveToParent())

	var failure *xcm.ValidationFailure
	s.True(errors.As(outcome.Err, &failure))
	s.Equal("send", failure.Entrypoint)
	s.Equal(transfer.ValidateStage, outcome.Stage)
	s.Nil(outcome.Receipt)
}

func (s *PipelineTestSuite) Test_Run_DryRunUnavailable() {
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil).Times(2)
	s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{}, dryrun.ErrDryRunUnimplemented).Times(2)
	s.expectCompareAround()
	s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(receipt, nil)

	advisory := s.pipeline().Run(context.Background(), localExecute())
	s.config.DryRunPolicy = transfer.EnforceDryRun
	enforced := s.pipeline().Run(context.Background(), localExecute())

	s.Nil(advisory.Err)
	s.ErrorIs(advisory.DryRunErr, dryrun.ErrDryRunUnimplemented)
	s.Nil(advisory.ValidationFailure)
	s.ErrorIs(enforced.Err, dryrun.ErrDryRunUnimplemented)
	s.Equal(transfer.ValidateStage, enforced.Stage)
}

func (s *PipelineTestSuite) Test_Run_SubmissionOutcomes() {
	txHash := common.HexToHash("0xdef")
	for _, tc := range []struct {
		err     error
		stage   transfer.Stage
		touched bool
	}{
		{&xcm.SubmissionError{Err: errors.New("nonce too low")}, transfer.SubmitStage, false},
		{&xcm.InclusionTimeout{TxHash: txHash, Err: context.DeadlineExceeded}, transfer.InclusionStage, true},
		{&xcm.ExecutionRevert{TxHash: txHash}, transfer.ExecutionStage, true},
	} {
		s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil)
		s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Passed: true}, nil)
		s.expectCompareAround()
		s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(nil, tc.err)

		outcome := s.pipeline().Run(context.Background(), localExecute())

		s.ErrorIs(outcome.Err, tc.err)
		s.Equal(tc.stage, outcome.Stage)
		s.Equal(tc.touched, outcome.Stage.Touched())
		s.Equal(s.diff, outcome.Deltas)
	}
}

func (s *PipelineTestSuite) Test_RunAll_KeepsIntentOrder() {
	s.mockWeigher.EXPECT().WeighMessage(gomock.Any(), gomock.Any()).Return(weight, nil).Times(2)
	s.mockValidator.EXPECT().ValidateExecute(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Passed: true}, nil)
	s.mockValidator.EXPECT().ValidateSend(gomock.Any(), gomock.Any(), gomock.Any()).Return(dryrun.Result{Passed: true}, nil)
	s.expectCompareAround()
	s.expectCompareAround()
	s.mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any(), weight).Return(receipt, nil)
	s.mockExecutor.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(receipt, nil)

	outcomes := s.pipeline().RunAll(context.Background(), []builder.Intent{localExecute(), reserveToParent()})

	s.Len(outcomes, 2)
	s.Equal(builder.LocalExecute, outcomes[0].Scenario)
	s.Equal(builder.ReserveToParent, outcomes[1].Scenario)
	s.NotEqual(outcomes[0].ID, outcomes[1].ID)
}

type DryRunPolicyTestSuite struct {
	suite.Suite
}

func TestRunDryRunPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(DryRunPolicyTestSuite))
}

func (s *DryRunPolicyTestSuite) Test_ParseDryRunPolicy() {
	policy, err := transfer.ParseDryRunPolicy("")
	s.Nil(err)
	s.Equal(transfer.AdvisoryDryRun, policy)

	policy, err = transfer.ParseDryRunPolicy("Enforce")
	s.Nil(err)
	s.Equal(transfer.EnforceDryRun, policy)

	_, err = transfer.ParseDryRunPolicy("strict")
	s.NotNil(err)
}
