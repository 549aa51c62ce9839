// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package precompile_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ChainSafe/xcm-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/xcm-transfer/chains/evm/precompile"
	mock_precompile "github.com/ChainSafe/xcm-transfer/chains/evm/precompile/mock"
	"github.com/ChainSafe/xcm-transfer/relayer/retry"
	"github.com/ChainSafe/xcm-transfer/store"
	"github.com/ChainSafe/xcm-transfer/xcm"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var (
	precompileAddress = common.HexToAddress(consts.XcmPrecompileAddress)
	signerAddress     = common.HexToAddress("0xf24FF3a9CF04c71Dbc94D0b566f7A27B94566cac")
	message           = []byte{5, 4, 10}
)

func encodeWeight(refTime, proofSize int64) []byte {
	out := common.LeftPadBytes(big.NewInt(refTime).Bytes(), 32)
	return append(out, common.LeftPadBytes(big.NewInt(proofSize).Bytes(), 32)...)
}

type XcmPrecompileTestSuite struct {
	suite.Suite
	mockClient *mock_precompile.MockChainClient
	precompile *precompile.XcmPrecompile
	abi        abi.ABI
	tx         *types.Transaction
}

func TestRunXcmPrecompileTestSuite(t *testing.T) {
	suite.Run(t, new(XcmPrecompileTestSuite))
}

func (s *XcmPrecompileTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mock_precompile.NewMockChainClient(ctrl)
	s.mockClient.EXPECT().From().Return(signerAddress).AnyTimes()
	policy := retry.Policy{Timeout: time.Second, MaxRetries: 2, InitialInterval: time.Millisecond}
	s.precompile = precompile.NewXcmPrecompile(s.mockClient, precompileAddress, policy, time.Second)
	s.abi, _ = abi.JSON(strings.NewReader(consts.XcmABI))
	s.tx = types.NewTx(&types.DynamicFeeTx{Nonce: 7, To: &precompileAddress})
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_Success() {
	input, _ := s.abi.Pack("weighMessage", message)
	s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).DoAndReturn(
		func(ctx context.Context, call interface{}, blockNumber *big.Int) ([]byte, error) {
			return encodeWeight(1500000, 3600), nil
		})

	weight, err := s.precompile.WeighMessage(context.Background(), message)

	s.Nil(err)
	s.Equal(xcm.Weight{RefTime: 1500000, ProofSize: 3600}, weight)
	s.NotEmpty(input)
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_EmptyMessage() {
	_, err := s.precompile.WeighMessage(context.Background(), nil)

	var weighingErr *xcm.WeighingError
	s.True(errors.As(err, &weighingErr))
	s.False(weighingErr.Transient)
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_TransportError() {
	s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(nil, errors.New("connection refused"))

	_, err := s.precompile.WeighMessage(context.Background(), message)

	var weighingErr *xcm.WeighingError
	s.True(errors.As(err, &weighingErr))
	s.True(weighingErr.Transient)
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_Revert() {
	s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(nil, errors.New("execution reverted"))

	_, err := s.precompile.WeighMessage(context.Background(), message)

	var weighingErr *xcm.WeighingError
	s.True(errors.As(err, &weighingErr))
	s.False(weighingErr.Transient)
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_ZeroWeight() {
	s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(encodeWeight(0, 0), nil)

	weight, err := s.precompile.WeighMessage(context.Background(), message)

	var weighingErr *xcm.WeighingError
	s.True(errors.As(err, &weighingErr))
	s.True(weight.IsZero())
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_PartialZeroWeight() {
	for _, out := range [][]byte{encodeWeight(1500000, 0), encodeWeight(0, 3600)} {
		s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(out, nil)

		weight, err := s.precompile.WeighMessage(context.Background(), message)

		var weighingErr *xcm.WeighingError
		s.True(errors.As(err, &weighingErr))
		s.False(weighingErr.Transient)
		s.True(weight.IsZero())
	}
}

func (s *XcmPrecompileTestSuite) Test_WeighMessage_UndecodableOutput() {
	s.mockClient.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return([]byte{1, 2, 3}, nil)

	_, err := s.precompile.WeighMessage(context.Background(), message)

	var weighingErr *xcm.WeighingError
	s.True(errors.As(err, &weighingErr))
}

func (s *XcmPrecompileTestSuite) Test_Execute_Success() {
	weight := xcm.Weight{RefTime: 1500000, ProofSize: 3600}
	input, err := s.abi.Pack("execute", message, struct {
		RefTime   uint64
		ProofSize uint64
	}{weight.RefTime, weight.ProofSize})
	s.Nil(err)
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, input).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(100),
		GasUsed:     21000,
	}, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), gomock.Any()).Return(nil)

	receipt, err := s.precompile.Execute(context.Background(), message, weight)

	s.Nil(err)
	s.Equal(&precompile.Receipt{
		TxHash:      s.tx.Hash(),
		Status:      store.ConfirmedTx,
		BlockNumber: 100,
		GasUsed:     21000,
	}, receipt)
}

func (s *XcmPrecompileTestSuite) Test_Send_PacksDestination() {
	destination := []byte{5, 1, 0}
	input, _ := s.abi.Pack("send", destination, message)
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, input).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(5),
	}, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), gomock.Any()).Return(nil)

	receipt, err := s.precompile.Send(context.Background(), destination, message)

	s.Nil(err)
	s.Equal(store.ConfirmedTx, receipt.Status)
}

func (s *XcmPrecompileTestSuite) Test_Execute_Reverted() {
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(100),
	}, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), gomock.Any()).Return(nil)

	receipt, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var revert *xcm.ExecutionRevert
	s.True(errors.As(err, &revert))
	s.Equal(s.tx.Hash(), revert.TxHash)
	s.Equal(store.RevertedTx, receipt.Status)
}

func (s *XcmPrecompileTestSuite) Test_Execute_ResubmitsSameTransaction() {
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil).Times(1)
	gomock.InOrder(
		s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(errors.New("connection reset")),
		s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil),
	)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(&types.Receipt{
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: big.NewInt(100),
	}, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), gomock.Any()).Return(nil)

	_, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	s.Nil(err)
}

func (s *XcmPrecompileTestSuite) Test_Execute_RejectedSubmission() {
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(errors.New("insufficient funds for gas * price + value")).Times(1)

	_, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var submissionErr *xcm.SubmissionError
	s.True(errors.As(err, &submissionErr))
}

func (s *XcmPrecompileTestSuite) Test_Execute_GasEstimationReverts() {
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(nil, errors.New("execution reverted")).Times(1)

	_, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var submissionErr *xcm.SubmissionError
	s.True(errors.As(err, &submissionErr))
}

func (s *XcmPrecompileTestSuite) Test_Execute_InclusionTimeout() {
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(nil, context.DeadlineExceeded)

	_, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var timeout *xcm.InclusionTimeout
	s.True(errors.As(err, &timeout))
	s.Equal(s.tx.Hash(), timeout.TxHash)
	s.ErrorIs(err, context.DeadlineExceeded)
}

func (s *XcmPrecompileTestSuite) Test_IsRejection() {
	s.True(precompile.IsRejection(errors.New("nonce too low")))
	s.True(precompile.IsRejection(errors.New("execution reverted: bad origin")))
	s.False(precompile.IsRejection(errors.New("i/o timeout")))
}

func (s *XcmPrecompileTestSuite) Test_Execute_StoresStatuses() {
	storer := mock_precompile.NewMockTxStorer(gomock.NewController(s.T()))
	s.precompile.WithTxStorer(storer)
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		BlockNumber: big.NewInt(100),
	}, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), gomock.Any()).Return(nil)
	gomock.InOrder(
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.PendingTx).Return(nil),
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.RevertedTx).Return(errors.New("disk full")),
	)

	receipt, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var revert *xcm.ExecutionRevert
	s.True(errors.As(err, &revert))
	s.Equal(store.RevertedTx, receipt.Status)
}

func (s *XcmPrecompileTestSuite) Test_Execute_StoresTimedOut() {
	storer := mock_precompile.NewMockTxStorer(gomock.NewController(s.T()))
	s.precompile.WithTxStorer(storer)
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(nil, context.DeadlineExceeded)
	gomock.InOrder(
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.PendingTx).Return(nil),
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.TimedOutTx).Return(nil),
	)

	_, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var timeout *xcm.InclusionTimeout
	s.True(errors.As(err, &timeout))
}

func (s *XcmPrecompileTestSuite) Test_Execute_RetriesReceiptPolling() {
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	gomock.InOrder(
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(nil, errors.New("connection reset by peer")),
		s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(receipt, nil),
	)
	gomock.InOrder(
		s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), receipt).Return(errors.New("connection reset by peer")),
		s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), receipt).Return(nil),
	)

	result, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	s.Nil(err)
	s.Equal(store.ConfirmedTx, result.Status)
	s.Equal(uint64(100), result.BlockNumber)
}

func (s *XcmPrecompileTestSuite) Test_Execute_KeepsReceiptWhenConfirmationsFail() {
	storer := mock_precompile.NewMockTxStorer(gomock.NewController(s.T()))
	s.precompile.WithTxStorer(storer)
	receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, BlockNumber: big.NewInt(100)}
	s.mockClient.EXPECT().SignTransaction(gomock.Any(), precompileAddress, gomock.Any()).Return(s.tx, nil)
	s.mockClient.EXPECT().SubmitTransaction(gomock.Any(), s.tx).Return(nil)
	s.mockClient.EXPECT().WaitForReceipt(gomock.Any(), s.tx.Hash()).Return(receipt, nil)
	s.mockClient.EXPECT().WaitForConfirmations(gomock.Any(), receipt).Return(errors.New("connection refused")).Times(3)
	gomock.InOrder(
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.PendingTx).Return(nil),
		storer.EXPECT().StoreTxStatus(s.tx.Hash(), store.TimedOutTx).Return(nil),
	)

	result, err := s.precompile.Execute(context.Background(), message, xcm.Weight{RefTime: 1, ProofSize: 1})

	var timeout *xcm.InclusionTimeout
	s.True(errors.As(err, &timeout))
	s.Equal(s.tx.Hash(), timeout.TxHash)
	s.NotNil(result)
	s.Equal(uint64(100), result.BlockNumber)
}
