// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/xcm-transfer/chains/substrate/address"
)

var (
	derivateSS58AccountFromPKCMD = &cobra.Command{
		Use:   "derivateSS58",
		Short: "will print SS58 formatted address (Polkadot) for given PrivateKey in hex",
		Long:  "Will print SS58 formatted address (Polkadot) for given PrivateKey in hex",
		RunE:  derivateSS58,
	}
	accountIDCMD = &cobra.Command{
		Use:   "accountID",
		Short: "will print the hex account id of an SS58 address",
		Long:  "Will print the 32 byte account id of an SS58 address, the form beneficiaries are configured in",
		RunE:  accountID,
	}
)

var (
	privateKey string
	networkID  uint16
	ss58       string
)

func init() {
	derivateSS58AccountFromPKCMD.PersistentFlags().StringVar(&privateKey, "privateKey", "", "hex encoded private key or secret URI")
	_ = derivateSS58AccountFromPKCMD.MarkFlagRequired("privateKey")
	derivateSS58AccountFromPKCMD.PersistentFlags().Uint16Var(&networkID, "networkID", 0, "network id for a checksum. Registry https://github.com/paritytech/ss58-registry/blob/main/ss58-registry.json")
	_ = derivateSS58AccountFromPKCMD.MarkFlagRequired("networkID")

	accountIDCMD.PersistentFlags().StringVar(&ss58, "address", "", "SS58 encoded address")
	_ = accountIDCMD.MarkFlagRequired("address")
}

func derivateSS58(cmd *cobra.Command, args []string) error {
	account, err := signature.KeyringPairFromSecret(privateKey, networkID)
	if err != nil {
		return err
	}

	var id [32]byte
	copy(id[:], account.PublicKey)
	encoded, err := address.Encode(id, networkID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

func accountID(cmd *cobra.Command, args []string) error {
	id, prefix, err := address.Decode(ss58)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (prefix %d)\n", hexutil.Encode(id[:]), prefix)
	return nil
}
