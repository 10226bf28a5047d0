// Copyright 2026 The Vela Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package args

import (
	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/types"
)

// TxCustom submits arbitrary transaction code with an optional data payload.
type TxCustom struct {
	Tx
	CodePath string
	DataPath *string
}

func (a *TxCustom) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		codePathArg.Def("The path to the transaction's code."),
		dataPathOpt.Def("The data file at this path containing arbitrary bytes "+
			"will be passed to the transaction code when it's executed."),
	)
}

func (a *TxCustom) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.CodePath, err = codePathArg.Parse(m); err != nil {
		return err
	}
	a.DataPath, err = dataPathOpt.Parse(m)
	return err
}

// TxTransfer submits a token transfer.
type TxTransfer struct {
	Tx
	Source    WalletAddress
	Target    WalletAddress
	Token     WalletAddress
	SubPrefix *string
	Amount    types.Amount
}

func (a *TxTransfer) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		sourceArg.Def("The source account address. The source's key is used to "+
			"produce the signature unless another signer is given."),
		targetArg.Def("The target account address."),
		tokenArg.Def("The transfer token."),
		subPrefixOpt.Def("The token's sub prefix."),
		amountArg.Def("The amount to transfer in decimal."),
	)
}

func (a *TxTransfer) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Source, err = sourceArg.Parse(m); err != nil {
		return err
	}
	if a.Target, err = targetArg.Parse(m); err != nil {
		return err
	}
	if a.Token, err = tokenArg.Parse(m); err != nil {
		return err
	}
	if a.SubPrefix, err = subPrefixOpt.Parse(m); err != nil {
		return err
	}
	a.Amount, err = amountArg.Parse(m)
	return err
}

// TxInitAccount initializes a new established account on chain.
type TxInitAccount struct {
	Tx
	Source WalletAddress
	// CodePath points at the new account's validity predicate code; the
	// default user predicate is used when absent.
	CodePath  *string
	PublicKey WalletPublicKey
}

func (a *TxInitAccount) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		sourceArg.Def("The source account's address that signs the transaction."),
		codePathOpt.Def("The path to the validity predicate code for the new account."),
		publicKeyArg.Def("A public key to be used for the new account. "+
			"An alias or a literal public key."),
	)
}

func (a *TxInitAccount) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Source, err = sourceArg.Parse(m); err != nil {
		return err
	}
	if a.CodePath, err = codePathOpt.Parse(m); err != nil {
		return err
	}
	a.PublicKey, err = publicKeyArg.Parse(m)
	return err
}

// TxInitValidator initializes a new validator account on chain, generating
// any of the validator's keys not explicitly supplied.
type TxInitValidator struct {
	Tx
	Source                  WalletAddress
	Scheme                  types.SchemeType
	AccountKey              *WalletPublicKey
	ConsensusKey            *WalletKeypair
	ProtocolKey             *WalletPublicKey
	CommissionRate          types.Decimal
	MaxCommissionRateChange types.Decimal
	ValidatorCodePath       *string
	UnsafeDontEncrypt       bool
}

func (a *TxInitValidator) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		sourceArg.Def("The source account's address that signs the transaction."),
		schemeArg.Def(`The key scheme for generated validator keys, either "ed25519" or "secp256k1".`),
		accountKeyOpt.Def("A public key for the validator account. A new one is generated if none given."),
		consensusKeyOpt.Def("A consensus key for the validator. A new one is generated if none given."),
		protocolKeyOpt.Def("A public key for signing protocol transactions. A new one is generated if none given."),
		commissionRateArg.Def("The commission rate charged by the validator on delegation rewards, "+
			"a decimal between 0 and 1."),
		maxCommissionChangeArg.Def("The maximum change per epoch in the commission rate."),
		validatorCodePathOpt.Def("The path to the validity predicate code for the validator account."),
		unsafeDontEncryptFlag.Def("UNSAFE: Do not encrypt the generated keypairs. "+
			"Do not use this for keys used in a live network."),
	)
}

func (a *TxInitValidator) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Source, err = sourceArg.Parse(m); err != nil {
		return err
	}
	if a.Scheme, err = schemeArg.Parse(m); err != nil {
		return err
	}
	if a.AccountKey, err = accountKeyOpt.Parse(m); err != nil {
		return err
	}
	if a.ConsensusKey, err = consensusKeyOpt.Parse(m); err != nil {
		return err
	}
	if a.ProtocolKey, err = protocolKeyOpt.Parse(m); err != nil {
		return err
	}
	if a.CommissionRate, err = commissionRateArg.Parse(m); err != nil {
		return err
	}
	if a.MaxCommissionRateChange, err = maxCommissionChangeArg.Parse(m); err != nil {
		return err
	}
	if a.ValidatorCodePath, err = validatorCodePathOpt.Parse(m); err != nil {
		return err
	}
	a.UnsafeDontEncrypt = unsafeDontEncryptFlag.Parse(m)
	return nil
}

// TxUpdateVp replaces an account's validity predicate.
type TxUpdateVp struct {
	Tx
	CodePath string
	Address  WalletAddress
}

func (a *TxUpdateVp) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		codePathArg.Def("The path to the new validity predicate code."),
		addressArg.Def("The account's address whose validity predicate to update."),
	)
}

func (a *TxUpdateVp) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.CodePath, err = codePathArg.Parse(m); err != nil {
		return err
	}
	a.Address, err = addressArg.Parse(m)
	return err
}

// Bond stakes tokens with a validator, from the validator's own balance or a
// delegator's.
type Bond struct {
	Tx
	Validator WalletAddress
	Amount    types.Amount
	// Source is the delegator; absent means self-bonding by the validator.
	Source *WalletAddress
}

func (a *Bond) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		validatorArg.Def("The validator's address."),
		amountArg.Def("The amount to bond in decimal."),
		sourceOpt.Def("The source account for delegated bonds. "+
			"Defaults to the validator address for self-bonds."),
	)
}

func (a *Bond) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Validator, err = validatorArg.Parse(m); err != nil {
		return err
	}
	if a.Amount, err = amountArg.Parse(m); err != nil {
		return err
	}
	a.Source, err = sourceOpt.Parse(m)
	return err
}

// Unbond starts withdrawing staked tokens from a validator.
type Unbond struct {
	Tx
	Validator WalletAddress
	Amount    types.Amount
	Source    *WalletAddress
}

func (a *Unbond) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		validatorArg.Def("The validator's address."),
		amountArg.Def("The amount to unbond in decimal."),
		sourceOpt.Def("The source account of delegated bonds. "+
			"Defaults to the validator address for self-bonds."),
	)
}

func (a *Unbond) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Validator, err = validatorArg.Parse(m); err != nil {
		return err
	}
	if a.Amount, err = amountArg.Parse(m); err != nil {
		return err
	}
	a.Source, err = sourceOpt.Parse(m)
	return err
}

// Withdraw claims unbonded tokens once their unbonding period has elapsed.
type Withdraw struct {
	Tx
	Validator WalletAddress
	Source    *WalletAddress
}

func (a *Withdraw) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		validatorArg.Def("The validator's address."),
		sourceOpt.Def("The source account of delegated bonds. "+
			"Defaults to the validator address for self-bonds."),
	)
}

func (a *Withdraw) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Validator, err = validatorArg.Parse(m); err != nil {
		return err
	}
	a.Source, err = sourceOpt.Parse(m)
	return err
}

// InitProposal submits a governance proposal, or writes one out for offline
// voting.
type InitProposal struct {
	Tx
	// ProposalData is the path of the proposal's JSON definition.
	ProposalData string
	Offline      bool
}

func (a *InitProposal) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		dataPathArg.Def("The path of the proposal file. The file must contain "+
			"a valid JSON proposal definition."),
		offlineFlag.Def("Create an offline proposal rather than a live one."),
	)
}

func (a *InitProposal) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.ProposalData, err = dataPathArg.Parse(m); err != nil {
		return err
	}
	a.Offline = offlineFlag.Parse(m)
	return nil
}

// VoteProposal casts a governance ballot, live by proposal id or offline
// against a stored proposal file.
type VoteProposal struct {
	Tx
	ProposalID   *uint64
	Vote         types.ProposalVote
	Offline      bool
	ProposalData *string
}

func (a *VoteProposal) Def(c *cli.Command) *cli.Command {
	c = a.Tx.Def(c)
	return c.Arg(
		proposalIDOpt.Def("The proposal identifier.").
			ConflictsWith("offline", "data-path"),
		voteArg.Def(`The vote for the proposal, either "yay" or "nay".`),
		offlineFlag.Def("Create an offline vote rather than a live one."),
		dataPathOpt.Def("The data path file containing the proposal to vote on offline."),
	)
}

func (a *VoteProposal) Parse(m *cli.Matches) error {
	if err := a.Tx.Parse(m); err != nil {
		return err
	}
	var err error
	if a.ProposalID, err = proposalIDOpt.Parse(m); err != nil {
		return err
	}
	if a.Vote, err = voteArg.Parse(m); err != nil {
		return err
	}
	a.Offline = offlineFlag.Parse(m)
	a.ProposalData, err = dataPathOpt.Parse(m)
	return err
}
