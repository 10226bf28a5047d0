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

// QueryResult looks up the recorded outcome of a submitted transaction.
type QueryResult struct {
	Query
	TxHash string
}

func (a *QueryResult) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		txHashArg.Def("The hash of the transaction being looked up."),
	)
}

func (a *QueryResult) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	a.TxHash, err = txHashArg.Parse(m)
	return err
}

// QueryBalance reads token balances, narrowed by owner and token when given.
type QueryBalance struct {
	Query
	Owner     *WalletAddress
	Token     *WalletAddress
	SubPrefix *string
}

func (a *QueryBalance) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		ownerOpt.Def("The account address whose balance to query."),
		tokenOpt.Def("The token's address whose balance to query."),
		subPrefixOpt.Def("The token's sub prefix whose balance to query."),
	)
}

func (a *QueryBalance) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Owner, err = ownerOpt.Parse(m); err != nil {
		return err
	}
	if a.Token, err = tokenOpt.Parse(m); err != nil {
		return err
	}
	a.SubPrefix, err = subPrefixOpt.Parse(m)
	return err
}

// QueryBonds reads bonded stake, narrowed by owner and validator when given.
type QueryBonds struct {
	Query
	Owner     *WalletAddress
	Validator *WalletAddress
}

func (a *QueryBonds) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		ownerOpt.Def("The owner account address whose bonds to query."),
		validatorOpt.Def("The validator's address whose bonds to query."),
	)
}

func (a *QueryBonds) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Owner, err = ownerOpt.Parse(m); err != nil {
		return err
	}
	a.Validator, err = validatorOpt.Parse(m)
	return err
}

// QueryVotingPower reads voting power at an epoch, for one validator or the
// whole active set.
type QueryVotingPower struct {
	Query
	Validator *WalletAddress
	Epoch     *types.Epoch
}

func (a *QueryVotingPower) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		validatorOpt.Def("The validator's address whose voting power to query."),
		epochOpt.Def("The epoch at which to query. Defaults to the current epoch."),
	)
}

func (a *QueryVotingPower) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Validator, err = validatorOpt.Parse(m); err != nil {
		return err
	}
	a.Epoch, err = epochOpt.Parse(m)
	return err
}

// QueryCommissionRate reads a validator's commission rate at an epoch.
type QueryCommissionRate struct {
	Query
	Validator *WalletAddress
	Epoch     *types.Epoch
}

func (a *QueryCommissionRate) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		validatorOpt.Def("The validator's address whose commission rate to query."),
		epochOpt.Def("The epoch at which to query. Defaults to the current epoch."),
	)
}

func (a *QueryCommissionRate) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	if a.Validator, err = validatorOpt.Parse(m); err != nil {
		return err
	}
	a.Epoch, err = epochOpt.Parse(m)
	return err
}

// QuerySlashes reads applied slashes, for one validator or all.
type QuerySlashes struct {
	Query
	Validator *WalletAddress
}

func (a *QuerySlashes) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		validatorOpt.Def("The validator's address whose slashes to query."),
	)
}

func (a *QuerySlashes) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	a.Validator, err = validatorOpt.Parse(m)
	return err
}

// QueryRawBytes reads one raw value from chain storage.
type QueryRawBytes struct {
	Query
	StorageKey types.Key
}

func (a *QueryRawBytes) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		storageKeyArg.Def("The storage key to read."),
	)
}

func (a *QueryRawBytes) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	a.StorageKey, err = storageKeyArg.Parse(m)
	return err
}

// QueryProposal reads governance proposals, one by id or all.
type QueryProposal struct {
	Query
	ProposalID *uint64
}

func (a *QueryProposal) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		proposalIDOpt.Def("The proposal identifier."),
	)
}

func (a *QueryProposal) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	a.ProposalID, err = proposalIDOpt.Parse(m)
	return err
}

// QueryProposalResult reads the tally of a proposal, live by id or offline
// from a folder of proposal and vote files.
type QueryProposalResult struct {
	Query
	ProposalID     *uint64
	Offline        bool
	ProposalFolder *string
}

func (a *QueryProposalResult) Def(c *cli.Command) *cli.Command {
	c = a.Query.Def(c)
	return c.Arg(
		proposalIDOpt.Def("The proposal identifier.").
			ConflictsWith("offline", "data-path"),
		offlineFlag.Def("Tally an offline proposal rather than a live one."),
		dataPathOpt.Def("The path to the folder containing the proposal and votes."),
	)
}

func (a *QueryProposalResult) Parse(m *cli.Matches) error {
	if err := a.Query.Parse(m); err != nil {
		return err
	}
	var err error
	if a.ProposalID, err = proposalIDOpt.Parse(m); err != nil {
		return err
	}
	a.Offline = offlineFlag.Parse(m)
	a.ProposalFolder, err = dataPathOpt.Parse(m)
	return err
}

// QueryProtocolParameters reads the chain's protocol parameters.
type QueryProtocolParameters struct {
	Query
}
