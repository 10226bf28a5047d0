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

package cmds

import (
	"fmt"
	"os"

	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/cli/context"
)

// TxCustom submits a transaction with custom code and data.
type TxCustom struct{ Args args.TxCustom }

func (*TxCustom) isVela()       {}
func (*TxCustom) isVelaClient() {}
func (*TxCustom) withContext()  {}

// TxTransfer submits a token transfer.
type TxTransfer struct{ Args args.TxTransfer }

func (*TxTransfer) isVela()       {}
func (*TxTransfer) isVelaClient() {}
func (*TxTransfer) withContext()  {}

// TxUpdateVp replaces an account's validity predicate.
type TxUpdateVp struct{ Args args.TxUpdateVp }

func (*TxUpdateVp) isVela()       {}
func (*TxUpdateVp) isVelaClient() {}
func (*TxUpdateVp) withContext()  {}

// TxInitAccount initializes a new established account.
type TxInitAccount struct{ Args args.TxInitAccount }

func (*TxInitAccount) isVela()       {}
func (*TxInitAccount) isVelaClient() {}
func (*TxInitAccount) withContext()  {}

// TxInitValidator initializes a new validator account.
type TxInitValidator struct{ Args args.TxInitValidator }

func (*TxInitValidator) isVela()       {}
func (*TxInitValidator) isVelaClient() {}
func (*TxInitValidator) withContext()  {}

// Bond stakes tokens with a validator.
type Bond struct{ Args args.Bond }

func (*Bond) isVela()       {}
func (*Bond) isVelaClient() {}
func (*Bond) withContext()  {}

// Unbond starts withdrawing staked tokens.
type Unbond struct{ Args args.Unbond }

func (*Unbond) isVela()       {}
func (*Unbond) isVelaClient() {}
func (*Unbond) withContext()  {}

// Withdraw claims tokens whose unbonding period has elapsed.
type Withdraw struct{ Args args.Withdraw }

func (*Withdraw) isVela()       {}
func (*Withdraw) isVelaClient() {}
func (*Withdraw) withContext()  {}

// InitProposal submits a governance proposal.
type InitProposal struct{ Args args.InitProposal }

func (*InitProposal) isVela()       {}
func (*InitProposal) isVelaClient() {}
func (*InitProposal) withContext()  {}

// VoteProposal casts a governance ballot.
type VoteProposal struct{ Args args.VoteProposal }

func (*VoteProposal) isVela()       {}
func (*VoteProposal) isVelaClient() {}
func (*VoteProposal) withContext()  {}

// QueryEpoch queries the epoch of the last committed block.
type QueryEpoch struct{ Args args.Query }

func (*QueryEpoch) isVela()       {}
func (*QueryEpoch) isVelaClient() {}
func (*QueryEpoch) withContext()  {}

// QueryBlock queries the last committed block.
type QueryBlock struct{ Args args.Query }

func (*QueryBlock) isVela()       {}
func (*QueryBlock) isVelaClient() {}
func (*QueryBlock) withContext()  {}

// QueryBalance queries token balances.
type QueryBalance struct{ Args args.QueryBalance }

func (*QueryBalance) isVela()       {}
func (*QueryBalance) isVelaClient() {}
func (*QueryBalance) withContext()  {}

// QueryBonds queries bonded stake.
type QueryBonds struct{ Args args.QueryBonds }

func (*QueryBonds) isVela()       {}
func (*QueryBonds) isVelaClient() {}
func (*QueryBonds) withContext()  {}

// QueryVotingPower queries validator voting power.
type QueryVotingPower struct{ Args args.QueryVotingPower }

func (*QueryVotingPower) isVela()       {}
func (*QueryVotingPower) isVelaClient() {}
func (*QueryVotingPower) withContext()  {}

// QueryCommissionRate queries a validator's commission rate.
type QueryCommissionRate struct{ Args args.QueryCommissionRate }

func (*QueryCommissionRate) isVela()       {}
func (*QueryCommissionRate) isVelaClient() {}
func (*QueryCommissionRate) withContext()  {}

// QuerySlashes queries applied slashes.
type QuerySlashes struct{ Args args.QuerySlashes }

func (*QuerySlashes) isVela()       {}
func (*QuerySlashes) isVelaClient() {}
func (*QuerySlashes) withContext()  {}

// QueryResult queries the result of a submitted transaction.
type QueryResult struct{ Args args.QueryResult }

func (*QueryResult) isVela()       {}
func (*QueryResult) isVelaClient() {}
func (*QueryResult) withContext()  {}

// QueryRawBytes queries one raw storage value.
type QueryRawBytes struct{ Args args.QueryRawBytes }

func (*QueryRawBytes) isVela()       {}
func (*QueryRawBytes) isVelaClient() {}
func (*QueryRawBytes) withContext()  {}

// QueryProposal queries governance proposals.
type QueryProposal struct{ Args args.QueryProposal }

func (*QueryProposal) isVela()       {}
func (*QueryProposal) isVelaClient() {}
func (*QueryProposal) withContext()  {}

// QueryProposalResult queries a proposal's tally.
type QueryProposalResult struct{ Args args.QueryProposalResult }

func (*QueryProposalResult) isVela()       {}
func (*QueryProposalResult) isVelaClient() {}
func (*QueryProposalResult) withContext()  {}

// QueryProtocolParameters queries the chain's protocol parameters.
type QueryProtocolParameters struct{ Args args.QueryProtocolParameters }

func (*QueryProtocolParameters) isVela()       {}
func (*QueryProtocolParameters) isVelaClient() {}
func (*QueryProtocolParameters) withContext()  {}

// JoinNetwork configures the local node to join a chain. Runs without a
// context: the chain directory it targets does not exist yet.
type JoinNetwork struct{ Args args.JoinNetwork }

func (*JoinNetwork) isVela()       {}
func (*JoinNetwork) isVelaClient() {}

// FetchWasms downloads a joined chain's transaction code.
type FetchWasms struct{ Args args.FetchWasms }

func (*FetchWasms) isVela()       {}
func (*FetchWasms) isVelaClient() {}

// InitNetwork materializes a new chain from a genesis configuration.
type InitNetwork struct{ Args args.InitNetwork }

func (*InitNetwork) isVela()       {}
func (*InitNetwork) isVelaClient() {}

// InitGenesisValidator generates a future validator's keys pre-genesis.
type InitGenesisValidator struct{ Args args.InitGenesisValidator }

func (*InitGenesisValidator) isVela()       {}
func (*InitGenesisValidator) isVelaClient() {}

// ClientCli is a parsed invocation of the vela-client executable.
type ClientCli struct {
	Global args.Global
	// Token is the raw top-level command token that was selected, for
	// logging by the caller.
	Token string
	// Context is resolved for commands that run against a chain; utility
	// commands leave it nil.
	Context *context.Context
	Cmd     VelaClient
}

const clientAbstract = "Vela client command line interface."

func clientCommands() []*cli.Command {
	utils := cli.New("utils", "Chain setup utilities.").
		RequireSub().
		DisplayOrder(orderUtils).
		Sub(
			(&args.JoinNetwork{}).Def(cli.New("join-network", "Configure the local node to join a chain.")),
			(&args.FetchWasms{}).Def(cli.New("fetch-wasms", "Ensure the chain's transaction code is available locally.")),
			(&args.InitNetwork{}).Def(cli.New("init-network", "Initialize a new chain from a genesis configuration.")),
			(&args.InitGenesisValidator{}).Def(cli.New("init-genesis-validator",
				"Initialize genesis validator's address, keys and alias, and use "+
					"it in the ledger's node.")),
		)

	return []*cli.Command{
		(&args.TxCustom{}).Def(cli.New("tx", "Send a transaction with custom code and data.")).DisplayOrder(orderTx),
		(&args.TxTransfer{}).Def(cli.New("transfer", "Send a signed transfer transaction.")).DisplayOrder(orderTx),
		(&args.TxUpdateVp{}).Def(cli.New("update",
			"Send a signed transaction to update account's validity predicate.")).DisplayOrder(orderTx),
		(&args.TxInitAccount{}).Def(cli.New("init-account",
			"Send a signed transaction to create a new established account.")).DisplayOrder(orderTx),
		(&args.TxInitValidator{}).Def(cli.New("init-validator",
			"Send a signed transaction to create a new validator account.")).DisplayOrder(orderTx),
		(&args.Bond{}).Def(cli.New("bond", "Bond tokens in proof-of-stake system.")).DisplayOrder(orderPoS),
		(&args.Unbond{}).Def(cli.New("unbond", "Unbond tokens from a proof-of-stake bond.")).DisplayOrder(orderPoS),
		(&args.Withdraw{}).Def(cli.New("withdraw",
			"Withdraw tokens from previously unbonded proof-of-stake bond.")).DisplayOrder(orderPoS),
		(&args.InitProposal{}).Def(cli.New("init-proposal", "Create a new governance proposal.")).DisplayOrder(orderPoS),
		(&args.VoteProposal{}).Def(cli.New("vote-proposal", "Vote on a governance proposal.")).DisplayOrder(orderPoS),
		(&args.Query{}).Def(cli.New("epoch", "Query the epoch of the last committed block.")).DisplayOrder(orderQuery),
		(&args.Query{}).Def(cli.New("block", "Query the last committed block.")).DisplayOrder(orderQuery),
		(&args.QueryBalance{}).Def(cli.New("balance", "Query balance(s) of tokens.")).DisplayOrder(orderQuery),
		(&args.QueryBonds{}).Def(cli.New("bonds", "Query PoS bond(s).")).DisplayOrder(orderQuery),
		(&args.QueryVotingPower{}).Def(cli.New("voting-power",
			"Query PoS voting power.")).DisplayOrder(orderQuery),
		(&args.QueryCommissionRate{}).Def(cli.New("commission-rate",
			"Query a validator's commission rate.")).DisplayOrder(orderQuery),
		(&args.QuerySlashes{}).Def(cli.New("slashes", "Query PoS applied slashes.")).DisplayOrder(orderQuery),
		(&args.QueryResult{}).Def(cli.New("tx-result",
			"Query the result of a transaction.")).DisplayOrder(orderQuery),
		(&args.QueryRawBytes{}).Def(cli.New("query-bytes",
			"Query the raw bytes of a given storage key.")).DisplayOrder(orderQuery),
		(&args.QueryProposal{}).Def(cli.New("query-proposal", "Query proposals.")).DisplayOrder(orderQuery),
		(&args.QueryProposalResult{}).Def(cli.New("query-proposal-result",
			"Query proposals result.")).DisplayOrder(orderQuery),
		(&args.QueryProtocolParameters{}).Def(cli.New("query-protocol-parameters",
			"Query protocol parameters.")).DisplayOrder(orderQuery),
		utils,
	}
}

func clientApp() *cli.App {
	root := (&args.Global{}).Def(cli.New("vela-client", clientAbstract)).RequireSub()
	root.Sub(clientCommands()...)
	return cli.NewApp(clientAbstract, root, topics()...)
}

// parseClientCmd resolves a matched client command from the matches node
// whose selected child is the command, so the same logic serves vela-client
// and the commands inlined into vela.
func parseClientCmd(m *cli.Matches) (VelaClient, error) {
	tok, _ := m.Selected()
	sub, _ := m.Sub(tok)
	switch tok {
	case "tx":
		var a args.TxCustom
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &TxCustom{Args: a}, nil
	case "transfer":
		var a args.TxTransfer
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &TxTransfer{Args: a}, nil
	case "update":
		var a args.TxUpdateVp
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &TxUpdateVp{Args: a}, nil
	case "init-account":
		var a args.TxInitAccount
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &TxInitAccount{Args: a}, nil
	case "init-validator":
		var a args.TxInitValidator
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &TxInitValidator{Args: a}, nil
	case "bond":
		var a args.Bond
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &Bond{Args: a}, nil
	case "unbond":
		var a args.Unbond
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &Unbond{Args: a}, nil
	case "withdraw":
		var a args.Withdraw
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &Withdraw{Args: a}, nil
	case "init-proposal":
		var a args.InitProposal
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &InitProposal{Args: a}, nil
	case "vote-proposal":
		var a args.VoteProposal
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &VoteProposal{Args: a}, nil
	case "epoch":
		var a args.Query
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryEpoch{Args: a}, nil
	case "block":
		var a args.Query
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryBlock{Args: a}, nil
	case "balance":
		var a args.QueryBalance
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryBalance{Args: a}, nil
	case "bonds":
		var a args.QueryBonds
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryBonds{Args: a}, nil
	case "voting-power":
		var a args.QueryVotingPower
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryVotingPower{Args: a}, nil
	case "commission-rate":
		var a args.QueryCommissionRate
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryCommissionRate{Args: a}, nil
	case "slashes":
		var a args.QuerySlashes
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QuerySlashes{Args: a}, nil
	case "tx-result":
		var a args.QueryResult
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryResult{Args: a}, nil
	case "query-bytes":
		var a args.QueryRawBytes
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryRawBytes{Args: a}, nil
	case "query-proposal":
		var a args.QueryProposal
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryProposal{Args: a}, nil
	case "query-proposal-result":
		var a args.QueryProposalResult
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryProposalResult{Args: a}, nil
	case "query-protocol-parameters":
		var a args.QueryProtocolParameters
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &QueryProtocolParameters{Args: a}, nil
	case "utils":
		return parseUtilsCmd(sub)
	}
	return nil, fmt.Errorf("unhandled command %q", tok)
}

func parseUtilsCmd(m *cli.Matches) (VelaClient, error) {
	tok, _ := m.Selected()
	sub, _ := m.Sub(tok)
	switch tok {
	case "join-network":
		var a args.JoinNetwork
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &JoinNetwork{Args: a}, nil
	case "fetch-wasms":
		var a args.FetchWasms
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &FetchWasms{Args: a}, nil
	case "init-network":
		var a args.InitNetwork
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &InitNetwork{Args: a}, nil
	case "init-genesis-validator":
		var a args.InitGenesisValidator
		if err := a.Parse(sub); err != nil {
			return nil, err
		}
		return &InitGenesisValidator{Args: a}, nil
	}
	return nil, fmt.Errorf("unhandled command %q", tok)
}

// ParseVelaClient parses raw arguments (excluding the program name) into a
// client invocation. The chain context is resolved once, and only for
// commands that run against a chain.
func ParseVelaClient(argv []string) (*ClientCli, error) {
	m, err := clientApp().Match(argv)
	if err != nil {
		return nil, err
	}
	var global args.Global
	if err := global.Parse(m); err != nil {
		return nil, err
	}
	cmd, err := parseClientCmd(m)
	if err != nil {
		return nil, err
	}
	tok, _ := m.Selected()
	c := &ClientCli{Global: global, Token: tok, Cmd: cmd}
	if _, ok := cmd.(ClientWithContext); ok {
		if c.Context, err = newContext(global); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// VelaClientCli parses the process arguments, printing usage and terminating
// on failure.
func VelaClientCli() *ClientCli {
	c, err := ParseVelaClient(os.Args[1:])
	if err != nil {
		clientApp().Fail(err)
	}
	return c
}
