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
	"os"

	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/cli/context"
)

// RootCli is a parsed invocation of the combined vela executable. Cmd is a
// command of any of the three nested executables.
type RootCli struct {
	Global args.Global
	// Token is the raw top-level command token that was selected, for
	// logging by the caller.
	Token string
	// Context is resolved for node commands and chain-bound client commands.
	Context *context.Context
	Cmd     Vela
}

const velaAbstract = "Vela command line interface. It is divided into modules " +
	"vela node, vela client and vela wallet; the most frequent commands are " +
	"also available here directly."

func velaApp() *cli.App {
	node := cli.New("node", "Node sub-commands.").RequireSub().Sub(nodeCommands()...)
	client := cli.New("client", "Client sub-commands.").RequireSub().Sub(clientCommands()...)
	wallet := cli.New("wallet", "Wallet sub-commands.").RequireSub().Sub(walletCommands()...)

	root := (&args.Global{}).Def(cli.New("vela", velaAbstract)).RequireSub()
	root.Sub(node, client, wallet)

	// The most frequent commands, inlined at the top level. These are fresh
	// declarations of the same commands the nested modules carry.
	ledger := cli.New("ledger", "Run the ledger node.").
		DefaultSub("run").
		DisplayOrder(orderTx).
		Sub(
			cli.New("run", "Run the ledger node until shut down."),
			cli.New("reset", "Delete the chain's state, keeping the config. Dangerous."),
		)
	root.Sub(
		ledger,
		(&args.TxCustom{}).Def(cli.New("tx", "Send a transaction with custom code and data.")).DisplayOrder(orderTx),
		(&args.TxTransfer{}).Def(cli.New("transfer", "Send a signed transfer transaction.")).DisplayOrder(orderTx),
		(&args.TxUpdateVp{}).Def(cli.New("update",
			"Send a signed transaction to update account's validity predicate.")).DisplayOrder(orderTx),
		(&args.InitProposal{}).Def(cli.New("init-proposal", "Create a new governance proposal.")).DisplayOrder(orderPoS),
		(&args.VoteProposal{}).Def(cli.New("vote-proposal", "Vote on a governance proposal.")).DisplayOrder(orderPoS),
	)
	return cli.NewApp(velaAbstract, root, topics()...)
}

func parseVelaCmd(m *cli.Matches) (Vela, error) {
	tok, _ := m.Selected()
	switch tok {
	case "node":
		sub, _ := m.Sub("node")
		return parseNodeCmd(sub)
	case "client":
		sub, _ := m.Sub("client")
		return parseClientCmd(sub)
	case "wallet":
		sub, _ := m.Sub("wallet")
		return parseWalletCmd(sub)
	case "ledger":
		return parseNodeCmd(m)
	}
	return parseClientCmd(m)
}

// ParseVela parses raw arguments (excluding the program name) into a combined
// invocation. The chain context is resolved once for node commands and
// chain-bound client commands, never for wallet or utility commands.
func ParseVela(argv []string) (*RootCli, error) {
	m, err := velaApp().Match(argv)
	if err != nil {
		return nil, err
	}
	var global args.Global
	if err := global.Parse(m); err != nil {
		return nil, err
	}
	cmd, err := parseVelaCmd(m)
	if err != nil {
		return nil, err
	}
	tok, _ := m.Selected()
	c := &RootCli{Global: global, Token: tok, Cmd: cmd}
	switch cmd.(type) {
	case VelaNode, ClientWithContext:
		if c.Context, err = newContext(global); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// VelaCli parses the process arguments, printing usage and terminating on
// failure.
func VelaCli() *RootCli {
	c, err := ParseVela(os.Args[1:])
	if err != nil {
		velaApp().Fail(err)
	}
	return c
}
