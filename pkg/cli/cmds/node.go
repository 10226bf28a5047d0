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

// LedgerRun runs the ledger node until interrupted.
type LedgerRun struct{}

func (*LedgerRun) isVela()     {}
func (*LedgerRun) isVelaNode() {}

// LedgerReset deletes the chain's local state, keeping its configuration.
type LedgerReset struct{}

func (*LedgerReset) isVela()     {}
func (*LedgerReset) isVelaNode() {}

// ConfigGen writes a fresh default configuration for the chain.
type ConfigGen struct{}

func (*ConfigGen) isVela()     {}
func (*ConfigGen) isVelaNode() {}

// NodeCli is a parsed invocation of the vela-node executable.
type NodeCli struct {
	Global args.Global
	// Token is the raw top-level command token that was selected, for
	// logging by the caller.
	Token   string
	Context *context.Context
	Cmd     VelaNode
}

const nodeAbstract = "Vela node command line interface."

// nodeCommands builds the vela-node command set. Fresh nodes are built per
// call so each composed tree owns its parent links.
func nodeCommands() []*cli.Command {
	ledger := cli.New("ledger", "Run the ledger node.").
		DefaultSub("run").
		Sub(
			cli.New("run", "Run the ledger node until shut down."),
			cli.New("reset", "Delete the chain's state, keeping the config. Dangerous."),
		)
	config := cli.New("config", "Node configuration.").
		RequireSub().
		Sub(
			cli.New("gen", "Generate the default node configuration for the chain."),
		)
	return []*cli.Command{ledger, config}
}

func nodeApp() *cli.App {
	root := (&args.Global{}).Def(cli.New("vela-node", nodeAbstract)).RequireSub()
	root.Sub(nodeCommands()...)
	return cli.NewApp(nodeAbstract, root, topics()...)
}

// parseNodeCmd resolves a matched node command. It operates on the matches
// node whose selected child is the node command, so the same logic serves
// vela-node, 'vela node' and the inlined 'vela ledger'.
func parseNodeCmd(m *cli.Matches) (VelaNode, error) {
	tok, _ := m.Selected()
	switch tok {
	case "ledger":
		sub, _ := m.Sub("ledger")
		if inner, ok := sub.Selected(); ok && inner == "reset" {
			return &LedgerReset{}, nil
		}
		return &LedgerRun{}, nil
	case "config":
		return &ConfigGen{}, nil
	}
	return nil, fmt.Errorf("unhandled command %q", tok)
}

// ParseVelaNode parses raw arguments (excluding the program name) into a node
// invocation, with the chain context resolved.
func ParseVelaNode(argv []string) (*NodeCli, error) {
	m, err := nodeApp().Match(argv)
	if err != nil {
		return nil, err
	}
	var global args.Global
	if err := global.Parse(m); err != nil {
		return nil, err
	}
	cmd, err := parseNodeCmd(m)
	if err != nil {
		return nil, err
	}
	ctx, err := newContext(global)
	if err != nil {
		return nil, err
	}
	tok, _ := m.Selected()
	return &NodeCli{Global: global, Token: tok, Context: ctx, Cmd: cmd}, nil
}

// VelaNodeCli parses the process arguments, printing usage and terminating
// on failure.
func VelaNodeCli() *NodeCli {
	c, err := ParseVelaNode(os.Args[1:])
	if err != nil {
		nodeApp().Fail(err)
	}
	return c
}
