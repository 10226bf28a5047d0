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

// Package cmds composes the command trees of the vela executables and parses
// invocations into typed command values. The suite is divided into the node,
// client and wallet executables; the combined vela executable nests all three
// and additionally exposes the most frequent commands directly.
//
// Every command is declared once and reused wherever it appears: command
// definitions are tree-position-agnostic, so e.g. the ledger command is the
// same declaration under 'vela-node ledger', 'vela node ledger' and plain
// 'vela ledger'.
package cmds

import (
	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/cli/context"
)

// Vela is a command of any executable in the suite; the combined vela
// executable accepts all of them.
type Vela interface {
	isVela()
}

// VelaNode is a command of the vela-node executable.
type VelaNode interface {
	Vela
	isVelaNode()
}

// VelaClient is a command of the vela-client executable.
type VelaClient interface {
	Vela
	isVelaClient()
}

// VelaWallet is a command of the vela-wallet executable.
type VelaWallet interface {
	Vela
	isVelaWallet()
}

// ClientWithContext marks client commands that run against a chain and so
// get a resolved context. Utility commands that set chains up run without
// one.
type ClientWithContext interface {
	VelaClient
	withContext()
}

// newContext is swappable so parsing is testable without touching the
// filesystem.
var newContext = context.New

// displayOrder groups commands in usage listings: transactions first, then
// proof-of-stake, queries, and utilities.
const (
	orderTx    = 1
	orderPoS   = 2
	orderQuery = 3
	orderUtils = 5
)

func topics() []cli.Topic {
	return []cli.Topic{
		{
			Name:  "environment",
			Short: "Environment variables the suite reads.",
			Long: `The vela executables read the following environment variables:

    VELA_BASE_DIR    The directory holding the wallet and per-chain state.
                     Equivalent to --base-dir, which takes precedence.
    VELA_WASM_DIR    Directory with built transaction and validity predicate
                     code. Equivalent to --wasm-dir, which takes precedence.

An explicit command-line argument always beats the environment.`,
		},
		{
			Name:  "chains",
			Short: "How chain state is laid out on disk.",
			Long: `Each chain gets its own directory under the base directory, named by its
chain id. The chain directory holds the node's config.toml, the chain
database, and the chain's transaction code. The wallet is shared across
chains and lives at the top of the base directory.`,
		},
	}
}
