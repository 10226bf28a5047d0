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

/*
Package cli implements declarative command trees for the vela executables.

A command is declared once, as a value, and composed into the tree of each
executable that exposes it. The same command may be a top-level command of one
binary and a nested subcommand of another. Arguments are typed descriptors
declared alongside the commands that use them; a descriptor carries the key,
the conversion from raw text, and the default policy (none, static, or
environment variable then static).

Dispatch proceeds in two stages. First the raw process arguments are
structurally matched against the tree, producing a Matches value: tokens
select child commands, --key arguments bind to the innermost command on the
matched path that declares them. Declared constraints (mutual exclusion,
required one-of groups) are enforced on the Matches before any command logic
runs. Second, each candidate command's parse function probes the Matches for
its own token and, when selected, extracts its typed arguments through the
descriptors.

A minimal two-command binary:

	var chainID = cli.NewArg("chain-id", parseChainID)

	root := cli.New("vela-node", "The vela node daemon").
		Arg(chainID.Opt().Def("The chain to join")).
		Sub(
			cli.New("ledger", "Run the ledger").DefaultSub("run").Sub(
				cli.New("run", "Run until shutdown"),
				cli.New("reset", "Delete the chain state"),
			),
		).
		RequireSub()

	app := cli.NewApp("The vela node command line interface.", root)
	m, err := app.Match(os.Args[1:])
	if err != nil {
		app.Fail(err)
	}

Failures to match, requests for help, and argument parse errors all terminate
the process with exit code 2 via App.Fail.
*/
package cli
