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
)

// KeyGen generates a keypair and its implicit address in the wallet.
type KeyGen struct{ Args args.KeyAndAddressGen }

func (*KeyGen) isVela()       {}
func (*KeyGen) isVelaWallet() {}

// KeyFind looks a keypair up by public key, alias or value.
type KeyFind struct{ Args args.KeyFind }

func (*KeyFind) isVela()       {}
func (*KeyFind) isVelaWallet() {}

// KeyList lists known keys.
type KeyList struct{ Args args.KeyList }

func (*KeyList) isVela()       {}
func (*KeyList) isVelaWallet() {}

// KeyExport writes a keypair to a file.
type KeyExport struct{ Args args.KeyExport }

func (*KeyExport) isVela()       {}
func (*KeyExport) isVelaWallet() {}

// AddressGen generates a keypair and stores its implicit address, for
// callers who think in addresses.
type AddressGen struct{ Args args.KeyAndAddressGen }

func (*AddressGen) isVela()       {}
func (*AddressGen) isVelaWallet() {}

// AddressFind looks up an address by alias, or an alias by address.
type AddressFind struct{ Args args.AddressOrAliasFind }

func (*AddressFind) isVela()       {}
func (*AddressFind) isVelaWallet() {}

// AddressList lists known addresses.
type AddressList struct{}

func (*AddressList) isVela()       {}
func (*AddressList) isVelaWallet() {}

// AddressAdd stores an alias for a literal address.
type AddressAdd struct{ Args args.AddressAdd }

func (*AddressAdd) isVela()       {}
func (*AddressAdd) isVelaWallet() {}

// WalletCli is a parsed invocation of the vela-wallet executable. Wallet
// commands are strictly local and never get a chain context.
type WalletCli struct {
	Global args.Global
	// Token is the raw top-level command token that was selected, for
	// logging by the caller.
	Token string
	Cmd   VelaWallet
}

const walletAbstract = "Vela wallet command line interface."

func walletCommands() []*cli.Command {
	key := cli.New("key", "Keypair management, including methods to generate and look-up keys.").
		RequireSub().
		Sub(
			(&args.KeyAndAddressGen{}).Def(cli.New("gen",
				"Generates a keypair with a given alias and derives the implicit address from its public key.")),
			(&args.KeyFind{}).Def(cli.New("find", "Searches for a keypair from a public key or an alias.")),
			(&args.KeyList{}).Def(cli.New("list", "List all known keys.")),
			(&args.KeyExport{}).Def(cli.New("export", "Exports a keypair to a file.")),
		)
	address := cli.New("address", "Address management, including methods to generate and look-up addresses.").
		RequireSub().
		Sub(
			(&args.KeyAndAddressGen{}).Def(cli.New("gen",
				"Generates a keypair and an implicit address derived from it.")),
			(&args.AddressOrAliasFind{}).Def(cli.New("find",
				"Find an address by its alias or an alias by its address.")),
			cli.New("list", "List all known addresses."),
			(&args.AddressAdd{}).Def(cli.New("add", "Store an alias for an address in the wallet.")),
		)
	return []*cli.Command{key, address}
}

func walletApp() *cli.App {
	root := (&args.Global{}).Def(cli.New("vela-wallet", walletAbstract)).RequireSub()
	root.Sub(walletCommands()...)
	return cli.NewApp(walletAbstract, root, topics()...)
}

func parseWalletCmd(m *cli.Matches) (VelaWallet, error) {
	tok, _ := m.Selected()
	sub, _ := m.Sub(tok)
	inner, _ := sub.Selected()
	leaf, _ := sub.Sub(inner)
	switch tok {
	case "key":
		switch inner {
		case "gen":
			var a args.KeyAndAddressGen
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &KeyGen{Args: a}, nil
		case "find":
			var a args.KeyFind
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &KeyFind{Args: a}, nil
		case "list":
			var a args.KeyList
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &KeyList{Args: a}, nil
		case "export":
			var a args.KeyExport
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &KeyExport{Args: a}, nil
		}
	case "address":
		switch inner {
		case "gen":
			var a args.KeyAndAddressGen
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &AddressGen{Args: a}, nil
		case "find":
			var a args.AddressOrAliasFind
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &AddressFind{Args: a}, nil
		case "list":
			return &AddressList{}, nil
		case "add":
			var a args.AddressAdd
			if err := a.Parse(leaf); err != nil {
				return nil, err
			}
			return &AddressAdd{Args: a}, nil
		}
	}
	return nil, fmt.Errorf("unhandled command %q %q", tok, inner)
}

// ParseVelaWallet parses raw arguments (excluding the program name) into a
// wallet invocation.
func ParseVelaWallet(argv []string) (*WalletCli, error) {
	m, err := walletApp().Match(argv)
	if err != nil {
		return nil, err
	}
	var global args.Global
	if err := global.Parse(m); err != nil {
		return nil, err
	}
	cmd, err := parseWalletCmd(m)
	if err != nil {
		return nil, err
	}
	tok, _ := m.Selected()
	return &WalletCli{Global: global, Token: tok, Cmd: cmd}, nil
}

// VelaWalletCli parses the process arguments, printing usage and terminating
// on failure.
func VelaWalletCli() *WalletCli {
	c, err := ParseVelaWallet(os.Args[1:])
	if err != nil {
		walletApp().Fail(err)
	}
	return c
}
