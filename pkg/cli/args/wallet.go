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

// KeyAndAddressGen generates a new keypair and derived implicit address in
// the wallet.
type KeyAndAddressGen struct {
	Scheme types.SchemeType
	// Alias stores the key under a chosen name; absent means the key is
	// stored under its public key hash.
	Alias             *string
	UnsafeDontEncrypt bool
}

func (a *KeyAndAddressGen) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		schemeArg.Def(`The key scheme, either "ed25519" or "secp256k1".`),
		aliasOpt.Def("The key and address alias."),
		unsafeDontEncryptFlag.Def("UNSAFE: Do not encrypt the keypair. "+
			"Do not use this for keys used in a live network."),
	)
}

func (a *KeyAndAddressGen) Parse(m *cli.Matches) error {
	var err error
	if a.Scheme, err = schemeArg.Parse(m); err != nil {
		return err
	}
	if a.Alias, err = aliasOpt.Parse(m); err != nil {
		return err
	}
	a.UnsafeDontEncrypt = unsafeDontEncryptFlag.Parse(m)
	return nil
}

// KeyFind looks up a keypair by exactly one of public key, alias, or public
// key hash value.
type KeyFind struct {
	PublicKey        *string
	Alias            *string
	Value            *string
	UnsafeShowSecret bool
}

func (a *KeyFind) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		rawPublicKeyOpt.Def("A public key associated with the keypair."),
		aliasOpt.Def("An alias associated with the keypair."),
		valueOpt.Def("A public key or alias associated with the keypair."),
		unsafeShowSecretFlag.Def("UNSAFE: Print the secret key."),
	).Group(cli.Group{
		Name:     "find-flags",
		Keys:     []string{"public-key", "alias", "value"},
		Required: true,
	})
}

func (a *KeyFind) Parse(m *cli.Matches) error {
	var err error
	if a.PublicKey, err = rawPublicKeyOpt.Parse(m); err != nil {
		return err
	}
	if a.Alias, err = aliasOpt.Parse(m); err != nil {
		return err
	}
	if a.Value, err = valueOpt.Parse(m); err != nil {
		return err
	}
	a.UnsafeShowSecret = unsafeShowSecretFlag.Parse(m)
	return nil
}

// KeyList lists the wallet's known keys.
type KeyList struct {
	Decrypt          bool
	UnsafeShowSecret bool
}

func (a *KeyList) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		decryptFlag.Def("Decrypt keys that are encrypted."),
		unsafeShowSecretFlag.Def("UNSAFE: Print the secret keys."),
	)
}

func (a *KeyList) Parse(m *cli.Matches) error {
	a.Decrypt = decryptFlag.Parse(m)
	a.UnsafeShowSecret = unsafeShowSecretFlag.Parse(m)
	return nil
}

// KeyExport writes a keypair out of the wallet into a file.
type KeyExport struct {
	Alias string
}

func (a *KeyExport) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		aliasArg.Def("The alias of the key you wish to export."),
	)
}

func (a *KeyExport) Parse(m *cli.Matches) error {
	var err error
	a.Alias, err = aliasArg.Parse(m)
	return err
}

// AddressOrAliasFind looks up an address by its alias, or an alias by its
// address. Exactly one of the two must be given.
type AddressOrAliasFind struct {
	Alias   *string
	Address *types.Address
}

func (a *AddressOrAliasFind) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		aliasOpt.Def("An alias associated with the address."),
		rawAddressOpt.Def("The encoded string of an address."),
	).Group(cli.Group{
		Name:     "find-flags",
		Keys:     []string{"alias", "address"},
		Required: true,
	})
}

func (a *AddressOrAliasFind) Parse(m *cli.Matches) error {
	var err error
	if a.Alias, err = aliasOpt.Parse(m); err != nil {
		return err
	}
	a.Address, err = rawAddressOpt.Parse(m)
	return err
}

// AddressAdd stores an alias for a literal address in the wallet.
type AddressAdd struct {
	Alias   string
	Address types.Address
}

func (a *AddressAdd) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		aliasArg.Def("An alias to be associated with the address."),
		rawAddressArg.Def("The encoded string of an address."),
	)
}

func (a *AddressAdd) Parse(m *cli.Matches) error {
	var err error
	if a.Alias, err = aliasArg.Parse(m); err != nil {
		return err
	}
	a.Address, err = rawAddressArg.Parse(m)
	return err
}
