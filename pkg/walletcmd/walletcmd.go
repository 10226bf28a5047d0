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

// Package walletcmd executes parsed vela-wallet invocations. Everything here
// is strictly local to the wallet database under the base directory.
package walletcmd

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/cli/cmds"
	"github.com/velachain/vela/pkg/log"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

// The prompts are swappable so the handlers are testable without a terminal.
var (
	promptPassword    = wallet.PromptPassword
	promptNewPassword = wallet.PromptNewPassword
)

// Run executes one wallet command.
func Run(logger *log.Logger, c *cmds.WalletCli) error {
	w, err := wallet.Open(c.Global.BaseDir)
	if err != nil {
		return err
	}
	defer w.Close()

	switch cmd := c.Cmd.(type) {
	case *cmds.KeyGen:
		return gen(w, &cmd.Args)
	case *cmds.AddressGen:
		return gen(w, &cmd.Args)
	case *cmds.KeyFind:
		return keyFind(w, &cmd.Args)
	case *cmds.KeyList:
		return keyList(w, &cmd.Args)
	case *cmds.KeyExport:
		return keyExport(w, &cmd.Args)
	case *cmds.AddressFind:
		return addressFind(w, &cmd.Args)
	case *cmds.AddressList:
		return addressList(w)
	case *cmds.AddressAdd:
		return addressAdd(w, &cmd.Args)
	}
	return fmt.Errorf("walletcmd: unhandled command %T", c.Cmd)
}

// gen backs both key gen and address gen; the two commands differ only in
// which half of the result the user came for.
func gen(w *wallet.Wallet, a *args.KeyAndAddressGen) error {
	var password []byte
	if !a.UnsafeDontEncrypt {
		var err error
		if password, err = promptNewPassword(); err != nil {
			return err
		}
	}
	alias := ""
	if a.Alias != nil {
		alias = *a.Alias
	}
	addr, _, err := w.GenKey(alias, a.Scheme, password)
	if err != nil {
		return err
	}
	if alias == "" {
		alias = addr.String()
	}
	fmt.Printf("Successfully added a key and an address with alias: %q\n", alias)
	fmt.Printf("The implicit address is: %s\n", addr)
	return nil
}

// decryptKey retrieves a secret key, prompting for the password only when the
// stored key turns out to be encrypted.
func decryptKey(w *wallet.Wallet, alias string) (ed25519.PrivateKey, error) {
	priv, err := w.Key(alias, nil)
	if !errors.Is(err, wallet.ErrDecrypt) {
		return priv, err
	}
	password, err := promptPassword(fmt.Sprintf("Enter the password of %q: ", alias))
	if err != nil {
		return nil, err
	}
	return w.Key(alias, password)
}

func keyFind(w *wallet.Wallet, a *args.KeyFind) error {
	var alias string
	switch {
	case a.Alias != nil:
		alias = *a.Alias
	case a.PublicKey != nil:
		blob, err := hex.DecodeString(*a.PublicKey)
		if err != nil || len(blob) != ed25519.PublicKeySize {
			return fmt.Errorf("walletcmd: malformed public key %q", *a.PublicKey)
		}
		if alias, err = w.AliasByPublicKey(blob); err != nil {
			return err
		}
	case a.Value != nil:
		// A value is an alias or a hex public key, tried in that order.
		alias = *a.Value
		if _, err := w.PublicKey(alias); errors.Is(err, wallet.ErrNotFound) {
			blob, err := hex.DecodeString(*a.Value)
			if err != nil || len(blob) != ed25519.PublicKeySize {
				return fmt.Errorf("walletcmd: no key matches %q", *a.Value)
			}
			if alias, err = w.AliasByPublicKey(blob); err != nil {
				return err
			}
		}
	}

	pub, err := w.PublicKey(alias)
	if err != nil {
		return err
	}
	fmt.Printf("Found key %q\n", alias)
	fmt.Printf("  Public key:       %s\n", hex.EncodeToString(pub))
	fmt.Printf("  Implicit address: %s\n", types.AddressFromPublicKey(pub))
	if a.UnsafeShowSecret {
		priv, err := decryptKey(w, alias)
		if err != nil {
			return err
		}
		fmt.Printf("  Secret key:       %s\n", hex.EncodeToString(priv))
	}
	return nil
}

func keyList(w *wallet.Wallet, a *args.KeyList) error {
	infos, err := w.ListKeys()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("The wallet holds no keys.")
		return nil
	}
	for _, info := range infos {
		state := ""
		if info.Encrypted {
			state = " (encrypted)"
		}
		fmt.Printf("%s%s: %s\n", info.Alias, state, hex.EncodeToString(info.PublicKey))
		if !a.UnsafeShowSecret {
			continue
		}
		if info.Encrypted && !a.Decrypt {
			continue
		}
		priv, err := decryptKey(w, info.Alias)
		if err != nil {
			return err
		}
		fmt.Printf("  secret: %s\n", hex.EncodeToString(priv))
	}
	return nil
}

func keyExport(w *wallet.Wallet, a *args.KeyExport) error {
	path, err := w.ExportKey(a.Alias, nil, ".")
	if errors.Is(err, wallet.ErrDecrypt) {
		var password []byte
		if password, err = promptPassword(fmt.Sprintf("Enter the password of %q: ", a.Alias)); err != nil {
			return err
		}
		path, err = w.ExportKey(a.Alias, password, ".")
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to file %s\n", path)
	return nil
}

func addressFind(w *wallet.Wallet, a *args.AddressOrAliasFind) error {
	if a.Alias != nil {
		addr, err := w.Address(*a.Alias)
		if err != nil {
			return err
		}
		fmt.Printf("Found address %s\n", addr)
		return nil
	}
	alias, err := w.AliasByAddress(*a.Address)
	if err != nil {
		return err
	}
	fmt.Printf("Found alias %q\n", alias)
	return nil
}

func addressList(w *wallet.Wallet) error {
	infos, err := w.ListAddresses()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Println("The wallet holds no addresses.")
		return nil
	}
	for _, info := range infos {
		fmt.Printf("%s: %s\n", info.Alias, info.Address)
	}
	return nil
}

func addressAdd(w *wallet.Wallet, a *args.AddressAdd) error {
	if err := w.AddAddress(a.Alias, a.Address); err != nil {
		return err
	}
	fmt.Printf("Successfully added an address with alias: %q\n", a.Alias)
	return nil
}
