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

// Package context carries the chain-level state commands run against: the
// parsed global arguments, the chain configuration, and an open wallet.
//
// Construction is strictly local and two-phase with respect to argument
// handling: structural matching and typed parsing happen first without a
// context, and wallet references parsed there are resolved against the
// context afterwards, only by commands that need one.
package context

import (
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

// Error reports a wallet reference that could not be resolved.
type Error struct {
	Ref string
	Err error
}

func (e *Error) Error() string { return fmt.Sprintf("resolving %q: %v", e.Ref, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

// promptPassword is swappable so resolution is testable without a terminal.
var promptPassword = wallet.PromptPassword

// A Context is the chain-level state of one command invocation.
type Context struct {
	Global  args.Global
	ChainID types.ChainID
	// Config is the chain's configuration; defaults when no config file
	// exists yet under the base directory.
	Config *config.Config
	Wallet *wallet.Wallet
}

// New builds a context from parsed globals: the chain is the one named by
// --chain-id or the default, its config file is loaded when present, and the
// wallet under the base directory is opened. No network access happens here.
func New(global args.Global) (*Context, error) {
	chainID := types.DefaultChainID
	if global.ChainID != nil {
		chainID = *global.ChainID
	}

	cfg, err := config.Load(global.BaseDir, chainID)
	if err != nil {
		if _, statErr := os.Stat(config.Path(global.BaseDir, chainID)); statErr == nil {
			return nil, err
		}
		cfg = config.Default(chainID, config.ModeFull)
	}
	if global.Mode != nil {
		cfg.Mode = *global.Mode
	}

	w, err := wallet.Open(global.BaseDir)
	if err != nil {
		return nil, err
	}
	return &Context{Global: global, ChainID: chainID, Config: cfg, Wallet: w}, nil
}

// Close releases the context's wallet.
func (c *Context) Close() error { return c.Wallet.Close() }

// WasmDir is the directory holding the chain's transaction code: the
// --wasm-dir override when given, else the chain directory's wasm
// subdirectory.
func (c *Context) WasmDir() string {
	if c.Global.WasmDir != nil {
		return *c.Global.WasmDir
	}
	return filepath.Join(config.ChainDir(c.Global.BaseDir, c.ChainID), "wasm")
}

// Address resolves an account reference: a wallet alias when known, else
// literal address text.
func (c *Context) Address(ref args.WalletAddress) (types.Address, error) {
	if addr, err := c.Wallet.Address(ref.Raw); err == nil {
		return addr, nil
	}
	addr, err := types.ParseAddress(ref.Raw)
	if err != nil {
		return types.Address{}, &Error{Ref: ref.Raw, Err: err}
	}
	return addr, nil
}

// Keypair resolves a signing key reference to the secret key: a key alias
// when known, else an address (literal or alias) whose key the wallet holds.
// Encrypted keys prompt for their password.
func (c *Context) Keypair(ref args.WalletKeypair) (ed25519.PrivateKey, error) {
	alias := ref.Raw
	if _, err := c.Wallet.PublicKey(alias); err != nil {
		// Not a key alias; try it as an address with a known alias.
		addr, err := c.Address(args.WalletAddress{Raw: ref.Raw})
		if err != nil {
			return nil, err
		}
		if alias, err = c.Wallet.AliasByAddress(addr); err != nil {
			return nil, &Error{Ref: ref.Raw, Err: err}
		}
	}

	priv, err := c.Wallet.Key(alias, nil)
	if errors.Is(err, wallet.ErrDecrypt) {
		var password []byte
		if password, err = promptPassword(fmt.Sprintf("Enter decryption password for %q", alias)); err != nil {
			return nil, err
		}
		priv, err = c.Wallet.Key(alias, password)
	}
	if err != nil {
		return nil, &Error{Ref: ref.Raw, Err: err}
	}
	return priv, nil
}

// PublicKey resolves a public key reference: a wallet alias when known, else
// hex-encoded literal key text.
func (c *Context) PublicKey(ref args.WalletPublicKey) (ed25519.PublicKey, error) {
	if pub, err := c.Wallet.PublicKey(ref.Raw); err == nil {
		return pub, nil
	}
	raw, err := hex.DecodeString(ref.Raw)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, &Error{Ref: ref.Raw, Err: fmt.Errorf("not a wallet alias or a %d-byte hex public key", ed25519.PublicKeySize)}
	}
	return ed25519.PublicKey(raw), nil
}
