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

package walletcmd

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/cli/cmds"
	"github.com/velachain/vela/pkg/log"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

func stubPrompts(t *testing.T, password string) *int {
	t.Helper()
	origNew, orig := promptNewPassword, promptPassword
	prompts := new(int)
	promptNewPassword = func() ([]byte, error) {
		*prompts++
		return []byte(password), nil
	}
	promptPassword = func(string) ([]byte, error) {
		*prompts++
		return []byte(password), nil
	}
	t.Cleanup(func() { promptNewPassword, promptPassword = origNew, orig })
	return prompts
}

func run(t *testing.T, baseDir string, cmd cmds.VelaWallet) error {
	t.Helper()
	return Run(log.Discarder(), &cmds.WalletCli{
		Global: args.Global{BaseDir: baseDir},
		Cmd:    cmd,
	})
}

func openWallet(t *testing.T, baseDir string) *wallet.Wallet {
	t.Helper()
	w, err := wallet.Open(baseDir)
	if err != nil {
		t.Fatalf("opening wallet: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestKeyGenStoresEncryptedKey(t *testing.T) {
	prompts := stubPrompts(t, "hunter2")
	baseDir := t.TempDir()
	alias := "tester"
	err := run(t, baseDir, &cmds.KeyGen{Args: args.KeyAndAddressGen{
		Scheme: types.SchemeEd25519,
		Alias:  &alias,
	}})
	if err != nil {
		t.Fatalf("key gen: %v", err)
	}
	if *prompts != 1 {
		t.Fatalf("prompted %d times, want 1", *prompts)
	}

	w := openWallet(t, baseDir)
	if _, err := w.Key("tester", nil); err == nil {
		t.Fatal("stored key should be encrypted")
	}
	if _, err := w.Key("tester", []byte("hunter2")); err != nil {
		t.Fatalf("decrypting with the prompted password: %v", err)
	}
}

func TestKeyGenWithoutAliasUsesImplicitAddress(t *testing.T) {
	baseDir := t.TempDir()
	err := run(t, baseDir, &cmds.KeyGen{Args: args.KeyAndAddressGen{
		Scheme:            types.SchemeEd25519,
		UnsafeDontEncrypt: true,
	}})
	if err != nil {
		t.Fatalf("key gen: %v", err)
	}

	w := openWallet(t, baseDir)
	infos, err := w.ListKeys()
	if err != nil {
		t.Fatalf("listing keys: %v", err)
	}
	if len(infos) != 1 {
		t.Fatalf("wallet holds %d keys, want 1", len(infos))
	}
	addr := types.AddressFromPublicKey(infos[0].PublicKey)
	if infos[0].Alias != strings.ToLower(addr.String()) {
		t.Fatalf("alias = %q, want the implicit address %s", infos[0].Alias, addr)
	}
}

func TestKeyFindByEverySelector(t *testing.T) {
	baseDir := t.TempDir()
	w := openWallet(t, baseDir)
	_, pub, err := w.GenKey("tester", types.SchemeEd25519, nil)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	w.Close()
	hexPub := hex.EncodeToString(pub)

	alias := "tester"
	if err := run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{Alias: &alias}}); err != nil {
		t.Fatalf("find by alias: %v", err)
	}
	if err := run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{PublicKey: &hexPub}}); err != nil {
		t.Fatalf("find by public key: %v", err)
	}
	for _, value := range []string{"tester", hexPub} {
		v := value
		if err := run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{Value: &v}}); err != nil {
			t.Fatalf("find by value %q: %v", value, err)
		}
	}

	missing := "nobody"
	if err := run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{Value: &missing}}); err == nil {
		t.Fatal("finding an unknown value should fail")
	}
}

func TestKeyFindShowSecretPromptsForEncrypted(t *testing.T) {
	baseDir := t.TempDir()
	w := openWallet(t, baseDir)
	if _, _, err := w.GenKey("tester", types.SchemeEd25519, []byte("hunter2")); err != nil {
		t.Fatalf("generating key: %v", err)
	}
	w.Close()

	prompts := stubPrompts(t, "hunter2")
	alias := "tester"
	err := run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{
		Alias:            &alias,
		UnsafeShowSecret: true,
	}})
	if err != nil {
		t.Fatalf("find with secret: %v", err)
	}
	if *prompts != 1 {
		t.Fatalf("prompted %d times, want 1", *prompts)
	}

	stubPrompts(t, "wrong")
	err = run(t, baseDir, &cmds.KeyFind{Args: args.KeyFind{
		Alias:            &alias,
		UnsafeShowSecret: true,
	}})
	if err == nil {
		t.Fatal("a wrong password should fail the lookup")
	}
}

func TestKeyExport(t *testing.T) {
	baseDir := t.TempDir()
	w := openWallet(t, baseDir)
	_, _, err := w.GenKey("tester", types.SchemeEd25519, nil)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	w.Close()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(cwd)

	if err := run(t, baseDir, &cmds.KeyExport{Args: args.KeyExport{Alias: "tester"}}); err != nil {
		t.Fatalf("key export: %v", err)
	}
	if _, err := os.Stat(filepath.Join(".", "key_tester")); err != nil {
		t.Fatalf("exported file: %v", err)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	baseDir := t.TempDir()
	addr := types.AddressFromPublicKey(make([]byte, 32))

	err := run(t, baseDir, &cmds.AddressAdd{Args: args.AddressAdd{Alias: "zero", Address: addr}})
	if err != nil {
		t.Fatalf("address add: %v", err)
	}
	// The alias is now taken.
	err = run(t, baseDir, &cmds.AddressAdd{Args: args.AddressAdd{Alias: "zero", Address: addr}})
	if err == nil {
		t.Fatal("re-adding under a taken alias should fail")
	}

	alias := "zero"
	if err := run(t, baseDir, &cmds.AddressFind{Args: args.AddressOrAliasFind{Alias: &alias}}); err != nil {
		t.Fatalf("find by alias: %v", err)
	}
	if err := run(t, baseDir, &cmds.AddressFind{Args: args.AddressOrAliasFind{Address: &addr}}); err != nil {
		t.Fatalf("find by address: %v", err)
	}
	if err := run(t, baseDir, &cmds.AddressList{}); err != nil {
		t.Fatalf("address list: %v", err)
	}
}
