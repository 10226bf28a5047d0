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

package wallet

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"os"
	"testing"

	"github.com/velachain/vela/pkg/types"
)

func openTestWallet(t *testing.T) *Wallet {
	t.Helper()
	w, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestGenKeyRoundTrip(t *testing.T) {
	w := openTestWallet(t)
	password := []byte("hunter2")

	addr, pub, err := w.GenKey("Validator-Key", types.SchemeEd25519, password)
	if err != nil {
		t.Fatalf("GenKey: %v", err)
	}
	if types.AddressFromPublicKey(pub) != addr {
		t.Fatal("returned address does not match public key")
	}

	// Aliases are case-insensitive.
	priv, err := w.Key("validator-key", password)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if !bytes.Equal(priv.Public().(ed25519.PublicKey), pub) {
		t.Fatal("retrieved secret key does not match public key")
	}

	if _, err := w.Key("validator-key", []byte("wrong")); !errors.Is(err, ErrDecrypt) {
		t.Fatalf("wrong password: err = %v; want ErrDecrypt", err)
	}

	// The implicit address is recorded under the same alias.
	got, err := w.Address("validator-key")
	if err != nil || got != addr {
		t.Fatalf("Address = %v, %v; want %v", got, err, addr)
	}
}

func TestGenKeyUnencrypted(t *testing.T) {
	w := openTestWallet(t)
	_, pub, err := w.GenKey("throwaway", types.SchemeEd25519, nil)
	if err != nil {
		t.Fatalf("GenKey: %v", err)
	}
	priv, err := w.Key("throwaway", nil)
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if !bytes.Equal(priv.Public().(ed25519.PublicKey), pub) {
		t.Fatal("retrieved secret key does not match public key")
	}
	infos, err := w.ListKeys()
	if err != nil || len(infos) != 1 {
		t.Fatalf("ListKeys = %v, %v", infos, err)
	}
	if infos[0].Encrypted {
		t.Fatal("unencrypted key listed as encrypted")
	}
}

func TestGenKeyRejectsSecp256k1(t *testing.T) {
	w := openTestWallet(t)
	if _, _, err := w.GenKey("k", types.SchemeSecp256k1, nil); err == nil {
		t.Fatal("secp256k1 generation succeeded; want error")
	}
}

func TestGenKeyRejectsTakenAlias(t *testing.T) {
	w := openTestWallet(t)
	if _, _, err := w.GenKey("a", types.SchemeEd25519, nil); err != nil {
		t.Fatal(err)
	}
	if _, _, err := w.GenKey("A", types.SchemeEd25519, nil); !errors.Is(err, ErrExists) {
		t.Fatalf("err = %v; want ErrExists", err)
	}
}

func TestAliasByPublicKey(t *testing.T) {
	w := openTestWallet(t)
	_, pub, err := w.GenKey("mine", types.SchemeEd25519, nil)
	if err != nil {
		t.Fatal(err)
	}
	alias, err := w.AliasByPublicKey(pub)
	if err != nil || alias != "mine" {
		t.Fatalf("AliasByPublicKey = %q, %v", alias, err)
	}
	other, _, _ := ed25519.GenerateKey(nil)
	if _, err := w.AliasByPublicKey(other); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v; want ErrNotFound", err)
	}
}

func TestAddressBook(t *testing.T) {
	w := openTestWallet(t)
	pub, _, _ := ed25519.GenerateKey(nil)
	addr := types.AddressFromPublicKey(pub)

	if err := w.AddAddress("exchange", addr); err != nil {
		t.Fatalf("AddAddress: %v", err)
	}
	if err := w.AddAddress("exchange", addr); !errors.Is(err, ErrExists) {
		t.Fatalf("duplicate alias: err = %v; want ErrExists", err)
	}
	got, err := w.Address("exchange")
	if err != nil || got != addr {
		t.Fatalf("Address = %v, %v", got, err)
	}
	alias, err := w.AliasByAddress(addr)
	if err != nil || alias != "exchange" {
		t.Fatalf("AliasByAddress = %q, %v", alias, err)
	}

	if _, err := w.GenAddress("fresh", nil); err != nil {
		t.Fatalf("GenAddress: %v", err)
	}
	infos, err := w.ListAddresses()
	if err != nil || len(infos) != 2 {
		t.Fatalf("ListAddresses = %v, %v", infos, err)
	}
	if infos[0].Alias != "exchange" || infos[1].Alias != "fresh" {
		t.Fatalf("aliases out of order: %v", infos)
	}
}

func TestExportKey(t *testing.T) {
	w := openTestWallet(t)
	_, pub, err := w.GenKey("exported", types.SchemeEd25519, []byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	path, err := w.ExportKey("exported", []byte("pw"), dir)
	if err != nil {
		t.Fatalf("ExportKey: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ed25519.PrivateKey(raw).Public().(ed25519.PublicKey), pub) {
		t.Fatal("exported key does not match public key")
	}
}

func TestCryptRoundTrip(t *testing.T) {
	blob, err := encrypt([]byte("pw"), []byte("plaintext"))
	if err != nil {
		t.Fatal(err)
	}
	out, err := decrypt([]byte("pw"), blob)
	if err != nil || string(out) != "plaintext" {
		t.Fatalf("decrypt = %q, %v", out, err)
	}

	// Any bit flip must be rejected by the authentication tag.
	blob[5] ^= 1
	if _, err := decrypt([]byte("pw"), blob); !errors.Is(err, ErrDecrypt) {
		t.Fatalf("tampered blob: err = %v; want ErrDecrypt", err)
	}
}
