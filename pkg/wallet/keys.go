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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/boltdb/bolt"

	"github.com/velachain/vela/pkg/types"
)

// Stored secret key blobs carry a one-byte prefix marking whether the
// remainder is an encrypted blob or a raw private key.
const (
	storedPlain byte = iota
	storedEncrypted
)

// KeyInfo describes one stored keypair, without its secret material.
type KeyInfo struct {
	Alias     string
	PublicKey ed25519.PublicKey
	Encrypted bool
}

// GenKey generates a keypair under the given alias, storing the secret key
// encrypted under password, or in the clear when password is nil. The
// keypair's implicit address is recorded under the same alias. An empty alias
// stores the keypair under its implicit address. Only ed25519 keys can be
// generated.
func (w *Wallet) GenKey(alias string, scheme types.SchemeType, password []byte) (types.Address, ed25519.PublicKey, error) {
	if scheme != types.SchemeEd25519 {
		return types.Address{}, nil, fmt.Errorf("wallet: %s key generation is not supported", scheme)
	}
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return types.Address{}, nil, fmt.Errorf("wallet: %v", err)
	}

	blob := append([]byte{storedPlain}, priv...)
	if password != nil {
		enc, err := encrypt(password, priv)
		if err != nil {
			return types.Address{}, nil, fmt.Errorf("wallet: %v", err)
		}
		blob = append([]byte{storedEncrypted}, enc...)
	}

	addr := types.AddressFromPublicKey(pub)
	if alias == "" {
		alias = addr.String()
	}
	alias = normalize(alias)
	err = w.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(keysBucket).Get([]byte(alias)) != nil {
			return ErrExists
		}
		if tx.Bucket(addressBucket).Get([]byte(alias)) != nil {
			return ErrExists
		}
		if err := tx.Bucket(keysBucket).Put([]byte(alias), blob); err != nil {
			return err
		}
		if err := tx.Bucket(publicKeyBucket).Put([]byte(alias), pub); err != nil {
			return err
		}
		return tx.Bucket(addressBucket).Put([]byte(alias), addr[:])
	})
	if err != nil {
		return types.Address{}, nil, err
	}
	return addr, pub, nil
}

// Key retrieves the secret key stored under alias, decrypting it with
// password when needed.
func (w *Wallet) Key(alias string, password []byte) (ed25519.PrivateKey, error) {
	var blob []byte
	err := w.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(keysBucket).Get([]byte(normalize(alias)))
		if v == nil {
			return ErrNotFound
		}
		blob = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	switch blob[0] {
	case storedPlain:
		return ed25519.PrivateKey(blob[1:]), nil
	case storedEncrypted:
		priv, err := decrypt(password, blob[1:])
		if err != nil {
			return nil, err
		}
		return ed25519.PrivateKey(priv), nil
	}
	return nil, fmt.Errorf("wallet: unrecognized key encoding %d", blob[0])
}

// PublicKey retrieves the public key stored under alias.
func (w *Wallet) PublicKey(alias string) (ed25519.PublicKey, error) {
	var pub ed25519.PublicKey
	err := w.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(publicKeyBucket).Get([]byte(normalize(alias)))
		if v == nil {
			return ErrNotFound
		}
		pub = append(ed25519.PublicKey(nil), v...)
		return nil
	})
	return pub, err
}

// AliasByPublicKey finds the alias whose stored keypair has the given public
// key.
func (w *Wallet) AliasByPublicKey(pub ed25519.PublicKey) (string, error) {
	var alias string
	err := w.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(publicKeyBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if bytes.Equal(v, pub) {
				alias = string(k)
				return nil
			}
		}
		return ErrNotFound
	})
	return alias, err
}

// ListKeys enumerates stored keypairs, sorted by alias.
func (w *Wallet) ListKeys() ([]KeyInfo, error) {
	var infos []KeyInfo
	err := w.db.View(func(tx *bolt.Tx) error {
		keys := tx.Bucket(keysBucket)
		c := tx.Bucket(publicKeyBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			info := KeyInfo{
				Alias:     string(k),
				PublicKey: append(ed25519.PublicKey(nil), v...),
			}
			if blob := keys.Get(k); blob != nil && blob[0] == storedEncrypted {
				info.Encrypted = true
			}
			infos = append(infos, info)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Alias < infos[j].Alias })
	return infos, nil
}

// ExportKey writes the decrypted secret key to key_<alias> in dir.
func (w *Wallet) ExportKey(alias string, password []byte, dir string) (string, error) {
	priv, err := w.Key(alias, password)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("key_%s", normalize(alias)))
	if err := os.WriteFile(path, priv, 0o600); err != nil {
		return "", fmt.Errorf("wallet: %v", err)
	}
	return path, nil
}

// normalize maps aliases to their canonical lowercase form. Lookups and
// stores agree on case-insensitivity through this.
func normalize(alias string) string {
	return strings.ToLower(alias)
}
