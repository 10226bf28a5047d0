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

// Package wallet stores keypairs and named addresses on disk. Secret keys are
// encrypted at rest under a user-supplied password, unless stored with an
// empty password.
package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/boltdb/bolt"
)

// FileName is the wallet database's name within the base directory.
const FileName = "wallet.db"

var (
	keysBucket      = []byte("keys")
	publicKeyBucket = []byte("public-keys")
	addressBucket   = []byte("addresses")
)

var (
	// ErrNotFound is returned when no entry exists under the queried alias or
	// value.
	ErrNotFound = errors.New("wallet: not found")
	// ErrExists is returned when storing under an alias that is taken.
	ErrExists = errors.New("wallet: alias already in use")
	// ErrDecrypt is returned when a stored key cannot be decrypted with the
	// given password.
	ErrDecrypt = errors.New("wallet: incorrect password or corrupted key")
)

// A Wallet is an open handle on the wallet database.
type Wallet struct {
	db *bolt.DB
}

// Open opens the wallet under the given base directory, creating an empty one
// on first use.
func Open(baseDir string) (*Wallet, error) {
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, fmt.Errorf("wallet: %v", err)
	}
	db, err := bolt.Open(filepath.Join(baseDir, FileName), 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("wallet: opening %s: %v", filepath.Join(baseDir, FileName), err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{keysBucket, publicKeyBucket, addressBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("wallet: %v", err)
	}
	return &Wallet{db: db}, nil
}

// Close releases the wallet database.
func (w *Wallet) Close() error { return w.db.Close() }
