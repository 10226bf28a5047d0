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

// Package ledger implements the node: chain state storage, the RPC service
// serving queries and accepting transactions, and chain directory lifecycle.
package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/boltdb/bolt"
	"github.com/google/btree"
)

// StateFileName is the state database's name within the chain's db directory.
const StateFileName = "state.db"

var (
	stateBucket = []byte("state")
	txBucket    = []byte("txs")
	metaBucket  = []byte("meta")
)

type kv struct {
	key   string
	value []byte
}

func kvLess(a, b kv) bool { return a.key < b.key }

// A Store holds one chain's key-value state: an in-memory ordered index over
// a write-through on-disk database. Reads are served from memory; every write
// lands on disk before the index is updated.
type Store struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[kv]
	db   *bolt.DB
}

// OpenStore opens the chain state under dbDir, creating it on first use and
// loading the existing state into memory.
func OpenStore(dbDir string) (*Store, error) {
	if err := os.MkdirAll(dbDir, 0o700); err != nil {
		return nil, fmt.Errorf("ledger: %v", err)
	}
	db, err := bolt.Open(filepath.Join(dbDir, StateFileName), 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("ledger: opening state: %v", err)
	}
	s := &Store{tree: btree.NewG(8, kvLess), db: db}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{stateBucket, txBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return tx.Bucket(stateBucket).ForEach(func(k, v []byte) error {
			s.tree.ReplaceOrInsert(kv{key: string(k), value: append([]byte(nil), v...)})
			return nil
		})
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: loading state: %v", err)
	}
	return s, nil
}

// Close releases the on-disk state.
func (s *Store) Close() error { return s.db.Close() }

// Get reads the value stored under key.
func (s *Store) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.tree.Get(kv{key: key})
	if !ok {
		return nil, false
	}
	return item.value, true
}

// Set writes value under key, durably.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("ledger: %v", err)
	}
	s.tree.ReplaceOrInsert(kv{key: key, value: append([]byte(nil), value...)})
	return nil
}

// IteratePrefix visits every stored pair whose key starts with prefix, in key
// order, until fn returns false.
func (s *Store) IteratePrefix(prefix string, fn func(key string, value []byte) bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.tree.AscendGreaterOrEqual(kv{key: prefix}, func(item kv) bool {
		if !strings.HasPrefix(item.key, prefix) {
			return false
		}
		return fn(item.key, item.value)
	})
}

// PutTxResult records a transaction result blob under its hash.
func (s *Store) PutTxResult(hash string, blob []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(txBucket).Put([]byte(hash), blob)
	})
	if err != nil {
		return fmt.Errorf("ledger: %v", err)
	}
	return nil
}

// TxResult reads a recorded transaction result blob.
func (s *Store) TxResult(hash string) ([]byte, bool) {
	var blob []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(txBucket).Get([]byte(hash)); v != nil {
			blob = append([]byte(nil), v...)
		}
		return nil
	})
	return blob, blob != nil
}

// PutMeta stores a chain metadata entry, such as the last block height.
func (s *Store) PutMeta(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("ledger: %v", err)
	}
	return nil
}

// Meta reads a chain metadata entry.
func (s *Store) Meta(key string) ([]byte, bool) {
	var blob []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(metaBucket).Get([]byte(key)); v != nil {
			blob = append([]byte(nil), v...)
		}
		return nil
	})
	return blob, blob != nil
}
