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
	"sort"

	"github.com/boltdb/bolt"

	"github.com/velachain/vela/pkg/types"
)

// AddressInfo names one stored address.
type AddressInfo struct {
	Alias   string
	Address types.Address
}

// AddAddress records a known address under the given alias.
func (w *Wallet) AddAddress(alias string, addr types.Address) error {
	return w.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(addressBucket)
		if b.Get([]byte(normalize(alias))) != nil {
			return ErrExists
		}
		return b.Put([]byte(normalize(alias)), addr[:])
	})
}

// GenAddress generates a fresh keypair under the alias and returns its
// implicit address. It is GenKey under another name, for when the caller
// thinks in addresses.
func (w *Wallet) GenAddress(alias string, password []byte) (types.Address, error) {
	addr, _, err := w.GenKey(alias, types.SchemeEd25519, password)
	return addr, err
}

// Address retrieves the address stored under alias.
func (w *Wallet) Address(alias string) (types.Address, error) {
	var addr types.Address
	err := w.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(addressBucket).Get([]byte(normalize(alias)))
		if v == nil {
			return ErrNotFound
		}
		copy(addr[:], v)
		return nil
	})
	return addr, err
}

// AliasByAddress finds the alias a known address is stored under.
func (w *Wallet) AliasByAddress(addr types.Address) (string, error) {
	var alias string
	err := w.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(addressBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			if bytes.Equal(v, addr[:]) {
				alias = string(k)
				return nil
			}
		}
		return ErrNotFound
	})
	return alias, err
}

// ListAddresses enumerates stored addresses, sorted by alias.
func (w *Wallet) ListAddresses() ([]AddressInfo, error) {
	var infos []AddressInfo
	err := w.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(addressBucket).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var addr types.Address
			copy(addr[:], v)
			infos = append(infos, AddressInfo{Alias: string(k), Address: addr})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Alias < infos[j].Alias })
	return infos, nil
}
