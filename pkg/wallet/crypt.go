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
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/scrypt"
)

// Password-based encryption of stored secret keys. The password is stretched
// with scrypt into a master secret, from which hkdf derives independent
// encryption and authentication keys. The blob layout is
//
//	salt (16) || iv (16) || ciphertext || hmac-sha256 tag (32)
//
// with AES-128-CTR for the cipher and the tag computed over salt, iv and
// ciphertext.

const (
	saltLen   = 16
	aesKeyLen = 16

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

func deriveKeys(password, salt []byte) (ek, mk []byte, err error) {
	secret, err := scrypt.Key(password, salt, scryptN, scryptR, scryptP, aesKeyLen)
	if err != nil {
		return nil, nil, err
	}
	kdf := hkdf.New(sha256.New, secret, nil, nil)
	k := make([]byte, aesKeyLen+sha256.Size)
	if _, err := io.ReadFull(kdf, k); err != nil {
		return nil, nil, err
	}
	return k[:aesKeyLen], k[aesKeyLen:], nil
}

func encrypt(password, plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	ek, mk, err := deriveKeys(password, salt)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, err
	}
	body := make([]byte, saltLen+aes.BlockSize+len(plaintext))
	copy(body, salt)
	iv := body[saltLen : saltLen+aes.BlockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	cipher.NewCTR(block, iv).XORKeyStream(body[saltLen+aes.BlockSize:], plaintext)

	tag := hmac.New(sha256.New, mk)
	tag.Write(body)
	return tag.Sum(body), nil
}

func decrypt(password, blob []byte) ([]byte, error) {
	if len(blob) < saltLen+aes.BlockSize+sha256.Size {
		return nil, ErrDecrypt
	}
	body, tag := blob[:len(blob)-sha256.Size], blob[len(blob)-sha256.Size:]
	ek, mk, err := deriveKeys(password, body[:saltLen])
	if err != nil {
		return nil, err
	}

	want := hmac.New(sha256.New, mk)
	want.Write(body)
	if !hmac.Equal(want.Sum(nil), tag) {
		return nil, ErrDecrypt
	}

	block, err := aes.NewCipher(ek)
	if err != nil {
		return nil, err
	}
	iv := body[saltLen : saltLen+aes.BlockSize]
	plaintext := make([]byte, len(body)-saltLen-aes.BlockSize)
	cipher.NewCTR(block, iv).XORKeyStream(plaintext, body[saltLen+aes.BlockSize:])
	return plaintext, nil
}
