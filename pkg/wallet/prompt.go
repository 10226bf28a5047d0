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
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptPassword reads a password from the controlling terminal without
// echoing it.
func PromptPassword(prompt string) ([]byte, error) {
	fmt.Fprintf(os.Stderr, "%s: ", prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// PromptNewPassword reads a password twice and rejects mismatches. An empty
// password is returned as nil, meaning the key is stored in the clear.
func PromptNewPassword() ([]byte, error) {
	password, err := PromptPassword("Enter your encryption password")
	if err != nil {
		return nil, err
	}
	if len(password) == 0 {
		return nil, nil
	}
	again, err := PromptPassword("Enter same password again")
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(password, again) {
		return nil, errors.New("wallet: passwords do not match")
	}
	return password, nil
}
