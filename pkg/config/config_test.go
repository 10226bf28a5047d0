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

package config

import (
	"os"
	"testing"
	"time"

	"github.com/velachain/vela/pkg/types"
)

func TestGenLoadRoundTrip(t *testing.T) {
	baseDir := t.TempDir()
	chainID := types.ChainID("vela-test.0000000000")

	c, err := Gen(baseDir, chainID, ModeValidator)
	if err != nil {
		t.Fatalf("Gen: %v", err)
	}
	if c.Ledger.ConsensusTimeoutCommit.Duration != time.Second {
		t.Fatalf("default timeout = %v", c.Ledger.ConsensusTimeoutCommit)
	}

	loaded, err := Load(baseDir, chainID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *c {
		t.Fatalf("loaded %+v != generated %+v", loaded, c)
	}
}

func TestGenRefusesOverwrite(t *testing.T) {
	baseDir := t.TempDir()
	chainID := types.ChainID("vela-test.0000000000")

	if _, err := Gen(baseDir, chainID, ModeFull); err != nil {
		t.Fatalf("Gen: %v", err)
	}
	if _, err := Gen(baseDir, chainID, ModeFull); err == nil {
		t.Fatal("second Gen succeeded; want error")
	}
}

func TestLoadRejectsChainMismatch(t *testing.T) {
	baseDir := t.TempDir()

	c := Default("vela-a.0000000000", ModeFull)
	if err := c.Save(baseDir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := Load(baseDir, "vela-a.0000000000"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load(baseDir, "vela-b.0000000000"); err == nil {
		t.Fatal("Load of absent chain succeeded")
	}

	// A config file claiming another chain's identity is rejected.
	if err := os.MkdirAll(ChainDir(baseDir, "vela-b.0000000000"), 0o700); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(Path(baseDir, "vela-a.0000000000"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(baseDir, "vela-b.0000000000"), data, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(baseDir, "vela-b.0000000000"); err == nil {
		t.Fatal("Load of mismatched config succeeded")
	}
}

func TestParseMode(t *testing.T) {
	for _, ok := range []string{"validator", "full", "seed"} {
		if _, err := ParseMode(ok); err != nil {
			t.Errorf("ParseMode(%q): %v", ok, err)
		}
	}
	for _, bad := range []string{"", "light", "Validator"} {
		if _, err := ParseMode(bad); err == nil {
			t.Errorf("ParseMode(%q) succeeded; want error", bad)
		}
	}
}
