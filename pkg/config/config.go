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

// Package config reads and writes per-chain node configuration. Each chain
// gets its own directory under the base directory, holding a TOML config file
// alongside the chain's data.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/velachain/vela/pkg/types"
)

// FileName is the config file's name within a chain directory.
const FileName = "config.toml"

// A Mode determines how the node participates in consensus.
type Mode string

const (
	// ModeValidator takes part in consensus and signs blocks.
	ModeValidator Mode = "validator"
	// ModeFull follows the chain and serves queries without validating.
	ModeFull Mode = "full"
	// ModeSeed serves peer addresses and nothing else.
	ModeSeed Mode = "seed"
)

// ParseMode accepts the named node modes.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeValidator, ModeFull, ModeSeed:
		return Mode(s), nil
	}
	return "", fmt.Errorf("mode must be %q, %q or %q", ModeValidator, ModeFull, ModeSeed)
}

func (m Mode) String() string { return string(m) }

// Config is one chain's node configuration.
type Config struct {
	ChainID string       `toml:"chain_id"`
	Mode    Mode         `toml:"mode"`
	Ledger  LedgerConfig `toml:"ledger"`
}

// LedgerConfig configures the ledger service of a node.
type LedgerConfig struct {
	// ListenAddress is the RPC endpoint the node serves on.
	ListenAddress string `toml:"listen_address"`
	// DBDir is the chain database directory, relative to the chain directory.
	DBDir string `toml:"db_dir"`
	// ConsensusTimeoutCommit is how long the node waits after committing a
	// block before starting on the next.
	ConsensusTimeoutCommit duration `toml:"consensus_timeout_commit"`
}

// duration wraps time.Duration with TOML text marshalling.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration a fresh chain directory starts with.
func Default(chainID types.ChainID, mode Mode) *Config {
	return &Config{
		ChainID: chainID.String(),
		Mode:    mode,
		Ledger: LedgerConfig{
			ListenAddress:          types.DefaultLedgerAddress.String(),
			DBDir:                  "db",
			ConsensusTimeoutCommit: duration{time.Second},
		},
	}
}

// SetConsensusTimeoutCommit overrides the commit interval.
func (c *Config) SetConsensusTimeoutCommit(d time.Duration) {
	c.Ledger.ConsensusTimeoutCommit = duration{d}
}

// ChainDir is the directory holding one chain's config and data.
func ChainDir(baseDir string, chainID types.ChainID) string {
	return filepath.Join(baseDir, chainID.String())
}

// Path is the config file location for one chain.
func Path(baseDir string, chainID types.ChainID) string {
	return filepath.Join(ChainDir(baseDir, chainID), FileName)
}

// Load reads the chain's config file from under the base directory.
func Load(baseDir string, chainID types.ChainID) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(Path(baseDir, chainID), &c); err != nil {
		return nil, fmt.Errorf("config: loading %s: %v", Path(baseDir, chainID), err)
	}
	if c.ChainID != chainID.String() {
		return nil, fmt.Errorf("config: %s is for chain %q, not %q", Path(baseDir, chainID), c.ChainID, chainID)
	}
	return &c, nil
}

// Save writes the config file into the chain directory, creating the
// directory if needed.
func (c *Config) Save(baseDir string) error {
	chainID := types.ChainID(c.ChainID)
	if err := os.MkdirAll(ChainDir(baseDir, chainID), 0o700); err != nil {
		return fmt.Errorf("config: %v", err)
	}
	f, err := os.Create(Path(baseDir, chainID))
	if err != nil {
		return fmt.Errorf("config: %v", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config: encoding %s: %v", Path(baseDir, chainID), err)
	}
	return nil
}

// Gen materializes a default config file for the chain unless one already
// exists.
func Gen(baseDir string, chainID types.ChainID, mode Mode) (*Config, error) {
	if _, err := os.Stat(Path(baseDir, chainID)); err == nil {
		return nil, fmt.Errorf("config: %s already exists", Path(baseDir, chainID))
	}
	c := Default(chainID, mode)
	if err := c.Save(baseDir); err != nil {
		return nil, err
	}
	return c, nil
}
