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

package client

import (
	"archive/tar"
	"compress/gzip"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/log"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

// preGenesisDirName holds validator keys generated before their chain exists,
// one subdirectory per validator alias.
const preGenesisDirName = "pre-genesis"

// genesisValidator is one validator's entry in a genesis configuration.
type genesisValidator struct {
	NetAddress              string `toml:"net_address"`
	AccountPublicKey        string `toml:"account_public_key"`
	ConsensusPublicKey      string `toml:"consensus_public_key"`
	ProtocolPublicKey       string `toml:"protocol_public_key"`
	CommissionRate          string `toml:"commission_rate"`
	MaxCommissionRateChange string `toml:"max_commission_rate_change"`
}

type genesisConfig struct {
	Validator map[string]genesisValidator `toml:"validator"`
}

// joinNetwork sets the chain up under the base directory: a chain directory
// with a config file, the shared wallet, and optionally the restored keys of
// a pre-genesis validator.
func joinNetwork(logger *log.Logger, global args.Global, a *args.JoinNetwork) error {
	chainDir := config.ChainDir(global.BaseDir, a.ChainID)
	if _, err := os.Stat(chainDir); err == nil {
		return fmt.Errorf("client: chain %s is already set up at %s", a.ChainID, chainDir)
	}

	mode := config.ModeFull
	if a.GenesisValidator != nil {
		mode = config.ModeValidator
	}
	if global.Mode != nil {
		mode = *global.Mode
	}
	if _, err := config.Gen(global.BaseDir, a.ChainID, mode); err != nil {
		return err
	}

	if a.GenesisValidator != nil {
		preDir := filepath.Join(global.BaseDir, preGenesisDirName, *a.GenesisValidator)
		if a.PreGenesisPath != nil {
			preDir = *a.PreGenesisPath
		}
		if err := restorePreGenesisWallet(global.BaseDir, preDir); err != nil {
			return err
		}
		logger.Infof("restored pre-genesis keys of %s", *a.GenesisValidator)
	}

	if !a.DontPrefetchWasm {
		if err := fetchWasms(logger, global, &args.FetchWasms{ChainID: a.ChainID}); err != nil {
			return err
		}
	}
	fmt.Printf("Joined chain %s. The chain directory is %s.\n", a.ChainID, chainDir)
	return nil
}

// restorePreGenesisWallet installs a validator's pre-genesis wallet as the
// base directory's wallet. Refuses to clobber an existing one.
func restorePreGenesisWallet(baseDir, preDir string) error {
	src := filepath.Join(preDir, wallet.FileName)
	dst := filepath.Join(baseDir, wallet.FileName)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("client: a wallet already exists at %s", dst)
	}
	blob, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("client: reading pre-genesis wallet: %v", err)
	}
	if err := os.WriteFile(dst, blob, 0o600); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return nil
}

// fetchWasms makes sure the chain's wasm directory exists and is populated.
// There is no release registry to download from yet, so for now this only
// materializes the directory the node and client read code from.
func fetchWasms(logger *log.Logger, global args.Global, a *args.FetchWasms) error {
	chainDir := config.ChainDir(global.BaseDir, a.ChainID)
	if _, err := os.Stat(chainDir); err != nil {
		return fmt.Errorf("client: chain %s is not set up, join it first", a.ChainID)
	}
	wasmDir := filepath.Join(chainDir, "wasm")
	if err := os.MkdirAll(wasmDir, 0o700); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	logger.Infof("wasm directory ready at %s", wasmDir)
	return nil
}

// initNetwork derives a chain from a genesis configuration: validates the
// validator set, derives the chain id from the genesis bytes, materializes
// the chain directory, and produces a release archive.
func initNetwork(logger *log.Logger, global args.Global, a *args.InitNetwork) error {
	raw, err := os.ReadFile(a.GenesisPath)
	if err != nil {
		return fmt.Errorf("client: reading genesis: %v", err)
	}
	var genesis genesisConfig
	if err := toml.Unmarshal(raw, &genesis); err != nil {
		return fmt.Errorf("client: decoding genesis: %v", err)
	}
	if len(genesis.Validator) == 0 {
		return fmt.Errorf("client: genesis configures no validators")
	}
	if err := checkValidatorAddresses(genesis, a.Localhost, a.AllowDuplicateIP); err != nil {
		return err
	}

	chainID := types.ChainIDFromGenesis(a.ChainIDPrefix, raw)
	chainDir := config.ChainDir(global.BaseDir, chainID)
	if _, err := os.Stat(chainDir); err == nil {
		return fmt.Errorf("client: chain %s already exists at %s", chainID, chainDir)
	}

	cfg := config.Default(chainID, config.ModeFull)
	cfg.SetConsensusTimeoutCommit(a.ConsensusTimeoutCommit)
	if err := cfg.Save(global.BaseDir); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(chainDir, "genesis.toml"), raw, 0o644); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	checksums, err := os.ReadFile(a.WasmChecksumsPath)
	if err != nil {
		return fmt.Errorf("client: reading wasm checksums: %v", err)
	}
	wasmDir := filepath.Join(chainDir, "wasm")
	if err := os.MkdirAll(wasmDir, 0o700); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if err := os.WriteFile(filepath.Join(wasmDir, "checksums.json"), checksums, 0o644); err != nil {
		return fmt.Errorf("client: %v", err)
	}

	if !a.DontArchive {
		dir := "."
		if a.ArchiveDir != nil {
			dir = *a.ArchiveDir
		}
		archive := filepath.Join(dir, chainID.String()+".tar.gz")
		if err := archiveChainDir(chainDir, chainID, archive); err != nil {
			return err
		}
		logger.Infof("release archive written to %s", archive)
	}

	fmt.Printf("Derived chain id: %s\n", chainID)
	return nil
}

// checkValidatorAddresses enforces the address rules of a new network. With
// localhost set every validator must already name a loopback address, the
// convention for local test networks.
func checkValidatorAddresses(genesis genesisConfig, localhost, allowDuplicateIP bool) error {
	seen := make(map[string]string)
	for alias, v := range genesis.Validator {
		addr, err := types.ParseNodeAddress(v.NetAddress)
		if err != nil {
			return fmt.Errorf("client: validator %s: net address: %v", alias, err)
		}
		if localhost {
			ip := net.ParseIP(addr.Host)
			if ip == nil || !ip.IsLoopback() {
				return fmt.Errorf("client: validator %s: %s is not a localhost address", alias, addr.Host)
			}
			continue
		}
		if other, ok := seen[addr.Host]; ok && !allowDuplicateIP {
			return fmt.Errorf("client: validators %s and %s share address %s", other, alias, addr.Host)
		}
		seen[addr.Host] = alias
	}
	return nil
}

// archiveChainDir tars the chain directory into a gzipped release archive,
// with paths rooted at the chain id.
func archiveChainDir(chainDir string, chainID types.ChainID, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	defer f.Close()
	gz := gzip.NewWriter(f)
	tw := tar.NewWriter(gz)

	err = filepath.Walk(chainDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(chainDir, path)
		if err != nil {
			return err
		}
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = filepath.ToSlash(filepath.Join(chainID.String(), rel))
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(tw, src)
		return err
	})
	if err != nil {
		return fmt.Errorf("client: archiving %s: %v", chainDir, err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return nil
}

// initGenesisValidator generates a future validator's keys into a pre-genesis
// wallet and writes the public parts as a genesis configuration fragment.
func initGenesisValidator(logger *log.Logger, global args.Global, a *args.InitGenesisValidator) error {
	if !a.CommissionRate.InUnitInterval() || !a.MaxCommissionRateChange.InUnitInterval() {
		return fmt.Errorf("client: commission rates must lie between 0 and 1")
	}

	preDir := filepath.Join(global.BaseDir, preGenesisDirName, a.Alias)
	if err := os.MkdirAll(preDir, 0o700); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	w, err := wallet.Open(preDir)
	if err != nil {
		return err
	}
	defer w.Close()

	var password []byte
	if !a.UnsafeDontEncrypt {
		if password, err = promptNewPassword(); err != nil {
			return err
		}
	}
	gen := func(suffix string) (string, error) {
		_, pub, err := w.GenKey(a.Alias+suffix, a.KeyScheme, password)
		if err != nil {
			return "", err
		}
		return hex.EncodeToString(pub), nil
	}
	accountKey, err := gen("-account-key")
	if err != nil {
		return err
	}
	consensusKey, err := gen("-consensus-key")
	if err != nil {
		return err
	}
	protocolKey, err := gen("-protocol-key")
	if err != nil {
		return err
	}
	logger.Infof("generated pre-genesis keys for %s", a.Alias)

	fragment := genesisConfig{Validator: map[string]genesisValidator{
		a.Alias: {
			NetAddress:              a.NetAddress.HostPort(),
			AccountPublicKey:        accountKey,
			ConsensusPublicKey:      consensusKey,
			ProtocolPublicKey:       protocolKey,
			CommissionRate:          a.CommissionRate.String(),
			MaxCommissionRateChange: a.MaxCommissionRateChange.String(),
		},
	}}
	path := filepath.Join(preDir, "validator.toml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(fragment); err != nil {
		return fmt.Errorf("client: encoding %s: %v", path, err)
	}

	fmt.Printf("The pre-genesis validator is set up in %s.\n", preDir)
	fmt.Printf("Add this to the network's genesis configuration:\n\n")
	if err := toml.NewEncoder(os.Stdout).Encode(fragment); err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return nil
}
