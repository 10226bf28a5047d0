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

package args

import (
	"time"

	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/types"
)

// JoinNetwork sets up the local chain directory from a released network
// configuration.
type JoinNetwork struct {
	ChainID types.ChainID
	// GenesisValidator, if set, restores this pre-genesis validator's keys
	// into the chain's wallet.
	GenesisValidator *string
	PreGenesisPath   *string
	DontPrefetchWasm bool
}

func (a *JoinNetwork) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		chainIDArg.Def("The chain to join."),
		genesisValidatorOpt.Def("The alias of the genesis validator that you want to set up as."),
		preGenesisPathOpt.Def("The path to the pre-genesis directory of a genesis validator."),
		dontPrefetchWasmFlag.Def("Do not pre-fetch the chain's transaction code."),
	)
}

func (a *JoinNetwork) Parse(m *cli.Matches) error {
	var err error
	if a.ChainID, err = chainIDArg.Parse(m); err != nil {
		return err
	}
	if a.GenesisValidator, err = genesisValidatorOpt.Parse(m); err != nil {
		return err
	}
	if a.PreGenesisPath, err = preGenesisPathOpt.Parse(m); err != nil {
		return err
	}
	a.DontPrefetchWasm = dontPrefetchWasmFlag.Parse(m)
	return nil
}

// FetchWasms downloads the transaction code of an already-joined chain.
type FetchWasms struct {
	ChainID types.ChainID
}

func (a *FetchWasms) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		chainIDArg.Def("The chain whose transaction code to fetch."),
	)
}

func (a *FetchWasms) Parse(m *cli.Matches) error {
	var err error
	a.ChainID, err = chainIDArg.Parse(m)
	return err
}

// InitNetwork materializes a new chain from a genesis configuration: the
// derived chain id, per-validator chain directories, and a release archive.
type InitNetwork struct {
	GenesisPath            string
	WasmChecksumsPath      string
	ChainIDPrefix          types.ChainIDPrefix
	UnsafeDontEncrypt      bool
	ConsensusTimeoutCommit time.Duration
	// Localhost assigns every validator a localhost address, for local
	// test networks.
	Localhost        bool
	AllowDuplicateIP bool
	DontArchive      bool
	ArchiveDir       *string
}

func (a *InitNetwork) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		genesisPathArg.Def("The path to the source genesis configuration."),
		wasmChecksumsPathArg.Def("The path to the transaction code checksums file."),
		chainIDPrefixArg.Def("The chain id prefix. The full chain id appends a genesis digest."),
		unsafeDontEncryptFlag.Def("UNSAFE: Do not encrypt the generated keypairs. "+
			"Do not use this for keys used in a live network."),
		consensusTimeoutCommitArg.Def("The interval between committing a block and starting on the next."),
		localhostFlag.Def("Use localhost addresses for every validator, for a local test network."),
		allowDuplicateIPFlag.Def("Toleration of duplicate addresses among validators."),
		dontArchiveFlag.Def("Do not produce the release archive."),
		archiveDirOpt.Def("The directory the release archive is written into. "+
			"Defaults to the current working directory."),
	)
}

func (a *InitNetwork) Parse(m *cli.Matches) error {
	var err error
	if a.GenesisPath, err = genesisPathArg.Parse(m); err != nil {
		return err
	}
	if a.WasmChecksumsPath, err = wasmChecksumsPathArg.Parse(m); err != nil {
		return err
	}
	if a.ChainIDPrefix, err = chainIDPrefixArg.Parse(m); err != nil {
		return err
	}
	a.UnsafeDontEncrypt = unsafeDontEncryptFlag.Parse(m)
	if a.ConsensusTimeoutCommit, err = consensusTimeoutCommitArg.Parse(m); err != nil {
		return err
	}
	a.Localhost = localhostFlag.Parse(m)
	a.AllowDuplicateIP = allowDuplicateIPFlag.Parse(m)
	a.DontArchive = dontArchiveFlag.Parse(m)
	a.ArchiveDir, err = archiveDirOpt.Parse(m)
	return err
}

// InitGenesisValidator generates a future validator's keys before the chain
// exists and writes the public parts for inclusion in a genesis
// configuration.
type InitGenesisValidator struct {
	Alias                   string
	CommissionRate          types.Decimal
	MaxCommissionRateChange types.Decimal
	NetAddress              types.NodeAddress
	UnsafeDontEncrypt       bool
	KeyScheme               types.SchemeType
}

func (a *InitGenesisValidator) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		aliasArg.Def("The validator's alias."),
		commissionRateArg.Def("The commission rate charged by the validator on delegation rewards, "+
			"a decimal between 0 and 1."),
		maxCommissionChangeArg.Def("The maximum change per epoch in the commission rate."),
		netAddressArg.Def(`The validator's peer-to-peer address as "{host}:{port}".`),
		unsafeDontEncryptFlag.Def("UNSAFE: Do not encrypt the generated keypairs. "+
			"Do not use this for keys used in a live network."),
		schemeArg.Def(`The key scheme for generated keys, either "ed25519" or "secp256k1".`),
	)
}

func (a *InitGenesisValidator) Parse(m *cli.Matches) error {
	var err error
	if a.Alias, err = aliasArg.Parse(m); err != nil {
		return err
	}
	if a.CommissionRate, err = commissionRateArg.Parse(m); err != nil {
		return err
	}
	if a.MaxCommissionRateChange, err = maxCommissionChangeArg.Parse(m); err != nil {
		return err
	}
	if a.NetAddress, err = netAddressArg.Parse(m); err != nil {
		return err
	}
	a.UnsafeDontEncrypt = unsafeDontEncryptFlag.Parse(m)
	a.KeyScheme, err = schemeArg.Parse(m)
	return err
}
