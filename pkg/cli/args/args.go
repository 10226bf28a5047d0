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

// Package args declares the command-line arguments of the vela executables:
// one immutable descriptor per argument key, shared by every command that
// accepts the key, plus the argument structs commands parse their input into.
//
// Wallet-resolved references (addresses, keypairs, public keys that may be
// given by alias) are carried raw here; resolving them against the wallet is
// the context package's concern and happens only after matching succeeds.
package args

import (
	"os"
	"strconv"
	"time"

	"github.com/velachain/vela/pkg/cli"
	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/types"
)

// DefaultBaseDir is the per-user state directory used when neither --base-dir
// nor VELA_BASE_DIR is given. It is relative to the working directory.
const DefaultBaseDir = ".vela"

// NativeTokenAlias is the well-known wallet alias of the chain's native
// token, used as the fee token when none is given.
const NativeTokenAlias = "vela"

// A WalletAddress is an account reference as typed by the user: either a
// wallet alias or a literal address. It resolves to a types.Address.
type WalletAddress struct{ Raw string }

// A WalletKeypair is a signing key reference: either a wallet alias or a
// literal address whose key the wallet holds.
type WalletKeypair struct{ Raw string }

// A WalletPublicKey is a public key reference: either a wallet alias or
// literal public key text.
type WalletPublicKey struct{ Raw string }

func parseString(raw string) (string, error) { return raw, nil }

func parseUint64(raw string) (uint64, error) { return strconv.ParseUint(raw, 10, 64) }

func parseWalletAddress(raw string) (WalletAddress, error) { return WalletAddress{Raw: raw}, nil }

func parseWalletKeypair(raw string) (WalletKeypair, error) { return WalletKeypair{Raw: raw}, nil }

func parseWalletPublicKey(raw string) (WalletPublicKey, error) {
	return WalletPublicKey{Raw: raw}, nil
}

// The argument descriptor registry. One descriptor per key; commands that
// accept the same key share the descriptor, so its meaning and parse are
// uniform across the whole suite.
var (
	addressArg                = cli.NewArg("address", parseWalletAddress)
	aliasArg                  = cli.NewArg("alias", parseString)
	aliasOpt                  = aliasArg.Opt()
	allowDuplicateIPFlag      = cli.Flag("allow-duplicate-ip")
	amountArg                 = cli.NewArg("amount", types.ParseAmount)
	archiveDirOpt             = cli.NewArg("archive-dir", parseString).Opt()
	baseDirArg                = cli.NewArg("base-dir", parseString).EnvDefault("VELA_BASE_DIR", DefaultBaseDir)
	broadcastOnlyFlag         = cli.Flag("broadcast-only")
	chainIDArg                = cli.NewArg("chain-id", types.ParseChainID)
	chainIDOpt                = chainIDArg.Opt()
	chainIDPrefixArg          = cli.NewArg("chain-prefix", types.ParseChainIDPrefix)
	codePathArg               = cli.NewArg("code-path", parseString)
	codePathOpt               = codePathArg.Opt()
	commissionRateArg         = cli.NewArg("commission-rate", types.ParseDecimal)
	consensusTimeoutCommitArg = cli.NewArg("consensus-timeout-commit", time.ParseDuration).Default(time.Second)
	dataPathArg               = cli.NewArg("data-path", parseString)
	dataPathOpt               = dataPathArg.Opt()
	decryptFlag               = cli.Flag("decrypt")
	dontArchiveFlag           = cli.Flag("dont-archive")
	dontPrefetchWasmFlag      = cli.Flag("dont-prefetch-wasm")
	dryRunFlag                = cli.Flag("dry-run")
	epochOpt                  = cli.NewArg("epoch", types.ParseEpoch).Opt()
	feeAmountArg              = cli.NewArg("fee-amount", types.ParseAmount).Default(0)
	feeTokenArg               = cli.NewArg("fee-token", parseWalletAddress).Default(WalletAddress{Raw: NativeTokenAlias})
	forceFlag                 = cli.Flag("force")
	gasLimitArg               = cli.NewArg("gas-limit", types.ParseGasLimit).Default(0)
	genesisPathArg            = cli.NewArg("genesis-path", parseString)
	genesisValidatorOpt       = cli.NewArg("genesis-validator", parseString).Opt()
	ledgerAddressArg          = cli.NewArg("ledger-address", types.ParseNodeAddress).Default(types.DefaultLedgerAddress)
	localhostFlag             = cli.Flag("localhost")
	logDirOpt                 = cli.NewArg("log-dir", parseString).Opt()
	maxCommissionChangeArg    = cli.NewArg("max-commission-rate-change", types.ParseDecimal)
	modeOpt                   = cli.NewArg("mode", config.ParseMode).Opt()
	netAddressArg             = cli.NewArg("net-address", types.ParseNodeAddress)
	offlineFlag               = cli.Flag("offline")
	ownerOpt                  = cli.NewArg("owner", parseWalletAddress).Opt()
	preGenesisPathOpt         = cli.NewArg("pre-genesis-path", parseString).Opt()
	proposalIDOpt             = cli.NewArg("proposal-id", parseUint64).Opt()
	protocolKeyOpt            = cli.NewArg("protocol-key", parseWalletPublicKey).Opt()
	publicKeyArg              = cli.NewArg("public-key", parseWalletPublicKey)
	rawAddressArg             = cli.NewArg("address", types.ParseAddress)
	rawAddressOpt             = rawAddressArg.Opt()
	rawPublicKeyOpt           = cli.NewArg("public-key", parseString).Opt()
	schemeArg                 = cli.NewArg("scheme", types.ParseSchemeType).Default(types.SchemeEd25519)
	signerOpt                 = cli.NewArg("signer", parseWalletAddress).Opt()
	signingKeyOpt             = cli.NewArg("signing-key", parseWalletKeypair).Opt()
	sourceArg                 = cli.NewArg("source", parseWalletAddress)
	sourceOpt                 = sourceArg.Opt()
	storageKeyArg             = cli.NewArg("storage-key", types.ParseKey)
	subPrefixOpt              = cli.NewArg("sub-prefix", parseString).Opt()
	targetArg                 = cli.NewArg("target", parseWalletAddress)
	tokenArg                  = cli.NewArg("token", parseWalletAddress)
	tokenOpt                  = tokenArg.Opt()
	txHashArg                 = cli.NewArg("tx-hash", parseString)
	unsafeDontEncryptFlag     = cli.Flag("unsafe-dont-encrypt")
	unsafeShowSecretFlag      = cli.Flag("unsafe-show-secret")
	accountKeyOpt             = cli.NewArg("account-key", parseWalletPublicKey).Opt()
	consensusKeyOpt           = cli.NewArg("consensus-key", parseWalletKeypair).Opt()
	validatorArg              = cli.NewArg("validator", parseWalletAddress)
	validatorOpt              = validatorArg.Opt()
	validatorCodePathOpt      = cli.NewArg("validator-code-path", parseString).Opt()
	valueOpt                  = cli.NewArg("value", parseString).Opt()
	voteArg                   = cli.NewArg("vote", types.ParseProposalVote)
	wasmChecksumsPathArg      = cli.NewArg("wasm-checksums-path", parseString)
	wasmDirOpt                = cli.NewArg("wasm-dir", parseString).Opt()
)

// Global is the process-wide argument set, declared on the root command of
// every executable and therefore accepted anywhere on the command line.
type Global struct {
	// ChainID, if set, overrides the configured chain.
	ChainID *types.ChainID
	// BaseDir is the state directory holding per-chain subdirectories.
	BaseDir string
	// WasmDir, if set, overrides the chain's transaction code directory.
	WasmDir *string
	// Mode, if set, overrides the configured node mode.
	Mode *config.Mode
	// LogDir, if set, additionally writes size-rotated log files there.
	LogDir *string
}

func (a *Global) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		chainIDOpt.Def("The chain to connect to."),
		baseDirArg.Def("The directory holding the wallet and per-chain state. "+
			"Defaults to $VELA_BASE_DIR when set."),
		wasmDirOpt.Def("Directory with built transaction and validity predicate code. "+
			"Defaults to $VELA_WASM_DIR when set, else the chain's own wasm directory."),
		modeOpt.Def(`The mode in which to run the node: "validator", "full" or "seed".`),
		logDirOpt.Def("Directory for size-rotated log files, in addition to stderr."),
	)
}

func (a *Global) Parse(m *cli.Matches) error {
	var err error
	if a.ChainID, err = chainIDOpt.Parse(m); err != nil {
		return err
	}
	if a.BaseDir, err = baseDirArg.Parse(m); err != nil {
		return err
	}
	if a.WasmDir, err = wasmDirOpt.Parse(m); err != nil {
		return err
	}
	if a.WasmDir == nil {
		if dir, ok := os.LookupEnv("VELA_WASM_DIR"); ok {
			a.WasmDir = &dir
		}
	}
	if a.Mode, err = modeOpt.Parse(m); err != nil {
		return err
	}
	a.LogDir, err = logDirOpt.Parse(m)
	return err
}

// Tx is the common argument set of every transaction-submitting command.
type Tx struct {
	// DryRun simulates the transaction without submitting it.
	DryRun bool
	// Force submits even when client-side validation fails.
	Force bool
	// BroadcastOnly skips waiting for the transaction result.
	BroadcastOnly bool
	// LedgerAddress is the node to submit through.
	LedgerAddress types.NodeAddress
	// InitializedAccountAlias names any account the transaction initializes.
	InitializedAccountAlias *string
	FeeAmount               types.Amount
	FeeToken                WalletAddress
	GasLimit                types.GasLimit
	// SigningKey signs the transaction directly; mutually exclusive with
	// Signer, whose key is looked up in the wallet.
	SigningKey *WalletKeypair
	Signer     *WalletAddress
}

func (a *Tx) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		dryRunFlag.Def("Simulate the transaction application."),
		forceFlag.Def("Submit the transaction even if it appears invalid."),
		broadcastOnlyFlag.Def("Do not wait for the transaction to be applied."),
		ledgerAddressArg.Def(`Address of a ledger node as "{scheme}://{host}:{port}". `+
			"If the scheme is not supplied, it is assumed to be TCP."),
		aliasOpt.Def("An alias to store any account initialized by the transaction under."),
		feeAmountArg.Def("The amount paid for the inclusion of the transaction."),
		feeTokenArg.Def("The token paying the transaction fee."),
		gasLimitArg.Def("The maximum amount of gas the transaction may use."),
		signingKeyOpt.Def("Sign the transaction with the given key. "+
			"An alias or an address whose key the wallet holds.").
			ConflictsWith("signer"),
		signerOpt.Def("Sign the transaction with the key of the given address.").
			ConflictsWith("signing-key"),
	)
}

func (a *Tx) Parse(m *cli.Matches) error {
	a.DryRun = dryRunFlag.Parse(m)
	a.Force = forceFlag.Parse(m)
	a.BroadcastOnly = broadcastOnlyFlag.Parse(m)
	var err error
	if a.LedgerAddress, err = ledgerAddressArg.Parse(m); err != nil {
		return err
	}
	if a.InitializedAccountAlias, err = aliasOpt.Parse(m); err != nil {
		return err
	}
	if a.FeeAmount, err = feeAmountArg.Parse(m); err != nil {
		return err
	}
	if a.FeeToken, err = feeTokenArg.Parse(m); err != nil {
		return err
	}
	if a.GasLimit, err = gasLimitArg.Parse(m); err != nil {
		return err
	}
	if a.SigningKey, err = signingKeyOpt.Parse(m); err != nil {
		return err
	}
	a.Signer, err = signerOpt.Parse(m)
	return err
}

// Query is the common argument set of every query command.
type Query struct {
	// LedgerAddress is the node to query.
	LedgerAddress types.NodeAddress
}

func (a *Query) Def(c *cli.Command) *cli.Command {
	return c.Arg(
		ledgerAddressArg.Def(`Address of a ledger node as "{scheme}://{host}:{port}". ` +
			"If the scheme is not supplied, it is assumed to be TCP."),
	)
}

func (a *Query) Parse(m *cli.Matches) error {
	var err error
	a.LedgerAddress, err = ledgerAddressArg.Parse(m)
	return err
}
