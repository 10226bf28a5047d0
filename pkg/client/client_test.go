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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/cli/context"
	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/log"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

func noPasswords(t *testing.T) {
	t.Helper()
	orig := promptNewPassword
	promptNewPassword = func() ([]byte, error) { return nil, nil }
	t.Cleanup(func() { promptNewPassword = orig })
}

func testClient(t *testing.T) *Client {
	t.Helper()
	w, err := wallet.Open(t.TempDir())
	if err != nil {
		t.Fatalf("opening wallet: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return &Client{
		logger: log.Discarder(),
		ctx:    &context.Context{ChainID: types.DefaultChainID, Wallet: w},
	}
}

func TestBondPayloadPicksSigner(t *testing.T) {
	c := testClient(t)
	validator, err := c.ctx.Wallet.GenAddress("validator", nil)
	if err != nil {
		t.Fatalf("generating address: %v", err)
	}
	source, err := c.ctx.Wallet.GenAddress("delegator", nil)
	if err != nil {
		t.Fatalf("generating address: %v", err)
	}

	data, signer, err := c.bondPayload(args.WalletAddress{Raw: "validator"}, nil, types.WholeTokens(7))
	if err != nil {
		t.Fatalf("bondPayload: %v", err)
	}
	if signer.Raw != "validator" {
		t.Fatalf("self-bond signer = %q, want validator", signer.Raw)
	}
	var payload bondTx
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Validator != validator.String() || payload.Source != "" {
		t.Fatalf("self-bond payload = %+v", payload)
	}
	if payload.Amount != uint64(types.WholeTokens(7)) {
		t.Fatalf("amount = %d", payload.Amount)
	}

	src := args.WalletAddress{Raw: "delegator"}
	data, signer, err = c.bondPayload(args.WalletAddress{Raw: "validator"}, &src, types.WholeTokens(1))
	if err != nil {
		t.Fatalf("bondPayload: %v", err)
	}
	if signer.Raw != "delegator" {
		t.Fatalf("delegation signer = %q, want delegator", signer.Raw)
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Source != source.String() {
		t.Fatalf("delegation source = %q, want %s", payload.Source, source)
	}
}

func TestDryRunSubmitsNothing(t *testing.T) {
	c := testClient(t)
	for _, alias := range []string{"a", "b", "tok"} {
		if _, err := c.ctx.Wallet.GenAddress(alias, nil); err != nil {
			t.Fatalf("generating address: %v", err)
		}
	}

	// The client holds no connection, so anything short of a dry run
	// would panic on the nil service.
	err := c.submitTransfer(&args.TxTransfer{
		Tx:     args.Tx{DryRun: true},
		Source: args.WalletAddress{Raw: "a"},
		Target: args.WalletAddress{Raw: "b"},
		Token:  args.WalletAddress{Raw: "tok"},
		Amount: types.WholeTokens(1),
	})
	if err != nil {
		t.Fatalf("dry run transfer: %v", err)
	}
}

func writeVote(t *testing.T, folder, name string, vote offlineVoteFile) {
	t.Helper()
	blob, err := json.Marshal(vote)
	if err != nil {
		t.Fatalf("encoding vote: %v", err)
	}
	if err := os.WriteFile(filepath.Join(folder, name), blob, 0o644); err != nil {
		t.Fatalf("writing vote: %v", err)
	}
}

func TestOfflineTallyCountsMatchingVotesOnly(t *testing.T) {
	folder := t.TempDir()
	proposal := []byte(`{"title": "fund the guild"}`)
	if err := os.WriteFile(filepath.Join(folder, "proposal"), proposal, 0o644); err != nil {
		t.Fatalf("writing proposal: %v", err)
	}
	sum := sha256.Sum256(proposal)
	digest := hex.EncodeToString(sum[:])

	writeVote(t, folder, "proposal-vote-1", offlineVoteFile{Voter: "1", Vote: "yay", ProposalSha256: digest})
	writeVote(t, folder, "proposal-vote-2", offlineVoteFile{Voter: "2", Vote: "yay", ProposalSha256: digest})
	writeVote(t, folder, "proposal-vote-3", offlineVoteFile{Voter: "3", Vote: "nay", ProposalSha256: digest})
	// A ballot against a different proposal revision must not count.
	writeVote(t, folder, "proposal-vote-4", offlineVoteFile{Voter: "4", Vote: "nay", ProposalSha256: "beef"})

	yay, nay, err := tallyOfflineVotes(folder)
	if err != nil {
		t.Fatalf("tallying: %v", err)
	}
	if yay != 2 || nay != 1 {
		t.Fatalf("tally = %d yay, %d nay, want 2 yay, 1 nay", yay, nay)
	}
}

func TestOfflineTallyWithoutProposal(t *testing.T) {
	if _, _, err := tallyOfflineVotes(t.TempDir()); err == nil {
		t.Fatal("tally without a proposal file should fail")
	}
}

func TestInitGenesisValidatorWritesFragment(t *testing.T) {
	noPasswords(t)
	baseDir := t.TempDir()
	a := &args.InitGenesisValidator{
		Alias:      "bertha",
		NetAddress: types.NodeAddress{Scheme: "tcp", Host: "192.168.1.2", Port: "26656"},
		KeyScheme:  types.SchemeEd25519,
	}
	if err := initGenesisValidator(log.Discarder(), args.Global{BaseDir: baseDir}, a); err != nil {
		t.Fatalf("initGenesisValidator: %v", err)
	}

	preDir := filepath.Join(baseDir, preGenesisDirName, "bertha")
	if _, err := os.Stat(filepath.Join(preDir, wallet.FileName)); err != nil {
		t.Fatalf("pre-genesis wallet: %v", err)
	}
	var fragment genesisConfig
	if _, err := toml.DecodeFile(filepath.Join(preDir, "validator.toml"), &fragment); err != nil {
		t.Fatalf("decoding fragment: %v", err)
	}
	v, ok := fragment.Validator["bertha"]
	if !ok {
		t.Fatalf("fragment names validators %v, want bertha", fragment.Validator)
	}
	if v.NetAddress != "192.168.1.2:26656" {
		t.Fatalf("net address = %q", v.NetAddress)
	}
	keys := map[string]bool{v.AccountPublicKey: true, v.ConsensusPublicKey: true, v.ProtocolPublicKey: true}
	if len(keys) != 3 || keys[""] {
		t.Fatalf("want three distinct public keys, got %+v", v)
	}
}

func writeGenesis(t *testing.T, dir string, genesis genesisConfig) (path string, raw []byte) {
	t.Helper()
	path = filepath.Join(dir, "genesis.toml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating genesis: %v", err)
	}
	if err := toml.NewEncoder(f).Encode(genesis); err != nil {
		t.Fatalf("encoding genesis: %v", err)
	}
	f.Close()
	raw, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading genesis back: %v", err)
	}
	return path, raw
}

func TestInitNetworkDerivesChainID(t *testing.T) {
	scratch := t.TempDir()
	baseDir := t.TempDir()
	genesisPath, raw := writeGenesis(t, scratch, genesisConfig{Validator: map[string]genesisValidator{
		"bertha":  {NetAddress: "10.0.0.1:26656"},
		"christel": {NetAddress: "10.0.0.2:26656"},
	}})
	checksumsPath := filepath.Join(scratch, "checksums.json")
	if err := os.WriteFile(checksumsPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing checksums: %v", err)
	}

	prefix, err := types.ParseChainIDPrefix("unit")
	if err != nil {
		t.Fatalf("parsing prefix: %v", err)
	}
	a := &args.InitNetwork{
		GenesisPath:       genesisPath,
		WasmChecksumsPath: checksumsPath,
		ChainIDPrefix:     prefix,
		DontArchive:       true,
	}
	if err := initNetwork(log.Discarder(), args.Global{BaseDir: baseDir}, a); err != nil {
		t.Fatalf("initNetwork: %v", err)
	}

	chainID := types.ChainIDFromGenesis(prefix, raw)
	chainDir := config.ChainDir(baseDir, chainID)
	for _, name := range []string{config.FileName, "genesis.toml", filepath.Join("wasm", "checksums.json")} {
		if _, err := os.Stat(filepath.Join(chainDir, name)); err != nil {
			t.Fatalf("chain directory misses %s: %v", name, err)
		}
	}
	if _, err := config.Load(baseDir, chainID); err != nil {
		t.Fatalf("loading derived config: %v", err)
	}
}

func TestInitNetworkRejectsDuplicateIPs(t *testing.T) {
	scratch := t.TempDir()
	genesisPath, _ := writeGenesis(t, scratch, genesisConfig{Validator: map[string]genesisValidator{
		"bertha":  {NetAddress: "10.0.0.1:26656"},
		"christel": {NetAddress: "10.0.0.1:26657"},
	}})
	checksumsPath := filepath.Join(scratch, "checksums.json")
	if err := os.WriteFile(checksumsPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing checksums: %v", err)
	}
	prefix, _ := types.ParseChainIDPrefix("unit")

	a := &args.InitNetwork{
		GenesisPath:       genesisPath,
		WasmChecksumsPath: checksumsPath,
		ChainIDPrefix:     prefix,
		DontArchive:       true,
	}
	if err := initNetwork(log.Discarder(), args.Global{BaseDir: t.TempDir()}, a); err == nil {
		t.Fatal("duplicate validator IPs should be rejected")
	}

	a.AllowDuplicateIP = true
	if err := initNetwork(log.Discarder(), args.Global{BaseDir: t.TempDir()}, a); err != nil {
		t.Fatalf("duplicate IPs with toleration: %v", err)
	}
}

func TestInitNetworkLocalhostWantsLoopback(t *testing.T) {
	scratch := t.TempDir()
	genesisPath, _ := writeGenesis(t, scratch, genesisConfig{Validator: map[string]genesisValidator{
		"bertha": {NetAddress: "10.0.0.1:26656"},
	}})
	checksumsPath := filepath.Join(scratch, "checksums.json")
	if err := os.WriteFile(checksumsPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing checksums: %v", err)
	}
	prefix, _ := types.ParseChainIDPrefix("unit")

	a := &args.InitNetwork{
		GenesisPath:       genesisPath,
		WasmChecksumsPath: checksumsPath,
		ChainIDPrefix:     prefix,
		Localhost:         true,
		DontArchive:       true,
	}
	if err := initNetwork(log.Discarder(), args.Global{BaseDir: t.TempDir()}, a); err == nil {
		t.Fatal("localhost networks should reject non-loopback validators")
	}
}

func TestInitNetworkArchive(t *testing.T) {
	scratch := t.TempDir()
	archiveDir := t.TempDir()
	genesisPath, raw := writeGenesis(t, scratch, genesisConfig{Validator: map[string]genesisValidator{
		"bertha": {NetAddress: "10.0.0.1:26656"},
	}})
	checksumsPath := filepath.Join(scratch, "checksums.json")
	if err := os.WriteFile(checksumsPath, []byte("{}"), 0o644); err != nil {
		t.Fatalf("writing checksums: %v", err)
	}
	prefix, _ := types.ParseChainIDPrefix("unit")

	a := &args.InitNetwork{
		GenesisPath:       genesisPath,
		WasmChecksumsPath: checksumsPath,
		ChainIDPrefix:     prefix,
		ArchiveDir:        &archiveDir,
	}
	if err := initNetwork(log.Discarder(), args.Global{BaseDir: t.TempDir()}, a); err != nil {
		t.Fatalf("initNetwork: %v", err)
	}

	chainID := types.ChainIDFromGenesis(prefix, raw)
	f, err := os.Open(filepath.Join(archiveDir, chainID.String()+".tar.gz"))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer f.Close()
	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gunzipping archive: %v", err)
	}
	names := make(map[string]bool)
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading archive: %v", err)
		}
		names[hdr.Name] = true
	}
	want := filepath.ToSlash(filepath.Join(chainID.String(), "genesis.toml"))
	if !names[want] {
		t.Fatalf("archive entries %v miss %s", names, want)
	}
}

func TestJoinNetworkRestoresPreGenesisWallet(t *testing.T) {
	noPasswords(t)
	baseDir := t.TempDir()
	valArgs := &args.InitGenesisValidator{
		Alias:      "bertha",
		NetAddress: types.NodeAddress{Scheme: "tcp", Host: "127.0.0.1", Port: "26656"},
		KeyScheme:  types.SchemeEd25519,
	}
	if err := initGenesisValidator(log.Discarder(), args.Global{BaseDir: baseDir}, valArgs); err != nil {
		t.Fatalf("initGenesisValidator: %v", err)
	}

	alias := "bertha"
	a := &args.JoinNetwork{ChainID: types.DefaultChainID, GenesisValidator: &alias}
	if err := joinNetwork(log.Discarder(), args.Global{BaseDir: baseDir}, a); err != nil {
		t.Fatalf("joinNetwork: %v", err)
	}

	cfg, err := config.Load(baseDir, types.DefaultChainID)
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}
	if cfg.Mode != config.ModeValidator {
		t.Fatalf("mode = %q, want validator", cfg.Mode)
	}
	w, err := wallet.Open(baseDir)
	if err != nil {
		t.Fatalf("opening restored wallet: %v", err)
	}
	defer w.Close()
	if _, err := w.PublicKey("bertha-consensus-key"); err != nil {
		t.Fatalf("restored wallet misses consensus key: %v", err)
	}

	// Joining the same chain twice must fail.
	if err := joinNetwork(log.Discarder(), args.Global{BaseDir: baseDir}, a); err == nil {
		t.Fatal("rejoining should be rejected")
	}
}

func TestFetchWasmsWantsJoinedChain(t *testing.T) {
	baseDir := t.TempDir()
	a := &args.FetchWasms{ChainID: types.DefaultChainID}
	if err := fetchWasms(log.Discarder(), args.Global{BaseDir: baseDir}, a); err == nil {
		t.Fatal("fetching before joining should fail")
	}

	if _, err := config.Gen(baseDir, types.DefaultChainID, config.ModeFull); err != nil {
		t.Fatalf("generating config: %v", err)
	}
	if err := fetchWasms(log.Discarder(), args.Global{BaseDir: baseDir}, a); err != nil {
		t.Fatalf("fetchWasms: %v", err)
	}
	wasmDir := filepath.Join(config.ChainDir(baseDir, types.DefaultChainID), "wasm")
	if info, err := os.Stat(wasmDir); err != nil || !info.IsDir() {
		t.Fatalf("wasm directory: %v", err)
	}
}
