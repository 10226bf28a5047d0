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

package ledger

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/binary"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"

	"github.com/velachain/vela/pkg/log"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
)

const testChainID = types.ChainID("vela-test.0000000000")

func testAddr(t *testing.T) types.Address {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	return types.AddressFromPublicKey(pub)
}

func TestStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenStore(dir)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	if err := s.Set("a/b", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set("a/c", []byte("two")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenStore(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	v, ok := s.Get("a/b")
	if !ok || !bytes.Equal(v, []byte("one")) {
		t.Fatalf("Get(a/b) = %q, %v after reopen", v, ok)
	}
}

func TestStoreIteratePrefix(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	for _, key := range []string{"x/1", "x/2", "y/1"} {
		if err := s.Set(key, []byte(key)); err != nil {
			t.Fatal(err)
		}
	}
	var got []string
	s.IteratePrefix("x/", func(key string, value []byte) bool {
		got = append(got, key)
		return true
	})
	if len(got) != 2 || got[0] != "x/1" || got[1] != "x/2" {
		t.Fatalf("prefix keys = %v", got)
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return NewServer(log.Discarder(), testChainID, store)
}

func signedTransferTx(t *testing.T, transfer *pb.Transfer) *pb.Tx {
	t.Helper()
	data, err := proto.Marshal(transfer)
	if err != nil {
		t.Fatal(err)
	}
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}
	tx := &pb.Tx{
		ChainId:       testChainID.String(),
		Code:          []byte(TransferCode),
		Data:          data,
		TimestampUnix: time.Now().Unix(),
		PubKey:        pub,
	}
	tx.Signature = ed25519.Sign(priv, TxSignBytes(tx))
	return tx
}

func TestSubmitTransferMovesBalance(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	token, source, target := testAddr(t), testAddr(t), testAddr(t)

	var blob [8]byte
	binary.BigEndian.PutUint64(blob[:], 100)
	if err := s.store.Set(types.BalanceKey(token, source).String(), blob[:]); err != nil {
		t.Fatal(err)
	}

	transfer := &pb.Transfer{
		Source: source.String(),
		Target: target.String(),
		Token:  token.String(),
		Amount: 30,
	}
	resp, err := s.SubmitTx(ctx, &pb.SubmitTxRequest{Tx: signedTransferTx(t, transfer)})
	if err != nil {
		t.Fatalf("SubmitTx: %v", err)
	}
	if resp.Code != CodeOK {
		t.Fatalf("code = %d (%s); want ok", resp.Code, resp.Info)
	}

	bal, err := s.Balance(ctx, &pb.BalanceRequest{Token: token.String(), Owner: target.String()})
	if err != nil || bal.Amount != 30 {
		t.Fatalf("target balance = %v, %v; want 30", bal, err)
	}
	bal, err = s.Balance(ctx, &pb.BalanceRequest{Token: token.String(), Owner: source.String()})
	if err != nil || bal.Amount != 70 {
		t.Fatalf("source balance = %v, %v; want 70", bal, err)
	}

	// The transaction got a block and a queryable result.
	result, err := s.TxResult(ctx, &pb.TxResultRequest{Hash: resp.Hash})
	if err != nil || !result.Found || result.Code != CodeOK || result.Height != resp.Height {
		t.Fatalf("TxResult = %v, %v", result, err)
	}
	block, err := s.Block(ctx, &pb.BlockRequest{Height: resp.Height})
	if err != nil || block.TxCount != 1 {
		t.Fatalf("Block = %v, %v", block, err)
	}
}

func TestSubmitTransferInsufficientBalance(t *testing.T) {
	s := newTestServer(t)
	token, source, target := testAddr(t), testAddr(t), testAddr(t)

	transfer := &pb.Transfer{
		Source: source.String(),
		Target: target.String(),
		Token:  token.String(),
		Amount: 1,
	}
	resp, err := s.SubmitTx(context.Background(), &pb.SubmitTxRequest{Tx: signedTransferTx(t, transfer)})
	if err != nil {
		t.Fatalf("SubmitTx: %v", err)
	}
	if resp.Code != CodeRejected {
		t.Fatalf("code = %d; want rejected", resp.Code)
	}
}

func TestSubmitTxRejectsWrongChain(t *testing.T) {
	s := newTestServer(t)
	tx := &pb.Tx{ChainId: "vela-other.000000000", Code: []byte("tx_bond.wasm")}
	resp, err := s.SubmitTx(context.Background(), &pb.SubmitTxRequest{Tx: tx})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Code != CodeInvalidTx {
		t.Fatalf("code = %d; want invalid", resp.Code)
	}
}

func TestSubmitTxRejectsBadSignature(t *testing.T) {
	s := newTestServer(t)
	pub, _, _ := ed25519.GenerateKey(nil)
	tx := &pb.Tx{
		ChainId:   testChainID.String(),
		Code:      []byte("tx_bond.wasm"),
		PubKey:    pub,
		Signature: make([]byte, ed25519.SignatureSize),
	}
	resp, err := s.SubmitTx(context.Background(), &pb.SubmitTxRequest{Tx: tx})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Code != CodeInvalidTx {
		t.Fatalf("code = %d; want invalid", resp.Code)
	}
}

func TestEpochAdvancesWithHeight(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	for i := 0; i < int(blocksPerEpoch); i++ {
		tx := &pb.Tx{ChainId: testChainID.String(), Code: []byte("tx_noop.wasm")}
		if _, err := s.SubmitTx(ctx, &pb.SubmitTxRequest{Tx: tx}); err != nil {
			t.Fatal(err)
		}
	}
	epoch, err := s.Epoch(ctx, &pb.EpochRequest{})
	if err != nil || epoch.Epoch != 1 {
		t.Fatalf("Epoch = %v, %v; want 1", epoch, err)
	}
	st, err := s.Status(ctx, &pb.StatusRequest{})
	if err != nil || st.LastHeight != blocksPerEpoch || st.ChainId != testChainID.String() {
		t.Fatalf("Status = %v, %v", st, err)
	}
}
