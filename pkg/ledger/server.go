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
	"context"
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/velachain/vela/pkg/log"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
)

// blocksPerEpoch fixes the epoch length; one transaction forms one block.
const blocksPerEpoch = 10

// TransferCode is the code name transfer transactions carry.
const TransferCode = "tx_transfer.wasm"

// Transaction result codes.
const (
	CodeOK uint32 = iota
	CodeInvalidTx
	CodeRejected
)

const heightMetaKey = "height"

// Server serves the ledger RPC surface for one chain.
type Server struct {
	logger  *log.Logger
	chainID types.ChainID
	store   *Store
	params  *pb.ProtocolParameters

	mu sync.Mutex // serializes block production
}

// NewServer returns a Server over the given chain state.
func NewServer(logger *log.Logger, chainID types.ChainID, store *Store) *Server {
	return &Server{
		logger:  logger,
		chainID: chainID,
		store:   store,
		params: &pb.ProtocolParameters{
			EpochDurationSecs:       60 * 60,
			MaxBlockGas:             10_000_000,
			MinProposalPeriodEpochs: 3,
			MaxProposalCodeSize:     300_000,
		},
	}
}

var _ pb.LedgerServiceServer = (*Server)(nil)

func (s *Server) height() uint64 {
	blob, ok := s.store.Meta(heightMetaKey)
	if !ok || len(blob) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(blob)
}

func (s *Server) setHeight(h uint64) error {
	var blob [8]byte
	binary.BigEndian.PutUint64(blob[:], h)
	return s.store.PutMeta(heightMetaKey, blob[:])
}

// Status reports the chain identity, tip and protocol parameters.
func (s *Server) Status(ctx context.Context, req *pb.StatusRequest) (*pb.StatusResponse, error) {
	h := s.height()
	return &pb.StatusResponse{
		ChainId:    s.chainID.String(),
		LastHeight: h,
		Epoch:      h / blocksPerEpoch,
		Parameters: s.params,
	}, nil
}

// Epoch reports the current epoch.
func (s *Server) Epoch(ctx context.Context, req *pb.EpochRequest) (*pb.EpochResponse, error) {
	return &pb.EpochResponse{Epoch: s.height() / blocksPerEpoch}, nil
}

// Block reports one block by height; zero height means the latest.
func (s *Server) Block(ctx context.Context, req *pb.BlockRequest) (*pb.BlockResponse, error) {
	h := req.Height
	if h == 0 {
		h = s.height()
	}
	if h == 0 {
		return nil, status.Error(codes.NotFound, "no blocks yet")
	}
	blob, ok := s.store.Meta(blockMetaKey(h))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no block at height %d", h)
	}
	var block pb.BlockResponse
	if err := proto.Unmarshal(blob, &block); err != nil {
		return nil, status.Errorf(codes.Internal, "corrupted block record: %v", err)
	}
	return &block, nil
}

func blockMetaKey(height uint64) string {
	return fmt.Sprintf("block/%016x", height)
}

// Balance reports the owner's balance of a token.
func (s *Server) Balance(ctx context.Context, req *pb.BalanceRequest) (*pb.BalanceResponse, error) {
	token, err := types.ParseAddress(req.Token)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "token: %v", err)
	}
	owner, err := types.ParseAddress(req.Owner)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "owner: %v", err)
	}
	return &pb.BalanceResponse{Amount: s.balance(token, owner)}, nil
}

func (s *Server) balance(token, owner types.Address) uint64 {
	blob, ok := s.store.Get(types.BalanceKey(token, owner).String())
	if !ok || len(blob) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(blob)
}

func (s *Server) setBalance(token, owner types.Address, amount uint64) error {
	var blob [8]byte
	binary.BigEndian.PutUint64(blob[:], amount)
	return s.store.Set(types.BalanceKey(token, owner).String(), blob[:])
}

// Bytes reads one raw storage value.
func (s *Server) Bytes(ctx context.Context, req *pb.BytesRequest) (*pb.BytesResponse, error) {
	value, found := s.store.Get(req.Key)
	return &pb.BytesResponse{Found: found, Value: value}, nil
}

// Prefix reads every storage pair under a key prefix.
func (s *Server) Prefix(ctx context.Context, req *pb.PrefixRequest) (*pb.PrefixResponse, error) {
	resp := &pb.PrefixResponse{}
	s.store.IteratePrefix(req.Prefix, func(key string, value []byte) bool {
		resp.Pairs = append(resp.Pairs, &pb.Pair{Key: key, Value: value})
		return true
	})
	return resp, nil
}

// TxSignBytes is the digest transaction signatures cover.
func TxSignBytes(tx *pb.Tx) []byte {
	h := sha256.New()
	h.Write([]byte(tx.ChainId))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(tx.TimestampUnix))
	h.Write(ts[:])
	h.Write(tx.Code)
	h.Write(tx.Data)
	return h.Sum(nil)
}

// SubmitTx validates and applies one transaction, forming a new block.
// Rejected transactions still get a result record under their hash.
func (s *Server) SubmitTx(ctx context.Context, req *pb.SubmitTxRequest) (*pb.SubmitTxResponse, error) {
	tx := req.GetTx()
	if tx == nil {
		return nil, status.Error(codes.InvalidArgument, "missing transaction")
	}
	raw, err := proto.Marshal(tx)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "unencodable transaction: %v", err)
	}
	sum := sha256.Sum256(raw)
	hash := hex.EncodeToString(sum[:])

	s.mu.Lock()
	defer s.mu.Unlock()

	code, info := s.applyTx(tx)

	height := s.height() + 1
	if err := s.setHeight(height); err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	block := &pb.BlockResponse{
		Height:   height,
		Hash:     sum[:],
		TimeUnix: time.Now().Unix(),
		TxCount:  1,
	}
	blockBlob, err := proto.Marshal(block)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	if err := s.store.PutMeta(blockMetaKey(height), blockBlob); err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	result := &pb.TxResultResponse{Found: true, Code: code, Info: info, Height: height, GasUsed: uint64(len(raw))}
	resultBlob, err := proto.Marshal(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	if err := s.store.PutTxResult(hash, resultBlob); err != nil {
		return nil, status.Errorf(codes.Internal, "%v", err)
	}

	if code == CodeOK {
		s.logger.Infof("applied tx %s at height %d", hash, height)
	} else {
		s.logger.Warnf("rejected tx %s at height %d: %s", hash, height, info)
	}
	return &pb.SubmitTxResponse{Hash: hash, Code: code, Info: info, Height: height}, nil
}

// applyTx validates a transaction and applies its state effects. Unknown code
// names are accepted and recorded without state effects; their validation is
// the code's own concern once execution lands.
func (s *Server) applyTx(tx *pb.Tx) (code uint32, info string) {
	if tx.ChainId != s.chainID.String() {
		return CodeInvalidTx, fmt.Sprintf("transaction is for chain %q, not %q", tx.ChainId, s.chainID)
	}
	if len(tx.PubKey) > 0 {
		if len(tx.PubKey) != ed25519.PublicKeySize ||
			!ed25519.Verify(tx.PubKey, TxSignBytes(tx), tx.Signature) {
			return CodeInvalidTx, "invalid signature"
		}
	}

	if string(tx.Code) != TransferCode {
		return CodeOK, ""
	}
	var transfer pb.Transfer
	if err := proto.Unmarshal(tx.Data, &transfer); err != nil {
		return CodeInvalidTx, fmt.Sprintf("malformed transfer payload: %v", err)
	}
	source, err := types.ParseAddress(transfer.Source)
	if err != nil {
		return CodeInvalidTx, fmt.Sprintf("source: %v", err)
	}
	target, err := types.ParseAddress(transfer.Target)
	if err != nil {
		return CodeInvalidTx, fmt.Sprintf("target: %v", err)
	}
	token, err := types.ParseAddress(transfer.Token)
	if err != nil {
		return CodeInvalidTx, fmt.Sprintf("token: %v", err)
	}

	from := s.balance(token, source)
	if from < transfer.Amount {
		return CodeRejected, fmt.Sprintf("insufficient balance: have %d, need %d", from, transfer.Amount)
	}
	if err := s.setBalance(token, source, from-transfer.Amount); err != nil {
		return CodeRejected, err.Error()
	}
	if err := s.setBalance(token, target, s.balance(token, target)+transfer.Amount); err != nil {
		return CodeRejected, err.Error()
	}
	return CodeOK, ""
}

// TxResult reports the recorded outcome of a submitted transaction.
func (s *Server) TxResult(ctx context.Context, req *pb.TxResultRequest) (*pb.TxResultResponse, error) {
	blob, ok := s.store.TxResult(req.Hash)
	if !ok {
		return &pb.TxResultResponse{Found: false}, nil
	}
	var result pb.TxResultResponse
	if err := proto.Unmarshal(blob, &result); err != nil {
		return nil, status.Errorf(codes.Internal, "corrupted tx record: %v", err)
	}
	return &result, nil
}
