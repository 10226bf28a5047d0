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

// Hand-maintained protobuf bindings for ledger.proto. Keep message structs,
// field numbers and the service descriptor in sync with the schema.

package ledger

import (
	context "context"

	proto "github.com/golang/protobuf/proto"
	grpc "google.golang.org/grpc"
)

type StatusRequest struct{}

func (m *StatusRequest) Reset()         { *m = StatusRequest{} }
func (m *StatusRequest) String() string { return proto.CompactTextString(m) }
func (*StatusRequest) ProtoMessage()    {}

type StatusResponse struct {
	ChainId    string              `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	LastHeight uint64              `protobuf:"varint,2,opt,name=last_height,json=lastHeight,proto3" json:"last_height,omitempty"`
	Epoch      uint64              `protobuf:"varint,3,opt,name=epoch,proto3" json:"epoch,omitempty"`
	Parameters *ProtocolParameters `protobuf:"bytes,4,opt,name=parameters,proto3" json:"parameters,omitempty"`
}

func (m *StatusResponse) Reset()         { *m = StatusResponse{} }
func (m *StatusResponse) String() string { return proto.CompactTextString(m) }
func (*StatusResponse) ProtoMessage()    {}

func (m *StatusResponse) GetParameters() *ProtocolParameters {
	if m != nil {
		return m.Parameters
	}
	return nil
}

type ProtocolParameters struct {
	EpochDurationSecs       uint64 `protobuf:"varint,1,opt,name=epoch_duration_secs,json=epochDurationSecs,proto3" json:"epoch_duration_secs,omitempty"`
	MaxBlockGas             uint64 `protobuf:"varint,2,opt,name=max_block_gas,json=maxBlockGas,proto3" json:"max_block_gas,omitempty"`
	MinProposalPeriodEpochs uint64 `protobuf:"varint,3,opt,name=min_proposal_period_epochs,json=minProposalPeriodEpochs,proto3" json:"min_proposal_period_epochs,omitempty"`
	MaxProposalCodeSize     uint64 `protobuf:"varint,4,opt,name=max_proposal_code_size,json=maxProposalCodeSize,proto3" json:"max_proposal_code_size,omitempty"`
}

func (m *ProtocolParameters) Reset()         { *m = ProtocolParameters{} }
func (m *ProtocolParameters) String() string { return proto.CompactTextString(m) }
func (*ProtocolParameters) ProtoMessage()    {}

type EpochRequest struct{}

func (m *EpochRequest) Reset()         { *m = EpochRequest{} }
func (m *EpochRequest) String() string { return proto.CompactTextString(m) }
func (*EpochRequest) ProtoMessage()    {}

type EpochResponse struct {
	Epoch uint64 `protobuf:"varint,1,opt,name=epoch,proto3" json:"epoch,omitempty"`
}

func (m *EpochResponse) Reset()         { *m = EpochResponse{} }
func (m *EpochResponse) String() string { return proto.CompactTextString(m) }
func (*EpochResponse) ProtoMessage()    {}

type BlockRequest struct {
	Height uint64 `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *BlockRequest) Reset()         { *m = BlockRequest{} }
func (m *BlockRequest) String() string { return proto.CompactTextString(m) }
func (*BlockRequest) ProtoMessage()    {}

type BlockResponse struct {
	Height   uint64 `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	Hash     []byte `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
	TimeUnix int64  `protobuf:"varint,3,opt,name=time_unix,json=timeUnix,proto3" json:"time_unix,omitempty"`
	TxCount  uint32 `protobuf:"varint,4,opt,name=tx_count,json=txCount,proto3" json:"tx_count,omitempty"`
}

func (m *BlockResponse) Reset()         { *m = BlockResponse{} }
func (m *BlockResponse) String() string { return proto.CompactTextString(m) }
func (*BlockResponse) ProtoMessage()    {}

type BalanceRequest struct {
	Token string `protobuf:"bytes,1,opt,name=token,proto3" json:"token,omitempty"`
	Owner string `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (m *BalanceRequest) Reset()         { *m = BalanceRequest{} }
func (m *BalanceRequest) String() string { return proto.CompactTextString(m) }
func (*BalanceRequest) ProtoMessage()    {}

type BalanceResponse struct {
	Amount uint64 `protobuf:"varint,1,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *BalanceResponse) Reset()         { *m = BalanceResponse{} }
func (m *BalanceResponse) String() string { return proto.CompactTextString(m) }
func (*BalanceResponse) ProtoMessage()    {}

type BytesRequest struct {
	Key string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
}

func (m *BytesRequest) Reset()         { *m = BytesRequest{} }
func (m *BytesRequest) String() string { return proto.CompactTextString(m) }
func (*BytesRequest) ProtoMessage()    {}

type BytesResponse struct {
	Found bool   `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *BytesResponse) Reset()         { *m = BytesResponse{} }
func (m *BytesResponse) String() string { return proto.CompactTextString(m) }
func (*BytesResponse) ProtoMessage()    {}

type PrefixRequest struct {
	Prefix string `protobuf:"bytes,1,opt,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *PrefixRequest) Reset()         { *m = PrefixRequest{} }
func (m *PrefixRequest) String() string { return proto.CompactTextString(m) }
func (*PrefixRequest) ProtoMessage()    {}

type Pair struct {
	Key   string `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Value []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Pair) Reset()         { *m = Pair{} }
func (m *Pair) String() string { return proto.CompactTextString(m) }
func (*Pair) ProtoMessage()    {}

type PrefixResponse struct {
	Pairs []*Pair `protobuf:"bytes,1,rep,name=pairs,proto3" json:"pairs,omitempty"`
}

func (m *PrefixResponse) Reset()         { *m = PrefixResponse{} }
func (m *PrefixResponse) String() string { return proto.CompactTextString(m) }
func (*PrefixResponse) ProtoMessage()    {}

type Transfer struct {
	Source string `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	Target string `protobuf:"bytes,2,opt,name=target,proto3" json:"target,omitempty"`
	Token  string `protobuf:"bytes,3,opt,name=token,proto3" json:"token,omitempty"`
	Amount uint64 `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Transfer) Reset()         { *m = Transfer{} }
func (m *Transfer) String() string { return proto.CompactTextString(m) }
func (*Transfer) ProtoMessage()    {}

type Tx struct {
	ChainId       string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Code          []byte `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Data          []byte `protobuf:"bytes,3,opt,name=data,proto3" json:"data,omitempty"`
	TimestampUnix int64  `protobuf:"varint,4,opt,name=timestamp_unix,json=timestampUnix,proto3" json:"timestamp_unix,omitempty"`
	PubKey        []byte `protobuf:"bytes,5,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	Signature     []byte `protobuf:"bytes,6,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

type SubmitTxRequest struct {
	Tx *Tx `protobuf:"bytes,1,opt,name=tx,proto3" json:"tx,omitempty"`
}

func (m *SubmitTxRequest) Reset()         { *m = SubmitTxRequest{} }
func (m *SubmitTxRequest) String() string { return proto.CompactTextString(m) }
func (*SubmitTxRequest) ProtoMessage()    {}

func (m *SubmitTxRequest) GetTx() *Tx {
	if m != nil {
		return m.Tx
	}
	return nil
}

type SubmitTxResponse struct {
	Hash   string `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
	Code   uint32 `protobuf:"varint,2,opt,name=code,proto3" json:"code,omitempty"`
	Info   string `protobuf:"bytes,3,opt,name=info,proto3" json:"info,omitempty"`
	Height uint64 `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
}

func (m *SubmitTxResponse) Reset()         { *m = SubmitTxResponse{} }
func (m *SubmitTxResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitTxResponse) ProtoMessage()    {}

type TxResultRequest struct {
	Hash string `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *TxResultRequest) Reset()         { *m = TxResultRequest{} }
func (m *TxResultRequest) String() string { return proto.CompactTextString(m) }
func (*TxResultRequest) ProtoMessage()    {}

type TxResultResponse struct {
	Found   bool   `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Code    uint32 `protobuf:"varint,2,opt,name=code,proto3" json:"code,omitempty"`
	Info    string `protobuf:"bytes,3,opt,name=info,proto3" json:"info,omitempty"`
	Height  uint64 `protobuf:"varint,4,opt,name=height,proto3" json:"height,omitempty"`
	GasUsed uint64 `protobuf:"varint,5,opt,name=gas_used,json=gasUsed,proto3" json:"gas_used,omitempty"`
}

func (m *TxResultResponse) Reset()         { *m = TxResultResponse{} }
func (m *TxResultResponse) String() string { return proto.CompactTextString(m) }
func (*TxResultResponse) ProtoMessage()    {}

func init() {
	proto.RegisterType((*StatusRequest)(nil), "ledger.StatusRequest")
	proto.RegisterType((*StatusResponse)(nil), "ledger.StatusResponse")
	proto.RegisterType((*ProtocolParameters)(nil), "ledger.ProtocolParameters")
	proto.RegisterType((*EpochRequest)(nil), "ledger.EpochRequest")
	proto.RegisterType((*EpochResponse)(nil), "ledger.EpochResponse")
	proto.RegisterType((*BlockRequest)(nil), "ledger.BlockRequest")
	proto.RegisterType((*BlockResponse)(nil), "ledger.BlockResponse")
	proto.RegisterType((*BalanceRequest)(nil), "ledger.BalanceRequest")
	proto.RegisterType((*BalanceResponse)(nil), "ledger.BalanceResponse")
	proto.RegisterType((*BytesRequest)(nil), "ledger.BytesRequest")
	proto.RegisterType((*BytesResponse)(nil), "ledger.BytesResponse")
	proto.RegisterType((*PrefixRequest)(nil), "ledger.PrefixRequest")
	proto.RegisterType((*Pair)(nil), "ledger.Pair")
	proto.RegisterType((*PrefixResponse)(nil), "ledger.PrefixResponse")
	proto.RegisterType((*Transfer)(nil), "ledger.Transfer")
	proto.RegisterType((*Tx)(nil), "ledger.Tx")
	proto.RegisterType((*SubmitTxRequest)(nil), "ledger.SubmitTxRequest")
	proto.RegisterType((*SubmitTxResponse)(nil), "ledger.SubmitTxResponse")
	proto.RegisterType((*TxResultRequest)(nil), "ledger.TxResultRequest")
	proto.RegisterType((*TxResultResponse)(nil), "ledger.TxResultResponse")
}

// LedgerServiceClient is the client API for LedgerService.
type LedgerServiceClient interface {
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error)
	Epoch(ctx context.Context, in *EpochRequest, opts ...grpc.CallOption) (*EpochResponse, error)
	Block(ctx context.Context, in *BlockRequest, opts ...grpc.CallOption) (*BlockResponse, error)
	Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error)
	Bytes(ctx context.Context, in *BytesRequest, opts ...grpc.CallOption) (*BytesResponse, error)
	Prefix(ctx context.Context, in *PrefixRequest, opts ...grpc.CallOption) (*PrefixResponse, error)
	SubmitTx(ctx context.Context, in *SubmitTxRequest, opts ...grpc.CallOption) (*SubmitTxResponse, error)
	TxResult(ctx context.Context, in *TxResultRequest, opts ...grpc.CallOption) (*TxResultResponse, error)
}

type ledgerServiceClient struct {
	cc *grpc.ClientConn
}

func NewLedgerServiceClient(cc *grpc.ClientConn) LedgerServiceClient {
	return &ledgerServiceClient{cc}
}

func (c *ledgerServiceClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	out := new(StatusResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Status", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Epoch(ctx context.Context, in *EpochRequest, opts ...grpc.CallOption) (*EpochResponse, error) {
	out := new(EpochResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Epoch", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Block(ctx context.Context, in *BlockRequest, opts ...grpc.CallOption) (*BlockResponse, error) {
	out := new(BlockResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Block", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Balance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Bytes(ctx context.Context, in *BytesRequest, opts ...grpc.CallOption) (*BytesResponse, error) {
	out := new(BytesResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Bytes", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) Prefix(ctx context.Context, in *PrefixRequest, opts ...grpc.CallOption) (*PrefixResponse, error) {
	out := new(PrefixResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/Prefix", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) SubmitTx(ctx context.Context, in *SubmitTxRequest, opts ...grpc.CallOption) (*SubmitTxResponse, error) {
	out := new(SubmitTxResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/SubmitTx", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ledgerServiceClient) TxResult(ctx context.Context, in *TxResultRequest, opts ...grpc.CallOption) (*TxResultResponse, error) {
	out := new(TxResultResponse)
	if err := c.cc.Invoke(ctx, "/ledger.LedgerService/TxResult", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// LedgerServiceServer is the server API for LedgerService.
type LedgerServiceServer interface {
	Status(context.Context, *StatusRequest) (*StatusResponse, error)
	Epoch(context.Context, *EpochRequest) (*EpochResponse, error)
	Block(context.Context, *BlockRequest) (*BlockResponse, error)
	Balance(context.Context, *BalanceRequest) (*BalanceResponse, error)
	Bytes(context.Context, *BytesRequest) (*BytesResponse, error)
	Prefix(context.Context, *PrefixRequest) (*PrefixResponse, error)
	SubmitTx(context.Context, *SubmitTxRequest) (*SubmitTxResponse, error)
	TxResult(context.Context, *TxResultRequest) (*TxResultResponse, error)
}

func RegisterLedgerServiceServer(s *grpc.Server, srv LedgerServiceServer) {
	s.RegisterService(&_LedgerService_serviceDesc, srv)
}

func _LedgerService_Status_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Status",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_Epoch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EpochRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Epoch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Epoch",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Epoch(ctx, req.(*EpochRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_Block_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BlockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Block(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Block",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Block(ctx, req.(*BlockRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_Balance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Balance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Balance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Balance(ctx, req.(*BalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_Bytes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BytesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Bytes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Bytes",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Bytes(ctx, req.(*BytesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_Prefix_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PrefixRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).Prefix(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/Prefix",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).Prefix(ctx, req.(*PrefixRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_SubmitTx_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitTxRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).SubmitTx(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/SubmitTx",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).SubmitTx(ctx, req.(*SubmitTxRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_TxResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TxResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).TxResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/ledger.LedgerService/TxResult",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).TxResult(ctx, req.(*TxResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _LedgerService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.LedgerService",
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Status",
			Handler:    _LedgerService_Status_Handler,
		},
		{
			MethodName: "Epoch",
			Handler:    _LedgerService_Epoch_Handler,
		},
		{
			MethodName: "Block",
			Handler:    _LedgerService_Block_Handler,
		},
		{
			MethodName: "Balance",
			Handler:    _LedgerService_Balance_Handler,
		},
		{
			MethodName: "Bytes",
			Handler:    _LedgerService_Bytes_Handler,
		},
		{
			MethodName: "Prefix",
			Handler:    _LedgerService_Prefix_Handler,
		},
		{
			MethodName: "SubmitTx",
			Handler:    _LedgerService_SubmitTx_Handler,
		},
		{
			MethodName: "TxResult",
			Handler:    _LedgerService_TxResult_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger.proto",
}
