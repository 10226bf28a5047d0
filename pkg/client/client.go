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

// Package client executes parsed vela-client invocations: queries and
// transaction submission over the ledger RPC, plus the local chain setup
// utilities.
package client

import (
	"fmt"

	"google.golang.org/grpc"

	"github.com/velachain/vela/pkg/cli/cmds"
	"github.com/velachain/vela/pkg/cli/context"
	"github.com/velachain/vela/pkg/log"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
)

// A Client is a connection to one ledger node, bound to the invocation's
// chain context.
type Client struct {
	logger *log.Logger
	ctx    *context.Context
	conn   *grpc.ClientConn
	svc    pb.LedgerServiceClient
}

// Dial connects to the ledger node at addr.
func Dial(logger *log.Logger, cliCtx *context.Context, addr types.NodeAddress) (*Client, error) {
	conn, err := grpc.Dial(addr.HostPort(), grpc.WithInsecure())
	if err != nil {
		return nil, fmt.Errorf("client: dialing %s: %v", addr, err)
	}
	return &Client{
		logger: logger,
		ctx:    cliCtx,
		conn:   conn,
		svc:    pb.NewLedgerServiceClient(conn),
	}, nil
}

// Close releases the connection.
func (c *Client) Close() error { return c.conn.Close() }

// Run executes one client command. Utility commands run locally; everything
// else dials the node named by the command's --ledger-address.
func Run(logger *log.Logger, c *cmds.ClientCli) error {
	with := func(addr types.NodeAddress, fn func(*Client) error) error {
		cl, err := Dial(logger, c.Context, addr)
		if err != nil {
			return err
		}
		defer cl.Close()
		return fn(cl)
	}

	switch cmd := c.Cmd.(type) {
	case *cmds.JoinNetwork:
		return joinNetwork(logger, c.Global, &cmd.Args)
	case *cmds.FetchWasms:
		return fetchWasms(logger, c.Global, &cmd.Args)
	case *cmds.InitNetwork:
		return initNetwork(logger, c.Global, &cmd.Args)
	case *cmds.InitGenesisValidator:
		return initGenesisValidator(logger, c.Global, &cmd.Args)

	case *cmds.TxCustom:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitCustom(&cmd.Args) })
	case *cmds.TxTransfer:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitTransfer(&cmd.Args) })
	case *cmds.TxUpdateVp:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitUpdateVp(&cmd.Args) })
	case *cmds.TxInitAccount:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitInitAccount(&cmd.Args) })
	case *cmds.TxInitValidator:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitInitValidator(&cmd.Args) })
	case *cmds.Bond:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitBond(&cmd.Args) })
	case *cmds.Unbond:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitUnbond(&cmd.Args) })
	case *cmds.Withdraw:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitWithdraw(&cmd.Args) })
	case *cmds.InitProposal:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitInitProposal(&cmd.Args) })
	case *cmds.VoteProposal:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.submitVoteProposal(&cmd.Args) })

	case *cmds.QueryEpoch:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryEpoch(&cmd.Args) })
	case *cmds.QueryBlock:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryBlock(&cmd.Args) })
	case *cmds.QueryBalance:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryBalance(&cmd.Args) })
	case *cmds.QueryBonds:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryBonds(&cmd.Args) })
	case *cmds.QueryVotingPower:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryVotingPower(&cmd.Args) })
	case *cmds.QueryCommissionRate:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryCommissionRate(&cmd.Args) })
	case *cmds.QuerySlashes:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.querySlashes(&cmd.Args) })
	case *cmds.QueryResult:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryResult(&cmd.Args) })
	case *cmds.QueryRawBytes:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryRawBytes(&cmd.Args) })
	case *cmds.QueryProposal:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryProposal(&cmd.Args) })
	case *cmds.QueryProposalResult:
		if cmd.Args.Offline {
			// Offline tallies never touch the node.
			return queryProposalResultOffline(&cmd.Args)
		}
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryProposalResult(&cmd.Args) })
	case *cmds.QueryProtocolParameters:
		return with(cmd.Args.LedgerAddress, func(cl *Client) error { return cl.queryProtocolParameters(&cmd.Args) })
	}
	return fmt.Errorf("client: unhandled command %T", c.Cmd)
}
