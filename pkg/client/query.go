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
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/velachain/vela/pkg/cli/args"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
)

// Storage key prefixes of the proof-of-stake and governance subsystems.
const (
	bondPrefix           = "pos/bond"
	votingPowerPrefix    = "pos/voting_power"
	commissionRatePrefix = "pos/commission_rate"
	slashPrefix          = "pos/slash"
	proposalPrefix       = "gov/proposal"
)

func (c *Client) queryEpoch(*args.Query) error {
	resp, err := c.svc.Epoch(context.Background(), &pb.EpochRequest{})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	fmt.Printf("Last committed epoch: %d\n", resp.Epoch)
	return nil
}

func (c *Client) queryBlock(*args.Query) error {
	st, err := c.svc.Status(context.Background(), &pb.StatusRequest{})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if st.LastHeight == 0 {
		fmt.Println("No block committed yet.")
		return nil
	}
	resp, err := c.svc.Block(context.Background(), &pb.BlockRequest{Height: st.LastHeight})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	fmt.Printf("Last committed block %d, hash %s, %d txs, committed %s\n",
		resp.Height, hex.EncodeToString(resp.Hash), resp.TxCount,
		time.Unix(resp.TimeUnix, 0).UTC().Format(time.RFC3339))
	return nil
}

func (c *Client) queryBalance(a *args.QueryBalance) error {
	var owner, token *types.Address
	if a.Owner != nil {
		addr, err := c.ctx.Address(*a.Owner)
		if err != nil {
			return err
		}
		owner = &addr
	}
	if a.Token != nil {
		addr, err := c.ctx.Address(*a.Token)
		if err != nil {
			return err
		}
		token = &addr
	}

	// The exact lookup goes through the dedicated RPC; everything else is
	// a prefix scan over the balance keys.
	if owner != nil && token != nil && a.SubPrefix == nil {
		resp, err := c.svc.Balance(context.Background(), &pb.BalanceRequest{
			Token: token.String(),
			Owner: owner.String(),
		})
		if err != nil {
			return fmt.Errorf("client: %v", err)
		}
		fmt.Printf("%s: %s\n", token, types.Amount(resp.Amount))
		return nil
	}

	prefix := ""
	if token != nil {
		key := types.KeyFromAddress(*token).Push("balance")
		if a.SubPrefix != nil {
			key = key.Push(*a.SubPrefix)
		}
		prefix = key.String()
	}
	resp, err := c.svc.Prefix(context.Background(), &pb.PrefixRequest{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	found := false
	for _, pair := range resp.Pairs {
		if !strings.Contains(pair.Key, "/balance") {
			continue
		}
		if owner != nil && !strings.HasSuffix(pair.Key, "#"+owner.String()) {
			continue
		}
		if len(pair.Value) != 8 {
			continue
		}
		found = true
		fmt.Printf("%s: %s\n", pair.Key, types.Amount(binary.BigEndian.Uint64(pair.Value)))
	}
	if !found {
		fmt.Println("No balances found.")
	}
	return nil
}

// scanPoS runs one prefix scan and prints the pairs matching the optional
// validator narrow, with amount-shaped values decoded. Used by the
// proof-of-stake queries, which all share the key-per-entry layout.
func (c *Client) scanPoS(prefix string, validator *args.WalletAddress, none string) error {
	var narrow string
	if validator != nil {
		addr, err := c.ctx.Address(*validator)
		if err != nil {
			return err
		}
		narrow = "#" + addr.String()
	}
	resp, err := c.svc.Prefix(context.Background(), &pb.PrefixRequest{Prefix: prefix})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	found := false
	for _, pair := range resp.Pairs {
		if narrow != "" && !strings.Contains(pair.Key, narrow) {
			continue
		}
		found = true
		if len(pair.Value) == 8 {
			fmt.Printf("%s: %s\n", pair.Key, types.Amount(binary.BigEndian.Uint64(pair.Value)))
		} else {
			fmt.Printf("%s: %s\n", pair.Key, pair.Value)
		}
	}
	if !found {
		fmt.Println(none)
	}
	return nil
}

func (c *Client) queryBonds(a *args.QueryBonds) error {
	var narrow *args.WalletAddress
	if a.Validator != nil {
		narrow = a.Validator
	} else if a.Owner != nil {
		narrow = a.Owner
	}
	return c.scanPoS(bondPrefix, narrow, "No bonds found.")
}

func (c *Client) queryVotingPower(a *args.QueryVotingPower) error {
	prefix := votingPowerPrefix
	if a.Epoch != nil {
		prefix = fmt.Sprintf("%s/%s", votingPowerPrefix, a.Epoch)
	}
	return c.scanPoS(prefix, a.Validator, "No voting power found.")
}

func (c *Client) queryCommissionRate(a *args.QueryCommissionRate) error {
	prefix := commissionRatePrefix
	if a.Epoch != nil {
		prefix = fmt.Sprintf("%s/%s", commissionRatePrefix, a.Epoch)
	}
	return c.scanPoS(prefix, a.Validator, "No commission rate found.")
}

func (c *Client) querySlashes(a *args.QuerySlashes) error {
	return c.scanPoS(slashPrefix, a.Validator, "No slashes found.")
}

func (c *Client) queryResult(a *args.QueryResult) error {
	resp, err := c.svc.TxResult(context.Background(), &pb.TxResultRequest{Hash: a.TxHash})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if !resp.Found {
		return fmt.Errorf("client: no transaction with hash %s", a.TxHash)
	}
	fmt.Printf("Transaction %s at height %d: code %d, gas used %s", a.TxHash, resp.Height,
		resp.Code, types.GasLimit(resp.GasUsed))
	if resp.Info != "" {
		fmt.Printf(", %s", resp.Info)
	}
	fmt.Println()
	return nil
}

func (c *Client) queryRawBytes(a *args.QueryRawBytes) error {
	resp, err := c.svc.Bytes(context.Background(), &pb.BytesRequest{Key: a.StorageKey.String()})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if !resp.Found {
		fmt.Printf("No value found at %s\n", a.StorageKey)
		return nil
	}
	fmt.Println(hex.EncodeToString(resp.Value))
	return nil
}

func (c *Client) queryProposal(a *args.QueryProposal) error {
	if a.ProposalID != nil {
		resp, err := c.svc.Bytes(context.Background(), &pb.BytesRequest{
			Key: fmt.Sprintf("%s/%d/content", proposalPrefix, *a.ProposalID),
		})
		if err != nil {
			return fmt.Errorf("client: %v", err)
		}
		if !resp.Found {
			return fmt.Errorf("client: no proposal with id %d", *a.ProposalID)
		}
		fmt.Printf("Proposal %d:\n%s\n", *a.ProposalID, resp.Value)
		return nil
	}
	resp, err := c.svc.Prefix(context.Background(), &pb.PrefixRequest{Prefix: proposalPrefix})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	found := false
	for _, pair := range resp.Pairs {
		if !strings.HasSuffix(pair.Key, "/content") {
			continue
		}
		found = true
		fmt.Printf("%s:\n%s\n", pair.Key, pair.Value)
	}
	if !found {
		fmt.Println("No proposals found.")
	}
	return nil
}

func (c *Client) queryProposalResult(a *args.QueryProposalResult) error {
	if a.ProposalID == nil {
		return fmt.Errorf("client: live tallies need --proposal-id")
	}
	resp, err := c.svc.Prefix(context.Background(), &pb.PrefixRequest{
		Prefix: fmt.Sprintf("%s/%d/vote", proposalPrefix, *a.ProposalID),
	})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	var yay, nay int
	for _, pair := range resp.Pairs {
		switch string(pair.Value) {
		case string(types.VoteYay):
			yay++
		case string(types.VoteNay):
			nay++
		}
	}
	printTally(fmt.Sprintf("Proposal %d", *a.ProposalID), yay, nay)
	return nil
}

// queryProposalResultOffline tallies the vote files sitting next to an
// offline proposal, without contacting any node.
func queryProposalResultOffline(a *args.QueryProposalResult) error {
	if a.ProposalFolder == nil {
		return fmt.Errorf("client: offline tallies need --data-path naming the proposal folder")
	}
	yay, nay, err := tallyOfflineVotes(*a.ProposalFolder)
	if err != nil {
		return err
	}
	printTally("Offline proposal", yay, nay)
	return nil
}

// tallyOfflineVotes counts the ballots in folder cast against the proposal
// file it holds.
func tallyOfflineVotes(folder string) (yay, nay int, err error) {
	raw, err := os.ReadFile(filepath.Join(folder, "proposal"))
	if err != nil {
		return 0, 0, fmt.Errorf("client: reading proposal: %v", err)
	}
	sum := sha256.Sum256(raw)
	want := hex.EncodeToString(sum[:])

	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, 0, fmt.Errorf("client: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "proposal-vote-") {
			continue
		}
		blob, err := os.ReadFile(filepath.Join(folder, entry.Name()))
		if err != nil {
			return 0, 0, fmt.Errorf("client: %v", err)
		}
		var vote offlineVoteFile
		if err := json.Unmarshal(blob, &vote); err != nil {
			return 0, 0, fmt.Errorf("client: %s: %v", entry.Name(), err)
		}
		// Ballots cast against a different revision of the proposal
		// do not count.
		if vote.ProposalSha256 != want {
			continue
		}
		switch vote.Vote {
		case string(types.VoteYay):
			yay++
		case string(types.VoteNay):
			nay++
		}
	}
	return yay, nay, nil
}

func printTally(subject string, yay, nay int) {
	verdict := "rejected"
	if yay > nay {
		verdict = "passed"
	}
	fmt.Printf("%s: %d yay, %d nay, %s\n", subject, yay, nay, verdict)
}

func (c *Client) queryProtocolParameters(*args.QueryProtocolParameters) error {
	resp, err := c.svc.Status(context.Background(), &pb.StatusRequest{})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	p := resp.GetParameters()
	if p == nil {
		return fmt.Errorf("client: node reported no protocol parameters")
	}
	fmt.Printf("Chain %s at height %d, epoch %d\n", resp.ChainId, resp.LastHeight, resp.Epoch)
	fmt.Printf("  Epoch duration:             %s\n", time.Duration(p.EpochDurationSecs)*time.Second)
	fmt.Printf("  Max block gas:              %d\n", p.MaxBlockGas)
	fmt.Printf("  Min proposal period epochs: %d\n", p.MinProposalPeriodEpochs)
	fmt.Printf("  Max proposal code size:     %d\n", p.MaxProposalCodeSize)
	return nil
}
