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
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/protobuf/proto"

	"github.com/velachain/vela/pkg/cli/args"
	"github.com/velachain/vela/pkg/ledger"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
	"github.com/velachain/vela/pkg/wallet"
)

// Code names of the built-in transactions. The transfer code is the only one
// the development ledger executes; the rest are recorded as accepted no-ops
// until code execution lands.
const (
	updateVpCode      = "tx_update_vp.wasm"
	initAccountCode   = "tx_init_account.wasm"
	initValidatorCode = "tx_init_validator.wasm"
	bondCode          = "tx_bond.wasm"
	unbondCode        = "tx_unbond.wasm"
	withdrawCode      = "tx_withdraw.wasm"
	initProposalCode  = "tx_init_proposal.wasm"
	voteProposalCode  = "tx_vote_proposal.wasm"
)

// promptNewPassword is swappable so key generation is testable without a
// terminal.
var promptNewPassword = wallet.PromptNewPassword

// submitTx signs and submits one transaction. The signing key is the
// explicit --signing-key, else the --signer account's key, else the
// command's natural signer; with none of those the transaction goes out
// unsigned, which only --force should expect to get anywhere.
func (c *Client) submitTx(common *args.Tx, code string, data []byte, defaultSigner *args.WalletAddress) error {
	tx := &pb.Tx{
		ChainId:       c.ctx.ChainID.String(),
		Code:          []byte(code),
		Data:          data,
		TimestampUnix: time.Now().Unix(),
	}

	signer := common.SigningKey
	if signer == nil && common.Signer != nil {
		signer = &args.WalletKeypair{Raw: common.Signer.Raw}
	}
	if signer == nil && defaultSigner != nil {
		signer = &args.WalletKeypair{Raw: defaultSigner.Raw}
	}
	if signer != nil {
		priv, err := c.ctx.Keypair(*signer)
		if err != nil {
			if !common.Force {
				return err
			}
			c.logger.Warnf("cannot resolve signer, submitting unsigned: %v", err)
		} else {
			tx.PubKey = priv.Public().(ed25519.PublicKey)
			tx.Signature = ed25519.Sign(priv, ledger.TxSignBytes(tx))
		}
	}

	if common.DryRun {
		fmt.Printf("Dry run: %s, %d data bytes, fee %s %s, gas limit %s. Not submitted.\n",
			code, len(data), common.FeeAmount, common.FeeToken.Raw, common.GasLimit)
		return nil
	}

	resp, err := c.svc.SubmitTx(context.Background(), &pb.SubmitTxRequest{Tx: tx})
	if err != nil {
		return fmt.Errorf("client: submitting transaction: %v", err)
	}
	if common.BroadcastOnly {
		fmt.Printf("Transaction broadcast with hash %s\n", resp.Hash)
		return nil
	}
	if resp.Code != ledger.CodeOK {
		return fmt.Errorf("transaction %s rejected at height %d: %s", resp.Hash, resp.Height, resp.Info)
	}
	fmt.Printf("Transaction %s applied at height %d\n", resp.Hash, resp.Height)
	return nil
}

// readCode loads transaction or validity predicate code: the literal path
// first, then relative to the chain's wasm directory.
func (c *Client) readCode(path string) ([]byte, error) {
	if b, err := os.ReadFile(path); err == nil {
		return b, nil
	}
	b, err := os.ReadFile(filepath.Join(c.ctx.WasmDir(), path))
	if err != nil {
		return nil, fmt.Errorf("client: reading code %s: %v", path, err)
	}
	return b, nil
}

func (c *Client) submitCustom(a *args.TxCustom) error {
	code, err := c.readCode(a.CodePath)
	if err != nil {
		return err
	}
	var data []byte
	if a.DataPath != nil {
		if data, err = os.ReadFile(*a.DataPath); err != nil {
			return fmt.Errorf("client: reading data %s: %v", *a.DataPath, err)
		}
	}
	return c.submitTx(&a.Tx, string(code), data, nil)
}

func (c *Client) submitTransfer(a *args.TxTransfer) error {
	source, err := c.ctx.Address(a.Source)
	if err != nil {
		return err
	}
	target, err := c.ctx.Address(a.Target)
	if err != nil {
		return err
	}
	token, err := c.ctx.Address(a.Token)
	if err != nil {
		return err
	}
	data, err := proto.Marshal(&pb.Transfer{
		Source: source.String(),
		Target: target.String(),
		Token:  token.String(),
		Amount: uint64(a.Amount),
	})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return c.submitTx(&a.Tx, ledger.TransferCode, data, &a.Source)
}

// updateVpTx is the payload of an update transaction. The predicate code
// travels by digest; nodes fetch it from their own wasm directory.
type updateVpTx struct {
	Address  string `json:"address"`
	VpSha256 string `json:"vp_sha256"`
}

func (c *Client) submitUpdateVp(a *args.TxUpdateVp) error {
	addr, err := c.ctx.Address(a.Address)
	if err != nil {
		return err
	}
	code, err := c.readCode(a.CodePath)
	if err != nil {
		return err
	}
	sum := sha256.Sum256(code)
	data, err := json.Marshal(updateVpTx{Address: addr.String(), VpSha256: hex.EncodeToString(sum[:])})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return c.submitTx(&a.Tx, updateVpCode, data, &a.Address)
}

type initAccountTx struct {
	PublicKey string `json:"public_key"`
	VpSha256  string `json:"vp_sha256,omitempty"`
}

func (c *Client) submitInitAccount(a *args.TxInitAccount) error {
	pub, err := c.ctx.PublicKey(a.PublicKey)
	if err != nil {
		return err
	}
	payload := initAccountTx{PublicKey: hex.EncodeToString(pub)}
	if a.CodePath != nil {
		code, err := c.readCode(*a.CodePath)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(code)
		payload.VpSha256 = hex.EncodeToString(sum[:])
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	if err := c.submitTx(&a.Tx, initAccountCode, data, &a.Source); err != nil {
		return err
	}

	// Store the new account's implicit address under the requested alias.
	if a.InitializedAccountAlias != nil && !a.DryRun {
		addr := types.AddressFromPublicKey(pub)
		if err := c.ctx.Wallet.AddAddress(*a.InitializedAccountAlias, addr); err != nil {
			return err
		}
		fmt.Printf("Added alias %s for address %s\n", *a.InitializedAccountAlias, addr)
	}
	return nil
}

type initValidatorTx struct {
	AccountKey              string `json:"account_key"`
	ConsensusKey            string `json:"consensus_key"`
	ProtocolKey             string `json:"protocol_key"`
	CommissionRate          string `json:"commission_rate"`
	MaxCommissionRateChange string `json:"max_commission_rate_change"`
	VpSha256                string `json:"vp_sha256,omitempty"`
}

func (c *Client) submitInitValidator(a *args.TxInitValidator) error {
	if !a.CommissionRate.InUnitInterval() || !a.MaxCommissionRateChange.InUnitInterval() {
		return fmt.Errorf("client: commission rates must lie between 0 and 1")
	}

	baseAlias := "validator"
	if a.InitializedAccountAlias != nil {
		baseAlias = *a.InitializedAccountAlias
	}

	// Generate any keys not supplied, under derived aliases.
	resolve := func(ref *args.WalletPublicKey, suffix string) (ed25519.PublicKey, error) {
		if ref != nil {
			return c.ctx.PublicKey(*ref)
		}
		return c.genKey(baseAlias+suffix, a.UnsafeDontEncrypt)
	}
	accountKey, err := resolve(a.AccountKey, "-account-key")
	if err != nil {
		return err
	}
	var consensusKey ed25519.PublicKey
	if a.ConsensusKey != nil {
		priv, err := c.ctx.Keypair(*a.ConsensusKey)
		if err != nil {
			return err
		}
		consensusKey = priv.Public().(ed25519.PublicKey)
	} else if consensusKey, err = c.genKey(baseAlias+"-consensus-key", a.UnsafeDontEncrypt); err != nil {
		return err
	}
	protocolKey, err := resolve(a.ProtocolKey, "-protocol-key")
	if err != nil {
		return err
	}

	payload := initValidatorTx{
		AccountKey:              hex.EncodeToString(accountKey),
		ConsensusKey:            hex.EncodeToString(consensusKey),
		ProtocolKey:             hex.EncodeToString(protocolKey),
		CommissionRate:          a.CommissionRate.String(),
		MaxCommissionRateChange: a.MaxCommissionRateChange.String(),
	}
	if a.ValidatorCodePath != nil {
		code, err := c.readCode(*a.ValidatorCodePath)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(code)
		payload.VpSha256 = hex.EncodeToString(sum[:])
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return c.submitTx(&a.Tx, initValidatorCode, data, &a.Source)
}

// genKey generates a wallet keypair under alias, prompting for an encryption
// password unless unsafe plaintext storage was requested.
func (c *Client) genKey(alias string, unsafeDontEncrypt bool) (ed25519.PublicKey, error) {
	var password []byte
	if !unsafeDontEncrypt {
		var err error
		if password, err = promptNewPassword(); err != nil {
			return nil, err
		}
	}
	_, pub, err := c.ctx.Wallet.GenKey(alias, types.SchemeEd25519, password)
	if err != nil {
		return nil, err
	}
	c.logger.Infof("generated key %s", alias)
	return pub, nil
}

type bondTx struct {
	Validator string `json:"validator"`
	Source    string `json:"source,omitempty"`
	Amount    uint64 `json:"amount"`
}

// bondPayload resolves the validator and optional source into a serialized
// bond-shaped payload shared by bond, unbond and withdraw.
func (c *Client) bondPayload(validator args.WalletAddress, source *args.WalletAddress, amount types.Amount) ([]byte, *args.WalletAddress, error) {
	v, err := c.ctx.Address(validator)
	if err != nil {
		return nil, nil, err
	}
	payload := bondTx{Validator: v.String(), Amount: uint64(amount)}
	signer := &validator
	if source != nil {
		s, err := c.ctx.Address(*source)
		if err != nil {
			return nil, nil, err
		}
		payload.Source = s.String()
		signer = source
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("client: %v", err)
	}
	return data, signer, nil
}

func (c *Client) submitBond(a *args.Bond) error {
	data, signer, err := c.bondPayload(a.Validator, a.Source, a.Amount)
	if err != nil {
		return err
	}
	return c.submitTx(&a.Tx, bondCode, data, signer)
}

func (c *Client) submitUnbond(a *args.Unbond) error {
	data, signer, err := c.bondPayload(a.Validator, a.Source, a.Amount)
	if err != nil {
		return err
	}
	return c.submitTx(&a.Tx, unbondCode, data, signer)
}

func (c *Client) submitWithdraw(a *args.Withdraw) error {
	data, signer, err := c.bondPayload(a.Validator, a.Source, 0)
	if err != nil {
		return err
	}
	return c.submitTx(&a.Tx, withdrawCode, data, signer)
}

// offlineProposalFile is the on-disk shape of an offline proposal, also
// embedded in live init-proposal transactions.
type offlineProposalFile struct {
	Content json.RawMessage `json:"content"`
	Author  string          `json:"author,omitempty"`
}

// offlineVoteFile is one ballot cast against an offline proposal.
type offlineVoteFile struct {
	Voter          string `json:"voter"`
	Vote           string `json:"vote"`
	ProposalSha256 string `json:"proposal_sha256"`
}

func (c *Client) submitInitProposal(a *args.InitProposal) error {
	raw, err := os.ReadFile(a.ProposalData)
	if err != nil {
		return fmt.Errorf("client: reading proposal %s: %v", a.ProposalData, err)
	}
	if !json.Valid(raw) {
		return fmt.Errorf("client: %s is not valid JSON", a.ProposalData)
	}

	if a.Offline {
		proposal := offlineProposalFile{Content: raw}
		if a.Signer != nil {
			addr, err := c.ctx.Address(*a.Signer)
			if err != nil {
				return err
			}
			proposal.Author = addr.String()
		}
		blob, err := json.MarshalIndent(proposal, "", "  ")
		if err != nil {
			return fmt.Errorf("client: %v", err)
		}
		if err := os.WriteFile("proposal", blob, 0o644); err != nil {
			return fmt.Errorf("client: %v", err)
		}
		fmt.Println("Offline proposal written to \"proposal\"")
		return nil
	}
	return c.submitTx(&a.Tx, initProposalCode, raw, a.Signer)
}

type voteProposalTx struct {
	ProposalID uint64 `json:"proposal_id"`
	Vote       string `json:"vote"`
}

func (c *Client) submitVoteProposal(a *args.VoteProposal) error {
	if a.Offline {
		if a.ProposalData == nil {
			return fmt.Errorf("client: offline votes need --data-path naming the proposal file")
		}
		if a.Signer == nil {
			return fmt.Errorf("client: offline votes need --signer naming the voter")
		}
		raw, err := os.ReadFile(*a.ProposalData)
		if err != nil {
			return fmt.Errorf("client: reading proposal %s: %v", *a.ProposalData, err)
		}
		voter, err := c.ctx.Address(*a.Signer)
		if err != nil {
			return err
		}
		sum := sha256.Sum256(raw)
		blob, err := json.MarshalIndent(offlineVoteFile{
			Voter:          voter.String(),
			Vote:           a.Vote.String(),
			ProposalSha256: hex.EncodeToString(sum[:]),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("client: %v", err)
		}
		name := fmt.Sprintf("proposal-vote-%s", voter)
		if err := os.WriteFile(filepath.Join(filepath.Dir(*a.ProposalData), name), blob, 0o644); err != nil {
			return fmt.Errorf("client: %v", err)
		}
		fmt.Printf("Offline vote written to %q\n", name)
		return nil
	}

	if a.ProposalID == nil {
		return fmt.Errorf("client: live votes need --proposal-id")
	}
	data, err := json.Marshal(voteProposalTx{ProposalID: *a.ProposalID, Vote: a.Vote.String()})
	if err != nil {
		return fmt.Errorf("client: %v", err)
	}
	return c.submitTx(&a.Tx, voteProposalCode, data, a.Signer)
}
