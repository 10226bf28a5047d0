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

// Package node runs parsed vela-node invocations.
package node

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/velachain/vela/pkg/cli/cmds"
	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/ledger"
	"github.com/velachain/vela/pkg/log"
)

// Run executes one node command.
func Run(logger *log.Logger, c *cmds.NodeCli) error {
	switch c.Cmd.(type) {
	case *cmds.LedgerRun:
		return runLedger(logger, c)
	case *cmds.LedgerReset:
		return ledger.Reset(logger, c.Context.Config, c.Global.BaseDir)
	case *cmds.ConfigGen:
		cfg, err := config.Gen(c.Global.BaseDir, c.Context.ChainID, c.Context.Config.Mode)
		if err != nil {
			return err
		}
		logger.Infof("wrote %s for chain %s", config.Path(c.Global.BaseDir, c.Context.ChainID), cfg.ChainID)
		return nil
	}
	return fmt.Errorf("node: unhandled command %T", c.Cmd)
}

// runLedger serves the ledger until the process is interrupted.
func runLedger(logger *log.Logger, c *cmds.NodeCli) error {
	wait, shutdown, err := ledger.Start(logger, c.Context.Config, c.Global.BaseDir)
	if err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sig
		logger.Infof("received %v, shutting down", s)
		shutdown()
	}()

	wait()
	return nil
}
