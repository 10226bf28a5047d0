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

// The vela-node executable runs and administers a ledger node.
package main

import (
	"io"
	"os"

	"github.com/velachain/vela/pkg/cli/cmds"
	"github.com/velachain/vela/pkg/log"
	"github.com/velachain/vela/pkg/node"
)

func main() {
	c := cmds.VelaNodeCli()

	writer := io.Writer(os.Stderr)
	if c.Global.LogDir != nil {
		writer = log.MultiWriter(writer, log.LogRotationWriter(*c.Global.LogDir, 50<<20 /* 50 MiB */))
	}
	writer = log.SynchronizedWriter(writer)
	logf := log.Lmode | log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC
	logger := log.New(log.Writer(writer), log.Flags(logf))

	err := node.Run(logger, c)
	c.Context.Close()
	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
