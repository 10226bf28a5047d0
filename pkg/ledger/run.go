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
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/soheilhy/cmux"
	"google.golang.org/grpc"

	"github.com/velachain/vela/pkg/config"
	"github.com/velachain/vela/pkg/log"
	pb "github.com/velachain/vela/pkg/rpc/ledger"
	"github.com/velachain/vela/pkg/types"
)

// Start brings up the ledger service for the chain configured under baseDir:
// state is opened from the chain's db directory and the RPC server starts on
// the configured listen address, multiplexing grpc and a plain HTTP health
// endpoint over one listener. The returned wait blocks until the server
// stops; shutdown tears everything down.
func Start(logger *log.Logger, cfg *config.Config, baseDir string) (wait func(), shutdown func(), err error) {
	var wg sync.WaitGroup

	chainID := types.ChainID(cfg.ChainID)
	listen, err := types.ParseNodeAddress(cfg.Ledger.ListenAddress)
	if err != nil {
		return nil, nil, fmt.Errorf("ledger: %v", err)
	}

	store, err := OpenStore(filepath.Join(config.ChainDir(baseDir, chainID), cfg.Ledger.DBDir))
	if err != nil {
		return nil, nil, err
	}

	lis, err := net.Listen("tcp", listen.HostPort())
	if err != nil {
		store.Close()
		logger.Errorf("failed to open TCP port: %v", err)
		return nil, nil, err
	}

	// Multiplex grpc and http over the same listener: grpc first, everything
	// else is served the health endpoint.
	mux := cmux.New(lis)
	grpcL := mux.Match(cmux.HTTP2HeaderField("content-type", "application/grpc"))
	httpL := mux.Match(cmux.Any())

	grpcServer := grpc.NewServer()
	pb.RegisterLedgerServiceServer(grpcServer, NewServer(logger, chainID, store))

	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "%s %s\n", chainID, cfg.Mode)
	})
	httpServer := http.Server{Handler: healthMux}

	wg.Add(1)
	go func() {
		defer wg.Done()

		logger.Infof("serving ledger RPC for chain %s on %s", chainID, listen.HostPort())
		if err := grpcServer.Serve(grpcL); err != nil {
			logger.Errorf("grpc server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := httpServer.Serve(httpL); err != nil && err != http.ErrServerClosed {
			logger.Errorf("http server error: %v", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()

		if err := mux.Serve(); err != nil {
			logger.Errorf("cmux server error: %v", err)
		}
	}()

	shutdown = func() {
		lis.Close()
		grpcServer.Stop()
		httpServer.Shutdown(context.Background())
		store.Close()
	}

	return wg.Wait, shutdown, nil
}

// Reset deletes the chain's db directory under baseDir. The config file and
// the rest of the chain directory are kept.
func Reset(logger *log.Logger, cfg *config.Config, baseDir string) error {
	chainID := types.ChainID(cfg.ChainID)
	dbDir := filepath.Join(config.ChainDir(baseDir, chainID), cfg.Ledger.DBDir)
	if err := os.RemoveAll(dbDir); err != nil {
		return fmt.Errorf("ledger: resetting %s: %v", dbDir, err)
	}
	logger.Infof("removed chain state at %s", dbDir)
	return nil
}
