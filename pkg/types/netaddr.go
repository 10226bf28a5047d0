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

package types

import (
	"fmt"
	"net"
	"strings"
)

// DefaultLedgerAddress is the node RPC endpoint clients dial when none is
// given.
var DefaultLedgerAddress = NodeAddress{Scheme: "tcp", Host: "127.0.0.1", Port: "26657"}

// A NodeAddress locates a node's RPC endpoint: an optional scheme, a host,
// and a port. The scheme defaults to tcp.
type NodeAddress struct {
	Scheme string
	Host   string
	Port   string
}

// ParseNodeAddress parses "[scheme://]host:port".
func ParseNodeAddress(s string) (NodeAddress, error) {
	scheme := "tcp"
	if pre, rest, ok := strings.Cut(s, "://"); ok {
		if pre == "" {
			return NodeAddress{}, fmt.Errorf("malformed node address %q", s)
		}
		scheme, s = pre, rest
	}
	host, port, err := net.SplitHostPort(s)
	if err != nil || host == "" || port == "" {
		return NodeAddress{}, fmt.Errorf("malformed node address %q: want host:port", s)
	}
	return NodeAddress{Scheme: scheme, Host: host, Port: port}, nil
}

func (n NodeAddress) String() string {
	return fmt.Sprintf("%s://%s", n.Scheme, net.JoinHostPort(n.Host, n.Port))
}

// HostPort renders the address without its scheme, as dialers expect.
func (n NodeAddress) HostPort() string { return net.JoinHostPort(n.Host, n.Port) }
