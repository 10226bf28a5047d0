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

package cli

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

var (
	testStr  = NewArg("name", func(raw string) (string, error) { return raw, nil })
	testPort = NewArg("port", func(raw string) (int, error) { return strconv.Atoi(raw) })
	testDry  = Flag("dry-run")
)

func testTree() *Command {
	return New("prog", "test program").
		Arg(testStr.Opt().Def("a global name")).
		Sub(
			New("serve", "serve things").
				Arg(testPort.Default(8080).Def("listen port")).
				Arg(testDry.Def("do not write")),
			New("store", "store things").RequireSub().Sub(
				New("put", "store one thing"),
				New("get", "fetch one thing"),
			),
			New("ledger", "drive the ledger").DefaultSub("run").Sub(
				New("run", "run until shutdown"),
				New("reset", "delete state"),
			),
		)
}

func TestMatchSelectsNestedCommand(t *testing.T) {
	m, err := match(testTree(), []string{"store", "put"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	store, ok := m.Sub("store")
	if !ok {
		t.Fatal("store not selected")
	}
	if _, ok := store.Sub("put"); !ok {
		t.Fatal("put not selected")
	}
	if _, ok := store.Sub("get"); ok {
		t.Fatal("get reported as selected")
	}
}

func TestMatchBindsGlobalFromLeaf(t *testing.T) {
	m, err := match(testTree(), []string{"--name", "vela", "serve", "--port=9000"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	serve, _ := m.Sub("serve")
	name, err := testStr.Opt().Parse(serve)
	if err != nil || name == nil || *name != "vela" {
		t.Fatalf("name = %v, %v; want vela", name, err)
	}
	port, err := testPort.Default(8080).Parse(serve)
	if err != nil || port != 9000 {
		t.Fatalf("port = %d, %v; want 9000", port, err)
	}
}

func TestMatchGlobalAfterSubcommand(t *testing.T) {
	m, err := match(testTree(), []string{"serve", "--name", "vela"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	name, err := testStr.Opt().Parse(m.leaf())
	if err != nil || name == nil || *name != "vela" {
		t.Fatalf("name = %v, %v; want vela", name, err)
	}
}

func TestDefaultPrecedence(t *testing.T) {
	def := testPort.EnvDefault("VELA_TEST_PORT", 8080)
	tree := New("prog", "").Arg(def.Def("listen port"))

	m, err := match(tree, nil)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if port, _ := def.Parse(m); port != 8080 {
		t.Fatalf("static default: port = %d; want 8080", port)
	}

	t.Setenv("VELA_TEST_PORT", "9001")
	if port, _ := def.Parse(m); port != 9001 {
		t.Fatalf("env default: port = %d; want 9001", port)
	}

	m, err = match(tree, []string{"--port", "9002"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if port, _ := def.Parse(m); port != 9002 {
		t.Fatalf("explicit value: port = %d; want 9002", port)
	}
}

func TestEnvParseFailureNamesVariable(t *testing.T) {
	def := testPort.EnvDefault("VELA_TEST_PORT", 8080)
	tree := New("prog", "").Arg(def.Def("listen port"))
	t.Setenv("VELA_TEST_PORT", "not-a-port")

	m, err := match(tree, nil)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	_, err = def.Parse(m)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v; want *ParseError", err)
	}
	if perr.Env != "VELA_TEST_PORT" || perr.Raw != "not-a-port" {
		t.Fatalf("perr = %+v; want env and raw text recorded", perr)
	}
	if !strings.Contains(err.Error(), "VELA_TEST_PORT") {
		t.Fatalf("error %q does not name the variable", err)
	}
}

func TestMissingRequiredArgument(t *testing.T) {
	tree := New("prog", "").Arg(testStr.Def("a name"))
	m, err := match(tree, nil)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	_, err = testStr.Parse(m)
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Key != "name" {
		t.Fatalf("err = %v; want *ParseError for --name", err)
	}
}

func TestMatchRejectsUnknowns(t *testing.T) {
	for _, argv := range [][]string{
		{"frobnicate"},
		{"--bogus", "1"},
		{"-p", "1"},
		{"serve", "--port"},
		{"serve", "--port=1", "--port=2"},
		{"serve", "--dry-run=yes"},
	} {
		_, err := match(testTree(), argv)
		var uerr *UsageError
		if !errors.As(err, &uerr) {
			t.Errorf("match(%v) = %v; want *UsageError", argv, err)
		}
	}
}

func TestRequireSubYieldsHelp(t *testing.T) {
	_, err := match(testTree(), []string{"store"})
	var help *HelpRequest
	if !errors.As(err, &help) {
		t.Fatalf("err = %v; want *HelpRequest", err)
	}
	if help.Cmd.Token != "store" {
		t.Fatalf("help for %q; want store", help.Cmd.Token)
	}
}

func TestDefaultSubSelected(t *testing.T) {
	m, err := match(testTree(), []string{"ledger"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	ledger, _ := m.Sub("ledger")
	if tok, ok := ledger.Selected(); !ok || tok != "run" {
		t.Fatalf("selected = %q, %v; want run", tok, ok)
	}

	m, err = match(testTree(), []string{"ledger", "reset"})
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	ledger, _ = m.Sub("ledger")
	if tok, _ := ledger.Selected(); tok != "reset" {
		t.Fatalf("selected = %q; want reset", tok)
	}
}

func TestConflictingArguments(t *testing.T) {
	key := NewArg("key", func(raw string) (string, error) { return raw, nil })
	signer := NewArg("signer", func(raw string) (string, error) { return raw, nil })
	tree := New("prog", "").
		Arg(key.Opt().Def("signing key").ConflictsWith("signer")).
		Arg(signer.Opt().Def("signer address"))

	if _, err := match(tree, []string{"--key", "a"}); err != nil {
		t.Fatalf("single argument rejected: %v", err)
	}
	_, err := match(tree, []string{"--key", "a", "--signer", "b"})
	var cerr *ConstraintError
	if !errors.As(err, &cerr) {
		t.Fatalf("err = %v; want *ConstraintError", err)
	}
	if !strings.Contains(err.Error(), "--key") || !strings.Contains(err.Error(), "--signer") {
		t.Fatalf("error %q does not name both keys", err)
	}
}

func TestRequiredGroup(t *testing.T) {
	alias := NewArg("alias", func(raw string) (string, error) { return raw, nil })
	addr := NewArg("address", func(raw string) (string, error) { return raw, nil })
	tree := func() *Command {
		return New("prog", "").
			Arg(alias.Opt().Def("an alias")).
			Arg(addr.Opt().Def("an address")).
			Group(Group{Name: "target", Keys: []string{"alias", "address"}, Required: true})
	}

	if _, err := match(tree(), []string{"--alias", "a"}); err != nil {
		t.Fatalf("one of group rejected: %v", err)
	}
	var cerr *ConstraintError
	if _, err := match(tree(), nil); !errors.As(err, &cerr) || !cerr.Required {
		t.Fatalf("empty group: err = %v; want required *ConstraintError", err)
	}
	if _, err := match(tree(), []string{"--alias", "a", "--address", "b"}); !errors.As(err, &cerr) {
		t.Fatalf("full group: err = %v; want *ConstraintError", err)
	}
}

func TestHelpInterception(t *testing.T) {
	app := NewApp("Test program.", testTree(), Topic{Name: "environment", Short: "env vars", Long: "body"})

	_, err := app.Match([]string{"help", "store", "put"})
	var help *HelpRequest
	if !errors.As(err, &help) || help.Cmd.Token != "put" {
		t.Fatalf("err = %v; want help for put", err)
	}

	_, err = app.Match([]string{"help", "environment"})
	if !errors.As(err, &help) || help.Topic != "environment" {
		t.Fatalf("err = %v; want topic help", err)
	}

	_, err = app.Match([]string{"serve", "--help"})
	if !errors.As(err, &help) || help.Cmd.Token != "serve" {
		t.Fatalf("err = %v; want help for serve", err)
	}

	var uerr *UsageError
	if _, err = app.Match([]string{"help", "frobnicate"}); !errors.As(err, &uerr) {
		t.Fatalf("err = %v; want *UsageError", err)
	}
}

func TestDuplicateDeclarationsPanic(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("duplicate argument", func() {
		New("prog", "").Arg(testStr.Def("a"), testStr.Opt().Def("b"))
	})
	mustPanic("duplicate sibling token", func() {
		New("prog", "").Sub(New("x", ""), New("x", ""))
	})
	mustPanic("unknown default sub", func() {
		NewApp("", New("prog", "").Sub(New("x", "")).DefaultSub("y"))
	})
	mustPanic("group over undeclared key", func() {
		NewApp("", New("prog", "").Group(Group{Name: "g", Keys: []string{"nope"}}))
	})
}

func TestCommandReusableAcrossTrees(t *testing.T) {
	leaf := func() *Command {
		return New("transfer", "send tokens").Arg(testStr.Def("source name"))
	}
	top := New("vela-client", "").Sub(leaf())
	nested := New("vela", "").Sub(New("client", "").Sub(leaf()))

	m, err := match(top, []string{"transfer", "--name", "a"})
	if err != nil {
		t.Fatalf("top-level: %v", err)
	}
	if got := strings.Join(m.leaf().cmd.path(), " "); got != "vela-client transfer" {
		t.Fatalf("path = %q", got)
	}
	m, err = match(nested, []string{"client", "transfer", "--name", "a"})
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if got := strings.Join(m.leaf().cmd.path(), " "); got != "vela client transfer" {
		t.Fatalf("path = %q", got)
	}
}
