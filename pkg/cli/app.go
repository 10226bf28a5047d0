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
	"fmt"
	"os"
	"unicode"
)

// ExitCode is the fixed process exit code for "no command matched", "help
// displayed" and "parse failure". Handler-defined codes apply otherwise.
const ExitCode = 2

// Exit terminates the process. It is a variable so dispatch behavior can be
// observed in-process by tests.
var Exit func(code int) = os.Exit

// SafeExit flushes nothing and terminates with the given code. Parsing never
// mutates external state, so there is nothing to roll back.
func SafeExit(code int) {
	Exit(code)
}

// A Topic is a documentation pseudo-command: listed in usage, selectable only
// through 'help <topic>', never runnable.
type Topic struct {
	Name  string
	Short string
	Long  string
}

// An App is one executable's composed command tree: a root command (whose
// token is the program name), plus optional help topics. Construction
// validates the whole tree; invariant violations (duplicate sibling tokens,
// unknown default children, constraint groups naming undeclared arguments)
// panic at build time rather than surfacing at parse time.
type App struct {
	Abstract string
	Root     *Command
	Topics   []Topic
}

// NewApp composes an executable's command tree and validates it.
func NewApp(abstract string, root *Command, topics ...Topic) *App {
	root.validate()
	return &App{Abstract: abstract, Root: root, Topics: topics}
}

// Name returns the program name the tree was composed for.
func (a *App) Name() string { return a.Root.Token }

// Match structurally matches raw arguments (excluding the program name)
// against the tree, producing the matched-argument tree commands parse
// themselves out of. Global arguments are parsed from the returned root
// regardless of which command was selected. 'help', '-h' and '--help' yield
// a *HelpRequest.
func (a *App) Match(argv []string) (*Matches, error) {
	if len(argv) > 0 && argv[0] == "help" {
		return nil, a.helpRequest(argv[1:])
	}
	return match(a.Root, argv)
}

// helpRequest resolves 'help [command...|topic]' to the command or topic the
// user asked about.
func (a *App) helpRequest(path []string) error {
	if len(path) == 1 {
		for _, t := range a.Topics {
			if t.Name == path[0] {
				return &HelpRequest{Cmd: a.Root, Topic: t.Name}
			}
		}
	}
	cmd := a.Root
	for _, tok := range path {
		child := cmd.child(tok)
		if child == nil {
			return &UsageError{Cmd: a.Root, Msg: fmt.Sprintf("unknown help topic %q", tok)}
		}
		cmd = child
	}
	return &HelpRequest{Cmd: cmd}
}

// Fail reports a dispatch failure to the user and terminates the process
// with the fixed exit code. Help requests print usage to stdout; everything
// else is an error on stderr. Malformed input is always terminal: there is
// no retry.
func (a *App) Fail(err error) {
	switch e := err.(type) {
	case *HelpRequest:
		if e.Topic != "" {
			a.TopicUsage(os.Stdout, e.Topic)
		} else if e.Cmd == a.Root {
			a.Usage(os.Stdout)
		} else {
			a.CommandUsage(os.Stdout, e.Cmd)
		}
	case *UsageError:
		fmt.Fprintln(os.Stderr, upcaseInitial(e.Msg))
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Run '%s help' for available commands.\n", a.Name())
	default:
		fmt.Fprintln(os.Stderr, upcaseInitial(err.Error()))
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "Run '%s help [command]' for usage.\n", a.Name())
	}
	SafeExit(ExitCode)
}

// upcaseInitial capitalizes the first rune of an error message for display.
func upcaseInitial(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return ""
}
