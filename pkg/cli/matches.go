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
	"strings"
)

// Matches is the matched-argument tree produced by structurally matching raw
// process arguments against a command tree. Each node holds the raw values
// supplied for the arguments its command declares, plus the selected child,
// if any. Typed extraction happens later, through descriptor Parse calls.
type Matches struct {
	cmd    *Command
	parent *Matches
	values map[string]string
	flags  map[string]bool
	sub    *Matches
}

// Sub returns the matches of the selected child iff its token equals the one
// given. This is the command node protocol's selection primitive: parse
// functions probe for their own token and stand down when it was not chosen.
func (m *Matches) Sub(token string) (*Matches, bool) {
	if m.sub == nil || m.sub.cmd.Token != token {
		return nil, false
	}
	return m.sub, true
}

// Selected returns the token of the selected child command, if any.
func (m *Matches) Selected() (string, bool) {
	if m.sub == nil {
		return "", false
	}
	return m.sub.cmd.Token, true
}

// value resolves a raw argument value, consulting ancestors so that arguments
// declared on an outer command (notably the process-wide globals on the root)
// are visible from any nested command's matches.
func (m *Matches) value(key string) (string, bool) {
	for n := m; n != nil; n = n.parent {
		if raw, ok := n.values[key]; ok {
			return raw, true
		}
	}
	return "", false
}

func (m *Matches) flag(key string) bool {
	for n := m; n != nil; n = n.parent {
		if n.flags[key] {
			return true
		}
	}
	return false
}

// given reports whether the argument was supplied at this node, as a value or
// a flag. Constraint groups are scoped to one command, so this does not
// consult ancestors.
func (m *Matches) given(key string) bool {
	if _, ok := m.values[key]; ok {
		return true
	}
	return m.flags[key]
}

// leaf returns the deepest matched node.
func (m *Matches) leaf() *Matches {
	n := m
	for n.sub != nil {
		n = n.sub
	}
	return n
}

// findDef resolves an argument key against the matched chain, innermost
// command first, returning the owning matches node.
func findDef(m *Matches, key string) (ArgDef, *Matches, bool) {
	for n := m; n != nil; n = n.parent {
		if def, ok := n.cmd.lookup(key); ok {
			return def, n, true
		}
	}
	return ArgDef{}, nil, false
}

// match walks raw arguments against the tree rooted at c. Flags bind to the
// innermost command on the matched path that declares them; a bare token
// selects a child command. Unknown flags and unknown tokens terminate the
// match.
func match(c *Command, argv []string) (*Matches, error) {
	root := &Matches{cmd: c, values: map[string]string{}, flags: map[string]bool{}}
	cur := root
	for i := 0; i < len(argv); i++ {
		tok := argv[i]
		switch {
		case tok == "-h" || tok == "--help":
			return nil, &HelpRequest{Cmd: cur.cmd}

		case strings.HasPrefix(tok, "--"):
			key, val, assigned := strings.Cut(tok[2:], "=")
			if key == "" {
				return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("malformed argument %q", tok)}
			}
			def, owner, ok := findDef(cur, key)
			if !ok {
				return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("unknown argument --%s", key)}
			}
			if !def.TakesValue {
				if assigned {
					return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("--%s is a flag and takes no value", key)}
				}
				owner.flags[key] = true
				continue
			}
			if !assigned {
				if i+1 >= len(argv) {
					return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("--%s requires a value", key)}
				}
				i++
				val = argv[i]
			}
			if _, dup := owner.values[key]; dup {
				return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("--%s supplied more than once", key)}
			}
			owner.values[key] = val

		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("unknown argument %q (long-form --keys only)", tok)}

		default:
			child := cur.cmd.child(tok)
			if child == nil {
				return nil, &UsageError{Cmd: cur.cmd, Msg: fmt.Sprintf("unknown command %q", tok)}
			}
			next := &Matches{cmd: child, parent: cur, values: map[string]string{}, flags: map[string]bool{}}
			cur.sub = next
			cur = next
		}
	}

	if cur.sub == nil && cur.cmd.defaultSub != "" {
		child := cur.cmd.child(cur.cmd.defaultSub)
		cur.sub = &Matches{cmd: child, parent: cur, values: map[string]string{}, flags: map[string]bool{}}
	}
	if cur.cmd.subRequired && cur.sub == nil {
		return nil, &HelpRequest{Cmd: cur.cmd}
	}
	if err := checkConstraints(root); err != nil {
		return nil, err
	}
	return root, nil
}

// checkConstraints enforces declared mutual-exclusion and required-group
// constraints over every node on the matched path, before any command parse
// logic runs. Violations share one error shape regardless of the declaring
// command.
func checkConstraints(root *Matches) error {
	for m := root; m != nil; m = m.sub {
		for _, def := range m.cmd.args {
			if !m.given(def.Key) {
				continue
			}
			for _, other := range def.Conflicts {
				if m.given(other) {
					return &ConstraintError{Keys: []string{def.Key, other}}
				}
			}
		}
		for _, g := range m.cmd.groups {
			var given []string
			for _, key := range g.Keys {
				if m.given(key) {
					given = append(given, key)
				}
			}
			if len(given) > 1 {
				return &ConstraintError{Keys: given}
			}
			if g.Required && len(given) == 0 {
				return &ConstraintError{Keys: g.Keys, Required: true}
			}
		}
	}
	return nil
}
