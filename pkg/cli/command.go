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

import "fmt"

// A Command is one node in a command tree: the token users type to select it,
// its declared arguments, and its child commands. A command with no children
// is a leaf; a command may appear as a top-level command in one executable and
// as a nested subcommand in another without re-declaring anything, as its
// definition is tree-position-agnostic.
type Command struct {
	// Token is the literal string users type to select the command.
	Token string

	// About is the short description shown in usage listings.
	About string

	// Long, if set, is the detailed description shown by 'help <command>'.
	Long string

	// Order determines display position among siblings. Matching is by exact
	// token, so sibling ordering is cosmetic.
	Order int

	parent      *Command
	args        []ArgDef
	groups      []Group
	subs        []*Command
	defaultSub  string
	subRequired bool
}

// A Group is a declared constraint over a set of argument keys: at most one
// of the keys may be supplied, or, if Required, exactly one.
type Group struct {
	Name     string
	Keys     []string
	Required bool
}

// New returns a command selected by the given token.
func New(token, about string) *Command {
	return &Command{Token: token, About: about}
}

// Arg attaches argument definitions to the command. Attaching two definitions
// under one key within the same command is a programming error and panics at
// build time.
func (c *Command) Arg(defs ...ArgDef) *Command {
	for _, def := range defs {
		if _, ok := c.lookup(def.Key); ok {
			panic(fmt.Sprintf("cli: duplicate argument --%s in command %q", def.Key, c.Token))
		}
		c.args = append(c.args, def)
	}
	return c
}

// Sub attaches child commands. Two siblings sharing a token is a programming
// error and panics at build time.
func (c *Command) Sub(subs ...*Command) *Command {
	for _, sub := range subs {
		if c.child(sub.Token) != nil {
			panic(fmt.Sprintf("cli: duplicate subcommand %q under %q", sub.Token, c.Token))
		}
		sub.parent = c
		c.subs = append(c.subs, sub)
	}
	return c
}

// Group declares a mutual-exclusion or required-one-of constraint over the
// command's arguments.
func (c *Command) Group(g Group) *Command {
	c.groups = append(c.groups, g)
	return c
}

// DefaultSub designates the child command selected when no subcommand token
// is given.
func (c *Command) DefaultSub(token string) *Command {
	c.defaultSub = token
	return c
}

// RequireSub marks the command as non-executable on its own: invoking it
// without a subcommand prints its usage and exits.
func (c *Command) RequireSub() *Command {
	c.subRequired = true
	return c
}

// DisplayOrder sets the command's position among its siblings in usage
// listings.
func (c *Command) DisplayOrder(n int) *Command {
	c.Order = n
	return c
}

func (c *Command) lookup(key string) (ArgDef, bool) {
	for _, def := range c.args {
		if def.Key == key {
			return def, true
		}
	}
	return ArgDef{}, false
}

func (c *Command) child(token string) *Command {
	for _, sub := range c.subs {
		if sub.Token == token {
			return sub
		}
	}
	return nil
}

// path returns the command's token path from the root, root token included.
func (c *Command) path() []string {
	if c.parent == nil {
		return []string{c.Token}
	}
	return append(c.parent.path(), c.Token)
}

// validate asserts the tree invariants that cannot be checked incrementally:
// default children exist, and constraint groups name declared arguments.
// Token and key uniqueness per parent are enforced as the tree is built.
func (c *Command) validate() {
	if c.defaultSub != "" && c.child(c.defaultSub) == nil {
		panic(fmt.Sprintf("cli: default subcommand %q not declared under %q", c.defaultSub, c.Token))
	}
	for _, g := range c.groups {
		for _, key := range g.Keys {
			if _, ok := c.lookup(key); !ok {
				panic(fmt.Sprintf("cli: group %q names undeclared argument --%s in command %q", g.Name, key, c.Token))
			}
		}
	}
	for _, def := range c.args {
		for _, key := range def.Conflicts {
			if _, ok := c.lookup(key); !ok {
				panic(fmt.Sprintf("cli: --%s conflicts with undeclared argument --%s in command %q", def.Key, key, c.Token))
			}
		}
	}
	for _, sub := range c.subs {
		sub.validate()
	}
}
