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

import "os"

// A ParseFunc converts the raw text of one command-line value into a T. It is
// the only place type-level validation of an argument happens; anything beyond
// that (e.g. whether an address exists on chain) is not this package's
// concern.
type ParseFunc[T any] func(raw string) (T, error)

// Arg is a required named argument carrying a value of type T. Descriptors are
// constructed once, at package init time, and shared by every command that
// declares the same argument; they are immutable after construction.
type Arg[T any] struct {
	key string
	fn  ParseFunc[T]
}

// NewArg returns a required argument descriptor under the given key.
func NewArg[T any](key string, fn ParseFunc[T]) Arg[T] {
	return Arg[T]{key: key, fn: fn}
}

// Name returns the argument key, as typed by users in its --key form.
func (a Arg[T]) Name() string { return a.key }

// Def yields the declarative description of the argument, consumed by the
// command tree composer.
func (a Arg[T]) Def(about string) ArgDef {
	return ArgDef{Key: a.key, About: about, TakesValue: true, Required: true}
}

// Parse extracts the argument's value from the matched input. An absent value
// or malformed text is a *ParseError naming the key and the offending text.
func (a Arg[T]) Parse(m *Matches) (T, error) {
	var zero T
	raw, ok := m.value(a.key)
	if !ok {
		return zero, &ParseError{Key: a.key}
	}
	v, err := a.fn(raw)
	if err != nil {
		return zero, &ParseError{Key: a.key, Raw: raw, Err: err}
	}
	return v, nil
}

// Opt derives the optional form of the argument, sharing the key and parse
// function.
func (a Arg[T]) Opt() ArgOpt[T] {
	return ArgOpt[T]{arg: a}
}

// Default derives a defaultable form of the argument with a static fallback.
func (a Arg[T]) Default(static T) ArgDefault[T] {
	return ArgDefault[T]{arg: a, static: static}
}

// EnvDefault derives a defaultable form of the argument which consults the
// named environment variable before falling back to the static default. An
// explicit command-line value always takes precedence over the environment.
func (a Arg[T]) EnvDefault(envVar string, static T) ArgDefault[T] {
	return ArgDefault[T]{arg: a, envVar: envVar, static: static}
}

// ArgOpt is the optional form of an argument: absence yields nil rather than
// an error.
type ArgOpt[T any] struct {
	arg Arg[T]
}

func (a ArgOpt[T]) Name() string { return a.arg.key }

func (a ArgOpt[T]) Def(about string) ArgDef {
	return ArgDef{Key: a.arg.key, About: about, TakesValue: true}
}

// Parse extracts the argument's value, or nil when absent. Malformed text is
// still a *ParseError; an optional argument is never silently dropped.
func (a ArgOpt[T]) Parse(m *Matches) (*T, error) {
	raw, ok := m.value(a.arg.key)
	if !ok {
		return nil, nil
	}
	v, err := a.arg.fn(raw)
	if err != nil {
		return nil, &ParseError{Key: a.arg.key, Raw: raw, Err: err}
	}
	return &v, nil
}

// ArgDefault is the defaultable form of an argument. Resolution precedence is
// fixed: explicit value, then the environment variable (if declared), then the
// static default.
type ArgDefault[T any] struct {
	arg    Arg[T]
	envVar string
	static T
}

func (a ArgDefault[T]) Name() string { return a.arg.key }

func (a ArgDefault[T]) Def(about string) ArgDef {
	return ArgDef{Key: a.arg.key, About: about, TakesValue: true}
}

// Parse resolves the argument's value. Malformed text fails with a
// *ParseError whether it came from the command line or the environment; a
// default is never substituted for text that failed to parse.
func (a ArgDefault[T]) Parse(m *Matches) (T, error) {
	var zero T
	if raw, ok := m.value(a.arg.key); ok {
		v, err := a.arg.fn(raw)
		if err != nil {
			return zero, &ParseError{Key: a.arg.key, Raw: raw, Err: err}
		}
		return v, nil
	}
	if a.envVar != "" {
		if raw, ok := os.LookupEnv(a.envVar); ok {
			v, err := a.arg.fn(raw)
			if err != nil {
				return zero, &ParseError{Key: a.arg.key, Raw: raw, Env: a.envVar, Err: err}
			}
			return v, nil
		}
	}
	return a.static, nil
}

// ArgFlag is a boolean argument: presence means true. Flags never fail to
// parse.
type ArgFlag struct {
	key string
}

// Flag returns a boolean flag descriptor under the given key.
func Flag(key string) ArgFlag {
	return ArgFlag{key: key}
}

func (f ArgFlag) Name() string { return f.key }

func (f ArgFlag) Def(about string) ArgDef {
	return ArgDef{Key: f.key, About: about}
}

func (f ArgFlag) Parse(m *Matches) bool {
	return m.flag(f.key)
}

// ArgDef is the declarative description of one argument as seen by the
// command tree composer: its key, help text, cardinality, and any arguments
// it conflicts with.
type ArgDef struct {
	Key        string
	About      string
	TakesValue bool
	Required   bool
	Conflicts  []string
}

// ConflictsWith marks the argument as mutually exclusive with each of the
// given keys. Violations are rejected before any command-specific parse logic
// runs.
func (d ArgDef) ConflictsWith(keys ...string) ArgDef {
	conflicts := make([]string, 0, len(d.Conflicts)+len(keys))
	conflicts = append(conflicts, d.Conflicts...)
	conflicts = append(conflicts, keys...)
	d.Conflicts = conflicts
	return d
}

// Args is a reusable set of argument declarations with a parse that fills the
// implementing struct from matched input. Commands compose sets by chaining
// Def calls on one command node.
type Args interface {
	// Def attaches the set's argument definitions to the command.
	Def(c *Command) *Command
	// Parse fills the receiver from the matched input.
	Parse(m *Matches) error
}
