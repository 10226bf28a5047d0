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

// ParseError reports raw argument text that could not be converted to the
// argument's target type, or a required argument that was absent. It always
// names the offending key; a default is never silently substituted.
type ParseError struct {
	Key string
	Raw string
	Env string // set when the failing text came from an environment variable
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("missing required argument --%s", e.Key)
	}
	if e.Env != "" {
		return fmt.Sprintf("invalid value %q for --%s (from $%s): %v", e.Raw, e.Key, e.Env, e.Err)
	}
	return fmt.Sprintf("invalid value %q for --%s: %v", e.Raw, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ConstraintError reports a violated mutual-exclusion or required-group
// constraint, listing the keys involved.
type ConstraintError struct {
	Keys     []string
	Required bool // a required group had none of its keys supplied
}

func (e *ConstraintError) Error() string {
	keys := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		keys[i] = "--" + k
	}
	if e.Required {
		return fmt.Sprintf("exactly one of %s must be supplied", strings.Join(keys, ", "))
	}
	return fmt.Sprintf("%s are mutually exclusive", strings.Join(keys, ", "))
}

// UsageError reports input that failed to match the command tree: an unknown
// command token, an unknown argument, or malformed argument syntax.
type UsageError struct {
	Cmd *Command
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// HelpRequest is returned when the user asked for help, or when a command
// requiring a subcommand was invoked without one. It is handled by printing
// usage for the named command and terminating with the standard exit code.
type HelpRequest struct {
	Cmd   *Command
	Topic string
}

func (e *HelpRequest) Error() string { return "help requested" }
