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
	"io"
	"sort"
	"strings"
	"text/template"
)

var usageTemplate = `{{.Abstract}}

Usage:

    {{.Name}} command [arguments]

The commands are:
{{range .Commands}}
    {{printf "%-24s" .Token}}{{.About}}{{end}}

Use '{{.Name}} help [command]' for more information about a command.
{{if .Topics}}
Additional help topics:
{{range .Topics}}
    {{printf "%-24s" .Name}}{{.Short}}{{end}}

Use '{{.Name}} help [topic]' for more information about that topic.
{{end}}`

var topicTemplate = `Topic: {{.Short}}

{{.Long | trim}}
`

// tmpl executes the given template text on data, writing the result to w.
func tmpl(w io.Writer, text string, data interface{}) {
	t := template.New("usage")
	t.Funcs(template.FuncMap{"trim": strings.TrimSpace})
	template.Must(t.Parse(text))
	if err := t.Execute(w, data); err != nil {
		panic(err)
	}
}

// Usage prints the executable's full top-level usage: abstract, top-level
// commands in display order, and help topics.
func (a *App) Usage(w io.Writer) {
	tmpl(w, usageTemplate, struct {
		Abstract string
		Name     string
		Commands []*Command
		Topics   []Topic
	}{a.Abstract, a.Name(), displayOrder(a.Root.subs), a.Topics})
}

// CommandUsage prints usage for one command: its usage line, description,
// subcommands and arguments.
func (a *App) CommandUsage(w io.Writer, c *Command) {
	fmt.Fprintf(w, "Usage: %s\n\n", usageLine(c))
	about := c.About
	if c.Long != "" {
		about = strings.TrimSpace(c.Long)
	}
	fmt.Fprintln(w, about)
	if len(c.subs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "The commands are:")
		fmt.Fprintln(w)
		for _, sub := range displayOrder(c.subs) {
			fmt.Fprintf(w, "    %-24s%s\n", sub.Token, sub.About)
		}
	}
	if len(c.args) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "The arguments are:")
		fmt.Fprintln(w)
		for _, def := range c.args {
			fmt.Fprintf(w, "    %-24s%s\n", argSyntax(def), def.About)
		}
	}
}

// TopicUsage prints the long-form text of a help topic.
func (a *App) TopicUsage(w io.Writer, name string) {
	for _, t := range a.Topics {
		if t.Name == name {
			tmpl(w, topicTemplate, t)
			return
		}
	}
}

// usageLine renders a command's one-line usage: token path, then required
// arguments, then bracketed optionals and flags, then a command placeholder
// if the node has children.
func usageLine(c *Command) string {
	var b strings.Builder
	b.WriteString(strings.Join(c.path(), " "))
	if len(c.subs) > 0 {
		if c.subRequired {
			b.WriteString(" command")
		} else {
			b.WriteString(" [command]")
		}
	}
	for _, def := range c.args {
		if def.Required {
			b.WriteString(" " + argSyntax(def))
		}
	}
	for _, def := range c.args {
		if !def.Required {
			b.WriteString(" [" + argSyntax(def) + "]")
		}
	}
	return b.String()
}

func argSyntax(def ArgDef) string {
	if def.TakesValue {
		return fmt.Sprintf("--%s <%s>", def.Key, def.Key)
	}
	return "--" + def.Key
}

// displayOrder returns siblings sorted for display. Matching is unaffected;
// order exists only for the help surface.
func displayOrder(subs []*Command) []*Command {
	sorted := make([]*Command, len(subs))
	copy(sorted, subs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}
