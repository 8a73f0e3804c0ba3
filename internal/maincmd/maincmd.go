package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/mna/mainer"
)

const binName = "lox"

var (
	shortUsage = fmt.Sprintf("usage: %s [script]\n", binName)

	longUsage = fmt.Sprintf(`usage: %s [script]
       %[1]s -h|--help
       %[1]s -v|--version

Tree-walking interpreter for the Lox programming language.

With no arguments, starts an interactive REPL. With one argument, reads and
runs the named source file. More than one argument is a usage error.

Development-only subcommands, each printing the resulting AST instead of
evaluating the program:
       tokenize <file>...        Run the scanner and print its tokens.
       parse <file>...           Run the scanner and parser.
       resolve <file>...         Run the scanner, parser and resolver.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
`, binName)
)

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	args  []string
	flags map[string]bool
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}
	if len(c.args) > 0 {
		switch c.args[0] {
		case "tokenize", "parse", "resolve":
			if len(c.args[1:]) == 0 {
				return fmt.Errorf("%s: at least one file must be provided", c.args[0])
			}
		}
	}
	return nil
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)

	if len(c.args) > 0 {
		if cmdFn := buildCmds(c)[c.args[0]]; cmdFn != nil {
			if err := cmdFn(ctx, stdio, c.args[1:]); err != nil {
				return mainer.Failure
			}
			return mainer.Success
		}
	}

	switch len(c.args) {
	case 0:
		if err := RunREPL(ctx, stdio); err != nil {
			fmt.Fprintln(stdio.Stderr, err)
			return mainer.ExitCode(70)
		}
		return mainer.Success

	case 1:
		err := RunFile(ctx, stdio, c.args[0])
		switch {
		case err == nil:
			return mainer.Success
		case errors.As(err, new(*staticError)):
			return mainer.ExitCode(64)
		default:
			return mainer.ExitCode(70)
		}

	default:
		fmt.Fprintf(stdio.Stderr, "Usage: %s [script]\n", binName)
		return mainer.ExitCode(64)
	}
}

// valid commands are those that take a mainer.Stdio and a slice of strings as
// input, and return an error as output.
func buildCmds(v interface{}) map[string]func(context.Context, mainer.Stdio, []string) error {
	cmds := make(map[string]func(context.Context, mainer.Stdio, []string) error)

	vv := reflect.ValueOf(v)
	vt := vv.Type()
	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds[strings.ToLower(m.Name)] = vv.Method(i).Interface().(func(context.Context, mainer.Stdio, []string) error)
	}
	return cmds
}
