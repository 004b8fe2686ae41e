package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/fzft/go-intset/deps/linenoise"
	"github.com/fzft/go-intset/intset"
	"github.com/fzft/go-intset/resp"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

type OutputMode uint8

const (
	OutputStandard OutputMode = iota
	OutputRaw
	OutputResp
)

// ParseOutputMode accepts "standard", "raw" or "resp".
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(s) {
	case "standard":
		return OutputStandard, nil
	case "raw":
		return OutputRaw, nil
	case "resp":
		return OutputResp, nil
	default:
		return 0, fmt.Errorf("unknown output mode %q", s)
	}
}

// Cli is an interactive shell over a keyspace of named int sets.
type Cli struct {
	config   *Config
	output   OutputMode
	out      io.Writer
	logger   *zap.Logger
	errColor *color.Color
	commands map[string]*cliCommand
	keyspace map[string]*intset.IntHashSet
	quit     bool
}

// NewCli creates a shell writing replies to out. When config.Output is
// empty the output mode is standard on a terminal and raw otherwise.
func NewCli(config *Config, out io.Writer, logger *zap.Logger) (*Cli, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cli := &Cli{
		config:   config,
		out:      out,
		logger:   logger,
		errColor: color.New(color.FgRed),
		commands: newCommandTable(),
		keyspace: make(map[string]*intset.IntHashSet),
	}

	tty := isTerminal(out)
	if config.Output == "" {
		if tty {
			cli.output = OutputStandard
		} else {
			cli.output = OutputRaw
		}
	} else {
		mode, err := ParseOutputMode(config.Output)
		if err != nil {
			return nil, err
		}
		cli.output = mode
	}

	if !tty {
		cli.errColor.DisableColor()
	}

	return cli, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// lookup returns the set stored at key, or an empty set that is not stored.
func (c *Cli) lookup(key string) *intset.IntHashSet {
	if s, ok := c.keyspace[key]; ok {
		return s
	}
	return intset.New()
}

func (c *Cli) lookupOrCreate(key string) *intset.IntHashSet {
	if s, ok := c.keyspace[key]; ok {
		return s
	}

	opts := []intset.Option{intset.WithLogger(c.logger.With(zap.String("key", key)))}
	if c.config.DebugChecks {
		opts = append(opts, intset.WithDebugChecks())
	}
	s := intset.New(opts...)
	c.keyspace[key] = s
	c.logger.Debug("set created", zap.String("key", key))
	return s
}

func (c *Cli) commandNames() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exec runs one command given as separate words. A nil reply means there is
// nothing to print.
func (c *Cli) Exec(argv []string) resp.Node {
	if len(argv) == 0 {
		return nil
	}

	name := strings.ToLower(argv[0])
	cmd, ok := c.commands[name]
	if !ok {
		c.logger.Debug("unknown command", zap.String("name", argv[0]))
		return resp.Err(fmt.Sprintf("unknown command '%s'", argv[0]))
	}

	args := argv[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return resp.Err(fmt.Sprintf("wrong number of arguments for '%s' command", cmd.name))
	}

	c.logger.Debug("command", zap.String("name", cmd.name), zap.Strings("args", args))
	return cmd.proc(c, args)
}

// Execute splits line on whitespace and runs it.
func (c *Cli) Execute(line string) resp.Node {
	return c.Exec(strings.Fields(line))
}

// Print writes reply to the output in the configured mode.
func (c *Cli) Print(reply resp.Node) error {
	if reply == nil {
		return nil
	}

	var out string
	switch c.output {
	case OutputResp:
		_, err := c.out.Write(resp.Encode(reply))
		return err
	case OutputRaw:
		out = resp.FormatRaw(reply)
	default:
		out = resp.Format(reply)
		if _, isErr := reply.(resp.Error); isErr {
			out = c.errColor.Sprint(out)
		}
	}

	_, err := fmt.Fprintln(c.out, out)
	return err
}

// Quit reports whether a QUIT command was executed.
func (c *Cli) Quit() bool {
	return c.quit
}

// Run reads commands from in until EOF or QUIT. It starts the line editing
// REPL when both in and the output are terminals, and reads one command per
// line otherwise.
func (c *Cli) Run(in io.Reader) error {
	if isTerminal(in) && isTerminal(c.out) {
		return c.repl()
	}
	return c.pipe(in)
}

func (c *Cli) pipe(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !c.quit && scanner.Scan() {
		if err := c.Print(c.Execute(scanner.Text())); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (c *Cli) repl() error {
	ln := linenoise.New()
	defer ln.Close()

	ln.SetWordCompletion(c.commandNames())
	if c.config.HistoryFile != "" {
		if err := ln.HistoryLoad(c.config.HistoryFile); err != nil {
			c.logger.Warn("failed to load history", zap.String("file", c.config.HistoryFile), zap.Error(err))
		}
	}

	for !c.quit {
		line, err := ln.Prompt(c.config.Prompt)
		if errors.Is(err, linenoise.ErrAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		argv := strings.Fields(line)
		if len(argv) == 0 {
			continue
		}
		ln.AppendHistory(line)

		if len(argv) == 1 && strings.EqualFold(argv[0], "clear") {
			if err := ln.ClearScreen(c.out); err != nil {
				return err
			}
			continue
		}

		if err := c.Print(c.Exec(argv)); err != nil {
			return err
		}
	}

	if c.config.HistoryFile != "" {
		if err := ln.HistorySave(c.config.HistoryFile); err != nil {
			c.logger.Warn("failed to save history", zap.String("file", c.config.HistoryFile), zap.Error(err))
		}
	}
	return nil
}
