// Package commands is the booleval command line interface.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/booleval/src/config"
	"github.com/eriklarko/booleval/src/tui"
	"github.com/urfave/cli"
)

const Version = "0.3.0"

const expressionHelp = `EXPRESSIONS:
   identifiers  a-z
   literals     true, 1, false, 0
   operators    ! (not), & (and), | (or), ^ (xor), from tightest to loosest
   grouping     ( )`

const truthDescription = `Values are matched to identifiers in the order they appear in the expression,
   either as one binary string (101), one decimal number (5) or one boolean per identifier (true false true).`

// Runner holds what the commands need to talk to the outside world.
type Runner struct {
	out    io.Writer
	errOut io.Writer
	ui     *tui.TUI

	logLevel *slog.LevelVar
	config   *config.Config
}

func NewRunner(out, errOut io.Writer, ui *tui.TUI) *Runner {
	return &Runner{
		out:      out,
		errOut:   errOut,
		ui:       ui,
		logLevel: new(slog.LevelVar),
		config:   config.Default(),
	}
}

func (r *Runner) NewApp() *cli.App {
	app := cli.NewApp()

	app.Name = "booleval"
	app.Usage = "evaluate boolean expressions, print their truth tables and syntax trees"
	app.Version = Version
	app.Writer = r.out
	app.ErrWriter = r.errOut
	app.CustomAppHelpTemplate = cli.AppHelpTemplate + expressionHelp + "\n"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to the config file, defaults to booleval/config.yaml in the user config directory",
		},
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "log debug output",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "eval",
			Aliases:   []string{"e"},
			Usage:     "evaluate an expression without identifiers",
			ArgsUsage: "<expression>",
			Action:    r.action(r.handleEval),
		},
		{
			Name:      "table",
			Aliases:   []string{"T"},
			Usage:     "print the truth table of an expression",
			ArgsUsage: "<expression>",
			Action:    r.action(r.handleTable),
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "true, t",
					Usage: "only print rows where the expression is true",
				},
				cli.BoolFlag{
					Name:  "false, f",
					Usage: "only print rows where the expression is false",
				},
				cli.BoolFlag{
					Name:  "csv",
					Usage: "print the table as CSV",
				},
				cli.BoolFlag{
					Name:  "summary, s",
					Usage: "print whether the expression is a tautology, a contradiction or neither",
				},
			},
		},
		{
			Name:        "truth",
			Aliases:     []string{"t"},
			Usage:       "evaluate an expression with the given identifier values",
			ArgsUsage:   "<values...> <expression>",
			Description: truthDescription,
			Action:      r.action(r.handleTruth),
		},
		{
			Name:      "ast",
			Aliases:   []string{"a"},
			Usage:     "print the syntax tree of an expression",
			ArgsUsage: "<expression>",
			Action:    r.action(r.handleAst),
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "pretty, p",
					Usage: "draw branches with box drawing characters",
				},
				cli.BoolFlag{
					Name:  "extended, e",
					Usage: "label operators by name",
				},
			},
		},
		{
			Name:   "config",
			Usage:  "print the config in use",
			Action: r.action(r.handleConfig),
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "write, w",
					Usage: "store the config at the config path",
				},
			},
		},
	}

	return app
}

// Run runs the app and prints any error. It returns the process exit code.
func (r *Runner) Run(args []string) int {
	if err := r.NewApp().Run(args); err != nil {
		PrintError(r.errOut, err)
		return 1
	}
	return 0
}

// action runs setup before the handler, errors from both end up in Run
func (r *Runner) action(handler func(c *cli.Context) error) func(c *cli.Context) error {
	return func(c *cli.Context) error {
		if err := r.setup(c); err != nil {
			return err
		}
		return handler(c)
	}
}

func (r *Runner) setup(c *cli.Context) error {
	slog.SetDefault(slog.New(slog.NewTextHandler(r.errOut, &slog.HandlerOptions{Level: r.logLevel})))
	if c.GlobalBool("verbose") {
		r.logLevel.Set(slog.LevelDebug)
	} else {
		r.logLevel.Set(slog.LevelWarn)
	}

	path := c.GlobalString("config")
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			slog.Debug("using default config", "reason", err)
			return nil
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) && (!explicit || creatingConfig(c)) {
			slog.Debug("no config file, using defaults", "path", path)
			r.config.Path = path
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	slog.Debug("loaded config", "path", path)
	r.config = cfg
	return nil
}

// creatingConfig is true for `config --write`, which may target a file that
// doesn't exist yet
func creatingConfig(c *cli.Context) bool {
	return c.Command.Name == "config" && c.Bool("write")
}
