package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eriklarko/booleval/src/assignment"
	"github.com/eriklarko/booleval/src/boolexpr"
	"github.com/eriklarko/booleval/src/output"
	"github.com/eriklarko/booleval/src/treeprint"
	"github.com/eriklarko/booleval/src/tui"
	"github.com/samber/lo"
	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

var errMissingExpression = errors.New("missing expression")

// expression joins the arguments so unquoted expressions like `a & b` work
// when the shell leaves them alone
func expression(c *cli.Context) (string, error) {
	if !c.Args().Present() {
		return "", errMissingExpression
	}
	return strings.Join(c.Args(), " "), nil
}

func (r *Runner) handleEval(c *cli.Context) error {
	input, err := expression(c)
	if err != nil {
		return err
	}

	node, err := boolexpr.ParseWithOptions(input, boolexpr.TokenizeOptions{AllowIdentifiers: false})
	if err != nil {
		return NewExpressionError(input, err)
	}

	result, err := node.Solve(boolexpr.Binding{})
	if err != nil {
		return NewExpressionError(input, err)
	}

	fmt.Fprintln(r.out, result)
	return nil
}

func (r *Runner) handleTable(c *cli.Context) error {
	onlyTrue, onlyFalse := c.Bool("true"), c.Bool("false")
	if onlyTrue && onlyFalse {
		return errors.New("cannot filter for both true and false rows")
	}

	input, err := expression(c)
	if err != nil {
		return err
	}

	node, err := boolexpr.Parse(input)
	if err != nil {
		return NewExpressionError(input, err)
	}

	order := node.Identifiers()
	proceed, err := r.confirmLargeTable(len(order), node.RowCount())
	if err != nil || !proceed {
		return err
	}

	format := r.config.Format()
	if c.Bool("csv") {
		format = output.FormatCSV
	}

	rows := node.TruthTable()

	// rows are only counted when the summary is printed or logged
	summary := c.Bool("summary")
	var report *output.Report
	if summary || slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		report = &output.Report{}
		rows = report.Track(rows)
	}

	if onlyTrue || onlyFalse {
		rows = boolexpr.FilterRows(rows, onlyTrue)
	}

	slog.Debug("printing truth table", "expression", node, "identifiers", string(order), "rows", node.RowCount(), "format", format)
	if err := output.WriteTable(r.out, order, rows, format); err != nil {
		return fmt.Errorf("failed to print truth table: %w", err)
	}

	if report == nil {
		return nil
	}
	slog.Debug("printed truth table", "summary", report.Summary())
	if summary {
		return report.WriteSummary(r.out)
	}
	return nil
}

// confirmLargeTable asks before enumerating a table with many identifiers.
// Without a terminal to ask it warns and goes ahead.
func (r *Runner) confirmLargeTable(identifiers int, rows uint64) (bool, error) {
	limit := r.config.TableWarningIdentifiers
	if limit <= 0 || identifiers < limit {
		return true, nil
	}

	if !tui.IsInteractive() {
		slog.Warn("printing a large truth table", "identifiers", identifiers, "rows", rows)
		return true, nil
	}

	proceed, err := r.ui.Confirm("The expression has %d identifiers, the table will have %d rows. Continue?", identifiers, rows)
	if err != nil {
		return false, err
	}
	if !proceed {
		slog.Info("truth table cancelled")
	}
	return proceed, nil
}

func (r *Runner) handleTruth(c *cli.Context) error {
	args := c.Args()
	if !args.Present() {
		return errMissingExpression
	}
	input := args[len(args)-1]
	values := args[:len(args)-1]

	node, err := boolexpr.Parse(input)
	if err != nil {
		return NewExpressionError(input, err)
	}

	order := node.Identifiers()
	counter, err := assignment.Counter(values, len(order))
	if err != nil {
		return fmt.Errorf("failed to read identifier values: %w", err)
	}

	row, err := node.RowFor(counter)
	if err != nil {
		return NewExpressionError(input, err)
	}
	slog.Debug("evaluating", "expression", node, "binding", formatAssignment(row.Assignment))

	fmt.Fprintln(r.out, row.Result)
	return nil
}

func (r *Runner) handleAst(c *cli.Context) error {
	input, err := expression(c)
	if err != nil {
		return err
	}

	node, err := boolexpr.Parse(input)
	if err != nil {
		return NewExpressionError(input, err)
	}

	style := r.config.Style()
	if c.Bool("pretty") || c.Bool("extended") {
		style = treeprint.StyleFromFlags(c.Bool("pretty"), c.Bool("extended"))
	}

	style, err = r.offerPrettyStyle(node.CountNodes(), style)
	if err != nil {
		return err
	}

	slog.Debug("rendering tree", "expression", node, "style", style)
	fmt.Fprintln(r.out, treeprint.Render(node, style))
	return nil
}

// offerPrettyStyle suggests box drawing for large trees, slashes get hard to
// follow when branches are long
func (r *Runner) offerPrettyStyle(nodes int, style treeprint.Style) (treeprint.Style, error) {
	limit := r.config.AstWarningNodes
	if style.IsPretty() || limit <= 0 || nodes <= limit || !tui.IsInteractive() {
		return style, nil
	}

	pretty, err := r.ui.Confirm("The tree has %d nodes. Draw it with the pretty style instead?", nodes)
	if err != nil {
		return style, err
	}
	if pretty {
		style |= treeprint.Pretty
	}
	return style, nil
}

func (r *Runner) handleConfig(c *cli.Context) error {
	if c.Bool("write") {
		if err := r.config.Write(); err != nil {
			return err
		}
		slog.Info("wrote config", "path", r.config.Path)
	}

	content, err := yaml.Marshal(r.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(r.out, "# %s\n%s", r.config.Path, content)
	return nil
}

func formatAssignment(assignment []boolexpr.IdentifierValue) string {
	parts := lo.Map(assignment, func(iv boolexpr.IdentifierValue, _ int) string {
		return fmt.Sprintf("%c=%t", iv.Identifier, iv.Value)
	})
	return strings.Join(parts, " ")
}
