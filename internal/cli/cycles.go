package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saeidalz13/battleship-exercises/internal/scenario"
	"github.com/saeidalz13/battleship-exercises/models/dependency"
	"github.com/saeidalz13/battleship-exercises/models/report"
)

type cyclesOptions struct {
	svgPath string
	dotPath string
	asJSON  bool
}

func (c *CLI) newCyclesCmd() *cobra.Command {
	var opts cyclesOptions

	cmd := &cobra.Command{
		Use:   "cycles",
		Short: "Detect circular references in the scenario dependency graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCycles(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write the graph as SVG with cyclic nodes highlighted")
	cmd.Flags().StringVar(&opts.dotPath, "dot", "", "write the graph as a Graphviz DOT file")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print JSON messages instead of text")

	return cmd
}

func (c *CLI) runCycles(ctx context.Context, opts cyclesOptions) error {
	logger := loggerFromContext(ctx)

	if !c.scenario.HasGraph() {
		logger.Warn("scenario has no dependency graph; skipping", "scenario", c.scenario.Name)
		return nil
	}

	cyclic, checkErr := scenario.RunCycles(c.scenario)
	logger.Debug("cycle detection done", "keys", len(c.scenario.Graph), "cyclic", len(cyclic))

	if opts.asJSON {
		if err := c.writeCyclesJSON(cyclic, checkErr); err != nil {
			return newExitError(ExitCodeFailure, err)
		}
	} else {
		c.printCycles(cyclic, checkErr)
	}

	if err := c.exportGraph(ctx, cyclic, opts); err != nil {
		return newExitError(ExitCodeFailure, err)
	}

	if checkErr != nil {
		return newExitError(ExitCodeCycles, checkErr)
	}
	return nil
}

func (c *CLI) printCycles(cyclic []string, checkErr error) {
	c.styles.printTitle(c.out, "Circular references in %q", c.scenario.Name)
	if len(cyclic) == 0 {
		c.styles.printInfo(c.out, "no circular references")
	}
	for _, node := range cyclic {
		deps := strings.Join(c.scenario.Graph[node], ", ")
		fmt.Fprintf(c.out, "  %s %s\n", c.styles.value.Render(fmt.Sprintf("%q", node)), c.styles.dim.Render("-> "+deps))
	}

	if c.scenario.ExpectCyclic == nil {
		return
	}
	if checkErr != nil {
		c.styles.printError(c.out, "%s", checkErr)
		return
	}
	c.styles.printSuccess(c.out, "cyclic nodes match the expected set")
}

func (c *CLI) writeCyclesJSON(cyclic []string, checkErr error) error {
	enc := json.NewEncoder(c.out)

	msg := report.NewMessage[report.RespCycles](report.CodeCycleReport)
	msg.AddPayload(report.RespCycles{Graph: c.scenario.Graph, CyclicNodes: cyclic})
	if err := enc.Encode(msg); err != nil {
		return err
	}

	return enc.Encode(selfCheckMessage(checkErr))
}

func (c *CLI) exportGraph(ctx context.Context, cyclic []string, opts cyclesOptions) error {
	if opts.dotPath == "" && opts.svgPath == "" {
		return nil
	}
	logger := loggerFromContext(ctx)
	dot := dependency.DOT(dependency.NewGraph(c.scenario.Graph), cyclic)

	if opts.dotPath != "" {
		if err := os.WriteFile(opts.dotPath, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		logger.Info("wrote DOT graph", "path", opts.dotPath)
	}

	if opts.svgPath != "" {
		svg, err := dependency.RenderSVG(ctx, dot)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svgPath, svg, 0o644); err != nil {
			return fmt.Errorf("write SVG: %w", err)
		}
		logger.Info("wrote SVG graph", "path", opts.svgPath)
	}
	return nil
}

func selfCheckMessage(checkErr error) any {
	if checkErr == nil {
		return report.NewSignal(report.CodeSelfCheckPassed)
	}
	msg := report.NewMessage[report.NoPayload](report.CodeSelfCheckFailed)
	msg.AddError(checkErr.Error(), "self check failed")
	return msg
}
