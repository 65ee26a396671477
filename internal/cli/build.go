package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/engine"
)

// buildCommand creates the build command that turns a document into DOT.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		output string
		check  bool
	)

	cmd := &cobra.Command{
		Use:   "build [document]",
		Short: "Build DOT text from a YAML, TOML or JSON graph document",
		Long: `Build DOT text from a graph document.

Every attribute in the document is checked against the element it is set on;
a graph attribute on a node, for example, fails with the path of the entry.
With --check the result is also parsed by the embedded Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], output, check, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&check, "check", false, "parse the result with the embedded Graphviz")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, input, output string, check bool, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx)

	g, err := loadGraph(input)
	if err != nil {
		return err
	}
	logger.Debug("Built graph", "input", input, "statements", g.Len())

	if check {
		if err := engine.Check([]byte(g.String())); err != nil {
			return err
		}
		logger.Debug("Graphviz accepted the graph")
	}

	if output == "" || output == "-" {
		_, err := g.WriteTo(stdout)
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if _, err := g.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printSuccess(stderr, "Built %s", input)
	printFile(stderr, output)
	return nil
}
