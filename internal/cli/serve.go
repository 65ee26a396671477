package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/internal/server"
)

// serveCommand creates the serve command that runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Run the HTTP render service.

POST DOT source to /v1/render?engine=dot&format=svg to receive the rendered
output. The service shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				c.Config.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, stderr io.Writer) error {
	eng, format, err := c.defaults()
	if err != nil {
		return err
	}

	r, closeCache, err := c.newRenderer(ctx, false)
	if err != nil {
		return err
	}
	defer closeCache()

	srv := server.New(r, server.Options{
		Addr:          c.Config.Server.Addr,
		MaxBodyBytes:  c.Config.Server.MaxBodyBytes,
		DefaultEngine: eng,
		DefaultFormat: format,
	}, c.Logger)

	printInfo(stderr, "Serving on %s", c.Config.Server.Addr)
	printDetail(stderr, "POST /v1/render?engine=%s&format=%s", eng, format)
	return srv.ListenAndServe(ctx)
}
