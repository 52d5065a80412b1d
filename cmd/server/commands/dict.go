package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"charterdesk/internal/dictionary"
	"charterdesk/internal/platform/tracer"
)

func dictCmd() *cobra.Command {
	var static bool
	cmd := &cobra.Command{
		Use:   "dict [name]",
		Short: "Print a dictionary; lists the known names when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "static: %s\n", strings.Join(dictionary.StaticNames(), ", "))
				fmt.Fprintf(out, "backend: %s\n", strings.Join(dictionary.Names(), ", "))
				return nil
			}

			name := args[0]
			if static {
				opts, ok := dictionary.Static(name)
				if !ok {
					return fmt.Errorf("unknown static dictionary %q", name)
				}
				return printJSON(out, opts)
			}

			client := newBackend(cfg, prometheus.NewRegistry(), tracer.NewNoop())
			bundle, err := dictionary.NewCache(client, dictionary.WithLogger(log)).Ensure(cmd.Context())
			if err != nil {
				return fmt.Errorf("load dictionaries: %w", err)
			}
			opts, ok := bundle.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown dictionary %q", name)
			}
			return printJSON(out, opts)
		},
	}
	cmd.Flags().BoolVar(&static, "static", false, "read a built-in code table instead of the backend")
	return cmd
}

func printJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(pretty.Pretty(raw))
	return err
}
