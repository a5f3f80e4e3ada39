package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodeui/pkg/platform/headless"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, Version)
				return
			}

			backend := headless.New()
			fmt.Fprintf(out, "nodeui %s (built %s)\n", Version, BuildTime)
			fmt.Fprintf(out, "  Backend:    %s\n", backend.Info())
			fmt.Fprintf(out, "  Peer kinds: %s\n", strings.Join(backend.Kinds(), ", "))
			fmt.Fprintf(out, "  Go version: %s\n", runtime.Version())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "print only the version number")

	return cmd
}
