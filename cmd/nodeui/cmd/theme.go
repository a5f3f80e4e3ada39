package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/nodeui/pkg/theme"
)

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <sheet>",
		Short: "Print the classes and state styles of a theme sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := theme.LoadFile(args[0])
			if err != nil {
				return err
			}
			printSheet(cmd.OutOrStdout(), sheet)
			return nil
		},
	}
}

func printSheet(w io.Writer, sheet *theme.Sheet) {
	classes := make([]string, 0, len(sheet.Classes))
	for class := range sheet.Classes {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	for _, class := range classes {
		fmt.Fprintln(w, class)
		styles := sheet.Classes[class]
		states := make([]theme.VisualState, 0, len(styles))
		for state := range styles {
			states = append(states, state)
		}
		sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
		for _, state := range states {
			fmt.Fprintf(w, "  %-9s %s\n", state, describeStyle(styles[state]))
		}
	}
}

func describeStyle(s theme.Style) string {
	var parts []string
	if s.Background != nil {
		parts = append(parts, "background="+s.Background.Hex())
	}
	if s.Foreground != nil {
		parts = append(parts, "foreground="+s.Foreground.Hex())
	}
	if b := s.Border; b != nil {
		parts = append(parts, fmt.Sprintf("border=%gpx %s r%g", b.Width, b.Color.Hex(), b.Radius))
	}
	if len(parts) == 0 {
		return "(inherits normal)"
	}
	return strings.Join(parts, " ")
}
