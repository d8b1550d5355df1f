package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/view"
	"github.com/mabhi256/tjs2dis/utils"
	"github.com/spf13/cobra"
)

var objectsCmd = &cobra.Command{
	Use:               "objects [tjs-file]",
	Short:             "List every object in a compiled TJS2 bytecode file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".tjs"}, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}

		f, err := container.Load(filename)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tNAME\tTYPE\tCODE\tDATA\tMAXVAR\tVARRESERVE\tPROPS\tPARENT")
		for _, s := range view.ListObjects(f) {
			parent := s.ParentName
			if parent == "" {
				parent = "-"
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
				s.Index, s.Name, s.Type, s.CodeWords, s.DataSlots,
				s.MaxVariableCount, s.VariableReserveCount, s.PropertyCount, parent)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(objectsCmd)
}
