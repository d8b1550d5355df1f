package cmd

import (
	"fmt"
	"os"

	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/view/tui"
	"github.com/mabhi256/tjs2dis/utils"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:               "browse [tjs-file]",
	Short:             "Interactively browse a compiled TJS2 bytecode file",
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

		return tui.StartTUI(f)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
