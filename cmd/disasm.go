package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/view"
	"github.com/mabhi256/tjs2dis/utils"
	"github.com/spf13/cobra"
)

var (
	disasmObject string
	disasmStart  int
	disasmEnd    int
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [tjs-file]",
	Short: `Disassemble compiled TJS2 bytecode (.tjs files expected)
Prints a flat listing of every object in the file, or a single object
selected with --object. The listing shows each instruction's address,
mnemonic, operands, and a resolved-constant comment where applicable.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".tjs"}, true),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		if ext := filepath.Ext(filename); ext != ".tjs" {
			fmt.Printf("Warning: File extension '%s' is not '.tjs', but proceeding anyway...\n", ext)
		}

		f, err := container.Load(filename)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
		for _, w := range f.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}

		if disasmObject == "" {
			return view.WriteFileListing(os.Stdout, f)
		}

		ctx := view.FindObject(f, disasmObject)
		if ctx == nil {
			return fmt.Errorf("no object named %q in %s", disasmObject, filename)
		}
		return view.WriteListing(os.Stdout, ctx, disasmStart, disasmEnd)
	},
}

func init() {
	disasmCmd.Flags().StringVar(&disasmObject, "object", "", "disassemble only the named object")
	disasmCmd.Flags().IntVar(&disasmStart, "start", 0, "first code address to disassemble (with --object)")
	disasmCmd.Flags().IntVar(&disasmEnd, "end", -1, "code address to stop before, -1 for end of code (with --object)")
	rootCmd.AddCommand(disasmCmd)
}
