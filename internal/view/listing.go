package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mabhi256/tjs2dis/internal/disasm"
	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

// WriteListing writes a full disassembly listing for a single context
// to w: a header line naming the object, its property map if any, then
// one row per instruction from [start, end).
func WriteListing(w io.Writer, ctx *model.CodeContext, start, end int) error {
	fmt.Fprintf(w, "object #%d %s [%s]\n", ctx.Index, ctx.Name, ctx.Type)
	if props := ctx.PropertyNames(); len(props) > 0 {
		fmt.Fprintf(w, "  properties:")
		for _, name := range props {
			fmt.Fprintf(w, " %s", name)
		}
		fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, ins := range disasm.Disassemble(ctx, start, end) {
		line := fmt.Sprintf("%09d:\t%s\t%s", ins.Address, ins.Mnemonic, ins.Operands)
		if ins.Comment != "" {
			line += "\t; " + ins.Comment
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}

// WriteFileListing writes a full listing of every object in f, each
// one's instructions addressed from 0 to the end of its own code
// array.
func WriteFileListing(w io.Writer, f *container.File) error {
	fmt.Fprintf(w, "%s version %08X, %d object(s)\n\n", fileMagicText(f), f.Header.Version, len(f.Objects))
	for i, ctx := range f.Objects {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := WriteListing(w, ctx, 0, -1); err != nil {
			return err
		}
	}
	return nil
}

func fileMagicText(f *container.File) string {
	return fmt.Sprintf("TJS2 bytecode, header size %d", f.Header.Size)
}
