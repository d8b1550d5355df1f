// Package view renders a loaded bytecode file for humans, as a flat
// text listing or as the model feeding the interactive browser.
package view

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/utils"
)

// ObjectSummary is one row of a file's object table: enough to
// identify and navigate to a context without decoding its code.
type ObjectSummary struct {
	Index                int
	Name                 string
	Type                 model.ContextType
	CodeWords            int
	DataSlots            int
	MaxVariableCount     int32
	VariableReserveCount int32
	PropertyCount        int
	ParentName           string
}

// ListObjects builds one summary row per object in f, in file order.
// Names are sanitized since they come straight from the constant pool
// of an untrusted bytecode file and could otherwise smuggle control
// characters into a terminal listing or the TUI.
func ListObjects(f *container.File) []ObjectSummary {
	out := make([]ObjectSummary, 0, len(f.Objects))
	for _, ctx := range f.Objects {
		parent := ""
		if ctx.Parent != nil {
			parent = utils.SanitizeString(ctx.Parent.Name)
		}
		out = append(out, ObjectSummary{
			Index:                ctx.Index,
			Name:                 utils.SanitizeString(ctx.Name),
			Type:                 ctx.Type,
			CodeWords:            len(ctx.Code),
			DataSlots:            len(ctx.Data),
			MaxVariableCount:     ctx.MaxVariableCount,
			VariableReserveCount: ctx.VariableReserveCount,
			PropertyCount:        len(ctx.Properties),
			ParentName:           parent,
		})
	}
	return out
}

// FindObject returns the context named name, or nil if no object
// matches. Exact match first, then a case-sensitive prefix match so a
// caller can refer to a method by its bare name.
func FindObject(f *container.File, name string) *model.CodeContext {
	for _, ctx := range f.Objects {
		if ctx.Name == name {
			return ctx
		}
	}
	for _, ctx := range f.Objects {
		if len(ctx.Name) > len(name) && ctx.Name[:len(name)] == name {
			return ctx
		}
	}
	return nil
}

// ObjectByIndex returns the context at file index idx, or nil if out
// of range.
func ObjectByIndex(f *container.File, idx int) *model.CodeContext {
	for _, ctx := range f.Objects {
		if ctx.Index == idx {
			return ctx
		}
	}
	return nil
}

// String renders a summary row's type alongside its property and
// parent info, the way a quick one-line diagnostic would.
func (s ObjectSummary) String() string {
	parent := s.ParentName
	if parent == "" {
		parent = "-"
	}
	return fmt.Sprintf("#%d %s [%s] code=%d data=%d maxvar=%d varreserve=%d props=%d parent=%s",
		s.Index, s.Name, s.Type, s.CodeWords, s.DataSlots, s.MaxVariableCount, s.VariableReserveCount, s.PropertyCount, parent)
}
