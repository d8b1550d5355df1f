package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mabhi256/tjs2dis/internal/disasm"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

func TestWriteListingHeaderAndInstructions(t *testing.T) {
	ctx := &model.CodeContext{
		Index:      0,
		Name:       "Global",
		Type:       model.TopLevel,
		Code:       []uint16{uint16(disasm.VM_NOP), uint16(disasm.VM_RET)},
		Properties: map[string]*model.CodeContext{"foo": nil},
	}

	var buf bytes.Buffer
	if err := WriteListing(&buf, ctx, 0, -1); err != nil {
		t.Fatalf("WriteListing: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "object #0 Global [TopLevel]") {
		t.Fatalf("missing header line: %q", out)
	}
	if !strings.Contains(out, "properties: foo") {
		t.Fatalf("missing properties line: %q", out)
	}
	if !strings.Contains(out, "nop") || !strings.Contains(out, "ret") {
		t.Fatalf("missing instruction rows: %q", out)
	}
}

func TestWriteListingOmitsPropertiesLineWhenEmpty(t *testing.T) {
	ctx := &model.CodeContext{Index: 0, Name: "Global", Type: model.TopLevel, Code: []uint16{uint16(disasm.VM_NOP)}}

	var buf bytes.Buffer
	if err := WriteListing(&buf, ctx, 0, -1); err != nil {
		t.Fatalf("WriteListing: %v", err)
	}
	if strings.Contains(buf.String(), "properties:") {
		t.Fatalf("unexpected properties line for context with no properties: %q", buf.String())
	}
}

func TestWriteFileListingCoversEveryObject(t *testing.T) {
	f := sampleFile()

	var buf bytes.Buffer
	if err := WriteFileListing(&buf, f); err != nil {
		t.Fatalf("WriteFileListing: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "object #0 Global") || !strings.Contains(out, "object #1 update") {
		t.Fatalf("WriteFileListing missing an object's section: %q", out)
	}
}
