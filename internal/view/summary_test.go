package view

import (
	"testing"

	"github.com/mabhi256/tjs2dis/internal/tjs2/container"
	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
)

func sampleFile() *container.File {
	root := &model.CodeContext{
		Index: 0,
		Name:  "Global",
		Type:  model.TopLevel,
		Code:  []uint16{1, 2, 3},
	}
	method := &model.CodeContext{
		Index:  1,
		Name:   "update",
		Type:   model.Function,
		Parent: root,
		Code:   []uint16{1},
		Data:   []model.DataValue{{Kind: model.DataVoid}},
	}
	root.Properties = map[string]*model.CodeContext{"update": method}

	return &container.File{
		Header:  &container.Header{Version: 0x00303031},
		Objects: []*model.CodeContext{root, method},
		Top:     root,
	}
}

func TestListObjects(t *testing.T) {
	f := sampleFile()
	summaries := ListObjects(f)
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d; want 2", len(summaries))
	}
	if summaries[0].ParentName != "" {
		t.Fatalf("summaries[0].ParentName = %q; want empty (no parent)", summaries[0].ParentName)
	}
	if summaries[1].ParentName != "Global" {
		t.Fatalf("summaries[1].ParentName = %q; want \"Global\"", summaries[1].ParentName)
	}
	if summaries[0].PropertyCount != 1 {
		t.Fatalf("summaries[0].PropertyCount = %d; want 1", summaries[0].PropertyCount)
	}
}

func TestFindObjectExactThenPrefix(t *testing.T) {
	f := sampleFile()
	if got := FindObject(f, "update"); got == nil || got.Name != "update" {
		t.Fatalf("FindObject(exact) = %v", got)
	}
	if got := FindObject(f, "Glob"); got == nil || got.Name != "Global" {
		t.Fatalf("FindObject(prefix) = %v", got)
	}
	if got := FindObject(f, "nonexistent"); got != nil {
		t.Fatalf("FindObject(missing) = %v; want nil", got)
	}
}

func TestObjectByIndex(t *testing.T) {
	f := sampleFile()
	if got := ObjectByIndex(f, 1); got == nil || got.Name != "update" {
		t.Fatalf("ObjectByIndex(1) = %v", got)
	}
	if got := ObjectByIndex(f, 99); got != nil {
		t.Fatalf("ObjectByIndex(99) = %v; want nil", got)
	}
}

func TestObjectSummaryString(t *testing.T) {
	f := sampleFile()
	s := ListObjects(f)[1]
	got := s.String()
	want := "#1 update [Function] code=1 data=1 maxvar=0 varreserve=0 props=0 parent=Global"
	if got != want {
		t.Fatalf("String() = %q; want %q", got, want)
	}
}
