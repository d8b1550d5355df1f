package container

import (
	"errors"
	"testing"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
)

// dataSectionWithStrings builds a DATA section whose only populated
// array is the string table, in file order.
func dataSectionWithStrings(strs ...string) []byte {
	var b byteBuilder
	b.u32(dataTag).i32(0)
	b.i32(0) // bytes
	b.i32(0) // shorts
	b.i32(0) // ints
	b.i32(0) // longs
	b.i32(0) // doubles
	b.i32(int32(len(strs)))
	for _, s := range strs {
		units := int32(len(s))
		b.i32(units).utf16le(s)
		if units&1 != 0 {
			b.u16(0)
		}
	}
	b.i32(0) // octets
	return b.bytesLen()
}

// objectRecordFields are the 12 fixed scalar fields every object
// record starts with, after its tag and size.
type objectRecordFields struct {
	parentIdx, nameIdx, contextType                                   int32
	maxVariableCount, variableReserveCount, maxFrameCount              int32
	funcDeclArgCount, funcDeclUnnamedArgArrayBase, funcDeclCollapseBase int32
	propSetterIdx, propGetterIdx, superClassGetterIdx                 int32
}

func writeObjectRecord(b *byteBuilder, f objectRecordFields, code []uint16, dataSlots [][2]int16, propPairs [][2]int32) {
	b.u32(objectTag).i32(0)
	b.i32(f.parentIdx).i32(f.nameIdx).i32(f.contextType)
	b.i32(f.maxVariableCount).i32(f.variableReserveCount).i32(f.maxFrameCount)
	b.i32(f.funcDeclArgCount).i32(f.funcDeclUnnamedArgArrayBase).i32(f.funcDeclCollapseBase)
	b.i32(f.propSetterIdx).i32(f.propGetterIdx).i32(f.superClassGetterIdx)

	b.i32(0) // source position count

	b.i32(int32(len(code)))
	for _, w := range code {
		b.u16(w)
	}
	if len(code)&1 != 0 {
		b.u16(0)
	}

	b.i32(int32(len(dataSlots)))
	for _, slot := range dataSlots {
		b.u16(uint16(slot[0])).u16(uint16(slot[1]))
	}

	b.i32(0) // super class getter count

	b.i32(int32(len(propPairs)))
	for _, p := range propPairs {
		b.i32(p[0]).i32(p[1])
	}
}

func TestLoadObjectsAreaResolvesLinksAndFixups(t *testing.T) {
	var b byteBuilder
	b.u32(objsTag).i32(0)
	b.i32(0) // top-level index
	b.i32(2) // object count

	// Object 0: "Global", holds an INTER_OBJECT data slot pointing at
	// object 1, and a property "foo" also pointing at object 1.
	writeObjectRecord(&b,
		objectRecordFields{parentIdx: -1, nameIdx: 0, contextType: int32(model.TopLevel), propSetterIdx: -1, propGetterIdx: -1, superClassGetterIdx: -1},
		nil,
		[][2]int16{{2, 1}}, // typeInterObject, object index 1
		[][2]int32{{1, 1}}, // name index 1 ("foo"), object index 1
	)

	// Object 1: "foo", a function whose parent is object 0.
	writeObjectRecord(&b,
		objectRecordFields{parentIdx: 0, nameIdx: 1, contextType: int32(model.Function), propSetterIdx: -1, propGetterIdx: -1, superClassGetterIdx: -1},
		nil, nil, nil,
	)

	pool := &model.ConstantPool{Strings: []string{"Global", "foo"}}
	r := reader.New(b.bytesLen())

	top, objects, err := loadObjectsArea(r, pool, &[]error{})
	if err != nil {
		t.Fatalf("loadObjectsArea: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("len(objects) = %d; want 2", len(objects))
	}

	global, foo := objects[0], objects[1]
	if top != global {
		t.Fatalf("top = %v; want objects[0]", top)
	}
	if global.Name != "Global" || foo.Name != "foo" {
		t.Fatalf("names = %q, %q; want Global, foo", global.Name, foo.Name)
	}
	if foo.Parent != global {
		t.Fatalf("foo.Parent = %v; want global", foo.Parent)
	}
	if got := global.Properties["foo"]; got != foo {
		t.Fatalf("global.Properties[\"foo\"] = %v; want foo", got)
	}
	if len(global.Data) != 1 || global.Data[0].Kind != model.DataObject || global.Data[0].Obj != foo {
		t.Fatalf("global.Data[0] = %+v; want DataObject pointing at foo", global.Data[0])
	}
}

func TestLoadObjectsAreaSyntheticNameFallback(t *testing.T) {
	var b byteBuilder
	b.u32(objsTag).i32(0)
	b.i32(0)
	b.i32(1)
	writeObjectRecord(&b,
		objectRecordFields{parentIdx: -1, nameIdx: 99, contextType: 0, propSetterIdx: -1, propGetterIdx: -1, superClassGetterIdx: -1},
		nil, nil, nil,
	)

	pool := &model.ConstantPool{}
	r := reader.New(b.bytesLen())

	var warnings []error
	_, objects, err := loadObjectsArea(r, pool, &warnings)
	if err != nil {
		t.Fatalf("loadObjectsArea: %v", err)
	}
	if objects[0].Name != "obj_0" {
		t.Fatalf("objects[0].Name = %q; want \"obj_0\"", objects[0].Name)
	}
	if len(warnings) != 1 || !errors.Is(warnings[0], ErrIndexOutOfRange) {
		t.Fatalf("warnings = %v; want one ErrIndexOutOfRange", warnings)
	}
}

func TestLoadObjectsAreaBadTag(t *testing.T) {
	var b byteBuilder
	b.u32(0xBADF00D).i32(0)
	pool := &model.ConstantPool{}
	r := reader.New(b.bytesLen())
	if _, _, err := loadObjectsArea(r, pool, &[]error{}); err == nil {
		t.Fatal("loadObjectsArea with bad tag: want error, got nil")
	}
}
