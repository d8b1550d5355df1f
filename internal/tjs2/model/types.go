// Package model holds the TJS2 bytecode data model: the constant pool,
// code contexts, and the tagged data-slot values resolved from them.
package model

import "fmt"

// ConstantPool is the seven independent typed arrays parsed from the
// DATA section of a bytecode file. Every index referenced from code or
// data sections is bounds-checked against the matching array here.
type ConstantPool struct {
	Bytes   []uint8
	Shorts  []uint16
	Ints    []int32
	Longs   []uint64 // i64 stored as its raw bit pattern
	Doubles []float64
	Strings []string
	Octets  [][]byte
}

func (p *ConstantPool) Byte(i int) (uint8, bool) {
	if i < 0 || i >= len(p.Bytes) {
		return 0, false
	}
	return p.Bytes[i], true
}

func (p *ConstantPool) Short(i int) (uint16, bool) {
	if i < 0 || i >= len(p.Shorts) {
		return 0, false
	}
	return p.Shorts[i], true
}

func (p *ConstantPool) Int(i int) (int32, bool) {
	if i < 0 || i >= len(p.Ints) {
		return 0, false
	}
	return p.Ints[i], true
}

func (p *ConstantPool) Long(i int) (uint64, bool) {
	if i < 0 || i >= len(p.Longs) {
		return 0, false
	}
	return p.Longs[i], true
}

func (p *ConstantPool) Double(i int) (float64, bool) {
	if i < 0 || i >= len(p.Doubles) {
		return 0, false
	}
	return p.Doubles[i], true
}

func (p *ConstantPool) String(i int) (string, bool) {
	if i < 0 || i >= len(p.Strings) {
		return "", false
	}
	return p.Strings[i], true
}

func (p *ConstantPool) Octet(i int) ([]byte, bool) {
	if i < 0 || i >= len(p.Octets) {
		return nil, false
	}
	return p.Octets[i], true
}

// ContextType identifies the kind of compiled scope a CodeContext
// represents.
type ContextType int32

const (
	TopLevel ContextType = iota
	Function
	ExprFunction
	Property
	PropertySetter
	PropertyGetter
	Class
	SuperClassGetter
)

func (t ContextType) String() string {
	switch t {
	case TopLevel:
		return "TopLevel"
	case Function:
		return "Function"
	case ExprFunction:
		return "ExprFunction"
	case Property:
		return "Property"
	case PropertySetter:
		return "PropertySetter"
	case PropertyGetter:
		return "PropertyGetter"
	case Class:
		return "Class"
	case SuperClassGetter:
		return "SuperClassGetter"
	default:
		return fmt.Sprintf("ContextType(%d)", int32(t))
	}
}

// DataKind tags the variant held by a DataValue.
type DataKind int

const (
	DataVoid DataKind = iota
	DataObject
	DataString
	DataOctet
	DataDouble
	DataI8
	DataI16
	DataI32
	DataI64
	DataNullObject
)

// DataValue is the tagged union a context's inlined data array holds:
// a resolved constant, an object reference, or a still-null placeholder.
type DataValue struct {
	Kind DataKind
	Str  string
	Oct  []byte
	F64  float64
	I64  int64
	Obj  *CodeContext // non-nil only for DataObject once the fixup pass runs
}

// String renders a data value the way a constant-comment annotation
// would: "null" for anything without a concrete textual form.
func (v DataValue) String() string {
	switch v.Kind {
	case DataString:
		return v.Str
	case DataOctet:
		return fmt.Sprintf("<octet:%d bytes>", len(v.Oct))
	case DataDouble:
		return fmt.Sprintf("%g", v.F64)
	case DataI8, DataI16, DataI32, DataI64:
		return fmt.Sprintf("%d", v.I64)
	case DataObject:
		if v.Obj != nil {
			return v.Obj.Name
		}
		return "null"
	default:
		return "null"
	}
}

// SourcePosition maps a position in a code array to a position in the
// original source text.
type SourcePosition struct {
	CodeOffset   int32
	SourceOffset int32
}

// NoRef is the sentinel meaning "no object" for cross-context index
// slots (parent, setter, getter, super-class-getter).
const NoRef int32 = -1

// CodeContext is one compiled scope: top-level script, function,
// property, class, or accessor. Links to other contexts are
// non-owning; the container owns the flat object vector they index
// into.
type CodeContext struct {
	Index int
	Name  string
	Type  ContextType

	Code []uint16
	Data []DataValue

	MaxVariableCount                int32
	VariableReserveCount             int32
	MaxFrameCount                    int32
	FuncDeclArgCount                 int32
	FuncDeclUnnamedArgArrayBase      int32
	FuncDeclCollapseBase             int32

	SourcePositions   []SourcePosition
	SuperClassGetters []int32

	// Raw indices as read from the file, kept for diagnostics.
	ParentIndex              int32
	PropSetterIndex          int32
	PropGetterIndex          int32
	SuperClassGetterObjIndex int32

	// Resolved links, populated by the fixup pass.
	Parent              *CodeContext
	PropSetter          *CodeContext
	PropGetter          *CodeContext
	SuperClassGetterObj *CodeContext

	Properties map[string]*CodeContext
}

// PropertyNames returns the context's property names in sorted order,
// for stable display in a listing or browser.
func (c *CodeContext) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}
