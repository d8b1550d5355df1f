package container

import (
	"fmt"

	"github.com/mabhi256/tjs2dis/internal/tjs2/model"
	"github.com/mabhi256/tjs2dis/internal/tjs2/reader"
)

// Data-slot type tags as they appear in an object's inlined data array.
const (
	typeVoid           = 0
	typeObject         = 1
	typeInterObject    = 2
	typeString         = 3
	typeOctet          = 4
	typeReal           = 5
	typeByte           = 6
	typeShort          = 7
	typeInteger        = 8
	typeLong           = 9
	typeInterGenerator = 10
)

// pendingFixup records a data slot that needs an object reference
// installed once every object in the file has been decoded. objIndex
// is the index into the flat object vector the slot must resolve to:
// the object index recorded in the data entry, not the slot's own
// position.
type pendingFixup struct {
	ctx     *model.CodeContext
	slot    int
	objIndex int
}

// objectRaw holds the parts of an object record that reference other
// objects by index; these are resolved in the fixup pass after every
// object has been decoded, since an object may reference one that
// appears later in the file.
type objectRaw struct {
	ctx              *model.CodeContext
	parentIdx        int32
	propSetterIdx    int32
	propGetterIdx    int32
	superClassGetterIdx int32
	propPairs        []int32 // flattened (nameIdx, objIdx) pairs
}

// loadObjectsArea parses the OBJS section: a top-level index, an object
// count, and that many tagged object records, followed by the two-phase
// fixup pass that resolves cross-object references.
func loadObjectsArea(r *reader.Reader, pool *model.ConstantPool, warnings *[]error) (*model.CodeContext, []*model.CodeContext, error) {
	if err := readSectionHeader(r, objsTag, "OBJS"); err != nil {
		return nil, nil, err
	}

	topLevel, err := r.ReadI32()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read top-level index: %w", err)
	}
	objCount, err := r.ReadI32()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read object count: %w", err)
	}

	raws := make([]*objectRaw, objCount)
	objects := make([]*model.CodeContext, objCount)
	var fixups []pendingFixup

	for o := int32(0); o < objCount; o++ {
		raw, err := readObjectRecord(r, pool, int(o), &fixups, warnings)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read object[%d]: %w", o, err)
		}
		raws[o] = raw
		objects[o] = raw.ctx
	}

	resolveLinks(objects, raws, pool, warnings)

	for _, f := range fixups {
		if f.objIndex < 0 || f.objIndex >= len(objects) {
			continue
		}
		f.ctx.Data[f.slot] = model.DataValue{Kind: model.DataObject, Obj: objects[f.objIndex]}
	}

	var top *model.CodeContext
	if topLevel >= 0 && int(topLevel) < len(objects) {
		top = objects[topLevel]
	}
	return top, objects, nil
}

// readObjectRecord decodes a single TJS2-tagged object record and
// returns the cross-reference indices a caller must resolve once every
// object in the file is known.
func readObjectRecord(r *reader.Reader, pool *model.ConstantPool, index int, fixups *[]pendingFixup, warnings *[]error) (*objectRaw, error) {
	tag, err := r.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("failed to read tag: %w", err)
	}
	if tag != objectTag {
		return nil, fmt.Errorf("bad object tag 0x%08X: %w", tag, ErrInvalidFormat)
	}
	if _, err := r.ReadI32(); err != nil { // object size, unused
		return nil, fmt.Errorf("failed to read object size: %w", err)
	}

	parentIdx, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read parent index: %w", err)
	}
	nameIdx, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read name index: %w", err)
	}
	contextType, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read context type: %w", err)
	}
	maxVariableCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read max variable count: %w", err)
	}
	variableReserveCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read variable reserve count: %w", err)
	}
	maxFrameCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read max frame count: %w", err)
	}
	funcDeclArgCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read func decl arg count: %w", err)
	}
	funcDeclUnnamedArgArrayBase, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read func decl unnamed arg array base: %w", err)
	}
	funcDeclCollapseBase, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read func decl collapse base: %w", err)
	}
	propSetterIdx, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read prop setter index: %w", err)
	}
	propGetterIdx, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read prop getter index: %w", err)
	}
	superClassGetterIdx, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read super class getter index: %w", err)
	}

	sourcePositions, err := readSourcePositions(r)
	if err != nil {
		return nil, err
	}

	code, err := readCodeArray(r)
	if err != nil {
		return nil, err
	}

	data, localFixups, err := readDataArray(r, pool, index, warnings)
	if err != nil {
		return nil, err
	}

	superClassGetters, err := readI32Array(r, "super class getter")
	if err != nil {
		return nil, err
	}

	propPairCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read property count: %w", err)
	}
	var propPairs []int32
	if propPairCount > 0 {
		propPairs, err = readI32N(r, int(propPairCount)*2, "property")
		if err != nil {
			return nil, err
		}
	}

	name, ok := pool.String(int(nameIdx))
	if !ok {
		*warnings = append(*warnings, fmt.Errorf("object[%d] nameIdx %d: %w", index, nameIdx, ErrIndexOutOfRange))
		name = fmt.Sprintf("obj_%d", index)
	}

	ctx := &model.CodeContext{
		Index: index,
		Name:  name,
		Type:  model.ContextType(contextType),

		Code: code,
		Data: data,

		MaxVariableCount:            maxVariableCount,
		VariableReserveCount:        variableReserveCount,
		MaxFrameCount:               maxFrameCount,
		FuncDeclArgCount:            funcDeclArgCount,
		FuncDeclUnnamedArgArrayBase: funcDeclUnnamedArgArrayBase,
		FuncDeclCollapseBase:        funcDeclCollapseBase,

		SourcePositions:   sourcePositions,
		SuperClassGetters: superClassGetters,

		ParentIndex:              parentIdx,
		PropSetterIndex:          propSetterIdx,
		PropGetterIndex:          propGetterIdx,
		SuperClassGetterObjIndex: superClassGetterIdx,
	}

	for _, lf := range localFixups {
		*fixups = append(*fixups, pendingFixup{ctx: ctx, slot: lf.slot, objIndex: lf.objIndex})
	}

	return &objectRaw{
		ctx:                 ctx,
		parentIdx:           parentIdx,
		propSetterIdx:       propSetterIdx,
		propGetterIdx:       propGetterIdx,
		superClassGetterIdx: superClassGetterIdx,
		propPairs:           propPairs,
	}, nil
}

func readSourcePositions(r *reader.Reader) ([]model.SourcePosition, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read source position count: %w", err)
	}
	if count <= 0 {
		return nil, nil
	}
	codeOffsets := make([]int32, count)
	for i := range codeOffsets {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read source code offset[%d]: %w", i, err)
		}
		codeOffsets[i] = v
	}
	positions := make([]model.SourcePosition, count)
	for i := range positions {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read source offset[%d]: %w", i, err)
		}
		positions[i] = model.SourcePosition{CodeOffset: codeOffsets[i], SourceOffset: v}
	}
	return positions, nil
}

func readCodeArray(r *reader.Reader) ([]uint16, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read code size: %w", err)
	}
	code := make([]uint16, count)
	for i := range code {
		v, err := r.ReadU16()
		if err != nil {
			return nil, fmt.Errorf("failed to read code[%d]: %w", i, err)
		}
		code[i] = v
	}
	if count&1 != 0 {
		if err := r.Skip(2); err != nil {
			return nil, fmt.Errorf("failed to pad code array: %w", err)
		}
	}
	return code, nil
}

// localFixup is readDataArray's view of a pending object reference,
// before the owning CodeContext exists to anchor a pendingFixup.
type localFixup struct {
	slot     int
	objIndex int
}

// readDataArray decodes an object's inlined data array: count pairs of
// (i16 type tag, i16 pool index), resolved immediately for constant
// pool types and deferred to the fixup pass for object references.
func readDataArray(r *reader.Reader, pool *model.ConstantPool, objIndex int, warnings *[]error) ([]model.DataValue, []localFixup, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read data count: %w", err)
	}
	data := make([]model.DataValue, count)
	var fixups []localFixup

	for i := int32(0); i < count; i++ {
		typeTag, err := r.ReadI16()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read data[%d] type: %w", i, err)
		}
		poolIdx, err := r.ReadI16()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read data[%d] index: %w", i, err)
		}

		switch typeTag {
		case typeVoid:
			data[i] = model.DataValue{Kind: model.DataVoid}
		case typeObject:
			data[i] = model.DataValue{Kind: model.DataNullObject}
		case typeInterObject, typeInterGenerator:
			fixups = append(fixups, localFixup{slot: int(i), objIndex: int(poolIdx)})
			data[i] = model.DataValue{Kind: model.DataNullObject}
		case typeString:
			s, ok := pool.String(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] string poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataString, Str: s}
		case typeOctet:
			b, ok := pool.Octet(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] octet poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataOctet, Oct: b}
		case typeReal:
			v, ok := pool.Double(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] double poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataDouble, F64: v}
		case typeByte:
			v, ok := pool.Byte(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] byte poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataI8, I64: int64(v)}
		case typeShort:
			v, ok := pool.Short(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] short poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataI16, I64: int64(v)}
		case typeInteger:
			v, ok := pool.Int(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] int poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataI32, I64: int64(v)}
		case typeLong:
			v, ok := pool.Long(int(poolIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] data[%d] long poolIdx %d: %w", objIndex, i, poolIdx, ErrIndexOutOfRange))
			}
			data[i] = model.DataValue{Kind: model.DataI64, I64: int64(v)}
		default:
			data[i] = model.DataValue{Kind: model.DataVoid}
		}
	}

	return data, fixups, nil
}

func readI32Array(r *reader.Reader, what string) ([]int32, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s count: %w", what, err)
	}
	return readI32N(r, int(count), what)
}

func readI32N(r *reader.Reader, n int, what string) ([]int32, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := r.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s[%d]: %w", what, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// resolveLinks is the fixup pass's first phase: structural links
// (parent/setter/getter/super-class-getter) and property maps, which
// only need the completed object vector, not the deferred data-slot
// work list handled separately by the caller.
func resolveLinks(objects []*model.CodeContext, raws []*objectRaw, pool *model.ConstantPool, warnings *[]error) {
	for _, raw := range raws {
		ctx := raw.ctx

		if raw.parentIdx >= 0 && int(raw.parentIdx) < len(objects) {
			ctx.Parent = objects[raw.parentIdx]
		}
		if raw.propSetterIdx >= 0 && int(raw.propSetterIdx) < len(objects) {
			ctx.PropSetter = objects[raw.propSetterIdx]
		}
		if raw.propGetterIdx >= 0 && int(raw.propGetterIdx) < len(objects) {
			ctx.PropGetter = objects[raw.propGetterIdx]
		}
		if raw.superClassGetterIdx >= 0 && int(raw.superClassGetterIdx) < len(objects) {
			ctx.SuperClassGetterObj = objects[raw.superClassGetterIdx]
		}

		if len(raw.propPairs) == 0 {
			continue
		}
		ctx.Properties = make(map[string]*model.CodeContext, len(raw.propPairs)/2)
		for i := 0; i < len(raw.propPairs); i += 2 {
			nameIdx := raw.propPairs[i]
			objIdx := raw.propPairs[i+1]

			name, ok := pool.String(int(nameIdx))
			if !ok {
				*warnings = append(*warnings, fmt.Errorf("object[%d] property[%d] nameIdx %d: %w", ctx.Index, i/2, nameIdx, ErrIndexOutOfRange))
				name = fmt.Sprintf("prop_%d", i/2)
			}

			var pobj *model.CodeContext
			if objIdx >= 0 && int(objIdx) < len(objects) {
				pobj = objects[objIdx]
			}
			ctx.Properties[name] = pobj
		}
	}
}
