package gen

import (
	"fmt"

	"mirror-generator/internal/analyze"
)

// emitTupleStruct renders the adapter for positional shapes. The F0..Fn
// naming convention keeps the declaration index and the positional index in
// lockstep, except when ignored fields compact the reflectable surface.
func (e *emitter) emitTupleStruct(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("reflect")

	active := activeFields(tm.Fields)

	e.emitPathDecls(tm)
	e.emitAdapter(tm)
	e.emitTypePathMethod(tm)

	infoArgs := fmt.Sprintf("\n\t\t%s,\n\t\treflect.TypeFor[%s](),", e.typePathLiteral(tm), e.typeExpr(tm))
	if len(active) > 0 {
		infoArgs += "\n" + indent(e.unnamedFieldLiterals(active), "\t\t")
	}

	e.emitTypeInfo(tm, fmt.Sprintf("%s.NewTupleStructTypeInfo(%s\n\t)", m, infoArgs))
	e.emitCoreMethods(tm, "TupleStructRef")
	e.emitTraitMethods(tm, "TupleStructsEqual", "AsTupleStruct")

	var fieldCases, setCases string

	for i, f := range active {
		typ := e.useType(f.TypeExpr)

		fieldCases += fmt.Sprintf("\tcase %d:\n\t\treturn %s.FieldValue(&m.v.%s), true\n",
			i, m, f.Name)

		setCases += fmt.Sprintf(
			"\tcase %d:\n\t\tif fv, ok := %s.FromReflected[%s](value); ok {\n\t\t\tm.v.%s = fv\n\n\t\t\treturn true\n\t\t}\n",
			i, m, typ, f.Name)
	}

	e.addf(`%s Field(index int) (%s.Reflected, bool) {
	switch index {
%s	}

	return nil, false
}`, e.recv(tm), m, fieldCases)

	e.addf(`%s SetField(index int, value %s.Reflected) bool {
	switch index {
%s	}

	return false
}`, e.recv(tm), m, setCases)

	e.addf(`%s NumFields() int { return %d }`, e.recv(tm), len(active))

	e.need("iter")
	e.addf(`%s Fields() iter.Seq2[int, %s.Reflected] {
	return func(yield func(int, %s.Reflected) bool) {
		for i := range m.NumFields() {
			value, _ := m.Field(i)

			if !yield(i, value) {
				return
			}
		}
	}
}`, e.recv(tm), m, m)

	var inserts string
	for _, f := range active {
		inserts += fmt.Sprintf("\td.Insert(%s.FieldValue(&m.v.%s))\n", m, f.Name)
	}

	e.addf(`%s CloneDynamic() %s.Reflected {
	d := %s.NewDynamicTupleStruct()
	d.SetName(m.TypePath())
%s
	return d
}`, e.recv(tm), m, m, inserts)
}
