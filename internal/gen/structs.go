package gen

import (
	"fmt"

	"mirror-generator/internal/analyze"
)

// emitStruct renders the adapter for named-field and unit shapes. Ignored
// fields are left out of the reflectable surface entirely; active fields are
// re-indexed by their position among the survivors.
func (e *emitter) emitStruct(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("reflect")

	active := activeFields(tm.Fields)

	e.emitPathDecls(tm)
	e.emitAdapter(tm)
	e.emitTypePathMethod(tm)

	infoArgs := fmt.Sprintf("\n\t\t%s,\n\t\treflect.TypeFor[%s](),", e.typePathLiteral(tm), e.typeExpr(tm))
	if len(active) > 0 {
		infoArgs += "\n" + indent(e.namedFieldLiterals(active), "\t\t")
	}

	e.emitTypeInfo(tm, fmt.Sprintf("%s.NewStructTypeInfo(%s\n\t)", m, infoArgs))
	e.emitCoreMethods(tm, "StructRef")
	e.emitTraitMethods(tm, "StructsEqual", "AsStruct")

	if len(active) == 0 {
		e.addf(`%s Field(name string) (%s.Reflected, bool) { return nil, false }`, e.recv(tm), m)
		e.addf(`%s FieldAt(index int) (%s.Reflected, bool) { return nil, false }`, e.recv(tm), m)
		e.addf(`%s SetField(name string, value %s.Reflected) bool { return false }`, e.recv(tm), m)
		e.addf(`%s NameAt(index int) (string, bool) { return "", false }`, e.recv(tm))
	} else {
		var fieldCases, setCases, nameCases string

		for i, f := range active {
			typ := e.useType(f.TypeExpr)

			fieldCases += fmt.Sprintf("\tcase %q:\n\t\treturn %s.FieldValue(&m.v.%s), true\n",
				f.Name, m, f.Name)

			setCases += fmt.Sprintf(
				"\tcase %q:\n\t\tif fv, ok := %s.FromReflected[%s](value); ok {\n\t\t\tm.v.%s = fv\n\n\t\t\treturn true\n\t\t}\n",
				f.Name, m, typ, f.Name)

			nameCases += fmt.Sprintf("\tcase %d:\n\t\treturn %q, true\n", i, f.Name)
		}

		e.addf(`%s Field(name string) (%s.Reflected, bool) {
	switch name {
%s	}

	return nil, false
}`, e.recv(tm), m, fieldCases)

		e.addf(`%s FieldAt(index int) (%s.Reflected, bool) {
	name, ok := m.NameAt(index)
	if !ok {
		return nil, false
	}

	return m.Field(name)
}`, e.recv(tm), m)

		e.addf(`%s SetField(name string, value %s.Reflected) bool {
	switch name {
%s	}

	return false
}`, e.recv(tm), m, setCases)

		e.addf(`%s NameAt(index int) (string, bool) {
	switch index {
%s	}

	return "", false
}`, e.recv(tm), nameCases)
	}

	e.addf(`%s NumFields() int { return %d }`, e.recv(tm), len(active))

	e.emitStructFieldsIterator(tm)
	e.emitStructCloneDynamic(tm, active)
}

func (e *emitter) emitStructFieldsIterator(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("iter")

	e.addf(`%s Fields() iter.Seq2[string, %s.Reflected] {
	return func(yield func(string, %s.Reflected) bool) {
		for i := range m.NumFields() {
			name, _ := m.NameAt(i)
			value, _ := m.Field(name)

			if !yield(name, value) {
				return
			}
		}
	}
}`, e.recv(tm), m, m)
}

func (e *emitter) emitStructCloneDynamic(tm *analyze.TypeModel, active []analyze.FieldModel) {
	m := e.mirror()

	var inserts string
	for _, f := range active {
		inserts += fmt.Sprintf("\td.Insert(%q, %s.FieldValue(&m.v.%s))\n", f.Name, m, f.Name)
	}

	e.addf(`%s CloneDynamic() %s.Reflected {
	d := %s.NewDynamicStruct()
	d.SetName(m.TypePath())
%s
	return d
}`, e.recv(tm), m, m, inserts)
}
