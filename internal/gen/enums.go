package gen

import (
	"fmt"

	"mirror-generator/internal/analyze"
)

// caseType renders the type a variant matches under in a type switch:
// the value type, or the pointer type when only the pointer implements the
// sealed interface.
func caseType(v analyze.VariantModel) string {
	if v.PtrOnly {
		return "*" + v.Name
	}

	return v.Name
}

func variantKindName(s analyze.VariantStyle) string {
	switch s {
	case analyze.VariantStyleNamed:
		return "VariantNamed"
	case analyze.VariantStyleUnnamed:
		return "VariantUnnamed"
	default:
		return "VariantUnit"
	}
}

// emitEnum renders the adapter for sealed-interface shapes. The adapter
// dispatches on the runtime variant through type switches over the closed
// implementation set.
func (e *emitter) emitEnum(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("reflect")

	e.emitPathDecls(tm)
	e.emitAdapter(tm)
	e.emitTypePathMethod(tm)

	variants := make([]string, 0, len(tm.Variants))

	for _, v := range tm.Variants {
		lit := fmt.Sprintf("%s.VariantInfo{Name: %q, Kind: %s.%s",
			m, v.Name, m, variantKindName(v.Style))

		active := activeFields(v.Fields)

		switch {
		case v.Style == analyze.VariantStyleNamed && len(active) > 0:
			lit += fmt.Sprintf(", Named: []%s.NamedField{\n%s\n\t\t}", m,
				indent(e.namedFieldLiterals(active), "\t\t\t"))

		case v.Style == analyze.VariantStyleUnnamed && len(active) > 0:
			lit += fmt.Sprintf(", Unnamed: []%s.UnnamedField{\n%s\n\t\t}", m,
				indent(e.unnamedFieldLiterals(active), "\t\t\t"))
		}

		variants = append(variants, lit+"},")
	}

	infoArgs := fmt.Sprintf("\n\t\t%s,\n\t\treflect.TypeFor[%s](),", e.typePathLiteral(tm), e.typeExpr(tm))
	if len(variants) > 0 {
		infoArgs += "\n" + indent(variants, "\t\t")
	}

	e.emitTypeInfo(tm, fmt.Sprintf("%s.NewEnumTypeInfo(%s\n\t)", m, infoArgs))
	e.emitCoreMethods(tm, "EnumRef")
	e.emitTraitMethods(tm, "EnumsEqual", "AsEnum")

	var nameCases, kindCases string

	for _, v := range tm.Variants {
		nameCases += fmt.Sprintf("\tcase %s:\n\t\treturn %q\n", caseType(v), v.Name)
		kindCases += fmt.Sprintf("\tcase %s:\n\t\treturn %s.%s\n",
			caseType(v), m, variantKindName(v.Style))
	}

	e.addf(`%s VariantName() string {
	switch (*m.v).(type) {
%s	}

	return ""
}`, e.recv(tm), nameCases)

	e.addf(`%s VariantKind() %s.VariantKind {
	switch (*m.v).(type) {
%s	}

	return %s.VariantUnit
}`, e.recv(tm), m, kindCases, m)

	e.emitEnumFieldAccess(tm)
	e.emitEnumIterator(tm)
	e.emitEnumCloneDynamic(tm)
}

// fieldedVariants returns the variants carrying at least one active field.
func fieldedVariants(tm *analyze.TypeModel) []analyze.VariantModel {
	var out []analyze.VariantModel

	for _, v := range tm.Variants {
		if len(activeFields(v.Fields)) > 0 {
			out = append(out, v)
		}
	}

	return out
}

func (e *emitter) emitEnumFieldAccess(tm *analyze.TypeModel) {
	m := e.mirror()

	fielded := fieldedVariants(tm)

	if len(fielded) == 0 {
		e.addf(`%s Field(name string) (%s.Reflected, bool) { return nil, false }`, e.recv(tm), m)
		e.addf(`%s FieldAt(index int) (%s.Reflected, bool) { return nil, false }`, e.recv(tm), m)
		e.addf(`%s fieldNameAt(index int) string { return "" }`, e.recv(tm))
		e.addf(`%s NumFields() int { return 0 }`, e.recv(tm))

		return
	}

	var byName, byIndex, nameAt string

	for _, v := range fielded {
		active := activeFields(v.Fields)

		if v.Style == analyze.VariantStyleNamed {
			var inner string
			for _, f := range active {
				inner += fmt.Sprintf("\t\tcase %q:\n\t\t\treturn %s.FieldValue(&x.%s), true\n",
					f.Name, m, f.Name)
			}

			byName += fmt.Sprintf("\tcase %s:\n\t\tswitch name {\n%s\t\t}\n", caseType(v), inner)
		}

		var inner, names string

		for i, f := range active {
			inner += fmt.Sprintf("\t\tcase %d:\n\t\t\treturn %s.FieldValue(&x.%s), true\n",
				i, m, f.Name)

			label := f.Name
			if v.Style != analyze.VariantStyleNamed {
				label = ""
			}

			names += fmt.Sprintf("\t\tcase %d:\n\t\t\treturn %q\n", i, label)
		}

		byIndex += fmt.Sprintf("\tcase %s:\n\t\tswitch index {\n%s\t\t}\n", caseType(v), inner)
		nameAt += fmt.Sprintf("\tcase %s:\n\t\tswitch index {\n%s\t\t}\n", caseType(v), names)
	}

	if byName == "" {
		e.addf(`%s Field(name string) (%s.Reflected, bool) { return nil, false }`, e.recv(tm), m)
	} else {
		e.addf(`%s Field(name string) (%s.Reflected, bool) {
	switch x := (*m.v).(type) {
%s	}

	return nil, false
}`, e.recv(tm), m, byName)
	}

	e.addf(`%s FieldAt(index int) (%s.Reflected, bool) {
	switch x := (*m.v).(type) {
%s	}

	return nil, false
}`, e.recv(tm), m, byIndex)

	e.addf(`%s fieldNameAt(index int) string {
	switch (*m.v).(type) {
%s	}

	return ""
}`, e.recv(tm), nameAt)

	var counts string
	for _, v := range fielded {
		counts += fmt.Sprintf("\tcase %s:\n\t\treturn %d\n", caseType(v), len(activeFields(v.Fields)))
	}

	e.addf(`%s NumFields() int {
	switch (*m.v).(type) {
%s	}

	return 0
}`, e.recv(tm), counts)
}

func (e *emitter) emitEnumIterator(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("iter")

	e.addf(`%s Fields() iter.Seq2[string, %s.Reflected] {
	return func(yield func(string, %s.Reflected) bool) {
		for i := range m.NumFields() {
			value, _ := m.FieldAt(i)

			if !yield(m.fieldNameAt(i), value) {
				return
			}
		}
	}
}`, e.recv(tm), m, m)
}

func (e *emitter) emitEnumCloneDynamic(tm *analyze.TypeModel) {
	m := e.mirror()

	binds := len(fieldedVariants(tm)) > 0

	guard := "(*m.v).(type)"
	if binds {
		guard = "x := " + guard
	}

	var cases string

	for _, v := range tm.Variants {
		active := activeFields(v.Fields)

		body := fmt.Sprintf("\t\td.SetVariant(%q, %s.%s)\n", v.Name, m, variantKindName(v.Style))

		for _, f := range active {
			label := f.Name
			if v.Style != analyze.VariantStyleNamed {
				label = ""
			}

			body += fmt.Sprintf("\t\td.InsertField(%q, %s.FieldValue(&x.%s))\n", label, m, f.Name)
		}

		cases += fmt.Sprintf("\tcase %s:\n%s", caseType(v), body)
	}

	e.addf(`%s CloneDynamic() %s.Reflected {
	d := %s.NewDynamicEnum()
	d.SetName(m.TypePath())

	switch %s {
%s	}

	return d
}`, e.recv(tm), m, m, guard, cases)
}
