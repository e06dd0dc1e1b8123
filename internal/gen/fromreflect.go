package gen

import (
	"fmt"

	"mirror-generator/internal/analyze"
	"mirror-generator/internal/annotation"
)

// MirrorDefaultIdent is the marker that switches reconstruction to the
// default-then-overlay strategy for local types.
const MirrorDefaultIdent = "MirrorDefault"

// usesContainerDefault reports whether reconstruction starts from a
// container-level default instead of requiring every field.
func usesContainerDefault(tm *analyze.TypeModel) bool {
	switch tm.Kind {
	case annotation.KindStruct, annotation.KindTupleStruct, annotation.KindUnitStruct:
	default:
		return false
	}

	return tm.Attrs.FromReflect().ContainerDefault != nil || tm.Attrs.HasIdent(MirrorDefaultIdent)
}

// emitFromReflected renders the reconstruction function for one type:
// `<Type>FromReflected(v mirror.Reflected) (<Type>, bool)`.
func (e *emitter) emitFromReflected(tm *analyze.TypeModel) {
	switch tm.Kind {
	case annotation.KindValue:
		e.emitValueFromReflected(tm)
	case annotation.KindEnum:
		e.emitEnumFromReflected(tm)
	default:
		e.emitStructFromReflected(tm)
	}
}

func (e *emitter) emitValueFromReflected(tm *analyze.TypeModel) {
	m := e.mirror()
	typ := e.useType(e.typeExpr(tm))

	e.addf(`// %s reconstructs a %s from a reflected value wrapping one.
func %s%s(v %s.Reflected) (%s, bool) {
	out, ok := v.Unwrap().(%s)

	return out, ok
}`, fromFuncName(tm), tm.Name, fromFuncName(tm), e.paramDecl(tm), m, typ, typ)
}

// fieldAccessor renders the lookup expression for one active field.
func fieldAccessor(kind annotation.TypeKind, f analyze.FieldModel, index int) string {
	if kind == annotation.KindTupleStruct {
		return fmt.Sprintf("s.Field(%d)", index)
	}

	return fmt.Sprintf("s.Field(%q)", f.Name)
}

func (e *emitter) emitStructFromReflected(tm *analyze.TypeModel) {
	m := e.mirror()
	typ := e.useType(e.typeExpr(tm))
	zero := typ + "{}"

	view := "AsStruct"
	if tm.Kind == annotation.KindTupleStruct {
		view = "AsTupleStruct"
	}

	if usesContainerDefault(tm) {
		e.emitOverlayFromReflected(tm, view)

		return
	}

	active := activeFields(tm.Fields)

	// Without active fields the view binding would go unused and fail to
	// compile; keep only the shape check.
	viewVar := "s"
	if len(active) == 0 {
		viewVar = "_"
	}

	body := fmt.Sprintf(`	%s, ok := v.Ref().%s()
	if !ok {
		return %s, false
	}

	var out %s
`, viewVar, view, zero, typ)

	for i, f := range active {
		access := fieldAccessor(tm.Kind, f, i)
		conv := fmt.Sprintf("%s.FromReflected[%s](f)", m, e.useType(f.TypeExpr))

		switch {
		case f.Default && f.DefaultFn != "":
			body += fmt.Sprintf(`
	if f, ok := %s; ok {
		if out.%s, ok = %s; !ok {
			return %s, false
		}
	} else {
		out.%s = %s()
	}
`, access, f.Name, conv, zero, f.Name, f.DefaultFn)

		case f.Default:
			body += fmt.Sprintf(`
	if f, ok := %s; ok {
		if out.%s, ok = %s; !ok {
			return %s, false
		}
	}
`, access, f.Name, conv, zero)

		default:
			body += fmt.Sprintf(`
	if f, ok := %s; ok {
		if out.%s, ok = %s; !ok {
			return %s, false
		}
	} else {
		return %s, false
	}
`, access, f.Name, conv, zero, zero)
		}
	}

	// Ignored fields never read from the source; a declared producer still
	// runs.
	for _, f := range tm.Fields {
		if f.Ignore && f.DefaultFn != "" {
			body += fmt.Sprintf("\n\tout.%s = %s()\n", f.Name, f.DefaultFn)
		}
	}

	e.addf(`// %s reconstructs a %s from any reflected value of matching shape.
func %s%s(v %s.Reflected) (%s, bool) {
%s
	return out, true
}`, fromFuncName(tm), tm.Name, fromFuncName(tm), e.paramDecl(tm), m, typ, body)
}

// emitOverlayFromReflected renders the default-then-overlay strategy: start
// from the container default and keep it for any field that does not
// extract. The reconstruction itself never fails.
func (e *emitter) emitOverlayFromReflected(tm *analyze.TypeModel, view string) {
	m := e.mirror()
	typ := e.useType(e.typeExpr(tm))

	init := fmt.Sprintf("var out %s", typ)
	if cd := tm.Attrs.FromReflect().ContainerDefault; cd != nil && cd.Path != "" {
		init = fmt.Sprintf("out := %s()", cd.Path)
	}

	active := activeFields(tm.Fields)

	viewVar := "s"
	if len(active) == 0 {
		viewVar = "_"
	}

	var overlays string

	for i, f := range active {
		access := fieldAccessor(tm.Kind, f, i)

		overlays += fmt.Sprintf(`
	if f, ok := %s; ok {
		if fv, ok := %s.FromReflected[%s](f); ok {
			out.%s = fv
		}
	}
`, access, m, e.useType(f.TypeExpr), f.Name)
	}

	for _, f := range tm.Fields {
		if f.Ignore && f.DefaultFn != "" {
			overlays += fmt.Sprintf("\n\tout.%s = %s()\n", f.Name, f.DefaultFn)
		}
	}

	e.addf(`// %s reconstructs a %s, overlaying reflected fields onto the
// container default and keeping the default for anything that does not
// extract.
func %s%s(v %s.Reflected) (%s, bool) {
	%s

	%s, ok := v.Ref().%s()
	if !ok {
		return out, true
	}
%s
	return out, true
}`, fromFuncName(tm), tm.Name, fromFuncName(tm), e.paramDecl(tm), m, typ, init, viewVar, view, overlays)
}

func (e *emitter) emitEnumFromReflected(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("fmt")

	typ := e.useType(e.typeExpr(tm))

	var cases string

	for _, v := range tm.Variants {
		active := activeFields(v.Fields)

		ret := "out"
		if v.PtrOnly {
			ret = "&out"
		}

		if len(active) == 0 {
			cases += fmt.Sprintf("\tcase %q:\n\t\tvar out %s\n\n\t\treturn %s, true\n",
				v.Name, v.Name, ret)

			continue
		}

		body := fmt.Sprintf("\t\tvar out %s\n", v.Name)

		for i, f := range active {
			access := fmt.Sprintf("en.Field(%q)", f.Name)
			if v.Style != analyze.VariantStyleNamed {
				access = fmt.Sprintf("en.FieldAt(%d)", i)
			}

			conv := fmt.Sprintf("%s.FromReflected[%s](f)", m, e.useType(f.TypeExpr))

			switch {
			case f.Default && f.DefaultFn != "":
				body += fmt.Sprintf(`
		if f, ok := %s; ok {
			if out.%s, ok = %s; !ok {
				return nil, false
			}
		} else {
			out.%s = %s()
		}
`, access, f.Name, conv, f.Name, f.DefaultFn)

			case f.Default:
				body += fmt.Sprintf(`
		if f, ok := %s; ok {
			if out.%s, ok = %s; !ok {
				return nil, false
			}
		}
`, access, f.Name, conv)

			default:
				body += fmt.Sprintf(`
		if f, ok := %s; ok {
			if out.%s, ok = %s; !ok {
				return nil, false
			}
		} else {
			return nil, false
		}
`, access, f.Name, conv)
			}
		}

		cases += fmt.Sprintf("\tcase %q:\n%s\n\t\treturn %s, true\n", v.Name, body, ret)
	}

	e.addf(`// %s reconstructs a %s from a reflected enum value. An
// unrecognized variant name is a programming error and panics.
func %s%s(v %s.Reflected) (%s, bool) {
	en, ok := v.Ref().AsEnum()
	if !ok {
		return nil, false
	}

	switch en.VariantName() {
%s	default:
		panic(fmt.Sprintf("variant with name `+"`%%s`"+` does not exist on enum `+"`%%s`"+`", en.VariantName(), %s))
	}
}`, fromFuncName(tm), tm.Name, fromFuncName(tm), e.paramDecl(tm), m, typ, cases, e.pathExpr(tm))
}
