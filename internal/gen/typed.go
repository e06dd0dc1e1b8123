package gen

import (
	"fmt"
	"strings"

	"mirror-generator/internal/analyze"
)

// staticPath returns the declaration's stable path literal: the typepath
// override when present, the package-qualified name otherwise.
func (e *emitter) staticPath(tm *analyze.TypeModel) string {
	if tm.CustomPath != "" {
		return tm.CustomPath
	}

	return e.pkg.Path + "." + tm.Name
}

// emitPathDecls renders the stable-path declarations: a const for
// non-generic types, a path function embedding the argument paths for
// generic ones, cached per instantiation. Declarations that opted out of
// the derived path get none.
func (e *emitter) emitPathDecls(tm *analyze.TypeModel) {
	if tm.CustomPath == "" && !tm.Attrs.TypePath().ShouldAutoDerive() {
		return
	}

	if tm.IsGeneric() && tm.CustomPath == "" {
		m := e.mirror()
		e.need("reflect")

		segs := make([]string, 0, len(tm.TypeParams))
		for _, tp := range tm.TypeParams {
			segs = append(segs, fmt.Sprintf("%s.PathOf[%s]()", m, tp.Name))
		}

		e.addf(`var %s %s.GenericInfoCell[string]`, pathCellName(tm), m)

		e.addf(`// %s returns the stable path of one %s instantiation.
func %s%s() string {
	return %s.GetOrInsert(reflect.TypeFor[%s](), func() string {
		return %q + %s + "]"
	})
}`, pathConstName(tm), tm.Name,
			pathConstName(tm), e.paramDecl(tm),
			pathCellName(tm), e.typeExpr(tm),
			e.staticPath(tm)+"[", strings.Join(segs, ` + ", " + `))

		return
	}

	e.addf(`// %s is the stable path identity of %s.
const %s = %q`, pathConstName(tm), tm.Name, pathConstName(tm), e.staticPath(tm))
}

// pathExpr returns a Go expression evaluating to the type's path string.
func (e *emitter) pathExpr(tm *analyze.TypeModel) string {
	switch {
	case tm.CustomPath != "":
		return pathConstName(tm)

	case !tm.Attrs.TypePath().ShouldAutoDerive():
		return fmt.Sprintf("%s.PathOf[%s]()", e.mirror(), e.useType(e.typeExpr(tm)))

	case tm.IsGeneric():
		return pathConstName(tm) + paramUse(tm) + "()"

	default:
		return pathConstName(tm)
	}
}

func (e *emitter) emitTypePathMethod(tm *analyze.TypeModel) {
	e.addf(`%s TypePath() string { return %s }`, e.recv(tm), e.pathExpr(tm))
}

// typePathLiteral renders the mirror.TypePath value stored in the type info.
func (e *emitter) typePathLiteral(tm *analyze.TypeModel) string {
	pkg, ident := e.pkg.Path, tm.Name

	if tm.CustomPath != "" {
		if i := strings.LastIndex(tm.CustomPath, "."); i >= 0 {
			pkg, ident = tm.CustomPath[:i], tm.CustomPath[i+1:]
		}
	}

	return fmt.Sprintf("%s.TypePath{Path: %s, Short: %q, Ident: %q, Pkg: %q}",
		e.mirror(), e.pathExpr(tm), ident, ident, pkg)
}

// emitTypeInfo renders the populate-once cell and the TypeInfo method.
// Generic types key the cell per instantiation; non-generic types compute
// once.
func (e *emitter) emitTypeInfo(tm *analyze.TypeModel, infoExpr string) {
	m := e.mirror()
	e.need("reflect")

	if tm.IsGeneric() {
		e.addf(`var %s %s.GenericInfoCell[*%s.TypeInfo]`, infoCellName(tm), m, m)

		e.addf(`%s TypeInfo() *%s.TypeInfo {
	return %s.GetOrInsert(reflect.TypeFor[%s](), func() *%s.TypeInfo {
		return %s
	})
}`, e.recv(tm), m, infoCellName(tm), e.typeExpr(tm), m, infoExpr)

		return
	}

	e.addf(`var %s %s.InfoCell[*%s.TypeInfo]`, infoCellName(tm), m, m)

	e.addf(`%s TypeInfo() *%s.TypeInfo {
	return %s.GetOrInit(func() *%s.TypeInfo {
		return %s
	})
}`, e.recv(tm), m, infoCellName(tm), m, infoExpr)
}

// namedFieldLiterals renders mirror.NamedField entries for the active
// fields, indexed by their position in the reflectable surface.
func (e *emitter) namedFieldLiterals(fields []analyze.FieldModel) []string {
	m := e.mirror()

	out := make([]string, 0, len(fields))
	for i, f := range fields {
		out = append(out, fmt.Sprintf(
			"%s.NamedField{Name: %q, Type: reflect.TypeFor[%s](), Index: %d},",
			m, f.Name, e.useType(f.TypeExpr), i))
	}

	return out
}

// unnamedFieldLiterals renders mirror.UnnamedField entries.
func (e *emitter) unnamedFieldLiterals(fields []analyze.FieldModel) []string {
	m := e.mirror()

	out := make([]string, 0, len(fields))
	for i, f := range fields {
		out = append(out, fmt.Sprintf(
			"%s.UnnamedField{Type: reflect.TypeFor[%s](), Index: %d},",
			m, e.useType(f.TypeExpr), i))
	}

	return out
}

func indent(lines []string, by string) string {
	return by + strings.Join(lines, "\n"+by)
}
