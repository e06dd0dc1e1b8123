package gen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"mirror-generator/internal/analyze"
	"mirror-generator/internal/annotation"
)

// emitter accumulates the declarations and imports of one generated file.
type emitter struct {
	pkg     *analyze.PackageModel
	cfg     Config
	imports map[string]struct{}
	decls   []string
}

func newEmitter(pkg *analyze.PackageModel, cfg Config) *emitter {
	return &emitter{
		pkg:     pkg,
		cfg:     cfg,
		imports: make(map[string]struct{}),
	}
}

func (e *emitter) addf(format string, args ...any) {
	e.decls = append(e.decls, fmt.Sprintf(format, args...))
}

func (e *emitter) need(path string) {
	e.imports[path] = struct{}{}
}

// mirror records the runtime import and returns its package name.
func (e *emitter) mirror() string {
	e.need(e.cfg.RuntimeImport)

	return "mirror"
}

// useType records the foreign imports a rendered type expression refers to
// and returns the expression unchanged.
func (e *emitter) useType(expr string) string {
	for path, name := range e.pkg.Imports {
		if containsQualifier(expr, name) {
			e.need(path)
		}
	}

	return expr
}

// containsQualifier reports whether expr references `name.` as a package
// qualifier rather than as a suffix of a longer identifier.
func containsQualifier(expr, name string) bool {
	needle := name + "."

	for at := 0; ; {
		i := strings.Index(expr[at:], needle)
		if i < 0 {
			return false
		}

		i += at
		if i == 0 {
			return true
		}

		prev, _ := utf8.DecodeLastRuneInString(expr[:i])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) && prev != '_' {
			return true
		}

		at = i + len(needle)
	}
}

func (e *emitter) fileData() fileData {
	var std, other []string

	for path := range e.imports {
		line := fmt.Sprintf("%q", path)
		if strings.Contains(strings.SplitN(path, "/", 2)[0], ".") {
			other = append(other, line)
		} else {
			std = append(std, line)
		}
	}

	sort.Strings(std)
	sort.Strings(other)

	imports := std
	if len(std) > 0 && len(other) > 0 {
		imports = append(imports, "")
	}

	imports = append(imports, other...)

	return fileData{
		PackageName: e.pkg.Name,
		Imports:     imports,
		Decls:       e.decls,
	}
}

// Generated identifier naming. Adapter-side names are derived from the user
// type's name with a fixed prefix so two annotated types never collide.

func withCap(name string) string {
	r, size := utf8.DecodeRuneInString(name)

	return string(unicode.ToUpper(r)) + name[size:]
}

func adapterName(tm *analyze.TypeModel) string { return "mirror" + withCap(tm.Name) }

func pathConstName(tm *analyze.TypeModel) string { return adapterName(tm) + "Path" }

func infoCellName(tm *analyze.TypeModel) string { return adapterName(tm) + "Info" }

func pathCellName(tm *analyze.TypeModel) string { return adapterName(tm) + "Paths" }

func buildFuncName(tm *analyze.TypeModel) string { return "build" + withCap(tm.Name) + "Registration" }

// fromFuncName follows the declaring type's visibility.
func fromFuncName(tm *analyze.TypeModel) string { return tm.Name + "FromReflected" }

func registerFuncName(tm *analyze.TypeModel) string {
	r, _ := utf8.DecodeRuneInString(tm.Name)
	if unicode.IsUpper(r) {
		return "Register" + tm.Name
	}

	return "register" + withCap(tm.Name)
}

// paramDecl renders the type parameter declaration list, applying custom
// where-clause predicates over the declared constraints.
func (e *emitter) paramDecl(tm *analyze.TypeModel) string {
	if !tm.IsGeneric() {
		return ""
	}

	parts := make([]string, 0, len(tm.TypeParams))

	for _, tp := range tm.TypeParams {
		constraint := tp.Constraint

		for _, pred := range tm.Attrs.CustomWhere() {
			param, c, ok := strings.Cut(pred, ":")
			if ok && strings.TrimSpace(param) == tp.Name {
				constraint = strings.TrimSpace(c)
			}
		}

		if containsQualifier(constraint, "mirror") {
			e.need(e.cfg.RuntimeImport)
		}

		parts = append(parts, tp.Name+" "+e.useType(constraint))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// paramUse renders the type argument list applying the declared parameters.
func paramUse(tm *analyze.TypeModel) string {
	if !tm.IsGeneric() {
		return ""
	}

	names := make([]string, 0, len(tm.TypeParams))
	for _, tp := range tm.TypeParams {
		names = append(names, tp.Name)
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// typeExpr renders the annotated type as used in value positions.
func (e *emitter) typeExpr(tm *analyze.TypeModel) string {
	return tm.Name + paramUse(tm)
}

// recv renders the adapter method receiver clause.
func (e *emitter) recv(tm *analyze.TypeModel) string {
	return fmt.Sprintf("func (m %s%s)", adapterName(tm), paramUse(tm))
}

// activeFields returns the reflectable fields, skipping ignored ones.
func activeFields(fields []analyze.FieldModel) []analyze.FieldModel {
	out := make([]analyze.FieldModel, 0, len(fields))

	for _, f := range fields {
		if !f.Ignore {
			out = append(out, f)
		}
	}

	return out
}

// emitType renders everything one annotated declaration produces.
func (e *emitter) emitType(tm *analyze.TypeModel) error {
	if tm.Prov.Derive == annotation.DeriveTypePath {
		e.emitPathDecls(tm)

		return nil
	}

	switch tm.Kind {
	case annotation.KindStruct, annotation.KindUnitStruct:
		e.emitStruct(tm)
	case annotation.KindTupleStruct:
		e.emitTupleStruct(tm)
	case annotation.KindEnum:
		e.emitEnum(tm)
	case annotation.KindValue:
		e.emitValue(tm)
	default:
		return fmt.Errorf("type %s has no reflectable representation", tm.Name)
	}

	if tm.Attrs.FromReflect().ShouldAutoDerive() {
		e.emitFromReflected(tm)
	}

	e.emitRegistration(tm)

	return nil
}

// emitAdapter renders the adapter type holding a pointer to the annotated
// value.
func (e *emitter) emitAdapter(tm *analyze.TypeModel) {
	e.addf(`// %s is the reflected view of %s.
type %s%s struct {
	v *%s
}`, adapterName(tm), tm.Name, adapterName(tm), e.paramDecl(tm), e.typeExpr(tm))
}

// emitCoreMethods renders Ref and Unwrap. refCtor is the mirror package's
// Ref constructor matching the shape.
func (e *emitter) emitCoreMethods(tm *analyze.TypeModel, refCtor string) {
	m := e.mirror()

	e.addf(`%s Ref() %s.Ref { return %s.%s(m) }`, e.recv(tm), m, m, refCtor)
	e.addf(`%s Unwrap() any { return *m.v }`, e.recv(tm))
}

// emitTraitMethods renders ReflectEqual, ReflectHash and DebugString from
// the declaration's trait registrations. eqHelper names the structural
// comparison helper of the shape's capability view; empty means downcast
// comparison only.
func (e *emitter) emitTraitMethods(tm *analyze.TypeModel, eqHelper, asView string) {
	m := e.mirror()
	typ := e.useType(e.typeExpr(tm))

	switch eq := tm.Attrs.GetPartialEqImpl(); eq.Kind {
	case annotation.NotImplemented:
		e.addf(`%s ReflectEqual(other %s.Reflected) (bool, bool) { return false, false }`,
			e.recv(tm), m)

	case annotation.Custom:
		e.addf(`%s ReflectEqual(other %s.Reflected) (bool, bool) {
	return %s(*m.v, other), true
}`, e.recv(tm), m, eq.Func)

	default:
		if eqHelper == "" {
			e.need("reflect")
			e.addf(`%s ReflectEqual(other %s.Reflected) (bool, bool) {
	return reflect.DeepEqual(*m.v, other.Unwrap()), true
}`, e.recv(tm), m)

			break
		}

		e.need("reflect")
		e.addf(`%s ReflectEqual(other %s.Reflected) (bool, bool) {
	if o, ok := other.Unwrap().(%s); ok {
		return reflect.DeepEqual(*m.v, o), true
	}

	if o, ok := other.Ref().%s(); ok {
		return %s.%s(m, o), true
	}

	return false, true
}`, e.recv(tm), m, typ, asView, m, eqHelper)
	}

	switch h := tm.Attrs.GetHashImpl(); h.Kind {
	case annotation.NotImplemented:
		e.addf(`%s ReflectHash() (uint64, bool) { return 0, false }`, e.recv(tm))

	case annotation.Custom:
		e.addf(`%s ReflectHash() (uint64, bool) { return %s(*m.v), true }`, e.recv(tm), h.Func)

	default:
		e.addf(`%s ReflectHash() (uint64, bool) { return %s.Hash(m.TypePath(), *m.v) }`,
			e.recv(tm), m)
	}

	if d := tm.Attrs.GetDebugImpl(); d.Kind == annotation.Custom {
		e.addf(`%s DebugString() string { return %s(*m.v) }`, e.recv(tm), d.Func)
	} else {
		e.addf(`%s DebugString() string { return %s.DebugString(*m.v) }`, e.recv(tm), m)
	}
}
