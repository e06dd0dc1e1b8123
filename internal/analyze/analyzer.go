package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"mirror-generator/internal/annotation"
	"mirror-generator/internal/common"
	"mirror-generator/internal/diagnostic"
)

// Diagnostic codes emitted by the analyzer.
const (
	CodeUnknownDirective = "unknown-directive"
	CodeModeConflict     = "mode-conflict"
	CodeAttrParse        = "attr-parse"
	CodeBadShape         = "bad-shape"
	CodeFieldTag         = "field-tag"
	CodeTypePath         = "type-path"
	CodeEnumVariants     = "enum-variants"
)

// MirrorTag is the struct tag key carrying per-field annotations.
const MirrorTag = "mirror"

// Analyzer scans loaded packages for mirror directives and builds the
// generator's input model. Problems accumulate; a run keeps going past the
// first bad declaration.
type Analyzer struct {
	diags diagnostic.Diagnostics
}

// NewAnalyzer creates a fresh Analyzer.
func NewAnalyzer() *Analyzer { return &Analyzer{} }

// Diagnostics returns everything recorded so far.
func (a *Analyzer) Diagnostics() *diagnostic.Diagnostics { return &a.diags }

// AnalyzePackage builds the model of one loaded package. Declarations that
// fail analysis are recorded as diagnostics and left out of the model.
func (a *Analyzer) AnalyzePackage(pkg *packages.Package) *PackageModel {
	model := a.analyze(pkg.Fset, pkg.PkgPath, pkg.Name, pkg.Syntax, pkg.Types)

	if len(pkg.GoFiles) > 0 {
		model.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	return model
}

func (a *Analyzer) analyze(
	fset *token.FileSet,
	path, name string,
	files []*ast.File,
	typesPkg *types.Package,
) *PackageModel {
	c := &pkgContext{
		fset:     fset,
		path:     path,
		typesPkg: typesPkg,
		files:    files,
		diags:    &a.diags,
		model: &PackageModel{
			Path:    path,
			Name:    name,
			Imports: make(map[string]string),
		},
	}

	for _, f := range files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, s := range gd.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if !ok {
					continue
				}

				groups := []*ast.CommentGroup{ts.Doc}
				if common.IsSingle(gd.Specs) {
					groups = append(groups, gd.Doc)
				}

				if dirs := directivesOf(fset, groups...); len(dirs) > 0 {
					c.buildType(ts, dirs)
				}
			}
		}
	}

	return c.model
}

type pkgContext struct {
	fset     *token.FileSet
	path     string
	typesPkg *types.Package
	files    []*ast.File
	diags    *diagnostic.Diagnostics
	model    *PackageModel
}

// qualifier renders foreign package references by name and records them as
// imports the generated file will need.
func (c *pkgContext) qualifier(p *types.Package) string {
	if p == nil || p.Path() == c.path {
		return ""
	}

	c.model.Imports[p.Path()] = p.Name()

	return p.Name()
}

func (c *pkgContext) buildType(spec *ast.TypeSpec, dirs []directive) {
	typeName := spec.Name.Name
	pos := c.fset.Position(spec.Pos())

	var reflectDirs, valueDirs, pathDirs []directive

	for _, d := range dirs {
		switch d.name {
		case ReflectDirective:
			reflectDirs = append(reflectDirs, d)
		case ValueDirective:
			valueDirs = append(valueDirs, d)
		case TypePathDirective:
			pathDirs = append(pathDirs, d)
		default:
			c.diags.AddError(CodeUnknownDirective,
				fmt.Sprintf("unknown mirror directive `%s%s`", directiveMarker, d.name),
				typeName, d.pos)
		}
	}

	if len(reflectDirs) > 0 && len(valueDirs) > 0 {
		c.diags.AddError(CodeModeConflict,
			"cannot use both `mirror:reflect` and `mirror:value` on the same declaration",
			typeName, valueDirs[0].pos)

		return
	}

	if len(reflectDirs)+len(valueDirs)+len(pathDirs) == 0 {
		return
	}

	obj, ok := c.typesPkg.Scope().Lookup(typeName).(*types.TypeName)
	if !ok {
		// Unresolved declaration; the loader already reported the type error.
		return
	}

	model := &TypeModel{Name: typeName, Pos: pos}

	source := annotation.SourceLocal

	if obj.IsAlias() {
		if origin, ok := types.Unalias(obj.Type()).(*types.Named); ok {
			originPkg := origin.Obj().Pkg()
			if originPkg != nil && originPkg.Path() != c.path {
				source = annotation.SourceExtern
				model.AliasOf = types.TypeString(origin, c.qualifier)
			}
		}
	}

	derive := annotation.DeriveReflect
	if len(reflectDirs)+len(valueDirs) == 0 {
		derive = annotation.DeriveTypePath
	}

	// A path-only derive never consumes the shape, so any named type may
	// carry it.
	kind := annotation.KindUnknown

	if derive != annotation.DeriveTypePath {
		kind = c.classify(obj.Type(), len(valueDirs) > 0, typeName, pos)
		if kind == annotation.KindUnknown {
			return
		}
	}

	prov := annotation.Provenance{Derive: derive, Source: source, Kind: kind}
	model.Kind = kind
	model.Prov = prov

	attrs := &annotation.ContainerAttributes{}

	for _, d := range append(reflectDirs, valueDirs...) {
		parsed, err := annotation.ParseList(d.args, d.argsPos, prov)
		if err != nil {
			c.diags.AddError(CodeAttrParse, err.Msg, typeName, err.Pos)

			continue
		}

		if err := attrs.Merge(parsed); err != nil {
			c.diags.AddError(CodeAttrParse, err.Msg, typeName, err.Pos)
		}
	}

	model.Attrs = attrs

	if len(pathDirs) > 1 {
		c.diags.AddError(CodeTypePath,
			"duplicate `mirror:typepath` directive", typeName, pathDirs[1].pos)
	}

	if len(pathDirs) > 0 {
		model.CustomPath = c.parseTypePathArg(pathDirs[0], typeName)
	}

	switch kind {
	case annotation.KindStruct, annotation.KindTupleStruct, annotation.KindUnitStruct:
		st := obj.Type().Underlying().(*types.Struct)
		model.Fields = c.fieldsOf(st, typeName, &model.Ignored)

	case annotation.KindEnum:
		model.Variants = c.variantsOf(obj, typeName, pos)
	}

	if named, ok := types.Unalias(obj.Type()).(*types.Named); ok {
		tps := named.TypeParams()
		for i := range tps.Len() {
			tp := tps.At(i)

			model.TypeParams = append(model.TypeParams, TypeParam{
				Name:       tp.Obj().Name(),
				Constraint: types.TypeString(tp.Constraint(), c.qualifier),
			})
		}
	}

	c.model.Types = append(c.model.Types, model)
}

func (c *pkgContext) parseTypePathArg(d directive, typeName string) string {
	lit := strings.TrimSpace(d.args)

	path, err := strconv.Unquote(lit)
	if err != nil || path == "" {
		c.diags.AddError(CodeTypePath,
			"`mirror:typepath` requires a quoted non-empty path literal",
			typeName, d.argsPos)

		return ""
	}

	return path
}

// classify maps a declaration onto its reflectable shape. Shapes with no
// reflectable representation record an error and return KindUnknown.
func (c *pkgContext) classify(t types.Type, valueMode bool, typeName string, pos token.Position) annotation.TypeKind {
	if valueMode {
		return annotation.KindValue
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		switch {
		case u.NumFields() == 0:
			return annotation.KindUnitStruct
		case isTupleFields(u):
			return annotation.KindTupleStruct
		default:
			return annotation.KindStruct
		}

	case *types.Interface:
		if isSealed(u) {
			return annotation.KindEnum
		}
	}

	c.diags.AddError(CodeBadShape,
		fmt.Sprintf("type %s has no reflectable representation", typeName),
		typeName, pos)

	return annotation.KindUnknown
}

// isTupleFields reports whether the struct's fields follow the positional
// F0..Fn naming convention exactly.
func isTupleFields(st *types.Struct) bool {
	for i := range st.NumFields() {
		if st.Field(i).Name() != fmt.Sprintf("F%d", i) {
			return false
		}
	}

	return st.NumFields() > 0
}

// isSealed reports whether the interface declares at least one unexported
// method, closing its implementation set to the declaring package.
func isSealed(iface *types.Interface) bool {
	for i := range iface.NumMethods() {
		if !iface.Method(i).Exported() {
			return true
		}
	}

	return false
}

func (c *pkgContext) fieldsOf(st *types.Struct, owner string, ignored *common.BitSet) []FieldModel {
	var out []FieldModel

	for i := range st.NumFields() {
		f := st.Field(i)

		fm := FieldModel{
			Name:     f.Name(),
			Index:    i,
			TypeExpr: types.TypeString(f.Type(), c.qualifier),
			Pos:      c.fset.Position(f.Pos()),
		}

		// Options combine, e.g. `mirror:"ignore,default=dial"` runs the
		// producer for a field that never reads the source.
		for _, opt := range strings.Split(reflect.StructTag(st.Tag(i)).Get(MirrorTag), ",") {
			switch opt = strings.TrimSpace(opt); {
			case opt == "":

			case opt == "ignore":
				fm.Ignore = true

				if ignored != nil {
					ignored.Insert(i)
				}

			case opt == "default":
				fm.Default = true

			case strings.HasPrefix(opt, "default="):
				fm.Default = true
				fm.DefaultFn = strings.TrimPrefix(opt, "default=")

			default:
				c.diags.AddFieldError(CodeFieldTag,
					fmt.Sprintf("unknown mirror tag %q", opt), owner, f.Name(), fm.Pos)
			}
		}

		out = append(out, fm)
	}

	return out
}

// variantsOf collects the package-local struct types implementing the sealed
// interface, in declaration order across the package's files.
func (c *pkgContext) variantsOf(enumObj *types.TypeName, typeName string, pos token.Position) []VariantModel {
	iface, ok := enumObj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil
	}

	var out []VariantModel

	for _, f := range c.files {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, s := range gd.Specs {
				ts, ok := s.(*ast.TypeSpec)
				if !ok {
					continue
				}

				vobj, ok := c.typesPkg.Scope().Lookup(ts.Name.Name).(*types.TypeName)
				if !ok || vobj.IsAlias() {
					continue
				}

				st, ok := vobj.Type().Underlying().(*types.Struct)
				if !ok {
					continue
				}

				valueImpl := types.Implements(vobj.Type(), iface)
				if !valueImpl && !types.Implements(types.NewPointer(vobj.Type()), iface) {
					continue
				}

				style := VariantStyleNamed
				if st.NumFields() == 0 {
					style = VariantStyleUnit
				} else if isTupleFields(st) {
					style = VariantStyleUnnamed
				}

				out = append(out, VariantModel{
					Name:    ts.Name.Name,
					Style:   style,
					Fields:  c.fieldsOf(st, typeName+"."+ts.Name.Name, nil),
					PtrOnly: !valueImpl,
					Pos:     c.fset.Position(ts.Pos()),
				})
			}
		}
	}

	if len(out) == 0 {
		c.diags.AddError(CodeEnumVariants,
			fmt.Sprintf("sealed interface %s has no implementing variants in its package", typeName),
			typeName, pos)
	}

	return out
}
