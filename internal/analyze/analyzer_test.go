package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror-generator/internal/annotation"
	"mirror-generator/internal/diagnostic"
)

type mapImporter map[string]*types.Package

func (m mapImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("package %s not found", path)
}

func typeCheck(t *testing.T, fset *token.FileSet, path, src string, deps mapImporter) (*types.Package, *ast.File) {
	t.Helper()

	file, err := parser.ParseFile(fset, path+"/fixture.go", src, parser.ParseComments)
	require.NoError(t, err)

	conf := types.Config{Importer: deps}

	pkg, err := conf.Check(path, fset, []*ast.File{file}, nil)
	require.NoError(t, err)

	return pkg, file
}

func analyzeSource(t *testing.T, src string) (*PackageModel, *diagnostic.Diagnostics) {
	t.Helper()

	return analyzeSourceWith(t, src, nil)
}

func analyzeSourceWith(t *testing.T, src string, deps mapImporter) (*PackageModel, *diagnostic.Diagnostics) {
	t.Helper()

	fset := token.NewFileSet()
	pkg, file := typeCheck(t, fset, "example.com/fixture", src, deps)

	a := NewAnalyzer()
	model := a.analyze(fset, "example.com/fixture", pkg.Name(), []*ast.File{file}, pkg)

	return model, a.Diagnostics()
}

func requireOneType(t *testing.T, model *PackageModel, diags *diagnostic.Diagnostics) *TypeModel {
	t.Helper()

	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Error())
	require.Len(t, model.Types, 1)

	return model.Types[0]
}

func TestAnalyze_NamedStruct(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect Hash, Serialize
type Point struct {
	X float64
	Y float64
}
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, "Point", tm.Name)
	assert.Equal(t, annotation.KindStruct, tm.Kind)
	assert.Equal(t, annotation.SourceLocal, tm.Prov.Source)

	require.Len(t, tm.Fields, 2)
	assert.Equal(t, "X", tm.Fields[0].Name)
	assert.Equal(t, "float64", tm.Fields[0].TypeExpr)

	assert.Equal(t, annotation.Implemented, tm.Attrs.GetHashImpl().Kind)
	assert.True(t, tm.Attrs.HasIdent("MirrorSerialize"))
}

func TestAnalyze_UnitStruct(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Marker struct{}
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, annotation.KindUnitStruct, tm.Kind)
	assert.Empty(t, tm.Fields)
}

func TestAnalyze_TupleStructConvention(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Pair struct {
	F0 int
	F1 string
}

//mirror:reflect
type NotTuple struct {
	F0 int
	X  string
}
`)

	require.True(t, diags.IsValid())
	require.Len(t, model.Types, 2)

	assert.Equal(t, annotation.KindTupleStruct, model.Types[0].Kind)
	assert.Equal(t, annotation.KindStruct, model.Types[1].Kind)
}

func TestAnalyze_ValueMode(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:value Hash, PartialEq
type Token string
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, annotation.KindValue, tm.Kind)
	assert.Empty(t, tm.Fields)
	assert.Equal(t, annotation.Implemented, tm.Attrs.GetHashImpl().Kind)
}

func TestAnalyze_ModeConflict(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
//mirror:value
type Broken struct{ X int }
`)

	assert.Empty(t, model.Types)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeModeConflict, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "cannot use both")
}

func TestAnalyze_NoReflectableShape(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Lookup map[string]int
`)

	assert.Empty(t, model.Types)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadShape, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "no reflectable representation")
}

func TestAnalyze_UnsealedInterfaceRejected(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Open interface {
	Area() float64
}
`)

	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadShape, diags.Errors[0].Code)
}

func TestAnalyze_EnumVariants(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect PartialEq
type Shape interface {
	isShape()
}

type Circle struct {
	Radius float64
}

func (Circle) isShape() {}

type Square struct {
	F0 float64
}

func (Square) isShape() {}

type Origin struct{}

func (Origin) isShape() {}

type Unrelated struct {
	N int
}
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, annotation.KindEnum, tm.Kind)

	require.Len(t, tm.Variants, 3)
	assert.Equal(t, "Circle", tm.Variants[0].Name)
	assert.Equal(t, VariantStyleNamed, tm.Variants[0].Style)
	assert.Equal(t, "Square", tm.Variants[1].Name)
	assert.Equal(t, VariantStyleUnnamed, tm.Variants[1].Style)
	assert.Equal(t, "Origin", tm.Variants[2].Name)
	assert.Equal(t, VariantStyleUnit, tm.Variants[2].Style)
}

func TestAnalyze_EnumWithoutVariants(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Empty interface {
	isEmpty()
}
`)

	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeEnumVariants, diags.Errors[0].Code)
}

func TestAnalyze_FieldTags(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Session struct {
	ID      string `+"`mirror:\"default=newID\"`"+`
	Name    string `+"`mirror:\"default\"`"+`
	Secret  string `+"`mirror:\"ignore\"`"+`
	Payload []byte
}
`)

	tm := requireOneType(t, model, diags)
	require.Len(t, tm.Fields, 4)

	assert.True(t, tm.Fields[0].Default)
	assert.Equal(t, "newID", tm.Fields[0].DefaultFn)

	assert.True(t, tm.Fields[1].Default)
	assert.Empty(t, tm.Fields[1].DefaultFn)

	assert.True(t, tm.Fields[2].Ignore)
	assert.Equal(t, []int{2}, tm.Ignored.Indices())

	assert.False(t, tm.Fields[3].Ignore)
	assert.False(t, tm.Fields[3].Default)
}

func TestAnalyze_IgnoredFieldWithDefaultProducer(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Client struct {
	Addr string
	conn string `+"`mirror:\"ignore,default=dial\"`"+`
}
`)

	tm := requireOneType(t, model, diags)
	require.Len(t, tm.Fields, 2)

	assert.True(t, tm.Fields[1].Ignore)
	assert.True(t, tm.Fields[1].Default)
	assert.Equal(t, "dial", tm.Fields[1].DefaultFn)
	assert.Equal(t, []int{1}, tm.Ignored.Indices())
}

func TestAnalyze_UnknownFieldTag(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Bad struct {
	X int `+"`mirror:\"skip\"`"+`
}
`)

	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeFieldTag, diags.Errors[0].Code)
	assert.Equal(t, "X", diags.Errors[0].FieldPath)
}

func TestAnalyze_TypePathDirective(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
//mirror:typepath "legacy/geometry.Point"
type Point struct {
	X float64
}
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, "legacy/geometry.Point", tm.CustomPath)
}

func TestAnalyze_TypePathOnlyOnBasicType(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:typepath "units.Celsius"
type Celsius float64
`)

	// A path-only derive never consumes the shape, so a named basic type is
	// fine here even though it has no reflectable representation.
	tm := requireOneType(t, model, diags)
	assert.Equal(t, annotation.DeriveTypePath, tm.Prov.Derive)
	assert.Equal(t, "units.Celsius", tm.CustomPath)
	assert.Empty(t, tm.Fields)
}

func TestAnalyze_TypePathRequiresQuotedLiteral(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect
//mirror:typepath legacy.Point
type Point struct {
	X float64
}
`)

	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeTypePath, diags.Errors[0].Code)
}

func TestAnalyze_DuplicateTypePathDirective(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect
//mirror:typepath "a.B"
//mirror:typepath "c.D"
type Point struct {
	X float64
}
`)

	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Errors[0].Message, "duplicate")
}

func TestAnalyze_AliasToForeignType(t *testing.T) {
	fset := token.NewFileSet()

	extPkg, _ := typeCheck(t, fset, "example.com/ext", `package ext

type Duration struct {
	Secs int64
}
`, nil)

	deps := mapImporter{"example.com/ext": extPkg}

	src := `package fixture

import "example.com/ext"

//mirror:reflect container_default = makeDuration
type Duration = ext.Duration
`

	pkg, file := typeCheck(t, fset, "example.com/fixture", src, deps)

	a := NewAnalyzer()
	model := a.analyze(fset, "example.com/fixture", pkg.Name(), []*ast.File{file}, pkg)

	tm := requireOneType(t, model, a.Diagnostics())
	assert.Equal(t, annotation.SourceExtern, tm.Prov.Source)
	assert.Equal(t, "ext.Duration", tm.AliasOf)
	assert.Equal(t, annotation.KindStruct, tm.Kind)

	cd := tm.Attrs.FromReflect().ContainerDefault
	require.NotNil(t, cd)
	assert.Equal(t, "makeDuration", cd.Path)

	assert.Equal(t, "ext", model.Imports["example.com/ext"])
}

func TestAnalyze_ContainerDefaultOnLocalTypeRejected(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect container_default = makePoint
type Point struct {
	X float64
}
`)

	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeAttrParse, diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, "non-local types")
}

func TestAnalyze_GenericTypeParams(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
`)

	tm := requireOneType(t, model, diags)
	require.True(t, tm.IsGeneric())
	require.Len(t, tm.TypeParams, 2)

	assert.Equal(t, "K", tm.TypeParams[0].Name)
	assert.Equal(t, "comparable", tm.TypeParams[0].Constraint)
	assert.Equal(t, "V", tm.TypeParams[1].Name)
	assert.Equal(t, "any", tm.TypeParams[1].Constraint)
}

func TestAnalyze_MergesRepeatedDirectives(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

//mirror:reflect Hash
//mirror:reflect PartialEq, Serialize
type Point struct {
	X float64
}
`)

	tm := requireOneType(t, model, diags)
	assert.Equal(t, annotation.Implemented, tm.Attrs.GetHashImpl().Kind)
	assert.Equal(t, annotation.Implemented, tm.Attrs.GetPartialEqImpl().Kind)
	assert.True(t, tm.Attrs.HasIdent("MirrorSerialize"))
}

func TestAnalyze_ConflictAcrossDirectives(t *testing.T) {
	_, diags := analyzeSource(t, `package fixture

//mirror:reflect Hash
//mirror:reflect Hash
type Point struct {
	X float64
}
`)

	require.True(t, diags.HasErrors())
	assert.Contains(t, diags.Errors[0].Message, "conflicting type data registration")
}

func TestAnalyze_UnannotatedTypesSkipped(t *testing.T) {
	model, diags := analyzeSource(t, `package fixture

type Plain struct {
	X int
}
`)

	require.True(t, diags.IsValid())
	assert.Empty(t, model.Types)
}
