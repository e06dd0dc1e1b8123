package gen

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mirror-generator/internal/analyze"
	"mirror-generator/internal/annotation"
)

func localProv(kind annotation.TypeKind) annotation.Provenance {
	return annotation.Provenance{
		Derive: annotation.DeriveReflect,
		Source: annotation.SourceLocal,
		Kind:   kind,
	}
}

func parseAttrs(t *testing.T, raw string, prov annotation.Provenance) *annotation.ContainerAttributes {
	t.Helper()

	attrs, perr := annotation.ParseList(raw, token.Position{Filename: "geo.go", Line: 3}, prov)
	require.Nil(t, perr)

	return attrs
}

func geoPackage(types ...*analyze.TypeModel) *analyze.PackageModel {
	return &analyze.PackageModel{
		Path:    "example.com/geo",
		Name:    "geo",
		Types:   types,
		Imports: map[string]string{},
	}
}

func render(t *testing.T, pkg *analyze.PackageModel) string {
	t.Helper()

	file, err := NewGenerator(Config{}).Generate(pkg)
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, pkg.Name+"_mirror.go", file.Filename)

	return string(file.Content)
}

func pointModel(t *testing.T, raw string) *analyze.TypeModel {
	t.Helper()

	tm := &analyze.TypeModel{
		Name:  "Point",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, raw, localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "X", Index: 0, TypeExpr: "float64"},
			{Name: "Y", Index: 1, TypeExpr: "float64"},
			{Name: "cache", Index: 2, TypeExpr: "[]byte", Ignore: true},
		},
	}
	tm.Ignored.Insert(2)

	return tm
}

func TestGenerateNamedStruct(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "Hash, PartialEq, Debug, Serialize")))

	assert.Contains(t, src, "// Code generated by mirror-gen. DO NOT EDIT.")
	assert.Contains(t, src, `const mirrorPointPath = "example.com/geo.Point"`)
	assert.Contains(t, src, "type mirrorPoint struct {\n\tv *Point\n}")
	assert.Contains(t, src, "func (m mirrorPoint) TypePath() string { return mirrorPointPath }")
	assert.Contains(t, src, "var mirrorPointInfo mirror.InfoCell[*mirror.TypeInfo]")
	assert.Contains(t, src, "mirror.NewStructTypeInfo(")
	assert.Contains(t, src, "mirror.StructRef(m)")
	assert.Contains(t, src, "func (m mirrorPoint) NumFields() int { return 2 }")
	assert.Contains(t, src, `reg.Insert(mirror.NewSerializationData(2))`)
	assert.Contains(t, src, `reg.Insert(mirror.TypeDataFor[Point]("MirrorSerialize"))`)
	assert.Contains(t, src, "func init() {")
	assert.Contains(t, src, "func buildPointRegistration() *mirror.TypeRegistration {")
	assert.Contains(t, src, "func PointFromReflected(v mirror.Reflected) (Point, bool) {")

	// The ignored field never surfaces through the reflectable view.
	assert.NotContains(t, src, `case "cache":`)
	assert.NotContains(t, src, "m.v.cache")
}

func TestGenerateStructFieldAccess(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "Hash")))

	assert.Contains(t, src, `case "X":
		return mirror.FieldValue(&m.v.X), true`)
	assert.Contains(t, src, `case "Y":
		if fv, ok := mirror.FromReflected[float64](value); ok {
			m.v.Y = fv`)
	assert.Contains(t, src, `d.Insert("X", mirror.FieldValue(&m.v.X))`)
	assert.Contains(t, src, "d := mirror.NewDynamicStruct()")
	assert.Contains(t, src, "d.SetName(m.TypePath())")
}

func TestGenerateStructTraits(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "Hash, PartialEq, Debug")))

	assert.Contains(t, src, "func (m mirrorPoint) ReflectHash() (uint64, bool) { return mirror.Hash(m.TypePath(), *m.v) }")
	assert.Contains(t, src, "if o, ok := other.Unwrap().(Point); ok {\n\t\treturn reflect.DeepEqual(*m.v, o), true")
	assert.Contains(t, src, "if o, ok := other.Ref().AsStruct(); ok {\n\t\treturn mirror.StructsEqual(m, o), true")
	assert.Contains(t, src, "func (m mirrorPoint) DebugString() string { return mirror.DebugString(*m.v) }")
}

func TestGenerateTraitsUnregistered(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "")))

	assert.Contains(t, src, "func (m mirrorPoint) ReflectEqual(other mirror.Reflected) (bool, bool) { return false, false }")
	assert.Contains(t, src, "func (m mirrorPoint) ReflectHash() (uint64, bool) { return 0, false }")
	// Debug stays available even without a registration.
	assert.Contains(t, src, "mirror.DebugString(*m.v)")
}

func TestGenerateCustomTraitFunctions(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "Hash(hashPoint), PartialEq(eqPoint), Debug(debugPoint)")))

	assert.Contains(t, src, "return hashPoint(*m.v), true")
	assert.Contains(t, src, "return eqPoint(*m.v, other), true")
	assert.Contains(t, src, "func (m mirrorPoint) DebugString() string { return debugPoint(*m.v) }")
	assert.NotContains(t, src, "mirror.Hash(m.TypePath()")
}

func TestGenerateFieldDefaults(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Config",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "Host", Index: 0, TypeExpr: "string"},
			{Name: "Port", Index: 1, TypeExpr: "int", Default: true},
			{Name: "ID", Index: 2, TypeExpr: "string", Default: true, DefaultFn: "newID"},
			{Name: "conn", Index: 3, TypeExpr: "any", Ignore: true, Default: true, DefaultFn: "dial"},
		},
	}
	tm.Ignored.Insert(3)

	src := render(t, geoPackage(tm))

	// Required field: absent means failure.
	assert.Contains(t, src, `if f, ok := s.Field("Host"); ok {
		if out.Host, ok = mirror.FromReflected[string](f); !ok {
			return Config{}, false
		}
	} else {
		return Config{}, false
	}`)

	// Intrinsic default: absence falls back to the zero value, a present but
	// unconvertible field still fails.
	assert.Contains(t, src, `if f, ok := s.Field("Port"); ok {
		if out.Port, ok = mirror.FromReflected[int](f); !ok {
			return Config{}, false
		}
	}`)
	assert.NotContains(t, src, `} else {
		out.Port`)

	// Producer default.
	assert.Contains(t, src, "out.ID = newID()")

	// Ignored fields never read the source but still run their producer.
	assert.Contains(t, src, "out.conn = dial()")
	assert.NotContains(t, src, `s.Field("conn")`)
}

func TestGenerateTupleStruct(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Pair",
		Kind:  annotation.KindTupleStruct,
		Prov:  localProv(annotation.KindTupleStruct),
		Attrs: parseAttrs(t, "PartialEq", localProv(annotation.KindTupleStruct)),
		Fields: []analyze.FieldModel{
			{Name: "F0", Index: 0, TypeExpr: "int"},
			{Name: "F1", Index: 1, TypeExpr: "string"},
		},
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, "mirror.TupleStructRef(m)")
	assert.Contains(t, src, "mirror.NewTupleStructTypeInfo(")
	assert.Contains(t, src, "mirror.UnnamedField{Type: reflect.TypeFor[int](), Index: 0},")
	assert.Contains(t, src, `case 0:
		return mirror.FieldValue(&m.v.F0), true`)
	assert.Contains(t, src, "func (m mirrorPair) SetField(index int, value mirror.Reflected) bool {")
	assert.Contains(t, src, "mirror.TupleStructsEqual(m, o)")
	assert.Contains(t, src, "d := mirror.NewDynamicTupleStruct()")
	assert.Contains(t, src, "s, ok := v.Ref().AsTupleStruct()")
	assert.Contains(t, src, "s.Field(0)")
}

func TestGenerateUnitStruct(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Origin",
		Kind:  annotation.KindUnitStruct,
		Prov:  localProv(annotation.KindUnitStruct),
		Attrs: parseAttrs(t, "PartialEq", localProv(annotation.KindUnitStruct)),
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, "func (m mirrorOrigin) NumFields() int { return 0 }")
	assert.Contains(t, src, "func (m mirrorOrigin) Field(name string) (mirror.Reflected, bool) { return nil, false }")
	assert.Contains(t, src, "func (m mirrorOrigin) SetField(name string, value mirror.Reflected) bool { return false }")
	assert.Contains(t, src, "mirror.StructRef(m)")

	// Reconstruction keeps the shape check without binding a field view.
	assert.Contains(t, src, "func OriginFromReflected(v mirror.Reflected) (Origin, bool) {")
	assert.Contains(t, src, "_, ok := v.Ref().AsStruct()")
	assert.NotContains(t, src, "s, ok :=")
}

func TestGenerateAllFieldsIgnored(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Handle",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "fd", Index: 0, TypeExpr: "int", Ignore: true},
			{Name: "conn", Index: 1, TypeExpr: "any", Ignore: true, DefaultFn: "dial"},
		},
	}
	tm.Ignored.Insert(0)
	tm.Ignored.Insert(1)

	src := render(t, geoPackage(tm))

	// No active field reads the view, yet the producer still runs.
	assert.Contains(t, src, "_, ok := v.Ref().AsStruct()")
	assert.NotContains(t, src, "s, ok :=")
	assert.Contains(t, src, "out.conn = dial()")
	assert.Contains(t, src, "reg.Insert(mirror.NewSerializationData(0, 1))")
}

func TestGenerateValueType(t *testing.T) {
	t.Parallel()

	prov := annotation.Provenance{
		Derive: annotation.DeriveReflect,
		Source: annotation.SourceLocal,
		Kind:   annotation.KindValue,
	}

	tm := &analyze.TypeModel{
		Name:  "Meters",
		Kind:  annotation.KindValue,
		Prov:  prov,
		Attrs: parseAttrs(t, "Hash, PartialEq", prov),
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, "mirror.NewValueTypeInfo(")
	assert.Contains(t, src, "mirror.ValueRef(m)")
	assert.Contains(t, src, "func (m mirrorMeters) CloneDynamic() mirror.Reflected { return mirror.ValueOf(*m.v) }")
	assert.Contains(t, src, "out, ok := v.Unwrap().(Meters)")

	// Opaque values compare by downcast only, no structural fallback.
	assert.Contains(t, src, "return reflect.DeepEqual(*m.v, other.Unwrap()), true")
	assert.NotContains(t, src, "ValuesEqual")
}

func enumModel(t *testing.T, raw string) *analyze.TypeModel {
	t.Helper()

	prov := localProv(annotation.KindEnum)

	return &analyze.TypeModel{
		Name:  "Shape",
		Kind:  annotation.KindEnum,
		Prov:  prov,
		Attrs: parseAttrs(t, raw, prov),
		Variants: []analyze.VariantModel{
			{
				Name:  "Circle",
				Style: analyze.VariantStyleNamed,
				Fields: []analyze.FieldModel{
					{Name: "Radius", Index: 0, TypeExpr: "float64"},
				},
			},
			{
				Name:  "Rect",
				Style: analyze.VariantStyleUnnamed,
				Fields: []analyze.FieldModel{
					{Name: "F0", Index: 0, TypeExpr: "float64"},
					{Name: "F1", Index: 1, TypeExpr: "float64"},
				},
			},
			{Name: "Dot", Style: analyze.VariantStyleUnit},
			{
				Name:  "Blob",
				Style: analyze.VariantStyleNamed,
				Fields: []analyze.FieldModel{
					{Name: "Data", Index: 0, TypeExpr: "[]byte"},
				},
				PtrOnly: true,
			},
		},
	}
}

func TestGenerateEnum(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(enumModel(t, "PartialEq")))

	assert.Contains(t, src, "mirror.EnumRef(m)")
	assert.Contains(t, src, "mirror.NewEnumTypeInfo(")
	assert.Contains(t, src, `mirror.VariantInfo{Name: "Dot", Kind: mirror.VariantUnit},`)
	assert.Contains(t, src, `mirror.VariantInfo{Name: "Circle", Kind: mirror.VariantNamed, Named: []mirror.NamedField{`)
	assert.Contains(t, src, `mirror.VariantInfo{Name: "Rect", Kind: mirror.VariantUnnamed, Unnamed: []mirror.UnnamedField{`)

	// Variant dispatch runs over the closed implementation set; pointer-only
	// implementors match under the pointer type.
	assert.Contains(t, src, `case Circle:
		return "Circle"`)
	assert.Contains(t, src, `case *Blob:
		return "Blob"`)
	assert.Contains(t, src, "func (m mirrorShape) VariantKind() mirror.VariantKind {")

	assert.Contains(t, src, "mirror.EnumsEqual(m, o)")
}

func TestGenerateEnumFieldAccess(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(enumModel(t, "")))

	// Named variants resolve by field name, every variant resolves by index.
	assert.Contains(t, src, `case "Radius":
			return mirror.FieldValue(&x.Radius), true`)
	assert.Contains(t, src, "func (m mirrorShape) FieldAt(index int) (mirror.Reflected, bool) {")
	assert.Contains(t, src, "mirror.FieldValue(&x.F1), true")

	// Unnamed variant fields carry empty labels through the iterator.
	assert.Contains(t, src, `return ""`)
	assert.Contains(t, src, "d := mirror.NewDynamicEnum()")
	assert.Contains(t, src, `d.SetVariant("Rect", mirror.VariantUnnamed)`)
	assert.Contains(t, src, `d.InsertField("", mirror.FieldValue(&x.F0))`)
	assert.Contains(t, src, `d.InsertField("Radius", mirror.FieldValue(&x.Radius))`)
}

func TestGenerateEnumFromReflected(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(enumModel(t, "")))

	assert.Contains(t, src, "en, ok := v.Ref().AsEnum()")
	assert.Contains(t, src, "switch en.VariantName() {")
	assert.Contains(t, src, `en.Field("Radius")`)
	assert.Contains(t, src, "en.FieldAt(1)")

	// Pointer-only variants reconstruct behind the pointer.
	assert.Contains(t, src, `case "Blob":
		var out Blob`)
	assert.Contains(t, src, "return &out, true")

	// Unknown variant names are a programming error.
	assert.Contains(t, src, "panic(fmt.Sprintf(\"variant with name `%s` does not exist on enum `%s`\", en.VariantName(), mirrorShapePath))")
}

func TestGenerateGenericType(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Grid",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "PartialEq", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "Cells", Index: 0, TypeExpr: "[]T"},
		},
		TypeParams: []analyze.TypeParam{
			{Name: "T", Constraint: "comparable"},
		},
	}

	src := render(t, geoPackage(tm))

	// Generic types register per instantiation instead of at init.
	assert.NotContains(t, src, "func init()")
	assert.Contains(t, src, "func RegisterGrid[T comparable]() {")
	assert.Contains(t, src, "mirror.Register(mirror.Registration[Grid[T]]{")

	// The path embeds the argument paths; both the path string and the info
	// are cached per instantiation.
	assert.Contains(t, src, "func mirrorGridPath[T comparable]() string {")
	assert.Contains(t, src, "var mirrorGridPaths mirror.GenericInfoCell[string]")
	assert.Contains(t, src, "mirrorGridPaths.GetOrInsert(reflect.TypeFor[Grid[T]](), func() string {")
	assert.Contains(t, src, `return "example.com/geo.Grid[" + mirror.PathOf[T]() + "]"`)
	assert.Contains(t, src, "var mirrorGridInfo mirror.GenericInfoCell[*mirror.TypeInfo]")
	assert.Contains(t, src, "mirrorGridInfo.GetOrInsert(reflect.TypeFor[Grid[T]](), func() *mirror.TypeInfo {")
	assert.Contains(t, src, "func (m mirrorGrid[T]) TypePath() string { return mirrorGridPath[T]() }")
}

func TestGenerateCustomWherePredicate(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "Cell",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "where T: mirror.Reflected", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "Value", Index: 0, TypeExpr: "T"},
		},
		TypeParams: []analyze.TypeParam{
			{Name: "T", Constraint: "any"},
		},
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, "func RegisterCell[T mirror.Reflected]() {")
	assert.NotContains(t, src, "[T any]")
}

func TestGenerateContainerDefaultOverlay(t *testing.T) {
	t.Parallel()

	prov := annotation.Provenance{
		Derive: annotation.DeriveReflect,
		Source: annotation.SourceExtern,
		Kind:   annotation.KindStruct,
	}

	tm := &analyze.TypeModel{
		Name:    "Options",
		Kind:    annotation.KindStruct,
		Prov:    prov,
		Attrs:   parseAttrs(t, "container_default = newOptions", prov),
		AliasOf: "ext.Options",
		Fields: []analyze.FieldModel{
			{Name: "Level", Index: 0, TypeExpr: "int"},
		},
	}

	src := render(t, geoPackage(tm))

	// Overlay reconstruction starts from the producer and never fails.
	assert.Contains(t, src, "out := newOptions()")
	assert.Contains(t, src, "return out, true")
	assert.NotContains(t, src, "Options{}, false")
}

func TestGenerateContainerDefaultOverlayAllIgnored(t *testing.T) {
	t.Parallel()

	prov := annotation.Provenance{
		Derive: annotation.DeriveReflect,
		Source: annotation.SourceExtern,
		Kind:   annotation.KindStruct,
	}

	tm := &analyze.TypeModel{
		Name:    "Options",
		Kind:    annotation.KindStruct,
		Prov:    prov,
		Attrs:   parseAttrs(t, "container_default = newOptions", prov),
		AliasOf: "ext.Options",
		Fields: []analyze.FieldModel{
			{Name: "state", Index: 0, TypeExpr: "int", Ignore: true},
		},
	}
	tm.Ignored.Insert(0)

	src := render(t, geoPackage(tm))

	// Nothing overlays, so the view stays unbound.
	assert.Contains(t, src, "out := newOptions()")
	assert.Contains(t, src, "_, ok := v.Ref().AsStruct()")
	assert.NotContains(t, src, "s, ok :=")
}

func TestGenerateMirrorDefaultMarkerOverlay(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "Default")))

	// The Default marker switches the local type to zero-then-overlay.
	assert.Contains(t, src, "var out Point")
	assert.NotContains(t, src, "return Point{}, false")
	assert.Contains(t, src, `reg.Insert(mirror.TypeDataFor[Point]("MirrorDefault"))`)
}

func TestGenerateCustomTypePath(t *testing.T) {
	t.Parallel()

	tm := pointModel(t, "Hash")
	tm.CustomPath = "legacy/geometry.Pt"

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, `const mirrorPointPath = "legacy/geometry.Pt"`)
	assert.Contains(t, src, `Short: "Pt", Ident: "Pt", Pkg: "legacy/geometry"`)
}

func TestGenerateTypePathOptOut(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "type_path = false")))

	// No stable const; identity falls back to the runtime-derived path.
	assert.NotContains(t, src, "const mirrorPointPath")
	assert.Contains(t, src, "func (m mirrorPoint) TypePath() string { return mirror.PathOf[Point]() }")
}

func TestGenerateFromReflectOptOut(t *testing.T) {
	t.Parallel()

	src := render(t, geoPackage(pointModel(t, "from_reflect = false")))

	assert.NotContains(t, src, "PointFromReflected")
	assert.NotContains(t, src, "FromReflected:")
	assert.Contains(t, src, "func init() {")
}

func TestGenerateTypePathOnlyDerive(t *testing.T) {
	t.Parallel()

	prov := annotation.Provenance{
		Derive: annotation.DeriveTypePath,
		Source: annotation.SourceLocal,
		Kind:   annotation.KindStruct,
	}

	tm := &analyze.TypeModel{
		Name:  "Tag",
		Kind:  annotation.KindStruct,
		Prov:  prov,
		Attrs: parseAttrs(t, "", prov),
		Fields: []analyze.FieldModel{
			{Name: "Label", Index: 0, TypeExpr: "string"},
		},
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, `const mirrorTagPath = "example.com/geo.Tag"`)
	assert.NotContains(t, src, "type mirrorTag struct")
	assert.NotContains(t, src, "func init()")
}

func TestGenerateForeignFieldImports(t *testing.T) {
	t.Parallel()

	pkg := geoPackage(&analyze.TypeModel{
		Name:  "Span",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "PartialEq", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "Start", Index: 0, TypeExpr: "ext.Instant"},
			{Name: "Width", Index: 1, TypeExpr: "float64"},
		},
	})
	pkg.Imports["example.com/ext"] = "ext"

	src := render(t, pkg)

	assert.Contains(t, src, `"example.com/ext"`)
	assert.Contains(t, src, "mirror.FromReflected[ext.Instant]")
}

func TestGenerateUnexportedType(t *testing.T) {
	t.Parallel()

	tm := &analyze.TypeModel{
		Name:  "span",
		Kind:  annotation.KindStruct,
		Prov:  localProv(annotation.KindStruct),
		Attrs: parseAttrs(t, "", localProv(annotation.KindStruct)),
		Fields: []analyze.FieldModel{
			{Name: "n", Index: 0, TypeExpr: "int"},
		},
	}

	src := render(t, geoPackage(tm))

	assert.Contains(t, src, "type mirrorSpan struct")
	assert.Contains(t, src, "func spanFromReflected(")
	assert.Contains(t, src, "func buildSpanRegistration(")
}

func TestGenerateEmptyPackage(t *testing.T) {
	t.Parallel()

	file, err := NewGenerator(Config{}).Generate(geoPackage())
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGenerateConfigDefaults(t *testing.T) {
	t.Parallel()

	g := NewGenerator(Config{FileSuffix: "_gen.go"})

	file, err := g.Generate(geoPackage(pointModel(t, "Hash")))
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "geo_gen.go", file.Filename)
	assert.Contains(t, string(file.Content), `"mirror-generator/mirror"`)
}
