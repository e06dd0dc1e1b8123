package gen

import (
	"fmt"
	"strconv"
	"strings"

	"mirror-generator/internal/analyze"
	"mirror-generator/internal/annotation"
)

// emitRegistration renders the capability registration for one type. For
// non-generic types it runs at init; generic types get a Register<Type>
// function the consumer calls once per instantiation.
//
// The build order is fixed: pointer conversion first, the serialization
// exclusion record for structs with ignored fields, then one capability per
// marker in registration order.
func (e *emitter) emitRegistration(tm *analyze.TypeModel) {
	m := e.mirror()
	typ := e.useType(e.typeExpr(tm))

	adapt := fmt.Sprintf("func(p *%s) %s.Reflected { return %s%s{v: p} }",
		typ, m, adapterName(tm), paramUse(tm))

	fromLine := ""
	if tm.Attrs.FromReflect().ShouldAutoDerive() {
		fromLine = fmt.Sprintf("\n\t\tFromReflected: %s%s,", fromFuncName(tm), paramUse(tm))
	}

	buildBody := fmt.Sprintf("reg := %s.NewTypeRegistration(%s%s{v: new(%s)}.TypeInfo())\n",
		m, adapterName(tm), paramUse(tm), typ)

	buildBody += fmt.Sprintf("\treg.Insert(%s.FromPtrFor(%s))\n", m, adapt)

	if structShaped(tm.Kind) && !tm.Ignored.IsEmpty() {
		idx := tm.Ignored.Indices()

		parts := make([]string, 0, len(idx))
		for _, i := range idx {
			parts = append(parts, strconv.Itoa(i))
		}

		buildBody += fmt.Sprintf("\treg.Insert(%s.NewSerializationData(%s))\n",
			m, strings.Join(parts, ", "))
	}

	for _, id := range tm.Attrs.Idents() {
		buildBody += fmt.Sprintf("\treg.Insert(%s.TypeDataFor[%s](%q))\n", m, typ, id.Name)
	}

	buildBody += "\n\treturn reg"

	if tm.IsGeneric() {
		e.addf(`// %s publishes one %s instantiation's reflection entry.
func %s%s() {
	%s.Register(%s.Registration[%s]{
		Adapt:         %s,%s
		Build: func() *%s.TypeRegistration {
			%s
		},
	})
}`, registerFuncName(tm), tm.Name,
			registerFuncName(tm), e.paramDecl(tm),
			m, m, typ, adapt, fromLine, m,
			strings.ReplaceAll(buildBody, "\n\t", "\n\t\t\t"))

		return
	}

	e.addf(`func init() {
	%s.Register(%s.Registration[%s]{
		Adapt:         %s,%s
		Build:         %s,
	})
}`, m, m, typ, adapt, fromLine, buildFuncName(tm))

	e.addf(`func %s() *%s.TypeRegistration {
	%s
}`, buildFuncName(tm), m, buildBody)
}

func structShaped(k annotation.TypeKind) bool {
	switch k {
	case annotation.KindStruct, annotation.KindTupleStruct, annotation.KindUnitStruct:
		return true
	default:
		return false
	}
}
