package gen

import (
	"fmt"

	"mirror-generator/internal/analyze"
)

// emitValue renders the adapter for opaque value shapes: the core contract
// only, with no structural surface.
func (e *emitter) emitValue(tm *analyze.TypeModel) {
	m := e.mirror()
	e.need("reflect")

	e.emitPathDecls(tm)
	e.emitAdapter(tm)
	e.emitTypePathMethod(tm)

	e.emitTypeInfo(tm, fmt.Sprintf("%s.NewValueTypeInfo(\n\t\t%s,\n\t\treflect.TypeFor[%s](),\n\t)",
		m, e.typePathLiteral(tm), e.typeExpr(tm)))

	e.emitCoreMethods(tm, "ValueRef")
	e.emitTraitMethods(tm, "", "")

	e.addf(`%s CloneDynamic() %s.Reflected { return %s.ValueOf(*m.v) }`, e.recv(tm), m, m)
}
