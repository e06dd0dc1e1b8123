package annotation

import (
	"go/token"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokPath // dotted identifier, e.g. `mypkg.CustomDebug`
	tokEq
	tokLParen
	tokRParen
	tokComma
	tokColon
)

type lexToken struct {
	kind tokenKind
	text string
	off  int
}

// parser consumes one comma-separated attribute list and populates a
// ContainerAttributes. It keeps the raw input around because a where clause
// swallows the remainder of the list verbatim.
type parser struct {
	raw   string
	base  token.Position
	prov  Provenance
	toks  []lexToken
	index int
	attrs *ContainerAttributes
}

// ParseList parses one comma-separated attribute list (the text following
// `mirror:reflect` or `mirror:value`) into a fresh ContainerAttributes.
//
// base is the source position of the first byte of raw; every reported error
// is pinned to base plus the offending token's offset. On error the partially
// populated set is discarded by the caller.
func ParseList(raw string, base token.Position, prov Provenance) (*ContainerAttributes, *Error) {
	p := &parser{
		raw:   raw,
		base:  base,
		prov:  prov,
		attrs: &ContainerAttributes{},
	}

	toks, err := lex(raw, base)
	if err != nil {
		return nil, err
	}

	p.toks = toks

	for p.peek().kind != tokEOF {
		if err := p.parseAttribute(); err != nil {
			return nil, err
		}

		switch p.peek().kind {
		case tokComma:
			p.next()
		case tokEOF:
		default:
			return nil, Errorf(p.posOf(p.peek()), "expected `,` or end of attribute list, found `%s`", p.peek().text)
		}
	}

	return p.attrs, nil
}

func lex(raw string, base token.Position) ([]lexToken, *Error) {
	var toks []lexToken

	i := 0
	for i < len(raw) {
		c := rune(raw[i])

		switch {
		case unicode.IsSpace(c):
			i++

		case c == '=':
			toks = append(toks, lexToken{tokEq, "=", i})
			i++

		case c == '(':
			toks = append(toks, lexToken{tokLParen, "(", i})
			i++

		case c == ')':
			toks = append(toks, lexToken{tokRParen, ")", i})
			i++

		case c == ',':
			toks = append(toks, lexToken{tokComma, ",", i})
			i++

		// Colons only occur inside where-clause predicates, which are
		// consumed verbatim from the raw input.
		case c == ':':
			toks = append(toks, lexToken{tokColon, ":", i})
			i++

		case isIdentStart(c):
			start := i
			for i < len(raw) && isIdentPart(rune(raw[i])) {
				i++
			}

			text := raw[start:i]
			kind := tokIdent
			if strings.Contains(text, ".") {
				kind = tokPath
			}

			toks = append(toks, lexToken{kind, text, start})

		default:
			return nil, Errorf(offsetPos(base, i), "unexpected character %q in attribute list", c)
		}
	}

	toks = append(toks, lexToken{tokEOF, "", len(raw)})

	return toks, nil
}

func isIdentStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '.'
}

func offsetPos(base token.Position, off int) token.Position {
	pos := base
	pos.Column += off
	pos.Offset += off

	return pos
}

func (p *parser) peek() lexToken {
	return p.toks[p.index]
}

func (p *parser) next() lexToken {
	t := p.toks[p.index]
	if t.kind != tokEOF {
		p.index++
	}

	return t
}

func (p *parser) posOf(t lexToken) token.Position {
	return offsetPos(p.base, t.off)
}

// parseAttribute parses a single container attribute. The recognized forms
// are tried in a fixed order: where clause, from_reflect toggle, type_path
// toggle, no_field_bounds marker, the three special traits, container_default,
// then any bare identifier as a marker registration.
func (p *parser) parseAttribute() *Error {
	head := p.peek()
	if head.kind != tokIdent {
		return Errorf(p.posOf(head), "expected identifier, found `%s`", head.text)
	}

	switch head.text {
	case WhereAttr:
		return p.parseCustomWhere()
	case FromReflectAttr:
		return p.parseFromReflect()
	case TypePathAttr:
		return p.parseTypePath()
	case NoFieldBoundsAttr:
		p.next()
		p.attrs.noFieldBounds = true

		return nil
	case DebugAttr:
		return p.parseSpecialTrait(&p.attrs.debug)
	case PartialEqAttr:
		return p.parseSpecialTrait(&p.attrs.partialEq)
	case HashAttr:
		return p.parseSpecialTrait(&p.attrs.hash)
	case ContainerDefaultAttr:
		return p.parseContainerDefault()
	default:
		return p.parseIdent()
	}
}

// parseIdent parses a bare identifier for marker registration.
//
// Example: `//mirror:reflect MyTrait` registers MirrorMyTrait.
func (p *parser) parseIdent() *Error {
	ident := p.next()

	if p.peek().kind == tokLParen {
		return Errorf(p.posOf(ident),
			"only [%q, %q, %q] may specify custom functions",
			DebugAttr, PartialEqAttr, HashAttr)
	}

	// The position stays on the user's identifier so any error points there
	// instead of at the prefixed registration name.
	reflectIdent := Ident{
		Name: MirrorIdentPrefix + ident.text,
		Pos:  p.posOf(ident),
	}

	return addUniqueIdent(&p.attrs.idents, reflectIdent)
}

// parseSpecialTrait parses one of the Debug/PartialEq/Hash registrations.
//
// Examples:
//   - `//mirror:reflect Debug`
//   - `//mirror:reflect Debug(customDebugFn)`
func (p *parser) parseSpecialTrait(slot *TraitImpl) *Error {
	ident := p.next()

	if p.peek().kind == tokLParen {
		p.next()

		fn := p.next()
		if fn.kind != tokIdent && fn.kind != tokPath {
			return Errorf(p.posOf(fn), "expected function path, found `%s`", fn.text)
		}

		if closing := p.next(); closing.kind != tokRParen {
			return Errorf(p.posOf(closing), "expected `)`, found `%s`", closing.text)
		}

		return slot.Merge(TraitImpl{Kind: Custom, Func: fn.text, Pos: p.posOf(ident)})
	}

	*slot = TraitImpl{Kind: Implemented, Pos: p.posOf(ident)}

	return nil
}

// parseCustomWhere consumes the remainder of the attribute list as
// `Param: Constraint` predicates.
//
// Example: `//mirror:reflect where T: mirror.Reflectable`
func (p *parser) parseCustomWhere() *Error {
	kw := p.next()

	rest := p.raw[kw.off+len(kw.text):]
	if strings.TrimSpace(rest) == "" {
		return Errorf(p.posOf(kw), "`%s` requires at least one predicate", WhereAttr)
	}

	for _, pred := range strings.Split(rest, ",") {
		pred = strings.TrimSpace(pred)
		if pred == "" {
			continue
		}

		if !strings.Contains(pred, ":") {
			return Errorf(p.posOf(kw), "malformed predicate %q: expected `Param: Constraint`", pred)
		}

		p.attrs.customWhere = append(p.attrs.customWhere, pred)
	}

	// The where clause swallows everything to the end of the list.
	p.index = len(p.toks) - 1

	return nil
}

// parseFromReflect parses the `from_reflect = <bool>` toggle.
func (p *parser) parseFromReflect() *Error {
	kw := p.next()

	value, err := p.parseBoolValue(kw)
	if err != nil {
		return err
	}

	// A direct FromReflect derive overrides the toggle: the user is opting
	// out of the bundled implementation and deriving reconstruction alone.
	if p.prov.Derive == DeriveFromReflect {
		value.Value = true
	}

	p.attrs.fromReflect.autoDerive = value

	return nil
}

// parseTypePath parses the `type_path = <bool>` toggle.
func (p *parser) parseTypePath() *Error {
	kw := p.next()

	value, err := p.parseBoolValue(kw)
	if err != nil {
		return err
	}

	if p.prov.Derive == DeriveTypePath {
		value.Value = true
	}

	p.attrs.typePath.autoDerive = value

	return nil
}

func (p *parser) parseBoolValue(kw lexToken) (*BoolValue, *Error) {
	if eq := p.next(); eq.kind != tokEq {
		return nil, Errorf(p.posOf(eq), "expected `=` after `%s`", kw.text)
	}

	lit := p.next()
	switch lit.text {
	case "true":
		return &BoolValue{Value: true, Pos: p.posOf(lit)}, nil
	case "false":
		return &BoolValue{Value: false, Pos: p.posOf(lit)}, nil
	default:
		return nil, Errorf(p.posOf(lit), "expected a boolean value")
	}
}

// parseContainerDefault parses the `container_default` directive.
//
// Examples:
//   - `//mirror:reflect container_default`
//   - `//mirror:reflect container_default = makeDefaultThing`
func (p *parser) parseContainerDefault() *Error {
	kw := p.peek()

	if p.prov.Source == SourceLocal {
		return Errorf(p.posOf(kw),
			"`%s` is only applicable on non-local types declared through an alias", ContainerDefaultAttr)
	}

	if p.prov.Kind != KindStruct && p.prov.Kind != KindTupleStruct {
		return Errorf(p.posOf(kw),
			"`%s` is only applicable on structs", ContainerDefaultAttr)
	}

	p.next()

	fn := FuncPath{Pos: p.posOf(kw)}

	if p.peek().kind == tokEq {
		p.next()

		lit := p.next()
		if lit.kind != tokIdent && lit.kind != tokPath {
			return Errorf(p.posOf(lit), "expected function path, found `%s`", lit.text)
		}

		fn.Path = lit.text
	}

	return p.attrs.fromReflect.insertContainerDefault(fn)
}
