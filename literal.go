package pixfmt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vframe/pixfmt/pkg/layout"
)

// Canonical returns the parenthesized literal form of the format. The
// result re-parses through Parse, which makes it the ultimate textual
// identity for formats with no friendlier name.
func (f PixelFormat) Canonical() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range f.planes {
		if i > 0 {
			b.WriteString(", ")
		}
		p.appendCanonical(&b)
	}
	b.WriteByte(')')
	return b.String()
}

func (p PlaneFormat) appendCanonical(b *strings.Builder) {
	fmt.Fprintf(b, "(%d, ", p.span)
	if tok, ok := p.channels.Token(); ok {
		fmt.Fprintf(b, "%q", string(tok))
	} else {
		appendChannelMap(b, p.channels)
	}
	fmt.Fprintf(b, ", (%s, %s))", p.sub.X, p.sub.Y)
}

func appendChannelMap(b *strings.Builder, m layout.ChannelMap) {
	// Channel map equality ignores entry order, so the literal emits
	// channels ordered by first fragment offset, then name.
	sorted := append(layout.ChannelMap(nil), m...)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi, oj := firstOffset(sorted[i]), firstOffset(sorted[j])
		if oi != oj {
			return oi < oj
		}
		return sorted[i].Name < sorted[j].Name
	})

	b.WriteByte('(')
	for i, c := range sorted {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "(%q, (", c.Name)
		for j, fr := range c.Fragments {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "(%d, %d)", fr.Offset, fr.Width)
		}
		b.WriteString("))")
	}
	b.WriteByte(')')
}

func firstOffset(c layout.Channel) int {
	if len(c.Fragments) == 0 {
		return 0
	}
	return c.Fragments[0].Offset
}

// The literal parser is a small recursive-descent reader restricted to
// signed integers, rationals ("4/3"), double-quoted strings and nested
// parenthesized tuples. It never evaluates anything else.

type litValue struct {
	num   Ratio
	str   string
	items []litValue
	kind  litKind
}

type litKind int

const (
	litNum litKind = iota
	litStr
	litTuple
)

type litParser struct {
	s   string
	pos int
}

func parseLiteral(s string) ([]PlaneDesc, error) {
	p := &litParser{s: s}
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("%w: trailing input at %d in %q", ErrMalformedPlaneFormat, p.pos, s)
	}
	return descFromLiteral(v)
}

func (p *litParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t') {
		p.pos++
	}
}

func (p *litParser) fail(what string) error {
	return fmt.Errorf("%w: %s at %d in %q", ErrMalformedPlaneFormat, what, p.pos, p.s)
}

func (p *litParser) value() (litValue, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return litValue{}, p.fail("unexpected end of literal")
	}
	switch c := p.s[p.pos]; {
	case c == '(':
		return p.tuple()
	case c == '"':
		return p.str()
	case c == '-' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return litValue{}, p.fail("unexpected character")
	}
}

func (p *litParser) tuple() (litValue, error) {
	p.pos++ // consume '('
	v := litValue{kind: litTuple}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ')' {
		p.pos++
		return v, nil
	}
	for {
		item, err := p.value()
		if err != nil {
			return litValue{}, err
		}
		v.items = append(v.items, item)
		p.skipSpace()
		if p.pos >= len(p.s) {
			return litValue{}, p.fail("unterminated tuple")
		}
		switch p.s[p.pos] {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return v, nil
		default:
			return litValue{}, p.fail("expected ',' or ')'")
		}
	}
}

func (p *litParser) str() (litValue, error) {
	p.pos++ // consume opening quote
	start := p.pos
	for p.pos < len(p.s) && p.s[p.pos] != '"' {
		p.pos++
	}
	if p.pos >= len(p.s) {
		return litValue{}, p.fail("unterminated string")
	}
	v := litValue{kind: litStr, str: p.s[start:p.pos]}
	p.pos++ // consume closing quote
	return v, nil
}

func (p *litParser) number() (litValue, error) {
	num, err := p.int()
	if err != nil {
		return litValue{}, err
	}
	if p.pos < len(p.s) && p.s[p.pos] == '/' {
		p.pos++
		den, err := p.int()
		if err != nil {
			return litValue{}, err
		}
		if den == 0 {
			return litValue{}, p.fail("zero denominator")
		}
		return litValue{kind: litNum, num: NewRatio(num, den)}, nil
	}
	return litValue{kind: litNum, num: Whole(num)}, nil
}

func (p *litParser) int() (int, error) {
	start := p.pos
	if p.pos < len(p.s) && p.s[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.s) && p.s[p.pos] >= '0' && p.s[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.s[start:p.pos])
	if err != nil {
		return 0, p.fail("expected integer")
	}
	return n, nil
}

// descFromLiteral interprets a parsed value tree as plane descriptions:
// the whole tree as a single plane first, elementwise otherwise.
func descFromLiteral(v litValue) ([]PlaneDesc, error) {
	if v.kind != litTuple {
		return nil, fmt.Errorf("%w: top-level literal must be a tuple", ErrMalformedPlaneFormat)
	}
	if d, ok := planeFromLiteral(v); ok {
		return []PlaneDesc{d}, nil
	}
	descs := make([]PlaneDesc, 0, len(v.items))
	for _, item := range v.items {
		d, ok := planeFromLiteral(item)
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized plane literal", ErrMalformedPlaneFormat)
		}
		descs = append(descs, d)
	}
	return descs, nil
}

func planeFromLiteral(v litValue) (PlaneDesc, bool) {
	switch v.kind {
	case litStr:
		return PlaneDesc{Layout: layout.Token(v.str)}, true
	case litTuple:
		switch len(v.items) {
		case 3:
			span, ok := intFromLiteral(v.items[0])
			if !ok {
				return PlaneDesc{}, false
			}
			l, ok := layoutFromLiteral(v.items[1])
			if !ok {
				return PlaneDesc{}, false
			}
			sub, ok := subFromLiteral(v.items[2])
			if !ok {
				return PlaneDesc{}, false
			}
			return PlaneDesc{Span: span, Layout: l, Sub: sub}, true
		case 2:
			if span, ok := intFromLiteral(v.items[0]); ok {
				l, ok := layoutFromLiteral(v.items[1])
				if !ok {
					return PlaneDesc{}, false
				}
				return PlaneDesc{Span: span, Layout: l}, true
			}
			l, ok := layoutFromLiteral(v.items[0])
			if !ok {
				return PlaneDesc{}, false
			}
			sub, ok := subFromLiteral(v.items[1])
			if !ok {
				return PlaneDesc{}, false
			}
			return PlaneDesc{Layout: l, Sub: sub}, true
		}
	}
	return PlaneDesc{}, false
}

func intFromLiteral(v litValue) (int, bool) {
	if v.kind != litNum || !v.num.IsInt() {
		return 0, false
	}
	return v.num.Num, true
}

func layoutFromLiteral(v litValue) (layout.Layout, bool) {
	switch v.kind {
	case litStr:
		return layout.Token(v.str), true
	case litTuple:
		m := make(layout.ChannelMap, 0, len(v.items))
		for _, item := range v.items {
			c, ok := channelFromLiteral(item)
			if !ok {
				return nil, false
			}
			m = append(m, c)
		}
		if len(m) == 0 {
			return nil, false
		}
		return m, true
	}
	return nil, false
}

func channelFromLiteral(v litValue) (layout.Channel, bool) {
	if v.kind != litTuple || len(v.items) != 2 {
		return layout.Channel{}, false
	}
	name := v.items[0]
	frags := v.items[1]
	if name.kind != litStr || !isChannelName(name.str) || frags.kind != litTuple || len(frags.items) == 0 {
		return layout.Channel{}, false
	}
	c := layout.Channel{Name: name.str}
	for _, fv := range frags.items {
		if fv.kind != litTuple || len(fv.items) != 2 {
			return layout.Channel{}, false
		}
		off, ok1 := intFromLiteral(fv.items[0])
		width, ok2 := intFromLiteral(fv.items[1])
		if !ok1 || !ok2 || off < 0 || width <= 0 {
			return layout.Channel{}, false
		}
		c.Fragments = append(c.Fragments, layout.Fragment{Offset: off, Width: width})
	}
	return c, true
}

// Channel names in a literal follow the token grammars: one ASCII letter.
func isChannelName(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func subFromLiteral(v litValue) (Subsampling, bool) {
	if v.kind != litTuple || len(v.items) != 2 {
		return Subsampling{}, false
	}
	if v.items[0].kind != litNum || v.items[1].kind != litNum {
		return Subsampling{}, false
	}
	return Subsampling{X: v.items[0].num, Y: v.items[1].num}, true
}
