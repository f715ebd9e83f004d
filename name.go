package pixfmt

import (
	"fmt"
	"strings"

	"github.com/vframe/pixfmt/pkg/layout"
)

// Name returns the canonical name of the format. Derivation order: the
// registered name of a structurally equal entry, a synthesized planar YUV
// name, the single-plane name, the per-plane concatenation with a "p"
// suffix, and finally the canonical literal form, which always exists.
// The result always re-parses to an equal format.
func (f PixelFormat) Name() string {
	if len(f.planes) == 0 {
		return f.Canonical()
	}
	if name, ok := reverseLookup(f); ok {
		return name
	}
	if name, ok := f.yuvName(); ok {
		return name
	}
	if !f.IsPlanar() {
		if name, ok := f.planes[0].name(); ok {
			return name
		}
		return f.Canonical()
	}
	var b strings.Builder
	for _, p := range f.planes {
		name, ok := p.name()
		if !ok {
			return f.Canonical()
		}
		b.WriteString(name)
	}
	b.WriteByte('p')
	return b.String()
}

// yuvChroma reports the shared chroma subsampling of an 8-bit 3-plane
// y/u/v format: one plane per letter, span 1, a single zero-offset 8-bit
// fragment each, luma at 1:1 and both chroma planes subsampled alike.
func (f PixelFormat) yuvChroma() (Subsampling, bool) {
	if len(f.planes) != 3 {
		return Subsampling{}, false
	}
	subs := make(map[string]Subsampling, 3)
	for _, p := range f.planes {
		if p.span != 1 || len(p.channels) != 1 {
			return Subsampling{}, false
		}
		c := p.channels[0]
		if len(c.Fragments) != 1 || c.Fragments[0] != (layout.Fragment{Offset: 0, Width: 8}) {
			return Subsampling{}, false
		}
		if c.Name != "y" && c.Name != "u" && c.Name != "v" {
			return Subsampling{}, false
		}
		if _, dup := subs[c.Name]; dup {
			return Subsampling{}, false
		}
		subs[c.Name] = p.sub
	}
	if len(subs) != 3 || subs["y"] != Sub(1, 1) || subs["u"] != subs["v"] {
		return Subsampling{}, false
	}
	return subs["u"], true
}

// yuvName synthesizes a standard planar YUV name from the chroma
// subsampling, normalizing the ratio to a luma reference of 4.
func (f PixelFormat) yuvName() (string, bool) {
	chroma, ok := f.yuvChroma()
	if !ok {
		return "", false
	}

	luma := chroma.X
	row1 := Whole(1)
	var row2 Ratio
	switch chroma.Y {
	case Whole(1):
		row2 = Whole(1)
	case Whole(2):
		row2 = Whole(0)
	default:
		return "", false
	}

	max := luma
	if max.Cmp(row1) < 0 {
		max = row1
	}
	if max.Cmp(Whole(4)) < 0 {
		scale := Whole(4).Div(max)
		luma = luma.Mul(scale)
		row1 = row1.Mul(scale)
		row2 = row2.Mul(scale)
	}
	for _, d := range []Ratio{luma, row1, row2} {
		if !d.IsInt() || d.Num < 0 || d.Num > 9 {
			return "", false
		}
	}
	return fmt.Sprintf("yuv%d%d%dp", luma.Num, row1.Num, row2.Num), true
}
