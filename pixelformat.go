package pixfmt

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vframe/pixfmt/internal/hash"
	"github.com/vframe/pixfmt/pkg/layout"
)

// PixelFormat is an ordered, immutable sequence of plane formats. Two
// independently built formats that normalize to the same plane sequence
// are interchangeable: they compare Equal, share a Hash and may be used as
// lookup keys through Canonical.
//
// The zero value describes no planes and is not a valid format; the
// constructors never return it. Its Name and Canonical are "()".
type PixelFormat struct {
	planes []PlaneFormat
}

// New builds a PixelFormat from one or more plane descriptions.
func New(desc ...PlaneDesc) (PixelFormat, error) {
	if len(desc) == 0 {
		return PixelFormat{}, fmt.Errorf("%w: no planes", ErrMalformedPlaneFormat)
	}
	planes := make([]PlaneFormat, 0, len(desc))
	for _, d := range desc {
		p, err := NewPlane(d)
		if err != nil {
			return PixelFormat{}, err
		}
		planes = append(planes, p)
	}
	return PixelFormat{planes: planes}, nil
}

// PlaneCount returns the number of planes.
func (f PixelFormat) PlaneCount() int { return len(f.planes) }

// IsPlanar reports whether the format spreads its channels over more than
// one plane.
func (f PixelFormat) IsPlanar() bool { return len(f.planes) > 1 }

// Plane returns the i-th plane.
func (f PixelFormat) Plane(i int) PlaneFormat { return f.planes[i] }

// Planes returns a copy of the plane sequence.
func (f PixelFormat) Planes() []PlaneFormat {
	return append([]PlaneFormat(nil), f.planes...)
}

// Equal reports structural equality of the plane sequences.
func (f PixelFormat) Equal(o PixelFormat) bool {
	if len(f.planes) != len(o.planes) {
		return false
	}
	for i, p := range f.planes {
		if !p.Equal(o.planes[i]) {
			return false
		}
	}
	return true
}

// Hash returns a stable 64-bit identity derived from the canonical form.
func (f PixelFormat) Hash() uint64 {
	return hash.ID(f.Canonical())
}

// String returns the canonical name.
func (f PixelFormat) String() string { return f.Name() }

// Planar explodes a single packed plane into one plane per channel
// fragment, ordered by fragment offset. Span and subsampling carry over,
// each fragment is rebased to bit 0, and the total bits per pixel is
// unchanged.
func (f PixelFormat) Planar() (PixelFormat, error) {
	if len(f.planes) != 1 {
		return PixelFormat{}, fmt.Errorf("%w: %d planes", ErrNotPacked, len(f.planes))
	}
	p := f.planes[0]

	type occ struct {
		name string
		frag layout.Fragment
	}
	var occs []occ
	for _, c := range p.channels {
		for _, fr := range c.Fragments {
			occs = append(occs, occ{c.Name, fr})
		}
	}
	if len(occs) == 0 {
		return PixelFormat{}, fmt.Errorf("%w: no channels to explode", ErrNotPacked)
	}
	sort.SliceStable(occs, func(i, j int) bool { return occs[i].frag.Offset < occs[j].frag.Offset })

	planes := make([]PlaneFormat, 0, len(occs))
	for _, o := range occs {
		planes = append(planes, PlaneFormat{
			span: p.span,
			channels: layout.ChannelMap{{
				Name:      o.name,
				Fragments: []layout.Fragment{{Offset: 0, Width: o.frag.Width}},
			}},
			sub: p.sub,
		})
	}
	return PixelFormat{planes: planes}, nil
}

// bppCache memoizes bits-per-pixel by descriptor hash. Formats are
// immutable, so entries never go stale and are never evicted.
var bppCache = struct {
	mu sync.RWMutex
	m  map[uint64]float64
}{m: make(map[uint64]float64)}

// BitsPerPixel returns the total number of bits one pixel occupies across
// all planes: the sum over planes of bits-per-sample divided by
// span·xsub·ysub. The sum is computed in exact rationals and memoized.
func (f PixelFormat) BitsPerPixel() float64 {
	key := f.Hash()

	bppCache.mu.RLock()
	v, ok := bppCache.m[key]
	bppCache.mu.RUnlock()
	if ok {
		return v
	}

	total := Whole(0)
	for _, p := range f.planes {
		samples := Whole(p.span).Mul(p.sub.X).Mul(p.sub.Y)
		total = total.Add(Whole(p.BitsPerSample()).Div(samples))
	}
	v = total.Float()

	bppCache.mu.Lock()
	bppCache.m[key] = v
	bppCache.mu.Unlock()
	return v
}
