package pixfmt

import (
	"fmt"

	"github.com/vframe/pixfmt/pkg/layout"
)

// PlaneDesc describes one memory plane. Span is the number of pixels
// jointly described by one layout occurrence (0 means 1), Layout is the
// channel layout operand and Sub the subsampling divisors (the zero value
// means 1:1).
type PlaneDesc struct {
	Span   int
	Layout layout.Layout
	Sub    Subsampling
}

// PlaneFormat is one normalized, immutable plane of a pixel format.
type PlaneFormat struct {
	span     int
	channels layout.ChannelMap
	sub      Subsampling
}

// NewPlane normalizes a plane description into a PlaneFormat.
func NewPlane(d PlaneDesc) (PlaneFormat, error) {
	span := d.Span
	if span == 0 {
		span = 1
	}
	if span < 0 {
		return PlaneFormat{}, fmt.Errorf("%w: span %d", ErrMalformedPlaneFormat, span)
	}
	sub := d.Sub
	if sub == (Subsampling{}) {
		sub = Sub(1, 1)
	}
	sub = sub.normalized()
	if !sub.valid() {
		return PlaneFormat{}, fmt.Errorf("%w: subsampling %s", ErrMalformedPlaneFormat, sub)
	}
	if d.Layout == nil {
		return PlaneFormat{}, fmt.Errorf("%w: missing layout", ErrMalformedPlaneFormat)
	}
	channels, err := d.Layout.Channels()
	if err != nil {
		return PlaneFormat{}, err
	}
	return PlaneFormat{span: span, channels: channels, sub: sub}, nil
}

// Span returns the number of pixels jointly described by the plane layout.
func (p PlaneFormat) Span() int { return p.span }

// Channels returns the plane's channel map. The result must not be
// modified.
func (p PlaneFormat) Channels() layout.ChannelMap { return p.channels }

// Subsampling returns the plane's subsampling divisors.
func (p PlaneFormat) Subsampling() Subsampling { return p.sub }

// BitsPerSample returns the sum of all fragment widths over all channels.
// Span and subsampling do not enter; they are applied per pixel one level
// up.
func (p PlaneFormat) BitsPerSample() int { return p.channels.Bits() }

// Equal reports structural equality of two planes.
func (p PlaneFormat) Equal(o PlaneFormat) bool {
	return p.span == o.span && p.sub == o.sub && p.channels.Equal(o.channels)
}

// name derives the single-plane canonical name, when one exists: span 1,
// no subsampling, one fragment per channel, fragments tiling the plane
// from bit 0.
func (p PlaneFormat) name() (string, bool) {
	if p.span != 1 || p.sub != Sub(1, 1) {
		return "", false
	}
	for _, c := range p.channels {
		if len(c.Fragments) != 1 {
			return "", false
		}
	}
	tok, ok := p.channels.Token()
	if !ok {
		return "", false
	}
	return string(tok), true
}
