// Package match selects pixel formats against constraints, scoring each
// candidate by fitness distance and returning the closest acceptable one.
package match

import (
	"errors"
	"math"

	"github.com/vframe/pixfmt"
)

// ErrNoMatch is returned when no candidate satisfies the constraints.
var ErrNoMatch = errors.New("match: no format satisfies the constraints")

// Constraint scores a candidate format. The distance is 0 for a perfect
// fit; the bool reports whether the candidate is acceptable at all.
type Constraint interface {
	Fit(pixfmt.PixelFormat) (float64, bool)
}

// Exact accepts only formats structurally equal to the wanted one.
type Exact struct {
	Want pixfmt.PixelFormat
}

// Fit implements Constraint.
func (c Exact) Fit(f pixfmt.PixelFormat) (float64, bool) {
	if c.Want.Equal(f) {
		return 0.0, true
	}
	return 1.0, false
}

// OneOf accepts any of the listed formats.
type OneOf []pixfmt.PixelFormat

// Fit implements Constraint.
func (c OneOf) Fit(f pixfmt.PixelFormat) (float64, bool) {
	for _, want := range c {
		if want.Equal(f) {
			return 0.0, true
		}
	}
	return 1.0, false
}

// Name prefers a format with the given canonical name. Other names remain
// acceptable at distance 1.
type Name string

// Fit implements Constraint.
func (c Name) Fit(f pixfmt.PixelFormat) (float64, bool) {
	if f.Name() == string(c) {
		return 0.0, true
	}
	return 1.0, true
}

// NameExact requires the given canonical name.
type NameExact string

// Fit implements Constraint.
func (c NameExact) Fit(f pixfmt.PixelFormat) (float64, bool) {
	if f.Name() == string(c) {
		return 0.0, true
	}
	return 1.0, false
}

// Planar requires the planar flag to match.
type Planar bool

// Fit implements Constraint.
func (c Planar) Fit(f pixfmt.PixelFormat) (float64, bool) {
	if f.IsPlanar() == bool(c) {
		return 0.0, true
	}
	return 1.0, false
}

// PlaneCount prefers formats with the given number of planes, scoring
// others by normalized distance.
type PlaneCount int

// Fit implements Constraint.
func (c PlaneCount) Fit(f pixfmt.PixelFormat) (float64, bool) {
	a, b := float64(f.PlaneCount()), float64(c)
	return math.Abs(a-b) / math.Max(a, b), true
}

// BitsPerPixelRanged bounds the bits-per-pixel of acceptable formats and
// scores them by distance to Ideal. Zero fields are unconstrained.
type BitsPerPixelRanged struct {
	Min   float64
	Max   float64
	Ideal float64
}

// Fit implements Constraint.
func (c BitsPerPixelRanged) Fit(f pixfmt.PixelFormat) (float64, bool) {
	bpp := f.BitsPerPixel()
	if c.Min != 0 && bpp < c.Min {
		return 1.0, false
	}
	if c.Max != 0 && bpp > c.Max {
		return 1.0, false
	}
	if c.Ideal == 0 {
		return 0.0, true
	}
	switch {
	case bpp == c.Ideal:
		return 0.0, true
	case bpp < c.Ideal:
		if c.Min == 0 {
			return 0.0, true
		}
		return (c.Ideal - bpp) / (c.Ideal - c.Min), true
	default:
		if c.Max == 0 {
			return 0.0, true
		}
		return (bpp - c.Ideal) / (c.Max - c.Ideal), true
	}
}

// Select returns the candidate with the lowest total fitness distance over
// all constraints. Earlier candidates win ties.
func Select(candidates []pixfmt.PixelFormat, constraints ...Constraint) (pixfmt.PixelFormat, error) {
	best := -1
	bestDist := math.Inf(1)
	for i, f := range candidates {
		total := 0.0
		acceptable := true
		for _, c := range constraints {
			d, ok := c.Fit(f)
			if !ok {
				acceptable = false
				break
			}
			total += d
		}
		if acceptable && total < bestDist {
			best, bestDist = i, total
		}
	}
	if best < 0 {
		return pixfmt.PixelFormat{}, ErrNoMatch
	}
	return candidates[best], nil
}
