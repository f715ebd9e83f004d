package pixfmt

import "errors"

var (
	// ErrMalformedPlaneFormat is returned when a plane description cannot
	// be normalized to (span, layout, subsampling).
	ErrMalformedPlaneFormat = errors.New("pixfmt: malformed plane format")

	// ErrUnsupportedSubsampling is returned for YUV shorthand ratios whose
	// chroma row counts are neither equal nor zero.
	ErrUnsupportedSubsampling = errors.New("pixfmt: unsupported subsampling ratio")

	// ErrNotPacked is returned by the planar transform when the format is
	// not a single packed plane.
	ErrNotPacked = errors.New("pixfmt: format is not a single packed plane")
)
