// Package pixfmt is a canonical descriptor model for pixel buffer memory
// layouts. A format is described by a name ("nv12"), a shorthand layout
// string ("r8g8b8a8", "yuv 4:2:0") or an explicit plane description, and
// normalizes to an immutable, comparable sequence of planes: which bits
// each channel occupies, how many pixels one layout occurrence spans, and
// how chroma planes are subsampled.
//
// The model answers layout questions only. It never touches pixel data,
// and byte order within a sample is out of scope.
package pixfmt
