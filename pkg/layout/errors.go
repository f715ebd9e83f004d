package layout

import "errors"

// ErrMalformedLayout is returned when a layout token matches neither the
// interleaved nor the grouped grammar, or when the grouped grammar pairs a
// different number of letters and width digits.
var ErrMalformedLayout = errors.New("layout: malformed channel layout")
