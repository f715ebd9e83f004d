package pixfmt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vframe/pixfmt/pkg/layout"
)

// yuvShorthand recognizes standard chroma subsampling notation such as
// "yuv420p", "YUV 4:2:0" or "yuv444": three digits with optional colon or
// space separators and an optional trailing planar marker.
var yuvShorthand = regexp.MustCompile(`(?i)^yuv[ :]*([0-9])[ :]*([0-9])[ :]*([0-9])p?$`)

// Parse builds a PixelFormat from a textual description. Recognized forms,
// tried in order: YUV subsampling shorthand, the parenthesized canonical
// form, a trailing-"p" packed-to-planar string, a registered format name,
// and a bare channel layout token.
func Parse(s string) (PixelFormat, error) {
	if m := yuvShorthand.FindStringSubmatch(s); m != nil {
		return parseYUVShorthand(m[1], m[2], m[3])
	}

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		desc, err := parseLiteral(s)
		if err != nil {
			return PixelFormat{}, err
		}
		return New(desc...)
	}

	if (strings.HasSuffix(s, "p") || strings.HasSuffix(s, "P")) && !registered(s) {
		packed, err := Parse(s[:len(s)-1])
		if err != nil {
			return PixelFormat{}, err
		}
		return packed.Planar()
	}

	if f, ok := lookup(s); ok {
		return f, nil
	}

	return New(PlaneDesc{Layout: layout.Token(s)})
}

// MustParse is like Parse but panics on error. Intended for static tables
// and tests.
func MustParse(s string) PixelFormat {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

// parseYUVShorthand expands yuv<d1>:<d2>:<d3> into a 3-plane planar
// description. d1 counts luma samples in the reference block, d2 chroma
// samples on the first row, d3 chroma samples on the second row.
func parseYUVShorthand(d1s, d2s, d3s string) (PixelFormat, error) {
	d1 := int(d1s[0] - '0')
	d2 := int(d2s[0] - '0')
	d3 := int(d3s[0] - '0')

	if d1 == 0 || d2 == 0 {
		return PixelFormat{}, fmt.Errorf("%w: yuv %d:%d:%d", ErrUnsupportedSubsampling, d1, d2, d3)
	}
	hsub := NewRatio(d1, d2)

	var vsub Ratio
	switch d3 {
	case 0:
		vsub = Whole(2)
	case d2:
		vsub = Whole(1)
	default:
		// Chroma row counts that are neither equal nor zero describe
		// layouts this model cannot represent.
		return PixelFormat{}, fmt.Errorf("%w: yuv %d:%d:%d", ErrUnsupportedSubsampling, d1, d2, d3)
	}

	chroma := Subsampling{X: hsub, Y: vsub}
	return New(
		PlaneDesc{Layout: layout.Token("y8")},
		PlaneDesc{Layout: layout.Token("u8"), Sub: chroma},
		PlaneDesc{Layout: layout.Token("v8"), Sub: chroma},
	)
}
