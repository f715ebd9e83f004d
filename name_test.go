package pixfmt

import (
	"testing"

	"github.com/vframe/pixfmt/pkg/layout"
)

func TestRegistryNames(t *testing.T) {
	tests := []struct {
		desc string
		name string
	}{
		{"rgb", "rgb"},
		{"rgb888", "rgb"},
		{"r8g8b8", "rgb"},
		{"x8r8g8b8", "xrgb"},
		{"y8", "gray8"},
		{"y1", "monowhite"},
		{"i8", "pal8"},
		{"u8y8v8y8", `((1, "u8y8v8y8", (1, 1)))`}, // span 1, not the span-2 uyvy422
		{"uyvy422", "uyvy422"},
		{"nv12", "nv12"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.desc).Name(); got != tt.name {
			t.Errorf("Parse(%q).Name() = %q, want %q", tt.desc, got, tt.name)
		}
	}
}

func TestYUVNameSynthesis(t *testing.T) {
	// Generic planar YUV names are never registered; they are synthesized
	// from the chroma subsampling on demand.
	tests := []struct {
		desc string
		name string
	}{
		{"yuv420p", "yuv420p"},
		{"YUV 4:2:0", "yuv420p"},
		{"yuv422", "yuv422p"},
		{"yuv444p", "yuv444p"},
		{"yuv888p", "yuv444p"},
		{"yuv410", "yuv410p"},
		{"yuv411p", "yuv411p"},
		{"yuv 4:3:3", "yuv433p"},
	}
	for _, tt := range tests {
		if got := MustParse(tt.desc).Name(); got != tt.name {
			t.Errorf("Parse(%q).Name() = %q, want %q", tt.desc, got, tt.name)
		}
	}
}

func TestYUVNameVerticalOnlySubsampling(t *testing.T) {
	f, err := New(
		PlaneDesc{Layout: layout.Token("y8")},
		PlaneDesc{Layout: layout.Token("u8"), Sub: Sub(1, 2)},
		PlaneDesc{Layout: layout.Token("v8"), Sub: Sub(1, 2)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Name(); got != "yuv440p" {
		t.Errorf("Name() = %q, want yuv440p", got)
	}
	if !MustParse("yuv440p").Equal(f) {
		t.Error("yuv440p should round-trip")
	}
}

func TestYUVNameIneligible(t *testing.T) {
	// Wrong channel set: falls back to per-plane generic naming.
	if got := MustParse("yua422p").Name(); got != "y4u2a2p" {
		t.Errorf("yua422p name = %q, want y4u2a2p", got)
	}

	// Mismatched chroma subsampling: no YUV name, no per-plane name
	// (subsampled planes are unnameable), canonical fallback.
	f, err := New(
		PlaneDesc{Layout: layout.Token("y8")},
		PlaneDesc{Layout: layout.Token("u8"), Sub: Sub(2, 2)},
		PlaneDesc{Layout: layout.Token("v8"), Sub: Sub(2, 1)},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.Name(), f.Canonical(); got != want {
		t.Errorf("Name() = %q, want canonical %q", got, want)
	}
}

func TestNameFallsBackToCanonical(t *testing.T) {
	f, err := New(PlaneDesc{Span: 2, Layout: layout.Token("r8g8b8")})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := f.Name(), `((2, "r8g8b8", (1, 1)))`; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if !MustParse(f.Name()).Equal(f) {
		t.Error("canonical fallback name should round-trip")
	}
}

func TestNameZeroValue(t *testing.T) {
	// The zero value describes no planes; Name and Canonical degrade to the
	// empty literal instead of panicking.
	var f PixelFormat
	if got := f.Name(); got != "()" {
		t.Errorf("Name() = %q, want %q", got, "()")
	}
	if got := f.Canonical(); got != "()" {
		t.Errorf("Canonical() = %q, want %q", got, "()")
	}
}

func TestNameRoundTrip(t *testing.T) {
	descs := []string{
		"rgb", "xrgb", "rgba", "gray8", "monowhite", "monoblack", "pal8",
		"uyvy422", "yuyv422", "uyyvyy411", "yuva420p", "nv12", "nv21",
		"yuv420p", "yuv422p", "yuv444p", "yuv410p", "yuv411p",
		"rgbp", "yua422p", "rgb565",
	}
	for _, desc := range descs {
		t.Run(desc, func(t *testing.T) {
			f := MustParse(desc)
			name := f.Name()

			back, err := Parse(name)
			if err != nil {
				t.Fatalf("Parse(%q): %v", name, err)
			}
			if !back.Equal(f) {
				t.Errorf("Parse(%q) != Parse(%q)", name, desc)
			}
			if got := back.Name(); got != name {
				t.Errorf("Name is not idempotent: %q -> %q", name, got)
			}
		})
	}
}
