package pixfmt

import (
	"fmt"
	"image"
	"testing"
)

func TestPlaneSizes(t *testing.T) {
	const width, height = 640, 480

	tests := []struct {
		desc   string
		planes []uint
	}{
		{"yuv420p", []uint{307200, 76800, 76800}},
		{"nv12", []uint{307200, 153600}},
		{"yuyv422", []uint{614400}},
		{"uyvy422", []uint{614400}},
		{"rgb", []uint{921600}},
		{"monowhite", []uint{38400}},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			f := MustParse(tt.desc)
			var total uint
			for i, want := range tt.planes {
				got := f.PlaneSize(i, width, height)
				if got != want {
					t.Errorf("PlaneSize(%d) = %d, want %d", i, got, want)
				}
				total += want
			}
			if got := f.FrameSize(width, height); got != total {
				t.Errorf("FrameSize = %d, want %d", got, total)
			}
		})
	}
}

func TestFrameSizeRoundsUpToBytes(t *testing.T) {
	// 3 pixels of a 1-bit format need a byte.
	f := MustParse("monoblack")
	if got := f.FrameSize(3, 1); got != 1 {
		t.Errorf("FrameSize(3, 1) = %d, want 1", got)
	}
}

func TestSubsampleRatio(t *testing.T) {
	tests := []struct {
		desc  string
		ratio image.YCbCrSubsampleRatio
	}{
		{"yuv444p", image.YCbCrSubsampleRatio444},
		{"yuv422p", image.YCbCrSubsampleRatio422},
		{"yuv420p", image.YCbCrSubsampleRatio420},
		{"yuv411p", image.YCbCrSubsampleRatio411},
		{"yuv410p", image.YCbCrSubsampleRatio410},
	}
	for _, tt := range tests {
		f := MustParse(tt.desc)
		got, ok := f.SubsampleRatio()
		if !ok {
			t.Errorf("SubsampleRatio(%q) not derivable", tt.desc)
			continue
		}
		if got != tt.ratio {
			t.Errorf("SubsampleRatio(%q) = %v, want %v", tt.desc, got, tt.ratio)
		}
	}

	for _, desc := range []string{"rgb", "nv12", "yuva420p", "yua422p"} {
		if _, ok := MustParse(desc).SubsampleRatio(); ok {
			t.Errorf("SubsampleRatio(%q) should not be derivable", desc)
		}
	}
}

func BenchmarkFrameSize(b *testing.B) {
	sizes := []struct {
		width, height int
	}{
		{640, 480},
		{1920, 1080},
	}
	f := MustParse("yuv420p")
	for _, sz := range sizes {
		b.Run(fmt.Sprintf("%dx%d", sz.width, sz.height), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				f.FrameSize(sz.width, sz.height)
			}
		})
	}
}
