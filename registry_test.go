package pixfmt

import (
	"testing"

	"github.com/vframe/pixfmt/pkg/layout"
)

func TestRegisterNewFormat(t *testing.T) {
	if err := Register("bgr", PlaneDesc{Layout: layout.Token("b8g8r8")}); err != nil {
		t.Fatal(err)
	}

	f, err := Parse("bgr")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.BitsPerPixel(); got != 24 {
		t.Errorf("bgr bpp = %v, want 24", got)
	}
	if got := MustParse("b8g8r8").Name(); got != "bgr" {
		t.Errorf("reverse lookup = %q, want bgr", got)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	if err := Register("rgb", PlaneDesc{Layout: layout.Token("r8g8b8")}); err == nil {
		t.Error("duplicate registration should fail")
	}
}

func TestRegisterInvalidDescription(t *testing.T) {
	if err := Register("broken", PlaneDesc{Layout: layout.Token("???")}); err == nil {
		t.Error("registering a malformed description should fail")
	}
	if registered("broken") {
		t.Error("failed registration must not leave an entry behind")
	}
}

func TestRegistryNormalizesOnce(t *testing.T) {
	// Lookups of the same name return identical parsed values.
	a := MustParse("uyyvyy411")
	b := MustParse("uyyvyy411")
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("repeated registry lookups disagree")
	}
}

func TestGenericYUVNamesNotRegistered(t *testing.T) {
	for _, name := range []string{"yuv420p", "yuv422p", "yuv444p", "yuv410p"} {
		if registered(name) {
			t.Errorf("%q should be synthesized, not registered", name)
		}
	}
}
