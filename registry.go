package pixfmt

import (
	"fmt"
	"sync"

	"github.com/vframe/pixfmt/internal/logging"
	"github.com/vframe/pixfmt/pkg/layout"
)

var logger = logging.NewLogger("pixfmt/registry")

// registryEntry holds a named format description. The raw description is
// normalized into parsed exactly once, on first use, and kept thereafter.
type registryEntry struct {
	name   string
	desc   []PlaneDesc
	parsed *PixelFormat
}

// The registry is ordered: reverse lookups scan entries in registration
// order, so aliased layouts resolve deterministically. Entries are never
// removed.
var registry = struct {
	mu      sync.Mutex
	entries []*registryEntry
	byName  map[string]*registryEntry
}{byName: make(map[string]*registryEntry)}

func init() {
	tok := func(s string) PlaneDesc { return PlaneDesc{Layout: layout.Token(s)} }

	seed("rgb", tok("r8g8b8"))
	seed("xrgb", tok("x8r8g8b8"))
	seed("rgba", tok("r8g8b8a8"))
	seed("gray8", tok("y8"))
	seed("monowhite", tok("y1"))
	seed("monoblack", tok("y1"))
	seed("pal8", tok("i8"))
	seed("uyvy422", PlaneDesc{Span: 2, Layout: layout.Token("u8y8v8y8")})
	seed("yuyv422", PlaneDesc{Span: 2, Layout: layout.Token("y8u8y8v8")})
	seed("uyyvyy411", PlaneDesc{Span: 4, Layout: layout.Token("u8y8y8v8y8y8")})
	seed("yuva420p",
		tok("y8"),
		PlaneDesc{Layout: layout.Token("u8"), Sub: Sub(2, 2)},
		PlaneDesc{Layout: layout.Token("v8"), Sub: Sub(2, 2)},
		tok("a8"))
	seed("nv12",
		tok("y8"),
		PlaneDesc{Layout: layout.Token("u8v8"), Sub: Sub(2, 2)})
	seed("nv21",
		tok("y8"),
		PlaneDesc{Layout: layout.Token("v8u8"), Sub: Sub(2, 2)})
}

// seed records a well-known format without parsing it; normalization is
// deferred to first use.
func seed(name string, desc ...PlaneDesc) {
	e := &registryEntry{name: name, desc: desc}
	registry.entries = append(registry.entries, e)
	registry.byName[name] = e
}

// Register adds a named format to the registry. The description is parsed
// eagerly; duplicate names are rejected.
func Register(name string, desc ...PlaneDesc) error {
	f, err := New(desc...)
	if err != nil {
		return fmt.Errorf("pixfmt: register %q: %w", name, err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.byName[name]; ok {
		return fmt.Errorf("pixfmt: format %q already registered", name)
	}
	e := &registryEntry{name: name, desc: desc, parsed: &f}
	registry.entries = append(registry.entries, e)
	registry.byName[name] = e
	return nil
}

// normalize parses the stored description on first use. The caller holds
// the registry lock.
func (e *registryEntry) normalize() (PixelFormat, error) {
	if e.parsed != nil {
		return *e.parsed, nil
	}
	f, err := New(e.desc...)
	if err != nil {
		return PixelFormat{}, err
	}
	logger.Tracef("normalized %q to %s", e.name, f.Canonical())
	e.parsed = &f
	return f, nil
}

// registered reports whether name is a known format name.
func registered(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	_, ok := registry.byName[name]
	return ok
}

// lookup resolves a registered name to its parsed format. An entry that
// fails to normalize is reported once and treated as missing.
func lookup(name string) (PixelFormat, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	e, ok := registry.byName[name]
	if !ok {
		return PixelFormat{}, false
	}
	f, err := e.normalize()
	if err != nil {
		logger.Warnf("registry entry %q does not parse: %v", name, err)
		return PixelFormat{}, false
	}
	return f, true
}

// reverseLookup returns the name under which a structurally equal format
// was registered, scanning in registration order.
func reverseLookup(f PixelFormat) (string, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	for _, e := range registry.entries {
		g, err := e.normalize()
		if err != nil {
			continue
		}
		if g.Equal(f) {
			return e.name, true
		}
	}
	return "", false
}
