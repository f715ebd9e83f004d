// Package layout parses inline channel layout tokens that describe how
// channel bits occupy one memory plane.
package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Fragment is one contiguous run of bits owned by a channel.
type Fragment struct {
	Offset int
	Width  int
}

// Channel is a named component with one or more bit fragments inside a
// plane. A channel owns several fragments when its letter occurs more than
// once in the layout token.
type Channel struct {
	Name      string
	Fragments []Fragment
}

// ChannelMap maps channel names to their fragments. The slice order is the
// order of first appearance in the layout token; equality does not depend
// on it.
type ChannelMap []Channel

// Layout is a plane layout operand: either a Token still to be parsed or an
// already structured ChannelMap, which passes through unchanged.
type Layout interface {
	Channels() (ChannelMap, error)
}

var (
	interleavedPattern = regexp.MustCompile(`^(?:[a-zA-Z][0-9]+)+$`)
	interleavedPairs   = regexp.MustCompile(`([a-zA-Z])([0-9]+)`)
	groupedPattern     = regexp.MustCompile(`^([a-zA-Z]+)([0-9]+)$`)
)

// Token is an inline channel layout string, either in interleaved form
// ("r8g8b8a8") or grouped form ("rgb332").
type Token string

// Channels parses the token into a ChannelMap. The interleaved grammar is
// tried first; the grouped grammar requires one width digit per letter.
func (t Token) Channels() (ChannelMap, error) {
	s := string(t)
	var names []string
	var widths []int

	switch {
	case interleavedPattern.MatchString(s):
		for _, m := range interleavedPairs.FindAllStringSubmatch(s, -1) {
			w, err := strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: bad width in %q", ErrMalformedLayout, s)
			}
			names = append(names, m[1])
			widths = append(widths, w)
		}
	default:
		m := groupedPattern.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedLayout, s)
		}
		letters, digits := m[1], m[2]
		if len(letters) != len(digits) {
			return nil, fmt.Errorf("%w: %q pairs %d channels with %d widths",
				ErrMalformedLayout, s, len(letters), len(digits))
		}
		for i := 0; i < len(letters); i++ {
			names = append(names, string(letters[i]))
			widths = append(widths, int(digits[i]-'0'))
		}
	}

	m := make(ChannelMap, 0, len(names))
	pos := 0
	for i, name := range names {
		if widths[i] <= 0 {
			return nil, fmt.Errorf("%w: channel %q has zero width", ErrMalformedLayout, name)
		}
		f := Fragment{Offset: pos, Width: widths[i]}
		if j := m.index(name); j >= 0 {
			m[j].Fragments = append(m[j].Fragments, f)
		} else {
			m = append(m, Channel{Name: name, Fragments: []Fragment{f}})
		}
		pos += widths[i]
	}
	return m, nil
}

// Channels implements Layout; a ChannelMap operand is already structured.
func (m ChannelMap) Channels() (ChannelMap, error) {
	return m, nil
}

func (m ChannelMap) index(name string) int {
	for i, c := range m {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Get returns the channel with the given name.
func (m ChannelMap) Get(name string) (Channel, bool) {
	if i := m.index(name); i >= 0 {
		return m[i], true
	}
	return Channel{}, false
}

// Bits returns the total number of bits owned by all channels.
func (m ChannelMap) Bits() int {
	total := 0
	for _, c := range m {
		for _, f := range c.Fragments {
			total += f.Width
		}
	}
	return total
}

// Equal reports whether two channel maps describe the same channels with
// the same fragments, regardless of channel order.
func (m ChannelMap) Equal(o ChannelMap) bool {
	if len(m) != len(o) {
		return false
	}
	for _, c := range m {
		oc, ok := o.Get(c.Name)
		if !ok || len(oc.Fragments) != len(c.Fragments) {
			return false
		}
		for i, f := range c.Fragments {
			if oc.Fragments[i] != f {
				return false
			}
		}
	}
	return true
}

// Token reconstructs the interleaved layout token for a channel map whose
// fragments tile the plane contiguously from bit 0. It reports false for
// maps with gaps or overlaps, which have no token form.
func (m ChannelMap) Token() (Token, bool) {
	type occ struct {
		name string
		frag Fragment
	}
	var occs []occ
	for _, c := range m {
		for _, f := range c.Fragments {
			occs = append(occs, occ{c.Name, f})
		}
	}
	sort.SliceStable(occs, func(i, j int) bool { return occs[i].frag.Offset < occs[j].frag.Offset })

	var b strings.Builder
	pos := 0
	for _, o := range occs {
		if o.frag.Offset != pos {
			return "", false
		}
		b.WriteString(o.name)
		b.WriteString(strconv.Itoa(o.frag.Width))
		pos += o.frag.Width
	}
	if b.Len() == 0 {
		return "", false
	}
	return Token(b.String()), true
}
