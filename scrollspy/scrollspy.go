// Package scrollspy tracks which heading of a long-form page is currently in
// view. A Tracker watches a set of heading elements through a Host's
// visibility observer and reports the most recently intersecting one, which
// the table of contents uses to highlight the section being read.
//
// The Host abstracts the platform: in the browser it is backed by
// IntersectionObserver (see package jsdom), in tests by scrollspytest.Page.
package scrollspy

import (
	"slices"
	"strconv"
	"strings"
)

// Heading is a single entry of a page's outline.
type Heading struct {
	ID    string // element id in the rendered document
	Text  string // display label
	Level int    // nesting depth, 2 for top-level sections
}

// IDs returns the heading identifiers in document order.
func IDs(headings []Heading) []string {
	ids := make([]string, len(headings))
	for i, h := range headings {
		ids[i] = h.ID
	}
	return ids
}

// Options configures visibility detection.
type Options struct {
	// RootMargin grows or shrinks the viewport used for intersection
	// testing, in CSS margin shorthand ("0px", "-10% 0px", ...).
	RootMargin string
	// Threshold lists the visibility fractions that trigger a notification.
	// A single number is a one-element slice. Empty means [0].
	Threshold []float64
}

// DefaultOptions returns the options the table of contents uses: the bare
// viewport and a notification only once a heading is fully visible.
func DefaultOptions() Options {
	return Options{RootMargin: "0px 0px 0px 0px", Threshold: []float64{1}}
}

// Equal reports whether o and p describe the same observation.
func (o Options) Equal(p Options) bool {
	return o.RootMargin == p.RootMargin && slices.Equal(o.Threshold, p.Threshold)
}

// ParseThresholds reads a comma or space separated list of fractions, as
// found in a data-threshold attribute. Values that do not parse or fall
// outside [0, 1] are dropped.
func ParseThresholds(s string) []float64 {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 || v > 1 {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (o Options) clone() Options {
	o.Threshold = slices.Clone(o.Threshold)
	return o
}

// Element is a document element that can be observed.
type Element interface {
	ID() string
}

// Entry is one intersection notification for a single target.
type Entry struct {
	Target            Element
	IsIntersecting    bool
	IntersectionRatio float64
}

// Observer watches elements and reports intersection changes to the
// callback it was created with. After Disconnect no further callbacks fire.
type Observer interface {
	Observe(el Element)
	Disconnect()
}

// Host is the platform the tracker runs on.
type Host interface {
	// ElementByID returns the element with the given id, or nil if the
	// document has none.
	ElementByID(id string) Element
	// NewObserver creates an observer delivering batches of entries to
	// callback. Delivery is asynchronous.
	NewObserver(callback func(entries []Entry), opts Options) Observer
}

// Item is a heading prepared for rendering.
type Item struct {
	Heading
	Active bool
	Indent int // em
}

// Items builds the render model for a table of contents. At most one item,
// the one whose ID equals activeID, is active.
func Items(headings []Heading, activeID string) []Item {
	items := make([]Item, len(headings))
	activeDone := false
	for i, h := range headings {
		active := !activeDone && activeID != "" && h.ID == activeID
		if active {
			activeDone = true
		}
		items[i] = Item{Heading: h, Active: active, Indent: Indent(h.Level)}
	}
	return items
}

// Indent returns the left padding, in em, for a heading level. Level 2 is
// flush; each deeper level adds one.
func Indent(level int) int {
	if level <= 2 {
		return 0
	}
	return level - 2
}
