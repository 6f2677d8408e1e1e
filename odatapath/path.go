// Package odatapath models the resolved segments of a request path as far as
// raw value serialization needs them.
//
// Paths are built by the request pipeline; this package only reads them.
//
//	p := odatapath.Path{
//		odatapath.EntitySet("Products"),
//		odatapath.Navigation("Categories"),
//		odatapath.Count(),
//	}
//	odatapath.IsCountRequest(odatapath.NewContext(p)) // true
package odatapath

import (
	"reflect"
	"strings"
)

// SegmentKind identifies what a path segment addresses.
type SegmentKind uint8

const (
	SegmentEntitySet SegmentKind = iota
	SegmentKey
	SegmentNavigation
	SegmentProperty
	SegmentValue // $value
	SegmentCount // $count
)

var segmentKindNames = [...]string{
	SegmentEntitySet:  "entityset",
	SegmentKey:        "key",
	SegmentNavigation: "navigation",
	SegmentProperty:   "property",
	SegmentValue:      "value",
	SegmentCount:      "count",
}

func (k SegmentKind) String() string {
	if int(k) < len(segmentKindNames) {
		return segmentKindNames[k]
	}
	return "unknown"
}

// Segment is one resolved path segment. Name holds the entity set,
// navigation or property name; Key holds the literal of a key segment.
type Segment struct {
	Name string
	Key  string
	Kind SegmentKind
}

func EntitySet(name string) Segment { return Segment{Kind: SegmentEntitySet, Name: name} }
func Key(literal string) Segment { return Segment{Kind: SegmentKey, Key: literal} }
func Navigation(name string) Segment { return Segment{Kind: SegmentNavigation, Name: name} }
func Property(name string) Segment { return Segment{Kind: SegmentProperty, Name: name} }
func Value() Segment { return Segment{Kind: SegmentValue} }
func Count() Segment { return Segment{Kind: SegmentCount} }

func (s Segment) String() string {
	switch s.Kind {
	case SegmentKey:
		return "(" + s.Key + ")"
	case SegmentValue:
		return "$value"
	case SegmentCount:
		return "$count"
	}
	return s.Name
}

// Path is an ordered sequence of resolved segments.
type Path []Segment

// Last returns the final segment.
func (p Path) Last() (Segment, bool) {
	if len(p) == 0 {
		return Segment{}, false
	}
	return p[len(p)-1], true
}

// IsCount reports whether the path ends in a $count segment.
func (p Path) IsCount() bool {
	last, ok := p.Last()
	return ok && last.Kind == SegmentCount
}

// String renders the path in URL form: key segments attach to the segment
// before them, everything else is joined with "/".
func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && seg.Kind != SegmentKey {
			b.WriteByte('/')
		}
		b.WriteString(seg.String())
	}
	return b.String()
}

// Segments returns the rendered segments, one per element, for error paths.
func (p Path) Segments() []string {
	out := make([]string, 0, len(p))
	for _, seg := range p {
		if seg.Kind == SegmentKey && len(out) > 0 {
			out[len(out)-1] += seg.String()
			continue
		}
		out = append(out, seg.String())
	}
	return out
}

// Context exposes the resolved path of the request being served.
type Context interface {
	Path() Path
}

type staticContext struct {
	path Path
}

func (c staticContext) Path() Path { return c.path }

// NewContext returns a Context over a copy of p.
func NewContext(p Path) Context {
	return staticContext{path: append(Path(nil), p...)}
}

// IsCountRequest reports whether ctx is present and its path ends in $count.
// A nil interface and a typed nil pointer both count as missing.
func IsCountRequest(ctx Context) bool {
	return PathOf(ctx).IsCount()
}

// PathOf returns the path of ctx, or nil when ctx is missing.
func PathOf(ctx Context) Path {
	if isNil(ctx) {
		return nil
	}
	return ctx.Path()
}

func isNil(ctx Context) bool {
	if ctx == nil {
		return true
	}
	rv := reflect.ValueOf(ctx)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
