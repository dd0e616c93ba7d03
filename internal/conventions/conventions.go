// Package conventions defines the file conventions and rules that map a
// route directory structure to router URL patterns: bracket segment syntax,
// import-alias sanitization, and the pattern ordering used for emission.
package conventions

import (
	"strings"
)

// IndexName is the reserved file stem that denotes a directory's own path
// rather than a named sub-segment.
const IndexName = "index"

// SegmentKind classifies a path segment after transformation.
type SegmentKind int

const (
	// Static matches the segment text literally.
	Static SegmentKind = iota
	// Dynamic matches exactly one path component ([name]).
	Dynamic
	// CatchAllOneOrMore matches one or more trailing components ([[name]]).
	CatchAllOneOrMore
	// CatchAllZeroOrMore matches zero or more trailing components
	// ([...name] or [[...name]]).
	CatchAllZeroOrMore
)

// Segment is one path component after transformation.
type Segment struct {
	Raw      string      // original file/directory name fragment
	Kind     SegmentKind
	Name     string // captured name, empty for Static
	Fragment string // router-path fragment (e.g. ":id", ":path{.+}")
}

// TransformSegment converts one file-system path component (directory name
// or file stem, extension already stripped) into its router-path segment.
// The rewrite rules are ordered; later rules never re-match text already
// claimed by an earlier rule:
//
//	"[[...name]]"  → ":name{.*}"
//	"[...name]"    → ":name{.*}"
//	"[[name]]"     → ":name{.+}"
//	"[name]"       → ":name"
//	anything else  → unchanged
func TransformSegment(raw string) Segment {
	switch {
	case strings.HasPrefix(raw, "[[...") && strings.HasSuffix(raw, "]]"):
		name := raw[len("[[...") : len(raw)-len("]]")]
		return Segment{Raw: raw, Kind: CatchAllZeroOrMore, Name: name, Fragment: ":" + name + "{.*}"}
	case strings.HasPrefix(raw, "[...") && strings.HasSuffix(raw, "]"):
		name := raw[len("[...") : len(raw)-len("]")]
		return Segment{Raw: raw, Kind: CatchAllZeroOrMore, Name: name, Fragment: ":" + name + "{.*}"}
	case strings.HasPrefix(raw, "[[") && strings.HasSuffix(raw, "]]"):
		name := raw[len("[[") : len(raw)-len("]]")]
		return Segment{Raw: raw, Kind: CatchAllOneOrMore, Name: name, Fragment: ":" + name + "{.+}"}
	case strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]"):
		name := raw[len("[") : len(raw)-len("]")]
		return Segment{Raw: raw, Kind: Dynamic, Name: name, Fragment: ":" + name}
	default:
		return Segment{Raw: raw, Kind: Static, Fragment: raw}
	}
}

var aliasReplacer = strings.NewReplacer(
	"/", "_",
	"\\", "_",
	"@", "_",
	"-", "_",
	"[", "",
	"]", "",
	".", "",
)

// SanitizeAlias converts a route file path (relative to the routes root,
// extension stripped) into an import alias: path separators, "@" and "-"
// become underscores, bracket wrapping is stripped to the bare name, and
// leading underscores from those rewrites are dropped.
//
// Two distinct route paths may sanitize to the same alias; collisions are a
// documented limitation and are not resolved here.
func SanitizeAlias(relPath string) string {
	return strings.TrimLeft(aliasReplacer.Replace(relPath), "_")
}

// segmentRank buckets a router-pattern segment for ordering: static before
// bounded parametric before unbounded parametric.
func segmentRank(seg string) int {
	if !strings.HasPrefix(seg, ":") {
		return 0
	}
	if strings.HasSuffix(seg, "{.+}") || strings.HasSuffix(seg, "{.*}") {
		return 2
	}
	return 1
}

// ComparePatterns is a total order over router path patterns (and,
// structurally identically, over import specifiers). Patterns are compared
// segment by segment; a missing trailing segment compares as the empty
// string, so a shorter pattern never loses to a parametric segment. At the
// first differing position, static segments sort before bounded parametric
// segments, which sort before unbounded ones; within a rank the comparison
// is lexicographic. Returns <0, 0 or >0.
func ComparePatterns(a, b string) int {
	as := strings.Split(a, "/")
	bs := strings.Split(b, "/")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var sa, sb string
		if i < len(as) {
			sa = as[i]
		}
		if i < len(bs) {
			sb = bs[i]
		}
		if sa == sb {
			continue
		}
		if ra, rb := segmentRank(sa), segmentRank(sb); ra != rb {
			return ra - rb
		}
		return strings.Compare(sa, sb)
	}
	return 0
}
