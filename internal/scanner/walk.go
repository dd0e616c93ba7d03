// Package scanner walks a route directory tree, detects HTTP-method handler
// exports in candidate files, and produces the route and import lists the
// emitter renders.
package scanner

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rafbgarcia/routegen/internal/conventions"
)

// sourceExts are the recognized route-file extensions.
var sourceExts = map[string]bool{".ts": true, ".js": true}

// Route is one exported HTTP handler bound to its derived URL pattern.
type Route struct {
	Method  string // GET, PUT, POST, DELETE, PATCH
	Pattern string // full router pattern, always starting with "/"
	Alias   string // import alias of the owning module
	Shape   Shape
}

// Import is one generated import statement: a sanitized alias and the
// module specifier relative to the output file's directory.
type Import struct {
	Alias string
	Path  string
}

// Result is the full outcome of one tree walk. One Import per qualifying
// file; one Route per recognized export in that file.
type Result struct {
	Routes  []Route
	Imports []Import
}

// Options configures a walk.
type Options struct {
	// ImportBase is the slash-separated relative path from the output
	// file's directory to the routes root ("." when they coincide).
	ImportBase string

	// Deno keeps the source extension on import specifiers and does not
	// strip the reserved index name from them.
	Deno bool

	// Detector classifies handler exports. Defaults to TextDetector.
	Detector Detector

	// Report, when set, is called for each route as it is discovered.
	// Purely observational.
	Report func(Route)
}

// Walk traverses the route tree rooted at fsys depth-first and returns every
// discovered route and import. Directories are always recursed into; a
// regular file is a candidate only if its base name does not start with an
// uppercase letter and its extension is recognized. Candidate files with no
// recognized exports contribute nothing.
func Walk(fsys fs.FS, opts Options) (Result, error) {
	if opts.Detector == nil {
		opts.Detector = TextDetector{}
	}
	if opts.ImportBase == "" {
		opts.ImportBase = "."
	}
	return walkDir(fsys, ".", nil, &opts)
}

func walkDir(fsys fs.FS, dir string, segs []conventions.Segment, opts *Options) (Result, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", dir, err)
	}

	var res Result
	for _, e := range entries {
		if e.IsDir() {
			seg := conventions.TransformSegment(e.Name())
			// Full slice expression so sibling branches never share
			// the appended segment.
			child := append(segs[:len(segs):len(segs)], seg)
			sub, err := walkDir(fsys, path.Join(dir, e.Name()), child, opts)
			if err != nil {
				return Result{}, err
			}
			res.Routes = append(res.Routes, sub.Routes...)
			res.Imports = append(res.Imports, sub.Imports...)
			continue
		}

		name := e.Name()
		ext := path.Ext(name)
		if !sourceExts[ext] || startsUpper(name) {
			continue
		}

		src, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return Result{}, fmt.Errorf("reading %s: %w", path.Join(dir, name), err)
		}
		exports := opts.Detector.Detect(src)
		if len(exports) == 0 {
			continue // co-located helper, not a route module
		}

		rel := path.Join(dir, name)
		stem := strings.TrimSuffix(name, ext)
		alias := conventions.SanitizeAlias(strings.TrimSuffix(rel, ext))

		res.Imports = append(res.Imports, Import{
			Alias: alias,
			Path:  importSpecifier(rel, opts),
		})

		pattern := routePattern(segs, stem)
		for _, ex := range exports {
			r := Route{Method: ex.Method, Pattern: pattern, Alias: alias, Shape: ex.Shape}
			if opts.Report != nil {
				opts.Report(r)
			}
			res.Routes = append(res.Routes, r)
		}
	}
	return res, nil
}

// routePattern renders the URL pattern for a file at the given directory
// segments with the given stem. A final stem equal to the reserved index
// name collapses to its parent directory's path.
func routePattern(segs []conventions.Segment, stem string) string {
	var frags []string
	for _, s := range segs {
		frags = append(frags, s.Fragment)
	}
	if stem != conventions.IndexName {
		frags = append(frags, conventions.TransformSegment(stem).Fragment)
	}
	return "/" + strings.Join(frags, "/")
}

// importSpecifier computes the module specifier for a route file, relative
// to the output file's directory. Outside deno mode the extension is
// dropped and a trailing index name is stripped.
func importSpecifier(rel string, opts *Options) string {
	p := rel
	if !opts.Deno {
		p = strings.TrimSuffix(p, path.Ext(p))
		if p == conventions.IndexName {
			p = ""
		} else {
			p = strings.TrimSuffix(p, "/"+conventions.IndexName)
		}
	}
	spec := path.Join(opts.ImportBase, p)
	switch {
	case spec == "" || spec == ".":
		return "./"
	case strings.HasPrefix(spec, ".."):
		return spec
	default:
		return "./" + spec
	}
}

// startsUpper reports whether the file's base name starts with an uppercase
// letter. Such files are reserved for co-located components and never
// become routes.
func startsUpper(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
