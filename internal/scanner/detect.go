package scanner

import (
	"regexp"
)

// Methods lists the recognized HTTP-method exports, in declaration order.
// Detected exports are always reported in this order regardless of where
// they appear in the file.
var Methods = []string{"GET", "PUT", "POST", "DELETE", "PATCH"}

// Shape says how an exported handler must be registered.
type Shape string

const (
	// Direct is a single handler, registered as one argument.
	Direct Shape = "direct"
	// Factory is a handlers(...) call that expands to a sequence of
	// handlers at registration time, registered with a spread.
	Factory Shape = "factory"
)

// Export is one recognized HTTP-method export found in a route file.
type Export struct {
	Method string
	Shape  Shape
}

// Detector classifies the HTTP-method exports of one source file. The
// default implementation is textual; swapping in a real parser only
// requires a new Detector.
type Detector interface {
	Detect(src []byte) []Export
}

// factoryHelper is the fixed helper name whose call marks a factory export:
// `export const GET = handlers(auth, list)`.
const factoryHelper = "handlers"

var (
	exportRe  = map[string]*regexp.Regexp{}
	factoryRe = map[string]*regexp.Regexp{}
)

func init() {
	for _, m := range Methods {
		exportRe[m] = regexp.MustCompile(
			`(?m)^[ \t]*export\s+(?:(?:const|let|var)\s+` + m + `\b|(?:async\s+)?function\s+` + m + `\b)`)
		factoryRe[m] = regexp.MustCompile(
			`(?m)^[ \t]*export\s+(?:const|let|var)\s+` + m + `\s*=\s*` + factoryHelper + `\s*\(`)
	}
}

// TextDetector finds handler exports by pattern matching on raw source
// text. It does not parse the file: an export-shaped line inside a comment
// or template literal is a false positive. That is accepted behavior.
type TextDetector struct{}

// Detect returns the (method, shape) pairs exported by src, in Methods
// order. An empty result means the file is not a route module.
func (TextDetector) Detect(src []byte) []Export {
	var exports []Export
	for _, m := range Methods {
		switch {
		case factoryRe[m].Match(src):
			exports = append(exports, Export{Method: m, Shape: Factory})
		case exportRe[m].Match(src):
			exports = append(exports, Export{Method: m, Shape: Direct})
		}
	}
	return exports
}
