// Package codegen renders the discovered routes into the generated
// route-registration module and writes it to disk.
package codegen

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rafbgarcia/routegen/internal/conventions"
	"github.com/rafbgarcia/routegen/internal/scanner"
)

const header = "// Code generated by routegen. DO NOT EDIT.\n"

// Render produces the generated module text: one aliased import per route
// file and one default-exported function that registers every route, both
// lists sorted so more specific patterns register before more general ones.
// Rendering is pure; two calls with the same input produce identical text.
func Render(res scanner.Result) string {
	imports := make([]scanner.Import, len(res.Imports))
	copy(imports, res.Imports)
	routes := make([]scanner.Route, len(res.Routes))
	copy(routes, res.Routes)

	// Stable sorts: discovery order breaks ties.
	sort.SliceStable(imports, func(i, j int) bool {
		return conventions.ComparePatterns(imports[i].Path, imports[j].Path) < 0
	})
	sort.SliceStable(routes, func(i, j int) bool {
		return conventions.ComparePatterns(routes[i].Pattern, routes[j].Pattern) < 0
	})

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")

	for _, imp := range imports {
		fmt.Fprintf(&b, "import * as %s from %q;\n", imp.Alias, imp.Path)
	}

	b.WriteString("\nexport default function (app) {\n")
	for _, r := range routes {
		if r.Shape == scanner.Factory {
			fmt.Fprintf(&b, "  app.%s(%q, ...%s.%s);\n", strings.ToLower(r.Method), r.Pattern, r.Alias, r.Method)
		} else {
			fmt.Fprintf(&b, "  app.%s(%q, %s.%s);\n", strings.ToLower(r.Method), r.Pattern, r.Alias, r.Method)
		}
	}
	b.WriteString("}\n")

	return b.String()
}

// Write renders the module, verifies it parses in the output file's
// dialect, and overwrites outputFile with it.
func Write(outputFile string, res scanner.Result) error {
	text := Render(res)
	if err := Check(text, outputFile); err != nil {
		return fmt.Errorf("generated module failed to parse: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return nil
}
