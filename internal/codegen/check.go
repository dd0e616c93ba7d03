package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Check verifies that src parses as the dialect implied by outputFile's
// extension, using esbuild's in-process Transform API (no child processes).
// A parse failure here means the emitter produced a broken module.
func Check(src, outputFile string) error {
	loader := api.LoaderJS
	if filepath.Ext(outputFile) == ".ts" {
		loader = api.LoaderTS
	}

	result := api.Transform(src, api.TransformOptions{Loader: loader})
	if len(result.Errors) > 0 {
		var msgs []string
		for _, msg := range result.Errors {
			text := msg.Text
			if msg.Location != nil {
				text = fmt.Sprintf("%d:%d: %s", msg.Location.Line, msg.Location.Column, msg.Text)
			}
			msgs = append(msgs, text)
		}
		return fmt.Errorf("esbuild errors:\n%s", strings.Join(msgs, "\n"))
	}
	return nil
}
