package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rafbgarcia/routegen/internal/codegen"
	"github.com/rafbgarcia/routegen/internal/diag"
	"github.com/rafbgarcia/routegen/internal/scanner"
	"github.com/rafbgarcia/routegen/internal/watcher"
)

type generateOptions struct {
	routesDir  string
	outputFile string
	watch      bool
	deno       bool
}

// runGenerate performs one generation pass and, in watch mode, keeps
// regenerating on every file-system event until the process is terminated.
func runGenerate(opts generateOptions) error {
	printer := diag.New(os.Stdout)

	if err := generateOnce(opts, printer); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	eventCh := make(chan watcher.Event, 100)
	w := watcher.New(opts.routesDir, opts.outputFile, func(ev watcher.Event) { eventCh <- ev })
	if err := w.Start(); err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Stop()

	printer.Watching(opts.routesDir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case ev := <-eventCh:
			printer.Change(ev.Op, ev.Path)
			// Full re-walk, never incremental. Passes are serialized on
			// this goroutine, so two passes can't race on the output file.
			if err := generateOnce(opts, printer); err != nil {
				printer.Error(err)
			}

		case <-sigCh:
			return nil
		}
	}
}

// generateOnce runs one full pass: walk the tree, render, verify, write.
func generateOnce(opts generateOptions, printer *diag.Printer) error {
	base, err := importBase(opts.routesDir, opts.outputFile)
	if err != nil {
		return err
	}

	res, err := scanner.Walk(os.DirFS(opts.routesDir), scanner.Options{
		ImportBase: base,
		Deno:       opts.deno,
		Report: func(r scanner.Route) {
			printer.Route(r.Method, r.Pattern, string(r.Shape))
		},
	})
	if err != nil {
		return err
	}

	if err := codegen.Write(opts.outputFile, res); err != nil {
		return err
	}
	printer.Done(opts.outputFile, len(res.Routes))
	return nil
}

// importBase computes the slash-separated relative path from the output
// file's directory to the routes root, the base every generated import
// specifier is resolved against.
func importBase(routesDir, outputFile string) (string, error) {
	outDir, err := filepath.Abs(filepath.Dir(outputFile))
	if err != nil {
		return "", err
	}
	absRoutes, err := filepath.Abs(routesDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(outDir, absRoutes)
	if err != nil {
		return "", fmt.Errorf("relating %s to %s: %w", routesDir, outputFile, err)
	}
	return filepath.ToSlash(rel), nil
}
