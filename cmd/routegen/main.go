package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rafbgarcia/routegen/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "routegen",
	Short: "Route-table generator for file-system routing",
}

var generateCmd = &cobra.Command{
	Use:   "generate <routesDir> <outputFile>",
	Short: "Generate the route-registration module for a route tree",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")

		var cfg config.Config
		var err error
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
		} else {
			cfg, err = config.LoadDefault()
		}
		if err != nil {
			return err
		}

		opts := generateOptions{
			routesDir:  cfg.Routes,
			outputFile: cfg.Output,
			watch:      cfg.Watch,
			deno:       cfg.Deno,
		}
		if len(args) > 0 {
			opts.routesDir = args[0]
		}
		if len(args) > 1 {
			opts.outputFile = args[1]
		}
		if w, _ := cmd.Flags().GetBool("watch"); w {
			opts.watch = true
		}
		if d, _ := cmd.Flags().GetBool("deno"); d {
			opts.deno = true
		}

		if opts.routesDir == "" || opts.outputFile == "" {
			return errors.New("routesDir and outputFile are required")
		}

		// Past argument validation; runtime failures should not reprint usage.
		cmd.SilenceUsage = true
		return runGenerate(opts)
	},
}

func init() {
	generateCmd.Flags().BoolP("watch", "w", false, "regenerate on every file change under routesDir")
	generateCmd.Flags().Bool("deno", false, "keep source extensions and index names on import specifiers")
	generateCmd.Flags().String("config", "", "config file (default routegen.yaml if present)")
	rootCmd.AddCommand(generateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
