// Command schemagen reads a JSON Schema document from standard input
// (JSON or YAML) and writes the regex it compiles to, followed by the
// regex's length, to standard output.
//
// Usage:
//
//	schemagen [flags] < schema.json
//
// Flags:
//
//	--whitespace string   override the whitespace regex fragment between tokens
//	--max-depth int       maximum $ref recursion depth (default 3)
//	--locale string       locale for error messages (default "en")
//	--config string       optional YAML/JSON config file
//	--verbose             log each compilation stage
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kaptinlin/outlines-go/locales"
	"github.com/kaptinlin/outlines-go/schema"
)

var (
	flagWhitespace string
	flagMaxDepth   int
	flagLocale     string
	flagConfig     string
	flagVerbose    bool
)

func init() {
	rootCmd.Flags().StringVar(&flagWhitespace, "whitespace", "", "override the whitespace regex fragment between tokens")
	rootCmd.Flags().IntVar(&flagMaxDepth, "max-depth", 0, "maximum $ref recursion depth (default 3)")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "locale for error messages (default \"en\")")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML/JSON config file")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log each compilation stage")
}

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Compile a JSON Schema document into a constrained-decoding regex",
	Long: `schemagen reads a JSON Schema document (JSON or YAML) from standard
input, compiles it to the regex that constrains valid token sequences
for that schema, and writes the regex followed by its length to
standard output.`,
	SilenceUsage: true,
	RunE:         run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagWhitespace != "" {
		cfg.Whitespace = flagWhitespace
	}
	if flagMaxDepth != 0 {
		cfg.MaxDepth = flagMaxDepth
	}
	if flagLocale != "" {
		cfg.Locale = flagLocale
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	bundle, err := locales.Bundle()
	if err != nil {
		return err
	}
	localizer := bundle.NewLocalizer(cfg.Locale)

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("schemagen: reading stdin: %w", err)
	}

	logger.Sugar().Debugw("read schema document", "bytes", len(input))

	value, err := decodeSchema(input)
	if err != nil {
		return fmt.Errorf("schemagen: %s", locales.Message(localizer, err))
	}

	compiler := schema.NewCompiler().
		WithWhitespacePattern(cfg.Whitespace).
		WithMaxRecursionDepth(cfg.MaxDepth)

	logger.Sugar().Debugw("compiling schema", "maxDepth", cfg.MaxDepth, "whitespace", cfg.Whitespace)

	regex, err := compiler.Compile(value)
	if err != nil {
		return fmt.Errorf("schemagen: %s", locales.Message(localizer, err))
	}

	logger.Sugar().Debugw("compiled schema", "length", len(regex))

	fmt.Fprintln(cmd.OutOrStdout(), regex)
	fmt.Fprintln(cmd.OutOrStdout(), len(regex))
	return nil
}

// decodeSchema parses input with the YAML decoder, which accepts
// plain JSON as a subset, so callers can pipe in either format. The
// result is converted to JSON and decoded again, so numbers reach the
// schema package as float64 like any other decoded JSON value.
func decodeSchema(input []byte) (interface{}, error) {
	var value interface{}
	if err := yaml.Unmarshal(input, &value); err != nil {
		return nil, fmt.Errorf("parsing schema document: %w", err)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("converting schema document to json: %w", err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("converting schema document to json: %w", err)
	}
	return out, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
