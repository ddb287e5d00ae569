// markdoc converts a markdown document into an HTML document, with
// support for emphasis, tables, fenced code, images and LaTeX math.
//
// Usage:
//
//	markdoc [flags] document.md
package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/npillmayer/markdoc/backend/htmldoc"
	"github.com/npillmayer/markdoc/core"
	"github.com/npillmayer/markdoc/formula"
	"github.com/npillmayer/markdoc/input/markdown"
	"github.com/npillmayer/markdoc/resources"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	outputFlag  string
	timeoutFlag time.Duration
	traceFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "markdoc [flags] document.md",
	Short: "Convert a markdown document to HTML",
	Long: `markdoc scans a markdown document and renders it as HTML.
Emphasis, tables, fenced code blocks, images and LaTeX formulas
($…$, \(…\), $$…$$, \[…\]) are preserved. Formulas that do not parse
and images that cannot be fetched degrade to literal text or a
placeholder; they never abort the conversion.`,
	Args:          cobra.ExactArgs(1),
	RunE:          convert,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "output file (default: input with .html)")
	rootCmd.Flags().DurationVar(&timeoutFlag, "image-timeout", resources.DefaultTimeout, "time bound for remote image fetches")
	rootCmd.Flags().StringVar(&traceFlag, "trace", "info", "trace level (debug|info|error)")
}

func convert(cmd *cobra.Command, args []string) error {
	setupTracing(traceFlag)
	resources.SetFetchTimeout(timeoutFlag)
	input := args[0]
	output := outputFlag
	if output == "" {
		output = stripMarkdownExt(input) + ".html"
	}

	doc := htmldoc.NewDocument(filepath.Dir(input), formula.NewBridge())
	if err := markdown.ConvertFile(input, doc); err != nil {
		return err
	}
	out, err := os.Create(output)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot create output file %s", output)
	}
	defer out.Close()
	if err := doc.WriteTo(out); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write output file %s", output)
	}
	gtrace.CoreTracer.Infof("wrote %s", output)
	return nil
}

// stripMarkdownExt drops the markdown file extension, if any.
func stripMarkdownExt(path string) string {
	ext := filepath.Ext(path)
	switch ext {
	case ".md", ".markdown", ".mdown":
		return path[:len(path)-len(ext)]
	}
	return path
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	lvl := tracing.LevelInfo
	switch level {
	case "debug":
		lvl = tracing.LevelDebug
	case "error":
		lvl = tracing.LevelError
	}
	gtrace.CoreTracer.SetTraceLevel(lvl)
	for _, key := range []string{"markdoc.scan", "markdoc.formula", "markdoc.resources", "markdoc.backend"} {
		tracing.Select(key).SetTraceLevel(lvl)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}
