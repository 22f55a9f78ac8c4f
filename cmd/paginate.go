// Package cmd — paginate command.
// This is the main command that orchestrates the pipeline:
// load → extract → normalize → paginate → render → write.
//
// It handles flag validation, renderer selection, and single-source vs
// --all (table of contents) runs.
package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/1Seob/Flik-v2-sub000/core"
	"github.com/1Seob/Flik-v2-sub000/core/extract"
	"github.com/1Seob/Flik-v2-sub000/core/fetch"
	"github.com/1Seob/Flik-v2-sub000/core/output"
	"github.com/1Seob/Flik-v2-sub000/core/pipeline"
	"github.com/1Seob/Flik-v2-sub000/core/render"
	"github.com/1Seob/Flik-v2-sub000/crawl"
	"github.com/1Seob/Flik-v2-sub000/log"
)

// Flag variables.
var (
	flagAll          bool
	flagText         bool
	flagPDF          bool
	flagMarkdown     bool
	flagJSON         bool
	flagFormat       string
	flagSelector     string
	flagLinkSelector string
	flagMarkup       bool
	flagMaxLogical   int
	flagNewlineCost  int
	flagNFC          bool
	flagFont         string
	flagOutputDir    string
)

var paginateCmd = &cobra.Command{
	Use:   "paginate <source>",
	Short: "Paginate a book source into reading pages",
	Long: `Paginate loads a paragraph set (a JSON object keyed "0", "1", ... or an
HTML/XHTML chapter), normalizes every paragraph, packs them into pages of a
fixed logical capacity and writes the pages in the chosen output format.

The source may be a local file or an http(s) URL. With --all the source is a
table-of-contents page and every chapter it links to is paginated separately.

Examples:
  flik paginate book.json --text
  flik paginate chapter-01.xhtml --json --output_dir ./out
  flik paginate https://books.example/novel/toc.html --all --markdown
  flik paginate book.json --pdf --font ./NanumMyeongjo.ttf`,
	Args: cobra.ExactArgs(1),
	RunE: runPaginate,
}

func init() {
	rootCmd.AddCommand(paginateCmd)

	// Mode flag.
	paginateCmd.Flags().BoolVar(&flagAll, "all", false, "Treat the source as a table of contents and paginate every chapter")

	// Output format flags (mutually exclusive).
	paginateCmd.Flags().BoolVar(&flagText, "text", false, "Output plain text, pages separated by form feeds")
	paginateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	paginateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	paginateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Source flags.
	paginateCmd.Flags().StringVar(&flagFormat, "format", extract.FormatAuto, "Source format: auto, json or html")
	paginateCmd.Flags().StringVar(&flagSelector, "selector", extract.DefaultSelector, "CSS selector for paragraphs in HTML sources")
	paginateCmd.Flags().StringVar(&flagLinkSelector, "link_selector", crawl.DefaultLinkSelector, "CSS selector for chapter links with --all")
	paginateCmd.Flags().BoolVar(&flagMarkup, "markup", false, "Keep inline emphasis from HTML sources as Markdown")

	// Layout flags; override the config file when set.
	paginateCmd.Flags().IntVar(&flagMaxLogical, "max_logical", 0, "Page capacity in logical units (default from config, 300)")
	paginateCmd.Flags().IntVar(&flagNewlineCost, "newline_cost", 0, "Logical cost of a paragraph separator (default from config, 20)")
	paginateCmd.Flags().BoolVar(&flagNFC, "nfc", false, "Compose text to Unicode NFC before counting")
	paginateCmd.Flags().StringVar(&flagFont, "font", "", "TrueType font for PDF output (needed for Hangul)")

	// Output directory.
	paginateCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// job holds the components shared by every source in one run.
type job struct {
	fetcher  core.Fetcher
	pipeline *pipeline.Pipeline
	renderer core.Renderer
	writer   *output.Writer
	out      io.Writer
}

func runPaginate(cmd *cobra.Command, args []string) error {
	src := args[0]

	// --- Validate flags ---
	if err := validateFlags(); err != nil {
		return err
	}
	if flagAll && !fetch.IsURL(src) {
		return fmt.Errorf("--all needs an http(s) table of contents URL, got %s", src)
	}

	applyFlagOverrides(cmd)
	if err := cfg.Validate(); err != nil {
		return err
	}

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	normalizer, err := cfg.Normalizer()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	j := &job{
		fetcher:  fetch.New(),
		pipeline: pipeline.New(normalizer, cfg.Paginator()),
		renderer: renderer,
		writer:   writer,
		out:      cmd.OutOrStdout(),
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagAll {
		return j.runAll(ctx, src)
	}
	return j.runOnly(ctx, src)
}

// runOnly processes a single source through the pipeline.
func (j *job) runOnly(ctx context.Context, src string) error {
	doc, err := fetch.Source(ctx, src, j.fetcher)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	data, stats, err := j.process(src, doc)
	if err != nil {
		return err
	}

	path, err := j.writer.WriteSource(src, data, j.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(j.out, "✓ Written: %s (%d pages)\n", path, stats.Pages)
	return nil
}

// runAll discovers every chapter linked from a table of contents and
// paginates each one separately.
func (j *job) runAll(ctx context.Context, tocURL string) error {
	fmt.Fprintf(j.out, "Discovering chapters from %s...\n", tocURL)

	chapters, err := crawl.DiscoverChapters(ctx, tocURL, j.fetcher, flagLinkSelector)
	if err != nil {
		return fmt.Errorf("discovering chapters: %w", err)
	}
	if len(chapters) == 0 {
		return fmt.Errorf("no chapter links found on %s", tocURL)
	}

	fmt.Fprintf(j.out, "Found %d chapters to process\n", len(chapters))

	var errCount int
	for i, chapterURL := range chapters {
		fmt.Fprintf(j.out, "[%d/%d] Processing %s\n", i+1, len(chapters), chapterURL)

		doc, err := fetch.Source(ctx, chapterURL, j.fetcher)
		if err != nil {
			log.Errorf("chapter %s: load: %v", chapterURL, err)
			errCount++
			continue
		}

		data, stats, err := j.process(chapterURL, doc)
		if err != nil {
			log.Errorf("chapter %s: %v", chapterURL, err)
			errCount++
			continue
		}

		path, err := j.writer.WriteChapter(chapterURL, data, j.renderer.Extension())
		if err != nil {
			log.Errorf("chapter %s: write: %v", chapterURL, err)
			errCount++
			continue
		}
		fmt.Fprintf(j.out, "  ✓ Written: %s (%d pages)\n", path, stats.Pages)
	}

	if errCount > 0 {
		log.Warnf("%d/%d chapters failed", errCount, len(chapters))
	}
	log.Infof("%d/%d chapters written from %s", len(chapters)-errCount, len(chapters), tocURL)
	if errCount == len(chapters) {
		return fmt.Errorf("all %d chapters failed", errCount)
	}
	return nil
}

// process runs one loaded source through extraction, pagination and rendering.
func (j *job) process(src string, doc []byte) ([]byte, core.Stats, error) {
	format := flagFormat
	if format == extract.FormatAuto {
		format = extract.Detect(src, doc)
	}

	extractor, err := selectExtractor(format)
	if err != nil {
		return nil, core.Stats{}, err
	}

	// 1. Extract paragraphs
	set, err := extractor.Extract(doc)
	if err != nil {
		return nil, core.Stats{}, fmt.Errorf("extract: %w", err)
	}

	// 2. Normalize and paginate
	pages, stats := j.pipeline.Run(set)
	log.Debugf("%s: %d paragraphs, %d dropped, %d pages", src, stats.Paragraphs, stats.Dropped, stats.Pages)
	if stats.OverflowPages > 0 {
		log.Warnf("%s: %d pages hold a single sentence longer than %d logical units",
			src, stats.OverflowPages, j.pipeline.Paginator.MaxLogical)
	}

	// 3. Render
	meta := buildMetadata(src, format, doc)
	data, err := j.renderer.Render(pages, meta, stats)
	if err != nil {
		return nil, core.Stats{}, fmt.Errorf("render: %w", err)
	}
	return data, stats, nil
}

// buildMetadata describes a source for the renderers.
func buildMetadata(src, format string, doc []byte) core.BookMetadata {
	title := ""
	if format == extract.FormatHTML {
		title = extract.Title(doc)
	}
	if title == "" {
		base := filepath.Base(strings.TrimRight(src, "/"))
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return core.BookMetadata{
		Source:      src,
		Title:       title,
		Format:      format,
		MaxLogical:  cfg.Pagination.MaxLogical,
		NewlineCost: cfg.Pagination.NewlineCost,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// applyFlagOverrides copies explicitly set layout flags over the config.
func applyFlagOverrides(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("max_logical") {
		cfg.Pagination.MaxLogical = flagMaxLogical
	}
	if flags.Changed("newline_cost") {
		cfg.Pagination.NewlineCost = flagNewlineCost
	}
	if flags.Changed("nfc") {
		cfg.Normalize.NFC = flagNFC
	}
	if flags.Changed("font") {
		cfg.Render.FontPath = flagFont
	}
}

// validateFlags checks that exactly one output format is chosen and that
// the source format is known.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagText, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return fmt.Errorf("exactly one output format is required: --text, --markdown, --json, or --pdf")
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch flagFormat {
	case extract.FormatAuto, extract.FormatJSON, extract.FormatHTML:
	default:
		return fmt.Errorf("unknown --format %q: want auto, json or html", flagFormat)
	}
	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
func selectRenderer() (core.Renderer, error) {
	switch {
	case flagText:
		return render.NewTextRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	case flagPDF:
		return render.NewPDFRenderer(cfg.Render.FontPath), nil
	default:
		return nil, fmt.Errorf("no output format selected")
	}
}

// selectExtractor creates the Extractor for a source format.
func selectExtractor(format string) (core.Extractor, error) {
	switch format {
	case extract.FormatJSON:
		return extract.JSONExtractor{}, nil
	case extract.FormatHTML:
		return extract.New(flagSelector, flagMarkup), nil
	default:
		return nil, fmt.Errorf("unknown source format %q", format)
	}
}
