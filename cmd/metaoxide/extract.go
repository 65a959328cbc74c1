package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yfedoseev/meta-oxide/extractor"
	"github.com/yfedoseev/meta-oxide/internal/dom"
	"github.com/yfedoseev/meta-oxide/internal/errs"
)

type extractFlags struct {
	format      string
	baseURL     string
	urls        []string
	output      string
	outputDir   string
	compact     bool
	yaml        bool
	query       string
	timeout     time.Duration
	maxSize     int
	lenient     bool
	concurrency int
}

func (a *app) extractCmd() *cobra.Command {
	f := &extractFlags{}

	cmd := &cobra.Command{
		Use:   "extract [file...]",
		Short: "Extract structured data from HTML files or URLs",
		Long: `Extract structured data from HTML files, URLs or standard input.

With no file and no --url, the document is read from standard input.
Formats: ` + formatNames() + `.`,
		Example: `  metaoxide extract page.html
  metaoxide extract -f microformats -b https://ex.com/ page.html
  metaoxide extract --url https://ex.com/ --query '.meta.title'
  metaoxide extract --output-dir out/ a.html b.html c.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtract(cmd, f, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.format, "format", "f", "all", "output format")
	flags.StringVarP(&f.baseURL, "base-url", "b", "", "base URL for relative links (defaults to the fetched URL)")
	flags.StringSliceVarP(&f.urls, "url", "u", nil, "fetch and extract a remote document (repeatable)")
	flags.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&f.outputDir, "output-dir", "", "write one output file per input into this directory")
	flags.BoolVar(&f.compact, "compact", false, "output compact JSON without indentation")
	flags.BoolVar(&f.yaml, "yaml", false, "output YAML instead of JSON")
	flags.StringVarP(&f.query, "query", "q", "", "jq expression applied to the result")
	flags.DurationVar(&f.timeout, "timeout", 0, "timeout for one extraction (default from config)")
	flags.IntVar(&f.maxSize, "max-size", 0, "maximum document size in bytes (default from config)")
	flags.BoolVar(&f.lenient, "lenient", false, "repair invalid UTF-8 instead of failing")
	flags.IntVarP(&f.concurrency, "concurrency", "j", 0, "number of documents processed at once (default from config)")

	return cmd
}

func formatNames() string {
	names := make([]string, 0, len(extractor.Formats()))
	for _, f := range extractor.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

func (a *app) runExtract(cmd *cobra.Command, f *extractFlags, args []string) error {
	format, err := extractor.ParseFormat(f.format)
	if err != nil {
		return err
	}
	query, err := compileQuery(f.query)
	if err != nil {
		return err
	}

	cfg := a.cfg
	if f.timeout > 0 {
		cfg.Extract.Timeout = f.timeout
	}
	if f.maxSize > 0 {
		cfg.Extract.MaxBufferSize = f.maxSize
	}
	if f.lenient {
		cfg.Extract.StrictUTF8 = false
	}
	if f.concurrency > 0 {
		cfg.Extract.Concurrency = f.concurrency
	}
	ext := extractor.New(cfg.ExtractorOptions(a.logger)...)

	var sources []source
	for _, name := range args {
		sources = append(sources, source{name: name})
	}
	for _, u := range f.urls {
		sources = append(sources, source{name: u, isURL: true})
	}
	if len(sources) == 0 {
		sources = []source{{name: "-"}}
	}
	if f.output != "" && len(sources) > 1 {
		return errs.WrapInputError(fmt.Errorf("--output needs a single input, got %d", len(sources)), "extract", "use --output-dir")
	}

	opts := renderOptions{compact: f.compact, yaml: f.yaml, query: query}
	outputs := make([][]byte, len(sources))
	failures := make([]error, len(sources))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(cfg.Extract.Concurrency)
	for i, src := range sources {
		g.Go(func() error {
			out, err := a.extractOne(ctx, ext, format, src, cmd.InOrStdin(), f.baseURL, cfg.Extract.MaxBufferSize, opts)
			if err != nil {
				a.logger.Error("extraction failed", slog.String("input", src.name), slog.Any("err", err))
				failures[i] = err
				return nil
			}
			outputs[i] = out
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	if err := a.writeOutputs(cmd.OutOrStdout(), f, sources, outputs); err != nil {
		return err
	}

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	switch {
	case failed == 1 && len(sources) == 1:
		return failures[0]
	case failed > 0:
		return fmt.Errorf("%d of %d inputs failed", failed, len(sources))
	}
	return nil
}

func (a *app) extractOne(ctx context.Context, ext extractor.Extractor, format extractor.Format,
	src source, stdin io.Reader, baseURL string, maxSize int, opts renderOptions,
) ([]byte, error) {
	d, err := a.load(ctx, src, stdin, maxSize)
	if err != nil {
		return nil, err
	}
	if len(d.body) > 0 {
		if err := checkText(d.body); err != nil {
			return nil, err
		}
	}

	doc, err := dom.DecodeReader(d.reader(), d.contentType)
	if err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = d.url
	}

	v, err := ext.ExtractFormat(format, doc, baseURL)
	if err != nil {
		return nil, err
	}
	return render(v, opts)
}

func (a *app) writeOutputs(stdout io.Writer, f *extractFlags, sources []source, outputs [][]byte) error {
	if f.outputDir != "" {
		if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
			return err
		}
	}

	for i, out := range outputs {
		if out == nil {
			continue
		}

		switch {
		case f.outputDir != "":
			path := filepath.Join(f.outputDir, outputName(sources[i], i, f.yaml))
			if err := os.WriteFile(path, out, 0o644); err != nil {
				return err
			}
			a.logger.Info("processed", slog.String("input", sources[i].name), slog.String("output", path))
		case f.output != "":
			if err := os.WriteFile(f.output, out, 0o644); err != nil {
				return err
			}
		default:
			if _, err := stdout.Write(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// outputName derives an output file name from a source.
func outputName(src source, i int, asYAML bool) string {
	ext := ".json"
	if asYAML {
		ext = ".yaml"
	}

	var name string
	switch {
	case src.isURL:
		name = strings.Trim(strings.NewReplacer("https://", "", "http://", "", "/", "_", "?", "_", "&", "_", ":", "_").Replace(src.name), "_")
	case src.name == "-":
		name = "stdin"
	default:
		base := filepath.Base(src.name)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if name == "" {
		name = fmt.Sprintf("input-%d", i+1)
	}
	return name + ext
}
