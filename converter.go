package resumemd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/alnah/go-resumemd/internal/assets"
	"github.com/alnah/go-resumemd/internal/fileutil"
	"github.com/alnah/go-resumemd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector   = (*pipeline.CSSInjection)(nil)
	_ AssetLoader            = (*assetLoaderAdapter)(nil)
)

// Input is one résumé to convert.
type Input struct {
	// Markdown is the résumé source, front matter included.
	Markdown string

	// SourceDir, when set, turns relative links and images into file:// URLs
	// rooted there.
	SourceDir string

	// Typography overrides the converter's typography for this input.
	Typography *TypographySettings

	// CSS is appended after every built-in sheet.
	CSS string

	// HTMLOnly stops after the paged HTML; no PDF is printed. The browser is
	// still used to measure blocks.
	HTMLOnly bool
}

// ConvertResult holds every intermediate product of a conversion.
type ConvertResult struct {
	Resume   *Resume
	Warnings []Warning
	Blocks   []PreviewBlock
	Sizes    []Block
	Capacity float64
	Breaks   []int
	HTML     []byte
	PDF      []byte
}

// Pages returns the number of pages in the result.
func (r *ConvertResult) Pages() int {
	return len(SplitPages(len(r.Blocks), r.Breaks))
}

// Converter turns résumé Markdown into paged HTML and PDF:
// parse, render blocks, measure them in a browser, paginate, print.
// Create with NewConverter and Close when done. A Converter owns one browser
// and is not safe for concurrent Convert calls; use a ConverterPool for that.
type Converter struct {
	cfg               converterConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader
	htmlConverter     pipeline.HTMLConverter
	cssInjector       pipeline.CSSInjector
	renderer          *previewRenderer
	engine            layoutEngine
	paginator         Paginator
}

// NewConverter creates a Converter. Options are applied in order.
// Returns an error if the assets or typography are invalid.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:    defaultTimeout,
			typography: DefaultTypography(),
		},
		assetLoader:   &assetLoaderAdapter{loader: assets.NewEmbeddedLoader()},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		loader, err := NewAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
	}

	if err := c.cfg.typography.Validate(); err != nil {
		return nil, err
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := c.assetLoader.LoadTemplate(DefaultTemplate)
	if err != nil {
		return nil, fmt.Errorf("loading template %q: %w", DefaultTemplate, err)
	}
	c.renderer, err = newPreviewRenderer(tmpl, c.htmlConverter)
	if err != nil {
		return nil, err
	}

	if c.engine == nil {
		c.engine = newRodEngine(c.cfg.timeout)
	}
	return c, nil
}

// Convert runs the full pipeline. Parse warnings are returned in the result,
// never as errors. Recovers from internal panics so they do not reach callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	typography := c.cfg.typography
	if input.Typography != nil {
		if err := input.Typography.Validate(); err != nil {
			return nil, err
		}
		typography = *input.Typography
	}

	resume, warnings, err := ParseWithWarnings(input.Markdown)
	if err != nil {
		return nil, err
	}

	blocks, err := c.renderer.blocks(ctx, resume)
	if err != nil {
		return nil, fmt.Errorf("rendering blocks: %w", err)
	}

	sheets, err := c.stylesheets(typography, input.CSS)
	if err != nil {
		return nil, err
	}
	title := resume.Basics.Name
	if title == "" {
		title = PlaceholderName
	}

	flow, err := c.renderDocument(ctx, blocks, nil, modeMeasure, title, typography.ExperienceStyle, input.SourceDir, sheets)
	if err != nil {
		return nil, err
	}
	layout, err := c.engine.Measure(ctx, flow)
	if err != nil {
		return nil, fmt.Errorf("measuring blocks: %w", err)
	}
	if len(layout.Blocks) != len(blocks) {
		return nil, fmt.Errorf("%w: measured %d blocks, rendered %d", ErrMeasure, len(layout.Blocks), len(blocks))
	}

	capacity := ResolveCapacity(layout.Capacity)
	breaks := slices.Clone(c.paginator.Paginate(layout.Blocks, capacity))

	paged, err := c.renderDocument(ctx, blocks, SplitPages(len(blocks), breaks), modePrint, title, typography.ExperienceStyle, input.SourceDir, sheets)
	if err != nil {
		return nil, err
	}

	res := &ConvertResult{
		Resume:   resume,
		Warnings: warnings,
		Blocks:   blocks,
		Sizes:    layout.Blocks,
		Capacity: capacity,
		Breaks:   breaks,
		HTML:     []byte(paged),
	}
	if input.HTMLOnly {
		return res, nil
	}

	pdf, err := c.engine.PrintPDF(ctx, paged)
	if err != nil {
		return nil, fmt.Errorf("printing PDF: %w", err)
	}
	res.PDF = pdf
	return res, nil
}

// Close releases the browser.
func (c *Converter) Close() error {
	if c.engine != nil {
		return c.engine.Close()
	}
	return nil
}

// renderDocument assembles a document, injects the stylesheets and rewrites
// relative paths.
func (c *Converter) renderDocument(ctx context.Context, blocks []PreviewBlock, pages [][]int, mode, title string, style ExperienceStyle, sourceDir string, sheets []string) (string, error) {
	doc, err := c.renderer.document(blocks, pages, mode, title, style)
	if err != nil {
		return "", err
	}
	doc = c.cssInjector.InjectCSS(ctx, doc, sheets...)
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if sourceDir != "" {
		doc, err = pipeline.RewriteRelativePaths(doc, sourceDir)
		if err != nil {
			return "", fmt.Errorf("rewriting relative paths: %w", err)
		}
	}
	return doc, nil
}

// stylesheets returns the sheets in cascade order: base, experience variant,
// typography variables, user CSS. A missing variant sheet is not an error.
func (c *Converter) stylesheets(t TypographySettings, userCSS string) ([]string, error) {
	variant, err := c.assetLoader.LoadStyle(string(t.ExperienceStyle))
	if err != nil && !errors.Is(err, ErrStyleNotFound) {
		return nil, fmt.Errorf("loading %s style: %w", t.ExperienceStyle, err)
	}
	return []string{c.cfg.resolvedStyle, variant, buildTypographyCSS(&t), userCSS}, nil
}

// resolveStyle turns the style option (name, path, or CSS) into CSS content.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// CSS first: a comment such as /* x */ would otherwise look like a path.
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}
