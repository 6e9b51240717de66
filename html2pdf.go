package resumemd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-resumemd/internal/fileutil"
	"github.com/alnah/go-resumemd/internal/process"
)

// layoutEngine renders HTML in a browser. Measure reports block sizes of a
// flow document; PrintPDF prints an already paged document.
type layoutEngine interface {
	Measure(ctx context.Context, htmlContent string) (*Layout, error)
	PrintPDF(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ layoutEngine = (*rodEngine)(nil)

// Layout is the measured geometry of a flow document, in CSS pixels.
// Capacity is the usable height of one page; zero means it could not be
// measured.
type Layout struct {
	Capacity float64 `json:"capacity"`
	Blocks   []Block `json:"blocks"`
}

// measureScript reads the usable height of the first page and the box of
// every [data-block] element, margins included.
const measureScript = `() => {
  const px = (v) => {
    const n = Number.parseFloat(v);
    return Number.isFinite(n) ? n : 0;
  };
  let capacity = 0;
  const page = document.querySelector('.page');
  if (page) {
    const style = window.getComputedStyle(page);
    capacity = page.getBoundingClientRect().height - px(style.paddingTop) - px(style.paddingBottom);
  }
  const blocks = Array.from(document.querySelectorAll('[data-block]')).map((el) => {
    const style = window.getComputedStyle(el);
    return {
      height: el.getBoundingClientRect().height,
      marginTop: px(style.marginTop),
      marginBottom: px(style.marginBottom),
    };
  });
  return JSON.stringify({ capacity, blocks });
}`

// fontsReadyScript resolves once web fonts have loaded, so measured heights
// match the printed ones.
const fontsReadyScript = `() => document.fonts ? document.fonts.ready.then(() => true) : true`

// rodEngine implements layoutEngine with headless Chrome via go-rod.
// Rod downloads Chromium on first use if no browser is found.
type rodEngine struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodEngine(timeout time.Duration) *rodEngine {
	return &rodEngine{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (e *rodEngine) ensureBrowser() error {
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Pre-installed browser for containers.
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		e.killLauncher(l)
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.launcher = l
	e.browser = browser
	return nil
}

// Close closes the browser and kills any Chrome process left behind.
func (e *rodEngine) Close() error {
	var err error
	if e.browser != nil {
		err = e.browser.Close()
		e.browser = nil
	}
	if e.launcher != nil {
		e.killLauncher(e.launcher)
		e.launcher = nil
	}
	return err
}

func (e *rodEngine) killLauncher(l *launcher.Launcher) {
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
	l.Cleanup()
}

// Measure loads a flow document and reports its page capacity and block
// sizes in document order.
func (e *rodEngine) Measure(ctx context.Context, htmlContent string) (*Layout, error) {
	var layout *Layout
	err := e.withPage(ctx, htmlContent, func(page *rod.Page) error {
		res, err := page.Eval(measureScript)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMeasure, err)
		}
		layout, err = parseLayout([]byte(res.Value.Str()))
		return err
	})
	if err != nil {
		return nil, err
	}
	return layout, nil
}

// PrintPDF prints a paged document to A4 without margins; page padding is
// part of each .page element.
func (e *rodEngine) PrintPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	var pdf []byte
	err := e.withPage(ctx, htmlContent, func(page *rod.Page) error {
		reader, err := page.PDF(buildPDFOptions())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
		}
		pdf, err = io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// withPage writes htmlContent to a temp file, opens it and waits for load
// and fonts before calling fn. The page and file are released afterwards.
func (e *rodEngine) withPage(ctx context.Context, htmlContent string, fn func(*rod.Page) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := e.ensureBrowser(); err != nil {
		return err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout, err := effectiveTimeout(ctx, e.timeout)
	if err != nil {
		return err
	}
	page = page.Context(ctx).Timeout(timeout)

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if _, err := page.Eval(fontsReadyScript); err != nil {
		return fmt.Errorf("%w: waiting for fonts: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(page)
}

// effectiveTimeout is the time left before the context deadline, or the
// engine timeout when the context has none.
func effectiveTimeout(ctx context.Context, fallback time.Duration) (time.Duration, error) {
	deadline, ok := ctx.Deadline()
	if !ok {
		return fallback, nil
	}
	left := time.Until(deadline)
	if left <= 0 {
		return 0, context.DeadlineExceeded
	}
	return left, nil
}

// parseLayout decodes the measurement script result. Negative or non-finite
// sizes are clamped to zero so pagination never sees them.
func parseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("%w: decoding layout: %v", ErrMeasure, err)
	}
	layout.Capacity = finiteNonNegative(layout.Capacity)
	for i := range layout.Blocks {
		b := &layout.Blocks[i]
		b.Height = finiteNonNegative(b.Height)
		b.MarginTop = finiteNonNegative(b.MarginTop)
		b.MarginBottom = finiteNonNegative(b.MarginBottom)
	}
	return &layout, nil
}

func finiteNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// buildPDFOptions prints at A4 with zero margins. CSS page size wins so
// @page rules in custom styles apply.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(A4WidthMm / mmPerInch),
		PaperHeight:       floatPtr(A4HeightMm / mmPerInch),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
