package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jdoe/resume-builder/internal/rendering"
)

// A4 paper size in inches for PrintToPDF.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// DefaultTimeout bounds one headless-browser session, including startup.
const DefaultTimeout = 60 * time.Second

// Exporter converts rendered documents to PDF via headless Chrome.
// Requires Chrome/Chromium on the system; CHROME_PATH overrides discovery.
type Exporter struct {
	Timeout time.Duration
}

// NewExporter returns an Exporter with the default timeout.
func NewExporter() *Exporter {
	return &Exporter{Timeout: DefaultTimeout}
}

// PDF rasterizes the document onto A4 pages. Content is measured after
// layout inside the browser; when it overflows the A4 pixel box the print
// is scaled down by the fit factor, never up.
func (e *Exporter) PDF(ctx context.Context, doc *rendering.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	tmpDir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(doc.HTML), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var pdfBuf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Measure only after the body is laid out; a pre-layout read
			// would report a stale or zero-sized box.
			var dims [2]float64
			if err := chromedp.Evaluate(
				`[document.documentElement.scrollWidth, document.documentElement.scrollHeight]`,
				&dims,
			).Do(ctx); err != nil {
				return fmt.Errorf("failed to measure content: %w", err)
			}

			scale, _, _ := FitBox(dims[0], dims[1])

			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithScale(scale).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print document: %w", err)
	}

	return pdfBuf, nil
}
