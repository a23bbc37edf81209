package infrastructure

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for the print pipeline.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	mmPerInch     = 25.4
)

// PrintOptions configures one rasterization pass.
type PrintOptions struct {
	// MarginMM is applied uniformly to all four sides. The rendered
	// document ships with zero internal padding so this is the only margin
	// on the page.
	MarginMM float64
	// Scale is the print scale factor; zero means 1.0.
	Scale float64
	// PageNumbers stamps a centered "Page i of N" footer inside the bottom
	// margin band of every page.
	PageNumbers bool
}

const pageFooter = `<div style="width:100%;font-size:10px;color:#646464;text-align:center;margin-bottom:4mm;">Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// ChromeRasterizer prints rendered documents to PDF through a headless
// Chrome instance, one browser per call.
type ChromeRasterizer struct {
	chromePath string
	timeout    time.Duration
}

// NewChromeRasterizer builds a rasterizer. chromePath may be empty, in which
// case chromedp resolves the browser from PATH.
func NewChromeRasterizer(chromePath string) *ChromeRasterizer {
	return &ChromeRasterizer{chromePath: chromePath, timeout: 60 * time.Second}
}

// PrintToPDF navigates to url (normally a file:// scaffold written by the
// exporter) and returns the paginated A4 portrait PDF. Page-break behavior
// honors the document's break-inside annotations, so atomic units are not
// split across pages.
func (r *ChromeRasterizer) PrintToPDF(ctx context.Context, url string, opt PrintOptions) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	runCtx, cancelRun := context.WithTimeout(cctx, r.timeout)
	defer cancelRun()

	marginIn := opt.MarginMM / mmPerInch
	scale := opt.Scale
	if scale == 0 {
		scale = 1.0
	}

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Let pending fonts settle so measured text width is final.
			// Best effort only; an unsupported API must not fail the export.
			_, _, _ = runtime.Evaluate(`document.fonts && document.fonts.ready`).
				WithAwaitPromise(true).Do(ctx)
			return nil
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			params := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithScale(scale)
			if opt.PageNumbers {
				params = params.
					WithDisplayHeaderFooter(true).
					WithHeaderTemplate(`<span></span>`).
					WithFooterTemplate(pageFooter)
			}
			var err error
			pdf, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdf, nil
}
