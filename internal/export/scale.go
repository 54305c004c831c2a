// Package export converts rendered resume documents into A4 PDFs using a
// headless browser, shrinking oversized content uniformly to fit the page.
package export

// Target page box in CSS pixels, A4 at 96 DPI.
const (
	A4Width  = 794.0
	A4Height = 1123.0
)

// FitScale computes the uniform scale factor that fits content of the given
// pixel dimensions inside the A4 box. The result never exceeds 1: content
// already inside the box is not upscaled. Zero or negative dimensions mean
// the content has not been laid out yet; the fallback is scale 1.
func FitScale(contentWidth, contentHeight float64) float64 {
	if contentWidth <= 0 || contentHeight <= 0 {
		return 1
	}
	scale := 1.0
	if s := A4Width / contentWidth; s < scale {
		scale = s
	}
	if s := A4Height / contentHeight; s < scale {
		scale = s
	}
	return scale
}

// FitBox resolves measured content dimensions against the A4 box. It returns
// the fit scale along with the dimensions that were actually used: when the
// measurement is zero or unavailable the nominal A4 box is substituted.
func FitBox(contentWidth, contentHeight float64) (scale, width, height float64) {
	if contentWidth <= 0 || contentHeight <= 0 {
		return 1, A4Width, A4Height
	}
	return FitScale(contentWidth, contentHeight), contentWidth, contentHeight
}
