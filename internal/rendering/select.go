package rendering

import "github.com/jdoe/resume-builder/internal/types"

// Canonical theme names.
const (
	ThemeClassicBlue  = "Classic Blue"
	ThemeATSClean     = "ATS Clean"
	ThemeModernNavy   = "Modern Navy"
	ThemeMinimalGrey  = "Minimal Grey"
	ThemeAccentOrange = "Accent Orange"
	ThemeAcademicGrey = "Academic Grey"
	ThemeTechSerif    = "Tech Serif"
)

// Legacy alias names accepted alongside the canonical ones. Matching is
// exact and case-sensitive; aliases are disjoint from canonical names.
const (
	AliasATSFriendly = "ATS Friendly"
	AliasHRFriendly  = "HR Friendly"
	AliasHarshibar   = "Harshibar"
	AliasMaltaCV     = "MaltaCV"
	AliasISI         = "ISI"
	AliasFAANGPath   = "FAANGPath"
)

// themeTable routes recognized theme names, canonical or alias, to their
// renderer. Anything not present here falls back to ClassicBlue.
var themeTable = map[string]*Renderer{
	ThemeClassicBlue:  ClassicBlue,
	ThemeATSClean:     ATSClean,
	AliasATSFriendly:  ATSClean,
	ThemeModernNavy:   ModernNavy,
	AliasHRFriendly:   ModernNavy,
	ThemeMinimalGrey:  MinimalGrey,
	AliasHarshibar:    MinimalGrey,
	ThemeAccentOrange: AccentOrange,
	AliasMaltaCV:      AccentOrange,
	ThemeAcademicGrey: AcademicGrey,
	AliasISI:          AcademicGrey,
	ThemeTechSerif:    TechSerif,
	AliasFAANGPath:    TechSerif,
}

// Select returns the renderer for the resume's recorded theme name. An
// unrecognized or absent theme routes to the ClassicBlue default.
func Select(resume *types.Resume) *Renderer {
	if resume == nil {
		return ClassicBlue
	}
	if r, ok := themeTable[resume.Template.Theme]; ok {
		return r
	}
	return ClassicBlue
}

// Render selects the renderer for the resume's theme and renders it.
func Render(resume *types.Resume) (*Document, error) {
	return Select(resume).Render(resume)
}

// AllThemes returns the canonical theme catalog in display order.
func AllThemes() []string {
	return []string{
		ThemeClassicBlue,
		ThemeATSClean,
		ThemeModernNavy,
		ThemeMinimalGrey,
		ThemeAccentOrange,
		ThemeAcademicGrey,
		ThemeTechSerif,
	}
}

// FreeThemes returns the themes available without a premium subscription.
func FreeThemes() []string {
	return []string{
		ThemeClassicBlue,
		ThemeATSClean,
		ThemeMinimalGrey,
		ThemeTechSerif,
	}
}

// ThemesFor returns the themes available for a subscription plan.
func ThemesFor(premium bool) []string {
	if premium {
		return AllThemes()
	}
	return FreeThemes()
}
