package rendering

import (
	"strings"

	"github.com/jdoe/resume-builder/internal/types"
)

// Hardcoded palette fallbacks used when template.colorPalette is absent.
const (
	defaultPrimary   = "#1e40af"
	defaultSecondary = "#3b82f6"
)

// fallback returns s, or def when s is empty.
func fallback(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// paletteColor resolves template.colorPalette[index] with a hardcoded fallback.
func paletteColor(r *types.Resume, index int, def string) string {
	if index < len(r.Template.ColorPalette) && r.Template.ColorPalette[index] != "" {
		return r.Template.ColorPalette[index]
	}
	return def
}

// bulletLines splits multi-line description text into one bullet per line.
// Blank lines produce no bullet.
func bulletLines(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}

// skillNames collects the skill names in display order.
func skillNames(r *types.Resume) []string {
	names := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		names = append(names, s.Name)
	}
	return names
}

// languageNames collects the language names in display order.
func languageNames(r *types.Resume) []string {
	names := make([]string, 0, len(r.Languages))
	for _, l := range r.Languages {
		names = append(names, l.Name)
	}
	return names
}

// certTitles collects the certification titles in display order.
func certTitles(r *types.Resume) []string {
	titles := make([]string, 0, len(r.Certifications))
	for _, c := range r.Certifications {
		titles = append(titles, c.Title)
	}
	return titles
}

// languageView is a language with its proficiency clamped for display.
type languageView struct {
	Name     string
	Progress int
}

// languageViews clamps every proficiency to [0,100] for rendering.
func languageViews(r *types.Resume) []languageView {
	views := make([]languageView, 0, len(r.Languages))
	for _, l := range r.Languages {
		views = append(views, languageView{Name: l.Name, Progress: types.ClampProgress(l.Progress)})
	}
	return views
}
