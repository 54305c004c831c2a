package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/types"
)

func resumeWithTheme(theme string) *types.Resume {
	return &types.Resume{Template: types.Template{Theme: theme}}
}

func TestSelect_CanonicalNames(t *testing.T) {
	for _, theme := range AllThemes() {
		r := Select(resumeWithTheme(theme))
		require.NotNil(t, r, theme)
		assert.Equal(t, theme, r.Name)
	}
}

func TestSelect_Aliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{AliasATSFriendly, ThemeATSClean},
		{AliasHRFriendly, ThemeModernNavy},
		{AliasHarshibar, ThemeMinimalGrey},
		{AliasMaltaCV, ThemeAccentOrange},
		{AliasISI, ThemeAcademicGrey},
		{AliasFAANGPath, ThemeTechSerif},
	}
	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			r := Select(resumeWithTheme(tt.alias))
			assert.Equal(t, tt.want, r.Name)
		})
	}
}

func TestSelect_UnknownFallsBackToDefault(t *testing.T) {
	for _, theme := range []string{"", "Bauhaus", "classic blue", "ATS CLEAN"} {
		r := Select(resumeWithTheme(theme))
		assert.Equal(t, ThemeClassicBlue, r.Name, "theme %q", theme)
	}
}

func TestSelect_NilResume(t *testing.T) {
	assert.Equal(t, ThemeClassicBlue, Select(nil).Name)
}

func TestSelect_ThemeSwitch(t *testing.T) {
	resume := &types.Resume{}
	assert.Equal(t, ThemeClassicBlue, Select(resume).Name)

	resume.Template.Theme = AliasHarshibar
	assert.Equal(t, ThemeMinimalGrey, Select(resume).Name)
}

func TestAllThemes(t *testing.T) {
	themes := AllThemes()
	assert.Len(t, themes, 7)
	assert.Equal(t, ThemeClassicBlue, themes[0])

	// Every catalog entry routes to a renderer of the same name.
	for _, theme := range themes {
		r, ok := themeTable[theme]
		require.True(t, ok, theme)
		assert.Equal(t, theme, r.Name)
	}
}

func TestFreeThemes(t *testing.T) {
	free := FreeThemes()
	assert.Equal(t, []string{ThemeClassicBlue, ThemeATSClean, ThemeMinimalGrey, ThemeTechSerif}, free)
}

func TestThemesFor(t *testing.T) {
	assert.Equal(t, AllThemes(), ThemesFor(true))
	assert.Equal(t, FreeThemes(), ThemesFor(false))
}
