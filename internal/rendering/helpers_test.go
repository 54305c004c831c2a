package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdoe/resume-builder/internal/types"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, "value", fallback("value", "default"))
	assert.Equal(t, "default", fallback("", "default"))
}

func TestPaletteColor(t *testing.T) {
	r := &types.Resume{
		Template: types.Template{ColorPalette: []string{"#111111", ""}},
	}

	assert.Equal(t, "#111111", paletteColor(r, 0, defaultPrimary))
	assert.Equal(t, defaultSecondary, paletteColor(r, 1, defaultSecondary), "empty entry falls back")
	assert.Equal(t, defaultPrimary, paletteColor(r, 2, defaultPrimary), "missing index falls back")

	empty := &types.Resume{}
	assert.Equal(t, defaultPrimary, paletteColor(empty, 0, defaultPrimary))
}

func TestBulletLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single line", "Shipped the thing", []string{"Shipped the thing"}},
		{"multi line", "First\nSecond\nThird", []string{"First", "Second", "Third"}},
		{"blank lines dropped", "First\n\n  \nSecond", []string{"First", "Second"}},
		{"whitespace trimmed", "  padded  ", []string{"padded"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bulletLines(tt.text))
		})
	}
}

func TestSkillNames(t *testing.T) {
	r := &types.Resume{
		Skills: []types.Skill{{Name: "Go"}, {Name: "SQL"}, {Name: "Docker"}},
	}
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, skillNames(r))
	assert.Empty(t, skillNames(&types.Resume{}))
}

func TestLanguageViews_Clamped(t *testing.T) {
	r := &types.Resume{
		Languages: []types.Language{
			{Name: "English", Progress: 150},
			{Name: "French", Progress: -5},
			{Name: "German", Progress: 80},
		},
	}

	views := languageViews(r)
	assert.Equal(t, []languageView{
		{Name: "English", Progress: 100},
		{Name: "French", Progress: 0},
		{Name: "German", Progress: 80},
	}, views)
}

func TestCertTitles(t *testing.T) {
	r := &types.Resume{
		Certifications: []types.Certification{
			{Title: "Cloud Architect", Issuer: "Vendor"},
			{Title: "Security+"},
		},
	}
	assert.Equal(t, []string{"Cloud Architect", "Security+"}, certTitles(r))
}
