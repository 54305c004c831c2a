package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jdoe/resume-builder/internal/types"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resume := &types.Resume{
		ProfileInfo: types.ProfileInfo{
			FullName:    "Jane Doe",
			Designation: "Software Engineer",
		},
		Template: types.Template{Theme: "Minimal Grey"},
		Skills:   []types.Skill{{Name: "Go"}, {Name: "SQL"}},
		Languages: []types.Language{
			{Name: "English", Progress: 100},
		},
	}

	p.PrintResumeSummary(resume)

	out := buf.String()
	assert.Contains(t, out, "RESUME DOCUMENT")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Software Engineer")
	assert.Contains(t, out, "Minimal Grey")
	assert.Contains(t, out, "Skills")
	assert.Contains(t, out, "Languages")
	assert.NotContains(t, out, "Projects")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_UnnamedDefaultsTheme(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(&types.Resume{})

	out := buf.String()
	assert.Contains(t, out, "(unnamed)")
	assert.Contains(t, out, "Classic Blue")
}

func TestPrintExperience(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := []types.WorkExperience{
		{Company: "Acme Corp", Role: "Engineer", StartDate: "Jan 2020", EndDate: "Dec 2022"},
		{Company: "Globex", Role: "Senior Engineer", StartDate: "Jan 2023", EndDate: "Present"},
	}
	p.PrintExperience(entries)

	out := buf.String()
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Engineer @ Acme Corp")
	assert.Contains(t, out, "Jan 2023 - Present")
}

func TestPrintExperience_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	entries := make([]types.WorkExperience, 8)
	for i := range entries {
		entries[i] = types.WorkExperience{Company: "Co", Role: "Role"}
	}
	p.PrintExperience(entries)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintExperience_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExperience(nil)
	assert.Empty(t, buf.String())
}

func TestPrintThemeCatalog(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintThemeCatalog(false)

	out := buf.String()
	assert.Contains(t, out, "TEMPLATE THEMES")
	assert.Contains(t, out, "✓ Classic Blue")

	freeVisible := false
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Modern Navy") {
			assert.NotContains(t, line, "✓", "Modern Navy should be locked on the free plan")
			freeVisible = true
		}
	}
	assert.True(t, freeVisible, "catalog should list premium themes even when locked")

	buf.Reset()
	p.PrintThemeCatalog(true)
	assert.Contains(t, buf.String(), "✓ Modern Navy")
}
