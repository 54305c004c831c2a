package rendering

import (
	"html/template"
	"strings"

	"github.com/jdoe/resume-builder/internal/types"
)

// Document is a fully laid-out resume ready for display or printing.
type Document struct {
	Theme string // canonical theme name that produced the document
	Title string // resume title, "resume" when unset
	HTML  string
}

// Renderer is a pure projection of a Resume into a Document. Rendering
// never mutates the input and is deterministic for identical input.
type Renderer struct {
	Name string // canonical theme name
	tmpl *template.Template
	data func(*types.Resume) any
}

// newRenderer parses the embedded template text for a theme. The text is
// compile-time constant, so a parse failure is a programming error.
func newRenderer(name, text string, data func(*types.Resume) any) *Renderer {
	return &Renderer{
		Name: name,
		tmpl: template.Must(template.New(name).Parse(text)),
		data: data,
	}
}

// Render projects the resume into a Document. Absent fields never cause an
// error: scalars fall back to the theme's placeholder convention and
// sections backed by empty or absent lists are omitted from the output.
func (r *Renderer) Render(resume *types.Resume) (*Document, error) {
	if resume == nil {
		resume = &types.Resume{}
	}

	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, r.data(resume)); err != nil {
		return nil, &TemplateError{Theme: r.Name, Message: "failed to execute template", Cause: err}
	}

	title := resume.Title
	if title == "" {
		title = "resume"
	}

	return &Document{Theme: r.Name, Title: title, HTML: sb.String()}, nil
}
