package rendering

import "github.com/jdoe/resume-builder/internal/types"

// Accent Orange is a compact CV layout with an orange contact bar under the
// header and dense multi-column sections.

const accentBar = "#e95d2a"

type accentOrangeData struct {
	Title          string
	FullName       string
	Designation    string
	Summary        string
	ContactItems   []string
	WorkExperience []types.WorkExperience
	Education      []types.Education
	Skills         []string
	Projects       []types.Project
	Certifications []types.Certification
	Languages      []string
	Bar            string
}

func accentOrangeView(r *types.Resume) any {
	var items []string
	if r.ContactInfo.Email != "" {
		items = append(items, r.ContactInfo.Email)
	}
	if r.ContactInfo.LinkedIn != "" {
		items = append(items, r.ContactInfo.LinkedIn)
	}
	if r.ContactInfo.GitHub != "" {
		items = append(items, r.ContactInfo.GitHub)
	}
	if r.ContactInfo.Phone != "" {
		items = append(items, r.ContactInfo.Phone)
	}

	return &accentOrangeData{
		Title:          fallback(r.Title, "resume"),
		FullName:       fallback(r.ProfileInfo.FullName, "Your Name"),
		Designation:    fallback(r.ProfileInfo.Designation, "Your Designation"),
		Summary:        r.ProfileInfo.Summary,
		ContactItems:   items,
		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Skills:         skillNames(r),
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Languages:      languageNames(r),
		Bar:            accentBar,
	}
}

const accentOrangeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 0; color: #2b2b2b; }
.page { background: #ffffff; }
.header { padding: 32px 32px 16px 32px; }
.header h1 { font-size: 28px; margin: 0; }
.header .designation { font-size: 13px; font-style: italic; color: #4b5563; margin: 2px 0; }
.header .summary { font-size: 11px; color: #4b5563; margin: 8px 0 0 0; }
.contact-bar { background: {{.Bar}}; color: #ffffff; font-size: 11px; padding: 8px 32px; }
.contact-bar span { margin-right: 16px; }
.body { padding: 32px; }
.section { margin-bottom: 24px; }
.section h2 { font-size: 13px; text-transform: uppercase; color: {{.Bar}}; margin: 0 0 8px 0; }
.grid { display: flex; flex-wrap: wrap; }
.grid > div { width: 33%; margin-bottom: 12px; font-size: 11px; }
.grid-half > div { width: 50%; }
.name { font-weight: 600; color: #111827; }
.muted { color: #4b5563; }
.faint { color: #6b7280; }
.row { display: flex; justify-content: space-between; font-size: 11px; }
.entry { margin-bottom: 12px; font-size: 11px; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.FullName}}</h1>
    <p class="designation">{{.Designation}}</p>
    {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
  </div>
  <div class="contact-bar">
    {{range .ContactItems}}<span>{{.}}</span>{{end}}
  </div>
  <div class="body">
    {{if .Skills}}
    <div class="section">
      <h2>Skills</h2>
      <div class="grid">
        {{range .Skills}}<div class="muted">{{.}}</div>{{end}}
      </div>
    </div>
    {{end}}
    {{if .Education}}
    <div class="section">
      <h2>Education</h2>
      <div class="grid grid-half">
        {{range .Education}}
        <div>
          <p class="name">{{.Degree}}</p>
          <p class="muted">{{.Institution}}</p>
          <p class="faint">{{.StartDate}} - {{.EndDate}}</p>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{if .WorkExperience}}
    <div class="section">
      <h2>Experience</h2>
      {{range .WorkExperience}}
      <div class="entry">
        <div class="row">
          <span class="name">{{.Role}}</span>
          <span class="faint">{{.StartDate}} - {{.EndDate}}</span>
        </div>
        <p class="muted">{{.Company}}</p>
        {{if .Description}}<p class="faint">{{.Description}}</p>{{end}}
      </div>
      {{end}}
    </div>
    {{end}}
    {{if .Projects}}
    <div class="section">
      <h2>Other Activities &amp; Projects</h2>
      <div class="grid">
        {{range .Projects}}
        <div>
          <p class="name">{{.Title}}</p>
          <p class="faint">{{.Description}}</p>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{if .Certifications}}
    <div class="section">
      <h2>Awards</h2>
      <div class="grid">
        {{range .Certifications}}
        <div>
          <p class="name">{{.Title}}</p>
          <p class="faint">{{.Issuer}}</p>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{if .Languages}}
    <div class="section">
      <h2>Languages</h2>
      <div class="grid">
        {{range .Languages}}<div class="name">{{.}}</div>{{end}}
      </div>
    </div>
    {{end}}
  </div>
</div>
</body>
</html>
`

// AccentOrange renders the compact CV theme with the orange contact bar.
var AccentOrange = newRenderer(ThemeAccentOrange, accentOrangeHTML, accentOrangeView)
