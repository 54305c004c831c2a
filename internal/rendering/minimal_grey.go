package rendering

import "github.com/jdoe/resume-builder/internal/types"

// Minimal Grey is a centered, single-column layout with light grey rules.
// The header shows only the name; the summary runs without a heading.

type minimalGreyData struct {
	Title          string
	FullName       string
	Summary        string
	Contact        types.ContactInfo
	WorkExperience []types.WorkExperience
	Education      []types.Education
	Skills         []string
	Projects       []types.Project
	Certifications []types.Certification
	Languages      []string
}

func minimalGreyView(r *types.Resume) any {
	return &minimalGreyData{
		Title:          fallback(r.Title, "resume"),
		FullName:       fallback(r.ProfileInfo.FullName, "Your Name"),
		Summary:        r.ProfileInfo.Summary,
		Contact:        r.ContactInfo,
		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Skills:         skillNames(r),
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Languages:      languageNames(r),
	}
}

const minimalGreyHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, 'Times New Roman', serif; margin: 0; color: #1a1a1a; }
.page { background: #ffffff; padding: 48px; }
.header { text-align: center; margin-bottom: 32px; }
.header h1 { font-size: 42px; margin: 0 0 8px 0; }
.contact { font-size: 13px; color: #4d4d4d; margin-top: 16px; }
.contact span { margin: 0 4px; }
.divider { border-bottom: 2px solid #d4d4d4; margin-bottom: 32px; }
.section { margin-bottom: 32px; }
.section h2 { font-size: 17px; text-transform: uppercase; border-bottom: 2px solid #d4d4d4; padding-bottom: 8px; margin: 0 0 16px 0; }
.entry { margin-bottom: 20px; }
.entry-head { display: flex; justify-content: space-between; }
.entry-head h3 { font-size: 15px; margin: 0; font-weight: bold; }
.dates { font-size: 13px; color: #666666; }
.role { font-style: italic; font-size: 13px; margin: 2px 0 8px 0; }
.text { font-size: 13px; color: #404040; margin: 0; }
.links a { font-size: 13px; color: #2563eb; margin-right: 12px; text-decoration: none; }
.inline-list { font-size: 13px; color: #404040; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.FullName}}</h1>
    <div class="contact">
      {{if .Contact.Phone}}<span>{{.Contact.Phone}}</span>{{end}}
      {{if .Contact.Email}}<span>|</span><span>{{.Contact.Email}}</span>{{end}}
      {{if .Contact.Website}}<span>|</span><span>{{.Contact.Website}}</span>{{end}}
      {{if .Contact.Location}}<span>|</span><span>{{.Contact.Location}}</span>{{end}}
    </div>
  </div>
  <div class="divider"></div>
  {{if .Summary}}
  <div class="section">
    <p class="text">{{.Summary}}</p>
  </div>
  {{end}}
  {{if .WorkExperience}}
  <div class="section">
    <h2>Experience</h2>
    {{range .WorkExperience}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Company}}</h3>
        <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <p class="role">{{.Role}}</p>
      <p class="text">{{.Description}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <h3>{{.Title}}</h3>
      <p class="text">{{.Description}}</p>
      {{if or .GitHub .LiveDemo}}
      <div class="links">
        {{if .GitHub}}<a href="{{.GitHub}}">GitHub</a>{{end}}
        {{if .LiveDemo}}<a href="{{.LiveDemo}}">Live Demo</a>{{end}}
      </div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Education}}
  <div class="section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Institution}}</h3>
        <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <p class="role">{{.Degree}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Skills}}
  <div class="section">
    <h2>Skills</h2>
    <p class="inline-list">{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>
  </div>
  {{end}}
  {{if .Languages}}
  <div class="section">
    <h2>Languages</h2>
    {{range .Languages}}<p class="inline-list">{{.}}</p>{{end}}
  </div>
  {{end}}
  {{if .Certifications}}
  <div class="section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="entry">
      <h3>{{.Title}}</h3>
      <p class="text">{{.Issuer}}{{if .Year}} &bull; {{.Year}}{{end}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`

// MinimalGrey renders the minimal light-grey theme.
var MinimalGrey = newRenderer(ThemeMinimalGrey, minimalGreyHTML, minimalGreyView)
