package rendering

import "github.com/jdoe/resume-builder/internal/types"

// Classic Blue is the default layout: a palette-colored header rule, section
// headings in the primary color, and language proficiency bars.

type classicBlueData struct {
	Title          string
	FullName       string
	Designation    string
	Summary        string
	Primary        string
	Secondary      string
	Contact        types.ContactInfo
	WorkExperience []types.WorkExperience
	Education      []types.Education
	Skills         []string
	Projects       []types.Project
	Certifications []types.Certification
	Languages      []languageView
}

func classicBlueView(r *types.Resume) any {
	return &classicBlueData{
		Title:          fallback(r.Title, "resume"),
		FullName:       fallback(r.ProfileInfo.FullName, "Your Name"),
		Designation:    fallback(r.ProfileInfo.Designation, "Your Designation"),
		Summary:        r.ProfileInfo.Summary,
		Primary:        paletteColor(r, 0, defaultPrimary),
		Secondary:      paletteColor(r, 1, defaultSecondary),
		Contact:        r.ContactInfo,
		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Skills:         skillNames(r),
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Languages:      languageViews(r),
	}
}

const classicBlueHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 0; color: #374151; }
.page { background: #ffffff; padding: 32px; }
.header { border-bottom: 4px solid {{.Primary}}; padding-bottom: 24px; margin-bottom: 24px; }
.header h1 { font-size: 36px; margin: 0 0 8px 0; color: {{.Primary}}; }
.header .designation { font-size: 20px; color: #4b5563; margin: 0 0 16px 0; }
.contact span, .contact a { margin-right: 16px; font-size: 13px; color: #4b5563; }
.contact a { color: #2563eb; text-decoration: none; }
.section { margin-bottom: 24px; }
.section h2 { font-size: 20px; margin: 0 0 12px 0; color: {{.Primary}}; }
.entry { margin-bottom: 16px; }
.entry-head { display: flex; justify-content: space-between; }
.entry-head h3 { font-size: 15px; margin: 0; color: #111827; }
.dates { font-size: 13px; color: #4b5563; }
.company { font-weight: 500; margin: 2px 0 8px 0; }
.description { font-size: 13px; color: #4b5563; margin: 0; }
.skill { display: inline-block; background: #f3f4f6; color: #1f2937; border-radius: 9999px; padding: 4px 12px; font-size: 13px; margin: 0 8px 8px 0; }
.links a { font-size: 13px; color: #2563eb; margin-right: 16px; text-decoration: none; }
.lang-row { display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 4px; }
.bar { background: #e5e7eb; border-radius: 9999px; height: 8px; margin-bottom: 12px; }
.bar-fill { background: {{.Secondary}}; border-radius: 9999px; height: 8px; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.FullName}}</h1>
    <p class="designation">{{.Designation}}</p>
    <div class="contact">
      {{if .Contact.Email}}<span>{{.Contact.Email}}</span>{{end}}
      {{if .Contact.Phone}}<span>{{.Contact.Phone}}</span>{{end}}
      {{if .Contact.Location}}<span>{{.Contact.Location}}</span>{{end}}
      {{if .Contact.LinkedIn}}<a href="{{.Contact.LinkedIn}}">LinkedIn</a>{{end}}
      {{if .Contact.GitHub}}<a href="{{.Contact.GitHub}}">GitHub</a>{{end}}
      {{if .Contact.Website}}<a href="{{.Contact.Website}}">Website</a>{{end}}
    </div>
  </div>
  {{if .Summary}}
  <div class="section">
    <h2>Professional Summary</h2>
    <p class="description">{{.Summary}}</p>
  </div>
  {{end}}
  {{if .WorkExperience}}
  <div class="section">
    <h2>Work Experience</h2>
    {{range .WorkExperience}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Role}}</h3>
        <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <p class="company">{{.Company}}</p>
      <p class="description">{{.Description}}</p>
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
        <h3>{{.Degree}}</h3>
        <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <p class="company">{{.Institution}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Skills}}
  <div class="section">
    <h2>Skills</h2>
    {{range .Skills}}<span class="skill">{{.}}</span>{{end}}
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <h3>{{.Title}}</h3>
      <p class="description">{{.Description}}</p>
      <div class="links">
        {{if .GitHub}}<a href="{{.GitHub}}">GitHub</a>{{end}}
        {{if .LiveDemo}}<a href="{{.LiveDemo}}">Live Demo</a>{{end}}
      </div>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Certifications}}
  <div class="section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <div class="entry">
      <div class="entry-head">
        <h3>{{.Title}}</h3>
        <span class="dates">{{.Year}}</span>
      </div>
      <p class="description">{{.Issuer}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Languages}}
  <div class="section">
    <h2>Languages</h2>
    {{range .Languages}}
    <div class="lang-row"><span>{{.Name}}</span><span>{{.Progress}}%</span></div>
    <div class="bar"><div class="bar-fill" style="width: {{.Progress}}%"></div></div>
    {{end}}
  </div>
  {{end}}
</div>
</body>
</html>
`

// ClassicBlue is the default renderer for unrecognized or absent themes.
var ClassicBlue = newRenderer(ThemeClassicBlue, classicBlueHTML, classicBlueView)
