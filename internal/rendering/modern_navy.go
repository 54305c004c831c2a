package rendering

import "github.com/jdoe/resume-builder/internal/types"

// Modern Navy is the recruiter-facing layout: a filled color header, an
// "About Me" summary, and a timeline treatment for experience entries.

type modernNavyData struct {
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
	Languages      []string
}

func modernNavyView(r *types.Resume) any {
	return &modernNavyData{
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
		Languages:      languageNames(r),
	}
}

const modernNavyHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 0; color: #374151; }
.page { background: #ffffff; }
.header { background: {{.Primary}}; color: #ffffff; padding: 32px; }
.header h1 { font-size: 36px; margin: 0 0 8px 0; }
.header .designation { font-size: 20px; margin: 0 0 16px 0; opacity: 0.9; }
.header .contact span { margin-right: 12px; font-size: 13px; opacity: 0.9; }
.body { padding: 32px; }
.section { margin-bottom: 24px; }
.section-head { border-left: 4px solid {{.Primary}}; padding-left: 12px; margin-bottom: 12px; }
.section-head h2 { font-size: 24px; margin: 0; color: {{.Primary}}; }
.timeline { margin-left: 16px; }
.timeline .entry { border-left: 2px solid {{.Secondary}}; padding-left: 24px; margin-bottom: 16px; }
.entry-head { display: flex; justify-content: space-between; }
.entry-head h3 { font-size: 17px; margin: 0; color: #111827; }
.dates { font-size: 13px; color: {{.Primary}}; }
.company { font-weight: 600; margin: 2px 0 8px 0; }
.text { font-size: 13px; color: #4b5563; margin: 0; }
.card { background: #f3f4f6; border-radius: 8px; padding: 12px; margin-bottom: 12px; }
.skill { display: inline-block; color: {{.Primary}}; background: #f3f4f6; border-radius: 9999px; padding: 4px 12px; font-size: 13px; margin: 0 8px 8px 0; }
.project { border-left: 4px solid {{.Secondary}}; padding-left: 12px; margin-bottom: 12px; }
.links a { font-size: 13px; color: {{.Primary}}; margin-right: 12px; text-decoration: none; }
.pill { display: inline-block; background: {{.Secondary}}; color: #ffffff; border-radius: 9999px; padding: 8px 16px; font-weight: 500; margin: 0 12px 12px 0; }
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
    </div>
  </div>
  <div class="body">
    {{if .Summary}}
    <div class="section">
      <div class="section-head"><h2>About Me</h2></div>
      <p class="text">{{.Summary}}</p>
    </div>
    {{end}}
    {{if .WorkExperience}}
    <div class="section">
      <div class="section-head"><h2>Work Experience</h2></div>
      <div class="timeline">
        {{range .WorkExperience}}
        <div class="entry">
          <div class="entry-head">
            <h3>{{.Role}}</h3>
            <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
          </div>
          <p class="company">{{.Company}}</p>
          <p class="text">{{.Description}}</p>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
    {{if .Education}}
    <div class="section">
      <div class="section-head"><h2>Education</h2></div>
      {{range .Education}}
      <div class="card">
        <div class="entry-head">
          <h3>{{.Degree}}</h3>
          <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
        </div>
        <p class="text">{{.Institution}}</p>
      </div>
      {{end}}
    </div>
    {{end}}
    {{if .Skills}}
    <div class="section">
      <div class="section-head"><h2>Skills</h2></div>
      {{range .Skills}}<span class="skill">{{.}}</span>{{end}}
    </div>
    {{end}}
    {{if .Projects}}
    <div class="section">
      <div class="section-head"><h2>Projects</h2></div>
      {{range .Projects}}
      <div class="project">
        <h3>{{.Title}}</h3>
        <p class="text">{{.Description}}</p>
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
      <div class="section-head"><h2>Certifications</h2></div>
      {{range .Certifications}}
      <div class="card">
        <div class="entry-head">
          <h3>{{.Title}}</h3>
          <span class="dates">{{.Year}}</span>
        </div>
        <p class="text">{{.Issuer}}</p>
      </div>
      {{end}}
    </div>
    {{end}}
    {{if .Languages}}
    <div class="section">
      <div class="section-head"><h2>Languages</h2></div>
      {{range .Languages}}<span class="pill">{{.}}</span>{{end}}
    </div>
    {{end}}
  </div>
</div>
</body>
</html>
`

// ModernNavy renders the recruiter-facing colored theme.
var ModernNavy = newRenderer(ThemeModernNavy, modernNavyHTML, modernNavyView)
