package rendering

import (
	"strings"

	"github.com/jdoe/resume-builder/internal/types"
)

// ATS Clean is a plain black-on-white layout with no color accents so
// applicant-tracking parsers read it cleanly.

type atsCleanData struct {
	Title          string
	FullName       string
	Designation    string
	Summary        string
	Contact        types.ContactInfo
	WorkExperience []types.WorkExperience
	Education      []types.Education
	Skills         string
	Projects       []types.Project
	Certifications []types.Certification
	Languages      string
}

func atsCleanView(r *types.Resume) any {
	return &atsCleanData{
		Title:          fallback(r.Title, "resume"),
		FullName:       fallback(r.ProfileInfo.FullName, "YOUR NAME"),
		Designation:    fallback(r.ProfileInfo.Designation, "Your Designation"),
		Summary:        r.ProfileInfo.Summary,
		Contact:        r.ContactInfo,
		WorkExperience: r.WorkExperience,
		Education:      r.Education,
		Skills:         strings.Join(skillNames(r), ", "),
		Projects:       r.Projects,
		Certifications: r.Certifications,
		Languages:      strings.Join(languageNames(r), ", "),
	}
}

const atsCleanHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 0; color: #000000; }
.page { background: #ffffff; padding: 32px; }
.header { text-align: center; border-bottom: 2px solid #000000; padding-bottom: 16px; margin-bottom: 24px; }
.header h1 { font-size: 28px; margin: 0 0 4px 0; }
.header .designation { font-size: 15px; margin: 0 0 8px 0; }
.header .contact { font-size: 13px; }
.section { margin-bottom: 20px; }
.section h2 { font-size: 16px; text-transform: uppercase; border-bottom: 1px solid #000000; margin: 0 0 8px 0; }
.entry { margin-bottom: 12px; }
.entry h3 { font-size: 14px; font-weight: bold; margin: 0; }
.meta { font-size: 13px; margin: 2px 0; }
.text { font-size: 13px; margin: 2px 0; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.FullName}}</h1>
    <p class="designation">{{.Designation}}</p>
    <div class="contact">
      {{if .Contact.Email}}<span>{{.Contact.Email}}</span>{{end}}
      {{if .Contact.Phone}}<span> | {{.Contact.Phone}}</span>{{end}}
      {{if .Contact.Location}}<span> | {{.Contact.Location}}</span>{{end}}
    </div>
  </div>
  {{if .Summary}}
  <div class="section">
    <h2>Professional Summary</h2>
    <p class="text">{{.Summary}}</p>
  </div>
  {{end}}
  {{if .WorkExperience}}
  <div class="section">
    <h2>Work Experience</h2>
    {{range .WorkExperience}}
    <div class="entry">
      <h3>{{.Role}}</h3>
      <p class="meta">{{.Company}} | {{.StartDate}} - {{.EndDate}}</p>
      <p class="text">{{.Description}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Education}}
  <div class="section">
    <h2>Education</h2>
    {{range .Education}}
    <div class="entry">
      <h3>{{.Degree}}</h3>
      <p class="meta">{{.Institution}} | {{.StartDate}} - {{.EndDate}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Skills}}
  <div class="section">
    <h2>Skills</h2>
    <p class="text">{{.Skills}}</p>
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <h2>Projects</h2>
    {{range .Projects}}
    <div class="entry">
      <h3>{{.Title}}</h3>
      <p class="text">{{.Description}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Certifications}}
  <div class="section">
    <h2>Certifications</h2>
    {{range .Certifications}}
    <p class="text"><strong>{{.Title}}</strong> - {{.Issuer}} ({{.Year}})</p>
    {{end}}
  </div>
  {{end}}
  {{if .Languages}}
  <div class="section">
    <h2>Languages</h2>
    <p class="text">{{.Languages}}</p>
  </div>
  {{end}}
</div>
</body>
</html>
`

// ATSClean renders the ATS-parser-friendly theme.
var ATSClean = newRenderer(ThemeATSClean, atsCleanHTML, atsCleanView)
