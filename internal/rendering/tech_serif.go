package rendering

import (
	"strings"

	"github.com/jdoe/resume-builder/internal/types"
)

// Tech Serif is the one-page engineering layout: centered contact block with
// sample placeholders, ruled section headings, and experience descriptions
// split into one bullet per non-blank line.

type techSerifExperience struct {
	Role      string
	Company   string
	StartDate string
	EndDate   string
	Location  string
	Bullets   []string
}

type techSerifData struct {
	Title          string
	FullName       string
	Phone          string
	Location       string
	Email          string
	LinkedIn       string
	Website        string
	Summary        string
	Education      []types.Education
	Skills         string
	WorkExperience []techSerifExperience
	Projects       []types.Project
	Interests      []string
	Leadership     []string
}

func techSerifView(r *types.Resume) any {
	experience := make([]techSerifExperience, 0, len(r.WorkExperience))
	for _, exp := range r.WorkExperience {
		experience = append(experience, techSerifExperience{
			Role:      exp.Role,
			Company:   exp.Company,
			StartDate: exp.StartDate,
			EndDate:   exp.EndDate,
			Location:  r.ContactInfo.Location,
			Bullets:   bulletLines(exp.Description),
		})
	}

	return &techSerifData{
		Title:          fallback(r.Title, "resume"),
		FullName:       fallback(r.ProfileInfo.FullName, "FIRSTNAME LASTNAME"),
		Phone:          fallback(r.ContactInfo.Phone, "+1(123) 456-7890"),
		Location:       fallback(r.ContactInfo.Location, "San Francisco, CA"),
		Email:          fallback(r.ContactInfo.Email, "contact@email.com"),
		LinkedIn:       fallback(r.ContactInfo.LinkedIn, "linkedin.com/company/example"),
		Website:        fallback(r.ContactInfo.Website, "www.example.com"),
		Summary:        r.ProfileInfo.Summary,
		Education:      r.Education,
		Skills:         strings.Join(skillNames(r), ", "),
		WorkExperience: experience,
		Projects:       r.Projects,
		Interests:      r.Interests,
		Leadership:     certTitles(r),
	}
}

const techSerifHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Georgia, 'Times New Roman', serif; margin: 0; color: #111111; }
.page { background: #ffffff; padding: 32px; }
.header { text-align: center; margin-bottom: 16px; }
.header h1 { font-size: 19px; letter-spacing: 1px; margin: 0; }
.header .line { font-size: 11px; color: #4b5563; margin: 2px 0; }
.header .line-links { font-size: 11px; color: #1d4ed8; margin: 2px 0; }
.section { margin-bottom: 16px; }
.section h2 { font-size: 13px; border-bottom: 1px solid #9ca3af; padding-bottom: 4px; margin: 0 0 8px 0; }
.row { display: flex; justify-content: space-between; font-size: 11px; }
.name { font-weight: 600; }
.dates { color: #6b7280; }
.sub { display: flex; justify-content: space-between; font-size: 11px; font-style: italic; color: #4b5563; }
.text { font-size: 11px; color: #404040; margin: 2px 0; }
ul { margin: 4px 0 0 0; padding-left: 16px; font-size: 11px; color: #404040; }
li { margin-bottom: 2px; }
.entry { margin-bottom: 12px; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <h1>{{.FullName}}</h1>
    <p class="line">{{.Phone}} &bull; {{.Location}}</p>
    <p class="line-links">{{.Email}} &bull; {{.LinkedIn}} &bull; {{.Website}}</p>
  </div>
  {{if .Summary}}
  <div class="section">
    <h2>OBJECTIVE</h2>
    <p class="text">{{.Summary}}</p>
  </div>
  {{end}}
  {{if .Education}}
  <div class="section">
    <h2>EDUCATION</h2>
    {{range .Education}}
    <div class="row">
      <span><span class="name">{{.Degree}}</span>, {{.Institution}}</span>
      <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Skills}}
  <div class="section">
    <h2>SKILLS</h2>
    <p class="text">{{.Skills}}</p>
  </div>
  {{end}}
  {{if .WorkExperience}}
  <div class="section">
    <h2>EXPERIENCE</h2>
    {{range .WorkExperience}}
    <div class="entry">
      <div class="row">
        <span class="name">{{.Role}}</span>
        <span class="dates">{{.StartDate}} - {{.EndDate}}</span>
      </div>
      <div class="sub">
        <span>{{.Company}}</span>
        <span>{{.Location}}</span>
      </div>
      {{if .Bullets}}
      <ul>
        {{range .Bullets}}<li>{{.}}</li>{{end}}
      </ul>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <h2>PROJECTS</h2>
    {{range .Projects}}
    <p class="text"><span class="name">{{.Title}}. </span>{{.Description}}</p>
    {{end}}
  </div>
  {{end}}
  {{if .Interests}}
  <div class="section">
    <h2>EXTRA-CURRICULAR ACTIVITIES</h2>
    <ul>
      {{range .Interests}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
  {{if .Leadership}}
  <div class="section">
    <h2>LEADERSHIP</h2>
    <ul>
      {{range .Leadership}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
</div>
</body>
</html>
`

// TechSerif renders the one-page engineering theme.
var TechSerif = newRenderer(ThemeTechSerif, techSerifHTML, techSerifView)
