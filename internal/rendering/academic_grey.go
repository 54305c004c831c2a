package rendering

import (
	"strings"

	"github.com/jdoe/resume-builder/internal/types"
)

// Academic Grey is the institute-style layout: grey banner section headings,
// a tabular education block, and certification titles listed as scholastic
// achievements.

type academicGreyData struct {
	Title          string
	FullName       string
	Designation    string
	Location       string
	Phone          string
	Email          string
	Education      []types.Education
	WorkExperience []types.WorkExperience
	Skills         string
	Interests      string
	Projects       []types.Project
	Achievements   []string
	Extracurricular []string
}

func academicGreyView(r *types.Resume) any {
	return &academicGreyData{
		Title:           fallback(r.Title, "resume"),
		FullName:        fallback(r.ProfileInfo.FullName, "Your Name"),
		Designation:     fallback(r.ProfileInfo.Designation, "Your Designation"),
		Location:        r.ContactInfo.Location,
		Phone:           r.ContactInfo.Phone,
		Email:           r.ContactInfo.Email,
		Education:       r.Education,
		WorkExperience:  r.WorkExperience,
		Skills:          strings.Join(skillNames(r), ", "),
		Interests:       strings.Join(r.Interests, ", "),
		Projects:        r.Projects,
		Achievements:    certTitles(r),
		Extracurricular: r.Interests,
	}
}

const academicGreyHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 0; color: #2b2b2b; }
.page { background: #ffffff; padding: 32px; }
.header { display: flex; justify-content: space-between; margin-bottom: 16px; }
.header h1 { font-size: 19px; margin: 0; }
.header .designation { font-size: 13px; color: #404040; margin: 2px 0; }
.header .location { font-size: 11px; color: #6b7280; margin: 2px 0; }
.header .right { font-size: 11px; color: #4b5563; text-align: right; }
.banner { background: #e5e7eb; font-size: 11px; font-weight: bold; text-align: center; padding: 4px 0; margin-bottom: 8px; }
.section { margin-bottom: 20px; }
table { width: 100%; font-size: 11px; border-collapse: collapse; border-top: 1px solid #d1d5db; border-bottom: 1px solid #d1d5db; }
th { text-align: left; padding: 4px 0; }
td { padding: 4px 0; border-top: 1px solid #d1d5db; }
.row { display: flex; justify-content: space-between; font-size: 11px; }
.name { font-weight: 600; }
.dates { color: #6b7280; }
.text { font-size: 11px; color: #4b5563; margin: 2px 0; }
ul { margin: 0; padding-left: 16px; font-size: 11px; }
li { margin-bottom: 4px; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div>
      <h1>{{.FullName}}</h1>
      <p class="designation">{{.Designation}}</p>
      {{if .Location}}<p class="location">{{.Location}}</p>{{end}}
    </div>
    <div class="right">
      {{if .Phone}}<div>Mob. {{.Phone}}</div>{{end}}
      {{if .Email}}<div>{{.Email}}</div>{{end}}
    </div>
  </div>
  {{if .Education}}
  <div class="section">
    <div class="banner">EDUCATION</div>
    <table>
      <thead>
        <tr><th>Course</th><th>College/University</th><th>Year</th></tr>
      </thead>
      <tbody>
        {{range .Education}}
        <tr><td>{{.Degree}}</td><td>{{.Institution}}</td><td>{{.StartDate}} - {{.EndDate}}</td></tr>
        {{end}}
      </tbody>
    </table>
  </div>
  {{end}}
  {{if .WorkExperience}}
  <div class="section">
    <div class="banner">WORK EXPERIENCE</div>
    {{range .WorkExperience}}
    <div class="row">
      <span class="name">{{.Role}} | {{.Company}}</span>
      <span class="dates">[{{.StartDate}}-{{.EndDate}}]</span>
    </div>
    {{if .Description}}<p class="text">{{.Description}}</p>{{end}}
    {{end}}
  </div>
  {{end}}
  {{if or .Skills .Interests}}
  <div class="section">
    <div class="banner">SKILLS &amp; INTERESTS</div>
    {{if .Skills}}<p class="text"><span class="name">Skills: </span>{{.Skills}}</p>{{end}}
    {{if .Interests}}<p class="text"><span class="name">Interests: </span>{{.Interests}}</p>{{end}}
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <div class="banner">PROJECTS</div>
    {{range .Projects}}
    <div class="row"><span class="name">{{.Title}}</span></div>
    <p class="text">{{.Description}}</p>
    {{end}}
  </div>
  {{end}}
  {{if .Achievements}}
  <div class="section">
    <div class="banner">SCHOLASTIC ACHIEVEMENTS</div>
    <ul>
      {{range .Achievements}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
  {{if .Extracurricular}}
  <div class="section">
    <div class="banner">EXTRACURRICULAR ACTIVITIES</div>
    <ul>
      {{range .Extracurricular}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}
</div>
</body>
</html>
`

// AcademicGrey renders the institute-style theme.
var AcademicGrey = newRenderer(ThemeAcademicGrey, academicGreyHTML, academicGreyView)
