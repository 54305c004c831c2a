package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/types"
)

func TestAddExperience_PreservesOrder(t *testing.T) {
	r := &types.Resume{}

	AddExperience(r, types.WorkExperience{Company: "First"})
	AddExperience(r, types.WorkExperience{Company: "Second"})
	AddExperience(r, types.WorkExperience{Company: "Third"})

	require.Len(t, r.WorkExperience, 3)
	assert.Equal(t, "First", r.WorkExperience[0].Company)
	assert.Equal(t, "Second", r.WorkExperience[1].Company)
	assert.Equal(t, "Third", r.WorkExperience[2].Company)
}

func TestUpdateExperience(t *testing.T) {
	r := &types.Resume{
		WorkExperience: []types.WorkExperience{
			{Company: "Acme", Role: "Engineer"},
			{Company: "Globex", Role: "Analyst"},
		},
	}

	err := UpdateExperience(r, 1, types.WorkExperience{Company: "Globex", Role: "Senior Analyst"})
	require.NoError(t, err)

	assert.Equal(t, "Senior Analyst", r.WorkExperience[1].Role)
	assert.Equal(t, "Engineer", r.WorkExperience[0].Role, "other entries are untouched")
}

func TestUpdateExperience_OutOfRange(t *testing.T) {
	r := &types.Resume{
		WorkExperience: []types.WorkExperience{{Company: "Acme"}},
	}

	for _, index := range []int{-1, 1, 5} {
		err := UpdateExperience(r, index, types.WorkExperience{Company: "Other"})
		require.Error(t, err, "index %d", index)

		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, "workExperience", oor.Section)
		assert.Equal(t, index, oor.Index)
		assert.Equal(t, 1, oor.Length)
	}

	// Failed updates leave the resume untouched.
	assert.Equal(t, "Acme", r.WorkExperience[0].Company)
}

func TestRemoveExperience_PreservesOrder(t *testing.T) {
	r := &types.Resume{
		WorkExperience: []types.WorkExperience{
			{Company: "A"}, {Company: "B"}, {Company: "C"},
		},
	}

	require.NoError(t, RemoveExperience(r, 1))

	require.Len(t, r.WorkExperience, 2)
	assert.Equal(t, "A", r.WorkExperience[0].Company)
	assert.Equal(t, "C", r.WorkExperience[1].Company)
}

func TestRemoveExperience_OutOfRange(t *testing.T) {
	r := &types.Resume{}

	err := RemoveExperience(r, 0)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 0, oor.Length)
}

func TestMutationsDoNotAliasCapturedValues(t *testing.T) {
	r := &types.Resume{
		Skills: []types.Skill{{Name: "Go"}},
	}
	captured := r.Skills

	AddSkill(r, types.Skill{Name: "SQL"})
	require.NoError(t, UpdateSkill(r, 0, types.Skill{Name: "Rust"}))

	// The slice captured before the edits still sees the original data.
	require.Len(t, captured, 1)
	assert.Equal(t, "Go", captured[0].Name)
	assert.Equal(t, "Rust", r.Skills[0].Name)
}

func TestSetTemplate_CopiesPalette(t *testing.T) {
	r := &types.Resume{}
	palette := []string{"#111111", "#222222"}

	SetTemplate(r, types.Template{Theme: "Classic Blue", ColorPalette: palette})
	palette[0] = "#ffffff"

	assert.Equal(t, "#111111", r.Template.ColorPalette[0])
}

func TestSetters(t *testing.T) {
	r := &types.Resume{}

	SetTitle(r, "Backend Resume")
	SetProfileInfo(r, types.ProfileInfo{FullName: "Jane Doe"})
	SetContactInfo(r, types.ContactInfo{Email: "jane@example.com"})

	assert.Equal(t, "Backend Resume", r.Title)
	assert.Equal(t, "Jane Doe", r.ProfileInfo.FullName)
	assert.Equal(t, "jane@example.com", r.ContactInfo.Email)
}

func TestAddLanguage_ClampsProgress(t *testing.T) {
	r := &types.Resume{}

	AddLanguage(r, types.Language{Name: "English", Progress: 150})
	AddLanguage(r, types.Language{Name: "French", Progress: -20})
	AddLanguage(r, types.Language{Name: "German", Progress: 70})

	require.Len(t, r.Languages, 3)
	assert.Equal(t, 100, r.Languages[0].Progress)
	assert.Equal(t, 0, r.Languages[1].Progress)
	assert.Equal(t, 70, r.Languages[2].Progress)
}

func TestUpdateLanguage_ClampsProgress(t *testing.T) {
	r := &types.Resume{
		Languages: []types.Language{{Name: "English", Progress: 50}},
	}

	require.NoError(t, UpdateLanguage(r, 0, types.Language{Name: "English", Progress: 101}))
	assert.Equal(t, 100, r.Languages[0].Progress)
}

func TestEducationOperations(t *testing.T) {
	r := &types.Resume{}

	AddEducation(r, types.Education{Degree: "BSc", Institution: "State University"})
	AddEducation(r, types.Education{Degree: "MSc", Institution: "Tech Institute"})
	require.NoError(t, UpdateEducation(r, 0, types.Education{Degree: "BEng", Institution: "State University"}))
	require.NoError(t, RemoveEducation(r, 1))

	require.Len(t, r.Education, 1)
	assert.Equal(t, "BEng", r.Education[0].Degree)
}

func TestProjectOperations(t *testing.T) {
	r := &types.Resume{}

	AddProject(r, types.Project{Title: "CLI Tool"})
	AddProject(r, types.Project{Title: "Web App"})
	require.NoError(t, RemoveProject(r, 0))

	require.Len(t, r.Projects, 1)
	assert.Equal(t, "Web App", r.Projects[0].Title)

	err := UpdateProject(r, 3, types.Project{Title: "Nope"})
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, "projects", oor.Section)
}

func TestCertificationOperations(t *testing.T) {
	r := &types.Resume{}

	AddCertification(r, types.Certification{Title: "Cloud Architect", Issuer: "Vendor", Year: "2024"})
	require.NoError(t, UpdateCertification(r, 0, types.Certification{Title: "Cloud Architect Pro", Issuer: "Vendor", Year: "2025"}))

	assert.Equal(t, "Cloud Architect Pro", r.Certifications[0].Title)

	require.NoError(t, RemoveCertification(r, 0))
	assert.Empty(t, r.Certifications)
}

func TestInterestOperations(t *testing.T) {
	r := &types.Resume{}

	AddInterest(r, "Chess")
	AddInterest(r, "Hiking")
	require.NoError(t, UpdateInterest(r, 1, "Climbing"))
	require.NoError(t, RemoveInterest(r, 0))

	assert.Equal(t, []string{"Climbing"}, r.Interests)
}

func TestErrIndexOutOfRange_Message(t *testing.T) {
	err := &ErrIndexOutOfRange{Section: "skills", Index: 4, Length: 2}
	assert.Equal(t, "skills: index 4 out of range (length 2)", err.Error())
}
