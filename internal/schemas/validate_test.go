package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdoe/resume-builder/internal/types"
)

func TestValidateResumeJSON_Valid(t *testing.T) {
	doc := []byte(`{
		"title": "My Resume",
		"template": {"theme": "Classic Blue", "colorPalette": ["#1e40af", "#3b82f6"]},
		"profileInfo": {"fullName": "Jane Doe", "designation": "Engineer"},
		"contactInfo": {"email": "jane@example.com"},
		"workExperience": [{"company": "Acme", "role": "Engineer", "description": "Built things"}],
		"skills": [{"name": "Go"}],
		"languages": [{"name": "English", "progress": 100}],
		"interests": ["Chess"]
	}`)

	assert.NoError(t, ValidateResumeJSON(doc))
}

func TestValidateResumeJSON_EmptyDocument(t *testing.T) {
	// All fields are optional; an empty object is a valid resume.
	assert.NoError(t, ValidateResumeJSON([]byte(`{}`)))
}

func TestValidateResumeJSON_MarshaledResume(t *testing.T) {
	resume := types.Resume{
		Title: "Round Trip",
		ProfileInfo: types.ProfileInfo{
			FullName: "Jane Doe",
		},
		Languages: []types.Language{{Name: "French", Progress: 60}},
	}
	data, err := json.Marshal(&resume)
	require.NoError(t, err)

	assert.NoError(t, ValidateResumeJSON(data))
}

func TestValidateResumeJSON_WrongFieldType(t *testing.T) {
	doc := []byte(`{"skills": "Go, SQL"}`)

	err := ValidateResumeJSON(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Equal(t, "skills", ve.Errors[0].Field)
}

func TestValidateResumeJSON_ProgressOutOfRange(t *testing.T) {
	doc := []byte(`{"languages": [{"name": "English", "progress": 150}]}`)

	err := ValidateResumeJSON(doc)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestValidateResumeJSON_UnknownField(t *testing.T) {
	doc := []byte(`{"unknownSection": []}`)

	err := ValidateResumeJSON(doc)
	assert.Error(t, err)
}

func TestValidateResumeJSON_Malformed(t *testing.T) {
	err := ValidateResumeJSON([]byte(`{not json`))
	assert.Error(t, err)
}

func TestValidateResumeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"title": "From Disk"}`), 0o644))

	assert.NoError(t, ValidateResumeFile(path))
}

func TestValidateResumeFile_Missing(t *testing.T) {
	err := ValidateResumeFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
