// Package editor provides section-scoped edit operations over a Resume.
//
// Every mutation replaces the whole top-level field of the Resume with a
// fresh slice (copy-on-write at the field level) so a previously captured
// Resume value never observes later edits. Out-of-range indices are
// rejected with ErrIndexOutOfRange and leave the Resume untouched.
package editor

import (
	"fmt"

	"github.com/jdoe/resume-builder/internal/types"
)

// ErrIndexOutOfRange indicates an update or remove targeted a list index
// that does not exist in the named section.
type ErrIndexOutOfRange struct {
	Section string
	Index   int
	Length  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range (length %d)", e.Section, e.Index, e.Length)
}

// appended returns a new slice with item appended, never sharing backing
// storage with the original.
func appended[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// replaced returns a new slice with the element at index swapped for item.
func replaced[T any](section string, items []T, index int, item T) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, &ErrIndexOutOfRange{Section: section, Index: index, Length: len(items)}
	}
	out := make([]T, len(items))
	copy(out, items)
	out[index] = item
	return out, nil
}

// removed returns a new slice with the element at index excised. The
// relative order of the remaining elements is preserved.
func removed[T any](section string, items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return nil, &ErrIndexOutOfRange{Section: section, Index: index, Length: len(items)}
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

// SetTitle sets the resume's display title.
func SetTitle(r *types.Resume, title string) {
	r.Title = title
}

// SetProfileInfo replaces the whole profile section.
func SetProfileInfo(r *types.Resume, info types.ProfileInfo) {
	r.ProfileInfo = info
}

// SetContactInfo replaces the whole contact section.
func SetContactInfo(r *types.Resume, info types.ContactInfo) {
	r.ContactInfo = info
}

// SetTemplate replaces the theme selection and color palette.
func SetTemplate(r *types.Resume, tpl types.Template) {
	palette := make([]string, len(tpl.ColorPalette))
	copy(palette, tpl.ColorPalette)
	tpl.ColorPalette = palette
	r.Template = tpl
}

// AddExperience appends a work experience entry.
func AddExperience(r *types.Resume, item types.WorkExperience) {
	r.WorkExperience = appended(r.WorkExperience, item)
}

// UpdateExperience replaces the work experience entry at index.
func UpdateExperience(r *types.Resume, index int, item types.WorkExperience) error {
	out, err := replaced("workExperience", r.WorkExperience, index, item)
	if err != nil {
		return err
	}
	r.WorkExperience = out
	return nil
}

// RemoveExperience removes the work experience entry at index.
func RemoveExperience(r *types.Resume, index int) error {
	out, err := removed("workExperience", r.WorkExperience, index)
	if err != nil {
		return err
	}
	r.WorkExperience = out
	return nil
}

// AddEducation appends an education entry.
func AddEducation(r *types.Resume, item types.Education) {
	r.Education = appended(r.Education, item)
}

// UpdateEducation replaces the education entry at index.
func UpdateEducation(r *types.Resume, index int, item types.Education) error {
	out, err := replaced("education", r.Education, index, item)
	if err != nil {
		return err
	}
	r.Education = out
	return nil
}

// RemoveEducation removes the education entry at index.
func RemoveEducation(r *types.Resume, index int) error {
	out, err := removed("education", r.Education, index)
	if err != nil {
		return err
	}
	r.Education = out
	return nil
}

// AddSkill appends a skill entry.
func AddSkill(r *types.Resume, item types.Skill) {
	r.Skills = appended(r.Skills, item)
}

// UpdateSkill replaces the skill entry at index.
func UpdateSkill(r *types.Resume, index int, item types.Skill) error {
	out, err := replaced("skills", r.Skills, index, item)
	if err != nil {
		return err
	}
	r.Skills = out
	return nil
}

// RemoveSkill removes the skill entry at index.
func RemoveSkill(r *types.Resume, index int) error {
	out, err := removed("skills", r.Skills, index)
	if err != nil {
		return err
	}
	r.Skills = out
	return nil
}

// AddProject appends a project entry.
func AddProject(r *types.Resume, item types.Project) {
	r.Projects = appended(r.Projects, item)
}

// UpdateProject replaces the project entry at index.
func UpdateProject(r *types.Resume, index int, item types.Project) error {
	out, err := replaced("projects", r.Projects, index, item)
	if err != nil {
		return err
	}
	r.Projects = out
	return nil
}

// RemoveProject removes the project entry at index.
func RemoveProject(r *types.Resume, index int) error {
	out, err := removed("projects", r.Projects, index)
	if err != nil {
		return err
	}
	r.Projects = out
	return nil
}

// AddCertification appends a certification entry.
func AddCertification(r *types.Resume, item types.Certification) {
	r.Certifications = appended(r.Certifications, item)
}

// UpdateCertification replaces the certification entry at index.
func UpdateCertification(r *types.Resume, index int, item types.Certification) error {
	out, err := replaced("certifications", r.Certifications, index, item)
	if err != nil {
		return err
	}
	r.Certifications = out
	return nil
}

// RemoveCertification removes the certification entry at index.
func RemoveCertification(r *types.Resume, index int) error {
	out, err := removed("certifications", r.Certifications, index)
	if err != nil {
		return err
	}
	r.Certifications = out
	return nil
}

// AddLanguage appends a language entry. Proficiency is clamped to [0,100].
func AddLanguage(r *types.Resume, item types.Language) {
	item.Progress = types.ClampProgress(item.Progress)
	r.Languages = appended(r.Languages, item)
}

// UpdateLanguage replaces the language entry at index. Proficiency is clamped to [0,100].
func UpdateLanguage(r *types.Resume, index int, item types.Language) error {
	item.Progress = types.ClampProgress(item.Progress)
	out, err := replaced("languages", r.Languages, index, item)
	if err != nil {
		return err
	}
	r.Languages = out
	return nil
}

// RemoveLanguage removes the language entry at index.
func RemoveLanguage(r *types.Resume, index int) error {
	out, err := removed("languages", r.Languages, index)
	if err != nil {
		return err
	}
	r.Languages = out
	return nil
}

// AddInterest appends an interest.
func AddInterest(r *types.Resume, interest string) {
	r.Interests = appended(r.Interests, interest)
}

// UpdateInterest replaces the interest at index.
func UpdateInterest(r *types.Resume, index int, interest string) error {
	out, err := replaced("interests", r.Interests, index, interest)
	if err != nil {
		return err
	}
	r.Interests = out
	return nil
}

// RemoveInterest removes the interest at index.
func RemoveInterest(r *types.Resume, index int) error {
	out, err := removed("interests", r.Interests, index)
	if err != nil {
		return err
	}
	r.Interests = out
	return nil
}
