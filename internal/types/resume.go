// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Template selects the visual theme and color palette for a resume.
type Template struct {
	Theme        string   `json:"theme,omitempty"`
	ColorPalette []string `json:"colorPalette,omitempty"`
}

// ProfileInfo holds the header fields of a resume. All fields are optional.
type ProfileInfo struct {
	FullName    string `json:"fullName,omitempty"`
	Designation string `json:"designation,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// ContactInfo holds contact details. All fields are optional.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// WorkExperience is a single employment entry.
type WorkExperience struct {
	Company     string `json:"company,omitempty"`
	Role        string `json:"role,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// Skill is a single named skill.
type Skill struct {
	Name string `json:"name,omitempty"`
}

// Project is a single project entry with optional links.
type Project struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	GitHub      string `json:"github,omitempty"`
	LiveDemo    string `json:"liveDemo,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	Title  string `json:"title,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Language is a spoken language with a 0-100 proficiency value.
type Language struct {
	Name     string `json:"name,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

// Resume is the root aggregate a user builds and exports.
//
// Every field is optional: renderers substitute placeholders for missing
// scalars and omit sections whose backing list is empty or absent. List
// order is display-significant and must survive edits and round-trips
// through the persistence service unchanged.
type Resume struct {
	ID             uuid.UUID        `json:"id,omitempty"`
	UserID         uuid.UUID        `json:"userId,omitempty"`
	Title          string           `json:"title,omitempty"`
	Template       Template         `json:"template,omitempty"`
	ProfileInfo    ProfileInfo      `json:"profileInfo,omitempty"`
	ContactInfo    ContactInfo      `json:"contactInfo,omitempty"`
	WorkExperience []WorkExperience `json:"workExperience,omitempty"`
	Education      []Education      `json:"education,omitempty"`
	Skills         []Skill          `json:"skills,omitempty"`
	Projects       []Project        `json:"projects,omitempty"`
	Certifications []Certification  `json:"certifications,omitempty"`
	Languages      []Language       `json:"languages,omitempty"`
	Interests      []string         `json:"interests,omitempty"`
	Thumbnail      string           `json:"thumbnailLink,omitempty"`
	CreatedAt      time.Time        `json:"createdAt,omitempty"`
	UpdatedAt      time.Time        `json:"updatedAt,omitempty"`
}

// ClampProgress clamps a language proficiency value to the [0,100] range.
func ClampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// CreateResumeRequest is the request body for creating a new resume.
type CreateResumeRequest struct {
	Title string `json:"title" validate:"required,min=1"`
}
